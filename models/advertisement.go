package models

import "time"

// Category is the audience segment an advertisement is classified under.
type Category string

const (
	CategoryMen      Category = "men"
	CategoryWomen    Category = "women"
	CategoryChildren Category = "children"
)

// Categories is the closed set of valid categories.
var Categories = []Category{CategoryMen, CategoryWomen, CategoryChildren}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// SubCategory is the service type an advertisement offers.
type SubCategory string

const (
	SubCategorySpa           SubCategory = "spa"
	SubCategoryCupping       SubCategory = "cupping"
	SubCategoryBeautyClinic  SubCategory = "beauty_clinic"
	SubCategoryMensSalon     SubCategory = "mens_salon"
	SubCategoryWomensSalon   SubCategory = "womens_salon"
	SubCategoryHomeServices  SubCategory = "home_services"
	SubCategoryBodyCare      SubCategory = "body_care"
	SubCategoryChildrenSalon SubCategory = "children_salon"
)

// SubCategories is the closed set of valid sub-categories.
var SubCategories = []SubCategory{
	SubCategorySpa,
	SubCategoryCupping,
	SubCategoryBeautyClinic,
	SubCategoryMensSalon,
	SubCategoryWomensSalon,
	SubCategoryHomeServices,
	SubCategoryBodyCare,
	SubCategoryChildrenSalon,
}

func (s SubCategory) Valid() bool {
	for _, v := range SubCategories {
		if s == v {
			return true
		}
	}
	return false
}

// Governorate is the region an advertisement is located in.
type Governorate string

const (
	GovernorateCapital         Governorate = "capital"
	GovernorateAhmadi          Governorate = "ahmadi"
	GovernorateFarwaniya       Governorate = "farwaniya"
	GovernorateJahra           Governorate = "jahra"
	GovernorateMubarakAlKabeer Governorate = "mubarak_al_kabeer"
	GovernorateHawalli         Governorate = "hawalli"
)

// Governorates is the closed set of valid governorates.
var Governorates = []Governorate{
	GovernorateCapital,
	GovernorateAhmadi,
	GovernorateFarwaniya,
	GovernorateJahra,
	GovernorateMubarakAlKabeer,
	GovernorateHawalli,
}

func (g Governorate) Valid() bool {
	for _, v := range Governorates {
		if g == v {
			return true
		}
	}
	return false
}

// SocialMedia is the closed set of optional contact fields. Unknown keys sent
// by clients are dropped since only these fields are bound.
type SocialMedia struct {
	Twitter   string `bson:"twitter" json:"twitter"`
	Instagram string `bson:"instagram" json:"instagram"`
	Facebook  string `bson:"facebook" json:"facebook"`
	Snapchat  string `bson:"snapchat" json:"snapchat"`
	Whatsapp  string `bson:"whatsapp" json:"whatsapp"`
	Phone     string `bson:"phone" json:"phone"`
	Website   string `bson:"website" json:"website"`
	MapLink   string `bson:"mapLink" json:"mapLink"`
	Tiktok    string `bson:"tiktok" json:"tiktok"`
}

// Advertisement is the central listing entity. Media entries are logical
// references (paths or URLs), never raw bytes, and their order is display order.
type Advertisement struct {
	ID            string      `bson:"id" json:"id"`
	NameAr        string      `bson:"nameAr" json:"nameAr"`
	NameEn        string      `bson:"nameEn" json:"nameEn"`
	DescriptionAr string      `bson:"descriptionAr" json:"descriptionAr"`
	DescriptionEn string      `bson:"descriptionEn" json:"descriptionEn"`
	Images        []string    `bson:"images" json:"images"`
	Videos        []string    `bson:"videos" json:"videos"`
	Category      Category    `bson:"category" json:"category"`
	SubCategory   SubCategory `bson:"subCategory" json:"subCategory"`
	Governorate   Governorate `bson:"governorate" json:"governorate"`
	Audience      []string    `bson:"audience,omitempty" json:"audience,omitempty"`
	SocialMedia   SocialMedia `bson:"socialMedia" json:"socialMedia"`

	SubscriptionEndDate time.Time `bson:"subscriptionEndDate" json:"subscriptionEndDate"`
	IsActive            bool      `bson:"isActive" json:"isActive"`
	DisplayOrder        int       `bson:"displayOrder" json:"displayOrder"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AdvertisementView is the public read shape: the entity plus the computed
// category key. The key is derived at read time and never persisted.
type AdvertisementView struct {
	Advertisement
	CategoryKey string `json:"category_key"`
}
