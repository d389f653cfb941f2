package advertisement

import (
	"context"
	"mime/multipart"

	"github.com/bol3ezzz/spalux-backend/models"
)

// CreateAdvertisementInput carries a multipart create request.
type CreateAdvertisementInput struct {
	NameAr        string
	NameEn        string
	DescriptionAr string
	DescriptionEn string

	Category    string
	SubCategory string
	Governorate string
	Audience    []string

	SubscriptionEndDate string
	DisplayOrder        string

	Social SocialPatch

	Images []*multipart.FileHeader
	Videos []*multipart.FileHeader
}

// UpdateAdvertisementInput carries a partial update. Nil pointers mean the
// field was not present in the request and keeps its stored value.
type UpdateAdvertisementInput struct {
	NameAr        *string
	NameEn        *string
	DescriptionAr *string
	DescriptionEn *string

	Category    *string
	SubCategory *string
	Governorate *string
	Audience    *[]string

	SubscriptionEndDate *string
	DisplayOrder        *string
	IsActive            *bool

	Social SocialPatch

	// Kept-media channels: raw JSON arrays of references the client retains.
	// Nil means the channel was not used and the full current array is kept.
	ExistingImages *string
	ExistingVideos *string

	Images []*multipart.FileHeader
	Videos []*multipart.FileHeader
}

// SocialPatch is a partial update of the contact/social block. The stored
// block is rebuilt wholesale from (old value, patch); nil fields keep the
// old value.
type SocialPatch struct {
	Twitter   *string
	Instagram *string
	Facebook  *string
	Snapchat  *string
	Whatsapp  *string
	Phone     *string
	Website   *string
	MapLink   *string
	Tiktok    *string
}

// ListQuery carries the raw public listing filters. Limit and Skip arrive as
// strings and are coerced defensively.
type ListQuery struct {
	Category    string
	SubCategory string
	Governorate string
	Audience    string
	Limit       string
	Skip        string
}

// ListResult is the shaped public listing response.
type ListResult struct {
	Data  []models.AdvertisementView
	Count int
	Total int64
}

// AdvertisementService defines advertisement business operations.
type AdvertisementService interface {
	Create(ctx context.Context, in CreateAdvertisementInput) (*models.Advertisement, error)
	Update(ctx context.Context, id string, in UpdateAdvertisementInput) (*models.Advertisement, error)
	Toggle(ctx context.Context, id string) (*models.Advertisement, error)
	Delete(ctx context.Context, id string) error
	GetAllAdmin() ([]models.Advertisement, error)

	List(ctx context.Context, q ListQuery) (*ListResult, error)
	ListByCategory(ctx context.Context, category string, q ListQuery) (*ListResult, error)
	GetPublicByID(ctx context.Context, id string) (*models.AdvertisementView, error)
	Random(ctx context.Context) (*models.AdvertisementView, error)
}
