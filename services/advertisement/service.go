package advertisement

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	adRepo "github.com/bol3ezzz/spalux-backend/database/repository/advertisement"
	"github.com/bol3ezzz/spalux-backend/models"
	"github.com/bol3ezzz/spalux-backend/services/storage"
	"github.com/bol3ezzz/spalux-backend/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultAdvertisementService implements AdvertisementService.
type DefaultAdvertisementService struct {
	Repo     adRepo.AdvertisementRepository
	Storage  storage.Backend
	Resolver PathResolver
	Cache    *AdCache
}

// parseEndDate accepts full RFC 3339 timestamps and bare dates.
func parseEndDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func validateCreate(in CreateAdvertisementInput) []FieldError {
	var errs []FieldError
	required := []struct {
		field, value string
	}{
		{"nameAr", in.NameAr},
		{"nameEn", in.NameEn},
		{"descriptionAr", in.DescriptionAr},
		{"descriptionEn", in.DescriptionEn},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, FieldError{Field: r.field, Message: "is required"})
		}
	}

	if !models.Category(in.Category).Valid() {
		errs = append(errs, FieldError{Field: "category", Message: "invalid category"})
	}
	if !models.SubCategory(in.SubCategory).Valid() {
		errs = append(errs, FieldError{Field: "subCategory", Message: "invalid sub-category"})
	}
	if !models.Governorate(in.Governorate).Valid() {
		errs = append(errs, FieldError{Field: "governorate", Message: "invalid governorate"})
	}

	if _, err := parseEndDate(in.SubscriptionEndDate); err != nil {
		errs = append(errs, FieldError{Field: "subscriptionEndDate", Message: "invalid subscription end date"})
	}
	if in.DisplayOrder != "" {
		if _, err := strconv.Atoi(in.DisplayOrder); err != nil {
			errs = append(errs, FieldError{Field: "displayOrder", Message: "must be an integer"})
		}
	}
	if len(in.Images) == 0 {
		errs = append(errs, FieldError{Field: "images", Message: "at least one image is required"})
	}
	return errs
}

// mergeSocial rebuilds the contact block wholesale from the stored value and
// the patch, so the merge is total and order-independent.
func mergeSocial(old models.SocialMedia, p SocialPatch) models.SocialMedia {
	pick := func(patch *string, old string) string {
		if patch != nil {
			return strings.TrimSpace(*patch)
		}
		return old
	}
	return models.SocialMedia{
		Twitter:   pick(p.Twitter, old.Twitter),
		Instagram: pick(p.Instagram, old.Instagram),
		Facebook:  pick(p.Facebook, old.Facebook),
		Snapchat:  pick(p.Snapchat, old.Snapchat),
		Whatsapp:  pick(p.Whatsapp, old.Whatsapp),
		Phone:     pick(p.Phone, old.Phone),
		Website:   pick(p.Website, old.Website),
		MapLink:   pick(p.MapLink, old.MapLink),
		Tiktok:    pick(p.Tiktok, old.Tiktok),
	}
}

func (s *DefaultAdvertisementService) Create(ctx context.Context, in CreateAdvertisementInput) (*models.Advertisement, error) {
	logger := utils.GetLogger()

	if errs := validateCreate(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	images, err := storage.StoreAll(ctx, s.Storage, in.Images, "images", logger)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, &ValidationError{Fields: []FieldError{
			{Field: "images", Message: "at least one image is required"},
		}}
	}
	videos, err := storage.StoreAll(ctx, s.Storage, in.Videos, "videos", logger)
	if err != nil {
		return nil, err
	}

	endDate, _ := parseEndDate(in.SubscriptionEndDate)
	displayOrder := 0
	if in.DisplayOrder != "" {
		displayOrder, _ = strconv.Atoi(in.DisplayOrder)
	}

	ad := &models.Advertisement{
		ID:                  uuid.NewString(),
		NameAr:              strings.TrimSpace(in.NameAr),
		NameEn:              strings.TrimSpace(in.NameEn),
		DescriptionAr:       strings.TrimSpace(in.DescriptionAr),
		DescriptionEn:       strings.TrimSpace(in.DescriptionEn),
		Images:              images,
		Videos:              videos,
		Category:            models.Category(in.Category),
		SubCategory:         models.SubCategory(in.SubCategory),
		Governorate:         models.Governorate(in.Governorate),
		Audience:            in.Audience,
		SocialMedia:         mergeSocial(models.SocialMedia{}, in.Social),
		SubscriptionEndDate: endDate,
		IsActive:            true,
		DisplayOrder:        displayOrder,
	}

	if err := s.Repo.Create(ad); err != nil {
		return nil, err
	}

	logger.Info("Advertisement created",
		zap.String("id", ad.ID),
		zap.Int("images", len(ad.Images)),
		zap.Int("videos", len(ad.Videos)))
	return ad, nil
}

func validateUpdate(in UpdateAdvertisementInput) []FieldError {
	var errs []FieldError
	if in.Category != nil && !models.Category(*in.Category).Valid() {
		errs = append(errs, FieldError{Field: "category", Message: "invalid category"})
	}
	if in.SubCategory != nil && !models.SubCategory(*in.SubCategory).Valid() {
		errs = append(errs, FieldError{Field: "subCategory", Message: "invalid sub-category"})
	}
	if in.Governorate != nil && !models.Governorate(*in.Governorate).Valid() {
		errs = append(errs, FieldError{Field: "governorate", Message: "invalid governorate"})
	}
	if in.SubscriptionEndDate != nil {
		if _, err := parseEndDate(*in.SubscriptionEndDate); err != nil {
			errs = append(errs, FieldError{Field: "subscriptionEndDate", Message: "invalid subscription end date"})
		}
	}
	if in.DisplayOrder != nil {
		if _, err := strconv.Atoi(*in.DisplayOrder); err != nil {
			errs = append(errs, FieldError{Field: "displayOrder", Message: "must be an integer"})
		}
	}
	return errs
}

func (s *DefaultAdvertisementService) Update(ctx context.Context, id string, in UpdateAdvertisementInput) (*models.Advertisement, error) {
	logger := utils.GetLogger()

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	if errs := validateUpdate(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	newImages, err := storage.StoreAll(ctx, s.Storage, in.Images, "images", logger)
	if err != nil {
		return nil, err
	}
	newVideos, err := storage.StoreAll(ctx, s.Storage, in.Videos, "videos", logger)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"images": MergeMedia(current.Images, in.ExistingImages, newImages),
		"videos": MergeMedia(current.Videos, in.ExistingVideos, newVideos),
	}

	setString := func(key string, v *string) {
		if v != nil {
			set[key] = strings.TrimSpace(*v)
		}
	}
	setString("nameAr", in.NameAr)
	setString("nameEn", in.NameEn)
	setString("descriptionAr", in.DescriptionAr)
	setString("descriptionEn", in.DescriptionEn)
	setString("category", in.Category)
	setString("subCategory", in.SubCategory)
	setString("governorate", in.Governorate)

	if in.Audience != nil {
		set["audience"] = *in.Audience
	}
	if in.SubscriptionEndDate != nil {
		endDate, _ := parseEndDate(*in.SubscriptionEndDate)
		set["subscriptionEndDate"] = endDate
	}
	if in.DisplayOrder != nil {
		order, _ := strconv.Atoi(*in.DisplayOrder)
		set["displayOrder"] = order
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	set["socialMedia"] = mergeSocial(current.SocialMedia, in.Social)

	updated, err := s.Repo.Update(id, set)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	s.Cache.Invalidate(ctx, id)
	logger.Info("Advertisement updated", zap.String("id", id))
	return updated, nil
}

func (s *DefaultAdvertisementService) Toggle(ctx context.Context, id string) (*models.Advertisement, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	updated, err := s.Repo.Update(id, bson.M{"isActive": !current.IsActive})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	s.Cache.Invalidate(ctx, id)
	return updated, nil
}

func (s *DefaultAdvertisementService) Delete(ctx context.Context, id string) error {
	logger := utils.GetLogger()

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotFound
	}

	// Stored media is removed best-effort; a failed object delete must not
	// keep the listing alive.
	for _, ref := range append(append([]string{}, current.Images...), current.Videos...) {
		if err := s.Storage.Delete(ctx, ref); err != nil {
			logger.Warn("Failed to delete stored media",
				zap.String("id", id), zap.String("ref", ref), zap.Error(err))
		}
	}

	if err := s.Repo.Delete(id); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete advertisement: %w", err)
	}

	s.Cache.Invalidate(ctx, id)
	logger.Info("Advertisement deleted", zap.String("id", id))
	return nil
}

func (s *DefaultAdvertisementService) GetAllAdmin() ([]models.Advertisement, error) {
	return s.Repo.GetAll()
}
