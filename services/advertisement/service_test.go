package advertisement

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	adRepo "github.com/bol3ezzz/spalux-backend/database/repository/advertisement"
	"github.com/bol3ezzz/spalux-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memRepo is an in-memory AdvertisementRepository for service tests.
type memRepo struct {
	ads     map[string]*models.Advertisement
	lastSet bson.M
}

func newMemRepo() *memRepo {
	return &memRepo{ads: map[string]*models.Advertisement{}}
}

func (r *memRepo) Create(ad *models.Advertisement) error {
	now := time.Now().UTC()
	ad.CreatedAt = now
	ad.UpdatedAt = now
	clone := *ad
	r.ads[ad.ID] = &clone
	return nil
}

func (r *memRepo) GetByID(id string) (*models.Advertisement, error) {
	ad, ok := r.ads[id]
	if !ok {
		return nil, nil
	}
	clone := *ad
	return &clone, nil
}

func (r *memRepo) Update(id string, set bson.M) (*models.Advertisement, error) {
	ad, ok := r.ads[id]
	if !ok {
		return nil, nil
	}
	r.lastSet = set
	if v, ok := set["images"].([]string); ok {
		ad.Images = v
	}
	if v, ok := set["videos"].([]string); ok {
		ad.Videos = v
	}
	if v, ok := set["isActive"].(bool); ok {
		ad.IsActive = v
	}
	if v, ok := set["socialMedia"].(models.SocialMedia); ok {
		ad.SocialMedia = v
	}
	clone := *ad
	return &clone, nil
}

func (r *memRepo) Delete(id string) error {
	delete(r.ads, id)
	return nil
}

func (r *memRepo) GetAll() ([]models.Advertisement, error) {
	var out []models.Advertisement
	for _, ad := range r.ads {
		out = append(out, *ad)
	}
	return out, nil
}

func (r *memRepo) FindPublic(q adRepo.PublicQuery) ([]models.Advertisement, error) {
	return nil, nil
}
func (r *memRepo) CountPublic(q adRepo.PublicQuery) (int64, error)    { return 0, nil }
func (r *memRepo) RandomPublic(q adRepo.PublicQuery) (*models.Advertisement, error) {
	return nil, nil
}
func (r *memRepo) DeactivateExpired(now time.Time) (int64, error) { return 0, nil }

// memStorage resolves uploads to deterministic local refs.
type memStorage struct {
	deleted []string
}

func (s *memStorage) Store(ctx context.Context, file *multipart.FileHeader, field string) (string, error) {
	return "/uploads/" + field + "-" + file.Filename, nil
}

func (s *memStorage) Delete(ctx context.Context, ref string) error {
	s.deleted = append(s.deleted, ref)
	return nil
}

func upload(filename, contentType string) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: filename, Header: h, Size: 1024}
}

func newTestService(repo *memRepo) *DefaultAdvertisementService {
	return &DefaultAdvertisementService{
		Repo:    repo,
		Storage: &memStorage{},
	}
}

func validCreateInput() CreateAdvertisementInput {
	return CreateAdvertisementInput{
		NameAr:              "سبا الفخامة",
		NameEn:              "Luxury Spa",
		DescriptionAr:       "وصف",
		DescriptionEn:       "description",
		Category:            "women",
		SubCategory:         "spa",
		Governorate:         "hawalli",
		SubscriptionEndDate: "2030-01-01",
		Images:              []*multipart.FileHeader{upload("a.jpg", "image/jpeg")},
	}
}

func TestCreateAdvertisement(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	ad, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, ad.ID)
	assert.True(t, ad.IsActive)
	assert.Equal(t, 0, ad.DisplayOrder)
	assert.Equal(t, []string{"/uploads/images-a.jpg"}, ad.Images)
	assert.Empty(t, ad.Videos)
	assert.Equal(t, models.CategoryWomen, ad.Category)
}

func TestCreateCollectsAllViolations(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateAdvertisementInput{
		Category:            "aliens",
		SubCategory:         "spa",
		Governorate:         "hawalli",
		SubscriptionEndDate: "not-a-date",
	})
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)

	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "nameAr")
	assert.Contains(t, fields, "nameEn")
	assert.Contains(t, fields, "descriptionAr")
	assert.Contains(t, fields, "descriptionEn")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "subscriptionEndDate")
	assert.Contains(t, fields, "images")
}

func TestCreateFiltersInvalidVideoKeepsImage(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	in := validCreateInput()
	in.Videos = []*multipart.FileHeader{upload("nasty.exe", "application/octet-stream")}

	ad, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Len(t, ad.Images, 1)
	assert.Empty(t, ad.Videos)
}

func TestCreateFailsWhenAllImagesFiltered(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	in := validCreateInput()
	in.Images = []*multipart.FileHeader{upload("doc.pdf", "application/pdf")}

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "images", ve.Fields[0].Field)
}

func TestUpdateDropsOmittedImage(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	ad, err := svc.Create(context.Background(), CreateAdvertisementInput{
		NameAr: "a", NameEn: "b", DescriptionAr: "c", DescriptionEn: "d",
		Category: "men", SubCategory: "mens_salon", Governorate: "capital",
		SubscriptionEndDate: "2030-01-01",
		Images: []*multipart.FileHeader{
			upload("1.jpg", "image/jpeg"),
			upload("2.jpg", "image/jpeg"),
		},
	})
	require.NoError(t, err)
	require.Len(t, ad.Images, 2)

	kept := `["/uploads/images-1.jpg"]`
	updated, err := svc.Update(context.Background(), ad.ID, UpdateAdvertisementInput{
		ExistingImages: &kept,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/uploads/images-1.jpg"}, updated.Images)
}

func TestUpdateAppendsNewUploadsAfterKept(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	ad, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	kept := `["/uploads/images-a.jpg"]`
	updated, err := svc.Update(context.Background(), ad.ID, UpdateAdvertisementInput{
		ExistingImages: &kept,
		Images:         []*multipart.FileHeader{upload("new.png", "image/png")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/uploads/images-a.jpg", "/uploads/images-new.png"}, updated.Images)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.Update(context.Background(), "missing", UpdateAdvertisementInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRejectsInvalidEnum(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	ad, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	bad := "plasma"
	_, err = svc.Update(context.Background(), ad.ID, UpdateAdvertisementInput{Governorate: &bad})
	require.Error(t, err)
	_, ok := AsValidationError(err)
	assert.True(t, ok)
}

func TestUpdateRebuildsSocialBlock(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	in := validCreateInput()
	phone := "12345678"
	in.Social.Phone = &phone
	ad, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	insta := "@spalux"
	updated, err := svc.Update(context.Background(), ad.ID, UpdateAdvertisementInput{
		Social: SocialPatch{Instagram: &insta},
	})
	require.NoError(t, err)

	// Patched field applied, untouched field preserved.
	assert.Equal(t, "@spalux", updated.SocialMedia.Instagram)
	assert.Equal(t, "12345678", updated.SocialMedia.Phone)
}

func TestToggleFlipsActiveFlag(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	ad, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	require.True(t, ad.IsActive)

	toggled, err := svc.Toggle(context.Background(), ad.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	back, err := svc.Toggle(context.Background(), ad.ID)
	require.NoError(t, err)
	assert.True(t, back.IsActive)
}

func TestDeleteRemovesEntityAndMedia(t *testing.T) {
	repo := newMemRepo()
	store := &memStorage{}
	svc := &DefaultAdvertisementService{Repo: repo, Storage: store}

	ad, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), ad.ID))

	gone, err := repo.GetByID(ad.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Equal(t, []string{"/uploads/images-a.jpg"}, store.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), ad.ID), ErrNotFound)
}
