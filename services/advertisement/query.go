package advertisement

import (
	"context"
	"strconv"
	"time"

	adRepo "github.com/bol3ezzz/spalux-backend/database/repository/advertisement"
	"github.com/bol3ezzz/spalux-backend/models"
)

// Pagination defaults for the public listing endpoint.
const (
	DefaultLimit = 50
	DefaultSkip  = 0
)

// ParsePagination coerces the string limit/skip query parameters. Missing,
// non-numeric or negative input falls back to the defaults; it never fails
// the query.
func ParsePagination(limit, skip string) (int64, int64) {
	l := int64(DefaultLimit)
	if v, err := strconv.ParseInt(limit, 10, 64); err == nil && v > 0 {
		l = v
	}
	s := int64(DefaultSkip)
	if v, err := strconv.ParseInt(skip, 10, 64); err == nil && v > 0 {
		s = v
	}
	return l, s
}

// toView shapes an entity for the public boundary: media references run
// through the path resolver and the category key is computed. Raw stored
// paths never leave this component.
func (s *DefaultAdvertisementService) toView(ad models.Advertisement) models.AdvertisementView {
	ad.Images = s.Resolver.ResolveAll(ad.Images)
	ad.Videos = s.Resolver.ResolveAll(ad.Videos)
	return models.AdvertisementView{
		Advertisement: ad,
		CategoryKey:   CategoryKey(string(ad.SubCategory), string(ad.Category)),
	}
}

func (s *DefaultAdvertisementService) toViews(ads []models.Advertisement) []models.AdvertisementView {
	views := make([]models.AdvertisementView, 0, len(ads))
	for _, ad := range ads {
		views = append(views, s.toView(ad))
	}
	return views
}

func (s *DefaultAdvertisementService) list(q adRepo.PublicQuery) (*ListResult, error) {
	ads, err := s.Repo.FindPublic(q)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.CountPublic(q)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Data:  s.toViews(ads),
		Count: len(ads),
		Total: total,
	}, nil
}

// List returns the public page of active, non-expired advertisements.
func (s *DefaultAdvertisementService) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	limit, skip := ParsePagination(q.Limit, q.Skip)
	return s.list(adRepo.PublicQuery{
		Category:    q.Category,
		SubCategory: q.SubCategory,
		Governorate: q.Governorate,
		Audience:    q.Audience,
		Limit:       limit,
		Skip:        skip,
		Now:         time.Now().UTC(),
	})
}

// ListByCategory lists every visible advertisement of one category, without
// pagination.
func (s *DefaultAdvertisementService) ListByCategory(ctx context.Context, category string, q ListQuery) (*ListResult, error) {
	return s.list(adRepo.PublicQuery{
		Category:    category,
		SubCategory: q.SubCategory,
		Governorate: q.Governorate,
		Audience:    q.Audience,
		Now:         time.Now().UTC(),
	})
}

// GetPublicByID returns one advertisement in its public shape, or
// (nil, nil) when it does not exist.
func (s *DefaultAdvertisementService) GetPublicByID(ctx context.Context, id string) (*models.AdvertisementView, error) {
	if cached := s.Cache.Get(ctx, id); cached != nil {
		view := s.toView(*cached)
		return &view, nil
	}

	ad, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, nil
	}

	s.Cache.Set(ctx, ad)
	view := s.toView(*ad)
	return &view, nil
}

// Random draws a single advertisement uniformly from the visible set.
// Returns (nil, nil) when nothing is visible.
func (s *DefaultAdvertisementService) Random(ctx context.Context) (*models.AdvertisementView, error) {
	ad, err := s.Repo.RandomPublic(adRepo.PublicQuery{Now: time.Now().UTC()})
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, nil
	}
	view := s.toView(*ad)
	return &view, nil
}
