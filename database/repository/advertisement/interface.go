package adRepo

import (
	"time"

	"github.com/bol3ezzz/spalux-backend/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PublicQuery captures the filter knobs of the public listing endpoint.
// Zero-valued fields are not applied.
type PublicQuery struct {
	Category    string
	SubCategory string
	Governorate string
	Audience    string
	Limit       int64
	Skip        int64
	Now         time.Time
}

// AdvertisementRepository defines advertisement persistence operations.
type AdvertisementRepository interface {
	Create(ad *models.Advertisement) error
	GetByID(id string) (*models.Advertisement, error)
	Update(id string, set bson.M) (*models.Advertisement, error)
	Delete(id string) error
	GetAll() ([]models.Advertisement, error)

	FindPublic(q PublicQuery) ([]models.Advertisement, error)
	CountPublic(q PublicQuery) (int64, error)
	RandomPublic(q PublicQuery) (*models.Advertisement, error)

	DeactivateExpired(now time.Time) (int64, error)
}
