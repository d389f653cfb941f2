package storage

import (
	"context"
	"mime/multipart"

	"github.com/bol3ezzz/spalux-backend/config"
)

// Backend stores uploaded media files and returns logical references
// (a root-relative path for the disk backend, an absolute URL for the
// remote backend). Request handling never branches on which backend is
// behind the interface.
type Backend interface {
	Store(ctx context.Context, file *multipart.FileHeader, field string) (string, error)
	Delete(ctx context.Context, ref string) error
}

// New selects the storage backend at startup: Cloudinary when all remote
// credentials are configured, the local disk otherwise.
func New() (Backend, error) {
	if config.HasCloudinary() {
		return NewCloudinaryBackend(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		)
	}
	return NewDiskBackend(config.AppConfig.UploadDir)
}
