package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// MaxFileSize is the per-file upload ceiling.
const MaxFileSize = 100 << 20 // 100 MiB

// Per-request field limits.
const (
	MaxImagesPerRequest = 10
	MaxVideosPerRequest = 2
)

// ErrFileTooLarge is returned when an upload exceeds MaxFileSize. Unlike a
// disallowed MIME type, an oversized file aborts its upload with a client
// error instead of being dropped silently.
var ErrFileTooLarge = errors.New("file exceeds maximum allowed size")

// allowedMimeTypes is the fixed media allow-list.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/quicktime": true,
}

// MimeType returns the declared content type of an upload, falling back to
// the filename extension when the part carries no Content-Type header.
func MimeType(file *multipart.FileHeader) string {
	ct := file.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(filepath.Ext(file.Filename))
	}
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(strings.ToLower(ct))
}

// Allowed reports whether the MIME type is on the media allow-list.
func Allowed(mimeType string) bool {
	return allowedMimeTypes[mimeType]
}

// IsVideo reports whether the MIME type denotes a video upload.
func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, "video/")
}

// StoreAll runs every upload of one field through the intake policy and the
// given backend, returning references in upload order. Files with a
// disallowed MIME type are filtered out, not errors. An oversized file fails
// the request before any of it is written.
func StoreAll(ctx context.Context, backend Backend, files []*multipart.FileHeader, field string, logger *zap.Logger) ([]string, error) {
	refs := make([]string, 0, len(files))
	for _, file := range files {
		mt := MimeType(file)
		if !Allowed(mt) {
			logger.Warn("Rejected upload with disallowed MIME type",
				zap.String("field", field),
				zap.String("filename", file.Filename),
				zap.String("mimeType", mt))
			continue
		}
		if file.Size > MaxFileSize {
			return nil, fmt.Errorf("%s: %w", file.Filename, ErrFileTooLarge)
		}
		ref, err := backend.Store(ctx, file, field)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", file.Filename, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
