package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// folderPrefix is the logical prefix all remote uploads live under,
// partitioned into images/ and videos/ by MIME type.
const folderPrefix = "spalux"

// CloudinaryBackend stores uploads in Cloudinary and returns absolute
// secure URLs as references.
type CloudinaryBackend struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryBackend initializes the remote storage backend.
func NewCloudinaryBackend(cloudName, apiKey, apiSecret string) (*CloudinaryBackend, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryBackend{cld: cld}, nil
}

var publicIDUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// PublicID derives a unique object name from the upload time and a
// sanitized base filename.
func PublicID(original string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = publicIDUnsafe.ReplaceAllString(base, "_")
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}

func (b *CloudinaryBackend) Store(ctx context.Context, file *multipart.FileHeader, field string) (string, error) {
	mt := MimeType(file)
	folder := folderPrefix + "/images"
	resourceType := "image"
	if IsVideo(mt) {
		folder = folderPrefix + "/videos"
		resourceType = "video"
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	resp, err := b.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:       folder,
		PublicID:     PublicID(file.Filename, time.Now()),
		ResourceType: resourceType,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return resp.SecureURL, nil
}

// Delete destroys a previously uploaded asset. References this backend did
// not produce are ignored.
func (b *CloudinaryBackend) Delete(ctx context.Context, ref string) error {
	publicID, resourceType, ok := parseCloudinaryURL(ref)
	if !ok {
		return nil
	}
	_, err := b.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return nil
}

// parseCloudinaryURL extracts the public ID and resource type from a
// delivery URL of the form
// https://res.cloudinary.com/<cloud>/<type>/upload/v<n>/<public-id>.<ext>.
func parseCloudinaryURL(ref string) (publicID, resourceType string, ok bool) {
	if !strings.Contains(ref, "res.cloudinary.com/") {
		return "", "", false
	}
	parts := strings.Split(ref, "/upload/")
	if len(parts) != 2 {
		return "", "", false
	}

	head := strings.Split(strings.TrimSuffix(parts[0], "/"), "/")
	resourceType = head[len(head)-1]
	if resourceType != "image" && resourceType != "video" {
		return "", "", false
	}

	tail := parts[1]
	if strings.HasPrefix(tail, "v") {
		// Drop the version segment.
		if _, rest, found := strings.Cut(tail, "/"); found {
			tail = rest
		}
	}
	publicID = strings.TrimSuffix(tail, filepath.Ext(tail))
	if publicID == "" {
		return "", "", false
	}
	return publicID, resourceType, true
}
