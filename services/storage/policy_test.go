package storage

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fileHeader fabricates an upload part without a body; StoreAll only
// inspects the header and size before handing the part to the backend.
func fileHeader(filename, contentType string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: filename,
		Header:   h,
		Size:     size,
	}
}

type fakeBackend struct {
	stored []string
}

func (f *fakeBackend) Store(ctx context.Context, file *multipart.FileHeader, field string) (string, error) {
	ref := "/uploads/" + field + "-" + file.Filename
	f.stored = append(f.stored, ref)
	return ref, nil
}

func (f *fakeBackend) Delete(ctx context.Context, ref string) error { return nil }

func TestAllowedMimeTypes(t *testing.T) {
	for _, mt := range []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp",
		"video/mp4", "video/quicktime",
	} {
		assert.True(t, Allowed(mt), mt)
	}
	for _, mt := range []string{
		"image/gif", "application/pdf", "text/html", "video/webm", "",
	} {
		assert.False(t, Allowed(mt), mt)
	}
}

func TestMimeTypeFallsBackToExtension(t *testing.T) {
	assert.Equal(t, "image/png", MimeType(fileHeader("a.png", "", 1)))
	assert.Equal(t, "video/mp4", MimeType(fileHeader("b.mp4", "", 1)))
	// Declared content type wins, parameters are stripped.
	assert.Equal(t, "image/jpeg", MimeType(fileHeader("c.png", "image/jpeg; charset=binary", 1)))
}

func TestStoreAllFiltersDisallowedMime(t *testing.T) {
	backend := &fakeBackend{}
	files := []*multipart.FileHeader{
		fileHeader("a.jpg", "image/jpeg", 100),
		fileHeader("b.pdf", "application/pdf", 100),
		fileHeader("c.png", "image/png", 100),
	}

	refs, err := StoreAll(context.Background(), backend, files, "images", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/images-a.jpg", "/uploads/images-c.png"}, refs)
}

func TestStoreAllRejectsOversizeFile(t *testing.T) {
	backend := &fakeBackend{}
	files := []*multipart.FileHeader{
		fileHeader("a.jpg", "image/jpeg", 100),
		fileHeader("huge.mp4", "video/mp4", MaxFileSize+1),
	}

	_, err := StoreAll(context.Background(), backend, files, "videos", zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestStoreAllEmptyInput(t *testing.T) {
	backend := &fakeBackend{}

	refs, err := StoreAll(context.Background(), backend, nil, "images", zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestStoreAllPreservesUploadOrder(t *testing.T) {
	backend := &fakeBackend{}
	files := []*multipart.FileHeader{
		fileHeader("1.jpg", "image/jpeg", 10),
		fileHeader("2.jpg", "image/jpeg", 10),
		fileHeader("3.jpg", "image/jpeg", 10),
	}

	refs, err := StoreAll(context.Background(), backend, files, "images", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/uploads/images-1.jpg",
		"/uploads/images-2.jpg",
		"/uploads/images-3.jpg",
	}, refs)
}
