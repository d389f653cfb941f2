package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadedFile builds a real multipart part so the header can be opened.
func uploadedFile(t *testing.T, field, filename, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestNewDiskBackendCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	b, err := NewDiskBackend(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)

	// Idempotent on an existing directory.
	again, err := NewDiskBackend(dir)
	require.NoError(t, err)
	assert.Equal(t, b.Dir(), again.Dir())
}

func TestDiskStoreWritesFile(t *testing.T) {
	dir := t.TempDir()
	b, err := NewDiskBackend(dir)
	require.NoError(t, err)

	fh := uploadedFile(t, "images", "photo.jpg", "image/jpeg", []byte("jpeg-bytes"))
	ref, err := b.Store(context.Background(), fh, "images")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/images-"), ref)
	assert.True(t, strings.HasSuffix(ref, ".jpg"), ref)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestFileNameCollisionFree(t *testing.T) {
	now := time.Now()
	a := FileName("images", "x.jpg", now, 1)
	b := FileName("images", "x.jpg", now, 2)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "images-"))
	assert.True(t, strings.HasSuffix(a, ".jpg"))
}

func TestFileNameKeepsExtension(t *testing.T) {
	name := FileName("videos", "clip.tour.mov", time.Now(), 7)
	assert.True(t, strings.HasSuffix(name, ".mov"), name)

	noExt := FileName("images", "raw", time.Now(), 7)
	assert.False(t, strings.Contains(noExt, "."), noExt)
}

func TestDiskDeleteRemovesFile(t *testing.T) {
	dir := t.TempDir()
	b, err := NewDiskBackend(dir)
	require.NoError(t, err)

	fh := uploadedFile(t, "images", "gone.png", "image/png", []byte("png"))
	ref, err := b.Store(context.Background(), fh, "images")
	require.NoError(t, err)

	require.NoError(t, b.Delete(context.Background(), ref))
	_, statErr := os.Stat(filepath.Join(dir, strings.TrimPrefix(ref, "/uploads/")))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting an already absent or foreign reference is not an error.
	assert.NoError(t, b.Delete(context.Background(), ref))
	assert.NoError(t, b.Delete(context.Background(), "https://cdn.example/a.jpg"))
}
