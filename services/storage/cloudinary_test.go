package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDSanitizesBaseName(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	id := PublicID("my photo (1).jpg", now)
	assert.Equal(t, "1700000000000-my_photo_1_", id)

	// The extension never leaks into the object name.
	assert.False(t, strings.Contains(id, ".jpg"))
}

func TestPublicIDEmptyBase(t *testing.T) {
	now := time.UnixMilli(42)
	assert.Equal(t, "42-file", PublicID(".jpg", now))
}

func TestParseCloudinaryURL(t *testing.T) {
	publicID, resourceType, ok := parseCloudinaryURL(
		"https://res.cloudinary.com/demo/image/upload/v1700000000/spalux/images/1700-a.jpg")
	assert.True(t, ok)
	assert.Equal(t, "spalux/images/1700-a", publicID)
	assert.Equal(t, "image", resourceType)

	publicID, resourceType, ok = parseCloudinaryURL(
		"https://res.cloudinary.com/demo/video/upload/v1/spalux/videos/1700-b.mp4")
	assert.True(t, ok)
	assert.Equal(t, "spalux/videos/1700-b", publicID)
	assert.Equal(t, "video", resourceType)
}

func TestParseCloudinaryURLForeignRefs(t *testing.T) {
	for _, ref := range []string{
		"/uploads/images-1-000000001.jpg",
		"https://cdn.example/a.jpg",
		"",
	} {
		_, _, ok := parseCloudinaryURL(ref)
		assert.False(t, ok, ref)
	}
}
