package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskBackend stores uploads under a local directory served statically at
// /uploads. It is the fallback when no remote credentials are configured.
type DiskBackend struct {
	dir string
}

// NewDiskBackend ensures the uploads directory exists and returns a backend
// writing into it. Creation is recursive and idempotent.
func NewDiskBackend(dir string) (*DiskBackend, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", dir, err)
	}
	return &DiskBackend{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (b *DiskBackend) Dir() string {
	return b.dir
}

// FileName builds a collision-free name for a stored upload. The millisecond
// timestamp plus an independent random suffix keeps concurrent uploads from
// clashing without any shared counter.
func FileName(field, original string, now time.Time, random int64) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%d-%09d%s", field, now.UnixMilli(), random, ext)
}

func (b *DiskBackend) Store(ctx context.Context, file *multipart.FileHeader, field string) (string, error) {
	name := FileName(field, file.Filename, time.Now(), rand.Int63n(1_000_000_000))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(b.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/" + name, nil
}

// Delete removes a previously stored file. References this backend did not
// produce (absolute URLs) are ignored.
func (b *DiskBackend) Delete(ctx context.Context, ref string) error {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(ref, "/uploads/"))
	if name == "" || name == "." {
		return nil
	}
	if err := os.Remove(filepath.Join(b.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", name, err)
	}
	return nil
}
