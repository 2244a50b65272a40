package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("object not found")

// Storage - хранилище загруженных медиафайлов
type Storage interface {
	// Save stores an object under key
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Open returns the object body; caller closes it
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// URL returns a public URL for the object
	URL(key string) string
}

// Config holds storage configuration
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // For local storage
	BaseURL    string // Public URL base
	Bucket     string // For S3/R2
	Region     string // For S3
	AccessKey  string // For S3/R2
	SecretKey  string // For S3/R2
	Endpoint   string // For R2 or custom S3
	UseSSL     bool   // For S3/R2
	PublicRead bool   // Make files public by default
}

// NewStorage creates a storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// NewObjectKey: media/<profileID>/<uuid><ext>
func NewObjectKey(profileID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) > 10 {
		ext = ""
	}
	return path.Join("media", profileID, uuid.NewString()+ext)
}

// ThumbnailKey: media/p/abc.png -> media/p/abc_thumb.jpg
func ThumbnailKey(key string) string {
	ext := path.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb.jpg"
}

// cleanKey не дает выйти за пределы корня хранилища ("../../etc/passwd")
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return cleaned, nil
}
