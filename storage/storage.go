package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrArtifactNotFound is returned when no artifact exists at a storage path
var ErrArtifactNotFound = errors.New("artifact not found")

// Storage archives exported brief artifacts
type Storage interface {
	// Upload stores an artifact and returns its storage path
	Upload(ctx context.Context, exportID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves an artifact by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes an artifact by storage path
	Delete(ctx context.Context, storagePath string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// ConfigFromEnv reads the storage configuration from environment variables
func ConfigFromEnv() (StorageConfig, error) {
	storageType := os.Getenv("STORAGE_TYPE")
	if storageType == "" {
		storageType = string(StorageTypeLocal)
	}

	cfg := StorageConfig{
		Type: StorageType(storageType),
	}

	switch cfg.Type {
	case StorageTypeLocal:
		cfg.LocalPath = os.Getenv("STORAGE_LOCAL_PATH")
		if cfg.LocalPath == "" {
			cfg.LocalPath = "./storage/exports"
		}

	case StorageTypeS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return cfg, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}

	default:
		return cfg, fmt.Errorf("unknown storage type: %s", storageType)
	}

	return cfg, nil
}

// NewStorageFromEnv creates a storage instance from environment variables
func NewStorageFromEnv() (Storage, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewStorage(cfg)
}

// generateStoragePath builds the archive key for an export artifact
func generateStoragePath(exportID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filename, ext)
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")

	id := exportID.String()
	return fmt.Sprintf("exports/%s/%s_%s%s", id[:2], id, baseName, ext)
}

// archiveCacheControl marks archived exports as private and never rewritten
const archiveCacheControl = "private, max-age=31536000, immutable"

// contentDispositionFor makes archived exports download under their export filename
func contentDispositionFor(filename string) string {
	name := strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(filepath.Base(filename))
	return fmt.Sprintf("attachment; filename=\"%s\"", name)
}

// contentTypeFor determines content type from an artifact filename
func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	case ".doc":
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}
