package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"lms_backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService stores completion certificates in a MinIO bucket.
type StorageService struct {
	client   *minio.Client
	endpoint string
	bucket   string
	useSSL   bool
}

// NewStorageService returns nil without error when no endpoint is
// configured; certificate upload is then disabled.
func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.Storage.MinioEndpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
		Secure: cfg.Storage.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &StorageService{
		client:   client,
		endpoint: cfg.Storage.MinioEndpoint,
		bucket:   cfg.Storage.MinioBucket,
		useSSL:   cfg.Storage.MinioUseSSL,
	}, nil
}

// UploadCertificate stores the file under a fresh object name and returns
// the public URL to persist on the progress row.
func (s *StorageService) UploadCertificate(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error) {
	objectName := "certificates/" + uuid.New().String() + filepath.Ext(filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName), nil
}
