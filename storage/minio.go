package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"ifphub/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage keeps the image files referenced by the imagen field of a
// noticia. Uploads land under a uuid object key; callers get back a
// presigned URL they can store as-is.
type Storage interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	cfg    config.MinIOConfig
}

func NewMinIOClient(cfg config.MinIOConfig) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

func (m *MinIOClient) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("noticias/%d/%02d/%s%s",
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("minio upload: %w", err)
	}

	presigned, err := m.client.PresignedGetObject(ctx, m.cfg.BucketName, objectName, m.cfg.URLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("minio presign: %w", err)
	}

	return presigned.String(), nil
}
