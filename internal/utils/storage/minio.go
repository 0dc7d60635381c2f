package storage

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"agrifusion/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL overrides the scheme://endpoint/bucket link base.
	PublicURL string
	MaxSize   int64
}

type MinioStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
	maxSize int64
}

func NewMinioStorage(cfg MinioConfig) (*MinioStorage, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: initializing minio client: %v", domain.ErrStorage, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: checking bucket %s: %v", domain.ErrStorage, cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%w: creating bucket %s: %v", domain.ErrStorage, cfg.Bucket, err)
		}
		log.Printf("Created bucket: %s", cfg.Bucket)
	}

	baseURL := strings.TrimRight(cfg.PublicURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket)
	}

	return &MinioStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		maxSize: cfg.MaxSize,
	}, nil
}

func (m *MinioStorage) UploadFile(file *multipart.FileHeader, folder string, allow ...string) (string, error) {
	info, err := Inspect(file, m.maxSize, allow...)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	defer src.Close()

	objectKey := NewObjectKey(folder, info.Ext)
	_, err = m.client.PutObject(context.Background(), m.bucket, objectKey, src, info.Size,
		minio.PutObjectOptions{ContentType: info.MimeType})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %v", domain.ErrStorage, objectKey, err)
	}
	return objectKey, nil
}

// DeleteFile relies on RemoveObject succeeding for absent keys.
func (m *MinioStorage) DeleteFile(objectKey string) error {
	if err := m.client.RemoveObject(context.Background(), m.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("%w: delete %s: %v", domain.ErrStorage, objectKey, err)
	}
	return nil
}

func (m *MinioStorage) GetPublicLinkKey(objectKey string) string {
	return m.baseURL + "/" + objectKey
}

func (m *MinioStorage) GetObjectKeyFromLink(link string) string {
	prefix := m.baseURL + "/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
