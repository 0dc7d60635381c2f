package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"agrifusion/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	MaxSize   int64
}

type AwsS3 struct {
	client  *s3.Client
	bucket  string
	region  string
	maxSize int64
}

func NewAwsS3(cfg S3Config) (*AwsS3, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: AWS_S3_BUCKET and AWS_S3_REGION are required", domain.ErrStorage)
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: loading aws config: %v", domain.ErrStorage, err)
	}

	return &AwsS3{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		maxSize: cfg.MaxSize,
	}, nil
}

func (a *AwsS3) UploadFile(file *multipart.FileHeader, folder string, allow ...string) (string, error) {
	info, err := Inspect(file, a.maxSize, allow...)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFileSystem, err)
	}
	defer src.Close()

	objectKey := NewObjectKey(folder, info.Ext)
	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(objectKey),
		Body:          src,
		ContentLength: aws.Int64(info.Size),
		ContentType:   aws.String(info.MimeType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %v", domain.ErrStorage, objectKey, err)
	}
	return objectKey, nil
}

func (a *AwsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	var noKey *types.NoSuchKey
	if err != nil && !errors.As(err, &noKey) {
		return fmt.Errorf("%w: delete %s: %v", domain.ErrStorage, objectKey, err)
	}
	return nil
}

func (a *AwsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *AwsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
