package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	appconfig "portfolio-backend/internal/config"
	"portfolio-backend/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Storage implements ObjectStorage against an S3-compatible bucket
type S3Storage struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
	log           *logger.Logger
}

// NewS3Storage creates an S3 storage client from application configuration.
// A non-empty StorageEndpoint switches to path-style addressing for
// S3-compatible stores (MinIO, localstack).
func NewS3Storage(ctx context.Context, cfg *appconfig.Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.StorageRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.StorageEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.StorageEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:        client,
		bucket:        cfg.StorageBucket,
		region:        cfg.StorageRegion,
		publicBaseURL: strings.TrimRight(cfg.StoragePublicBaseURL, "/"),
		log:           logger.WithComponent("s3"),
	}, nil
}

// Upload pushes the buffer to the bucket under a generated key within the
// given folder and returns the resulting public URL
func (s *S3Storage) Upload(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), extensionFor(contentType))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}

	url := s.publicURL(key)
	s.log.WithFields(map[string]interface{}{"key": key, "bytes": len(data)}).Debug("uploaded object")
	return url, nil
}

func (s *S3Storage) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// extensionFor maps the allowed image content types to file extensions
func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
