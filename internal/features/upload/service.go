package upload

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	appconfig "go-ngo/internal/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

type UploadService interface {
	// UploadFile stores the buffer under <folder>/<uuid><ext> and returns
	// the public URL.
	UploadFile(ctx context.Context, data []byte, fileName, folder string) (string, error)
}

type UploadServiceImpl struct {
	Client   *s3.Client
	Bucket   string
	Endpoint string
}

func NewUploadService(cfg *appconfig.Config) (UploadService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = &cfg.S3Endpoint
		}
	})

	return &UploadServiceImpl{
		Client:   client,
		Bucket:   cfg.S3Bucket,
		Endpoint: strings.TrimRight(cfg.S3Endpoint, "/"),
	}, nil
}

func (s *UploadServiceImpl) UploadFile(ctx context.Context, data []byte, fileName, folder string) (string, error) {
	if folder == "" {
		folder = "uploads"
	}
	ext := filepath.Ext(fileName)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)
	contentType := ContentTypeForExt(ext)

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.Endpoint, s.Bucket, key), nil
}

func ContentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
