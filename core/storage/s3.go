package storage

import (
	"context"
	"time"

	"internhub/core/config"
	"internhub/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type IStorage interface {
	PresignDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type Storage struct {
	presign *s3.PresignClient
	bucket  string
}

func InitStorage(cfg config.AWSConfig) *Storage {
	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	})

	logger.Info("S3 storage initialized", "region", cfg.Region, "bucket", cfg.Bucket)
	return &Storage{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
	}
}

// PresignDownloadURL returns a time-limited GET URL for an object.
func (s *Storage) PresignDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		logger.Error("Storage:PresignDownloadURL:Error:", err, "key", key)
		return "", err
	}
	return req.URL, nil
}
