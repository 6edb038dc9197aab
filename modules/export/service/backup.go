package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gosimple/slug"

	"go-calendar-api/core/config"
	"go-calendar-api/core/constants"
	"go-calendar-api/core/logger"
)

// Uploader stores a rendered backup payload. Implemented by S3Backup.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte) error
}

// S3Backup uploads calendar backups to an S3 bucket.
type S3Backup struct {
	client *s3.Client
	bucket string
}

// NewS3Backup creates an uploader from static credentials.
func NewS3Backup(cfg config.BackupConfig) *S3Backup {
	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	})

	return &S3Backup{
		client: client,
		bucket: cfg.Bucket,
	}
}

func (b *S3Backup) Upload(ctx context.Context, key string, body []byte) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(constants.ICSContentType),
	})
	if err != nil {
		logger.Error("S3Backup:Upload", err, "bucket", b.bucket, "key", key)
		return err
	}

	logger.Info("S3Backup:Upload completed", "bucket", b.bucket, "key", key, "bytes", len(body))
	return nil
}

// BackupObjectKey builds the dated object key for one backup run.
func BackupObjectKey(name string, t time.Time) string {
	return fmt.Sprintf("%s/%s-%s.ics", constants.BackupObjectPrefix, slug.Make(name), t.Format("2006-01-02"))
}
