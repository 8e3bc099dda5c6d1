package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Config carries the settings needed to reach the image bucket.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	BaseURL   string
	AccessKey string
	SecretKey string
}

// S3ImageStore stores uploaded images in an S3 bucket under
// <folder>/<uuid><ext> keys.
type S3ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3ImageStore builds the S3 client from config and static credentials
// when provided, otherwise the default credential chain.
func NewS3ImageStore(ctx context.Context, cfg S3Config) (*S3ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.Endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.Endpoint, "/"), cfg.Bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.Bucket)
		}
	}

	return &S3ImageStore{client: client, bucket: cfg.Bucket, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// UploadImage validates the file, writes it to the bucket and returns its
// public URL.
func (s *S3ImageStore) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if err := ValidateImage(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), strings.ToLower(filepath.Ext(file.Filename)))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("s3 PutObject failed: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}
