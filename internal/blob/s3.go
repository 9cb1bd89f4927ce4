package blob

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds explicit construction parameters for the S3 store.
// Credentials fall back to the default chain when not set.
type S3Config struct {
	Region          string
	Bucket          string
	Endpoint        string // optional; enables a custom endpoint (e.g. MinIO)
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
	PresignExpiry   time.Duration // default 15m
}

// S3Store implements Store against an S3-compatible backend. Single
// bucket; keys map to object keys directly.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
}

// NewS3 creates an S3 blob store from cfg.
func NewS3(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		expiry:  expiry,
	}, nil
}

// Driver returns DriverS3.
func (s *S3Store) Driver() Driver {
	return DriverS3
}

// Upload stores the blob with PutObject.
func (s *S3Store) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", key, err)
	}
	return nil
}

// ResolveURL returns a time-limited presigned GET URL for the key.
func (s *S3Store) ResolveURL(ctx context.Context, key string) (string, error) {
	out, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign blob %s: %w", key, err)
	}
	return out.URL, nil
}
