package imagestore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// S3Store forwards gallery uploads to an S3-compatible image service and
// records the durable URL the service answers with.
type S3Store struct {
	s3Client *s3.Client
	config   *Config
}

// NewS3Store creates a new S3-backed image store
func NewS3Store(cfg *Config) (*S3Store, error) {
	awsConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true // S3-compatible services want path-style URLs
			o.UseAccelerate = false
		}
	})

	st := &S3Store{
		s3Client: s3Client,
		config:   cfg,
	}

	// Test connection
	if _, err := s3Client.HeadBucket(context.Background(), &s3.HeadBucketInput{
		Bucket: aws.String(cfg.BucketName),
	}); err != nil {
		return nil, fmt.Errorf("bucket %s not accessible: %w", cfg.BucketName, err)
	}

	log.Infof("[ImageStore] Using S3 bucket %s for gallery uploads", cfg.BucketName)
	return st, nil
}

// Upload stores the file under the configured gallery folder and returns
// its public URL
func (s *S3Store) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	objectKey := fmt.Sprintf("%s/%s%s", s.config.Folder, uuid.New().String(), ext)

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(objectKey),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	return s.publicURL(objectKey), nil
}

// Delete removes the object backing the given public URL. Unknown URLs
// (uploaded under a different configuration) are left alone.
func (s *S3Store) Delete(ctx context.Context, imagePath string) error {
	objectKey, ok := s.objectKey(imagePath)
	if !ok {
		log.Warnf("[ImageStore] Cannot derive object key from %s, skipping delete", imagePath)
		return nil
	}

	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", objectKey, err)
	}
	return nil
}

func (s *S3Store) publicURL(objectKey string) string {
	if s.config.PublicBaseURL != "" {
		return strings.TrimSuffix(s.config.PublicBaseURL, "/") + "/" + objectKey
	}
	if s.config.EndpointURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.config.EndpointURL, "/"), s.config.BucketName, objectKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.BucketName, s.config.Region, objectKey)
}

func (s *S3Store) objectKey(imagePath string) (string, bool) {
	prefixes := []string{
		strings.TrimSuffix(s.config.PublicBaseURL, "/") + "/",
		fmt.Sprintf("%s/%s/", strings.TrimSuffix(s.config.EndpointURL, "/"), s.config.BucketName),
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.config.BucketName, s.config.Region),
	}
	for _, p := range prefixes {
		if p != "/" && strings.HasPrefix(imagePath, p) {
			return strings.TrimPrefix(imagePath, p), true
		}
	}
	return "", false
}
