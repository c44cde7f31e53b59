package imagestore

import (
	"errors"

	"github.com/korlavalasa/villageportal/internal/pkg/env"
)

// Config holds image storage configuration. STORAGE_BACKEND selects the
// backend: "s3" forwards uploads to an S3-compatible image service,
// anything else stores files on the local disk.
type Config struct {
	Backend         string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // optional, for S3-compatible services
	PublicBaseURL   string // optional CDN/public host serving the bucket
	Folder          string // logical folder all gallery uploads go under
	LocalDir        string // local backend: directory behind /uploads
}

// LoadConfig loads image storage configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Backend:         env.GetEnv("STORAGE_BACKEND", "local"),
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "ap-south-1"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		PublicBaseURL:   env.GetEnv("S3_PUBLIC_BASE_URL", ""),
		Folder:          env.GetEnv("STORAGE_FOLDER", "korlavalasa/gallery"),
		LocalDir:        env.GetEnv("STORAGE_LOCAL_DIR", "./public/uploads"),
	}

	if cfg.Backend == "s3" {
		if cfg.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when STORAGE_BACKEND=s3")
		}
		if cfg.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when STORAGE_BACKEND=s3")
		}
		if cfg.BucketName == "" {
			return nil, errors.New("S3_BUCKET_NAME is required when STORAGE_BACKEND=s3")
		}
	}

	return cfg, nil
}
