package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const presignTTL = time.Hour

type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func ConfigFromEnv() *Config {
	region := os.Getenv("STORAGE_REGION")
	if region == "" {
		region = "auto"
	}
	return &Config{
		Endpoint:        os.Getenv("STORAGE_ENDPOINT"),
		AccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("STORAGE_BUCKET_NAME"),
		PublicURL:       os.Getenv("STORAGE_PUBLIC_URL"),
		Region:          region,
	}
}

// Uploader hands out presigned PUT URLs against any S3-compatible
// endpoint; clients upload directly and store the resulting public URL
// as a place image.
type Uploader struct {
	config  *Config
	presign *s3.PresignClient
}

func NewUploader(config *Config) *Uploader {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(config.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			config.AccessKeyID,
			config.SecretAccessKey,
			"",
		),
		Region: config.Region,
	})
	return &Uploader{
		config:  config,
		presign: s3.NewPresignClient(client),
	}
}

type PresignedUpload struct {
	UploadURL string
	FileURL   string
	Key       string
	ExpiresIn int
}

func (u *Uploader) PresignUpload(ctx context.Context, userID uuid.UUID, fileName, contentType string) (*PresignedUpload, error) {
	key := generateKey(userID, fileName)

	req, err := u.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		FileURL:   fmt.Sprintf("%s/%s", u.config.PublicURL, key),
		Key:       key,
		ExpiresIn: int(presignTTL.Seconds()),
	}, nil
}

func generateKey(userID uuid.UUID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("places/%s/%d-%s%s", userID, time.Now().Unix(), uuid.New().String()[:8], ext)
}

// ValidImageType restricts uploads to the formats the gallery renders.
func ValidImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
		return true
	}
	return false
}

// MaxImageSize is 10 MB.
const MaxImageSize = 10 << 20

func ValidImageSize(size int64) bool {
	return size > 0 && size <= MaxImageSize
}
