package storage

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"learnmedia/learnmedia/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type ObjectStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewObjectStorage(ctx context.Context, cfg config.Config) (*ObjectStorage, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		},
	)
	if err != nil {
		return nil, err
	}

	bucket := cfg.MinIOBucket
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	publicURL := cfg.MinIOPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIOUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIOEndpoint)
	}

	return &ObjectStorage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload writes the buffered bytes under key and returns the public URL the
// object is reachable at.
func (s *ObjectStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(
		ctx, s.bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// PublicURL builds the deterministic address of an object from the configured
// base URL, bucket and key.
func (s *ObjectStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key)
}

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reUnsafe     = regexp.MustCompile(`[^a-zA-Z0-9_\-.]`)
)

// SafeObjectKey restricts a client-supplied filename to a storage-safe
// character set: whitespace runs become underscores, everything outside
// letters, digits, underscore, hyphen and dot is stripped.
func SafeObjectKey(filename string) string {
	key := reWhitespace.ReplaceAllString(filename, "_")
	key = reUnsafe.ReplaceAllString(key, "")
	if strings.Trim(key, ".") == "" {
		return "file"
	}
	return key
}
