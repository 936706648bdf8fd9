// Package storage holds the object-store adapters for event cover images
// and people profile images. Each storage area maps to a key prefix in a
// single bucket; only PNG and JPEG uploads are accepted.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nitpydev/gyanith24-cms/config"
	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

// areaPrefixes maps a storage area to its key prefix in the bucket.
var areaPrefixes = map[string]string{
	domain.AreaEventImgs:  domain.AreaEventImgs + "/",
	domain.AreaPeopleImgs: domain.AreaPeopleImgs + "/",
}

// acceptedTypes are the only content types an image field may hold.
var acceptedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// ObjectKey validates the area and content type and returns the bucket key
// for an upload. It normalizes the filename extension to match the content
// type so stored objects are always consistently named.
func ObjectKey(area, filename, contentType string) (string, error) {
	prefix, ok := areaPrefixes[area]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownArea, area)
	}
	ext, ok := acceptedTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: got %q", domain.ErrUnsupportedContent, contentType)
	}
	name := filename
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	if name == "" {
		return "", fmt.Errorf("filename is required")
	}
	return prefix + name + ext, nil
}

// NewImageStore creates an image store from config. Provider "s3" uses AWS
// S3; anything else falls back to a noop store that only logs uploads.
func NewImageStore(cfg config.S3Config) (domain.ImageStore, error) {
	switch cfg.Provider {
	case "s3":
		awsCfg := aws.Config{
			Region: cfg.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretAccessKey,
					"",
				),
			),
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
				o.UsePathStyle = true
			}
		})
		baseURL := cfg.PublicBaseURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
		return &s3ImageStore{
			client:  client,
			bucket:  cfg.Bucket,
			baseURL: strings.TrimSuffix(baseURL, "/"),
		}, nil
	case "noop", "":
		return &noopImageStore{}, nil
	default:
		log.Printf("[STORAGE] Unknown storage provider %q, using noop", cfg.Provider)
		return &noopImageStore{}, nil
	}
}

type s3ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func (s *s3ImageStore) Upload(ctx context.Context, area, filename, contentType string, body io.Reader) (string, error) {
	key, err := ObjectKey(area, filename, contentType)
	if err != nil {
		return "", err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}

// noopImageStore accepts uploads without storing anything. Useful for
// development without S3 credentials.
type noopImageStore struct{}

func (n *noopImageStore) Upload(ctx context.Context, area, filename, contentType string, body io.Reader) (string, error) {
	key, err := ObjectKey(area, filename, contentType)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	log.Printf("[STORAGE] noop upload: %s (%s)", key, contentType)
	return "https://storage.invalid/" + key, nil
}
