package gcs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/utils"
)

const (
	uploadTimeout      = 30 * time.Second
	signedFetchTimeout = 60 * time.Second
	// SignedURLTTL is the validity window handed out for plan downloads.
	SignedURLTTL = 600 * time.Second
)

type BucketService interface {
	// Upload writes the object with create-or-overwrite semantics.
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	SignedURL(key string, ttl time.Duration) (string, error)
	// FetchSigned signs a read URL for key and downloads the body.
	FetchSigned(ctx context.Context, key string) ([]byte, error)
}

type bucketService struct {
	log           *logger.Logger
	storageClient *storage.Client
	bucketName    string
	httpClient    *http.Client
}

func NewBucketService(log *logger.Logger) (BucketService, error) {
	serviceLog := log.With("service", "BucketService")
	bucketName := utils.GetEnv("PLANS_GCS_BUCKET_NAME", "plans", log)

	ctx := context.Background()
	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	stClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	serviceLog.Info("Object storage initialized", "bucket", bucketName)
	return &bucketService{
		log:           serviceLog,
		storageClient: stClient,
		bucketName:    bucketName,
		httpClient:    &http.Client{Timeout: signedFetchTimeout},
	}, nil
}

func (bs *bucketService) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := bs.storageClient.Bucket(bs.bucketName).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close writer for %q: %w", key, err)
	}
	return nil
}

func (bs *bucketService) SignedURL(key string, ttl time.Duration) (string, error) {
	url, err := bs.storageClient.Bucket(bs.bucketName).SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("sign URL for %q: %w", key, err)
	}
	return url, nil
}

func (bs *bucketService) FetchSigned(ctx context.Context, key string) ([]byte, error) {
	url, err := bs.SignedURL(key, SignedURLTTL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, signedFetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create signed fetch request: %w", err)
	}
	resp, err := bs.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("signed fetch for %q: %w", key, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("signed fetch for %q: status=%d body=%s", key, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return io.ReadAll(resp.Body)
}
