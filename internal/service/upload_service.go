package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"staybook/internal/cache"
	apperrors "staybook/internal/errors"
)

const uploadCacheTTL = time.Hour

// UploadService fetches a remote image by URL and returns it as an inline
// base64 data URI. Each call is independent and stateless.
type UploadService interface {
	FetchAsInline(ctx context.Context, link string) (string, error)
}

type uploadService struct {
	client *http.Client
	cache  *cache.Client
}

// NewUploadService creates an upload service. The cache memoizes results per
// normalized URL; it is fail-safe, so behavior is identical without redis.
func NewUploadService(httpClient *http.Client, cacheClient *cache.Client) UploadService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &uploadService{client: httpClient, cache: cacheClient}
}

// FetchAsInline strips query parameters from the link, rejects unsupported
// extensions before downloading anything, downloads to a transient file that
// is removed on every path, and returns a data URI tagged with the MIME type
// inferred from the extension.
func (s *uploadService) FetchAsInline(ctx context.Context, link string) (string, error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return "", apperrors.ErrImageDownload
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	cleanURL := parsed.String()

	mimeType, ok := mimeFromExtension(cleanURL)
	if !ok {
		return "", apperrors.ErrUnsupportedImageType
	}

	cacheKey := "upload_by_link:" + cleanURL
	if cached := s.cache.Get(ctx, cacheKey); cached != nil {
		return string(cached), nil
	}

	data, err := s.download(ctx, cleanURL)
	if err != nil {
		return "", err
	}

	encoded := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	s.cache.Set(ctx, cacheKey, []byte(encoded), uploadCacheTTL)
	return encoded, nil
}

// download writes the response body to a collision-proof temp file, reads it
// back fully and removes the file unconditionally.
func (s *uploadService) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.ErrImageDownload
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrImageDownload
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ErrImageDownload
	}

	tmp, err := os.CreateTemp("", "staybook-image-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return nil, apperrors.ErrImageDownload
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("read temp file: %w", err)
	}
	return data, nil
}

func mimeFromExtension(rawURL string) (string, bool) {
	switch strings.ToLower(path.Ext(rawURL)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", true
	case ".png":
		return "image/png", true
	default:
		return "", false
	}
}
