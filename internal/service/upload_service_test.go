package service

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "staybook/internal/errors"
)

func countTransientFiles(t *testing.T) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "staybook-image-*"))
	assert.NoError(t, err)
	return len(matches)
}

func TestUploadService_FetchAsInlinePNG(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Query parameters must be stripped before the download.
		assert.Empty(t, r.URL.RawQuery)
		w.Write(payload)
	}))
	defer server.Close()

	before := countTransientFiles(t)

	service := NewUploadService(server.Client(), nil)
	encoded, err := service.FetchAsInline(context.Background(), server.URL+"/photo.png?size=large")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "data:image/png;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(encoded, "data:image/png;base64,"))
	assert.NoError(t, err)
	assert.Equal(t, payload, raw)

	assert.Equal(t, before, countTransientFiles(t))
}

func TestUploadService_FetchAsInlineJPEG(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	service := NewUploadService(server.Client(), nil)

	for _, ext := range []string{".jpg", ".jpeg"} {
		encoded, err := service.FetchAsInline(context.Background(), server.URL+"/photo"+ext)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(encoded, "data:image/jpeg;base64,"))
	}
}

func TestUploadService_UnsupportedExtension(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	before := countTransientFiles(t)

	service := NewUploadService(server.Client(), nil)
	encoded, err := service.FetchAsInline(context.Background(), server.URL+"/photo.gif")

	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrUnsupportedImageType, err)
	assert.Empty(t, encoded)
	// Rejected before any download is attempted, and no transient file left.
	assert.False(t, requested)
	assert.Equal(t, before, countTransientFiles(t))
}

func TestUploadService_DownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	before := countTransientFiles(t)

	service := NewUploadService(server.Client(), nil)
	encoded, err := service.FetchAsInline(context.Background(), server.URL+"/missing.png")

	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrImageDownload, err)
	assert.Empty(t, encoded)
	assert.Equal(t, before, countTransientFiles(t))
}

func TestUploadService_UnreachableHost(t *testing.T) {
	service := NewUploadService(&http.Client{}, nil)

	_, err := service.FetchAsInline(context.Background(), "http://127.0.0.1:1/photo.png")
	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrImageDownload, err)
}
