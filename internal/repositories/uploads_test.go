package repositories

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskUploadStore_Save(t *testing.T) {
	publicDir := t.TempDir()
	store, err := NewDiskUploadStore(publicDir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "file-123-456.png", "image/png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/file-123-456.png", path)

	data, err := os.ReadFile(filepath.Join(publicDir, "uploads", "file-123-456.png"))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestR2UploadStore_Save(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		var err error
		gotBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
		Region:      "auto",
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
		o.UsePathStyle = true
	})

	store := &R2UploadStore{
		Client:        client,
		BucketName:    "rela-uploads",
		PublicBaseURL: "https://cdn.example.com",
	}

	path, err := store.Save(context.Background(), "file-123-456.png", "image/png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/uploads/file-123-456.png", path)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/rela-uploads/uploads/file-123-456.png", gotPath)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, "png bytes", string(gotBody))
}

func TestR2UploadStore_PutFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
		Region:      "auto",
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
		o.UsePathStyle = true
	})

	store := &R2UploadStore{Client: client, BucketName: "rela-uploads"}

	_, err := store.Save(context.Background(), "file-1.png", "image/png", strings.NewReader("x"))
	require.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestDiskUploadStore_FailedSaveLeavesNothingBehind(t *testing.T) {
	publicDir := t.TempDir()
	store, err := NewDiskUploadStore(publicDir)
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "file-789.png", "image/png", failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Join(publicDir, "uploads"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
