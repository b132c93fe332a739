package repositories

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadStore saves one attachment under a generated name and returns the
// public path to embed in the message record.
type UploadStore interface {
	Save(ctx context.Context, name, contentType string, content io.Reader) (string, error)
}

// DiskUploadStore writes attachments to the local public uploads directory.
type DiskUploadStore struct {
	Dir string
}

func NewDiskUploadStore(publicDir string) (*DiskUploadStore, error) {
	dir := filepath.Join(publicDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskUploadStore{Dir: dir}, nil
}

func (d *DiskUploadStore) Save(_ context.Context, name, _ string, content io.Reader) (string, error) {
	dstPath := filepath.Join(d.Dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		// A rejected upload must leave nothing behind.
		os.Remove(dstPath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return "", err
	}
	return "/uploads/" + name, nil
}

// R2UploadStore writes attachments to a Cloudflare R2 bucket using static
// credentials and a custom endpoint.
type R2UploadStore struct {
	Client        *s3.Client
	BucketName    string
	PublicBaseURL string
}

func NewR2UploadStore(accessKey, secretKey, accountID, bucketName, region, publicBaseURL string) *R2UploadStore {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      region,
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized R2 client")

	return &R2UploadStore{
		Client:        client,
		BucketName:    bucketName,
		PublicBaseURL: publicBaseURL,
	}
}

func (r *R2UploadStore) Save(ctx context.Context, name, contentType string, content io.Reader) (string, error) {
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.BucketName),
		Key:         aws.String("uploads/" + name),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return r.PublicBaseURL + "/uploads/" + name, nil
}
