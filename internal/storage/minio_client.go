package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tmohagan/portfolio-api/internal/config"
)

type Storage interface {
	Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error)
	Delete(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("could not check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("could not create bucket: %w", err)
		}

		// Covers are served directly by URL, so the bucket is public-read.
		policy := fmt.Sprintf(`{
			"Version": "2012-10-17",
			"Statement": [{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}]
		}`, cfg.MinIO.BucketName)

		if err := client.SetBucketPolicy(ctx, cfg.MinIO.BucketName, policy); err != nil {
			return nil, fmt.Errorf("could not set bucket policy: %w", err)
		}
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// Upload stores the file under a flat key built from the upload time and the
// original extension, and returns the key together with the public URL. Keys
// stay flat so that the key of an existing cover can be recovered from the
// last path segment of its URL.
func (m *MinIOClient) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("%d%s", time.Now().UnixNano(), fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("could not upload to MinIO: %w", err)
	}

	return objectName, m.objectURL(objectName), nil
}

// Delete is idempotent: removing a key that no longer exists is not an error.
func (m *MinIOClient) Delete(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("could not delete from MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) objectURL(objectName string) string {
	scheme := "http"
	if m.cfg.MinIO.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.cfg.MinIO.Endpoint, m.cfg.MinIO.BucketName, objectName)
}

// ObjectKeyFromURL derives the storage key of a cover from its public URL.
func ObjectKeyFromURL(rawURL string) string {
	parts := strings.Split(rawURL, "/")
	return parts[len(parts)-1]
}
