package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/config"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient stores workout and event images. Objects are served straight
// from the bucket, which is made anonymously readable by EnsureBucket.
type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL *url.URL
}

func NewMinIOClient(cfg config.MinIOConfig) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	publicURL, err := parsePublicEndpoint(cfg.PublicEndpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	return &MinIOClient{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

func parsePublicEndpoint(endpoint string, useSSL bool) (*url.URL, error) {
	if !strings.Contains(endpoint, "://") {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		endpoint = scheme + "://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid public endpoint %q: %w", endpoint, err)
	}
	return u, nil
}

func (m *MinIOClient) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.Error("minio_upload_failed", err, map[string]interface{}{
			"object_name":  objectName,
			"size":         size,
			"content_type": contentType,
			"bucket":       m.bucket,
		})
	} else {
		logger.Info("minio_upload_success", map[string]interface{}{
			"object_name": objectName,
			"size":        size,
			"bucket":      m.bucket,
		})
	}
	return err
}

func (m *MinIOClient) Delete(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("minio_delete_failed", err, map[string]interface{}{
			"object_name": objectName,
			"bucket":      m.bucket,
		})
	}
	return err
}

// ObjectURL is the public address clients use as imageUri.
func (m *MinIOClient) ObjectURL(objectName string) string {
	u := *m.publicURL
	u.Path = path.Join("/", u.Path, m.bucket, objectName)
	return u.String()
}

// Check reports whether the bucket is reachable.
func (m *MinIOClient) Check(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", m.bucket)
	}
	return nil
}

func (m *MinIOClient) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed creating bucket %s: %w", m.bucket, err)
		}
	}

	if err := m.client.SetBucketPolicy(ctx, m.bucket, PublicReadPolicy(m.bucket)); err != nil {
		return fmt.Errorf("failed setting policy on bucket %s: %w", m.bucket, err)
	}
	return nil
}

func PublicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucket)
}

// ImageKey builds a collision-free object name such as
// "workouts/<workout id>/<random>.png".
func ImageKey(prefix string, ownerID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(prefix, ownerID.String(), uuid.New().String()+ext)
}
