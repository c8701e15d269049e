package database

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"gamerflow_service/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinIOClientRepo 物件儲存介面
type MinIOClientRepo interface {
	PutBytes(ctx context.Context, objectName string, data []byte, contentType string) error
	GetBytes(ctx context.Context, objectName string) ([]byte, error)
	PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// MinIOClient definition minio client
type MinIOClient struct {
	Client     *minio.Client
	BucketName string
}

// NewMinIOConnection create a new minio connection with retry
func NewMinIOConnection(d MinIOConnection) (*MinIOClient, error) {
	var (
		mc  *MinIOClient
		err error
	)

	for i := 1; i <= d.RetryCount; i++ {
		mc, err = NewMinioClient(d.Endpoint, d.User, d.Password, d.BucketName, d.UseSSL)
		if err == nil {
			logger.Log.Info("minIO connected", zap.String("endpoint", d.Endpoint), zap.Int("attempt", i))
			return mc, nil
		}

		logger.Log.Warn("minIO connect failed", zap.String("endpoint", d.Endpoint), zap.Int("attempt", i), zap.Error(err))
		time.Sleep(d.RetryInterval * time.Second)
	}

	return mc, err
}

// NewMinioClient create a new minio client, bucket 不存在時建立
func NewMinioClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	minioClient, err := minio.New(endpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
			Secure: useSSL,
		})
	if err != nil {
		return nil, fmt.Errorf("init minio failed: %w", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket [%s] failed: %w", bucketName, err)
	}

	if !exists {
		if err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket [%s] failed: %w", bucketName, err)
		}
		logger.Log.Info("bucket created", zap.String("bucket", bucketName))
	}

	return &MinIOClient{
		Client:     minioClient,
		BucketName: bucketName,
	}, nil
}

// PutBytes upload in-memory object
func (m *MinIOClient) PutBytes(ctx context.Context, objectName string, data []byte, contentType string) error {
	_, err := m.Client.PutObject(ctx, m.BucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// GetBytes read whole object
func (m *MinIOClient) GetBytes(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := m.Client.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object failed: %w", err)
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

// PresignGetURL 生成指定 object 的 Presigned URL
func (m *MinIOClient) PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.Client.PresignedGetObject(ctx, m.BucketName, objectName, expiry, make(url.Values))
	if err != nil {
		return "", fmt.Errorf("presign url failed: %w", err)
	}
	return presignedURL.String(), nil
}
