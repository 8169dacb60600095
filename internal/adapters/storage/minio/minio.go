package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"training-reels/internal/config"
	"training-reels/internal/core/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// ObjectSource serves ranged reads of a stored object to the upload driver
type ObjectSource struct {
	object *minio.Object
	size   int64
}

func (o *ObjectSource) ReadAt(p []byte, off int64) (int, error) {
	return o.object.ReadAt(p, off)
}

func (o *ObjectSource) Size() int64 {
	return o.size
}

func (o *ObjectSource) Close() error {
	return o.object.Close()
}

// OpenObject opens objectKey for chunked reading. The returned source must be closed.
func (a *Adapter) OpenObject(ctx context.Context, objectKey string) (port.ChunkSource, error) {
	object, err := a.client.GetObject(ctx, a.config.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	info, err := object.Stat()
	if err != nil {
		_ = object.Close()
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	a.logger.Debug("object opened", slog.String("objectKey", objectKey), slog.Int64("size", info.Size))
	return &ObjectSource{object: object, size: info.Size}, nil
}

// StatObject returns the size and the stored content type of objectKey
func (a *Adapter) StatObject(ctx context.Context, objectKey string) (int64, string, error) {
	info, err := a.client.StatObject(ctx, a.config.BucketName, objectKey, minio.StatObjectOptions{})
	if err != nil {
		return 0, "", fmt.Errorf("failed to get object info: %w", err)
	}
	return info.Size, info.ContentType, nil
}

func (a *Adapter) GetHeaderBytes(ctx context.Context, objectKey string, n int64) ([]byte, error) {
	opts := minio.GetObjectOptions{}
	err := opts.SetRange(0, n-1)
	if err != nil {
		return nil, fmt.Errorf("failed to set range: %w", err)
	}

	object, err := a.client.GetObject(ctx, a.config.BucketName, objectKey, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get partial object: %w", err)
	}
	defer object.Close()

	buffer := make([]byte, n)
	numRead, err := io.ReadFull(object, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read header bytes: %w", err)
	}

	return buffer[:numRead], nil
}
