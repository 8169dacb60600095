package minio_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"
	"training-reels/internal/adapters/storage/minio"
	"training-reels/internal/config"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "test-bucket"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	time.Sleep(500 * time.Millisecond) // wait for container to be up
	return endpoint, cleanup
}

func createAdapter(t *testing.T, endpoint string, ctx context.Context) *minio.Adapter {
	t.Helper()
	cfg := config.MinioConfig{
		Endpoint:   endpoint,
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		BucketName: testBucket,
		UseSSL:     false,
	}

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adapter, err := minio.NewAdapter(ctx, cfg, discardLogger)

	require.NoError(t, err)
	require.NotNil(t, adapter)

	return adapter
}

// putObject stores content the way a camera uploader would, straight into the bucket
func putObject(t *testing.T, endpoint, key string, content []byte, contentType string) {
	t.Helper()
	client, err := miniogo.New(endpoint, &miniogo.Options{
		Creds: credentials.NewStaticV4(testAccessKey, testSecretKey, ""),
	})
	require.NoError(t, err)

	_, err = client.PutObject(context.Background(), testBucket, key, bytes.NewReader(content), int64(len(content)),
		miniogo.PutObjectOptions{ContentType: contentType})
	require.NoError(t, err)
}

func TestOpenObject_RangedReads(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	// Arrange
	content := bytes.Repeat([]byte("0123456789"), 1000)
	putObject(t, endpoint, "line-1/setup.mp4", content, "video/mp4")

	// Act
	source, err := adapter.OpenObject(ctx, "line-1/setup.mp4")
	require.NoError(t, err)
	defer source.(io.Closer).Close()

	buf := make([]byte, 10)
	n, readErr := source.ReadAt(buf, 5000)

	// Assert
	require.NoError(t, readErr)
	assert.Equal(t, 10, n)
	assert.Equal(t, []byte("0123456789"), buf)
	assert.Equal(t, int64(len(content)), source.Size())
}

func TestOpenObject_Missing(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	// Act
	_, err := adapter.OpenObject(ctx, "missing.mp4")

	// Assert
	assert.Error(t, err)
}

func TestStatObject(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	// Arrange
	putObject(t, endpoint, "line-2/press.mov", []byte("0123456789abcdef"), "video/quicktime")

	// Act
	size, contentType, err := adapter.StatObject(ctx, "line-2/press.mov")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(16), size)
	assert.Equal(t, "video/quicktime", contentType)
}

func TestSniffing(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	t.Run("Should return the first n bytes", func(t *testing.T) {
		//Arrange
		header := []byte("\x00\x00\x00\x20ftypisom\x00\x00\x02\x00isomiso2avc1mp41")
		putObject(t, endpoint, "test-sniff/clip.mp4", append(header, bytes.Repeat([]byte{0}, 4096)...), "video/mp4")

		// Act
		sniffed, err := adapter.GetHeaderBytes(ctx, "test-sniff/clip.mp4", 512)

		// Assert
		require.NoError(t, err)
		assert.Len(t, sniffed, 512)
		assert.Equal(t, header, sniffed[:len(header)])
	})

	t.Run("Should return short objects whole", func(t *testing.T) {
		//Arrange
		putObject(t, endpoint, "test-sniff/tiny.bin", []byte("tiny"), "application/octet-stream")

		// Act
		sniffed, err := adapter.GetHeaderBytes(ctx, "test-sniff/tiny.bin", 512)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []byte("tiny"), sniffed)
	})
}
