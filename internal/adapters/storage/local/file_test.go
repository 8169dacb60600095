package local_test

import (
	"os"
	"path/filepath"
	"testing"
	"training-reels/internal/adapters/storage/local"
	"training-reels/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SniffsVideo(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "changeover.mp4")
	header := []byte("\x00\x00\x00\x20ftypisom\x00\x00\x02\x00isomiso2avc1mp41")
	require.NoError(t, os.WriteFile(path, append(header, make([]byte, 100)...), 0o600))

	// Act
	file, err := local.Open(path)
	require.NoError(t, err)
	defer file.Close()

	// Assert
	assert.Equal(t, "video/mp4", file.ContentType())
	assert.Equal(t, int64(len(header)+100), file.Size())
	assert.Equal(t, "changeover.mp4", file.BaseName())
}

func TestOpen_ReadAtIgnoresSniffOffset(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("abcdefghij"), 0o600))
	file, err := local.Open(path)
	require.NoError(t, err)
	defer file.Close()

	buf := make([]byte, 3)

	// Act
	n, err := file.ReadAt(buf, 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("cde"), buf)
}

func TestOpen_Directory(t *testing.T) {
	// Act
	_, err := local.Open(t.TempDir())

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestOpen_Missing(t *testing.T) {
	// Act
	_, err := local.Open(filepath.Join(t.TempDir(), "nope.mp4"))

	// Assert
	assert.ErrorIs(t, err, os.ErrNotExist)
}
