package local

import (
	"fmt"
	"os"
	"path/filepath"
	"training-reels/internal/core/domain"

	"github.com/gabriel-vasile/mimetype"
)

// File is a local file opened for chunked upload
type File struct {
	*os.File
	size        int64
	contentType string
}

// Open opens path and sniffs its content type
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidRequest, path)
	}

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("could not sniff %s: %w", path, err)
	}

	return &File{File: f, size: info.Size(), contentType: detected.String()}, nil
}

func (f *File) Size() int64 {
	return f.size
}

// ContentType is the sniffed MIME type, without parameters
func (f *File) ContentType() string {
	return f.contentType
}

func (f *File) BaseName() string {
	return filepath.Base(f.Name())
}
