package storage

import (
	"context"
	"training-reels/internal/core/port"

	"github.com/stretchr/testify/mock"
)

// MockKeyValueStore is a mock implementation of port.KeyValueStore
type MockKeyValueStore struct {
	mock.Mock
}

func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{}
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKeyValueStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockObjectStorage is a mock implementation of port.ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{}
}

func (m *MockObjectStorage) OpenObject(ctx context.Context, objectKey string) (port.ChunkSource, error) {
	args := m.Called(ctx, objectKey)
	source, _ := args.Get(0).(port.ChunkSource)
	return source, args.Error(1)
}

func (m *MockObjectStorage) StatObject(ctx context.Context, objectKey string) (int64, string, error) {
	args := m.Called(ctx, objectKey)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *MockObjectStorage) GetHeaderBytes(ctx context.Context, objectKey string, n int64) ([]byte, error) {
	args := m.Called(ctx, objectKey, n)
	return args.Get(0).([]byte), args.Error(1)
}
