package fsx

import "context"

// FileReader reads files from storage
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter writes files to storage
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// FileSystem combines read/write/delete operations over a storage backend
type FileSystem interface {
	FileReader
	FileWriter
	DeleteFile(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}
