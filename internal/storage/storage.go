package storage

import (
	"context"
	"fmt"
	"io"

	"devcamper/internal/config"
)

// PutObjectOptions define optional parameters for writing objects.
// Size should be the exact number of bytes if known, or -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// Storage is the sink uploaded photos are written to. Put either stores the
// whole object or returns an error; a partially written object is never visible.
type Storage interface {
	// Put writes the object under key, replacing any existing object.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// New builds the storage sink selected by the upload driver setting.
func New(up config.UploadConfig, mc config.MinIOConfig) (Storage, error) {
	switch up.Driver {
	case "", "local":
		return NewLocal(up.Path)
	case "minio":
		return NewMinIO(mc)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", up.Driver)
	}
}
