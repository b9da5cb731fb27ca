package storage

import (
	"context"
	"fmt"

	"github.com/mlevchenko/tenderbatch/internal/common"
)

// Storage is the object-store contract consumed by the extractor. Keys are
// relative to a configured base path or bucket; backends are selected at
// composition time via configuration.
type Storage interface {
	ReadFile(ctx context.Context, key string) ([]byte, error)
	WriteFile(ctx context.Context, key string, data []byte) error
	FileExists(ctx context.Context, key string) (bool, error)
	GetFileSize(ctx context.Context, key string) (int64, error)
	ListFiles(ctx context.Context, prefix string) ([]string, error)
	DeleteFile(ctx context.Context, key string) error
}

// notFound builds the descriptive not-found error every backend returns for
// a missing key.
func notFound(key string) error {
	return common.NewAppError("OBJECT_NOT_FOUND", fmt.Sprintf("object %q not found", key), common.ErrNotFound)
}
