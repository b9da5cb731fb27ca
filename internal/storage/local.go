package storage

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Local stores objects as files under a base directory. Keys use forward
// slashes and map to relative paths.
type Local struct {
	base   string
	logger *slog.Logger
}

func NewLocal(basePath string, logger *slog.Logger) (*Local, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &Local{base: abs, logger: logger}, nil
}

func (s *Local) path(key string) string {
	return filepath.Join(s.base, filepath.FromSlash(key))
}

func (s *Local) ReadFile(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(key)
		}
		s.logger.Error("read object failed", "key", key, "error", err)
		return nil, err
	}
	return data, nil
}

func (s *Local) WriteFile(_ context.Context, key string, data []byte) error {
	p := s.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		s.logger.Error("write object failed", "key", key, "error", err)
		return err
	}
	return nil
}

func (s *Local) FileExists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Local) GetFileSize(_ context.Context, key string) (int64, error) {
	info, err := os.Stat(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, notFound(key)
		}
		return 0, err
	}
	return info.Size(), nil
}

func (s *Local) ListFiles(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.base, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Local) DeleteFile(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return notFound(key)
		}
		s.logger.Error("delete object failed", "key", key, "error", err)
		return err
	}
	return nil
}
