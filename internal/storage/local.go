package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// PhotoStore persists uploaded photo content and returns a URL the API can
// hand back to clients.
type PhotoStore interface {
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
}

// LocalStore writes photos to a directory on the local filesystem and
// serves them under /uploads/.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	filename := fmt.Sprintf("photos-%d-%s%s", time.Now().UnixNano(), uuid.New().String()[:8], filepath.Ext(originalName))

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return "/uploads/" + filename, nil
}

// Dir returns the directory photos are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}
