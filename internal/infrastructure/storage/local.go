package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tablesprint/catalog-api/internal/application/upload"
	"github.com/tablesprint/catalog-api/internal/domain"
)

var _ upload.ImageStore = (*LocalStore)(nil)

// LocalStore guarda imágenes en un directorio del disco local.
type LocalStore struct {
	dir string
}

// NewLocalStore construye el store. El directorio se crea en la primera escritura.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Save escribe r en dir/name. Falla si el archivo ya existe.
func (s *LocalStore) Save(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de uploads: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("escribir archivo: %w", err)
	}
	return f.Close()
}

// Open abre dir/name para lectura.
func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat archivo: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, domain.ErrNotFound
	}
	return f, nil
}
