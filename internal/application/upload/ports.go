package upload

import (
	"context"
	"io"
)

// ImageStore es el puerto de almacenamiento de imágenes subidas (disco local o S3).
// Open devuelve domain.ErrNotFound si el nombre no existe.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
