package upload

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/internal/domain"
)

// PublicPrefix ruta bajo la que se sirven las imágenes guardadas.
const PublicPrefix = "/uploads/"

// UploadUseCase guarda imágenes con nombre <timestamp><extensión original>.
// No valida tipo ni tamaño y nunca borra archivos.
type UploadUseCase struct {
	store ImageStore
	now   func() time.Time
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(store ImageStore) *UploadUseCase {
	return &UploadUseCase{store: store, now: time.Now}
}

// Upload guarda el contenido y devuelve la URL relativa pública.
func (uc *UploadUseCase) Upload(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (*dto.UploadResponse, error) {
	name := FileName(uc.now(), originalName)
	if err := uc.store.Save(ctx, name, r, size, contentType); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}
	return &dto.UploadResponse{ImageURL: PublicPrefix + name}, nil
}

// Open abre una imagen guardada. Nombres con separadores o vacíos se tratan como inexistentes.
func (uc *UploadUseCase) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !ValidName(name) {
		return nil, domain.ErrNotFound
	}
	return uc.store.Open(ctx, name)
}

// FileName genera el nombre almacenado: nanosegundos Unix + extensión del archivo original.
func FileName(now time.Time, originalName string) string {
	return strconv.FormatInt(now.UnixNano(), 10) + filepath.Ext(originalName)
}

// ValidName rechaza nombres vacíos, con separadores de ruta o de traversal.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if filepath.Base(name) != name {
		return false
	}
	for _, r := range name {
		if r == '/' || r == '\\' || r == 0 {
			return false
		}
	}
	return true
}
