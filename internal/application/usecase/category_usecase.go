package usecase

import (
	"context"

	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/internal/domain/entity"
	"github.com/tablesprint/catalog-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return items, nil
}

// Create inserta una categoría y devuelve su id.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.IDResponse, error) {
	id, err := uc.repo.Create(ctx, toCategory(0, in))
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: id}, nil
}

// Update sobrescribe todos los campos de la categoría id.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) error {
	return uc.repo.Update(ctx, toCategory(id, in))
}

// Delete elimina la categoría id (sin error si no existe).
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toCategory(id int64, in dto.CategoryRequest) *entity.Category {
	return &entity.Category{
		ID:       id,
		Name:     in.Name,
		Sequence: in.Sequence,
		ImageURL: in.ImageURL,
		Status:   statusOrDefault(in.Status),
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        c.ID,
		Name:      valueOf(c.Name),
		Sequence:  valueOf(c.Sequence),
		ImageURL:  c.ImageURL,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
