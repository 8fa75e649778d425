package usecase

import (
	"context"

	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/internal/domain/entity"
	"github.com/tablesprint/catalog-api/internal/domain/repository"
)

// SubcategoryUseCase casos de uso CRUD para subcategorías.
type SubcategoryUseCase struct {
	repo repository.SubcategoryRepository
}

// NewSubcategoryUseCase construye el caso de uso.
func NewSubcategoryUseCase(repo repository.SubcategoryRepository) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo}
}

// List devuelve todas las subcategorías.
func (uc *SubcategoryUseCase) List(ctx context.Context) ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SubcategoryResponse{
			ID:        s.ID,
			Subname:   valueOf(s.Subname),
			Name:      valueOf(s.Name),
			Sequence:  valueOf(s.Sequence),
			ImageURL:  s.ImageURL,
			Status:    s.Status,
			CreatedAt: s.CreatedAt,
		})
	}
	return items, nil
}

// Create inserta una subcategoría. No comprueba que la categoría Name exista.
func (uc *SubcategoryUseCase) Create(ctx context.Context, in dto.SubcategoryRequest) (*dto.IDResponse, error) {
	id, err := uc.repo.Create(ctx, toSubcategory(0, in))
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: id}, nil
}

// Update sobrescribe todos los campos de la subcategoría id.
func (uc *SubcategoryUseCase) Update(ctx context.Context, id int64, in dto.SubcategoryRequest) error {
	return uc.repo.Update(ctx, toSubcategory(id, in))
}

// Delete elimina la subcategoría id.
func (uc *SubcategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toSubcategory(id int64, in dto.SubcategoryRequest) *entity.Subcategory {
	return &entity.Subcategory{
		ID:       id,
		Subname:  in.Subname,
		Name:     in.Name,
		Sequence: in.Sequence,
		ImageURL: in.ImageURL,
		Status:   statusOrDefault(in.Status),
	}
}
