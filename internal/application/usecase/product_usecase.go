package usecase

import (
	"context"

	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/internal/domain/entity"
	"github.com/tablesprint/catalog-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// Create inserta un producto. Subname y Name se guardan como texto, sin verificar padres.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.IDResponse, error) {
	id, err := uc.repo.Create(ctx, toProduct(0, in))
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: id}, nil
}

// Update sobrescribe todos los campos del producto id.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) error {
	return uc.repo.Update(ctx, toProduct(id, in))
}

// Delete elimina el producto id.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProduct(id int64, in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		ID:       id,
		Proname:  in.Proname,
		Subname:  in.Subname,
		Name:     in.Name,
		Sequence: in.Sequence,
		ImageURL: in.ImageURL,
		Status:   statusOrDefault(in.Status),
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Proname:   valueOf(p.Proname),
		Subname:   valueOf(p.Subname),
		Name:      valueOf(p.Name),
		Sequence:  valueOf(p.Sequence),
		ImageURL:  p.ImageURL,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
