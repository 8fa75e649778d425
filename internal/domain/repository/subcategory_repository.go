package repository

import (
	"context"

	"github.com/tablesprint/catalog-api/internal/domain/entity"
)

// SubcategoryRepository define el puerto de persistencia para Subcategory (DIP).
type SubcategoryRepository interface {
	List(ctx context.Context) ([]*entity.Subcategory, error)
	Create(ctx context.Context, subcategory *entity.Subcategory) (int64, error)
	Update(ctx context.Context, subcategory *entity.Subcategory) error
	Delete(ctx context.Context, id int64) error
}
