package postgres

import (
	"context"
	"fmt"

	"github.com/tablesprint/catalog-api/internal/domain/entity"
	"github.com/tablesprint/catalog-api/internal/domain/repository"
)

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

// List devuelve todas las subcategorías.
func (r *SubcategoryRepo) List(ctx context.Context) ([]*entity.Subcategory, error) {
	query := `
		SELECT id, subname, name, sequence, image_url, status::text, created_at
		FROM subcategories ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Subcategory, 0)
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.Subname, &s.Name, &s.Sequence, &s.ImageURL, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Create inserta una subcategoría y devuelve el id generado.
func (r *SubcategoryRepo) Create(ctx context.Context, subcategory *entity.Subcategory) (int64, error) {
	query := `
		INSERT INTO subcategories (subname, name, sequence, image_url, status)
		VALUES ($1, $2, $3, $4, $5::catalog_status)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		subcategory.Subname, subcategory.Name, subcategory.Sequence, subcategory.ImageURL, subcategory.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert subcategory: %w", err)
	}
	return id, nil
}

// Update sobrescribe todos los campos mutables.
func (r *SubcategoryRepo) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	query := `
		UPDATE subcategories SET subname = $2, name = $3, sequence = $4, image_url = $5, status = $6::catalog_status
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		subcategory.ID, subcategory.Subname, subcategory.Name, subcategory.Sequence,
		subcategory.ImageURL, subcategory.Status,
	)
	if err != nil {
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// Delete elimina una subcategoría por ID.
func (r *SubcategoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}
