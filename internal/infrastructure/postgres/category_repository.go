package postgres

import (
	"context"
	"fmt"

	"github.com/tablesprint/catalog-api/internal/domain/entity"
	"github.com/tablesprint/catalog-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List devuelve todas las categorías, sin filtros ni paginación.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, name, sequence, image_url, status::text, created_at
		FROM categories ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Sequence, &c.ImageURL, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create inserta una categoría y devuelve el id generado. Un status fuera del enum
// falla en la DB (22P02) y se propaga como error de almacenamiento.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) (int64, error) {
	query := `
		INSERT INTO categories (name, sequence, image_url, status)
		VALUES ($1, $2, $3, $4::catalog_status)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		category.Name, category.Sequence, category.ImageURL, category.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return id, nil
}

// Update sobrescribe todos los campos mutables. Un id inexistente no es error.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, sequence = $3, image_url = $4, status = $5::catalog_status
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Sequence, category.ImageURL, category.Status,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID sin comprobar existencia.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
