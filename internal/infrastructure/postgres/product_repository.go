package postgres

import (
	"context"
	"fmt"

	"github.com/tablesprint/catalog-api/internal/domain/entity"
	"github.com/tablesprint/catalog-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (tabla product).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, proname, subname, name, sequence, image_url, status::text, created_at
		FROM product ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Proname, &p.Subname, &p.Name, &p.Sequence, &p.ImageURL, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create inserta un producto y devuelve el id generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO product (proname, subname, name, sequence, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6::catalog_status)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		product.Proname, product.Subname, product.Name, product.Sequence, product.ImageURL, product.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// Update sobrescribe todos los campos mutables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE product SET proname = $2, subname = $3, name = $4, sequence = $5, image_url = $6, status = $7::catalog_status
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Proname, product.Subname, product.Name, product.Sequence,
		product.ImageURL, product.Status,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
