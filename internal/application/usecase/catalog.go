package usecase

import "github.com/tablesprint/catalog-api/internal/domain/entity"

// statusOrDefault aplica el DEFAULT 'Active' de la columna cuando el cliente omite status.
// Cualquier otro valor llega tal cual a la DB, que es quien valida el enum.
func statusOrDefault(status string) string {
	if status == "" {
		return entity.StatusActive
	}
	return status
}

// valueOf desreferencia columnas NOT NULL leídas de la DB; nil da el valor cero.
func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
