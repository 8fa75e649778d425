package entity

import "time"

// Product producto del catálogo. Subname y Name referencian subcategoría y categoría
// por nombre, no por id.
type Product struct {
	ID        int64
	Proname   *string
	Subname   *string
	Name      *string
	Sequence  *int
	ImageURL  *string
	Status    string
	CreatedAt time.Time
}
