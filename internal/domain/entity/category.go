package entity

import "time"

// Estados válidos de un registro del catálogo (enum catalog_status en la DB).
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Category categoría raíz del catálogo.
type Category struct {
	ID        int64
	Name      *string
	Sequence  *int
	ImageURL  *string // nil si no tiene imagen
	Status    string  // Active, Inactive
	CreatedAt time.Time
}
