package entity

import "time"

// Subcategory subcategoría. Name es el nombre de la categoría padre en texto libre (sin FK).
type Subcategory struct {
	ID        int64
	Subname   *string
	Name      *string
	Sequence  *int
	ImageURL  *string
	Status    string
	CreatedAt time.Time
}
