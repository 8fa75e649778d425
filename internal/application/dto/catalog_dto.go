package dto

import "time"

// CategoryRequest entrada para crear o sobrescribir una categoría.
// Los campos omitidos llegan como NULL a la DB, que rechaza los NOT NULL.
type CategoryRequest struct {
	Name     *string `json:"name"`
	Sequence *int    `json:"sequence"`
	ImageURL *string `json:"image_url"`
	Status   string  `json:"status"`
}

// CategoryResponse fila de la tabla categories.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Sequence  int       `json:"sequence"`
	ImageURL  *string   `json:"image_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SubcategoryRequest entrada para crear o sobrescribir una subcategoría.
// Name es el nombre de la categoría padre.
type SubcategoryRequest struct {
	Subname  *string `json:"subname"`
	Name     *string `json:"name"`
	Sequence *int    `json:"sequence"`
	ImageURL *string `json:"image_url"`
	Status   string  `json:"status"`
}

// SubcategoryResponse fila de la tabla subcategories.
type SubcategoryResponse struct {
	ID        int64     `json:"id"`
	Subname   string    `json:"subname"`
	Name      string    `json:"name"`
	Sequence  int       `json:"sequence"`
	ImageURL  *string   `json:"image_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductRequest entrada para crear o sobrescribir un producto.
type ProductRequest struct {
	Proname  *string `json:"proname"`
	Subname  *string `json:"subname"`
	Name     *string `json:"name"`
	Sequence *int    `json:"sequence"`
	ImageURL *string `json:"image_url"`
	Status   string  `json:"status"`
}

// ProductResponse fila de la tabla product.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Proname   string    `json:"proname"`
	Subname   string    `json:"subname"`
	Name      string    `json:"name"`
	Sequence  int       `json:"sequence"`
	ImageURL  *string   `json:"image_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
