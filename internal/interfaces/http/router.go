package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tablesprint/catalog-api/internal/application/auth"
	"github.com/tablesprint/catalog-api/internal/application/upload"
	"github.com/tablesprint/catalog-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubcategoryUC *usecase.SubcategoryUseCase
	ProductUC     *usecase.ProductUseCase
	UploadUC      *upload.UploadUseCase
	JWTSecret     string
}

// Router registra las rutas de la API en la raíz del servicio.
func Router(app fiber.Router, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Única ruta que exige token
	app.Get("/protected", AuthMiddleware(deps.JWTSecret), authHandler.Protected)

	// Uploads (público)
	uploadHandler := NewUploadHandler(deps.UploadUC)
	app.Post("/upload", uploadHandler.Upload)
	app.Get("/uploads/:filename", uploadHandler.Serve)

	// Catálogo (público, sin relación con auth)
	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	subcategories := app.Group("/subcategories")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	subcategories.Get("/", subcategoryHandler.List)
	subcategories.Post("/", subcategoryHandler.Create)
	subcategories.Put("/:id", subcategoryHandler.Update)
	subcategories.Delete("/:id", subcategoryHandler.Delete)

	products := app.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
