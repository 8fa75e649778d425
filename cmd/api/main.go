package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/tablesprint/catalog-api/internal/application/auth"
	"github.com/tablesprint/catalog-api/internal/application/upload"
	"github.com/tablesprint/catalog-api/internal/application/usecase"
	"github.com/tablesprint/catalog-api/internal/infrastructure/postgres"
	"github.com/tablesprint/catalog-api/internal/infrastructure/storage"
	httpRouter "github.com/tablesprint/catalog-api/internal/interfaces/http"
	"github.com/tablesprint/catalog-api/pkg/config"
	"github.com/tablesprint/catalog-api/pkg/logger"
)

// @title          Tablesprint Catalog API
// @version        1.0
// @description    Auth, categorías, subcategorías, productos e imágenes.
// @BasePath       /
// @securityDefinitions.apikey Bearer
// @in             header
// @name           Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := log.WithContext(context.Background())
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("esquema actualizado")
	}

	imageStore, err := newImageStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}
	log.Info().Str("driver", cfg.Storage.Driver).Msg("almacenamiento de imágenes listo")
	log.Debug().
		Str("upload_dir", cfg.Storage.UploadDir).
		Str("s3_bucket", cfg.Storage.S3.Bucket).
		Str("s3_endpoint", cfg.Storage.S3.Endpoint).
		Int("body_limit_mb", cfg.HTTP.BodyLimitMB).
		Msg("configuración de almacenamiento")

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.AllowOrigins}))
	// Las imágenes se consumen desde otros orígenes (panel web).
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Tablesprint Catalog API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    usecase.NewCategoryUseCase(categoryRepo),
		SubcategoryUC: usecase.NewSubcategoryUseCase(subcategoryRepo),
		ProductUC:     usecase.NewProductUseCase(productRepo),
		UploadUC:      upload.NewUploadUseCase(imageStore),
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newImageStore elige el backend de imágenes según STORAGE_DRIVER.
func newImageStore(ctx context.Context, cfg config.StorageConfig) (upload.ImageStore, error) {
	if cfg.Driver == config.StorageS3 {
		return storage.NewS3Store(ctx, cfg.S3)
	}
	return storage.NewLocalStore(cfg.UploadDir), nil
}
