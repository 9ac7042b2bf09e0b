package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/agencia-api/internal/application/auth"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/agencia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/agencia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/agencia-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/agencia-api/internal/interfaces/http"
	"github.com/jhoicas/agencia-api/pkg/config"
	"github.com/jhoicas/agencia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	contentRepo := postgres.NewContentRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	blogPostRepo := postgres.NewBlogPostRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tokenStore := cache.NewTokenStore(redisClient)
	authUC := auth.NewAuthUseCase(userRepo, tokenStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		RefreshTTL: time.Duration(cfg.JWT.RefreshTTLHours) * time.Hour,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	contentUC := usecase.NewContentUseCase(contentRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, txRunner)
	planUC := usecase.NewPlanUseCase(planRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	blogPostUC := usecase.NewBlogPostUseCase(blogPostRepo, txRunner)
	leadUC := usecase.NewLeadUseCase(leadRepo)

	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	leadReportUC := usecase.NewLeadReportUseCase(leadRepo, reportGenerator)

	uploadStore, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes())
	if err != nil {
		log.Fatal().Err(err).Msg("storage de uploads")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en http://localhost:<port>/docs. El JSON lo genera
	// `swag init` en el build; si no está presente no se monta la UI.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Agencia API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Archivos subidos desde el panel
	app.Static("/uploads", uploadStore.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ContentUC:   contentUC,
		ServiceUC:   serviceUC,
		PlanUC:      planUC,
		ProductUC:   productUC,
		BlogPostUC:  blogPostUC,
		LeadUC:      leadUC,
		LeadReport:  leadReportUC,
		UploadStore: uploadStore,
		UserRepo:    userRepo,
		JWTSecret:   cfg.JWT.Secret,
		Development: cfg.App.IsDevelopment(),
	})

	go func() {
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
