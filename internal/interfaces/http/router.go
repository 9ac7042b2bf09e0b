package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/application/auth"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
	"github.com/jhoicas/agencia-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ContentUC   *usecase.ContentUseCase
	ServiceUC   *usecase.ServiceUseCase
	PlanUC      *usecase.PlanUseCase
	ProductUC   *usecase.ProductUseCase
	BlogPostUC  *usecase.BlogPostUseCase
	LeadUC      *usecase.LeadUseCase
	LeadReport  *usecase.LeadReportUseCase
	UploadStore *storage.LocalStore
	UserRepo    repository.UserRepository
	JWTSecret   string
	Development bool
}

// Router registra las rutas de la API. Reglas de acceso:
//   - GET de catálogo/contenido: públicos, solo recursos visibles; con token
//     de editor se habilita ver inactivos y borradores.
//   - POST /leads: público (formulario de contacto).
//   - Escrituras: editor o admin; borrado definitivo y usuarios: solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	exposeDetails = deps.Development

	api := app.Group("/api")

	requireAuth := AuthMiddleware(deps.JWTSecret, deps.UserRepo)
	optionalAuth := OptionalAuth(deps.JWTSecret, deps.UserRepo)
	editorOnly := RequireRole(entity.RoleAdmin, entity.RoleEditor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/register", requireAuth, adminOnly, authHandler.Register)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)
	authGroup.Get("/me", requireAuth, authHandler.Me)
	authGroup.Put("/change-password", requireAuth, authHandler.ChangePassword)

	// Users (solo admin)
	users := api.Group("/users", requireAuth, adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/status", userHandler.ChangeStatus)

	// Content
	content := api.Group("/content")
	contentHandler := NewContentHandler(deps.ContentUC)
	content.Get("/", optionalAuth, contentHandler.List)
	content.Get("/:section_key", optionalAuth, contentHandler.GetBySectionKey)
	content.Put("/:section_key", requireAuth, editorOnly, contentHandler.Upsert)
	content.Patch("/:section_key/partial", requireAuth, editorOnly, contentHandler.UpdatePartial)
	content.Patch("/:section_key/status", requireAuth, editorOnly, contentHandler.ChangeStatus)
	content.Delete("/:section_key", requireAuth, editorOnly, contentHandler.Delete)

	// Services
	services := api.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", optionalAuth, serviceHandler.List)
	services.Post("/reorder", requireAuth, editorOnly, serviceHandler.Reorder)
	services.Get("/:service_id", optionalAuth, serviceHandler.GetByServiceID)
	services.Post("/", requireAuth, editorOnly, serviceHandler.Create)
	services.Put("/:service_id", requireAuth, editorOnly, serviceHandler.Update)
	services.Patch("/:service_id/status", requireAuth, editorOnly, serviceHandler.ChangeStatus)
	services.Delete("/:service_id", requireAuth, editorOnly, serviceHandler.Delete)

	// Plans
	plans := api.Group("/plans")
	planHandler := NewPlanHandler(deps.PlanUC)
	plans.Get("/", optionalAuth, planHandler.List)
	plans.Post("/reorder", requireAuth, editorOnly, planHandler.Reorder)
	plans.Get("/:plan_id", optionalAuth, planHandler.GetByPlanID)
	plans.Post("/", requireAuth, editorOnly, planHandler.Create)
	plans.Put("/:plan_id", requireAuth, editorOnly, planHandler.Update)
	plans.Patch("/:plan_id/featured", requireAuth, editorOnly, planHandler.SetFeatured)
	plans.Patch("/:plan_id/status", requireAuth, editorOnly, planHandler.ChangeStatus)
	plans.Delete("/:plan_id", requireAuth, editorOnly, planHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", optionalAuth, productHandler.List)
	products.Post("/reorder", requireAuth, editorOnly, productHandler.Reorder)
	products.Get("/:product_id", optionalAuth, productHandler.GetByProductID)
	products.Post("/", requireAuth, editorOnly, productHandler.Create)
	products.Put("/:product_id", requireAuth, editorOnly, productHandler.Update)
	products.Patch("/:product_id/featured", requireAuth, editorOnly, productHandler.SetFeatured)
	products.Patch("/:product_id/status", requireAuth, editorOnly, productHandler.ChangeStatus)
	products.Delete("/:product_id", requireAuth, editorOnly, productHandler.Delete)

	// Episodes (podcast)
	episodes := api.Group("/episodes")
	blogPostHandler := NewBlogPostHandler(deps.BlogPostUC)
	episodes.Get("/", optionalAuth, blogPostHandler.List)
	episodes.Post("/reorder", requireAuth, editorOnly, blogPostHandler.Reorder)
	episodes.Get("/:slug", optionalAuth, blogPostHandler.GetBySlug)
	episodes.Post("/", requireAuth, editorOnly, blogPostHandler.Create)
	episodes.Put("/:slug", requireAuth, editorOnly, blogPostHandler.Update)
	episodes.Patch("/:slug/status", requireAuth, editorOnly, blogPostHandler.ChangeStatus)
	episodes.Patch("/:slug/featured", requireAuth, editorOnly, blogPostHandler.SetFeatured)
	episodes.Delete("/:slug", requireAuth, editorOnly, blogPostHandler.Delete)

	// Leads (CRM)
	leads := api.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC, deps.LeadReport)
	leads.Post("/", leadHandler.Create) // formulario público
	leads.Get("/", requireAuth, leadHandler.List)
	leads.Get("/search", requireAuth, leadHandler.List)
	leads.Get("/estadisticas", requireAuth, leadHandler.Estadisticas)
	leads.Get("/reporte", requireAuth, editorOnly, leadHandler.Reporte)
	leads.Get("/:id", requireAuth, leadHandler.GetByID)
	leads.Put("/:id", requireAuth, editorOnly, leadHandler.Update)
	leads.Put("/:id/estado", requireAuth, editorOnly, leadHandler.ChangeEstado)
	leads.Put("/:id/asignar", requireAuth, editorOnly, leadHandler.Assign)
	leads.Delete("/:id", requireAuth, adminOnly, leadHandler.Delete)

	// Uploads
	uploads := api.Group("/uploads", requireAuth, editorOnly)
	uploadHandler := NewUploadHandler(deps.UploadStore)
	uploads.Post("/", uploadHandler.Upload)
	uploads.Delete("/:filename", adminOnly, uploadHandler.Delete)
}
