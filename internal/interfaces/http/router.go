package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/inventario-ledger/internal/application/analytics"
	"github.com/jhoicas/inventario-ledger/internal/application/auth"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	ProviderUC  *usecase.ProviderUseCase
	UserUC      *usecase.UserUseCase
	SaleUC      *usecase.SaleUseCase
	LedgerUC    *inventory.LedgerUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	// LoginRateLimit intentos de login por minuto y por IP; 0 lo desactiva.
	LoginRateLimit int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)
	currentUser := CurrentUser(deps.AuthUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	if deps.LoginRateLimit > 0 {
		authGroup.Post("/login", loginLimiter(deps.LoginRateLimit), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Products (protegido)
	products := api.Group("/products", requireAuth, currentUser)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Providers (protegido)
	providers := api.Group("/providers", requireAuth, currentUser)
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Get("/", providerHandler.List)
	providers.Post("/", providerHandler.Create)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Put("/:id", providerHandler.Update)
	providers.Delete("/:id", providerHandler.Delete)

	// Movements (protegido)
	movements := api.Group("/movements", requireAuth, currentUser)
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)

	// Users (solo admin)
	users := api.Group("/users", requireAuth, currentUser, RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Dashboard (protegido)
	dashboard := api.Group("/dashboard", requireAuth, currentUser)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
	dashboard.Get("/valuation", dashboardHandler.Valuation)
	dashboard.Get("/monthly", dashboardHandler.Monthly)
	dashboard.Get("/recent", dashboardHandler.Recent)

	// Sales y reportes (protegido)
	api.Get("/sales", requireAuth, currentUser, NewSaleHandler(deps.SaleUC).List)
	if deps.ReportUC != nil {
		api.Get("/reports/inventory.pdf", requireAuth, currentUser, NewReportHandler(deps.ReportUC).InventoryPDF)
	}
}

func loginLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "Demasiados intentos, espera un minuto",
			})
		},
	})
}
