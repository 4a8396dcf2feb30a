package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oticavisao/otica-api/internal/application/analytics"
	"github.com/oticavisao/otica-api/internal/application/auth"
	"github.com/oticavisao/otica-api/internal/application/inventory"
	"github.com/oticavisao/otica-api/internal/application/usecase"
	"github.com/oticavisao/otica-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ClientUC         *usecase.ClientUseCase
	ProductUC        *usecase.ProductUseCase
	LocationUC       *usecase.LocationUseCase
	SaleUC           *usecase.SaleUseCase
	TSOUC            *usecase.TSOUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	StockQueries     *inventory.StockQueryUseCase
	DashboardUC      *analytics.DashboardUseCase
	JWTSecret        string
}

// Router registra as rotas da API.
// Papéis: vendedor opera vendas/clientes/receitas; gerente também mexe em
// estoque e cadastros; admin adicionalmente gerencia usuários.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	gerenteUp := RequireRole(entity.RoleAdmin, entity.RoleGerente)

	// Auth: login público; cadastro de usuário só admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rotas protegidas (Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", gerenteUp, clientHandler.Delete)

	// Produtos (escrita só gerente/admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", gerenteUp, productHandler.Create)
	products.Put("/:id", gerenteUp, productHandler.Update)
	products.Delete("/:id", gerenteUp, productHandler.Delete)

	// Locais de estoque (escrita só gerente/admin)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", gerenteUp, locationHandler.Create)

	// Estoque: movimentos, ajuste, limiares, alertas
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.StockQueries)
	invGroup.Post("/movements", gerenteUp, inventoryHandler.RegisterMovement)
	invGroup.Post("/adjust", gerenteUp, inventoryHandler.AdjustStock)
	invGroup.Put("/thresholds", gerenteUp, inventoryHandler.UpdateThresholds)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/stock", inventoryHandler.ListStock)
	invGroup.Get("/alerts", inventoryHandler.ListAlerts)

	// Vendas
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id/status", saleHandler.UpdateStatus)

	// Receitas (TSO)
	tso := protected.Group("/tso")
	tsoHandler := NewTSOHandler(deps.TSOUC)
	tso.Post("/", tsoHandler.Create)
	tso.Get("/", tsoHandler.ListByClient)
	tso.Get("/:id", tsoHandler.GetByID)
	tso.Get("/:id/pdf", tsoHandler.GetPDF)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
