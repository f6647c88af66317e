package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/despachosur/facturacion-api/internal/application/analytics"
	"github.com/despachosur/facturacion-api/internal/application/auth"
	"github.com/despachosur/facturacion-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClienteUC    *billing.ClienteUseCase
	PrefacturaUC *billing.PrefacturaUseCase
	FacturaUC    *billing.FacturaUseCase
	FacturaPDF   *billing.FacturaPDFUseCase
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todo lo que no es auth requiere Bearer
// Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	// El logout no exige sesión: descartar un token ya vencido también es un
	// logout válido.
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes y despachantes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Prefacturas (protegido)
	prefacturas := protected.Group("/prefacturas")
	prefacturaHandler := NewPrefacturaHandler(deps.PrefacturaUC)
	prefacturas.Post("/", prefacturaHandler.Create)
	prefacturas.Get("/", prefacturaHandler.List)
	prefacturas.Get("/:id", prefacturaHandler.GetByID)
	prefacturas.Put("/:id", prefacturaHandler.Update)
	prefacturas.Delete("/:id", prefacturaHandler.Delete)

	// Facturas (protegido)
	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.FacturaPDF)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/", facturaHandler.List)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Get("/:id/pdf", facturaHandler.PDF)
	facturas.Put("/:id", facturaHandler.Update)
	facturas.Delete("/:id", facturaHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
