package web

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/purchasing/config"
	"github.com/purchasing/web/handlers"
	"github.com/purchasing/web/middleware"
	"github.com/purchasing/web/views"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server. templateDir points at the HTML
// template root; pass "./web/templates" when running from the module root.
func NewServer(cfg *config.Config, h *handlers.Handler, templateDir string) *Server {
	// Initialize template engine
	engine := html.New(templateDir, ".html")
	engine.Reload(cfg.App.IsDevelopment())

	// Add custom template functions
	engine.AddFunc("formatDate", func(t time.Time) string {
		return views.FormatDate(t)
	})
	engine.AddFunc("formatCurrency", func(value decimal.Decimal) string {
		return views.FormatCurrency(value)
	})
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	// Create Fiber app with template engine
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")

			// API requests get a JSON error body
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(code).JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			// HTML error page
			return c.Status(code).Render("pages/error", fiber.Map{
				"Title":         "Erro",
				"Active":        "",
				"Error":         err.Error(),
				"Code":          code,
				"StoreOps":      c.Locals("StoreOps"),
				"TotalStoreOps": c.Locals("TotalStoreOps"),
			}, "layouts/base")
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Custom middleware to inject store operation logs into context
	app.Use(middleware.OpDebugMiddleware())

	// Method override middleware for HTML forms
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == "POST" {
			method := c.FormValue("_method")
			if method != "" {
				c.Method(method)
			}
		}
		return c.Next()
	})

	// Static files
	app.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(app, h)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Info().Str("port", port).Msg("server starting")
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app, used by handler tests
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	// Home page
	app.Get("/", h.HomePage)

	// Supplier management (order matters: specific routes before ":id")
	suppliers := app.Group("/suppliers")
	suppliers.Get("/", h.SupplierList)
	suppliers.Post("/", h.SupplierCreate)
	suppliers.Get("/:id/edit", h.SupplierEdit)
	suppliers.Get("/:id/delete", h.SupplierConfirmDelete)
	suppliers.Delete("/:id", h.SupplierDelete)

	// Purchase order management
	purchaseOrders := app.Group("/purchase-orders")
	purchaseOrders.Get("/", h.OrderList)
	purchaseOrders.Post("/", h.OrderCreate)
	purchaseOrders.Get("/:id", h.OrderView)

	// Stock reservation
	app.Get("/stock/reserve", h.StockReserveForm)
	app.Post("/stock/reserve", h.StockReserve)

	// Production requests
	app.Get("/production/requests", h.ProductionRequestForm)
	app.Post("/production/requests", h.ProductionRequest)

	// JSON API
	api := app.Group("/api")
	api.Get("/status", h.APIStatus)
	api.Get("/suppliers", h.APISuppliers)
	api.Get("/orders", h.APIOrders)
	api.Get("/inventory", h.APIInventory)
	api.Get("/finance", h.APIFinance)
	api.Get("/notifications", h.APINotifications)

	// Debug endpoint for store operation logs
	api.Get("/debug/ops", h.GetOpLogs)
	api.Delete("/debug/ops", h.ClearOpLogs)
}
