package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkrishnan/retailbill-api/internal/config"
	domainRepo "github.com/mkrishnan/retailbill-api/internal/domain/repository"
	"github.com/mkrishnan/retailbill-api/internal/presentation/http/handler"
	"github.com/mkrishnan/retailbill-api/internal/presentation/http/middleware"
	"github.com/mkrishnan/retailbill-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Invoice  *handler.InvoiceHandler
	Document *handler.DocumentHandler
	Customer *handler.CustomerHandler
	Product  *handler.ProductHandler
	Company  *handler.CompanyHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/auth/me", h.Auth.Me)

	// Employees
	protected.POST("/employees", h.Auth.Register)
	protected.GET("/employees", h.Auth.ListEmployees)

	// Invoices. Mutations go through the idempotency middleware so a
	// retried submission never creates a duplicate invoice.
	invoices := protected.Group("/invoices")
	invoices.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))
	{
		invoices.POST("", h.Invoice.Create)
		invoices.GET("", h.Invoice.List)
		invoices.GET("/export", h.Document.ExportRegister)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/:id/edit", h.Invoice.EditPrefill)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.PATCH("/:id/advance", h.Invoice.UpdateAdvance)
		invoices.PATCH("/:id/mark-paid", h.Invoice.MarkPaid)
		invoices.PATCH("/:id/mark-unpaid", h.Invoice.MarkUnpaid)
		invoices.DELETE("/:id", h.Invoice.Delete)

		// Document surfaces
		invoices.GET("/:id/document", h.Document.Preview)
		invoices.GET("/:id/print", h.Document.PrintHTML)
		invoices.GET("/:id/whatsapp", h.Document.WhatsApp)
		invoices.POST("/:id/receipt", h.Document.PrintReceipt)
	}

	// Printer status
	protected.GET("/printer/status", h.Document.PrinterStatus)

	// Customers
	customers := protected.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Products
	products := protected.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	// Company profile
	protected.GET("/company", h.Company.Get)
	protected.PUT("/company", h.Company.Update)
}
