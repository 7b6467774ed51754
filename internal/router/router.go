package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "novabill/docs"
	"novabill/internal/handler"
	"novabill/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	invoiceH *handler.InvoiceHandler,
	clientH *handler.ClientHandler,
	statsH *handler.StatsHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Invoice routes
	invoices := v1.Group("/invoices")
	invoices.GET("", invoiceH.List)
	invoices.POST("", invoiceH.Create)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PUT("/:id", invoiceH.Update)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.GET("/:id/pdf", invoiceH.DownloadPDF)
	invoices.POST("/:id/email", invoiceH.Email)
	invoices.POST("/:id/archive", invoiceH.Archive)

	// Client routes
	clients := v1.Group("/clients")
	clients.GET("", clientH.List)
	clients.POST("", clientH.Create)

	// Stats
	v1.GET("/stats", statsH.GetStats)

	// Exports
	v1.GET("/exports/invoices", invoiceH.Export)

	return r
}
