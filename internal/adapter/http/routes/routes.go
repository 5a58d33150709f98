package routes

import (
	"net/http"

	_ "repairdesk/docs"
	"repairdesk/internal/adapter/http/handlers"
	"repairdesk/internal/adapter/http/middleware"
	"repairdesk/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers is the full set of HTTP handlers mounted under /v1.
type Handlers struct {
	Ticket   *handlers.TicketHandler
	Estimate *handlers.EstimateHandler
	Invoice  *handlers.InvoiceHandler
	Payment  *handlers.PaymentHandler
	Warranty *handlers.WarrantyHandler
	Customer *handlers.CustomerHandler
}

// New builds the gin engine: middleware chain, swagger, health and the v1 API.
func New(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", health)

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addTicketRoutes(v1, h.Ticket)
	addEstimateRoutes(v1, h.Estimate)
	addInvoiceRoutes(v1, h.Invoice, h.Payment)
	addPaymentRoutes(v1, h.Payment)
	addWarrantyRoutes(v1, h.Warranty)
	addCustomerRoutes(v1, h.Customer)
	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
