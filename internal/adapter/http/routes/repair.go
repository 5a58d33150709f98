package routes

import (
	"repairdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTickets        = "/tickets"
	PathEstimates      = "/estimates"
	PathInvoices       = "/invoices"
	PathPayments       = "/payments"
	PathWarrantyClaims = "/warranty-claims"
	PathCustomers      = "/customers"
)

func addTicketRoutes(rg *gin.RouterGroup, h *handlers.TicketHandler) {
	tickets := rg.Group(PathTickets)
	{
		tickets.POST("", h.CreateTicket)
		tickets.GET("/:id", h.GetTicket)
		tickets.GET("/number/:number", h.GetTicketByNumber)
		tickets.PATCH("/:id/status", h.AdvanceTicket)
		tickets.PATCH("/:id/costs", h.UpdateTicketCosts)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.CreateEstimate)
		estimates.GET("/:id", h.GetEstimate)
		estimates.PUT("/:id/items", h.UpdateEstimateItems)
		estimates.POST("/:id/send", h.SendEstimate)
		estimates.POST("/:id/view", h.ViewEstimate)
		estimates.POST("/:id/approve", h.ApproveEstimate)
		estimates.POST("/:id/decline", h.DeclineEstimate)
		estimates.POST("/:id/expire", h.ExpireEstimate)
		estimates.POST("/:id/extend", h.ExtendEstimate)
		estimates.POST("/:id/duplicate", h.DuplicateEstimate)
		estimates.POST("/:id/convert", h.ConvertEstimate)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler, payments *handlers.PaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.CreateInvoice)
		invoices.POST("/from-estimate/:estimate_id", h.CreateInvoiceFromEstimate)
		invoices.GET("/:id", h.GetInvoice)
		invoices.GET("/:id/overdue", h.GetInvoiceOverdue)
		invoices.POST("/:id/send", h.SendInvoice)
		invoices.POST("/:id/remind", h.RemindInvoice)
		invoices.POST("/:id/view", h.ViewInvoice)
		invoices.POST("/:id/void", h.VoidInvoice)
		invoices.POST("/:id/payments", payments.ApplyPayment)
		invoices.GET("/:id/payments", payments.ListInvoicePayments)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", h.GetPayment)
		payments.POST("/:id/refund", h.RefundPayment)
	}
}

func addWarrantyRoutes(rg *gin.RouterGroup, h *handlers.WarrantyHandler) {
	claims := rg.Group(PathWarrantyClaims)
	{
		claims.POST("", h.FileClaim)
		claims.GET("/:id", h.GetClaim)
		claims.GET("/:id/days-remaining", h.GetDaysRemaining)
		claims.POST("/:id/approve", h.ApproveClaim)
		claims.POST("/:id/deny", h.DenyClaim)
		claims.POST("/:id/resolve", h.ResolveClaim)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("/:customer_id/records", h.GetCustomerRecords)
		customers.GET("/:customer_id/balance", h.GetCustomerBalance)
	}
}
