package handlers

import (
	"net/http"
	"time"

	response "repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
	now     func() time.Time
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc, now: time.Now}
}

// GetCustomerRecords godoc
// @Summary      Every ticket, estimate, invoice and claim of a customer
// @Tags         customers
// @Produce      json
// @Param        customer_id  path      string  true  "Customer id"
// @Success      200          {object}  response.CustomerRecordsResponse
// @Router       /customers/{customer_id}/records [get]
func (h *CustomerHandler) GetCustomerRecords(c *gin.Context) {
	r, err := h.usecase.ListByCustomer(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerRecords(r, h.now()))
}

// GetCustomerBalance godoc
// @Summary      Outstanding and overdue totals of a customer
// @Tags         customers
// @Produce      json
// @Param        customer_id  path      string  true  "Customer id"
// @Success      200          {object}  response.CustomerBalanceResponse
// @Router       /customers/{customer_id}/balance [get]
func (h *CustomerHandler) GetCustomerBalance(c *gin.Context) {
	b, err := h.usecase.OutstandingBalance(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerBalance(b))
}
