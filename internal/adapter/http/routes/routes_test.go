package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"repairdesk/internal/adapter/http/handlers"
	"repairdesk/internal/adapter/http/middleware"
	"repairdesk/internal/config"

	"github.com/stretchr/testify/assert"
)

func newTestEngine() http.Handler {
	return New(&config.Config{Env: "test"}, Handlers{
		Ticket:   handlers.NewTicketHandler(nil),
		Estimate: handlers.NewEstimateHandler(nil),
		Invoice:  handlers.NewInvoiceHandler(nil),
		Payment:  handlers.NewPaymentHandler(nil),
		Warranty: handlers.NewWarrantyHandler(nil),
		Customer: handlers.NewCustomerHandler(nil),
	})
}

func TestNew_HealthAndPing(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestNew_BadBodiesNeverReachTheUseCase(t *testing.T) {
	r := newTestEngine()

	for _, path := range []string{
		"/v1/tickets",
		"/v1/estimates",
		"/v1/invoices",
		"/v1/warranty-claims",
		"/v1/invoices/inv-1/payments",
		"/v1/payments/p-1/refund",
	} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestNew_UnknownRoute(t *testing.T) {
	w := httptest.NewRecorder()
	newTestEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
