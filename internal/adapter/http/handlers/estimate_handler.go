package handlers

import (
	"context"
	"errors"
	"net/http"

	request "repairdesk/internal/adapter/http/dto/request"
	response "repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// EstimateHandler serves the quote lifecycle.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Create a draft estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        X-Performed-By  header  string                          false  "Staff member"
// @Param        body            body    request.CreateEstimateRequest  true   "Estimate"
// @Success      201  {object}  response.EstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput(performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	e, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(e))
}

// GetEstimate godoc
// @Summary      Get an estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// SendEstimate godoc
// @Summary      Send (or re-send a declined) estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/send [post]
func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Send)
}

// ViewEstimate godoc
// @Summary      Record that the customer opened the estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Router       /estimates/{id}/view [post]
func (h *EstimateHandler) ViewEstimate(c *gin.Context) {
	h.transition(c, h.usecase.MarkViewed)
}

// ApproveEstimate godoc
// @Summary      Approve an estimate within its validity window
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Failure      422  {object}  pkg.HTTPError  "EXPIRED"
// @Router       /estimates/{id}/approve [post]
func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

// ExpireEstimate godoc
// @Summary      Expire an estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate id"
// @Success      200  {object}  response.EstimateResponse
// @Router       /estimates/{id}/expire [post]
func (h *EstimateHandler) ExpireEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Expire)
}

// DuplicateEstimate godoc
// @Summary      Copy an estimate into a new draft
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Source estimate id"
// @Success      201  {object}  response.EstimateResponse
// @Router       /estimates/{id}/duplicate [post]
func (h *EstimateHandler) DuplicateEstimate(c *gin.Context) {
	e, err := h.usecase.Duplicate(c.Request.Context(), c.Param("id"), performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(e))
}

// DeclineEstimate godoc
// @Summary      Decline an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id    path    string                  true  "Estimate id"
// @Param        body  body    request.ReasonRequest  true  "Reason"
// @Success      200  {object}  response.EstimateResponse
// @Router       /estimates/{id}/decline [post]
func (h *EstimateHandler) DeclineEstimate(c *gin.Context) {
	var payload request.ReasonRequest
	if !bindJSON(c, &payload) {
		return
	}
	e, err := h.usecase.Decline(c.Request.Context(), c.Param("id"), payload.Reason, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// ExtendEstimate godoc
// @Summary      Push the validity date out by a number of days
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id    path    string                          true  "Estimate id"
// @Param        body  body    request.ExtendEstimateRequest  true  "Days"
// @Success      200  {object}  response.EstimateResponse
// @Router       /estimates/{id}/extend [post]
func (h *EstimateHandler) ExtendEstimate(c *gin.Context) {
	var payload request.ExtendEstimateRequest
	if !bindJSON(c, &payload) {
		return
	}
	e, err := h.usecase.Extend(c.Request.Context(), c.Param("id"), payload.Days, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// UpdateEstimateItems godoc
// @Summary      Replace the line items of a draft estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id    path    string                       true  "Estimate id"
// @Param        body  body    request.UpdateItemsRequest  true  "Items"
// @Success      200  {object}  response.EstimateResponse
// @Router       /estimates/{id}/items [put]
func (h *EstimateHandler) UpdateEstimateItems(c *gin.Context) {
	var payload request.UpdateItemsRequest
	if !bindJSON(c, &payload) {
		return
	}
	items, taxRate, err := payload.Resolve()
	if err != nil {
		respondError(c, err)
		return
	}
	e, err := h.usecase.UpdateItems(c.Request.Context(), c.Param("id"), items, taxRate, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// ConvertEstimate godoc
// @Summary      Open a repair ticket from an approved estimate
// @Description  Converting an already converted estimate returns the existing ticket with 200.
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate id"
// @Success      201  {object}  response.TicketResponse
// @Success      200  {object}  response.TicketResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/convert [post]
func (h *EstimateHandler) ConvertEstimate(c *gin.Context) {
	id := c.Param("id")
	t, err := h.usecase.Convert(c.Request.Context(), id, performedBy(c))
	if errors.Is(err, errs.ErrAlreadyConverted) && t.ID != "" {
		log.Info().Str("estimate_id", id).Str("ticket_id", t.ID).Msg("[estimate][handler] already converted")
		c.JSON(http.StatusOK, response.FromTicket(t))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTicket(t))
}

func (h *EstimateHandler) transition(c *gin.Context, fn func(ctx context.Context, id, performedBy string) (entities.Estimate, error)) {
	e, err := fn(c.Request.Context(), c.Param("id"), performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}
