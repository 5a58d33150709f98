package handlers

import (
	"net/http"

	request "repairdesk/internal/adapter/http/dto/request"
	response "repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TicketHandler serves the repair ticket state machine.
type TicketHandler struct {
	usecase usecase.ITicketUseCase
}

func NewTicketHandler(uc usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

// CreateTicket godoc
// @Summary      Open a repair ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        X-Performed-By  header  string                        false  "Staff member"
// @Param        body            body    request.CreateTicketRequest  true   "Ticket"
// @Success      201  {object}  response.TicketResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.CreateTicketRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput(performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	t, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTicket(t))
}

// GetTicket godoc
// @Summary      Get a ticket by id
// @Tags         tickets
// @Produce      json
// @Param        id   path      string  true  "Ticket id"
// @Success      200  {object}  response.TicketResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(t))
}

// GetTicketByNumber godoc
// @Summary      Get a ticket by its human-readable number
// @Tags         tickets
// @Produce      json
// @Param        number  path      string  true  "Ticket number, e.g. TKT-000001"
// @Success      200     {object}  response.TicketResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /tickets/number/{number} [get]
func (h *TicketHandler) GetTicketByNumber(c *gin.Context) {
	t, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(t))
}

// AdvanceTicket godoc
// @Summary      Move a ticket one step forward, or back to an earlier step
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id    path    string                         true  "Ticket id"
// @Param        body  body    request.AdvanceTicketRequest  true  "Target status"
// @Success      200  {object}  response.TicketResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tickets/{id}/status [patch]
func (h *TicketHandler) AdvanceTicket(c *gin.Context) {
	var payload request.AdvanceTicketRequest
	if !bindJSON(c, &payload) {
		return
	}
	t, err := h.usecase.Advance(c.Request.Context(), c.Param("id"), payload.Target(), performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(t))
}

// UpdateTicketCosts godoc
// @Summary      Set estimated and/or actual cost
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id    path    string                       true  "Ticket id"
// @Param        body  body    request.UpdateCostsRequest  true  "Costs"
// @Success      200  {object}  response.TicketResponse
// @Router       /tickets/{id}/costs [patch]
func (h *TicketHandler) UpdateTicketCosts(c *gin.Context) {
	var payload request.UpdateCostsRequest
	if !bindJSON(c, &payload) {
		return
	}
	estimated, actual, err := payload.Resolve()
	if err != nil {
		respondError(c, err)
		return
	}
	t, err := h.usecase.UpdateCosts(c.Request.Context(), c.Param("id"), estimated, actual, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(t))
}
