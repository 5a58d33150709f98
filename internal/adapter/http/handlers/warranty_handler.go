package handlers

import (
	"net/http"

	request "repairdesk/internal/adapter/http/dto/request"
	response "repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WarrantyHandler struct {
	usecase usecase.IWarrantyUseCase
}

func NewWarrantyHandler(uc usecase.IWarrantyUseCase) *WarrantyHandler {
	return &WarrantyHandler{usecase: uc}
}

// FileClaim godoc
// @Summary      File a warranty claim against a picked-up ticket
// @Tags         warranty
// @Accept       json
// @Produce      json
// @Param        body  body      request.FileClaimRequest  true  "Claim"
// @Success      201   {object}  response.WarrantyClaimResponse
// @Failure      409   {object}  pkg.HTTPError  "CLAIM_IN_PROGRESS"
// @Failure      422   {object}  pkg.HTTPError  "WARRANTY_EXPIRED or NOT_ELIGIBLE"
// @Router       /warranty-claims [post]
func (h *WarrantyHandler) FileClaim(c *gin.Context) {
	var payload request.FileClaimRequest
	if !bindJSON(c, &payload) {
		return
	}
	claim, err := h.usecase.FileClaim(c.Request.Context(), payload.ToInput(performedBy(c)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWarrantyClaim(claim))
}

// GetClaim godoc
// @Summary      Get a warranty claim
// @Tags         warranty
// @Produce      json
// @Param        id   path      string  true  "Claim id"
// @Success      200  {object}  response.WarrantyClaimResponse
// @Router       /warranty-claims/{id} [get]
func (h *WarrantyHandler) GetClaim(c *gin.Context) {
	claim, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWarrantyClaim(claim))
}

// ApproveClaim godoc
// @Summary      Approve a pending claim
// @Tags         warranty
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true   "Claim id"
// @Param        body  body      request.ApproveClaimRequest  false  "Review notes"
// @Success      200   {object}  response.WarrantyClaimResponse
// @Router       /warranty-claims/{id}/approve [post]
func (h *WarrantyHandler) ApproveClaim(c *gin.Context) {
	var payload request.ApproveClaimRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	claim, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.Notes, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWarrantyClaim(claim))
}

// DenyClaim godoc
// @Summary      Deny a pending claim
// @Tags         warranty
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Claim id"
// @Param        body  body      request.ReasonRequest  true  "Reason"
// @Success      200   {object}  response.WarrantyClaimResponse
// @Router       /warranty-claims/{id}/deny [post]
func (h *WarrantyHandler) DenyClaim(c *gin.Context) {
	var payload request.ReasonRequest
	if !bindJSON(c, &payload) {
		return
	}
	claim, err := h.usecase.Deny(c.Request.Context(), c.Param("id"), payload.Reason, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWarrantyClaim(claim))
}

// ResolveClaim godoc
// @Summary      Carry out the resolution of an approved claim
// @Tags         warranty
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true   "Claim id"
// @Param        body  body      request.ResolveClaimRequest  false  "Refund amount for partial-refund claims"
// @Success      200   {object}  response.WarrantyClaimResponse
// @Router       /warranty-claims/{id}/resolve [post]
func (h *WarrantyHandler) ResolveClaim(c *gin.Context) {
	var payload request.ResolveClaimRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	amount, err := payload.Resolve()
	if err != nil {
		respondError(c, err)
		return
	}
	claim, err := h.usecase.Resolve(c.Request.Context(), c.Param("id"), amount, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWarrantyClaim(claim))
}

// GetDaysRemaining godoc
// @Summary      Whole days left on the warranty behind a claim
// @Tags         warranty
// @Produce      json
// @Param        id   path      string  true  "Claim id"
// @Success      200  {object}  response.DaysRemainingResponse
// @Router       /warranty-claims/{id}/days-remaining [get]
func (h *WarrantyHandler) GetDaysRemaining(c *gin.Context) {
	s, err := h.usecase.DaysRemaining(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWarrantyStatus(s))
}
