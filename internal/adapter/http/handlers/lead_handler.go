package handlers

import (
	"errors"
	"log"
	"net/http"

	request "commercial_agent/internal/adapter/http/dto/request"
	response "commercial_agent/internal/adapter/http/dto/response"
	"commercial_agent/internal/usecase"
	"commercial_agent/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler handles lead intake and qualification.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead registers a PRELIMINARY lead.
//
// @Summary  Lead intake
// @Accept   json
// @Produce  json
// @Param    lead body request.CreateLeadRequest true "intake payload"
// @Success  201 {object} response.LeadResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.Valid() {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	l, err := h.usecase.CreateLead(c.Request.Context(), payload.ResolveSource(), payload.Details, payload.ResolveCriteria())
	if err != nil {
		log.Printf("[lead][handler] create failed source=%s err=%v", payload.Source, err)
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(l))
}

// QualifyLead scores the lead and records the MQL decision.
//
// @Summary  Qualify a lead
// @Produce  json
// @Param    lead_id path string true "lead id"
// @Success  200 {object} response.LeadResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /leads/{lead_id}/qualify [post]
func (h *LeadHandler) QualifyLead(c *gin.Context) {
	leadID := c.Param("lead_id")

	l, err := h.usecase.QualifyLead(c.Request.Context(), leadID)
	if err != nil {
		log.Printf("[lead][handler] qualify failed lead_id=%s err=%v", leadID, err)
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(l))
}

// GetLeadByID returns a lead record.
//
// @Summary  Get a lead
// @Produce  json
// @Param    lead_id path string true "lead id"
// @Success  200 {object} response.LeadResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /leads/{lead_id} [get]
func (h *LeadHandler) GetLeadByID(c *gin.Context) {
	leadID := c.Param("lead_id")

	l, err := h.usecase.GetByID(c.Request.Context(), leadID)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(l))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
