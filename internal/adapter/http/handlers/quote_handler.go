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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles quote creation, lookup and the sales-closing status
// transitions.

type QuoteHandler struct {
	usecase usecase.IQuoteSagaUseCase
}

func NewQuoteHandler(uc usecase.IQuoteSagaUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote starts the quote saga and answers 202 before either agent has
// been reached.
//
// @Summary  Create a quote and start the pricing saga
// @Accept   json
// @Produce  json
// @Param    quote body request.CreateQuoteRequest true "creation payload"
// @Success  202 {object} response.QuoteAcceptedResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.Valid() {
		log.Printf("[quote][handler] create rejected err=%v", err)
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), payload.ResolveLeadID(), payload.OperationsPayload, payload.FinancePayload)
	if err != nil {
		log.Printf("[quote][handler] create failed lead_id=%s err=%v", payload.ResolveLeadID(), err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] create accepted quote_id=%s lead_id=%s", q.ID, q.LeadID)

	c.JSON(http.StatusAccepted, response.QuoteAccepted(q.ID))
}

// GetQuoteByID returns the current quote record.
//
// @Summary  Get a quote
// @Produce  json
// @Param    quote_id path string true "quote id"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	quoteID := c.Param("quote_id")

	q, err := h.usecase.GetQuote(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuoteStatus applies a sales-closing transition (SENT/WON/LOST).
//
// @Summary  Apply a sales-closing status transition
// @Accept   json
// @Produce  json
// @Param    quote_id path string true "quote id"
// @Param    status body request.UpdateQuoteStatusRequest true "target status"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{quote_id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	quoteID := c.Param("quote_id")

	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateSalesStatus(c.Request.Context(), quoteID, payload.ResolveStatus())
	if err != nil {
		log.Printf("[quote][handler] status update failed quote_id=%s status=%s err=%v", quoteID, payload.Status, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] status updated quote_id=%s status=%s", quoteID, q.Status)

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteLeadID), errors.Is(err, usecase.ErrMissingAgentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
