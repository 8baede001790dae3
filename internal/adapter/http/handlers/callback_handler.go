package handlers

import (
	"log"
	"net/http"

	request "commercial_agent/internal/adapter/http/dto/request"
	response "commercial_agent/internal/adapter/http/dto/response"
	"commercial_agent/internal/usecase"
	"commercial_agent/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCallbackPayload = pkg.NewDomainErrorSimple("INVALID_CALLBACK_PAYLOAD", "Invalid callback payload", http.StatusBadRequest)

// CallbackHandler is the ingress for the out-of-band agent answers. Payloads
// are validated here, before anything is merged into saga state: a malformed
// body never partially applies.

type CallbackHandler struct {
	usecase usecase.IQuoteSagaUseCase
}

func NewCallbackHandler(uc usecase.IQuoteSagaUseCase) *CallbackHandler {
	return &CallbackHandler{usecase: uc}
}

// ReceiveCapacityCheckResponse ingests the Operations agent's answer.
//
// @Summary  Operations capacity-check callback
// @Accept   json
// @Produce  json
// @Param    request_id path string true "capacity check request id"
// @Param    response body request.CapacityCheckResponseRequest true "capacity answer"
// @Success  200 {object} response.CallbackAckResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /capacity-check-response/{request_id} [post]
func (h *CallbackHandler) ReceiveCapacityCheckResponse(c *gin.Context) {
	requestID := c.Param("request_id")

	var payload request.CapacityCheckResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[callback][handler] invalid operations payload request_id=%s err=%v", requestID, err)
		c.JSON(errInvalidCallbackPayload.HTTPStatus, errInvalidCallbackPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.ApplyOperationsResponse(c.Request.Context(), requestID, payload.ToEntity())
	if err != nil {
		log.Printf("[callback][handler] operations callback failed request_id=%s err=%v", requestID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[callback][handler] operations callback processed quote_id=%s status=%s", q.ID, q.Status)

	c.JSON(http.StatusOK, response.CallbackAckResponse{Message: "Operations data received"})
}

// ReceiveCostingParameters ingests the Finance agent's answer.
//
// @Summary  Finance costing-parameters callback
// @Accept   json
// @Produce  json
// @Param    quote_id path string true "quote id"
// @Param    response body request.CostingParametersRequest true "costing answer"
// @Success  200 {object} response.CallbackAckResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /costing-parameters/{quote_id} [post]
func (h *CallbackHandler) ReceiveCostingParameters(c *gin.Context) {
	quoteID := c.Param("quote_id")

	var payload request.CostingParametersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[callback][handler] invalid finance payload quote_id=%s err=%v", quoteID, err)
		c.JSON(errInvalidCallbackPayload.HTTPStatus, errInvalidCallbackPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.ApplyFinanceResponse(c.Request.Context(), quoteID, payload.ToEntity())
	if err != nil {
		log.Printf("[callback][handler] finance callback failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[callback][handler] finance callback processed quote_id=%s status=%s", q.ID, q.Status)

	c.JSON(http.StatusOK, response.CallbackAckResponse{Message: "Finance data received"})
}
