package handlers

import (
	"log"
	"net/http"

	"commercial_agent/internal/usecase"
	"commercial_agent/pkg"

	"github.com/gin-gonic/gin"
)

// FunnelHandler serves the read-only sales funnel aggregate.

type FunnelHandler struct {
	usecase usecase.IFunnelUseCase
}

func NewFunnelHandler(uc usecase.IFunnelUseCase) *FunnelHandler {
	return &FunnelHandler{usecase: uc}
}

// GetKPIs returns the funnel KPIs.
//
// @Summary  Sales funnel KPIs
// @Produce  json
// @Success  200 {object} usecase.FunnelKPIs
// @Router   /funnel/kpis [get]
func (h *FunnelHandler) GetKPIs(c *gin.Context) {
	kpis, err := h.usecase.GetKPIs(c.Request.Context())
	if err != nil {
		log.Printf("[funnel][handler] kpis failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, kpis)
}
