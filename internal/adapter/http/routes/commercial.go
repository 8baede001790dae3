package routes

import (
	"commercial_agent/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathLeads    = "/leads"
	PathFunnel   = "/funnel"
	PathCapacity = "/capacity-check-response"
	PathCosting  = "/costing-parameters"
	PathMockOps  = "/operations"
	PathMockFin  = "/finance"
)

func addCommercialRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, callbackHandler *handlers.CallbackHandler, leadHandler *handlers.LeadHandler, funnelHandler *handlers.FunnelHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuoteByID)
		quotes.PATCH("/:quote_id/status", quoteHandler.UpdateQuoteStatus)
	}

	// Agent callbacks arrive outside the /quotes group, addressed by the ids
	// handed to the agents on dispatch.
	rg.POST(PathCapacity+"/:request_id", callbackHandler.ReceiveCapacityCheckResponse)
	rg.POST(PathCosting+"/:quote_id", callbackHandler.ReceiveCostingParameters)

	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("/:lead_id", leadHandler.GetLeadByID)
		leads.POST("/:lead_id/qualify", leadHandler.QualifyLead)
	}

	funnel := rg.Group(PathFunnel)
	{
		funnel.GET("/kpis", funnelHandler.GetKPIs)
	}
}

func addMockAgentRoutes(rg *gin.RouterGroup, mockHandler *handlers.MockAgentsHandler) {
	rg.POST(PathMockOps+"/capacity-check", mockHandler.CapacityCheck)
	rg.POST(PathMockFin+"/quote-costing-request", mockHandler.QuoteCosting)
}
