package agents

import (
	"context"
	"log"

	"commercial_agent/internal/usecase/interfaces"
)

const defaultFinanceBaseURL = "http://127.0.0.1:5001/api/finance"

// CostingClient posts quote-costing requests to the Finance agent. Finance
// answers later on the costing-parameters callback, correlated by quote_id.

type CostingClient struct {
	poster *agentPoster
}

var _ interfaces.ICostingClient = (*CostingClient)(nil)

func NewCostingClient() *CostingClient {
	return &CostingClient{
		poster: newAgentPoster(getenvDefault("FINANCE_AGENT_URL", defaultFinanceBaseURL)),
	}
}

func (c *CostingClient) Dispatch(ctx context.Context, quoteID string, payload map[string]interface{}) error {
	body := mergePayload("quote_id", quoteID, payload)
	if err := c.poster.post(ctx, "/quote-costing-request", body); err != nil {
		log.Printf("[costing][client] dispatch failed quote_id=%s err=%v", quoteID, err)
		return err
	}
	log.Printf("[costing][client] dispatch accepted quote_id=%s", quoteID)
	return nil
}
