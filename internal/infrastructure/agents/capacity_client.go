package agents

import (
	"context"
	"log"

	"commercial_agent/internal/usecase/interfaces"
)

const defaultOperationsBaseURL = "http://127.0.0.1:5002/api/operations"

// CapacityClient posts capacity checks to the Operations agent. The business
// answer does not come back on this call; Operations posts it later to the
// capacity-check-response callback, correlated by request_id.

type CapacityClient struct {
	poster *agentPoster
}

var _ interfaces.ICapacityClient = (*CapacityClient)(nil)

func NewCapacityClient() *CapacityClient {
	return &CapacityClient{
		poster: newAgentPoster(getenvDefault("OPERATIONS_AGENT_URL", defaultOperationsBaseURL)),
	}
}

func (c *CapacityClient) Dispatch(ctx context.Context, requestID string, payload map[string]interface{}) error {
	body := mergePayload("request_id", requestID, payload)
	if err := c.poster.post(ctx, "/capacity-check", body); err != nil {
		log.Printf("[capacity][client] dispatch failed request_id=%s err=%v", requestID, err)
		return err
	}
	log.Printf("[capacity][client] dispatch accepted request_id=%s", requestID)
	return nil
}
