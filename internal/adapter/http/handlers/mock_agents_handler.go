package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultSelfBaseURL = "http://127.0.0.1:8080/v1"

// MockAgentsHandler simulates the Operations and Finance agents for isolated
// development: it accepts the outbound dispatches and posts the matching
// callback back to this very service. Registered only when
// MOCK_EXTERNAL_AGENTS is enabled.

type MockAgentsHandler struct {
	selfBaseURL string
	client      *http.Client
}

func NewMockAgentsHandler() *MockAgentsHandler {
	base := os.Getenv("SELF_BASE_URL")
	if base == "" {
		base = defaultSelfBaseURL
	}
	return &MockAgentsHandler{
		selfBaseURL: strings.TrimRight(base, "/"),
		client:      &http.Client{Timeout: 5 * time.Second},
	}
}

// CapacityCheck plays the Operations agent: accept, then call back with a
// canned fulfillable answer.
func (h *MockAgentsHandler) CapacityCheck(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	requestID, _ := body["request_id"].(string)

	callback := map[string]interface{}{
		"check_id":              fmt.Sprintf("CAP-CHECK-%d", time.Now().Unix()),
		"can_be_fulfilled":      true,
		"confidence_score":      0.90,
		"potential_bottlenecks": []string{"TIG welder availability will be tight."},
		"estimated_start_date":  time.Now().AddDate(0, 2, 0).Format("2006-01-02"),
	}
	go h.postCallback(fmt.Sprintf("%s/capacity-check-response/%s", h.selfBaseURL, requestID), callback)

	c.JSON(http.StatusAccepted, gin.H{"message": "Capacity check received by mock Operations. Processing..."})
}

// QuoteCosting plays the Finance agent: base cost is the estimated direct
// costs plus a fixed free-cash-flow contribution rate.
func (h *MockAgentsHandler) QuoteCosting(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	quoteID, _ := body["quote_id"].(string)
	directCosts, _ := body["estimated_direct_costs"].(float64)

	const fcfRate = 0.30
	baseCost := math.Round(directCosts*(1+fcfRate)*100) / 100

	callback := map[string]interface{}{
		"quote_id":            quoteID,
		"base_cost_for_quote": baseCost,
		"current_fcf_rate":    fcfRate,
		"notes":               "Base cost includes 30% contribution (mock).",
	}
	go h.postCallback(fmt.Sprintf("%s/costing-parameters/%s", h.selfBaseURL, quoteID), callback)

	c.JSON(http.StatusAccepted, gin.H{"message": "Costing request received by mock Finance. Processing..."})
}

func (h *MockAgentsHandler) postCallback(url string, payload map[string]interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[mock-agents][handler] callback marshal failed url=%s err=%v", url, err)
		return
	}
	resp, err := h.client.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		log.Printf("[mock-agents][handler] callback failed url=%s err=%v", url, err)
		return
	}
	defer resp.Body.Close()
	log.Printf("[mock-agents][handler] callback delivered url=%s status=%d", url, resp.StatusCode)
}

// IsMockAgentsEnabled gates the mock agent routes.
func IsMockAgentsEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MOCK_EXTERNAL_AGENTS")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
