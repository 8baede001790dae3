package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultDispatchTimeout = 10 * time.Second

// agentPoster is the shared transport for both outbound clients. "Accepted"
// means the transport delivered the request and the agent answered with any
// HTTP status; only connect errors and timeouts count as dispatch failures,
// matching the fire-and-forget contract of the saga.
type agentPoster struct {
	baseURL string
	client  *http.Client
}

func newAgentPoster(baseURL string) *agentPoster {
	return &agentPoster{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: dispatchTimeout()},
	}
}

func (p *agentPoster) post(ctx context.Context, path string, body map[string]interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// mergePayload builds the wire body from the correlation id plus the caller's
// payload. The id key always wins over a same-named payload entry.
func mergePayload(idKey, idValue string, payload map[string]interface{}) map[string]interface{} {
	body := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body[idKey] = idValue
	return body
}

func dispatchTimeout() time.Duration {
	if v := os.Getenv("AGENT_DISPATCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return defaultDispatchTimeout
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
