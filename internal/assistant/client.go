// Package assistant drives chat exchanges against the remote Reski
// assistant endpoint.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// requestTimeout is the fixed transport-level timeout for assistant calls.
const requestTimeout = 15 * time.Second

// Client calls the remote assistant endpoint.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL. token may be
// empty; when set it is sent as a bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type chatRequest struct {
	Mensagem string `json:"mensagem"`
}

type chatResponse struct {
	Resposta string `json:"resposta"`
}

// Ask sends text to the assistant and returns its reply. The reply may be
// empty when the service answers without a resposta field; the caller
// decides the fallback. Non-2xx statuses and transport problems are errors.
func (c *Client) Ask(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(chatRequest{Mensagem: text})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("post /chat: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("post /chat: status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.Resposta, nil
}
