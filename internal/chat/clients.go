package chat

//go:generate mockgen -destination=./clients_mock_test.go -package=chat -source=clients.go ChatClient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ChatClient defines the contract for the external chat endpoint.
type ChatClient interface {
	// Send posts one user message and returns the decoded reply.
	// An error means the round-trip itself failed, not that the server
	// reported an application error.
	Send(ctx context.Context, message string) (*ChatResponse, error)
}

// httpChatClient is the implementation that talks to POST /api/chat.
type httpChatClient struct {
	httpClient *http.Client
	url        string
}

// NewHTTPChatClient is the constructor for the real client.
// A zero timeout means requests are only bounded by their context.
func NewHTTPChatClient(url string, timeout time.Duration) ChatClient {
	return &httpChatClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		url: url,
	}
}

// Send makes the http call. The body is decoded whatever the status code,
// since the endpoint reports application errors as JSON on 4xx/5xx too.
func (c *httpChatClient) Send(ctx context.Context, message string) (*ChatResponse, error) {
	reqBody, err := json.Marshal(ChatRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("could not marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("could not create chat http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("could not decode chat response (status %d): %w", resp.StatusCode, err)
	}

	return &chatResp, nil
}

// stubChatClient is a fake ChatClient for running the widget offline.
type stubChatClient struct{}

// NewStubChatClient creates a fake client.
func NewStubChatClient() ChatClient {
	return &stubChatClient{}
}

func (s *stubChatClient) Send(ctx context.Context, message string) (*ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(message) == "" {
		return &ChatResponse{Error: "No message provided"}, nil
	}
	// Return a canned response
	return &ChatResponse{Response: fmt.Sprintf("You said: %s", message)}, nil
}
