package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kmacinski/gridos/internal/log"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-3-flash-preview"

	assistantInstruction = "You are the Grid OS Neural Assistant. You are technical, helpful, and futuristic. " +
		"Always use Google Search to provide accurate, up-to-date answers for real-world queries."
)

// Config holds what the client needs to reach the API
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	// Timeout bounds a single call; zero waits for the response indefinitely
	Timeout time.Duration
}

// Client calls the generateContent endpoint of the Gemini API
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a gateway client. Nothing is read from the environment here.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: log.NewModuleLogger("gateway", "client"),
	}
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// ExecuteCommand answers a terminal command, simulating OS output unless real-world data is asked for
func (c *Client) ExecuteCommand(ctx context.Context, command, systemContext string) Response {
	prompt := fmt.Sprintf("User entered command: \"%s\". System Context: %s. Act as a futuristic OS terminal. "+
		"If the user asks for real-world information, use Google Search. Otherwise, simulate OS output.",
		command, systemContext)

	resp, err := c.Generate(ctx, Request{
		Contents:    []Turn{{Role: RoleUser, Text: prompt}},
		Grounded:    true,
		Temperature: Temperature(0.7),
	})
	if err != nil {
		c.logger.Warn("Terminal command failed", "error", err)
		return Response{Text: FallbackTerminal, Sources: []Source{}}
	}
	if resp.Text == "" {
		resp.Text = "Command executed."
	}
	return resp
}

// Chat answers message in the context of history
func (c *Client) Chat(ctx context.Context, message string, history []Turn) Response {
	contents := make([]Turn, 0, len(history)+1)
	contents = append(contents, history...)
	contents = append(contents, Turn{Role: RoleUser, Text: message})

	resp, err := c.Generate(ctx, Request{
		Contents:          contents,
		SystemInstruction: assistantInstruction,
		Grounded:          true,
		Temperature:       Temperature(0.8),
	})
	if err != nil {
		c.logger.Warn("Assistant chat failed", "error", err)
		return Response{Text: FallbackChat, Sources: []Source{}}
	}
	if resp.Text == "" {
		resp.Text = "..."
	}
	return resp
}

// Search runs query with web-search grounding
func (c *Client) Search(ctx context.Context, query string) Response {
	resp, err := c.Generate(ctx, Request{
		Contents: []Turn{{Role: RoleUser, Text: query}},
		Grounded: true,
	})
	if err != nil {
		c.logger.Warn("Grid search failed", "error", err)
		return Response{Text: FallbackSearch, Sources: []Source{}}
	}
	if resp.Text == "" {
		resp.Text = "No data found on the grid."
	}
	return resp
}

// Generate performs exactly one generateContent call
func (c *Client) Generate(ctx context.Context, r Request) (Response, error) {
	requestID := uuid.NewString()

	jsonData, err := json.Marshal(newWireRequest(r))
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	c.logger.Debug("Sending generateContent request",
		"request_id", requestID,
		"model", c.model,
		"turns", len(r.Contents),
		"grounded", r.Grounded,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("gateway request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Response{}, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Response{}, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	out := Response{
		Text:    wire.text(),
		Sources: wire.sources(),
	}

	c.logger.Info("generateContent succeeded",
		"request_id", requestID,
		"model", c.model,
		"sources", len(out.Sources),
	)

	return out, nil
}
