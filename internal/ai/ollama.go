package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"reselleros/internal/infra"
)

const defaultCompletionTimeout = 25 * time.Second

// ClientOptions configures the Ollama completion client.
type ClientOptions struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client performs HTTP calls against a local Ollama generation service. The
// service is optional: every failure mode is absorbed and reported as the
// absence of a completion, never as an error.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *infra.Logger
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts ClientOptions) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:11434"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultCompletionTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Complete sends a single generation request and returns the completion text.
// The second return value reports whether a completion was obtained: transport
// errors, non-2xx statuses, malformed bodies and timeouts all yield ("", false)
// with a diagnostic warning. The wall-clock bound is enforced with a derived
// context whose cancel is always released, so the call settles within the
// configured timeout and leaves no timer behind.
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		c.warn("encode_request", err)
		return "", false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		c.warn("build_request", err)
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.warn("http_request", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("ollama: non-success status, falling back")
		return "", false
	}
	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.warn("decode_response", err)
		return "", false
	}
	return decoded.Response, true
}

// Available reports whether the generation service answers on its tags
// endpoint. Used for status reporting only; Complete does its own probing
// implicitly by attempting the call.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ListModels returns the names of models installed on the local service.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode}
	}
	var decoded tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(decoded.Models))
	for _, m := range decoded.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func (c *Client) warn(reason string, err error) {
	c.logger.Warn().Err(err).Str("reason", reason).Msg("ollama: completion unavailable, falling back")
}
