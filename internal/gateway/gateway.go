// Package gateway talks to the summarization backend over HTTP/JSON.
// Each call is a single attempt: no retries, no caching.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"codeberg.org/snonux/vidrecall/internal/language"
)

const (
	// DefaultBaseURL is where the backend listens when nothing is configured
	DefaultBaseURL     = "http://localhost:5002"
	defaultHTTPTimeout = 120 * time.Second
	maxErrorBody       = 512

	summaryPath   = "/summary"
	translatePath = "/translate"
)

// Gateway is the request surface the controller depends on
type Gateway interface {
	Summarize(ctx context.Context, sourceURL string) (string, error)
	Translate(ctx context.Context, text string, target language.Code) (string, error)
}

// SummaryRequest is the body of POST /summary
type SummaryRequest struct {
	URL string `json:"url" binding:"required"`
}

// SummaryResponse is the body returned by POST /summary
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// TranslateRequest is the body of POST /translate
type TranslateRequest struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"targetLanguage" binding:"required"`
}

// TranslateResponse is the body returned by POST /translate
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// ErrorResponse is returned by the backend on failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// NetworkFailure reports any transport, status or decoding problem
type NetworkFailure struct {
	Op         string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkFailure) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: http %d: %s", e.Op, e.URL, e.StatusCode, strings.TrimSpace(e.Body))
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s %s: network failure", e.Op, e.URL)
	}
}

func (e *NetworkFailure) Unwrap() error {
	return e.Err
}

// IsNetworkFailure reports whether err carries a NetworkFailure
func IsNetworkFailure(err error) bool {
	var nf *NetworkFailure
	return errors.As(err, &nf)
}

// Client is the HTTP implementation of Gateway
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes the client
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// NewClient constructs a gateway client for baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.baseURL == "" {
		client.baseURL = DefaultBaseURL
	}
	return client
}

// BaseURL returns the backend address
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Summarize asks the backend to summarize the video at sourceURL.
// The raw reference is sent, not the extracted identifier.
func (c *Client) Summarize(ctx context.Context, sourceURL string) (string, error) {
	var resp SummaryResponse
	if err := c.post(ctx, "summarize", summaryPath, SummaryRequest{URL: sourceURL}, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

// Translate asks the backend to translate text into target
func (c *Client) Translate(ctx context.Context, text string, target language.Code) (string, error) {
	var resp TranslateResponse
	req := TranslateRequest{Text: text, TargetLanguage: string(target)}
	if err := c.post(ctx, "translate", translatePath, req, &resp); err != nil {
		return "", err
	}
	return resp.TranslatedText, nil
}

func (c *Client) post(ctx context.Context, op, path string, payload, out any) error {
	endpoint := c.baseURL + path
	fail := func(err error) error {
		return &NetworkFailure{Op: op, URL: endpoint, Err: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fail(fmt.Errorf("encode request: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fail(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkFailure{
			Op:         op,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       errorMessage(data),
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fail(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// errorMessage prefers the backend's {"error": ...} field over the raw body
func errorMessage(data []byte) string {
	var er ErrorResponse
	if err := json.Unmarshal(data, &er); err == nil && er.Error != "" {
		return er.Error
	}
	if len(data) > maxErrorBody {
		data = data[:maxErrorBody]
	}
	return string(data)
}
