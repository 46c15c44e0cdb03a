package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Config represents upstream booking API configuration
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RequestsPerSecond caps outgoing calls to the upstream API. Zero
	// disables the limiter.
	RequestsPerSecond float64
}

// Client is a typed HTTP client for the upstream booking API. All business
// logic (pricing authority, inventory, payment, auth) lives behind this API;
// the client only speaks its REST contract.
type Client struct {
	config  Config
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewClient creates a new upstream API client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), int(config.RequestsPerSecond)+1)
	}

	return &Client{
		config:  config,
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		limiter: limiter,
	}
}

// Error represents an error response from the upstream API
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream API error (HTTP %d)", e.StatusCode)
}

// IsNotFound reports whether the error is an upstream 404
func IsNotFound(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// envelope is the upstream response wrapper
type envelope struct {
	Code    string          `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues a JSON request and decodes the enveloped response data into out.
// A nil out discards the data.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart issues a multipart/form-data request with a single file field
func (c *Client) doMultipart(ctx context.Context, path, fieldName, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}

// send issues the request and decodes the enveloped response data into out.
// Error statuses surface the server's message when it sends one; the zero
// Message falls back to a generic error string.
func (c *Client) send(req *http.Request, out any) error {
	respBody, err := c.roundTrip(req)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}

	return nil
}
