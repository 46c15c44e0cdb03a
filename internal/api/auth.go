package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"activity-booking-platform/internal/models"
)

// LoginResult carries the upstream-issued token together with the user it
// authenticates
type LoginResult struct {
	Token string
	User  *models.User
}

// Login forwards credentials to the upstream API and returns the issued
// bearer token. Credentials are never stored in this layer.
func (c *Client) Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error) {
	httpReq, err := c.newJSONRequest(ctx, http.MethodPost, "/login", req)
	if err != nil {
		return nil, err
	}

	resp, err := c.roundTrip(httpReq)
	if err != nil {
		return nil, err
	}

	var body struct {
		Token string       `json:"token"`
		Data  *models.User `json:"data"`
	}
	if err := json.Unmarshal(resp, &body); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	if body.Token == "" {
		return nil, fmt.Errorf("login response missing token")
	}

	return &LoginResult{Token: body.Token, User: body.Data}, nil
}

// Logout invalidates the current token upstream. A failure here is not
// fatal: the session cookie is cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/logout", nil, nil)
}

// GetLoggedUser returns the profile of the token's owner
func (c *Client) GetLoggedUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch logged user: %w", err)
	}
	return &user, nil
}

// newJSONRequest builds a request whose raw response body the caller decodes
// itself (the login payload carries its token outside the data envelope)
func (c *Client) newJSONRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// roundTrip sends the request with the standard headers and returns the raw
// body, mapping error statuses to *Error
func (c *Client) roundTrip(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("apiKey", c.config.APIKey)
	}
	if token := TokenFromContext(req.Context()); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, apiErr)
		return nil, apiErr
	}

	return respBody, nil
}
