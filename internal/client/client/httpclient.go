package client

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

	"github.com/dmitrijs2005/foundrmate/internal/client/models"
	"github.com/dmitrijs2005/foundrmate/internal/common"
)

const maxBodyBytes = 1 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type verifyResponse struct {
	User models.User `json:"user"`
}

type ideaResponse struct {
	Analysis *models.Analysis `json:"analysis"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Register(ctx context.Context, fullName, email, password string) (*models.Session, error) {
	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", body, &resp); err != nil {
		return nil, err
	}
	return sessionFrom(resp)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &resp); err != nil {
		return nil, err
	}
	return sessionFrom(resp)
}

func (c *HTTPClient) Verify(ctx context.Context, token string) (*models.User, error) {
	var resp verifyResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) SubmitIdea(ctx context.Context, token, message string) (*models.Analysis, error) {
	var resp ideaResponse
	if err := c.do(ctx, http.MethodPost, "/api/ideas/submit", token, map[string]string{"message": message}, &resp); err != nil {
		return nil, err
	}
	if resp.Analysis == nil {
		return nil, fmt.Errorf("%w: response has no analysis", ErrUnavailable)
	}
	return resp.Analysis, nil
}

func (c *HTTPClient) Health(ctx context.Context) error {
	var resp healthResponse
	if err := c.do(ctx, http.MethodGet, "/health", "", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("%w: status %q", ErrUnavailable, resp.Status)
	}
	return nil
}

// A session without a token is treated as a broken response, never as a login.
func sessionFrom(resp authResponse) (*models.Session, error) {
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: response has no token", ErrUnavailable)
	}
	return &models.Session{Token: resp.Token, User: resp.User}, nil
}

// do sends one JSON request. Transport and decoding failures wrap
// ErrUnavailable; error statuses become *APIError, additionally matching
// ErrUnauthorized or ErrTokenExpired where they apply.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}

type classifiedError struct {
	*APIError
	kind error
}

func (e *classifiedError) Unwrap() []error { return []error{e.APIError, e.kind} }

func statusError(status int, raw []byte) error {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err != nil || er.Error == "" {
		er.Error = http.StatusText(status)
	}
	apiErr := &APIError{Status: status, Message: er.Error}

	switch {
	case status == http.StatusForbidden && er.Error == common.ErrTokenExpired.Msg:
		return &classifiedError{APIError: apiErr, kind: ErrTokenExpired}
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return &classifiedError{APIError: apiErr, kind: ErrUnauthorized}
	case status >= 500:
		return &classifiedError{APIError: apiErr, kind: ErrUnavailable}
	}
	return apiErr
}

// Message returns the server's message for err, or err's text.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
