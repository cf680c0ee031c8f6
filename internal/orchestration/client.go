/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package orchestration

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/apex/log"
	"github.com/heatops/heatctl/internal/identity"
)

// Config holds what the REST client needs to reach the orchestration service
type Config struct {
	// Endpoint is the base URL of the service, e.g. "http://host:8000/v1"
	Endpoint string

	// Region selects a regional endpoint when the deployment spans regions
	Region string

	// Token is an explicit bearer token. When set it wins over Tokens.
	Token string

	// Insecure skips TLS certificate verification
	Insecure bool
}

// RESTClient implements Operations over plain HTTP(S) JSON requests
type RESTClient struct {
	config     Config
	tokens     identity.TokenProvider
	httpClient *http.Client
}

// NewRESTClient creates a client bound to the given endpoint. tokens may be
// nil when an explicit token is configured or no authentication is wanted.
func NewRESTClient(config Config, tokens identity.TokenProvider) *RESTClient {
	transport := &http.Transport{}
	if config.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &RESTClient{
		config:     config,
		tokens:     tokens,
		httpClient: &http.Client{Transport: transport},
	}
}

// APIError is any non-2xx answer from the orchestration service
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("orchestration API error (status %d): %s", e.StatusCode, e.Message)
}

// newAPIError extracts the error message from a response body, falling back
// to the raw body and then the HTTP status text
func newAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	message := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &payload) == nil && payload.Error.Message != "" {
		message = payload.Error.Message
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &APIError{StatusCode: statusCode, Message: message}
}

// do issues a single request and decodes the JSON response into out when out
// is non-nil. No retries are performed; every failure is a single attempt.
func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	raw, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// doRaw issues a single request and returns the raw response body
func (c *RESTClient) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.config.Endpoint + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.Region != "" {
		req.Header.Set("X-Region-Name", c.config.Region)
	}
	if err := c.authenticate(ctx, req); err != nil {
		return nil, err
	}

	log.WithField("method", method).WithField("url", endpoint).Debug("issuing API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	return raw, nil
}

// authenticate attaches the bearer token. An explicit token wins; otherwise
// a fresh token is acquired from the provider for this single request.
func (c *RESTClient) authenticate(ctx context.Context, req *http.Request) error {
	switch {
	case c.config.Token != "":
		req.Header.Set("X-Auth-Token", c.config.Token)
	case c.tokens != nil:
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to obtain auth token: %w", err)
		}
		req.Header.Set("X-Auth-Token", token)
	}
	return nil
}

// stackPath builds the URL path for a named stack
func stackPath(stackName string) string {
	return "/stacks/" + url.PathEscape(stackName)
}
