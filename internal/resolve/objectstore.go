/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/heatops/heatctl/internal/identity"
)

// ObjectFetcher retrieves template content from an object-store URL
type ObjectFetcher interface {
	Fetch(ctx context.Context, objectURL string) (string, error)
}

// SwiftFetcher fetches objects over plain HTTP(S) GET with a bearer token
type SwiftFetcher struct {
	tokens     identity.TokenProvider
	httpClient *http.Client
}

// Ensure that SwiftFetcher implements ObjectFetcher
var _ ObjectFetcher = (*SwiftFetcher)(nil)

// NewSwiftFetcher creates a fetcher that authenticates via the given provider
func NewSwiftFetcher(tokens identity.TokenProvider, insecure bool) *SwiftFetcher {
	transport := &http.Transport{}
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &SwiftFetcher{
		tokens:     tokens,
		httpClient: &http.Client{Transport: transport},
	}
}

// Fetch acquires a fresh token, issues a single GET for the object and
// returns the body. Only HTTP 200 yields a template; anything else fails.
func (f *SwiftFetcher) Fetch(ctx context.Context, objectURL string) (string, error) {
	token, err := f.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to obtain auth token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, objectURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid object URL %s: %w", objectURL, err)
	}
	req.Header.Set("X-Auth-Token", token)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("object store request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("object store returned status %d for %s", resp.StatusCode, objectURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read object body: %w", err)
	}

	return string(body), nil
}
