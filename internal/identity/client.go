/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package identity

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// TokenProvider issues short-lived bearer tokens for API and object-store
// requests. Each call acquires a fresh token scoped to that single use.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Credentials holds everything needed to authenticate against the identity service
type Credentials struct {
	AuthURL  string
	Username string
	Password string
	Tenant   string
}

// KeystoneClient obtains tokens from a keystone-style identity endpoint
type KeystoneClient struct {
	credentials Credentials
	httpClient  *http.Client
}

// Ensure that KeystoneClient implements TokenProvider
var _ TokenProvider = (*KeystoneClient)(nil)

// NewKeystoneClient creates a token client for the given credentials
func NewKeystoneClient(credentials Credentials, insecure bool) *KeystoneClient {
	transport := &http.Transport{}
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &KeystoneClient{
		credentials: credentials,
		httpClient:  &http.Client{Transport: transport},
	}
}

// tokenRequest is the wire format of a password-credential token request
type tokenRequest struct {
	Auth struct {
		PasswordCredentials struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"passwordCredentials"`
		TenantName string `json:"tenantName,omitempty"`
	} `json:"auth"`
}

// tokenResponse is the wire format of a successful token grant
type tokenResponse struct {
	Access struct {
		Token struct {
			ID string `json:"id"`
		} `json:"token"`
	} `json:"access"`
}

// Token requests a fresh token using the configured credentials. Tokens are
// never cached; callers acquire one per use and let it expire.
func (k *KeystoneClient) Token(ctx context.Context) (string, error) {
	if k.credentials.AuthURL == "" {
		return "", fmt.Errorf("no identity endpoint configured (set --auth-url or OS_AUTH_URL)")
	}

	var request tokenRequest
	request.Auth.PasswordCredentials.Username = k.credentials.Username
	request.Auth.PasswordCredentials.Password = k.credentials.Password
	request.Auth.TenantName = k.credentials.Tenant

	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode token request: %w", err)
	}

	endpoint := strings.TrimRight(k.credentials.AuthURL, "/") + "/tokens"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var grant tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if grant.Access.Token.ID == "" {
		return "", fmt.Errorf("identity service response contained no token")
	}

	return grant.Access.Token.ID, nil
}
