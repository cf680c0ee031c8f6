/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heatops/heatctl/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSwiftFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "tok-42", r.Header.Get("X-Auth-Token"))
		_, _ = w.Write([]byte(`{"Resources": {}}`))
	}))
	defer server.Close()

	tokens := &identity.MockTokenProvider{}
	tokens.On("Token", mock.Anything).Return("tok-42", nil)

	fetcher := NewSwiftFetcher(tokens, false)

	body, err := fetcher.Fetch(context.Background(), server.URL+"/v1/container/wp.template")

	require.NoError(t, err)
	assert.Equal(t, `{"Resources": {}}`, body)
	tokens.AssertExpectations(t)
}

func TestSwiftFetcher_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	tokens := &identity.MockTokenProvider{}
	tokens.On("Token", mock.Anything).Return("tok-42", nil)

	fetcher := NewSwiftFetcher(tokens, false)

	_, err := fetcher.Fetch(context.Background(), server.URL+"/missing.template")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestSwiftFetcher_TokenFailureAbortsFetch(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	tokens := &identity.MockTokenProvider{}
	tokens.On("Token", mock.Anything).Return("", errors.New("identity service returned status 401"))

	fetcher := NewSwiftFetcher(tokens, false)

	_, err := fetcher.Fetch(context.Background(), server.URL+"/wp.template")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth token")
	assert.Zero(t, requests, "no object request should be made without a token")
}
