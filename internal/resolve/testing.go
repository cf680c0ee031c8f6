/*
Copyright © 2025 Heatctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockResolver implements Resolver for testing
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context) (*Source, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Source), args.Error(1)
}

// MockObjectFetcher implements ObjectFetcher for testing
type MockObjectFetcher struct {
	mock.Mock
}

func (m *MockObjectFetcher) Fetch(ctx context.Context, objectURL string) (string, error) {
	args := m.Called(ctx, objectURL)
	return args.String(0), args.Error(1)
}
