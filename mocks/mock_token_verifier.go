package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTokenVerifier is a mock implementation of port.TokenVerifier.
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenVerifier) Mode() string {
	args := m.Called()
	return args.String(0)
}
