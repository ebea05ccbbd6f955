package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMetaRepository is a mock implementation of repository.MetaRepository
type MockMetaRepository struct {
	mock.Mock
}

func (m *MockMetaRepository) Day(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockMetaRepository) SetDay(ctx context.Context, day int) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}
