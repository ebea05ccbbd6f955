package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mlindgren/cardbox/internal/leitner"
	"github.com/mlindgren/cardbox/internal/models"
)

// MockCardRepository is a mock implementation of repository.CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Insert(ctx context.Context, card models.Card, bucket int) error {
	args := m.Called(ctx, card, bucket)
	return args.Error(0)
}

func (m *MockCardRepository) UpdateBucket(ctx context.Context, key models.CardKey, bucket int) error {
	args := m.Called(ctx, key, bucket)
	return args.Error(0)
}

func (m *MockCardRepository) LoadBuckets(ctx context.Context) (leitner.BucketMap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(leitner.BucketMap), args.Error(1)
}

func (m *MockCardRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
