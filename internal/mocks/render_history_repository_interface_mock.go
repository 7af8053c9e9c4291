// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/labelforge/label-service/internal/repository"
)

type MockRenderHistoryRepositoryInterface struct {
	mock.Mock
}

func (m *MockRenderHistoryRepositoryInterface) Create(ctx context.Context, record *repository.RenderRecordDocument) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRenderHistoryRepositoryInterface) ListByOrder(ctx context.Context, orderID string, limit int) ([]*repository.RenderRecordDocument, error) {
	args := m.Called(ctx, orderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.RenderRecordDocument), args.Error(1)
}

func (m *MockRenderHistoryRepositoryInterface) ListRecent(ctx context.Context, limit int) ([]*repository.RenderRecordDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.RenderRecordDocument), args.Error(1)
}

func (m *MockRenderHistoryRepositoryInterface) CountByOrder(ctx context.Context, orderID string) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}
