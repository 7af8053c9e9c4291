// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/labelforge/label-service/internal/domain/model"
)

type MockLabelComposer struct {
	mock.Mock
}

func (m *MockLabelComposer) Compose(ctx context.Context, order model.OrderRecord, marketplaceDoc []byte) (model.ComposeResult, error) {
	args := m.Called(ctx, order, marketplaceDoc)
	return args.Get(0).(model.ComposeResult), args.Error(1)
}
