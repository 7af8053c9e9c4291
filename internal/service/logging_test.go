//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/labelforge/label-service/internal/domain/model"
	"github.com/labelforge/label-service/internal/mocks"
	"github.com/labelforge/label-service/internal/repository"
)

func TestNewLoggingService(t *testing.T) {
	mockRepo := new(mocks.MockLogsRepositoryInterface)
	service := NewLoggingService(mockRepo)

	assert.NotNil(t, service)
	assert.IsType(t, &LoggingServiceImpl{}, service)
}

func TestLoggingService_CreateLog(t *testing.T) {
	tests := []struct {
		name      string
		entry     *model.LogEntry
		setupMock func(*mocks.MockLogsRepositoryInterface)
		wantError bool
	}{
		{
			name: "successful create",
			entry: &model.LogEntry{
				Level:   "info",
				Message: "Test log",
			},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*repository.LogEntryDocument")).Return(nil)
			},
			wantError: false,
		},
		{
			name: "missing id and timestamp are filled in",
			entry: &model.LogEntry{
				Level:   "info",
				Message: "Test log",
			},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return !doc.ID.IsZero() && !doc.Timestamp.IsZero()
				})).Return(nil)
			},
			wantError: false,
		},
		{
			name: "audit fields are carried through",
			entry: &model.LogEntry{
				Level:       "info",
				Message:     "Label composition requested",
				OrderID:     "A1",
				Marketplace: "marketplace_a",
				ActionType:  "compose",
			},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return doc.OrderID == "A1" && doc.Marketplace == "marketplace_a" && doc.ActionType == "compose"
				})).Return(nil)
			},
			wantError: false,
		},
		{
			name: "repository error is propagated",
			entry: &model.LogEntry{
				Level:   "error",
				Message: "Test log",
			},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockLogsRepositoryInterface)
			tt.setupMock(mockRepo)

			service := NewLoggingService(mockRepo)
			err := service.CreateLog(context.Background(), tt.entry)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	tests := []struct {
		name      string
		entries   []*model.LogEntry
		setupMock func(*mocks.MockLogsRepositoryInterface)
		wantError bool
	}{
		{
			name: "bulk create",
			entries: []*model.LogEntry{
				{Level: "info", Message: "first"},
				{Level: "warn", Message: "second"},
			},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
					return len(docs) == 2
				})).Return(nil)
			},
			wantError: false,
		},
		{
			name:      "empty slice skips the repository",
			entries:   nil,
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {},
			wantError: false,
		},
		{
			name: "repository error is propagated",
			entries: []*model.LogEntry{
				{Level: "info", Message: "first"},
			},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("CreateMany", mock.Anything, mock.Anything).Return(errors.New("db down"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockLogsRepositoryInterface)
			tt.setupMock(mockRepo)

			service := NewLoggingService(mockRepo)
			err := service.CreateLogs(context.Background(), tt.entries)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_QueryLogs(t *testing.T) {
	now := time.Now()
	docs := []*repository.LogEntryDocument{
		{
			ID:        primitive.NewObjectID(),
			Timestamp: now,
			Level:     "info",
			Message:   "composed",
			OrderID:   "A1",
		},
	}

	mockRepo := new(mocks.MockLogsRepositoryInterface)
	mockRepo.On("Query", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
		return opts.OrderID == "A1" && opts.Limit == 10
	})).Return(docs, nil)

	service := NewLoggingService(mockRepo)
	entries, err := service.QueryLogs(context.Background(), model.LogQueryOptions{
		OrderID: "A1",
		Limit:   10,
	})

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "A1", entries[0].OrderID)
	assert.Equal(t, "composed", entries[0].Message)
	mockRepo.AssertExpectations(t)
}

func TestLoggingService_QueryLogs_Error(t *testing.T) {
	mockRepo := new(mocks.MockLogsRepositoryInterface)
	mockRepo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	service := NewLoggingService(mockRepo)
	entries, err := service.QueryLogs(context.Background(), model.LogQueryOptions{})

	assert.Error(t, err)
	assert.Nil(t, entries)
}

func TestLoggingService_CountLogs(t *testing.T) {
	mockRepo := new(mocks.MockLogsRepositoryInterface)
	mockRepo.On("Count", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
		return opts.Level == "error"
	})).Return(int64(7), nil)

	service := NewLoggingService(mockRepo)
	count, err := service.CountLogs(context.Background(), model.LogQueryOptions{Level: "error"})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestLogEntry_WithField(t *testing.T) {
	entry := &model.LogEntry{}
	entry.WithField("products", 3).WithField("has_inline", true)

	assert.Equal(t, 3, entry.Fields["products"])
	assert.Equal(t, true, entry.Fields["has_inline"])
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := &model.LogEntry{}
	entry.WithFields(map[string]interface{}{"a": 1, "b": "two"})

	assert.Equal(t, 1, entry.Fields["a"])
	assert.Equal(t, "two", entry.Fields["b"])
}
