// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
)

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// RenderHistoryRepositoryInterface defines the interface for render history repository operations.
type RenderHistoryRepositoryInterface interface {
	Create(ctx context.Context, record *RenderRecordDocument) error
	ListByOrder(ctx context.Context, orderID string, limit int) ([]*RenderRecordDocument, error)
	ListRecent(ctx context.Context, limit int) ([]*RenderRecordDocument, error)
	CountByOrder(ctx context.Context, orderID string) (int64, error)
}
