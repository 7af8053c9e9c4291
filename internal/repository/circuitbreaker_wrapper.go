// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/labelforge/label-service/internal/circuitbreaker"
)

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// RenderHistoryRepositoryWithCircuitBreaker wraps RenderHistoryRepository with circuit breaker protection.
type RenderHistoryRepositoryWithCircuitBreaker struct {
	repo           *RenderHistoryRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRenderHistoryRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRenderHistoryRepositoryWithCircuitBreaker(repo *RenderHistoryRepository, cb *circuitbreaker.CircuitBreaker) *RenderHistoryRepositoryWithCircuitBreaker {
	return &RenderHistoryRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a render record with circuit breaker protection.
// If circuit is open, silently fails (the caller already has the PDF;
// losing one history row must not fail the request).
func (r *RenderHistoryRepositoryWithCircuitBreaker) Create(ctx context.Context, record *RenderRecordDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, record)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// ListByOrder returns render records for one order with circuit breaker protection.
func (r *RenderHistoryRepositoryWithCircuitBreaker) ListByOrder(ctx context.Context, orderID string, limit int) ([]*RenderRecordDocument, error) {
	var result []*RenderRecordDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByOrder(ctx, orderID, limit)
		return cbErr
	})
	return result, err
}

// ListRecent returns recent render records with circuit breaker protection.
func (r *RenderHistoryRepositoryWithCircuitBreaker) ListRecent(ctx context.Context, limit int) ([]*RenderRecordDocument, error) {
	var result []*RenderRecordDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListRecent(ctx, limit)
		return cbErr
	})
	return result, err
}

// CountByOrder returns the render record count for one order with circuit breaker protection.
func (r *RenderHistoryRepositoryWithCircuitBreaker) CountByOrder(ctx context.Context, orderID string) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.CountByOrder(ctx, orderID)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RenderHistoryRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
