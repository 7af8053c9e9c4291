package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/labelforge/label-service/internal/domain/model"
	"github.com/labelforge/label-service/internal/repository"
)

// defaultHistoryLimit caps listings when the caller does not ask for a limit.
const defaultHistoryLimit = 50

// RenderHistoryService defines the interface for render history operations.
type RenderHistoryService interface {
	// RecordRender stores the accounting of one finished composition.
	RecordRender(ctx context.Context, record *model.RenderRecord) error

	// ListByOrder returns render records for one order, newest first.
	ListByOrder(ctx context.Context, orderID string, limit int) ([]model.RenderRecord, error)

	// ListRecent returns the most recent render records across all orders.
	ListRecent(ctx context.Context, limit int) ([]model.RenderRecord, error)

	// CountByOrder returns how many times an order's labels were rendered.
	CountByOrder(ctx context.Context, orderID string) (int64, error)
}

// RenderHistoryServiceImpl implements the RenderHistoryService interface.
type RenderHistoryServiceImpl struct {
	repo repository.RenderHistoryRepositoryInterface
}

// NewRenderHistoryService creates a new render history service implementation.
func NewRenderHistoryService(repo repository.RenderHistoryRepositoryInterface) RenderHistoryService {
	return &RenderHistoryServiceImpl{
		repo: repo,
	}
}

// RecordRender stores the accounting of one finished composition.
func (s *RenderHistoryServiceImpl) RecordRender(ctx context.Context, record *model.RenderRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	return s.repo.Create(ctx, &repository.RenderRecordDocument{
		ID:               record.ID,
		OrderID:          record.OrderID,
		Marketplace:      record.Marketplace,
		FileName:         record.FileName,
		MarketplacePages: record.MarketplacePages,
		StickerPages:     record.StickerPages,
		Products:         record.Products,
		Warnings:         record.Warnings,
		DurationMS:       record.DurationMS,
		RequestID:        record.RequestID,
		CreatedAt:        record.CreatedAt,
	})
}

// ListByOrder returns render records for one order, newest first.
func (s *RenderHistoryServiceImpl) ListByOrder(ctx context.Context, orderID string, limit int) ([]model.RenderRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	docs, err := s.repo.ListByOrder(ctx, orderID, limit)
	if err != nil {
		return nil, err
	}
	return documentsToRecords(docs), nil
}

// ListRecent returns the most recent render records across all orders.
func (s *RenderHistoryServiceImpl) ListRecent(ctx context.Context, limit int) ([]model.RenderRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	docs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return documentsToRecords(docs), nil
}

// CountByOrder returns how many times an order's labels were rendered.
func (s *RenderHistoryServiceImpl) CountByOrder(ctx context.Context, orderID string) (int64, error) {
	return s.repo.CountByOrder(ctx, orderID)
}

// documentsToRecords converts repository documents to domain records.
func documentsToRecords(docs []*repository.RenderRecordDocument) []model.RenderRecord {
	records := make([]model.RenderRecord, len(docs))
	for i, doc := range docs {
		records[i] = model.RenderRecord{
			ID:               doc.ID,
			OrderID:          doc.OrderID,
			Marketplace:      doc.Marketplace,
			FileName:         doc.FileName,
			MarketplacePages: doc.MarketplacePages,
			StickerPages:     doc.StickerPages,
			Products:         doc.Products,
			Warnings:         doc.Warnings,
			DurationMS:       doc.DurationMS,
			RequestID:        doc.RequestID,
			CreatedAt:        doc.CreatedAt,
		}
	}
	return records
}
