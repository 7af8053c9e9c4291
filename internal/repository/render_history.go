package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RenderRecordDocument represents one finished label composition in MongoDB.
// The merged PDF itself is not stored; callers receive it in the response and
// the record only keeps the accounting needed for audits and reprints.
type RenderRecordDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID          string             `bson:"order_id" json:"order_id"`
	Marketplace      string             `bson:"marketplace" json:"marketplace"`
	FileName         string             `bson:"file_name" json:"file_name"`
	MarketplacePages int                `bson:"marketplace_pages" json:"marketplace_pages"`
	StickerPages     int                `bson:"sticker_pages" json:"sticker_pages"`
	Products         int                `bson:"products" json:"products"`
	Warnings         []string           `bson:"warnings,omitempty" json:"warnings,omitempty"`
	DurationMS       int64              `bson:"duration_ms" json:"duration_ms"`
	RequestID        string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}

// RenderHistoryRepository provides methods for render history operations.
type RenderHistoryRepository struct {
	collection *mongo.Collection
}

// NewRenderHistoryRepository creates a new render history repository.
func NewRenderHistoryRepository(db *MongoDB) *RenderHistoryRepository {
	return &RenderHistoryRepository{
		collection: db.RenderHistory,
	}
}

// Create inserts a new render record.
func (r *RenderHistoryRepository) Create(ctx context.Context, record *RenderRecordDocument) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// ListByOrder returns render records for one order, newest first.
func (r *RenderHistoryRepository) ListByOrder(ctx context.Context, orderID string, limit int) ([]*RenderRecordDocument, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"order_id": orderID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []*RenderRecordDocument
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// ListRecent returns the most recent render records across all orders.
func (r *RenderHistoryRepository) ListRecent(ctx context.Context, limit int) ([]*RenderRecordDocument, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []*RenderRecordDocument
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// CountByOrder returns the number of render records for one order.
func (r *RenderHistoryRepository) CountByOrder(ctx context.Context, orderID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"order_id": orderID})
}
