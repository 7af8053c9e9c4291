package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RenderRecord is one finished composition kept for audits and reprints.
// The merged PDF is returned to the caller and never stored.
type RenderRecord struct {
	ID               primitive.ObjectID `json:"id"`
	OrderID          string             `json:"order_id"`
	Marketplace      string             `json:"marketplace"`
	FileName         string             `json:"file_name"`
	MarketplacePages int                `json:"marketplace_pages"`
	StickerPages     int                `json:"sticker_pages"`
	Products         int                `json:"products"`
	Warnings         []string           `json:"warnings,omitempty"`
	DurationMS       int64              `json:"duration_ms"`
	RequestID        string             `json:"request_id,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}
