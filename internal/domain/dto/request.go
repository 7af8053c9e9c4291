// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/labelforge/label-service/internal/domain/model"
)

// GenerateLabelRequest represents the JSON request body for the label endpoint.
//
// The order can carry either a product list or the legacy single-product
// shape (product_barcode/product_code at the top level). The marketplace
// label document is supplied inline as base64 (plain or data-URI wrapped)
// or by URL; exactly one of the two must be set.
//
// @Description Request to compose a printable label document for an order
// @Example {"order": {"order_id": "A1", "marketplace": "default", "products": [{"product_barcode": "5901234123457", "product_code": "SKU-1", "quantity": 2}]}, "label": "JVBERi0xLjQK..."}
type GenerateLabelRequest struct {
	// Order holds the order id, marketplace selector and product list.
	Order model.OrderRecord `json:"order" binding:"required"`
	// Label is the marketplace label PDF, base64-encoded or data-URI wrapped.
	Label string `json:"label,omitempty"`
	// LabelURL points at the marketplace label PDF to download.
	LabelURL string `json:"label_url,omitempty" example:"https://cdn.example.com/labels/A1.pdf"`
} // @name GenerateLabelRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingOrderID is returned when the order id is empty.
	ErrMissingOrderID = &ValidationError{
		Field:   "order_id",
		Message: "must not be empty",
	}
	// ErrMissingProducts is returned when the order carries no products.
	ErrMissingProducts = &ValidationError{
		Field:   "products",
		Message: "at least one product is required",
	}
	// ErrMissingLabel is returned when neither label nor label_url is set.
	ErrMissingLabel = &ValidationError{
		Field:   "label",
		Message: "either label or label_url must be set",
	}
	// ErrAmbiguousLabel is returned when both label and label_url are set.
	ErrAmbiguousLabel = &ValidationError{
		Field:   "label",
		Message: "label and label_url are mutually exclusive",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *GenerateLabelRequest) Validate() error {
	if r.Order.OrderID == "" {
		return ErrMissingOrderID
	}
	if len(r.Order.Products) == 0 && r.Order.ProductBarcode == "" && r.Order.ProductCode == "" {
		return ErrMissingProducts
	}
	if r.Label == "" && r.LabelURL == "" {
		return ErrMissingLabel
	}
	if r.Label != "" && r.LabelURL != "" {
		return ErrAmbiguousLabel
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// HistoryQuery represents the query parameters for render history listings.
type HistoryQuery struct {
	// OrderID filters records to one order when set.
	OrderID string `form:"order_id"`
	// Limit caps the number of returned records.
	Limit int `form:"limit"`
} // @name HistoryQuery
