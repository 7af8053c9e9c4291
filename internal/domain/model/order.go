// Package model defines the core domain entities for the label service.
package model

import "strings"

const (
	// DefaultCopies is the number of sticker copies printed per product
	// when the order does not specify a quantity.
	DefaultCopies = 2

	// FallbackBarcode is the fixed 12-digit value substituted when a product
	// carries no usable barcode. The leading 2 marks it as an in-store code.
	FallbackBarcode = "200000000000"
)

// Marketplace identifies the layout variant used for the sticker.
type Marketplace int

const (
	// MarketplaceDefault renders QR, barcode and SKU text on one sticker.
	MarketplaceDefault Marketplace = iota
	// MarketplaceA renders a single centered QR code with the brand caption.
	MarketplaceA
	// MarketplaceB renders a single centered barcode block with SKU and digits.
	MarketplaceB
)

// String returns the wire value of the marketplace.
func (m Marketplace) String() string {
	switch m {
	case MarketplaceA:
		return "marketplace_a"
	case MarketplaceB:
		return "marketplace_b"
	default:
		return "default"
	}
}

// ParseMarketplace maps a wire value to a Marketplace. Matching is
// case-insensitive and ignores surrounding whitespace. Unrecognized values
// fall back to MarketplaceDefault and ok is false so callers can record a
// warning instead of failing the order.
func ParseMarketplace(s string) (m Marketplace, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return MarketplaceDefault, true
	case "marketplace_a":
		return MarketplaceA, true
	case "marketplace_b":
		return MarketplaceB, true
	default:
		return MarketplaceDefault, false
	}
}

// ProductRecord is one product line of an order.
//
// @Description Product entry with barcode, SKU code and sticker quantity
type ProductRecord struct {
	// ProductBarcode is the EAN/UPC digits printed as the 1-D barcode.
	ProductBarcode string `json:"product_barcode" example:"5901234123457"`
	// ProductCode is the human-readable SKU printed on the sticker.
	ProductCode string `json:"product_code" example:"SKU-1"`
	// Quantity is the number of sticker copies for this product (default 2).
	Quantity int `json:"quantity,omitempty" example:"2" minimum:"1"`
} // @name ProductRecord

// Copies returns the effective number of sticker copies for the product.
func (p ProductRecord) Copies() int {
	if p.Quantity < 1 {
		return DefaultCopies
	}
	return p.Quantity
}

// OrderRecord is the order data the sticker pipeline consumes.
//
// The legacy single-product shape (product_barcode/product_code at the top
// level) is still accepted and normalized into a one-element product list.
//
// @Description Order with marketplace selector and product list
type OrderRecord struct {
	// OrderID identifies the order; printed inside the QR payload.
	OrderID string `json:"order_id" example:"A1"`
	// Marketplace selects the sticker layout: default, marketplace_a or marketplace_b.
	Marketplace string `json:"marketplace,omitempty" example:"default"`
	// Products lists the products to print stickers for.
	Products []ProductRecord `json:"products,omitempty"`

	// Legacy single-product shape.
	ProductBarcode string `json:"product_barcode,omitempty"`
	ProductCode    string `json:"product_code,omitempty"`
} // @name OrderRecord

// NormalizedProducts returns the product list with the legacy shape folded in
// and missing barcodes replaced by FallbackBarcode. Substitutions are
// reported as warnings, never as errors.
func (o OrderRecord) NormalizedProducts() ([]ProductRecord, []string) {
	products := o.Products
	if len(products) == 0 && (o.ProductBarcode != "" || o.ProductCode != "") {
		products = []ProductRecord{{
			ProductBarcode: o.ProductBarcode,
			ProductCode:    o.ProductCode,
		}}
	}

	var warnings []string
	out := make([]ProductRecord, 0, len(products))
	for _, p := range products {
		if strings.TrimSpace(p.ProductBarcode) == "" {
			warnings = append(warnings, "product "+p.ProductCode+": empty barcode, using fallback value")
			p.ProductBarcode = FallbackBarcode
		}
		out = append(out, p)
	}
	return out, warnings
}
