package model

// ComposeResult is the outcome of a label composition.
//
// @Description Composition result with the merged PDF and page accounting
type ComposeResult struct {
	// FileName is the suggested artifact name, derived from the order id.
	FileName string `json:"file_name" example:"label-A1.pdf"`
	// PDF holds the merged multi-page document.
	PDF []byte `json:"-"`
	// MarketplacePages is the page count of the supplied marketplace label.
	MarketplacePages int `json:"marketplace_pages" example:"1"`
	// StickerPages is the number of sticker pages appended.
	StickerPages int `json:"sticker_pages" example:"2"`
	// Warnings lists non-fatal input normalizations applied during composition.
	Warnings []string `json:"warnings,omitempty"`
} // @name ComposeResult

// Pages returns the total page count of the merged document.
func (r ComposeResult) Pages() int {
	return r.MarketplacePages + r.StickerPages
}
