package layout

import "github.com/labelforge/label-service/internal/domain/model"

// Canvas constants for the physical sticker. The working frame may be the
// swapped (portrait) orientation for variants that are rotated to the
// physical frame after rendering.
const (
	// CanvasWidthMM is the physical sticker width.
	CanvasWidthMM = 58.0
	// CanvasHeightMM is the physical sticker height.
	CanvasHeightMM = 40.0
	// MMToPoint converts millimeters to PDF points.
	MMToPoint = 2.83465
)

// ElementKind identifies a visual element on the sticker.
type ElementKind int

const (
	// KindQR is the QR code image.
	KindQR ElementKind = iota
	// KindBarcode is the 1-D barcode image.
	KindBarcode
	// KindSKU is the human-readable SKU text.
	KindSKU
	// KindDigits is the human-readable barcode digits text.
	KindDigits
	// KindCaption is the brand caption text.
	KindCaption
)

// String returns a short name for the element kind.
func (k ElementKind) String() string {
	switch k {
	case KindQR:
		return "qr"
	case KindBarcode:
		return "barcode"
	case KindSKU:
		return "sku"
	case KindDigits:
		return "digits"
	case KindCaption:
		return "caption"
	default:
		return "unknown"
	}
}

// PlacedElement is one element with its resolved placement.
//
// Box is the bounding box the element occupies after rotation. Rotation is a
// quarter-turn multiple applied around Pivot, which is always the box center
// so that 180-degree flips stay inside the box and 90-degree turns swap the
// box extents in place.
type PlacedElement struct {
	Kind     ElementKind
	Box      Rect
	Rotation int
	Pivot    Point
	Text     string
	FontSize float64
}

// Size is a canvas size in millimeters.
type Size struct {
	W float64
	H float64
}

// Swapped returns the size with width and height exchanged.
func (s Size) Swapped() Size {
	return Size{W: s.H, H: s.W}
}

// PhysicalCanvas returns the physical sticker size.
func PhysicalCanvas() Size {
	return Size{W: CanvasWidthMM, H: CanvasHeightMM}
}

// Config holds the immutable layout rules: box sizes, gaps and font sizes.
// A single Config is built at startup and shared by all requests.
type Config struct {
	Margin float64

	QRSize   float64
	CaptionH float64
	Gap      float64

	BarcodeW float64
	BarcodeH float64
	DigitsH  float64

	SKUTextW float64
	SKUTextH float64

	FontSKU     float64
	FontDigits  float64
	FontCaption float64

	// BrandCaption is the caption printed under the code block.
	BrandCaption string
}

// DefaultConfig returns the layout rules used in production.
func DefaultConfig() Config {
	return Config{
		Margin:       2,
		QRSize:       20,
		CaptionH:     4,
		Gap:          1.5,
		BarcodeW:     24,
		BarcodeH:     12,
		DigitsH:      3.5,
		SKUTextW:     30,
		SKUTextH:     6,
		FontSKU:      9,
		FontDigits:   8,
		FontCaption:  7,
		BrandCaption: "LABELFORGE",
	}
}

// Input carries the text content placed on the sticker. Content never
// affects geometry; boxes are fixed per variant.
type Input struct {
	SKU    string
	Digits string
}

// WorkingCanvas returns the canvas size the variant is composed in.
// MarketplaceB stacks its elements vertically and is composed in the
// swapped (portrait) frame; the orientation adapter rotates the rendered
// page back to the physical frame.
func WorkingCanvas(m model.Marketplace) Size {
	if m == model.MarketplaceB {
		return PhysicalCanvas().Swapped()
	}
	return PhysicalCanvas()
}

// NeedsPhysicalRotation reports whether the rendered page must be rotated
// into the physical frame after drawing.
func NeedsPhysicalRotation(m model.Marketplace) bool {
	return m == model.MarketplaceB
}

// Compute returns the ordered element placements for the given variant on
// the given canvas. The order is the draw order.
func Compute(cfg Config, m model.Marketplace, canvas Size, in Input) []PlacedElement {
	switch m {
	case model.MarketplaceA:
		return computeMarketplaceA(cfg, canvas, in)
	case model.MarketplaceB:
		return computeMarketplaceB(cfg, canvas, in)
	default:
		return computeDefault(cfg, canvas, in)
	}
}

// computeDefault places the three-block default layout: QR with caption on
// the left, SKU text rotated 90 degrees in the middle band, barcode with
// digits rotated 180 degrees on the right.
func computeDefault(cfg Config, canvas Size, in Input) []PlacedElement {
	// Left block: QR above caption, vertically centered by summed height.
	leftH := cfg.QRSize + cfg.Gap + cfg.CaptionH
	leftY := (canvas.H - leftH) / 2
	qrBox := Rect{X: cfg.Margin, Y: leftY, W: cfg.QRSize, H: cfg.QRSize}
	captionBox := Rect{X: cfg.Margin, Y: leftY + cfg.QRSize + cfg.Gap, W: cfg.QRSize, H: cfg.CaptionH}

	// Right block: barcode above digits, flipped so the barcode top faces
	// the trailing edge of the sticker.
	rightH := cfg.BarcodeH + cfg.Gap + cfg.DigitsH
	rightY := (canvas.H - rightH) / 2
	barcodeX := canvas.W - cfg.Margin - cfg.BarcodeW
	barcodeBox := Rect{X: barcodeX, Y: rightY, W: cfg.BarcodeW, H: cfg.BarcodeH}
	digitsBox := Rect{X: barcodeX, Y: rightY + cfg.BarcodeH + cfg.Gap, W: cfg.BarcodeW, H: cfg.DigitsH}

	// Middle band: SKU text rotated 90 degrees, centered between the blocks.
	bandX0 := qrBox.X + qrBox.W + cfg.Gap
	bandX1 := barcodeBox.X - cfg.Gap
	bandCx := (bandX0 + bandX1) / 2
	skuBox := Rect{
		X: bandCx - cfg.SKUTextH/2,
		Y: canvas.H/2 - cfg.SKUTextW/2,
		W: cfg.SKUTextH,
		H: cfg.SKUTextW,
	}

	return []PlacedElement{
		{Kind: KindQR, Box: qrBox},
		{Kind: KindCaption, Box: captionBox, Text: cfg.BrandCaption, FontSize: cfg.FontCaption},
		{Kind: KindSKU, Box: skuBox, Rotation: 90, Pivot: skuBox.Center(), Text: in.SKU, FontSize: cfg.FontSKU},
		{Kind: KindBarcode, Box: barcodeBox, Rotation: 180, Pivot: barcodeBox.Center()},
		{Kind: KindDigits, Box: digitsBox, Rotation: 180, Pivot: digitsBox.Center(), Text: in.Digits, FontSize: cfg.FontDigits},
	}
}

// computeMarketplaceA places a single QR-plus-caption block centered on the
// sticker, code above caption.
func computeMarketplaceA(cfg Config, canvas Size, _ Input) []PlacedElement {
	qrSize := cfg.QRSize + 2 // the single-code variant prints a larger code
	blockH := qrSize + cfg.Gap + cfg.CaptionH
	y0 := (canvas.H - blockH) / 2

	qrBox := Rect{X: (canvas.W - qrSize) / 2, Y: y0, W: qrSize, H: qrSize}
	captionBox := Rect{X: (canvas.W - qrSize) / 2, Y: y0 + qrSize + cfg.Gap, W: qrSize, H: cfg.CaptionH}

	return []PlacedElement{
		{Kind: KindQR, Box: qrBox},
		{Kind: KindCaption, Box: captionBox, Text: cfg.BrandCaption, FontSize: cfg.FontCaption},
	}
}

// computeMarketplaceB stacks SKU text, barcode, digits and caption as one
// centered column with no per-element rotation. The canvas here is the
// swapped working frame; the orientation adapter performs the final turn.
func computeMarketplaceB(cfg Config, canvas Size, in Input) []PlacedElement {
	blockH := cfg.SKUTextH + cfg.Gap + cfg.BarcodeH + cfg.Gap + cfg.DigitsH + cfg.Gap + cfg.CaptionH
	y := (canvas.H - blockH) / 2
	colW := canvas.W - 2*cfg.Margin
	colX := cfg.Margin

	skuBox := Rect{X: colX, Y: y, W: colW, H: cfg.SKUTextH}
	y += cfg.SKUTextH + cfg.Gap
	barcodeBox := Rect{X: (canvas.W - cfg.BarcodeW) / 2, Y: y, W: cfg.BarcodeW, H: cfg.BarcodeH}
	y += cfg.BarcodeH + cfg.Gap
	digitsBox := Rect{X: colX, Y: y, W: colW, H: cfg.DigitsH}
	y += cfg.DigitsH + cfg.Gap
	captionBox := Rect{X: colX, Y: y, W: colW, H: cfg.CaptionH}

	return []PlacedElement{
		{Kind: KindSKU, Box: skuBox, Text: in.SKU, FontSize: cfg.FontSKU},
		{Kind: KindBarcode, Box: barcodeBox},
		{Kind: KindDigits, Box: digitsBox, Text: in.Digits, FontSize: cfg.FontDigits},
		{Kind: KindCaption, Box: captionBox, Text: cfg.BrandCaption, FontSize: cfg.FontCaption},
	}
}
