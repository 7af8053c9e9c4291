// Package render draws computed layouts onto single-page PDF documents.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/labelforge/label-service/internal/label/layout"
)

// fontFamily is the built-in PDF font used for all sticker text roles.
const fontFamily = "Helvetica"

// Page is a rendered single-page PDF held in memory. Pages are transient:
// created, spliced into the final document, then discarded.
type Page struct {
	// PDF is the encoded single-page document.
	PDF []byte
	// Width and Height are the page dimensions in millimeters.
	Width  float64
	Height float64
}

// Assets maps image element kinds to their encoded PNG buffers.
type Assets map[layout.ElementKind][]byte

// StickerPage draws the placed elements onto a fresh page sized to the
// canvas and returns the encoded document. Elements are drawn in the order
// supplied; the layout engine guarantees they do not overlap.
func StickerPage(canvas layout.Size, elements []layout.PlacedElement, assets Assets) (*Page, error) {
	pdf := newPage(canvas)

	for i, e := range elements {
		switch e.Kind {
		case layout.KindQR, layout.KindBarcode:
			img, ok := assets[e.Kind]
			if !ok {
				return nil, fmt.Errorf("render sticker: missing %s asset", e.Kind)
			}
			drawImage(pdf, fmt.Sprintf("%s-%d", e.Kind, i), img, e)
		default:
			drawText(pdf, e)
		}
	}

	return finishPage(pdf, canvas)
}

// newPage creates a zero-margin single-page document sized to the canvas.
func newPage(canvas layout.Size) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: canvas.W, Ht: canvas.H},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// finishPage encodes the document and wraps it as a Page.
func finishPage(pdf *gofpdf.Fpdf, canvas layout.Size) (*Page, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render sticker: %w", err)
	}
	return &Page{PDF: buf.Bytes(), Width: canvas.W, Height: canvas.H}, nil
}

// drawImage places a registered PNG inside the element's bounding box,
// applying the element's local rotation transform when set.
func drawImage(pdf *gofpdf.Fpdf, name string, img []byte, e layout.PlacedElement) {
	opts := gofpdf.ImageOptions{ImageType: "png", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))

	draw := layout.DrawRect(e.Box, e.Rotation)
	if e.Rotation == 0 {
		pdf.ImageOptions(name, draw.X, draw.Y, draw.W, draw.H, false, opts, 0, "")
		return
	}

	pdf.TransformBegin()
	pdf.TransformRotate(float64(-e.Rotation), e.Pivot.X, e.Pivot.Y)
	pdf.ImageOptions(name, draw.X, draw.Y, draw.W, draw.H, false, opts, 0, "")
	pdf.TransformEnd()
}

// drawText places a text element center-aligned within its box width,
// applying the element's local rotation transform when set.
func drawText(pdf *gofpdf.Fpdf, e layout.PlacedElement) {
	pdf.SetFont(fontFamily, "", e.FontSize)

	draw := layout.DrawRect(e.Box, e.Rotation)
	if e.Rotation == 0 {
		cellText(pdf, draw, e.Text)
		return
	}

	pdf.TransformBegin()
	pdf.TransformRotate(float64(-e.Rotation), e.Pivot.X, e.Pivot.Y)
	cellText(pdf, draw, e.Text)
	pdf.TransformEnd()
}

// cellText writes one centered line into the given box.
func cellText(pdf *gofpdf.Fpdf, box layout.Rect, text string) {
	pdf.SetXY(box.X, box.Y)
	pdf.CellFormat(box.W, box.H, text, "", 0, "CM", false, 0, "")
}

// readSeeker adapts a byte slice for the page importer.
func readSeeker(b []byte) io.ReadSeeker {
	return bytes.NewReader(b)
}
