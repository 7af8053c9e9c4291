// Package codegen renders the machine-readable code assets for stickers.
//
// The encoders produce fixed-resolution PNG buffers; final placement size is
// enforced at draw time, not here. Input normalization never fails the
// pipeline: unusable barcode digits are replaced with a fixed placeholder
// and reported as a warning. Only internal encoder failures are fatal.
package codegen

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/labelforge/label-service/internal/domain/model"
)

// Encoder raster resolutions in pixels. Chosen well above print density for
// the 58x40mm sticker so scaling at draw time never upsamples.
const (
	qrPixels       = 256
	barcodeWidthPx = 600
	barcodeHeightPx = 200
)

// Symbology selects the 1-D barcode format.
type Symbology int

const (
	// EAN13 encodes 12 digits plus a computed checksum digit.
	EAN13 Symbology = iota
	// Code128 encodes arbitrary ASCII payloads.
	Code128
)

// String returns the symbology name.
func (s Symbology) String() string {
	if s == Code128 {
		return "code128"
	}
	return "ean13"
}

// QRPayloadMode selects what the QR code carries.
type QRPayloadMode int

const (
	// QRPayloadCombined encodes "order|sku".
	QRPayloadCombined QRPayloadMode = iota
	// QRPayloadBarcode encodes the raw product barcode digits.
	QRPayloadBarcode
)

// ParseQRPayloadMode maps a config value to a QRPayloadMode, defaulting to
// the combined form.
func ParseQRPayloadMode(s string) QRPayloadMode {
	if s == "barcode" {
		return QRPayloadBarcode
	}
	return QRPayloadCombined
}

// GenerationError wraps an encoder failure with the component that failed
// and the payload that triggered it.
type GenerationError struct {
	Component string
	Payload   string
	Err       error
}

// Error returns the formatted error message.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed for %q: %v", e.Component, e.Payload, e.Err)
}

// Unwrap returns the underlying encoder error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// QRPayload builds the QR content for a product according to the mode.
func QRPayload(mode QRPayloadMode, orderID string, p model.ProductRecord) string {
	if mode == QRPayloadBarcode {
		return p.ProductBarcode
	}
	return orderID + "|" + p.ProductCode
}

// RenderQR encodes the payload as a QR code PNG.
func RenderQR(payload string) ([]byte, error) {
	buf, err := qrcode.Encode(payload, qrcode.Medium, qrPixels)
	if err != nil {
		return nil, &GenerationError{Component: "qr", Payload: payload, Err: err}
	}
	return buf, nil
}

// NormalizeEAN validates digits for the EAN-13 encoder.
//
// 13-digit input is truncated to its first 12 digits so the encoder
// recomputes the checksum; passing a pre-existing 13th digit through
// unchecked can silently desynchronize it. Wrong-length or non-digit input
// is replaced with the fixed placeholder and a warning, never an error.
// TODO: validate the supplied 13th digit instead of discarding it once
// upstream barcode quality is known.
func NormalizeEAN(digits string) (normalized string, warning string) {
	if !digitsOnly(digits) || (len(digits) != 12 && len(digits) != 13) {
		return model.FallbackBarcode, fmt.Sprintf("barcode %q is not 12-13 numeric digits, using fallback %s", digits, model.FallbackBarcode)
	}
	if len(digits) == 13 {
		return digits[:12], ""
	}
	return digits, ""
}

// RenderBarcode encodes digits in the requested symbology as a PNG.
// The caller is expected to have normalized EAN input via NormalizeEAN.
func RenderBarcode(digits string, sym Symbology) ([]byte, error) {
	var (
		bc  barcode.Barcode
		err error
	)
	switch sym {
	case Code128:
		bc, err = code128.Encode(digits)
	default:
		bc, err = ean.Encode(digits)
	}
	if err != nil {
		return nil, &GenerationError{Component: "barcode", Payload: digits, Err: err}
	}

	scaled, err := barcode.Scale(bc, barcodeWidthPx, barcodeHeightPx)
	if err != nil {
		return nil, &GenerationError{Component: "barcode", Payload: digits, Err: err}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, &GenerationError{Component: "barcode", Payload: digits, Err: err}
	}
	return buf.Bytes(), nil
}

// digitsOnly reports whether s is non-empty and contains only ASCII digits.
func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
