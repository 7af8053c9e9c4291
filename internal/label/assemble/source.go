// Package assemble merges marketplace label documents with generated
// sticker pages into one printable PDF.
package assemble

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// dataURIPrefix is the recognized wrapped form of a marketplace document:
// base64 PDF bytes behind a data-URI content marker.
const dataURIPrefix = "data:application/pdf;base64,"

// pdfMagic is the header every raw PDF starts with.
var pdfMagic = []byte("%PDF-")

// ErrInvalidSource is returned when the marketplace document is neither raw
// PDF bytes nor the recognized wrapped form.
var ErrInvalidSource = errors.New("marketplace document is not a PDF or wrapped PDF")

// NormalizeSource accepts the marketplace document in either supported
// shape and returns raw PDF bytes. The check is cheap and runs before any
// rendering work so malformed input fails fast.
func NormalizeSource(doc []byte) ([]byte, error) {
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidSource)
	}

	if bytes.HasPrefix(doc, pdfMagic) {
		return doc, nil
	}

	if s := string(doc); strings.HasPrefix(s, dataURIPrefix) {
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, dataURIPrefix))
		if err != nil {
			return nil, fmt.Errorf("%w: bad base64 payload: %v", ErrInvalidSource, err)
		}
		if !bytes.HasPrefix(raw, pdfMagic) {
			return nil, fmt.Errorf("%w: wrapped payload is not a PDF", ErrInvalidSource)
		}
		return raw, nil
	}

	return nil, ErrInvalidSource
}
