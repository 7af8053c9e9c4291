package http

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// maxLabelBytes caps the size of a downloaded marketplace label.
	maxLabelBytes = 20 << 20 // 20 MiB
	// fetchTimeout bounds one label download.
	fetchTimeout = 15 * time.Second
)

// LabelFetcher downloads marketplace label documents.
type LabelFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPLabelFetcher fetches marketplace labels over HTTP.
type HTTPLabelFetcher struct {
	client *http.Client
}

// NewHTTPLabelFetcher creates a fetcher with a bounded-timeout client.
func NewHTTPLabelFetcher() *HTTPLabelFetcher {
	return &HTTPLabelFetcher{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch downloads the label document at the given URL.
func (f *HTTPLabelFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch label: %w", err)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch label: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch label: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLabelBytes+1))
	if err != nil {
		return nil, fmt.Errorf("fetch label: %w", err)
	}
	if len(body) > maxLabelBytes {
		return nil, fmt.Errorf("fetch label: document exceeds %d bytes", maxLabelBytes)
	}

	return body, nil
}

// decodeInlineLabel turns the inline label field into document bytes.
// Data-URI wrapped and raw PDF payloads pass through untouched for the
// pipeline's own normalization; everything else is treated as plain base64.
func decodeInlineLabel(label string) ([]byte, error) {
	if strings.HasPrefix(label, "data:") || strings.HasPrefix(label, "%PDF-") {
		return []byte(label), nil
	}

	raw, err := base64.StdEncoding.DecodeString(label)
	if err != nil {
		return nil, fmt.Errorf("decode label: %w", err)
	}
	return raw, nil
}
