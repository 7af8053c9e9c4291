// Package service contains the business logic of the label service.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/labelforge/label-service/internal/domain/model"
	"github.com/labelforge/label-service/internal/label/assemble"
	"github.com/labelforge/label-service/internal/label/codegen"
	"github.com/labelforge/label-service/internal/label/layout"
	"github.com/labelforge/label-service/internal/label/render"
)

// LabelComposer defines the interface for label composition operations.
type LabelComposer interface {
	// Compose renders sticker pages for every product of the order and
	// merges them with the marketplace label document.
	Compose(ctx context.Context, order model.OrderRecord, marketplaceDoc []byte) (model.ComposeResult, error)
}

// Option configures a LabelComposerService.
type Option func(*LabelComposerService)

// LabelComposerService implements LabelComposer as a staged pipeline:
// code assets (parallel, pure), layout (pure), page rendering (pure given
// assets and layout), merge (sequential, ordering-sensitive). It holds no
// mutable state; one instance serves all requests.
type LabelComposerService struct {
	layoutCfg     layout.Config
	qrMode        codegen.QRPayloadMode
	symbology     codegen.Symbology
	defaultCopies int
}

// NewLabelComposerService creates a new LabelComposerService with the given options.
func NewLabelComposerService(opts ...Option) *LabelComposerService {
	s := &LabelComposerService{
		layoutCfg:     layout.DefaultConfig(),
		qrMode:        codegen.QRPayloadCombined,
		symbology:     codegen.EAN13,
		defaultCopies: model.DefaultCopies,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLayoutConfig sets custom layout rules for the composer.
func WithLayoutConfig(cfg layout.Config) Option {
	return func(s *LabelComposerService) {
		s.layoutCfg = cfg
	}
}

// WithQRPayloadMode sets what the QR codes carry.
func WithQRPayloadMode(mode codegen.QRPayloadMode) Option {
	return func(s *LabelComposerService) {
		s.qrMode = mode
	}
}

// WithDefaultCopies sets the sticker copy count used when an order line
// carries no quantity.
func WithDefaultCopies(n int) Option {
	return func(s *LabelComposerService) {
		if n > 0 {
			s.defaultCopies = n
		}
	}
}

// WithSymbology sets the 1-D barcode format.
func WithSymbology(sym codegen.Symbology) Option {
	return func(s *LabelComposerService) {
		s.symbology = sym
	}
}

// renderedProduct pairs a product's rendered sticker page with its copy
// count, in input order.
type renderedProduct struct {
	page     *render.Page
	copies   int
	warnings []string
}

// Compose runs the composition pipeline for one order.
func (s *LabelComposerService) Compose(ctx context.Context, order model.OrderRecord, marketplaceDoc []byte) (model.ComposeResult, error) {
	if order.OrderID == "" {
		return model.ComposeResult{}, fmt.Errorf("compose: order id is empty")
	}

	// Cheap input check first: reject an unusable marketplace document
	// before any rendering work happens.
	if _, err := assemble.NormalizeSource(marketplaceDoc); err != nil {
		return model.ComposeResult{}, fmt.Errorf("compose order %s: %w", order.OrderID, err)
	}

	variant, known := model.ParseMarketplace(order.Marketplace)
	products, warnings := order.NormalizedProducts()
	if !known {
		warnings = append(warnings, fmt.Sprintf("unknown marketplace %q, using default layout", order.Marketplace))
	}
	if len(products) == 0 {
		return model.ComposeResult{}, fmt.Errorf("compose order %s: no products to render", order.OrderID)
	}

	// Sticker pages for different products are independent; render them in
	// parallel and splice the results back in input order.
	rendered := make([]renderedProduct, len(products))
	errs := make([]error, len(products))

	var wg sync.WaitGroup
	for i, p := range products {
		wg.Add(1)
		go func(i int, p model.ProductRecord) {
			defer wg.Done()
			rendered[i], errs[i] = s.renderProduct(ctx, order.OrderID, variant, p)
		}(i, p)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return model.ComposeResult{}, fmt.Errorf("compose order %s product %d: %w", order.OrderID, i, err)
		}
	}

	pages := make([]assemble.ProductPages, len(rendered))
	for i, r := range rendered {
		pages[i] = assemble.ProductPages{Page: r.page, Copies: r.copies}
		warnings = append(warnings, r.warnings...)
	}

	merged, err := assemble.Assemble(marketplaceDoc, pages)
	if err != nil {
		return model.ComposeResult{}, fmt.Errorf("compose order %s: %w", order.OrderID, err)
	}

	for _, w := range warnings {
		log.Warn().Str("order_id", order.OrderID).Msg(w)
	}

	return model.ComposeResult{
		FileName:         fmt.Sprintf("label-%s.pdf", order.OrderID),
		PDF:              merged.PDF,
		MarketplacePages: merged.MarketplacePages,
		StickerPages:     merged.StickerPages,
		Warnings:         warnings,
	}, nil
}

// renderProduct renders one product's sticker page: both code assets are
// generated concurrently, then the layout is drawn and, for variants
// composed in the swapped working frame, rotated to the physical frame.
func (s *LabelComposerService) renderProduct(ctx context.Context, orderID string, variant model.Marketplace, p model.ProductRecord) (renderedProduct, error) {
	if err := ctx.Err(); err != nil {
		return renderedProduct{}, err
	}

	var warnings []string

	digits := p.ProductBarcode
	if s.symbology == codegen.EAN13 {
		var warn string
		digits, warn = codegen.NormalizeEAN(p.ProductBarcode)
		if warn != "" {
			warnings = append(warnings, warn)
		}
	}

	assets, err := s.renderAssets(orderID, p, digits)
	if err != nil {
		return renderedProduct{}, err
	}

	canvas := layout.WorkingCanvas(variant)
	elements := layout.Compute(s.layoutCfg, variant, canvas, layout.Input{
		SKU:    p.ProductCode,
		Digits: digits,
	})

	page, err := render.StickerPage(canvas, elements, assets)
	if err != nil {
		return renderedProduct{}, err
	}

	if layout.NeedsPhysicalRotation(variant) {
		page, err = render.RotateToPhysical(page, layout.PhysicalCanvas())
		if err != nil {
			return renderedProduct{}, err
		}
	}

	copies := p.Quantity
	if copies < 1 {
		copies = s.defaultCopies
	}

	return renderedProduct{page: page, copies: copies, warnings: warnings}, nil
}

// renderAssets generates the QR and barcode rasters concurrently; they are
// independent pure functions of their inputs.
func (s *LabelComposerService) renderAssets(orderID string, p model.ProductRecord, digits string) (render.Assets, error) {
	var (
		qrPNG, barcodePNG []byte
		qrErr, barcodeErr error
	)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		qrPNG, qrErr = codegen.RenderQR(codegen.QRPayload(s.qrMode, orderID, p))
	}()
	go func() {
		defer wg.Done()
		barcodePNG, barcodeErr = codegen.RenderBarcode(digits, s.symbology)
	}()
	wg.Wait()

	if qrErr != nil {
		return nil, qrErr
	}
	if barcodeErr != nil {
		return nil, barcodeErr
	}

	return render.Assets{
		layout.KindQR:      qrPNG,
		layout.KindBarcode: barcodePNG,
	}, nil
}
