package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelforge/label-service/internal/domain/model"
	"github.com/labelforge/label-service/internal/label/codegen"
	"github.com/labelforge/label-service/internal/label/layout"
)

// testAssets renders real code rasters once for all page tests.
func testAssets(t *testing.T) Assets {
	t.Helper()

	qr, err := codegen.RenderQR("A1|SKU-1")
	require.NoError(t, err)
	bar, err := codegen.RenderBarcode("590123412345", codegen.EAN13)
	require.NoError(t, err)

	return Assets{
		layout.KindQR:      qr,
		layout.KindBarcode: bar,
	}
}

func TestStickerPage(t *testing.T) {
	cfg := layout.DefaultConfig()
	assets := testAssets(t)

	tests := []struct {
		name        string
		marketplace model.Marketplace
	}{
		{name: "default layout", marketplace: model.MarketplaceDefault},
		{name: "marketplace_a layout", marketplace: model.MarketplaceA},
		{name: "marketplace_b layout", marketplace: model.MarketplaceB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := layout.WorkingCanvas(tt.marketplace)
			elements := layout.Compute(cfg, tt.marketplace, canvas, layout.Input{
				SKU:    "SKU-1",
				Digits: "590123412345",
			})

			page, err := StickerPage(canvas, elements, assets)
			require.NoError(t, err)

			assert.Equal(t, canvas.W, page.Width)
			assert.Equal(t, canvas.H, page.Height)
			assert.True(t, bytes.HasPrefix(page.PDF, []byte("%PDF-")))
		})
	}
}

func TestStickerPage_MissingAsset(t *testing.T) {
	cfg := layout.DefaultConfig()
	canvas := layout.WorkingCanvas(model.MarketplaceDefault)
	elements := layout.Compute(cfg, model.MarketplaceDefault, canvas, layout.Input{
		SKU:    "SKU-1",
		Digits: "590123412345",
	})

	qr, err := codegen.RenderQR("A1|SKU-1")
	require.NoError(t, err)

	_, err = StickerPage(canvas, elements, Assets{layout.KindQR: qr})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing barcode asset")
}

func TestStickerPage_TextOnly(t *testing.T) {
	canvas := layout.Size{W: 58, H: 40}
	elements := []layout.PlacedElement{
		{Kind: layout.KindSKU, Box: layout.Rect{X: 2, Y: 2, W: 30, H: 6}, Text: "SKU-1", FontSize: 9},
	}

	page, err := StickerPage(canvas, elements, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, page.PDF)
}

func TestRotateToPhysical(t *testing.T) {
	cfg := layout.DefaultConfig()
	assets := testAssets(t)

	canvas := layout.WorkingCanvas(model.MarketplaceB)
	elements := layout.Compute(cfg, model.MarketplaceB, canvas, layout.Input{
		SKU:    "SKU-1",
		Digits: "590123412345",
	})

	working, err := StickerPage(canvas, elements, assets)
	require.NoError(t, err)

	physical, err := RotateToPhysical(working, layout.PhysicalCanvas())
	require.NoError(t, err)

	assert.Equal(t, layout.CanvasWidthMM, physical.Width)
	assert.Equal(t, layout.CanvasHeightMM, physical.Height)
	assert.True(t, bytes.HasPrefix(physical.PDF, []byte("%PDF-")))
}

func TestRotateToPhysical_DimensionMismatch(t *testing.T) {
	page := &Page{PDF: []byte("%PDF-"), Width: 58, Height: 40}

	_, err := RotateToPhysical(page, layout.PhysicalCanvas())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match swapped target")
}
