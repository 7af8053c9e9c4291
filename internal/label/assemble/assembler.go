package assemble

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/labelforge/label-service/internal/label/layout"
	"github.com/labelforge/label-service/internal/label/render"
)

// ProductPages is one product's rendered sticker page and how many copies
// of it the final document gets. The page content is imported once and
// reused for every copy.
type ProductPages struct {
	Page   *render.Page
	Copies int
}

// Result carries the merged document and its page accounting.
type Result struct {
	PDF              []byte
	MarketplacePages int
	StickerPages     int
}

// Assemble merges the marketplace document with the sticker pages:
// every marketplace page first, in order, then per product in input order
// the requested number of sticker copies. Any import failure aborts the
// merge; no partial document is returned.
func Assemble(marketplaceDoc []byte, products []ProductPages) (result *Result, err error) {
	raw, err := NormalizeSource(marketplaceDoc)
	if err != nil {
		return nil, err
	}

	// The underlying page importer panics on some malformed documents
	// instead of returning an error; surface those as merge failures.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("assemble: marketplace document import failed: %v", r)
		}
	}()

	out := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt"})
	out.SetMargins(0, 0, 0)
	out.SetAutoPageBreak(false, 0)

	marketplacePages, err := copyMarketplacePages(out, raw)
	if err != nil {
		return nil, err
	}

	stickerPages, err := appendStickerPages(out, products)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := out.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	return &Result{
		PDF:              buf.Bytes(),
		MarketplacePages: marketplacePages,
		StickerPages:     stickerPages,
	}, nil
}

// copyMarketplacePages imports every page of the marketplace document into
// the output, preserving order and page sizes.
func copyMarketplacePages(out *gofpdf.Fpdf, raw []byte) (int, error) {
	imp := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(raw))

	first := imp.ImportPageFromStream(out, &rs, 1, "/MediaBox")
	sizes := imp.GetPageSizes()
	total := len(sizes)
	if total == 0 {
		return 0, fmt.Errorf("assemble: marketplace document has no pages")
	}

	for n := 1; n <= total; n++ {
		tpl := first
		if n > 1 {
			tpl = imp.ImportPageFromStream(out, &rs, n, "/MediaBox")
		}

		box, ok := sizes[n]["/MediaBox"]
		if !ok {
			return 0, fmt.Errorf("assemble: marketplace page %d has no media box", n)
		}
		w, h := box["w"], box["h"]

		out.AddPageFormat(pageOrientation(w, h), gofpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(out, tpl, 0, 0, w, h)
		if out.Err() {
			return 0, fmt.Errorf("assemble: copying marketplace page %d: %v", n, out.Error())
		}
	}
	return total, nil
}

// appendStickerPages imports each product's sticker page once and stamps it
// onto as many fresh pages as copies were requested.
func appendStickerPages(out *gofpdf.Fpdf, products []ProductPages) (int, error) {
	total := 0
	for i, p := range products {
		if p.Page == nil || p.Copies < 1 {
			continue
		}

		imp := gofpdi.NewImporter()
		rs := io.ReadSeeker(bytes.NewReader(p.Page.PDF))
		tpl := imp.ImportPageFromStream(out, &rs, 1, "/MediaBox")

		w := p.Page.Width * layout.MMToPoint
		h := p.Page.Height * layout.MMToPoint

		for copy := 0; copy < p.Copies; copy++ {
			out.AddPageFormat(pageOrientation(w, h), gofpdf.SizeType{Wd: w, Ht: h})
			imp.UseImportedTemplate(out, tpl, 0, 0, w, h)
			if out.Err() {
				return 0, fmt.Errorf("assemble: copying sticker page for product %d: %v", i, out.Error())
			}
			total++
		}
	}
	return total, nil
}

// pageOrientation returns the gofpdf orientation code for a page size.
func pageOrientation(w, h float64) string {
	if w > h {
		return "L"
	}
	return "P"
}
