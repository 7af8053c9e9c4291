package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/labelforge/label-service/internal/label/layout"
)

// RotateToPhysical re-renders a page composed in the working frame into a
// new page sized to the physical target, turning the content 90 degrees
// clockwise. The source page is embedded as a vector template, so no
// rasterization or downscaling happens.
//
// The source is drawn centered on the target with its original extents and
// rotated around the shared center; for swapped dimensions the rotated
// content covers the target page exactly.
func RotateToPhysical(page *Page, target layout.Size) (*Page, error) {
	if page.Width != target.H || page.Height != target.W {
		return nil, fmt.Errorf("rotate page: source %gx%gmm does not match swapped target %gx%gmm",
			page.Width, page.Height, target.W, target.H)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: target.W, Ht: target.H},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imp := gofpdi.NewImporter()
	rs := readSeeker(page.PDF)
	tpl := imp.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")

	cx, cy := target.W/2, target.H/2
	pdf.TransformBegin()
	pdf.TransformRotate(-90, cx, cy)
	imp.UseImportedTemplate(pdf, tpl, cx-page.Width/2, cy-page.Height/2, page.Width, page.Height)
	pdf.TransformEnd()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rotate page: %w", err)
	}
	return &Page{PDF: buf.Bytes(), Width: target.W, Height: target.H}, nil
}
