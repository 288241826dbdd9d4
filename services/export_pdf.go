// services/export_pdf.go - PDF exporters (collection table and single record)
package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"foundation-site-api/models"
)

const (
	pdfLineHeight = 5.0
	pdfCellPad    = 1.5
	// Past this many columns a portrait page gets too cramped to read.
	pdfLandscapeThreshold = 5
)

// ExportPDF writes the filtered collection as a titled, paginated A4 table.
// Orientation flips to landscape when more than five columns are enabled.
// Cell text wraps within its column; a row is measured up front and a page
// break inserted before it, so a row never straddles two pages.
//
// Returns ErrNoColumnsSelected or ErrNoSubmissions before writing anything.
func ExportPDF(w io.Writer, subs []models.Submission, cols []ExportColumn, kind models.SubmissionKind, generatedAt time.Time) error {
	enabled := EnabledColumns(cols)
	if len(enabled) == 0 {
		return ErrNoColumnsSelected
	}
	if len(subs) == 0 {
		return ErrNoSubmissions
	}

	orientation := "P"
	if len(enabled) > pdfLandscapeThreshold {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	bottomLimit := pageH - 15
	colW := usable / float64(len(enabled))

	// Title and metadata line.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(usable, 10, fmt.Sprintf("%s Submissions", KindTitle(kind)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	meta := fmt.Sprintf("%d records - Generated %s", len(subs), generatedAt.Format("Jan 2, 2006 15:04"))
	pdf.CellFormat(usable, 6, meta, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetTextColor(0, 0, 0)

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range enabled {
			pdf.CellFormat(colW, pdfLineHeight+2*pdfCellPad, col.Label, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	drawHeader()

	for i := range subs {
		// Wrap every cell first so the full row height is known before
		// anything is drawn.
		cells := make([][]string, len(enabled))
		maxLines := 1
		for j, col := range enabled {
			value := Resolve(col.Key, &subs[i])
			if value == "" {
				value = "-"
			}
			lines := pdf.SplitText(value, colW-2*pdfCellPad)
			if len(lines) == 0 {
				lines = []string{""}
			}
			if len(lines) > maxLines {
				maxLines = len(lines)
			}
			cells[j] = lines
		}
		rowH := float64(maxLines)*pdfLineHeight + 2*pdfCellPad

		if pdf.GetY()+rowH > bottomLimit {
			pdf.AddPage()
			drawHeader()
		}

		y := pdf.GetY()
		x := left
		for j := range cells {
			pdf.Rect(x, y, colW, rowH, "D")
			pdf.SetXY(x+pdfCellPad, y+pdfCellPad)
			pdf.MultiCell(colW-2*pdfCellPad, pdfLineHeight, strings.Join(cells[j], "\n"), "", "L", false)
			x += colW
		}
		pdf.SetXY(left, y+rowH)
	}

	return pdf.Output(w)
}

// ExportSubmissionPDF writes a single submission as a sectioned A4 portrait
// document: section headings with label/value pairs, absent fields skipped.
func ExportSubmissionPDF(w io.Writer, sub *models.Submission) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	const labelW = 50.0

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(usable, 10, fmt.Sprintf("%s Submission", KindTitle(sub.Kind)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(usable, 7, DisplayName(sub), "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.SetTextColor(0, 0, 0)

	for _, section := range SubmissionSections(sub) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(usable, 8, section.Title, "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		for _, field := range section.Fields {
			pdf.SetFont("Helvetica", "B", 9)
			y := pdf.GetY()
			pdf.CellFormat(labelW, pdfLineHeight+1, field.Label, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetXY(left+labelW, y)
			pdf.MultiCell(usable-labelW, pdfLineHeight+1, field.Value, "", "L", false)
		}
		pdf.Ln(3)
	}

	return pdf.Output(w)
}
