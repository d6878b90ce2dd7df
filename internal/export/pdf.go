package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RenderPDF lays the document's blocks out on an A4 page and returns the
// PDF bytes. Styles map to fonts here and nowhere else.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	for _, b := range doc.Blocks {
		switch b.Style {
		case StyleHeader:
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "B", 20)
			pdf.MultiCell(0, 10, b.Text, "", "L", false)
			pdf.Ln(2)
		case StyleStatusDone:
			pdf.SetTextColor(22, 130, 60)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, b.Text, "", "L", false)
			pdf.Ln(2)
		case StyleStatusPending:
			pdf.SetTextColor(180, 120, 0)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, b.Text, "", "L", false)
			pdf.Ln(2)
		case StyleLabel:
			pdf.SetTextColor(90, 90, 90)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.MultiCell(0, 5, b.Text, "", "L", false)
		case StyleBody:
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 12)
			pdf.MultiCell(0, 6, b.Text, "", "L", false)
			pdf.Ln(2)
		case StyleFooter:
			pdf.SetY(-30)
			pdf.SetTextColor(130, 130, 130)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.MultiCell(0, 4, b.Text, "", "L", false)
		default:
			return nil, fmt.Errorf("unknown block style %q", b.Style)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
