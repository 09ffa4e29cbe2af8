package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// DocumentPDF writes the print-ready document as an A4 PDF. The layout
// mirrors the markdown rendering: letterhead, reference block, item
// table, total row and the kind's footer note.
func DocumentPDF(w io.Writer, v *Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// letterhead
	if v.Firm.LogoPath != "" {
		if _, err := os.Stat(v.Firm.LogoPath); err == nil {
			pdf.ImageOptions(v.Firm.LogoPath, 10, 10, 25, 0, false, gofpdf.ImageOptions{}, 0, "")
			pdf.SetX(40)
		}
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 8, v.Firm.Name)
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	if v.Firm.Tagline != "" {
		pdf.Cell(0, 5, v.Firm.Tagline)
		pdf.Ln(5)
	}
	pdf.SetFont("Arial", "", 9)
	if v.Firm.Address != "" {
		pdf.Cell(0, 5, v.Firm.Address)
		pdf.Ln(5)
	}
	if v.Firm.Phone != "" {
		pdf.Cell(0, 5, "Tel: "+v.Firm.Phone)
		pdf.Ln(5)
	}
	pdf.Ln(4)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	// title and reference block
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, v.Labels.TypeLabel)
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, "No: "+v.DocNo)
	pdf.Ln(5)
	pdf.Cell(0, 5, "Tarikh: "+v.Date.String())
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 5, v.Labels.CustomerLabel+" "+v.Customer)
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
	if v.Phone != "" {
		pdf.Cell(0, 5, "Telefon: "+v.Phone)
		pdf.Ln(5)
	}
	if v.Address != "" {
		pdf.Cell(0, 5, "Alamat: "+v.Address)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(150, 8, "Perkara", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Amaun", "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, l := range v.Lines {
		pdf.CellFormat(150, 8, l.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, l.Amount.String(), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(150, 8, v.Labels.TotalLabel, "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, v.Total.String(), "1", 1, "R", true, 0, "")
	pdf.Ln(6)

	if v.Notes != "" {
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, v.Notes, "", "L", false)
		pdf.Ln(2)
	}
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, v.Labels.FooterNote, "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
