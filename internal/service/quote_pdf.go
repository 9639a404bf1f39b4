package service

import (
	"bytes"
	"fmt"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/util"

	"github.com/jung-kurt/gofpdf"
)

// RenderQuotePDF renders a printable quotation document. Amounts use an
// "Rs " prefix because the built-in PDF fonts have no rupee glyph.
func RenderQuotePDF(quote *models.Quote, items []models.QuoteItem) ([]byte, error) {
	start := time.Now()
	defer func() {
		util.QuotePDFRenderLatency.Observe(time.Since(start).Seconds())
	}()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Quotation")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Quote ID: %s", quote.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", quote.UserID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.UnixMilli(quote.CreatedTime).Format("02 Jan 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Valid up to: %s", time.UnixMilli(quote.ValidUpto).Format("02 Jan 2006")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Part Code", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Units", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}

		name := item.Name
		if item.SelectedLength != nil {
			name = fmt.Sprintf("%s, %s %s", name,
				trimFloat(*item.SelectedLength), item.LengthUnit)
		}

		pdf.CellFormat(70, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, item.PartCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Units), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("Rs %.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("Rs %.2f", item.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(160, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("Rs %.2f", quote.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(160, 7, "Shipping", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("Rs %.2f", quote.Shipping), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(160, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("Rs %.2f", quote.Total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
