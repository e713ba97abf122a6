package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"github.com/jung-kurt/gofpdf"
)

// GenerateSalesReportPDF renders the current dashboard view as a PDF: the
// summary totals, the best-seller table and recent transaction detail.
func (s *DashboardService) GenerateSalesReportPDF(ctx context.Context) ([]byte, string, error) {
	data, err := s.GetSalesDashboardData(ctx)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err := renderSalesReportPDF(data, time.Now())
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("sales-report-%s.pdf", time.Now().Format("2006-01-02"))
	return pdfBytes, filename, nil
}

func renderSalesReportPDF(data *core.DashboardData, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, "Pixel Bazaar", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 7, "Sales Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated At: %s", generatedAt.Format("02 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Summary", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Total Revenue: %s", formatCredits(data.TotalRevenue)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Transactions: %d", data.TotalSales), "1", 1, "L", false, 0, "")
	pdf.CellFormat(190, 7, fmt.Sprintf("Items Sold: %d", data.TotalItemsSold), "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Best Sellers", "", 1, "L", false, 0, "")

	if len(data.BestSellingItems) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, "No sales recorded yet.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetFont("Arial", "", 10)
		for i, item := range data.BestSellingItems {
			line := fmt.Sprintf("%d) %s - %d units, %s", i+1, safeReportValue(item.Title), item.UnitsSold, formatCredits(item.Revenue))
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Recent Transactions", "", 1, "L", false, 0, "")

	if len(data.RecentTransactions) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, "No transactions recorded yet.", "", 1, "L", false, 0, "")
	} else {
		for i, txn := range data.RecentTransactions {
			ensurePageSpace(pdf, 30)

			pdf.SetFont("Arial", "B", 10)
			header := fmt.Sprintf("%d) %s | %s | %s", i+1, txn.ID, safeReportValue(txn.Username), txn.Date.Format("02 Jan 2006 15:04"))
			pdf.MultiCell(0, 6, header, "", "L", false)

			pdf.SetFont("Arial", "", 10)
			for _, line := range txn.Lines {
				detail := fmt.Sprintf("- %dx %s @ %s = %s",
					line.Quantity,
					safeReportValue(line.Title),
					formatCredits(line.UnitPrice),
					formatCredits(line.UnitPrice*line.Quantity),
				)
				pdf.MultiCell(0, 5, detail, "", "L", false)
			}
			pdf.MultiCell(0, 5, fmt.Sprintf("Total: %s", formatCredits(txn.TotalAmount)), "", "L", false)

			pdf.CellFormat(0, 1, "", "B", 1, "L", false, 0, "")
			pdf.Ln(1)
		}
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buffer.Bytes(), nil
}

func ensurePageSpace(pdf *gofpdf.Fpdf, minSpace float64) {
	_, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, bottomMargin := pdf.GetMargins()
	usableBottom := pageHeight - bottomMargin
	if pdf.GetY()+minSpace > usableBottom {
		pdf.AddPage()
		pdf.SetX(leftMargin)
		pdf.SetRightMargin(rightMargin)
	}
}

func safeReportValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatCredits(amount int) string {
	return fmt.Sprintf("%d cr", amount)
}
