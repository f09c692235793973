package donation

import (
	"bytes"
	"strconv"

	"Care-Crumbs/entities"

	"github.com/jung-kurt/gofpdf"
)

// renderDonationReport builds a PDF summary of a donor's donation history.
func renderDonationReport(donorName string, records []*entities.DonatedFood) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Donation Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Donation Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Donor: "+donorName)
	pdf.Ln(10)

	colWidths := []float64{55, 20, 30, 45, 40}
	headers := []string{"Food", "Qty", "Date", "Organization", "Location"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(254, 104, 7)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, record := range records {
		row := []string{
			record.Name,
			strconv.Itoa(record.Quantity),
			record.DonationDate.Format("2006-01-02"),
			record.Organization,
			record.Location,
		}
		for i, cell := range row {
			pdf.CellFormat(colWidths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(records) == 0 {
		pdf.Ln(4)
		pdf.Cell(0, 8, "No donations recorded yet.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
