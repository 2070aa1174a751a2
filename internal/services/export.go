package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"ticketier/internal/models"
)

// ExportService renders a ticket record into a downloadable PDF ticket
// with a QR code encoding the record's export key
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// GenerateTicketPDF renders the ticket record addressed by key as a PDF
func (s *ExportService) GenerateTicketPDF(record models.TicketRecord, key string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(key, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ticket QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 14, "Ticketier", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, record.EventName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Date: %s at %s", record.EventDate, record.EventTime), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Ticket Type: %s", record.TicketType), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Quantity: %d", record.Quantity), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total: %s", record.DisplayTotal()), "", 1, "L", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(key, opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(key, 150, 20, 40, 40, false, opts, 0, "")

	pdf.SetY(80)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Ticket ref: %s", key), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket PDF: %w", err)
	}

	return buf.Bytes(), nil
}
