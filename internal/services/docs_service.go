package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// FlightBookingReader is the read side used for e-tickets.
type FlightBookingReader interface {
	GetByID(ctx context.Context, id string) (models.FlightBooking, error)
}

// DocsService renders order invoices and flight e-tickets as PDF.
type DocsService struct {
	Orders   OrderReader
	Bookings FlightBookingReader
	Brand    string
	Now      func() time.Time

	// Loaders override the stores in tests.
	OrderLoader   func(ctx context.Context, id string) (models.Order, error)
	BookingLoader func(ctx context.Context, id string) (models.FlightBooking, error)
}

func (s DocsService) brand() string {
	return safe(s.Brand, "Travel Back Office")
}

func (s DocsService) loadOrder(ctx context.Context, id string) (models.Order, error) {
	orderID, err := parseID("id", id)
	if err != nil {
		return models.Order{}, err
	}
	load := s.OrderLoader
	if load == nil {
		load = s.Orders.GetByID
	}
	o, err := load(ctx, orderID)
	if err != nil {
		return models.Order{}, storeErr(ctx, "docs", "load_order", "order", err, "failed to load order")
	}
	return o, nil
}

func (s DocsService) loadBooking(ctx context.Context, id string) (models.FlightBooking, error) {
	bookingID, err := parseID("id", id)
	if err != nil {
		return models.FlightBooking{}, err
	}
	load := s.BookingLoader
	if load == nil {
		load = s.Bookings.GetByID
	}
	b, err := load(ctx, bookingID)
	if err != nil {
		return models.FlightBooking{}, storeErr(ctx, "docs", "load_booking", "booking", err, "failed to load booking")
	}
	return b, nil
}

// GenerateInvoice returns the invoice PDF and its download filename.
func (s DocsService) GenerateInvoice(ctx context.Context, orderID string) ([]byte, string, error) {
	o, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(ctx, "docs", "generate_invoice", "order_id="+o.ID)
	return s.InvoicePDF(o)
}

// GenerateETicket returns the e-ticket PDF for a flight booking.
func (s DocsService) GenerateETicket(ctx context.Context, bookingID string) ([]byte, string, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(ctx, "docs", "generate_eticket", "booking_id="+b.ID)
	return s.ETicketPDF(b)
}

// InvoicePDF renders an already loaded order. Core PDF fonts have no rupee
// glyph, so amounts are written as "INR".
func (s DocsService) InvoicePDF(o models.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(s.brand()))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No   : INV-"+strings.ToUpper(o.Reference()))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Order Date   : "+utils.FormatDate(o.BookingDate))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued       : "+nowOr(s.Now).Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Status       : %s / %s", o.Status, o.PaymentStatus))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr("Name   : "+safe(o.ContactInfo.Name, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email  : "+safe(o.ContactInfo.Email, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Phone  : "+safe(o.ContactInfo.Phone, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Items:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, t := range o.Trips {
		desc := fmt.Sprintf("%d) %s, %s (%s) x%d @ %s",
			i+1, safe(t.Name, "-"), safe(t.Location, "-"),
			safe(utils.FormatDate(t.SelectedDate), "open date"), t.Quantity, formatINRText(t.Price))
		pdf.MultiCell(0, 6, tr(desc), "", "", false)
		pdf.Ln(1)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+formatINRText(o.TotalAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Payment method: %s. Travelers: %d.", o.PaymentMethod, o.Travelers()), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%s_%s.pdf", o.Reference(), utils.SafeFilenamePart(o.ContactInfo.Name))
	return buf.Bytes(), filename, nil
}

// ETicketPDF renders one page listing every passenger on the booking.
func (s DocsService) ETicketPDF(b models.FlightBooking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Airline        : %s", safe(b.Airline, "-")),
		fmt.Sprintf("Flight         : %s", safe(b.FlightNumber, "-")),
		fmt.Sprintf("From           : %s (%s)", safe(b.Departure.City, "-"), safe(b.Departure.Airport, "-")),
		fmt.Sprintf("Departs        : %s %s", safe(dateOnly(b.Departure.Date), "-"), safe(timeHM(b.Departure.Time), "-")),
		fmt.Sprintf("To             : %s (%s)", safe(b.Arrival.City, "-"), safe(b.Arrival.Airport, "-")),
		fmt.Sprintf("Arrives        : %s %s", safe(dateOnly(b.Arrival.Date), "-"), safe(timeHM(b.Arrival.Time), "-")),
		fmt.Sprintf("Status         : %s", b.Status),
		fmt.Sprintf("Payment        : %s", safe(b.PaymentID, "pending")),
		fmt.Sprintf("Booking Code   : %s", strings.ToUpper(shortRef(b.ID))),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range b.Passengers {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%d) %s %s, %d, %s", i+1, p.FirstName, p.LastName, p.Age, safe(p.Gender, "-"))))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket with a valid photo ID at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ETICKET_%s_%s.pdf", shortRef(b.ID), utils.SafeFilenamePart(b.FlightNumber))
	return buf.Bytes(), filename, nil
}

func shortRef(id string) string {
	return models.Order{ID: id}.Reference()
}

func formatINRText(v float64) string {
	return "INR " + strings.TrimPrefix(utils.FormatINR(v), "₹")
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

func timeHM(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}
