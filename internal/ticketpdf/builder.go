// Package ticketpdf renders the booking confirmation: a one-page A4 PDF
// with the booking summary, the payment address, and a QR code encoding
// that address.
package ticketpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/boot-gif/ticket-bot/internal/booking"
)

const (
	marginX    = 50.0
	topY       = 62.0
	lineHeight = 25.0
	qrGap      = 25.0
	qrSize     = 150.0
	qrPixels   = 256
)

type Builder struct {
	PaymentAddress string
}

func NewBuilder(paymentAddress string) (Builder, error) {
	if strings.TrimSpace(paymentAddress) == "" {
		return Builder{}, fmt.Errorf("payment address is required")
	}
	return Builder{PaymentAddress: paymentAddress}, nil
}

// Render produces the confirmation document. The QR payload is the payment
// address, not anything booking-specific: every ticket's code scans to the
// same deposit address.
func (b Builder) Render(rec booking.Booking) ([]byte, error) {
	if strings.TrimSpace(b.PaymentAddress) == "" {
		return nil, fmt.Errorf("payment address is required")
	}

	qrPNG, err := qrcode.Encode(b.PaymentAddress, qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("encode payment qr: %w", err)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 14)
	// Core fonts are cp1252; the translator keeps the French accents and
	// drops anything unencodable.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	y := topY
	for _, line := range b.lines(rec) {
		if line != "" {
			pdf.Text(marginX, y, tr(line))
		}
		y += lineHeight
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("payment-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("payment-qr", marginX, y+qrGap, qrSize, qrSize, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write confirmation pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (b Builder) lines(rec booking.Booking) []string {
	return []string{
		"Booking Confirmation / Confirmation de réservation",
		"",
		fmt.Sprintf("Booking ID / ID de réservation: %s", rec.Code),
		fmt.Sprintf("Name / Nom: %s", rec.Name),
		fmt.Sprintf("Category / Catégorie: %s", rec.Category),
		fmt.Sprintf("Details / Détails: %s", rec.Selection),
		fmt.Sprintf("Ticket Type / Type de billet: %s", rec.TicketType),
		fmt.Sprintf("Price / Prix: %d USDT", rec.Price),
		"",
		"Payment address (Binance USDT TRC20):",
		b.PaymentAddress,
		"",
		"After payment, send a screenshot to confirm your booking.",
		"Après le paiement, envoyez une capture d'écran pour confirmer votre réservation.",
	}
}
