package service

import (
	"bytes"
	"fmt"
	"hotelmanager/internal/domains/booking/model/dto"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/constant"
	"strings"

	"github.com/phpdave11/gofpdf"
)

func safe(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

// renderConfirmation lays out a one page booking confirmation.
func renderConfirmation(appName string, booking dto.BookingResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.SetCreator(safe(appName, "Hotel Manager"), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Confirmation code : "+booking.BookingConfirmationCode)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued            : "+calendar.Format(calendar.Now(), constant.DateTimeFormat))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guest")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(booking.Guest.Name, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", safe(booking.Guest.Email, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", safe(booking.Guest.PhoneNumber, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Room      : %s", safe(booking.Room.RoomType, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Check-in  : %s", safe(booking.CheckInDate, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Check-out : %s", safe(booking.CheckOutDate, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Nights    : %d", booking.Nights))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Guests    : %d adult(s), %d child(ren)", booking.NumOfAdults, booking.NumOfChildren))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Rate      : %s per night", safe(booking.Room.RoomPrice, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Status    : %s", booking.Status))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this confirmation code at the front desk on arrival.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render confirmation: %w", err)
	}

	return buf.Bytes(), nil
}
