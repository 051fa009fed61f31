package model

import (
	roomModel "hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/search"
	"hotelmanager/shared/calendar"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "booking"

	StatusFlagCancelled = "cancelled"
)

// Guest is the slice of the booking owner embedded in a booking.
type Guest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Booking is a reservation as the backend reports it. Missing nested room or user
// decode to zero values and unreadable dates to invalid dates.
type Booking struct {
	ID                      int64          `json:"id"`
	CheckInDate             calendar.Date  `json:"checkInDate"`
	CheckOutDate            calendar.Date  `json:"checkOutDate"`
	NumOfAdults             int            `json:"numOfAdults"`
	NumOfChildren           int            `json:"numOfChildren"`
	TotalNumOfGuest         int            `json:"totalNumOfGuest"`
	BookingConfirmationCode string         `json:"bookingConfirmationCode"`
	Status                  string         `json:"status,omitempty"`
	User                    Guest          `json:"user"`
	Room                    roomModel.Room `json:"room"`
}

func (b Booking) Cancelled() bool {
	return strings.EqualFold(b.Status, StatusFlagCancelled)
}

func (b Booking) Guests() int {
	if b.TotalNumOfGuest > 0 {
		return b.TotalNumOfGuest
	}

	return b.NumOfAdults + b.NumOfChildren
}

func (b Booking) Identity() int64 {
	return b.ID
}

func (b Booking) SearchText() []string {
	return []string{b.User.Name, b.BookingConfirmationCode, b.Room.RoomType}
}

func (b Booking) Stay() (calendar.Date, calendar.Date) {
	return b.CheckInDate, b.CheckOutDate
}

func (b Booking) Type() string {
	return b.Room.RoomType
}

// Rate is the nightly price of the booked room. Bookings do not filter by price.
func (b Booking) Rate() decimal.Decimal {
	return b.Room.Price()
}

func (b Booking) StatusOn(today calendar.Date) search.Status {
	return search.DeriveStatus(b.Cancelled(), b.CheckInDate, b.CheckOutDate, today)
}
