package dto

import (
	"hotelmanager/internal/domains/booking/model"
	"hotelmanager/internal/domains/pricing"
	roomDto "hotelmanager/internal/domains/room/model/dto"
	"hotelmanager/internal/domains/search"
	"hotelmanager/shared/calendar"
	gDto "hotelmanager/shared/dto"
	"hotelmanager/shared/phone"
)

type BookRequest struct {
	RoomID        int64  `json:"roomId"        validate:"required,gt=0"`
	CheckInDate   string `json:"checkInDate"   validate:"required,datetime=2006-01-02,notpast"`
	CheckOutDate  string `json:"checkOutDate"  validate:"required,datetime=2006-01-02"`
	NumOfAdults   int    `json:"numOfAdults"   validate:"min=1,max=20"`
	NumOfChildren int    `json:"numOfChildren" validate:"min=0,max=20"`
}

type QuoteRequest struct {
	RoomID       int64  `json:"roomId"   validate:"required,gt=0"`
	CheckInDate  string `json:"checkIn"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"checkOut" validate:"required,datetime=2006-01-02"`
}

type GuestResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type BookingResponse struct {
	ID                      int64                `json:"id"`
	BookingConfirmationCode string               `json:"bookingConfirmationCode"`
	CheckInDate             string               `json:"checkInDate"`
	CheckOutDate            string               `json:"checkOutDate"`
	Nights                  int                  `json:"nights"`
	NumOfAdults             int                  `json:"numOfAdults"`
	NumOfChildren           int                  `json:"numOfChildren"`
	TotalNumOfGuest         int                  `json:"totalNumOfGuest"`
	Status                  search.Status        `json:"status"`
	Guest                   GuestResponse        `json:"guest"`
	Room                    roomDto.RoomResponse `json:"room"`
}

// FromModel renders a booking as of today. Phone numbers are formatted for the given regions.
func (b *BookingResponse) FromModel(m model.Booking, today calendar.Date, regions []string) {
	b.ID = m.ID
	b.BookingConfirmationCode = m.BookingConfirmationCode
	b.CheckInDate = m.CheckInDate.String()
	b.CheckOutDate = m.CheckOutDate.String()
	b.NumOfAdults = m.NumOfAdults
	b.NumOfChildren = m.NumOfChildren
	b.TotalNumOfGuest = m.Guests()
	b.Status = m.StatusOn(today)
	b.Guest = GuestResponse{
		ID:          m.User.ID,
		Name:        m.User.Name,
		Email:       m.User.Email,
		PhoneNumber: phone.Normalize(m.User.PhoneNumber, regions),
	}
	b.Room.FromModel(m.Room)

	if nights, err := pricing.Nights(m.CheckInDate, m.CheckOutDate); err == nil {
		b.Nights = nights
	}
}

func FromModels(models []model.Booking, today calendar.Date, regions []string) []BookingResponse {
	bookings := make([]BookingResponse, 0, len(models))

	for _, m := range models {
		var booking BookingResponse
		booking.FromModel(m, today, regions)
		bookings = append(bookings, booking)
	}

	return bookings
}

type RangeResponse struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination gDto.Pagination   `json:"pagination"`
	Aggregates search.Aggregates `json:"aggregates"`
	Range      RangeResponse     `json:"range"`
	Empty      bool              `json:"empty"`
}

func (g *GetBookingsResponse) FromResult(result search.Result[model.Booking], today calendar.Date, regions []string) {
	g.Bookings = FromModels(result.Page.Items, today, regions)
	g.Pagination = gDto.NewPagination(result.Page.Number, result.Page.Size, result.Page.TotalPages, result.Page.TotalItems)
	g.Aggregates = result.Aggregates
	g.Range = RangeResponse{Start: result.Range.Start.String(), End: result.Range.End.String()}
	g.Empty = result.Empty
}

type BookResponse struct {
	BookingConfirmationCode string                    `json:"bookingConfirmationCode"`
	Room                    roomDto.RoomResponse      `json:"room"`
	CheckInDate             string                    `json:"checkInDate"`
	CheckOutDate            string                    `json:"checkOutDate"`
	Price                   pricing.BreakdownResponse `json:"price"`
}
