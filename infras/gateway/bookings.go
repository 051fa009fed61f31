package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	bookingModel "hotelmanager/internal/domains/booking/model"
	"hotelmanager/shared/failure"
)

func (c *Client) Bookings(ctx context.Context) ([]bookingModel.Booking, error) {
	res, err := c.get(ctx, "/bookings/all")
	if err != nil {
		return nil, err
	}

	if res.BookingList == nil {
		return []bookingModel.Booking{}, nil
	}

	return res.BookingList, nil
}

func (c *Client) BookingByCode(ctx context.Context, code string) (bookingModel.Booking, error) {
	res, err := c.get(ctx, "/bookings/get-by-confirmation-code/"+url.PathEscape(code))
	if err != nil {
		return bookingModel.Booking{}, err
	}

	if res.Booking == nil {
		return bookingModel.Booking{}, failure.NotFound(fmt.Sprintf("booking %s not found", code))
	}

	return *res.Booking, nil
}

// BookRoom returns the confirmation code issued by the backend.
func (c *Client) BookRoom(ctx context.Context, roomID, userID int64, req BookRoomRequest) (string, error) {
	res, err := c.send(ctx, http.MethodPost, fmt.Sprintf("/bookings/book-room/%d/%d", roomID, userID), req)
	if err != nil {
		return "", err
	}

	return res.BookingConfirmationCode, nil
}

func (c *Client) CancelBooking(ctx context.Context, id int64) error {
	_, err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/bookings/cancel/%d", id), nil)

	return err
}
