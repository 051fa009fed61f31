package gateway

import (
	"context"
	"fmt"
	"net/http"

	bookingModel "hotelmanager/internal/domains/booking/model"
	userModel "hotelmanager/internal/domains/user/model"
	"hotelmanager/shared/failure"
)

func (c *Client) Profile(ctx context.Context) (userModel.User, error) {
	res, err := c.get(ctx, "/users/get-logged-in-profile-info")
	if err != nil {
		return userModel.User{}, err
	}

	if res.User == nil {
		return userModel.User{}, failure.BadGateway("profile missing from backend response")
	}

	return *res.User, nil
}

// UserBookings returns the bookings embedded in the user record.
func (c *Client) UserBookings(ctx context.Context, userID int64) ([]bookingModel.Booking, error) {
	res, err := c.get(ctx, fmt.Sprintf("/users/get-user-bookings/%d", userID))
	if err != nil {
		return nil, err
	}

	if res.User == nil || res.User.Bookings == nil {
		return []bookingModel.Booking{}, nil
	}

	return res.User.Bookings, nil
}

func (c *Client) Users(ctx context.Context) ([]userModel.User, error) {
	res, err := c.get(ctx, "/users/all")
	if err != nil {
		return nil, err
	}

	if res.UserList == nil {
		return []userModel.User{}, nil
	}

	return res.UserList, nil
}

func (c *Client) UpdateRole(ctx context.Context, userID int64, role string) error {
	_, err := c.send(ctx, http.MethodPut, fmt.Sprintf("/users/update-role/%d", userID), map[string]string{"role": role})

	return err
}
