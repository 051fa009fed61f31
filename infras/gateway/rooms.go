package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	roomModel "hotelmanager/internal/domains/room/model"
	"hotelmanager/shared/failure"
)

func roomList(res Response) []roomModel.Room {
	if res.RoomList == nil {
		return []roomModel.Room{}
	}

	return res.RoomList
}

func (c *Client) Rooms(ctx context.Context) ([]roomModel.Room, error) {
	res, err := c.getPublic(ctx, "/rooms/all")
	if err != nil {
		return nil, err
	}

	return roomList(res), nil
}

// RoomTypes is the one endpoint that answers with a bare JSON array.
func (c *Client) RoomTypes(ctx context.Context) ([]string, error) {
	types := []string{}

	if err := c.do(ctx, request{method: http.MethodGet, path: "/rooms/types", public: true}, &types); err != nil {
		return nil, err
	}

	return types, nil
}

func (c *Client) Room(ctx context.Context, id int64) (roomModel.Room, error) {
	res, err := c.getPublic(ctx, fmt.Sprintf("/rooms/room-by-id/%d", id))
	if err != nil {
		return roomModel.Room{}, err
	}

	if res.Room == nil {
		return roomModel.Room{}, failure.NotFound(fmt.Sprintf("room %d not found", id))
	}

	return *res.Room, nil
}

func (c *Client) AvailableRooms(ctx context.Context) ([]roomModel.Room, error) {
	res, err := c.getPublic(ctx, "/rooms/all-available-rooms")
	if err != nil {
		return nil, err
	}

	return roomList(res), nil
}

func (c *Client) AvailableRoomsByDateAndType(ctx context.Context, checkIn, checkOut, roomType string) ([]roomModel.Room, error) {
	query := url.Values{}
	query.Set("checkInDate", checkIn)
	query.Set("checkOutDate", checkOut)
	query.Set("roomType", roomType)

	res, err := c.getPublic(ctx, "/rooms/available-rooms-by-date-and-type?"+query.Encode())
	if err != nil {
		return nil, err
	}

	return roomList(res), nil
}

func (c *Client) CreateRoom(ctx context.Context, form RoomForm) error {
	_, err := c.multipart(ctx, http.MethodPost, "/rooms/add", form)

	return err
}

func (c *Client) UpdateRoom(ctx context.Context, id int64, form RoomForm) error {
	_, err := c.multipart(ctx, http.MethodPut, fmt.Sprintf("/rooms/update/%d", id), form)

	return err
}

func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	_, err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/rooms/delete/%d", id), nil)

	return err
}
