package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks

import (
	"context"

	bookingModel "hotelmanager/internal/domains/booking/model"
	roomModel "hotelmanager/internal/domains/room/model"
	userModel "hotelmanager/internal/domains/user/model"
)

// Credentials supplies the bearer token of the caller's session and is told when
// the backend rejects it.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (Response, error)
	Register(ctx context.Context, req RegisterRequest) (Response, error)
}

type UserAPI interface {
	Profile(ctx context.Context) (userModel.User, error)
	UserBookings(ctx context.Context, userID int64) ([]bookingModel.Booking, error)
	Users(ctx context.Context) ([]userModel.User, error)
	UpdateRole(ctx context.Context, userID int64, role string) error
}

type RoomAPI interface {
	Rooms(ctx context.Context) ([]roomModel.Room, error)
	RoomTypes(ctx context.Context) ([]string, error)
	Room(ctx context.Context, id int64) (roomModel.Room, error)
	AvailableRooms(ctx context.Context) ([]roomModel.Room, error)
	AvailableRoomsByDateAndType(ctx context.Context, checkIn, checkOut, roomType string) ([]roomModel.Room, error)
	CreateRoom(ctx context.Context, form RoomForm) error
	UpdateRoom(ctx context.Context, id int64, form RoomForm) error
	DeleteRoom(ctx context.Context, id int64) error
}

type BookingAPI interface {
	Bookings(ctx context.Context) ([]bookingModel.Booking, error)
	BookingByCode(ctx context.Context, code string) (bookingModel.Booking, error)
	BookRoom(ctx context.Context, roomID, userID int64, req BookRoomRequest) (string, error)
	CancelBooking(ctx context.Context, id int64) error
}
