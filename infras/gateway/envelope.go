package gateway

import (
	bookingModel "hotelmanager/internal/domains/booking/model"
	roomModel "hotelmanager/internal/domains/room/model"
	userModel "hotelmanager/internal/domains/user/model"
)

// Response is the single envelope every backend endpoint answers with.
type Response struct {
	StatusCode              int                    `json:"statusCode"`
	Message                 string                 `json:"message"`
	Token                   string                 `json:"token,omitempty"`
	Role                    string                 `json:"role,omitempty"`
	ExpirationTime          string                 `json:"expirationTime,omitempty"`
	BookingConfirmationCode string                 `json:"bookingConfirmationCode,omitempty"`
	User                    *userModel.User        `json:"user,omitempty"`
	Room                    *roomModel.Room        `json:"room,omitempty"`
	Booking                 *bookingModel.Booking  `json:"booking,omitempty"`
	UserList                []userModel.User       `json:"userList,omitempty"`
	RoomList                []roomModel.Room       `json:"roomList,omitempty"`
	BookingList             []bookingModel.Booking `json:"bookingList,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password"    validate:"required,min=6"`
}

type BookRoomRequest struct {
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	NumOfAdults   int    `json:"numOfAdults"`
	NumOfChildren int    `json:"numOfChildren"`
}

// RoomForm is sent as multipart/form-data. Photo is optional on update.
type RoomForm struct {
	RoomType        string
	RoomPrice       string
	RoomDescription string
	Photo           *Upload
}

type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}
