package model

import (
	"hotelmanager/shared/money"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "room"

	FieldRoomType        = "roomType"
	FieldRoomPrice       = "roomPrice"
	FieldRoomDescription = "roomDescription"
	FieldPhoto           = "photo"
)

// Room is a bookable room as the backend reports it.
type Room struct {
	ID              int64        `json:"id"`
	RoomType        string       `json:"roomType"`
	RoomPrice       money.Amount `json:"roomPrice"`
	RoomPhotoURL    string       `json:"roomPhotoUrl,omitempty"`
	RoomDescription string       `json:"roomDescription"`
}

func (r Room) Identity() int64 {
	return r.ID
}

func (r Room) SearchText() []string {
	return []string{r.RoomType, r.RoomDescription}
}

func (r Room) Type() string {
	return r.RoomType
}

func (r Room) Price() decimal.Decimal {
	return r.RoomPrice.Decimal
}
