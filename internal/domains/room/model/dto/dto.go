package dto

import (
	"fmt"
	"hotelmanager/infras/gateway"
	"hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/search"
	gDto "hotelmanager/shared/dto"
	"io"
	"mime/multipart"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomType        string                `json:"roomType"        validate:"required,max=100"`
	RoomPrice       decimal.Decimal       `json:"roomPrice"       validate:"required,gt=0"`
	RoomDescription string                `json:"roomDescription" validate:"required,max=1000"`
	Photo           *multipart.FileHeader `json:"photo"           validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	PhotoFile       multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToForm() (gateway.RoomForm, error) {
	upload, err := readUpload(c.Photo, c.PhotoFile)
	if err != nil {
		return gateway.RoomForm{}, err
	}

	return gateway.RoomForm{
		RoomType:        c.RoomType,
		RoomPrice:       c.RoomPrice.String(),
		RoomDescription: c.RoomDescription,
		Photo:           upload,
	}, nil
}

// UpdateRoomRequest leaves every field the admin did not touch empty.
type UpdateRoomRequest struct {
	RoomType        string                `json:"roomType"        validate:"omitempty,max=100"`
	RoomPrice       *decimal.Decimal      `json:"roomPrice"       validate:"omitempty,gt=0"`
	RoomDescription string                `json:"roomDescription" validate:"omitempty,max=1000"`
	Photo           *multipart.FileHeader `json:"photo"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	PhotoFile       multipart.File        `json:"-"`
}

func (u *UpdateRoomRequest) Empty() bool {
	return u.RoomType == "" && u.RoomPrice == nil && u.RoomDescription == "" && u.Photo == nil
}

func (u *UpdateRoomRequest) ToForm() (gateway.RoomForm, error) {
	upload, err := readUpload(u.Photo, u.PhotoFile)
	if err != nil {
		return gateway.RoomForm{}, err
	}

	form := gateway.RoomForm{
		RoomType:        u.RoomType,
		RoomDescription: u.RoomDescription,
		Photo:           upload,
	}

	if u.RoomPrice != nil {
		form.RoomPrice = u.RoomPrice.String()
	}

	return form, nil
}

func readUpload(header *multipart.FileHeader, file multipart.File) (*gateway.Upload, error) {
	if header == nil || file == nil {
		return nil, nil
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}

	return &gateway.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

type AvailabilityRequest struct {
	CheckInDate  string `json:"checkInDate"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string `json:"checkOutDate" validate:"omitempty,datetime=2006-01-02"`
	RoomType     string `json:"roomType"     validate:"omitempty,max=100"`
}

func (a AvailabilityRequest) HasDates() bool {
	return a.CheckInDate != "" && a.CheckOutDate != ""
}

type EstimateRequest struct {
	CheckInDate  string `json:"checkIn"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"checkOut" validate:"required,datetime=2006-01-02"`
}

type RoomResponse struct {
	ID              int64  `json:"id"`
	RoomType        string `json:"roomType"`
	RoomPrice       string `json:"roomPrice"`
	RoomPhotoURL    string `json:"roomPhotoUrl,omitempty"`
	RoomDescription string `json:"roomDescription"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomType = model.RoomType
	r.RoomPrice = model.RoomPrice.Display()
	r.RoomPhotoURL = model.RoomPhotoURL
	r.RoomDescription = model.RoomDescription
}

func FromModels(models []model.Room) []RoomResponse {
	rooms := make([]RoomResponse, 0, len(models))

	for _, m := range models {
		var room RoomResponse
		room.FromModel(m)
		rooms = append(rooms, room)
	}

	return rooms
}

type GetRoomsResponse struct {
	Rooms      []RoomResponse  `json:"rooms"`
	Pagination gDto.Pagination `json:"pagination"`
	RoomTypes  map[string]int  `json:"room_types"`
	Empty      bool            `json:"empty"`
}

func (g *GetRoomsResponse) FromResult(result search.Result[model.Room]) {
	g.Rooms = FromModels(result.Page.Items)
	g.Pagination = gDto.NewPagination(result.Page.Number, result.Page.Size, result.Page.TotalPages, result.Page.TotalItems)
	g.RoomTypes = result.Aggregates.RoomTypes
	g.Empty = result.Empty
}
