package dto

import (
	bookingDto "hotelmanager/internal/domains/booking/model/dto"
	"hotelmanager/internal/domains/search"
	userDto "hotelmanager/internal/domains/user/model/dto"
)

// AdminDashboardResponse joins the three admin listings. A listing that failed to
// load reports zero and is named in Unavailable.
type AdminDashboardResponse struct {
	TotalRooms     int                          `json:"totalRooms"`
	TotalBookings  int                          `json:"totalBookings"`
	TotalUsers     int                          `json:"totalUsers"`
	Revenue        string                       `json:"revenue"`
	Bookings       search.Aggregates            `json:"bookings"`
	RecentBookings []bookingDto.BookingResponse `json:"recentBookings"`
	Unavailable    []string                     `json:"unavailable,omitempty"`
}

type UserDashboardResponse struct {
	Profile        userDto.UserResponse         `json:"profile"`
	Bookings       search.Aggregates            `json:"bookings"`
	RecentBookings []bookingDto.BookingResponse `json:"recentBookings"`
	Empty          bool                         `json:"empty"`
}
