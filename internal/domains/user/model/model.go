package model

import (
	bookingModel "hotelmanager/internal/domains/booking/model"
	"hotelmanager/shared/constant"
)

const (
	EntityName = "user"
)

// User is an account as the backend reports it. Bookings are only present on
// profile and user-bookings responses.
type User struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	PhoneNumber string                 `json:"phoneNumber"`
	Role        string                 `json:"role"`
	Bookings    []bookingModel.Booking `json:"bookings,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == constant.RoleAdmin
}

func (u User) Identity() int64 {
	return u.ID
}

func (u User) SearchText() []string {
	return []string{u.Name, u.Email}
}

func (u User) MemberRole() string {
	return u.Role
}

// ToggledRole is the role an admin switches this user to.
func (u User) ToggledRole() string {
	if u.IsAdmin() {
		return constant.RoleUser
	}

	return constant.RoleAdmin
}
