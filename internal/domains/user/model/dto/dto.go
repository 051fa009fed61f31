package dto

import (
	"hotelmanager/internal/domains/search"
	"hotelmanager/internal/domains/user/model"
	gDto "hotelmanager/shared/dto"
	"hotelmanager/shared/phone"
)

// UpdateRoleRequest sets the role explicitly; an empty role toggles USER and ADMIN.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

func (r *UserResponse) FromModel(m model.User, regions []string) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.PhoneNumber = phone.Normalize(m.PhoneNumber, regions)
	r.Role = m.Role
}

func FromModels(models []model.User, regions []string) []UserResponse {
	users := make([]UserResponse, 0, len(models))

	for _, m := range models {
		var user UserResponse
		user.FromModel(m, regions)
		users = append(users, user)
	}

	return users
}

type GetUsersResponse struct {
	Users      []UserResponse  `json:"users"`
	Pagination gDto.Pagination `json:"pagination"`
	Total      int             `json:"total"`
	Roles      map[string]int  `json:"roles"`
	Empty      bool            `json:"empty"`
}

func (g *GetUsersResponse) FromResult(result search.UserResult[model.User], regions []string) {
	g.Users = FromModels(result.Page.Items, regions)
	g.Pagination = gDto.NewPagination(result.Page.Number, result.Page.Size, result.Page.TotalPages, result.Page.TotalItems)
	g.Total = result.Total
	g.Roles = result.Roles
	g.Empty = result.Empty
}
