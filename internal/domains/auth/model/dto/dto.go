package dto

import (
	"hotelmanager/infras/gateway"
	userModel "hotelmanager/internal/domains/user/model"
	userDto "hotelmanager/internal/domains/user/model/dto"
	"strings"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) ToGateway() gateway.LoginRequest {
	return gateway.LoginRequest{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

type RegisterRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=20"`
	Password    string `json:"password"    validate:"required,min=6"`
}

func (r *RegisterRequest) ToGateway() gateway.RegisterRequest {
	return gateway.RegisterRequest{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Password:    r.Password,
	}
}

// LoginResponse hands the caller the session id to send back as X-Session-ID.
type LoginResponse struct {
	SessionID      string               `json:"sessionId"`
	Role           string               `json:"role"`
	ExpirationTime string               `json:"expirationTime,omitempty"`
	User           userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromLogin(sessionID string, login gateway.Response, user userModel.User, regions []string) {
	l.SessionID = sessionID
	l.Role = login.Role
	l.ExpirationTime = login.ExpirationTime
	l.User.FromModel(user, regions)

	if l.Role == "" {
		l.Role = user.Role
	}
}
