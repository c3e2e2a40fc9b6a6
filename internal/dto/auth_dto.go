package dto

import (
	"time"

	"github.com/google/uuid"
)

type GuestLoginRequest struct {
	Name string `json:"name" validate:"omitempty,min=2"`
}

type GoogleCallbackRequest struct {
	Code string `json:"code" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"` // "guest" | "google"
	CreatedAt time.Time `json:"created_at"`
}
