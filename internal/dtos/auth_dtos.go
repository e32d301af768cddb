package dtos

import "github.com/salaspot/rooms-service/internal/models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Nombre   string  `json:"nombre" validate:"required,max=100"`
	Apellido string  `json:"apellido" validate:"required,max=100"`
	Email    string  `json:"email" validate:"required,email,max=100"`
	Password string  `json:"password" validate:"required,min=6"`
	Telefono *string `json:"telefono" validate:"omitempty,max=20"`
	Rol      string  `json:"rol" validate:"required,oneof=admin supervisor usuario"`
}

// AuthResponse is returned by login and register. TokenType is always
// "Bearer".
type AuthResponse struct {
	Message   string       `json:"message"`
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
}

type RefreshResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

type LogoutResponse struct {
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to"`
}

type MeResponse struct {
	User *models.User `json:"user"`
}
