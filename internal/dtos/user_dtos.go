package dtos

import "github.com/salaspot/rooms-service/internal/models"

type UserListResponse struct {
	Message  string         `json:"message"`
	Usuarios []*models.User `json:"usuarios"`
}

type UserResponse struct {
	Message string       `json:"message"`
	Usuario *models.User `json:"usuario"`
}
