package dtos

import "github.com/salaspot/rooms-service/internal/models"

type CreateRoomRequest struct {
	EmpresaID    int64   `json:"empresa_id" validate:"required,gt=0"`
	Nombre       string  `json:"nombre" validate:"required,max=100"`
	Tipo         string  `json:"tipo" validate:"required,max=50"`
	Capacidad    int     `json:"capacidad" validate:"required,gt=0"`
	PrecioHora   float64 `json:"precio_hora" validate:"required,gt=0"`
	Equipamiento *string `json:"equipamiento" validate:"omitempty,max=500"`
	Disponible   *bool   `json:"disponible"`
}

type UpdateRoomRequest struct {
	Nombre       *string  `json:"nombre" validate:"omitempty,max=100"`
	Tipo         *string  `json:"tipo" validate:"omitempty,max=50"`
	Capacidad    *int     `json:"capacidad" validate:"omitempty,gt=0"`
	PrecioHora   *float64 `json:"precio_hora" validate:"omitempty,gt=0"`
	Equipamiento *string  `json:"equipamiento" validate:"omitempty,max=500"`
	Disponible   *bool    `json:"disponible"`
}

type SearchRoomsRequest struct {
	Tipo         string  `json:"tipo" validate:"omitempty,max=50"`
	CapacidadMin int     `json:"capacidad_min" validate:"omitempty,gt=0"`
	PrecioMax    float64 `json:"precio_max" validate:"omitempty,gt=0"`
	Ciudad       string  `json:"ciudad" validate:"omitempty,max=100"`
	Disponible   *bool   `json:"disponible"`
}

type RoomResponse struct {
	Message string       `json:"message"`
	Sala    *models.Room `json:"sala"`
}

type RoomListResponse struct {
	Message string         `json:"message"`
	Salas   []*models.Room `json:"salas"`
}
