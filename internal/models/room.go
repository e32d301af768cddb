package models

// Room is a rentable space ("sala") listed under a company.
type Room struct {
	ID           int64   `json:"id"`
	EmpresaID    int64   `json:"empresa_id"`
	Nombre       string  `json:"nombre"`
	Tipo         string  `json:"tipo"`
	Capacidad    int     `json:"capacidad"`
	PrecioHora   float64 `json:"precio_hora"`
	Equipamiento *string `json:"equipamiento,omitempty"`
	Disponible   bool    `json:"disponible"`
	ImagenURL    *string `json:"imagen_url,omitempty"`
}
