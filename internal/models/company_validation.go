package models

import "time"

// CompanyValidation tracks the admin review of a company listing. One row is
// created as pendiente when the company registers; resolving it records the
// acting admin and the resolution time.
type CompanyValidation struct {
	ID              int64      `json:"id"`
	EmpresaID       int64      `json:"empresa_id"`
	AdminID         *int64     `json:"admin_id,omitempty"`
	Comentarios     *string    `json:"comentarios,omitempty"`
	Estado          string     `json:"estado"`
	FechaSolicitud  time.Time  `json:"fecha_solicitud"`
	FechaResolucion *time.Time `json:"fecha_resolucion,omitempty"`
}
