package dtos

import "github.com/salaspot/rooms-service/internal/models"

// Opening hours travel as HH:MM:SS strings; datetime=15:04:05 pins the format.

type CreateCompanyRequest struct {
	Nombre        string  `json:"nombre" validate:"required,max=100"`
	Direccion     string  `json:"direccion" validate:"required,max=200"`
	Ciudad        string  `json:"ciudad" validate:"required,max=100"`
	CodigoPostal  *string `json:"codigo_postal" validate:"omitempty,max=10"`
	Telefono      string  `json:"telefono" validate:"required,max=20"`
	Email         *string `json:"email" validate:"omitempty,email,max=100"`
	HoraApertura  string  `json:"hora_apertura" validate:"required,datetime=15:04:05"`
	HoraCierre    string  `json:"hora_cierre" validate:"required,datetime=15:04:05"`
	DiasOperacion *string `json:"dias_operacion" validate:"omitempty,max=100"`
}

type UpdateCompanyRequest struct {
	Nombre        *string `json:"nombre" validate:"omitempty,max=100"`
	Direccion     *string `json:"direccion" validate:"omitempty,max=200"`
	Ciudad        *string `json:"ciudad" validate:"omitempty,max=100"`
	CodigoPostal  *string `json:"codigo_postal" validate:"omitempty,max=10"`
	Telefono      *string `json:"telefono" validate:"omitempty,max=20"`
	Email         *string `json:"email" validate:"omitempty,email,max=100"`
	HoraApertura  *string `json:"hora_apertura" validate:"omitempty,datetime=15:04:05"`
	HoraCierre    *string `json:"hora_cierre" validate:"omitempty,datetime=15:04:05"`
	DiasOperacion *string `json:"dias_operacion" validate:"omitempty,max=100"`
}

type ChangeCompanyStatusRequest struct {
	Estado      string  `json:"estado" validate:"required,oneof=pendiente aprobada rechazada"`
	Comentarios *string `json:"comentarios" validate:"omitempty,max=1000"`
}

type CompanyResponse struct {
	Message string          `json:"message"`
	Empresa *models.Company `json:"empresa"`
}

type CompanyListResponse struct {
	Message  string            `json:"message"`
	Empresas []*models.Company `json:"empresas"`
}

type CompanyDetailResponse struct {
	Message    string                    `json:"message"`
	Empresa    *models.Company           `json:"empresa"`
	Salas      []*models.Room            `json:"salas"`
	Validacion *models.CompanyValidation `json:"validacion,omitempty"`
}

type CompanyStatusResponse struct {
	Message    string                    `json:"message"`
	Empresa    *models.Company           `json:"empresa"`
	Validacion *models.CompanyValidation `json:"validacion"`
}
