package models

import "time"

// Company listing states. New companies always start as pendiente and only an
// admin moves them to aprobada or rechazada.
const (
	CompanyStatusPendiente = "pendiente"
	CompanyStatusAprobada  = "aprobada"
	CompanyStatusRechazada = "rechazada"
)

// IsValidCompanyStatus reports whether estado is a known listing state.
func IsValidCompanyStatus(estado string) bool {
	switch estado {
	case CompanyStatusPendiente, CompanyStatusAprobada, CompanyStatusRechazada:
		return true
	}
	return false
}

// Company is a registered venue ("empresa") owned by the user that created it.
// Opening hours are stored as HH:MM:SS strings, matching the wire format the
// clients already send.
type Company struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Direccion     string    `json:"direccion"`
	Ciudad        string    `json:"ciudad"`
	CodigoPostal  *string   `json:"codigo_postal,omitempty"`
	Telefono      string    `json:"telefono"`
	Email         *string   `json:"email,omitempty"`
	HoraApertura  string    `json:"hora_apertura"`
	HoraCierre    string    `json:"hora_cierre"`
	DiasOperacion *string   `json:"dias_operacion,omitempty"`
	CreadorID     int64     `json:"creador_id"`
	Estado        string    `json:"estado"`
	FechaRegistro time.Time `json:"fecha_registro"`
	LogoURL       *string   `json:"logo_url,omitempty"`
	BannerURL     *string   `json:"banner_url,omitempty"`
}
