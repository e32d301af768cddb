package routes

const (
	// Health
	Health = "/health"

	// Auth endpoints
	AuthRegister = "/api/v1/auth/register"
	AuthLogin    = "/api/v1/auth/login"
	AuthLogout   = "/api/v1/auth/logout"
	AuthRefresh  = "/api/v1/auth/refresh"
	AuthMe       = "/api/v1/auth/me"
	AuthProfile  = "/api/v1/auth/profile"
	ProfilePhoto = "/api/v1/auth/profile/photo"

	// User endpoints (admin only)
	UsersBase = "/api/v1/users"
	UsersByID = "/api/v1/users/{id}"

	// Company endpoints
	CompaniesBase = "/api/v1/companies"
	CompaniesMine = "/api/v1/companies/mine"
	CompanyByID   = "/api/v1/companies/{id}"
	CompanyStatus = "/api/v1/companies/{id}/status"
	CompanyRooms  = "/api/v1/companies/{id}/rooms"
	CompanyLogo   = "/api/v1/companies/{id}/logo"
	CompanyBanner = "/api/v1/companies/{id}/banner"

	// Room endpoints
	RoomsBase   = "/api/v1/rooms"
	RoomsSearch = "/api/v1/rooms/search"
	RoomByID    = "/api/v1/rooms/{id}"
	RoomImage   = "/api/v1/rooms/{id}/image"

	// Static uploads
	Uploads = "/uploads/"
)
