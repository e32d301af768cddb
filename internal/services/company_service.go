package services

import (
	"context"
	"net/http"
	"time"

	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/repositories"
	"github.com/salaspot/rooms-service/internal/utils"
)

// CompanyInput carries the mutable company fields. On update, nil pointers
// leave the stored value untouched.
type CompanyInput struct {
	Nombre        *string
	Direccion     *string
	Ciudad        *string
	CodigoPostal  *string
	Telefono      *string
	Email         *string
	HoraApertura  *string
	HoraCierre    *string
	DiasOperacion *string
}

// CompanyDetail is the aggregate the show endpoint returns: the company plus
// its rooms and its validation record.
type CompanyDetail struct {
	Company    *models.Company
	Rooms      []*models.Room
	Validation *models.CompanyValidation
}

type CompanyService interface {
	List(ctx context.Context, f repositories.CompanyFilter) ([]*models.Company, error)
	ListMine(ctx context.Context, actor *models.User, f repositories.CompanyFilter) ([]*models.Company, error)
	Create(ctx context.Context, actor *models.User, input CompanyInput) (*models.Company, error)
	Get(ctx context.Context, id int64) (*CompanyDetail, error)
	Update(ctx context.Context, actor *models.User, id int64, input CompanyInput) (*models.Company, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
	ChangeStatus(ctx context.Context, admin *models.User, id int64, estado string, comentarios *string) (*models.Company, *models.CompanyValidation, error)
	SetImage(ctx context.Context, actor *models.User, id int64, kind, url string) (*models.Company, error)
}

type companyService struct {
	companies   repositories.CompanyRepository
	rooms       repositories.RoomRepository
	validations repositories.CompanyValidationRepository
	now         func() time.Time
}

func NewCompanyService(
	companies repositories.CompanyRepository,
	rooms repositories.RoomRepository,
	validations repositories.CompanyValidationRepository,
	now func() time.Time,
) CompanyService {
	if now == nil {
		now = time.Now
	}
	return &companyService{companies: companies, rooms: rooms, validations: validations, now: now}
}

func (s *companyService) List(ctx context.Context, f repositories.CompanyFilter) ([]*models.Company, error) {
	companies, err := s.companies.List(ctx, f)
	if err != nil {
		return nil, internalErr("Could not list companies", err)
	}
	return companies, nil
}

func (s *companyService) ListMine(ctx context.Context, actor *models.User, f repositories.CompanyFilter) ([]*models.Company, error) {
	companies, err := s.companies.ListByCreator(ctx, actor.ID, f)
	if err != nil {
		return nil, internalErr("Could not list companies", err)
	}
	return companies, nil
}

func (s *companyService) Create(ctx context.Context, actor *models.User, input CompanyInput) (*models.Company, error) {
	company := &models.Company{
		Nombre:        utils.Val(input.Nombre),
		Direccion:     utils.Val(input.Direccion),
		Ciudad:        utils.Val(input.Ciudad),
		CodigoPostal:  input.CodigoPostal,
		Telefono:      utils.Val(input.Telefono),
		Email:         input.Email,
		HoraApertura:  utils.Val(input.HoraApertura),
		HoraCierre:    utils.Val(input.HoraCierre),
		DiasOperacion: input.DiasOperacion,
		CreadorID:     actor.ID,
		Estado:        models.CompanyStatusPendiente,
		FechaRegistro: s.now(),
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, internalErr("Could not create company", err)
	}

	// every new listing opens a pending review for the admins
	validation := &models.CompanyValidation{
		EmpresaID:      company.ID,
		Estado:         models.CompanyStatusPendiente,
		FechaSolicitud: s.now(),
	}
	if err := s.validations.Create(ctx, validation); err != nil {
		return nil, internalErr("Could not create validation record", err)
	}

	return company, nil
}

func (s *companyService) Get(ctx context.Context, id int64) (*CompanyDetail, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("Could not fetch company", err)
	}
	if company == nil {
		return nil, notFoundErr("Company not found")
	}

	rooms, err := s.rooms.ListByCompany(ctx, id)
	if err != nil {
		return nil, internalErr("Could not fetch company rooms", err)
	}
	validation, err := s.validations.GetByCompanyID(ctx, id)
	if err != nil {
		return nil, internalErr("Could not fetch company validation", err)
	}

	return &CompanyDetail{Company: company, Rooms: rooms, Validation: validation}, nil
}

func (s *companyService) Update(ctx context.Context, actor *models.User, id int64, input CompanyInput) (*models.Company, error) {
	company, err := s.ownedCompany(ctx, actor, id, "update")
	if err != nil {
		return nil, err
	}

	applyIfSet(&company.Nombre, input.Nombre)
	applyIfSet(&company.Direccion, input.Direccion)
	applyIfSet(&company.Ciudad, input.Ciudad)
	applyIfSet(&company.Telefono, input.Telefono)
	applyIfSet(&company.HoraApertura, input.HoraApertura)
	applyIfSet(&company.HoraCierre, input.HoraCierre)
	if input.CodigoPostal != nil {
		company.CodigoPostal = input.CodigoPostal
	}
	if input.Email != nil {
		company.Email = input.Email
	}
	if input.DiasOperacion != nil {
		company.DiasOperacion = input.DiasOperacion
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, internalErr("Could not update company", err)
	}
	return company, nil
}

func (s *companyService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if _, err := s.ownedCompany(ctx, actor, id, "delete"); err != nil {
		return err
	}
	if err := s.companies.Delete(ctx, id); err != nil {
		return internalErr("Could not delete company", err)
	}
	return nil
}

func (s *companyService) ChangeStatus(ctx context.Context, admin *models.User, id int64, estado string, comentarios *string) (*models.Company, *models.CompanyValidation, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, nil, internalErr("Could not fetch company", err)
	}
	if company == nil {
		return nil, nil, notFoundErr("Company not found")
	}

	if err := s.companies.SetStatus(ctx, id, estado); err != nil {
		return nil, nil, internalErr("Could not change company status", err)
	}
	company.Estado = estado

	now := s.now()
	validation, err := s.validations.GetByCompanyID(ctx, id)
	if err != nil {
		return nil, nil, internalErr("Could not fetch validation record", err)
	}
	if validation != nil {
		validation.AdminID = &admin.ID
		validation.Estado = estado
		if comentarios != nil {
			validation.Comentarios = comentarios
		}
		validation.FechaResolucion = &now
		if err := s.validations.Update(ctx, validation); err != nil {
			return nil, nil, internalErr("Could not update validation record", err)
		}
	} else {
		validation = &models.CompanyValidation{
			EmpresaID:       id,
			AdminID:         &admin.ID,
			Comentarios:     comentarios,
			Estado:          estado,
			FechaSolicitud:  now,
			FechaResolucion: &now,
		}
		if err := s.validations.Create(ctx, validation); err != nil {
			return nil, nil, internalErr("Could not create validation record", err)
		}
	}

	return company, validation, nil
}

func (s *companyService) SetImage(ctx context.Context, actor *models.User, id int64, kind, url string) (*models.Company, error) {
	company, err := s.ownedCompany(ctx, actor, id, "update")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "logo":
		company.LogoURL = &url
	case "banner":
		company.BannerURL = &url
	default:
		return nil, utils.NewAppError(http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Unknown image kind", nil)
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, internalErr("Could not update company", err)
	}
	return company, nil
}

// ownedCompany fetches the company and enforces that actor is its creator or
// an admin.
func (s *companyService) ownedCompany(ctx context.Context, actor *models.User, id int64, action string) (*models.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("Could not fetch company", err)
	}
	if company == nil {
		return nil, notFoundErr("Company not found")
	}
	if company.CreadorID != actor.ID && !actor.HasRole(models.RoleAdmin) {
		return nil, utils.NewAppError(
			http.StatusForbidden, utils.ErrCodeForbidden,
			"Not allowed to "+action+" this company", utils.ErrForbidden,
		)
	}
	return company, nil
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func internalErr(msg string, err error) *utils.AppError {
	return utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, msg, err)
}

func notFoundErr(msg string) *utils.AppError {
	return utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound, msg, utils.ErrNotFound)
}
