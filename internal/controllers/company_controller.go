package controllers

import (
	"net/http"

	"github.com/salaspot/rooms-service/internal/dtos"
	"github.com/salaspot/rooms-service/internal/repositories"
	"github.com/salaspot/rooms-service/internal/services"
	"github.com/salaspot/rooms-service/internal/storage"
	"github.com/salaspot/rooms-service/internal/utils"
)

type CompanyController struct {
	companyService services.CompanyService
	store          *storage.LocalStore
}

func NewCompanyController(companyService services.CompanyService, store *storage.LocalStore) *CompanyController {
	return &CompanyController{companyService: companyService, store: store}
}

func (c *CompanyController) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.CompanyFilter{
		Estado: r.URL.Query().Get("estado"),
		Nombre: r.URL.Query().Get("nombre"),
		Limit:  queryInt(r, "per_page"),
	}

	companies, err := c.companyService.List(r.Context(), filter)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.CompanyListResponse{
		Message:  "Companies retrieved",
		Empresas: companies,
	})
}

func (c *CompanyController) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	filter := repositories.CompanyFilter{
		Estado: r.URL.Query().Get("estado"),
		Limit:  queryInt(r, "per_page"),
	}

	companies, err := c.companyService.ListMine(r.Context(), user, filter)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.CompanyListResponse{
		Message:  "Companies retrieved",
		Empresas: companies,
	})
}

func (c *CompanyController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dtos.CreateCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if !closesAfterOpening(req.HoraApertura, req.HoraCierre) {
		utils.RespondErrorWithCode(w, http.StatusUnprocessableEntity, utils.ErrCodeValidation,
			"hora_cierre must be after hora_apertura", nil)
		return
	}

	company, err := c.companyService.Create(r.Context(), user, services.CompanyInput{
		Nombre:        &req.Nombre,
		Direccion:     &req.Direccion,
		Ciudad:        &req.Ciudad,
		CodigoPostal:  req.CodigoPostal,
		Telefono:      &req.Telefono,
		Email:         req.Email,
		HoraApertura:  &req.HoraApertura,
		HoraCierre:    &req.HoraCierre,
		DiasOperacion: req.DiasOperacion,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CompanyResponse{
		Message: "Company created",
		Empresa: company,
	})
}

func (c *CompanyController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail, err := c.companyService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.CompanyDetailResponse{
		Message:    "Company retrieved",
		Empresa:    detail.Company,
		Salas:      detail.Rooms,
		Validacion: detail.Validation,
	})
}

func (c *CompanyController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.HoraApertura != nil && req.HoraCierre != nil &&
		!closesAfterOpening(*req.HoraApertura, *req.HoraCierre) {
		utils.RespondErrorWithCode(w, http.StatusUnprocessableEntity, utils.ErrCodeValidation,
			"hora_cierre must be after hora_apertura", nil)
		return
	}

	company, err := c.companyService.Update(r.Context(), user, id, services.CompanyInput{
		Nombre:        req.Nombre,
		Direccion:     req.Direccion,
		Ciudad:        req.Ciudad,
		CodigoPostal:  req.CodigoPostal,
		Telefono:      req.Telefono,
		Email:         req.Email,
		HoraApertura:  req.HoraApertura,
		HoraCierre:    req.HoraCierre,
		DiasOperacion: req.DiasOperacion,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.CompanyResponse{
		Message: "Company updated",
		Empresa: company,
	})
}

func (c *CompanyController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.companyService.Delete(r.Context(), user, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Company deleted"})
}

// ChangeStatus is admin-only (enforced by the route's middleware).
func (c *CompanyController) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	admin, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dtos.ChangeCompanyStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	company, validation, err := c.companyService.ChangeStatus(r.Context(), admin, id, req.Estado, req.Comentarios)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.CompanyStatusResponse{
		Message:    "Company status changed",
		Empresa:    company,
		Validacion: validation,
	})
}

// UploadImage handles the multipart logo/banner endpoints. kind is fixed per
// route.
func (c *CompanyController) UploadImage(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		url, ok := saveUploadedImage(w, r, c.store, kind+"s")
		if !ok {
			return
		}

		company, err := c.companyService.SetImage(r.Context(), user, id, kind, url)
		if err != nil {
			utils.HandleAppError(w, err)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, dtos.CompanyResponse{
			Message: "Image uploaded",
			Empresa: company,
		})
	}
}

// saveUploadedImage reads the "file" part and stores it, writing the error
// response itself on failure.
func saveUploadedImage(w http.ResponseWriter, r *http.Request, store *storage.LocalStore, subdir string) (string, bool) {
	if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart body", nil, err)
		return "", false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusUnprocessableEntity, utils.ErrCodeValidation, "Missing file part", nil, err)
		return "", false
	}
	defer file.Close()

	url, err := store.SaveImage(file, header, subdir)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusUnprocessableEntity, utils.ErrCodeValidation, err.Error(), nil, err)
		return "", false
	}
	return url, true
}

// closesAfterOpening compares HH:MM:SS strings; the fixed-width format makes
// lexicographic order correct.
func closesAfterOpening(apertura, cierre string) bool {
	return cierre > apertura
}
