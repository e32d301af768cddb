package controllers

import (
	"net/http"

	"github.com/salaspot/rooms-service/internal/dtos"
	"github.com/salaspot/rooms-service/internal/services"
	"github.com/salaspot/rooms-service/internal/storage"
	"github.com/salaspot/rooms-service/internal/utils"
)

type UserController struct {
	userService services.UserService
	store       *storage.LocalStore
}

func NewUserController(userService services.UserService, store *storage.LocalStore) *UserController {
	return &UserController{userService: userService, store: store}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.userService.List(r.Context(), queryInt(r, "per_page"))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.UserListResponse{
		Message:  "Users retrieved",
		Usuarios: users,
	})
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := c.userService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.UserResponse{
		Message: "User retrieved",
		Usuario: user,
	})
}

// Profile returns the authenticated user's own record.
func (c *UserController) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MeResponse{User: user})
}

// UploadPhoto sets the authenticated user's own profile photo.
func (c *UserController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	url, ok := saveUploadedImage(w, r, c.store, "users")
	if !ok {
		return
	}

	updated, err := c.userService.SetPhoto(r.Context(), user.ID, url)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.UserResponse{
		Message: "Photo uploaded",
		Usuario: updated,
	})
}
