package controllers

import (
	"net/http"

	"github.com/salaspot/rooms-service/internal/auth"
	"github.com/salaspot/rooms-service/internal/dtos"
	"github.com/salaspot/rooms-service/internal/services"
	"github.com/salaspot/rooms-service/internal/utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, tok, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.AuthResponse{
		Message:   "Login successful",
		User:      user,
		Token:     tok,
		TokenType: "Bearer",
	})
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, tok, err := c.authService.Register(r.Context(), services.RegisterInput{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Password: req.Password,
		Telefono: req.Telefono,
		Rol:      req.Rol,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.AuthResponse{
		Message:   "User registered",
		User:      user,
		Token:     tok,
		TokenType: "Bearer",
	})
}

// Logout revokes the exact token that authenticated this request. The auth
// middleware already ran, so a token is present; revoking twice is harmless.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if rawToken, ok := auth.ExtractToken(r); ok {
		c.authService.Logout(rawToken)
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LogoutResponse{
		Message:    "Session closed",
		RedirectTo: "/login",
	})
}

func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	tok, err := c.authService.RefreshToken(user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RefreshResponse{
		Message:   "Token refreshed",
		Token:     tok,
		TokenType: "Bearer",
	})
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MeResponse{User: user})
}
