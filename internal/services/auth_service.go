package services

import (
	"context"
	"net/http"
	"time"

	"github.com/salaspot/rooms-service/internal/auth"
	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/repositories"
	"github.com/salaspot/rooms-service/internal/token"
	"github.com/salaspot/rooms-service/internal/utils"
)

// RegisterInput carries the fields needed to create an account. The
// controller validates shape; the service owns uniqueness and hashing.
type RegisterInput struct {
	Nombre   string
	Apellido string
	Email    string
	Password string
	Telefono *string
	Rol      string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	// RefreshToken issues a fresh token for an already-authenticated user.
	RefreshToken(user *models.User) (string, error)
	// Logout revokes the exact raw token string that was presented.
	Logout(rawToken string)
}

type authService struct {
	users repositories.UserRepository
	codec *token.Codec
	guard *auth.Guard
	now   func() time.Time
}

func NewAuthService(users repositories.UserRepository, codec *token.Codec, guard *auth.Guard, now func() time.Time) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{users: users, codec: codec, guard: guard, now: now}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Login failed", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", utils.NewAppError(
			http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid credentials", utils.ErrInvalidCredentials,
		)
	}

	tok, err := s.codec.Encode(user.ID, user.Email, user.Rol)
	if err != nil {
		return nil, "", utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Could not issue token", err)
	}
	return user, tok, nil
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Registration failed", err)
	}
	if existing != nil {
		return nil, "", utils.NewAppError(
			http.StatusConflict, utils.ErrCodeConflict, "Email already registered", utils.ErrEmailExists,
		)
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Registration failed", err)
	}

	user := &models.User{
		Nombre:        input.Nombre,
		Apellido:      input.Apellido,
		Email:         input.Email,
		Password:      hash,
		Telefono:      input.Telefono,
		Rol:           input.Rol,
		FechaRegistro: s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Registration failed", err)
	}

	tok, err := s.codec.Encode(user.ID, user.Email, user.Rol)
	if err != nil {
		return nil, "", utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Could not issue token", err)
	}
	return user, tok, nil
}

func (s *authService) RefreshToken(user *models.User) (string, error) {
	tok, err := s.codec.Encode(user.ID, user.Email, user.Rol)
	if err != nil {
		return "", utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Could not issue token", err)
	}
	return tok, nil
}

func (s *authService) Logout(rawToken string) {
	s.guard.Revoke(rawToken)
}
