package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/utils"
)

type contextKey string

const contextKeyUser = contextKey("authUser")

// UserFromContext returns the user the middleware attached for this request.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(contextKeyUser).(*models.User)
	return u, ok
}

// Middleware returns a mux-compatible middleware that authenticates the
// request and, when requiredRole is non-empty, enforces it. The resolved user
// is attached to the request context for downstream handlers.
func (g *Guard) Middleware(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := g.Authenticate(r, requiredRole)
			if err != nil {
				respondAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// respondAuthError maps the failure taxonomy onto HTTP statuses: 403 for a
// role mismatch, 500 for a missing signing secret, 401 for everything else.
func respondAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInsufficientRole):
		utils.RespondErrorWithCode(
			w, http.StatusForbidden, utils.ErrCodeForbidden, "Insufficient permissions", nil, err,
		)
	case errors.Is(err, ErrUnsetSecret):
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Authentication unavailable", nil, err,
		)
	case errors.Is(err, ErrExpiredToken):
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, err,
		)
	case errors.Is(err, ErrRevokedToken):
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeTokenRevoked, "Token revoked", nil, err,
		)
	case errors.Is(err, ErrMissingToken):
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Token not provided", nil, err,
		)
	case errors.Is(err, ErrMalformedToken),
		errors.Is(err, ErrInvalidSubject),
		errors.Is(err, ErrUnknownSubject):
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, err,
		)
	default:
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "Authentication error", nil, err,
		)
	}
}
