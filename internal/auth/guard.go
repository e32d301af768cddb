package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/token"
	"github.com/salaspot/rooms-service/internal/utils"
)

// UserLookup resolves a token subject to a user record. Implementations
// return (nil, nil) when no such user exists.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// Guard is the request-facing authentication and authorization layer. It owns
// the revocation list and turns a candidate bearer token into a resolved user
// or a typed failure.
type Guard struct {
	codec   *token.Codec
	users   UserLookup
	revoked *RevocationList
	now     func() time.Time
}

// NewGuard wires a guard. A nil now falls back to time.Now.
func NewGuard(codec *token.Codec, users UserLookup, revoked *RevocationList, now func() time.Time) *Guard {
	if now == nil {
		now = time.Now
	}
	return &Guard{codec: codec, users: users, revoked: revoked, now: now}
}

// ExtractToken pulls a candidate bearer credential from the request:
// Authorization header first, then the `token` query parameter, then a
// `token` form value. First match wins.
func ExtractToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		if tok := strings.TrimPrefix(h, "Bearer "); tok != "" {
			return tok, true
		}
	}
	if tok := r.URL.Query().Get("token"); tok != "" {
		return tok, true
	}
	if tok := r.PostFormValue("token"); tok != "" {
		return tok, true
	}
	return "", false
}

// Authenticate runs the full check sequence, short-circuiting on the first
// failure:
//
//	extract → revocation → decode/signature → expiry → subject →
//	user lookup → role
//
// Revocation is checked before decoding on purpose: a revoked token must
// never be treated as valid, however well-formed it is. requiredRole == ""
// skips the role check.
func (g *Guard) Authenticate(r *http.Request, requiredRole string) (*models.User, error) {
	rawToken, ok := ExtractToken(r)
	if !ok {
		return nil, ErrMissingToken
	}

	if g.revoked.IsRevoked(Fingerprint(rawToken)) {
		return nil, ErrRevokedToken
	}

	claims, err := g.codec.Decode(rawToken)
	if err != nil {
		return nil, err
	}

	if claims.Exp <= g.now().Unix() {
		return nil, ErrExpiredToken
	}

	if claims.Sub == 0 {
		return nil, ErrInvalidSubject
	}

	user, err := g.users.GetByID(r.Context(), claims.Sub)
	if err != nil {
		utils.Logger.WithError(err).Error("user lookup failed during authentication")
		return nil, fmt.Errorf("user lookup: %w", err)
	}
	if user == nil {
		return nil, ErrUnknownSubject
	}

	if requiredRole != "" && !user.HasRole(requiredRole) {
		return nil, fmt.Errorf("%w: required %s, have %s", ErrInsufficientRole, requiredRole, user.Rol)
	}

	return user, nil
}

// Revoke adds the raw token to the revocation list. Idempotent.
func (g *Guard) Revoke(rawToken string) {
	g.revoked.Revoke(rawToken)
}

// IsRevoked reports whether a fingerprint is on the revocation list.
func (g *Guard) IsRevoked(fingerprint string) bool {
	return g.revoked.IsRevoked(fingerprint)
}
