package auth

import (
	"errors"

	"github.com/salaspot/rooms-service/internal/token"
)

// Typed authentication failures. Every Authenticate outcome is one of these;
// the middleware maps them to HTTP statuses (403 for ErrInsufficientRole,
// 500 for ErrUnsetSecret, 401 for the rest). None of them ever escapes as a
// panic.
var (
	ErrMissingToken     = errors.New("no token provided")
	ErrMalformedToken   = token.ErrMalformed
	ErrExpiredToken     = errors.New("token expired")
	ErrRevokedToken     = errors.New("token revoked")
	ErrInvalidSubject   = errors.New("token carries no subject")
	ErrUnknownSubject   = errors.New("no user for token subject")
	ErrInsufficientRole = errors.New("insufficient role")
	ErrUnsetSecret      = token.ErrUnsetSecret
)
