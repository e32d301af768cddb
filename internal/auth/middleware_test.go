package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/token"
	"github.com/salaspot/rooms-service/internal/utils"
)

func serveThroughMiddleware(t *testing.T, g *Guard, requiredRole string, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	g.Middleware(requiredRole)(next).ServeHTTP(rec, r)
	if rec.Code == http.StatusOK {
		require.NotNil(t, seen, "handler ran without a user in context")
	}
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestMiddlewarePassesValidToken(t *testing.T) {
	g, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	rec := serveThroughMiddleware(t, g, "", bearerRequest(tok))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareMissingTokenIs401(t *testing.T) {
	g, _, _ := testGuard(t, baseTime)
	rec := serveThroughMiddleware(t, g, "", httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, utils.ErrCodeUnauthorized, errorCode(t, rec))
}

func TestMiddlewareExpiredTokenIs401(t *testing.T) {
	_, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	late, _, _ := testGuard(t, baseTime.Add(token.Lifetime+time.Second))
	rec := serveThroughMiddleware(t, late, "", bearerRequest(tok))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, utils.ErrCodeTokenExpired, errorCode(t, rec))
}

func TestMiddlewareRevokedTokenIs401(t *testing.T) {
	g, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)
	g.Revoke(tok)

	rec := serveThroughMiddleware(t, g, "", bearerRequest(tok))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, utils.ErrCodeTokenRevoked, errorCode(t, rec))
}

func TestMiddlewareRoleMismatchIs403(t *testing.T) {
	g, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(7, "u@example.com", "usuario")
	require.NoError(t, err)

	rec := serveThroughMiddleware(t, g, models.RoleAdmin, bearerRequest(tok))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, utils.ErrCodeForbidden, errorCode(t, rec))
}

func TestMiddlewareUnsetSecretIs500(t *testing.T) {
	clock := func() time.Time { return baseTime }
	codec := token.NewCodec("", true, clock)
	users := &fakeUserLookup{users: map[int64]*models.User{}}
	g := NewGuard(codec, users, NewRevocationList(), clock)

	// any well-formed token; the guard must answer 500, not 401
	issuer := token.NewCodec("whatever", true, clock)
	tok, err := issuer.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	rec := serveThroughMiddleware(t, g, "", bearerRequest(tok))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, utils.ErrCodeInternal, errorCode(t, rec))
}

func TestMiddlewareMalformedTokenIs401(t *testing.T) {
	g, _, _ := testGuard(t, baseTime)
	rec := serveThroughMiddleware(t, g, "", bearerRequest("junk"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, utils.ErrCodeUnauthorized, errorCode(t, rec))
}
