package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/token"
)

type fakeUserLookup struct {
	users map[int64]*models.User
	err   error
}

func (f *fakeUserLookup) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

const testSecret = "s3cr3t"

var baseTime = time.Unix(1700000000, 0)

func testGuard(t *testing.T, now time.Time) (*Guard, *token.Codec, *fakeUserLookup) {
	t.Helper()
	clock := func() time.Time { return now }
	codec := token.NewCodec(testSecret, true, clock)
	users := &fakeUserLookup{users: map[int64]*models.User{
		42: {ID: 42, Email: "ana@example.com", Rol: "admin"},
		7:  {ID: 7, Email: "u@example.com", Rol: "usuario"},
	}}
	return NewGuard(codec, users, NewRevocationList(), clock), codec, users
}

func bearerRequest(tok string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	return r
}

func TestAuthenticateHappyPath(t *testing.T) {
	g, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	user, err := g.Authenticate(bearerRequest(tok), "admin")
	require.NoError(t, err)
	require.Equal(t, int64(42), user.ID)
}

func TestAuthenticateFreshTokenStillValidTenSecondsLater(t *testing.T) {
	_, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	later, _, _ := testGuard(t, baseTime.Add(10*time.Second))
	user, err := later.Authenticate(bearerRequest(tok), "admin")
	require.NoError(t, err)
	require.Equal(t, int64(42), user.ID)
}

func TestAuthenticateExpiredAfterLifetime(t *testing.T) {
	_, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	// one second past exp
	later, _, _ := testGuard(t, baseTime.Add(token.Lifetime+time.Second))
	_, err = later.Authenticate(bearerRequest(tok), "admin")
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestAuthenticateExpiryBoundary(t *testing.T) {
	_, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	// exp == now is already expired
	atExp, _, _ := testGuard(t, baseTime.Add(token.Lifetime))
	_, err = atExp.Authenticate(bearerRequest(tok), "")
	require.ErrorIs(t, err, ErrExpiredToken)

	// one second before exp is still valid
	justBefore, _, _ := testGuard(t, baseTime.Add(token.Lifetime-time.Second))
	_, err = justBefore.Authenticate(bearerRequest(tok), "")
	require.NoError(t, err)
}

func TestAuthenticateMissingToken(t *testing.T) {
	g, _, _ := testGuard(t, baseTime)
	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	_, err := g.Authenticate(r, "")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestAuthenticateRevokedToken(t *testing.T) {
	g, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	g.Revoke(tok)
	_, err = g.Authenticate(bearerRequest(tok), "admin")
	require.ErrorIs(t, err, ErrRevokedToken)

	// revoking again changes nothing
	g.Revoke(tok)
	_, err = g.Authenticate(bearerRequest(tok), "admin")
	require.ErrorIs(t, err, ErrRevokedToken)
}

func TestAuthenticateRevocationBeatsDecode(t *testing.T) {
	g, _, _ := testGuard(t, baseTime)

	// a structurally broken token that has been revoked reports revoked,
	// not malformed: the revocation check runs first
	g.Revoke("not.a.token")
	_, err := g.Authenticate(bearerRequest("not.a.token"), "")
	require.ErrorIs(t, err, ErrRevokedToken)
}

func TestAuthenticateMalformedToken(t *testing.T) {
	g, _, _ := testGuard(t, baseTime)
	_, err := g.Authenticate(bearerRequest("garbage"), "")
	require.ErrorIs(t, err, ErrMalformedToken)
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	g, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(999, "ghost@example.com", "usuario")
	require.NoError(t, err)

	_, err = g.Authenticate(bearerRequest(tok), "")
	require.ErrorIs(t, err, ErrUnknownSubject)
}

func TestAuthenticateInvalidSubject(t *testing.T) {
	g, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(0, "zero@example.com", "usuario")
	require.NoError(t, err)

	_, err = g.Authenticate(bearerRequest(tok), "")
	require.ErrorIs(t, err, ErrInvalidSubject)
}

func TestAuthenticateRoleMismatch(t *testing.T) {
	g, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(7, "u@example.com", "usuario")
	require.NoError(t, err)

	_, err = g.Authenticate(bearerRequest(tok), "admin")
	require.ErrorIs(t, err, ErrInsufficientRole)
}

func TestAuthenticateRoleCaseInsensitive(t *testing.T) {
	g, codec, _ := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	user, err := g.Authenticate(bearerRequest(tok), "ADMIN")
	require.NoError(t, err)
	require.Equal(t, int64(42), user.ID)
}

func TestAuthenticateLookupFailure(t *testing.T) {
	g, codec, users := testGuard(t, baseTime)
	tok, err := codec.Encode(42, "ana@example.com", "admin")
	require.NoError(t, err)

	users.err = errors.New("db down")
	_, err = g.Authenticate(bearerRequest(tok), "")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnknownSubject)
}

func TestExtractTokenSources(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Authorization", "Bearer abc")
	tok, ok := ExtractToken(r)
	require.True(t, ok)
	require.Equal(t, "abc", tok)

	r = httptest.NewRequest(http.MethodGet, "/x?token=fromquery", nil)
	tok, ok = ExtractToken(r)
	require.True(t, ok)
	require.Equal(t, "fromquery", tok)

	form := url.Values{"token": {"fromform"}}
	r = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	tok, ok = ExtractToken(r)
	require.True(t, ok)
	require.Equal(t, "fromform", tok)

	// header wins over query
	r = httptest.NewRequest(http.MethodGet, "/x?token=fromquery", nil)
	r.Header.Set("Authorization", "Bearer fromheader")
	tok, ok = ExtractToken(r)
	require.True(t, ok)
	require.Equal(t, "fromheader", tok)

	// Bearer prefix with nothing after it does not count
	r = httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Authorization", "Bearer ")
	_, ok = ExtractToken(r)
	require.False(t, ok)
}

func TestRevocationListConcurrentAccess(t *testing.T) {
	l := NewRevocationList()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		tok := strings.Repeat("t", i+1)
		go func() {
			defer wg.Done()
			l.Revoke(tok)
		}()
		go func() {
			defer wg.Done()
			l.IsRevoked(Fingerprint(tok))
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		require.True(t, l.IsRevoked(Fingerprint(strings.Repeat("t", i+1))))
	}
}

func TestFingerprintIsStableHex(t *testing.T) {
	fp := Fingerprint("some-token")
	require.Len(t, fp, 32)
	require.Equal(t, fp, Fingerprint("some-token"))
	require.NotEqual(t, fp, Fingerprint("some-token2"))
}
