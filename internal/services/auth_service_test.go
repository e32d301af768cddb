package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/salaspot/rooms-service/internal/auth"
	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/token"
	"github.com/salaspot/rooms-service/internal/utils"
)

type fakeUserRepo struct {
	byID    map[int64]*models.User
	byEmail map[string]*models.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[int64]*models.User{},
		byEmail: map[string]*models.User{},
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) List(_ context.Context, _ int) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdatePhotoURL(_ context.Context, id int64, url string) error {
	if u, ok := f.byID[id]; ok {
		u.FotoURL = &url
	}
	return nil
}

// cheapHash keeps tests fast; cost 14 is production-only.
func cheapHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func testAuthService(t *testing.T) (AuthService, *fakeUserRepo, *auth.Guard, *token.Codec) {
	t.Helper()
	clock := func() time.Time { return time.Unix(1700000000, 0) }
	repo := newFakeUserRepo()
	codec := token.NewCodec("s3cr3t", true, clock)
	guard := auth.NewGuard(codec, repo, auth.NewRevocationList(), clock)
	return NewAuthService(repo, codec, guard, clock), repo, guard, codec
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, rol string) *models.User {
	t.Helper()
	u := &models.User{
		Nombre:        "Ana",
		Apellido:      "García",
		Email:         email,
		Password:      cheapHash(t, password),
		Rol:           rol,
		FechaRegistro: time.Unix(1690000000, 0),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLoginSuccess(t *testing.T) {
	svc, repo, _, codec := testAuthService(t)
	seeded := seedUser(t, repo, "ana@example.com", "secreta123", models.RoleAdmin)

	user, tok, err := svc.Login(context.Background(), "ana@example.com", "secreta123")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, user.ID)

	claims, err := codec.Decode(tok)
	require.NoError(t, err)
	require.Equal(t, seeded.ID, claims.Sub)
	require.Equal(t, "ana@example.com", claims.Email)
	require.Equal(t, models.RoleAdmin, claims.Rol)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo, _, _ := testAuthService(t)
	seedUser(t, repo, "ana@example.com", "secreta123", models.RoleUsuario)

	_, _, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	require.Equal(t, utils.ErrCodeInvalidCredentials, appErr.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := testAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "x")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
}

func TestRegisterSuccess(t *testing.T) {
	svc, repo, _, codec := testAuthService(t)

	user, tok, err := svc.Register(context.Background(), RegisterInput{
		Nombre:   "Luis",
		Apellido: "Pérez",
		Email:    "luis@example.com",
		Password: "secreta123",
		Rol:      models.RoleUsuario,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "secreta123", user.Password, "password must be stored hashed")

	stored, err := repo.GetByEmail(context.Background(), "luis@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)

	claims, err := codec.Decode(tok)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Sub)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo, _, _ := testAuthService(t)
	seedUser(t, repo, "ana@example.com", "secreta123", models.RoleUsuario)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Nombre:   "Otra",
		Apellido: "Ana",
		Email:    "ana@example.com",
		Password: "diferente",
		Rol:      models.RoleUsuario,
	})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusConflict, appErr.StatusCode)
	require.Equal(t, utils.ErrCodeConflict, appErr.Code)
}

func TestRefreshTokenIssuesFreshToken(t *testing.T) {
	svc, repo, _, codec := testAuthService(t)
	user := seedUser(t, repo, "ana@example.com", "secreta123", models.RoleSupervisor)

	tok, err := svc.RefreshToken(user)
	require.NoError(t, err)

	claims, err := codec.Decode(tok)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Sub)
	require.Equal(t, models.RoleSupervisor, claims.Rol)
}

func TestLogoutRevokesExactToken(t *testing.T) {
	svc, repo, guard, _ := testAuthService(t)
	seedUser(t, repo, "ana@example.com", "secreta123", models.RoleUsuario)

	_, tok, err := svc.Login(context.Background(), "ana@example.com", "secreta123")
	require.NoError(t, err)

	require.False(t, guard.IsRevoked(auth.Fingerprint(tok)))
	svc.Logout(tok)
	require.True(t, guard.IsRevoked(auth.Fingerprint(tok)))

	// a second token for the same user is untouched
	_, tok2, err := svc.Login(context.Background(), "ana@example.com", "secreta123")
	require.NoError(t, err)
	require.False(t, guard.IsRevoked(auth.Fingerprint(tok2)))
}
