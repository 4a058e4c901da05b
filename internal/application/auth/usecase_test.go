package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/agencia-ops/internal/application/auth"
	"github.com/tu-usuario/agencia-ops/internal/application/dto"
	"github.com/tu-usuario/agencia-ops/internal/domain"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/agencia-ops/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

const authTestSecret = "auth-test-secret"

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     authTestSecret,
		ExpMinutes: 60,
		Issuer:     "agencia-ops-test",
	})
	return uc, repo
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@agencia.test",
		Password: "contraseña-segura",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Registro exitoso: hashea el password, asigna rol por defecto y emite token
// cuyos claims apuntan al usuario creado.
func TestRegister_EmiteTokenConClaims(t *testing.T) {
	uc, repo := newAuthFixture()

	out, err := uc.Register(registerReq())
	require.NoError(t, err)

	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, entity.RoleTeamMember, out.User.Role, "rol por defecto team_member")

	stored := repo.users[out.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-segura", stored.PasswordHash,
		"el password nunca se guarda en claro")

	userID, role, err := pkgjwt.Parse(authTestSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleTeamMember, role)
}

// Username y email duplicados se rechazan con sus centinelas propios.
func TestRegister_Duplicados(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Email = "otra@agencia.test"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	in = registerReq()
	in.Username = "otra"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Me
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "contraseña-segura"})
	require.NoError(t, err)
	assert.Equal(t, "maria", out.User.Username)
	assert.NotEmpty(t, out.AccessToken)
}

// Usuario inexistente y password incorrecto devuelven el mismo error.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, errBadPass := uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "incorrecta"})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
}

func TestMe(t *testing.T) {
	uc, _ := newAuthFixture()
	reg, err := uc.Register(registerReq())
	require.NoError(t, err)

	me, err := uc.Me(reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria", me.Username)

	_, err = uc.Me("fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
