package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/auth"
	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/crm-ventas/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria para los tests.
type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-pruebas", ExpHours: 24, Issuer: "crm-ventas-test"}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{Name: "Ana", Surname: "García", Email: "ana@ejemplo.com", Password: "password123"}
}

func TestRegister_GuardaHashNuncaPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Register(registerReq())
	require.NoError(t, err)
	require.NotNil(t, out)

	stored := repo.byEmail["ana@ejemplo.com"]
	require.NotNil(t, stored)
	// La credencial guardada nunca es el password en texto plano
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_EmailDuplicado_AlreadyExists(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.Register(registerReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas_TokenDecodificaIdentidad(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	created, err := uc.Register(registerReq())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	// El token debe decodificar a la misma identidad registrada
	id, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, id.UserID)
	assert.Equal(t, "ana@ejemplo.com", id.Email)
	assert.Equal(t, "Ana", id.Name)
	assert.Equal(t, "García", id.Surname)
}

func TestLogin_PasswordIncorrecto_InvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_EmailDesconocido_NotFound(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCurrentUser_TokenValido_DevuelveClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	created, err := uc.Register(registerReq())
	require.NoError(t, err)
	out, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "password123"})
	require.NoError(t, err)

	me, err := uc.CurrentUser(out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, me.ID)
	assert.Equal(t, "ana@ejemplo.com", me.Email)
}

func TestCurrentUser_TokenInvalido_InvalidToken(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.CurrentUser("token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
