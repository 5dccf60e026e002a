package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapurgempita/gempita-api/internal/application/auth"
	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/infrastructure/memory"
	pkgjwt "github.com/dapurgempita/gempita-api/pkg/jwt"
)

const testSecret = "secret-auth-test"

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "gempita-test",
	})
	return uc, store
}

func TestRegisterUser_DefaultRoleDapur(t *testing.T) {
	uc, _ := newAuthUC(t)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "staf@dapurgempita.id",
		Password: "rahasia-banget",
		Name:     "Staf Baru",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDapur, user.Role, "role kosong jatuh ke dapur")
	assert.Equal(t, entity.UserActive, user.Status)
}

func TestRegisterUser_EmailDuplikat(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.id", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.id", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenBerisiRole(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "gudang@dapurgempita.id",
		Password: "password123",
		Role:     entity.RoleGudang,
	})
	require.NoError(t, err)

	res, err := uc.Login(dto.LoginRequest{Email: "gudang@dapurgempita.id", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	userID, role, err := pkgjwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)
	assert.Equal(t, entity.RoleGudang, role)
}

func TestLogin_PasswordSalah(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.id", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.id", Password: "salah"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UserNonaktifDitolak(t *testing.T) {
	uc, store := newAuthUC(t)

	res, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.id", Password: "password123"})
	require.NoError(t, err)

	user, err := store.Users().GetByID(res.ID)
	require.NoError(t, err)
	user.Status = entity.UserInactive
	require.NoError(t, store.Users().Update(user))

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.id", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_EmailTidakDikenal(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "hantu@b.id", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
