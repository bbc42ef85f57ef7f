package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosalon/internal/apperrors"
	"autosalon/internal/auth"
	"autosalon/internal/config"
	"autosalon/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   time.Hour,
		RefreshTokenTTL:  24 * time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Name:     "Иван Менеджеров",
		Email:    "manager@autosalon.ru",
		Password: "secret123",
		Role:     models.RoleManager,
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleManager, user.Role)
	// пароль хранится только в виде bcrypt-хэша
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)

	pair, err := svc.Login(ctx, "manager@autosalon.ru", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, pair.User.ID)

	claims, err := auth.ParseAccessToken(cfg.JWTSecret, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleManager, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Name: "Иван", Email: "user@autosalon.ru", Password: "secret123",
	})
	require.NoError(t, err)

	// неверный пароль и несуществующий email дают один и тот же ответ
	_, err = svc.Login(ctx, "user@autosalon.ru", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, apperrors.Unauthenticated, apperrors.KindOf(err))
	assert.Equal(t, "Неверный email или пароль", apperrors.ClientMessage(err))

	_, err = svc.Login(ctx, "nobody@autosalon.ru", "secret123")
	require.Error(t, err)
	assert.Equal(t, apperrors.Unauthenticated, apperrors.KindOf(err))
	assert.Equal(t, "Неверный email или пароль", apperrors.ClientMessage(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	ctx := context.Background()

	in := RegisterInput{Name: "Иван", Email: "user@autosalon.ru", Password: "secret123"}
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	in.Email = "USER@autosalon.ru"
	_, err = svc.Register(ctx, in)
	require.Error(t, err)
	assert.Equal(t, apperrors.Conflict, apperrors.KindOf(err))
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	ctx := context.Background()

	cases := []RegisterInput{
		{},
		{Name: "Иван", Email: "user@autosalon.ru", Password: "123"},
		{Name: "Иван", Email: "not-an-email", Password: "secret123"},
		// через регистрацию админа не создать
		{Name: "Иван", Email: "user@autosalon.ru", Password: "secret123", Role: models.RoleAdmin},
	}
	for _, in := range cases {
		_, err := svc.Register(ctx, in)
		require.Error(t, err)
		assert.Equal(t, apperrors.InvalidArgument, apperrors.KindOf(err))
	}
}

func TestRegisterDefaultRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	user, err := svc.Register(context.Background(), RegisterInput{
		Name: "Иван", Email: "user@autosalon.ru", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleViewer, user.Role)
}

func TestRefresh(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Name: "Иван", Email: "user@autosalon.ru", Password: "secret123",
	})
	require.NoError(t, err)

	pair, err := svc.Login(ctx, "user@autosalon.ru", "secret123")
	require.NoError(t, err)

	access, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims, err := auth.ParseAccessToken(cfg.JWTSecret, access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// access-токен не принимается вместо refresh
	_, err = svc.Refresh(ctx, pair.AccessToken)
	require.Error(t, err)
	assert.Equal(t, apperrors.Unauthenticated, apperrors.KindOf(err))

	_, err = svc.Refresh(ctx, "")
	assert.Equal(t, apperrors.Unauthenticated, apperrors.KindOf(err))
}
