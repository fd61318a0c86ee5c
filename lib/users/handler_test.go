package usersprovider

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"hr-system-backend/config"
	"hr-system-backend/lib/apperrors"
	"hr-system-backend/lib/users/store"
	"hr-system-backend/models"
	authapimodels "hr-system-backend/models/api/auth"
	userapimodels "hr-system-backend/models/api/users"
	dbmodels "hr-system-backend/models/db"
)

func newTestProvider(t *testing.T) impl {
	t.Helper()
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&dbmodels.User{}))
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	return impl{
		store: store.NewInstance(testDB),
	}
}

func TestUsers(t *testing.T) {
	provider := newTestProvider(t)

	t.Run(`создание и получение`, func(t *testing.T) {
		id, err := provider.Create(userapimodels.UserData{
			Login:    "hr",
			Password: "hr-password",
			Role:     models.UserRoleHR,
		})
		require.NoError(t, err)

		view, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, "hr", view.Login)
		require.Equal(t, models.UserRoleHR, view.Role)
	})

	t.Run(`дубль логина запрещен`, func(t *testing.T) {
		_, err := provider.Create(userapimodels.UserData{
			Login:    "hr",
			Password: "other",
			Role:     models.UserRoleAdmin,
		})
		require.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	})

	t.Run(`получение несуществующего пользователя`, func(t *testing.T) {
		_, err := provider.Get("missing-id")
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestLogin(t *testing.T) {
	provider := newTestProvider(t)
	_, err := provider.Create(userapimodels.UserData{
		Login:    "admin",
		Password: "admin-password",
		Role:     models.UserRoleAdmin,
	})
	require.NoError(t, err)

	t.Run(`успешный вход возвращает токен`, func(t *testing.T) {
		resp, err := provider.Login(authapimodels.Login{Login: "admin", Password: "admin-password"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
	})

	t.Run(`неверный пароль`, func(t *testing.T) {
		_, err := provider.Login(authapimodels.Login{Login: "admin", Password: "wrong"})
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run(`неизвестный логин`, func(t *testing.T) {
		_, err := provider.Login(authapimodels.Login{Login: "ghost", Password: "admin-password"})
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestUserUpdate(t *testing.T) {
	provider := newTestProvider(t)
	id, err := provider.Create(userapimodels.UserData{
		Login:    "hr",
		Password: "old-password",
		Role:     models.UserRoleHR,
	})
	require.NoError(t, err)

	t.Run(`смена пароля`, func(t *testing.T) {
		newPassword := "new-password"
		require.NoError(t, provider.Update(id, userapimodels.UserUpdateData{Password: &newPassword}))

		_, err := provider.Login(authapimodels.Login{Login: "hr", Password: "old-password"})
		require.Error(t, err)
		resp, err := provider.Login(authapimodels.Login{Login: "hr", Password: newPassword})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
	})

	t.Run(`смена роли`, func(t *testing.T) {
		role := models.UserRoleAdmin
		require.NoError(t, provider.Update(id, userapimodels.UserUpdateData{Role: &role}))

		view, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, models.UserRoleAdmin, view.Role)
	})

	t.Run(`удаление`, func(t *testing.T) {
		require.NoError(t, provider.Delete(id))
		_, err := provider.Get(id)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
