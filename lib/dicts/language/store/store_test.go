package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"hr-system-backend/lib/apperrors"
	dbmodels "hr-system-backend/models/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	err = testDB.AutoMigrate(
		&dbmodels.Language{},
		&dbmodels.EmployeeLanguage{},
	)
	require.NoError(t, err)
	return testDB
}

func TestLanguageStore(t *testing.T) {
	testDB := newTestDB(t)
	languageStore := NewInstance(testDB)

	t.Run(`дубль названия запрещен`, func(t *testing.T) {
		_, err := languageStore.Create(dbmodels.Language{Name: "Английский"})
		require.NoError(t, err)

		_, err = languageStore.Create(dbmodels.Language{Name: "Английский"})
		require.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	})

	t.Run(`список отсортирован по названию`, func(t *testing.T) {
		_, err := languageStore.Create(dbmodels.Language{Name: "Арабский"})
		require.NoError(t, err)

		list, err := languageStore.List()
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Английский", list[0].Name)
		require.Equal(t, "Арабский", list[1].Name)
	})

	t.Run(`удаление каскадно удаляет записи о владении`, func(t *testing.T) {
		id, err := languageStore.Create(dbmodels.Language{Name: "Немецкий"})
		require.NoError(t, err)
		employeeLanguage := dbmodels.EmployeeLanguage{
			EmployeeID:       "employee-1",
			LanguageID:       id,
			ProficiencyLevel: "FLUENT",
		}
		require.NoError(t, testDB.Save(&employeeLanguage).Error)

		require.NoError(t, languageStore.Delete(id))

		var linkCount int64
		require.NoError(t, testDB.Model(&dbmodels.EmployeeLanguage{}).Where("language_id = ?", id).Count(&linkCount).Error)
		require.Zero(t, linkCount)
	})
}
