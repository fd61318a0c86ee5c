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
		&dbmodels.Department{},
		&dbmodels.Position{},
		&dbmodels.Employee{},
	)
	require.NoError(t, err)
	return testDB
}

func createDepartment(t *testing.T, testDB *gorm.DB, name string) string {
	t.Helper()
	rec := dbmodels.Department{Name: name}
	require.NoError(t, testDB.Save(&rec).Error)
	return rec.ID
}

func TestPositionStore(t *testing.T) {
	testDB := newTestDB(t)
	positionStore := NewInstance(testDB)
	departmentID := createDepartment(t, testDB, "Кафедра ИВТ")
	otherDepartmentID := createDepartment(t, testDB, "Кафедра ПМ")

	t.Run(`название уникально в рамках подразделения`, func(t *testing.T) {
		_, err := positionStore.Create(dbmodels.Position{DepartmentID: departmentID, Name: "Доцент", MaxAllowed: 2})
		require.NoError(t, err)

		_, err = positionStore.Create(dbmodels.Position{DepartmentID: departmentID, Name: "Доцент", MaxAllowed: 1})
		require.ErrorIs(t, err, apperrors.ErrConstraintViolation)

		// в другом подразделении то же название допустимо
		_, err = positionStore.Create(dbmodels.Position{DepartmentID: otherDepartmentID, Name: "Доцент", MaxAllowed: 1})
		require.NoError(t, err)
	})

	t.Run(`список по подразделению`, func(t *testing.T) {
		list, err := positionStore.ListByDepartment(departmentID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Доцент", list[0].Name)
	})

	t.Run(`блокирующее чтение возвращает запись`, func(t *testing.T) {
		id, err := positionStore.Create(dbmodels.Position{DepartmentID: departmentID, Name: "Профессор", MaxAllowed: 1, RequiresHigherEducation: true})
		require.NoError(t, err)

		err = testDB.Transaction(func(tx *gorm.DB) error {
			rec, err := NewInstance(tx).GetByIDLocked(id)
			require.NoError(t, err)
			require.NotNil(t, rec)
			require.Equal(t, "Профессор", rec.Name)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run(`удаление запрещено пока назначены сотрудники`, func(t *testing.T) {
		id, err := positionStore.Create(dbmodels.Position{DepartmentID: departmentID, Name: "Ассистент", MaxAllowed: 1, IsAssistant: true})
		require.NoError(t, err)
		employee := dbmodels.Employee{
			FirstName:      "Иван",
			LastName:       "Петров",
			DateOfBirth:    "1990-01-01",
			Gender:         "MALE",
			PositionID:     id,
			DepartmentID:   departmentID,
			EducationLevel: "HIGHER",
		}
		require.NoError(t, testDB.Save(&employee).Error)

		err = positionStore.Delete(id)
		require.ErrorIs(t, err, apperrors.ErrConstraintViolation)

		require.NoError(t, testDB.Delete(&employee).Error)
		require.NoError(t, positionStore.Delete(id))
	})
}
