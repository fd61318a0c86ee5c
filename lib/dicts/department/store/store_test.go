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
		&dbmodels.EmployeeLanguage{},
	)
	require.NoError(t, err)
	return testDB
}

func TestDepartmentStore(t *testing.T) {
	testDB := newTestDB(t)
	departmentStore := NewInstance(testDB)

	t.Run(`создание и получение`, func(t *testing.T) {
		id, err := departmentStore.Create(dbmodels.Department{Name: "Кафедра ИВТ"})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		rec, err := departmentStore.GetByID(id)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "Кафедра ИВТ", rec.Name)
	})

	t.Run(`дубль названия запрещен`, func(t *testing.T) {
		_, err := departmentStore.Create(dbmodels.Department{Name: "Кафедра ИВТ"})
		require.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	})

	t.Run(`получение несуществующей записи`, func(t *testing.T) {
		rec, err := departmentStore.GetByID("missing-id")
		require.NoError(t, err)
		require.Nil(t, rec)
	})

	t.Run(`обновление несуществующей записи`, func(t *testing.T) {
		err := departmentStore.Update("missing-id", map[string]interface{}{"name": "Новое"})
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run(`переименование в занятое название запрещено`, func(t *testing.T) {
		id, err := departmentStore.Create(dbmodels.Department{Name: "Администрация"})
		require.NoError(t, err)

		err = departmentStore.Update(id, map[string]interface{}{"name": "Кафедра ИВТ"})
		require.ErrorIs(t, err, apperrors.ErrConstraintViolation)

		// свое собственное название допустимо
		err = departmentStore.Update(id, map[string]interface{}{"name": "Администрация"})
		require.NoError(t, err)
	})
}

func TestDepartmentDelete(t *testing.T) {
	testDB := newTestDB(t)
	departmentStore := NewInstance(testDB)

	t.Run(`удаление каскадно удаляет должности`, func(t *testing.T) {
		id, err := departmentStore.Create(dbmodels.Department{Name: "Кафедра ПМ"})
		require.NoError(t, err)
		position := dbmodels.Position{DepartmentID: id, Name: "Доцент", MaxAllowed: 2}
		require.NoError(t, testDB.Save(&position).Error)

		require.NoError(t, departmentStore.Delete(id))

		var positionCount int64
		require.NoError(t, testDB.Model(&dbmodels.Position{}).Where("department_id = ?", id).Count(&positionCount).Error)
		require.Zero(t, positionCount)
	})

	t.Run(`удаление запрещено пока числятся сотрудники`, func(t *testing.T) {
		id, err := departmentStore.Create(dbmodels.Department{Name: "Кафедра КБ"})
		require.NoError(t, err)
		position := dbmodels.Position{DepartmentID: id, Name: "Ассистент", MaxAllowed: 1, IsAssistant: true}
		require.NoError(t, testDB.Save(&position).Error)
		employee := dbmodels.Employee{
			FirstName:      "Иван",
			LastName:       "Петров",
			DateOfBirth:    "1990-01-01",
			Gender:         "MALE",
			PositionID:     position.ID,
			DepartmentID:   id,
			EducationLevel: "HIGHER",
		}
		require.NoError(t, testDB.Save(&employee).Error)

		err = departmentStore.Delete(id)
		require.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	})

	t.Run(`удаление несуществующей записи`, func(t *testing.T) {
		err := departmentStore.Delete("missing-id")
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
