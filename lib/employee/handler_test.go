package employeeprovider

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"hr-system-backend/lib/apperrors"
	departmentstore "hr-system-backend/lib/dicts/department/store"
	positionstore "hr-system-backend/lib/dicts/position/store"
	languagestore "hr-system-backend/lib/employee/language-store"
	"hr-system-backend/lib/employee/store"
	"hr-system-backend/lib/utils/dateutils"
	"hr-system-backend/lib/watch"
	"hr-system-backend/models"
	employeeapimodels "hr-system-backend/models/api/employee"
	dbmodels "hr-system-backend/models/db"
)

func newTestProvider(t *testing.T) (impl, *gorm.DB) {
	t.Helper()
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	err = testDB.AutoMigrate(
		&dbmodels.Department{},
		&dbmodels.Position{},
		&dbmodels.Language{},
		&dbmodels.Employee{},
		&dbmodels.EmployeeLanguage{},
	)
	require.NoError(t, err)
	watch.Init()
	provider := impl{
		db:              testDB,
		store:           store.NewInstance(testDB),
		languageStore:   languagestore.NewInstance(testDB),
		positionStore:   positionstore.NewInstance(testDB),
		departmentStore: departmentstore.NewInstance(testDB),
		hub:             watch.Instance,
	}
	return provider, testDB
}

func createDepartment(t *testing.T, testDB *gorm.DB, name string) string {
	t.Helper()
	id, err := departmentstore.NewInstance(testDB).Create(dbmodels.Department{Name: name})
	require.NoError(t, err)
	return id
}

func createPosition(t *testing.T, testDB *gorm.DB, rec dbmodels.Position) string {
	t.Helper()
	id, err := positionstore.NewInstance(testDB).Create(rec)
	require.NoError(t, err)
	return id
}

func createLanguage(t *testing.T, testDB *gorm.DB, name string) string {
	t.Helper()
	rec := dbmodels.Language{Name: name}
	require.NoError(t, testDB.Save(&rec).Error)
	return rec.ID
}

func validApplication(positionID, departmentID string) employeeapimodels.ApplicationData {
	total := 5
	academic := 0
	return employeeapimodels.ApplicationData{
		FirstName:          "Иван",
		LastName:           "Петров",
		DateOfBirth:        "1990-05-15",
		Gender:             models.GenderMale,
		PositionID:         positionID,
		DepartmentID:       departmentID,
		EducationLevel:     models.EducationHigher,
		TotalExperience:    &total,
		AcademicExperience: &academic,
	}
}

func TestSaveApplication(t *testing.T) {
	provider, testDB := newTestProvider(t)
	departmentID := createDepartment(t, testDB, "Кафедра ИВТ")
	positionID := createPosition(t, testDB, dbmodels.Position{
		DepartmentID: departmentID,
		Name:         "Ассистент",
		MaxAllowed:   2,
		IsAssistant:  true,
	})
	languageID := createLanguage(t, testDB, "Английский")

	t.Run(`заявка сохраняется в статусе NEW без полей приема`, func(t *testing.T) {
		request := validApplication(positionID, departmentID)
		request.Languages = []employeeapimodels.LanguageItem{
			{LanguageID: languageID, ProficiencyLevel: models.ProficiencyFluent},
		}
		id, err := provider.SaveApplication(request)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		view, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, models.EmployeeStatusNew, view.Status)
		require.Nil(t, view.EmploymentDate)
		require.Nil(t, view.TariffRate)
		require.Nil(t, view.PersonalNumber)
		require.Len(t, view.Languages, 1)
		require.Equal(t, "Английский", view.Languages[0].LanguageName)
		require.Equal(t, models.ProficiencyFluent, view.Languages[0].ProficiencyLevel)
	})

	t.Run(`заявка с несуществующей должностью`, func(t *testing.T) {
		request := validApplication("missing-id", departmentID)
		_, err := provider.SaveApplication(request)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run(`должность из другого подразделения`, func(t *testing.T) {
		otherDepartmentID := createDepartment(t, testDB, "Кафедра ПМ")
		request := validApplication(positionID, otherDepartmentID)
		_, err := provider.SaveApplication(request)
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run(`кандидат пенсионного возраста`, func(t *testing.T) {
		request := validApplication(positionID, departmentID)
		request.DateOfBirth = "1950-01-01"
		_, err := provider.SaveApplication(request)
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run(`без высшего образования на должность с требованием`, func(t *testing.T) {
		professorID := createPosition(t, testDB, dbmodels.Position{
			DepartmentID:            departmentID,
			Name:                    "Профессор",
			MaxAllowed:              1,
			RequiresHigherEducation: true,
		})
		request := validApplication(professorID, departmentID)
		request.EducationLevel = models.EducationNonHigher
		_, err := provider.SaveApplication(request)
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run(`недостаточный академический стаж для не-ассистента`, func(t *testing.T) {
		docentID := createPosition(t, testDB, dbmodels.Position{
			DepartmentID: departmentID,
			Name:         "Доцент",
			MaxAllowed:   1,
		})
		request := validApplication(docentID, departmentID)
		academic := 2
		request.AcademicExperience = &academic
		_, err := provider.SaveApplication(request)
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestAccept(t *testing.T) {
	provider, testDB := newTestProvider(t)
	departmentID := createDepartment(t, testDB, "Кафедра КБ")
	positionID := createPosition(t, testDB, dbmodels.Position{
		DepartmentID: departmentID,
		Name:         "Ассистент",
		MaxAllowed:   1,
		IsAssistant:  true,
	})

	firstID, err := provider.SaveApplication(validApplication(positionID, departmentID))
	require.NoError(t, err)
	secondID, err := provider.SaveApplication(validApplication(positionID, departmentID))
	require.NoError(t, err)

	tariff := 10

	t.Run(`некорректный тарифный разряд`, func(t *testing.T) {
		badTariff := 19
		err := provider.Accept(firstID, employeeapimodels.AcceptRequest{TariffRate: &badTariff})
		require.ErrorIs(t, err, apperrors.ErrValidation)
		err = provider.Accept(firstID, employeeapimodels.AcceptRequest{})
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run(`прием заполняет поля приема`, func(t *testing.T) {
		err := provider.Accept(firstID, employeeapimodels.AcceptRequest{TariffRate: &tariff})
		require.NoError(t, err)

		view, err := provider.Get(firstID)
		require.NoError(t, err)
		require.Equal(t, models.EmployeeStatusAccepted, view.Status)
		require.NotNil(t, view.EmploymentDate)
		require.Equal(t, dateutils.CurrentISODate(), *view.EmploymentDate)
		require.NotNil(t, view.TariffRate)
		require.Equal(t, tariff, *view.TariffRate)
		require.NotNil(t, view.PersonalNumber)
		require.Equal(t, firstID, *view.PersonalNumber)
	})

	t.Run(`вторая заявка не проходит по лимиту вакансий`, func(t *testing.T) {
		err := provider.Accept(secondID, employeeapimodels.AcceptRequest{TariffRate: &tariff})
		require.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	})

	t.Run(`повторный прием недоступен`, func(t *testing.T) {
		err := provider.Accept(firstID, employeeapimodels.AcceptRequest{TariffRate: &tariff})
		require.ErrorIs(t, err, apperrors.ErrInvalidState)
	})

	t.Run(`прием несуществующей заявки`, func(t *testing.T) {
		err := provider.Accept("missing-id", employeeapimodels.AcceptRequest{TariffRate: &tariff})
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestReject(t *testing.T) {
	provider, testDB := newTestProvider(t)
	departmentID := createDepartment(t, testDB, "Администрация")
	positionID := createPosition(t, testDB, dbmodels.Position{
		DepartmentID: departmentID,
		Name:         "Лаборант",
		MaxAllowed:   3,
		IsAssistant:  true,
	})

	t.Run(`отклонение удаляет заявку`, func(t *testing.T) {
		id, err := provider.SaveApplication(validApplication(positionID, departmentID))
		require.NoError(t, err)

		err = provider.Reject(id)
		require.NoError(t, err)

		_, err = provider.Get(id)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run(`принятого сотрудника отклонить нельзя`, func(t *testing.T) {
		id, err := provider.SaveApplication(validApplication(positionID, departmentID))
		require.NoError(t, err)
		tariff := 5
		require.NoError(t, provider.Accept(id, employeeapimodels.AcceptRequest{TariffRate: &tariff}))

		err = provider.Reject(id)
		require.ErrorIs(t, err, apperrors.ErrInvalidState)
	})
}

func TestDelete(t *testing.T) {
	provider, testDB := newTestProvider(t)
	departmentID := createDepartment(t, testDB, "Кафедра ИВТ")
	positionID := createPosition(t, testDB, dbmodels.Position{
		DepartmentID: departmentID,
		Name:         "Ассистент",
		MaxAllowed:   2,
		IsAssistant:  true,
	})
	languageID := createLanguage(t, testDB, "Немецкий")

	t.Run(`заявку удалить нельзя, только отклонить`, func(t *testing.T) {
		id, err := provider.SaveApplication(validApplication(positionID, departmentID))
		require.NoError(t, err)

		err = provider.Delete(id)
		require.ErrorIs(t, err, apperrors.ErrInvalidState)
	})

	t.Run(`удаление сотрудника каскадно удаляет языки`, func(t *testing.T) {
		request := validApplication(positionID, departmentID)
		request.Languages = []employeeapimodels.LanguageItem{
			{LanguageID: languageID, ProficiencyLevel: models.ProficiencyNative},
		}
		id, err := provider.SaveApplication(request)
		require.NoError(t, err)
		tariff := 7
		require.NoError(t, provider.Accept(id, employeeapimodels.AcceptRequest{TariffRate: &tariff}))

		err = provider.Delete(id)
		require.NoError(t, err)

		_, err = provider.Get(id)
		require.ErrorIs(t, err, apperrors.ErrNotFound)

		var languageCount int64
		require.NoError(t, testDB.Model(&dbmodels.EmployeeLanguage{}).Where("employee_id = ?", id).Count(&languageCount).Error)
		require.Zero(t, languageCount)
	})
}

func TestUpdate(t *testing.T) {
	provider, testDB := newTestProvider(t)
	departmentID := createDepartment(t, testDB, "Кафедра ПМ")
	positionID := createPosition(t, testDB, dbmodels.Position{
		DepartmentID: departmentID,
		Name:         "Ассистент",
		MaxAllowed:   2,
		IsAssistant:  true,
	})
	englishID := createLanguage(t, testDB, "Английский")
	frenchID := createLanguage(t, testDB, "Французский")

	request := validApplication(positionID, departmentID)
	request.Languages = []employeeapimodels.LanguageItem{
		{LanguageID: englishID, ProficiencyLevel: models.ProficiencyAdvanced},
		{LanguageID: frenchID, ProficiencyLevel: models.ProficiencyElementary},
	}
	id, err := provider.SaveApplication(request)
	require.NoError(t, err)

	t.Run(`обновление заменяет весь набор языков`, func(t *testing.T) {
		updated := validApplication(positionID, departmentID)
		updated.LastName = "Сидоров"
		updated.Languages = []employeeapimodels.LanguageItem{
			{LanguageID: frenchID, ProficiencyLevel: models.ProficiencyIntermediate},
		}
		require.NoError(t, provider.Update(id, updated))

		view, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, "Сидоров", view.LastName)
		require.Len(t, view.Languages, 1)
		require.Equal(t, frenchID, view.Languages[0].LanguageID)
		require.Equal(t, models.ProficiencyIntermediate, view.Languages[0].ProficiencyLevel)
	})

	t.Run(`пустой набор языков допустим`, func(t *testing.T) {
		updated := validApplication(positionID, departmentID)
		require.NoError(t, provider.Update(id, updated))

		view, err := provider.Get(id)
		require.NoError(t, err)
		require.Empty(t, view.Languages)
	})

	t.Run(`обновление несуществующей записи`, func(t *testing.T) {
		err := provider.Update("missing-id", validApplication(positionID, departmentID))
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestList(t *testing.T) {
	provider, testDB := newTestProvider(t)
	departmentID := createDepartment(t, testDB, "Кафедра ИВТ")
	otherDepartmentID := createDepartment(t, testDB, "Кафедра КБ")
	positionID := createPosition(t, testDB, dbmodels.Position{
		DepartmentID: departmentID,
		Name:         "Ассистент",
		MaxAllowed:   5,
		IsAssistant:  true,
	})
	otherPositionID := createPosition(t, testDB, dbmodels.Position{
		DepartmentID: otherDepartmentID,
		Name:         "Ассистент",
		MaxAllowed:   5,
		IsAssistant:  true,
	})

	first := validApplication(positionID, departmentID)
	first.LastName = "Иванов"
	firstID, err := provider.SaveApplication(first)
	require.NoError(t, err)

	second := validApplication(otherPositionID, otherDepartmentID)
	second.LastName = "Смирнов"
	_, err = provider.SaveApplication(second)
	require.NoError(t, err)

	tariff := 3
	require.NoError(t, provider.Accept(firstID, employeeapimodels.AcceptRequest{TariffRate: &tariff}))

	t.Run(`фильтр по статусу`, func(t *testing.T) {
		list, rowCount, err := provider.List(employeeapimodels.EmployeeFilter{Status: models.EmployeeStatusAccepted})
		require.NoError(t, err)
		require.EqualValues(t, 1, rowCount)
		require.Len(t, list, 1)
		require.Equal(t, "Иванов", list[0].LastName)
	})

	t.Run(`фильтр по подразделению`, func(t *testing.T) {
		list, rowCount, err := provider.List(employeeapimodels.EmployeeFilter{DepartmentID: otherDepartmentID})
		require.NoError(t, err)
		require.EqualValues(t, 1, rowCount)
		require.Len(t, list, 1)
		require.Equal(t, "Смирнов", list[0].LastName)
	})

	t.Run(`поиск по фамилии`, func(t *testing.T) {
		list, rowCount, err := provider.List(employeeapimodels.EmployeeFilter{Search: "Смир"})
		require.NoError(t, err)
		require.EqualValues(t, 1, rowCount)
		require.Len(t, list, 1)
	})

	t.Run(`некорректный статус в фильтре`, func(t *testing.T) {
		_, _, err := provider.List(employeeapimodels.EmployeeFilter{Status: models.EmployeeStatus("FIRED")})
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
