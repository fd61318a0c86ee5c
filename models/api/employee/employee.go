package employeeapimodels

import (
	"strings"

	"hr-system-backend/lib/apperrors"
	"hr-system-backend/lib/utils/dateutils"
	"hr-system-backend/lib/validators"
	"hr-system-backend/models"
	apimodels "hr-system-backend/models/api"
	dbmodels "hr-system-backend/models/db"
)

// ApplicationData - данные заявки кандидата либо обновляемые данные сотрудника
type ApplicationData struct {
	FirstName          string                `json:"first_name"`
	LastName           string                `json:"last_name"`
	DateOfBirth        string                `json:"date_of_birth"` // YYYY-MM-DD
	Gender             models.Gender         `json:"gender"`
	PositionID         string                `json:"position_id"`
	DepartmentID       string                `json:"department_id"`
	EducationLevel     models.EducationLevel `json:"education_level"`
	TotalExperience    *int                  `json:"total_experience"`    // лет
	AcademicExperience *int                  `json:"academic_experience"` // лет
	Languages          []LanguageItem        `json:"languages"`
}

type LanguageItem struct {
	LanguageID       string                  `json:"language_id"`
	ProficiencyLevel models.ProficiencyLevel `json:"proficiency_level"`
}

// Validate проверяет заполненность полей.
// Бизнес-проверки, требующие должности (возраст/образование/стаж), выполняет провайдер.
func (a ApplicationData) Validate() error {
	if strings.TrimSpace(a.FirstName) == "" {
		return apperrors.Validation("не указано имя")
	}
	if strings.TrimSpace(a.LastName) == "" {
		return apperrors.Validation("не указана фамилия")
	}
	if _, ok := dateutils.ParseISODate(a.DateOfBirth); !ok {
		return apperrors.Validation("некорректная дата рождения")
	}
	if !a.Gender.IsValid() {
		return apperrors.Validation("не указан пол")
	}
	if a.PositionID == "" {
		return apperrors.Validation("не указана должность")
	}
	if a.DepartmentID == "" {
		return apperrors.Validation("не указано подразделение")
	}
	if !a.EducationLevel.IsValid() {
		return apperrors.Validation("не указан уровень образования")
	}
	if a.TotalExperience == nil || a.AcademicExperience == nil {
		return apperrors.Validation("не указан стаж")
	}
	if *a.TotalExperience < 0 || *a.AcademicExperience < 0 {
		return apperrors.Validation("стаж не может быть отрицательным")
	}
	for _, lang := range a.Languages {
		if lang.LanguageID == "" {
			return apperrors.Validation("не указан язык")
		}
		if !validators.IsValidProficiencyLevel(lang.ProficiencyLevel).IsValid() {
			return apperrors.Validation("некорректный уровень владения языком")
		}
	}
	return nil
}

type AcceptRequest struct {
	TariffRate *int `json:"tariff_rate"` // Тарифный разряд [1, 18]
}

func (a AcceptRequest) Validate() error {
	switch validators.IsValidTariffRate(a.TariffRate) {
	case validators.Indeterminate:
		return apperrors.Validation("не указан тарифный разряд")
	case validators.Invalid:
		return apperrors.Validation("тарифный разряд вне допустимого диапазона")
	}
	return nil
}

type EmployeeFilter struct {
	Status       models.EmployeeStatus `json:"status,omitempty"`
	DepartmentID string                `json:"department_id,omitempty"`
	Search       string                `json:"search,omitempty"` // поиск по фамилии
	apimodels.Pagination
}

type EmployeeView struct {
	ID                 string                `json:"id"`
	FirstName          string                `json:"first_name"`
	LastName           string                `json:"last_name"`
	DateOfBirth        string                `json:"date_of_birth"`
	Gender             models.Gender         `json:"gender"`
	PositionID         string                `json:"position_id"`
	PositionName       string                `json:"position_name,omitempty"`
	DepartmentID       string                `json:"department_id"`
	DepartmentName     string                `json:"department_name,omitempty"`
	EmploymentDate     *string               `json:"employment_date,omitempty"`
	TariffRate         *int                  `json:"tariff_rate,omitempty"`
	PersonalNumber     *string               `json:"personal_number,omitempty"`
	EducationLevel     models.EducationLevel `json:"education_level"`
	TotalExperience    int                   `json:"total_experience"`
	AcademicExperience int                   `json:"academic_experience"`
	Status             models.EmployeeStatus `json:"status"`
	Languages          []EmployeeLanguageView `json:"languages,omitempty"`
}

type EmployeeLanguageView struct {
	LanguageID       string                  `json:"language_id"`
	LanguageName     string                  `json:"language_name,omitempty"`
	ProficiencyLevel models.ProficiencyLevel `json:"proficiency_level"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:                 rec.ID,
		FirstName:          rec.FirstName,
		LastName:           rec.LastName,
		DateOfBirth:        rec.DateOfBirth,
		Gender:             rec.Gender,
		PositionID:         rec.PositionID,
		DepartmentID:       rec.DepartmentID,
		EmploymentDate:     rec.EmploymentDate,
		TariffRate:         rec.TariffRate,
		PersonalNumber:     rec.PersonalNumber,
		EducationLevel:     rec.EducationLevel,
		TotalExperience:    rec.TotalExperience,
		AcademicExperience: rec.AcademicExperience,
		Status:             rec.Status,
	}
	if rec.Position != nil {
		view.PositionName = rec.Position.Name
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	return view
}

func EmployeeLanguageConvert(rec dbmodels.EmployeeLanguage) EmployeeLanguageView {
	view := EmployeeLanguageView{
		LanguageID:       rec.LanguageID,
		ProficiencyLevel: rec.ProficiencyLevel,
	}
	if rec.Language != nil {
		view.LanguageName = rec.Language.Name
	}
	return view
}
