package dbmodels

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-system-backend/lib/apperrors"
	"hr-system-backend/models"
)

type Employee struct {
	BaseModel
	FirstName    string        `gorm:"type:varchar(255)"`
	LastName     string        `gorm:"type:varchar(255);index"`
	DateOfBirth  string        `gorm:"type:varchar(10)"` // ISO YYYY-MM-DD
	Gender       models.Gender `gorm:"type:varchar(50)"`
	PositionID   string        `gorm:"type:varchar(36);index"`
	Position     *Position     `gorm:"foreignKey:PositionID"`
	DepartmentID string        `gorm:"type:varchar(36);index"`
	Department   *Department   `gorm:"foreignKey:DepartmentID"`
	// EmploymentDate, TariffRate и PersonalNumber заполняются только при приеме,
	// для заявок (статус NEW) всегда null
	EmploymentDate     *string `gorm:"type:varchar(10)"`
	TariffRate         *int
	PersonalNumber     *string               `gorm:"type:varchar(36);uniqueIndex"`
	EducationLevel     models.EducationLevel `gorm:"type:varchar(50)"`
	TotalExperience    int                   `gorm:"default:0"`
	AcademicExperience int                   `gorm:"default:0"`
	Status             models.EmployeeStatus `gorm:"type:varchar(20);index;default:NEW"`
}

// AfterDelete каскадно удаляет языки сотрудника.
func (e *Employee) AfterDelete(tx *gorm.DB) (err error) {
	if e.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("employee_id = ?", e.ID).Delete(&EmployeeLanguage{})
	return
}

func (e Employee) IsNew() bool {
	return e.Status == models.EmployeeStatusNew
}

func (e Employee) IsAccepted() bool {
	return e.Status == models.EmployeeStatusAccepted
}

func (e Employee) Validate() error {
	if e.FirstName == "" {
		return apperrors.Validation("не указано имя")
	}
	if e.LastName == "" {
		return apperrors.Validation("не указана фамилия")
	}
	if e.DateOfBirth == "" {
		return apperrors.Validation("не указана дата рождения")
	}
	if !e.Gender.IsValid() {
		return apperrors.Validation("не указан пол")
	}
	if e.PositionID == "" {
		return apperrors.Validation("отсутствует ссылка на должность")
	}
	if e.DepartmentID == "" {
		return apperrors.Validation("отсутствует ссылка на подразделение")
	}
	if !e.EducationLevel.IsValid() {
		return apperrors.Validation("не указан уровень образования")
	}
	if e.TotalExperience < 0 || e.AcademicExperience < 0 {
		return apperrors.Validation("стаж не может быть отрицательным")
	}
	if e.AcademicExperience > e.TotalExperience {
		return apperrors.Validation("академический стаж не может превышать общий")
	}
	return nil
}
