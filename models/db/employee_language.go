package dbmodels

import (
	"hr-system-backend/lib/apperrors"
	"hr-system-backend/models"
)

type EmployeeLanguage struct {
	BaseModel
	EmployeeID       string                  `gorm:"type:varchar(36);uniqueIndex:idx_employee_language"`
	LanguageID       string                  `gorm:"type:varchar(36);index;uniqueIndex:idx_employee_language"`
	Language         *Language               `gorm:"foreignKey:LanguageID"`
	ProficiencyLevel models.ProficiencyLevel `gorm:"type:varchar(50)"`
}

func (el EmployeeLanguage) Validate() error {
	if el.LanguageID == "" {
		return apperrors.Validation("отсутствует ссылка на язык")
	}
	if !el.ProficiencyLevel.IsValid() {
		return apperrors.Validation("некорректный уровень владения языком")
	}
	return nil
}
