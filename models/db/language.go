package dbmodels

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-system-backend/lib/apperrors"
)

type Language struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex"`
}

// AfterDelete каскадно удаляет записи о владении языком.
func (l *Language) AfterDelete(tx *gorm.DB) (err error) {
	if l.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("language_id = ?", l.ID).Delete(&EmployeeLanguage{})
	return
}

func (l Language) Validate() error {
	if l.Name == "" {
		return apperrors.Validation("не указано название языка")
	}
	return nil
}
