package dbmodels

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-system-backend/lib/apperrors"
)

type Department struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex"`
}

// AfterDelete каскадно удаляет должности подразделения.
// Удаление самого подразделения при наличии сотрудников блокируется в store.
func (d *Department) AfterDelete(tx *gorm.DB) (err error) {
	if d.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("department_id = ?", d.ID).Delete(&Position{})
	return
}

func (d Department) Validate() error {
	if d.Name == "" {
		return apperrors.Validation("не указано название подразделения")
	}
	return nil
}
