package dbmodels

import (
	"hr-system-backend/lib/apperrors"
)

type Position struct {
	BaseModel
	DepartmentID            string `gorm:"type:varchar(36);index;uniqueIndex:idx_position_name_department"`
	Name                    string `gorm:"type:varchar(255);uniqueIndex:idx_position_name_department"`
	MaxAllowed              int    `gorm:"default:1"`
	RequiresHigherEducation bool
	IsAssistant             bool
}

func (p Position) Validate() error {
	if p.DepartmentID == "" {
		return apperrors.Validation("отсутствует ссылка на подразделение")
	}
	if p.Name == "" {
		return apperrors.Validation("не указано название должности")
	}
	if p.MaxAllowed < 0 {
		return apperrors.Validation("количество ставок не может быть отрицательным")
	}
	return nil
}
