package dictapimodels

import (
	"strings"

	"hr-system-backend/lib/apperrors"
	dbmodels "hr-system-backend/models/db"
)

type PositionData struct {
	Name                    string `json:"name"`          // Название должности
	DepartmentID            string `json:"department_id"` // Подразделение
	MaxAllowed              int    `json:"max_allowed"`   // Количество ставок
	RequiresHigherEducation bool   `json:"requires_higher_education"`
	IsAssistant             bool   `json:"is_assistant"`
}

func (p PositionData) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.Validation("не указано название должности")
	}
	if p.DepartmentID == "" {
		return apperrors.Validation("не указано подразделение")
	}
	if p.MaxAllowed < 0 {
		return apperrors.Validation("количество ставок не может быть отрицательным")
	}
	return nil
}

type PositionView struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	DepartmentID            string `json:"department_id"`
	MaxAllowed              int    `json:"max_allowed"`
	RequiresHigherEducation bool   `json:"requires_higher_education"`
	IsAssistant             bool   `json:"is_assistant"`
}

func PositionConvert(rec dbmodels.Position) PositionView {
	return PositionView{
		ID:                      rec.ID,
		Name:                    rec.Name,
		DepartmentID:            rec.DepartmentID,
		MaxAllowed:              rec.MaxAllowed,
		RequiresHigherEducation: rec.RequiresHigherEducation,
		IsAssistant:             rec.IsAssistant,
	}
}
