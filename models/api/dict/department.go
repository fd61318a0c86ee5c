package dictapimodels

import (
	"strings"

	"hr-system-backend/lib/apperrors"
	dbmodels "hr-system-backend/models/db"
)

type DepartmentData struct {
	Name string `json:"name"` // Название подразделения
}

func (d DepartmentData) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return apperrors.Validation("не указано название подразделения")
	}
	return nil
}

type DepartmentView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	return DepartmentView{
		ID:   rec.ID,
		Name: rec.Name,
	}
}
