package dictapimodels

import (
	"strings"

	"hr-system-backend/lib/apperrors"
	dbmodels "hr-system-backend/models/db"
)

type LanguageData struct {
	Name string `json:"name"` // Название языка
}

func (l LanguageData) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return apperrors.Validation("не указано название языка")
	}
	return nil
}

type LanguageView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func LanguageConvert(rec dbmodels.Language) LanguageView {
	return LanguageView{
		ID:   rec.ID,
		Name: rec.Name,
	}
}
