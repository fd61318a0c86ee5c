package userapimodels

import (
	"strings"

	"hr-system-backend/lib/apperrors"
	"hr-system-backend/models"
	dbmodels "hr-system-backend/models/db"
)

type UserData struct {
	Login    string          `json:"login"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

func (u UserData) Validate() error {
	if strings.TrimSpace(u.Login) == "" {
		return apperrors.Validation("не указан логин")
	}
	if u.Password == "" {
		return apperrors.Validation("не указан пароль")
	}
	if !u.Role.IsValid() {
		return apperrors.Validation("некорректная роль пользователя")
	}
	return nil
}

type UserUpdateData struct {
	Password *string          `json:"password,omitempty"`
	Role     *models.UserRole `json:"role,omitempty"`
}

func (u UserUpdateData) Validate() error {
	if u.Password != nil && *u.Password == "" {
		return apperrors.Validation("пароль не может быть пустым")
	}
	if u.Role != nil && !u.Role.IsValid() {
		return apperrors.Validation("некорректная роль пользователя")
	}
	return nil
}

type UserView struct {
	ID    string          `json:"id"`
	Login string          `json:"login"`
	Role  models.UserRole `json:"role"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:    rec.ID,
		Login: rec.Login,
		Role:  rec.Role,
	}
}
