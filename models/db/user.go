package dbmodels

import (
	"hr-system-backend/lib/apperrors"
	"hr-system-backend/models"
)

type User struct {
	BaseModel
	Login        string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255)"`
	Role         models.UserRole `gorm:"type:varchar(50)"`
}

func (u User) Validate() error {
	if u.Login == "" {
		return apperrors.Validation("не указан логин")
	}
	if u.PasswordHash == "" {
		return apperrors.Validation("не указан пароль")
	}
	if !u.Role.IsValid() {
		return apperrors.Validation("некорректная роль пользователя")
	}
	return nil
}
