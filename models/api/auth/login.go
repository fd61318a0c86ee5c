package authapimodels

import (
	"hr-system-backend/lib/apperrors"
)

type Login struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (l Login) Validate() error {
	if l.Login == "" {
		return apperrors.Validation("не указан логин")
	}
	if l.Password == "" {
		return apperrors.Validation("не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	AccessToken string `json:"access_token"`
}
