package usersprovider

import (
	log "github.com/sirupsen/logrus"
	"hr-system-backend/db"
	"hr-system-backend/lib/apperrors"
	"hr-system-backend/lib/users/store"
	authhelpers "hr-system-backend/lib/utils/auth-helpers"
	authutils "hr-system-backend/lib/utils/auth-utils"
	authapimodels "hr-system-backend/models/api/auth"
	userapimodels "hr-system-backend/models/api/users"
	dbmodels "hr-system-backend/models/db"
)

type Provider interface {
	Login(request authapimodels.Login) (response authapimodels.JWTResponse, err error)
	Create(request userapimodels.UserData) (id string, err error)
	Update(id string, request userapimodels.UserUpdateData) error
	Get(id string) (item userapimodels.UserView, err error)
	List() (list []userapimodels.UserView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
	}
}

type impl struct {
	store store.Provider
}

func (i impl) Login(request authapimodels.Login) (authapimodels.JWTResponse, error) {
	logger := log.WithField("login", request.Login)
	rec, err := i.store.GetByLogin(request.Login)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil || !authhelpers.VerifyPassword(request.Password, rec.PasswordHash) {
		logger.Warn("неудачная попытка входа")
		return authapimodels.JWTResponse{}, apperrors.Validation("неверный логин или пароль")
	}
	token, err := authutils.GetToken(rec.ID, rec.Login, rec.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	logger.Info("пользователь вошел в систему")
	return authapimodels.JWTResponse{AccessToken: token}, nil
}

func (i impl) Create(request userapimodels.UserData) (id string, err error) {
	rec := dbmodels.User{
		Login:        request.Login,
		PasswordHash: authhelpers.GetMD5Hash(request.Password),
		Role:         request.Role,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("login", request.Login).
		WithField("rec_id", id).
		Info("создан пользователь")
	return id, nil
}

func (i impl) Update(id string, request userapimodels.UserUpdateData) error {
	updMap := map[string]interface{}{}
	if request.Password != nil {
		updMap["password_hash"] = authhelpers.GetMD5Hash(*request.Password)
	}
	if request.Role != nil {
		updMap["role"] = *request.Role
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("обновлен пользователь")
	return nil
}

func (i impl) Get(id string) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, apperrors.NotFound("пользователь не найден")
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) List() ([]userapimodels.UserView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, userapimodels.UserConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("удален пользователь")
	return nil
}
