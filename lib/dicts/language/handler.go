package languageprovider

import (
	log "github.com/sirupsen/logrus"
	"hr-system-backend/db"
	"hr-system-backend/lib/apperrors"
	"hr-system-backend/lib/dicts/language/store"
	"hr-system-backend/lib/watch"
	dictapimodels "hr-system-backend/models/api/dict"
	dbmodels "hr-system-backend/models/db"
	"strings"
)

type Provider interface {
	Create(request dictapimodels.LanguageData) (id string, err error)
	Update(id string, request dictapimodels.LanguageData) error
	Get(id string) (item dictapimodels.LanguageView, err error)
	List() (list []dictapimodels.LanguageView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
		hub:   watch.Instance,
	}
}

type impl struct {
	store store.Provider
	hub   watch.Provider
}

func (i impl) Create(request dictapimodels.LanguageData) (id string, err error) {
	rec := dbmodels.Language{
		Name: strings.TrimSpace(request.Name),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("language_name", rec.Name).
		WithField("rec_id", id).
		Info("создан язык")
	i.hub.Publish(watch.Event{Entity: watch.EntityLanguage, Action: watch.ActionCreated, ID: id})
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.LanguageData) error {
	updMap := map[string]interface{}{
		"name": strings.TrimSpace(request.Name),
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("обновлен язык")
	i.hub.Publish(watch.Event{Entity: watch.EntityLanguage, Action: watch.ActionUpdated, ID: id})
	return nil
}

func (i impl) Get(id string) (dictapimodels.LanguageView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.LanguageView{}, err
	}
	if rec == nil {
		return dictapimodels.LanguageView{}, apperrors.NotFound("язык не найден")
	}
	return dictapimodels.LanguageConvert(*rec), nil
}

func (i impl) List() ([]dictapimodels.LanguageView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]dictapimodels.LanguageView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.LanguageConvert(rec))
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
		Info("удален язык")
	i.hub.Publish(watch.Event{Entity: watch.EntityLanguage, Action: watch.ActionDeleted, ID: id})
	return nil
}
