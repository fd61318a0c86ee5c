package departmentprovider

import (
	log "github.com/sirupsen/logrus"
	"hr-system-backend/db"
	"hr-system-backend/lib/apperrors"
	"hr-system-backend/lib/dicts/department/store"
	"hr-system-backend/lib/watch"
	dictapimodels "hr-system-backend/models/api/dict"
	dbmodels "hr-system-backend/models/db"
	"strings"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id string, err error)
	Update(id string, request dictapimodels.DepartmentData) error
	Get(id string) (item dictapimodels.DepartmentView, err error)
	List() (list []dictapimodels.DepartmentView, err error)
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

func (i impl) Create(request dictapimodels.DepartmentData) (id string, err error) {
	rec := dbmodels.Department{
		Name: strings.TrimSpace(request.Name),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("создано подразделение")
	i.hub.Publish(watch.Event{Entity: watch.EntityDepartment, Action: watch.ActionCreated, ID: id})
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.DepartmentData) error {
	updMap := map[string]interface{}{
		"name": strings.TrimSpace(request.Name),
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("обновлено подразделение")
	i.hub.Publish(watch.Event{Entity: watch.EntityDepartment, Action: watch.ActionUpdated, ID: id})
	return nil
}

func (i impl) Get(id string) (dictapimodels.DepartmentView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, apperrors.NotFound("подразделение не найдено")
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) List() ([]dictapimodels.DepartmentView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.DepartmentConvert(rec))
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
		Info("удалено подразделение")
	i.hub.Publish(watch.Event{Entity: watch.EntityDepartment, Action: watch.ActionDeleted, ID: id})
	return nil
}
