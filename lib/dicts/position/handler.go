package positionprovider

import (
	log "github.com/sirupsen/logrus"
	"hr-system-backend/db"
	"hr-system-backend/lib/apperrors"
	departmentstore "hr-system-backend/lib/dicts/department/store"
	"hr-system-backend/lib/dicts/position/store"
	"hr-system-backend/lib/watch"
	dictapimodels "hr-system-backend/models/api/dict"
	dbmodels "hr-system-backend/models/db"
	"strings"
)

type Provider interface {
	Create(request dictapimodels.PositionData) (id string, err error)
	Update(id string, request dictapimodels.PositionData) error
	Get(id string) (item dictapimodels.PositionView, err error)
	List() (list []dictapimodels.PositionView, err error)
	ListByDepartment(departmentID string) (list []dictapimodels.PositionView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           store.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
		hub:             watch.Instance,
	}
}

type impl struct {
	store           store.Provider
	departmentStore departmentstore.Provider
	hub             watch.Provider
}

func (i impl) Create(request dictapimodels.PositionData) (id string, err error) {
	err = i.checkDepartment(request.DepartmentID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Position{
		DepartmentID:            request.DepartmentID,
		Name:                    strings.TrimSpace(request.Name),
		MaxAllowed:              request.MaxAllowed,
		RequiresHigherEducation: request.RequiresHigherEducation,
		IsAssistant:             request.IsAssistant,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("position_name", rec.Name).
		WithField("department_id", rec.DepartmentID).
		WithField("rec_id", id).
		Info("создана должность")
	i.hub.Publish(watch.Event{Entity: watch.EntityPosition, Action: watch.ActionCreated, ID: id})
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.PositionData) error {
	updMap := map[string]interface{}{
		"name":                      strings.TrimSpace(request.Name),
		"max_allowed":               request.MaxAllowed,
		"requires_higher_education": request.RequiresHigherEducation,
		"is_assistant":              request.IsAssistant,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("обновлена должность")
	i.hub.Publish(watch.Event{Entity: watch.EntityPosition, Action: watch.ActionUpdated, ID: id})
	return nil
}

func (i impl) Get(id string) (dictapimodels.PositionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.PositionView{}, err
	}
	if rec == nil {
		return dictapimodels.PositionView{}, apperrors.NotFound("должность не найдена")
	}
	return dictapimodels.PositionConvert(*rec), nil
}

func (i impl) List() ([]dictapimodels.PositionView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) ListByDepartment(departmentID string) ([]dictapimodels.PositionView, error) {
	recList, err := i.store.ListByDepartment(departmentID)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("удалена должность")
	i.hub.Publish(watch.Event{Entity: watch.EntityPosition, Action: watch.ActionDeleted, ID: id})
	return nil
}

func (i impl) checkDepartment(departmentID string) error {
	rec, err := i.departmentStore.GetByID(departmentID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("подразделение не найдено")
	}
	return nil
}

func convertList(recList []dbmodels.Position) []dictapimodels.PositionView {
	list := make([]dictapimodels.PositionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.PositionConvert(rec))
	}
	return list
}
