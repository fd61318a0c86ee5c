package dictionaryprovider

import (
	"hr-system-backend/db"
	departmentstore "hr-system-backend/lib/dicts/department/store"
	languagestore "hr-system-backend/lib/dicts/language/store"
	positionstore "hr-system-backend/lib/dicts/position/store"
	dictapimodels "hr-system-backend/models/api/dict"
)

// Provider отдает объединенный список всех справочников одним запросом,
// мобильный клиент загружает его при старте.
type Provider interface {
	ListAll() (list []dictapimodels.DictionaryItem, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		departmentStore: departmentstore.NewInstance(db.DB),
		positionStore:   positionstore.NewInstance(db.DB),
		languageStore:   languagestore.NewInstance(db.DB),
	}
}

type impl struct {
	departmentStore departmentstore.Provider
	positionStore   positionstore.Provider
	languageStore   languagestore.Provider
}

func (i impl) ListAll() ([]dictapimodels.DictionaryItem, error) {
	departments, err := i.departmentStore.List()
	if err != nil {
		return nil, err
	}
	positions, err := i.positionStore.List()
	if err != nil {
		return nil, err
	}
	languages, err := i.languageStore.List()
	if err != nil {
		return nil, err
	}
	list := make([]dictapimodels.DictionaryItem, 0, len(departments)+len(positions)+len(languages))
	for _, rec := range departments {
		list = append(list, dictapimodels.NewDepartmentItem(dictapimodels.DepartmentConvert(rec)))
	}
	for _, rec := range positions {
		list = append(list, dictapimodels.NewPositionItem(dictapimodels.PositionConvert(rec)))
	}
	for _, rec := range languages {
		list = append(list, dictapimodels.NewLanguageItem(dictapimodels.LanguageConvert(rec)))
	}
	return list, nil
}
