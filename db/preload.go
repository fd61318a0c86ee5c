package db

import (
	log "github.com/sirupsen/logrus"
	"hr-system-backend/config"
	departmentstore "hr-system-backend/lib/dicts/department/store"
	languagestore "hr-system-backend/lib/dicts/language/store"
	positionstore "hr-system-backend/lib/dicts/position/store"
	authhelpers "hr-system-backend/lib/utils/auth-helpers"
	userstore "hr-system-backend/lib/users/store"
	"hr-system-backend/models"
	dbmodels "hr-system-backend/models/db"
)

func InitPreload() {
	fillDictionaries()
	fillUsers()
}

// начальное наполнение справочников при первом запуске
func fillDictionaries() {
	log.Info("предзаполнение справочников")
	depStore := departmentstore.NewInstance(DB)
	posStore := positionstore.NewInstance(DB)
	langStore := languagestore.NewInstance(DB)

	depList, err := depStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения подразделений")
		return
	}
	if len(depList) > 0 {
		log.Info("справочники заполнены")
		return
	}

	type positionSeed struct {
		name                    string
		maxAllowed              int
		requiresHigherEducation bool
		isAssistant             bool
	}
	departmentSeeds := map[string][]positionSeed{
		"Кафедра ИВТ": {
			{"Ассистент", 5, true, true},
			{"Старший преподаватель", 3, true, false},
			{"Доцент", 2, true, false},
			{"Профессор", 1, true, false},
		},
		"Кафедра ПМ": {
			{"Ассистент", 4, true, true},
			{"Старший преподаватель", 4, true, false},
			{"Доцент", 3, true, false},
		},
		"Кафедра КБ": {
			{"Ассистент", 6, true, true},
			{"Доцент", 2, true, false},
		},
		"Администрация": {
			{"Специалист HR", 2, false, false},
			{"Администратор системы", 1, false, false},
		},
	}
	for depName, positions := range departmentSeeds {
		depID, err := depStore.Create(dbmodels.Department{Name: depName})
		if err != nil {
			log.WithError(err).WithField("department_name", depName).Error("ошибка добавления подразделения")
			return
		}
		for _, pos := range positions {
			rec := dbmodels.Position{
				DepartmentID:            depID,
				Name:                    pos.name,
				MaxAllowed:              pos.maxAllowed,
				RequiresHigherEducation: pos.requiresHigherEducation,
				IsAssistant:             pos.isAssistant,
			}
			if _, err = posStore.Create(rec); err != nil {
				log.WithError(err).WithField("position_name", pos.name).Error("ошибка добавления должности")
				return
			}
		}
	}

	for _, langName := range []string{"Английский", "Немецкий", "Французский", "Русский", "Китайский"} {
		if _, err = langStore.Create(dbmodels.Language{Name: langName}); err != nil {
			log.WithError(err).WithField("language_name", langName).Error("ошибка добавления языка")
			return
		}
	}

	log.Info("справочники добавлены")
}

// учетная запись администратора из конфигурации
func fillUsers() {
	store := userstore.NewInstance(DB)
	rec, err := store.GetByLogin(config.Conf.Auth.AdminLogin)
	if err != nil {
		log.WithError(err).Error("ошибка проверки учетной записи администратора")
		return
	}
	if rec != nil {
		return
	}
	admin := dbmodels.User{
		Login:        config.Conf.Auth.AdminLogin,
		PasswordHash: authhelpers.GetMD5Hash(config.Conf.Auth.AdminPassword),
		Role:         models.UserRoleAdmin,
	}
	if _, err = store.Create(admin); err != nil {
		log.WithError(err).Error("ошибка создания учетной записи администратора")
		return
	}
	log.Info("создана учетная запись администратора")
}
