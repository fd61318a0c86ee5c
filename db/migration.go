package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-system-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Position{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Position")
	}
	if err := DB.AutoMigrate(&dbmodels.Language{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Language")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.EmployeeLanguage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmployeeLanguage")
	}
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
