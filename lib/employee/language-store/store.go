package languagestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-system-backend/models/db"
)

type Provider interface {
	ListForEmployee(employeeID string) (list []dbmodels.EmployeeLanguage, err error)
	// Replace заменяет весь набор языков сотрудника, пустой набор допустим.
	Replace(employeeID string, recList []dbmodels.EmployeeLanguage) error
	DeleteForEmployee(employeeID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListForEmployee(employeeID string) (list []dbmodels.EmployeeLanguage, err error) {
	list = []dbmodels.EmployeeLanguage{}
	err = i.db.
		Preload("Language").
		Where("employee_id = ?", employeeID).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Replace(employeeID string, recList []dbmodels.EmployeeLanguage) error {
	err := i.DeleteForEmployee(employeeID)
	if err != nil {
		return err
	}
	for idx := range recList {
		recList[idx].EmployeeID = employeeID
		err = recList[idx].Validate()
		if err != nil {
			return err
		}
	}
	if len(recList) == 0 {
		return nil
	}
	err = i.db.
		Create(&recList).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения языков сотрудника")
	}
	return nil
}

func (i impl) DeleteForEmployee(employeeID string) error {
	err := i.db.
		Where("employee_id = ?", employeeID).
		Delete(&dbmodels.EmployeeLanguage{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления языков сотрудника")
	}
	return nil
}
