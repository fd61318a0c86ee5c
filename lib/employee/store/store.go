package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-system-backend/lib/apperrors"
	"hr-system-backend/models"
	employeeapimodels "hr-system-backend/models/api/employee"
	dbmodels "hr-system-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, rowCount int64, err error)
	// ListAllByDepartment - полный список сотрудников подразделения без пагинации, для отчетов.
	ListAllByDepartment(departmentID string) (list []dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	// CountAccepted считает принятых сотрудников на должности в подразделении,
	// по этому числу проверяется лимит вакансий.
	CountAccepted(positionID, departmentID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Preload("Position").
		Preload("Department").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, rowCount int64, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.Model(dbmodels.Employee{})
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.DepartmentID != "" {
		tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Search != "" {
		tx.Where("last_name LIKE ?", filter.Search+"%")
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения количества сотрудников")
	}
	page, limit := filter.GetPage()
	err = tx.
		Preload("Position").
		Preload("Department").
		Order("last_name, first_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAllByDepartment(departmentID string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.Model(dbmodels.Employee{})
	if departmentID != "" {
		tx.Where("department_id = ?", departmentID)
	}
	err = tx.
		Preload("Position").
		Preload("Department").
		Order("last_name, first_name").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperrors.NotFound("сотрудник не найден")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	tx := i.db.Delete(&rec)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperrors.NotFound("сотрудник не найден")
	}
	return nil
}

func (i impl) CountAccepted(positionID, departmentID string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.Employee{}).
		Where("position_id = ?", positionID).
		Where("department_id = ?", departmentID).
		Where("status = ?", models.EmployeeStatusAccepted).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка подсчета принятых сотрудников")
	}
	return rowCount, nil
}
