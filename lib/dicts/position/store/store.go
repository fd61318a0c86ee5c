package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-system-backend/lib/apperrors"
	dbmodels "hr-system-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Position) (id string, err error)
	GetByID(id string) (rec *dbmodels.Position, err error)
	// GetByIDLocked блокирует строку должности до конца транзакции (FOR UPDATE).
	// Используется при приеме заявки, чтобы конкурентные приемы не превысили MaxAllowed.
	GetByIDLocked(id string) (rec *dbmodels.Position, err error)
	List() (list []dbmodels.Position, err error)
	ListByDepartment(departmentID string) (list []dbmodels.Position, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Position) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.isUnique(rec.DepartmentID, "", rec.Name)
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

func (i impl) GetByID(id string) (*dbmodels.Position, error) {
	rec := dbmodels.Position{}
	err := i.db.
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

func (i impl) GetByIDLocked(id string) (*dbmodels.Position, error) {
	rec := dbmodels.Position{}
	tx := i.db
	// FOR UPDATE поддерживается только в postgres, sqlite блокирует базу целиком
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := tx.
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

func (i impl) List() (list []dbmodels.Position, err error) {
	list = []dbmodels.Position{}
	err = i.db.
		Order("name").
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

func (i impl) ListByDepartment(departmentID string) (list []dbmodels.Position, err error) {
	list = []dbmodels.Position{}
	err = i.db.
		Where("department_id = ?", departmentID).
		Order("name").
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
	name, hasName := updMap["name"]
	if hasName {
		rec, err := i.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperrors.NotFound("должность не найдена")
		}
		err = i.isUnique(rec.DepartmentID, id, name.(string))
		if err != nil {
			return err
		}
	}
	tx := i.db.
		Model(&dbmodels.Position{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperrors.NotFound("должность не найдена")
	}
	return nil
}

func (i impl) Delete(id string) error {
	// удаление запрещено, пока на должность назначены сотрудники или поданы заявки
	var employeeCount int64
	err := i.db.
		Model(dbmodels.Employee{}).
		Where("position_id = ?", id).
		Count(&employeeCount).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка проверки сотрудников должности")
	}
	if employeeCount != 0 {
		return apperrors.ConstraintViolation("нельзя удалить должность, на которую назначены сотрудники")
	}
	rec := dbmodels.Position{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	tx := i.db.Delete(&rec)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperrors.NotFound("должность не найдена")
	}
	return nil
}

func (i impl) isUnique(departmentID, selfID, name string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Position{})
	tx.Where("department_id = ?", departmentID)
	tx.Where("name = ?", name)
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "ошибка проверки уникальности должности")
	}
	if rowCount != 0 {
		return apperrors.ConstraintViolation("должность с таким названием уже существует в подразделении")
	}
	return nil
}
