package employeeprovider

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-system-backend/config"
	"hr-system-backend/db"
	"hr-system-backend/lib/apperrors"
	departmentstore "hr-system-backend/lib/dicts/department/store"
	positionstore "hr-system-backend/lib/dicts/position/store"
	languagestore "hr-system-backend/lib/employee/language-store"
	"hr-system-backend/lib/employee/store"
	"hr-system-backend/lib/smtp"
	"hr-system-backend/lib/utils/dateutils"
	"hr-system-backend/lib/validators"
	"hr-system-backend/lib/watch"
	"hr-system-backend/models"
	employeeapimodels "hr-system-backend/models/api/employee"
	dbmodels "hr-system-backend/models/db"
)

type Provider interface {
	// SaveApplication сохраняет заявку кандидата, статус всегда NEW.
	SaveApplication(request employeeapimodels.ApplicationData) (id string, err error)
	// Update обновляет анкетные данные и набор языков, статус не меняется.
	Update(id string, request employeeapimodels.ApplicationData) error
	// Accept принимает заявку: статус ACCEPTED, дата приема, тарифный разряд,
	// табельный номер. Отклоняется, если вакансий по должности не осталось.
	Accept(id string, request employeeapimodels.AcceptRequest) error
	// Reject удаляет заявку в статусе NEW.
	Reject(id string) error
	// Delete удаляет принятого сотрудника.
	Delete(id string) error
	Get(id string) (item employeeapimodels.EmployeeView, err error)
	List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:              db.DB,
		store:           store.NewInstance(db.DB),
		languageStore:   languagestore.NewInstance(db.DB),
		positionStore:   positionstore.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
		hub:             watch.Instance,
	}
}

type impl struct {
	db              *gorm.DB
	store           store.Provider
	languageStore   languagestore.Provider
	positionStore   positionstore.Provider
	departmentStore departmentstore.Provider
	hub             watch.Provider
}

func (i impl) SaveApplication(request employeeapimodels.ApplicationData) (id string, err error) {
	err = request.Validate()
	if err != nil {
		return "", err
	}
	position, err := i.checkReferences(request)
	if err != nil {
		return "", err
	}
	err = checkBusinessRules(request, position)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Employee{
		FirstName:          request.FirstName,
		LastName:           request.LastName,
		DateOfBirth:        request.DateOfBirth,
		Gender:             request.Gender,
		PositionID:         request.PositionID,
		DepartmentID:       request.DepartmentID,
		EducationLevel:     request.EducationLevel,
		TotalExperience:    *request.TotalExperience,
		AcademicExperience: *request.AcademicExperience,
		// для заявки поля приема всегда пустые, что бы ни пришло в запросе
		Status:         models.EmployeeStatusNew,
		EmploymentDate: nil,
		TariffRate:     nil,
		PersonalNumber: nil,
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		txStore := store.NewInstance(tx)
		id, err = txStore.Create(rec)
		if err != nil {
			return err
		}
		return languagestore.NewInstance(tx).Replace(id, convertLanguages(request.Languages))
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("position_id", request.PositionID).
		Info("сохранена заявка кандидата")
	i.hub.Publish(watch.Event{Entity: watch.EntityEmployee, Action: watch.ActionCreated, ID: id})
	return id, nil
}

func (i impl) Update(id string, request employeeapimodels.ApplicationData) error {
	err := request.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("сотрудник не найден")
	}
	position, err := i.checkReferences(request)
	if err != nil {
		return err
	}
	err = checkBusinessRules(request, position)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"first_name":          request.FirstName,
		"last_name":           request.LastName,
		"date_of_birth":       request.DateOfBirth,
		"gender":              request.Gender,
		"position_id":         request.PositionID,
		"department_id":       request.DepartmentID,
		"education_level":     request.EducationLevel,
		"total_experience":    *request.TotalExperience,
		"academic_experience": *request.AcademicExperience,
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		err = store.NewInstance(tx).Update(id, updMap)
		if err != nil {
			return err
		}
		return languagestore.NewInstance(tx).Replace(id, convertLanguages(request.Languages))
	})
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("обновлены данные сотрудника")
	i.hub.Publish(watch.Event{Entity: watch.EntityEmployee, Action: watch.ActionUpdated, ID: id})
	return nil
}

func (i impl) Accept(id string, request employeeapimodels.AcceptRequest) error {
	err := request.Validate()
	if err != nil {
		return err
	}
	var accepted dbmodels.Employee
	err = i.db.Transaction(func(tx *gorm.DB) error {
		txStore := store.NewInstance(tx)
		rec, err := txStore.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperrors.NotFound("заявка не найдена")
		}
		if !rec.IsNew() {
			return apperrors.InvalidState("принять можно только заявку в статусе NEW")
		}
		// строка должности блокируется до конца транзакции,
		// конкурентные приемы не превысят лимит вакансий
		position, err := positionstore.NewInstance(tx).GetByIDLocked(rec.PositionID)
		if err != nil {
			return err
		}
		if position == nil {
			return apperrors.NotFound("должность не найдена")
		}
		acceptedCount, err := txStore.CountAccepted(rec.PositionID, rec.DepartmentID)
		if err != nil {
			return err
		}
		if acceptedCount >= int64(position.MaxAllowed) {
			return apperrors.CapacityExceeded("все вакансии по должности заняты")
		}
		updMap := map[string]interface{}{
			"status":          models.EmployeeStatusAccepted,
			"tariff_rate":     *request.TariffRate,
			"employment_date": dateutils.CurrentISODate(),
			"personal_number": rec.ID,
		}
		err = txStore.Update(id, updMap)
		if err != nil {
			return err
		}
		accepted = *rec
		return nil
	})
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		WithField("position_id", accepted.PositionID).
		Info("кандидат принят на должность")
	i.notify("Кандидат принят",
		fmt.Sprintf("Кандидат %s %s принят на должность", accepted.FirstName, accepted.LastName))
	i.hub.Publish(watch.Event{Entity: watch.EntityEmployee, Action: watch.ActionUpdated, ID: id})
	return nil
}

func (i impl) Reject(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("заявка не найдена")
	}
	if !rec.IsNew() {
		return apperrors.InvalidState("отклонить можно только заявку в статусе NEW")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("заявка кандидата отклонена")
	i.notify("Заявка отклонена",
		fmt.Sprintf("Заявка кандидата %s %s отклонена", rec.FirstName, rec.LastName))
	i.hub.Publish(watch.Event{Entity: watch.EntityEmployee, Action: watch.ActionDeleted, ID: id})
	return nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("сотрудник не найден")
	}
	if !rec.IsAccepted() {
		return apperrors.InvalidState("удалить можно только принятого сотрудника")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("сотрудник удален")
	i.hub.Publish(watch.Event{Entity: watch.EntityEmployee, Action: watch.ActionDeleted, ID: id})
	return nil
}

func (i impl) Get(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, apperrors.NotFound("сотрудник не найден")
	}
	view := employeeapimodels.EmployeeConvert(*rec)
	languages, err := i.languageStore.ListForEmployee(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	for _, lang := range languages {
		view.Languages = append(view.Languages, employeeapimodels.EmployeeLanguageConvert(lang))
	}
	return view, nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, int64, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, apperrors.Validation("некорректный статус")
	}
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec))
	}
	return list, rowCount, nil
}

// checkReferences проверяет, что должность и подразделение существуют
// и должность относится к указанному подразделению.
func (i impl) checkReferences(request employeeapimodels.ApplicationData) (*dbmodels.Position, error) {
	department, err := i.departmentStore.GetByID(request.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperrors.NotFound("подразделение не найдено")
	}
	position, err := i.positionStore.GetByID(request.PositionID)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, apperrors.NotFound("должность не найдена")
	}
	if position.DepartmentID != request.DepartmentID {
		return nil, apperrors.Validation("должность не относится к указанному подразделению")
	}
	return position, nil
}

func (i impl) notify(subject, message string) {
	if smtp.Instance == nil {
		return
	}
	from := config.Conf.Smtp.From
	// ошибка отправки не прерывает операцию, она уже записана в лог
	_ = smtp.Instance.SendEMail(from, from, message, subject)
}

func checkBusinessRules(request employeeapimodels.ApplicationData, position *dbmodels.Position) error {
	switch validators.IsValidAge(request.DateOfBirth, request.Gender) {
	case validators.Indeterminate:
		return apperrors.Validation("некорректная дата рождения")
	case validators.Invalid:
		return apperrors.Validation("возраст кандидата превышает пенсионный")
	}
	if !validators.IsEducationValidForPosition(request.EducationLevel, position).IsValid() {
		return apperrors.Validation("должность требует высшего образования")
	}
	switch validators.IsValidExperience(request.TotalExperience, request.AcademicExperience, position) {
	case validators.Indeterminate:
		return apperrors.Validation("не указан стаж")
	case validators.Invalid:
		return apperrors.Validation("стаж не соответствует требованиям должности")
	}
	return nil
}

func convertLanguages(items []employeeapimodels.LanguageItem) []dbmodels.EmployeeLanguage {
	recList := make([]dbmodels.EmployeeLanguage, 0, len(items))
	for _, item := range items {
		recList = append(recList, dbmodels.EmployeeLanguage{
			LanguageID:       item.LanguageID,
			ProficiencyLevel: item.ProficiencyLevel,
		})
	}
	return recList
}
