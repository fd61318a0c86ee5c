package reportprovider

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"hr-system-backend/db"
	"hr-system-backend/lib/apperrors"
	departmentstore "hr-system-backend/lib/dicts/department/store"
	positionstore "hr-system-backend/lib/dicts/position/store"
	employeestore "hr-system-backend/lib/employee/store"
	pdfexport "hr-system-backend/lib/export/pdf"
	xlsexport "hr-system-backend/lib/export/xls"
	filestorage "hr-system-backend/lib/file-storage"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Provider interface {
	// VacancyReport - pdf отчет по свободным вакансиям всех подразделений.
	VacancyReport(ctx context.Context) (fileName string, body []byte, err error)
	// EmployeesReport - pdf отчет по сотрудникам подразделения.
	EmployeesReport(ctx context.Context, departmentID string) (fileName string, body []byte, err error)
	// EmployeesExport - выгрузка сотрудников в xlsx, пустой departmentID - все подразделения.
	EmployeesExport(ctx context.Context, departmentID string) (fileName string, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		departmentStore: departmentstore.NewInstance(db.DB),
		positionStore:   positionstore.NewInstance(db.DB),
		employeeStore:   employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	departmentStore departmentstore.Provider
	positionStore   positionstore.Provider
	employeeStore   employeestore.Provider
}

func (i impl) VacancyReport(ctx context.Context) (string, []byte, error) {
	departments, err := i.departmentStore.List()
	if err != nil {
		return "", nil, err
	}
	reportData := []pdfexport.VacancyInfo{}
	for _, department := range departments {
		positions, err := i.positionStore.ListByDepartment(department.ID)
		if err != nil {
			return "", nil, err
		}
		for _, position := range positions {
			accepted, err := i.employeeStore.CountAccepted(position.ID, department.ID)
			if err != nil {
				return "", nil, err
			}
			reportData = append(reportData, pdfexport.VacancyInfo{
				DepartmentName: department.Name,
				PositionName:   position.Name,
				MaxAllowed:     position.MaxAllowed,
				Accepted:       accepted,
			})
		}
	}
	body, err := pdfexport.GenerateVacancyReport(reportData)
	if err != nil {
		return "", nil, err
	}
	fileName := fmt.Sprintf("vacancy_report_%s.pdf", time.Now().Format("20060102_150405"))
	i.upload(ctx, fileName, body, pdfContentType)
	return fileName, body, nil
}

func (i impl) EmployeesReport(ctx context.Context, departmentID string) (string, []byte, error) {
	department, err := i.departmentStore.GetByID(departmentID)
	if err != nil {
		return "", nil, err
	}
	if department == nil {
		return "", nil, apperrors.NotFound("подразделение не найдено")
	}
	list, err := i.employeeStore.ListAllByDepartment(departmentID)
	if err != nil {
		return "", nil, err
	}
	body, err := pdfexport.GenerateEmployeesReport(department.Name, list)
	if err != nil {
		return "", nil, err
	}
	fileName := fmt.Sprintf("employees_report_%s.pdf", time.Now().Format("20060102_150405"))
	i.upload(ctx, fileName, body, pdfContentType)
	return fileName, body, nil
}

func (i impl) EmployeesExport(ctx context.Context, departmentID string) (string, []byte, error) {
	if departmentID != "" {
		department, err := i.departmentStore.GetByID(departmentID)
		if err != nil {
			return "", nil, err
		}
		if department == nil {
			return "", nil, apperrors.NotFound("подразделение не найдено")
		}
	}
	list, err := i.employeeStore.ListAllByDepartment(departmentID)
	if err != nil {
		return "", nil, err
	}
	buf, err := xlsexport.Instance.ExportEmployeeList(list)
	if err != nil {
		return "", nil, err
	}
	fileName := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("20060102_150405"))
	body := buf.Bytes()
	i.upload(ctx, fileName, body, xlsxContentType)
	return fileName, body, nil
}

func (i impl) upload(ctx context.Context, fileName string, body []byte, contentType string) {
	if filestorage.Instance == nil {
		return
	}
	err := filestorage.Instance.UploadReport(ctx, fileName, body, contentType)
	if err != nil {
		// отчет уже сформирован, ошибка выгрузки не мешает отдать его клиенту
		log.WithError(err).
			WithField("file_name", fileName).
			Error("ошибка выгрузки отчета в хранилище")
	}
}
