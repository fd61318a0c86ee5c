package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"hr-system-backend/lib/utils/dateutils"
	dbmodels "hr-system-backend/models/db"
)

// VacancyInfo - строка отчета по вакансиям
type VacancyInfo struct {
	DepartmentName string
	PositionName   string
	MaxAllowed     int
	Accepted       int64
}

func (v VacancyInfo) Free() int64 {
	free := int64(v.MaxAllowed) - v.Accepted
	if free < 0 {
		return 0
	}
	return free
}

// GenerateVacancyReport формирует pdf отчет по свободным вакансиям.
func GenerateVacancyReport(list []VacancyInfo) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateVacancyReport panic recover: %v", r)
		}
	}()
	pdf, lineHt, err := newReportPage("Отчет по вакансиям")
	if err != nil {
		return nil, err
	}
	widths := []float64{70, 60, 20, 20, 20}
	writeTableRow(pdf, lineHt, widths, true, "Подразделение", "Должность", "Штат", "Занято", "Свободно")
	for _, item := range list {
		writeTableRow(pdf, lineHt, widths, false,
			item.DepartmentName,
			item.PositionName,
			fmt.Sprintf("%d", item.MaxAllowed),
			fmt.Sprintf("%d", item.Accepted),
			fmt.Sprintf("%d", item.Free()),
		)
	}
	return output(pdf)
}

// GenerateEmployeesReport формирует pdf отчет по сотрудникам подразделения.
func GenerateEmployeesReport(departmentName string, list []dbmodels.Employee) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateEmployeesReport panic recover: %v", r)
		}
	}()
	pdf, lineHt, err := newReportPage(fmt.Sprintf("Сотрудники подразделения: %s", departmentName))
	if err != nil {
		return nil, err
	}
	widths := []float64{60, 50, 25, 30, 25}
	writeTableRow(pdf, lineHt, widths, true, "ФИО", "Должность", "Таб. номер", "Дата приема", "Разряд")
	for _, item := range list {
		employmentDate := ""
		if item.EmploymentDate != nil {
			employmentDate = dateutils.FormatDateForDisplay(*item.EmploymentDate)
		}
		personalNumber := ""
		if item.PersonalNumber != nil {
			personalNumber = *item.PersonalNumber
		}
		tariffRate := ""
		if item.TariffRate != nil {
			tariffRate = fmt.Sprintf("%d", *item.TariffRate)
		}
		positionName := ""
		if item.Position != nil {
			positionName = item.Position.Name
		}
		writeTableRow(pdf, lineHt, widths, false,
			fmt.Sprintf("%s %s", item.LastName, item.FirstName),
			positionName,
			personalNumber,
			employmentDate,
			tariffRate,
		)
	}
	return output(pdf)
}

func newReportPage(title string) (*fpdf.Fpdf, float64, error) {
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 14)
	if pdf.Error() != nil {
		return nil, 0, pdf.Error()
	}
	_, lineHt := pdf.GetFontSize()
	pdf.CellFormat(0, lineHt+2, title, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, lineHt+2, fmt.Sprintf("на %s", dateutils.FormatDateForDisplay(dateutils.CurrentISODate())), "", 1, "C", false, 0, "")
	pdf.Ln(lineHt)
	pdf.SetFont("Arial", "", 10)
	_, lineHt = pdf.GetFontSize()
	return pdf, lineHt + 3, nil
}

func writeTableRow(pdf *fpdf.Fpdf, lineHt float64, widths []float64, header bool, values ...string) {
	if header {
		pdf.SetFont("Arial", "B", 10)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	for idx, value := range values {
		pdf.CellFormat(widths[idx], lineHt, value, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(lineHt)
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
