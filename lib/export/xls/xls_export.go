package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"hr-system-backend/lib/utils/dateutils"
	dbmodels "hr-system-backend/models/db"
)

type Provider interface {
	ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var employeeHeaders = []string{"ФИО", "Дата рождения", "Пол", "Подразделение", "Должность", "Образование", "Общий стаж", "Академический стаж", "Дата приема", "Тарифный разряд", "Табельный номер", "Статус"}

func (i impl) ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, employeeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeEmployeeData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Сотрудники")
	return f.WriteToBuffer()
}

func writeEmployeeData(f *excelize.File, sheet string, list []dbmodels.Employee, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(employeeHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%s %s", item.LastName, item.FirstName)); err != nil {
			return row, err
		}

		// "Дата рождения"
		col++
		if err := writeColumn(f, sheet, col, row, dateutils.FormatDateForDisplay(item.DateOfBirth)); err != nil {
			return row, err
		}

		// "Пол"
		col++
		if err := writeColumn(f, sheet, col, row, item.Gender.ToHuman()); err != nil {
			return row, err
		}

		// "Подразделение"
		col++
		if item.Department != nil {
			if err := writeColumn(f, sheet, col, row, item.Department.Name); err != nil {
				return row, err
			}
		}

		// "Должность"
		col++
		if item.Position != nil {
			if err := writeColumn(f, sheet, col, row, item.Position.Name); err != nil {
				return row, err
			}
		}

		// "Образование"
		col++
		if err := writeColumn(f, sheet, col, row, item.EducationLevel.ToHuman()); err != nil {
			return row, err
		}

		// "Общий стаж"
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalExperience); err != nil {
			return row, err
		}

		// "Академический стаж"
		col++
		if err := writeColumn(f, sheet, col, row, item.AcademicExperience); err != nil {
			return row, err
		}

		// "Дата приема"
		col++
		if item.EmploymentDate != nil {
			if err := writeColumn(f, sheet, col, row, dateutils.FormatDateForDisplay(*item.EmploymentDate)); err != nil {
				return row, err
			}
		}

		// "Тарифный разряд"
		col++
		if item.TariffRate != nil {
			if err := writeColumn(f, sheet, col, row, *item.TariffRate); err != nil {
				return row, err
			}
		}

		// "Табельный номер"
		col++
		if item.PersonalNumber != nil {
			if err := writeColumn(f, sheet, col, row, *item.PersonalNumber); err != nil {
				return row, err
			}
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}
	}
	return row, nil
}
