package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"hr-system-backend/controllers"
	reportprovider "hr-system-backend/lib/report"
	apimodels "hr-system-backend/models/api"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("report", func(router fiber.Router) {
		router.Get("vacancy", controller.vacancyReport)
		router.Get("employees/:id", controller.employeesReport)
		router.Get("export", controller.employeesExport)
	})
}

// @Summary Отчет по вакансиям
// @Tags Отчеты
// @Description Pdf отчет по свободным вакансиям всех подразделений
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} application/pdf
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/vacancy [get]
func (c *reportApiController) vacancyReport(ctx *fiber.Ctx) error {
	fileName, body, err := reportprovider.Instance.VacancyReport(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, err)
	}
	return sendFile(ctx, fileName, body, "application/pdf")
}

// @Summary Отчет по сотрудникам подразделения
// @Tags Отчеты
// @Description Pdf отчет по сотрудникам подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "department ID"
// @Success 200 {file} application/pdf
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/employees/{id} [get]
func (c *reportApiController) employeesReport(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	fileName, body, err := reportprovider.Instance.EmployeesReport(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return sendFile(ctx, fileName, body, "application/pdf")
}

// @Summary Выгрузка сотрудников в xlsx
// @Tags Отчеты
// @Description Выгрузка сотрудников в xlsx, параметр department_id опционален
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   department_id		query		string	false	"department ID"
// @Success 200 {file} application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/export [get]
func (c *reportApiController) employeesExport(ctx *fiber.Ctx) error {
	departmentID := ctx.Query("department_id")
	fileName, body, err := reportprovider.Instance.EmployeesExport(ctx.UserContext(), departmentID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return sendFile(ctx, fileName, body, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func sendFile(ctx *fiber.Ctx, fileName string, body []byte, contentType string) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
