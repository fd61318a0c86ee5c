package dict

import (
	"github.com/gofiber/fiber/v2"
	"hr-system-backend/controllers"
	dictionaryprovider "hr-system-backend/lib/dicts/dictionary"
	apimodels "hr-system-backend/models/api"
)

type dictionaryApiController struct {
	controllers.BaseAPIController
}

func InitDictionaryApiRouters(app *fiber.App) {
	controller := dictionaryApiController{}
	app.Route("all", func(router fiber.Router) {
		router.Get("", controller.dictionaryList)
	})
}

// @Summary Объединенный список справочников
// @Tags Справочник
// @Description Все справочники одним списком, клиент загружает его при старте
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DictionaryItem}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/all [get]
func (c *dictionaryApiController) dictionaryList(ctx *fiber.Ctx) error {
	list, err := dictionaryprovider.Instance.ListAll()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
