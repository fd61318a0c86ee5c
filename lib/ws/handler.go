package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"hr-system-backend/lib/watch"
	"hr-system-backend/middleware"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		userID := middleware.GetUserID(ctx)
		ctx.Locals("userID", userID)
		return ctx.Next()
	})
	app.Get("/", websocket.New(watchHandler))
}

// @Summary Уведомления об изменениях
// @Tags Websocket Уведомления
// @Description Поток уведомлений об изменениях справочников и сотрудников
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} watch.Event
// @Failure 400
// @Failure 403
// @Failure 500
// @router /api/v1/ws [get]
func watchHandler(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	logger := log.WithField("user_id", userID)
	subscriptionID, events := watch.Instance.Subscribe()
	defer watch.Instance.Unsubscribe(subscriptionID)
	logger.Info("открыто ws соединение")

	// чтение нужно только для отслеживания закрытия соединения клиентом
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			logger.Info("ws соединение закрыто клиентом")
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := c.WriteJSON(event); err != nil {
				logger.WithError(err).Warn("ошибка отправки события в ws")
				return
			}
		}
	}
}
