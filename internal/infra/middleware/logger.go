package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"
)

// Logger возвращает middleware, логирующее входящие обновления Telegram:
// отправителя и действие (текст сообщения или данные callback'а).
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			fields := []zap.Field{zap.Int("update_id", c.Update().ID)}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}
			if msg := c.Message(); msg != nil && msg.Text != "" {
				fields = append(fields, zap.String("text", msg.Text))
			}
			if cb := c.Callback(); cb != nil {
				fields = append(fields, zap.String("callback", cb.Data))
			}
			logger.Debug("входящее обновление", fields...)
			return next(c)
		}
	}
}
