package middleware

import (
	"errors"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"
)

// Recover возвращает middleware, перехватывающее панику в обработчике.
// Паника преобразуется в ошибку, логируется и передается дальше по цепочке,
// чтобы бот продолжил обрабатывать следующие обновления.
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = errors.New("unknown panic")
					}
					logger.Error("паника в обработчике", zap.Error(e))
					err = e
				}
			}()
			return next(c)
		}
	}
}
