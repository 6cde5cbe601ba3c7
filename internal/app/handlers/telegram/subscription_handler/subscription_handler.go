package subscription_handler

import (
	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"ketobot/internal/app/handlers/telegram/keyboards"
	"ketobot/internal/domain/messages"
)

// channel ссылается на канал по @username, Telegram резолвит его на своей стороне.
type channel string

func (c channel) Recipient() string { return string(c) }

// SubscriptionHandler проверяет подписку пользователя на канал.
// Любая ошибка запроса (например, бот не админ канала) трактуется как
// отсутствие подписки и не показывается пользователю как отдельная ошибка.
type SubscriptionHandler struct {
	channelUsername string
	channelURL      string
	logger          *zap.Logger
}

// NewSubscriptionHandler возвращает структуру обработчика
func NewSubscriptionHandler(channelUsername, channelURL string, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		channelUsername: channelUsername,
		channelURL:      channelURL,
		logger:          logger,
	}
}

// Handle обрабатывает нажатие кнопки проверки подписки
func (h *SubscriptionHandler) Handle(c telebot.Context) error {
	sender := c.Sender()

	member, err := c.Bot().ChatMemberOf(channel(h.channelUsername), sender)
	if err != nil {
		h.logger.Warn("ошибка проверки подписки, считаем что подписки нет",
			zap.Int64("user_id", sender.ID), zap.Error(err))
		return c.Edit(messages.SubscriptionCheckFailed, keyboards.Subscription(h.channelURL))
	}

	switch member.Role {
	case telebot.Member, telebot.Administrator, telebot.Creator:
		h.logger.Info("подписка подтверждена", zap.Int64("user_id", sender.ID))
		if err := c.Edit(messages.SubscriptionOK); err != nil {
			return err
		}
		return c.Send(messages.TestInvitation, keyboards.TestInvitation())
	default:
		h.logger.Info("подписка не найдена",
			zap.Int64("user_id", sender.ID), zap.String("role", string(member.Role)))
		return c.Edit(messages.SubscriptionMissing, keyboards.Subscription(h.channelURL))
	}
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *SubscriptionHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
