package start_handler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"ketobot/internal/app/handlers/telegram/keyboards"
	"ketobot/internal/domain/messages"
	usersService "ketobot/internal/domain/users/service"
)

// StartHandler обрабатывает команду /start: сохраняет пользователя,
// отправляет приветствие с фото и приглашение подписаться на канал.
type StartHandler struct {
	userService  *usersService.UserService
	welcomePhoto string
	channelURL   string
	logger       *zap.Logger
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(userService *usersService.UserService, welcomePhoto, channelURL string, logger *zap.Logger) *StartHandler {
	return &StartHandler{
		userService:  userService,
		welcomePhoto: welcomePhoto,
		channelURL:   channelURL,
		logger:       logger,
	}
}

// Handle метод, который будет использоваться для обработки команды /start
func (h *StartHandler) Handle(c telebot.Context) error {
	sender := c.Sender()

	// Если у пользователя нет username, используем имя.
	username := sender.Username
	if username == "" {
		username = sender.FirstName
	}

	ctx := context.Background()
	if err := h.userService.RegisterUser(ctx, sender.ID, username, sender.FirstName, sender.LastName); err != nil {
		h.logger.Error("не удалось сохранить пользователя",
			zap.Int64("user_id", sender.ID), zap.Error(err))
	}

	photo := &telebot.Photo{
		File:    telebot.FromDisk(h.welcomePhoto),
		Caption: messages.Welcome,
	}
	if err := c.Send(photo); err != nil {
		h.logger.Error("не удалось отправить приветственное фото", zap.Error(err))
		// Если фото не отправилось, отправляем хотя бы текст.
		if err := c.Send(messages.Welcome); err != nil {
			return err
		}
	}

	// Пауза перед вторым сообщением, чтобы приветствие успело прочитаться.
	time.Sleep(5 * time.Second)

	return c.Send(messages.SubscriptionPrompt, keyboards.Subscription(h.channelURL))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
