package diet_handler

import (
	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"ketobot/internal/domain/messages"
	"ketobot/internal/domain/quiz"
)

// DietHandler отправляет PDF с рационом после прохождения теста.
// Сначала итоговое сообщение переиздается без кнопки, затем уходит файл.
type DietHandler struct {
	engine  *quiz.Engine
	dietPDF string
	logger  *zap.Logger
}

// NewDietHandler возвращает структуру обработчика
func NewDietHandler(engine *quiz.Engine, dietPDF string, logger *zap.Logger) *DietHandler {
	return &DietHandler{engine: engine, dietPDF: dietPDF, logger: logger}
}

// Handle обрабатывает нажатие кнопки получения рациона
func (h *DietHandler) Handle(c telebot.Context) error {
	userID := c.Sender().ID
	outcome := h.engine.Deliver(userID)

	// Убираем кнопку, оставляя только текст результата.
	if err := c.Edit(outcome.Bucket.ResultText()); err != nil {
		h.logger.Warn("не удалось обновить сообщение с результатом",
			zap.Int64("user_id", userID), zap.Error(err))
	}

	doc := &telebot.Document{
		File:     telebot.FromDisk(h.dietPDF),
		FileName: messages.DietFileName,
		Caption:  messages.DietCaption,
	}
	if err := c.Send(doc); err != nil {
		h.logger.Error("не удалось отправить PDF с рационом",
			zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(messages.DietSendFailed)
	}
	return nil
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *DietHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
