package start_test_handler

import (
	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"ketobot/internal/app/handlers/telegram/keyboards"
	"ketobot/internal/domain/messages"
	"ketobot/internal/domain/quiz"
)

// StartTestHandler запускает тест: сбрасывает состояние пользователя
// и показывает первый вопрос.
type StartTestHandler struct {
	engine *quiz.Engine
	logger *zap.Logger
}

// NewStartTestHandler возвращает структуру обработчика
func NewStartTestHandler(engine *quiz.Engine, logger *zap.Logger) *StartTestHandler {
	return &StartTestHandler{engine: engine, logger: logger}
}

// Handle обрабатывает нажатие кнопки запуска теста
func (h *StartTestHandler) Handle(c telebot.Context) error {
	userID := c.Sender().ID
	if err := h.engine.Start(userID); err != nil {
		h.logger.Error("не удалось начать тест", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return c.Edit(quiz.QuestionText(0, messages.TestHeader), keyboards.Question(0))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartTestHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
