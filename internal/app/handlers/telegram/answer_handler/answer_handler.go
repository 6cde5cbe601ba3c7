package answer_handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"ketobot/internal/app/handlers/telegram/keyboards"
	"ketobot/internal/domain/messages"
	"ketobot/internal/domain/quiz"
)

// AnswerHandler обрабатывает ответы на вопросы теста: передает выбор движку
// и показывает либо следующий вопрос, либо итоговый результат.
type AnswerHandler struct {
	engine *quiz.Engine
	logger *zap.Logger
}

// NewAnswerHandler возвращает структуру обработчика
func NewAnswerHandler(engine *quiz.Engine, logger *zap.Logger) *AnswerHandler {
	return &AnswerHandler{engine: engine, logger: logger}
}

// Handle обрабатывает выбор варианта ответа. Индексы вопроса и варианта
// уже разобраны диспетчером из callback-токена.
func (h *AnswerHandler) Handle(c telebot.Context, questionIndex, optionIndex int) error {
	userID := c.Sender().ID

	step, err := h.engine.Answer(context.Background(), userID, questionIndex, optionIndex)
	if err != nil {
		if errors.Is(err, quiz.ErrStaleSession) {
			return c.Edit(messages.TestNotFound)
		}
		if errors.Is(err, quiz.ErrBadAnswer) {
			h.logger.Warn("некорректный callback-токен ответа",
				zap.Int64("user_id", userID),
				zap.Int("question", questionIndex), zap.Int("option", optionIndex))
			return nil
		}
		h.logger.Error("ошибка обработки ответа", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}

	if !step.Finished {
		return c.Edit(quiz.QuestionText(step.NextQuestion, messages.TestHeader), keyboards.Question(step.NextQuestion))
	}
	return c.Edit(step.Outcome.Bucket.ResultText(), keyboards.GetDiet())
}
