package quiz

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ketobot/internal/domain/model"
	"ketobot/internal/domain/state"
)

// UserStatusUpdater обновляет запись пользователя после завершения теста.
type UserStatusUpdater interface {
	MarkTestCompleted(ctx context.Context, userID int64, score int) error
}

// ResultSaver сохраняет результат прохождения теста.
type ResultSaver interface {
	SaveResult(ctx context.Context, result model.TestResult) error
}

// Outcome — итог прохождения теста: суммарный балл и подобранный уровень.
type Outcome struct {
	TotalScore int
	Bucket     ResultBucket
}

// Step — результат обработки одного ответа: либо индекс следующего вопроса,
// либо итог теста, если вопросы закончились.
type Step struct {
	NextQuestion int
	Finished     bool
	Outcome      Outcome
}

// Engine ведет пользователя по тесту: хранит прогресс в Store,
// считает баллы и по завершении сохраняет результат в базу.
type Engine struct {
	states  state.Store
	users   UserStatusUpdater
	results ResultSaver
	logger  *zap.Logger
}

// NewEngine создает новый Engine.
func NewEngine(states state.Store, users UserStatusUpdater, results ResultSaver, logger *zap.Logger) *Engine {
	return &Engine{
		states:  states,
		users:   users,
		results: results,
		logger:  logger,
	}
}

// Start сбрасывает состояние пользователя и начинает тест с первого вопроса.
// Предыдущее состояние перезаписывается целиком.
func (e *Engine) Start(userID int64) error {
	return e.states.Set(userID, state.UserState{
		TestActive:      true,
		CurrentQuestion: 0,
		Answers:         []model.GivenAnswer{},
		TotalScore:      0,
	})
}

// Answer обрабатывает выбор варианта ответа. Если активной сессии нет,
// возвращается ErrStaleSession. После последнего вопроса тест завершается:
// результат сохраняется, состояние заменяется сокращенной формой.
func (e *Engine) Answer(ctx context.Context, userID int64, questionIndex, optionIndex int) (Step, error) {
	us, ok := e.states.Get(userID)
	if !ok || !us.TestActive {
		return Step{}, ErrStaleSession
	}

	if questionIndex < 0 || questionIndex >= len(Questions) {
		return Step{}, ErrBadAnswer
	}
	question := Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return Step{}, ErrBadAnswer
	}
	option := question.Options[optionIndex]

	us.Answers = append(us.Answers, model.GivenAnswer{
		QuestionIndex: questionIndex,
		AnswerIndex:   optionIndex,
		AnswerText:    option.Text,
		Score:         option.Score,
	})
	us.TotalScore += option.Score
	us.CurrentQuestion = questionIndex + 1

	if us.CurrentQuestion < len(Questions) {
		if err := e.states.Set(userID, us); err != nil {
			return Step{}, err
		}
		return Step{NextQuestion: us.CurrentQuestion}, nil
	}

	outcome := e.finish(ctx, userID, us)
	return Step{Finished: true, Outcome: outcome}, nil
}

// finish подбирает уровень результата, сохраняет результат в базу и
// заменяет состояние пользователя сокращенной формой для выдачи рациона.
// Ошибки персистентности не прерывают выдачу результата пользователю.
func (e *Engine) finish(ctx context.Context, userID int64, us state.UserState) Outcome {
	bucket := ResolveBucket(us.TotalScore)

	result := model.TestResult{
		UserID:           userID,
		TestID:           uuid.NewString(),
		Answers:          us.Answers,
		TotalScore:       us.TotalScore,
		ResultPercentage: bucket.Percentage,
		ResultTitle:      bucket.Title,
		CompletedAt:      time.Now().UTC(),
	}
	if err := e.results.SaveResult(ctx, result); err != nil {
		e.logger.Error("не удалось сохранить результат теста",
			zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := e.users.MarkTestCompleted(ctx, userID, us.TotalScore); err != nil {
		e.logger.Error("не удалось обновить статус пользователя",
			zap.Int64("user_id", userID), zap.Error(err))
	}

	if err := e.states.Set(userID, state.UserState{TotalScore: us.TotalScore}); err != nil {
		e.logger.Error("не удалось сохранить состояние пользователя",
			zap.Int64("user_id", userID), zap.Error(err))
	}

	return Outcome{TotalScore: us.TotalScore, Bucket: bucket}
}

// Deliver повторно подбирает уровень для выдачи рациона. Если состояние
// отсутствует, балл считается равным нулю — пользователь получает нижний
// уровень, а не ошибку; случай логируется как подозрительный.
func (e *Engine) Deliver(userID int64) Outcome {
	us, ok := e.states.Get(userID)
	if !ok {
		e.logger.Warn("выдача рациона без сохраненного состояния, балл принят за 0",
			zap.Int64("user_id", userID))
	}
	return Outcome{TotalScore: us.TotalScore, Bucket: ResolveBucket(us.TotalScore)}
}
