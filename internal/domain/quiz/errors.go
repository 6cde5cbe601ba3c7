package quiz

import "errors"

var (
	// ErrStaleSession возвращается при ответе без активной сессии теста.
	// Пользователю нужно начать тест заново через /start.
	ErrStaleSession = errors.New("активная сессия теста не найдена")
	// ErrBadAnswer возвращается, если индексы в callback-токене выходят
	// за пределы банка вопросов.
	ErrBadAnswer = errors.New("некорректные индексы ответа")
)
