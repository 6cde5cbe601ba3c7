package model

import "time"

// GivenAnswer представляет один выбранный вариант ответа в рамках прохождения теста.
type GivenAnswer struct {
	QuestionIndex int    `json:"question_index"`
	AnswerIndex   int    `json:"answer_index"`
	AnswerText    string `json:"answer_text"`
	Score         int    `json:"score"`
}

// TestResult представляет результат одного полного прохождения теста.
// Запись создается ровно один раз при завершении теста и никогда не изменяется.
type TestResult struct {
	UserID           int64         `json:"user_id"`
	TestID           string        `json:"test_id"`
	Answers          []GivenAnswer `json:"answers"`
	TotalScore       int           `json:"total_score"`
	ResultPercentage int           `json:"result_percentage"`
	ResultTitle      string        `json:"result_title"`
	CompletedAt      time.Time     `json:"completed_at"`
}
