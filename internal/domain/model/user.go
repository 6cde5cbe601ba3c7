package model

import "time"

// User представляет пользователя бота, сохраняемого в базе данных.
// Запись создается (или обновляется) при команде /start и дополняется
// после завершения теста.
type User struct {
	UserID        int64     `json:"user_id"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	CreatedAt     time.Time `json:"created_at"`
	TestCompleted bool      `json:"test_completed"`
	LastTestScore *int      `json:"last_test_score,omitempty"`
}
