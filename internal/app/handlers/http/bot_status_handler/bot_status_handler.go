package bot_status_handler

import (
	"encoding/json"
	"net/http"

	httpError "ketobot/pkg/http"
)

// BotStatusHandler отдает текущий статус Telegram-бота
type BotStatusHandler struct {
	isRunning func() bool
}

// NewBotStatusHandler создает новый экземпляр обработчика
func NewBotStatusHandler(isRunning func() bool) *BotStatusHandler {
	return &BotStatusHandler{isRunning: isRunning}
}

// ServeHTTP метод для обработки запроса
func (h *BotStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := "stopped"
	message := "Бот не запущен"
	if h.isRunning() {
		status = "running"
		message = "Telegram бот запущен"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  status,
		"message": message,
	}); err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode response")
	}
}
