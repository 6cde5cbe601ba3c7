package health_handler

import (
	"encoding/json"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler проверяет доступность базы данных и статус бота
type HealthHandler struct {
	db        *pgxpool.Pool
	isRunning func() bool
}

// NewHealthHandler создает новый экземпляр обработчика
func NewHealthHandler(db *pgxpool.Pool, isRunning func() bool) *HealthHandler {
	return &HealthHandler{db: db, isRunning: isRunning}
}

// ServeHTTP метод для обработки запроса
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if err := h.db.Ping(r.Context()); err != nil {
		dbStatus = "disconnected"
	}

	botStatus := "stopped"
	if h.isRunning() {
		botStatus = "running"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":       "healthy",
		"database":     dbStatus,
		"telegram_bot": botStatus,
		"message":      "API is working properly",
	})
}
