package http

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse отправляет клиенту JSON с текстом ошибки и указанным статусом.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
