package users_count_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	usersService "ketobot/internal/domain/users/service"
	httpError "ketobot/pkg/http"
)

// UsersCountHandler отдает общее количество пользователей бота
type UsersCountHandler struct {
	userService *usersService.UserService
}

// NewUsersCountHandler создает новый экземпляр обработчика
func NewUsersCountHandler(userService *usersService.UserService) *UsersCountHandler {
	return &UsersCountHandler{userService: userService}
}

// ServeHTTP метод для обработки запроса
func (h *UsersCountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.userService.CountUsers(r.Context())
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to count users: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]int{"total_users": count}); err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode response")
	}
}
