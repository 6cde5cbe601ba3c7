package users_list_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ketobot/internal/domain/model"
	usersService "ketobot/internal/domain/users/service"
	httpError "ketobot/pkg/http"
)

// UsersListHandler отдает список пользователей бота
type UsersListHandler struct {
	userService *usersService.UserService
}

// NewUsersListHandler создает новый экземпляр обработчика
func NewUsersListHandler(userService *usersService.UserService) *UsersListHandler {
	return &UsersListHandler{userService: userService}
}

// ServeHTTP метод для обработки запроса
func (h *UsersListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list users: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string][]model.User{"users": users}); err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode response")
	}
}
