package results_list_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ketobot/internal/domain/model"
	resultsService "ketobot/internal/domain/results/service"
	httpError "ketobot/pkg/http"
)

// Отдаем не более 50 последних результатов.
const resultsLimit = 50

// ResultsListHandler отдает последние результаты тестов
type ResultsListHandler struct {
	resultService *resultsService.ResultService
}

// NewResultsListHandler создает новый экземпляр обработчика
func NewResultsListHandler(resultService *resultsService.ResultService) *ResultsListHandler {
	return &ResultsListHandler{resultService: resultService}
}

// ServeHTTP метод для обработки запроса
func (h *ResultsListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.ListResults(r.Context(), resultsLimit)
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list test results: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string][]model.TestResult{"test_results": results}); err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode response")
	}
}
