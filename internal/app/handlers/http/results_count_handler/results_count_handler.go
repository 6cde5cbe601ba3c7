package results_count_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	resultsService "ketobot/internal/domain/results/service"
	httpError "ketobot/pkg/http"
)

// ResultsCountHandler отдает количество пройденных тестов
type ResultsCountHandler struct {
	resultService *resultsService.ResultService
}

// NewResultsCountHandler создает новый экземпляр обработчика
func NewResultsCountHandler(resultService *resultsService.ResultService) *ResultsCountHandler {
	return &ResultsCountHandler{resultService: resultService}
}

// ServeHTTP метод для обработки запроса
func (h *ResultsCountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.resultService.CountResults(r.Context())
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to count test results: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]int{"total_tests": count}); err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode response")
	}
}
