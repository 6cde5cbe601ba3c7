package service

import (
	"context"
	"fmt"

	"ketobot/internal/domain/model"
	"ketobot/internal/domain/results/repository"
)

// ResultService содержит логику для работы с результатами тестов
type ResultService struct {
	resultRepo *repository.ResultRepository
}

// NewResultService создает новый экземпляр ResultService
func NewResultService(resultRepo *repository.ResultRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo}
}

// SaveResult сохраняет результат прохождения теста
func (s *ResultService) SaveResult(ctx context.Context, result model.TestResult) error {
	if err := s.resultRepo.InsertResult(ctx, result); err != nil {
		return fmt.Errorf("failed to save test result: %w", err)
	}
	return nil
}

// ListResults возвращает последние результаты тестов
func (s *ResultService) ListResults(ctx context.Context, limit int) ([]model.TestResult, error) {
	results, err := s.resultRepo.ListResults(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}
	return results, nil
}

// CountResults возвращает общее число пройденных тестов
func (s *ResultService) CountResults(ctx context.Context) (int, error) {
	count, err := s.resultRepo.CountResults(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count test results: %w", err)
	}
	return count, nil
}
