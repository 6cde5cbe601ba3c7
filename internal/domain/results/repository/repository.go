package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ketobot/internal/domain/model"
)

// ResultRepository хранилище результатов тестов поверх PostgreSQL.
// Таблица test_results — append-only: записи не обновляются и не удаляются.
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository создает новый экземпляр ResultRepository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

// InsertResult сохраняет результат прохождения теста
func (r *ResultRepository) InsertResult(ctx context.Context, result model.TestResult) error {
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	query := `
        INSERT INTO test_results (user_id, test_id, answers, total_score, result_percentage, result_title, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err = r.db.Exec(ctx, query,
		result.UserID, result.TestID, answers, result.TotalScore,
		result.ResultPercentage, result.ResultTitle, result.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to insert test result: %w", err)
	}
	return nil
}

// ListResults возвращает результаты тестов, начиная с последних
func (r *ResultRepository) ListResults(ctx context.Context, limit int) ([]model.TestResult, error) {
	query := `
        SELECT user_id, test_id, answers, total_score, result_percentage, result_title, completed_at
        FROM test_results
        ORDER BY completed_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}
	defer rows.Close()

	var results []model.TestResult
	for rows.Next() {
		var res model.TestResult
		var answers []byte
		if err := rows.Scan(&res.UserID, &res.TestID, &answers, &res.TotalScore,
			&res.ResultPercentage, &res.ResultTitle, &res.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan test result: %w", err)
		}
		if err := json.Unmarshal(answers, &res.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate test results: %w", err)
	}
	return results, nil
}

// CountResults возвращает общее число пройденных тестов
func (r *ResultRepository) CountResults(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM test_results").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count test results: %w", err)
	}
	return count, nil
}
