package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ketobot/internal/domain/model"
)

// UserRepository реализация хранилища пользователей поверх PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertUser создает пользователя или обновляет его анкетные поля.
// Поле last_test_score при повторном /start не трогается.
func (r *UserRepository) UpsertUser(ctx context.Context, user model.User) error {
	query := `
        INSERT INTO users (user_id, username, first_name, last_name, created_at, test_completed)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id) DO UPDATE
        SET username = EXCLUDED.username,
            first_name = EXCLUDED.first_name,
            last_name = EXCLUDED.last_name,
            created_at = EXCLUDED.created_at,
            test_completed = EXCLUDED.test_completed
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID, user.Username, user.FirstName, user.LastName, user.CreatedAt, user.TestCompleted)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// MarkTestCompleted помечает пользователя как прошедшего тест и сохраняет балл
func (r *UserRepository) MarkTestCompleted(ctx context.Context, userID int64, score int) error {
	_, err := r.db.Exec(ctx,
		"UPDATE users SET test_completed = TRUE, last_test_score = $2 WHERE user_id = $1",
		userID, score)
	if err != nil {
		return fmt.Errorf("failed to mark test completed: %w", err)
	}
	return nil
}

// ListUsers возвращает всех пользователей, отсортированных по дате создания
func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `
        SELECT user_id, username, first_name, last_name, created_at, test_completed, last_test_score
        FROM users
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Username, &u.FirstName, &u.LastName,
			&u.CreatedAt, &u.TestCompleted, &u.LastTestScore); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// ListRecipientIDs возвращает идентификаторы всех пользователей для рассылки
func (r *UserRepository) ListRecipientIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, "SELECT user_id FROM users ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipients: %w", err)
	}
	return ids, nil
}

// CountUsers возвращает общее число пользователей
func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountCompleted возвращает число пользователей, прошедших тест
func (r *UserRepository) CountCompleted(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE test_completed = TRUE").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completed users: %w", err)
	}
	return count, nil
}

// CountCreatedSince возвращает число пользователей, созданных после указанного момента
func (r *UserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE created_at >= $1", since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count new users: %w", err)
	}
	return count, nil
}
