package service

import (
	"context"
	"fmt"
	"time"

	"ketobot/internal/domain/model"
	"ketobot/internal/domain/users/repository"
)

// UserService содержит логику бизнес-операций для пользователей
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService создает новый экземпляр UserService
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser создает или обновляет пользователя при команде /start
func (s *UserService) RegisterUser(ctx context.Context, userID int64, username, firstName, lastName string) error {
	user := model.User{
		UserID:        userID,
		Username:      username,
		FirstName:     firstName,
		LastName:      lastName,
		CreatedAt:     time.Now().UTC(),
		TestCompleted: false,
	}
	if err := s.userRepo.UpsertUser(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// MarkTestCompleted помечает пользователя как прошедшего тест
func (s *UserService) MarkTestCompleted(ctx context.Context, userID int64, score int) error {
	if err := s.userRepo.MarkTestCompleted(ctx, userID, score); err != nil {
		return fmt.Errorf("failed to mark test completed: %w", err)
	}
	return nil
}

// ListUsers возвращает всех пользователей
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListRecipientIDs возвращает идентификаторы всех получателей рассылки
func (s *UserService) ListRecipientIDs(ctx context.Context) ([]int64, error) {
	ids, err := s.userRepo.ListRecipientIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	return ids, nil
}

// CountUsers возвращает общее число пользователей
func (s *UserService) CountUsers(ctx context.Context) (int, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountCompleted возвращает число пользователей, прошедших тест
func (s *UserService) CountCompleted(ctx context.Context) (int, error) {
	count, err := s.userRepo.CountCompleted(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed users: %w", err)
	}
	return count, nil
}

// CountCreatedSince возвращает число пользователей, созданных после указанного момента
func (s *UserService) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	count, err := s.userRepo.CountCreatedSince(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count new users: %w", err)
	}
	return count, nil
}
