package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/TaskManager/internal/domain"
	"gorm.io/gorm"
)

// UserStorage реализует интерфейс ports.UserStorage с использованием GORM
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// ListUsers получает всех пользователей из БД.
// Пустая выборка не ошибка на этом уровне, политику решает usecase.
func (s *UserStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	result := s.db.WithContext(ctx).Order("id").Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении списка пользователей из БД: %w", result.Error)
	}
	return users, nil
}

// GetUserByID получает пользователя по ID, nil без ошибки если записи нет
func (s *UserStorage) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по ID из БД: %w", result.Error)
	}
	return &user, nil
}

// CreateUser вставляет нового пользователя.
// Уникальность username здесь не проверяется, конфликт отдаёт ошибку БД как есть.
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		return fmt.Errorf("ошибка при сохранении пользователя в БД: %w", result.Error)
	}
	return nil
}

// UpdateUser применяет к записи поля из user, включая неизменный username и slug
func (s *UserStorage) UpdateUser(ctx context.Context, id int64, user *domain.User) error {
	// map вместо структуры, чтобы нулевые значения (age=0) тоже записывались
	result := s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"username":  user.Username,
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
		"age":       user.Age,
		"slug":      user.Slug,
	})
	if result.Error != nil {
		return fmt.Errorf("ошибка при обновлении пользователя в БД: %w", result.Error)
	}
	return nil
}

// DeleteUserWithTasks удаляет все задачи пользователя и самого пользователя
// в одной транзакции: либо видны оба удаления, либо ни одного
func (s *UserStorage) DeleteUserWithTasks(ctx context.Context, id int64) (int64, int64, error) {
	start := time.Now()

	var tasksDeleted, usersDeleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ?", id).Delete(&domain.Task{})
		if res.Error != nil {
			return fmt.Errorf("удаление задач пользователя: %w", res.Error)
		}
		tasksDeleted = res.RowsAffected

		res = tx.Where("id = ?", id).Delete(&domain.User{})
		if res.Error != nil {
			return fmt.Errorf("удаление пользователя: %w", res.Error)
		}
		usersDeleted = res.RowsAffected
		return nil
	})
	if err != nil {
		s.logger.Error("failed to delete user with tasks", "user_id", id, "error", err)
		return 0, 0, fmt.Errorf("ошибка при каскадном удалении пользователя из БД: %w", err)
	}

	s.logger.Info("user and his tasks deleted",
		"user_id", id,
		"tasks_deleted", tasksDeleted,
		"users_deleted", usersDeleted,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return tasksDeleted, usersDeleted, nil
}

// ListTasksByUser получает все задачи конкретного пользователя
func (s *UserStorage) ListTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	var tasks []domain.Task
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tasks)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении задач пользователя из БД: %w", result.Error)
	}
	return tasks, nil
}
