package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/TaskManager/internal/domain"
	"gorm.io/gorm"
)

// TaskStorage реализует интерфейс ports.TaskStorage с использованием GORM
type TaskStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewTaskStorage создает новый экземпляр TaskStorage
func NewTaskStorage(db *gorm.DB, logger *slog.Logger) *TaskStorage {
	return &TaskStorage{db: db, logger: logger}
}

// ListTasks получает все задачи из БД
func (s *TaskStorage) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	result := s.db.WithContext(ctx).Order("id").Find(&tasks)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении списка задач из БД: %w", result.Error)
	}
	return tasks, nil
}

// GetTaskByID получает задачу по ID, nil без ошибки если записи нет
func (s *TaskStorage) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	var task domain.Task
	result := s.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении задачи по ID из БД: %w", result.Error)
	}
	return &task, nil
}

// CreateTask вставляет новую задачу.
// completed не выставляется явно, работает дефолт false на уровне схемы.
func (s *TaskStorage) CreateTask(ctx context.Context, task *domain.Task) error {
	result := s.db.WithContext(ctx).Create(task)
	if result.Error != nil {
		return fmt.Errorf("ошибка при сохранении задачи в БД: %w", result.Error)
	}
	return nil
}

// UpdateTask применяет к записи поля из task, включая перенесённый completed и slug
func (s *TaskStorage) UpdateTask(ctx context.Context, id int64, task *domain.Task) error {
	// map вместо структуры, чтобы нулевые значения (priority=0, completed=false) тоже записывались
	result := s.db.WithContext(ctx).Model(&domain.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":     task.Title,
		"content":   task.Content,
		"priority":  task.Priority,
		"completed": task.Completed,
		"slug":      task.Slug,
	})
	if result.Error != nil {
		return fmt.Errorf("ошибка при обновлении задачи в БД: %w", result.Error)
	}
	return nil
}

// DeleteTask удаляет задачу по ID
func (s *TaskStorage) DeleteTask(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Task{})
	if result.Error != nil {
		return fmt.Errorf("ошибка при удалении задачи из БД: %w", result.Error)
	}
	return nil
}
