package ports

import (
	"context"

	"github.com/GoArmGo/TaskManager/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, id int64, user *domain.User) error

	// DeleteUserWithTasks удаляет задачи пользователя и самого пользователя
	// в одной транзакции, возвращает количество удалённых строк по обеим таблицам
	DeleteUserWithTasks(ctx context.Context, id int64) (tasksDeleted, usersDeleted int64, err error)

	ListTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error)
}

// TaskStorage определяет методы для взаимодействия с хранилищем задач
type TaskStorage interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, id int64) (*domain.Task, error)
	CreateTask(ctx context.Context, task *domain.Task) error
	UpdateTask(ctx context.Context, id int64, task *domain.Task) error
	DeleteTask(ctx context.Context, id int64) error
}
