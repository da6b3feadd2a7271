package usecase

import (
	"context"

	"github.com/GoArmGo/TaskManager/internal/domain"
)

// CreateTaskInput — поля создания задачи.
// completed клиентом не задаётся, дефолт false живёт в хранилище.
type CreateTaskInput struct {
	Title    string
	Content  string
	Priority int
}

// UpdateTaskInput — поля обновления задачи.
// completed и user_id через этот путь не меняются.
type UpdateTaskInput struct {
	Title    string
	Content  string
	Priority int
}

// TaskUseCase определяет интерфейс бизнес-логики работы с задачами
type TaskUseCase interface {
	// List возвращает все задачи, ErrNoTasks если их нет
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID возвращает задачу по ID, ErrTaskNotFound если записи нет
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create создаёт задачу для существующего пользователя.
	// Если пользователя нет — ErrUserNotFound, запись не создаётся.
	Create(ctx context.Context, userID int64, in CreateTaskInput) error

	// Update обновляет title/content/priority существующей задачи.
	// slug пересчитывается из НОВОГО title, completed переносится из старой записи.
	Update(ctx context.Context, id int64, in UpdateTaskInput) error

	// Delete удаляет задачу по ID, ErrTaskNotFound если записи нет
	Delete(ctx context.Context, id int64) error
}
