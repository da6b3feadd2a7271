package usecase

import (
	"context"

	"github.com/GoArmGo/TaskManager/internal/domain"
)

// CreateUserInput — поля создания пользователя.
// id генерируется базой, slug вычисляется из username.
type CreateUserInput struct {
	Username  string
	Firstname string
	Lastname  string
	Age       int
}

// UpdateUserInput — поля обновления пользователя.
// username в схеме обновления отсутствует и после создания не меняется.
type UpdateUserInput struct {
	Firstname string
	Lastname  string
	Age       int
}

// UserUseCase определяет интерфейс бизнес-логики работы с пользователями
type UserUseCase interface {
	// List возвращает всех пользователей, ErrNoUsers если их нет
	List(ctx context.Context) ([]domain.User, error)

	// GetByID возвращает пользователя по ID, ErrUserNotFound если записи нет
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create создаёт пользователя со slug, вычисленным из username.
	// Сгенерированный id наружу не возвращается.
	Create(ctx context.Context, in CreateUserInput) error

	// Update обновляет firstname/lastname/age существующего пользователя.
	// slug пересчитывается из СТАРОГО username, так как username не меняется.
	Update(ctx context.Context, id int64, in UpdateUserInput) error

	// Delete каскадно удаляет пользователя вместе с его задачами,
	// возвращает количество удалённых задач
	Delete(ctx context.Context, id int64) (tasksDeleted int64, err error)

	// TasksByUser возвращает все задачи пользователя, ErrNoUserTasks если их нет
	TasksByUser(ctx context.Context, userID int64) ([]domain.Task, error)
}
