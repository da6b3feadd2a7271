package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/TaskManager/internal/core/ports"
	"github.com/GoArmGo/TaskManager/internal/domain"
	"github.com/gosimple/slug"
)

// taskInteractor реализует TaskUseCase поверх ports.TaskStorage.
// Для проверки существования владельца задачи нужен ещё и ports.UserStorage.
type taskInteractor struct {
	tasks  ports.TaskStorage
	users  ports.UserStorage
	logger *slog.Logger
}

// NewTaskUseCase создаёт новый экземпляр TaskUseCase
func NewTaskUseCase(tasks ports.TaskStorage, users ports.UserStorage, logger *slog.Logger) TaskUseCase {
	return &taskInteractor{tasks: tasks, users: users, logger: logger}
}

func (uc *taskInteractor) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := uc.tasks.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, domain.ErrNoTasks
	}
	return tasks, nil
}

func (uc *taskInteractor) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := uc.tasks.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (uc *taskInteractor) Create(ctx context.Context, userID int64, in CreateTaskInput) error {
	// задача без существующего владельца не создаётся
	owner, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if owner == nil {
		return domain.ErrUserNotFound
	}

	task := domain.Task{
		Title:    in.Title,
		Content:  in.Content,
		Priority: in.Priority,
		Slug:     slug.Make(in.Title),
		UserID:   userID,
	}
	if err := uc.tasks.CreateTask(ctx, &task); err != nil {
		return err
	}

	uc.logger.Info("task created", "title", task.Title, "slug", task.Slug, "user_id", userID)
	return nil
}

func (uc *taskInteractor) Update(ctx context.Context, id int64, in UpdateTaskInput) error {
	existing, err := uc.tasks.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrTaskNotFound
	}

	// completed в схеме обновления нет, переносим значение обновляемой задачи;
	// slug, в отличие от пользователя, пересчитывается из нового title
	updated := domain.Task{
		Title:     in.Title,
		Content:   in.Content,
		Priority:  in.Priority,
		Completed: existing.Completed,
		Slug:      slug.Make(in.Title),
	}
	if err := uc.tasks.UpdateTask(ctx, id, &updated); err != nil {
		return err
	}

	uc.logger.Info("task updated", "task_id", id)
	return nil
}

func (uc *taskInteractor) Delete(ctx context.Context, id int64) error {
	existing, err := uc.tasks.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrTaskNotFound
	}

	if err := uc.tasks.DeleteTask(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("task deleted", "task_id", id)
	return nil
}
