package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/TaskManager/internal/core/ports"
	"github.com/GoArmGo/TaskManager/internal/domain"
	"github.com/gosimple/slug"
)

// userInteractor реализует UserUseCase поверх ports.UserStorage
type userInteractor struct {
	users  ports.UserStorage
	logger *slog.Logger
}

// NewUserUseCase создаёт новый экземпляр UserUseCase
func NewUserUseCase(users ports.UserStorage, logger *slog.Logger) UserUseCase {
	return &userInteractor{users: users, logger: logger}
}

func (uc *userInteractor) List(ctx context.Context) ([]domain.User, error) {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}
	return users, nil
}

func (uc *userInteractor) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (uc *userInteractor) Create(ctx context.Context, in CreateUserInput) error {
	user := domain.User{
		Username:  in.Username,
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Age:       in.Age,
		Slug:      slug.Make(in.Username),
	}
	if err := uc.users.CreateUser(ctx, &user); err != nil {
		return err
	}

	uc.logger.Info("user created", "username", user.Username, "slug", user.Slug)
	return nil
}

func (uc *userInteractor) Update(ctx context.Context, id int64, in UpdateUserInput) error {
	existing, err := uc.users.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}

	// username в схеме обновления нет, подставляем username найденного
	// пользователя, slug пересчитывается от него же
	updated := domain.User{
		Username:  existing.Username,
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Age:       in.Age,
		Slug:      slug.Make(existing.Username),
	}
	if err := uc.users.UpdateUser(ctx, id, &updated); err != nil {
		return err
	}

	uc.logger.Info("user updated", "user_id", id)
	return nil
}

func (uc *userInteractor) Delete(ctx context.Context, id int64) (int64, error) {
	existing, err := uc.users.GetUserByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, domain.ErrUserNotFound
	}

	tasksDeleted, usersDeleted, err := uc.users.DeleteUserWithTasks(ctx, id)
	if err != nil {
		return 0, err
	}

	uc.logger.Info("deleted tasks for user", "count", tasksDeleted, "user_id", id)
	uc.logger.Info("deleted user", "count", usersDeleted, "user_id", id)
	return tasksDeleted, nil
}

func (uc *userInteractor) TasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	tasks, err := uc.users.ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, domain.ErrNoUserTasks
	}
	return tasks, nil
}
