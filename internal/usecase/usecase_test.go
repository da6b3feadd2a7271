package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/GoArmGo/TaskManager/internal/database/storage"
	"github.com/GoArmGo/TaskManager/internal/domain"
	"github.com/GoArmGo/TaskManager/internal/usecase"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	userUC usecase.UserUseCase
	taskUC usecase.TaskUseCase
	users  *storage.UserStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Task{}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := storage.NewUserStorage(db, logger)
	tasks := storage.NewTaskStorage(db, logger)

	return &fixture{
		users:  users,
		userUC: usecase.NewUserUseCase(users, logger),
		taskUC: usecase.NewTaskUseCase(tasks, users, logger),
	}
}

func (f *fixture) createUser(t *testing.T, username string) *domain.User {
	t.Helper()
	require.NoError(t, f.userUC.Create(context.Background(), usecase.CreateUserInput{
		Username: username, Firstname: "First", Lastname: "Last", Age: 30,
	}))
	us, err := f.users.ListUsers(context.Background())
	require.NoError(t, err)
	return &us[len(us)-1]
}

func TestUserList_EmptyIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.userUC.List(context.Background())
	require.ErrorIs(t, err, domain.ErrNoUsers)
}

func TestUserGetByID_Missing(t *testing.T) {
	f := newFixture(t)

	_, err := f.userUC.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserCreate_SlugFromUsername(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.userUC.Create(context.Background(), usecase.CreateUserInput{
		Username: "Alice Smith", Firstname: "Alice", Lastname: "Smith", Age: 30,
	}))

	users, err := f.userUC.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "alice-smith", users[0].Slug)
}

func TestUserUpdate_SlugFromOldUsername(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "alice")

	require.NoError(t, f.userUC.Update(context.Background(), u.ID, usecase.UpdateUserInput{
		Firstname: "Renamed", Lastname: "Person", Age: 31,
	}))

	got, err := f.userUC.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	// username не обновляется, slug пересчитан от прежнего username
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "alice", got.Slug)
	require.Equal(t, "Renamed", got.Firstname)
	require.Equal(t, 31, got.Age)
}

func TestUserUpdate_Missing(t *testing.T) {
	f := newFixture(t)

	err := f.userUC.Update(context.Background(), 99, usecase.UpdateUserInput{Firstname: "X"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDelete_CascadesTasks(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "alice")

	for _, title := range []string{"one", "two"} {
		require.NoError(t, f.taskUC.Create(context.Background(), u.ID, usecase.CreateTaskInput{Title: title}))
	}

	tasksDeleted, err := f.userUC.Delete(context.Background(), u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, tasksDeleted)

	_, err = f.userUC.GetByID(context.Background(), u.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.userUC.TasksByUser(context.Background(), u.ID)
	require.ErrorIs(t, err, domain.ErrNoUserTasks)
}

func TestUserDelete_Missing(t *testing.T) {
	f := newFixture(t)

	_, err := f.userUC.Delete(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestTasksByUser_EmptyIsNotFound(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "alice")

	_, err := f.userUC.TasksByUser(context.Background(), u.ID)
	require.ErrorIs(t, err, domain.ErrNoUserTasks)
}

func TestTaskList_EmptyIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.taskUC.List(context.Background())
	require.ErrorIs(t, err, domain.ErrNoTasks)
}

func TestTaskCreate_MissingUserWritesNothing(t *testing.T) {
	f := newFixture(t)

	err := f.taskUC.Create(context.Background(), 99, usecase.CreateTaskInput{Title: "orphan"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.taskUC.List(context.Background())
	require.ErrorIs(t, err, domain.ErrNoTasks)
}

func TestTaskCreate_SlugAndCompletedDefault(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "alice")

	require.NoError(t, f.taskUC.Create(context.Background(), u.ID, usecase.CreateTaskInput{
		Title: "Buy milk", Content: "2%", Priority: 1,
	}))

	tasks, err := f.taskUC.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "buy-milk", tasks[0].Slug)
	require.False(t, tasks[0].Completed)
	require.Equal(t, u.ID, tasks[0].UserID)
}

func TestTaskUpdate_SlugFromNewTitleCompletedCarried(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "alice")

	require.NoError(t, f.taskUC.Create(context.Background(), u.ID, usecase.CreateTaskInput{Title: "Old title"}))
	tasks, err := f.taskUC.List(context.Background())
	require.NoError(t, err)
	id := tasks[0].ID

	require.NoError(t, f.taskUC.Update(context.Background(), id, usecase.UpdateTaskInput{
		Title: "New title", Content: "text", Priority: 2,
	}))

	got, err := f.taskUC.GetByID(context.Background(), id)
	require.NoError(t, err)
	// в отличие от пользователя, slug считается от нового title
	require.Equal(t, "new-title", got.Slug)
	require.Equal(t, "New title", got.Title)
	// completed переносится как было, публичного способа его поменять нет
	require.False(t, got.Completed)
	require.Equal(t, u.ID, got.UserID)
}

func TestTaskUpdate_Missing(t *testing.T) {
	f := newFixture(t)

	err := f.taskUC.Update(context.Background(), 99, usecase.UpdateTaskInput{Title: "X"})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskDelete(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "alice")

	require.NoError(t, f.taskUC.Create(context.Background(), u.ID, usecase.CreateTaskInput{Title: "gone"}))
	tasks, err := f.taskUC.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, f.taskUC.Delete(context.Background(), tasks[0].ID))

	_, err = f.taskUC.GetByID(context.Background(), tasks[0].ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskDelete_Missing(t *testing.T) {
	f := newFixture(t)

	err := f.taskUC.Delete(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}
