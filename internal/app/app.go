package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/TaskManager/internal/config"
	"github.com/GoArmGo/TaskManager/internal/usecase"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Config      *config.Config
	logger      *slog.Logger
	db          *sqlx.DB
	userUseCase usecase.UserUseCase
	taskUseCase usecase.TaskUseCase
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	db *sqlx.DB,
	userUseCase usecase.UserUseCase,
	taskUseCase usecase.TaskUseCase) *App {
	return &App{
		Config:      cfg,
		logger:      logger,
		db:          db,
		userUseCase: userUseCase,
		taskUseCase: taskUseCase,
	}
}

func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, a.Config, a.userUseCase, a.taskUseCase, a.logger); err != nil {
		return err
	}

	a.logger.Info("shutting down application")

	if err := a.Shutdown(); err != nil {
		a.logger.Error("shutdown error", "error", err)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
