package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/TaskManager/internal/config"
	"github.com/GoArmGo/TaskManager/internal/handler"
	"github.com/GoArmGo/TaskManager/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает все маршруты сервиса
func NewRouter(
	cfg *config.Config,
	userUseCase usecase.UserUseCase,
	taskUseCase usecase.TaskUseCase,
	logger *slog.Logger,
) *chi.Mux {
	userHandler := handler.NewUserHandler(userUseCase, logger)
	taskHandler := handler.NewTaskHandler(taskUseCase, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(handler.RequestLogger(logger))

	r.Get("/", handler.Welcome(logger))

	r.Route("/user", func(r chi.Router) {
		r.Get("/", userHandler.AllUsers)
		// литеральный сегмент, user_id приходит в строке запроса
		r.Get("/user_id/tasks", userHandler.TasksByUserID)
		r.Get("/{user_id}", userHandler.UserByID)
		r.Post("/create", userHandler.CreateUser)
		r.Put("/update", userHandler.UpdateUser)
		r.Delete("/delete", userHandler.DeleteUser)
	})

	r.Route("/task", func(r chi.Router) {
		r.Get("/", taskHandler.AllTasks)
		r.Get("/{task_id}", taskHandler.TaskByID)
		r.Post("/create", taskHandler.CreateTask)
		r.Put("/update", taskHandler.UpdateTask)
		r.Delete("/delete", taskHandler.DeleteTask)
	})

	return r
}

// runServer запускает HTTP сервер и останавливает его по отмене контекста
func runServer(
	ctx context.Context,
	cfg *config.Config,
	userUseCase usecase.UserUseCase,
	taskUseCase usecase.TaskUseCase,
	logger *slog.Logger,
) error {
	r := NewRouter(cfg, userUseCase, taskUseCase, logger)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("termination signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
