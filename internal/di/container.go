package di

import (
	"github.com/GoArmGo/TaskManager/internal/app"
	"github.com/GoArmGo/TaskManager/internal/config"
	"github.com/GoArmGo/TaskManager/internal/database/client"
	"github.com/GoArmGo/TaskManager/internal/database/storage"
	"github.com/GoArmGo/TaskManager/internal/logger"
	"github.com/GoArmGo/TaskManager/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (подключение + миграции)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.Gorm, slogger)
	taskStorage := storage.NewTaskStorage(dbClient.Gorm, slogger)

	// 4. Инициализация бизнес-логики (usecases)
	userUseCase := usecase.NewUserUseCase(userStorage, slogger)
	taskUseCase := usecase.NewTaskUseCase(taskStorage, userStorage, slogger)

	// 5. Сборка итогового приложения
	application := app.NewApp(cfg, slogger, dbClient.DB, userUseCase, taskUseCase)

	slogger.Info("all dependencies initialized")
	return application, nil
}
