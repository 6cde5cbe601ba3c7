package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"ketobot/internal/app"
	"ketobot/internal/infra/logging"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/values.yaml"
	}

	logger, err := logging.Init("logs", os.Getenv("DEBUG") == "true")
	if err != nil {
		log.Fatalf("не удалось инициализировать логгер: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	application, err := app.NewApp(configPath, logger)
	if err != nil {
		logger.Fatal("не удалось создать приложение", zap.Error(err))
	}

	if err := application.ListenAndServe(); err != nil {
		logger.Fatal("приложение завершилось с ошибкой", zap.Error(err))
	}
}
