package main

import (
	_ "blogapi/docs"
	"blogapi/internal/app"
	"blogapi/internal/config"
	"blogapi/internal/logger"
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Blog API
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @version 1.0
// @description Документация Blog API (регистрация, статьи, категории, покупки).
// @host localhost:8000
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("Ошибка загрузки конфига", zap.Error(err))
	}

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		logger.Log.Warn("Конфигурация", zap.String("warning", w))
	}
	if err != nil {
		logger.Log.Fatal("Невалидная конфигурация", zap.Error(err))
	}
	logger.Log.Info("Подключение к базе", zap.String("dsn", cfg.GetDSNSafe()))

	router, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации приложения", zap.Error(err))
	}

	logger.Log.Info("Сервер запущен", zap.String("port", cfg.Port))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
