package app

import (
	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
	"blogapi/internal/repository"
	"blogapi/internal/routes"
	"blogapi/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(conn); err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	tokenRepo := repository.NewTokenRepository(conn)
	articleRepo := repository.NewArticleRepo(conn)
	categoryRepo := repository.NewCategoryRepository(conn)
	purchaseRepo := repository.NewPurchaseRepo(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo, tokenRepo)
	articleService := services.NewArticleService(articleRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	purchaseService := services.NewPurchaseService(purchaseRepo, articleRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	searchHandler := handlers.NewSearchHandler(articleService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	systemHandler := handlers.NewSystemHandler()

	authMW := middleware.NewAuthMiddleware(authService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authHandler, articleHandler, searchHandler, purchaseHandler, categoryHandler, systemHandler, authMW)

	return router, nil
}
