package routes

import (
	"net/http"

	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
	helpers "blogapi/internal/utils/helpres"

	"github.com/gorilla/mux"
)

// InitRoutes регистрирует все маршруты API. Таблица плоская и явная:
// защищённые маршруты оборачиваются в authMW поштучно, общий Subrouter
// с middleware не используется, чтобы не ломать NotFoundHandler.
func InitRoutes(
	router *mux.Router,
	authHandler *handlers.AuthHandler,
	articleHandler *handlers.ArticleHandler,
	searchHandler *handlers.SearchHandler,
	purchaseHandler *handlers.PurchaseHandler,
	categoryHandler *handlers.CategoryHandler,
	systemHandler *handlers.SystemHandler,
	authMW *middleware.AuthMiddleware,
) {
	router.Use(middleware.RequestID, middleware.Logging, middleware.Recoverer)

	// Публичные маршруты.
	router.HandleFunc("/api/register", authHandler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/login", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/articles/published", articleHandler.Published).Methods(http.MethodGet)
	router.HandleFunc("/api/articles/search", searchHandler.Search).Methods(http.MethodGet)
	router.HandleFunc("/api/articles/{id:[0-9]+}", articleHandler.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/api/categories", categoryHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/api/test", systemHandler.Test).Methods(http.MethodGet)

	// Токен необязателен: аноним получает purchased:false по всем статьям.
	router.Handle("/api/purchases/status",
		authMW.Optional(http.HandlerFunc(purchaseHandler.BatchStatus))).Methods(http.MethodPost)

	// Маршруты, требующие bearer-токен.
	router.Handle("/api/logout",
		authMW.Require(http.HandlerFunc(authHandler.Logout))).Methods(http.MethodPost)
	router.Handle("/api/user",
		authMW.Require(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)
	router.Handle("/api/articles",
		authMW.Require(http.HandlerFunc(articleHandler.List))).Methods(http.MethodGet)
	router.Handle("/api/articles",
		authMW.Require(http.HandlerFunc(articleHandler.Create))).Methods(http.MethodPost)
	router.Handle("/api/articles/{id:[0-9]+}",
		authMW.Require(http.HandlerFunc(articleHandler.Update))).Methods(http.MethodPut)
	router.Handle("/api/articles/{id:[0-9]+}",
		authMW.Require(http.HandlerFunc(articleHandler.Delete))).Methods(http.MethodDelete)
	router.Handle("/api/articles/{id:[0-9]+}/purchase-status",
		authMW.Require(http.HandlerFunc(purchaseHandler.Status))).Methods(http.MethodGet)
	router.Handle("/api/purchases",
		authMW.Require(http.HandlerFunc(purchaseHandler.Create))).Methods(http.MethodPost)
	router.Handle("/api/purchases",
		authMW.Require(http.HandlerFunc(purchaseHandler.History))).Methods(http.MethodGet)

	// Неизвестный путь отвечает сводкой API, а не пустым 404.
	router.NotFoundHandler = http.HandlerFunc(systemHandler.Index)
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.JSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	})
}
