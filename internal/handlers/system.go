package handlers

import (
	"net/http"
	"time"

	helpers "blogapi/internal/utils/helpres"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Test godoc
// @Summary Проверка работоспособности API
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервер работает"
// @Router /api/test [get]
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message":   "API работает",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Index отвечает на любой неизвестный путь сводкой доступных эндпоинтов.
func (h *SystemHandler) Index(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Blog API Server",
		"version": "1.0",
		"available_endpoints": map[string]string{
			"POST /api/register":                     "Регистрация",
			"POST /api/login":                        "Вход",
			"POST /api/logout":                       "Выход (токен)",
			"GET /api/user":                          "Текущий пользователь (токен)",
			"GET /api/articles":                      "Свои статьи, для админа — все (токен)",
			"POST /api/articles":                     "Создать статью (токен)",
			"GET /api/articles/published":            "Опубликованные статьи",
			"GET /api/articles/search":               "Поиск статей",
			"GET /api/articles/{id}":                 "Статья по ID",
			"PUT /api/articles/{id}":                 "Обновить статью (токен)",
			"DELETE /api/articles/{id}":              "Удалить статью (токен)",
			"GET /api/categories":                    "Категории",
			"POST /api/purchases":                    "Купить статью (токен)",
			"GET /api/purchases":                     "История покупок (токен)",
			"GET /api/articles/{id}/purchase-status": "Статус покупки (токен)",
			"POST /api/purchases/status":             "Статусы покупок списка статей",
		},
	})
}
