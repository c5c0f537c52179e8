package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"blogapi/internal/logger"
	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/services"
	helpers "blogapi/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List godoc
// @Summary Список статей: администратор видит все, остальные — свои
// @Tags articles
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Статьи"
// @Failure 401 {string} string "Требуется аутентификация"
// @Router /api/articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Требуется аутентификация.")
		return
	}

	articles, err := h.svc.ListFor(r.Context(), user)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения списка статей", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

// Create godoc
// @Summary Создать статью (владелец — вызывающий)
// @Tags articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.ArticleInput true "Данные статьи"
// @Success 201 {object} map[string]interface{} "Созданная статья"
// @Failure 422 {object} map[string]interface{} "Ошибки валидации"
// @Router /api/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Требуется аутентификация.")
		return
	}

	var input models.ArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при создании статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON.")
		return
	}

	article, err := h.svc.Create(r.Context(), user, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Статья создана.",
		"article": article,
	})
}

// GetByID godoc
// @Summary Статья по ID (без аутентификации, контент отдаётся целиком)
// @Tags articles
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} map[string]interface{} "Статья"
// @Failure 404 {string} string "Статья не найдена"
// @Router /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := articleID(r)

	article, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"article": article})
}

// Update godoc
// @Summary Обновить статью (владелец или администратор)
// @Tags articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID статьи"
// @Param input body models.ArticleInput true "Новые данные"
// @Success 200 {object} map[string]interface{} "Обновлённая статья"
// @Failure 403 {string} string "Недостаточно прав"
// @Failure 404 {string} string "Статья не найдена"
// @Router /api/articles/{id} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Требуется аутентификация.")
		return
	}

	var input models.ArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при обновлении статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON.")
		return
	}

	article, err := h.svc.Update(r.Context(), user, articleID(r), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Статья обновлена.",
		"article": article,
	})
}

// Delete godoc
// @Summary Удалить статью (владелец или администратор)
// @Tags articles
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {string} string "Статья удалена"
// @Failure 403 {string} string "Недостаточно прав"
// @Failure 404 {string} string "Статья не найдена"
// @Router /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Требуется аутентификация.")
		return
	}

	if err := h.svc.Delete(r.Context(), user, articleID(r)); err != nil {
		respondServiceError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Статья удалена."})
}

// Published godoc
// @Summary Опубликованные статьи с пагинацией (без аутентификации)
// @Tags articles
// @Produce json
// @Param page query int false "Номер страницы (с 1)"
// @Param limit query int false "Размер страницы, 1..50"
// @Success 200 {object} map[string]interface{} "Статьи и пагинация"
// @Router /api/articles/published [get]
func (h *ArticleHandler) Published(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))
	limit := parseLimit(r.URL.Query().Get("limit"))

	articles, pagination, err := h.svc.Published(r.Context(), page, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"articles":   articles,
		"pagination": pagination,
	})
}

func articleID(r *http.Request) int64 {
	// Маршрут матчится по {id:[0-9]+}, Atoi здесь не может упасть.
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func parsePage(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseLimit нормализует размер страницы: нечисловое значение — дефолт,
// числовое зажимается в [1, 50].
func parseLimit(v string) int {
	if v == "" {
		return defaultPageSize
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultPageSize
	}
	if n < 1 {
		return 1
	}
	if n > maxPageSize {
		return maxPageSize
	}
	return n
}
