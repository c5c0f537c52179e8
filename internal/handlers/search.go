package handlers

import (
	"net/http"
	"strconv"

	"blogapi/internal/models"
	"blogapi/internal/services"
	helpers "blogapi/internal/utils/helpres"
)

type SearchHandler struct {
	svc services.ArticleService
}

func NewSearchHandler(svc services.ArticleService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Поиск статей по заголовку, тексту и автору (без аутентификации)
// @Tags articles
// @Produce json
// @Param q query string false "Строка поиска (синоним: search)"
// @Param category query int false "Фильтр по категории (синоним: category_id)"
// @Param status query string false "Статус (по умолчанию published)"
// @Param free_only query string false "Только бесплатные: 1"
// @Param page query int false "Номер страницы"
// @Param limit query int false "Размер страницы, 1..50"
// @Success 200 {object} map[string]interface{} "Статьи, пагинация и применённые фильтры"
// @Router /api/articles/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Фронтенд шлёт короткие имена q/category; развёрнутые
	// search/category_id принимаются как синонимы.
	query := q.Get("q")
	if query == "" {
		query = q.Get("search")
	}
	rawCategory := q.Get("category")
	if rawCategory == "" {
		rawCategory = q.Get("category_id")
	}

	filter := models.SearchFilter{
		Query:    query,
		Status:   q.Get("status"),
		FreeOnly: q.Get("free_only") == "1",
	}
	if rawCategory != "" {
		if id, err := strconv.Atoi(rawCategory); err == nil {
			filter.CategoryID = &id
		}
	}

	page := parsePage(q.Get("page"))
	limit := parseLimit(q.Get("limit"))

	articles, pagination, err := h.svc.Search(r.Context(), filter, page, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}

	// Применённые фильтры возвращаются на верхнем уровне тела ответа.
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"articles":     articles,
		"search_query": filter.Query,
		"category_id":  filter.CategoryID,
		"free_only":    filter.FreeOnly,
		"pagination":   pagination,
	})
}
