package handlers

import (
	"net/http"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/services"
	helpers "blogapi/internal/utils/helpres"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	svc *services.CategoryService
}

func NewCategoryHandler(svc *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List godoc
// @Summary Список категорий по алфавиту (без аутентификации)
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{} "Категории"
// @Router /api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения категорий", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
