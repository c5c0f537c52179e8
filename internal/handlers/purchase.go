package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/internal/logger"
	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/services"
	helpers "blogapi/internal/utils/helpres"

	"go.uber.org/zap"
)

type PurchaseHandler struct {
	svc services.PurchaseService
}

func NewPurchaseHandler(svc services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

// Create godoc
// @Summary Купить премиум-статью (mock-оплата, мгновенное завершение)
// @Tags purchases
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body purchaseRequest true "ID статьи"
// @Success 201 {object} map[string]interface{} "Покупка"
// @Failure 404 {string} string "Статья не найдена"
// @Failure 409 {string} string "Статья уже куплена"
// @Failure 422 {object} map[string]interface{} "Статья бесплатная"
// @Router /api/purchases [post]
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Требуется аутентификация.")
		return
	}

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при покупке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON.")
		return
	}

	purchase, err := h.svc.Purchase(r.Context(), user, req.ArticleID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Статья успешно куплена.",
		"purchase": purchase,
	})
}

// History godoc
// @Summary История покупок текущего пользователя
// @Tags purchases
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Покупки"
// @Router /api/purchases [get]
func (h *PurchaseHandler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Требуется аутентификация.")
		return
	}

	purchases, err := h.svc.History(r.Context(), user)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения истории покупок", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	if purchases == nil {
		purchases = []*models.Purchase{}
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"purchases": purchases})
}

// Status godoc
// @Summary Куплена ли статья текущим пользователем
// @Tags purchases
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} map[string]interface{} "Статус покупки"
// @Router /api/articles/{id}/purchase-status [get]
func (h *PurchaseHandler) Status(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Требуется аутентификация.")
		return
	}

	purchase, err := h.svc.Status(r.Context(), user, articleID(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Не куплено — purchase_info:false, как и при отсутствии записи в БД.
	if purchase == nil {
		helpers.JSON(w, http.StatusOK, map[string]interface{}{
			"purchased":     false,
			"purchase_info": false,
		})
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"purchased":     true,
		"purchase_info": purchase,
	})
}

// BatchStatus godoc
// @Summary Статус покупки для набора статей (токен необязателен)
// @Tags purchases
// @Accept json
// @Produce json
// @Param input body batchStatusRequest true "ID статей"
// @Success 200 {object} map[string]interface{} "Статусы по каждой статье"
// @Router /api/purchases/status [post]
func (h *PurchaseHandler) BatchStatus(w http.ResponseWriter, r *http.Request) {
	var req batchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при пакетной проверке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON.")
		return
	}

	// Без токена user == nil, сервис вернёт purchased:false по всем ID.
	user, _ := middleware.UserFromContext(r.Context())

	statuses, err := h.svc.BatchStatus(r.Context(), user, req.ArticleIDs)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"purchase_status": statuses})
}

type purchaseRequest struct {
	ArticleID int64 `json:"article_id"`
}

type batchStatusRequest struct {
	ArticleIDs []int64 `json:"article_ids"`
}
