package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/internal/logger"
	"blogapi/internal/middleware"
	"blogapi/internal/services"
	helpers "blogapi/internal/utils/helpres"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerRequest true "Данные регистрации"
// @Success 201 {object} map[string]interface{} "Пользователь и токен"
// @Failure 422 {object} map[string]interface{} "Ошибки валидации"
// @Router /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON.")
		return
	}

	user, token, err := h.authService.RegisterUser(r.Context(), services.RegisterInput{
		Username:             req.Username,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Role:                 req.Role,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Регистрация завершена.",
		"user":    user,
		"token":   token,
	})
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} map[string]interface{} "Пользователь и токен"
// @Failure 401 {string} string "Неверный email или пароль"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON.")
		return
	}

	if req.Email == "" || req.Password == "" {
		helpers.Validation(w, "Email и пароль обязательны.", nil)
		return
	}

	user, token, err := h.authService.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка входа", zap.String("email", req.Email), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Вход выполнен.",
		"user":    user,
		"token":   token,
	})
}

// Logout godoc
// @Summary Выход (удаление токена)
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {string} string "Выход выполнен"
// @Failure 401 {string} string "Требуется аутентификация"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	raw, ok := middleware.BearerToken(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Требуется аутентификация.")
		return
	}

	if err := h.authService.Logout(r.Context(), raw); err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка при удалении токена", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка при удалении токена.")
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Выход выполнен."})
}

// Me godoc
// @Summary Получить текущего пользователя
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Пользователь"
// @Failure 401 {string} string "Недействительный токен"
// @Router /api/user [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Недействительный токен.")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
