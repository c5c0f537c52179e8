package handlers

import (
	"errors"
	"net/http"

	"blogapi/internal/services"
	helpers "blogapi/internal/utils/helpres"
)

// respondServiceError переводит таксономию сервисных ошибок в HTTP-статусы.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.Validation(w, verr.Message, verr.Fields)
	case errors.Is(err, services.ErrInvalidCredentials):
		helpers.Error(w, http.StatusUnauthorized, "Неверный email или пароль.")
	case errors.Is(err, services.ErrInvalidToken):
		helpers.Error(w, http.StatusUnauthorized, "Недействительный токен.")
	case errors.Is(err, services.ErrForbidden):
		helpers.Error(w, http.StatusForbidden, "Недостаточно прав для этого действия.")
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, "Статья не найдена.")
	case errors.Is(err, services.ErrAlreadyPurchased):
		helpers.Error(w, http.StatusConflict, "Эта статья уже куплена.")
	default:
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера.")
	}
}
