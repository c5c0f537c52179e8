package services

import "errors"

// Таксономия ошибок сервисного слоя. Хендлеры переводят её в HTTP-статусы:
// ValidationError → 422, ErrInvalidCredentials/ErrInvalidToken → 401,
// ErrForbidden → 403, ErrNotFound → 404, ErrAlreadyPurchased → 409.
var (
	ErrNotFound           = errors.New("не найдено")
	ErrForbidden          = errors.New("доступ запрещён")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrInvalidToken       = errors.New("недействительный токен")
	ErrAlreadyPurchased   = errors.New("статья уже куплена")
)

// ValidationError несёт пофилдовые сообщения для ответа 422.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(fields map[string][]string) *ValidationError {
	return &ValidationError{Message: "Некорректные данные запроса.", Fields: fields}
}
