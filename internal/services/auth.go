package services

import (
	"context"
	"errors"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	users  UserRepo
	tokens TokenRepo
}

func NewAuthService(users UserRepo, tokens TokenRepo) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	IsTaken(ctx context.Context, email, username string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type TokenRepo interface {
	Insert(ctx context.Context, userID int, digest string) error
	DeleteByDigest(ctx context.Context, digest string) error
	GetUserByDigest(ctx context.Context, digest string) (*models.User, error)
}

type RegisterInput struct {
	Username             string
	Email                string
	Password             string
	PasswordConfirmation string
	Role                 string
}

// RegisterUser создаёт пользователя и сразу выдаёт ему токен.
func (s *AuthService) RegisterUser(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	logger.Log.Info("Регистрация пользователя (service)", zap.String("username", input.Username), zap.String("email", input.Email))

	fields := map[string][]string{}
	if input.Username == "" {
		fields["username"] = []string{"Имя пользователя обязательно"}
	}
	if input.Email == "" {
		fields["email"] = []string{"Email обязателен"}
	}
	if input.Password == "" {
		fields["password"] = []string{"Пароль обязателен"}
	} else if len(input.Password) < 8 {
		fields["password"] = []string{"Пароль должен содержать не менее 8 символов"}
	}
	if input.Password != input.PasswordConfirmation {
		fields["password_confirmation"] = []string{"Подтверждение пароля не совпадает"}
	}

	// Дубликат проверяется даже при других ошибках валидации, как единый
	// ответ 422 со всеми полями сразу.
	if input.Email != "" || input.Username != "" {
		taken, err := s.users.IsTaken(ctx, input.Email, input.Username)
		if err != nil {
			logger.Log.Error("Ошибка проверки уникальности (service)", zap.Error(err))
			return nil, "", err
		}
		if taken {
			fields["email"] = []string{"Этот email или имя пользователя уже заняты"}
		}
	}

	if len(fields) > 0 {
		logger.Log.Warn("Валидация регистрации не пройдена", zap.Int("field_errors", len(fields)))
		return nil, "", newValidationError(fields)
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, "", err
	}

	role := input.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         role,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		logger.Log.Error("Ошибка создания пользователя (service)", zap.Error(err))
		return nil, "", err
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Log.Info("Пользователь зарегистрирован (service)", zap.String("username", user.Username), zap.Int("user_id", user.ID))
	return user, token, nil
}

// LoginUser проверяет пароль и выдаёт новый токен.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	logger.Log.Info("Попытка входа (service)", zap.String("email", email))

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNoRows) {
		logger.Log.Warn("Пользователь не найден (service)", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Log.Warn("Неверный пароль (service)", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Log.Info("Вход выполнен (service)", zap.String("email", email), zap.String("role", user.Role))
	return user, token, nil
}

// Logout удаляет токен. Повторный выход с тем же токеном — no-op.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	return s.tokens.DeleteByDigest(ctx, utils.HashToken(rawToken))
}

// ResolveToken находит владельца предъявленного токена.
// Истечение не проверяется: токен действителен до явного выхода.
func (s *AuthService) ResolveToken(ctx context.Context, rawToken string) (*models.User, error) {
	user, err := s.tokens.GetUserByDigest(ctx, utils.HashToken(rawToken))
	if errors.Is(err, repository.ErrNoRows) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueToken(ctx context.Context, userID int) (string, error) {
	raw, digest, err := utils.NewToken()
	if err != nil {
		logger.Log.Error("Ошибка генерации токена", zap.Error(err))
		return "", err
	}
	if err := s.tokens.Insert(ctx, userID, digest); err != nil {
		logger.Log.Error("Ошибка сохранения токена (service)", zap.Error(err))
		return "", err
	}
	return raw, nil
}
