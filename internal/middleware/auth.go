package middleware

import (
	"context"
	"net/http"
	"strings"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/reqctx"
	"blogapi/internal/services"
	helpers "blogapi/internal/utils/helpres"

	"go.uber.org/zap"
)

type ContextKey string

const (
	ContextUser ContextKey = "user"
	ContextRole ContextKey = "role"
)

type AuthMiddleware struct {
	auth *services.AuthService
}

func NewAuthMiddleware(auth *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Require пускает дальше только запросы с валидным bearer-токеном.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		raw, ok := BearerToken(r)
		if !ok {
			logger.WithCtx(r.Context()).Warn("Auth: отсутствует bearer-токен",
				zap.String("path", r.URL.Path))
			helpers.Error(w, http.StatusUnauthorized, "Требуется аутентификация.")
			return
		}

		user, err := m.auth.ResolveToken(r.Context(), raw)
		if err != nil {
			logger.WithCtx(r.Context()).Warn("Auth: токен не резолвится",
				zap.Error(err))
			helpers.Error(w, http.StatusUnauthorized, "Недействительный токен.")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// Optional резолвит токен, если он есть, но никогда не отклоняет запрос:
// анонимные вызовы проходят без пользователя в контексте.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw, ok := BearerToken(r); ok {
			if user, err := m.auth.ResolveToken(r.Context(), raw); err == nil {
				r = r.WithContext(withUser(r.Context(), user))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// BearerToken извлекает токен из заголовка Authorization.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

func withUser(ctx context.Context, user *models.User) context.Context {
	ctx = context.WithValue(ctx, ContextUser, user)
	ctx = reqctx.WithUserID(ctx, user.ID)
	return context.WithValue(ctx, ContextRole, user.Role)
}

// UserFromContext возвращает аутентифицированного пользователя запроса.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(ContextUser).(*models.User)
	return user, ok
}
