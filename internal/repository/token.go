package repository

import (
	"context"
	"errors"

	"blogapi/internal/logger"
	"blogapi/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TokenRepository struct {
	db *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: db}
}

// Insert сохраняет дайджест токена, привязанный к пользователю.
func (r *TokenRepository) Insert(ctx context.Context, userID int, digest string) error {
	logger.Log.Debug("Сохранение токена (repo)", zap.Int("user_id", userID))
	query := `INSERT INTO personal_access_tokens (user_id, name, token) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, userID, models.TokenName, digest)
	if err != nil {
		logger.Log.Error("Ошибка сохранения токена (repo)", zap.Error(err))
	}
	return err
}

// DeleteByDigest удаляет токен при выходе. Отсутствие строки не считается ошибкой.
func (r *TokenRepository) DeleteByDigest(ctx context.Context, digest string) error {
	query := `DELETE FROM personal_access_tokens WHERE token = $1`
	_, err := r.db.Exec(ctx, query, digest)
	if err != nil {
		logger.Log.Error("Ошибка удаления токена (repo)", zap.Error(err))
	}
	return err
}

// GetUserByDigest резолвит предъявленный токен в пользователя.
// Несуществующий, удалённый и опечатанный токены неразличимы: во всех
// случаях возвращается ErrNoRows.
func (r *TokenRepository) GetUserByDigest(ctx context.Context, digest string) (*models.User, error) {
	query := `
	SELECT u.id, u.username, u.email, u.password_hash, u.role, u.created_at, u.updated_at
	FROM users u
	JOIN personal_access_tokens t ON u.id = t.user_id
	WHERE t.token = $1 AND t.name = $2`

	var user models.User
	err := r.db.QueryRow(ctx, query, digest, models.TokenName).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRows
	}
	if err != nil {
		logger.Log.Error("Ошибка резолва токена (repo)", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
