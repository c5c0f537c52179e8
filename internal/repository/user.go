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

// ErrNoRows возвращается репозиториями, когда запись не найдена.
// Сервисы переводят её в свою таксономию ошибок.
var ErrNoRows = errors.New("запись не найдена")

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	logger.Log.Info("Создание пользователя (repo)", zap.String("username", user.Username), zap.String("email", user.Email))
	query := `
	INSERT INTO users (username, email, password_hash, role)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// IsTaken проверяет, заняты ли email или username (общая проверка, как при регистрации).
func (r *UserRepository) IsTaken(ctx context.Context, email, username string) (bool, error) {
	logger.Log.Debug("Проверка email/username на уникальность (repo)", zap.String("email", email), zap.String("username", username))
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR username = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email, username).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки уникальности (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по email (repo)", zap.String("email", email))
	query := `SELECT id, username, email, password_hash, role, created_at, updated_at
	FROM users
	WHERE email = $1`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
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
		logger.Log.Error("Ошибка получения пользователя по email (repo)", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по ID (repo)", zap.Int("user_id", id))
	query := `SELECT id, username, email, password_hash, role, created_at, updated_at
	FROM users
	WHERE id = $1`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
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
		logger.Log.Error("Ошибка получения пользователя по ID (repo)", zap.Int("user_id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// ListAdmins используется скриптом создания администраторов.
func (r *UserRepository) ListAdmins(ctx context.Context) ([]*models.User, error) {
	query := `SELECT id, username, email, password_hash, role, created_at, updated_at
	FROM users
	WHERE role = 'admin'
	ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("Ошибка получения администраторов (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var admins []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, &u)
	}
	return admins, rows.Err()
}
