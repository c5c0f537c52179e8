package repository

import (
	"context"

	"blogapi/internal/logger"
	"blogapi/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM categories ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("Ошибка получения категорий (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			logger.Log.Error("Ошибка сканирования категории (repo)", zap.Error(err))
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}
