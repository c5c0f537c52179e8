package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogapi/internal/models"
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetByOwner(ctx context.Context, userID int) ([]*models.Article, error)
	GetAll(ctx context.Context) ([]*models.Article, error)
	GetPublished(ctx context.Context, limit, offset int) ([]*models.Article, int, error)
	Search(ctx context.Context, f models.SearchFilter, limit, offset int) ([]*models.Article, int, error)
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id int64) error
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

// joinedColumns — единый набор колонок для выдачи статьи наружу:
// сама строка плюс имя автора и название категории.
const joinedColumns = `
	a.id, a.user_id, a.title, a.content, a.category_id, a.status,
	a.is_premium, a.price, a.view_count, a.created_at, a.updated_at,
	u.username AS author_username, c.name AS category_name
`

const joinedFrom = `
	FROM articles a
	LEFT JOIN users u ON a.user_id = u.id
	LEFT JOIN categories c ON a.category_id = c.id
`

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID, &a.UserID, &a.Title, &a.Content, &a.CategoryID, &a.Status,
		&a.IsPremium, &a.Price, &a.ViewCount, &a.CreatedAt, &a.UpdatedAt,
		&a.AuthorUsername, &a.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) collect(ctx context.Context, sql string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	const q = `
		INSERT INTO articles (user_id, title, content, category_id, status, is_premium, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, q,
		a.UserID,
		a.Title,
		a.Content,
		a.CategoryID,
		a.Status,
		a.IsPremium,
		a.Price,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	q := `SELECT ` + joinedColumns + joinedFrom + ` WHERE a.id = $1`
	a, err := scanArticle(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRows
	}
	return a, err
}

func (r *articleRepo) GetByOwner(ctx context.Context, userID int) ([]*models.Article, error) {
	q := `SELECT ` + joinedColumns + joinedFrom + ` WHERE a.user_id = $1 ORDER BY a.created_at DESC`
	return r.collect(ctx, q, userID)
}

func (r *articleRepo) GetAll(ctx context.Context) ([]*models.Article, error) {
	q := `SELECT ` + joinedColumns + joinedFrom + ` ORDER BY a.created_at DESC`
	return r.collect(ctx, q)
}

func (r *articleRepo) GetPublished(ctx context.Context, limit, offset int) ([]*models.Article, int, error) {
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM articles a WHERE a.status = $1`, models.StatusPublished,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + joinedColumns + joinedFrom + `
		WHERE a.status = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3`
	list, err := r.collect(ctx, q, models.StatusPublished, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search выполняет COUNT и выборку по одному и тому же предикату.
func (r *articleRepo) Search(ctx context.Context, f models.SearchFilter, limit, offset int) ([]*models.Article, int, error) {
	where := []string{"a.status = $1"}
	args := []interface{}{f.Status}
	i := 2

	if f.Query != "" {
		where = append(where, fmt.Sprintf("(a.title LIKE $%d OR a.content LIKE $%d OR u.username LIKE $%d)", i, i+1, i+2))
		pattern := "%" + f.Query + "%"
		args = append(args, pattern, pattern, pattern)
		i += 3
	}
	if f.CategoryID != nil {
		where = append(where, fmt.Sprintf("a.category_id = $%d", i))
		args = append(args, *f.CategoryID)
		i++
	}
	if f.FreeOnly {
		where = append(where, "a.is_premium = FALSE")
	}

	predicate := " WHERE " + strings.Join(where, " AND ")

	var total int
	countQ := `SELECT COUNT(*)` + joinedFrom + predicate
	if err := r.db.QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + joinedColumns + joinedFrom + predicate +
		fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	list, err := r.collect(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *articleRepo) Update(ctx context.Context, a *models.Article) error {
	const q = `
		UPDATE articles
		SET title = $1,
		    content = $2,
		    category_id = $3,
		    status = $4,
		    is_premium = $5,
		    price = $6,
		    updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, q, a.Title, a.Content, a.CategoryID, a.Status, a.IsPremium, a.Price, a.ID)
	return err
}

func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}
