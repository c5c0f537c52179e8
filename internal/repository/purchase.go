package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogapi/internal/models"
)

// ErrDuplicatePurchase сигнализирует о срабатывании уникального ключа
// (user_id, article_id) — две одновременные покупки одной статьи.
var ErrDuplicatePurchase = errors.New("покупка уже существует")

type PurchaseRepo interface {
	Create(ctx context.Context, userID int, articleID int64, amount float64) (*models.Purchase, error)
	Exists(ctx context.Context, userID int, articleID int64) (bool, error)
	GetByUserAndArticle(ctx context.Context, userID int, articleID int64) (*models.Purchase, error)
	ListByUser(ctx context.Context, userID int) ([]*models.Purchase, error)
	StatusForArticles(ctx context.Context, userID int, articleIDs []int64) (map[int64]models.PurchaseStatus, error)
}

type purchaseRepo struct{ db *pgxpool.Pool }

func NewPurchaseRepo(db *pgxpool.Pool) PurchaseRepo { return &purchaseRepo{db: db} }

// Create вставляет покупку сразу в статусе completed.
// Окно гонки между предварительной проверкой и вставкой закрывает
// уникальный ключ: нарушение транслируется в ErrDuplicatePurchase.
func (r *purchaseRepo) Create(ctx context.Context, userID int, articleID int64, amount float64) (*models.Purchase, error) {
	const q = `
		INSERT INTO purchases (user_id, article_id, payment_method, amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, q, userID, articleID, models.PaymentMethodMock, amount, models.PurchaseCompleted).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicatePurchase
		}
		return nil, err
	}

	const sel = `
		SELECT p.id, p.user_id, p.article_id, p.purchase_date, p.payment_method,
		       p.amount, p.status, p.created_at, p.updated_at,
		       a.title AS article_title, a.price AS article_price, u.username AS buyer_username
		FROM purchases p
		LEFT JOIN articles a ON p.article_id = a.id
		LEFT JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`
	var p models.Purchase
	err = r.db.QueryRow(ctx, sel, id).Scan(
		&p.ID, &p.UserID, &p.ArticleID, &p.PurchaseDate, &p.PaymentMethod,
		&p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&p.ArticleTitle, &p.ArticlePrice, &p.BuyerUsername,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepo) Exists(ctx context.Context, userID int, articleID int64) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM purchases WHERE user_id = $1 AND article_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, q, userID, articleID).Scan(&exists)
	return exists, err
}

func (r *purchaseRepo) GetByUserAndArticle(ctx context.Context, userID int, articleID int64) (*models.Purchase, error) {
	const q = `
		SELECT id, user_id, article_id, purchase_date, payment_method, amount, status, created_at, updated_at
		FROM purchases
		WHERE user_id = $1 AND article_id = $2
	`
	var p models.Purchase
	err := r.db.QueryRow(ctx, q, userID, articleID).Scan(
		&p.ID, &p.UserID, &p.ArticleID, &p.PurchaseDate, &p.PaymentMethod,
		&p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUser возвращает историю покупок вместе с заголовком статьи и именем её автора.
func (r *purchaseRepo) ListByUser(ctx context.Context, userID int) ([]*models.Purchase, error) {
	const q = `
		SELECT p.id, p.user_id, p.article_id, p.purchase_date, p.payment_method,
		       p.amount, p.status, p.created_at, p.updated_at,
		       a.title AS article_title, a.price AS article_price, u.username AS author_username
		FROM purchases p
		LEFT JOIN articles a ON p.article_id = a.id
		LEFT JOIN users u ON a.user_id = u.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.ArticleID, &p.PurchaseDate, &p.PaymentMethod,
			&p.Amount, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.ArticleTitle, &p.ArticlePrice, &p.AuthorUsername,
		); err != nil {
			return nil, err
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// StatusForArticles отдаёт статусы покупок одним запросом с IN-списком.
// Ключи результата — только найденные article_id; отсутствующие
// дополняет сервис.
func (r *purchaseRepo) StatusForArticles(ctx context.Context, userID int, articleIDs []int64) (map[int64]models.PurchaseStatus, error) {
	const q = `
		SELECT article_id, purchase_date, amount, status
		FROM purchases
		WHERE user_id = $1 AND article_id = ANY($2)
	`
	rows, err := r.db.Query(ctx, q, userID, articleIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64]models.PurchaseStatus, len(articleIDs))
	for rows.Next() {
		var (
			articleID int64
			st        models.PurchaseStatus
		)
		if err := rows.Scan(&articleID, &st.PurchaseDate, &st.Amount, &st.Status); err != nil {
			return nil, err
		}
		st.Purchased = true
		result[articleID] = st
	}
	return result, rows.Err()
}
