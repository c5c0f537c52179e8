package models

import "time"

const (
	PurchaseCompleted = "completed"
	PurchasePending   = "pending"
	PurchaseCancelled = "cancelled"

	// Платёжный шлюз не подключён, все покупки проходят мгновенно.
	PaymentMethodMock = "mock_payment"
)

type Purchase struct {
	ID            int64     `json:"id"`
	UserID        int       `json:"user_id"`
	ArticleID     int64     `json:"article_id"`
	PurchaseDate  time.Time `json:"purchase_date"`
	PaymentMethod string    `json:"payment_method"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Денормализованные поля из LEFT JOIN; набор зависит от запроса.
	ArticleTitle   *string  `json:"article_title,omitempty"`
	ArticlePrice   *float64 `json:"article_price,omitempty"`
	AuthorUsername *string  `json:"author_username,omitempty"`
	BuyerUsername  *string  `json:"buyer_username,omitempty"`
}

// PurchaseStatus — статус покупки одной статьи для текущего пользователя.
type PurchaseStatus struct {
	Purchased    bool       `json:"purchased"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Amount       *float64   `json:"amount,omitempty"`
	Status       *string    `json:"status,omitempty"`
}
