package models

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Article struct {
	ID         int64     `json:"id"`
	UserID     int       `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID *int      `json:"category_id"`
	Status     string    `json:"status"`
	IsPremium  bool      `json:"is_premium"`
	Price      float64   `json:"price"`
	ViewCount  int       `json:"view_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Денормализованные поля из LEFT JOIN (могут отсутствовать).
	AuthorUsername *string `json:"author_username"`
	CategoryName   *string `json:"category_name"`
}

// swagger:model ArticleInput
type ArticleInput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID int    `json:"category_id"`
	// Необязательные поля: при обновлении отсутствие означает
	// «оставить сохранённое значение».
	Status    *string  `json:"status,omitempty"`
	IsPremium *bool    `json:"is_premium,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

// SearchFilter — AND-комбинируемые фильтры поиска статей.
type SearchFilter struct {
	Query      string
	CategoryID *int
	Status     string
	FreeOnly   bool
}

type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasMore     bool `json:"has_more"`
}

func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage: page,
		PerPage:     limit,
		Total:       total,
		TotalPages:  totalPages,
		HasMore:     page < totalPages,
	}
}
