package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/internal/models"
	"blogapi/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Стаб сервиса статей с подменяемыми методами
type stubArticleService struct {
	published func(page, limit int) ([]*models.Article, models.Pagination, error)
	getByID   func(id int64) (*models.Article, error)
	search    func(f models.SearchFilter, page, limit int) ([]*models.Article, models.Pagination, error)
}

func (s *stubArticleService) ListFor(context.Context, *models.User) ([]*models.Article, error) {
	return nil, nil
}
func (s *stubArticleService) Create(context.Context, *models.User, models.ArticleInput) (*models.Article, error) {
	return nil, nil
}
func (s *stubArticleService) GetByID(_ context.Context, id int64) (*models.Article, error) {
	return s.getByID(id)
}
func (s *stubArticleService) Update(context.Context, *models.User, int64, models.ArticleInput) (*models.Article, error) {
	return nil, nil
}
func (s *stubArticleService) Delete(context.Context, *models.User, int64) error { return nil }
func (s *stubArticleService) Published(_ context.Context, page, limit int) ([]*models.Article, models.Pagination, error) {
	return s.published(page, limit)
}
func (s *stubArticleService) Search(_ context.Context, f models.SearchFilter, page, limit int) ([]*models.Article, models.Pagination, error) {
	return s.search(f, page, limit)
}

func TestParseLimit(t *testing.T) {
	cases := map[string]int{
		"":    10,
		"abc": 10,
		"0":   1,
		"-3":  1,
		"1":   1,
		"25":  25,
		"50":  50,
		"51":  50,
		"999": 50,
	}
	for raw, want := range cases {
		assert.Equal(t, want, parseLimit(raw), "limit=%q", raw)
	}
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, parsePage(""))
	assert.Equal(t, 1, parsePage("abc"))
	assert.Equal(t, 1, parsePage("0"))
	assert.Equal(t, 1, parsePage("-5"))
	assert.Equal(t, 7, parsePage("7"))
}

func TestPublishedNormalizesQuery(t *testing.T) {
	var gotPage, gotLimit int
	svc := &stubArticleService{
		published: func(page, limit int) ([]*models.Article, models.Pagination, error) {
			gotPage, gotLimit = page, limit
			return nil, models.NewPagination(page, limit, 0), nil
		},
	}
	h := NewArticleHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/published?page=abc&limit=51", nil)
	rec := httptest.NewRecorder()
	h.Published(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 50, gotLimit)

	// Пустой результат — это пустой массив, а не null.
	var body struct {
		Articles   []json.RawMessage `json:"articles"`
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Articles)
	assert.Len(t, body.Articles, 0)
	assert.Equal(t, 1, body.Pagination.CurrentPage)
}

func TestPublishedPaginationShape(t *testing.T) {
	svc := &stubArticleService{
		published: func(page, limit int) ([]*models.Article, models.Pagination, error) {
			return []*models.Article{{ID: 1, Title: "Первая"}}, models.NewPagination(page, limit, 21), nil
		},
	}
	h := NewArticleHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/published?page=2&limit=10", nil)
	rec := httptest.NewRecorder()
	h.Published(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Pagination.CurrentPage)
	assert.Equal(t, 10, body.Pagination.PerPage)
	assert.Equal(t, 21, body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasMore)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := &stubArticleService{
		getByID: func(id int64) (*models.Article, error) {
			return nil, services.ErrNotFound
		},
	}
	h := NewArticleHandler(svc)

	router := mux.NewRouter()
	router.HandleFunc("/api/articles/{id:[0-9]+}", h.GetByID).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Статья не найдена.", body["message"])
}

func TestSearchFilterParams(t *testing.T) {
	var got models.SearchFilter
	svc := &stubArticleService{
		search: func(f models.SearchFilter, page, limit int) ([]*models.Article, models.Pagination, error) {
			got = f
			return nil, models.NewPagination(page, limit, 0), nil
		},
	}
	h := NewSearchHandler(svc)

	// Имена параметров, которые шлёт фронтенд: q и category.
	req := httptest.NewRequest(http.MethodGet, "/api/articles/search?q=golang&category=3&free_only=1", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "golang", got.Query)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, 3, *got.CategoryID)
	assert.True(t, got.FreeOnly)

	// Фильтры эхом на верхнем уровне тела ответа.
	var body struct {
		SearchQuery string `json:"search_query"`
		CategoryID  *int   `json:"category_id"`
		FreeOnly    bool   `json:"free_only"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "golang", body.SearchQuery)
	require.NotNil(t, body.CategoryID)
	assert.Equal(t, 3, *body.CategoryID)
	assert.True(t, body.FreeOnly)

	// Развёрнутые имена принимаются как синонимы.
	req = httptest.NewRequest(http.MethodGet, "/api/articles/search?search=pgx&category_id=5", nil)
	rec = httptest.NewRecorder()
	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pgx", got.Query)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, 5, *got.CategoryID)
}

func TestRespondServiceError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrInvalidToken, http.StatusUnauthorized},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrAlreadyPurchased, http.StatusConflict},
		{&services.ValidationError{Message: "Некорректные данные запроса."}, http.StatusUnprocessableEntity},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		respondServiceError(rec, tc.err)
		assert.Equal(t, tc.code, rec.Code, "ошибка %v", tc.err)
	}
}
