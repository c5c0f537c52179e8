package services

import (
	"context"
	"errors"
	"strings"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/repository"

	"go.uber.org/zap"
)

type ArticleService interface {
	ListFor(ctx context.Context, caller *models.User) ([]*models.Article, error)
	Create(ctx context.Context, caller *models.User, input models.ArticleInput) (*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Update(ctx context.Context, caller *models.User, id int64, input models.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, caller *models.User, id int64) error
	Published(ctx context.Context, page, limit int) ([]*models.Article, models.Pagination, error)
	Search(ctx context.Context, f models.SearchFilter, page, limit int) ([]*models.Article, models.Pagination, error)
}

type articleService struct {
	repo repository.ArticleRepo
}

func NewArticleService(repo repository.ArticleRepo) ArticleService {
	return &articleService{repo: repo}
}

// ListFor: администратор видит все статьи, остальные — только свои.
func (s *articleService) ListFor(ctx context.Context, caller *models.User) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка статей", zap.Int("user_id", caller.ID), zap.String("role", caller.Role))

	if caller.IsAdmin() {
		return s.repo.GetAll(ctx)
	}
	return s.repo.GetByOwner(ctx, caller.ID)
}

func validateArticleInput(input models.ArticleInput) *ValidationError {
	fields := map[string][]string{}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = []string{"Заголовок обязателен"}
	}
	if strings.TrimSpace(input.Content) == "" {
		fields["content"] = []string{"Содержимое обязательно"}
	}
	if input.CategoryID == 0 {
		fields["category_id"] = []string{"Категория обязательна"}
	}
	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}

func (s *articleService) Create(ctx context.Context, caller *models.User, input models.ArticleInput) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи", zap.Int("user_id", caller.ID), zap.String("title", strings.TrimSpace(input.Title)))

	if verr := validateArticleInput(input); verr != nil {
		log.Warn("Валидация статьи не пройдена", zap.Int("field_errors", len(verr.Fields)))
		return nil, verr
	}

	status := models.StatusDraft
	if input.Status != nil {
		status = *input.Status
	}
	isPremium := false
	if input.IsPremium != nil {
		isPremium = *input.IsPremium
	}
	price := 0.0
	if input.Price != nil {
		price = *input.Price
	}

	categoryID := input.CategoryID
	a := &models.Article{
		UserID:     caller.ID,
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: &categoryID,
		Status:     status,
		IsPremium:  isPremium,
		Price:      price,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Статья создана", zap.Int64("id", created.ID), zap.String("status", created.Status))
	return created, nil
}

func (s *articleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		log.Warn("Статья не найдена", zap.Int64("id", id))
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("Ошибка получения статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return a, nil
}

// Update применяет правило доступа: администратор или владелец.
// Отсутствующие status/is_premium/price сохраняют текущие значения.
func (s *articleService) Update(ctx context.Context, caller *models.User, id int64, input models.ArticleInput) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи", zap.Int64("id", id), zap.Int("user_id", caller.ID))

	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && a.UserID != caller.ID {
		log.Warn("Попытка редактирования чужой статьи", zap.Int64("id", id), zap.Int("user_id", caller.ID), zap.Int("owner_id", a.UserID))
		return nil, ErrForbidden
	}

	if verr := validateArticleInput(input); verr != nil {
		return nil, verr
	}

	categoryID := input.CategoryID
	a.Title = input.Title
	a.Content = input.Content
	a.CategoryID = &categoryID
	if input.Status != nil {
		a.Status = *input.Status
	}
	if input.IsPremium != nil {
		a.IsPremium = *input.IsPremium
	}
	if input.Price != nil {
		a.Price = *input.Price
	}

	if err := s.repo.Update(ctx, a); err != nil {
		log.Error("Ошибка обновления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Info("Статья обновлена", zap.Int64("id", id))
	return updated, nil
}

func (s *articleService) Delete(ctx context.Context, caller *models.User, id int64) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.Int64("id", id), zap.Int("user_id", caller.ID))

	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !caller.IsAdmin() && a.UserID != caller.ID {
		log.Warn("Попытка удаления чужой статьи", zap.Int64("id", id), zap.Int("user_id", caller.ID), zap.Int("owner_id", a.UserID))
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}

	log.Info("Статья удалена", zap.Int64("id", id))
	return nil
}

func (s *articleService) Published(ctx context.Context, page, limit int) ([]*models.Article, models.Pagination, error) {
	log := logger.WithCtx(ctx)

	offset := (page - 1) * limit
	list, total, err := s.repo.GetPublished(ctx, limit, offset)
	if err != nil {
		log.Error("Ошибка получения опубликованных статей (repo)", zap.Error(err))
		return nil, models.Pagination{}, err
	}

	log.Debug("Опубликованные статьи получены", zap.Int("count", len(list)), zap.Int("total", total))
	return list, models.NewPagination(page, limit, total), nil
}

func (s *articleService) Search(ctx context.Context, f models.SearchFilter, page, limit int) ([]*models.Article, models.Pagination, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Поиск статей",
		zap.String("query", f.Query),
		zap.String("status", f.Status),
		zap.Bool("free_only", f.FreeOnly),
	)

	if f.Status == "" {
		f.Status = models.StatusPublished
	}

	offset := (page - 1) * limit
	list, total, err := s.repo.Search(ctx, f, limit, offset)
	if err != nil {
		log.Error("Ошибка поиска статей (repo)", zap.Error(err))
		return nil, models.Pagination{}, err
	}

	log.Debug("Поиск завершён", zap.Int("count", len(list)), zap.Int("total", total))
	return list, models.NewPagination(page, limit, total), nil
}
