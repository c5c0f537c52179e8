package services

import (
	"context"
	"errors"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/repository"

	"go.uber.org/zap"
)

type PurchaseService interface {
	Purchase(ctx context.Context, caller *models.User, articleID int64) (*models.Purchase, error)
	History(ctx context.Context, caller *models.User) ([]*models.Purchase, error)
	Status(ctx context.Context, caller *models.User, articleID int64) (*models.Purchase, error)
	BatchStatus(ctx context.Context, caller *models.User, articleIDs []int64) (map[int64]models.PurchaseStatus, error)
}

type purchaseService struct {
	purchases repository.PurchaseRepo
	articles  repository.ArticleRepo
}

func NewPurchaseService(purchases repository.PurchaseRepo, articles repository.ArticleRepo) PurchaseService {
	return &purchaseService{purchases: purchases, articles: articles}
}

// Purchase проводит мгновенную mock-покупку премиум-статьи.
// Допустима только опубликованная премиум-статья; повторная покупка
// одной пары (пользователь, статья) — конфликт. Предварительная проверка
// уменьшает число конфликтов, но гонку закрывает уникальный ключ БД.
func (s *purchaseService) Purchase(ctx context.Context, caller *models.User, articleID int64) (*models.Purchase, error) {
	log := logger.WithCtx(ctx)
	log.Info("Покупка статьи", zap.Int("user_id", caller.ID), zap.Int64("article_id", articleID))

	if articleID == 0 {
		return nil, &ValidationError{Message: "ID статьи обязателен."}
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if errors.Is(err, repository.ErrNoRows) || (err == nil && article.Status != models.StatusPublished) {
		log.Warn("Статья для покупки не найдена или не опубликована", zap.Int64("article_id", articleID))
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !article.IsPremium {
		log.Warn("Попытка купить бесплатную статью", zap.Int64("article_id", articleID))
		return nil, &ValidationError{Message: "Эта статья бесплатная."}
	}

	exists, err := s.purchases.Exists(ctx, caller.ID, articleID)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Warn("Повторная покупка", zap.Int("user_id", caller.ID), zap.Int64("article_id", articleID))
		return nil, ErrAlreadyPurchased
	}

	purchase, err := s.purchases.Create(ctx, caller.ID, articleID, article.Price)
	if errors.Is(err, repository.ErrDuplicatePurchase) {
		// Параллельный запрос успел первым.
		log.Warn("Конфликт уникального ключа при покупке", zap.Int("user_id", caller.ID), zap.Int64("article_id", articleID))
		return nil, ErrAlreadyPurchased
	}
	if err != nil {
		log.Error("Ошибка создания покупки (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Покупка завершена", zap.Int64("purchase_id", purchase.ID), zap.Float64("amount", purchase.Amount))
	return purchase, nil
}

func (s *purchaseService) History(ctx context.Context, caller *models.User) ([]*models.Purchase, error) {
	return s.purchases.ListByUser(ctx, caller.ID)
}

// Status возвращает покупку либо nil, если статья не куплена.
func (s *purchaseService) Status(ctx context.Context, caller *models.User, articleID int64) (*models.Purchase, error) {
	p, err := s.purchases.GetByUserAndArticle(ctx, caller.ID, articleID)
	if errors.Is(err, repository.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// BatchStatus деградирует мягко: без валидного токена каждая статья
// отмечается как некупленная, ошибок аутентификации не бывает.
func (s *purchaseService) BatchStatus(ctx context.Context, caller *models.User, articleIDs []int64) (map[int64]models.PurchaseStatus, error) {
	result := make(map[int64]models.PurchaseStatus, len(articleIDs))

	if caller != nil && len(articleIDs) > 0 {
		found, err := s.purchases.StatusForArticles(ctx, caller.ID, articleIDs)
		if err != nil {
			logger.WithCtx(ctx).Error("Ошибка пакетной проверки покупок (repo)", zap.Error(err))
			return nil, err
		}
		result = found
	}

	for _, id := range articleIDs {
		if _, ok := result[id]; !ok {
			result[id] = models.PurchaseStatus{Purchased: false}
		}
	}
	return result, nil
}
