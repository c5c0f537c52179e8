package services

import (
	"context"

	"blogapi/internal/logger"
	"blogapi/internal/models"

	"go.uber.org/zap"
)

type CategoryService struct {
	repo CategoryRepo
}

type CategoryRepo interface {
	GetAll(ctx context.Context) ([]*models.Category, error)
}

func NewCategoryService(repo CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения категорий (service)", zap.Error(err))
		return nil, err
	}
	return list, nil
}
