package service

import (
	"context"

	"pesagem/internal/auth"
	"pesagem/internal/authz"
	apperrors "pesagem/internal/errors"
	"pesagem/internal/model"
	"pesagem/internal/repository"
)

// AnalyticsService exposes the read-only aggregate reports backing the
// dashboard charts. Reports are not ownership-filtered: every authenticated
// role sees the same totals, as the dashboard always did.
type AnalyticsService interface {
	PesoPorMotorista(ctx context.Context, ident auth.Identity) ([]model.PesoPorMotorista, error)
	ValorPorProduto(ctx context.Context, ident auth.Identity) ([]model.ValorPorProduto, error)
}

type analyticsService struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) PesoPorMotorista(ctx context.Context, ident auth.Identity) ([]model.PesoPorMotorista, error) {
	if !authz.Allow(ident.Role, authz.ResourceAnalytics, authz.ActionRead, "", "") {
		return nil, apperrors.ErrForbidden
	}
	return s.repo.PesoPorMotorista(ctx)
}

func (s *analyticsService) ValorPorProduto(ctx context.Context, ident auth.Identity) ([]model.ValorPorProduto, error) {
	if !authz.Allow(ident.Role, authz.ResourceAnalytics, authz.ActionRead, "", "") {
		return nil, apperrors.ErrForbidden
	}
	return s.repo.ValorPorProduto(ctx)
}
