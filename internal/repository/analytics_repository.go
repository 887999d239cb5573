package repository

import (
	"context"

	"gorm.io/gorm"

	"pesagem/internal/model"
)

// AnalyticsRepository runs the aggregate report queries. The reports group by
// the denormalized motorista/produto strings on purpose, so rows keep their
// grouping even after a reference-list entry is renamed or deleted.
type AnalyticsRepository interface {
	PesoPorMotorista(ctx context.Context) ([]model.PesoPorMotorista, error)
	ValorPorProduto(ctx context.Context) ([]model.ValorPorProduto, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository builds a GORM-backed analytics repository.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) PesoPorMotorista(ctx context.Context) ([]model.PesoPorMotorista, error) {
	var rows []model.PesoPorMotorista
	err := r.db.WithContext(ctx).
		Model(&model.Lancamento{}).
		Select("motorista, SUM(pesoreal) AS total_peso").
		Group("motorista").
		Order("total_peso DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) ValorPorProduto(ctx context.Context) ([]model.ValorPorProduto, error) {
	var rows []model.ValorPorProduto
	err := r.db.WithContext(ctx).
		Model(&model.Lancamento{}).
		Select("produto, SUM(valorfrete) AS total_valor").
		Group("produto").
		Order("total_valor DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
