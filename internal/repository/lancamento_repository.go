package repository

import (
	"context"

	"gorm.io/gorm"

	"pesagem/internal/model"
)

// LancamentoRepository defines persistence operations for lancamentos.
type LancamentoRepository interface {
	Create(ctx context.Context, l *model.Lancamento) error
	Update(ctx context.Context, l *model.Lancamento) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Lancamento, error)
	// List returns every lancamento, most recent first.
	List(ctx context.Context) ([]model.Lancamento, error)
	// ListByMotorista returns the lancamentos owned by one driver, most
	// recent first.
	ListByMotorista(ctx context.Context, motorista string) ([]model.Lancamento, error)
}

type lancamentoRepository struct {
	db *gorm.DB
}

// NewLancamentoRepository builds a GORM-backed repository.
func NewLancamentoRepository(db *gorm.DB) LancamentoRepository {
	return &lancamentoRepository{db: db}
}

func (r *lancamentoRepository) Create(ctx context.Context, l *model.Lancamento) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *lancamentoRepository) Update(ctx context.Context, l *model.Lancamento) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *lancamentoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Lancamento{}, id).Error
}

func (r *lancamentoRepository) FindByID(ctx context.Context, id uint) (*model.Lancamento, error) {
	var l model.Lancamento
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *lancamentoRepository) List(ctx context.Context) ([]model.Lancamento, error) {
	var ls []model.Lancamento
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&ls).Error; err != nil {
		return nil, err
	}
	return ls, nil
}

func (r *lancamentoRepository) ListByMotorista(ctx context.Context, motorista string) ([]model.Lancamento, error) {
	var ls []model.Lancamento
	if err := r.db.WithContext(ctx).Where("motorista = ?", motorista).Order("id DESC").Find(&ls).Error; err != nil {
		return nil, err
	}
	return ls, nil
}
