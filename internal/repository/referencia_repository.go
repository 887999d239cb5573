package repository

import (
	"context"

	"gorm.io/gorm"

	"pesagem/internal/model"
)

// ReferenciaRepository defines persistence operations for one reference list.
// The three lists (produtos, origens, destinos) share this implementation,
// scoped to their table.
type ReferenciaRepository interface {
	Create(ctx context.Context, ref *model.Referencia) error
	Update(ctx context.Context, ref *model.Referencia) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Referencia, error)
	List(ctx context.Context) ([]model.Referencia, error)
}

type referenciaRepository struct {
	db    *gorm.DB
	table string
}

// NewReferenciaRepository builds a GORM-backed repository over the given
// reference-list table.
func NewReferenciaRepository(db *gorm.DB, table string) ReferenciaRepository {
	return &referenciaRepository{db: db, table: table}
}

func (r *referenciaRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func (r *referenciaRepository) Create(ctx context.Context, ref *model.Referencia) error {
	return r.scoped(ctx).Create(ref).Error
}

func (r *referenciaRepository) Update(ctx context.Context, ref *model.Referencia) error {
	return r.scoped(ctx).Save(ref).Error
}

func (r *referenciaRepository) Delete(ctx context.Context, id uint) error {
	return r.scoped(ctx).Where("id = ?", id).Delete(&model.Referencia{}).Error
}

func (r *referenciaRepository) FindByID(ctx context.Context, id uint) (*model.Referencia, error) {
	var ref model.Referencia
	if err := r.scoped(ctx).Where("id = ?", id).First(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *referenciaRepository) List(ctx context.Context) ([]model.Referencia, error) {
	var refs []model.Referencia
	if err := r.scoped(ctx).Order("nome").Find(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}
