package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/modules/model"
	"gorm.io/gorm"
)

type PropertyRepo interface {
	Create(ctx context.Context, p *model.Property) error
	Get(ctx context.Context, id uuid.UUID) (*model.Property, error)
	ListWithCursor(ctx context.Context, status model.PropertyStatus, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]model.Property, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyRepo struct{ db *gorm.DB }

func NewPropertyRepo(db *gorm.DB) PropertyRepo {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *model.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *propertyRepo) Get(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	var p model.Property
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepo) ListWithCursor(ctx context.Context, status model.PropertyStatus, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]model.Property, error) {
	q := r.db.WithContext(ctx).Model(&model.Property{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if !afterCreatedAt.IsZero() && afterID != uuid.Nil {
		comparisonOp := ">"
		if timeDesc {
			comparisonOp = "<"
		}
		q = q.Where(
			"(created_at "+comparisonOp+" ?) OR (created_at = ? AND id "+comparisonOp+" ?)",
			afterCreatedAt, afterCreatedAt, afterID,
		)
	}

	orderBy := "created_at ASC, id ASC"
	if timeDesc {
		orderBy = "created_at DESC, id DESC"
	}

	var items []model.Property
	return items, q.Order(orderBy).Limit(limit).Find(&items).Error
}

func (r *propertyRepo) Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.Property, error) {
	res := r.db.WithContext(ctx).Model(&model.Property{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(ctx, id)
}

// Delete is idempotent: a missing row is not an error.
func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Property{}).Error
}
