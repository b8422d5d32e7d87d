package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/modules/model"
	"gorm.io/gorm"
)

type LeadRepo interface {
	Create(ctx context.Context, l *model.Lead) error
	Get(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	// List returns leads newest first with the property title joined in.
	// uuid.Nil lists every property.
	List(ctx context.Context, propertyID uuid.UUID) ([]model.Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.LeadStatus) (*model.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type leadRepo struct{ db *gorm.DB }

func NewLeadRepo(db *gorm.DB) LeadRepo {
	return &leadRepo{db: db}
}

func (r *leadRepo) Create(ctx context.Context, l *model.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *leadRepo) Get(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var l model.Lead
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leadRepo) List(ctx context.Context, propertyID uuid.UUID) ([]model.Lead, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Lead{}).
		Select("leads.*, properties.title AS property_title").
		Joins("JOIN properties ON properties.id = leads.property_id")
	if propertyID != uuid.Nil {
		q = q.Where("leads.property_id = ?", propertyID)
	}

	var items []model.Lead
	err := q.Order("leads.created_at DESC, leads.id DESC").Find(&items).Error
	return items, err
}

func (r *leadRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.LeadStatus) (*model.Lead, error) {
	res := r.db.WithContext(ctx).Model(&model.Lead{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(ctx, id)
}

func (r *leadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Lead{}).Error
}
