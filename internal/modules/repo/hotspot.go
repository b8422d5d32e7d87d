package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/modules/model"
	"gorm.io/gorm"
)

type HotspotRepo interface {
	Create(ctx context.Context, h *model.Hotspot) error
	Get(ctx context.Context, id uuid.UUID) (*model.Hotspot, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.Hotspot, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByScene(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error)
	// ListByTarget returns navigation hotspots whose target is sceneID,
	// including self-loops hosted on sceneID itself.
	ListByTarget(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.Hotspot, error)
}

type hotspotRepo struct{ db *gorm.DB }

func NewHotspotRepo(db *gorm.DB) HotspotRepo {
	return &hotspotRepo{db: db}
}

func (r *hotspotRepo) Create(ctx context.Context, h *model.Hotspot) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *hotspotRepo) Get(ctx context.Context, id uuid.UUID) (*model.Hotspot, error) {
	var h model.Hotspot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *hotspotRepo) Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.Hotspot, error) {
	res := r.db.WithContext(ctx).Model(&model.Hotspot{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(ctx, id)
}

// Delete is idempotent: deleting an absent hotspot succeeds.
func (r *hotspotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Hotspot{}).Error
}

func (r *hotspotRepo) ListByScene(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error) {
	var items []model.Hotspot
	err := r.db.WithContext(ctx).
		Where("scene_id = ?", sceneID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *hotspotRepo) ListByTarget(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error) {
	var items []model.Hotspot
	err := r.db.WithContext(ctx).
		Where("type = ? AND target_scene_id = ?", model.HotspotTypeNavigation, sceneID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *hotspotRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.Hotspot, error) {
	var items []model.Hotspot
	err := r.db.WithContext(ctx).
		Joins("JOIN scenes ON scenes.id = hotspots.scene_id").
		Where("scenes.property_id = ?", propertyID).
		Order("hotspots.created_at ASC, hotspots.id ASC").
		Find(&items).Error
	return items, err
}
