package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/modules/model"
	"gorm.io/gorm"
)

type SceneRepo interface {
	Create(ctx context.Context, s *model.Scene) error
	Get(ctx context.Context, id uuid.UUID) (*model.Scene, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.Scene, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
	// MaxOrderIndex returns ok=false when the property has no scenes.
	MaxOrderIndex(ctx context.Context, propertyID uuid.UUID) (maxOrder int, ok bool, err error)
	HasDefault(ctx context.Context, propertyID uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.Scene, error)
	// SetOrder writes order_index = position for every id, in one transaction.
	SetOrder(ctx context.Context, propertyID uuid.UUID, orderedIDs []uuid.UUID) error
	// SetDefault makes sceneID the only default scene of the property.
	SetDefault(ctx context.Context, propertyID uuid.UUID, sceneID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sceneRepo struct{ db *gorm.DB }

func NewSceneRepo(db *gorm.DB) SceneRepo {
	return &sceneRepo{db: db}
}

func (r *sceneRepo) Create(ctx context.Context, s *model.Scene) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sceneRepo) Get(ctx context.Context, id uuid.UUID) (*model.Scene, error) {
	var s model.Scene
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sceneRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.Scene, error) {
	var scenes []model.Scene
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("order_index ASC, created_at ASC, id ASC").
		Find(&scenes).Error
	return scenes, err
}

func (r *sceneRepo) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Scene{}).Where("property_id = ?", propertyID).Count(&n).Error
	return n, err
}

func (r *sceneRepo) MaxOrderIndex(ctx context.Context, propertyID uuid.UUID) (int, bool, error) {
	var maxOrder *int
	err := r.db.WithContext(ctx).
		Model(&model.Scene{}).
		Where("property_id = ?", propertyID).
		Select("MAX(order_index)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, false, err
	}
	if maxOrder == nil {
		return 0, false, nil
	}
	return *maxOrder, true, nil
}

func (r *sceneRepo) HasDefault(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Scene{}).
		Where("property_id = ? AND is_default", propertyID).
		Count(&n).Error
	return n > 0, err
}

func (r *sceneRepo) Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.Scene, error) {
	res := r.db.WithContext(ctx).Model(&model.Scene{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(ctx, id)
}

func (r *sceneRepo) SetOrder(ctx context.Context, propertyID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			res := tx.Model(&model.Scene{}).
				Where("id = ? AND property_id = ?", id, propertyID).
				Update("order_index", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("scene %s: %w", id, gorm.ErrRecordNotFound)
			}
		}
		return nil
	})
}

func (r *sceneRepo) SetDefault(ctx context.Context, propertyID uuid.UUID, sceneID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// clear first: the partial unique index allows one default per property
		if err := tx.Model(&model.Scene{}).
			Where("property_id = ? AND is_default AND id <> ?", propertyID, sceneID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Scene{}).
			Where("id = ? AND property_id = ?", sceneID, propertyID).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete is idempotent. A hotspot still referencing the scene makes it fail
// with gorm.ErrForeignKeyViolated.
func (r *sceneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Scene{}).Error
}
