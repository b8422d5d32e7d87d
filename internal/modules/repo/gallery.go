package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/modules/model"
	"gorm.io/gorm"
)

type GalleryRepo interface {
	Create(ctx context.Context, img *model.GalleryImage) error
	Get(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.GalleryImage, error)
	HasMain(ctx context.Context, propertyID uuid.UUID) (bool, error)
	SetMain(ctx context.Context, propertyID uuid.UUID, imageID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepo struct{ db *gorm.DB }

func NewGalleryRepo(db *gorm.DB) GalleryRepo {
	return &galleryRepo{db: db}
}

func (r *galleryRepo) Create(ctx context.Context, img *model.GalleryImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *galleryRepo) Get(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	var img model.GalleryImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&img).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *galleryRepo) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.GalleryImage, error) {
	var items []model.GalleryImage
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *galleryRepo) HasMain(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.GalleryImage{}).
		Where("property_id = ? AND is_main", propertyID).
		Count(&n).Error
	return n > 0, err
}

func (r *galleryRepo) SetMain(ctx context.Context, propertyID uuid.UUID, imageID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.GalleryImage{}).
			Where("property_id = ? AND is_main AND id <> ?", propertyID, imageID).
			Update("is_main", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.GalleryImage{}).
			Where("id = ? AND property_id = ?", imageID, propertyID).
			Update("is_main", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *galleryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GalleryImage{}).Error
}
