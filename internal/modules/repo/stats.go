package repo

import (
	"context"

	"github.com/tours360/tourgraph/internal/modules/model"
	"gorm.io/gorm"
)

type StatsRepo interface {
	Summary(ctx context.Context) (*model.Stats, error)
}

type statsRepo struct{ db *gorm.DB }

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &statsRepo{db: db}
}

// Summary runs the counters in one read-only transaction so they describe
// the same snapshot.
func (r *statsRepo) Summary(ctx context.Context) (*model.Stats, error) {
	var s model.Stats
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL REPEATABLE READ READ ONLY").Error; err != nil {
			return err
		}
		counts := []struct {
			dst   *int64
			model any
			where string
			args  []any
		}{
			{&s.Properties, &model.Property{}, "", nil},
			{&s.PublishedProperties, &model.Property{}, "status = ?", []any{model.PropertyStatusPublished}},
			{&s.DraftProperties, &model.Property{}, "status = ?", []any{model.PropertyStatusDraft}},
			{&s.Scenes, &model.Scene{}, "", nil},
			{&s.Hotspots, &model.Hotspot{}, "", nil},
			{&s.GalleryImages, &model.GalleryImage{}, "", nil},
			{&s.Leads, &model.Lead{}, "", nil},
			{&s.NewLeads, &model.Lead{}, "status = ?", []any{model.LeadStatusNew}},
		}
		for _, c := range counts {
			q := tx.Model(c.model)
			if c.where != "" {
				q = q.Where(c.where, c.args...)
			}
			if err := q.Count(c.dst).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
