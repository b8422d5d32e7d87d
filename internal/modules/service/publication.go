package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/infra/search"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
	"go.uber.org/zap"
)

type PublicationService interface {
	Publish(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) (*model.Property, error)
	Unpublish(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) (*model.Property, error)
	IsVisible(p *model.Property) bool
}

type publicationService struct {
	properties repo.PropertyRepo
	scenes     repo.SceneRepo
	gallery    repo.GalleryRepo
	lock       PropertyLocker
	index      PropertyIndexer
	events     *tourEvents
	authz      auth.Authorizer
	log        *zap.Logger
}

func NewPublicationService(properties repo.PropertyRepo, scenes repo.SceneRepo, gallery repo.GalleryRepo, lock PropertyLocker, index PropertyIndexer, pub EventPublisher, cfg *config.Config, authz auth.Authorizer, log *zap.Logger) PublicationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &publicationService{
		properties: properties,
		scenes:     scenes,
		gallery:    gallery,
		lock:       lock,
		index:      index,
		events:     newTourEvents(pub, cfg, log),
		authz:      authz,
		log:        log,
	}
}

// Publish requires a default scene. Without one the status is left alone.
// The check and the status write run under the property lock so a
// concurrent scene delete cannot strip the default in between.
func (s *publicationService) Publish(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) (*model.Property, error) {
	const op = "publish property"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	release, err := lockProperty(ctx, s.lock, op, propertyID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := s.properties.Get(ctx, propertyID); err != nil {
		return nil, fromRepo(op, "property", propertyID, err)
	}

	hasDefault, err := s.scenes.HasDefault(ctx, propertyID)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	if !hasDefault {
		return nil, incompletePropertyErr(op, "property has no default scene")
	}

	p, err := s.properties.Update(ctx, propertyID, map[string]any{"status": model.PropertyStatusPublished})
	if err != nil {
		return nil, fromRepo(op, "property", propertyID, err)
	}

	s.indexProperty(ctx, p)
	s.events.propertyStatus(ctx, p.ID, true)
	return p, nil
}

func (s *publicationService) Unpublish(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) (*model.Property, error) {
	const op = "unpublish property"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	release, err := lockProperty(ctx, s.lock, op, propertyID)
	if err != nil {
		return nil, err
	}
	defer release()

	p, err := s.properties.Update(ctx, propertyID, map[string]any{"status": model.PropertyStatusDraft})
	if err != nil {
		return nil, fromRepo(op, "property", propertyID, err)
	}

	if s.index != nil {
		if err := s.index.RemoveProperty(p.ID.String()); err != nil {
			s.log.Warn("remove property from search index", zap.String("property_id", p.ID.String()), zap.Error(err))
		}
	}
	s.events.propertyStatus(ctx, p.ID, false)
	return p, nil
}

func (s *publicationService) IsVisible(p *model.Property) bool {
	return model.IsVisible(p)
}

// indexProperty pushes the public listing document. Failures are logged;
// the search index is rebuilt on the next publish.
func (s *publicationService) indexProperty(ctx context.Context, p *model.Property) {
	if s.index == nil {
		return
	}
	doc := search.PropertyDocument{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Price:       p.Price,
		Type:        p.Type,
	}
	if scenes, err := s.scenes.ListByProperty(ctx, p.ID); err == nil {
		doc.SceneCount = len(scenes)
		for _, sc := range scenes {
			doc.SceneTitles = append(doc.SceneTitles, sc.Title)
		}
	}
	if s.gallery != nil {
		if images, err := s.gallery.ListByProperty(ctx, p.ID); err == nil {
			for _, img := range images {
				if img.IsMain {
					doc.CoverURL = img.URL
					break
				}
			}
		}
	}
	if err := s.index.IndexProperty(doc); err != nil {
		s.log.Warn("index property", zap.String("property_id", p.ID.String()), zap.Error(err))
	}
}
