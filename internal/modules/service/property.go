package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
	"github.com/tours360/tourgraph/internal/pkg/paging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyService interface {
	Create(ctx context.Context, caller auth.Caller, in CreatePropertyInput) (*model.Property, error)
	Get(ctx context.Context, caller auth.Caller, id uuid.UUID) (*model.Property, error)
	List(ctx context.Context, caller auth.Caller, in ListPropertiesInput) (*ListPropertiesOutput, error)
	Update(ctx context.Context, caller auth.Caller, id uuid.UUID, in UpdatePropertyInput) (*model.Property, error)
	Delete(ctx context.Context, caller auth.Caller, id uuid.UUID) error
	GetCompleteTour(ctx context.Context, caller auth.Caller, id uuid.UUID) (*Tour, error)
	GetPublicTour(ctx context.Context, id uuid.UUID) (*Tour, error)
}

type propertyService struct {
	properties repo.PropertyRepo
	scenes     repo.SceneRepo
	hotspots   repo.HotspotRepo
	gallery    repo.GalleryRepo
	index      PropertyIndexer
	blob       BlobStore
	authz      auth.Authorizer
	log        *zap.Logger
}

func NewPropertyService(properties repo.PropertyRepo, scenes repo.SceneRepo, hotspots repo.HotspotRepo, gallery repo.GalleryRepo, index PropertyIndexer, blob BlobStore, authz auth.Authorizer, log *zap.Logger) PropertyService {
	if log == nil {
		log = zap.NewNop()
	}
	return &propertyService{
		properties: properties,
		scenes:     scenes,
		hotspots:   hotspots,
		gallery:    gallery,
		index:      index,
		blob:       blob,
		authz:      authz,
		log:        log,
	}
}

type CreatePropertyInput struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Price       float64        `json:"price" validate:"gte=0"`
	Type        string         `json:"type"`
	Details     map[string]any `json:"details,omitempty"`
}

type UpdatePropertyInput struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Price       *float64       `json:"price,omitempty"`
	Type        *string        `json:"type,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
}

type ListPropertiesInput struct {
	Status   model.PropertyStatus `json:"status"`
	Limit    int                  `json:"limit"`
	Cursor   string               `json:"cursor"`
	TimeDesc bool                 `json:"time_desc"`
}

type ListPropertiesOutput struct {
	Items      []model.Property `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
	HasMore    bool             `json:"has_more"`
}

// Tour is a property with its whole scene graph, as the viewer loads it.
type Tour struct {
	Property *model.Property      `json:"property"`
	Scenes   []model.Scene        `json:"scenes"`
	Hotspots []model.Hotspot      `json:"hotspots"`
	Gallery  []model.GalleryImage `json:"gallery"`
}

func (s *propertyService) Create(ctx context.Context, caller auth.Caller, in CreatePropertyInput) (*model.Property, error) {
	const op = "create property"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if err := validateStruct(op, in); err != nil {
		return nil, err
	}

	p := &model.Property{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Price:       in.Price,
		Type:        in.Type,
		Status:      model.PropertyStatusDraft,
	}
	if in.Details != nil {
		p.Details = datatypes.JSONMap(in.Details)
	}
	if err := s.properties.Create(ctx, p); err != nil {
		return nil, persistenceErr(op, err)
	}
	return p, nil
}

func (s *propertyService) Get(ctx context.Context, caller auth.Caller, id uuid.UUID) (*model.Property, error) {
	const op = "get property"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	p, err := s.properties.Get(ctx, id)
	if err != nil {
		return nil, fromRepo(op, "property", id, err)
	}
	return p, nil
}

func (s *propertyService) List(ctx context.Context, caller auth.Caller, in ListPropertiesInput) (*ListPropertiesOutput, error) {
	const op = "list properties"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	switch in.Status {
	case "", model.PropertyStatusDraft, model.PropertyStatusPublished:
	default:
		return nil, validationErr(op, "status must be one of [draft published]")
	}
	if in.Limit <= 0 {
		in.Limit = 20
	}
	if in.Limit > 200 {
		return nil, validationErr(op, "limit must be <= 200")
	}

	// Parse cursor (createdAt, id); an empty cursor starts from the first page
	var afterT time.Time
	var afterID uuid.UUID
	var err error
	if in.Cursor != "" {
		afterT, afterID, err = paging.DecodeCursor(in.Cursor)
		if err != nil {
			return nil, validationErr(op, "%v", err)
		}
	}

	// Query limit+1 is used to determine has_more
	items, err := s.properties.ListWithCursor(ctx, in.Status, afterT, afterID, in.Limit+1, in.TimeDesc)
	if err != nil {
		return nil, persistenceErr(op, err)
	}

	out := &ListPropertiesOutput{
		Items:   items,
		HasMore: false,
	}
	if len(items) > in.Limit {
		out.HasMore = true
		out.Items = items[:in.Limit]
		last := out.Items[len(out.Items)-1]
		out.NextCursor = paging.EncodeCursor(last.CreatedAt, last.ID)
	}
	return out, nil
}

func (s *propertyService) Update(ctx context.Context, caller auth.Caller, id uuid.UUID, in UpdatePropertyInput) (*model.Property, error) {
	const op = "update property"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}

	patch := map[string]any{}
	if in.Title != nil {
		if err := requireText(op, "title", *in.Title); err != nil {
			return nil, err
		}
		patch["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, validationErr(op, "price must be >= 0")
		}
		patch["price"] = *in.Price
	}
	if in.Description != nil {
		patch["description"] = *in.Description
	}
	if in.Location != nil {
		patch["location"] = *in.Location
	}
	if in.Type != nil {
		patch["type"] = *in.Type
	}
	if in.Details != nil {
		patch["details"] = datatypes.JSONMap(in.Details)
	}

	if len(patch) == 0 {
		p, err := s.properties.Get(ctx, id)
		if err != nil {
			return nil, fromRepo(op, "property", id, err)
		}
		return p, nil
	}
	p, err := s.properties.Update(ctx, id, patch)
	if err != nil {
		return nil, fromRepo(op, "property", id, err)
	}
	return p, nil
}

// Delete refuses while scenes remain: scenes only go through the cascade.
func (s *propertyService) Delete(ctx context.Context, caller auth.Caller, id uuid.UUID) error {
	const op = "delete property"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return err
	}
	p, err := s.properties.Get(ctx, id)
	if err != nil {
		return fromRepo(op, "property", id, err)
	}
	n, err := s.scenes.CountByProperty(ctx, id)
	if err != nil {
		return persistenceErr(op, err)
	}
	if n > 0 {
		return validationErr(op, "property still has %d scenes; delete them first", n)
	}

	images, err := s.gallery.ListByProperty(ctx, id)
	if err != nil {
		return persistenceErr(op, err)
	}

	if err := s.properties.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return validationErr(op, "property still has scenes; delete them first")
		}
		return persistenceErr(op, err)
	}

	if model.IsVisible(p) && s.index != nil {
		if err := s.index.RemoveProperty(id.String()); err != nil {
			s.log.Warn("remove property from search index", zap.String("property_id", id.String()), zap.Error(err))
		}
	}
	if s.blob != nil {
		for _, img := range images {
			if err := s.blob.DeleteByURL(ctx, img.URL); err != nil {
				s.log.Warn("delete gallery object", zap.String("url", img.URL), zap.Error(err))
			}
		}
	}
	return nil
}

func (s *propertyService) GetCompleteTour(ctx context.Context, caller auth.Caller, id uuid.UUID) (*Tour, error) {
	const op = "get tour"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	return s.loadTour(ctx, op, id)
}

// GetPublicTour is the unauthenticated read path. Drafts are reported as
// missing.
func (s *propertyService) GetPublicTour(ctx context.Context, id uuid.UUID) (*Tour, error) {
	const op = "get public tour"
	t, err := s.loadTour(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if !model.IsVisible(t.Property) {
		return nil, notFoundErr(op, "property", id)
	}
	return t, nil
}

func (s *propertyService) loadTour(ctx context.Context, op string, id uuid.UUID) (*Tour, error) {
	t := &Tour{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.properties.Get(gctx, id)
		if err != nil {
			return fromRepo(op, "property", id, err)
		}
		t.Property = p
		return nil
	})
	g.Go(func() error {
		scenes, err := s.scenes.ListByProperty(gctx, id)
		if err != nil {
			return persistenceErr(op, err)
		}
		t.Scenes = scenes
		return nil
	})
	g.Go(func() error {
		hotspots, err := s.hotspots.ListByProperty(gctx, id)
		if err != nil {
			return persistenceErr(op, err)
		}
		t.Hotspots = hotspots
		return nil
	})
	g.Go(func() error {
		images, err := s.gallery.ListByProperty(gctx, id)
		if err != nil {
			return persistenceErr(op, err)
		}
		t.Gallery = images
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}
