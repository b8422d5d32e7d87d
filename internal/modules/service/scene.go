package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
	"github.com/tours360/tourgraph/internal/pkg/utils/mime"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultHfov = 110.0

type SceneService interface {
	CreateScene(ctx context.Context, caller auth.Caller, in CreateSceneInput) (*model.Scene, error)
	UploadScene(ctx context.Context, caller auth.Caller, in UploadSceneInput) (*model.Scene, error)
	RenameScene(ctx context.Context, caller auth.Caller, id uuid.UUID, title string) (*model.Scene, error)
	UpdateScene(ctx context.Context, caller auth.Caller, id uuid.UUID, in UpdateSceneInput) (*model.Scene, error)
	ReorderScenes(ctx context.Context, caller auth.Caller, propertyID uuid.UUID, orderedIDs []uuid.UUID) ([]model.Scene, error)
	SetDefaultScene(ctx context.Context, caller auth.Caller, sceneID uuid.UUID) (*model.Scene, error)
	ListScenes(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) ([]model.Scene, error)
	GetScene(ctx context.Context, caller auth.Caller, id uuid.UUID) (*model.Scene, error)
	DeleteScene(ctx context.Context, caller auth.Caller, id uuid.UUID, opts DeleteSceneOptions) (*CascadeResult, error)
}

type sceneService struct {
	properties repo.PropertyRepo
	scenes     repo.SceneRepo
	cascade    *CascadeCoordinator
	blob       BlobStore
	maxBytes   int64
	authz      auth.Authorizer
	log        *zap.Logger
}

func NewSceneService(properties repo.PropertyRepo, scenes repo.SceneRepo, cascade *CascadeCoordinator, blob BlobStore, cfg *config.Config, authz auth.Authorizer, log *zap.Logger) SceneService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &sceneService{
		properties: properties,
		scenes:     scenes,
		cascade:    cascade,
		blob:       blob,
		maxBytes:   defaultMaxUploadBytes,
		authz:      authz,
		log:        log,
	}
	if cfg != nil && cfg.S3.MaxUploadBytes > 0 {
		s.maxBytes = cfg.S3.MaxUploadBytes
	}
	return s
}

type CreateSceneInput struct {
	PropertyID   uuid.UUID `json:"property_id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	ImageWidth   int       `json:"image_width"`
	ImageHeight  int       `json:"image_height"`
	InitialPitch float64   `json:"initial_pitch"`
	InitialYaw   float64   `json:"initial_yaw"`
	// InitialHfov defaults to 110 when nil.
	InitialHfov *float64 `json:"initial_hfov,omitempty"`
	IsDefault   bool     `json:"is_default"`
	// OrderIndex defaults to max+1 when nil.
	OrderIndex *int `json:"order_index,omitempty"`
}

type UpdateSceneInput struct {
	Title        *string  `json:"title,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	ImageWidth   *int     `json:"image_width,omitempty"`
	ImageHeight  *int     `json:"image_height,omitempty"`
	InitialPitch *float64 `json:"initial_pitch,omitempty"`
	InitialYaw   *float64 `json:"initial_yaw,omitempty"`
	InitialHfov  *float64 `json:"initial_hfov,omitempty"`
	OrderIndex   *int     `json:"order_index,omitempty"`
}

// UploadSceneInput carries a panorama file. Width and height are read from
// the image header.
type UploadSceneInput struct {
	PropertyID uuid.UUID
	Filename   string
	Size       int64
	Body       io.Reader
	Title      string
	IsDefault  bool
}

// DeleteSceneOptions selects the inbound-edge policy. Without a fallback
// scene, inbound navigation hotspots are deleted.
type DeleteSceneOptions struct {
	FallbackSceneID *uuid.UUID `json:"fallback_scene_id,omitempty"`
}

func (o DeleteSceneOptions) policy() CascadePolicy {
	if o.FallbackSceneID != nil {
		return CascadePolicy{Mode: CascadeRetarget, FallbackSceneID: *o.FallbackSceneID}
	}
	return CascadePolicy{Mode: CascadeDelete}
}

type sceneFields struct {
	Title       string `validate:"required"`
	ImageURL    string `validate:"required"`
	ImageWidth  int    `validate:"gte=0"`
	ImageHeight int    `validate:"gte=0"`
}

func validateCreateScene(op string, in CreateSceneInput) error {
	if in.PropertyID == uuid.Nil {
		return validationErr(op, "property_id is required")
	}
	if err := validateStruct(op, sceneFields{
		Title:       strings.TrimSpace(in.Title),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		ImageWidth:  in.ImageWidth,
		ImageHeight: in.ImageHeight,
	}); err != nil {
		return err
	}
	if err := validatePanorama(op, in.ImageWidth, in.ImageHeight); err != nil {
		return err
	}
	hfov := defaultHfov
	if in.InitialHfov != nil {
		hfov = *in.InitialHfov
	}
	if err := validateSceneView(op, in.InitialPitch, in.InitialYaw, hfov); err != nil {
		return err
	}
	if in.OrderIndex != nil && *in.OrderIndex < 0 {
		return validationErr(op, "order_index must be >= 0")
	}
	return nil
}

func (s *sceneService) CreateScene(ctx context.Context, caller auth.Caller, in CreateSceneInput) (*model.Scene, error) {
	const op = "create scene"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	return s.create(ctx, op, in)
}

func (s *sceneService) create(ctx context.Context, op string, in CreateSceneInput) (*model.Scene, error) {
	if err := validateCreateScene(op, in); err != nil {
		return nil, err
	}

	if _, err := s.properties.Get(ctx, in.PropertyID); err != nil {
		return nil, fromRepo(op, "property", in.PropertyID, err)
	}

	hasDefault, err := s.scenes.HasDefault(ctx, in.PropertyID)
	if err != nil {
		return nil, persistenceErr(op, err)
	}

	order := 0
	if in.OrderIndex != nil {
		order = *in.OrderIndex
	} else {
		maxOrder, ok, err := s.scenes.MaxOrderIndex(ctx, in.PropertyID)
		if err != nil {
			return nil, persistenceErr(op, err)
		}
		if ok {
			order = maxOrder + 1
		}
	}

	hfov := defaultHfov
	if in.InitialHfov != nil {
		hfov = *in.InitialHfov
	}

	sc := &model.Scene{
		ID:           uuid.New(),
		PropertyID:   in.PropertyID,
		Title:        strings.TrimSpace(in.Title),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		ImageWidth:   in.ImageWidth,
		ImageHeight:  in.ImageHeight,
		InitialPitch: in.InitialPitch,
		InitialYaw:   in.InitialYaw,
		InitialHfov:  hfov,
		// the first scene is always the default, whatever the caller asked
		IsDefault:  !hasDefault,
		OrderIndex: order,
	}

	err = s.scenes.Create(ctx, sc)
	if errors.Is(err, gorm.ErrDuplicatedKey) && sc.IsDefault {
		// a concurrent create won the default slot
		sc.IsDefault = false
		err = s.scenes.Create(ctx, sc)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, notFoundErr(op, "property", in.PropertyID)
		}
		return nil, persistenceErr(op, err)
	}

	if in.IsDefault && !sc.IsDefault {
		if err := s.scenes.SetDefault(ctx, sc.PropertyID, sc.ID); err != nil {
			return nil, persistenceErr(op, err)
		}
		sc.IsDefault = true
	}
	return sc, nil
}

// UploadScene stores a panorama file in the blob store and creates the scene
// pointing at it. The object is removed again when the scene insert fails.
func (s *sceneService) UploadScene(ctx context.Context, caller auth.Caller, in UploadSceneInput) (*model.Scene, error) {
	const op = "upload scene"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if err := requireText(op, "title", in.Title); err != nil {
		return nil, err
	}
	if in.Body == nil {
		return nil, validationErr(op, "file is required")
	}
	if err := validatePanoramaBytes(op, in.Size, s.maxBytes); err != nil {
		return nil, err
	}
	if s.blob == nil {
		return nil, persistenceErr(op, errors.New("blob store is not configured"))
	}
	if _, err := s.properties.Get(ctx, in.PropertyID); err != nil {
		return nil, fromRepo(op, "property", in.PropertyID, err)
	}

	contentType, ext, body, err := mime.DetectImage(in.Body)
	if err != nil {
		if errors.Is(err, mime.ErrUnsupportedImage) {
			s.log.Info("rejected panorama upload", zap.String("filename", in.Filename), zap.String("content_type", contentType))
			return nil, validationErr(op, "%v", err)
		}
		return nil, persistenceErr(op, err)
	}
	width, height, body, err := mime.Dimensions(body)
	if err != nil {
		return nil, validationErr(op, "%v", err)
	}
	if err := validatePanorama(op, width, height); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("properties/%s/scenes/%s%s", in.PropertyID, uuid.NewString(), ext)
	url, err := s.blob.Put(ctx, key, body, contentType)
	if err != nil {
		return nil, persistenceErr(op, err)
	}

	sc, err := s.create(ctx, op, CreateSceneInput{
		PropertyID:  in.PropertyID,
		Title:       in.Title,
		ImageURL:    url,
		ImageWidth:  width,
		ImageHeight: height,
		IsDefault:   in.IsDefault,
	})
	if err != nil {
		if derr := s.blob.DeleteByURL(ctx, url); derr != nil {
			s.log.Warn("delete orphaned panorama object", zap.String("url", url), zap.Error(derr))
		}
		return nil, err
	}
	return sc, nil
}

func (s *sceneService) RenameScene(ctx context.Context, caller auth.Caller, id uuid.UUID, title string) (*model.Scene, error) {
	const op = "rename scene"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if err := requireText(op, "title", title); err != nil {
		return nil, err
	}
	sc, err := s.scenes.Update(ctx, id, map[string]any{"title": strings.TrimSpace(title)})
	if err != nil {
		return nil, fromRepo(op, "scene", id, err)
	}
	return sc, nil
}

func (s *sceneService) UpdateScene(ctx context.Context, caller auth.Caller, id uuid.UUID, in UpdateSceneInput) (*model.Scene, error) {
	const op = "update scene"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if in.Title != nil {
		if err := requireText(op, "title", *in.Title); err != nil {
			return nil, err
		}
	}
	if in.ImageURL != nil {
		if err := requireText(op, "image_url", *in.ImageURL); err != nil {
			return nil, err
		}
	}
	if (in.ImageWidth != nil && *in.ImageWidth < 0) || (in.ImageHeight != nil && *in.ImageHeight < 0) {
		return nil, validationErr(op, "image dimensions must be >= 0")
	}
	if in.OrderIndex != nil && *in.OrderIndex < 0 {
		return nil, validationErr(op, "order_index must be >= 0")
	}

	cur, err := s.scenes.Get(ctx, id)
	if err != nil {
		return nil, fromRepo(op, "scene", id, err)
	}

	if in.ImageWidth != nil || in.ImageHeight != nil {
		width, height := cur.ImageWidth, cur.ImageHeight
		if in.ImageWidth != nil {
			width = *in.ImageWidth
		}
		if in.ImageHeight != nil {
			height = *in.ImageHeight
		}
		if err := validatePanorama(op, width, height); err != nil {
			return nil, err
		}
	}

	pitch, yaw, hfov := cur.InitialPitch, cur.InitialYaw, cur.InitialHfov
	patch := map[string]any{}
	if in.InitialPitch != nil {
		pitch = *in.InitialPitch
		patch["initial_pitch"] = pitch
	}
	if in.InitialYaw != nil {
		yaw = *in.InitialYaw
		patch["initial_yaw"] = yaw
	}
	if in.InitialHfov != nil {
		hfov = *in.InitialHfov
		patch["initial_hfov"] = hfov
	}
	if err := validateSceneView(op, pitch, yaw, hfov); err != nil {
		return nil, err
	}
	if in.Title != nil {
		patch["title"] = strings.TrimSpace(*in.Title)
	}
	if in.ImageURL != nil {
		patch["image_url"] = strings.TrimSpace(*in.ImageURL)
	}
	if in.ImageWidth != nil {
		patch["image_width"] = *in.ImageWidth
	}
	if in.ImageHeight != nil {
		patch["image_height"] = *in.ImageHeight
	}
	if in.OrderIndex != nil {
		patch["order_index"] = *in.OrderIndex
	}
	if len(patch) == 0 {
		return cur, nil
	}

	sc, err := s.scenes.Update(ctx, id, patch)
	if err != nil {
		return nil, fromRepo(op, "scene", id, err)
	}
	return sc, nil
}

func (s *sceneService) ReorderScenes(ctx context.Context, caller auth.Caller, propertyID uuid.UUID, orderedIDs []uuid.UUID) ([]model.Scene, error) {
	const op = "reorder scenes"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, dup := seen[id]; dup {
			return nil, validationErr(op, "scene %s listed twice", id)
		}
		seen[id] = struct{}{}
	}

	if _, err := s.properties.Get(ctx, propertyID); err != nil {
		return nil, fromRepo(op, "property", propertyID, err)
	}
	current, err := s.scenes.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	owned := make(map[uuid.UUID]struct{}, len(current))
	for _, sc := range current {
		owned[sc.ID] = struct{}{}
	}
	for _, id := range orderedIDs {
		if _, ok := owned[id]; !ok {
			return nil, &Error{Kind: KindNotFound, Op: op, Msg: "scene " + id.String() + " does not belong to property " + propertyID.String()}
		}
	}
	if len(orderedIDs) != len(current) {
		return nil, validationErr(op, "ordered ids must list all %d scenes of the property", len(current))
	}

	if err := s.scenes.SetOrder(ctx, propertyID, orderedIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &Error{Kind: KindNotFound, Op: op, Msg: "scene removed while reordering", Err: err}
		}
		return nil, persistenceErr(op, err)
	}
	out, err := s.scenes.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	return out, nil
}

func (s *sceneService) SetDefaultScene(ctx context.Context, caller auth.Caller, sceneID uuid.UUID) (*model.Scene, error) {
	const op = "set default scene"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	sc, err := s.scenes.Get(ctx, sceneID)
	if err != nil {
		return nil, fromRepo(op, "scene", sceneID, err)
	}
	if sc.IsDefault {
		return sc, nil
	}
	if err := s.scenes.SetDefault(ctx, sc.PropertyID, sc.ID); err != nil {
		return nil, fromRepo(op, "scene", sceneID, err)
	}
	sc.IsDefault = true
	return sc, nil
}

func (s *sceneService) ListScenes(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) ([]model.Scene, error) {
	const op = "list scenes"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if _, err := s.properties.Get(ctx, propertyID); err != nil {
		return nil, fromRepo(op, "property", propertyID, err)
	}
	items, err := s.scenes.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	return items, nil
}

func (s *sceneService) GetScene(ctx context.Context, caller auth.Caller, id uuid.UUID) (*model.Scene, error) {
	const op = "get scene"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	sc, err := s.scenes.Get(ctx, id)
	if err != nil {
		return nil, fromRepo(op, "scene", id, err)
	}
	return sc, nil
}

// DeleteScene never removes the row directly; the cascade clears every
// edge first.
func (s *sceneService) DeleteScene(ctx context.Context, caller auth.Caller, id uuid.UUID, opts DeleteSceneOptions) (*CascadeResult, error) {
	const op = "delete scene"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	return s.cascade.Run(ctx, id, opts.policy())
}

// SelectNewDefault picks the scene with the lowest order_index, ties
// broken by creation time and then id.
func SelectNewDefault(remaining []model.Scene) (uuid.UUID, bool) {
	if len(remaining) == 0 {
		return uuid.Nil, false
	}
	sorted := make([]model.Scene, len(remaining))
	copy(sorted, remaining)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.OrderIndex != b.OrderIndex {
			return a.OrderIndex < b.OrderIndex
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return sorted[0].ID, true
}
