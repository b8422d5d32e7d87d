package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
	"github.com/tours360/tourgraph/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CascadeMode string

const (
	// CascadeDelete removes inbound navigation hotspots. It is the default:
	// a dangling navigation control is worse than a missing one.
	CascadeDelete CascadeMode = "delete"
	// CascadeRetarget points inbound navigation hotspots at FallbackSceneID.
	CascadeRetarget CascadeMode = "retarget"
)

type CascadePolicy struct {
	Mode            CascadeMode
	FallbackSceneID uuid.UUID
}

type CascadeResult struct {
	SceneID              uuid.UUID   `json:"scene_id"`
	PropertyID           uuid.UUID   `json:"property_id,omitempty"`
	AlreadyDeleted       bool        `json:"already_deleted,omitempty"`
	DeletedHotspotIDs    []uuid.UUID `json:"deleted_hotspot_ids"`
	RetargetedHotspotIDs []uuid.UUID `json:"retargeted_hotspot_ids,omitempty"`
	NewDefaultSceneID    *uuid.UUID  `json:"new_default_scene_id,omitempty"`
}

// CascadeCoordinator deletes a scene without leaving dangling edges. The
// steps run as a saga: owned hotspots, inbound hotspots, the scene row,
// then default promotion. Every step is idempotent, so a failed run can be
// repeated as is.
type CascadeCoordinator struct {
	scenes     repo.SceneRepo
	edges      HotspotService
	lock       PropertyLocker
	events     *tourEvents
	retryDelay time.Duration
	log        *zap.Logger
}

func NewCascadeCoordinator(scenes repo.SceneRepo, edges HotspotService, lock PropertyLocker, pub EventPublisher, cfg *config.Config, log *zap.Logger) *CascadeCoordinator {
	if log == nil {
		log = zap.NewNop()
	}
	c := &CascadeCoordinator{
		scenes: scenes,
		edges:  edges,
		lock:   lock,
		events: newTourEvents(pub, cfg, log),
		log:    log,
	}
	if cfg != nil {
		c.retryDelay = cfg.Cascade.RetryDelay
	}
	return c
}

func (c *CascadeCoordinator) Run(ctx context.Context, sceneID uuid.UUID, policy CascadePolicy) (res *CascadeResult, err error) {
	const op = "delete scene"
	start := time.Now()
	var owned, inbound int
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
			if errors.Is(err, ErrCascadeIncomplete) {
				outcome = "incomplete"
			}
		}
		telemetry.RecordCascade(ctx, outcome, float64(time.Since(start).Milliseconds()), owned, inbound)
	}()

	if policy.Mode == "" {
		policy.Mode = CascadeDelete
	}
	switch policy.Mode {
	case CascadeDelete:
	case CascadeRetarget:
		if policy.FallbackSceneID == uuid.Nil {
			return nil, validationErr(op, "fallback_scene_id is required to retarget inbound hotspots")
		}
		if policy.FallbackSceneID == sceneID {
			return nil, validationErr(op, "fallback scene must differ from the scene being deleted")
		}
	default:
		return nil, validationErr(op, "unknown cascade policy %q", policy.Mode)
	}

	scene, err := c.scenes.Get(ctx, sceneID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// a previous run already finished the job
		return &CascadeResult{SceneID: sceneID, AlreadyDeleted: true, DeletedHotspotIDs: []uuid.UUID{}}, nil
	}
	if err != nil {
		return nil, persistenceErr(op, err)
	}

	if policy.Mode == CascadeRetarget {
		fallback, err := c.scenes.Get(ctx, policy.FallbackSceneID)
		if err != nil {
			return nil, fromRepo(op, "fallback scene", policy.FallbackSceneID, err)
		}
		if fallback.PropertyID != scene.PropertyID {
			return nil, crossPropertyErr(op, scene.PropertyID, fallback.PropertyID)
		}
	}

	release, err := lockProperty(ctx, c.lock, op, scene.PropertyID)
	if err != nil {
		return nil, err
	}
	defer release()

	res = &CascadeResult{SceneID: sceneID, PropertyID: scene.PropertyID, DeletedHotspotIDs: []uuid.UUID{}}
	var failed []uuid.UUID
	var lastErr error

	// 1. outbound edges, self-loops included
	ownedList, err := c.edges.ListOwnedHotspots(ctx, sceneID)
	if err != nil {
		return nil, err
	}
	for _, h := range ownedList {
		if err := c.withRetry(ctx, func() error { return c.edges.RemoveHotspot(ctx, h.ID) }); err != nil {
			failed, lastErr = append(failed, h.ID), err
			continue
		}
		res.DeletedHotspotIDs = append(res.DeletedHotspotIDs, h.ID)
		owned++
	}

	// 2. inbound edges from other scenes
	inboundList, err := c.edges.ListInboundNavigationHotspots(ctx, sceneID)
	if err != nil {
		return nil, err
	}
	for _, h := range inboundList {
		if h.SceneID == sceneID {
			continue
		}
		if policy.Mode == CascadeRetarget {
			err = c.withRetry(ctx, func() error { return c.edges.RetargetHotspot(ctx, h.ID, policy.FallbackSceneID) })
		} else {
			err = c.withRetry(ctx, func() error { return c.edges.RemoveHotspot(ctx, h.ID) })
		}
		if err != nil {
			failed, lastErr = append(failed, h.ID), err
			continue
		}
		if policy.Mode == CascadeRetarget {
			res.RetargetedHotspotIDs = append(res.RetargetedHotspotIDs, h.ID)
		} else {
			res.DeletedHotspotIDs = append(res.DeletedHotspotIDs, h.ID)
		}
		inbound++
	}

	if len(failed) > 0 {
		return nil, c.incomplete(ctx, op, sceneID, "some hotspots could not be removed; scene kept", failed, lastErr)
	}

	// 3. the scene row; a RESTRICT violation means an edge appeared after step 2
	if err := c.scenes.Delete(ctx, sceneID); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, c.incomplete(ctx, op, sceneID, "hotspots referencing the scene appeared during deletion", nil, err)
		}
		return nil, persistenceErr(op, err)
	}

	// 4.
	newDefault, err := c.promoteDefault(ctx, scene.PropertyID)
	if err != nil {
		return nil, &Error{Kind: KindPersistence, Op: op, Msg: "scene deleted but default promotion failed", Err: err}
	}
	res.NewDefaultSceneID = newDefault

	c.events.sceneDeleted(ctx, SceneDeletedEvent{
		PropertyID:           scene.PropertyID,
		SceneID:              sceneID,
		Policy:               string(policy.Mode),
		DeletedHotspotIDs:    res.DeletedHotspotIDs,
		RetargetedHotspotIDs: res.RetargetedHotspotIDs,
		NewDefaultSceneID:    newDefault,
		OccurredAt:           time.Now().UTC(),
	})
	return res, nil
}

// withRetry runs fn and, on failure, once more after retryDelay.
func (c *CascadeCoordinator) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || ctx.Err() != nil {
		return err
	}
	if c.retryDelay > 0 {
		t := time.NewTimer(c.retryDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return err
		case <-t.C:
		}
	}
	return fn()
}

// incomplete re-reads the edges still attached to the scene so the error
// names what is actually left. fallback is used if that read fails.
func (c *CascadeCoordinator) incomplete(ctx context.Context, op string, sceneID uuid.UUID, msg string, fallback []uuid.UUID, cause error) error {
	ids, err := c.remainingEdges(ctx, sceneID)
	if err != nil {
		c.log.Warn("re-read remaining hotspots", zap.String("scene_id", sceneID.String()), zap.Error(err))
		ids = fallback
	}
	return cascadeIncompleteErr(op, msg, ids, cause)
}

func (c *CascadeCoordinator) remainingEdges(ctx context.Context, sceneID uuid.UUID) ([]uuid.UUID, error) {
	owned, err := c.edges.ListOwnedHotspots(ctx, sceneID)
	if err != nil {
		return nil, err
	}
	inbound, err := c.edges.ListInboundNavigationHotspots(ctx, sceneID)
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(owned)+len(inbound))
	ids := make([]uuid.UUID, 0, len(owned)+len(inbound))
	for _, list := range [][]model.Hotspot{owned, inbound} {
		for _, h := range list {
			if _, ok := seen[h.ID]; ok {
				continue
			}
			seen[h.ID] = struct{}{}
			ids = append(ids, h.ID)
		}
	}
	return ids, nil
}

// promoteDefault gives the property a default scene again when scenes
// remain and none is marked.
func (c *CascadeCoordinator) promoteDefault(ctx context.Context, propertyID uuid.UUID) (*uuid.UUID, error) {
	remaining, err := c.scenes.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	for _, s := range remaining {
		if s.IsDefault {
			return nil, nil
		}
	}
	id, ok := SelectNewDefault(remaining)
	if !ok {
		return nil, nil
	}
	if err := c.scenes.SetDefault(ctx, propertyID, id); err != nil {
		return nil, err
	}
	return &id, nil
}
