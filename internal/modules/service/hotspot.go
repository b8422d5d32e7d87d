package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HotspotService interface {
	CreateHotspot(ctx context.Context, caller auth.Caller, in CreateHotspotInput) (*model.Hotspot, error)
	UpdateHotspot(ctx context.Context, caller auth.Caller, id uuid.UUID, patch HotspotPatch) (*model.Hotspot, error)
	DeleteHotspot(ctx context.Context, caller auth.Caller, id uuid.UUID) error
	ListHotspots(ctx context.Context, caller auth.Caller, sceneID uuid.UUID) ([]model.Hotspot, error)

	// Internal call path for the scene cascade. No caller check, and a
	// hotspot that is already gone counts as removed.
	ListOwnedHotspots(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error)
	ListInboundNavigationHotspots(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error)
	RemoveHotspot(ctx context.Context, id uuid.UUID) error
	RetargetHotspot(ctx context.Context, id uuid.UUID, targetSceneID uuid.UUID) error
}

type hotspotService struct {
	scenes   repo.SceneRepo
	hotspots repo.HotspotRepo
	lock     PropertyLocker
	authz    auth.Authorizer
	log      *zap.Logger
}

func NewHotspotService(scenes repo.SceneRepo, hotspots repo.HotspotRepo, lock PropertyLocker, authz auth.Authorizer, log *zap.Logger) HotspotService {
	return &hotspotService{
		scenes:   scenes,
		hotspots: hotspots,
		lock:     lock,
		authz:    authz,
		log:      log,
	}
}

type CreateHotspotInput struct {
	SceneID       uuid.UUID         `json:"scene_id"`
	Type          model.HotspotType `json:"type"`
	Title         string            `json:"title"`
	Description   *string           `json:"description,omitempty"`
	Pitch         float64           `json:"pitch"`
	Yaw           float64           `json:"yaw"`
	TargetSceneID *uuid.UUID        `json:"target_scene_id,omitempty"`
	TargetPitch   *float64          `json:"target_pitch,omitempty"`
	TargetYaw     *float64          `json:"target_yaw,omitempty"`
}

// HotspotPatch holds the fields to change; nil means unchanged. An empty
// Description clears it.
type HotspotPatch struct {
	Type          *model.HotspotType `json:"type,omitempty"`
	Title         *string            `json:"title,omitempty"`
	Description   *string            `json:"description,omitempty"`
	Pitch         *float64           `json:"pitch,omitempty"`
	Yaw           *float64           `json:"yaw,omitempty"`
	TargetSceneID *uuid.UUID         `json:"target_scene_id,omitempty"`
	TargetPitch   *float64           `json:"target_pitch,omitempty"`
	TargetYaw     *float64           `json:"target_yaw,omitempty"`
}

func (p HotspotPatch) touchesTarget() bool {
	return p.TargetSceneID != nil || p.TargetPitch != nil || p.TargetYaw != nil
}

func validHotspotType(t model.HotspotType) bool {
	return t == model.HotspotTypeInfo || t == model.HotspotTypeNavigation
}

func validateTargetAngles(op string, pitch, yaw *float64) error {
	p, y := 0.0, 0.0
	if pitch != nil {
		p = *pitch
	}
	if yaw != nil {
		y = *yaw
	}
	return validateAngles(op, p, y)
}

func validateCreateHotspot(op string, in CreateHotspotInput) error {
	if in.SceneID == uuid.Nil {
		return validationErr(op, "scene_id is required")
	}
	if !validHotspotType(in.Type) {
		return validationErr(op, "type must be one of [info navigation]")
	}
	if err := requireText(op, "title", in.Title); err != nil {
		return err
	}
	if err := validateAngles(op, in.Pitch, in.Yaw); err != nil {
		return err
	}
	switch in.Type {
	case model.HotspotTypeNavigation:
		if in.TargetSceneID == nil || *in.TargetSceneID == uuid.Nil {
			return validationErr(op, "target_scene_id is required for navigation hotspots")
		}
		return validateTargetAngles(op, in.TargetPitch, in.TargetYaw)
	default:
		if in.TargetSceneID != nil || in.TargetPitch != nil || in.TargetYaw != nil {
			return validationErr(op, "info hotspots must not carry target fields")
		}
	}
	return nil
}

// checkTarget loads the target scene and enforces the same-property rule.
// A self-loop (target == host) is legal.
func (s *hotspotService) checkTarget(ctx context.Context, op string, host *model.Scene, targetID uuid.UUID) error {
	if targetID == host.ID {
		return nil
	}
	target, err := s.scenes.Get(ctx, targetID)
	if err != nil {
		return fromRepo(op, "target scene", targetID, err)
	}
	if target.PropertyID != host.PropertyID {
		return crossPropertyErr(op, host.PropertyID, target.PropertyID)
	}
	return nil
}

func (s *hotspotService) CreateHotspot(ctx context.Context, caller auth.Caller, in CreateHotspotInput) (*model.Hotspot, error) {
	const op = "create hotspot"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if err := validateCreateHotspot(op, in); err != nil {
		return nil, err
	}

	host, err := s.scenes.Get(ctx, in.SceneID)
	if err != nil {
		return nil, fromRepo(op, "scene", in.SceneID, err)
	}

	release, err := lockProperty(ctx, s.lock, op, host.PropertyID)
	if err != nil {
		return nil, err
	}
	defer release()

	// the target is verified under the property lock, right before insert
	if in.Type == model.HotspotTypeNavigation {
		if err := s.checkTarget(ctx, op, host, *in.TargetSceneID); err != nil {
			return nil, err
		}
	}

	h := &model.Hotspot{
		ID:            uuid.New(),
		SceneID:       in.SceneID,
		Type:          in.Type,
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Pitch:         in.Pitch,
		Yaw:           in.Yaw,
		TargetSceneID: in.TargetSceneID,
		TargetPitch:   in.TargetPitch,
		TargetYaw:     in.TargetYaw,
	}
	if err := s.hotspots.Create(ctx, h); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, &Error{Kind: KindNotFound, Op: op, Msg: "host or target scene no longer exists", Err: err}
		}
		return nil, persistenceErr(op, err)
	}
	return h, nil
}

func validateHotspotPatch(op string, p HotspotPatch) error {
	if p.Type != nil && !validHotspotType(*p.Type) {
		return validationErr(op, "type must be one of [info navigation]")
	}
	if p.Title != nil {
		if err := requireText(op, "title", *p.Title); err != nil {
			return err
		}
	}
	if p.Pitch != nil || p.Yaw != nil {
		if err := validateTargetAngles(op, p.Pitch, p.Yaw); err != nil {
			return err
		}
	}
	if p.TargetSceneID != nil && *p.TargetSceneID == uuid.Nil {
		return validationErr(op, "target_scene_id must not be empty")
	}
	return validateTargetAngles(op, p.TargetPitch, p.TargetYaw)
}

func (s *hotspotService) UpdateHotspot(ctx context.Context, caller auth.Caller, id uuid.UUID, p HotspotPatch) (*model.Hotspot, error) {
	const op = "update hotspot"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if err := validateHotspotPatch(op, p); err != nil {
		return nil, err
	}

	cur, err := s.hotspots.Get(ctx, id)
	if err != nil {
		return nil, fromRepo(op, "hotspot", id, err)
	}

	newType := cur.Type
	if p.Type != nil {
		newType = *p.Type
	}

	patch := map[string]any{}
	if p.Type != nil {
		patch["type"] = newType
	}
	if p.Title != nil {
		patch["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		if *p.Description == "" {
			patch["description"] = nil
		} else {
			patch["description"] = *p.Description
		}
	}
	if p.Pitch != nil {
		patch["pitch"] = *p.Pitch
	}
	if p.Yaw != nil {
		patch["yaw"] = *p.Yaw
	}

	var checkTargetID *uuid.UUID
	switch newType {
	case model.HotspotTypeInfo:
		if p.touchesTarget() {
			return nil, validationErr(op, "info hotspots must not carry target fields")
		}
		if cur.IsNavigation() {
			// clear the edge in the same statement as the type change
			patch["target_scene_id"] = nil
			patch["target_pitch"] = nil
			patch["target_yaw"] = nil
		}
	case model.HotspotTypeNavigation:
		target := cur.TargetSceneID
		if p.TargetSceneID != nil {
			target = p.TargetSceneID
			patch["target_scene_id"] = *p.TargetSceneID
		}
		if target == nil {
			return nil, validationErr(op, "target_scene_id is required for navigation hotspots")
		}
		if p.TargetSceneID != nil || !cur.IsNavigation() {
			checkTargetID = target
		}
		if p.TargetPitch != nil {
			patch["target_pitch"] = *p.TargetPitch
		}
		if p.TargetYaw != nil {
			patch["target_yaw"] = *p.TargetYaw
		}
	}

	if len(patch) == 0 {
		return cur, nil
	}

	if checkTargetID != nil {
		host, err := s.scenes.Get(ctx, cur.SceneID)
		if err != nil {
			return nil, fromRepo(op, "scene", cur.SceneID, err)
		}
		release, err := lockProperty(ctx, s.lock, op, host.PropertyID)
		if err != nil {
			return nil, err
		}
		defer release()
		if err := s.checkTarget(ctx, op, host, *checkTargetID); err != nil {
			return nil, err
		}
	}

	out, err := s.hotspots.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, &Error{Kind: KindNotFound, Op: op, Msg: "target scene no longer exists", Err: err}
		}
		return nil, fromRepo(op, "hotspot", id, err)
	}
	return out, nil
}

func (s *hotspotService) DeleteHotspot(ctx context.Context, caller auth.Caller, id uuid.UUID) error {
	const op = "delete hotspot"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return err
	}
	if err := s.hotspots.Delete(ctx, id); err != nil {
		return persistenceErr(op, err)
	}
	return nil
}

func (s *hotspotService) ListHotspots(ctx context.Context, caller auth.Caller, sceneID uuid.UUID) ([]model.Hotspot, error) {
	const op = "list hotspots"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if _, err := s.scenes.Get(ctx, sceneID); err != nil {
		return nil, fromRepo(op, "scene", sceneID, err)
	}
	items, err := s.hotspots.ListByScene(ctx, sceneID)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	return items, nil
}

func (s *hotspotService) ListOwnedHotspots(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error) {
	items, err := s.hotspots.ListByScene(ctx, sceneID)
	if err != nil {
		return nil, persistenceErr("list owned hotspots", err)
	}
	return items, nil
}

func (s *hotspotService) ListInboundNavigationHotspots(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error) {
	items, err := s.hotspots.ListByTarget(ctx, sceneID)
	if err != nil {
		return nil, persistenceErr("list inbound hotspots", err)
	}
	return items, nil
}

func (s *hotspotService) RemoveHotspot(ctx context.Context, id uuid.UUID) error {
	if err := s.hotspots.Delete(ctx, id); err != nil {
		return persistenceErr("remove hotspot", err)
	}
	return nil
}

func (s *hotspotService) RetargetHotspot(ctx context.Context, id uuid.UUID, targetSceneID uuid.UUID) error {
	_, err := s.hotspots.Update(ctx, id, map[string]any{
		"target_scene_id": targetSceneID,
		"target_pitch":    nil,
		"target_yaw":      nil,
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return persistenceErr("retarget hotspot", err)
	}
	return nil
}
