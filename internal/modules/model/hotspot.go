package model

import (
	"time"

	"github.com/google/uuid"
)

type HotspotType string

const (
	HotspotTypeInfo       HotspotType = "info"
	HotspotTypeNavigation HotspotType = "navigation"
)

// Hotspot is a directed edge host scene -> target scene when Type is
// navigation. Both references are RESTRICT foreign keys: the scene cascade
// has to clear them before a scene row can go.
type Hotspot struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SceneID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"scene_id"`
	Type          HotspotType `gorm:"type:text;not null;check:type IN ('info','navigation')" json:"type"`
	Title         string      `gorm:"type:text;not null" json:"title"`
	Description   *string     `gorm:"type:text" json:"description,omitempty"`
	Pitch         float64     `gorm:"not null" json:"pitch"`
	Yaw           float64     `gorm:"not null" json:"yaw"`
	TargetSceneID *uuid.UUID  `gorm:"type:uuid;index" json:"target_scene_id,omitempty"`
	TargetPitch   *float64    `json:"target_pitch,omitempty"`
	TargetYaw     *float64    `json:"target_yaw,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Hotspot <-> host Scene
	Scene *Scene `gorm:"foreignKey:SceneID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"-"`

	// Hotspot <-> target Scene
	TargetScene *Scene `gorm:"foreignKey:TargetSceneID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"-"`
}

func (Hotspot) TableName() string { return "hotspots" }

func (h *Hotspot) IsNavigation() bool { return h.Type == HotspotTypeNavigation }
