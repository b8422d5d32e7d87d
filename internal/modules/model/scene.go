package model

import (
	"time"

	"github.com/google/uuid"
)

type Scene struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index:ix_scene_property_order,priority:1;uniqueIndex:uq_scene_default_per_property,where:is_default" json:"property_id"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	ImageURL     string    `gorm:"type:text;not null" json:"image_url"`
	ImageWidth   int       `gorm:"not null;default:0" json:"image_width"`
	ImageHeight  int       `gorm:"not null;default:0" json:"image_height"`
	InitialPitch float64   `gorm:"not null;default:0" json:"initial_pitch"`
	InitialYaw   float64   `gorm:"not null;default:0" json:"initial_yaw"`
	InitialHfov  float64   `gorm:"not null;default:110" json:"initial_hfov"`
	IsDefault    bool      `gorm:"not null;default:false" json:"is_default"`
	OrderIndex   int       `gorm:"not null;default:0;index:ix_scene_property_order,priority:2" json:"order_index"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Scene) TableName() string { return "scenes" }
