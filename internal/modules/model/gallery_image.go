package model

import (
	"time"

	"github.com/google/uuid"
)

type GalleryImage struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_gallery_main_per_property,where:is_main" json:"property_id"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	IsMain     bool      `gorm:"not null;default:false" json:"is_main"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (GalleryImage) TableName() string { return "gallery_images" }
