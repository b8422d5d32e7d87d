package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PropertyStatus string

const (
	PropertyStatusDraft     PropertyStatus = "draft"
	PropertyStatusPublished PropertyStatus = "published"
)

type Property struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string            `gorm:"type:text;not null" json:"title"`
	Description string            `gorm:"type:text;not null;default:''" json:"description"`
	Location    string            `gorm:"type:text;not null;default:''" json:"location"`
	Price       float64           `gorm:"type:numeric(14,2);not null;default:0" json:"price"`
	Type        string            `gorm:"type:text;not null;default:''" json:"type"`
	Status      PropertyStatus    `gorm:"type:text;not null;default:'draft';check:status IN ('draft','published');index" json:"status"`
	Details     datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"details,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Property <-> Scene. Scenes must be removed through the cascade, never by the database.
	Scenes []Scene `gorm:"constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"-"`

	// Property <-> GalleryImage
	GalleryImages []GalleryImage `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Property <-> Lead
	Leads []Lead `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Property) TableName() string { return "properties" }

// IsVisible reports whether the property may be shown outside the editor.
func IsVisible(p *Property) bool {
	return p != nil && p.Status == PropertyStatusPublished
}
