package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadInterest values are the ones posted by the public contact form.
type LeadInterest string

const (
	LeadInterestPurchase    LeadInterest = "compra"
	LeadInterestRent        LeadInterest = "aluguel"
	LeadInterestInformation LeadInterest = "informacoes"
	LeadInterestVisit       LeadInterest = "visita"
	LeadInterestOther       LeadInterest = "outro"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusClosed    LeadStatus = "closed"
)

const LeadSourceTour = "tour_virtual"

// Lead is a contact request left by a visitor of a published tour.
type Lead struct {
	ID         uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PropertyID uuid.UUID    `gorm:"type:uuid;not null;index" json:"property_id"`
	Name       string       `gorm:"type:text;not null" json:"name"`
	Email      string       `gorm:"type:text;not null" json:"email"`
	Phone      string       `gorm:"type:text;not null" json:"phone"`
	Whatsapp   *string      `gorm:"type:text" json:"whatsapp,omitempty"`
	Interest   LeadInterest `gorm:"type:text;not null;default:'informacoes';check:interest IN ('compra','aluguel','informacoes','visita','outro')" json:"interest"`
	Message    *string      `gorm:"type:text" json:"message,omitempty"`
	Consent    bool         `gorm:"not null" json:"consent"`
	Source     string       `gorm:"type:text;not null;default:'tour_virtual'" json:"source"`
	Status     LeadStatus   `gorm:"type:text;not null;default:'new';check:status IN ('new','contacted','qualified','closed');index" json:"status"`

	// PropertyTitle is filled by list queries that join properties.
	PropertyTitle string `gorm:"->;-:migration" json:"property_title,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// Stats summarises the editor's catalogue for the dashboard.
type Stats struct {
	Properties          int64 `json:"properties"`
	PublishedProperties int64 `json:"published_properties"`
	DraftProperties     int64 `json:"draft_properties"`
	Scenes              int64 `json:"scenes"`
	Hotspots            int64 `json:"hotspots"`
	GalleryImages       int64 `json:"gallery_images"`
	Leads               int64 `json:"leads"`
	NewLeads            int64 `json:"new_leads"`
}
