package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LeadService handles contact requests. CreateLead is open to tour
// visitors; everything else is an editor operation.
type LeadService interface {
	CreateLead(ctx context.Context, in CreateLeadInput) (*model.Lead, error)
	// ListLeads lists every property when propertyID is uuid.Nil.
	ListLeads(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) ([]model.Lead, error)
	UpdateLeadStatus(ctx context.Context, caller auth.Caller, id uuid.UUID, status model.LeadStatus) (*model.Lead, error)
	DeleteLead(ctx context.Context, caller auth.Caller, id uuid.UUID) error
}

type leadService struct {
	properties repo.PropertyRepo
	leads      repo.LeadRepo
	events     *tourEvents
	authz      auth.Authorizer
	log        *zap.Logger
}

func NewLeadService(properties repo.PropertyRepo, leads repo.LeadRepo, pub EventPublisher, cfg *config.Config, authz auth.Authorizer, log *zap.Logger) LeadService {
	if log == nil {
		log = zap.NewNop()
	}
	return &leadService{
		properties: properties,
		leads:      leads,
		events:     newTourEvents(pub, cfg, log),
		authz:      authz,
		log:        log,
	}
}

type CreateLeadInput struct {
	PropertyID uuid.UUID          `json:"property_id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Whatsapp   *string            `json:"whatsapp,omitempty"`
	Interest   model.LeadInterest `json:"interest"`
	Message    *string            `json:"message,omitempty"`
	Consent    bool               `json:"consent"`
}

type leadFields struct {
	Name     string `validate:"required,max=200"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,max=40"`
	Interest string `validate:"oneof=compra aluguel informacoes visita outro"`
	Consent  bool   `validate:"required"`
	Message  string `validate:"max=5000"`
}

type leadStatus struct {
	Status string `validate:"oneof=new contacted qualified closed"`
}

func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

// CreateLead records a visitor's contact request. Only published
// properties accept leads; a draft is reported as not found.
func (s *leadService) CreateLead(ctx context.Context, in CreateLeadInput) (*model.Lead, error) {
	const op = "create lead"
	if in.PropertyID == uuid.Nil {
		return nil, validationErr(op, "property_id is required")
	}
	if in.Interest == "" {
		in.Interest = model.LeadInterestInformation
	}
	msg := optionalText(in.Message)
	fields := leadFields{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Interest: string(in.Interest),
		Consent:  in.Consent,
	}
	if msg != nil {
		fields.Message = *msg
	}
	if err := validateStruct(op, fields); err != nil {
		return nil, err
	}

	p, err := s.properties.Get(ctx, in.PropertyID)
	if err != nil {
		return nil, fromRepo(op, "property", in.PropertyID, err)
	}
	if !model.IsVisible(p) {
		return nil, notFoundErr(op, "property", in.PropertyID)
	}

	l := &model.Lead{
		ID:         uuid.New(),
		PropertyID: in.PropertyID,
		Name:       fields.Name,
		Email:      strings.ToLower(fields.Email),
		Phone:      fields.Phone,
		Whatsapp:   optionalText(in.Whatsapp),
		Interest:   in.Interest,
		Message:    msg,
		Consent:    true,
		Source:     model.LeadSourceTour,
		Status:     model.LeadStatusNew,
	}
	if err := s.leads.Create(ctx, l); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, notFoundErr(op, "property", in.PropertyID)
		}
		return nil, persistenceErr(op, err)
	}

	s.events.leadCreated(ctx, LeadCreatedEvent{
		LeadID:     l.ID,
		PropertyID: l.PropertyID,
		Interest:   string(l.Interest),
		OccurredAt: time.Now().UTC(),
	})
	return l, nil
}

func (s *leadService) ListLeads(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) ([]model.Lead, error) {
	const op = "list leads"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if propertyID != uuid.Nil {
		if _, err := s.properties.Get(ctx, propertyID); err != nil {
			return nil, fromRepo(op, "property", propertyID, err)
		}
	}
	items, err := s.leads.List(ctx, propertyID)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	return items, nil
}

func (s *leadService) UpdateLeadStatus(ctx context.Context, caller auth.Caller, id uuid.UUID, status model.LeadStatus) (*model.Lead, error) {
	const op = "update lead status"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if err := validateStruct(op, leadStatus{Status: string(status)}); err != nil {
		return nil, err
	}
	l, err := s.leads.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fromRepo(op, "lead", id, err)
	}
	return l, nil
}

// DeleteLead is idempotent.
func (s *leadService) DeleteLead(ctx context.Context, caller auth.Caller, id uuid.UUID) error {
	const op = "delete lead"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return err
	}
	if err := s.leads.Delete(ctx, id); err != nil {
		return persistenceErr(op, err)
	}
	return nil
}
