package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/infra/cache"
	"github.com/tours360/tourgraph/internal/infra/search"
	"go.uber.org/zap"
)

// PropertyLocker serializes graph edits on one property. *cache.PropertyLock
// is the production implementation.
type PropertyLocker interface {
	Acquire(ctx context.Context, propertyID uuid.UUID) (func(), error)
}

// EventPublisher is satisfied by *mq.Publisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error
}

// PropertyIndexer is satisfied by *search.SearchClient.
type PropertyIndexer interface {
	IndexProperty(doc search.PropertyDocument) error
	RemoveProperty(id string) error
}

// BlobStore is satisfied by *blob.S3Deps.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	DeleteByURL(ctx context.Context, url string) error
}

func authorize(ctx context.Context, a auth.Authorizer, caller auth.Caller, op string) error {
	if a == nil || !a.IsAuthorized(ctx, caller) {
		return authorizationErr(op)
	}
	return nil
}

func lockProperty(ctx context.Context, l PropertyLocker, op string, propertyID uuid.UUID) (func(), error) {
	if l == nil {
		return func() {}, nil
	}
	release, err := l.Acquire(ctx, propertyID)
	if err != nil {
		if errors.Is(err, cache.ErrLockHeld) {
			return nil, &Error{Kind: KindPersistence, Op: op, Msg: "property is being edited", Err: err}
		}
		return nil, persistenceErr(op, err)
	}
	return release, nil
}

type SceneDeletedEvent struct {
	PropertyID           uuid.UUID   `json:"property_id"`
	SceneID              uuid.UUID   `json:"scene_id"`
	Policy               string      `json:"policy"`
	DeletedHotspotIDs    []uuid.UUID `json:"deleted_hotspot_ids"`
	RetargetedHotspotIDs []uuid.UUID `json:"retargeted_hotspot_ids,omitempty"`
	NewDefaultSceneID    *uuid.UUID  `json:"new_default_scene_id,omitempty"`
	OccurredAt           time.Time   `json:"occurred_at"`
}

type PropertyStatusEvent struct {
	PropertyID uuid.UUID `json:"property_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LeadCreatedEvent carries no contact details; consumers load the lead.
type LeadCreatedEvent struct {
	LeadID     uuid.UUID `json:"lead_id"`
	PropertyID uuid.UUID `json:"property_id"`
	Interest   string    `json:"interest"`
	OccurredAt time.Time `json:"occurred_at"`
}

// tourEvents publishes domain events after the state change has committed.
// Delivery is best-effort: failures are logged and never undo the change.
type tourEvents struct {
	pub EventPublisher
	cfg *config.Config
	log *zap.Logger
}

func newTourEvents(pub EventPublisher, cfg *config.Config, log *zap.Logger) *tourEvents {
	if log == nil {
		log = zap.NewNop()
	}
	return &tourEvents{pub: pub, cfg: cfg, log: log}
}

func (e *tourEvents) emit(ctx context.Context, routingKey string, body any) {
	if e == nil || e.pub == nil || e.cfg == nil {
		return
	}
	if err := e.pub.PublishJSON(ctx, e.cfg.RabbitMQ.ExchangeName.Tour, routingKey, body); err != nil {
		e.log.Warn("publish tour event", zap.String("routing_key", routingKey), zap.Error(err))
	}
}

func (e *tourEvents) sceneDeleted(ctx context.Context, ev SceneDeletedEvent) {
	if e == nil || e.cfg == nil {
		return
	}
	e.emit(ctx, e.cfg.RabbitMQ.RoutingKey.SceneDeleted, ev)
}

func (e *tourEvents) propertyStatus(ctx context.Context, propertyID uuid.UUID, published bool) {
	if e == nil || e.cfg == nil {
		return
	}
	key, status := e.cfg.RabbitMQ.RoutingKey.PropertyUnpublished, "draft"
	if published {
		key, status = e.cfg.RabbitMQ.RoutingKey.PropertyPublished, "published"
	}
	e.emit(ctx, key, PropertyStatusEvent{PropertyID: propertyID, Status: status, OccurredAt: time.Now().UTC()})
}

func (e *tourEvents) leadCreated(ctx context.Context, ev LeadCreatedEvent) {
	if e == nil || e.cfg == nil {
		return
	}
	e.emit(ctx, e.cfg.RabbitMQ.RoutingKey.LeadCreated, ev)
}
