package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/infra/cache"
	"github.com/tours360/tourgraph/internal/infra/search"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var errTransient = errors.New("connection reset by peer")

// memStore is an in-memory gateway with the same constraint behaviour as
// the Postgres schema: RESTRICT foreign keys on hotspots, one default
// scene and one main image per property, idempotent deletes.
type memStore struct {
	mu         sync.Mutex
	clock      time.Time
	properties map[uuid.UUID]model.Property
	scenes     map[uuid.UUID]model.Scene
	hotspots   map[uuid.UUID]model.Hotspot
	gallery    map[uuid.UUID]model.GalleryImage
	leads      map[uuid.UUID]model.Lead

	// hotspotDeleteFailures makes Delete fail that many times for an id.
	hotspotDeleteFailures map[uuid.UUID]int
	// beforeSceneDelete / beforeHotspotCreate run outside the store lock.
	beforeSceneDelete   func(id uuid.UUID)
	beforeHotspotCreate func(h *model.Hotspot)
}

func newMemStore() *memStore {
	return &memStore{
		clock:                 time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		properties:            map[uuid.UUID]model.Property{},
		scenes:                map[uuid.UUID]model.Scene{},
		hotspots:              map[uuid.UUID]model.Hotspot{},
		gallery:               map[uuid.UUID]model.GalleryImage{},
		leads:                 map[uuid.UUID]model.Lead{},
		hotspotDeleteFailures: map[uuid.UUID]int{},
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}

func (m *memStore) sceneReferenced(id uuid.UUID) bool {
	for _, h := range m.hotspots {
		if h.SceneID == id || (h.TargetSceneID != nil && *h.TargetSceneID == id) {
			return true
		}
	}
	return false
}

func (m *memStore) defaultCount(propertyID uuid.UUID) int {
	n := 0
	for _, s := range m.scenes {
		if s.PropertyID == propertyID && s.IsDefault {
			n++
		}
	}
	return n
}

func (m *memStore) hotspotRefsOK(h model.Hotspot) bool {
	if _, ok := m.scenes[h.SceneID]; !ok {
		return false
	}
	if h.TargetSceneID != nil {
		if _, ok := m.scenes[*h.TargetSceneID]; !ok {
			return false
		}
	}
	return true
}

// ---- properties

type fakePropertyRepo struct{ m *memStore }

func (r fakePropertyRepo) Create(_ context.Context, p *model.Property) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := r.m.tick()
	p.CreatedAt, p.UpdatedAt = now, now
	r.m.properties[p.ID] = *p
	return nil
}

func (r fakePropertyRepo) Get(_ context.Context, id uuid.UUID) (*model.Property, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.properties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r fakePropertyRepo) ListWithCursor(_ context.Context, status model.PropertyStatus, afterT time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]model.Property, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var items []model.Property
	for _, p := range r.m.properties {
		if status != "" && p.Status != status {
			continue
		}
		items = append(items, p)
	}
	less := func(a, b model.Property) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	}
	sort.Slice(items, func(i, j int) bool {
		if timeDesc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
	if afterID != uuid.Nil {
		cursor := model.Property{ID: afterID, CreatedAt: afterT}
		var rest []model.Property
		for _, p := range items {
			if (!timeDesc && less(cursor, p)) || (timeDesc && less(p, cursor)) {
				rest = append(rest, p)
			}
		}
		items = rest
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r fakePropertyRepo) Update(_ context.Context, id uuid.UUID, patch map[string]any) (*model.Property, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.properties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range patch {
		switch k {
		case "title":
			p.Title = v.(string)
		case "description":
			p.Description = v.(string)
		case "location":
			p.Location = v.(string)
		case "price":
			p.Price = v.(float64)
		case "type":
			p.Type = v.(string)
		case "status":
			p.Status = v.(model.PropertyStatus)
		case "details":
			p.Details = v.(datatypes.JSONMap)
		default:
			panic("unexpected property column " + k)
		}
	}
	p.UpdatedAt = r.m.tick()
	r.m.properties[id] = p
	return &p, nil
}

func (r fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, s := range r.m.scenes {
		if s.PropertyID == id {
			return gorm.ErrForeignKeyViolated
		}
	}
	for gid, g := range r.m.gallery {
		if g.PropertyID == id {
			delete(r.m.gallery, gid)
		}
	}
	for lid, l := range r.m.leads {
		if l.PropertyID == id {
			delete(r.m.leads, lid)
		}
	}
	delete(r.m.properties, id)
	return nil
}

// ---- scenes

type fakeSceneRepo struct{ m *memStore }

func (r fakeSceneRepo) Create(_ context.Context, s *model.Scene) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.properties[s.PropertyID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if s.IsDefault && r.m.defaultCount(s.PropertyID) > 0 {
		return gorm.ErrDuplicatedKey
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := r.m.tick()
	s.CreatedAt, s.UpdatedAt = now, now
	r.m.scenes[s.ID] = *s
	return nil
}

func (r fakeSceneRepo) Get(_ context.Context, id uuid.UUID) (*model.Scene, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.scenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r fakeSceneRepo) list(propertyID uuid.UUID) []model.Scene {
	var out []model.Scene
	for _, s := range r.m.scenes {
		if s.PropertyID == propertyID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r fakeSceneRepo) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]model.Scene, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.list(propertyID), nil
}

func (r fakeSceneRepo) CountByProperty(_ context.Context, propertyID uuid.UUID) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return int64(len(r.list(propertyID))), nil
}

func (r fakeSceneRepo) MaxOrderIndex(_ context.Context, propertyID uuid.UUID) (int, bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	scenes := r.list(propertyID)
	if len(scenes) == 0 {
		return 0, false, nil
	}
	maxOrder := scenes[0].OrderIndex
	for _, s := range scenes {
		if s.OrderIndex > maxOrder {
			maxOrder = s.OrderIndex
		}
	}
	return maxOrder, true, nil
}

func (r fakeSceneRepo) HasDefault(_ context.Context, propertyID uuid.UUID) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.defaultCount(propertyID) > 0, nil
}

func (r fakeSceneRepo) Update(_ context.Context, id uuid.UUID, patch map[string]any) (*model.Scene, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.scenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range patch {
		switch k {
		case "title":
			s.Title = v.(string)
		case "image_url":
			s.ImageURL = v.(string)
		case "image_width":
			s.ImageWidth = v.(int)
		case "image_height":
			s.ImageHeight = v.(int)
		case "initial_pitch":
			s.InitialPitch = v.(float64)
		case "initial_yaw":
			s.InitialYaw = v.(float64)
		case "initial_hfov":
			s.InitialHfov = v.(float64)
		case "order_index":
			s.OrderIndex = v.(int)
		default:
			panic("unexpected scene column " + k)
		}
	}
	s.UpdatedAt = r.m.tick()
	r.m.scenes[id] = s
	return &s, nil
}

func (r fakeSceneRepo) SetOrder(_ context.Context, propertyID uuid.UUID, orderedIDs []uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, id := range orderedIDs {
		if s, ok := r.m.scenes[id]; !ok || s.PropertyID != propertyID {
			return gorm.ErrRecordNotFound
		}
	}
	for i, id := range orderedIDs {
		s := r.m.scenes[id]
		s.OrderIndex = i
		r.m.scenes[id] = s
	}
	return nil
}

func (r fakeSceneRepo) SetDefault(_ context.Context, propertyID uuid.UUID, sceneID uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	target, ok := r.m.scenes[sceneID]
	if !ok || target.PropertyID != propertyID {
		return gorm.ErrRecordNotFound
	}
	for id, s := range r.m.scenes {
		if s.PropertyID == propertyID {
			s.IsDefault = id == sceneID
			r.m.scenes[id] = s
		}
	}
	return nil
}

func (r fakeSceneRepo) Delete(_ context.Context, id uuid.UUID) error {
	if hook := r.m.beforeSceneDelete; hook != nil {
		hook(id)
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.sceneReferenced(id) {
		return gorm.ErrForeignKeyViolated
	}
	delete(r.m.scenes, id)
	return nil
}

// ---- hotspots

type fakeHotspotRepo struct{ m *memStore }

func (r fakeHotspotRepo) Create(_ context.Context, h *model.Hotspot) error {
	if hook := r.m.beforeHotspotCreate; hook != nil {
		hook(h)
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if !r.m.hotspotRefsOK(*h) {
		return gorm.ErrForeignKeyViolated
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	now := r.m.tick()
	h.CreatedAt, h.UpdatedAt = now, now
	r.m.hotspots[h.ID] = *h
	return nil
}

func (r fakeHotspotRepo) Get(_ context.Context, id uuid.UUID) (*model.Hotspot, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	h, ok := r.m.hotspots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &h, nil
}

func (r fakeHotspotRepo) Update(_ context.Context, id uuid.UUID, patch map[string]any) (*model.Hotspot, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	h, ok := r.m.hotspots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range patch {
		switch k {
		case "type":
			h.Type = v.(model.HotspotType)
		case "title":
			h.Title = v.(string)
		case "description":
			if v == nil {
				h.Description = nil
			} else {
				d := v.(string)
				h.Description = &d
			}
		case "pitch":
			h.Pitch = v.(float64)
		case "yaw":
			h.Yaw = v.(float64)
		case "target_scene_id":
			if v == nil {
				h.TargetSceneID = nil
			} else {
				id := v.(uuid.UUID)
				h.TargetSceneID = &id
			}
		case "target_pitch":
			h.TargetPitch = floatPtr(v)
		case "target_yaw":
			h.TargetYaw = floatPtr(v)
		default:
			panic("unexpected hotspot column " + k)
		}
	}
	if !r.m.hotspotRefsOK(h) {
		return nil, gorm.ErrForeignKeyViolated
	}
	h.UpdatedAt = r.m.tick()
	r.m.hotspots[id] = h
	return &h, nil
}

func floatPtr(v any) *float64 {
	if v == nil {
		return nil
	}
	f := v.(float64)
	return &f
}

func (r fakeHotspotRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if n := r.m.hotspotDeleteFailures[id]; n > 0 {
		r.m.hotspotDeleteFailures[id] = n - 1
		return errTransient
	}
	delete(r.m.hotspots, id)
	return nil
}

func (r fakeHotspotRepo) filter(keep func(model.Hotspot) bool) []model.Hotspot {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []model.Hotspot
	for _, h := range r.m.hotspots {
		if keep(h) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r fakeHotspotRepo) ListByScene(_ context.Context, sceneID uuid.UUID) ([]model.Hotspot, error) {
	return r.filter(func(h model.Hotspot) bool { return h.SceneID == sceneID }), nil
}

func (r fakeHotspotRepo) ListByTarget(_ context.Context, sceneID uuid.UUID) ([]model.Hotspot, error) {
	return r.filter(func(h model.Hotspot) bool {
		return h.IsNavigation() && h.TargetSceneID != nil && *h.TargetSceneID == sceneID
	}), nil
}

func (r fakeHotspotRepo) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]model.Hotspot, error) {
	r.m.mu.Lock()
	owned := map[uuid.UUID]bool{}
	for id, s := range r.m.scenes {
		owned[id] = s.PropertyID == propertyID
	}
	r.m.mu.Unlock()
	return r.filter(func(h model.Hotspot) bool { return owned[h.SceneID] }), nil
}

// ---- gallery

type fakeGalleryRepo struct{ m *memStore }

func (r fakeGalleryRepo) Create(_ context.Context, img *model.GalleryImage) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.properties[img.PropertyID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if img.IsMain {
		for _, g := range r.m.gallery {
			if g.PropertyID == img.PropertyID && g.IsMain {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	img.CreatedAt = r.m.tick()
	r.m.gallery[img.ID] = *img
	return nil
}

func (r fakeGalleryRepo) Get(_ context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	g, ok := r.m.gallery[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &g, nil
}

func (r fakeGalleryRepo) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]model.GalleryImage, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []model.GalleryImage
	for _, g := range r.m.gallery {
		if g.PropertyID == propertyID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r fakeGalleryRepo) HasMain(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	items, _ := r.ListByProperty(ctx, propertyID)
	for _, g := range items {
		if g.IsMain {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeGalleryRepo) SetMain(_ context.Context, propertyID uuid.UUID, imageID uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	target, ok := r.m.gallery[imageID]
	if !ok || target.PropertyID != propertyID {
		return gorm.ErrRecordNotFound
	}
	for id, g := range r.m.gallery {
		if g.PropertyID == propertyID {
			g.IsMain = id == imageID
			r.m.gallery[id] = g
		}
	}
	return nil
}

func (r fakeGalleryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.gallery, id)
	return nil
}

// ---- leads

type fakeLeadRepo struct{ m *memStore }

func (r fakeLeadRepo) Create(_ context.Context, l *model.Lead) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.properties[l.PropertyID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	now := r.m.tick()
	l.CreatedAt, l.UpdatedAt = now, now
	r.m.leads[l.ID] = *l
	return nil
}

func (r fakeLeadRepo) Get(_ context.Context, id uuid.UUID) (*model.Lead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	l, ok := r.m.leads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (r fakeLeadRepo) List(_ context.Context, propertyID uuid.UUID) ([]model.Lead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []model.Lead
	for _, l := range r.m.leads {
		if propertyID != uuid.Nil && l.PropertyID != propertyID {
			continue
		}
		l.PropertyTitle = r.m.properties[l.PropertyID].Title
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r fakeLeadRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.LeadStatus) (*model.Lead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	l, ok := r.m.leads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	l.Status = status
	l.UpdatedAt = r.m.tick()
	r.m.leads[id] = l
	return &l, nil
}

func (r fakeLeadRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.leads, id)
	return nil
}

// ---- stats

type fakeStatsRepo struct{ m *memStore }

func (r fakeStatsRepo) Summary(context.Context) (*model.Stats, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	st := &model.Stats{
		Properties:    int64(len(r.m.properties)),
		Scenes:        int64(len(r.m.scenes)),
		Hotspots:      int64(len(r.m.hotspots)),
		GalleryImages: int64(len(r.m.gallery)),
		Leads:         int64(len(r.m.leads)),
	}
	for _, p := range r.m.properties {
		if p.Status == model.PropertyStatusPublished {
			st.PublishedProperties++
		} else {
			st.DraftProperties++
		}
	}
	for _, l := range r.m.leads {
		if l.Status == model.LeadStatusNew {
			st.NewLeads++
		}
	}
	return st, nil
}

var (
	_ repo.PropertyRepo = fakePropertyRepo{}
	_ repo.SceneRepo    = fakeSceneRepo{}
	_ repo.HotspotRepo  = fakeHotspotRepo{}
	_ repo.GalleryRepo  = fakeGalleryRepo{}
	_ repo.LeadRepo     = fakeLeadRepo{}
	_ repo.StatsRepo    = fakeStatsRepo{}
)

// ---- collaborators

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error {
	args := m.Called(ctx, exchangeName, routingKey, body)
	return args.Error(0)
}

// MockPropertyIndexer is a mock implementation of PropertyIndexer
type MockPropertyIndexer struct {
	mock.Mock
}

func (m *MockPropertyIndexer) IndexProperty(doc search.PropertyDocument) error {
	args := m.Called(doc)
	return args.Error(0)
}

func (m *MockPropertyIndexer) RemoveProperty(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBlobStore is a mock implementation of BlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) DeleteByURL(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

var (
	editor  = auth.Caller{Token: "editor-token", Email: "editor@example.com"}
	denyAll = auth.AuthorizerFunc(func(context.Context, auth.Caller) bool { return false })
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.RabbitMQ.ExchangeName.Tour = "tour"
	cfg.RabbitMQ.RoutingKey.SceneDeleted = "tour.scene.deleted"
	cfg.RabbitMQ.RoutingKey.PropertyPublished = "tour.property.published"
	cfg.RabbitMQ.RoutingKey.PropertyUnpublished = "tour.property.unpublished"
	cfg.RabbitMQ.RoutingKey.LeadCreated = "tour.lead.created"
	cfg.S3.MaxUploadBytes = 50 << 20
	return cfg
}

// fixture wires every service over one memStore, a miniredis-backed lock
// and permissive event / index mocks.
type fixture struct {
	store    *memStore
	mr       *miniredis.Miniredis
	lock     *cache.PropertyLock
	events   *MockEventPublisher
	index    *MockPropertyIndexer
	blob     *MockBlobStore
	cfg      *config.Config
	props    fakePropertyRepo
	scenes   fakeSceneRepo
	hotspots fakeHotspotRepo
	gallery  fakeGalleryRepo
	leads    fakeLeadRepo

	hotspotSvc     HotspotService
	cascade        *CascadeCoordinator
	sceneSvc       SceneService
	publicationSvc PublicationService
	propertySvc    PropertyService
	gallerySvc     GalleryService
	leadSvc        LeadService
	statsSvc       StatsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	f := &fixture{
		store:  newMemStore(),
		mr:     mr,
		lock:   cache.NewPropertyLock(rdb, 5*time.Second),
		events: &MockEventPublisher{},
		index:  &MockPropertyIndexer{},
		blob:   &MockBlobStore{},
		cfg:    testConfig(),
	}
	f.props = fakePropertyRepo{f.store}
	f.scenes = fakeSceneRepo{f.store}
	f.hotspots = fakeHotspotRepo{f.store}
	f.gallery = fakeGalleryRepo{f.store}
	f.leads = fakeLeadRepo{f.store}

	f.events.On("PublishJSON", mock.Anything, "tour", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.index.On("IndexProperty", mock.Anything).Return(nil).Maybe()
	f.index.On("RemoveProperty", mock.Anything).Return(nil).Maybe()

	log := zap.NewNop()
	f.hotspotSvc = NewHotspotService(f.scenes, f.hotspots, f.lock, auth.AllowAll, log)
	f.cascade = NewCascadeCoordinator(f.scenes, f.hotspotSvc, f.lock, f.events, f.cfg, log)
	f.sceneSvc = NewSceneService(f.props, f.scenes, f.cascade, f.blob, f.cfg, auth.AllowAll, log)
	f.publicationSvc = NewPublicationService(f.props, f.scenes, f.gallery, f.lock, f.index, f.events, f.cfg, auth.AllowAll, log)
	f.propertySvc = NewPropertyService(f.props, f.scenes, f.hotspots, f.gallery, f.index, f.blob, auth.AllowAll, log)
	f.gallerySvc = NewGalleryService(f.props, f.gallery, f.blob, f.cfg, auth.AllowAll, log)
	f.leadSvc = NewLeadService(f.props, f.leads, f.events, f.cfg, auth.AllowAll, log)
	f.statsSvc = NewStatsService(fakeStatsRepo{f.store}, auth.AllowAll)
	return f
}

func (f *fixture) property(t *testing.T, title string) *model.Property {
	t.Helper()
	p, err := f.propertySvc.Create(context.Background(), editor, CreatePropertyInput{Title: title})
	require.NoError(t, err)
	return p
}

func (f *fixture) scene(t *testing.T, propertyID uuid.UUID, title string) *model.Scene {
	t.Helper()
	s, err := f.sceneSvc.CreateScene(context.Background(), editor, CreateSceneInput{
		PropertyID: propertyID,
		Title:      title,
		ImageURL:   "https://cdn.example.com/" + title + ".jpg",
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) nav(t *testing.T, host, target uuid.UUID) *model.Hotspot {
	t.Helper()
	h, err := f.hotspotSvc.CreateHotspot(context.Background(), editor, CreateHotspotInput{
		SceneID:       host,
		Type:          model.HotspotTypeNavigation,
		Title:         "go",
		Yaw:           45,
		TargetSceneID: &target,
	})
	require.NoError(t, err)
	return h
}

// assertGraphInvariants checks default uniqueness and the absence of
// dangling navigation edges over the whole store.
func (f *fixture) assertGraphInvariants(t *testing.T) {
	t.Helper()
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	sceneCount := map[uuid.UUID]int{}
	for _, s := range f.store.scenes {
		sceneCount[s.PropertyID]++
	}
	for pid := range f.store.properties {
		defaults := f.store.defaultCount(pid)
		if sceneCount[pid] == 0 {
			require.Equal(t, 0, defaults, "empty property %s must have no default", pid)
		} else {
			require.Equal(t, 1, defaults, "property %s must have exactly one default", pid)
		}
	}
	for _, h := range f.store.hotspots {
		host, ok := f.store.scenes[h.SceneID]
		require.True(t, ok, "hotspot %s has no host", h.ID)
		if h.IsNavigation() {
			require.NotNil(t, h.TargetSceneID)
			target, ok := f.store.scenes[*h.TargetSceneID]
			require.True(t, ok, "hotspot %s targets a missing scene", h.ID)
			require.Equal(t, host.PropertyID, target.PropertyID)
		} else {
			require.Nil(t, h.TargetSceneID)
		}
	}
}
