package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/middleware"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/service"
)

var testCaller = auth.Caller{Token: "test-token"}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Simulate middleware setting the caller
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CallerKey, testCaller)
		c.Next()
	})
	return r
}

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Create(ctx context.Context, caller auth.Caller, in service.CreatePropertyInput) (*model.Property, error) {
	args := m.Called(ctx, caller, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, caller auth.Caller, id uuid.UUID) (*model.Property, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) List(ctx context.Context, caller auth.Caller, in service.ListPropertiesInput) (*service.ListPropertiesOutput, error) {
	args := m.Called(ctx, caller, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListPropertiesOutput), args.Error(1)
}

func (m *MockPropertyService) Update(ctx context.Context, caller auth.Caller, id uuid.UUID, in service.UpdatePropertyInput) (*model.Property, error) {
	args := m.Called(ctx, caller, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, caller auth.Caller, id uuid.UUID) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockPropertyService) GetCompleteTour(ctx context.Context, caller auth.Caller, id uuid.UUID) (*service.Tour, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Tour), args.Error(1)
}

func (m *MockPropertyService) GetPublicTour(ctx context.Context, id uuid.UUID) (*service.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Tour), args.Error(1)
}

type MockPublicationService struct {
	mock.Mock
}

func (m *MockPublicationService) Publish(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) (*model.Property, error) {
	args := m.Called(ctx, caller, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPublicationService) Unpublish(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) (*model.Property, error) {
	args := m.Called(ctx, caller, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPublicationService) IsVisible(p *model.Property) bool {
	return m.Called(p).Bool(0)
}

type MockSceneService struct {
	mock.Mock
}

func (m *MockSceneService) sceneResult(args mock.Arguments) (*model.Scene, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scene), args.Error(1)
}

func (m *MockSceneService) scenesResult(args mock.Arguments) ([]model.Scene, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Scene), args.Error(1)
}

func (m *MockSceneService) CreateScene(ctx context.Context, caller auth.Caller, in service.CreateSceneInput) (*model.Scene, error) {
	return m.sceneResult(m.Called(ctx, caller, in))
}

func (m *MockSceneService) UploadScene(ctx context.Context, caller auth.Caller, in service.UploadSceneInput) (*model.Scene, error) {
	return m.sceneResult(m.Called(ctx, caller, in))
}

func (m *MockSceneService) RenameScene(ctx context.Context, caller auth.Caller, id uuid.UUID, title string) (*model.Scene, error) {
	return m.sceneResult(m.Called(ctx, caller, id, title))
}

func (m *MockSceneService) UpdateScene(ctx context.Context, caller auth.Caller, id uuid.UUID, in service.UpdateSceneInput) (*model.Scene, error) {
	return m.sceneResult(m.Called(ctx, caller, id, in))
}

func (m *MockSceneService) ReorderScenes(ctx context.Context, caller auth.Caller, propertyID uuid.UUID, orderedIDs []uuid.UUID) ([]model.Scene, error) {
	return m.scenesResult(m.Called(ctx, caller, propertyID, orderedIDs))
}

func (m *MockSceneService) SetDefaultScene(ctx context.Context, caller auth.Caller, sceneID uuid.UUID) (*model.Scene, error) {
	return m.sceneResult(m.Called(ctx, caller, sceneID))
}

func (m *MockSceneService) ListScenes(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) ([]model.Scene, error) {
	return m.scenesResult(m.Called(ctx, caller, propertyID))
}

func (m *MockSceneService) GetScene(ctx context.Context, caller auth.Caller, id uuid.UUID) (*model.Scene, error) {
	return m.sceneResult(m.Called(ctx, caller, id))
}

func (m *MockSceneService) DeleteScene(ctx context.Context, caller auth.Caller, id uuid.UUID, opts service.DeleteSceneOptions) (*service.CascadeResult, error) {
	args := m.Called(ctx, caller, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CascadeResult), args.Error(1)
}

type MockHotspotService struct {
	mock.Mock
}

func (m *MockHotspotService) hotspotResult(args mock.Arguments) (*model.Hotspot, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hotspot), args.Error(1)
}

func (m *MockHotspotService) hotspotsResult(args mock.Arguments) ([]model.Hotspot, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hotspot), args.Error(1)
}

func (m *MockHotspotService) CreateHotspot(ctx context.Context, caller auth.Caller, in service.CreateHotspotInput) (*model.Hotspot, error) {
	return m.hotspotResult(m.Called(ctx, caller, in))
}

func (m *MockHotspotService) UpdateHotspot(ctx context.Context, caller auth.Caller, id uuid.UUID, patch service.HotspotPatch) (*model.Hotspot, error) {
	return m.hotspotResult(m.Called(ctx, caller, id, patch))
}

func (m *MockHotspotService) DeleteHotspot(ctx context.Context, caller auth.Caller, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *MockHotspotService) ListHotspots(ctx context.Context, caller auth.Caller, sceneID uuid.UUID) ([]model.Hotspot, error) {
	return m.hotspotsResult(m.Called(ctx, caller, sceneID))
}

func (m *MockHotspotService) ListOwnedHotspots(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error) {
	return m.hotspotsResult(m.Called(ctx, sceneID))
}

func (m *MockHotspotService) ListInboundNavigationHotspots(ctx context.Context, sceneID uuid.UUID) ([]model.Hotspot, error) {
	return m.hotspotsResult(m.Called(ctx, sceneID))
}

func (m *MockHotspotService) RemoveHotspot(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockHotspotService) RetargetHotspot(ctx context.Context, id uuid.UUID, targetSceneID uuid.UUID) error {
	return m.Called(ctx, id, targetSceneID).Error(0)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) imageResult(args mock.Arguments) (*model.GalleryImage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) AddImage(ctx context.Context, caller auth.Caller, propertyID uuid.UUID, url string) (*model.GalleryImage, error) {
	return m.imageResult(m.Called(ctx, caller, propertyID, url))
}

func (m *MockGalleryService) UploadImage(ctx context.Context, caller auth.Caller, in service.UploadImageInput) (*model.GalleryImage, error) {
	return m.imageResult(m.Called(ctx, caller, in))
}

func (m *MockGalleryService) SetMain(ctx context.Context, caller auth.Caller, imageID uuid.UUID) (*model.GalleryImage, error) {
	return m.imageResult(m.Called(ctx, caller, imageID))
}

func (m *MockGalleryService) List(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) ([]model.GalleryImage, error) {
	args := m.Called(ctx, caller, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) DeleteImage(ctx context.Context, caller auth.Caller, imageID uuid.UUID) error {
	return m.Called(ctx, caller, imageID).Error(0)
}

type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) leadResult(args mock.Arguments) (*model.Lead, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lead), args.Error(1)
}

func (m *MockLeadService) CreateLead(ctx context.Context, in service.CreateLeadInput) (*model.Lead, error) {
	return m.leadResult(m.Called(ctx, in))
}

func (m *MockLeadService) ListLeads(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) ([]model.Lead, error) {
	args := m.Called(ctx, caller, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lead), args.Error(1)
}

func (m *MockLeadService) UpdateLeadStatus(ctx context.Context, caller auth.Caller, id uuid.UUID, status model.LeadStatus) (*model.Lead, error) {
	return m.leadResult(m.Called(ctx, caller, id, status))
}

func (m *MockLeadService) DeleteLead(ctx context.Context, caller auth.Caller, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Summary(ctx context.Context, caller auth.Caller) (*model.Stats, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stats), args.Error(1)
}
