package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/modules/handler"
	"github.com/tours360/tourgraph/internal/modules/service"
)

var denyAll = auth.AuthorizerFunc(func(context.Context, auth.Caller) bool { return false })

func newTestRouter(a auth.Authorizer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	return NewRouter(RouterDeps{
		Config:          &config.Config{App: config.AppCfg{Name: "tourgraph-test"}},
		Log:             log,
		Authorizer:      a,
		PropertyHandler: handler.NewPropertyHandler(nil, nil),
		SceneHandler:    handler.NewSceneHandler(service.NewSceneService(nil, nil, nil, nil, nil, a, log)),
		HotspotHandler:  handler.NewHotspotHandler(nil),
		GalleryHandler:  handler.NewGalleryHandler(nil),
		LeadHandler:     handler.NewLeadHandler(nil),
		StatsHandler:    handler.NewStatsHandler(nil),
	})
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(auth.AllowAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"msg":"ok"`)
}

func TestRouter_Swagger(t *testing.T) {
	r := newTestRouter(auth.AllowAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/v1/properties/{property_id}/scenes/upload"`)
	assert.Contains(t, w.Body.String(), `"/public/properties/{property_id}/leads"`)
}

func TestRouter_APIRequiresBearer(t *testing.T) {
	r := newTestRouter(auth.AllowAll)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/properties"},
		{http.MethodPost, "/api/v1/hotspots"},
		{http.MethodDelete, "/api/v1/scenes/3f1c2a56-58a4-4c4f-9e0e-1e7c7f0e8a11"},
		{http.MethodPost, "/api/v1/gallery/3f1c2a56-58a4-4c4f-9e0e-1e7c7f0e8a11/main"},
		{http.MethodGet, "/api/v1/leads"},
		{http.MethodGet, "/api/v1/stats"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

// An unauthorized caller gets 401 even when its request is malformed.
func TestRouter_AuthorizationPrecedesValidation(t *testing.T) {
	sceneID := uuid.NewString()

	requests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"malformed json body", http.MethodPost, "/api/v1/properties/" + uuid.NewString() + "/scenes", `{not json`},
		{"malformed path id", http.MethodPost, "/api/v1/properties/not-a-uuid/scenes", `{}`},
		{"malformed fallback query", http.MethodDelete, "/api/v1/scenes/" + sceneID + "?fallback_scene_id=zzz", ``},
		{"upload without a file", http.MethodPost, "/api/v1/properties/" + uuid.NewString() + "/scenes/upload", ``},
		{"malformed lead status", http.MethodPatch, "/api/v1/leads/not-a-uuid", `{`},
	}

	tests := []struct {
		name       string
		authz      auth.Authorizer
		wantStatus int
	}{
		{"denied", denyAll, http.StatusUnauthorized},
		{"no authorizer configured", nil, http.StatusUnauthorized},
		{"allowed", auth.AllowAll, http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := newTestRouter(tt.authz)
		for _, rq := range requests {
			t.Run(tt.name+"/"+rq.name, func(t *testing.T) {
				req := httptest.NewRequest(rq.method, rq.path, strings.NewReader(rq.body))
				req.Header.Set("Authorization", "Bearer some-token")
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)
				assert.Equal(t, tt.wantStatus, w.Code)
			})
		}
	}
}

func TestRouter_PublicRoutesSkipAuthorization(t *testing.T) {
	r := newTestRouter(denyAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/properties/not-a-uuid/tour", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/public/properties/"+uuid.NewString()+"/leads", strings.NewReader(`{"name":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
