package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/service"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	propertyID := uuid.New()

	tests := []struct {
		name           string
		path           string
		body           string
		setup          func(*MockLeadService)
		expectedStatus int
	}{
		{
			name: "contact form",
			path: "/public/properties/" + propertyID.String() + "/leads",
			body: `{"name":"Ana","email":"ana@example.com","phone":"+55 11 9999","interest":"visita","consent":true}`,
			setup: func(svc *MockLeadService) {
				svc.On("CreateLead", mock.Anything, mock.MatchedBy(func(in service.CreateLeadInput) bool {
					return in.PropertyID == propertyID && in.Name == "Ana" && in.Interest == model.LeadInterestVisit && in.Consent
				})).Return(&model.Lead{ID: uuid.New(), PropertyID: propertyID, Status: model.LeadStatusNew}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "draft property",
			path: "/public/properties/" + propertyID.String() + "/leads",
			body: `{"name":"Ana","email":"ana@example.com","phone":"1","consent":true}`,
			setup: func(svc *MockLeadService) {
				svc.On("CreateLead", mock.Anything, mock.Anything).
					Return(nil, &service.Error{Kind: service.KindNotFound, Msg: "property not found"})
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing phone",
			path:           "/public/properties/" + propertyID.String() + "/leads",
			body:           `{"name":"Ana","email":"ana@example.com","consent":true}`,
			setup:          func(*MockLeadService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid property id",
			path:           "/public/properties/nope/leads",
			body:           `{}`,
			setup:          func(*MockLeadService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockLeadService{}
			tt.setup(svc)
			h := NewLeadHandler(svc)
			router := setupRouter()
			router.POST("/public/properties/:property_id/leads", h.CreateLead)

			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestLeadHandler_EditorRoutes(t *testing.T) {
	propertyID, leadID := uuid.New(), uuid.New()
	svc := &MockLeadService{}
	svc.On("ListLeads", mock.Anything, testCaller, propertyID).
		Return([]model.Lead{{ID: leadID, PropertyID: propertyID, PropertyTitle: "Casa"}}, nil)
	svc.On("ListLeads", mock.Anything, testCaller, uuid.Nil).Return([]model.Lead{}, nil)
	svc.On("UpdateLeadStatus", mock.Anything, testCaller, leadID, model.LeadStatusContacted).
		Return(&model.Lead{ID: leadID, Status: model.LeadStatusContacted}, nil)
	svc.On("DeleteLead", mock.Anything, testCaller, leadID).Return(nil)

	h := NewLeadHandler(svc)
	router := setupRouter()
	router.GET("/properties/:property_id/leads", h.ListPropertyLeads)
	router.GET("/leads", h.ListLeads)
	router.PATCH("/leads/:lead_id", h.UpdateLeadStatus)
	router.DELETE("/leads/:lead_id", h.DeleteLead)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties/"+propertyID.String()+"/leads", nil))
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w.Body.Bytes())
	items, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Casa", items[0].(map[string]any)["property_title"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leads", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodPatch, "/leads/"+leadID.String(), bytes.NewBufferString(`{"status":"contacted"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPatch, "/leads/"+leadID.String(), bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/leads/"+leadID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	svc.AssertExpectations(t)
}

func TestStatsHandler_GetStats(t *testing.T) {
	svc := &MockStatsService{}
	svc.On("Summary", mock.Anything, testCaller).Return(&model.Stats{Properties: 3, NewLeads: 2}, nil)

	h := NewStatsHandler(svc)
	router := setupRouter()
	router.GET("/stats", h.GetStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeResponse(t, w.Body.Bytes()).Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, data["properties"])
	assert.EqualValues(t, 2, data["new_leads"])
	svc.AssertExpectations(t)
}
