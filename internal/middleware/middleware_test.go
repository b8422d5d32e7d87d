package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tours360/tourgraph/internal/auth"
)

func TestBearerCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantToken  string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"empty token", "Bearer ", http.StatusUnauthorized, ""},
		{"token", "Bearer eyJhbGciOi", http.StatusOK, "eyJhbGciOi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			var got string
			r.GET("/x", BearerCaller(), func(c *gin.Context) {
				got = CallerFrom(c).Token
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantToken, got)
		})
	}
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	onlyGood := auth.AuthorizerFunc(func(_ context.Context, c auth.Caller) bool { return c.Token == "good" })

	tests := []struct {
		name        string
		authz       auth.Authorizer
		header      string
		body        string
		wantStatus  int
		wantHandler bool
	}{
		{"authorized caller reaches the handler", onlyGood, "Bearer good", `{"title":"x"}`, http.StatusOK, true},
		{"denied caller with a valid body", onlyGood, "Bearer bad", `{"title":"x"}`, http.StatusUnauthorized, false},
		{"denied caller with a malformed body", onlyGood, "Bearer bad", `{not json`, http.StatusUnauthorized, false},
		{"nil authorizer denies", nil, "Bearer good", `{}`, http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			reached := false
			r.POST("/x", BearerCaller(), Authorize(tt.authz), func(c *gin.Context) {
				reached = true
				var body map[string]any
				if err := c.ShouldBindJSON(&body); err != nil {
					c.Status(http.StatusBadRequest)
					return
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			req.Header.Set("Authorization", tt.header)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantHandler, reached)
		})
	}
}

func TestZapLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(ZapLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, p := range []string{"/ok", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zap.InfoLevel, entries[0].Level)
		assert.Equal(t, zap.ErrorLevel, entries[1].Level)
		assert.Equal(t, "/boom", entries[1].ContextMap()["path"])
	}
}
