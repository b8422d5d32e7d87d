package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newFakeSupabase(t *testing.T, email string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"msg":"invalid JWT"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "9a1f0f9e-8b5c-4f7a-9d61-3c2e0f6b1a11",
			"email": email,
			"aud":   "authenticated",
			"role":  "authenticated",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSupabaseAuthorizer(t *testing.T) {
	srv := newFakeSupabase(t, "Admin@Tours360.com")
	a := NewSupabaseAuthorizer("ref", "anon", srv.URL, []string{" admin@tours360.com "}, srv.Client(), zap.NewNop())
	ctx := context.Background()

	assert.True(t, a.IsAuthorized(ctx, Caller{Token: "good-token"}))
	assert.False(t, a.IsAuthorized(ctx, Caller{Token: "bad-token"}))
	assert.False(t, a.IsAuthorized(ctx, Caller{}))
}

func TestSupabaseAuthorizer_NonAdminRejected(t *testing.T) {
	srv := newFakeSupabase(t, "visitor@example.com")
	a := NewSupabaseAuthorizer("ref", "anon", srv.URL, []string{"admin@tours360.com"}, srv.Client(), zap.NewNop())

	assert.False(t, a.IsAuthorized(context.Background(), Caller{Token: "good-token"}))
}

func TestSupabaseAuthorizer_VerifiedContext(t *testing.T) {
	srv := newFakeSupabase(t, "admin@tours360.com")
	a := NewSupabaseAuthorizer("ref", "anon", srv.URL, []string{"admin@tours360.com"}, srv.Client(), zap.NewNop())
	caller := Caller{Token: "good-token"}
	ctx := context.Background()
	assert.True(t, a.IsAuthorized(ctx, caller))

	// later checks in the same request must not depend on Supabase
	srv.Close()
	verifiedCtx := WithVerified(ctx, caller)
	assert.True(t, a.IsAuthorized(verifiedCtx, caller))
	assert.False(t, a.IsAuthorized(ctx, caller))
	assert.False(t, a.IsAuthorized(verifiedCtx, Caller{Token: "other-token"}))
}

func TestAllowAll(t *testing.T) {
	assert.True(t, AllowAll.IsAuthorized(context.Background(), Caller{}))
}
