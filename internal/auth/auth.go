// Package auth provides the "is this caller authorized" capability consumed
// by every editor operation. Identity handling stays outside the core: the
// services only see a Caller and a yes/no answer.
package auth

import (
	"context"
	"net/http"
	"strings"

	supabase "github.com/supabase-community/auth-go"
	"go.uber.org/zap"
)

// Caller carries whatever the transport extracted from the request.
type Caller struct {
	Token string
	Email string
}

type Authorizer interface {
	IsAuthorized(ctx context.Context, caller Caller) bool
}

// AuthorizerFunc adapts a plain function.
type AuthorizerFunc func(ctx context.Context, caller Caller) bool

func (f AuthorizerFunc) IsAuthorized(ctx context.Context, caller Caller) bool { return f(ctx, caller) }

// AllowAll authorizes every caller. Used for tests and local tooling.
var AllowAll Authorizer = AuthorizerFunc(func(context.Context, Caller) bool { return true })

type verifiedKey struct{}

// WithVerified records that caller already passed IsAuthorized for the
// lifetime of ctx. SupabaseAuthorizer answers from it without a round trip.
func WithVerified(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, verifiedKey{}, caller.Token)
}

func verified(ctx context.Context, caller Caller) bool {
	token, ok := ctx.Value(verifiedKey{}).(string)
	return ok && token != "" && token == caller.Token
}

// SupabaseAuthorizer validates the caller's access token against Supabase
// auth and restricts access to an allow-list of admin emails.
type SupabaseAuthorizer struct {
	client supabase.Client
	admins map[string]struct{}
	log    *zap.Logger
}

func NewSupabaseAuthorizer(projectRef, anonKey, authURL string, adminEmails []string, hc *http.Client, log *zap.Logger) *SupabaseAuthorizer {
	client := supabase.New(projectRef, anonKey)
	if authURL != "" {
		client = client.WithCustomAuthURL(authURL)
	}
	if hc != nil {
		client = client.WithClient(*hc)
	}

	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &SupabaseAuthorizer{client: client, admins: admins, log: log}
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// IsAdmin reports whether email is on the allow-list.
func (a *SupabaseAuthorizer) IsAdmin(email string) bool {
	_, ok := a.admins[normalizeEmail(email)]
	return ok
}

func (a *SupabaseAuthorizer) IsAuthorized(ctx context.Context, caller Caller) bool {
	if caller.Token == "" {
		return false
	}
	if verified(ctx, caller) {
		return true
	}
	user, err := a.client.WithToken(caller.Token).GetUser()
	if err != nil {
		a.log.Debug("supabase token rejected", zap.Error(err))
		return false
	}
	return a.IsAdmin(user.Email)
}
