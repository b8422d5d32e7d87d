package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/modules/serializer"
)

// CallerKey is the gin context key holding the request's auth.Caller.
const CallerKey = "caller"

// BearerCaller extracts the bearer token into an auth.Caller. Whether the
// caller may act is decided by Authorize.
func BearerCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := otel.Tracer("middleware").Start(c.Request.Context(), "bearer_caller",
			trace.WithAttributes(attribute.String("middleware", "bearer_caller")))
		defer span.End()

		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if !strings.HasPrefix(header, "Bearer ") || token == "" {
			span.SetAttributes(attribute.Bool("token_present", false))
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		span.SetAttributes(attribute.Bool("token_present", true))

		c.Set(CallerKey, auth.Caller{Token: token})
		c.Next()
	}
}

// Authorize runs the capability check for the caller set by BearerCaller
// before any handler parses the request: an unauthorized caller always
// gets 401, whatever the shape of its input. A nil authorizer denies.
func Authorize(a auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := otel.Tracer("middleware").Start(c.Request.Context(), "authorize",
			trace.WithAttributes(attribute.String("middleware", "authorize")))
		caller := CallerFrom(c)
		ok := a != nil && a.IsAuthorized(ctx, caller)
		span.SetAttributes(attribute.Bool("authorized", ok))
		span.End()

		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		c.Request = c.Request.WithContext(auth.WithVerified(c.Request.Context(), caller))
		c.Next()
	}
}

// CallerFrom returns the caller set by BearerCaller, or an empty caller.
func CallerFrom(c *gin.Context) auth.Caller {
	if v, ok := c.Get(CallerKey); ok {
		if caller, ok := v.(auth.Caller); ok {
			return caller
		}
	}
	return auth.Caller{}
}
