package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of the values this package stores in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
)

// WithUserID returns a copy of ctx carrying the acting user's id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the acting user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// DefaultUserMiddleware stamps every request with a fixed user id.
// It stands in for AuthMiddleware when authentication is disabled.
func DefaultUserMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithUserID(c.Request.Context(), userID)
		logger := GetLoggerFromCtx(ctx).With(userIDAttr(userID))
		c.Request = c.Request.WithContext(context.WithValue(ctx, loggerCtxKey, logger))
		c.Next()
	}
}
