package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/money_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// eventNameFromRoute turns a route pattern into a PostHog event name,
// e.g. "/api/v1/filters/month/:year/:month" -> "api_v1_filters_month_year_month".
func eventNameFromRoute(route string) string {
	name := strings.TrimPrefix(route, "/")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(name, "/", "_")
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := eventNameFromRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		}
		posthogClient.Enqueue(userID, eventName, props)
	}
}
