package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// WorkspaceParam is the route parameter holding the workspace ID.
const WorkspaceParam = "workspace_id"

// WorkspaceMiddleware parses the workspace ID from the URL and scopes the request
// logger to the workspace and the authenticated user. Anything that is not a
// positive integer is rejected with 400 before reaching a handler.
func WorkspaceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(WorkspaceParam)
		workspaceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || workspaceID <= 0 {
			GetLoggerFromCtx(c.Request.Context()).Warn("Invalid workspace ID", slog.String("workspace_id", raw))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "workspace_id must be a positive integer"})
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("workspace_id", workspaceID))
		if userID, ok := GetUserIDFromContext(c); ok {
			logger = logger.With(slog.String("user_id", userID))
		}
		ctx := context.WithValue(c.Request.Context(), workspaceIDKey, workspaceID)
		c.Request = c.Request.WithContext(WithLogger(ctx, logger))
		c.Set(string(workspaceIDKey), workspaceID)

		c.Next()
	}
}
