package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// workspaceIDKey is the key used to store the workspace parsed from the URL.
	workspaceIDKey = contextKey("workspaceID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userID, ok := c.Request.Context().Value(userIDKey).(string)
		return userID, ok
	}

	userID, ok := userIDVal.(string)
	return userID, ok
}

// GetWorkspaceIDFromContext retrieves the workspace ID stored by WorkspaceMiddleware.
func GetWorkspaceIDFromContext(c *gin.Context) (int64, bool) {
	if id, ok := c.Get(string(workspaceIDKey)); ok {
		workspaceID, ok := id.(int64)
		return workspaceID, ok
	}
	return WorkspaceIDFromCtx(c.Request.Context())
}

// WorkspaceIDFromCtx retrieves the workspace ID from a standard context.
func WorkspaceIDFromCtx(ctx context.Context) (int64, bool) {
	workspaceID, ok := ctx.Value(workspaceIDKey).(int64)
	return workspaceID, ok
}
