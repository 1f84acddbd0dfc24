package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/dto"
	"github.com/SscSPs/accounting_mappings/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes the response for a service error. Missing attributes and
// validation failures are 400.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var nf *apperrors.NotFoundError
	var bulk *apperrors.BulkError
	switch {
	case errors.As(err, &nf):
		logger.Warn("Referenced attribute not found", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          err.Error(),
			"entity":         nf.Entity,
			"attribute_type": nf.AttributeType,
			"value":          nf.Value,
		})
	case errors.As(err, &bulk):
		logger.Warn("Batch rejected", slog.Int("failed_items", len(bulk.Errors)))
		c.JSON(http.StatusBadRequest, dto.BulkUpsertErrorResponse{Message: bulk.Message, Errors: bulk.Errors})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting write", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// badRequest rejects malformed input before it reaches a service.
func badRequest(c *gin.Context, message string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn(message, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": message + ": " + err.Error()})
}

// workspaceID reads the id stored by WorkspaceMiddleware. A missing id is a routing
// bug, reported as 500.
func workspaceID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetWorkspaceIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Workspace ID not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "workspace not resolved"})
	}
	return id, ok
}
