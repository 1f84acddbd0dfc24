package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/dto"
	"github.com/SscSPs/accounting_mappings/internal/middleware"
	"github.com/gin-gonic/gin"
)

// mappingSettingHandler handles HTTP requests for mapping settings and expense fields.
type mappingSettingHandler struct {
	settingService      portssvc.MappingSettingSvcFacade
	expenseFieldService portssvc.ExpenseFieldSvcFacade
}

func newMappingSettingHandler(ss portssvc.MappingSettingSvcFacade, es portssvc.ExpenseFieldSvcFacade) *mappingSettingHandler {
	return &mappingSettingHandler{settingService: ss, expenseFieldService: es}
}

func registerMappingSettingRoutes(rg *gin.RouterGroup, ss portssvc.MappingSettingSvcFacade, es portssvc.ExpenseFieldSvcFacade) {
	h := newMappingSettingHandler(ss, es)

	rg.GET("/mappings/settings", h.listMappingSettings)
	rg.POST("/mappings/settings", h.bulkUpsertMappingSettings)

	rg.GET("/expense_fields", h.listExpenseFields)
	rg.POST("/expense_fields", h.upsertExpenseFields)
}

// listMappingSettings godoc
// @Summary List mapping settings
// @Description Retrieves every source field to destination field setting of the workspace
// @Tags mapping-settings
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Success 200 {array} dto.MappingSettingResponse
// @Failure 400 {object} map[string]string "Invalid workspace"
// @Failure 500 {object} map[string]string "Failed to list mapping settings"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings/settings [get]
func (h *mappingSettingHandler) listMappingSettings(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	settings, err := h.settingService.ListMappingSettings(c.Request.Context(), wsID)
	if err != nil {
		respondError(c, err, "Failed to list mapping settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToMappingSettingResponses(settings))
}

// bulkUpsertMappingSettings godoc
// @Summary Bulk upsert mapping settings
// @Description Validates every setting, merges duplicates and upserts the valid ones in one transaction.
// @Description When some items are invalid the response is 400 and lists both the failures and the saved settings.
// @Tags mapping-settings
// @Accept  json
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   settings body []dto.MappingSettingRequest true "Mapping settings"
// @Success 200 {array} dto.MappingSettingResponse
// @Failure 400 {object} dto.BulkUpsertErrorResponse "Some settings are invalid"
// @Failure 500 {object} map[string]string "Failed to save mapping settings"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings/settings [post]
func (h *mappingSettingHandler) bulkUpsertMappingSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var reqs []dto.MappingSettingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	saved, err := h.settingService.BulkUpsertMappingSettings(c.Request.Context(), wsID, reqs)
	var bulk *apperrors.BulkError
	if errors.As(err, &bulk) {
		logger.Warn("Mapping settings partially rejected",
			slog.Int("saved", len(saved)), slog.Int("rejected", len(bulk.Errors)))
		c.JSON(http.StatusBadRequest, dto.BulkUpsertErrorResponse{
			Message: bulk.Message,
			Errors:  bulk.Errors,
			Saved:   dto.ToMappingSettingResponses(saved),
		})
		return
	}
	if err != nil {
		respondError(c, err, "Failed to save mapping settings")
		return
	}

	logger.Info("Mapping settings saved", slog.Int("count", len(saved)))
	c.JSON(http.StatusOK, dto.ToMappingSettingResponses(saved))
}

// listExpenseFields godoc
// @Summary List expense fields
// @Description Retrieves the source fields available for mapping in the workspace
// @Tags expense-fields
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Success 200 {array} dto.ExpenseFieldResponse
// @Failure 500 {object} map[string]string "Failed to list expense fields"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/expense_fields [get]
func (h *mappingSettingHandler) listExpenseFields(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	fields, err := h.expenseFieldService.ListExpenseFields(c.Request.Context(), wsID)
	if err != nil {
		respondError(c, err, "Failed to list expense fields")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseFieldResponses(fields))
}

// upsertExpenseFields godoc
// @Summary Upsert expense fields
// @Description Inserts or updates expense fields keyed on attribute type
// @Tags expense-fields
// @Accept  json
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   fields body []dto.ExpenseFieldRequest true "Expense fields"
// @Success 200 {array} dto.ExpenseFieldResponse
// @Failure 400 {object} dto.BulkUpsertErrorResponse "Invalid expense fields"
// @Failure 500 {object} map[string]string "Failed to save expense fields"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/expense_fields [post]
func (h *mappingSettingHandler) upsertExpenseFields(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var reqs []dto.ExpenseFieldRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	fields, err := h.expenseFieldService.UpsertExpenseFields(c.Request.Context(), wsID, reqs)
	if err != nil {
		respondError(c, err, "Failed to save expense fields")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseFieldResponses(fields))
}
