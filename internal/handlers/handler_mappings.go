package handlers

import (
	"net/http"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/dto"
	"github.com/gin-gonic/gin"
)

// mappingHandler handles HTTP requests for pairwise, employee and category mappings.
type mappingHandler struct {
	mappingService         portssvc.MappingSvcFacade
	employeeMappingService portssvc.EmployeeMappingSvcFacade
	categoryMappingService portssvc.CategoryMappingSvcFacade
	statsService           portssvc.StatsSvc
}

func newMappingHandler(
	ms portssvc.MappingSvcFacade,
	es portssvc.EmployeeMappingSvcFacade,
	cs portssvc.CategoryMappingSvcFacade,
	ss portssvc.StatsSvc,
) *mappingHandler {
	return &mappingHandler{
		mappingService:         ms,
		employeeMappingService: es,
		categoryMappingService: cs,
		statsService:           ss,
	}
}

func registerMappingRoutes(
	rg *gin.RouterGroup,
	ms portssvc.MappingSvcFacade,
	es portssvc.EmployeeMappingSvcFacade,
	cs portssvc.CategoryMappingSvcFacade,
	ss portssvc.StatsSvc,
) {
	h := newMappingHandler(ms, es, cs, ss)

	mappings := rg.Group("/mappings")
	{
		mappings.GET("", h.listMappings)
		mappings.POST("", h.createOrUpdateMapping)
		mappings.GET("/employee", h.listEmployeeMappings)
		mappings.POST("/employee", h.createOrUpdateEmployeeMapping)
		mappings.GET("/category", h.listCategoryMappings)
		mappings.POST("/category", h.createOrUpdateCategoryMapping)
		mappings.GET("/stats", h.getMappingStats)
	}
}

// listMappings godoc
// @Summary List mappings
// @Description Lists mappings of a source type. table_dimension=3 keeps only sources mapped to exactly two destination types.
// @Tags mappings
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   source_type query string true "Source attribute type"
// @Param   destination_type query string false "Destination attribute type"
// @Param   source_active query bool false "Filter on source activeness"
// @Param   table_dimension query int false "2 (default) or 3"
// @Success 200 {array} dto.MappingResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list mappings"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings [get]
func (h *mappingHandler) listMappings(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var params dto.ListMappingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	dimension, err := domain.ParseTableDimension(params.TableDimension)
	if err != nil {
		badRequest(c, "Invalid table_dimension", err)
		return
	}
	active, err := domain.ParseActiveFilter(params.SourceActive)
	if err != nil {
		badRequest(c, "Invalid source_active", err)
		return
	}

	mappings, err := h.mappingService.ListMappings(c.Request.Context(), domain.MappingListSpec{
		WorkspaceID:     wsID,
		SourceType:      domain.AttributeType(params.SourceType),
		DestinationType: domain.AttributeType(params.DestinationType),
		SourceActive:    active,
		Dimension:       dimension,
	})
	if err != nil {
		respondError(c, err, "Failed to list mappings")
		return
	}
	c.JSON(http.StatusOK, dto.ToMappingResponses(mappings))
}

// createOrUpdateMapping godoc
// @Summary Create or update a mapping
// @Description Resolves the source and destination attributes by value and upserts the mapping for the destination type
// @Tags mappings
// @Accept  json
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   mapping body dto.CreateMappingRequest true "Mapping"
// @Success 200 {object} dto.MappingResponse
// @Failure 400 {object} map[string]string "Invalid input or attribute not found"
// @Failure 500 {object} map[string]string "Failed to save mapping"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings [post]
func (h *mappingHandler) createOrUpdateMapping(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var req dto.CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	mapping, err := h.mappingService.CreateOrUpdateMapping(c.Request.Context(), wsID, req)
	if err != nil {
		respondError(c, err, "Failed to save mapping")
		return
	}
	c.JSON(http.StatusOK, dto.ToMappingResponse(mapping))
}

// listEmployeeMappings godoc
// @Summary List employee mappings
// @Tags mappings
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Success 200 {array} dto.EmployeeMappingResponse
// @Failure 500 {object} map[string]string "Failed to list employee mappings"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings/employee [get]
func (h *mappingHandler) listEmployeeMappings(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	mappings, err := h.employeeMappingService.ListEmployeeMappings(c.Request.Context(), wsID)
	if err != nil {
		respondError(c, err, "Failed to list employee mappings")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeMappingResponses(mappings))
}

// createOrUpdateEmployeeMapping godoc
// @Summary Create or update an employee mapping
// @Description Writes every destination slot of the source employee; an omitted slot is cleared
// @Tags mappings
// @Accept  json
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   mapping body dto.EmployeeMappingRequest true "Employee mapping"
// @Success 200 {object} dto.EmployeeMappingResponse
// @Failure 400 {object} map[string]string "Invalid attribute reference"
// @Failure 500 {object} map[string]string "Failed to save employee mapping"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings/employee [post]
func (h *mappingHandler) createOrUpdateEmployeeMapping(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var req dto.EmployeeMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	mapping, err := h.employeeMappingService.CreateOrUpdateEmployeeMapping(c.Request.Context(), wsID, req)
	if err != nil {
		respondError(c, err, "Failed to save employee mapping")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeMappingResponse(mapping))
}

// listCategoryMappings godoc
// @Summary List category mappings
// @Tags mappings
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Success 200 {array} dto.CategoryMappingResponse
// @Failure 500 {object} map[string]string "Failed to list category mappings"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings/category [get]
func (h *mappingHandler) listCategoryMappings(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	mappings, err := h.categoryMappingService.ListCategoryMappings(c.Request.Context(), wsID)
	if err != nil {
		respondError(c, err, "Failed to list category mappings")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryMappingResponses(mappings))
}

// createOrUpdateCategoryMapping godoc
// @Summary Create or update a category mapping
// @Description Writes both destination slots of the source category; an omitted slot is cleared
// @Tags mappings
// @Accept  json
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   mapping body dto.CategoryMappingRequest true "Category mapping"
// @Success 200 {object} dto.CategoryMappingResponse
// @Failure 400 {object} map[string]string "Invalid attribute reference"
// @Failure 500 {object} map[string]string "Failed to save category mapping"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings/category [post]
func (h *mappingHandler) createOrUpdateCategoryMapping(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var req dto.CategoryMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	mapping, err := h.categoryMappingService.CreateOrUpdateCategoryMapping(c.Request.Context(), wsID, req)
	if err != nil {
		respondError(c, err, "Failed to save category mapping")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryMappingResponse(mapping))
}

// getMappingStats godoc
// @Summary Mapping stats
// @Description Counts the source attributes of a type and how many are mapped to the destination type
// @Tags mappings
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   source_type query string true "Source attribute type"
// @Param   destination_type query string false "Destination attribute type"
// @Success 200 {object} domain.MappingStats
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to compute mapping stats"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings/stats [get]
func (h *mappingHandler) getMappingStats(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var params dto.MappingStatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	stats, err := h.statsService.GetMappingStats(c.Request.Context(), wsID,
		domain.AttributeType(params.SourceType), domain.AttributeType(params.DestinationType))
	if err != nil {
		respondError(c, err, "Failed to compute mapping stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
