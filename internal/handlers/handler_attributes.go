package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/dto"
	"github.com/gin-gonic/gin"
)

// attributeHandler handles HTTP requests for source and destination attributes.
type attributeHandler struct {
	attributeService portssvc.AttributeSvcFacade
}

func newAttributeHandler(as portssvc.AttributeSvcFacade) *attributeHandler {
	return &attributeHandler{attributeService: as}
}

func registerAttributeRoutes(rg *gin.RouterGroup, as portssvc.AttributeSvcFacade) {
	h := newAttributeHandler(as)

	rg.GET("/mappings/attributes", h.searchMappingAttributes)
	rg.GET("/mappings/employee/attributes", h.searchEmployeeAttributes)

	rg.POST("/expense_attributes", h.upsertSourceAttributes)
	rg.GET("/destination_attributes/search", h.searchDestinationAttributes)
	rg.POST("/destination_attributes", h.upsertDestinationAttributes)
}

// parseOptionalBool treats an empty value as false and rejects anything else strconv cannot parse.
func parseOptionalBool(name, raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return v, nil
}

// searchSpecFromParams converts the raw query into a search spec. Nothing is defaulted
// silently: every malformed value is an error.
func searchSpecFromParams(workspaceID int64, p dto.SearchSourceAttributesParams) (domain.AttributeSearchSpec, error) {
	spec := domain.AttributeSearchSpec{
		WorkspaceID:     workspaceID,
		SourceType:      domain.AttributeType(p.SourceType),
		DestinationType: domain.AttributeType(p.DestinationType),
	}
	var err error
	if spec.Mapped, err = domain.ParseMappedState(p.Mapped); err != nil {
		return spec, err
	}
	if spec.Active, err = domain.ParseActiveFilter(p.Active); err != nil {
		return spec, err
	}
	all, err := parseOptionalBool("all_alphabets", p.AllAlphabets)
	if err != nil {
		return spec, err
	}
	digits, err := parseOptionalBool("include_digits", p.IncludeDigits)
	if err != nil {
		return spec, err
	}
	if spec.Buckets, err = domain.ParseBuckets(p.Alphabets, all, digits); err != nil {
		return spec, err
	}
	if p.Limit != "" {
		if spec.Limit, err = strconv.Atoi(p.Limit); err != nil {
			return spec, fmt.Errorf("invalid limit %q: %w", p.Limit, err)
		}
	}
	return spec, nil
}

func (h *attributeHandler) search(c *gin.Context, relation domain.MappingRelation, defaultSourceType domain.AttributeType) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var params dto.SearchSourceAttributesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	spec, err := searchSpecFromParams(wsID, params)
	if err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	spec.Relation = relation
	if spec.SourceType == "" {
		spec.SourceType = defaultSourceType
	}

	attrs, next, err := h.attributeService.SearchSourceAttributes(c.Request.Context(), spec, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to search attributes")
		return
	}
	c.JSON(http.StatusOK, dto.ListSourceAttributesResponse{
		Attributes: dto.ToSourceAttributeResponses(attrs),
		NextToken:  next,
	})
}

// searchMappingAttributes godoc
// @Summary Alphabet search over source attributes
// @Description Lists source attributes whose value starts with one of the given characters, filtered by presence in the mappings table
// @Tags attributes
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   source_type query string true "Source attribute type"
// @Param   destination_type query string false "Destination attribute type"
// @Param   mapped query bool false "true: only mapped, false: only unmapped"
// @Param   active query bool false "Filter on activeness"
// @Param   mapping_source_alphabets query string false "Comma separated leading characters, required unless all_alphabets is set"
// @Param   all_alphabets query bool false "Use A-Z"
// @Param   include_digits query bool false "Add 0-9 to all_alphabets"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSourceAttributesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to search attributes"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings/attributes [get]
func (h *attributeHandler) searchMappingAttributes(c *gin.Context) {
	h.search(c, domain.RelationMapping, "")
}

// searchEmployeeAttributes godoc
// @Summary Alphabet search over employees
// @Description Same as the generic search but the mapped filter consults employee mappings; source_type defaults to EMPLOYEE
// @Tags attributes
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   destination_type query string false "Destination attribute type selecting the employee mapping slot"
// @Param   mapped query bool false "true: only mapped, false: only unmapped"
// @Param   mapping_source_alphabets query string false "Comma separated leading characters, required unless all_alphabets is set"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSourceAttributesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/mappings/employee/attributes [get]
func (h *attributeHandler) searchEmployeeAttributes(c *gin.Context) {
	h.search(c, domain.RelationEmployeeMapping, domain.AttributeEmployee)
}

// searchDestinationAttributes godoc
// @Summary Search destination attributes
// @Description Case-insensitive containment search over destination attribute values
// @Tags attributes
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   destination_attribute_type query string true "Destination attribute type"
// @Param   destination_attribute_value query string true "Text to search for; empty matches every attribute"
// @Success 200 {array} dto.DestinationAttributeResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/destination_attributes/search [get]
func (h *attributeHandler) searchDestinationAttributes(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var params dto.SearchDestinationAttributesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	if _, present := c.GetQuery("destination_attribute_value"); !present {
		badRequest(c, "Invalid query parameters", errors.New("query param destination_attribute_value not found"))
		return
	}
	attrs, err := h.attributeService.SearchDestinationAttributes(c.Request.Context(), wsID,
		domain.AttributeType(params.DestinationAttributeType), params.DestinationAttributeValue)
	if err != nil {
		respondError(c, err, "Failed to search destination attributes")
		return
	}
	c.JSON(http.StatusOK, dto.ToDestinationAttributeResponses(attrs))
}

// upsertSourceAttributes godoc
// @Summary Bulk upsert expense attributes
// @Description Inserts or updates source attributes keyed on (attribute_type, value); auto_mapped of existing rows is kept
// @Tags attributes
// @Accept  json
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   attributes body []dto.UpsertSourceAttributeRequest true "Expense attributes"
// @Success 200 {array} dto.SourceAttributeResponse
// @Failure 400 {object} dto.BulkUpsertErrorResponse "Invalid attributes"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/expense_attributes [post]
func (h *attributeHandler) upsertSourceAttributes(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var reqs []dto.UpsertSourceAttributeRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	attrs, err := h.attributeService.UpsertSourceAttributes(c.Request.Context(), wsID, reqs)
	if err != nil {
		respondError(c, err, "Failed to save expense attributes")
		return
	}
	c.JSON(http.StatusOK, dto.ToSourceAttributeResponses(attrs))
}

// upsertDestinationAttributes godoc
// @Summary Bulk upsert destination attributes
// @Description Inserts or updates destination attributes keyed on (attribute_type, destination_id)
// @Tags attributes
// @Accept  json
// @Produce  json
// @Param   workspace_id path int true "Workspace ID"
// @Param   attributes body []dto.UpsertDestinationAttributeRequest true "Destination attributes"
// @Success 200 {array} dto.DestinationAttributeResponse
// @Failure 400 {object} dto.BulkUpsertErrorResponse "Invalid attributes"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/destination_attributes [post]
func (h *attributeHandler) upsertDestinationAttributes(c *gin.Context) {
	wsID, ok := workspaceID(c)
	if !ok {
		return
	}
	var reqs []dto.UpsertDestinationAttributeRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	attrs, err := h.attributeService.UpsertDestinationAttributes(c.Request.Context(), wsID, reqs)
	if err != nil {
		respondError(c, err, "Failed to save destination attributes")
		return
	}
	c.JSON(http.StatusOK, dto.ToDestinationAttributeResponses(attrs))
}
