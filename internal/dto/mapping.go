package dto

import (
	"time"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

// --- Mapping DTOs ---

// CreateMappingRequest defines data for creating or updating a pairwise mapping.
type CreateMappingRequest struct {
	SourceType       string `json:"source_type" binding:"required"`
	DestinationType  string `json:"destination_type" binding:"required"`
	SourceValue      string `json:"source_value" binding:"required"`
	DestinationValue string `json:"destination_value" binding:"required"`
	DestinationID    string `json:"destination_id"` // Optional: resolves the destination by its external id
}

// ListMappingsParams defines query parameters for listing mappings.
type ListMappingsParams struct {
	SourceType      string `form:"source_type" binding:"required"`
	DestinationType string `form:"destination_type"`
	SourceActive    string `form:"source_active"`
	TableDimension  string `form:"table_dimension"`
}

// MappingResponse defines data returned for a mapping with both sides resolved.
type MappingResponse struct {
	ID              int64                        `json:"id"`
	WorkspaceID     int64                        `json:"workspace"`
	SourceType      string                       `json:"source_type"`
	DestinationType string                       `json:"destination_type"`
	Source          SourceAttributeResponse      `json:"source"`
	Destination     DestinationAttributeResponse `json:"destination"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
}

// ToMappingResponse converts domain.Mapping to DTO.
func ToMappingResponse(m *domain.Mapping) MappingResponse {
	return MappingResponse{
		ID:              m.ID,
		WorkspaceID:     m.WorkspaceID,
		SourceType:      string(m.SourceType),
		DestinationType: string(m.DestinationType),
		Source:          ToSourceAttributeResponse(&m.Source),
		Destination:     *ToDestinationAttributeResponse(&m.Destination),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToMappingResponses converts a slice of domain.Mapping to DTOs.
func ToMappingResponses(ms []domain.Mapping) []MappingResponse {
	out := make([]MappingResponse, len(ms))
	for i := range ms {
		out[i] = ToMappingResponse(&ms[i])
	}
	return out
}

// AttributeRef references an attribute by ID, as in {"id": 10}. A missing or null
// id means the slot is empty.
type AttributeRef struct {
	ID *int64 `json:"id"`
}

// IDOrNil returns the referenced ID, or nil for an absent reference.
func (r *AttributeRef) IDOrNil() *int64 {
	if r == nil {
		return nil
	}
	return r.ID
}

// EmployeeMappingRequest defines data for creating or updating an employee mapping.
type EmployeeMappingRequest struct {
	SourceEmployee         *AttributeRef `json:"source_employee" binding:"required"`
	DestinationEmployee    *AttributeRef `json:"destination_employee"`
	DestinationVendor      *AttributeRef `json:"destination_vendor"`
	DestinationCardAccount *AttributeRef `json:"destination_card_account"`
	ManualMapping          bool          `json:"manual_mapping"`
}

// EmployeeMappingResponse defines data returned for an employee mapping.
type EmployeeMappingResponse struct {
	ID                     int64                         `json:"id"`
	WorkspaceID            int64                         `json:"workspace"`
	SourceEmployee         SourceAttributeResponse       `json:"source_employee"`
	DestinationEmployee    *DestinationAttributeResponse `json:"destination_employee"`
	DestinationVendor      *DestinationAttributeResponse `json:"destination_vendor"`
	DestinationCardAccount *DestinationAttributeResponse `json:"destination_card_account"`
	ManualMapping          bool                          `json:"manual_mapping"`
	CreatedAt              time.Time                     `json:"created_at"`
	UpdatedAt              time.Time                     `json:"updated_at"`
}

// ToEmployeeMappingResponse converts domain.EmployeeMapping to DTO.
func ToEmployeeMappingResponse(m *domain.EmployeeMapping) EmployeeMappingResponse {
	return EmployeeMappingResponse{
		ID:                     m.ID,
		WorkspaceID:            m.WorkspaceID,
		SourceEmployee:         ToSourceAttributeResponse(&m.SourceEmployee),
		DestinationEmployee:    ToDestinationAttributeResponse(m.DestinationEmployee),
		DestinationVendor:      ToDestinationAttributeResponse(m.DestinationVendor),
		DestinationCardAccount: ToDestinationAttributeResponse(m.DestinationCardAccount),
		ManualMapping:          m.ManualMapping,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// ToEmployeeMappingResponses converts a slice of domain.EmployeeMapping to DTOs.
func ToEmployeeMappingResponses(ms []domain.EmployeeMapping) []EmployeeMappingResponse {
	out := make([]EmployeeMappingResponse, len(ms))
	for i := range ms {
		out[i] = ToEmployeeMappingResponse(&ms[i])
	}
	return out
}

// CategoryMappingRequest defines data for creating or updating a category mapping.
type CategoryMappingRequest struct {
	SourceCategory         *AttributeRef `json:"source_category" binding:"required"`
	DestinationAccount     *AttributeRef `json:"destination_account"`
	DestinationExpenseHead *AttributeRef `json:"destination_expense_head"`
	ManualMapping          bool          `json:"manual_mapping"`
}

// CategoryMappingResponse defines data returned for a category mapping.
type CategoryMappingResponse struct {
	ID                     int64                         `json:"id"`
	WorkspaceID            int64                         `json:"workspace"`
	SourceCategory         SourceAttributeResponse       `json:"source_category"`
	DestinationAccount     *DestinationAttributeResponse `json:"destination_account"`
	DestinationExpenseHead *DestinationAttributeResponse `json:"destination_expense_head"`
	ManualMapping          bool                          `json:"manual_mapping"`
	CreatedAt              time.Time                     `json:"created_at"`
	UpdatedAt              time.Time                     `json:"updated_at"`
}

// ToCategoryMappingResponse converts domain.CategoryMapping to DTO.
func ToCategoryMappingResponse(m *domain.CategoryMapping) CategoryMappingResponse {
	return CategoryMappingResponse{
		ID:                     m.ID,
		WorkspaceID:            m.WorkspaceID,
		SourceCategory:         ToSourceAttributeResponse(&m.SourceCategory),
		DestinationAccount:     ToDestinationAttributeResponse(m.DestinationAccount),
		DestinationExpenseHead: ToDestinationAttributeResponse(m.DestinationExpenseHead),
		ManualMapping:          m.ManualMapping,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// ToCategoryMappingResponses converts a slice of domain.CategoryMapping to DTOs.
func ToCategoryMappingResponses(ms []domain.CategoryMapping) []CategoryMappingResponse {
	out := make([]CategoryMappingResponse, len(ms))
	for i := range ms {
		out[i] = ToCategoryMappingResponse(&ms[i])
	}
	return out
}

// --- Stats DTOs ---

// MappingStatsParams defines query parameters for mapping stats.
type MappingStatsParams struct {
	SourceType      string `form:"source_type" binding:"required"`
	DestinationType string `form:"destination_type"`
}
