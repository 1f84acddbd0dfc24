package dto

import (
	"time"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

// --- Attribute DTOs ---

// SourceAttributeResponse defines the data returned for a source (expense) attribute.
type SourceAttributeResponse struct {
	ID            int64          `json:"id"`
	WorkspaceID   int64          `json:"workspace"`
	AttributeType string         `json:"attribute_type"`
	DisplayName   string         `json:"display_name"`
	Value         string         `json:"value"`
	SourceID      string         `json:"source_id"`
	Detail        map[string]any `json:"detail"`
	Active        bool           `json:"active"`
	AutoMapped    bool           `json:"auto_mapped"`
	AutoCreated   bool           `json:"auto_created"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ToSourceAttributeResponse converts domain.SourceAttribute to DTO.
func ToSourceAttributeResponse(a *domain.SourceAttribute) SourceAttributeResponse {
	return SourceAttributeResponse{
		ID:            a.ID,
		WorkspaceID:   a.WorkspaceID,
		AttributeType: string(a.AttributeType),
		DisplayName:   a.DisplayName,
		Value:         a.Value,
		SourceID:      a.SourceID,
		Detail:        a.Detail,
		Active:        a.Active,
		AutoMapped:    a.AutoMapped,
		AutoCreated:   a.AutoCreated,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToSourceAttributeResponses converts a slice of domain.SourceAttribute to DTOs.
func ToSourceAttributeResponses(as []domain.SourceAttribute) []SourceAttributeResponse {
	out := make([]SourceAttributeResponse, len(as))
	for i := range as {
		out[i] = ToSourceAttributeResponse(&as[i])
	}
	return out
}

// DestinationAttributeResponse defines the data returned for a destination attribute.
type DestinationAttributeResponse struct {
	ID            int64          `json:"id"`
	WorkspaceID   int64          `json:"workspace"`
	AttributeType string         `json:"attribute_type"`
	DisplayName   string         `json:"display_name"`
	Value         string         `json:"value"`
	DestinationID string         `json:"destination_id"`
	Detail        map[string]any `json:"detail"`
	Active        bool           `json:"active"`
	AutoCreated   bool           `json:"auto_created"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ToDestinationAttributeResponse converts domain.DestinationAttribute to DTO.
// A nil attribute (an empty mapping slot) converts to nil.
func ToDestinationAttributeResponse(a *domain.DestinationAttribute) *DestinationAttributeResponse {
	if a == nil {
		return nil
	}
	return &DestinationAttributeResponse{
		ID:            a.ID,
		WorkspaceID:   a.WorkspaceID,
		AttributeType: string(a.AttributeType),
		DisplayName:   a.DisplayName,
		Value:         a.Value,
		DestinationID: a.DestinationID,
		Detail:        a.Detail,
		Active:        a.Active,
		AutoCreated:   a.AutoCreated,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToDestinationAttributeResponses converts a slice of domain.DestinationAttribute to DTOs.
func ToDestinationAttributeResponses(as []domain.DestinationAttribute) []DestinationAttributeResponse {
	out := make([]DestinationAttributeResponse, len(as))
	for i := range as {
		out[i] = *ToDestinationAttributeResponse(&as[i])
	}
	return out
}

// UpsertSourceAttributeRequest describes one source attribute pushed by attribute sync.
type UpsertSourceAttributeRequest struct {
	AttributeType string         `json:"attribute_type" validate:"required,attribute_type"`
	Value         string         `json:"value" validate:"required"`
	SourceID      string         `json:"source_id" validate:"required"`
	DisplayName   string         `json:"display_name"`
	Detail        map[string]any `json:"detail"`
	Active        *bool          `json:"active"` // defaults to true
	AutoCreated   bool           `json:"auto_created"`
}

// UpsertDestinationAttributeRequest describes one destination attribute pushed by attribute sync.
type UpsertDestinationAttributeRequest struct {
	AttributeType string         `json:"attribute_type" validate:"required,attribute_type"`
	Value         string         `json:"value" validate:"required"`
	DestinationID string         `json:"destination_id" validate:"required"`
	DisplayName   string         `json:"display_name"`
	Detail        map[string]any `json:"detail"`
	Active        *bool          `json:"active"` // defaults to true
	AutoCreated   bool           `json:"auto_created"`
}

// SearchDestinationAttributesParams defines query parameters for the free-text destination search.
// destination_attribute_value must be present but may be empty.
type SearchDestinationAttributesParams struct {
	DestinationAttributeType  string `form:"destination_attribute_type" binding:"required"`
	DestinationAttributeValue string `form:"destination_attribute_value"`
}

// SearchSourceAttributesParams defines query parameters for the alphabet-bucketed listing.
// Boolean and numeric values are kept as strings and parsed explicitly so malformed input is rejected.
type SearchSourceAttributesParams struct {
	SourceType      string  `form:"source_type"`
	DestinationType string  `form:"destination_type"`
	Mapped          string  `form:"mapped"`
	Active          string  `form:"active"`
	Alphabets       string  `form:"mapping_source_alphabets"`
	AllAlphabets    string  `form:"all_alphabets"`
	IncludeDigits   string  `form:"include_digits"`
	Limit           string  `form:"limit"`
	NextToken       *string `form:"nextToken"`
}

// ListSourceAttributesResponse wraps one page of source attributes.
type ListSourceAttributesResponse struct {
	Attributes []SourceAttributeResponse `json:"results"`
	NextToken  *string                   `json:"nextToken,omitempty"`
}

// BulkUpsertErrorResponse is returned when some items of a batch failed validation.
type BulkUpsertErrorResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors"`
	Saved   any    `json:"saved,omitempty"`
}
