package dto

import (
	"time"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

// --- Mapping Setting DTOs ---

// MappingSettingRequest describes one setting of a bulk upsert.
type MappingSettingRequest struct {
	SourceField      string `json:"source_field" validate:"required,attribute_type"`
	DestinationField string `json:"destination_field" validate:"required,attribute_type"`
	ExpenseFieldID   *int64 `json:"expense_field_id" validate:"omitempty,gt=0"`
	IsCustom         bool   `json:"is_custom"`
	ImportToFyle     bool   `json:"import_to_fyle"`
}

// MappingSettingResponse defines data returned for a mapping setting.
type MappingSettingResponse struct {
	ID               int64     `json:"id"`
	WorkspaceID      int64     `json:"workspace"`
	SourceField      string    `json:"source_field"`
	DestinationField string    `json:"destination_field"`
	ExpenseFieldID   *int64    `json:"expense_field"`
	IsCustom         bool      `json:"is_custom"`
	ImportToFyle     bool      `json:"import_to_fyle"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToMappingSettingResponse converts domain.MappingSetting to DTO.
func ToMappingSettingResponse(s *domain.MappingSetting) MappingSettingResponse {
	return MappingSettingResponse{
		ID:               s.ID,
		WorkspaceID:      s.WorkspaceID,
		SourceField:      string(s.SourceField),
		DestinationField: string(s.DestinationField),
		ExpenseFieldID:   s.ExpenseFieldID,
		IsCustom:         s.IsCustom,
		ImportToFyle:     s.ImportToFyle,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToMappingSettingResponses converts a slice of domain.MappingSetting to DTOs.
func ToMappingSettingResponses(ss []domain.MappingSetting) []MappingSettingResponse {
	out := make([]MappingSettingResponse, len(ss))
	for i := range ss {
		out[i] = ToMappingSettingResponse(&ss[i])
	}
	return out
}

// --- Expense Field DTOs ---

// ExpenseFieldRequest describes one expense field of a bulk upsert.
type ExpenseFieldRequest struct {
	AttributeType string `json:"attribute_type" validate:"required,attribute_type"`
	SourceFieldID int64  `json:"source_field_id" validate:"required,gt=0"`
	IsEnabled     bool   `json:"is_enabled"`
}

// ExpenseFieldResponse defines data returned for an expense field.
type ExpenseFieldResponse struct {
	ID            int64     `json:"id"`
	WorkspaceID   int64     `json:"workspace"`
	AttributeType string    `json:"attribute_type"`
	SourceFieldID int64     `json:"source_field_id"`
	IsEnabled     bool      `json:"is_enabled"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToExpenseFieldResponses converts a slice of domain.ExpenseField to DTOs.
func ToExpenseFieldResponses(fs []domain.ExpenseField) []ExpenseFieldResponse {
	out := make([]ExpenseFieldResponse, len(fs))
	for i, f := range fs {
		out[i] = ExpenseFieldResponse{
			ID:            f.ID,
			WorkspaceID:   f.WorkspaceID,
			AttributeType: string(f.AttributeType),
			SourceFieldID: f.SourceFieldID,
			IsEnabled:     f.IsEnabled,
			CreatedAt:     f.CreatedAt,
			UpdatedAt:     f.UpdatedAt,
		}
	}
	return out
}
