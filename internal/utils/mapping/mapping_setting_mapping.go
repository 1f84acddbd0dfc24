package mapping

import (
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/SscSPs/accounting_mappings/internal/models"
)

// ToModelMappingSetting converts a domain MappingSetting to a model MappingSetting
func ToModelMappingSetting(d domain.MappingSetting) models.MappingSetting {
	return models.MappingSetting{
		ID:               d.ID,
		WorkspaceID:      d.WorkspaceID,
		SourceField:      string(d.SourceField),
		DestinationField: string(d.DestinationField),
		ExpenseFieldID:   d.ExpenseFieldID,
		IsCustom:         d.IsCustom,
		ImportToFyle:     d.ImportToFyle,
		Timestamps:       ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainMappingSetting converts a model MappingSetting to a domain MappingSetting
func ToDomainMappingSetting(m models.MappingSetting) domain.MappingSetting {
	return domain.MappingSetting{
		ID:               m.ID,
		WorkspaceID:      m.WorkspaceID,
		SourceField:      domain.AttributeType(m.SourceField),
		DestinationField: domain.AttributeType(m.DestinationField),
		ExpenseFieldID:   m.ExpenseFieldID,
		IsCustom:         m.IsCustom,
		ImportToFyle:     m.ImportToFyle,
		Timestamps:       ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainMappingSettingSlice converts a slice of model MappingSettings to domain MappingSettings
func ToDomainMappingSettingSlice(ms []models.MappingSetting) []domain.MappingSetting {
	ds := make([]domain.MappingSetting, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMappingSetting(m)
	}
	return ds
}

// ToModelExpenseField converts a domain ExpenseField to a model ExpenseField
func ToModelExpenseField(d domain.ExpenseField) models.ExpenseField {
	return models.ExpenseField{
		ID:            d.ID,
		WorkspaceID:   d.WorkspaceID,
		AttributeType: string(d.AttributeType),
		SourceFieldID: d.SourceFieldID,
		IsEnabled:     d.IsEnabled,
		Timestamps:    ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainExpenseField converts a model ExpenseField to a domain ExpenseField
func ToDomainExpenseField(m models.ExpenseField) domain.ExpenseField {
	return domain.ExpenseField{
		ID:            m.ID,
		WorkspaceID:   m.WorkspaceID,
		AttributeType: domain.AttributeType(m.AttributeType),
		SourceFieldID: m.SourceFieldID,
		IsEnabled:     m.IsEnabled,
		Timestamps:    ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainExpenseFieldSlice converts a slice of model ExpenseFields to domain ExpenseFields
func ToDomainExpenseFieldSlice(ms []models.ExpenseField) []domain.ExpenseField {
	ds := make([]domain.ExpenseField, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpenseField(m)
	}
	return ds
}
