package mapping

import (
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/SscSPs/accounting_mappings/internal/models"
)

// ToModelExpenseAttribute converts a domain SourceAttribute to a model ExpenseAttribute
func ToModelExpenseAttribute(d domain.SourceAttribute) models.ExpenseAttribute {
	return models.ExpenseAttribute{
		ID:            d.ID,
		WorkspaceID:   d.WorkspaceID,
		AttributeType: string(d.AttributeType),
		DisplayName:   d.DisplayName,
		Value:         d.Value,
		SourceID:      d.SourceID,
		Detail:        detailOrEmpty(d.Detail),
		Active:        d.Active,
		AutoMapped:    d.AutoMapped,
		AutoCreated:   d.AutoCreated,
		Timestamps:    ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainSourceAttribute converts a model ExpenseAttribute to a domain SourceAttribute
func ToDomainSourceAttribute(m models.ExpenseAttribute) domain.SourceAttribute {
	return domain.SourceAttribute{
		ID:            m.ID,
		WorkspaceID:   m.WorkspaceID,
		AttributeType: domain.AttributeType(m.AttributeType),
		DisplayName:   m.DisplayName,
		Value:         m.Value,
		SourceID:      m.SourceID,
		Detail:        m.Detail,
		Active:        m.Active,
		AutoMapped:    m.AutoMapped,
		AutoCreated:   m.AutoCreated,
		Timestamps:    ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainSourceAttributeSlice converts a slice of model ExpenseAttributes to domain SourceAttributes
func ToDomainSourceAttributeSlice(ms []models.ExpenseAttribute) []domain.SourceAttribute {
	ds := make([]domain.SourceAttribute, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSourceAttribute(m)
	}
	return ds
}

// ToModelDestinationAttribute converts a domain DestinationAttribute to a model DestinationAttribute
func ToModelDestinationAttribute(d domain.DestinationAttribute) models.DestinationAttribute {
	return models.DestinationAttribute{
		ID:            d.ID,
		WorkspaceID:   d.WorkspaceID,
		AttributeType: string(d.AttributeType),
		DisplayName:   d.DisplayName,
		Value:         d.Value,
		DestinationID: d.DestinationID,
		Detail:        detailOrEmpty(d.Detail),
		Active:        d.Active,
		AutoCreated:   d.AutoCreated,
		Timestamps:    ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainDestinationAttribute converts a model DestinationAttribute to a domain DestinationAttribute
func ToDomainDestinationAttribute(m models.DestinationAttribute) domain.DestinationAttribute {
	return domain.DestinationAttribute{
		ID:            m.ID,
		WorkspaceID:   m.WorkspaceID,
		AttributeType: domain.AttributeType(m.AttributeType),
		DisplayName:   m.DisplayName,
		Value:         m.Value,
		DestinationID: m.DestinationID,
		Detail:        m.Detail,
		Active:        m.Active,
		AutoCreated:   m.AutoCreated,
		Timestamps:    ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainDestinationAttributeSlice converts model DestinationAttributes to domain DestinationAttributes
func ToDomainDestinationAttributeSlice(ms []models.DestinationAttribute) []domain.DestinationAttribute {
	ds := make([]domain.DestinationAttribute, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDestinationAttribute(m)
	}
	return ds
}
