package mapping

import (
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/SscSPs/accounting_mappings/internal/models"
)

// ToDomainMapping assembles a domain Mapping from its row and both resolved attributes
func ToDomainMapping(m models.Mapping, src models.ExpenseAttribute, dst models.DestinationAttribute) domain.Mapping {
	return domain.Mapping{
		ID:              m.ID,
		WorkspaceID:     m.WorkspaceID,
		SourceType:      domain.AttributeType(m.SourceType),
		DestinationType: domain.AttributeType(m.DestinationType),
		Source:          ToDomainSourceAttribute(src),
		Destination:     ToDomainDestinationAttribute(dst),
		Timestamps:      ToDomainTimestamps(m.Timestamps),
	}
}

// DestinationLookup resolves a destination attribute row by ID.
type DestinationLookup map[int64]models.DestinationAttribute

// Resolve returns the domain attribute for id, or nil when id is nil or unknown.
func (l DestinationLookup) Resolve(id *int64) *domain.DestinationAttribute {
	if id == nil {
		return nil
	}
	m, ok := l[*id]
	if !ok {
		return nil
	}
	d := ToDomainDestinationAttribute(m)
	return &d
}

// SlotIDs returns the non-nil IDs among ids, without duplicates.
func SlotIDs(ids ...*int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		out = append(out, *id)
	}
	return out
}

// ToDomainEmployeeMapping assembles a domain EmployeeMapping from its row, source and destination lookup
func ToDomainEmployeeMapping(m models.EmployeeMapping, src models.ExpenseAttribute, dsts DestinationLookup) domain.EmployeeMapping {
	return domain.EmployeeMapping{
		ID:                     m.ID,
		WorkspaceID:            m.WorkspaceID,
		SourceEmployee:         ToDomainSourceAttribute(src),
		DestinationEmployee:    dsts.Resolve(m.DestinationEmployeeID),
		DestinationVendor:      dsts.Resolve(m.DestinationVendorID),
		DestinationCardAccount: dsts.Resolve(m.DestinationCardAccountID),
		ManualMapping:          m.ManualMapping,
		Timestamps:             ToDomainTimestamps(m.Timestamps),
	}
}

// ToModelEmployeeMapping converts a domain EmployeeMappingUpsert to a model EmployeeMapping
func ToModelEmployeeMapping(u domain.EmployeeMappingUpsert) models.EmployeeMapping {
	return models.EmployeeMapping{
		WorkspaceID:              u.WorkspaceID,
		SourceEmployeeID:         u.SourceEmployeeID,
		DestinationEmployeeID:    u.DestinationEmployeeID,
		DestinationVendorID:      u.DestinationVendorID,
		DestinationCardAccountID: u.DestinationCardAccountID,
		ManualMapping:            u.ManualMapping,
	}
}

// ToDomainCategoryMapping assembles a domain CategoryMapping from its row, source and destination lookup
func ToDomainCategoryMapping(m models.CategoryMapping, src models.ExpenseAttribute, dsts DestinationLookup) domain.CategoryMapping {
	return domain.CategoryMapping{
		ID:                     m.ID,
		WorkspaceID:            m.WorkspaceID,
		SourceCategory:         ToDomainSourceAttribute(src),
		DestinationAccount:     dsts.Resolve(m.DestinationAccountID),
		DestinationExpenseHead: dsts.Resolve(m.DestinationExpenseHeadID),
		ManualMapping:          m.ManualMapping,
		Timestamps:             ToDomainTimestamps(m.Timestamps),
	}
}

// ToModelCategoryMapping converts a domain CategoryMappingUpsert to a model CategoryMapping
func ToModelCategoryMapping(u domain.CategoryMappingUpsert) models.CategoryMapping {
	return models.CategoryMapping{
		WorkspaceID:              u.WorkspaceID,
		SourceCategoryID:         u.SourceCategoryID,
		DestinationAccountID:     u.DestinationAccountID,
		DestinationExpenseHeadID: u.DestinationExpenseHeadID,
		ManualMapping:            u.ManualMapping,
	}
}
