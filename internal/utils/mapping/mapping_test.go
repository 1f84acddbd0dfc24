package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/SscSPs/accounting_mappings/internal/models"
	"github.com/SscSPs/accounting_mappings/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelExpenseAttribute_NilDetailBecomesEmpty(t *testing.T) {
	m := mapping.ToModelExpenseAttribute(domain.SourceAttribute{AttributeType: domain.AttributeProject, Value: "Alpha"})
	assert.NotNil(t, m.Detail)
	assert.Equal(t, "PROJECT", m.AttributeType)
}

func TestToDomainEmployeeMapping_ResolvesSlots(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	vendorID := int64(11)
	missingID := int64(99)
	row := models.EmployeeMapping{
		ID:                       1,
		WorkspaceID:              7,
		SourceEmployeeID:         3,
		DestinationVendorID:      &vendorID,
		DestinationCardAccountID: &missingID,
		Timestamps:               models.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	src := models.ExpenseAttribute{ID: 3, AttributeType: "EMPLOYEE", Value: "ashwin@example.com"}
	lookup := mapping.DestinationLookup{11: {ID: 11, AttributeType: "VENDOR", Value: "Ashwin"}}

	got := mapping.ToDomainEmployeeMapping(row, src, lookup)

	assert.Nil(t, got.DestinationEmployee)
	require.NotNil(t, got.DestinationVendor)
	assert.Equal(t, domain.AttributeVendor, got.DestinationVendor.AttributeType)
	assert.Nil(t, got.DestinationCardAccount)
	assert.Equal(t, "ashwin@example.com", got.SourceEmployee.Value)
	assert.Equal(t, now, got.CreatedAt)
}

func TestSlotIDs_SkipsNilAndDuplicates(t *testing.T) {
	a, b := int64(1), int64(2)
	dup := int64(1)
	assert.Equal(t, []int64{1, 2}, mapping.SlotIDs(&a, nil, &b, &dup))
	assert.Empty(t, mapping.SlotIDs(nil, nil))
}
