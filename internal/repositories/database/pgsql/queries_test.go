package pgsql

import (
	"testing"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSearchSourceAttributesQuery_KeysetPage(t *testing.T) {
	query, args := searchSourceAttributesQuery(domain.AttributeSearchSpec{
		WorkspaceID:     1,
		SourceType:      domain.AttributeProject,
		DestinationType: domain.AttributeCustomer,
		Mapped:          domain.UnmappedOnly,
		Active:          domain.ActiveOnly,
		Buckets:         []rune{'A', 'B'},
		Relation:        domain.RelationMapping,
		Limit:           3,
		After:           &domain.AttributeCursor{Value: "Bravo", ID: 9},
	})

	assert.Contains(t, query, "ea.active = TRUE")
	assert.Contains(t, query, "upper(left(ea.value, 1)) = ANY($3)")
	assert.Contains(t, query, "NOT EXISTS (SELECT 1 FROM mappings m")
	assert.Contains(t, query, "m.destination_type = $4")
	assert.Contains(t, query, `(ea.value COLLATE "C", ea.id) > ($5, $6)`)
	assert.Contains(t, query, `ORDER BY ea.value COLLATE "C", ea.id LIMIT $7`)
	assert.Equal(t, []any{int64(1), "PROJECT", []string{"A", "B"}, "CUSTOMER", "Bravo", int64(9), 3}, args)
}

func TestSearchSourceAttributesQuery_NoOptionalFilters(t *testing.T) {
	query, args := searchSourceAttributesQuery(domain.AttributeSearchSpec{
		WorkspaceID: 1,
		SourceType:  domain.AttributeEmployee,
		Relation:    domain.RelationEmployeeMapping,
	})

	assert.NotContains(t, query, "EXISTS")
	assert.NotContains(t, query, "ANY(")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, []any{int64(1), "EMPLOYEE"}, args)
}

func TestListMappingsQuery(t *testing.T) {
	twoCol, args := listMappingsQuery(domain.MappingListSpec{
		WorkspaceID:     1,
		SourceType:      domain.AttributeCategory,
		DestinationType: domain.AttributeAccount,
		SourceActive:    domain.InactiveOnly,
		Dimension:       domain.TwoColumn,
	})
	assert.Contains(t, twoCol, "m.destination_type = $3")
	assert.Contains(t, twoCol, "ea.active = FALSE")
	assert.NotContains(t, twoCol, "HAVING")
	assert.Contains(t, twoCol, `ORDER BY ea.value COLLATE "C", m.id`)
	assert.Equal(t, []any{int64(1), "CATEGORY", "ACCOUNT"}, args)

	threeCol, args := listMappingsQuery(domain.MappingListSpec{
		WorkspaceID:     1,
		SourceType:      domain.AttributeCategory,
		DestinationType: domain.AttributeAccount,
		Dimension:       domain.ThreeColumn,
	})
	assert.Contains(t, threeCol, "WHERE workspace_id = $1 AND source_type = $2")
	assert.Contains(t, threeCol, "HAVING COUNT(*) = 2")
	assert.NotContains(t, threeCol, "m.destination_type", "destination_type is ignored in three-column mode")
	assert.Equal(t, []any{int64(1), "CATEGORY"}, args)
}

func TestStatsConditions(t *testing.T) {
	c := statsConditions(domain.NewStatsFilter(1, domain.AttributeCategory, domain.AttributeAccount))

	assert.Equal(t, "ea.workspace_id = $1 AND ea.attribute_type = $2 AND ea.value <> $3 AND ea.active = TRUE", c.String())
	assert.Equal(t, []any{int64(1), "CATEGORY", "Activity"}, c.args)
}

func TestMappingCountQuery_CountsRowsWithoutValueExclusion(t *testing.T) {
	query, args := mappingCountQuery(domain.NewStatsFilter(1, domain.AttributeProject, domain.AttributeCustomer))

	assert.Contains(t, query, "SELECT COUNT(*) FROM mappings m")
	assert.Contains(t, query, "m.source_type = $2 AND m.destination_type = $3")
	assert.Contains(t, query, "ea.active = TRUE")
	assert.NotContains(t, query, "ea.value")
	assert.NotContains(t, query, "EXISTS")
	assert.Equal(t, []any{int64(1), "PROJECT", "CUSTOMER"}, args)

	query, args = mappingCountQuery(domain.NewStatsFilter(1, domain.AttributeProject, ""))
	assert.NotContains(t, query, "destination_type")
	assert.Equal(t, []any{int64(1), "PROJECT"}, args)
}

func TestMappingCountQuery_EmployeeSlot(t *testing.T) {
	query, args := mappingCountQuery(domain.NewStatsFilter(1, domain.AttributeEmployee, domain.AttributeVendor))

	assert.Contains(t, query, "SELECT COUNT(*) FROM employee_mappings em")
	assert.Contains(t, query, "(em.destination_vendor_id IS NOT NULL)")
	assert.NotContains(t, query, "source_type")
	assert.NotContains(t, query, "ea.active")
	assert.Equal(t, []any{int64(1)}, args)
}

func TestEmployeeSlotPredicate(t *testing.T) {
	assert.Equal(t, "(em.destination_card_account_id IS NOT NULL)", employeeSlotPredicate("em", domain.AttributeCreditCardAccount))
	assert.Equal(t,
		"(em.destination_employee_id IS NOT NULL OR em.destination_vendor_id IS NOT NULL OR em.destination_card_account_id IS NOT NULL)",
		employeeSlotPredicate("em", ""))
}
