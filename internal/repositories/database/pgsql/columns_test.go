package pgsql

import (
	"testing"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestColumns_QualifiesWithAlias(t *testing.T) {
	assert.Equal(t, "id, value", columns("", []string{"id", "value"}))
	assert.Equal(t, "ea.id, ea.value", columns("ea", []string{"id", "value"}))
}

func TestConditions_NumbersPlaceholders(t *testing.T) {
	var c conditions
	c.add("ea.workspace_id = " + c.arg(int64(7)))
	c.add("ea.attribute_type = " + c.arg("PROJECT"))

	assert.Equal(t, "ea.workspace_id = $1 AND ea.attribute_type = $2", c.String())
	assert.Equal(t, []any{int64(7), "PROJECT"}, c.args)

	var empty conditions
	assert.Equal(t, "TRUE", empty.String())
}

func TestLikeContains_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%50\% off\_now%`, likeContains("50% off_now"))
	assert.Equal(t, `%a\\b%`, likeContains(`a\b`))
}

func TestMappedPredicate(t *testing.T) {
	var c conditions
	got := mappedPredicate(&c, domain.RelationMapping, domain.AttributeCustomer)
	assert.Contains(t, got, "FROM mappings m")
	assert.Contains(t, got, "m.destination_type = $1")
	assert.Equal(t, []any{"CUSTOMER"}, c.args)

	var anyDst conditions
	got = mappedPredicate(&anyDst, domain.RelationMapping, "")
	assert.NotContains(t, got, "destination_type")
	assert.Empty(t, anyDst.args)

	var emp conditions
	got = mappedPredicate(&emp, domain.RelationEmployeeMapping, domain.AttributeVendor)
	assert.Contains(t, got, "em.destination_vendor_id IS NOT NULL")
	assert.NotContains(t, got, "destination_employee_id")

	var allSlots conditions
	got = mappedPredicate(&allSlots, domain.RelationEmployeeMapping, "")
	assert.Contains(t, got, "em.destination_employee_id IS NOT NULL OR em.destination_vendor_id IS NOT NULL")
	assert.Contains(t, got, "em.destination_card_account_id IS NOT NULL")
}
