package domain_test

import (
	"testing"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMappedState(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.MappedState
		wantErr bool
	}{
		{raw: "", want: domain.MappedAny},
		{raw: "true", want: domain.MappedOnly},
		{raw: "false", want: domain.UnmappedOnly},
		{raw: "1", want: domain.MappedOnly},
		{raw: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseMappedState(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTableDimension(t *testing.T) {
	dim, err := domain.ParseTableDimension("")
	require.NoError(t, err)
	assert.Equal(t, domain.TwoColumn, dim)

	dim, err = domain.ParseTableDimension("3")
	require.NoError(t, err)
	assert.Equal(t, domain.ThreeColumn, dim)

	_, err = domain.ParseTableDimension("three")
	assert.Error(t, err)

	_, err = domain.ParseTableDimension("4")
	assert.Error(t, err)
}

func TestParseBuckets(t *testing.T) {
	buckets, err := domain.ParseBuckets("a, B,a,", false, false)
	require.NoError(t, err)
	assert.Equal(t, []rune{'A', 'B'}, buckets)

	all, err := domain.ParseBuckets("ignored", true, false)
	require.NoError(t, err)
	assert.Len(t, all, 26)

	withDigits, err := domain.ParseBuckets("", true, true)
	require.NoError(t, err)
	assert.Len(t, withDigits, 36)
	assert.Equal(t, '9', withDigits[35])

	_, err = domain.ParseBuckets("ab", false, false)
	assert.Error(t, err)

	for _, raw := range []string{"", " , ,"} {
		_, err = domain.ParseBuckets(raw, false, true)
		assert.Error(t, err, "an empty list without the all flag is rejected: %q", raw)
	}
}

func TestInBuckets(t *testing.T) {
	assert.True(t, domain.InBuckets("travel", []rune{'T'}))
	assert.True(t, domain.InBuckets("Travel", []rune{'T'}))
	assert.False(t, domain.InBuckets("Meals", []rune{'T'}))
	assert.False(t, domain.InBuckets("", []rune{'T'}))
	assert.True(t, domain.InBuckets("anything", nil))
}

func TestAttributeTypeSet(t *testing.T) {
	set := domain.NewAttributeTypeSet(domain.AttributeCreditCardAccount, domain.AttributeChargeCardNumber, domain.AttributeCreditCardAccount)

	assert.True(t, set.Contains(domain.AttributeCreditCardAccount))
	assert.True(t, set.Contains(domain.AttributeChargeCardNumber))
	assert.False(t, set.Contains(domain.AttributeVendor))
	assert.Equal(t, []string{"CREDIT_CARD_ACCOUNT", "CHARGE_CARD_NUMBER"}, set.Strings())
}

func TestEmployeeSlotFor(t *testing.T) {
	assert.Equal(t, domain.SlotVendor, domain.EmployeeSlotFor(domain.AttributeVendor))
	assert.Equal(t, domain.SlotCardAccount, domain.EmployeeSlotFor(domain.AttributeChargeCardNumber))
	assert.Equal(t, domain.SlotEmployee, domain.EmployeeSlotFor(domain.AttributeEmployee))
	assert.Equal(t, domain.SlotEmployee, domain.EmployeeSlotFor(""))
}

func TestNewStatsFilter(t *testing.T) {
	f := domain.NewStatsFilter(1, domain.AttributeProject, domain.AttributeCustomer)
	assert.Equal(t, domain.ActiveOnly, f.Active)
	assert.Equal(t, domain.ActivityValue, f.ExcludeValue)

	f = domain.NewStatsFilter(1, domain.AttributeProject, domain.AttributeClass)
	assert.Equal(t, domain.ActiveAny, f.Active)

	f = domain.NewStatsFilter(1, domain.AttributeCategory, domain.AttributeAccount)
	assert.Equal(t, domain.ActiveOnly, f.Active)

	f = domain.NewStatsFilter(1, domain.AttributeEmployee, domain.AttributeVendor)
	assert.Equal(t, domain.RelationEmployeeMapping, f.Relation)
}

func TestNewMappingStats(t *testing.T) {
	stats := domain.NewMappingStats(3, 1)
	assert.Equal(t, int64(2), stats.UnmappedAttributesCount)
	assert.True(t, decimal.RequireFromString("33.33").Equal(stats.MappedPercentage))
	assert.Equal(t, stats.AllAttributesCount, stats.MappedAttributesCount+stats.UnmappedAttributesCount)

	drift := domain.NewMappingStats(1, 2)
	assert.Equal(t, int64(-1), drift.UnmappedAttributesCount)

	empty := domain.NewMappingStats(0, 0)
	assert.True(t, decimal.Zero.Equal(empty.MappedPercentage))
}

func TestAttributeType_DisplayName(t *testing.T) {
	assert.Equal(t, "Cost Center", domain.AttributeCostCenter.DisplayName())
	assert.Equal(t, "Employee", domain.AttributeEmployee.DisplayName())
	assert.Equal(t, "Credit Card Account", domain.AttributeCreditCardAccount.DisplayName())
	assert.Equal(t, "", domain.AttributeType("").DisplayName())
}
