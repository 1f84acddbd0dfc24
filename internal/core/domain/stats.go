package domain

import "github.com/shopspring/decimal"

// MappingStats summarises how many source attributes of a type are mapped.
type MappingStats struct {
	AllAttributesCount      int64           `json:"all_attributes_count"`
	MappedAttributesCount   int64           `json:"mapped_attributes_count"`
	UnmappedAttributesCount int64           `json:"unmapped_attributes_count"`
	MappedPercentage        decimal.Decimal `json:"mapped_percentage"`
}

// NewMappingStats derives the unmapped count and percentage from the two counts.
// Unmapped is not clamped: a negative value means mappings outlived their sources.
func NewMappingStats(total, mapped int64) MappingStats {
	pct := decimal.Zero
	if total > 0 {
		pct = decimal.NewFromInt(mapped).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(total)).
			Round(2)
	}
	return MappingStats{
		AllAttributesCount:      total,
		MappedAttributesCount:   mapped,
		UnmappedAttributesCount: total - mapped,
		MappedPercentage:        pct,
	}
}
