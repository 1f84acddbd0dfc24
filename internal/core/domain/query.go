package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MappedState filters source attributes by presence in a mapping relation.
type MappedState int

const (
	// MappedAny skips the mapped/unmapped filter entirely.
	MappedAny MappedState = iota
	MappedOnly
	UnmappedOnly
)

// ParseMappedState parses the "mapped" query value. An empty string means MappedAny.
func ParseMappedState(raw string) (MappedState, error) {
	if raw == "" {
		return MappedAny, nil
	}
	mapped, err := strconv.ParseBool(raw)
	if err != nil {
		return MappedAny, fmt.Errorf("invalid mapped value %q: %w", raw, err)
	}
	if mapped {
		return MappedOnly, nil
	}
	return UnmappedOnly, nil
}

func (s MappedState) String() string {
	switch s {
	case MappedOnly:
		return "mapped"
	case UnmappedOnly:
		return "unmapped"
	default:
		return "any"
	}
}

// ActiveFilter filters attributes by their active flag.
type ActiveFilter int

const (
	ActiveAny ActiveFilter = iota
	ActiveOnly
	InactiveOnly
)

// ParseActiveFilter parses an optional boolean query value. An empty string means ActiveAny.
func ParseActiveFilter(raw string) (ActiveFilter, error) {
	if raw == "" {
		return ActiveAny, nil
	}
	active, err := strconv.ParseBool(raw)
	if err != nil {
		return ActiveAny, fmt.Errorf("invalid active value %q: %w", raw, err)
	}
	if active {
		return ActiveOnly, nil
	}
	return InactiveOnly, nil
}

// Matches reports whether an attribute with the given flag passes the filter.
func (f ActiveFilter) Matches(active bool) bool {
	switch f {
	case ActiveOnly:
		return active
	case InactiveOnly:
		return !active
	default:
		return true
	}
}

// TableDimension selects how mappings are listed.
type TableDimension int

const (
	// TwoColumn lists mapping rows matching the filters.
	TwoColumn TableDimension = 2
	// ThreeColumn lists mapping rows of sources mapped to exactly two destination types.
	ThreeColumn TableDimension = 3
)

// ParseTableDimension parses the table_dimension query value. An empty value means
// TwoColumn; anything that is not 2 or 3 is an error.
func ParseTableDimension(raw string) (TableDimension, error) {
	if raw == "" {
		return TwoColumn, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid table_dimension %q: %w", raw, err)
	}
	switch TableDimension(n) {
	case TwoColumn, ThreeColumn:
		return TableDimension(n), nil
	default:
		return 0, fmt.Errorf("invalid table_dimension %d: must be 2 or 3", n)
	}
}

// MappingRelation names the relation consulted by the mapped/unmapped filter.
type MappingRelation int

const (
	RelationMapping MappingRelation = iota
	RelationEmployeeMapping
)

// MappingListSpec selects mapping rows. Zero values mean "unset" for the optional fields.
type MappingListSpec struct {
	WorkspaceID     int64
	SourceType      AttributeType
	DestinationType AttributeType // "" matches every destination type
	SourceActive    ActiveFilter
	Dimension       TableDimension
}

// AttributeSearchSpec selects source attributes for the alphabet-bucketed listing.
type AttributeSearchSpec struct {
	WorkspaceID     int64
	SourceType      AttributeType
	DestinationType AttributeType // "" matches any destination type of the relation
	Mapped          MappedState
	Active          ActiveFilter
	Buckets         []rune // upper-case leading characters; empty matches every value
	Relation        MappingRelation
	Limit           int
	After           *AttributeCursor
}

// AttributeCursor is the keyset position after which a search page starts.
type AttributeCursor struct {
	Value string
	ID    int64
}

// StatsFilter selects the attributes and mapping rows counted by mapping stats.
// ExcludeValue only applies to the attribute count.
type StatsFilter struct {
	WorkspaceID     int64
	SourceType      AttributeType
	DestinationType AttributeType
	ExcludeValue    string
	Active          ActiveFilter
	Relation        MappingRelation
}

// NewStatsFilter applies the counting rules: the Activity value never counts, and
// only active attributes count for categories and for projects mapped to customers.
func NewStatsFilter(workspaceID int64, sourceType, destinationType AttributeType) StatsFilter {
	f := StatsFilter{
		WorkspaceID:     workspaceID,
		SourceType:      sourceType,
		DestinationType: destinationType,
		ExcludeValue:    ActivityValue,
		Active:          ActiveAny,
		Relation:        RelationMapping,
	}
	if (sourceType == AttributeProject && destinationType == AttributeCustomer) || sourceType == AttributeCategory {
		f.Active = ActiveOnly
	}
	if sourceType == AttributeEmployee {
		f.Relation = RelationEmployeeMapping
	}
	return f
}

// Alphabet returns the buckets A-Z, followed by 0-9 when includeDigits is set.
func Alphabet(includeDigits bool) []rune {
	out := make([]rune, 0, 36)
	for r := 'A'; r <= 'Z'; r++ {
		out = append(out, r)
	}
	if includeDigits {
		for r := '0'; r <= '9'; r++ {
			out = append(out, r)
		}
	}
	return out
}

// ParseBuckets turns a comma separated list of leading characters into upper-case
// buckets. When all is set the explicit list is ignored; otherwise the list must
// name at least one bucket.
func ParseBuckets(raw string, all, includeDigits bool) ([]rune, error) {
	if all {
		return Alphabet(includeDigits), nil
	}
	var buckets []rune
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if utf8.RuneCountInString(part) != 1 {
			return nil, fmt.Errorf("invalid bucket %q: must be a single character", part)
		}
		r, _ := utf8.DecodeRuneInString(part)
		r = unicode.ToUpper(r)
		if !slices.Contains(buckets, r) {
			buckets = append(buckets, r)
		}
	}
	if len(buckets) == 0 {
		return nil, fmt.Errorf("no buckets given: set mapping_source_alphabets or all_alphabets")
	}
	return buckets, nil
}

// InBuckets reports whether value starts, case-insensitively, with one of buckets.
// An empty bucket list matches every value.
func InBuckets(value string, buckets []rune) bool {
	if len(buckets) == 0 {
		return true
	}
	r, size := utf8.DecodeRuneInString(value)
	if size == 0 {
		return false
	}
	return slices.Contains(buckets, unicode.ToUpper(r))
}
