package domain

import (
	"slices"
	"strings"
	"time"
)

// AttributeType names a kind of business entity on either side of a mapping.
// The list below covers the built-in kinds; custom mapping settings may use any
// other upper-case name.
type AttributeType string

const (
	// Source-side kinds.
	AttributeCategory      AttributeType = "CATEGORY"
	AttributeProject       AttributeType = "PROJECT"
	AttributeCostCenter    AttributeType = "COST_CENTER"
	AttributeCorporateCard AttributeType = "CORPORATE_CARD"
	AttributeTaxGroup      AttributeType = "TAX_GROUP"
	AttributeMerchant      AttributeType = "MERCHANT"

	// Kinds present on both sides.
	AttributeEmployee AttributeType = "EMPLOYEE"

	// Destination-side kinds.
	AttributeVendor            AttributeType = "VENDOR"
	AttributeAccount           AttributeType = "ACCOUNT"
	AttributeExpenseCategory   AttributeType = "EXPENSE_CATEGORY"
	AttributeExpenseType       AttributeType = "EXPENSE_TYPE"
	AttributeCreditCardAccount AttributeType = "CREDIT_CARD_ACCOUNT"
	AttributeChargeCardNumber  AttributeType = "CHARGE_CARD_NUMBER"
	AttributeCustomer          AttributeType = "CUSTOMER"
	AttributeClass             AttributeType = "CLASS"
	AttributeDepartment        AttributeType = "DEPARTMENT"
	AttributeLocation          AttributeType = "LOCATION"
	AttributeTaxCode           AttributeType = "TAX_CODE"
)

// DisplayName renders t for humans: COST_CENTER becomes "Cost Center".
func (t AttributeType) DisplayName() string {
	words := strings.Fields(strings.ReplaceAll(string(t), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// ActivityValue is a reserved source value that never counts towards mapping stats.
const ActivityValue = "Activity"

// AttributeTypeSet is an immutable set of attribute types. A destination slot
// accepts an attribute when the set contains its type.
type AttributeTypeSet struct {
	types []AttributeType
}

// NewAttributeTypeSet builds a set from the given types, dropping duplicates.
func NewAttributeTypeSet(types ...AttributeType) AttributeTypeSet {
	uniq := make([]AttributeType, 0, len(types))
	for _, t := range types {
		if !slices.Contains(uniq, t) {
			uniq = append(uniq, t)
		}
	}
	return AttributeTypeSet{types: uniq}
}

// Contains reports whether t is a member of the set.
func (s AttributeTypeSet) Contains(t AttributeType) bool {
	return slices.Contains(s.types, t)
}

// Strings returns the members as plain strings, in insertion order.
func (s AttributeTypeSet) Strings() []string {
	out := make([]string, len(s.types))
	for i, t := range s.types {
		out[i] = string(t)
	}
	return out
}

// Accepted attribute types per mapping slot.
var (
	EmployeeSlotTypes    = NewAttributeTypeSet(AttributeEmployee)
	VendorSlotTypes      = NewAttributeTypeSet(AttributeVendor)
	CardAccountSlotTypes = NewAttributeTypeSet(AttributeCreditCardAccount, AttributeChargeCardNumber)
	AccountSlotTypes     = NewAttributeTypeSet(AttributeAccount)
	ExpenseHeadSlotTypes = NewAttributeTypeSet(AttributeExpenseCategory, AttributeExpenseType)
)

// Timestamps holds row bookkeeping shared by every persisted entity.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SourceAttribute is an entity of the expense-capture system (ExpenseAttribute).
// Unique per (WorkspaceID, AttributeType, Value).
type SourceAttribute struct {
	ID            int64          `json:"id"`
	WorkspaceID   int64          `json:"workspace_id"`
	AttributeType AttributeType  `json:"attribute_type"`
	DisplayName   string         `json:"display_name"`
	Value         string         `json:"value"`
	SourceID      string         `json:"source_id"`
	Detail        map[string]any `json:"detail"`
	Active        bool           `json:"active"`
	AutoMapped    bool           `json:"auto_mapped"`
	AutoCreated   bool           `json:"auto_created"`
	Timestamps
}

// DestinationAttribute is an entity of the downstream accounting system.
// Unique per (WorkspaceID, AttributeType, DestinationID).
type DestinationAttribute struct {
	ID            int64          `json:"id"`
	WorkspaceID   int64          `json:"workspace_id"`
	AttributeType AttributeType  `json:"attribute_type"`
	DisplayName   string         `json:"display_name"`
	Value         string         `json:"value"`
	DestinationID string         `json:"destination_id"`
	Detail        map[string]any `json:"detail"`
	Active        bool           `json:"active"`
	AutoCreated   bool           `json:"auto_created"`
	Timestamps
}
