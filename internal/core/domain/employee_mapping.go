package domain

// EmployeeSlot identifies one of the destination slots of an employee mapping.
type EmployeeSlot string

const (
	SlotEmployee    EmployeeSlot = "destination_employee"
	SlotVendor      EmployeeSlot = "destination_vendor"
	SlotCardAccount EmployeeSlot = "destination_card_account"
)

// EmployeeSlotFor returns the slot that holds destinations of type t.
// Anything that is neither a vendor nor a card account lands in the employee slot.
func EmployeeSlotFor(t AttributeType) EmployeeSlot {
	switch {
	case VendorSlotTypes.Contains(t):
		return SlotVendor
	case CardAccountSlotTypes.Contains(t):
		return SlotCardAccount
	default:
		return SlotEmployee
	}
}

// EmployeeMapping maps one source employee to up to three destinations.
// Unique per (WorkspaceID, SourceEmployee.ID).
type EmployeeMapping struct {
	ID                     int64                 `json:"id"`
	WorkspaceID            int64                 `json:"workspace_id"`
	SourceEmployee         SourceAttribute       `json:"source_employee"`
	DestinationEmployee    *DestinationAttribute `json:"destination_employee"`
	DestinationVendor      *DestinationAttribute `json:"destination_vendor"`
	DestinationCardAccount *DestinationAttribute `json:"destination_card_account"`
	ManualMapping          bool                  `json:"manual_mapping"`
	Timestamps
}

// EmployeeMappingUpsert carries the identifiers written by an employee mapping upsert.
// A nil destination clears the slot.
type EmployeeMappingUpsert struct {
	WorkspaceID              int64
	SourceEmployeeID         int64
	DestinationEmployeeID    *int64
	DestinationVendorID      *int64
	DestinationCardAccountID *int64
	ManualMapping            bool
}
