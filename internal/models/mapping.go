package models

// ExpenseField is a row of expense_fields.
type ExpenseField struct {
	ID            int64  `db:"id"`
	WorkspaceID   int64  `db:"workspace_id"`
	AttributeType string `db:"attribute_type"`
	SourceFieldID int64  `db:"source_field_id"`
	IsEnabled     bool   `db:"is_enabled"`
	Timestamps
}

// MappingSetting is a row of mapping_settings.
type MappingSetting struct {
	ID               int64  `db:"id"`
	WorkspaceID      int64  `db:"workspace_id"`
	SourceField      string `db:"source_field"`
	DestinationField string `db:"destination_field"`
	ExpenseFieldID   *int64 `db:"expense_field_id"` // Nullable
	IsCustom         bool   `db:"is_custom"`
	ImportToFyle     bool   `db:"import_to_fyle"`
	Timestamps
}

// Mapping is a row of mappings. Attributes are referenced by ID.
type Mapping struct {
	ID              int64  `db:"id"`
	WorkspaceID     int64  `db:"workspace_id"`
	SourceType      string `db:"source_type"`
	DestinationType string `db:"destination_type"`
	SourceID        int64  `db:"source_id"`
	DestinationID   int64  `db:"destination_id"`
	Timestamps
}

// EmployeeMapping is a row of employee_mappings. Destination slots are nullable.
type EmployeeMapping struct {
	ID                       int64  `db:"id"`
	WorkspaceID              int64  `db:"workspace_id"`
	SourceEmployeeID         int64  `db:"source_employee_id"`
	DestinationEmployeeID    *int64 `db:"destination_employee_id"`
	DestinationVendorID      *int64 `db:"destination_vendor_id"`
	DestinationCardAccountID *int64 `db:"destination_card_account_id"`
	ManualMapping            bool   `db:"manual_mapping"`
	Timestamps
}

// CategoryMapping is a row of category_mappings. Destination slots are nullable.
type CategoryMapping struct {
	ID                       int64  `db:"id"`
	WorkspaceID              int64  `db:"workspace_id"`
	SourceCategoryID         int64  `db:"source_category_id"`
	DestinationAccountID     *int64 `db:"destination_account_id"`
	DestinationExpenseHeadID *int64 `db:"destination_expense_head_id"`
	ManualMapping            bool   `db:"manual_mapping"`
	Timestamps
}
