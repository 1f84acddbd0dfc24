package domain

// MappingSetting declares that a source field type is mapped to a destination field
// type inside a workspace. Unique per (WorkspaceID, SourceField, DestinationField).
type MappingSetting struct {
	ID               int64         `json:"id"`
	WorkspaceID      int64         `json:"workspace_id"`
	SourceField      AttributeType `json:"source_field"`
	DestinationField AttributeType `json:"destination_field"`
	ExpenseFieldID   *int64        `json:"expense_field_id"`
	IsCustom         bool          `json:"is_custom"`
	ImportToFyle     bool          `json:"import_to_fyle"`
	Timestamps
}

// MappingSettingKey is the uniqueness key of a setting within its workspace.
type MappingSettingKey struct {
	SourceField      AttributeType
	DestinationField AttributeType
}

// Key returns the uniqueness key of s.
func (s MappingSetting) Key() MappingSettingKey {
	return MappingSettingKey{SourceField: s.SourceField, DestinationField: s.DestinationField}
}

// ExpenseField describes a field of the source system that is available for mapping.
// Unique per (WorkspaceID, AttributeType).
type ExpenseField struct {
	ID            int64         `json:"id"`
	WorkspaceID   int64         `json:"workspace_id"`
	AttributeType AttributeType `json:"attribute_type"`
	SourceFieldID int64         `json:"source_field_id"`
	IsEnabled     bool          `json:"is_enabled"`
	Timestamps
}
