package models

import "time"

// Timestamps holds the bookkeeping columns shared by every table.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ExpenseAttribute is a row of expense_attributes (source side).
type ExpenseAttribute struct {
	ID            int64          `db:"id"`
	WorkspaceID   int64          `db:"workspace_id"`
	AttributeType string         `db:"attribute_type"`
	DisplayName   string         `db:"display_name"`
	Value         string         `db:"value"`
	SourceID      string         `db:"source_id"`
	Detail        map[string]any `db:"detail"` // jsonb, never NULL
	Active        bool           `db:"active"`
	AutoMapped    bool           `db:"auto_mapped"`
	AutoCreated   bool           `db:"auto_created"`
	Timestamps
}

// DestinationAttribute is a row of destination_attributes.
type DestinationAttribute struct {
	ID            int64          `db:"id"`
	WorkspaceID   int64          `db:"workspace_id"`
	AttributeType string         `db:"attribute_type"`
	DisplayName   string         `db:"display_name"`
	Value         string         `db:"value"`
	DestinationID string         `db:"destination_id"`
	Detail        map[string]any `db:"detail"` // jsonb, never NULL
	Active        bool           `db:"active"`
	AutoCreated   bool           `db:"auto_created"`
	Timestamps
}
