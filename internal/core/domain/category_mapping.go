package domain

// CategoryMapping maps one source category to an account and/or an expense head.
// Unique per (WorkspaceID, SourceCategory.ID).
type CategoryMapping struct {
	ID                     int64                 `json:"id"`
	WorkspaceID            int64                 `json:"workspace_id"`
	SourceCategory         SourceAttribute       `json:"source_category"`
	DestinationAccount     *DestinationAttribute `json:"destination_account"`
	DestinationExpenseHead *DestinationAttribute `json:"destination_expense_head"`
	ManualMapping          bool                  `json:"manual_mapping"`
	Timestamps
}

// CategoryMappingUpsert carries the identifiers written by a category mapping upsert.
// A nil destination clears the slot.
type CategoryMappingUpsert struct {
	WorkspaceID              int64
	SourceCategoryID         int64
	DestinationAccountID     *int64
	DestinationExpenseHeadID *int64
	ManualMapping            bool
}
