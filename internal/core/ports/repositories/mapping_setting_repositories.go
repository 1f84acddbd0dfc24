package repositories

import (
	"context"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

// MappingSettingRepositoryFacade defines persistence for mapping settings
type MappingSettingRepositoryFacade interface {
	// ListMappingSettings retrieves every setting of the workspace ordered by ID.
	ListMappingSettings(ctx context.Context, workspaceID int64) ([]domain.MappingSetting, error)

	// UpsertMappingSettings writes the settings in one transaction keyed on
	// (workspace, source_field, destination_field). Existing rows keep their ID and
	// created_at. Keys must be unique within the batch.
	UpsertMappingSettings(ctx context.Context, workspaceID int64, settings []domain.MappingSetting) ([]domain.MappingSetting, error)
}

// ExpenseFieldRepositoryFacade defines persistence for expense field descriptors
type ExpenseFieldRepositoryFacade interface {
	// FindExpenseFieldByID retrieves an expense field of the workspace by its ID.
	FindExpenseFieldByID(ctx context.Context, workspaceID, id int64) (*domain.ExpenseField, error)

	// ListExpenseFields retrieves every expense field of the workspace ordered by attribute type.
	ListExpenseFields(ctx context.Context, workspaceID int64) ([]domain.ExpenseField, error)

	// UpsertExpenseFields writes the fields keyed on (workspace, attribute_type).
	UpsertExpenseFields(ctx context.Context, workspaceID int64, fields []domain.ExpenseField) ([]domain.ExpenseField, error)
}
