package services

import (
	"context"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/SscSPs/accounting_mappings/internal/dto"
)

// MappingSettingReaderSvc defines read operations for mapping settings
type MappingSettingReaderSvc interface {
	// ListMappingSettings retrieves every setting of the workspace.
	ListMappingSettings(ctx context.Context, workspaceID int64) ([]domain.MappingSetting, error)
}

// MappingSettingWriterSvc defines write operations for mapping settings
type MappingSettingWriterSvc interface {
	// BulkUpsertMappingSettings validates every item, merges duplicates and upserts the
	// valid ones in one transaction. When some items are invalid the saved settings are
	// returned together with an *apperrors.BulkError describing every failure.
	BulkUpsertMappingSettings(ctx context.Context, workspaceID int64, reqs []dto.MappingSettingRequest) ([]domain.MappingSetting, error)
}

// MappingSettingSvcFacade combines all mapping setting service interfaces
type MappingSettingSvcFacade interface {
	MappingSettingReaderSvc
	MappingSettingWriterSvc
}

// ExpenseFieldSvcFacade defines operations on expense field descriptors
type ExpenseFieldSvcFacade interface {
	// ListExpenseFields retrieves every expense field of the workspace.
	ListExpenseFields(ctx context.Context, workspaceID int64) ([]domain.ExpenseField, error)

	// UpsertExpenseFields validates and upserts the fields keyed on attribute type.
	UpsertExpenseFields(ctx context.Context, workspaceID int64, reqs []dto.ExpenseFieldRequest) ([]domain.ExpenseField, error)
}
