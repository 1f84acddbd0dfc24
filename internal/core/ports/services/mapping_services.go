package services

import (
	"context"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/SscSPs/accounting_mappings/internal/dto"
)

// MappingReaderSvc defines read operations for pairwise mappings
type MappingReaderSvc interface {
	// ListMappings retrieves mappings matching spec ordered by source value.
	ListMappings(ctx context.Context, spec domain.MappingListSpec) ([]domain.Mapping, error)
}

// MappingWriterSvc defines write operations for pairwise mappings
type MappingWriterSvc interface {
	// CreateOrUpdateMapping resolves both attributes and upserts the mapping keyed on
	// (workspace, source, destination type).
	CreateOrUpdateMapping(ctx context.Context, workspaceID int64, req dto.CreateMappingRequest) (*domain.Mapping, error)
}

// MappingSvcFacade combines all pairwise mapping service interfaces
type MappingSvcFacade interface {
	MappingReaderSvc
	MappingWriterSvc
}

// EmployeeMappingSvcFacade defines operations on employee mappings
type EmployeeMappingSvcFacade interface {
	// ListEmployeeMappings retrieves every employee mapping ordered by source employee value.
	ListEmployeeMappings(ctx context.Context, workspaceID int64) ([]domain.EmployeeMapping, error)

	// CreateOrUpdateEmployeeMapping validates every referenced attribute and writes all slots at once.
	CreateOrUpdateEmployeeMapping(ctx context.Context, workspaceID int64, req dto.EmployeeMappingRequest) (*domain.EmployeeMapping, error)
}

// CategoryMappingSvcFacade defines operations on category mappings
type CategoryMappingSvcFacade interface {
	// ListCategoryMappings retrieves every category mapping ordered by source category value.
	ListCategoryMappings(ctx context.Context, workspaceID int64) ([]domain.CategoryMapping, error)

	// CreateOrUpdateCategoryMapping validates every referenced attribute and writes both slots at once.
	CreateOrUpdateCategoryMapping(ctx context.Context, workspaceID int64, req dto.CategoryMappingRequest) (*domain.CategoryMapping, error)
}

// StatsSvc computes mapping coverage
type StatsSvc interface {
	// GetMappingStats counts the source attributes of sourceType and how many of them
	// are mapped to destinationType.
	GetMappingStats(ctx context.Context, workspaceID int64, sourceType, destinationType domain.AttributeType) (*domain.MappingStats, error)
}
