package repositories

import (
	"context"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

// MappingReader defines read operations for pairwise mappings
type MappingReader interface {
	// ListMappings retrieves resolved mappings matching spec ordered by source value.
	ListMappings(ctx context.Context, spec domain.MappingListSpec) ([]domain.Mapping, error)
}

// MappingWriter defines write operations for pairwise mappings
type MappingWriter interface {
	// UpsertMapping atomically inserts the mapping or replaces the destination of the
	// row keyed on (workspace, source, destination_type). Returns the resolved row.
	UpsertMapping(ctx context.Context, upsert domain.MappingUpsert) (*domain.Mapping, error)
}

// MappingRepositoryFacade combines all pairwise mapping repository interfaces
type MappingRepositoryFacade interface {
	MappingReader
	MappingWriter
}

// EmployeeMappingRepositoryFacade defines persistence for employee mappings
type EmployeeMappingRepositoryFacade interface {
	// ListEmployeeMappings retrieves resolved rows ordered by source employee value.
	ListEmployeeMappings(ctx context.Context, workspaceID int64) ([]domain.EmployeeMapping, error)

	// UpsertEmployeeMapping atomically writes every slot of the row keyed on
	// (workspace, source_employee). Nil slots are cleared. Returns the resolved row.
	UpsertEmployeeMapping(ctx context.Context, upsert domain.EmployeeMappingUpsert) (*domain.EmployeeMapping, error)
}

// CategoryMappingRepositoryFacade defines persistence for category mappings
type CategoryMappingRepositoryFacade interface {
	// ListCategoryMappings retrieves resolved rows ordered by source category value.
	ListCategoryMappings(ctx context.Context, workspaceID int64) ([]domain.CategoryMapping, error)

	// UpsertCategoryMapping atomically writes both slots of the row keyed on
	// (workspace, source_category). Nil slots are cleared. Returns the resolved row.
	UpsertCategoryMapping(ctx context.Context, upsert domain.CategoryMappingUpsert) (*domain.CategoryMapping, error)
}

// MappingStatsReader counts attributes for mapping stats
type MappingStatsReader interface {
	// CountSourceAttributes counts source attributes selected by filter.
	CountSourceAttributes(ctx context.Context, filter domain.StatsFilter) (int64, error)

	// CountMappings counts rows of filter.Relation from filter.SourceType to
	// filter.DestinationType whose source passes filter.Active. ExcludeValue is not
	// applied, so the result may exceed CountSourceAttributes.
	CountMappings(ctx context.Context, filter domain.StatsFilter) (int64, error)
}
