package repositories

import (
	"context"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

// SourceAttributeReader defines read operations for source attribute data
type SourceAttributeReader interface {
	// FindSourceAttributeByID retrieves a source attribute of the workspace by its ID.
	FindSourceAttributeByID(ctx context.Context, workspaceID, id int64) (*domain.SourceAttribute, error)

	// FindSourceAttributeByValue retrieves a source attribute by its unique (type, value) pair.
	FindSourceAttributeByValue(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, value string) (*domain.SourceAttribute, error)

	// SearchSourceAttributes returns one keyset page of attributes matching spec, ordered by value then ID.
	SearchSourceAttributes(ctx context.Context, spec domain.AttributeSearchSpec) ([]domain.SourceAttribute, error)
}

// SourceAttributeWriter defines write operations for source attribute data
type SourceAttributeWriter interface {
	// UpsertSourceAttributes inserts or updates attributes keyed on (workspace, type, value).
	// auto_mapped of existing rows is left untouched.
	UpsertSourceAttributes(ctx context.Context, workspaceID int64, attributes []domain.SourceAttribute) ([]domain.SourceAttribute, error)
}

// SourceAttributeRepositoryFacade combines all source attribute repository interfaces
type SourceAttributeRepositoryFacade interface {
	SourceAttributeReader
	SourceAttributeWriter
}

// DestinationAttributeReader defines read operations for destination attribute data
type DestinationAttributeReader interface {
	// FindDestinationAttributeByID retrieves a destination attribute of the workspace by its ID.
	FindDestinationAttributeByID(ctx context.Context, workspaceID, id int64) (*domain.DestinationAttribute, error)

	// FindDestinationAttributeByValue retrieves the first destination attribute of the type with the given value.
	FindDestinationAttributeByValue(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, value string) (*domain.DestinationAttribute, error)

	// FindDestinationAttributeByDestinationID retrieves a destination attribute by its unique (type, destination_id) pair.
	FindDestinationAttributeByDestinationID(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, destinationID string) (*domain.DestinationAttribute, error)

	// SearchDestinationAttributes returns attributes of the type whose value contains
	// the given text, case-insensitively, ordered by value.
	SearchDestinationAttributes(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, contains string) ([]domain.DestinationAttribute, error)
}

// DestinationAttributeWriter defines write operations for destination attribute data
type DestinationAttributeWriter interface {
	// UpsertDestinationAttributes inserts or updates attributes keyed on (workspace, type, destination_id).
	UpsertDestinationAttributes(ctx context.Context, workspaceID int64, attributes []domain.DestinationAttribute) ([]domain.DestinationAttribute, error)
}

// DestinationAttributeRepositoryFacade combines all destination attribute repository interfaces
type DestinationAttributeRepositoryFacade interface {
	DestinationAttributeReader
	DestinationAttributeWriter
}
