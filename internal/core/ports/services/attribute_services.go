package services

import (
	"context"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/SscSPs/accounting_mappings/internal/dto"
)

// AttributeReaderSvc defines query operations on attributes
type AttributeReaderSvc interface {
	// SearchSourceAttributes returns one page of the alphabet-bucketed listing and the
	// token of the next page, nil on the last page.
	SearchSourceAttributes(ctx context.Context, spec domain.AttributeSearchSpec, nextToken *string) ([]domain.SourceAttribute, *string, error)

	// SearchDestinationAttributes returns destination attributes of the type whose value
	// contains the text, case-insensitively. Empty text matches every attribute.
	SearchDestinationAttributes(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, contains string) ([]domain.DestinationAttribute, error)
}

// AttributeWriterSvc defines attribute sync operations
type AttributeWriterSvc interface {
	UpsertSourceAttributes(ctx context.Context, workspaceID int64, reqs []dto.UpsertSourceAttributeRequest) ([]domain.SourceAttribute, error)
	UpsertDestinationAttributes(ctx context.Context, workspaceID int64, reqs []dto.UpsertDestinationAttributeRequest) ([]domain.DestinationAttribute, error)
}

// AttributeSvcFacade combines all attribute service interfaces
type AttributeSvcFacade interface {
	AttributeReaderSvc
	AttributeWriterSvc
}
