package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/dto"
)

type mappingService struct {
	BaseService
	mappingRepo     portsrepo.MappingRepositoryFacade
	sourceRepo      portsrepo.SourceAttributeReader
	destinationRepo portsrepo.DestinationAttributeRepositoryFacade
}

// NewMappingService creates a new pairwise mapping service
func NewMappingService(
	mappingRepo portsrepo.MappingRepositoryFacade,
	sourceRepo portsrepo.SourceAttributeReader,
	destinationRepo portsrepo.DestinationAttributeRepositoryFacade,
) portssvc.MappingSvcFacade {
	return &mappingService{
		mappingRepo:     mappingRepo,
		sourceRepo:      sourceRepo,
		destinationRepo: destinationRepo,
	}
}

var _ portssvc.MappingSvcFacade = (*mappingService)(nil)

func (s *mappingService) ListMappings(ctx context.Context, spec domain.MappingListSpec) ([]domain.Mapping, error) {
	if spec.SourceType == "" {
		return nil, apperrors.NewValidationError("source_type", "", "is required")
	}
	if spec.Dimension == 0 {
		spec.Dimension = domain.TwoColumn
	}

	mappings, err := s.mappingRepo.ListMappings(ctx, spec)
	if err != nil {
		s.LogError(ctx, err, "Failed to list mappings",
			slog.Int64("workspace_id", spec.WorkspaceID),
			slog.String("source_type", string(spec.SourceType)))
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	if mappings == nil {
		return []domain.Mapping{}, nil
	}
	return mappings, nil
}

func (s *mappingService) CreateOrUpdateMapping(ctx context.Context, workspaceID int64, req dto.CreateMappingRequest) (mapping *domain.Mapping, err error) {
	defer recordOperation("create_or_update_mapping", &err)

	sourceType := domain.AttributeType(req.SourceType)
	destinationType := domain.AttributeType(req.DestinationType)

	source, err := s.sourceRepo.FindSourceAttributeByValue(ctx, workspaceID, sourceType, req.SourceValue)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("source", req.SourceType, req.SourceValue)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to look up source attribute", slog.String("source_type", req.SourceType))
		return nil, fmt.Errorf("failed to look up source attribute: %w", err)
	}

	destination, err := s.resolveDestination(ctx, workspaceID, destinationType, req)
	if err != nil {
		return nil, err
	}

	mapping, err = s.mappingRepo.UpsertMapping(ctx, domain.MappingUpsert{
		WorkspaceID:     workspaceID,
		SourceType:      sourceType,
		DestinationType: destinationType,
		SourceID:        source.ID,
		DestinationID:   destination.ID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert mapping",
			slog.Int64("source_id", source.ID),
			slog.Int64("destination_id", destination.ID))
		return nil, fmt.Errorf("failed to upsert mapping: %w", err)
	}

	s.LogInfo(ctx, "Mapping saved",
		slog.Int64("mapping_id", mapping.ID),
		slog.String("source_type", req.SourceType),
		slog.String("destination_type", req.DestinationType))
	return mapping, nil
}

// resolveDestination finds the destination by external ID when one is given,
// creating a placeholder for an unknown ID, and by value otherwise.
func (s *mappingService) resolveDestination(ctx context.Context, workspaceID int64, destinationType domain.AttributeType, req dto.CreateMappingRequest) (*domain.DestinationAttribute, error) {
	if req.DestinationID == "" {
		destination, err := s.destinationRepo.FindDestinationAttributeByValue(ctx, workspaceID, destinationType, req.DestinationValue)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("destination", req.DestinationType, req.DestinationValue)
		}
		if err != nil {
			s.LogError(ctx, err, "Failed to look up destination attribute", slog.String("destination_type", req.DestinationType))
			return nil, fmt.Errorf("failed to look up destination attribute: %w", err)
		}
		return destination, nil
	}

	destination, err := s.destinationRepo.FindDestinationAttributeByDestinationID(ctx, workspaceID, destinationType, req.DestinationID)
	if err == nil {
		return destination, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up destination attribute", slog.String("destination_id", req.DestinationID))
		return nil, fmt.Errorf("failed to look up destination attribute: %w", err)
	}

	created, err := s.destinationRepo.UpsertDestinationAttributes(ctx, workspaceID, []domain.DestinationAttribute{{
		WorkspaceID:   workspaceID,
		AttributeType: destinationType,
		DisplayName:   destinationType.DisplayName(),
		Value:         req.DestinationValue,
		DestinationID: req.DestinationID,
		Active:        true,
		AutoCreated:   true,
	}})
	if err != nil {
		s.LogError(ctx, err, "Failed to create placeholder destination attribute", slog.String("destination_id", req.DestinationID))
		return nil, fmt.Errorf("failed to create destination attribute: %w", err)
	}
	if len(created) != 1 {
		return nil, fmt.Errorf("failed to create destination attribute: store returned %d rows", len(created))
	}
	s.LogInfo(ctx, "Placeholder destination attribute created",
		slog.String("destination_type", req.DestinationType),
		slog.String("destination_id", req.DestinationID))
	return &created[0], nil
}
