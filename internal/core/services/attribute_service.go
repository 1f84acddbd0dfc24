package services

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/dto"
	"github.com/SscSPs/accounting_mappings/internal/utils/pagination"
	"github.com/go-playground/validator/v10"
)

const (
	defaultSearchPageSize    = 100
	defaultSearchMaxPageSize = 1000
)

type attributeService struct {
	BaseService
	sourceRepo      portsrepo.SourceAttributeRepositoryFacade
	destinationRepo portsrepo.DestinationAttributeRepositoryFacade
	validate        *validator.Validate
	pageSize        int
	maxPageSize     int
}

// AttributeServiceOption is a functional option for configuring the attribute service
type AttributeServiceOption func(*attributeService)

// WithPageSizes sets the default and maximum page size of SearchSourceAttributes
func WithPageSizes(pageSize, maxPageSize int) AttributeServiceOption {
	return func(s *attributeService) {
		if pageSize > 0 {
			s.pageSize = pageSize
		}
		if maxPageSize >= s.pageSize {
			s.maxPageSize = maxPageSize
		}
	}
}

// NewAttributeService creates a new attribute service with the provided options
func NewAttributeService(sourceRepo portsrepo.SourceAttributeRepositoryFacade, destinationRepo portsrepo.DestinationAttributeRepositoryFacade, options ...AttributeServiceOption) portssvc.AttributeSvcFacade {
	svc := &attributeService{
		sourceRepo:      sourceRepo,
		destinationRepo: destinationRepo,
		validate:        newValidator(),
		pageSize:        defaultSearchPageSize,
		maxPageSize:     defaultSearchMaxPageSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AttributeSvcFacade = (*attributeService)(nil)

func (s *attributeService) SearchSourceAttributes(ctx context.Context, spec domain.AttributeSearchSpec, nextToken *string) ([]domain.SourceAttribute, *string, error) {
	if spec.SourceType == "" {
		return nil, nil, apperrors.NewValidationError("source_type", "", "is required")
	}
	switch {
	case spec.Limit < 0:
		return nil, nil, apperrors.NewValidationError("limit", fmt.Sprint(spec.Limit), "must not be negative")
	case spec.Limit == 0:
		spec.Limit = s.pageSize
	case spec.Limit > s.maxPageSize:
		spec.Limit = s.maxPageSize
	}

	if nextToken != nil && *nextToken != "" {
		value, id, err := pagination.DecodeKeysetToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", "", err.Error())
		}
		spec.After = &domain.AttributeCursor{Value: value, ID: id}
	}

	// One extra row tells whether another page exists
	pageSize := spec.Limit
	spec.Limit = pageSize + 1
	attrs, err := s.sourceRepo.SearchSourceAttributes(ctx, spec)
	if err != nil {
		s.LogError(ctx, err, "Failed to search source attributes",
			slog.Int64("workspace_id", spec.WorkspaceID),
			slog.String("source_type", string(spec.SourceType)),
			slog.String("mapped", spec.Mapped.String()))
		return nil, nil, fmt.Errorf("failed to search source attributes: %w", err)
	}

	var next *string
	if len(attrs) > pageSize {
		attrs = attrs[:pageSize]
		last := attrs[len(attrs)-1]
		token := pagination.EncodeKeysetToken(last.Value, last.ID)
		next = &token
	}
	if attrs == nil {
		attrs = []domain.SourceAttribute{}
	}
	s.LogDebug(ctx, "Source attributes searched", slog.Int("count", len(attrs)), slog.Bool("has_more", next != nil))
	return attrs, next, nil
}

func (s *attributeService) SearchDestinationAttributes(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, contains string) ([]domain.DestinationAttribute, error) {
	if attributeType == "" {
		return nil, apperrors.NewValidationError("destination_attribute_type", "", "is required")
	}
	attrs, err := s.destinationRepo.SearchDestinationAttributes(ctx, workspaceID, attributeType, contains)
	if err != nil {
		s.LogError(ctx, err, "Failed to search destination attributes", slog.String("attribute_type", string(attributeType)))
		return nil, fmt.Errorf("failed to search destination attributes: %w", err)
	}
	if attrs == nil {
		return []domain.DestinationAttribute{}, nil
	}
	return attrs, nil
}

type sourceKey struct {
	attributeType domain.AttributeType
	value         string
}

func (s *attributeService) UpsertSourceAttributes(ctx context.Context, workspaceID int64, reqs []dto.UpsertSourceAttributeRequest) (saved []domain.SourceAttribute, err error) {
	defer recordOperation("upsert_source_attributes", &err)

	if len(reqs) == 0 {
		return nil, apperrors.NewValidationError("", "", "expense attributes not found")
	}

	bulk := apperrors.NewBulkError("invalid expense attributes")
	order := make([]sourceKey, 0, len(reqs))
	byKey := make(map[sourceKey]domain.SourceAttribute, len(reqs))
	for i, req := range reqs {
		if vErr := s.validate.Struct(req); vErr != nil {
			addValidationErrors(bulk, i, vErr)
			continue
		}
		attr := domain.SourceAttribute{
			WorkspaceID:   workspaceID,
			AttributeType: domain.AttributeType(req.AttributeType),
			DisplayName:   req.DisplayName,
			Value:         req.Value,
			SourceID:      req.SourceID,
			Active:        req.Active == nil || *req.Active,
			AutoCreated:   req.AutoCreated,
		}
		if attr.DisplayName == "" {
			attr.DisplayName = attr.AttributeType.DisplayName()
		}
		key := sourceKey{attr.AttributeType, attr.Value}
		prev, seen := byKey[key]
		if !seen {
			order = append(order, key)
		}
		attr.Detail = mergeDetail(prev.Detail, req.Detail)
		byKey[key] = attr
	}
	if bulk.HasErrors() {
		return nil, bulk
	}

	attrs := make([]domain.SourceAttribute, len(order))
	for i, key := range order {
		attrs[i] = byKey[key]
	}
	saved, err = s.sourceRepo.UpsertSourceAttributes(ctx, workspaceID, attrs)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert source attributes", slog.Int64("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to upsert source attributes: %w", err)
	}
	recordBulk("source_attribute", len(saved), 0, len(reqs)-len(order))
	s.LogInfo(ctx, "Source attributes upserted", slog.Int64("workspace_id", workspaceID), slog.Int("count", len(saved)))
	return saved, nil
}

type destinationKey struct {
	attributeType domain.AttributeType
	destinationID string
}

func (s *attributeService) UpsertDestinationAttributes(ctx context.Context, workspaceID int64, reqs []dto.UpsertDestinationAttributeRequest) (saved []domain.DestinationAttribute, err error) {
	defer recordOperation("upsert_destination_attributes", &err)

	if len(reqs) == 0 {
		return nil, apperrors.NewValidationError("", "", "destination attributes not found")
	}

	bulk := apperrors.NewBulkError("invalid destination attributes")
	order := make([]destinationKey, 0, len(reqs))
	byKey := make(map[destinationKey]domain.DestinationAttribute, len(reqs))
	for i, req := range reqs {
		if vErr := s.validate.Struct(req); vErr != nil {
			addValidationErrors(bulk, i, vErr)
			continue
		}
		attr := domain.DestinationAttribute{
			WorkspaceID:   workspaceID,
			AttributeType: domain.AttributeType(req.AttributeType),
			DisplayName:   req.DisplayName,
			Value:         req.Value,
			DestinationID: req.DestinationID,
			Active:        req.Active == nil || *req.Active,
			AutoCreated:   req.AutoCreated,
		}
		if attr.DisplayName == "" {
			attr.DisplayName = attr.AttributeType.DisplayName()
		}
		key := destinationKey{attr.AttributeType, attr.DestinationID}
		prev, seen := byKey[key]
		if !seen {
			order = append(order, key)
		}
		attr.Detail = mergeDetail(prev.Detail, req.Detail)
		byKey[key] = attr
	}
	if bulk.HasErrors() {
		return nil, bulk
	}

	attrs := make([]domain.DestinationAttribute, len(order))
	for i, key := range order {
		attrs[i] = byKey[key]
	}
	saved, err = s.destinationRepo.UpsertDestinationAttributes(ctx, workspaceID, attrs)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert destination attributes", slog.Int64("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to upsert destination attributes: %w", err)
	}
	recordBulk("destination_attribute", len(saved), 0, len(reqs)-len(order))
	s.LogInfo(ctx, "Destination attributes upserted", slog.Int64("workspace_id", workspaceID), slog.Int("count", len(saved)))
	return saved, nil
}

// mergeDetail overlays next on prev without modifying either.
func mergeDetail(prev, next map[string]any) map[string]any {
	if prev == nil && next == nil {
		return nil
	}
	out := make(map[string]any, len(prev)+len(next))
	maps.Copy(out, prev)
	maps.Copy(out, next)
	return out
}
