package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/dto"
)

type categoryMappingService struct {
	BaseService
	repo       portsrepo.CategoryMappingRepositoryFacade
	sourceRepo portsrepo.SourceAttributeReader
	validator  *DestinationValidator
}

// NewCategoryMappingService creates a new category mapping service
func NewCategoryMappingService(repo portsrepo.CategoryMappingRepositoryFacade, sourceRepo portsrepo.SourceAttributeReader, validator *DestinationValidator) portssvc.CategoryMappingSvcFacade {
	return &categoryMappingService{repo: repo, sourceRepo: sourceRepo, validator: validator}
}

var _ portssvc.CategoryMappingSvcFacade = (*categoryMappingService)(nil)

func (s *categoryMappingService) ListCategoryMappings(ctx context.Context, workspaceID int64) ([]domain.CategoryMapping, error) {
	mappings, err := s.repo.ListCategoryMappings(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list category mappings", slog.Int64("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to list category mappings: %w", err)
	}
	if mappings == nil {
		return []domain.CategoryMapping{}, nil
	}
	return mappings, nil
}

func (s *categoryMappingService) CreateOrUpdateCategoryMapping(ctx context.Context, workspaceID int64, req dto.CategoryMappingRequest) (mapping *domain.CategoryMapping, err error) {
	defer recordOperation("create_or_update_category_mapping", &err)

	source, err := validateSource(ctx, s.sourceRepo, workspaceID, req.SourceCategory.IDOrNil(), "source_category", sourceCategoryTypes)
	if err != nil {
		return nil, err
	}

	accountID := req.DestinationAccount.IDOrNil()
	if _, err := s.validator.Validate(ctx, workspaceID, accountID, "destination_account", domain.AccountSlotTypes); err != nil {
		return nil, err
	}
	expenseHeadID := req.DestinationExpenseHead.IDOrNil()
	if _, err := s.validator.Validate(ctx, workspaceID, expenseHeadID, "destination_expense_head", domain.ExpenseHeadSlotTypes); err != nil {
		return nil, err
	}

	mapping, err = s.repo.UpsertCategoryMapping(ctx, domain.CategoryMappingUpsert{
		WorkspaceID:              workspaceID,
		SourceCategoryID:         source.ID,
		DestinationAccountID:     accountID,
		DestinationExpenseHeadID: expenseHeadID,
		ManualMapping:            req.ManualMapping,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert category mapping", slog.Int64("source_category_id", source.ID))
		return nil, fmt.Errorf("failed to upsert category mapping: %w", err)
	}

	s.LogInfo(ctx, "Category mapping saved", slog.Int64("mapping_id", mapping.ID), slog.Int64("source_category_id", source.ID))
	return mapping, nil
}
