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

var (
	sourceEmployeeTypes = domain.NewAttributeTypeSet(domain.AttributeEmployee)
	sourceCategoryTypes = domain.NewAttributeTypeSet(domain.AttributeCategory)
)

type employeeMappingService struct {
	BaseService
	repo       portsrepo.EmployeeMappingRepositoryFacade
	sourceRepo portsrepo.SourceAttributeReader
	validator  *DestinationValidator
}

// NewEmployeeMappingService creates a new employee mapping service
func NewEmployeeMappingService(repo portsrepo.EmployeeMappingRepositoryFacade, sourceRepo portsrepo.SourceAttributeReader, validator *DestinationValidator) portssvc.EmployeeMappingSvcFacade {
	return &employeeMappingService{repo: repo, sourceRepo: sourceRepo, validator: validator}
}

var _ portssvc.EmployeeMappingSvcFacade = (*employeeMappingService)(nil)

func (s *employeeMappingService) ListEmployeeMappings(ctx context.Context, workspaceID int64) ([]domain.EmployeeMapping, error) {
	mappings, err := s.repo.ListEmployeeMappings(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employee mappings", slog.Int64("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to list employee mappings: %w", err)
	}
	if mappings == nil {
		return []domain.EmployeeMapping{}, nil
	}
	return mappings, nil
}

func (s *employeeMappingService) CreateOrUpdateEmployeeMapping(ctx context.Context, workspaceID int64, req dto.EmployeeMappingRequest) (mapping *domain.EmployeeMapping, err error) {
	defer recordOperation("create_or_update_employee_mapping", &err)

	source, err := validateSource(ctx, s.sourceRepo, workspaceID, req.SourceEmployee.IDOrNil(), "source_employee", sourceEmployeeTypes)
	if err != nil {
		return nil, err
	}

	slots := []struct {
		id      *int64
		field   string
		allowed domain.AttributeTypeSet
	}{
		{req.DestinationEmployee.IDOrNil(), string(domain.SlotEmployee), domain.EmployeeSlotTypes},
		{req.DestinationVendor.IDOrNil(), string(domain.SlotVendor), domain.VendorSlotTypes},
		{req.DestinationCardAccount.IDOrNil(), string(domain.SlotCardAccount), domain.CardAccountSlotTypes},
	}
	for _, slot := range slots {
		if _, err := s.validator.Validate(ctx, workspaceID, slot.id, slot.field, slot.allowed); err != nil {
			return nil, err
		}
	}

	mapping, err = s.repo.UpsertEmployeeMapping(ctx, domain.EmployeeMappingUpsert{
		WorkspaceID:              workspaceID,
		SourceEmployeeID:         source.ID,
		DestinationEmployeeID:    slots[0].id,
		DestinationVendorID:      slots[1].id,
		DestinationCardAccountID: slots[2].id,
		ManualMapping:            req.ManualMapping,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert employee mapping", slog.Int64("source_employee_id", source.ID))
		return nil, fmt.Errorf("failed to upsert employee mapping: %w", err)
	}

	s.LogInfo(ctx, "Employee mapping saved", slog.Int64("mapping_id", mapping.ID), slog.Int64("source_employee_id", source.ID))
	return mapping, nil
}
