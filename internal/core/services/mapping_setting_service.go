package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/dto"
	"github.com/go-playground/validator/v10"
)

type mappingSettingService struct {
	BaseService
	settingRepo      portsrepo.MappingSettingRepositoryFacade
	expenseFieldRepo portsrepo.ExpenseFieldRepositoryFacade
	validate         *validator.Validate
}

// NewMappingSettingService creates a new mapping setting service
func NewMappingSettingService(settingRepo portsrepo.MappingSettingRepositoryFacade, expenseFieldRepo portsrepo.ExpenseFieldRepositoryFacade) portssvc.MappingSettingSvcFacade {
	return &mappingSettingService{
		settingRepo:      settingRepo,
		expenseFieldRepo: expenseFieldRepo,
		validate:         newValidator(),
	}
}

var _ portssvc.MappingSettingSvcFacade = (*mappingSettingService)(nil)

func (s *mappingSettingService) ListMappingSettings(ctx context.Context, workspaceID int64) ([]domain.MappingSetting, error) {
	settings, err := s.settingRepo.ListMappingSettings(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list mapping settings", slog.Int64("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to list mapping settings: %w", err)
	}
	if settings == nil {
		return []domain.MappingSetting{}, nil
	}
	return settings, nil
}

func (s *mappingSettingService) BulkUpsertMappingSettings(ctx context.Context, workspaceID int64, reqs []dto.MappingSettingRequest) (saved []domain.MappingSetting, err error) {
	defer recordOperation("bulk_upsert_mapping_settings", &err)

	if len(reqs) == 0 {
		return nil, apperrors.NewValidationError("", "", "mapping settings not found")
	}

	bulk := apperrors.NewBulkError("invalid mapping settings")
	order := make([]domain.MappingSettingKey, 0, len(reqs))
	byKey := make(map[domain.MappingSettingKey]domain.MappingSetting, len(reqs))

	for i, req := range reqs {
		if vErr := s.validate.Struct(req); vErr != nil {
			addValidationErrors(bulk, i, vErr)
			continue
		}
		if req.ExpenseFieldID != nil {
			_, lookupErr := s.expenseFieldRepo.FindExpenseFieldByID(ctx, workspaceID, *req.ExpenseFieldID)
			if errors.Is(lookupErr, apperrors.ErrNotFound) {
				bulk.Add(i, "expense_field_id", strconv.FormatInt(*req.ExpenseFieldID, 10), "expense field does not exist in this workspace")
				continue
			}
			if lookupErr != nil {
				s.LogError(ctx, lookupErr, "Failed to look up expense field", slog.Int64("expense_field_id", *req.ExpenseFieldID))
				return nil, fmt.Errorf("failed to look up expense field: %w", lookupErr)
			}
		}

		setting := domain.MappingSetting{
			WorkspaceID:      workspaceID,
			SourceField:      domain.AttributeType(req.SourceField),
			DestinationField: domain.AttributeType(req.DestinationField),
			ExpenseFieldID:   req.ExpenseFieldID,
			IsCustom:         req.IsCustom,
			ImportToFyle:     req.ImportToFyle,
		}
		// Duplicates keep their first position but take the last values
		key := setting.Key()
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = setting
	}

	validCount := len(reqs) - len(rejectedIndexes(bulk))
	recordBulk("mapping_setting", len(order), len(reqs)-validCount, validCount-len(order))

	if len(order) == 0 {
		s.LogInfo(ctx, "Every mapping setting of the batch was rejected", slog.Int("count", len(reqs)))
		return nil, bulk
	}

	settings := make([]domain.MappingSetting, len(order))
	for i, key := range order {
		settings[i] = byKey[key]
	}

	saved, err = s.settingRepo.UpsertMappingSettings(ctx, workspaceID, settings)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert mapping settings", slog.Int64("workspace_id", workspaceID), slog.Int("count", len(settings)))
		return nil, fmt.Errorf("failed to upsert mapping settings: %w", err)
	}

	s.LogInfo(ctx, "Mapping settings upserted",
		slog.Int64("workspace_id", workspaceID),
		slog.Int("saved", len(saved)),
		slog.Int("rejected", len(reqs)-validCount))
	return saved, bulk.OrNil()
}

// rejectedIndexes returns the distinct item indexes with at least one failure.
func rejectedIndexes(bulk *apperrors.BulkError) map[int]struct{} {
	out := make(map[int]struct{}, len(bulk.Errors))
	for _, item := range bulk.Errors {
		out[item.Index] = struct{}{}
	}
	return out
}

type expenseFieldService struct {
	BaseService
	repo     portsrepo.ExpenseFieldRepositoryFacade
	validate *validator.Validate
}

// NewExpenseFieldService creates a new expense field service
func NewExpenseFieldService(repo portsrepo.ExpenseFieldRepositoryFacade) portssvc.ExpenseFieldSvcFacade {
	return &expenseFieldService{repo: repo, validate: newValidator()}
}

var _ portssvc.ExpenseFieldSvcFacade = (*expenseFieldService)(nil)

func (s *expenseFieldService) ListExpenseFields(ctx context.Context, workspaceID int64) ([]domain.ExpenseField, error) {
	fields, err := s.repo.ListExpenseFields(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense fields", slog.Int64("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to list expense fields: %w", err)
	}
	if fields == nil {
		return []domain.ExpenseField{}, nil
	}
	return fields, nil
}

// UpsertExpenseFields rejects the whole batch when any item is invalid.
func (s *expenseFieldService) UpsertExpenseFields(ctx context.Context, workspaceID int64, reqs []dto.ExpenseFieldRequest) (saved []domain.ExpenseField, err error) {
	defer recordOperation("upsert_expense_fields", &err)

	if len(reqs) == 0 {
		return nil, apperrors.NewValidationError("", "", "expense fields not found")
	}

	bulk := apperrors.NewBulkError("invalid expense fields")
	order := make([]domain.AttributeType, 0, len(reqs))
	byType := make(map[domain.AttributeType]domain.ExpenseField, len(reqs))
	for i, req := range reqs {
		if vErr := s.validate.Struct(req); vErr != nil {
			addValidationErrors(bulk, i, vErr)
			continue
		}
		t := domain.AttributeType(req.AttributeType)
		if _, seen := byType[t]; !seen {
			order = append(order, t)
		}
		byType[t] = domain.ExpenseField{
			WorkspaceID:   workspaceID,
			AttributeType: t,
			SourceFieldID: req.SourceFieldID,
			IsEnabled:     req.IsEnabled,
		}
	}
	if bulk.HasErrors() {
		return nil, bulk
	}

	fields := make([]domain.ExpenseField, len(order))
	for i, t := range order {
		fields[i] = byType[t]
	}
	saved, err = s.repo.UpsertExpenseFields(ctx, workspaceID, fields)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert expense fields", slog.Int64("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to upsert expense fields: %w", err)
	}
	recordBulk("expense_field", len(saved), 0, len(reqs)-len(order))
	s.LogInfo(ctx, "Expense fields upserted", slog.Int64("workspace_id", workspaceID), slog.Int("count", len(saved)))
	return saved, nil
}
