package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

func (s *Store) ListMappingSettings(_ context.Context, workspaceID int64) ([]domain.MappingSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.MappingSetting
	for _, setting := range s.settings {
		if setting.WorkspaceID == workspaceID {
			out = append(out, setting)
		}
	}
	slices.SortFunc(out, func(a, b domain.MappingSetting) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// UpsertMappingSettings applies the whole batch or nothing.
func (s *Store) UpsertMappingSettings(_ context.Context, workspaceID int64, settings []domain.MappingSetting) ([]domain.MappingSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[domain.MappingSettingKey]struct{}, len(settings))
	for _, in := range settings {
		if _, dup := seen[in.Key()]; dup {
			return nil, apperrors.NewConflictError(fmt.Sprintf("mapping setting %s/%s repeated in batch", in.SourceField, in.DestinationField))
		}
		seen[in.Key()] = struct{}{}
		if in.ExpenseFieldID != nil {
			if field, ok := s.expenseFields[*in.ExpenseFieldID]; !ok || field.WorkspaceID != workspaceID {
				return nil, fmt.Errorf("expense field %d: %w", *in.ExpenseFieldID, apperrors.ErrNotFound)
			}
		}
	}

	now := s.tick()
	out := make([]domain.MappingSetting, 0, len(settings))
	for _, in := range settings {
		in.WorkspaceID = workspaceID
		if existing, ok := s.settingByKeyLocked(workspaceID, in.Key()); ok {
			in.ID = existing.ID
			in.CreatedAt = existing.CreatedAt
		} else {
			in.ID = s.id()
			in.CreatedAt = now
		}
		in.UpdatedAt = now
		s.settings[in.ID] = in
		out = append(out, in)
	}
	return out, nil
}

func (s *Store) settingByKeyLocked(workspaceID int64, key domain.MappingSettingKey) (domain.MappingSetting, bool) {
	for _, setting := range s.settings {
		if setting.WorkspaceID == workspaceID && setting.Key() == key {
			return setting, true
		}
	}
	return domain.MappingSetting{}, false
}

func (s *Store) FindExpenseFieldByID(_ context.Context, workspaceID, id int64) (*domain.ExpenseField, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	field, ok := s.expenseFields[id]
	if !ok || field.WorkspaceID != workspaceID {
		return nil, apperrors.ErrNotFound
	}
	return &field, nil
}

func (s *Store) ListExpenseFields(_ context.Context, workspaceID int64) ([]domain.ExpenseField, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.ExpenseField
	for _, field := range s.expenseFields {
		if field.WorkspaceID == workspaceID {
			out = append(out, field)
		}
	}
	slices.SortFunc(out, func(a, b domain.ExpenseField) int { return cmp.Compare(a.AttributeType, b.AttributeType) })
	return out, nil
}

func (s *Store) UpsertExpenseFields(_ context.Context, workspaceID int64, fields []domain.ExpenseField) ([]domain.ExpenseField, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.tick()
	out := make([]domain.ExpenseField, 0, len(fields))
	for _, in := range fields {
		in.WorkspaceID = workspaceID
		in.ID = 0
		for _, existing := range s.expenseFields {
			if existing.WorkspaceID == workspaceID && existing.AttributeType == in.AttributeType {
				in.ID = existing.ID
				in.CreatedAt = existing.CreatedAt
				break
			}
		}
		if in.ID == 0 {
			in.ID = s.id()
			in.CreatedAt = now
		}
		in.UpdatedAt = now
		s.expenseFields[in.ID] = in
		out = append(out, in)
	}
	return out, nil
}
