package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

func (s *Store) ListMappings(_ context.Context, spec domain.MappingListSpec) ([]domain.Mapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sourcesWithTwo map[int64]bool
	if spec.Dimension == domain.ThreeColumn {
		counts := make(map[int64]int)
		for _, row := range s.mappings {
			if row.workspaceID == spec.WorkspaceID && row.sourceType == spec.SourceType {
				counts[row.sourceID]++
			}
		}
		sourcesWithTwo = make(map[int64]bool, len(counts))
		for id, n := range counts {
			sourcesWithTwo[id] = n == 2
		}
	}

	var out []domain.Mapping
	for _, row := range s.mappings {
		if row.workspaceID != spec.WorkspaceID || row.sourceType != spec.SourceType {
			continue
		}
		if spec.Dimension == domain.ThreeColumn {
			if !sourcesWithTwo[row.sourceID] {
				continue
			}
		} else if spec.DestinationType != "" && row.destinationType != spec.DestinationType {
			continue
		}
		m := s.resolveMappingLocked(row)
		if !spec.SourceActive.Matches(m.Source.Active) {
			continue
		}
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b domain.Mapping) int {
		return byValueThenID(a.Source.Value, a.ID, b.Source.Value, b.ID)
	})
	return out, nil
}

// UpsertMapping replaces the destination of the row keyed on (workspace, source, destination type).
func (s *Store) UpsertMapping(_ context.Context, upsert domain.MappingUpsert) (*domain.Mapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.sources[upsert.SourceID]; !ok || src.WorkspaceID != upsert.WorkspaceID {
		return nil, fmt.Errorf("source attribute %d: %w", upsert.SourceID, apperrors.ErrNotFound)
	}
	if dst, ok := s.destinations[upsert.DestinationID]; !ok || dst.WorkspaceID != upsert.WorkspaceID {
		return nil, fmt.Errorf("destination attribute %d: %w", upsert.DestinationID, apperrors.ErrNotFound)
	}

	now := s.tick()
	row := mappingRow{
		workspaceID:     upsert.WorkspaceID,
		sourceType:      upsert.SourceType,
		destinationType: upsert.DestinationType,
		sourceID:        upsert.SourceID,
		destinationID:   upsert.DestinationID,
	}
	for _, existing := range s.mappings {
		if existing.workspaceID == upsert.WorkspaceID && existing.sourceID == upsert.SourceID && existing.destinationType == upsert.DestinationType {
			row.id = existing.id
			row.CreatedAt = existing.CreatedAt
			break
		}
	}
	if row.id == 0 {
		row.id = s.id()
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	s.mappings[row.id] = row

	m := s.resolveMappingLocked(row)
	return &m, nil
}

func (s *Store) resolveMappingLocked(row mappingRow) domain.Mapping {
	src := s.sources[row.sourceID]
	src.Detail = cloneDetail(src.Detail)
	dst := s.destinations[row.destinationID]
	dst.Detail = cloneDetail(dst.Detail)
	return domain.Mapping{
		ID:              row.id,
		WorkspaceID:     row.workspaceID,
		SourceType:      row.sourceType,
		DestinationType: row.destinationType,
		Source:          src,
		Destination:     dst,
		Timestamps:      row.Timestamps,
	}
}

// destinationLocked resolves an optional slot. Callers hold mu.
func (s *Store) destinationLocked(workspaceID int64, id *int64) (*domain.DestinationAttribute, error) {
	if id == nil {
		return nil, nil
	}
	dst, ok := s.destinations[*id]
	if !ok || dst.WorkspaceID != workspaceID {
		return nil, fmt.Errorf("destination attribute %d: %w", *id, apperrors.ErrNotFound)
	}
	dst.Detail = cloneDetail(dst.Detail)
	return &dst, nil
}

func (s *Store) ListEmployeeMappings(_ context.Context, workspaceID int64) ([]domain.EmployeeMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.EmployeeMapping
	for _, row := range s.employeeMappings {
		if row.workspaceID != workspaceID {
			continue
		}
		m, err := s.resolveEmployeeMappingLocked(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b domain.EmployeeMapping) int {
		return byValueThenID(a.SourceEmployee.Value, a.ID, b.SourceEmployee.Value, b.ID)
	})
	return out, nil
}

func (s *Store) UpsertEmployeeMapping(_ context.Context, upsert domain.EmployeeMappingUpsert) (*domain.EmployeeMapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := employeeMappingRow{workspaceID: upsert.WorkspaceID, upsert: upsert}
	// Resolve first so a dangling reference leaves the table untouched
	if _, err := s.resolveEmployeeMappingLocked(row); err != nil {
		return nil, err
	}

	now := s.tick()
	found := false
	for _, existing := range s.employeeMappings {
		if existing.workspaceID == upsert.WorkspaceID && existing.upsert.SourceEmployeeID == upsert.SourceEmployeeID {
			row.id = existing.id
			row.CreatedAt = existing.CreatedAt
			found = true
			break
		}
	}
	if !found {
		row.id = s.id()
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	s.employeeMappings[row.id] = row
	return s.resolveEmployeeMappingLocked(row)
}

func (s *Store) resolveEmployeeMappingLocked(row employeeMappingRow) (*domain.EmployeeMapping, error) {
	src, ok := s.sources[row.upsert.SourceEmployeeID]
	if !ok || src.WorkspaceID != row.workspaceID {
		return nil, fmt.Errorf("source employee %d: %w", row.upsert.SourceEmployeeID, apperrors.ErrNotFound)
	}
	src.Detail = cloneDetail(src.Detail)
	m := &domain.EmployeeMapping{
		ID:             row.id,
		WorkspaceID:    row.workspaceID,
		SourceEmployee: src,
		ManualMapping:  row.upsert.ManualMapping,
		Timestamps:     row.Timestamps,
	}
	var err error
	if m.DestinationEmployee, err = s.destinationLocked(row.workspaceID, row.upsert.DestinationEmployeeID); err != nil {
		return nil, err
	}
	if m.DestinationVendor, err = s.destinationLocked(row.workspaceID, row.upsert.DestinationVendorID); err != nil {
		return nil, err
	}
	if m.DestinationCardAccount, err = s.destinationLocked(row.workspaceID, row.upsert.DestinationCardAccountID); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) ListCategoryMappings(_ context.Context, workspaceID int64) ([]domain.CategoryMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.CategoryMapping
	for _, row := range s.categoryMappings {
		if row.workspaceID != workspaceID {
			continue
		}
		m, err := s.resolveCategoryMappingLocked(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b domain.CategoryMapping) int {
		return byValueThenID(a.SourceCategory.Value, a.ID, b.SourceCategory.Value, b.ID)
	})
	return out, nil
}

func (s *Store) UpsertCategoryMapping(_ context.Context, upsert domain.CategoryMappingUpsert) (*domain.CategoryMapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := categoryMappingRow{workspaceID: upsert.WorkspaceID, upsert: upsert}
	if _, err := s.resolveCategoryMappingLocked(row); err != nil {
		return nil, err
	}

	now := s.tick()
	found := false
	for _, existing := range s.categoryMappings {
		if existing.workspaceID == upsert.WorkspaceID && existing.upsert.SourceCategoryID == upsert.SourceCategoryID {
			row.id = existing.id
			row.CreatedAt = existing.CreatedAt
			found = true
			break
		}
	}
	if !found {
		row.id = s.id()
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	s.categoryMappings[row.id] = row
	return s.resolveCategoryMappingLocked(row)
}

func (s *Store) resolveCategoryMappingLocked(row categoryMappingRow) (*domain.CategoryMapping, error) {
	src, ok := s.sources[row.upsert.SourceCategoryID]
	if !ok || src.WorkspaceID != row.workspaceID {
		return nil, fmt.Errorf("source category %d: %w", row.upsert.SourceCategoryID, apperrors.ErrNotFound)
	}
	src.Detail = cloneDetail(src.Detail)
	m := &domain.CategoryMapping{
		ID:             row.id,
		WorkspaceID:    row.workspaceID,
		SourceCategory: src,
		ManualMapping:  row.upsert.ManualMapping,
		Timestamps:     row.Timestamps,
	}
	var err error
	if m.DestinationAccount, err = s.destinationLocked(row.workspaceID, row.upsert.DestinationAccountID); err != nil {
		return nil, err
	}
	if m.DestinationExpenseHead, err = s.destinationLocked(row.workspaceID, row.upsert.DestinationExpenseHeadID); err != nil {
		return nil, err
	}
	return m, nil
}
