package memory

import (
	"context"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

func (s *Store) CountSourceAttributes(_ context.Context, filter domain.StatsFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, attr := range s.sources {
		if s.countsLocked(attr, filter) {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountMappings(_ context.Context, filter domain.StatsFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	if filter.Relation == domain.RelationEmployeeMapping {
		for _, row := range s.employeeMappings {
			if row.workspaceID == filter.WorkspaceID &&
				employeeSlotSet(row.upsert, filter.DestinationType) &&
				s.sourcePassesLocked(row.upsert.SourceEmployeeID, filter.Active) {
				n++
			}
		}
		return n, nil
	}
	for _, row := range s.mappings {
		if row.workspaceID == filter.WorkspaceID &&
			row.sourceType == filter.SourceType &&
			(filter.DestinationType == "" || row.destinationType == filter.DestinationType) &&
			s.sourcePassesLocked(row.sourceID, filter.Active) {
			n++
		}
	}
	return n, nil
}

func (s *Store) countsLocked(attr domain.SourceAttribute, filter domain.StatsFilter) bool {
	return attr.WorkspaceID == filter.WorkspaceID &&
		attr.AttributeType == filter.SourceType &&
		(filter.ExcludeValue == "" || attr.Value != filter.ExcludeValue) &&
		filter.Active.Matches(attr.Active)
}

// sourcePassesLocked applies the activeness filter to the source of a mapping row.
// A row whose source is gone only counts when no filter is set.
func (s *Store) sourcePassesLocked(sourceID int64, active domain.ActiveFilter) bool {
	src, ok := s.sources[sourceID]
	if !ok {
		return active == domain.ActiveAny
	}
	return active.Matches(src.Active)
}
