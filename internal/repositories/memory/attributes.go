package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
)

func (s *Store) FindSourceAttributeByID(_ context.Context, workspaceID, id int64) (*domain.SourceAttribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attr, ok := s.sources[id]
	if !ok || attr.WorkspaceID != workspaceID {
		return nil, apperrors.ErrNotFound
	}
	attr.Detail = cloneDetail(attr.Detail)
	return &attr, nil
}

func (s *Store) FindSourceAttributeByValue(_ context.Context, workspaceID int64, attributeType domain.AttributeType, value string) (*domain.SourceAttribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attr, ok := s.sourceByValueLocked(workspaceID, attributeType, value)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	attr.Detail = cloneDetail(attr.Detail)
	return &attr, nil
}

func (s *Store) sourceByValueLocked(workspaceID int64, attributeType domain.AttributeType, value string) (domain.SourceAttribute, bool) {
	for _, attr := range s.sources {
		if attr.WorkspaceID == workspaceID && attr.AttributeType == attributeType && attr.Value == value {
			return attr, true
		}
	}
	return domain.SourceAttribute{}, false
}

func (s *Store) SearchSourceAttributes(_ context.Context, spec domain.AttributeSearchSpec) ([]domain.SourceAttribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.SourceAttribute
	for _, attr := range s.sources {
		if attr.WorkspaceID != spec.WorkspaceID || attr.AttributeType != spec.SourceType {
			continue
		}
		if !spec.Active.Matches(attr.Active) || !domain.InBuckets(attr.Value, spec.Buckets) {
			continue
		}
		if spec.After != nil && byValueThenID(attr.Value, attr.ID, spec.After.Value, spec.After.ID) <= 0 {
			continue
		}
		if spec.Mapped != domain.MappedAny {
			mapped := s.isMappedLocked(attr.ID, spec.WorkspaceID, spec.DestinationType, spec.Relation)
			if mapped != (spec.Mapped == domain.MappedOnly) {
				continue
			}
		}
		attr.Detail = cloneDetail(attr.Detail)
		out = append(out, attr)
	}

	slices.SortFunc(out, func(a, b domain.SourceAttribute) int {
		return byValueThenID(a.Value, a.ID, b.Value, b.ID)
	})
	if spec.Limit > 0 && len(out) > spec.Limit {
		out = out[:spec.Limit]
	}
	return out, nil
}

// isMappedLocked reports whether the source has a mapping to destinationType in the
// relation. An empty destinationType matches any mapping of the source.
func (s *Store) isMappedLocked(sourceID, workspaceID int64, destinationType domain.AttributeType, relation domain.MappingRelation) bool {
	if relation == domain.RelationEmployeeMapping {
		for _, row := range s.employeeMappings {
			if row.workspaceID != workspaceID || row.upsert.SourceEmployeeID != sourceID {
				continue
			}
			return employeeSlotSet(row.upsert, destinationType)
		}
		return false
	}

	for _, row := range s.mappings {
		if row.workspaceID == workspaceID && row.sourceID == sourceID &&
			(destinationType == "" || row.destinationType == destinationType) {
			return true
		}
	}
	return false
}

// employeeSlotSet reports whether the slot holding destinationType is filled. An
// empty destinationType accepts any filled slot.
func employeeSlotSet(upsert domain.EmployeeMappingUpsert, destinationType domain.AttributeType) bool {
	if destinationType == "" {
		return upsert.DestinationEmployeeID != nil || upsert.DestinationVendorID != nil || upsert.DestinationCardAccountID != nil
	}
	switch domain.EmployeeSlotFor(destinationType) {
	case domain.SlotVendor:
		return upsert.DestinationVendorID != nil
	case domain.SlotCardAccount:
		return upsert.DestinationCardAccountID != nil
	default:
		return upsert.DestinationEmployeeID != nil
	}
}

func (s *Store) UpsertSourceAttributes(_ context.Context, workspaceID int64, attributes []domain.SourceAttribute) ([]domain.SourceAttribute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.tick()
	out := make([]domain.SourceAttribute, 0, len(attributes))
	for _, in := range attributes {
		in.WorkspaceID = workspaceID
		in.Detail = cloneDetail(in.Detail)
		if existing, ok := s.sourceByValueLocked(workspaceID, in.AttributeType, in.Value); ok {
			in.ID = existing.ID
			in.AutoMapped = existing.AutoMapped
			in.CreatedAt = existing.CreatedAt
		} else {
			in.ID = s.id()
			in.CreatedAt = now
		}
		in.UpdatedAt = now
		s.sources[in.ID] = in

		in.Detail = cloneDetail(in.Detail)
		out = append(out, in)
	}
	return out, nil
}

func (s *Store) FindDestinationAttributeByID(_ context.Context, workspaceID, id int64) (*domain.DestinationAttribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attr, ok := s.destinations[id]
	if !ok || attr.WorkspaceID != workspaceID {
		return nil, apperrors.ErrNotFound
	}
	attr.Detail = cloneDetail(attr.Detail)
	return &attr, nil
}

// FindDestinationAttributeByValue returns the oldest attribute with the value.
func (s *Store) FindDestinationAttributeByValue(_ context.Context, workspaceID int64, attributeType domain.AttributeType, value string) (*domain.DestinationAttribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *domain.DestinationAttribute
	for _, attr := range s.destinations {
		if attr.WorkspaceID != workspaceID || attr.AttributeType != attributeType || attr.Value != value {
			continue
		}
		if found == nil || attr.ID < found.ID {
			a := attr
			found = &a
		}
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	found.Detail = cloneDetail(found.Detail)
	return found, nil
}

func (s *Store) FindDestinationAttributeByDestinationID(_ context.Context, workspaceID int64, attributeType domain.AttributeType, destinationID string) (*domain.DestinationAttribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attr, ok := s.destinationByExternalIDLocked(workspaceID, attributeType, destinationID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	attr.Detail = cloneDetail(attr.Detail)
	return &attr, nil
}

func (s *Store) destinationByExternalIDLocked(workspaceID int64, attributeType domain.AttributeType, destinationID string) (domain.DestinationAttribute, bool) {
	for _, attr := range s.destinations {
		if attr.WorkspaceID == workspaceID && attr.AttributeType == attributeType && attr.DestinationID == destinationID {
			return attr, true
		}
	}
	return domain.DestinationAttribute{}, false
}

func (s *Store) SearchDestinationAttributes(_ context.Context, workspaceID int64, attributeType domain.AttributeType, contains string) ([]domain.DestinationAttribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(contains)
	var out []domain.DestinationAttribute
	for _, attr := range s.destinations {
		if attr.WorkspaceID == workspaceID && attr.AttributeType == attributeType &&
			strings.Contains(strings.ToLower(attr.Value), needle) {
			attr.Detail = cloneDetail(attr.Detail)
			out = append(out, attr)
		}
	}
	slices.SortFunc(out, func(a, b domain.DestinationAttribute) int {
		return byValueThenID(a.Value, a.ID, b.Value, b.ID)
	})
	return out, nil
}

func (s *Store) UpsertDestinationAttributes(_ context.Context, workspaceID int64, attributes []domain.DestinationAttribute) ([]domain.DestinationAttribute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.tick()
	out := make([]domain.DestinationAttribute, 0, len(attributes))
	for _, in := range attributes {
		in.WorkspaceID = workspaceID
		in.Detail = cloneDetail(in.Detail)
		if existing, ok := s.destinationByExternalIDLocked(workspaceID, in.AttributeType, in.DestinationID); ok {
			in.ID = existing.ID
			in.CreatedAt = existing.CreatedAt
		} else {
			in.ID = s.id()
			in.CreatedAt = now
		}
		in.UpdatedAt = now
		s.destinations[in.ID] = in

		in.Detail = cloneDetail(in.Detail)
		out = append(out, in)
	}
	return out, nil
}
