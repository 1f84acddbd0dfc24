// Package memory is an in-process implementation of every repository port. It is
// selected with STORE_DRIVER=memory and backs the service tests.
package memory

import (
	"cmp"
	"maps"
	"sync"
	"time"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
)

type mappingRow struct {
	id              int64
	workspaceID     int64
	sourceType      domain.AttributeType
	destinationType domain.AttributeType
	sourceID        int64
	destinationID   int64
	domain.Timestamps
}

type employeeMappingRow struct {
	id          int64
	workspaceID int64
	upsert      domain.EmployeeMappingUpsert
	domain.Timestamps
}

type categoryMappingRow struct {
	id          int64
	workspaceID int64
	upsert      domain.CategoryMappingUpsert
	domain.Timestamps
}

// Store keeps every table in maps guarded by one lock, so each write is a single
// critical section.
type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	lastTick time.Time
	nextID   int64

	sources          map[int64]domain.SourceAttribute
	destinations     map[int64]domain.DestinationAttribute
	expenseFields    map[int64]domain.ExpenseField
	settings         map[int64]domain.MappingSetting
	mappings         map[int64]mappingRow
	employeeMappings map[int64]employeeMappingRow
	categoryMappings map[int64]categoryMappingRow
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(options ...Option) *Store {
	s := &Store{
		now:              time.Now,
		sources:          make(map[int64]domain.SourceAttribute),
		destinations:     make(map[int64]domain.DestinationAttribute),
		expenseFields:    make(map[int64]domain.ExpenseField),
		settings:         make(map[int64]domain.MappingSetting),
		mappings:         make(map[int64]mappingRow),
		employeeMappings: make(map[int64]employeeMappingRow),
		categoryMappings: make(map[int64]categoryMappingRow),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SourceAttributeRepo:      s,
		DestinationAttributeRepo: s,
		ExpenseFieldRepo:         s,
		MappingSettingRepo:       s,
		MappingRepo:              s,
		EmployeeMappingRepo:      s,
		CategoryMappingRepo:      s,
		StatsRepo:                s,
	}
}

// tick returns a timestamp strictly after every previous one. Callers hold mu.
func (s *Store) tick() time.Time {
	t := s.now().UTC()
	if !t.After(s.lastTick) {
		t = s.lastTick.Add(time.Microsecond)
	}
	s.lastTick = t
	return t
}

// id returns the next row ID. Callers hold mu.
func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func cloneDetail(d map[string]any) map[string]any {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// byValueThenID orders rows the way every list operation returns them.
func byValueThenID(aValue string, aID int64, bValue string, bID int64) int {
	if c := cmp.Compare(aValue, bValue); c != 0 {
		return c
	}
	return cmp.Compare(aID, bID)
}

var (
	_ portsrepo.SourceAttributeRepositoryFacade      = (*Store)(nil)
	_ portsrepo.DestinationAttributeRepositoryFacade = (*Store)(nil)
	_ portsrepo.ExpenseFieldRepositoryFacade         = (*Store)(nil)
	_ portsrepo.MappingSettingRepositoryFacade       = (*Store)(nil)
	_ portsrepo.MappingRepositoryFacade              = (*Store)(nil)
	_ portsrepo.EmployeeMappingRepositoryFacade      = (*Store)(nil)
	_ portsrepo.CategoryMappingRepositoryFacade      = (*Store)(nil)
	_ portsrepo.MappingStatsReader                   = (*Store)(nil)
)
