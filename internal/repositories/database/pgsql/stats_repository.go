package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStatsRepository struct {
	BaseRepository
}

// newPgxStatsRepository creates a new repository for mapping stats counts.
func newPgxStatsRepository(pool *pgxpool.Pool) portsrepo.MappingStatsReader {
	return &PgxStatsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MappingStatsReader = (*PgxStatsRepository)(nil)

func statsConditions(filter domain.StatsFilter) *conditions {
	c := &conditions{}
	c.add("ea.workspace_id = " + c.arg(filter.WorkspaceID))
	c.add("ea.attribute_type = " + c.arg(string(filter.SourceType)))
	if filter.ExcludeValue != "" {
		c.add("ea.value <> " + c.arg(filter.ExcludeValue))
	}
	if pred := activePredicate("ea.active", filter.Active); pred != "" {
		c.add(pred)
	}
	return c
}

func (r *PgxStatsRepository) CountSourceAttributes(ctx context.Context, filter domain.StatsFilter) (int64, error) {
	return r.count(ctx, statsConditions(filter), "count expense attributes")
}

func (r *PgxStatsRepository) CountMappings(ctx context.Context, filter domain.StatsFilter) (int64, error) {
	query, args := mappingCountQuery(filter)
	var n int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count mappings: %w", err)
	}
	return n, nil
}

// mappingCountQuery counts mapping rows rather than mapped sources, so stale rows
// push the mapped count above the attribute count.
func mappingCountQuery(filter domain.StatsFilter) (string, []any) {
	c := &conditions{}
	var from string
	if filter.Relation == domain.RelationEmployeeMapping {
		from = `employee_mappings em
		JOIN expense_attributes ea ON ea.workspace_id = em.workspace_id AND ea.id = em.source_employee_id`
		c.add("em.workspace_id = " + c.arg(filter.WorkspaceID))
		c.add(employeeSlotPredicate("em", filter.DestinationType))
	} else {
		from = `mappings m
		JOIN expense_attributes ea ON ea.workspace_id = m.workspace_id AND ea.id = m.source_id`
		c.add("m.workspace_id = " + c.arg(filter.WorkspaceID))
		c.add("m.source_type = " + c.arg(string(filter.SourceType)))
		if filter.DestinationType != "" {
			c.add("m.destination_type = " + c.arg(string(filter.DestinationType)))
		}
	}
	if pred := activePredicate("ea.active", filter.Active); pred != "" {
		c.add(pred)
	}
	return `SELECT COUNT(*) FROM ` + from + ` WHERE ` + c.String() + `;`, c.args
}

func (r *PgxStatsRepository) count(ctx context.Context, c *conditions, action string) (int64, error) {
	query := `SELECT COUNT(*) FROM expense_attributes ea WHERE ` + c.String() + `;`
	var n int64
	if err := r.Pool.QueryRow(ctx, query, c.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to %s: %w", action, err)
	}
	return n, nil
}
