package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	"github.com/SscSPs/accounting_mappings/internal/models"
	"github.com/SscSPs/accounting_mappings/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMappingRepository struct {
	BaseRepository
}

// newPgxMappingRepository creates a new repository for pairwise mappings.
func newPgxMappingRepository(pool *pgxpool.Pool) portsrepo.MappingRepositoryFacade {
	return &PgxMappingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MappingRepositoryFacade = (*PgxMappingRepository)(nil)

// resolvedMappingSelect joins a mapping relation aliased m to both attributes.
func resolvedMappingSelect(from string) string {
	return `SELECT ` + columns("m", mappingCols) + `, ` +
		columns("ea", expenseAttributeCols) + `, ` +
		columns("da", destinationAttributeCols) + `
		FROM ` + from + ` m
		JOIN expense_attributes ea ON ea.id = m.source_id
		JOIN destination_attributes da ON da.id = m.destination_id`
}

func scanResolvedMapping(row pgx.Row) (domain.Mapping, error) {
	var (
		m   models.Mapping
		src models.ExpenseAttribute
		dst models.DestinationAttribute
	)
	targets := append(mappingTargets(&m), expenseAttributeTargets(&src)...)
	targets = append(targets, destinationAttributeTargets(&dst)...)
	if err := row.Scan(targets...); err != nil {
		return domain.Mapping{}, err
	}
	return mapping.ToDomainMapping(m, src, dst), nil
}

// ListMappings returns resolved rows ordered by source value.
func (r *PgxMappingRepository) ListMappings(ctx context.Context, spec domain.MappingListSpec) ([]domain.Mapping, error) {
	query, args := listMappingsQuery(spec)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings for workspace %d: %w", spec.WorkspaceID, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Mapping, error) {
		return scanResolvedMapping(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan mappings: %w", err)
	}
	return out, nil
}

// listMappingsQuery builds the listing. In three-column mode only sources with
// exactly two mappings of the source type are kept and destination_type is ignored.
func listMappingsQuery(spec domain.MappingListSpec) (string, []any) {
	var c conditions
	ws := c.arg(spec.WorkspaceID)
	st := c.arg(string(spec.SourceType))
	c.add("m.workspace_id = " + ws)
	c.add("m.source_type = " + st)
	if spec.Dimension == domain.ThreeColumn {
		c.add(`m.source_id IN (
			SELECT source_id FROM mappings
			WHERE workspace_id = ` + ws + ` AND source_type = ` + st + `
			GROUP BY source_id
			HAVING COUNT(*) = 2)`)
	} else if spec.DestinationType != "" {
		c.add("m.destination_type = " + c.arg(string(spec.DestinationType)))
	}
	if pred := activePredicate("ea.active", spec.SourceActive); pred != "" {
		c.add(pred)
	}

	query := resolvedMappingSelect("mappings") + `
		WHERE ` + c.String() + `
		ORDER BY ea.value COLLATE "C", m.id;`
	return query, c.args
}

// UpsertMapping writes and resolves the row in a single statement.
func (r *PgxMappingRepository) UpsertMapping(ctx context.Context, upsert domain.MappingUpsert) (*domain.Mapping, error) {
	query := `
		WITH m AS (
			INSERT INTO mappings (workspace_id, source_type, destination_type, source_id, destination_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
			ON CONFLICT (workspace_id, source_id, destination_type) DO UPDATE SET
				source_type = EXCLUDED.source_type,
				destination_id = EXCLUDED.destination_id,
				updated_at = EXCLUDED.updated_at
			RETURNING ` + columns("", mappingCols) + `
		)
		` + resolvedMappingSelect("m") + `;`

	m, err := scanResolvedMapping(r.Pool.QueryRow(ctx, query,
		upsert.WorkspaceID,
		string(upsert.SourceType),
		string(upsert.DestinationType),
		upsert.SourceID,
		upsert.DestinationID,
	))
	if err != nil {
		return nil, translateError(err, "upsert mapping")
	}
	return &m, nil
}
