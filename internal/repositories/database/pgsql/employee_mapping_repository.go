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

type employeeMappingRow struct {
	row models.EmployeeMapping
	src models.ExpenseAttribute
}

type PgxEmployeeMappingRepository struct {
	BaseRepository
}

// newPgxEmployeeMappingRepository creates a new repository for employee mappings.
func newPgxEmployeeMappingRepository(pool *pgxpool.Pool) portsrepo.EmployeeMappingRepositoryFacade {
	return &PgxEmployeeMappingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeMappingRepositoryFacade = (*PgxEmployeeMappingRepository)(nil)

func scanEmployeeMappingRow(row pgx.Row) (employeeMappingRow, error) {
	var r employeeMappingRow
	targets := append(employeeMappingTargets(&r.row), expenseAttributeTargets(&r.src)...)
	err := row.Scan(targets...)
	return r, err
}

func (r *PgxEmployeeMappingRepository) ListEmployeeMappings(ctx context.Context, workspaceID int64) ([]domain.EmployeeMapping, error) {
	query := `SELECT ` + columns("em", employeeMappingCols) + `, ` + columns("ea", expenseAttributeCols) + `
		FROM employee_mappings em
		JOIN expense_attributes ea ON ea.id = em.source_employee_id
		WHERE em.workspace_id = $1
		ORDER BY ea.value COLLATE "C", em.id;`

	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee mappings for workspace %d: %w", workspaceID, err)
	}
	found, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (employeeMappingRow, error) {
		return scanEmployeeMappingRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee mappings: %w", err)
	}

	var ids []int64
	for _, f := range found {
		ids = append(ids, mapping.SlotIDs(f.row.DestinationEmployeeID, f.row.DestinationVendorID, f.row.DestinationCardAccountID)...)
	}
	lookup, err := loadDestinations(ctx, r.Pool, workspaceID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EmployeeMapping, len(found))
	for i, f := range found {
		out[i] = mapping.ToDomainEmployeeMapping(f.row, f.src, lookup)
	}
	return out, nil
}

// UpsertEmployeeMapping overwrites every slot of the row, so nil slots are cleared.
func (r *PgxEmployeeMappingRepository) UpsertEmployeeMapping(ctx context.Context, upsert domain.EmployeeMappingUpsert) (*domain.EmployeeMapping, error) {
	query := `
		WITH em AS (
			INSERT INTO employee_mappings (workspace_id, source_employee_id, destination_employee_id, destination_vendor_id, destination_card_account_id, manual_mapping, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now(), now())
			ON CONFLICT (workspace_id, source_employee_id) DO UPDATE SET
				destination_employee_id = EXCLUDED.destination_employee_id,
				destination_vendor_id = EXCLUDED.destination_vendor_id,
				destination_card_account_id = EXCLUDED.destination_card_account_id,
				manual_mapping = EXCLUDED.manual_mapping,
				updated_at = EXCLUDED.updated_at
			RETURNING ` + columns("", employeeMappingCols) + `
		)
		SELECT ` + columns("em", employeeMappingCols) + `, ` + columns("ea", expenseAttributeCols) + `
		FROM em
		JOIN expense_attributes ea ON ea.id = em.source_employee_id;`

	m := mapping.ToModelEmployeeMapping(upsert)
	var saved domain.EmployeeMapping
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		f, err := scanEmployeeMappingRow(tx.QueryRow(ctx, query,
			m.WorkspaceID,
			m.SourceEmployeeID,
			m.DestinationEmployeeID,
			m.DestinationVendorID,
			m.DestinationCardAccountID,
			m.ManualMapping,
		))
		if err != nil {
			return translateError(err, "upsert employee mapping")
		}
		lookup, err := loadDestinations(ctx, tx, m.WorkspaceID,
			mapping.SlotIDs(f.row.DestinationEmployeeID, f.row.DestinationVendorID, f.row.DestinationCardAccountID))
		if err != nil {
			return err
		}
		saved = mapping.ToDomainEmployeeMapping(f.row, f.src, lookup)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// loadDestinations fetches the destination attributes referenced by mapping slots.
func loadDestinations(ctx context.Context, q querier, workspaceID int64, ids []int64) (mapping.DestinationLookup, error) {
	lookup := make(mapping.DestinationLookup, len(ids))
	if len(ids) == 0 {
		return lookup, nil
	}
	query := `SELECT ` + columns("", destinationAttributeCols) + `
		FROM destination_attributes
		WHERE workspace_id = $1 AND id = ANY($2);`

	rows, err := q.Query(ctx, query, workspaceID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination attributes: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DestinationAttribute, error) {
		var m models.DestinationAttribute
		err := row.Scan(destinationAttributeTargets(&m)...)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan destination attributes: %w", err)
	}
	for _, m := range ms {
		lookup[m.ID] = m
	}
	return lookup, nil
}
