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

type categoryMappingRow struct {
	row models.CategoryMapping
	src models.ExpenseAttribute
}

type PgxCategoryMappingRepository struct {
	BaseRepository
}

// newPgxCategoryMappingRepository creates a new repository for category mappings.
func newPgxCategoryMappingRepository(pool *pgxpool.Pool) portsrepo.CategoryMappingRepositoryFacade {
	return &PgxCategoryMappingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryMappingRepositoryFacade = (*PgxCategoryMappingRepository)(nil)

func scanCategoryMappingRow(row pgx.Row) (categoryMappingRow, error) {
	var r categoryMappingRow
	targets := append(categoryMappingTargets(&r.row), expenseAttributeTargets(&r.src)...)
	err := row.Scan(targets...)
	return r, err
}

func (r *PgxCategoryMappingRepository) ListCategoryMappings(ctx context.Context, workspaceID int64) ([]domain.CategoryMapping, error) {
	query := `SELECT ` + columns("cm", categoryMappingCols) + `, ` + columns("ea", expenseAttributeCols) + `
		FROM category_mappings cm
		JOIN expense_attributes ea ON ea.id = cm.source_category_id
		WHERE cm.workspace_id = $1
		ORDER BY ea.value COLLATE "C", cm.id;`

	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category mappings for workspace %d: %w", workspaceID, err)
	}
	found, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (categoryMappingRow, error) {
		return scanCategoryMappingRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan category mappings: %w", err)
	}

	var ids []int64
	for _, f := range found {
		ids = append(ids, mapping.SlotIDs(f.row.DestinationAccountID, f.row.DestinationExpenseHeadID)...)
	}
	lookup, err := loadDestinations(ctx, r.Pool, workspaceID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CategoryMapping, len(found))
	for i, f := range found {
		out[i] = mapping.ToDomainCategoryMapping(f.row, f.src, lookup)
	}
	return out, nil
}

// UpsertCategoryMapping overwrites both slots of the row, so nil slots are cleared.
func (r *PgxCategoryMappingRepository) UpsertCategoryMapping(ctx context.Context, upsert domain.CategoryMappingUpsert) (*domain.CategoryMapping, error) {
	query := `
		WITH cm AS (
			INSERT INTO category_mappings (workspace_id, source_category_id, destination_account_id, destination_expense_head_id, manual_mapping, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
			ON CONFLICT (workspace_id, source_category_id) DO UPDATE SET
				destination_account_id = EXCLUDED.destination_account_id,
				destination_expense_head_id = EXCLUDED.destination_expense_head_id,
				manual_mapping = EXCLUDED.manual_mapping,
				updated_at = EXCLUDED.updated_at
			RETURNING ` + columns("", categoryMappingCols) + `
		)
		SELECT ` + columns("cm", categoryMappingCols) + `, ` + columns("ea", expenseAttributeCols) + `
		FROM cm
		JOIN expense_attributes ea ON ea.id = cm.source_category_id;`

	m := mapping.ToModelCategoryMapping(upsert)
	var saved domain.CategoryMapping
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		f, err := scanCategoryMappingRow(tx.QueryRow(ctx, query,
			m.WorkspaceID,
			m.SourceCategoryID,
			m.DestinationAccountID,
			m.DestinationExpenseHeadID,
			m.ManualMapping,
		))
		if err != nil {
			return translateError(err, "upsert category mapping")
		}
		lookup, err := loadDestinations(ctx, tx, m.WorkspaceID,
			mapping.SlotIDs(f.row.DestinationAccountID, f.row.DestinationExpenseHeadID))
		if err != nil {
			return err
		}
		saved = mapping.ToDomainCategoryMapping(f.row, f.src, lookup)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
