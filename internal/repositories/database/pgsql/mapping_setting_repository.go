package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	"github.com/SscSPs/accounting_mappings/internal/models"
	"github.com/SscSPs/accounting_mappings/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const mappingSettingColumns = `id, workspace_id, source_field, destination_field, expense_field_id, is_custom, import_to_fyle, created_at, updated_at`

func scanMappingSetting(row pgx.Row, m *models.MappingSetting) error {
	return row.Scan(&m.ID, &m.WorkspaceID, &m.SourceField, &m.DestinationField, &m.ExpenseFieldID,
		&m.IsCustom, &m.ImportToFyle, &m.CreatedAt, &m.UpdatedAt)
}

type PgxMappingSettingRepository struct {
	BaseRepository
}

// newPgxMappingSettingRepository creates a new repository for mapping settings.
func newPgxMappingSettingRepository(pool *pgxpool.Pool) portsrepo.MappingSettingRepositoryFacade {
	return &PgxMappingSettingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MappingSettingRepositoryFacade = (*PgxMappingSettingRepository)(nil)

func (r *PgxMappingSettingRepository) ListMappingSettings(ctx context.Context, workspaceID int64) ([]domain.MappingSetting, error) {
	query := `SELECT ` + mappingSettingColumns + `
		FROM mapping_settings
		WHERE workspace_id = $1
		ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mapping settings for workspace %d: %w", workspaceID, err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MappingSetting, error) {
		var m models.MappingSetting
		err := scanMappingSetting(row, &m)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan mapping settings: %w", err)
	}
	return mapping.ToDomainMappingSettingSlice(ms), nil
}

// UpsertMappingSettings writes the batch atomically. The expense_field_id foreign key
// is scoped to the workspace, so a field of another workspace reads as not found.
func (r *PgxMappingSettingRepository) UpsertMappingSettings(ctx context.Context, workspaceID int64, settings []domain.MappingSetting) ([]domain.MappingSetting, error) {
	seen := make(map[domain.MappingSettingKey]bool, len(settings))
	for _, s := range settings {
		if seen[s.Key()] {
			return nil, apperrors.NewConflictError(fmt.Sprintf("duplicate mapping setting %s -> %s in batch", s.SourceField, s.DestinationField))
		}
		seen[s.Key()] = true
	}

	query := `
		INSERT INTO mapping_settings (workspace_id, source_field, destination_field, expense_field_id, is_custom, import_to_fyle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (workspace_id, source_field, destination_field) DO UPDATE SET
			expense_field_id = EXCLUDED.expense_field_id,
			is_custom = EXCLUDED.is_custom,
			import_to_fyle = EXCLUDED.import_to_fyle,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + mappingSettingColumns + `;`

	batch := &pgx.Batch{}
	for _, s := range settings {
		m := mapping.ToModelMappingSetting(s)
		batch.Queue(query, workspaceID, m.SourceField, m.DestinationField, m.ExpenseFieldID, m.IsCustom, m.ImportToFyle)
	}

	saved := make([]models.MappingSetting, len(settings))
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		return sendBatch(ctx, tx, batch, "upsert mapping setting", func(i int, row pgx.Row) error {
			return scanMappingSetting(row, &saved[i])
		})
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainMappingSettingSlice(saved), nil
}

const expenseFieldColumns = `id, workspace_id, attribute_type, source_field_id, is_enabled, created_at, updated_at`

func scanExpenseField(row pgx.Row, m *models.ExpenseField) error {
	return row.Scan(&m.ID, &m.WorkspaceID, &m.AttributeType, &m.SourceFieldID, &m.IsEnabled, &m.CreatedAt, &m.UpdatedAt)
}

type PgxExpenseFieldRepository struct {
	BaseRepository
}

// newPgxExpenseFieldRepository creates a new repository for expense field descriptors.
func newPgxExpenseFieldRepository(pool *pgxpool.Pool) portsrepo.ExpenseFieldRepositoryFacade {
	return &PgxExpenseFieldRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseFieldRepositoryFacade = (*PgxExpenseFieldRepository)(nil)

func (r *PgxExpenseFieldRepository) FindExpenseFieldByID(ctx context.Context, workspaceID, id int64) (*domain.ExpenseField, error) {
	query := `SELECT ` + expenseFieldColumns + `
		FROM expense_fields
		WHERE workspace_id = $1 AND id = $2;`

	var m models.ExpenseField
	if err := scanExpenseField(r.Pool.QueryRow(ctx, query, workspaceID, id), &m); err != nil {
		return nil, translateError(err, "find expense field")
	}
	d := mapping.ToDomainExpenseField(m)
	return &d, nil
}

func (r *PgxExpenseFieldRepository) ListExpenseFields(ctx context.Context, workspaceID int64) ([]domain.ExpenseField, error) {
	query := `SELECT ` + expenseFieldColumns + `
		FROM expense_fields
		WHERE workspace_id = $1
		ORDER BY attribute_type;`

	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense fields for workspace %d: %w", workspaceID, err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExpenseField, error) {
		var m models.ExpenseField
		err := scanExpenseField(row, &m)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense fields: %w", err)
	}
	return mapping.ToDomainExpenseFieldSlice(ms), nil
}

func (r *PgxExpenseFieldRepository) UpsertExpenseFields(ctx context.Context, workspaceID int64, fields []domain.ExpenseField) ([]domain.ExpenseField, error) {
	query := `
		INSERT INTO expense_fields (workspace_id, attribute_type, source_field_id, is_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (workspace_id, attribute_type) DO UPDATE SET
			source_field_id = EXCLUDED.source_field_id,
			is_enabled = EXCLUDED.is_enabled,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + expenseFieldColumns + `;`

	batch := &pgx.Batch{}
	for _, f := range fields {
		m := mapping.ToModelExpenseField(f)
		batch.Queue(query, workspaceID, m.AttributeType, m.SourceFieldID, m.IsEnabled)
	}

	saved := make([]models.ExpenseField, len(fields))
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		return sendBatch(ctx, tx, batch, "upsert expense field", func(i int, row pgx.Row) error {
			return scanExpenseField(row, &saved[i])
		})
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainExpenseFieldSlice(saved), nil
}
