package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	"github.com/SscSPs/accounting_mappings/internal/models"
	"github.com/SscSPs/accounting_mappings/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSourceAttributeRepository struct {
	BaseRepository
}

// newPgxSourceAttributeRepository creates a new repository for expense attributes.
func newPgxSourceAttributeRepository(pool *pgxpool.Pool) portsrepo.SourceAttributeRepositoryFacade {
	return &PgxSourceAttributeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SourceAttributeRepositoryFacade = (*PgxSourceAttributeRepository)(nil)

func (r *PgxSourceAttributeRepository) FindSourceAttributeByID(ctx context.Context, workspaceID, id int64) (*domain.SourceAttribute, error) {
	query := `SELECT ` + columns("", expenseAttributeCols) + `
		FROM expense_attributes
		WHERE workspace_id = $1 AND id = $2;`
	return r.findOne(ctx, "find expense attribute by id", query, workspaceID, id)
}

func (r *PgxSourceAttributeRepository) FindSourceAttributeByValue(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, value string) (*domain.SourceAttribute, error) {
	query := `SELECT ` + columns("", expenseAttributeCols) + `
		FROM expense_attributes
		WHERE workspace_id = $1 AND attribute_type = $2 AND value = $3;`
	return r.findOne(ctx, "find expense attribute by value", query, workspaceID, string(attributeType), value)
}

func (r *PgxSourceAttributeRepository) findOne(ctx context.Context, action, query string, args ...any) (*domain.SourceAttribute, error) {
	var m models.ExpenseAttribute
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(expenseAttributeTargets(&m)...); err != nil {
		return nil, translateError(err, action)
	}
	d := mapping.ToDomainSourceAttribute(m)
	return &d, nil
}

// SearchSourceAttributes pages through attributes in (value, id) byte order.
func (r *PgxSourceAttributeRepository) SearchSourceAttributes(ctx context.Context, spec domain.AttributeSearchSpec) ([]domain.SourceAttribute, error) {
	query, args := searchSourceAttributesQuery(spec)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search expense attributes: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExpenseAttribute, error) {
		var m models.ExpenseAttribute
		err := row.Scan(expenseAttributeTargets(&m)...)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense attributes: %w", err)
	}
	return mapping.ToDomainSourceAttributeSlice(ms), nil
}

// searchSourceAttributesQuery builds one keyset page ordered by value then id.
func searchSourceAttributesQuery(spec domain.AttributeSearchSpec) (string, []any) {
	var c conditions
	c.add("ea.workspace_id = " + c.arg(spec.WorkspaceID))
	c.add("ea.attribute_type = " + c.arg(string(spec.SourceType)))
	if pred := activePredicate("ea.active", spec.Active); pred != "" {
		c.add(pred)
	}
	if len(spec.Buckets) > 0 {
		buckets := make([]string, len(spec.Buckets))
		for i, b := range spec.Buckets {
			buckets[i] = string(b)
		}
		c.add("upper(left(ea.value, 1)) = ANY(" + c.arg(buckets) + ")")
	}
	switch spec.Mapped {
	case domain.MappedOnly:
		c.add(mappedPredicate(&c, spec.Relation, spec.DestinationType))
	case domain.UnmappedOnly:
		c.add("NOT " + mappedPredicate(&c, spec.Relation, spec.DestinationType))
	}
	if spec.After != nil {
		c.add(`(ea.value COLLATE "C", ea.id) > (` + c.arg(spec.After.Value) + `, ` + c.arg(spec.After.ID) + `)`)
	}

	query := `SELECT ` + columns("ea", expenseAttributeCols) + `
		FROM expense_attributes ea
		WHERE ` + c.String() + `
		ORDER BY ea.value COLLATE "C", ea.id`
	if spec.Limit > 0 {
		query += ` LIMIT ` + c.arg(spec.Limit)
	}
	return query, c.args
}

// UpsertSourceAttributes writes every attribute in one transaction. auto_mapped is
// only set on insert.
func (r *PgxSourceAttributeRepository) UpsertSourceAttributes(ctx context.Context, workspaceID int64, attributes []domain.SourceAttribute) ([]domain.SourceAttribute, error) {
	query := `
		INSERT INTO expense_attributes (workspace_id, attribute_type, display_name, value, source_id, detail, active, auto_mapped, auto_created, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT (workspace_id, attribute_type, value) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			source_id = EXCLUDED.source_id,
			detail = EXCLUDED.detail,
			active = EXCLUDED.active,
			auto_created = EXCLUDED.auto_created,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + columns("", expenseAttributeCols) + `;`

	batch := &pgx.Batch{}
	for _, a := range attributes {
		m := mapping.ToModelExpenseAttribute(a)
		batch.Queue(query, workspaceID, m.AttributeType, m.DisplayName, m.Value, m.SourceID, m.Detail, m.Active, m.AutoMapped, m.AutoCreated)
	}

	saved := make([]models.ExpenseAttribute, len(attributes))
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		return sendBatch(ctx, tx, batch, "upsert expense attribute", func(i int, row pgx.Row) error {
			return row.Scan(expenseAttributeTargets(&saved[i])...)
		})
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSourceAttributeSlice(saved), nil
}

type PgxDestinationAttributeRepository struct {
	BaseRepository
}

// newPgxDestinationAttributeRepository creates a new repository for destination attributes.
func newPgxDestinationAttributeRepository(pool *pgxpool.Pool) portsrepo.DestinationAttributeRepositoryFacade {
	return &PgxDestinationAttributeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DestinationAttributeRepositoryFacade = (*PgxDestinationAttributeRepository)(nil)

func (r *PgxDestinationAttributeRepository) FindDestinationAttributeByID(ctx context.Context, workspaceID, id int64) (*domain.DestinationAttribute, error) {
	query := `SELECT ` + columns("", destinationAttributeCols) + `
		FROM destination_attributes
		WHERE workspace_id = $1 AND id = $2;`
	return r.findOne(ctx, "find destination attribute by id", query, workspaceID, id)
}

// FindDestinationAttributeByValue returns the oldest attribute when several share a value.
func (r *PgxDestinationAttributeRepository) FindDestinationAttributeByValue(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, value string) (*domain.DestinationAttribute, error) {
	query := `SELECT ` + columns("", destinationAttributeCols) + `
		FROM destination_attributes
		WHERE workspace_id = $1 AND attribute_type = $2 AND value = $3
		ORDER BY id
		LIMIT 1;`
	return r.findOne(ctx, "find destination attribute by value", query, workspaceID, string(attributeType), value)
}

func (r *PgxDestinationAttributeRepository) FindDestinationAttributeByDestinationID(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, destinationID string) (*domain.DestinationAttribute, error) {
	query := `SELECT ` + columns("", destinationAttributeCols) + `
		FROM destination_attributes
		WHERE workspace_id = $1 AND attribute_type = $2 AND destination_id = $3;`
	return r.findOne(ctx, "find destination attribute by destination id", query, workspaceID, string(attributeType), destinationID)
}

func (r *PgxDestinationAttributeRepository) findOne(ctx context.Context, action, query string, args ...any) (*domain.DestinationAttribute, error) {
	var m models.DestinationAttribute
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(destinationAttributeTargets(&m)...); err != nil {
		return nil, translateError(err, action)
	}
	d := mapping.ToDomainDestinationAttribute(m)
	return &d, nil
}

func (r *PgxDestinationAttributeRepository) SearchDestinationAttributes(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, contains string) ([]domain.DestinationAttribute, error) {
	query := `SELECT ` + columns("", destinationAttributeCols) + `
		FROM destination_attributes
		WHERE workspace_id = $1 AND attribute_type = $2 AND value ILIKE $3
		ORDER BY value COLLATE "C", id;`

	rows, err := r.Pool.Query(ctx, query, workspaceID, string(attributeType), likeContains(contains))
	if err != nil {
		return nil, fmt.Errorf("failed to search destination attributes: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DestinationAttribute, error) {
		var m models.DestinationAttribute
		err := row.Scan(destinationAttributeTargets(&m)...)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan destination attributes: %w", err)
	}
	return mapping.ToDomainDestinationAttributeSlice(ms), nil
}

func (r *PgxDestinationAttributeRepository) UpsertDestinationAttributes(ctx context.Context, workspaceID int64, attributes []domain.DestinationAttribute) ([]domain.DestinationAttribute, error) {
	query := `
		INSERT INTO destination_attributes (workspace_id, attribute_type, display_name, value, destination_id, detail, active, auto_created, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		ON CONFLICT (workspace_id, attribute_type, destination_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			value = EXCLUDED.value,
			detail = EXCLUDED.detail,
			active = EXCLUDED.active,
			auto_created = EXCLUDED.auto_created,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + columns("", destinationAttributeCols) + `;`

	batch := &pgx.Batch{}
	for _, a := range attributes {
		m := mapping.ToModelDestinationAttribute(a)
		batch.Queue(query, workspaceID, m.AttributeType, m.DisplayName, m.Value, m.DestinationID, m.Detail, m.Active, m.AutoCreated)
	}

	saved := make([]models.DestinationAttribute, len(attributes))
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		return sendBatch(ctx, tx, batch, "upsert destination attribute", func(i int, row pgx.Row) error {
			return row.Scan(destinationAttributeTargets(&saved[i])...)
		})
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainDestinationAttributeSlice(saved), nil
}

// sendBatch runs batch on tx and hands each queued statement's row to scan in order.
// The batch is closed before returning so the transaction can commit.
func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, action string, scan func(i int, row pgx.Row) error) error {
	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if err := scan(i, br.QueryRow()); err != nil {
			_ = br.Close()
			return translateError(err, fmt.Sprintf("%s #%d", action, i))
		}
	}
	if err := br.Close(); err != nil {
		return translateError(err, action)
	}
	return nil
}

// activePredicate renders the SQL for f against column, or "" for ActiveAny.
func activePredicate(column string, f domain.ActiveFilter) string {
	switch f {
	case domain.ActiveOnly:
		return column + " = TRUE"
	case domain.InactiveOnly:
		return column + " = FALSE"
	default:
		return ""
	}
}

// employeeSlotPredicate tests that the slot holding destinationType is set on the
// employee_mappings row alias. An empty destinationType accepts any filled slot.
func employeeSlotPredicate(alias string, destinationType domain.AttributeType) string {
	slots := []domain.EmployeeSlot{domain.SlotEmployee, domain.SlotVendor, domain.SlotCardAccount}
	if destinationType != "" {
		slots = []domain.EmployeeSlot{domain.EmployeeSlotFor(destinationType)}
	}
	tests := make([]string, len(slots))
	for i, slot := range slots {
		tests[i] = alias + "." + string(slot) + "_id IS NOT NULL"
	}
	return "(" + strings.Join(tests, " OR ") + ")"
}

// mappedPredicate renders an EXISTS test for the expense attribute aliased ea.
// An empty destinationType matches any mapping of the relation.
func mappedPredicate(c *conditions, relation domain.MappingRelation, destinationType domain.AttributeType) string {
	if relation == domain.RelationEmployeeMapping {
		return `EXISTS (SELECT 1 FROM employee_mappings em
			WHERE em.workspace_id = ea.workspace_id AND em.source_employee_id = ea.id
			AND ` + employeeSlotPredicate("em", destinationType) + `)`
	}

	pred := `EXISTS (SELECT 1 FROM mappings m
			WHERE m.workspace_id = ea.workspace_id AND m.source_id = ea.id`
	if destinationType != "" {
		pred += ` AND m.destination_type = ` + c.arg(string(destinationType))
	}
	return pred + `)`
}
