package pgsql

import (
	"strconv"
	"strings"

	"github.com/SscSPs/accounting_mappings/internal/models"
)

var (
	expenseAttributeCols = []string{
		"id", "workspace_id", "attribute_type", "display_name", "value", "source_id",
		"detail", "active", "auto_mapped", "auto_created", "created_at", "updated_at",
	}
	destinationAttributeCols = []string{
		"id", "workspace_id", "attribute_type", "display_name", "value", "destination_id",
		"detail", "active", "auto_created", "created_at", "updated_at",
	}
	mappingCols = []string{
		"id", "workspace_id", "source_type", "destination_type", "source_id", "destination_id",
		"created_at", "updated_at",
	}
	employeeMappingCols = []string{
		"id", "workspace_id", "source_employee_id", "destination_employee_id", "destination_vendor_id",
		"destination_card_account_id", "manual_mapping", "created_at", "updated_at",
	}
	categoryMappingCols = []string{
		"id", "workspace_id", "source_category_id", "destination_account_id",
		"destination_expense_head_id", "manual_mapping", "created_at", "updated_at",
	}
)

// columns renders cols qualified by alias, or bare when alias is empty.
func columns(alias string, cols []string) string {
	if alias == "" {
		return strings.Join(cols, ", ")
	}
	qualified := make([]string, len(cols))
	for i, c := range cols {
		qualified[i] = alias + "." + c
	}
	return strings.Join(qualified, ", ")
}

func expenseAttributeTargets(m *models.ExpenseAttribute) []any {
	return []any{
		&m.ID, &m.WorkspaceID, &m.AttributeType, &m.DisplayName, &m.Value, &m.SourceID,
		&m.Detail, &m.Active, &m.AutoMapped, &m.AutoCreated, &m.CreatedAt, &m.UpdatedAt,
	}
}

func destinationAttributeTargets(m *models.DestinationAttribute) []any {
	return []any{
		&m.ID, &m.WorkspaceID, &m.AttributeType, &m.DisplayName, &m.Value, &m.DestinationID,
		&m.Detail, &m.Active, &m.AutoCreated, &m.CreatedAt, &m.UpdatedAt,
	}
}

func mappingTargets(m *models.Mapping) []any {
	return []any{
		&m.ID, &m.WorkspaceID, &m.SourceType, &m.DestinationType, &m.SourceID, &m.DestinationID,
		&m.CreatedAt, &m.UpdatedAt,
	}
}

func employeeMappingTargets(m *models.EmployeeMapping) []any {
	return []any{
		&m.ID, &m.WorkspaceID, &m.SourceEmployeeID, &m.DestinationEmployeeID, &m.DestinationVendorID,
		&m.DestinationCardAccountID, &m.ManualMapping, &m.CreatedAt, &m.UpdatedAt,
	}
}

func categoryMappingTargets(m *models.CategoryMapping) []any {
	return []any{
		&m.ID, &m.WorkspaceID, &m.SourceCategoryID, &m.DestinationAccountID,
		&m.DestinationExpenseHeadID, &m.ManualMapping, &m.CreatedAt, &m.UpdatedAt,
	}
}

// conditions accumulates AND-ed predicates with positional arguments.
type conditions struct {
	preds []string
	args  []any
}

// arg registers v and returns its placeholder.
func (c *conditions) arg(v any) string {
	c.args = append(c.args, v)
	return "$" + strconv.Itoa(len(c.args))
}

func (c *conditions) add(pred string) {
	c.preds = append(c.preds, pred)
}

func (c *conditions) String() string {
	if len(c.preds) == 0 {
		return "TRUE"
	}
	return strings.Join(c.preds, " AND ")
}

// likeContains builds an ILIKE pattern matching s anywhere, escaping wildcards.
func likeContains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
