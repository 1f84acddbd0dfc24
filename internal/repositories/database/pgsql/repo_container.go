package pgsql

import (
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SourceAttributeRepo:      newPgxSourceAttributeRepository(dbPool),
		DestinationAttributeRepo: newPgxDestinationAttributeRepository(dbPool),
		ExpenseFieldRepo:         newPgxExpenseFieldRepository(dbPool),
		MappingSettingRepo:       newPgxMappingSettingRepository(dbPool),
		MappingRepo:              newPgxMappingRepository(dbPool),
		EmployeeMappingRepo:      newPgxEmployeeMappingRepository(dbPool),
		CategoryMappingRepo:      newPgxCategoryMappingRepository(dbPool),
		StatsRepo:                newPgxStatsRepository(dbPool),
	}
}
