package services

import (
	portsrepo "github.com/SscSPs/accounting_mappings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	destinationValidator := NewDestinationValidator(repos.DestinationAttributeRepo)

	return &portssvc.ServiceContainer{
		MappingSetting:  NewMappingSettingService(repos.MappingSettingRepo, repos.ExpenseFieldRepo),
		ExpenseField:    NewExpenseFieldService(repos.ExpenseFieldRepo),
		Mapping:         NewMappingService(repos.MappingRepo, repos.SourceAttributeRepo, repos.DestinationAttributeRepo),
		EmployeeMapping: NewEmployeeMappingService(repos.EmployeeMappingRepo, repos.SourceAttributeRepo, destinationValidator),
		CategoryMapping: NewCategoryMappingService(repos.CategoryMappingRepo, repos.SourceAttributeRepo, destinationValidator),
		Attribute: NewAttributeService(repos.SourceAttributeRepo, repos.DestinationAttributeRepo,
			WithPageSizes(cfg.SearchPageSize, cfg.SearchMaxPageSize)),
		Stats: NewStatsService(repos.StatsRepo),
	}
}
