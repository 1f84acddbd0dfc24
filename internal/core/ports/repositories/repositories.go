package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SourceAttributeRepo      SourceAttributeRepositoryFacade
	DestinationAttributeRepo DestinationAttributeRepositoryFacade
	ExpenseFieldRepo         ExpenseFieldRepositoryFacade
	MappingSettingRepo       MappingSettingRepositoryFacade
	MappingRepo              MappingRepositoryFacade
	EmployeeMappingRepo      EmployeeMappingRepositoryFacade
	CategoryMappingRepo      CategoryMappingRepositoryFacade
	StatsRepo                MappingStatsReader
}
