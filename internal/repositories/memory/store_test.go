package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	"github.com/SscSPs/accounting_mappings/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

const ws int64 = 1

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	clock time.Time
}

func (suite *StoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.clock = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	// A frozen clock checks that timestamps still advance
	suite.store = memory.NewStore(memory.WithClock(func() time.Time { return suite.clock }))
}

func (suite *StoreTestSuite) sources(t domain.AttributeType, values ...string) []domain.SourceAttribute {
	in := make([]domain.SourceAttribute, len(values))
	for i, v := range values {
		in[i] = domain.SourceAttribute{AttributeType: t, Value: v, SourceID: "src-" + v, Active: true}
	}
	out, err := suite.store.UpsertSourceAttributes(suite.ctx, ws, in)
	suite.Require().NoError(err)
	return out
}

func (suite *StoreTestSuite) destination(t domain.AttributeType, value, destinationID string) domain.DestinationAttribute {
	out, err := suite.store.UpsertDestinationAttributes(suite.ctx, ws, []domain.DestinationAttribute{
		{AttributeType: t, Value: value, DestinationID: destinationID, Active: true},
	})
	suite.Require().NoError(err)
	return out[0]
}

func (suite *StoreTestSuite) TestUpsertSourceAttributes_PreservesIdentity() {
	first := suite.sources(domain.AttributeProject, "Alpha")[0]

	// auto_mapped is owned by the store once the row exists
	again, err := suite.store.UpsertSourceAttributes(suite.ctx, ws, []domain.SourceAttribute{
		{AttributeType: domain.AttributeProject, Value: "Alpha", SourceID: "new-id", Active: false, AutoMapped: true},
	})
	suite.Require().NoError(err)
	suite.Equal(first.ID, again[0].ID)
	suite.Equal(first.CreatedAt, again[0].CreatedAt)
	suite.True(again[0].UpdatedAt.After(first.UpdatedAt))
	suite.False(again[0].AutoMapped)
	suite.Equal("new-id", again[0].SourceID)

	_, err = suite.store.FindSourceAttributeByID(suite.ctx, ws+1, first.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound, "lookups are scoped by workspace")
}

func (suite *StoreTestSuite) TestSearchSourceAttributes_BucketsAndPages() {
	suite.sources(domain.AttributeProject, "beta", "Alpha", "Bravo", "1st", "Charlie")

	page, err := suite.store.SearchSourceAttributes(suite.ctx, domain.AttributeSearchSpec{
		WorkspaceID: ws,
		SourceType:  domain.AttributeProject,
		Buckets:     []rune{'A', 'B'},
		Limit:       2,
	})
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Equal("Alpha", page[0].Value)
	suite.Equal("Bravo", page[1].Value)

	next, err := suite.store.SearchSourceAttributes(suite.ctx, domain.AttributeSearchSpec{
		WorkspaceID: ws,
		SourceType:  domain.AttributeProject,
		Buckets:     []rune{'A', 'B'},
		Limit:       2,
		After:       &domain.AttributeCursor{Value: page[1].Value, ID: page[1].ID},
	})
	suite.Require().NoError(err)
	suite.Require().Len(next, 1)
	suite.Equal("beta", next[0].Value, "byte order puts lower case after upper case")
}

func (suite *StoreTestSuite) TestSearchSourceAttributes_MappedPartition() {
	srcs := suite.sources(domain.AttributeProject, "Alpha", "Beta", "Gamma")
	dst := suite.destination(domain.AttributeCustomer, "Acme", "C1")
	_, err := suite.store.UpsertMapping(suite.ctx, domain.MappingUpsert{
		WorkspaceID: ws, SourceType: domain.AttributeProject, DestinationType: domain.AttributeCustomer,
		SourceID: srcs[1].ID, DestinationID: dst.ID,
	})
	suite.Require().NoError(err)

	search := func(state domain.MappedState) []string {
		out, err := suite.store.SearchSourceAttributes(suite.ctx, domain.AttributeSearchSpec{
			WorkspaceID: ws, SourceType: domain.AttributeProject, DestinationType: domain.AttributeCustomer, Mapped: state,
		})
		suite.Require().NoError(err)
		values := make([]string, len(out))
		for i, a := range out {
			values[i] = a.Value
		}
		return values
	}
	suite.Equal([]string{"Beta"}, search(domain.MappedOnly))
	suite.Equal([]string{"Alpha", "Gamma"}, search(domain.UnmappedOnly))
	suite.Equal([]string{"Alpha", "Beta", "Gamma"}, search(domain.MappedAny))
}

func (suite *StoreTestSuite) TestUpsertMapping_LastWriterWins() {
	src := suite.sources(domain.AttributeProject, "Alpha")[0]
	d1 := suite.destination(domain.AttributeCustomer, "Acme", "C1")
	d2 := suite.destination(domain.AttributeCustomer, "Globex", "C2")

	upsert := domain.MappingUpsert{WorkspaceID: ws, SourceType: domain.AttributeProject, DestinationType: domain.AttributeCustomer, SourceID: src.ID, DestinationID: d1.ID}
	first, err := suite.store.UpsertMapping(suite.ctx, upsert)
	suite.Require().NoError(err)
	upsert.DestinationID = d2.ID
	second, err := suite.store.UpsertMapping(suite.ctx, upsert)
	suite.Require().NoError(err)

	suite.Equal(first.ID, second.ID)
	suite.Equal("Globex", second.Destination.Value)

	rows, err := suite.store.ListMappings(suite.ctx, domain.MappingListSpec{WorkspaceID: ws, SourceType: domain.AttributeProject, Dimension: domain.TwoColumn})
	suite.Require().NoError(err)
	suite.Len(rows, 1)

	upsert.DestinationID = 9999
	_, err = suite.store.UpsertMapping(suite.ctx, upsert)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestListMappings_ThreeColumn() {
	srcs := suite.sources(domain.AttributeProject, "Alpha", "Beta")
	customer := suite.destination(domain.AttributeCustomer, "Acme", "C1")
	class := suite.destination(domain.AttributeClass, "Retail", "K1")

	for _, u := range []domain.MappingUpsert{
		{SourceID: srcs[0].ID, DestinationType: domain.AttributeCustomer, DestinationID: customer.ID},
		{SourceID: srcs[0].ID, DestinationType: domain.AttributeClass, DestinationID: class.ID},
		{SourceID: srcs[1].ID, DestinationType: domain.AttributeCustomer, DestinationID: customer.ID},
	} {
		u.WorkspaceID = ws
		u.SourceType = domain.AttributeProject
		_, err := suite.store.UpsertMapping(suite.ctx, u)
		suite.Require().NoError(err)
	}

	rows, err := suite.store.ListMappings(suite.ctx, domain.MappingListSpec{WorkspaceID: ws, SourceType: domain.AttributeProject, Dimension: domain.ThreeColumn})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	for _, r := range rows {
		suite.Equal("Alpha", r.Source.Value)
	}

	rows, err = suite.store.ListMappings(suite.ctx, domain.MappingListSpec{WorkspaceID: ws, SourceType: domain.AttributeProject, DestinationType: domain.AttributeCustomer, Dimension: domain.TwoColumn})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Alpha", rows[0].Source.Value)
	suite.Equal("Beta", rows[1].Source.Value)
}

func (suite *StoreTestSuite) TestUpsertEmployeeMapping_ClearsNilSlots() {
	emp := suite.sources(domain.AttributeEmployee, "ashwin@example.com")[0]
	vendor := suite.destination(domain.AttributeVendor, "Ashwin Co", "V1")
	employee := suite.destination(domain.AttributeEmployee, "Ashwin", "E1")

	first, err := suite.store.UpsertEmployeeMapping(suite.ctx, domain.EmployeeMappingUpsert{
		WorkspaceID: ws, SourceEmployeeID: emp.ID, DestinationVendorID: &vendor.ID, DestinationEmployeeID: &employee.ID,
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(first.DestinationVendor)

	second, err := suite.store.UpsertEmployeeMapping(suite.ctx, domain.EmployeeMappingUpsert{
		WorkspaceID: ws, SourceEmployeeID: emp.ID, DestinationEmployeeID: &employee.ID,
	})
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)
	suite.Nil(second.DestinationVendor)
	suite.Require().NotNil(second.DestinationEmployee)
	suite.Equal("Ashwin", second.DestinationEmployee.Value)

	missing := int64(4242)
	_, err = suite.store.UpsertEmployeeMapping(suite.ctx, domain.EmployeeMappingUpsert{
		WorkspaceID: ws, SourceEmployeeID: emp.ID, DestinationVendorID: &missing,
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	list, err := suite.store.ListEmployeeMappings(suite.ctx, ws)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.NotNil(list[0].DestinationEmployee, "a failed upsert leaves the row untouched")
}

func (suite *StoreTestSuite) TestUpsertMappingSettings_PreservesCreatedAt() {
	batch := []domain.MappingSetting{
		{SourceField: domain.AttributeProject, DestinationField: domain.AttributeCustomer},
		{SourceField: domain.AttributeCostCenter, DestinationField: domain.AttributeClass},
	}
	first, err := suite.store.UpsertMappingSettings(suite.ctx, ws, batch)
	suite.Require().NoError(err)
	second, err := suite.store.UpsertMappingSettings(suite.ctx, ws, batch)
	suite.Require().NoError(err)

	for i := range batch {
		suite.Equal(first[i].ID, second[i].ID)
		suite.Equal(first[i].CreatedAt, second[i].CreatedAt)
		suite.True(second[i].UpdatedAt.After(first[i].UpdatedAt))
	}
	all, err := suite.store.ListMappingSettings(suite.ctx, ws)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	_, err = suite.store.UpsertMappingSettings(suite.ctx, ws, append(batch, batch[0]))
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *StoreTestSuite) TestCountSourceAttributes() {
	srcs := suite.sources(domain.AttributeCategory, "Activity", "Food", "Travel")
	_, err := suite.store.UpsertSourceAttributes(suite.ctx, ws, []domain.SourceAttribute{
		{AttributeType: domain.AttributeCategory, Value: "Travel", SourceID: "src-Travel", Active: false},
	})
	suite.Require().NoError(err)
	account := suite.destination(domain.AttributeAccount, "Meals", "A1")
	_, err = suite.store.UpsertMapping(suite.ctx, domain.MappingUpsert{
		WorkspaceID: ws, SourceType: domain.AttributeCategory, DestinationType: domain.AttributeAccount,
		SourceID: srcs[1].ID, DestinationID: account.ID,
	})
	suite.Require().NoError(err)

	filter := domain.NewStatsFilter(ws, domain.AttributeCategory, domain.AttributeAccount)
	total, err := suite.store.CountSourceAttributes(suite.ctx, filter)
	suite.Require().NoError(err)
	mapped, err := suite.store.CountMappings(suite.ctx, filter)
	suite.Require().NoError(err)

	suite.Equal(int64(1), total, "Activity and inactive categories are not counted")
	suite.Equal(int64(1), mapped)
}

func (suite *StoreTestSuite) TestCountMappings_StaleRowsGoNegative() {
	srcs := suite.sources(domain.AttributeProject, "Activity", "Apollo")
	_, err := suite.store.UpsertSourceAttributes(suite.ctx, ws, []domain.SourceAttribute{
		{AttributeType: domain.AttributeProject, Value: "Apollo", SourceID: "src-Apollo", Active: false},
	})
	suite.Require().NoError(err)
	customer := suite.destination(domain.AttributeCustomer, "Acme", "C1")
	for _, src := range srcs {
		_, err := suite.store.UpsertMapping(suite.ctx, domain.MappingUpsert{
			WorkspaceID: ws, SourceType: domain.AttributeProject, DestinationType: domain.AttributeCustomer,
			SourceID: src.ID, DestinationID: customer.ID,
		})
		suite.Require().NoError(err)
	}

	filter := domain.NewStatsFilter(ws, domain.AttributeProject, domain.AttributeCustomer)
	total, err := suite.store.CountSourceAttributes(suite.ctx, filter)
	suite.Require().NoError(err)
	mapped, err := suite.store.CountMappings(suite.ctx, filter)
	suite.Require().NoError(err)

	suite.Equal(int64(0), total)
	suite.Equal(int64(1), mapped, "the Activity row counts, the inactive source does not")
	stats := domain.NewMappingStats(total, mapped)
	suite.Equal(int64(-1), stats.UnmappedAttributesCount)
}

func (suite *StoreTestSuite) TestSearchDestinationAttributes() {
	suite.destination(domain.AttributeAccount, "Travel Expenses", "A1")
	suite.destination(domain.AttributeAccount, "Meals", "A2")
	suite.destination(domain.AttributeAccount, "Air travel", "A3")
	suite.destination(domain.AttributeVendor, "Travelodge", "V1")

	out, err := suite.store.SearchDestinationAttributes(suite.ctx, ws, domain.AttributeAccount, "TRAVEL")
	suite.Require().NoError(err)
	suite.Require().Len(out, 2)
	suite.Equal("Air travel", out[0].Value)
	suite.Equal("Travel Expenses", out[1].Value)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
