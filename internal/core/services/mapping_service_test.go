package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/SscSPs/accounting_mappings/internal/core/domain"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/core/services"
	"github.com/SscSPs/accounting_mappings/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock repositories ---

type MockMappingRepository struct {
	mock.Mock
}

func (m *MockMappingRepository) ListMappings(ctx context.Context, spec domain.MappingListSpec) ([]domain.Mapping, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mapping), args.Error(1)
}

func (m *MockMappingRepository) UpsertMapping(ctx context.Context, upsert domain.MappingUpsert) (*domain.Mapping, error) {
	args := m.Called(ctx, upsert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mapping), args.Error(1)
}

type MockSourceAttributeRepository struct {
	mock.Mock
}

func (m *MockSourceAttributeRepository) FindSourceAttributeByID(ctx context.Context, workspaceID, id int64) (*domain.SourceAttribute, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SourceAttribute), args.Error(1)
}

func (m *MockSourceAttributeRepository) FindSourceAttributeByValue(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, value string) (*domain.SourceAttribute, error) {
	args := m.Called(ctx, workspaceID, attributeType, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SourceAttribute), args.Error(1)
}

func (m *MockSourceAttributeRepository) SearchSourceAttributes(ctx context.Context, spec domain.AttributeSearchSpec) ([]domain.SourceAttribute, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SourceAttribute), args.Error(1)
}

func (m *MockSourceAttributeRepository) UpsertSourceAttributes(ctx context.Context, workspaceID int64, attributes []domain.SourceAttribute) ([]domain.SourceAttribute, error) {
	args := m.Called(ctx, workspaceID, attributes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SourceAttribute), args.Error(1)
}

type MockDestinationAttributeRepository struct {
	mock.Mock
}

func (m *MockDestinationAttributeRepository) FindDestinationAttributeByID(ctx context.Context, workspaceID, id int64) (*domain.DestinationAttribute, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DestinationAttribute), args.Error(1)
}

func (m *MockDestinationAttributeRepository) FindDestinationAttributeByValue(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, value string) (*domain.DestinationAttribute, error) {
	args := m.Called(ctx, workspaceID, attributeType, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DestinationAttribute), args.Error(1)
}

func (m *MockDestinationAttributeRepository) FindDestinationAttributeByDestinationID(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, destinationID string) (*domain.DestinationAttribute, error) {
	args := m.Called(ctx, workspaceID, attributeType, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DestinationAttribute), args.Error(1)
}

func (m *MockDestinationAttributeRepository) SearchDestinationAttributes(ctx context.Context, workspaceID int64, attributeType domain.AttributeType, contains string) ([]domain.DestinationAttribute, error) {
	args := m.Called(ctx, workspaceID, attributeType, contains)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DestinationAttribute), args.Error(1)
}

func (m *MockDestinationAttributeRepository) UpsertDestinationAttributes(ctx context.Context, workspaceID int64, attributes []domain.DestinationAttribute) ([]domain.DestinationAttribute, error) {
	args := m.Called(ctx, workspaceID, attributes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DestinationAttribute), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountSourceAttributes(ctx context.Context, filter domain.StatsFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountMappings(ctx context.Context, filter domain.StatsFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---

type MappingServiceTestSuite struct {
	suite.Suite
	mappingRepo     *MockMappingRepository
	sourceRepo      *MockSourceAttributeRepository
	destinationRepo *MockDestinationAttributeRepository
	service         portssvc.MappingSvcFacade
}

func (suite *MappingServiceTestSuite) SetupTest() {
	suite.mappingRepo = new(MockMappingRepository)
	suite.sourceRepo = new(MockSourceAttributeRepository)
	suite.destinationRepo = new(MockDestinationAttributeRepository)
	suite.service = services.NewMappingService(suite.mappingRepo, suite.sourceRepo, suite.destinationRepo)
}

func (suite *MappingServiceTestSuite) TestCreateOrUpdateMapping_Success() {
	ctx := context.Background()
	source := &domain.SourceAttribute{ID: 10, AttributeType: domain.AttributeProject, Value: "Apollo"}
	destination := &domain.DestinationAttribute{ID: 20, AttributeType: domain.AttributeCustomer, Value: "Acme"}
	expected := &domain.Mapping{ID: 1, Source: *source, Destination: *destination}

	suite.sourceRepo.On("FindSourceAttributeByValue", ctx, int64(3), domain.AttributeProject, "Apollo").Return(source, nil).Once()
	suite.destinationRepo.On("FindDestinationAttributeByValue", ctx, int64(3), domain.AttributeCustomer, "Acme").Return(destination, nil).Once()
	suite.mappingRepo.On("UpsertMapping", ctx, domain.MappingUpsert{
		WorkspaceID: 3, SourceType: domain.AttributeProject, DestinationType: domain.AttributeCustomer, SourceID: 10, DestinationID: 20,
	}).Return(expected, nil).Once()

	mapping, err := suite.service.CreateOrUpdateMapping(ctx, 3, dto.CreateMappingRequest{
		SourceType: "PROJECT", DestinationType: "CUSTOMER", SourceValue: "Apollo", DestinationValue: "Acme",
	})

	suite.Require().NoError(err)
	suite.Equal(expected, mapping)
	suite.sourceRepo.AssertExpectations(suite.T())
	suite.destinationRepo.AssertExpectations(suite.T())
	suite.mappingRepo.AssertExpectations(suite.T())
}

func (suite *MappingServiceTestSuite) TestCreateOrUpdateMapping_ByDestinationID() {
	ctx := context.Background()
	source := &domain.SourceAttribute{ID: 10}
	destination := &domain.DestinationAttribute{ID: 21, DestinationID: "C-21"}

	suite.sourceRepo.On("FindSourceAttributeByValue", ctx, int64(3), domain.AttributeProject, "Apollo").Return(source, nil).Once()
	suite.destinationRepo.On("FindDestinationAttributeByDestinationID", ctx, int64(3), domain.AttributeCustomer, "C-21").Return(destination, nil).Once()
	suite.mappingRepo.On("UpsertMapping", ctx, mock.MatchedBy(func(u domain.MappingUpsert) bool { return u.DestinationID == 21 })).
		Return(&domain.Mapping{ID: 5}, nil).Once()

	_, err := suite.service.CreateOrUpdateMapping(ctx, 3, dto.CreateMappingRequest{
		SourceType: "PROJECT", DestinationType: "CUSTOMER", SourceValue: "Apollo", DestinationValue: "Acme", DestinationID: "C-21",
	})

	suite.Require().NoError(err)
	suite.destinationRepo.AssertNotCalled(suite.T(), "FindDestinationAttributeByValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mappingRepo.AssertExpectations(suite.T())
}

func (suite *MappingServiceTestSuite) TestCreateOrUpdateMapping_RepoError() {
	ctx := context.Background()
	suite.sourceRepo.On("FindSourceAttributeByValue", ctx, int64(3), domain.AttributeProject, "Apollo").Return(nil, assert.AnError).Once()

	mapping, err := suite.service.CreateOrUpdateMapping(ctx, 3, dto.CreateMappingRequest{
		SourceType: "PROJECT", DestinationType: "CUSTOMER", SourceValue: "Apollo", DestinationValue: "Acme",
	})

	suite.Require().Error(err)
	suite.Nil(mapping)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.mappingRepo.AssertNotCalled(suite.T(), "UpsertMapping", mock.Anything, mock.Anything)
}

func (suite *MappingServiceTestSuite) TestListMappings_RequiresSourceType() {
	_, err := suite.service.ListMappings(context.Background(), domain.MappingListSpec{WorkspaceID: 3})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mappingRepo.AssertNotCalled(suite.T(), "ListMappings", mock.Anything, mock.Anything)
}

func (suite *MappingServiceTestSuite) TestListMappings_DefaultsDimensionAndEmptySlice() {
	ctx := context.Background()
	spec := domain.MappingListSpec{WorkspaceID: 3, SourceType: domain.AttributeProject}
	withDefault := spec
	withDefault.Dimension = domain.TwoColumn
	suite.mappingRepo.On("ListMappings", ctx, withDefault).Return(nil, nil).Once()

	mappings, err := suite.service.ListMappings(ctx, spec)

	suite.Require().NoError(err)
	suite.NotNil(mappings)
	suite.Empty(mappings)
	suite.mappingRepo.AssertExpectations(suite.T())
}

func TestMappingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MappingServiceTestSuite))
}

func TestGetMappingStats_UsesFilterAndDoesNotClamp(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStatsRepository)
	filter := domain.NewStatsFilter(3, domain.AttributeProject, domain.AttributeCustomer)
	repo.On("CountSourceAttributes", mock.Anything, filter).Return(int64(4), nil).Once()
	repo.On("CountMappings", mock.Anything, filter).Return(int64(5), nil).Once()

	stats, err := services.NewStatsService(repo).GetMappingStats(ctx, 3, domain.AttributeProject, domain.AttributeCustomer)

	assert.NoError(t, err)
	assert.Equal(t, int64(-1), stats.UnmappedAttributesCount)
	assert.Equal(t, domain.ActiveOnly, filter.Active)
	repo.AssertExpectations(t)
}

func TestGetMappingStats_PropagatesCountError(t *testing.T) {
	repo := new(MockStatsRepository)
	repo.On("CountSourceAttributes", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)
	repo.On("CountMappings", mock.Anything, mock.Anything).Return(int64(0), nil)

	stats, err := services.NewStatsService(repo).GetMappingStats(context.Background(), 3, domain.AttributeProject, "")

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, stats)
}

func TestDestinationValidator(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDestinationAttributeRepository)
	validator := services.NewDestinationValidator(repo)

	vendor := &domain.DestinationAttribute{ID: 1, AttributeType: domain.AttributeVendor}
	repo.On("FindDestinationAttributeByID", ctx, int64(3), int64(1)).Return(vendor, nil)
	repo.On("FindDestinationAttributeByID", ctx, int64(3), int64(2)).Return(nil, apperrors.ErrNotFound)
	repo.On("FindDestinationAttributeByID", ctx, int64(3), int64(3)).Return(nil, assert.AnError)

	id := func(v int64) *int64 { return &v }

	got, err := validator.Validate(ctx, 3, nil, "destination_vendor", domain.VendorSlotTypes)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = validator.Validate(ctx, 3, id(1), "destination_vendor", domain.VendorSlotTypes)
	assert.NoError(t, err)
	assert.Equal(t, vendor, got)

	_, err = validator.Validate(ctx, 3, id(1), "destination_card_account", domain.CardAccountSlotTypes)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "CREDIT_CARD_ACCOUNT or CHARGE_CARD_NUMBER")

	_, err = validator.Validate(ctx, 3, id(2), "destination_vendor", domain.VendorSlotTypes)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = validator.Validate(ctx, 3, id(3), "destination_vendor", domain.VendorSlotTypes)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
}
