package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/core/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/utils/importing"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ImportMappingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockImportMappingRepository
	mockAuth *MockClientAuthorizer
	service  portssvc.ImportMappingSvcFacade

	clientID string
	userID   string
}

func (suite *ImportMappingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockImportMappingRepository)
	suite.mockAuth = new(MockClientAuthorizer)
	suite.service = services.NewImportMappingService(suite.mockRepo, suite.mockAuth)
	suite.clientID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ImportMappingServiceTestSuite) authorize(role domain.UserClientRole) {
	suite.mockAuth.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.clientID, role).Return(nil).Once()
}

func (suite *ImportMappingServiceTestSuite) TestCreateImportMapping_Success() {
	ctx := context.Background()
	suite.authorize(domain.RoleCollector)

	var saved domain.ImportMapping
	suite.mockRepo.On("SaveImportMapping", ctx, mock.AnythingOfType("domain.ImportMapping")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.ImportMapping) }).Return(nil).Once()

	req := dto.SaveImportMappingRequest{
		Name:    "Midland standard layout",
		Mapping: map[string]string{"Acct #": "accountNumber", "SSN": "ssn", "Junk": importing.SkipField},
	}

	created, err := suite.service.CreateImportMapping(ctx, suite.clientID, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(created.MappingID)
	suite.Equal(suite.clientID, created.ClientID)
	suite.Equal(req.Mapping, saved.Mapping)
	suite.False(saved.IsDefault)
	suite.mockRepo.AssertNotCalled(suite.T(), "ClearDefaultMapping", mock.Anything, mock.Anything)
}

func (suite *ImportMappingServiceTestSuite) TestCreateImportMapping_RejectsBlankTarget() {
	ctx := context.Background()
	suite.authorize(domain.RoleCollector)

	req := dto.SaveImportMappingRequest{
		Name:    "bad",
		Mapping: map[string]string{"Shoe Size": "  "},
	}

	created, err := suite.service.CreateImportMapping(ctx, suite.clientID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveImportMapping", mock.Anything, mock.Anything)
}

func (suite *ImportMappingServiceTestSuite) TestCreateImportMapping_AcceptsCustomLabelTargets() {
	ctx := context.Background()
	suite.authorize(domain.RoleCollector)

	var saved domain.ImportMapping
	suite.mockRepo.On("SaveImportMapping", ctx, mock.AnythingOfType("domain.ImportMapping")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.ImportMapping) }).Return(nil).Once()

	req := dto.SaveImportMappingRequest{
		Name:    "with custom columns",
		Mapping: map[string]string{"Acct": "accountNumber", "Branch": "branchCode"},
	}

	created, err := suite.service.CreateImportMapping(ctx, suite.clientID, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(created)
	suite.Equal("branchCode", saved.Mapping["Branch"])
}

func (suite *ImportMappingServiceTestSuite) TestCreateImportMapping_DefaultClearsPrevious() {
	ctx := context.Background()
	suite.authorize(domain.RoleCollector)
	suite.mockRepo.On("ClearDefaultMapping", ctx, suite.clientID).Return(nil).Once()
	suite.mockRepo.On("SaveImportMapping", ctx, mock.AnythingOfType("domain.ImportMapping")).Return(nil).Once()

	req := dto.SaveImportMappingRequest{
		Name:      "new default",
		Mapping:   map[string]string{"Acct": "accountNumber"},
		IsDefault: true,
	}

	_, err := suite.service.CreateImportMapping(ctx, suite.clientID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ImportMappingServiceTestSuite) TestUpdateImportMapping_WrongClientIsNotFound() {
	ctx := context.Background()
	suite.authorize(domain.RoleCollector)
	foreign := &domain.ImportMapping{
		MappingID: uuid.NewString(),
		ClientID:  uuid.NewString(), // different tenant
	}
	suite.mockRepo.On("FindImportMappingByID", ctx, foreign.MappingID).Return(foreign, nil).Once()

	req := dto.SaveImportMappingRequest{Name: "x", Mapping: map[string]string{"Acct": "accountNumber"}}

	updated, err := suite.service.UpdateImportMapping(ctx, suite.clientID, foreign.MappingID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateImportMapping", mock.Anything, mock.Anything)
}

func (suite *ImportMappingServiceTestSuite) TestDeleteImportMapping_Success() {
	ctx := context.Background()
	suite.authorize(domain.RoleCollector)
	existing := &domain.ImportMapping{MappingID: uuid.NewString(), ClientID: suite.clientID}
	suite.mockRepo.On("FindImportMappingByID", ctx, existing.MappingID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteImportMapping", ctx, existing.MappingID).Return(nil).Once()

	err := suite.service.DeleteImportMapping(ctx, suite.clientID, existing.MappingID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ImportMappingServiceTestSuite) TestPreviewMapping_DefaultsToSkip() {
	ctx := context.Background()
	suite.authorize(domain.RoleViewer)

	req := dto.PreviewMappingRequest{
		Headers:    []string{"Acct #", "First Name"},
		ImportType: "accounts",
	}

	preview, err := suite.service.PreviewMapping(ctx, suite.clientID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(map[string]string{
		"Acct #":     importing.SkipField,
		"First Name": importing.SkipField,
	}, preview.Mapping)
	suite.Contains(preview.TargetFields, "accountNumber")
}

func (suite *ImportMappingServiceTestSuite) TestPreviewMapping_MergesSavedPreset() {
	ctx := context.Background()
	suite.authorize(domain.RoleViewer)
	saved := &domain.ImportMapping{
		MappingID: uuid.NewString(),
		ClientID:  suite.clientID,
		Mapping: map[string]string{
			"Acct #":      "accountNumber",
			"Gone Column": "lastName",
		},
	}
	suite.mockRepo.On("FindImportMappingByID", ctx, saved.MappingID).Return(saved, nil).Once()

	req := dto.PreviewMappingRequest{
		Headers:    []string{"Acct #", "First Name"},
		ImportType: "accounts",
		MappingID:  saved.MappingID,
	}

	preview, err := suite.service.PreviewMapping(ctx, suite.clientID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(map[string]string{
		"Acct #":     "accountNumber",
		"First Name": importing.SkipField,
	}, preview.Mapping)
}

func (suite *ImportMappingServiceTestSuite) TestPreviewMapping_KeepsCurrentEditsForColumnsThePresetLacks() {
	ctx := context.Background()
	suite.authorize(domain.RoleViewer)
	saved := &domain.ImportMapping{
		MappingID: uuid.NewString(),
		ClientID:  suite.clientID,
		Mapping:   map[string]string{"Acct #": "accountNumber"},
	}
	suite.mockRepo.On("FindImportMappingByID", ctx, saved.MappingID).Return(saved, nil).Once()

	req := dto.PreviewMappingRequest{
		Headers:    []string{"Acct #", "First Name"},
		ImportType: "accounts",
		CurrentMapping: map[string]string{
			"Acct #":     "ssn", // overridden by the preset
			"First Name": "firstName",
		},
		MappingID: saved.MappingID,
	}

	preview, err := suite.service.PreviewMapping(ctx, suite.clientID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(map[string]string{
		"Acct #":     "accountNumber",
		"First Name": "firstName",
	}, preview.Mapping)
}

func TestImportMappingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportMappingServiceTestSuite))
}
