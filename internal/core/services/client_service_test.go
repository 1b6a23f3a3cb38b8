package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo)
}

func (suite *ClientServiceTestSuite) TestCreateClient_CreatorBecomesAdmin() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	suite.mockRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	var membership domain.UserClient
	suite.mockRepo.On("AddUserToClient", ctx, mock.AnythingOfType("domain.UserClient")).
		Run(func(args mock.Arguments) { membership = args.Get(1).(domain.UserClient) }).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, "Apex Recovery", "East coast agency", creatorID)

	suite.Require().NoError(err)
	suite.NotEmpty(client.ClientID)
	suite.True(client.IsActive)
	suite.Equal(creatorID, membership.UserID)
	suite.Equal(client.ClientID, membership.ClientID)
	suite.Equal(domain.RoleAdmin, membership.Role)
}

func (suite *ClientServiceTestSuite) membership(role domain.UserClientRole) (userID, clientID string) {
	userID = uuid.NewString()
	clientID = uuid.NewString()
	suite.mockRepo.On("FindUserClientRole", mock.Anything, userID, clientID).Return(&domain.UserClient{
		UserID:   userID,
		ClientID: clientID,
		Role:     role,
	}, nil).Once()
	return userID, clientID
}

func (suite *ClientServiceTestSuite) TestAuthorizeUserAction_AdminPassesEverything() {
	ctx := context.Background()
	for _, required := range []domain.UserClientRole{domain.RoleAdmin, domain.RoleCollector, domain.RoleViewer} {
		userID, clientID := suite.membership(domain.RoleAdmin)
		suite.NoError(suite.service.AuthorizeUserAction(ctx, userID, clientID, required))
	}
}

func (suite *ClientServiceTestSuite) TestAuthorizeUserAction_CollectorSatisfiesViewer() {
	ctx := context.Background()
	userID, clientID := suite.membership(domain.RoleCollector)
	suite.NoError(suite.service.AuthorizeUserAction(ctx, userID, clientID, domain.RoleViewer))
}

func (suite *ClientServiceTestSuite) TestAuthorizeUserAction_ViewerCannotCollect() {
	ctx := context.Background()
	userID, clientID := suite.membership(domain.RoleViewer)
	err := suite.service.AuthorizeUserAction(ctx, userID, clientID, domain.RoleCollector)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ClientServiceTestSuite) TestAuthorizeUserAction_RemovedIsNotFound() {
	ctx := context.Background()
	userID, clientID := suite.membership(domain.RoleRemoved)
	err := suite.service.AuthorizeUserAction(ctx, userID, clientID, domain.RoleViewer)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestAuthorizeUserAction_NonMemberIsNotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	clientID := uuid.NewString()
	suite.mockRepo.On("FindUserClientRole", mock.Anything, userID, clientID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeUserAction(ctx, userID, clientID, domain.RoleViewer)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestAddUserToClient_RequiresAdmin() {
	ctx := context.Background()
	userID, clientID := suite.membership(domain.RoleCollector)

	err := suite.service.AddUserToClient(ctx, userID, uuid.NewString(), clientID, domain.RoleViewer)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddUserToClient", mock.Anything, mock.Anything)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
