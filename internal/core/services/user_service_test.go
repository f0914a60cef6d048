package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vsilva/minhas_financas_app/internal/apperrors"
	"github.com/vsilva/minhas_financas_app/internal/core/domain"
	portssvc "github.com/vsilva/minhas_financas_app/internal/core/ports/services"
	"github.com/vsilva/minhas_financas_app/internal/core/services"
	"github.com/vsilva/minhas_financas_app/internal/dto"
)

// --- Mock UserRepository (based on UserService usage) ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- Authenticate Tests ---

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	stored := &domain.User{ID: 1, Name: "Maria", Email: "maria@example.com", Password: "secret"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "maria@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "maria@example.com", "secret")

	suite.Require().NoError(err)
	suite.Equal(stored, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	var authErr *apperrors.AuthenticationError
	suite.Require().ErrorAs(err, &authErr)
	suite.Equal("user not found for the given email", authErr.Message)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	stored := &domain.User{ID: 1, Email: "maria@example.com", Password: "secret"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "maria@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "maria@example.com", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	var authErr *apperrors.AuthenticationError
	suite.Require().ErrorAs(err, &authErr)
	suite.Equal("invalid password", authErr.Message)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByEmail", ctx, "maria@example.com").Return(nil, expectedErr).Once()

	user, err := suite.service.Authenticate(ctx, "maria@example.com", "secret")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Register Tests ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Maria", Email: "maria@example.com", Password: "secret"}

	suite.mockUserRepo.On("ExistsByEmail", ctx, "maria@example.com").Return(false, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == "Maria" && user.Email == "maria@example.com" && user.Password == "secret"
	})).Return(&domain.User{ID: 7, Name: "Maria", Email: "maria@example.com", Password: "secret"}, nil).Once()

	created, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(7), created.ID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail_NeverSaves() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Email: "maria@example.com", Password: "secret"}

	suite.mockUserRepo.On("ExistsByEmail", ctx, "maria@example.com").Return(true, nil).Once()

	created, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	var ruleErr *apperrors.BusinessRuleError
	suite.Require().ErrorAs(err, &ruleErr)
	suite.Equal("a user is already registered with this email", ruleErr.Message)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_SaveError() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Email: "maria@example.com", Password: "secret"}
	expectedErr := assert.AnError

	suite.mockUserRepo.On("ExistsByEmail", ctx, "maria@example.com").Return(false, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil, expectedErr).Once()

	created, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ValidateEmail Tests ---

func (suite *UserServiceTestSuite) TestValidateEmail_Available() {
	ctx := context.Background()

	suite.mockUserRepo.On("ExistsByEmail", ctx, "new@example.com").Return(false, nil).Once()

	err := suite.service.ValidateEmail(ctx, "new@example.com")

	suite.NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestValidateEmail_Taken() {
	ctx := context.Background()

	suite.mockUserRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil).Once()

	err := suite.service.ValidateEmail(ctx, "taken@example.com")

	suite.Require().Error(err)
	var ruleErr *apperrors.BusinessRuleError
	suite.ErrorAs(err, &ruleErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	expectedUser := &domain.User{ID: 42, Name: "Found User"}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(42)).Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByID(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
