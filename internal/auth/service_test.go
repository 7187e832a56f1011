package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	hasher       *PasswordHasher
	sessions     *SessionManager
	store        *MemoryStore
	service      *AuthService
	ctx          context.Context
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	hasher, err := NewPasswordHasher(1000)
	suite.Require().NoError(err)
	suite.hasher = hasher
	suite.store = NewMemoryStore()
	suite.sessions = NewSessionManager(suite.store, testAuthConfig())
	suite.service = NewAuthService(suite.mockUserRepo, suite.hasher, suite.sessions, validator.New())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) registeredUser(password string) *models.User {
	hash, err := suite.hasher.Hash(password)
	suite.Require().NoError(err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: 1, CreatedAt: time.Now()},
		Username:     "alice",
		Email:        "a@x.io",
		PasswordHash: hash,
	}
}

func (suite *AuthServiceTestSuite) TestSignup() {
	suite.mockUserRepo.EXPECT().GetByUsername(suite.ctx, "alice").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail(suite.ctx, "a@x.io").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			suite.NotEqual("s3cret", user.PasswordHash)
			suite.True(suite.hasher.Verify("s3cret", user.PasswordHash))
			user.ID = 1
			return nil
		})

	resp, err := suite.service.Signup(suite.ctx, &SignupRequest{Username: " alice ", Email: "a@x.io", Password: "s3cret"})

	suite.Require().NoError(err)
	suite.Equal("alice", resp.User.Username)
	userID, err := suite.sessions.CurrentUser(suite.ctx, resp.Token)
	suite.NoError(err)
	suite.Equal(uint(1), userID)
}

func (suite *AuthServiceTestSuite) TestSignupValidation() {
	testCases := []struct {
		name string
		req  *SignupRequest
	}{
		{"missing username", &SignupRequest{Email: "a@x.io", Password: "p"}},
		{"missing email", &SignupRequest{Username: "alice", Password: "p"}},
		{"invalid email", &SignupRequest{Username: "alice", Email: "nope", Password: "p"}},
		{"missing password", &SignupRequest{Username: "alice", Email: "a@x.io"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.Signup(suite.ctx, tc.req)
			suite.True(apperrors.IsValidation(err))
		})
	}
	suite.Equal(0, suite.store.Len())
}

func (suite *AuthServiceTestSuite) TestSignupDuplicateUsername() {
	suite.mockUserRepo.EXPECT().GetByUsername(suite.ctx, "alice").Return(&models.User{}, nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.service.Signup(suite.ctx, &SignupRequest{Username: "alice", Email: "new@x.io", Password: "p"})

	suite.ErrorIs(err, apperrors.ErrUserExists)
	suite.Equal(0, suite.store.Len())
}

func (suite *AuthServiceTestSuite) TestSignupDuplicateEmail() {
	suite.mockUserRepo.EXPECT().GetByUsername(suite.ctx, "bob").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail(suite.ctx, "a@x.io").Return(&models.User{}, nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.service.Signup(suite.ctx, &SignupRequest{Username: "bob", Email: "a@x.io", Password: "p"})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *AuthServiceTestSuite) TestSignupLosesRace() {
	suite.mockUserRepo.EXPECT().GetByUsername(suite.ctx, "alice").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail(suite.ctx, "a@x.io").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(apperrors.ErrUserExists)

	_, err := suite.service.Signup(suite.ctx, &SignupRequest{Username: "alice", Email: "a@x.io", Password: "p"})

	suite.ErrorIs(err, apperrors.ErrUserExists)
	suite.Equal(0, suite.store.Len())
}

func (suite *AuthServiceTestSuite) TestLogin() {
	user := suite.registeredUser("s3cret")
	suite.mockUserRepo.EXPECT().GetByEmail(suite.ctx, "a@x.io").Return(user, nil)

	resp, err := suite.service.Login(suite.ctx, &LoginRequest{Email: "a@x.io", Password: "s3cret"})

	suite.Require().NoError(err)
	suite.Equal(uint(1), resp.User.ID)
	userID, err := suite.sessions.CurrentUser(suite.ctx, resp.Token)
	suite.NoError(err)
	suite.Equal(uint(1), userID)
}

func (suite *AuthServiceTestSuite) TestLoginFailuresAreIndistinguishable() {
	user := suite.registeredUser("s3cret")
	suite.mockUserRepo.EXPECT().GetByEmail(suite.ctx, "a@x.io").Return(user, nil)
	suite.mockUserRepo.EXPECT().GetByEmail(suite.ctx, "ghost@x.io").Return(nil, gorm.ErrRecordNotFound)

	_, wrongPassword := suite.service.Login(suite.ctx, &LoginRequest{Email: "a@x.io", Password: "guess"})
	_, unknownEmail := suite.service.Login(suite.ctx, &LoginRequest{Email: "ghost@x.io", Password: "guess"})

	suite.ErrorIs(wrongPassword, apperrors.ErrInvalidCredentials)
	suite.ErrorIs(unknownEmail, apperrors.ErrInvalidCredentials)
	suite.Equal(wrongPassword.Error(), unknownEmail.Error())
	suite.Equal(0, suite.store.Len())
}

func (suite *AuthServiceTestSuite) TestLoginStorageError() {
	suite.mockUserRepo.EXPECT().GetByEmail(suite.ctx, "a@x.io").Return(nil, errors.New("connection refused"))

	_, err := suite.service.Login(suite.ctx, &LoginRequest{Email: "a@x.io", Password: "s3cret"})

	suite.Error(err)
	suite.False(apperrors.IsAuthentication(err))
}

func (suite *AuthServiceTestSuite) TestLogoutEndsSession() {
	token, err := suite.sessions.Start(suite.ctx, 1)
	suite.Require().NoError(err)

	suite.NoError(suite.service.Logout(suite.ctx, token))

	_, err = suite.service.CurrentUser(suite.ctx, token)
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *AuthServiceTestSuite) TestCurrentUser() {
	user := suite.registeredUser("s3cret")
	token, err := suite.sessions.Start(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)

	resp, err := suite.service.CurrentUser(suite.ctx, token)

	suite.NoError(err)
	suite.Equal("alice", resp.Username)
}

func (suite *AuthServiceTestSuite) TestCurrentUserMissingUserEndsSession() {
	token, err := suite.sessions.Start(suite.ctx, 99)
	suite.Require().NoError(err)
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err = suite.service.CurrentUser(suite.ctx, token)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = suite.sessions.CurrentUser(suite.ctx, token)
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
