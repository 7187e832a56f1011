package service_test

import (
	"context"
	"errors"
	"testing"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/logger"
	"entry-tracker-backend/internal/mocks"
	"entry-tracker-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OwnershipGuardTestSuite defines the test suite for OwnershipGuard
type OwnershipGuardTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	mockTaskRepo    *mocks.MockEntryTaskRepositoryInterface
	guard           *service.OwnershipGuard
	ctx             context.Context
}

// SetupTest sets up the test suite
func (suite *OwnershipGuardTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockEntryTaskRepositoryInterface(suite.ctrl)
	suite.guard = service.NewOwnershipGuard(suite.mockCompanyRepo, suite.mockTaskRepo)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *OwnershipGuardTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OwnershipGuardTestSuite) TestAuthorizeCompanyOwner() {
	company := &models.Company{BaseModel: models.BaseModel{ID: 5}, UserID: 1, Name: "Acme"}
	suite.mockCompanyRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(company, nil)

	got, err := suite.guard.AuthorizeCompany(suite.ctx, 1, 5)

	suite.NoError(err)
	suite.Same(company, got)
}

func (suite *OwnershipGuardTestSuite) TestAuthorizeCompanyMissingAndForeignLookAlike() {
	suite.mockCompanyRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().GetByID(suite.ctx, uint(6)).
		Return(&models.Company{BaseModel: models.BaseModel{ID: 6}, UserID: 2}, nil)

	_, missingErr := suite.guard.AuthorizeCompany(suite.ctx, 1, 5)
	_, foreignErr := suite.guard.AuthorizeCompany(suite.ctx, 1, 6)

	suite.ErrorIs(missingErr, apperrors.ErrResourceNotFound)
	suite.ErrorIs(foreignErr, apperrors.ErrResourceNotFound)
	suite.Equal(missingErr.Error(), foreignErr.Error())
}

func (suite *OwnershipGuardTestSuite) TestAuthorizeCompanyDenialLogsCaller() {
	hook := test.NewGlobal()
	prevLevel := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer func() {
		logrus.SetLevel(prevLevel)
		hook.Reset()
	}()

	ctx := logger.ContextWithUser(logger.ContextWithRequestID(suite.ctx, "req-42"), 2, "bob")
	suite.mockCompanyRepo.EXPECT().GetByID(ctx, uint(5)).
		Return(&models.Company{BaseModel: models.BaseModel{ID: 5}, UserID: 1}, nil)

	_, err := suite.guard.AuthorizeCompany(ctx, 2, 5)

	suite.ErrorIs(err, apperrors.ErrResourceNotFound)
	entry := hook.LastEntry()
	suite.Require().NotNil(entry)
	suite.Equal(logrus.DebugLevel, entry.Level)
	suite.Equal("bob", entry.Data["user"])
	suite.Equal("req-42", entry.Data["request_id"])
	suite.Equal(uint(5), entry.Data["company_id"])
}

func (suite *OwnershipGuardTestSuite) TestAuthorizeCompanyStorageError() {
	suite.mockCompanyRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(nil, errors.New("connection refused"))

	_, err := suite.guard.AuthorizeCompany(suite.ctx, 1, 5)

	suite.Error(err)
	suite.False(apperrors.IsNotFound(err))
}

func (suite *OwnershipGuardTestSuite) TestAuthorizeTaskFollowsCompany() {
	task := &models.EntryTask{BaseModel: models.BaseModel{ID: 9}, CompanyID: 5, Theme: "Why?"}
	company := &models.Company{BaseModel: models.BaseModel{ID: 5}, UserID: 1}
	suite.mockTaskRepo.EXPECT().GetByID(suite.ctx, uint(9)).Return(task, nil)
	suite.mockCompanyRepo.EXPECT().GetByID(suite.ctx, uint(5)).Return(company, nil)

	gotTask, gotCompany, err := suite.guard.AuthorizeTask(suite.ctx, 1, 9)

	suite.NoError(err)
	suite.Same(task, gotTask)
	suite.Same(company, gotCompany)
}

func (suite *OwnershipGuardTestSuite) TestAuthorizeTaskForeignCompany() {
	suite.mockTaskRepo.EXPECT().GetByID(suite.ctx, uint(9)).
		Return(&models.EntryTask{BaseModel: models.BaseModel{ID: 9}, CompanyID: 5}, nil)
	suite.mockCompanyRepo.EXPECT().GetByID(suite.ctx, uint(5)).
		Return(&models.Company{BaseModel: models.BaseModel{ID: 5}, UserID: 2}, nil)

	task, company, err := suite.guard.AuthorizeTask(suite.ctx, 1, 9)

	suite.ErrorIs(err, apperrors.ErrResourceNotFound)
	suite.Nil(task)
	suite.Nil(company)
}

func (suite *OwnershipGuardTestSuite) TestAuthorizeTaskMissing() {
	suite.mockTaskRepo.EXPECT().GetByID(suite.ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := suite.guard.AuthorizeTask(suite.ctx, 1, 9)

	suite.ErrorIs(err, apperrors.ErrResourceNotFound)
}

func TestOwnershipGuardTestSuite(t *testing.T) {
	suite.Run(t, new(OwnershipGuardTestSuite))
}
