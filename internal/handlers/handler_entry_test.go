package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vsilva/minhas_financas_app/internal/apperrors"
	"github.com/vsilva/minhas_financas_app/internal/core/domain"
	portssvc "github.com/vsilva/minhas_financas_app/internal/core/ports/services"
	"github.com/vsilva/minhas_financas_app/internal/dto"
	"github.com/vsilva/minhas_financas_app/internal/handlers"
	"github.com/vsilva/minhas_financas_app/internal/middleware"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) GetEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) SearchEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryService) BalanceByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEntryService) SaveEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryService) UpdateEntryStatus(ctx context.Context, entry *domain.Entry, status domain.EntryStatus) error {
	args := m.Called(ctx, entry, status)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockEntryService *MockEntryService
	jwtSecret        string
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidations()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	// Use the actual AuthMiddleware
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockEntryService = new(MockEntryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEntryRoutes(v1, suite.mockEntryService)
}

func (suite *EntryHandlerTestSuite) generateTestToken(userID int64) string {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *EntryHandlerTestSuite) doRequest(method, url string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(1))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	req := dto.SaveEntryRequest{
		Description: "Salary",
		Month:       1,
		Year:        2024,
		UserID:      1,
		Value:       decimal.NewFromFloat(1500.00),
		Type:        "INCOME",
	}

	saved := &domain.Entry{
		ID:          10,
		Description: "Salary",
		Month:       1,
		Year:        2024,
		User:        &domain.User{ID: 1},
		Value:       decimal.NewFromFloat(1500.00),
		Type:        domain.EntryTypeIncome,
		Status:      domain.EntryStatusPending,
	}

	suite.mockEntryService.On("SaveEntry",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(e domain.Entry) bool {
			return e.Description == "Salary" && e.User != nil && e.User.ID == 1
		}),
	).Return(saved, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/entries", req, true)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10), resp.ID)
	suite.Equal("PENDING", resp.Status)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_ValidationFailure() {
	req := dto.SaveEntryRequest{Month: 1, Year: 2024, UserID: 1, Type: "INCOME"}

	suite.mockEntryService.On("SaveEntry",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("domain.Entry"),
	).Return(nil, apperrors.NewBusinessRuleError("a valid description is required")).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/entries", req, true)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("a valid description is required", resp.Error)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Unauthorized() {
	w := suite.doRequest(http.MethodPost, "/api/v1/entries", dto.SaveEntryRequest{}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFound() {
	suite.mockEntryService.On("GetEntryByID",
		mock.AnythingOfType("*context.valueCtx"),
		int64(99),
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries/99", nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListEntries_ForwardsFilter() {
	expected := []domain.Entry{
		{ID: 1, Description: "Salary", User: &domain.User{ID: 1}, Value: decimal.NewFromInt(1500)},
	}

	suite.mockEntryService.On("SearchEntries",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(f domain.EntryFilter) bool {
			return f.UserID == 1 && f.Year == 2024 && f.Type == domain.EntryTypeIncome
		}),
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries?userId=1&year=2024&type=INCOME", nil, true)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal(int64(1), resp[0].ID)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListEntries_DefaultsToAuthenticatedUser() {
	suite.mockEntryService.On("SearchEntries",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(f domain.EntryFilter) bool {
			return f.UserID == 1
		}),
	).Return([]domain.Entry{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestUpdateEntryStatus_UnknownStatus() {
	w := suite.doRequest(http.MethodPut, "/api/v1/entries/1/status", map[string]string{"status": "ARCHIVED"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "UpdateEntryStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestUpdateEntryStatus_Success() {
	entry := &domain.Entry{
		ID:          1,
		Description: "Salary",
		Month:       1,
		Year:        2024,
		User:        &domain.User{ID: 1},
		Value:       decimal.NewFromInt(1500),
		Type:        domain.EntryTypeIncome,
		Status:      domain.EntryStatusPending,
	}

	suite.mockEntryService.On("GetEntryByID",
		mock.AnythingOfType("*context.valueCtx"),
		int64(1),
	).Return(entry, nil).Once()

	suite.mockEntryService.On("UpdateEntryStatus",
		mock.AnythingOfType("*context.valueCtx"),
		entry,
		domain.EntryStatusConfirmed,
	).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Entry).Status = domain.EntryStatusConfirmed
	}).Return(nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/entries/1/status", map[string]string{"status": "CONFIRMED"}, true)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("CONFIRMED", resp.Status)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_Success() {
	entry := &domain.Entry{ID: 5, Description: "Rent", User: &domain.User{ID: 1}}

	suite.mockEntryService.On("GetEntryByID",
		mock.AnythingOfType("*context.valueCtx"),
		int64(5),
	).Return(entry, nil).Once()
	suite.mockEntryService.On("DeleteEntry",
		mock.AnythingOfType("*context.valueCtx"),
		*entry,
	).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/entries/5", nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestEntryHandler(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
