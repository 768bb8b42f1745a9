package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/handlers"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/platform/obs"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "erp-ledger-test"
	testTenant = "acme"
	testUser   = "operator"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, tenantID, filter string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) SetupChartOfAccounts(ctx context.Context, tenantID, industry, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, industry, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, tenantID, params)
	var next *string
	if n := args.Get(1); n != nil {
		next = n.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockJournalService) Ledger(ctx context.Context, tenantID, accountID string) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockJournalService) ValidateEntry(ctx context.Context, tenantID string, draft domain.JournalEntry) error {
	args := m.Called(ctx, tenantID, draft)
	return args.Error(0)
}

func (m *MockJournalService) PostEntry(ctx context.Context, tenantID string, draft domain.JournalEntry, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, draft, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ReverseEntry(ctx context.Context, tenantID, entryID, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, tenantID string) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, tenantID string) (*domain.PAndLReport, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PAndLReport), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, tenantID string) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

// --- Mock ReceivablesService ---
type MockReceivablesService struct {
	mock.Mock
}

func (m *MockReceivablesService) RecordInvoice(ctx context.Context, tenantID string, invoice domain.Invoice, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, tenantID, invoice, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockReceivablesService) RecordReceipt(ctx context.Context, tenantID string, receipt domain.Receipt, userID string) (*domain.Receipt, error) {
	args := m.Called(ctx, tenantID, receipt, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceivablesService) CustomerStatement(ctx context.Context, tenantID, customerID string) (*domain.CustomerStatement, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerStatement), args.Error(1)
}

func (m *MockReceivablesService) AgingReport(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AgingBucket, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgingBucket), args.Error(1)
}

// --- Mock SalesPostingService ---
type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) PostSale(ctx context.Context, tenantID string, sale domain.Sale, userID string) (*domain.SalePosting, error) {
	args := m.Called(ctx, tenantID, sale, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalePosting), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

// HandlerTestSuite wires every route against mocked services through the
// real auth and tenant middleware.
type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	accounts    *MockAccountService
	journal     *MockJournalService
	reporting   *MockReportingService
	receivables *MockReceivablesService
	sales       *MockSalesService
	auth        *MockAuthService
	token       string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(discardLogger()))

	suite.accounts = new(MockAccountService)
	suite.journal = new(MockJournalService)
	suite.reporting = new(MockReportingService)
	suite.receivables = new(MockReceivablesService)
	suite.sales = new(MockSalesService)
	suite.auth = new(MockAuthService)

	services := &portssvc.ServiceContainer{
		Account:     suite.accounts,
		Journal:     suite.journal,
		Reporting:   suite.reporting,
		Receivables: suite.receivables,
		Sales:       suite.sales,
		Auth:        suite.auth,
	}
	cfg := &config.Config{
		JWTSecret:    testSecret,
		JWTIssuer:    testIssuer,
		IsProduction: true,
	}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, services, obs.NewMetrics()))

	suite.token = generateTestToken(suite.T(), testUser, testSecret, testIssuer)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.accounts.AssertExpectations(suite.T())
	suite.journal.AssertExpectations(suite.T())
	suite.reporting.AssertExpectations(suite.T())
	suite.receivables.AssertExpectations(suite.T())
	suite.sales.AssertExpectations(suite.T())
	suite.auth.AssertExpectations(suite.T())
}

// do sends an authenticated, tenant-scoped request. body may be nil.
func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	req := suite.newRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set(middleware.TenantHeader, testTenant)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) newRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			suite.Require().NoError(json.NewEncoder(&buf).Encode(b))
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// generateTestToken creates a JWT the real AuthMiddleware accepts.
func generateTestToken(t interface{ Fatalf(string, ...any) }, userID, secret, issuer string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}
