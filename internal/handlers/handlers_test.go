package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/gl_posting_engine/internal/apperrors"
	"github.com/SscSPs/gl_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/handlers"
	"github.com/SscSPs/gl_posting_engine/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-42"

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string
	posting   *MockPostingService
	reversal  *MockReversalService
	documents *MockDocumentService
	journals  *MockJournalService
	tax       *MockTaxService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.Require().NoError(handlers.RegisterBindingValidators())

	suite.posting = new(MockPostingService)
	suite.reversal = new(MockReversalService)
	suite.documents = new(MockDocumentService)
	suite.journals = new(MockJournalService)
	suite.tax = new(MockTaxService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{JWTSecret: suite.jwtSecret}, &portssvc.ServiceContainer{
		Posting:  suite.posting,
		Reversal: suite.reversal,
		Document: suite.documents,
		Journal:  suite.journals,
		Tax:      suite.tax,
	})
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.posting.AssertExpectations(suite.T())
	suite.reversal.AssertExpectations(suite.T())
	suite.documents.AssertExpectations(suite.T())
	suite.journals.AssertExpectations(suite.T())
	suite.tax.AssertExpectations(suite.T())
}

// generateTestToken creates a signed JWT for userID.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "gl-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func postedResult(created bool) *domain.PostingResult {
	journalID := "je-1"
	rate := decimal.RequireFromString("3.6725")
	entry := domain.NewJournalEntry(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "AED", "INV-001", domain.SourceCustomerInvoice, "doc-1", testUserID, time.Now())
	entry.JournalID = journalID
	entry.AddDebit("acc-1100", decimal.RequireFromString("3856.13"), "")
	entry.AddCredit("acc-4000", decimal.RequireFromString("3672.50"), "")
	entry.AddCredit("acc-2200", decimal.RequireFromString("183.63"), "")
	return &domain.PostingResult{
		Entry: entry,
		Document: &domain.SourceDocument{
			DocumentID: "doc-1", Number: "INV-001", CurrencyCode: "USD", Status: domain.DocumentPosted,
			JournalEntryID: &journalID, ExchangeRate: &rate,
		},
		Created: created,
	}
}

func (suite *HandlerTestSuite) TestHealth_NoAuth() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestRequiresBearerToken() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/documents/doc-1/post", nil))
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.posting.AssertNotCalled(suite.T(), "PostInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostDocument_CreatedThenReplayed() {
	suite.posting.On("PostInvoice", mock.Anything, "doc-1", testUserID).Return(postedResult(true), nil).Once()
	suite.posting.On("PostInvoice", mock.Anything, "doc-1", testUserID).Return(postedResult(false), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/documents/doc-1/post", "")
	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal("je-1", body["journalId"])
	suite.Equal(true, body["created"])
	journal := body["journal"].(map[string]any)
	suite.Equal("3856.13", journal["totalDebit"])
	suite.Equal("2024-03-15", journal["entryDate"])

	w = suite.do(http.MethodPost, "/api/v1/documents/doc-1/post", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(false, suite.decode(w)["created"])
}

func (suite *HandlerTestSuite) TestPostDocument_ErrorMapping() {
	configErr := &apperrors.ConfigurationError{Role: "FX_LOSS", Reason: "no account code configured"}

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "validation", err: apperrors.NewValidationError("lines", "at least one line is required"), wantStatus: http.StatusBadRequest},
		{name: "not found", err: apperrors.NewNotFoundError("document", "doc-1"), wantStatus: http.StatusNotFound},
		{name: "invalid state", err: &apperrors.InvalidStateError{Entity: "document", ID: "doc-1", Current: "REVERSED", Wanted: "DRAFT"}, wantStatus: http.StatusConflict},
		{name: "concurrent posting", err: fmt.Errorf("%w: document doc-1: deadlock detected", apperrors.ErrConflict), wantStatus: http.StatusConflict},
		{name: "rate missing", err: &apperrors.RateNotFoundError{From: "GBP", To: "AED", AsOf: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), RateType: "SPOT"}, wantStatus: http.StatusUnprocessableEntity},
		{name: "configuration", err: configErr, wantStatus: http.StatusInternalServerError, wantError: configErr.Error()},
		{name: "unexpected", err: apperrors.NewAppError(500, "failed to begin transaction", nil), wantStatus: http.StatusInternalServerError, wantError: "Failed to post document"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.posting.On("PostInvoice", mock.Anything, "doc-1", testUserID).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/documents/doc-1/post", "")
			suite.Equal(tc.wantStatus, w.Code)
			if tc.wantError != "" {
				suite.Equal(tc.wantError, suite.decode(w)["error"])
			}
		})
	}
}

func (suite *HandlerTestSuite) TestCreateDocument() {
	suite.documents.On("SaveDocument", mock.Anything, mock.MatchedBy(func(d domain.SourceDocument) bool {
		return d.DocumentID == "" && d.CurrencyCode == "USD" && len(d.Lines) == 1 && d.Lines[0].UnitPrice.Equal(decimal.NewFromInt(1000))
	}), testUserID).Return(&domain.SourceDocument{DocumentID: "doc-9", Status: domain.DocumentDraft}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/documents", `{
		"documentType": "CUSTOMER_INVOICE",
		"number": "INV-009",
		"currencyCode": "usd",
		"documentDate": "2024-03-15",
		"lines": [{"quantity": "1", "unitPrice": "1000", "taxRate": "5", "accountID": "acc-4000", "taxCode": "STD"}]
	}`)
	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("doc-9", suite.decode(w)["documentID"])
}

func (suite *HandlerTestSuite) TestCreateDocument_BadPayload() {
	w := suite.do(http.MethodPost, "/api/v1/documents", `{
		"documentType": "CUSTOMER_INVOICE",
		"number": "INV-009",
		"currencyCode": "USD",
		"documentDate": "2024-03-15",
		"lines": [{"quantity": "lots", "unitPrice": "1000"}]
	}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.documents.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSaveDocument_ImmutableFieldsReported() {
	suite.documents.On("SaveDocument", mock.Anything, mock.MatchedBy(func(d domain.SourceDocument) bool {
		return d.DocumentID == "doc-1"
	}), testUserID).Return(nil, &apperrors.ImmutableDocumentError{DocumentID: "doc-1", Fields: []string{"lines[0].unitPrice"}}).Once()

	w := suite.do(http.MethodPut, "/api/v1/documents/doc-1", `{
		"documentType": "CUSTOMER_INVOICE",
		"number": "INV-001",
		"currencyCode": "USD",
		"documentDate": "2024-03-15",
		"lines": [{"quantity": "1", "unitPrice": "1"}]
	}`)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal([]any{"lines[0].unitPrice"}, suite.decode(w)["fields"])
}

func (suite *HandlerTestSuite) TestReverseDocument() {
	revJournal := &domain.JournalEntry{JournalID: "je-rev"}
	suite.reversal.On("ReverseDocument", mock.Anything, "doc-1", testUserID).Return(&domain.DocumentReversal{
		Original:        &domain.SourceDocument{DocumentID: "doc-1", Status: domain.DocumentReversed},
		Reversal:        &domain.SourceDocument{DocumentID: "doc-1r"},
		ReversalJournal: revJournal,
		Created:         true,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/documents/doc-1/reverse", "")
	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal("je-rev", body["reversalJournalId"])
	suite.Equal("doc-1r", body["reversalDocumentId"])
}

func (suite *HandlerTestSuite) TestPostPayment() {
	fx := decimal.NewFromInt(70)
	kind := domain.RealizedLoss
	entry := &domain.JournalEntry{JournalID: "je-pay"}
	suite.posting.On("PostPayment", mock.Anything, "pay-1", testUserID).Return(&domain.PaymentPostingResult{
		Entry:   entry,
		Payment: &domain.Payment{PaymentID: "pay-1", FXAmount: &fx, FXKind: &kind},
		Invoice: &domain.SourceDocument{DocumentID: "doc-1", SettlementStatus: domain.Paid},
		Created: true,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments/pay-1/post", "")
	suite.Equal(http.StatusCreated, w.Code)
	payment := suite.decode(w)["payment"].(map[string]any)
	suite.Equal("70", payment["fxAmount"])
	suite.Equal("REALIZED_LOSS", payment["fxKind"])
}

func (suite *HandlerTestSuite) TestAccrueTax() {
	suite.tax.On("Accrue", mock.Anything, mock.MatchedBy(func(r portssvc.AccrueTaxRequest) bool {
		return r.Country == "AE" && r.PeriodStart.Format(time.DateOnly) == "2024-01-01" && !r.Override
	}), testUserID).Return(&domain.TaxAccrual{
		Filing:    &domain.CorporateTaxFiling{FilingID: "fil-1"},
		Entry:     &domain.JournalEntry{JournalID: "je-tax"},
		Profit:    decimal.NewFromInt(500000),
		TaxBase:   decimal.NewFromInt(125000),
		TaxAmount: decimal.NewFromInt(11250),
		Created:   true,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax/accruals", `{"country": "AE", "from": "2024-01-01", "to": "2024-12-31"}`)
	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal("fil-1", body["filingId"])
	suite.Equal("je-tax", body["journalId"])
	suite.Equal("11250", body["tax"])
}

func (suite *HandlerTestSuite) TestAccrueTax_FiledPeriodConflict() {
	suite.tax.On("Accrue", mock.Anything, mock.Anything, testUserID).
		Return(nil, &apperrors.InvalidStateError{Entity: "tax filing", ID: "fil-1", Current: "FILED", Wanted: "ACCRUED"}).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax/accruals", `{"country": "AE", "from": "2024-01-01", "to": "2024-12-31"}`)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestReverseFiling_EmptyBodyMeansNoOverride() {
	suite.tax.On("ReverseFiling", mock.Anything, "fil-1", false, testUserID).
		Return(&domain.CorporateTaxFiling{FilingID: "fil-1", Status: domain.FilingReversed}, nil).Once()
	suite.tax.On("ReverseFiling", mock.Anything, "fil-2", true, testUserID).
		Return(&domain.CorporateTaxFiling{FilingID: "fil-2", Status: domain.FilingReversed}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax/filings/fil-1/reverse", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("REVERSED", suite.decode(w)["status"])

	w = suite.do(http.MethodPost, "/api/v1/tax/filings/fil-2/reverse", `{"override": true}`)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestJournals() {
	next := "tok"
	suite.journals.On("ListJournals", mock.Anything, portsrepo.ListJournalsParams{SourceType: domain.SourcePayment, Limit: 5}).
		Return([]domain.JournalEntry{{JournalID: "je-1"}}, &next, nil).Once()
	suite.journals.On("GetJournal", mock.Anything, "je-1").Return(&domain.JournalEntry{JournalID: "je-1"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals?sourceType=PAYMENT&limit=5", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("tok", suite.decode(w)["nextToken"])

	w = suite.do(http.MethodGet, "/api/v1/journals?limit=500", "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/journals/je-1", "")
	suite.Equal(http.StatusOK, w.Code)
}
