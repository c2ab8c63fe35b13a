//go:build unit

package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smakownia-backend/internal/handler/api"
	"smakownia-backend/internal/infra/przelewy24"
	"smakownia-backend/internal/usecase/commands"
	"smakownia-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type fakePaymentCommands struct {
	result *przelewy24.RegisterResult
	err    error
}

func (f *fakePaymentCommands) CreatePayment(_ context.Context, p commands.CreatePaymentParams) (*przelewy24.RegisterResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakePaymentCommands) RetryPayment(ctx context.Context, p commands.CreatePaymentParams) (*przelewy24.RegisterResult, error) {
	return f.CreatePayment(ctx, p)
}

type fakePaymentQueries struct {
	status  *queries.StatusResult
	readErr error

	returns []int64
}

func (f *fakePaymentQueries) GetStatus(_ context.Context, sessionID string) (*queries.StatusResult, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.status, nil
}

func (f *fakePaymentQueries) ProcessReturn(_ context.Context, sessionID string, orderID int64) (*queries.StatusResult, error) {
	f.returns = append(f.returns, orderID)
	return f.GetStatus(nil, sessionID)
}

type PaymentHandlerTestSuite struct {
	suite.Suite
	commands *fakePaymentCommands
	queries  *fakePaymentQueries
	engine   *gin.Engine
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.commands = &fakePaymentCommands{
		result: &przelewy24.RegisterResult{
			SessionID:  "masterclass_1_1000",
			Token:      "TKN-1",
			PaymentURL: "https://sandbox.przelewy24.pl/trnRequest/TKN-1",
		},
	}
	s.queries = &fakePaymentQueries{}

	h := api.NewPaymentHandler(s.commands, s.queries)
	s.engine = gin.New()
	s.engine.POST("/api/create-payment", h.CreatePayment)
	s.engine.GET("/api/payment-status", h.GetStatus)
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

const checkoutBody = `{"amount":"250","itemType":"masterclass","itemId":"1",` +
	`"fullName":"Anna Kowalska","email":"anna@example.com"}`

func (s *PaymentHandlerTestSuite) postCreate(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *PaymentHandlerTestSuite) TestCreatePayment() {
	w := s.postCreate(checkoutBody)

	s.Equal(http.StatusCreated, w.Code)
	s.JSONEq(`{
		"success": true,
		"sessionId": "masterclass_1_1000",
		"token": "TKN-1",
		"paymentUrl": "https://sandbox.przelewy24.pl/trnRequest/TKN-1"
	}`, w.Body.String())
}

func (s *PaymentHandlerTestSuite) TestCreatePaymentGatewayRejection() {
	// The gateway's raw rejection body must reach the caller as detail.
	s.commands.err = &przelewy24.RegistrationError{
		StatusCode: 400,
		RawBody:    []byte(`{"code":"err00","error":"Invalid CRC"}`),
	}

	w := s.postCreate(checkoutBody)

	s.Equal(http.StatusBadGateway, w.Code)
	s.JSONEq(`{
		"error": {"message": "Payment gateway error"},
		"detail": "{\"code\":\"err00\",\"error\":\"Invalid CRC\"}"
	}`, w.Body.String())
}

func (s *PaymentHandlerTestSuite) TestCreatePaymentMalformedBody() {
	w := s.postCreate(`{"amount":`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error": {"message": "Invalid request format"}}`, w.Body.String())
}

func (s *PaymentHandlerTestSuite) TestGetStatusRequiresSessionID() {
	req := httptest.NewRequest(http.MethodGet, "/api/payment-status", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error": {"message": "Session ID required"}}`, w.Body.String())
}

func (s *PaymentHandlerTestSuite) TestGetStatusFreshTriggersReturnProcessing() {
	s.queries.status = &queries.StatusResult{SessionID: "masterclass_1_1000", Status: "success"}

	req := httptest.NewRequest(http.MethodGet, "/api/payment-status?sessionId=masterclass_1_1000&fresh=true", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal([]int64{0}, s.queries.returns)
}
