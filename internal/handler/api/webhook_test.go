//go:build unit

package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/handler/api"
	"smakownia-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type fakeFulfillmentCommands struct {
	received []payment.Notification
	outcome  commands.WebhookOutcome
}

func (f *fakeFulfillmentCommands) HandleWebhook(_ context.Context, n payment.Notification) commands.WebhookOutcome {
	f.received = append(f.received, n)
	return f.outcome
}

func (f *fakeFulfillmentCommands) Fulfill(_ context.Context, _ string, _, _ int64) error {
	return nil
}

type WebhookHandlerTestSuite struct {
	suite.Suite
	fulfillment *fakeFulfillmentCommands
	engine      *gin.Engine
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.fulfillment = &fakeFulfillmentCommands{outcome: commands.OutcomeFulfilled}
	s.engine = gin.New()
	s.engine.POST("/api/payment-webhook", api.NewWebhookHandler(s.fulfillment).HandleNotification)
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payment-webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *WebhookHandlerTestSuite) TestJSONNotification() {
	body := `{"merchantId":64195,"posId":64195,"sessionId":"masterclass_1_1000",` +
		`"amount":25000,"currency":"PLN","orderId":987654,"sign":"abc"}`

	w := s.post("application/json", body)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
	s.Require().Len(s.fulfillment.received, 1)
	s.Equal("masterclass_1_1000", s.fulfillment.received[0].SessionID)
	s.Equal(int64(987654), s.fulfillment.received[0].OrderID)
}

func (s *WebhookHandlerTestSuite) TestFormEncodedNotification() {
	body := "p24_merchant_id=64195&p24_session_id=masterclass_1_1000&p24_amount=25000&p24_order_id=987654&p24_sign=abc"

	w := s.post("application/x-www-form-urlencoded", body)

	s.Equal(http.StatusOK, w.Code)
	s.Require().Len(s.fulfillment.received, 1)
	s.Equal("masterclass_1_1000", s.fulfillment.received[0].SessionID)
}

func (s *WebhookHandlerTestSuite) TestMalformedBodyStillAcknowledged() {
	w := s.post("application/json", "{not json")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
	s.Empty(s.fulfillment.received)
}

func (s *WebhookHandlerTestSuite) TestRejectedNotificationStillAcknowledged() {
	s.fulfillment.outcome = commands.OutcomeBadSign

	w := s.post("application/json", `{"sessionId":"masterclass_1_1000","amount":25000,"orderId":1,"sign":"bad"}`)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
	s.Len(s.fulfillment.received, 1)
}
