//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/infra/przelewy24"
	"smakownia-backend/internal/pkg/config"
	"smakownia-backend/internal/usecase/queries"

	"github.com/stretchr/testify/suite"
)

// statusGateway serves a scripted sequence of transaction reads so the tests
// can simulate the gateway's read model settling between polls.
type statusGateway struct {
	reads     []*payment.TransactionInfo
	readErrs  []error
	readCalls int

	verified  []int64
	verifyErr error
}

func (g *statusGateway) GetBySessionID(_ context.Context, _ string) (*payment.TransactionInfo, error) {
	i := g.readCalls
	g.readCalls++
	if i >= len(g.reads) {
		i = len(g.reads) - 1
	}
	if g.readErrs != nil && g.readErrs[i] != nil {
		return nil, g.readErrs[i]
	}
	return g.reads[i], nil
}

func (g *statusGateway) Verify(_ context.Context, _ string, orderID, _ int64) error {
	if g.verifyErr != nil {
		return g.verifyErr
	}
	g.verified = append(g.verified, orderID)
	return nil
}

type fakeFulfillmentReader struct {
	fulfilled map[string]bool
	readErr   error
}

func (r *fakeFulfillmentReader) IsFulfilled(_ context.Context, sessionID string) (bool, error) {
	if r.readErr != nil {
		return false, r.readErr
	}
	return r.fulfilled[sessionID], nil
}

type PaymentQueriesTestSuite struct {
	suite.Suite
	gateway *statusGateway
	ledger  *fakeFulfillmentReader
	cfg     config.Config
}

func (s *PaymentQueriesTestSuite) SetupTest() {
	s.gateway = &statusGateway{}
	s.ledger = &fakeFulfillmentReader{fulfilled: map[string]bool{}}
	s.cfg = config.NewTestConfig()
}

func (s *PaymentQueriesTestSuite) newQueries() queries.PaymentQueries {
	return queries.NewPaymentQueries(s.gateway, s.ledger, s.cfg)
}

func TestPaymentQueriesSuite(t *testing.T) {
	suite.Run(t, new(PaymentQueriesTestSuite))
}

const statusSessionID = "masterclass_1_1741946400000000000"

func tx(code int) *payment.TransactionInfo {
	return &payment.TransactionInfo{
		SessionID:  statusSessionID,
		OrderID:    987654,
		StatusCode: code,
		Amount:     25000,
		Currency:   "PLN",
	}
}

// pendingTx is a record the gateway has not assigned an order to yet; the
// shape the re-poll path exists for.
func pendingTx(code int) *payment.TransactionInfo {
	return &payment.TransactionInfo{
		SessionID:  statusSessionID,
		StatusCode: code,
		Amount:     25000,
		Currency:   "PLN",
	}
}

func (s *PaymentQueriesTestSuite) TestGetStatusSuccess() {
	s.gateway.reads = []*payment.TransactionInfo{tx(5)}
	s.ledger.fulfilled[statusSessionID] = true

	result, err := s.newQueries().GetStatus(context.Background(), statusSessionID)
	s.Require().NoError(err)
	s.Equal(payment.StatusSuccess, result.Status)
	s.Equal(int64(987654), result.OrderID)
	s.Equal(int64(25000), result.Amount)
	s.True(result.Fulfilled)
}

func (s *PaymentQueriesTestSuite) TestGetStatusUnknownSession() {
	s.gateway.reads = []*payment.TransactionInfo{nil}
	s.gateway.readErrs = []error{przelewy24.ErrTransactionNotFound}

	result, err := s.newQueries().GetStatus(context.Background(), "masterclass_9_1")
	s.Require().NoError(err)
	s.Equal(payment.StatusNotFound, result.Status)
	s.False(result.Fulfilled)
}

func (s *PaymentQueriesTestSuite) TestGetStatusLedgerFailureIsNotFatal() {
	s.gateway.reads = []*payment.TransactionInfo{tx(5)}
	s.ledger.readErr = errors.New("ledger down")

	result, err := s.newQueries().GetStatus(context.Background(), statusSessionID)
	s.Require().NoError(err)
	s.Equal(payment.StatusSuccess, result.Status)
	s.False(result.Fulfilled)
}

func (s *PaymentQueriesTestSuite) TestProcessReturnAlreadySettled() {
	s.gateway.reads = []*payment.TransactionInfo{tx(5)}

	result, err := s.newQueries().ProcessReturn(context.Background(), statusSessionID, 987654)
	s.Require().NoError(err)
	s.Equal(payment.StatusSuccess, result.Status)
	s.Empty(s.gateway.verified, "no verify when the gateway already reports a final state")
}

func (s *PaymentQueriesTestSuite) TestProcessReturnVerifyResolvesPending() {
	s.gateway.reads = []*payment.TransactionInfo{tx(1)}

	result, err := s.newQueries().ProcessReturn(context.Background(), statusSessionID, 987654)
	s.Require().NoError(err)
	s.Equal(payment.StatusSuccess, result.Status)
	s.Equal(int64(987654), result.OrderID)
	s.Equal([]int64{987654}, s.gateway.verified)
}

func (s *PaymentQueriesTestSuite) TestProcessReturnVerifiesWithReadReportedOrderID() {
	// The return redirect carried no orderId, but the gateway's own record
	// does: the verify override must use it instead of blind re-polling.
	s.gateway.reads = []*payment.TransactionInfo{
		{SessionID: statusSessionID, OrderID: 555777, StatusCode: 2, Amount: 25000, Currency: "PLN"},
	}

	result, err := s.newQueries().ProcessReturn(context.Background(), statusSessionID, 0)
	s.Require().NoError(err)
	s.Equal(payment.StatusSuccess, result.Status)
	s.Equal(int64(555777), result.OrderID)
	s.Equal([]int64{555777}, s.gateway.verified)
	s.Equal(1, s.gateway.readCalls, "no re-poll when the read already names the order")
}

func (s *PaymentQueriesTestSuite) TestProcessReturnVerifyFailureKeepsPending() {
	s.gateway.reads = []*payment.TransactionInfo{tx(1)}
	s.gateway.verifyErr = errors.New("gateway verify returned status \"rejected\"")

	result, err := s.newQueries().ProcessReturn(context.Background(), statusSessionID, 987654)
	s.Require().NoError(err)
	s.True(result.Status.IsPending())
}

func (s *PaymentQueriesTestSuite) TestProcessReturnRepollResolves() {
	// No orderId on the return URL: the query re-polls until the gateway's
	// read model catches up.
	s.cfg.Gateway.StatusRecheckAttempts = 3
	s.gateway.reads = []*payment.TransactionInfo{pendingTx(1), pendingTx(1), tx(5)}

	result, err := s.newQueries().ProcessReturn(context.Background(), statusSessionID, 0)
	s.Require().NoError(err)
	s.Equal(payment.StatusSuccess, result.Status)
	s.Equal(3, s.gateway.readCalls)
	s.Empty(s.gateway.verified)
}

func (s *PaymentQueriesTestSuite) TestProcessReturnRepollExhausted() {
	s.cfg.Gateway.StatusRecheckAttempts = 2
	s.gateway.reads = []*payment.TransactionInfo{pendingTx(2)}

	result, err := s.newQueries().ProcessReturn(context.Background(), statusSessionID, 0)
	s.Require().NoError(err)
	s.Equal(payment.StatusProcessing, result.Status, "still pending after the budget is a valid answer")
	s.Equal(3, s.gateway.readCalls) // initial read + 2 rechecks
}

func (s *PaymentQueriesTestSuite) TestProcessReturnRepollDisabled() {
	s.cfg.Gateway.StatusRecheckAttempts = 0
	s.gateway.reads = []*payment.TransactionInfo{pendingTx(1)}

	result, err := s.newQueries().ProcessReturn(context.Background(), statusSessionID, 0)
	s.Require().NoError(err)
	s.True(result.Status.IsPending())
	s.Equal(1, s.gateway.readCalls)
}
