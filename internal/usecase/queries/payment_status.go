package queries

import (
	"context"
	"errors"
	"log/slog"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/infra/przelewy24"
	"smakownia-backend/internal/pkg/config"
	"smakownia-backend/internal/pkg/errs"
	"smakownia-backend/internal/pkg/metrics"

	"github.com/avast/retry-go"
)

// StatusResult is what the storefront polls after the buyer returns from the
// hosted checkout.
type StatusResult struct {
	SessionID string
	Status    payment.Status
	OrderID   int64
	Amount    int64
	Fulfilled bool
}

// PaymentQueries answers payment status reads. These are informational only:
// fulfillment is driven exclusively by the gateway's webhook, never by a
// status poll.
type PaymentQueries interface {
	// GetStatus reads the transaction's current state from the gateway and
	// projects it to the internal enum. An unknown session is StatusNotFound,
	// not an error.
	GetStatus(ctx context.Context, sessionID string) (*StatusResult, error)
	// ProcessReturn handles the buyer landing back on the storefront. A
	// transaction the gateway still reports as pending gets a verify attempt
	// (when the return carried an orderId) or a bounded re-poll, because the
	// gateway's read model can lag the redirect by a few seconds.
	ProcessReturn(ctx context.Context, sessionID string, orderID int64) (*StatusResult, error)
}

type paymentQueriesImpl struct {
	gateway      Gateway
	fulfillments FulfillmentReader
	cfg          config.GatewayConfig
}

func NewPaymentQueries(gateway Gateway, fulfillments FulfillmentReader, cfg config.Config) PaymentQueries {
	return &paymentQueriesImpl{
		gateway:      gateway,
		fulfillments: fulfillments,
		cfg:          cfg.Gateway,
	}
}

func (q *paymentQueriesImpl) GetStatus(ctx context.Context, sessionID string) (*StatusResult, error) {
	return q.read(ctx, sessionID)
}

func (q *paymentQueriesImpl) ProcessReturn(ctx context.Context, sessionID string, orderID int64) (*StatusResult, error) {
	result, err := q.read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !result.Status.IsPending() {
		return result, nil
	}

	// The buyer is back but the gateway read model has not settled yet. With
	// an orderId in hand a verify call resolves the state immediately;
	// without one, re-poll a bounded number of times. The read itself may
	// already carry the orderId even when the return redirect did not.
	if orderID == 0 {
		orderID = result.OrderID
	}
	if orderID != 0 {
		if err := q.gateway.Verify(ctx, sessionID, orderID, result.Amount); err != nil {
			slog.Warn("verify on buyer return failed", "session_id", sessionID, "error", err.Error())
			return result, nil
		}
		result.Status = payment.StatusSuccess
		result.OrderID = orderID
		return result, nil
	}

	return q.repoll(ctx, sessionID, result)
}

func (q *paymentQueriesImpl) repoll(ctx context.Context, sessionID string, last *StatusResult) (*StatusResult, error) {
	if q.cfg.StatusRecheckAttempts <= 0 {
		return last, nil
	}

	err := retry.Do(
		func() error {
			metrics.StatusRechecks.Inc()
			result, err := q.read(ctx, sessionID)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			last = result
			if result.Status.IsPending() {
				return errs.Newf("still pending: %s", result.Status)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(q.cfg.StatusRecheckAttempts)),
		retry.Delay(q.cfg.StatusRecheckDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil && ctx.Err() != nil {
		return nil, errs.Wrap(ctx.Err(), "status re-poll")
	}
	// Still pending after the budget is a valid answer; the storefront keeps
	// showing the "processing" screen.
	return last, nil
}

func (q *paymentQueriesImpl) read(ctx context.Context, sessionID string) (*StatusResult, error) {
	result := &StatusResult{SessionID: sessionID}

	info, err := q.gateway.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, przelewy24.ErrTransactionNotFound) {
			result.Status = payment.StatusNotFound
			return result, nil
		}
		return nil, err
	}

	result.Status = payment.StatusFromGatewayCode(info.StatusCode)
	result.OrderID = info.OrderID
	result.Amount = info.Amount

	fulfilled, err := q.fulfillments.IsFulfilled(ctx, sessionID)
	if err != nil {
		slog.Warn("fulfillment ledger read failed", "session_id", sessionID, "error", err.Error())
	} else {
		result.Fulfilled = fulfilled
	}

	return result, nil
}
