package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/infra/mailer"
	"smakownia-backend/internal/pkg/config"
	"smakownia-backend/internal/pkg/errs"
	"smakownia-backend/internal/pkg/metrics"

	"github.com/shopspring/decimal"
)

// WebhookOutcome describes what the notification handler did. It exists for
// logging and metrics only; the HTTP response to the gateway is always 200.
type WebhookOutcome string

const (
	OutcomeFulfilled   WebhookOutcome = "fulfilled"
	OutcomeDuplicate   WebhookOutcome = "duplicate"
	OutcomeBadSign     WebhookOutcome = "bad_sign"
	OutcomeVerifyError WebhookOutcome = "verify_error"
	OutcomeRejected    WebhookOutcome = "rejected"
)

type FulfillmentCommands interface {
	// HandleWebhook processes a gateway transaction notification. It reports
	// the outcome for observability; callers must acknowledge the gateway
	// with HTTP 200 regardless.
	HandleWebhook(ctx context.Context, n payment.Notification) WebhookOutcome
	// Fulfill runs the side effects for a confirmed payment exactly once per
	// session: claim the ledger entry, consume the stored session, book the
	// seat, send both emails.
	Fulfill(ctx context.Context, sessionID string, orderID, amount int64) error
}

type fulfillmentCommandsImpl struct {
	gateway         Gateway
	sessions        SessionStore
	ledger          FulfillmentLedger
	masterclassRepo MasterclassRepository
	productRepo     ProductRepository
	mailer          Mailer
	cfg             config.GatewayConfig
}

func NewFulfillmentCommands(
	gateway Gateway,
	sessions SessionStore,
	ledger FulfillmentLedger,
	masterclassRepo MasterclassRepository,
	productRepo ProductRepository,
	mailer Mailer,
	cfg config.Config,
) FulfillmentCommands {
	return &fulfillmentCommandsImpl{
		gateway:         gateway,
		sessions:        sessions,
		ledger:          ledger,
		masterclassRepo: masterclassRepo,
		productRepo:     productRepo,
		mailer:          mailer,
		cfg:             cfg.Gateway,
	}
}

func (c *fulfillmentCommandsImpl) HandleWebhook(ctx context.Context, n payment.Notification) WebhookOutcome {
	log := slog.With("session_id", n.SessionID, "order_id", n.OrderID)

	if !c.cfg.SkipWebhookSignature && !c.gateway.VerifyNotificationSign(n) {
		log.Warn("webhook signature mismatch, notification dropped")
		metrics.WebhooksReceived.WithLabelValues(string(OutcomeBadSign)).Inc()
		return OutcomeBadSign
	}

	// Closing the loop with the gateway is what moves the transaction to its
	// final confirmed state on their side. Without it the funds are returned
	// to the buyer after the claim window.
	if err := c.gateway.Verify(ctx, n.SessionID, n.OrderID, n.Amount); err != nil {
		log.Error("transaction verify failed", "error", err.Error())
		metrics.WebhooksReceived.WithLabelValues(string(OutcomeVerifyError)).Inc()
		return OutcomeVerifyError
	}

	if err := c.Fulfill(ctx, n.SessionID, n.OrderID, n.Amount); err != nil {
		if errors.Is(err, errs.ErrAlreadyFulfilled) {
			log.Info("duplicate notification, already fulfilled")
			metrics.WebhooksReceived.WithLabelValues(string(OutcomeDuplicate)).Inc()
			return OutcomeDuplicate
		}
		log.Error("fulfillment failed", "error", err.Error())
		metrics.WebhooksReceived.WithLabelValues(string(OutcomeRejected)).Inc()
		return OutcomeRejected
	}

	metrics.WebhooksReceived.WithLabelValues(string(OutcomeFulfilled)).Inc()
	return OutcomeFulfilled
}

func (c *fulfillmentCommandsImpl) Fulfill(ctx context.Context, sessionID string, orderID, amount int64) error {
	log := slog.With("session_id", sessionID, "order_id", orderID)

	itemType, itemID := splitSessionID(sessionID)

	// The ledger insert is the single idempotency gate. Only the caller that
	// wins the claim runs the side effects below; every later notification
	// for the same session stops here.
	claimed, err := c.ledger.TryClaim(ctx, sessionID, orderID, itemType, itemID)
	if err != nil {
		return errs.Wrap(err, "fulfillment claim")
	}
	if !claimed {
		return errs.ErrAlreadyFulfilled
	}

	// From the claim onward every step is independently fallible. A failed
	// email or a sold-out workshop must not undo a payment that already
	// settled, so failures are logged and the remaining steps still run.
	session, err := c.sessions.TakeAndDelete(ctx, sessionID)
	if err != nil {
		log.Warn("stored session unavailable, falling back to gateway data", "error", err.Error())
		session = c.sessionFromGateway(ctx, sessionID, itemType, itemID)
	}

	summary := mailer.OrderSummary{
		ItemType:       itemType,
		ItemID:         itemID,
		FullName:       session.FullName,
		Email:          session.Email,
		Phone:          session.Phone,
		City:           session.City,
		ImageConsent:   string(session.ImageConsent),
		InvoiceNeeded:  session.InvoiceNeeded,
		CompanyName:    session.CompanyName,
		NIP:            session.NIP,
		CompanyAddress: session.CompanyAddress,
		AmountFmt:      formatGrosz(amount),
		SessionID:      sessionID,
		OrderID:        orderID,
	}

	var workshop *mailer.WorkshopDetails
	if session.ItemType == payment.ItemMasterclass {
		workshop = c.bookMasterclassSeat(ctx, log, itemID, session.FullName, &summary)
	} else {
		summary.ItemTitle = c.productTitle(ctx, itemID)
	}

	c.sendOperatorEmail(log, summary)
	if workshop != nil && session.Email != "" {
		c.sendBuyerEmail(log, session.Email, *workshop)
	}

	metrics.FulfillmentsCompleted.Inc()
	log.Info("payment fulfilled")
	return nil
}

// bookMasterclassSeat decrements the workshop's capacity and builds the buyer
// confirmation input. A workshop at zero capacity is logged and skipped; the
// payment already happened and the operator resolves the overbooking by hand.
func (c *fulfillmentCommandsImpl) bookMasterclassSeat(ctx context.Context, log *slog.Logger, itemID, fullName string, summary *mailer.OrderSummary) *mailer.WorkshopDetails {
	id := payment.ExtractMasterclassID(itemID)

	reduced, err := c.masterclassRepo.ReduceSlot(ctx, id)
	if err != nil {
		log.Error("slot reduction failed", "masterclass_id", id, "error", err.Error())
	} else if !reduced {
		log.Warn("paid booking for a sold-out workshop", "masterclass_id", id)
	}

	mc, err := c.masterclassRepo.FindByID(ctx, id)
	if err != nil {
		log.Warn("masterclass lookup failed, buyer confirmation skipped", "masterclass_id", id, "error", err.Error())
		summary.ItemTitle = itemID
		return nil
	}

	summary.ItemTitle = mc.Title.PL
	return &mailer.WorkshopDetails{
		Title:      mc.Title.PL,
		DateFmt:    mc.FormattedDate(),
		TimeWindow: mc.TimeWindow(),
		Location:   mc.Location.PL,
		City:       mc.City,
		FullName:   fullName,
	}
}

func (c *fulfillmentCommandsImpl) productTitle(ctx context.Context, itemID string) string {
	p, err := c.productRepo.FindByID(ctx, itemID)
	if err != nil {
		return itemID
	}
	return p.Title.PL
}

// sessionFromGateway reconstructs the minimum buyer data from the gateway's
// transaction record when the local session is gone (already consumed, or the
// server restarted between initiation and confirmation).
func (c *fulfillmentCommandsImpl) sessionFromGateway(ctx context.Context, sessionID, itemType, itemID string) *payment.Session {
	session := &payment.Session{
		ID:       sessionID,
		ItemType: payment.ItemType(itemType),
		ItemID:   itemID,
	}
	info, err := c.gateway.GetBySessionID(ctx, sessionID)
	if err != nil {
		slog.Warn("gateway transaction lookup failed, buyer data unavailable",
			"session_id", sessionID, "error", err.Error())
		return session
	}
	session.FullName = info.ClientName
	session.Email = info.ClientEmail
	session.Phone = info.ClientPhone
	return session
}

func (c *fulfillmentCommandsImpl) sendOperatorEmail(log *slog.Logger, summary mailer.OrderSummary) {
	subject, body := mailer.OperatorNotification(summary)
	if err := c.mailer.Send(c.mailer.OperatorAddress(), subject, body); err != nil {
		log.Error("operator notification email failed", "error", err.Error())
		metrics.EmailsSent.WithLabelValues("operator", "error").Inc()
		return
	}
	metrics.EmailsSent.WithLabelValues("operator", "ok").Inc()
}

func (c *fulfillmentCommandsImpl) sendBuyerEmail(log *slog.Logger, to string, w mailer.WorkshopDetails) {
	subject, body := mailer.BuyerConfirmation(w)
	if err := c.mailer.Send(to, subject, body); err != nil {
		log.Error("buyer confirmation email failed", "to", to, "error", err.Error())
		metrics.EmailsSent.WithLabelValues("buyer", "error").Inc()
		return
	}
	metrics.EmailsSent.WithLabelValues("buyer", "ok").Inc()
}

// splitSessionID recovers the item coordinates embedded in the session id,
// {itemType}_{itemId}_{timestamp}. The item id may itself contain
// underscores, so only the outermost pair is split off.
func splitSessionID(sessionID string) (itemType, itemID string) {
	rest := sessionID
	if i := strings.Index(rest, "_"); i >= 0 {
		itemType, rest = rest[:i], rest[i+1:]
	}
	if i := strings.LastIndex(rest, "_"); i >= 0 {
		return itemType, rest[:i]
	}
	return itemType, rest
}

func formatGrosz(amount int64) string {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)).StringFixed(2) + " PLN"
}
