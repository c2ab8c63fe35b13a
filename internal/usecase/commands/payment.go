package commands

import (
	"context"
	"fmt"
	"log/slog"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/infra/przelewy24"
	"smakownia-backend/internal/pkg/clock"
	"smakownia-backend/internal/pkg/errs"
	"smakownia-backend/internal/pkg/metrics"

	"github.com/shopspring/decimal"
)

type CreatePaymentParams struct {
	Amount         decimal.Decimal
	ItemType       payment.ItemType
	ItemID         string
	SessionID      string // optional; minted when empty
	FullName       string
	Email          string
	Phone          string
	City           string
	ImageConsent   payment.ImageConsent
	InvoiceNeeded  bool
	CompanyName    string
	NIP            string
	CompanyAddress string
}

type PaymentCommands interface {
	// CreatePayment stores the buyer's session and registers the transaction
	// with the gateway, returning the redirect handle.
	CreatePayment(ctx context.Context, p CreatePaymentParams) (*przelewy24.RegisterResult, error)
	// RetryPayment re-initiates a failed purchase. It always mints a
	// brand-new sessionId; a failed session is never reused.
	RetryPayment(ctx context.Context, p CreatePaymentParams) (*przelewy24.RegisterResult, error)
}

type paymentCommandsImpl struct {
	gateway         Gateway
	sessions        SessionStore
	masterclassRepo MasterclassRepository
	clock           clock.Clock
}

func NewPaymentCommands(
	gateway Gateway,
	sessions SessionStore,
	masterclassRepo MasterclassRepository,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		gateway:         gateway,
		sessions:        sessions,
		masterclassRepo: masterclassRepo,
		clock:           clock,
	}
}

func (c *paymentCommandsImpl) CreatePayment(ctx context.Context, p CreatePaymentParams) (*przelewy24.RegisterResult, error) {
	if !p.ItemType.Valid() {
		return nil, errs.ErrInvalidItemType
	}
	if !p.Amount.IsPositive() {
		return nil, errs.ErrInvalidAmount
	}

	sessionID := p.SessionID
	if sessionID == "" {
		sessionID = payment.NewSessionID(p.ItemType, p.ItemID, c.clock.Now())
	}

	session := &payment.Session{
		ID:             sessionID,
		ItemType:       p.ItemType,
		ItemID:         p.ItemID,
		FullName:       p.FullName,
		Email:          p.Email,
		Phone:          p.Phone,
		City:           p.City,
		ImageConsent:   p.ImageConsent,
		InvoiceNeeded:  p.InvoiceNeeded,
		CompanyName:    p.CompanyName,
		NIP:            p.NIP,
		CompanyAddress: p.CompanyAddress,
	}
	if err := session.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.sessions.Put(ctx, session); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result, err := c.gateway.Register(ctx, przelewy24.RegisterParams{
		SessionID:   sessionID,
		Amount:      MinorUnits(p.Amount),
		Description: c.describeItem(ctx, p.ItemType, p.ItemID),
		Email:       p.Email,
		ClientName:  p.FullName,
		Phone:       p.Phone,
	})
	if err != nil {
		return nil, err
	}

	metrics.PaymentsRegistered.Inc()
	return result, nil
}

func (c *paymentCommandsImpl) RetryPayment(ctx context.Context, p CreatePaymentParams) (*przelewy24.RegisterResult, error) {
	// A retried payment must regenerate its identity: ignore any sessionId
	// the caller sent along.
	p.SessionID = ""
	return c.CreatePayment(ctx, p)
}

// describeItem builds the human-readable statement shown on the gateway's
// checkout page. Enrichment is best effort: a lookup failure falls back to a
// generic label, it never fails the payment.
func (c *paymentCommandsImpl) describeItem(ctx context.Context, itemType payment.ItemType, itemID string) string {
	if itemType != payment.ItemMasterclass {
		return "Smakownia - produkt online " + itemID
	}

	mc, err := c.masterclassRepo.FindByID(ctx, payment.ExtractMasterclassID(itemID))
	if err != nil {
		slog.Warn("description enrichment failed, using generic label",
			"item_id", itemID, "error", err.Error())
		return "Smakownia - warsztaty kulinarne"
	}
	return fmt.Sprintf("Smakownia - warsztaty: %s, %s (%s)",
		mc.Title.PL, mc.Location.PL, mc.FormattedDate())
}

// MinorUnits converts whole currency units (złoty) to the gateway's minor
// units (grosz): multiply by 100 and round half up.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
