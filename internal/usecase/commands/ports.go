package commands

import (
	"context"

	"smakownia-backend/internal/domain/catalog"
	"smakownia-backend/internal/domain/masterclass"
	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/domain/product"
	"smakownia-backend/internal/domain/user"
	"smakownia-backend/internal/infra/przelewy24"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra; handlers and
// tests only ever see these interfaces.

type Gateway interface {
	Register(ctx context.Context, p przelewy24.RegisterParams) (*przelewy24.RegisterResult, error)
	GetBySessionID(ctx context.Context, sessionID string) (*payment.TransactionInfo, error)
	Verify(ctx context.Context, sessionID string, orderID, amount int64) error
	VerifyNotificationSign(n payment.Notification) bool
}

type SessionStore interface {
	Put(ctx context.Context, s *payment.Session) error
	TakeAndDelete(ctx context.Context, sessionID string) (*payment.Session, error)
}

type FulfillmentLedger interface {
	TryClaim(ctx context.Context, sessionID string, orderID int64, itemType, itemID string) (bool, error)
	IsFulfilled(ctx context.Context, sessionID string) (bool, error)
}

type MasterclassRepository interface {
	FindByID(ctx context.Context, id string) (*masterclass.Masterclass, error)
	Create(ctx context.Context, m *masterclass.Masterclass) error
	Update(ctx context.Context, m *masterclass.Masterclass) error
	Delete(ctx context.Context, id string) error
	ReduceSlot(ctx context.Context, id string) (bool, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*product.OnlineProduct, error)
	Create(ctx context.Context, p *product.OnlineProduct) error
	Update(ctx context.Context, p *product.OnlineProduct) error
	Delete(ctx context.Context, id string) error
}

type PartnerRepository interface {
	Create(ctx context.Context, p *catalog.Partner) error
	Update(ctx context.Context, p *catalog.Partner) error
	Delete(ctx context.Context, id string) error
}

type LocationRepository interface {
	Create(ctx context.Context, l *catalog.MapLocation) error
	Update(ctx context.Context, l *catalog.MapLocation) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type Mailer interface {
	Send(to, subject, htmlBody string) error
	OperatorAddress() string
}
