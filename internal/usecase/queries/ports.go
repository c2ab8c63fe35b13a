package queries

import (
	"context"

	"smakownia-backend/internal/domain/catalog"
	"smakownia-backend/internal/domain/masterclass"
	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/domain/product"
)

// Read-side ports. Narrower than the command-side counterparts on purpose:
// queries never mutate.

type Gateway interface {
	GetBySessionID(ctx context.Context, sessionID string) (*payment.TransactionInfo, error)
	Verify(ctx context.Context, sessionID string, orderID, amount int64) error
}

type MasterclassReader interface {
	List(ctx context.Context) ([]*masterclass.Masterclass, error)
	FindByID(ctx context.Context, id string) (*masterclass.Masterclass, error)
}

type ProductReader interface {
	List(ctx context.Context) ([]*product.OnlineProduct, error)
	FindByID(ctx context.Context, id string) (*product.OnlineProduct, error)
}

type PartnerReader interface {
	List(ctx context.Context) ([]*catalog.Partner, error)
}

type LocationReader interface {
	List(ctx context.Context) ([]*catalog.MapLocation, error)
}

type FulfillmentReader interface {
	IsFulfilled(ctx context.Context, sessionID string) (bool, error)
}
