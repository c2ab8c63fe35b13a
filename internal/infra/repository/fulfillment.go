package repository

import (
	"context"

	"smakownia-backend/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FulfillmentRepository is the dedupe ledger for confirmed payments. Both
// observation paths (webhook and poll) may conclude "success" for one
// sessionId; whoever claims the ledger row first runs the side effects,
// everyone else backs off.
type FulfillmentRepository struct {
	pool *pgxpool.Pool
}

func NewFulfillmentRepository(pool *pgxpool.Pool) *FulfillmentRepository {
	return &FulfillmentRepository{pool: pool}
}

// TryClaim inserts the ledger row for sessionID. Returns true when this
// caller won the claim, false when the payment was already fulfilled.
func (r *FulfillmentRepository) TryClaim(ctx context.Context, sessionID string, orderID int64, itemType, itemID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO payment_fulfillments (session_id, order_id, item_type, item_id)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (session_id) DO NOTHING`,
		sessionID, orderID, itemType, itemID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim fulfillment", err)
	}
	return tag.RowsAffected() > 0, nil
}

// IsFulfilled reports whether the sessionId was already claimed. Used by the
// informational paths to report state without writing anything.
func (r *FulfillmentRepository) IsFulfilled(ctx context.Context, sessionID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payment_fulfillments WHERE session_id = $1)`,
		sessionID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check fulfillment", err)
	}
	return exists, nil
}
