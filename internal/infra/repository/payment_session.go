package repository

import (
	"context"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentSessionRepository hands buyer form data from initiation time to
// confirmation time. Put upserts (a re-submitted form overwrites its own
// session), TakeAndDelete consumes the row exactly once.
type PaymentSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentSessionRepository(pool *pgxpool.Pool) *PaymentSessionRepository {
	return &PaymentSessionRepository{pool: pool}
}

func (r *PaymentSessionRepository) Put(ctx context.Context, s *payment.Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payment_sessions (
			session_id, item_type, item_id, full_name, email, phone, city,
			image_consent, invoice_needed, company_name, nip, company_address
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (session_id) DO UPDATE SET
			item_type = EXCLUDED.item_type,
			item_id = EXCLUDED.item_id,
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			city = EXCLUDED.city,
			image_consent = EXCLUDED.image_consent,
			invoice_needed = EXCLUDED.invoice_needed,
			company_name = EXCLUDED.company_name,
			nip = EXCLUDED.nip,
			company_address = EXCLUDED.company_address`,
		s.ID, string(s.ItemType), s.ItemID, s.FullName, s.Email, s.Phone, s.City,
		string(s.ImageConsent), s.InvoiceNeeded, s.CompanyName, s.NIP, s.CompanyAddress)
	if err != nil {
		return infra.WrapRepoErr("failed to store payment session", err)
	}
	return nil
}

// TakeAndDelete reads, removes and returns the session in one statement.
// A missing row is a normal, expected case (webhook before initiation, or a
// second observation after the first consumed the session) and comes back as
// a NOT_FOUND kind.
func (r *PaymentSessionRepository) TakeAndDelete(ctx context.Context, sessionID string) (*payment.Session, error) {
	var (
		s        payment.Session
		itemType string
		consent  string
	)
	err := r.pool.QueryRow(ctx, `
		DELETE FROM payment_sessions WHERE session_id = $1
		RETURNING session_id, item_type, item_id, full_name, email, phone, city,
			image_consent, invoice_needed, company_name, nip, company_address, created_at`,
		sessionID).
		Scan(&s.ID, &itemType, &s.ItemID, &s.FullName, &s.Email, &s.Phone, &s.City,
			&consent, &s.InvoiceNeeded, &s.CompanyName, &s.NIP, &s.CompanyAddress, &s.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to take payment session", err)
	}
	s.ItemType = payment.ItemType(itemType)
	s.ImageConsent = payment.ImageConsent(consent)
	return &s, nil
}
