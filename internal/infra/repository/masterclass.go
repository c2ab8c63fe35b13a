package repository

import (
	"context"
	"encoding/json"

	"smakownia-backend/internal/domain/masterclass"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type MasterclassRepository struct {
	pool *pgxpool.Pool
}

func NewMasterclassRepository(pool *pgxpool.Pool) *MasterclassRepository {
	return &MasterclassRepository{pool: pool}
}

const masterclassColumns = `
	id, title_pl, title_en, description_pl, description_en,
	location_pl, location_en, date, date_end, date_type, city,
	hour_start, hour_end, price::text, available_slots, picked_slots,
	faqs, created_at, updated_at`

func (r *MasterclassRepository) List(ctx context.Context) ([]*masterclass.Masterclass, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+masterclassColumns+` FROM masterclasses ORDER BY date`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list masterclasses", err)
	}
	defer rows.Close()

	var result []*masterclass.Masterclass
	for rows.Next() {
		m, err := scanMasterclass(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate masterclasses", err)
	}
	return result, nil
}

func (r *MasterclassRepository) FindByID(ctx context.Context, id string) (*masterclass.Masterclass, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+masterclassColumns+` FROM masterclasses WHERE id = $1`, id)
	m, err := scanMasterclass(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("masterclass not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return m, nil
}

func (r *MasterclassRepository) Create(ctx context.Context, m *masterclass.Masterclass) error {
	faqs, err := json.Marshal(m.FAQs)
	if err != nil {
		return infra.WrapRepoErr("failed to encode faqs", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO masterclasses (
			id, title_pl, title_en, description_pl, description_en,
			location_pl, location_en, date, date_end, date_type, city,
			hour_start, hour_end, price, available_slots, picked_slots, faqs
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		m.ID, m.Title.PL, m.Title.EN, m.Description.PL, m.Description.EN,
		m.Location.PL, m.Location.EN, m.Date, pgconv.TimePtrToPgtype(m.DateEnd),
		string(m.DateType), m.City, m.HourStart, m.HourEnd,
		m.Price.StringFixed(2), m.AvailableSlots, m.PickedSlots, faqs)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("masterclass already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create masterclass", err)
	}
	return nil
}

func (r *MasterclassRepository) Update(ctx context.Context, m *masterclass.Masterclass) error {
	faqs, err := json.Marshal(m.FAQs)
	if err != nil {
		return infra.WrapRepoErr("failed to encode faqs", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE masterclasses SET
			title_pl = $2, title_en = $3, description_pl = $4, description_en = $5,
			location_pl = $6, location_en = $7, date = $8, date_end = $9,
			date_type = $10, city = $11, hour_start = $12, hour_end = $13,
			price = $14, available_slots = $15, picked_slots = $16, faqs = $17,
			updated_at = now()
		WHERE id = $1`,
		m.ID, m.Title.PL, m.Title.EN, m.Description.PL, m.Description.EN,
		m.Location.PL, m.Location.EN, m.Date, pgconv.TimePtrToPgtype(m.DateEnd),
		string(m.DateType), m.City, m.HourStart, m.HourEnd,
		m.Price.StringFixed(2), m.AvailableSlots, m.PickedSlots, faqs)
	if err != nil {
		return infra.WrapRepoErr("failed to update masterclass", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("masterclass not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MasterclassRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM masterclasses WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete masterclass", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("masterclass not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReduceSlot books one seat atomically. The WHERE guard keeps the counter at
// its floor: with zero capacity no row matches and (false, nil) is returned.
func (r *MasterclassRepository) ReduceSlot(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE masterclasses
		SET available_slots = available_slots - 1,
		    picked_slots = picked_slots + 1,
		    updated_at = now()
		WHERE id = $1 AND available_slots > 0`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reduce slot", err)
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMasterclass(row rowScanner) (*masterclass.Masterclass, error) {
	var (
		m        masterclass.Masterclass
		dateEnd  pgtype.Timestamptz
		priceStr string
		faqsRaw  []byte
		dateType string
	)

	err := row.Scan(
		&m.ID, &m.Title.PL, &m.Title.EN, &m.Description.PL, &m.Description.EN,
		&m.Location.PL, &m.Location.EN, &m.Date, &dateEnd, &dateType, &m.City,
		&m.HourStart, &m.HourEnd, &priceStr, &m.AvailableSlots, &m.PickedSlots,
		&faqsRaw, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan masterclass", err)
	}

	m.DateEnd = pgconv.TimePtrFromPgtype(dateEnd)
	m.DateType = masterclass.DateType(dateType)

	m.Price, err = decimal.NewFromString(priceStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid price value", err)
	}
	if len(faqsRaw) > 0 {
		if err := json.Unmarshal(faqsRaw, &m.FAQs); err != nil {
			return nil, infra.WrapRepoErr("invalid faqs value", err)
		}
	}
	return &m, nil
}
