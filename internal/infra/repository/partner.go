package repository

import (
	"context"

	"smakownia-backend/internal/domain/catalog"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PartnerRepository struct {
	pool *pgxpool.Pool
}

func NewPartnerRepository(pool *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{pool: pool}
}

const partnerColumns = `id, name, logo, url, description_pl, description_en, created_at, updated_at`

func (r *PartnerRepository) List(ctx context.Context) ([]*catalog.Partner, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+partnerColumns+` FROM partners ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list partners", err)
	}
	defer rows.Close()

	var result []*catalog.Partner
	for rows.Next() {
		var p catalog.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Logo, &p.URL,
			&p.Description.PL, &p.Description.EN, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan partner", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate partners", err)
	}
	return result, nil
}

func (r *PartnerRepository) FindByID(ctx context.Context, id string) (*catalog.Partner, error) {
	var p catalog.Partner
	err := r.pool.QueryRow(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Logo, &p.URL,
			&p.Description.PL, &p.Description.EN, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find partner", err)
	}
	return &p, nil
}

func (r *PartnerRepository) Create(ctx context.Context, p *catalog.Partner) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO partners (id, name, logo, url, description_pl, description_en)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.Name, p.Logo, p.URL, p.Description.PL, p.Description.EN)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("partner already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create partner", err)
	}
	return nil
}

func (r *PartnerRepository) Update(ctx context.Context, p *catalog.Partner) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE partners SET name = $2, logo = $3, url = $4,
			description_pl = $5, description_en = $6, updated_at = now()
		WHERE id = $1`,
		p.ID, p.Name, p.Logo, p.URL, p.Description.PL, p.Description.EN)
	if err != nil {
		return infra.WrapRepoErr("failed to update partner", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("partner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete partner", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("partner not found", nil, infra.KindNotFound)
	}
	return nil
}
