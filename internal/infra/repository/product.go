package repository

import (
	"context"

	"smakownia-backend/internal/domain/product"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `
	id, type, title_pl, title_en, description_pl, description_en,
	price::text, photo, created_at, updated_at`

func (r *ProductRepository) List(ctx context.Context) ([]*product.OnlineProduct, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM online_products ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list online products", err)
	}
	defer rows.Close()

	var result []*product.OnlineProduct
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate online products", err)
	}
	return result, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.OnlineProduct, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM online_products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("online product not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *product.OnlineProduct) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO online_products (id, type, title_pl, title_en, description_pl, description_en, price, photo)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, string(p.Type), p.Title.PL, p.Title.EN,
		p.Description.PL, p.Description.EN, p.Price.StringFixed(2), p.Photo)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("online product already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create online product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.OnlineProduct) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE online_products SET
			type = $2, title_pl = $3, title_en = $4,
			description_pl = $5, description_en = $6,
			price = $7, photo = $8, updated_at = now()
		WHERE id = $1`,
		p.ID, string(p.Type), p.Title.PL, p.Title.EN,
		p.Description.PL, p.Description.EN, p.Price.StringFixed(2), p.Photo)
	if err != nil {
		return infra.WrapRepoErr("failed to update online product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("online product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM online_products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete online product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("online product not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanProduct(row rowScanner) (*product.OnlineProduct, error) {
	var (
		p        product.OnlineProduct
		typ      string
		priceStr string
	)
	err := row.Scan(
		&p.ID, &typ, &p.Title.PL, &p.Title.EN,
		&p.Description.PL, &p.Description.EN,
		&priceStr, &p.Photo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan online product", err)
	}
	p.Type = product.Type(typ)
	p.Price, err = decimal.NewFromString(priceStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid price value", err)
	}
	return &p, nil
}
