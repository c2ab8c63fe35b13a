package repository

import (
	"context"

	"smakownia-backend/internal/domain/catalog"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

const locationColumns = `id, name, city, address, latitude, longitude, created_at, updated_at`

func (r *LocationRepository) List(ctx context.Context) ([]*catalog.MapLocation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+locationColumns+` FROM map_locations ORDER BY city, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list map locations", err)
	}
	defer rows.Close()

	var result []*catalog.MapLocation
	for rows.Next() {
		var l catalog.MapLocation
		if err := rows.Scan(&l.ID, &l.Name, &l.City, &l.Address,
			&l.Latitude, &l.Longitude, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan map location", err)
		}
		result = append(result, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate map locations", err)
	}
	return result, nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id string) (*catalog.MapLocation, error) {
	var l catalog.MapLocation
	err := r.pool.QueryRow(ctx, `SELECT `+locationColumns+` FROM map_locations WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.City, &l.Address,
			&l.Latitude, &l.Longitude, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("map location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find map location", err)
	}
	return &l, nil
}

func (r *LocationRepository) Create(ctx context.Context, l *catalog.MapLocation) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO map_locations (id, name, city, address, latitude, longitude)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		l.ID, l.Name, l.City, l.Address, l.Latitude, l.Longitude)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("map location already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create map location", err)
	}
	return nil
}

func (r *LocationRepository) Update(ctx context.Context, l *catalog.MapLocation) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE map_locations SET name = $2, city = $3, address = $4,
			latitude = $5, longitude = $6, updated_at = now()
		WHERE id = $1`,
		l.ID, l.Name, l.City, l.Address, l.Latitude, l.Longitude)
	if err != nil {
		return infra.WrapRepoErr("failed to update map location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("map location not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM map_locations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete map location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("map location not found", nil, infra.KindNotFound)
	}
	return nil
}
