package repository

import (
	"context"

	"smakownia-backend/internal/domain/user"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var (
		id           uuid.UUID
		emailStr     string
		passwordHash string
		roleStr      string
		lastLogin    pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role, last_login FROM users WHERE email = $1`,
		email).Scan(&id, &emailStr, &passwordHash, &roleStr, &lastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	emailVO, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user email invalid", err)
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user role invalid", err)
	}

	return user.ReconstructUser(id, emailVO, passwordHash, role, pgconv.TimePtrFromPgtype(lastLogin)), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role) VALUES ($1,$2,$3,$4)`,
		u.ID(), u.Email().String(), u.PasswordHash(), u.Role().String())
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("user already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
