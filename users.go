package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore is the persistence seam for the auth pipeline. The pgx
// implementation below is the real store; tests substitute an in-memory one.
type UserStore interface {
	// GetUserByEmail returns (nil, nil) when no user exists for the email
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, email, name, image string) (*User, error)
	// TouchUser refreshes last_login, name and image for an existing user
	TouchUser(ctx context.Context, email, name, image string) (*User, error)
}

const userColumns = "id::text, email, COALESCE(name, ''), COALESCE(image, ''), last_login, created_at, updated_at"

// pgxUserStore persists users in the shared Postgres pool
type pgxUserStore struct {
	pool *pgxpool.Pool
}

func newPgxUserStore(pool *pgxpool.Pool) *pgxUserStore {
	return &pgxUserStore{pool: pool}
}

func (s *pgxUserStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row := s.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *pgxUserStore) CreateUser(ctx context.Context, email, name, image string) (*User, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, image, last_login)
		 VALUES ($1, $2, $3, NOW())
		 RETURNING `+userColumns, email, name, image)

	return scanUser(row)
}

func (s *pgxUserStore) TouchUser(ctx context.Context, email, name, image string) (*User, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE users
		 SET last_login = NOW(), name = $2, image = $3, updated_at = NOW()
		 WHERE email = $1
		 RETURNING `+userColumns, email, name, image)

	return scanUser(row)
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Image, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
