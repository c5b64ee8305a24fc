// Package pgx persists users and their code history in PostgreSQL.
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CHEATEY13/Last/core"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.UserStore = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}

// Migrate creates the schema if it does not exist. Suitable for the
// single-binary deployments this service targets; larger installs
// should run migrations out of band.
func (a *Adapter) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS public.users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS public.code_sessions (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES public.users(id) ON DELETE CASCADE,
		type            TEXT NOT NULL,
		code            TEXT NOT NULL,
		language        TEXT NOT NULL,
		target_language TEXT NOT NULL DEFAULT '',
		result          JSONB,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS code_sessions_user_created_idx
		ON public.code_sessions (user_id, created_at);`

	_, err := a.pool.Exec(ctx, schema)
	return err
}
