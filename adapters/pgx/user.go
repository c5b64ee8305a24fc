package pgx

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/CHEATEY13/Last/core"
)

const uniqueViolation = "23505"

func (a *Adapter) CreateUser(ctx context.Context, u *core.User) error {
	query := `INSERT INTO public.users (id, email, password_hash, name)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`

	email := strings.ToLower(strings.TrimSpace(u.Email))

	var createdAt time.Time
	err := a.pool.QueryRow(ctx, query, u.ID, email, u.PasswordHash, u.Name).Scan(&createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return core.ErrUserExists
		}
		return err
	}

	u.Email = email
	u.CreatedAt = createdAt
	return nil
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	query := `SELECT id, email, password_hash, name, created_at
	          FROM public.users WHERE id = $1`

	u := &core.User{}
	err := a.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}

	if err := a.loadSessions(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	query := `SELECT id, email, password_hash, name, created_at
	          FROM public.users WHERE email = $1`

	u := &core.User{}
	err := a.pool.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}

	if err := a.loadSessions(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (a *Adapter) loadSessions(ctx context.Context, u *core.User) error {
	query := `SELECT id, type, code, language, target_language, result, created_at
	          FROM public.code_sessions
	          WHERE user_id = $1
	          ORDER BY created_at ASC`

	rows, err := a.pool.Query(ctx, query, u.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s core.CodeSession
		var result []byte
		if err := rows.Scan(&s.ID, &s.Type, &s.Code, &s.Language, &s.TargetLanguage, &result, &s.Timestamp); err != nil {
			return err
		}
		if len(result) > 0 {
			var v any
			if err := json.Unmarshal(result, &v); err == nil {
				s.Result = v
			}
		}
		u.Sessions = append(u.Sessions, s)
	}
	return rows.Err()
}

func (a *Adapter) AddSession(ctx context.Context, userID string, s core.CodeSession) error {
	result, err := json.Marshal(s.Result)
	if err != nil {
		return err
	}

	insert := `INSERT INTO public.code_sessions (id, user_id, type, code, language, target_language, result, created_at)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	tag, err := a.pool.Exec(ctx, insert,
		s.ID, userID, s.Type, s.Code, s.Language, s.TargetLanguage, result, s.Timestamp,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// foreign_key_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return core.ErrUserNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}

	// Rotate out everything past the history cap, oldest first.
	trim := `DELETE FROM public.code_sessions
	         WHERE user_id = $1 AND id NOT IN (
	             SELECT id FROM public.code_sessions
	             WHERE user_id = $1
	             ORDER BY created_at DESC
	             LIMIT $2
	         )`

	_, err = a.pool.Exec(ctx, trim, userID, core.MaxSessionHistory)
	return err
}
