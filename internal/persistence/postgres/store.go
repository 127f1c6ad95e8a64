// Package postgres provides a durable roster store behind the same
// contract as the in-memory registry.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/signup/internal/domain"
)

// Store provides Postgres-backed persistence for the activity registry.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the registry tables if they do not exist. The
// participants position column preserves signup order for display.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS activities (
			name             text PRIMARY KEY,
			description      text NOT NULL,
			schedule         text NOT NULL,
			max_participants integer NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS participants (
			activity_name text NOT NULL REFERENCES activities(name),
			email         text NOT NULL,
			position      bigserial,
			PRIMARY KEY (activity_name, email)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Seed inserts the given activities idempotently. Activities already
// present keep their current roster untouched.
func (s *Store) Seed(ctx context.Context, activities []domain.Activity) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insertActivity = `INSERT INTO activities (name, description, schedule, max_participants)
		VALUES ($1,$2,$3,$4) ON CONFLICT (name) DO NOTHING`
	const insertParticipant = `INSERT INTO participants (activity_name, email)
		VALUES ($1,$2) ON CONFLICT DO NOTHING`

	for _, activity := range activities {
		tag, err := tx.Exec(ctx, insertActivity,
			activity.Name, activity.Description, activity.Schedule, activity.MaxParticipants)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			continue
		}
		for _, email := range activity.Participants {
			if _, err := tx.Exec(ctx, insertParticipant, activity.Name, email); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

// List returns a snapshot of every activity with its roster in signup order.
func (s *Store) List(ctx context.Context) (map[string]domain.Activity, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, description, schedule, max_participants FROM activities`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]domain.Activity)
	for rows.Next() {
		var activity domain.Activity
		if err := rows.Scan(&activity.Name, &activity.Description, &activity.Schedule, &activity.MaxParticipants); err != nil {
			return nil, err
		}
		activity.Participants = []string{}
		out[activity.Name] = activity
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	participantRows, err := s.pool.Query(ctx,
		`SELECT activity_name, email FROM participants ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer participantRows.Close()

	for participantRows.Next() {
		var name, email string
		if err := participantRows.Scan(&name, &email); err != nil {
			return nil, err
		}
		activity, ok := out[name]
		if !ok {
			continue
		}
		activity.Participants = append(activity.Participants, email)
		out[name] = activity
	}
	return out, participantRows.Err()
}

// Signup appends email to the activity's roster.
func (s *Store) Signup(ctx context.Context, activity, email string) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := lockActivity(ctx, tx, activity); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx,
		`INSERT INTO participants (activity_name, email) VALUES ($1,$2) ON CONFLICT DO NOTHING`,
		activity, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadySignedUp
	}
	return tx.Commit(ctx)
}

// Unregister removes email from the activity's roster.
func (s *Store) Unregister(ctx context.Context, activity, email string) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := lockActivity(ctx, tx, activity); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM participants WHERE activity_name=$1 AND email=$2`,
		activity, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotRegistered
	}
	return tx.Commit(ctx)
}

// lockActivity serializes roster mutations per activity for the duration
// of the transaction.
func lockActivity(ctx context.Context, tx pgx.Tx, activity string) error {
	var name string
	err := tx.QueryRow(ctx, `SELECT name FROM activities WHERE name=$1 FOR UPDATE`, activity).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrActivityNotFound
	}
	return err
}
