//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"example.com/signup/internal/domain"
	"example.com/signup/internal/registry"
)

func newIntegrationStore(t *testing.T, ctx context.Context) *Store {
	t.Helper()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("signup"),
		postgrescontainer.WithUsername("signup"),
		postgrescontainer.WithPassword("signup"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, waitForDatabase(ctx, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	store := NewStore(pool)
	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.Seed(ctx, registry.SeedActivities()))
	return store
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	var lastErr error
	for time.Now().Before(deadline) {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		lastErr = err
		time.Sleep(500 * time.Millisecond)
	}
	return lastErr
}

func TestStoreSeedAndList(t *testing.T) {
	ctx := context.Background()
	store := newIntegrationStore(t, ctx)

	activities, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 9)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"},
		activities["Chess Club"].Participants)
	require.Empty(t, activities["Basketball Team"].Participants)
	require.NotNil(t, activities["Basketball Team"].Participants)
}

func TestStoreSignupAndUnregister(t *testing.T) {
	ctx := context.Background()
	store := newIntegrationStore(t, ctx)

	require.NoError(t, store.Signup(ctx, "Basketball Team", "newstudent@mergington.edu"))

	err := store.Signup(ctx, "Basketball Team", "newstudent@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	activities, err := store.List(ctx)
	require.NoError(t, err)
	require.Contains(t, activities["Basketball Team"].Participants, "newstudent@mergington.edu")

	require.NoError(t, store.Unregister(ctx, "Basketball Team", "newstudent@mergington.edu"))

	err = store.Unregister(ctx, "Basketball Team", "newstudent@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestStoreUnknownActivity(t *testing.T) {
	ctx := context.Background()
	store := newIntegrationStore(t, ctx)

	err := store.Signup(ctx, "NonExistent Activity", "student@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	err = store.Unregister(ctx, "NonExistent Activity", "student@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestStoreSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newIntegrationStore(t, ctx)

	require.NoError(t, store.Signup(ctx, "Basketball Team", "newstudent@mergington.edu"))
	require.NoError(t, store.Seed(ctx, registry.SeedActivities()))

	activities, err := store.List(ctx)
	require.NoError(t, err)
	require.Contains(t, activities["Basketball Team"].Participants, "newstudent@mergington.edu")
	require.Len(t, activities["Chess Club"].Participants, 2)
}

func TestStorePreservesSignupOrder(t *testing.T) {
	ctx := context.Background()
	store := newIntegrationStore(t, ctx)

	emails := []string{
		"first@mergington.edu",
		"second@mergington.edu",
		"third@mergington.edu",
	}
	for _, email := range emails {
		require.NoError(t, store.Signup(ctx, "Art Club", email))
	}

	activities, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, emails, activities["Art Club"].Participants)
}
