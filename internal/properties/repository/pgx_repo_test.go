package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGCheckViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"check violation", &pgconn.PgError{Code: "23514"}, true},
		{"wrapped check violation", fmt.Errorf("insert property: %w", &pgconn.PgError{Code: "23514"}), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"lib/pq error is not a pgx error", &pq.Error{Code: "23514"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgCheckViolation(tt.err))
		})
	}
}

// testDatabaseURL returns TEST_DATABASE_URL or skips the test.
func testDatabaseURL(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres integration test")
	}
	return dsn
}

func resetPostgresTable(t *testing.T, exec func(ctx context.Context, q string) error) {
	t.Helper()
	require.NoError(t, exec(context.Background(), `TRUNCATE properties RESTART IDENTITY;`))
}

func TestPGXRepository_Postgres(t *testing.T) {
	dsn := testDatabaseURL(t)

	runStoreContract(t, func(t *testing.T) Store {
		ctx := context.Background()

		pool, err := pgxpool.New(ctx, dsn)
		require.NoError(t, err)
		t.Cleanup(pool.Close)

		repo := NewPGXRepository(pool)
		require.NoError(t, repo.EnsureSchema(ctx))
		resetPostgresTable(t, func(ctx context.Context, q string) error {
			_, err := pool.Exec(ctx, q)
			return err
		})
		return repo
	})
}

func TestPGXRepository_CheckConstraint(t *testing.T) {
	dsn := testDatabaseURL(t)
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, NewPGXRepository(pool).EnsureSchema(ctx))

	_, err = pool.Exec(ctx, `INSERT INTO properties (title, address, status) VALUES ('a', 'b', 'sold')`)
	require.Error(t, err)
	assert.True(t, pgCheckViolation(err))
}

func TestSQLRepository_PostgresIntegration(t *testing.T) {
	dsn := testDatabaseURL(t)

	runStoreContract(t, func(t *testing.T) Store {
		db, err := sql.Open("postgres", dsn)
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		repo := NewSQLRepository(db, PostgresDialect)
		require.NoError(t, repo.EnsureSchema(context.Background()))
		resetPostgresTable(t, func(ctx context.Context, q string) error {
			_, err := db.ExecContext(ctx, q)
			return err
		})
		return repo
	})
}
