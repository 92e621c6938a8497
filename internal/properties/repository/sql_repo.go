package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/welhome/properties-api/internal/properties/domain"
)

// Dialect captures the differences between the database/sql engines.
type Dialect struct {
	Name        string
	Schema      string
	numberedArg bool
}

const (
	postgresSchema = `
CREATE TABLE IF NOT EXISTS properties (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    address TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('active','inactive'))
);`

	sqliteSchema = `
CREATE TABLE IF NOT EXISTS properties (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    address TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('active','inactive'))
);`
)

var (
	PostgresDialect = Dialect{Name: "postgres", Schema: postgresSchema, numberedArg: true}
	SQLiteDialect   = Dialect{Name: "sqlite", Schema: sqliteSchema}
)

// rebind rewrites ? placeholders to $n for engines that need numbered args.
func (d Dialect) rebind(q string) string {
	if !d.numberedArg {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLRepository stores properties through database/sql. It backs both the
// lib/pq and the SQLite engines.
type SQLRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLRepository(db *sql.DB, dialect Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.Schema); err != nil {
		return fmt.Errorf("create properties table: %w", err)
	}
	return nil
}

func (r *SQLRepository) Create(ctx context.Context, in domain.PropertyInput) (*domain.Property, error) {
	q := r.dialect.rebind(`
INSERT INTO properties (title, address, status)
VALUES (?, ?, ?)
RETURNING id, title, address, status;
`)
	p, err := scanProperty(r.db.QueryRowContext(ctx, q, in.Title, in.Address, string(in.Status)))
	if err != nil {
		if isCheckViolation(err) {
			return nil, statusConstraintError()
		}
		return nil, fmt.Errorf("insert property: %w", err)
	}
	return p, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]domain.Property, error) {
	const q = `
SELECT id, title, address, status
FROM properties
ORDER BY id ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Property, 0, 16)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*domain.Property, error) {
	q := r.dialect.rebind(`
SELECT id, title, address, status
FROM properties
WHERE id = ?;
`)
	p, err := scanProperty(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

func (r *SQLRepository) Update(ctx context.Context, id int64, in domain.PropertyInput) (*domain.Property, error) {
	q := r.dialect.rebind(`
UPDATE properties
SET title = ?, address = ?, status = ?
WHERE id = ?
RETURNING id, title, address, status;
`)
	p, err := scanProperty(r.db.QueryRowContext(ctx, q, in.Title, in.Address, string(in.Status), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		if isCheckViolation(err) {
			return nil, statusConstraintError()
		}
		return nil, fmt.Errorf("update property: %w", err)
	}
	return p, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	q := r.dialect.rebind(`DELETE FROM properties WHERE id = ?;`)
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}

func isCheckViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == checkViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_CHECK ||
			(code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "CHECK constraint failed"))
	}
	return false
}
