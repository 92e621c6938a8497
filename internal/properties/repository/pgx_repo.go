package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/welhome/properties-api/internal/properties/domain"
)

type PGXRepository struct {
	db *pgxpool.Pool
}

func NewPGXRepository(db *pgxpool.Pool) *PGXRepository {
	return &PGXRepository{db: db}
}

func (r *PGXRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, PostgresDialect.Schema); err != nil {
		return fmt.Errorf("create properties table: %w", err)
	}
	return nil
}

func (r *PGXRepository) Create(ctx context.Context, in domain.PropertyInput) (*domain.Property, error) {
	const q = `
insert into properties (title, address, status)
values ($1, $2, $3)
returning id, title, address, status;
`
	p, err := scanProperty(r.db.QueryRow(ctx, q, in.Title, in.Address, string(in.Status)))
	if err != nil {
		if pgCheckViolation(err) {
			return nil, statusConstraintError()
		}
		return nil, fmt.Errorf("insert property: %w", err)
	}
	return p, nil
}

func (r *PGXRepository) List(ctx context.Context) ([]domain.Property, error) {
	const q = `
select id, title, address, status
from properties
order by id asc;
`
	rows, err := r.db.Query(ctx, q)
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
	return out, rows.Err()
}

func (r *PGXRepository) Get(ctx context.Context, id int64) (*domain.Property, error) {
	const q = `
select id, title, address, status
from properties
where id = $1;
`
	p, err := scanProperty(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

func (r *PGXRepository) Update(ctx context.Context, id int64, in domain.PropertyInput) (*domain.Property, error) {
	const q = `
update properties
set title = $1, address = $2, status = $3
where id = $4
returning id, title, address, status;
`
	p, err := scanProperty(r.db.QueryRow(ctx, q, in.Title, in.Address, string(in.Status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		if pgCheckViolation(err) {
			return nil, statusConstraintError()
		}
		return nil, fmt.Errorf("update property: %w", err)
	}
	return p, nil
}

func (r *PGXRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `delete from properties where id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PGXRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *PGXRepository) Close() error {
	r.db.Close()
	return nil
}

func pgCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolation
}
