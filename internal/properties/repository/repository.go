package repository

import (
	"context"

	"github.com/welhome/properties-api/internal/properties/domain"
)

// Store is the persistence contract every storage engine implements.
type Store interface {
	Create(ctx context.Context, in domain.PropertyInput) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	Get(ctx context.Context, id int64) (*domain.Property, error)
	Update(ctx context.Context, id int64, in domain.PropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id int64) error
	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

const checkViolation = "23514"

// rowScanner is satisfied by *sql.Row, *sql.Rows, pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var (
		p      domain.Property
		status string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Address, &status); err != nil {
		return nil, err
	}
	p.Status = domain.Status(status)
	return &p, nil
}

func statusConstraintError() error {
	return &domain.ValidationError{Field: "status", Reason: "must be one of: active, inactive"}
}
