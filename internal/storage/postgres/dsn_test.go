package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/welhome/properties-api/config"
)

func TestDSN(t *testing.T) {
	t.Run("explicit dsn wins", func(t *testing.T) {
		cfg := &config.DatabaseConfig{DSN: "postgres://u:p@neon.tech/welhome?sslmode=require", Host: "ignored"}
		assert.Equal(t, "postgres://u:p@neon.tech/welhome?sslmode=require", DSN(cfg))
	})

	t.Run("built from parts", func(t *testing.T) {
		cfg := &config.DatabaseConfig{Host: "db", Port: 5433, User: "app", Password: "secret", Name: "welhome", SSLMode: "require"}
		assert.Equal(t, "host=db port=5433 user=app password=secret dbname=welhome sslmode=require", DSN(cfg))
	})
}
