package postgres

import (
	"fmt"

	"github.com/welhome/properties-api/config"
)

// DSN returns the explicit connection string when one is configured,
// otherwise it is assembled from the individual DB_* settings.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}
