// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/ticket-office/ticket-office/internal/config"
)

// Create builds the Data Source Name from the configuration, in the form the
// configured gorm engine expects.
func Create(cfg *config.Config) string {
	if cfg.DB.GormEngine == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	}

	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
	)

	if cfg.DB.Extras != "" {
		out += " " + cfg.DB.Extras
	}

	return out
}
