package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Pagination.DefaultLimit <= 0 {
		return fmt.Errorf("pagination.default_limit must be > 0 (got %d)", c.Pagination.DefaultLimit)
	}
	if c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		return fmt.Errorf("pagination.max_limit must be >= default_limit (got %d < %d)",
			c.Pagination.MaxLimit, c.Pagination.DefaultLimit)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	return nil
}
