package config

import (
	"fmt"
	"strings"
)

// Validate checks cross-field constraints cleanenv tags cannot express.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("auth.jwt_secret too short (min 16 bytes)")
	}

	if c.Badges.TrainingMilestoneThreshold < 1 {
		return fmt.Errorf("badges.training_milestone_threshold must be positive, got %d",
			c.Badges.TrainingMilestoneThreshold)
	}

	if len(c.Dashboard.WidgetCatalog) == 0 {
		return fmt.Errorf("dashboard.widget_catalog must not be empty")
	}
	seen := make(map[string]bool, len(c.Dashboard.WidgetCatalog))
	for _, id := range c.Dashboard.WidgetCatalog {
		id = strings.TrimSpace(id)
		if id == "" {
			return fmt.Errorf("dashboard.widget_catalog contains an empty id")
		}
		if seen[id] {
			return fmt.Errorf("dashboard.widget_catalog contains duplicate id %q", id)
		}
		seen[id] = true
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}

	return nil
}
