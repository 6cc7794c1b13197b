package config

import (
	"fmt"
	"strings"
)

// Validate fills obvious defaults and rejects configs that cannot
// produce a working process.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = 30
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}

	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}

	if c.Auth.JWT.SecretKey == "" {
		problems = append(problems, "auth.jwt.secret_key is required")
	}
	if c.Auth.JWT.AccessTTLMinutes <= 0 {
		c.Auth.JWT.AccessTTLMinutes = 15
	}
	if c.Auth.JWT.RefreshTTLDays <= 0 {
		c.Auth.JWT.RefreshTTLDays = 30
	}
	if c.Auth.SessionTTLMinutes <= 0 {
		c.Auth.SessionTTLMinutes = 24 * 60
	}
	if c.Auth.OTPTTLMinutes <= 0 {
		c.Auth.OTPTTLMinutes = 10
	}
	if c.Auth.OTPLength <= 0 {
		c.Auth.OTPLength = 6
	}

	if c.Email.Enabled && c.Email.From == "" {
		problems = append(problems, "email.from is required when email is enabled")
	}
	if c.Stripe.Enabled && c.Stripe.SecretKey == "" {
		problems = append(problems, "stripe.secret_key is required when stripe is enabled")
	}

	if c.Notifications.ReminderLeadHours <= 0 {
		c.Notifications.ReminderLeadHours = 24
	}
	if c.Notifications.ReminderTickMinutes <= 0 {
		c.Notifications.ReminderTickMinutes = 15
	}

	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "cadence_backend"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
