package config

import (
	"strings"
	"testing"
)

func validTestConfig() *Config {
	c := &Config{}
	c.Database.Host = "localhost"
	c.Database.DBName = "cadence"
	c.Auth.JWT.SecretKey = "0123456789abcdef0123456789abcdef"
	return c
}

func TestValidate_FillsDefaults(t *testing.T) {
	c := validTestConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if c.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", c.Server.Port)
	}
	if c.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q", c.Server.Environment)
	}
	if c.Auth.JWT.AccessTTLMinutes != 15 {
		t.Errorf("AccessTTLMinutes = %d, want 15", c.Auth.JWT.AccessTTLMinutes)
	}
	if c.Notifications.ReminderLeadHours != 24 {
		t.Errorf("ReminderLeadHours = %d, want 24", c.Notifications.ReminderLeadHours)
	}
	if c.Notifications.ReminderTickMinutes != 15 {
		t.Errorf("ReminderTickMinutes = %d, want 15", c.Notifications.ReminderTickMinutes)
	}
	if c.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q", c.Logging.Level)
	}
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	c := validTestConfig()
	c.Server.Port = 9999
	c.Notifications.ReminderLeadHours = 48
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", c.Server.Port)
	}
	if c.Notifications.ReminderLeadHours != 48 {
		t.Errorf("ReminderLeadHours = %d, want 48", c.Notifications.ReminderLeadHours)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "database.host"},
		{"missing db name", func(c *Config) { c.Database.DBName = "" }, "database.dbname"},
		{"missing jwt secret", func(c *Config) { c.Auth.JWT.SecretKey = "" }, "auth.jwt.secret_key"},
		{"email enabled without from", func(c *Config) { c.Email.Enabled = true }, "email.from"},
		{"stripe enabled without key", func(c *Config) { c.Stripe.Enabled = true }, "stripe.secret_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validTestConfig()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	c := &Config{}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"database.host", "database.dbname", "auth.jwt.secret_key"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}
