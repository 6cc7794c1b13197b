package email

import (
	"time"

	"github.com/evanshaw/cadence_backend/config"
)

// Config holds email service configuration.
type Config struct {
	Enabled bool
	From    string
	ReplyTo string

	// CoachAddress receives internal copies (intake forms, payment alerts).
	CoachAddress string

	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int

	AppName string
	BaseURL string
}

// DefaultConfig returns sensible defaults for email configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:            false,
		SMTPPort:           587,
		SMTPUseTLS:         true,
		SMTPTimeoutSeconds: 30,
		AppName:            "Cadence",
	}
}

// SMTPTimeout returns the SMTP timeout as a duration.
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.EmailConfig to package Config.
func FromCentralConfig(c config.EmailConfig, baseURL string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = c.Enabled
	cfg.From = c.From
	cfg.ReplyTo = c.ReplyTo
	cfg.CoachAddress = c.CoachAddress
	cfg.SMTPHost = c.SMTP.Host
	cfg.SMTPPort = c.SMTP.Port
	cfg.SMTPUsername = c.SMTP.Username
	cfg.SMTPPassword = c.SMTP.Password
	cfg.SMTPUseTLS = c.SMTP.UseTLS
	if c.SMTP.TimeoutSeconds > 0 {
		cfg.SMTPTimeoutSeconds = c.SMTP.TimeoutSeconds
	}
	cfg.BaseURL = baseURL
	return cfg
}
