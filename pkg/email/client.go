package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/evanshaw/cadence_backend/config"
)

// Client sends rendered Messages over SMTP via gomail. A disabled client
// (email.enabled=false in config) accepts sends and returns ErrDisabled,
// which callers log and move on from.
type Client struct {
	cfg Config
}

// NewFromCentral creates a client from the central config tree.
func NewFromCentral(cfg config.EmailConfig, baseURL string) (*Client, error) {
	return &Client{cfg: FromCentralConfig(cfg, baseURL)}, nil
}

func New(cfg Config) (*Client, error) {
	return &Client{cfg: cfg}, nil
}

// Config exposes the resolved email settings so template builders can pick
// up AppName and BaseURL.
func (c *Client) Config() Config {
	return c.cfg
}

// Send delivers one message. The SMTP dial-and-send runs in a goroutine so
// we can honor both the configured timeout and the caller's context.
func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.cfg.Enabled {
		return ErrDisabled
	}
	gm, err := c.render(m)
	if err != nil {
		return err
	}

	dialer := gomail.NewDialer(c.cfg.SMTPHost, c.cfg.SMTPPort, c.cfg.SMTPUsername, c.cfg.SMTPPassword)
	if c.cfg.SMTPUseTLS {
		dialer.SSL = true
		dialer.TLSConfig = &tls.Config{ServerName: c.cfg.SMTPHost}
	}

	result := make(chan error, 1)
	go func() {
		result <- dialer.DialAndSend(gm)
	}()

	timer := time.NewTimer(c.cfg.SMTPTimeout())
	defer timer.Stop()

	select {
	case err := <-result:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return fmt.Errorf("smtp send: %w", context.DeadlineExceeded)
	}
}

func (c *Client) render(m Message) (*gomail.Message, error) {
	from := strings.TrimSpace(c.cfg.From)
	if from == "" {
		return nil, ErrNoSender
	}

	to := compactAddrs(m.To)
	if len(to) == 0 {
		return nil, ErrNoRecipient
	}
	if strings.TrimSpace(m.Subject) == "" {
		return nil, ErrNoSubject
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", from)
	gm.SetHeader("To", to...)
	gm.SetHeader("Subject", strings.TrimSpace(m.Subject))

	if cc := compactAddrs(m.CC); len(cc) > 0 {
		gm.SetHeader("Cc", cc...)
	}
	if bcc := compactAddrs(m.BCC); len(bcc) > 0 {
		gm.SetHeader("Bcc", bcc...)
	}
	if rt := strings.TrimSpace(c.cfg.ReplyTo); rt != "" {
		gm.SetHeader("Reply-To", rt)
	}
	for k, v := range m.Headers {
		if k = strings.TrimSpace(k); k != "" && v != "" {
			gm.SetHeader(k, v)
		}
	}

	text := strings.TrimSpace(m.TextBody) != ""
	html := strings.TrimSpace(m.HTMLBody) != ""
	switch {
	case text && html:
		gm.SetBody("text/plain", m.TextBody)
		gm.AddAlternative("text/html", m.HTMLBody)
	case text:
		gm.SetBody("text/plain", m.TextBody)
	case html:
		gm.SetBody("text/html", m.HTMLBody)
	default:
		return nil, ErrNoBody
	}
	return gm, nil
}

func compactAddrs(in []string) []string {
	var out []string
	for _, a := range in {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
