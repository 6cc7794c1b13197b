package system

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/evanshaw/cadence_backend/internal/repo"
	entsession "github.com/evanshaw/cadence_backend/internal/repo/session"
	entuser "github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/evanshaw/cadence_backend/pkg/database"
	"github.com/evanshaw/cadence_backend/pkg/util/password"
)

// NewSeedCommand creates the coach account, and with --demo a small set of
// sample clients, sessions, action items and invoices to click around in.
// The practice has exactly one coach; running seed twice is a no-op.
func NewSeedCommand() *cobra.Command {
	var (
		coachEmail    string
		coachPassword string
		firstName     string
		lastName      string
		timezone      string
		withDemo      bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the coach account (and optional demo data)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if coachEmail == "" || coachPassword == "" {
				return fmt.Errorf("--email and --password are required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			exists, err := client.User.Query().
				Where(entuser.RoleEQ(entuser.RoleCoach)).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check for coach: %w", err)
			}
			if exists {
				fmt.Println("Coach account already exists, nothing to do.")
				return nil
			}

			hash, err := password.Hash(coachPassword)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			coach, err := client.User.Create().
				SetEmail(strings.ToLower(strings.TrimSpace(coachEmail))).
				SetPasswordHash(hash).
				SetFirstName(firstName).
				SetLastName(lastName).
				SetRole(entuser.RoleCoach).
				SetTimezone(timezone).
				SetEmailVerifiedAt(time.Now().UTC()).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create coach: %w", err)
			}
			fmt.Printf("Coach account created: %s (%s)\n", coach.Email, coach.ID)

			if withDemo {
				if err := seedDemoData(ctx, client); err != nil {
					return fmt.Errorf("failed to seed demo data: %w", err)
				}
				fmt.Println("Demo data created.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&coachEmail, "email", "", "coach email address")
	cmd.Flags().StringVar(&coachPassword, "password", "", "coach password")
	cmd.Flags().StringVar(&firstName, "first-name", "Coach", "coach first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "coach last name")
	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "coach IANA timezone")
	cmd.Flags().BoolVar(&withDemo, "demo", false, "also create sample clients, sessions and invoices")

	return cmd
}

// seedDemoData writes sample rows directly through the ent client. Going
// around the services on purpose: seeding should not trigger emails or
// notifications.
func seedDemoData(ctx context.Context, client *repo.Client) error {
	type demoClient struct {
		email, first, last, tz, company, goals string
	}
	demos := []demoClient{
		{"maya@example.com", "Maya", "Okafor", "America/Chicago", "Northwind Labs", "Ship the ML roadmap without burning out the team"},
		{"jon@example.com", "Jon", "Berg", "Europe/Oslo", "", "Transition from IC to engineering manager"},
	}

	now := time.Now().UTC()
	for i, d := range demos {
		hash, err := password.Hash(password.Generate(16))
		if err != nil {
			return err
		}
		u, err := client.User.Create().
			SetEmail(d.email).
			SetPasswordHash(hash).
			SetFirstName(d.first).
			SetLastName(d.last).
			SetRole(entuser.RoleClient).
			SetTimezone(d.tz).
			Save(ctx)
		if err != nil {
			return err
		}

		pc := client.ClientProfile.Create().SetUserID(u.ID).SetGoals(d.goals)
		if d.company != "" {
			pc = pc.SetCompany(d.company)
		}
		if err := pc.Exec(ctx); err != nil {
			return err
		}

		// One confirmed session next week, one further out awaiting a
		// confirmation click.
		nextWeek := now.AddDate(0, 0, 7+i)
		if err := client.Session.Create().
			SetClientID(u.ID).
			SetTitle("Biweekly check-in").
			SetScheduledAt(nextWeek).
			SetTimezone(d.tz).
			SetStatus(entsession.StatusConfirmed).
			SetConfirmedAt(now).
			Exec(ctx); err != nil {
			return err
		}
		if err := client.Session.Create().
			SetClientID(u.ID).
			SetTitle("Deep dive: " + d.first + "'s quarterly goals").
			SetScheduledAt(nextWeek.AddDate(0, 0, 14)).
			SetTimezone(d.tz).
			SetConfirmToken(fmt.Sprintf("demo-confirm-%d", i)).
			Exec(ctx); err != nil {
			return err
		}

		due := now.AddDate(0, 0, 3)
		if err := client.ActionItem.Create().
			SetClientID(u.ID).
			SetTitle("Write down three wins from last sprint").
			SetDueOn(due).
			Exec(ctx); err != nil {
			return err
		}

		if err := client.Invoice.Create().
			SetClientID(u.ID).
			SetNumber(fmt.Sprintf("INV-%d-%04d", now.Year(), i+1)).
			SetDescription("Coaching retainer").
			SetAmountCents(45000).
			SetCurrency("usd").
			SetIssuedOn(now).
			SetDueOn(now.AddDate(0, 0, 30)).
			Exec(ctx); err != nil {
			return err
		}
	}

	_, err := client.Resource.Create().
		SetTitle("Quarterly goals worksheet").
		SetDescription("A one-page worksheet for the quarterly planning session.").
		SetKind("worksheet").
		SetPublished(true).
		Save(ctx)
	return err
}
