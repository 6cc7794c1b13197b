package session

import (
	"testing"
	"time"
)

func TestParseRule(t *testing.T) {
	start := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rule    string
		wantErr bool
	}{
		{"weekly", "FREQ=WEEKLY;BYDAY=MO", false},
		{"biweekly with count", "FREQ=WEEKLY;INTERVAL=2;COUNT=6", false},
		{"monthly", "FREQ=MONTHLY;BYMONTHDAY=1", false},
		{"garbage", "EVERY=TUESDAY", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRule(tt.rule, start)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseRule(%q) error = %v, wantErr %v", tt.rule, err, tt.wantErr)
			}
		})
	}
}

func TestExpandRuleWeekly(t *testing.T) {
	start := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC) // a Monday

	got, err := expandRule("FREQ=WEEKLY;BYDAY=MO;COUNT=4", start, start)
	if err != nil {
		t.Fatalf("expandRule() error = %v", err)
	}

	// COUNT includes the series start; expansion excludes it.
	if len(got) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(got))
	}
	for i, occ := range got {
		want := start.AddDate(0, 0, 7*(i+1))
		if !occ.Equal(want) {
			t.Errorf("occurrence %d = %v, want %v", i, occ, want)
		}
		if occ.Weekday() != time.Monday {
			t.Errorf("occurrence %d falls on %v, want Monday", i, occ.Weekday())
		}
	}
}

func TestExpandRuleCapsOccurrences(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	got, err := expandRule("FREQ=DAILY", start, start)
	if err != nil {
		t.Fatalf("expandRule() error = %v", err)
	}
	if len(got) != maxOccurrences {
		t.Errorf("got %d occurrences, want cap of %d", len(got), maxOccurrences)
	}
}

func TestExpandRuleSkipsPast(t *testing.T) {
	start := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	after := start.AddDate(0, 0, 10)

	got, err := expandRule("FREQ=WEEKLY;COUNT=5", start, after)
	if err != nil {
		t.Fatalf("expandRule() error = %v", err)
	}
	for _, occ := range got {
		if !occ.After(after) {
			t.Errorf("occurrence %v is not after the cutoff %v", occ, after)
		}
	}
	// The start and week one precede the cutoff, leaving weeks two
	// through four.
	if len(got) != 3 {
		t.Errorf("got %d occurrences, want 3", len(got))
	}
}
