package session

import (
	"time"

	"github.com/teambition/rrule-go"
)

// maxOccurrences caps how many future occurrences a single recurring
// session schedules per expansion.
const maxOccurrences = 12

// parseRule validates an RFC 5545 RRULE string and anchors it to the
// series start.
func parseRule(rule string, dtstart time.Time) (*rrule.RRule, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, err
	}
	r.DTStart(dtstart.UTC())
	return r, nil
}

// expandRule lists the occurrences strictly after `after`, capped at
// maxOccurrences. The series start itself is excluded; it is the session
// row the rule hangs off.
func expandRule(rule string, dtstart, after time.Time) ([]time.Time, error) {
	r, err := parseRule(rule, dtstart)
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, 0, maxOccurrences)
	cursor := after
	for len(out) < maxOccurrences {
		next := r.After(cursor, false)
		if next.IsZero() {
			break
		}
		out = append(out, next.UTC())
		cursor = next
	}
	return out, nil
}
