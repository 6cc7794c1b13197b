package notification

import (
	"bytes"
	"encoding/json"
)

// ChannelPreference toggles the two delivery channels independently.
type ChannelPreference struct {
	InApp bool `json:"inApp"`
	Email bool `json:"email"`
}

// PreferenceSet is a client's possibly-partial override of the default
// per-category channel settings. A missing category means "use the
// default for that category", never "disabled".
type PreferenceSet map[Category]ChannelPreference

// defaultPrefs is the constant fallback per suppressible category.
// Built once, read-only after init.
var defaultPrefs = map[Category]ChannelPreference{
	CategorySessionReminders: {InApp: true, Email: true},
	CategoryNewResources:     {InApp: true, Email: true},
	CategoryActionItemDue:    {InApp: true, Email: true},
	CategoryWeeklyDigest:     {InApp: true, Email: true},
}

// DefaultPreference returns the default channel settings for a category.
func DefaultPreference(cat Category) ChannelPreference {
	if p, ok := defaultPrefs[cat]; ok {
		return p
	}
	// accountUpdates and anything unknown: both channels on.
	return ChannelPreference{InApp: true, Email: true}
}

type channelPrefJSON struct {
	InApp *bool `json:"inApp"`
	Email *bool `json:"email"`
}

// ParsePrefs decodes the raw preference blob stored on the client profile.
// Absence, corrupt JSON, and malformed entries all degrade to "use the
// default": a nil or undecodable blob yields an empty set, and each
// category entry is validated independently so one bad entry never
// discards the rest. ParsePrefs never fails.
func ParsePrefs(raw *string) PreferenceSet {
	out := PreferenceSet{}
	if raw == nil {
		return out
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(*raw), &decoded); err != nil {
		return out
	}

	for _, cat := range SuppressibleCategories {
		entry, ok := decoded[string(cat)]
		if !ok {
			continue
		}

		var cp channelPrefJSON
		dec := json.NewDecoder(bytes.NewReader(entry))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cp); err != nil || cp.InApp == nil || cp.Email == nil {
			// Malformed entry: fall back to the default for this category.
			continue
		}

		out[cat] = ChannelPreference{InApp: *cp.InApp, Email: *cp.Email}
	}

	return out
}

// EmailEligible decides whether the email channel fires for a category
// under the given preferences. accountUpdates cannot be suppressed.
func EmailEligible(cat Category, prefs PreferenceSet) bool {
	if cat == CategoryAccountUpdates {
		return true
	}
	if p, ok := prefs[cat]; ok {
		return p.Email
	}
	return DefaultPreference(cat).Email
}

// InAppEligible decides whether the in-app channel fires for a category
// under the given preferences. accountUpdates cannot be suppressed.
func InAppEligible(cat Category, prefs PreferenceSet) bool {
	if cat == CategoryAccountUpdates {
		return true
	}
	if p, ok := prefs[cat]; ok {
		return p.InApp
	}
	return DefaultPreference(cat).InApp
}
