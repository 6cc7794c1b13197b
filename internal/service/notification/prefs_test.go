package notification

import "testing"

func strptr(s string) *string { return &s }

func TestParsePrefs(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want PreferenceSet
	}{
		{
			name: "nil blob",
			raw:  nil,
			want: PreferenceSet{},
		},
		{
			name: "empty object",
			raw:  strptr(`{}`),
			want: PreferenceSet{},
		},
		{
			name: "corrupt json",
			raw:  strptr(`{nope`),
			want: PreferenceSet{},
		},
		{
			name: "not an object",
			raw:  strptr(`[1,2,3]`),
			want: PreferenceSet{},
		},
		{
			name: "single override",
			raw:  strptr(`{"sessionReminders":{"inApp":true,"email":false}}`),
			want: PreferenceSet{
				CategorySessionReminders: {InApp: true, Email: false},
			},
		},
		{
			name: "full set",
			raw: strptr(`{
				"sessionReminders":{"inApp":false,"email":false},
				"newResources":{"inApp":true,"email":false},
				"actionItemDue":{"inApp":false,"email":true},
				"weeklyDigest":{"inApp":true,"email":true}
			}`),
			want: PreferenceSet{
				CategorySessionReminders: {InApp: false, Email: false},
				CategoryNewResources:     {InApp: true, Email: false},
				CategoryActionItemDue:    {InApp: false, Email: true},
				CategoryWeeklyDigest:     {InApp: true, Email: true},
			},
		},
		{
			name: "unknown category ignored",
			raw:  strptr(`{"smsAlerts":{"inApp":true,"email":true},"weeklyDigest":{"inApp":false,"email":false}}`),
			want: PreferenceSet{
				CategoryWeeklyDigest: {InApp: false, Email: false},
			},
		},
		{
			name: "missing channel field drops the entry",
			raw:  strptr(`{"newResources":{"email":false},"weeklyDigest":{"inApp":false,"email":false}}`),
			want: PreferenceSet{
				CategoryWeeklyDigest: {InApp: false, Email: false},
			},
		},
		{
			name: "extra field drops the entry",
			raw:  strptr(`{"newResources":{"inApp":true,"email":false,"sms":true}}`),
			want: PreferenceSet{},
		},
		{
			name: "wrong value type drops the entry",
			raw:  strptr(`{"actionItemDue":{"inApp":"yes","email":false}}`),
			want: PreferenceSet{},
		},
		{
			name: "one bad entry keeps the good ones",
			raw:  strptr(`{"actionItemDue":"broken","sessionReminders":{"inApp":false,"email":true}}`),
			want: PreferenceSet{
				CategorySessionReminders: {InApp: false, Email: true},
			},
		},
		{
			name: "accountUpdates entry is ignored",
			raw:  strptr(`{"accountUpdates":{"inApp":false,"email":false}}`),
			want: PreferenceSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrefs(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("ParsePrefs() has %d entries, want %d: %#v", len(got), len(tt.want), got)
			}
			for cat, want := range tt.want {
				if got[cat] != want {
					t.Errorf("ParsePrefs()[%s] = %+v, want %+v", cat, got[cat], want)
				}
			}
		})
	}
}

func TestEmailEligible(t *testing.T) {
	prefs := PreferenceSet{
		CategorySessionReminders: {InApp: true, Email: false},
		CategoryWeeklyDigest:     {InApp: false, Email: true},
	}

	tests := []struct {
		name  string
		cat   Category
		prefs PreferenceSet
		want  bool
	}{
		{"explicit off", CategorySessionReminders, prefs, false},
		{"explicit on", CategoryWeeklyDigest, prefs, true},
		{"absent defaults on", CategoryNewResources, prefs, true},
		{"empty set defaults on", CategoryActionItemDue, PreferenceSet{}, true},
		{"accountUpdates always on", CategoryAccountUpdates, prefs, true},
		{
			"accountUpdates on even when set",
			CategoryAccountUpdates,
			PreferenceSet{CategoryAccountUpdates: {InApp: false, Email: false}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmailEligible(tt.cat, tt.prefs); got != tt.want {
				t.Errorf("EmailEligible(%s) = %v, want %v", tt.cat, got, tt.want)
			}
		})
	}
}

func TestInAppEligible(t *testing.T) {
	prefs := PreferenceSet{
		CategorySessionReminders: {InApp: false, Email: true},
		CategoryActionItemDue:    {InApp: true, Email: false},
	}

	tests := []struct {
		name string
		cat  Category
		want bool
	}{
		{"explicit off", CategorySessionReminders, false},
		{"explicit on", CategoryActionItemDue, true},
		{"absent defaults on", CategoryWeeklyDigest, true},
		{"accountUpdates always on", CategoryAccountUpdates, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InAppEligible(tt.cat, prefs); got != tt.want {
				t.Errorf("InAppEligible(%s) = %v, want %v", tt.cat, got, tt.want)
			}
		})
	}
}

func TestParsePrefsIsIdempotentOverEligibility(t *testing.T) {
	raw := strptr(`{"sessionReminders":{"inApp":false,"email":false},"newResources":{"inApp":true,"email":true}}`)

	first := ParsePrefs(raw)
	second := ParsePrefs(raw)

	for _, cat := range SuppressibleCategories {
		if EmailEligible(cat, first) != EmailEligible(cat, second) {
			t.Errorf("email eligibility for %s changed between identical parses", cat)
		}
		if InAppEligible(cat, first) != InAppEligible(cat, second) {
			t.Errorf("in-app eligibility for %s changed between identical parses", cat)
		}
	}
}
