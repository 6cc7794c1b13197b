package notification

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		want      Category
	}{
		{"session scheduled", "sessionScheduled", CategorySessionReminders},
		{"session reminder", "sessionReminder", CategorySessionReminders},
		{"session cancelled", "sessionCancelled", CategorySessionReminders},
		{"resource shared", "resourceShared", CategoryNewResources},
		{"resource uploaded", "resourceUploaded", CategoryNewResources},
		{"action item due soon", "actionItemDueSoon", CategoryActionItemDue},
		{"action item overdue", "actionItemOverdue", CategoryActionItemDue},
		{"weekly digest", "weeklyDigest", CategoryWeeklyDigest},
		{"payment received", "paymentReceived", CategoryAccountUpdates},
		{"password reset", "passwordReset", CategoryAccountUpdates},
		{"unknown event", "somethingNew", CategoryAccountUpdates},
		{"empty event", "", CategoryAccountUpdates},
		{"case matters", "SessionReminder", CategoryAccountUpdates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.eventType); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestSuppressibleCategoriesExcludeAccountUpdates(t *testing.T) {
	for _, cat := range SuppressibleCategories {
		if cat == CategoryAccountUpdates {
			t.Fatal("accountUpdates must not be suppressible")
		}
	}
	if len(SuppressibleCategories) != 4 {
		t.Errorf("got %d suppressible categories, want 4", len(SuppressibleCategories))
	}
}
