package notification

// Category is one of the five fixed notification classes that govern
// delivery policy. The set is closed: producers emit free-form event-type
// labels, and Classify is the single translation boundary into a Category.
type Category string

const (
	CategorySessionReminders Category = "sessionReminders"
	CategoryNewResources     Category = "newResources"
	CategoryActionItemDue    Category = "actionItemDue"
	CategoryWeeklyDigest     Category = "weeklyDigest"
	CategoryAccountUpdates   Category = "accountUpdates"
)

// SuppressibleCategories are the categories a client may turn off.
// accountUpdates is deliberately excluded: verification, password resets,
// intake and payment confirmations always go out.
var SuppressibleCategories = []Category{
	CategorySessionReminders,
	CategoryNewResources,
	CategoryActionItemDue,
	CategoryWeeklyDigest,
}

var eventCategories = map[string]Category{
	"sessionScheduled":   CategorySessionReminders,
	"sessionRescheduled": CategorySessionReminders,
	"sessionConfirmed":   CategorySessionReminders,
	"sessionCancelled":   CategorySessionReminders,
	"sessionReminder":    CategorySessionReminders,

	"resourceUploaded": CategoryNewResources,
	"resourceShared":   CategoryNewResources,

	"actionItemAssigned": CategoryActionItemDue,
	"actionItemDueSoon":  CategoryActionItemDue,
	"actionItemOverdue":  CategoryActionItemDue,

	"weeklyDigest": CategoryWeeklyDigest,

	"paymentReceived":   CategoryAccountUpdates,
	"invoiceIssued":     CategoryAccountUpdates,
	"intakeReceived":    CategoryAccountUpdates,
	"emailVerification": CategoryAccountUpdates,
	"passwordReset":     CategoryAccountUpdates,
}

// Classify maps a producer event-type label to its category. Unmapped
// labels (including the empty string) classify as accountUpdates, so an
// unrecognized event fails toward delivery instead of silent suppression.
func Classify(eventType string) Category {
	if cat, ok := eventCategories[eventType]; ok {
		return cat
	}
	return CategoryAccountUpdates
}
