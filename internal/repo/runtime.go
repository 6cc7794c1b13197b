// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/evanshaw/cadence_backend/internal/repo/actionitem"
	"github.com/evanshaw/cadence_backend/internal/repo/clientprofile"
	"github.com/evanshaw/cadence_backend/internal/repo/contactmessage"
	"github.com/evanshaw/cadence_backend/internal/repo/invoice"
	"github.com/evanshaw/cadence_backend/internal/repo/notification"
	"github.com/evanshaw/cadence_backend/internal/repo/payment"
	"github.com/evanshaw/cadence_backend/internal/repo/resource"
	"github.com/evanshaw/cadence_backend/internal/repo/resourceshare"
	"github.com/evanshaw/cadence_backend/internal/repo/session"
	"github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/evanshaw/cadence_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actionitemMixin := schema.ActionItem{}.Mixin()
	actionitemMixinFields0 := actionitemMixin[0].Fields()
	_ = actionitemMixinFields0
	actionitemMixinFields1 := actionitemMixin[1].Fields()
	_ = actionitemMixinFields1
	actionitemFields := schema.ActionItem{}.Fields()
	_ = actionitemFields
	// actionitemDescCreatedAt is the schema descriptor for created_at field.
	actionitemDescCreatedAt := actionitemMixinFields1[0].Descriptor()
	// actionitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	actionitem.DefaultCreatedAt = actionitemDescCreatedAt.Default.(func() time.Time)
	// actionitemDescUpdatedAt is the schema descriptor for updated_at field.
	actionitemDescUpdatedAt := actionitemMixinFields1[1].Descriptor()
	// actionitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	actionitem.DefaultUpdatedAt = actionitemDescUpdatedAt.Default.(func() time.Time)
	// actionitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	actionitem.UpdateDefaultUpdatedAt = actionitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// actionitemDescTitle is the schema descriptor for title field.
	actionitemDescTitle := actionitemFields[2].Descriptor()
	// actionitem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	actionitem.TitleValidator = actionitemDescTitle.Validators[0].(func(string) error)
	// actionitemDescID is the schema descriptor for id field.
	actionitemDescID := actionitemMixinFields0[0].Descriptor()
	// actionitem.DefaultID holds the default value on creation for the id field.
	actionitem.DefaultID = actionitemDescID.Default.(func() uuid.UUID)
	clientprofileMixin := schema.ClientProfile{}.Mixin()
	clientprofileMixinFields0 := clientprofileMixin[0].Fields()
	_ = clientprofileMixinFields0
	clientprofileMixinFields1 := clientprofileMixin[1].Fields()
	_ = clientprofileMixinFields1
	clientprofileFields := schema.ClientProfile{}.Fields()
	_ = clientprofileFields
	// clientprofileDescCreatedAt is the schema descriptor for created_at field.
	clientprofileDescCreatedAt := clientprofileMixinFields1[0].Descriptor()
	// clientprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientprofile.DefaultCreatedAt = clientprofileDescCreatedAt.Default.(func() time.Time)
	// clientprofileDescUpdatedAt is the schema descriptor for updated_at field.
	clientprofileDescUpdatedAt := clientprofileMixinFields1[1].Descriptor()
	// clientprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clientprofile.DefaultUpdatedAt = clientprofileDescUpdatedAt.Default.(func() time.Time)
	// clientprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clientprofile.UpdateDefaultUpdatedAt = clientprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clientprofileDescCompany is the schema descriptor for company field.
	clientprofileDescCompany := clientprofileFields[1].Descriptor()
	// clientprofile.CompanyValidator is a validator for the "company" field. It is called by the builders before save.
	clientprofile.CompanyValidator = clientprofileDescCompany.Validators[0].(func(string) error)
	// clientprofileDescID is the schema descriptor for id field.
	clientprofileDescID := clientprofileMixinFields0[0].Descriptor()
	// clientprofile.DefaultID holds the default value on creation for the id field.
	clientprofile.DefaultID = clientprofileDescID.Default.(func() uuid.UUID)
	contactmessageMixin := schema.ContactMessage{}.Mixin()
	contactmessageMixinFields0 := contactmessageMixin[0].Fields()
	_ = contactmessageMixinFields0
	contactmessageMixinFields1 := contactmessageMixin[1].Fields()
	_ = contactmessageMixinFields1
	contactmessageFields := schema.ContactMessage{}.Fields()
	_ = contactmessageFields
	// contactmessageDescCreatedAt is the schema descriptor for created_at field.
	contactmessageDescCreatedAt := contactmessageMixinFields1[0].Descriptor()
	// contactmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	contactmessage.DefaultCreatedAt = contactmessageDescCreatedAt.Default.(func() time.Time)
	// contactmessageDescName is the schema descriptor for name field.
	contactmessageDescName := contactmessageFields[0].Descriptor()
	// contactmessage.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contactmessage.NameValidator = contactmessageDescName.Validators[0].(func(string) error)
	// contactmessageDescEmail is the schema descriptor for email field.
	contactmessageDescEmail := contactmessageFields[1].Descriptor()
	// contactmessage.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	contactmessage.EmailValidator = contactmessageDescEmail.Validators[0].(func(string) error)
	// contactmessageDescSubject is the schema descriptor for subject field.
	contactmessageDescSubject := contactmessageFields[2].Descriptor()
	// contactmessage.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	contactmessage.SubjectValidator = contactmessageDescSubject.Validators[0].(func(string) error)
	// contactmessageDescHandled is the schema descriptor for handled field.
	contactmessageDescHandled := contactmessageFields[5].Descriptor()
	// contactmessage.DefaultHandled holds the default value on creation for the handled field.
	contactmessage.DefaultHandled = contactmessageDescHandled.Default.(bool)
	// contactmessageDescID is the schema descriptor for id field.
	contactmessageDescID := contactmessageMixinFields0[0].Descriptor()
	// contactmessage.DefaultID holds the default value on creation for the id field.
	contactmessage.DefaultID = contactmessageDescID.Default.(func() uuid.UUID)
	invoiceMixin := schema.Invoice{}.Mixin()
	invoiceMixinFields0 := invoiceMixin[0].Fields()
	_ = invoiceMixinFields0
	invoiceMixinFields1 := invoiceMixin[1].Fields()
	_ = invoiceMixinFields1
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceMixinFields1[0].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceMixinFields1[1].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescNumber is the schema descriptor for number field.
	invoiceDescNumber := invoiceFields[1].Descriptor()
	// invoice.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	invoice.NumberValidator = invoiceDescNumber.Validators[0].(func(string) error)
	// invoiceDescDescription is the schema descriptor for description field.
	invoiceDescDescription := invoiceFields[2].Descriptor()
	// invoice.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoice.DescriptionValidator = invoiceDescDescription.Validators[0].(func(string) error)
	// invoiceDescCurrency is the schema descriptor for currency field.
	invoiceDescCurrency := invoiceFields[4].Descriptor()
	// invoice.DefaultCurrency holds the default value on creation for the currency field.
	invoice.DefaultCurrency = invoiceDescCurrency.Default.(string)
	// invoice.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	invoice.CurrencyValidator = invoiceDescCurrency.Validators[0].(func(string) error)
	// invoiceDescCheckoutURL is the schema descriptor for checkout_url field.
	invoiceDescCheckoutURL := invoiceFields[8].Descriptor()
	// invoice.CheckoutURLValidator is a validator for the "checkout_url" field. It is called by the builders before save.
	invoice.CheckoutURLValidator = invoiceDescCheckoutURL.Validators[0].(func(string) error)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceMixinFields0[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescEventType is the schema descriptor for event_type field.
	notificationDescEventType := notificationFields[1].Descriptor()
	// notification.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	notification.EventTypeValidator = notificationDescEventType.Validators[0].(func(string) error)
	// notificationDescCategory is the schema descriptor for category field.
	notificationDescCategory := notificationFields[2].Descriptor()
	// notification.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	notification.CategoryValidator = notificationDescCategory.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[6].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescIsEmailed is the schema descriptor for is_emailed field.
	notificationDescIsEmailed := notificationFields[7].Descriptor()
	// notification.DefaultIsEmailed holds the default value on creation for the is_emailed field.
	notification.DefaultIsEmailed = notificationDescIsEmailed.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	paymentMixin := schema.Payment{}.Mixin()
	paymentMixinFields0 := paymentMixin[0].Fields()
	_ = paymentMixinFields0
	paymentMixinFields1 := paymentMixin[1].Fields()
	_ = paymentMixinFields1
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentMixinFields1[0].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescCurrency is the schema descriptor for currency field.
	paymentDescCurrency := paymentFields[2].Descriptor()
	// payment.DefaultCurrency holds the default value on creation for the currency field.
	payment.DefaultCurrency = paymentDescCurrency.Default.(string)
	// payment.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	payment.CurrencyValidator = paymentDescCurrency.Validators[0].(func(string) error)
	// paymentDescProvider is the schema descriptor for provider field.
	paymentDescProvider := paymentFields[3].Descriptor()
	// payment.DefaultProvider holds the default value on creation for the provider field.
	payment.DefaultProvider = paymentDescProvider.Default.(string)
	// payment.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	payment.ProviderValidator = paymentDescProvider.Validators[0].(func(string) error)
	// paymentDescProviderRef is the schema descriptor for provider_ref field.
	paymentDescProviderRef := paymentFields[4].Descriptor()
	// payment.ProviderRefValidator is a validator for the "provider_ref" field. It is called by the builders before save.
	payment.ProviderRefValidator = paymentDescProviderRef.Validators[0].(func(string) error)
	// paymentDescID is the schema descriptor for id field.
	paymentDescID := paymentMixinFields0[0].Descriptor()
	// payment.DefaultID holds the default value on creation for the id field.
	payment.DefaultID = paymentDescID.Default.(func() uuid.UUID)
	resourceMixin := schema.Resource{}.Mixin()
	resourceMixinFields0 := resourceMixin[0].Fields()
	_ = resourceMixinFields0
	resourceMixinFields1 := resourceMixin[1].Fields()
	_ = resourceMixinFields1
	resourceFields := schema.Resource{}.Fields()
	_ = resourceFields
	// resourceDescCreatedAt is the schema descriptor for created_at field.
	resourceDescCreatedAt := resourceMixinFields1[0].Descriptor()
	// resource.DefaultCreatedAt holds the default value on creation for the created_at field.
	resource.DefaultCreatedAt = resourceDescCreatedAt.Default.(func() time.Time)
	// resourceDescUpdatedAt is the schema descriptor for updated_at field.
	resourceDescUpdatedAt := resourceMixinFields1[1].Descriptor()
	// resource.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	resource.DefaultUpdatedAt = resourceDescUpdatedAt.Default.(func() time.Time)
	// resource.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	resource.UpdateDefaultUpdatedAt = resourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// resourceDescTitle is the schema descriptor for title field.
	resourceDescTitle := resourceFields[0].Descriptor()
	// resource.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	resource.TitleValidator = resourceDescTitle.Validators[0].(func(string) error)
	// resourceDescObjectKey is the schema descriptor for object_key field.
	resourceDescObjectKey := resourceFields[3].Descriptor()
	// resource.ObjectKeyValidator is a validator for the "object_key" field. It is called by the builders before save.
	resource.ObjectKeyValidator = resourceDescObjectKey.Validators[0].(func(string) error)
	// resourceDescExternalURL is the schema descriptor for external_url field.
	resourceDescExternalURL := resourceFields[4].Descriptor()
	// resource.ExternalURLValidator is a validator for the "external_url" field. It is called by the builders before save.
	resource.ExternalURLValidator = resourceDescExternalURL.Validators[0].(func(string) error)
	// resourceDescPublished is the schema descriptor for published field.
	resourceDescPublished := resourceFields[5].Descriptor()
	// resource.DefaultPublished holds the default value on creation for the published field.
	resource.DefaultPublished = resourceDescPublished.Default.(bool)
	// resourceDescID is the schema descriptor for id field.
	resourceDescID := resourceMixinFields0[0].Descriptor()
	// resource.DefaultID holds the default value on creation for the id field.
	resource.DefaultID = resourceDescID.Default.(func() uuid.UUID)
	resourceshareMixin := schema.ResourceShare{}.Mixin()
	resourceshareMixinFields0 := resourceshareMixin[0].Fields()
	_ = resourceshareMixinFields0
	resourceshareMixinFields1 := resourceshareMixin[1].Fields()
	_ = resourceshareMixinFields1
	resourceshareFields := schema.ResourceShare{}.Fields()
	_ = resourceshareFields
	// resourceshareDescCreatedAt is the schema descriptor for created_at field.
	resourceshareDescCreatedAt := resourceshareMixinFields1[0].Descriptor()
	// resourceshare.DefaultCreatedAt holds the default value on creation for the created_at field.
	resourceshare.DefaultCreatedAt = resourceshareDescCreatedAt.Default.(func() time.Time)
	// resourceshareDescID is the schema descriptor for id field.
	resourceshareDescID := resourceshareMixinFields0[0].Descriptor()
	// resourceshare.DefaultID holds the default value on creation for the id field.
	resourceshare.DefaultID = resourceshareDescID.Default.(func() uuid.UUID)
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionMixinFields1 := sessionMixin[1].Fields()
	_ = sessionMixinFields1
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionMixinFields1[0].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionMixinFields1[1].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescTitle is the schema descriptor for title field.
	sessionDescTitle := sessionFields[1].Descriptor()
	// session.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	session.TitleValidator = sessionDescTitle.Validators[0].(func(string) error)
	// sessionDescDurationMinutes is the schema descriptor for duration_minutes field.
	sessionDescDurationMinutes := sessionFields[3].Descriptor()
	// session.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	session.DefaultDurationMinutes = sessionDescDurationMinutes.Default.(int)
	// sessionDescTimezone is the schema descriptor for timezone field.
	sessionDescTimezone := sessionFields[4].Descriptor()
	// session.DefaultTimezone holds the default value on creation for the timezone field.
	session.DefaultTimezone = sessionDescTimezone.Default.(string)
	// session.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	session.TimezoneValidator = sessionDescTimezone.Validators[0].(func(string) error)
	// sessionDescConfirmToken is the schema descriptor for confirm_token field.
	sessionDescConfirmToken := sessionFields[6].Descriptor()
	// session.ConfirmTokenValidator is a validator for the "confirm_token" field. It is called by the builders before save.
	session.ConfirmTokenValidator = sessionDescConfirmToken.Validators[0].(func(string) error)
	// sessionDescCancelReason is the schema descriptor for cancel_reason field.
	sessionDescCancelReason := sessionFields[9].Descriptor()
	// session.CancelReasonValidator is a validator for the "cancel_reason" field. It is called by the builders before save.
	session.CancelReasonValidator = sessionDescCancelReason.Validators[0].(func(string) error)
	// sessionDescRecurrenceRule is the schema descriptor for recurrence_rule field.
	sessionDescRecurrenceRule := sessionFields[10].Descriptor()
	// session.RecurrenceRuleValidator is a validator for the "recurrence_rule" field. It is called by the builders before save.
	session.RecurrenceRuleValidator = sessionDescRecurrenceRule.Validators[0].(func(string) error)
	// sessionDescMeetingURL is the schema descriptor for meeting_url field.
	sessionDescMeetingURL := sessionFields[13].Descriptor()
	// session.MeetingURLValidator is a validator for the "meeting_url" field. It is called by the builders before save.
	session.MeetingURLValidator = sessionDescMeetingURL.Validators[0].(func(string) error)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionMixinFields0[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[3].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescTimezone is the schema descriptor for timezone field.
	userDescTimezone := userFields[5].Descriptor()
	// user.DefaultTimezone holds the default value on creation for the timezone field.
	user.DefaultTimezone = userDescTimezone.Default.(string)
	// user.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	user.TimezoneValidator = userDescTimezone.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[6].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
