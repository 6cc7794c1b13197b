// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/evanshaw/cadence_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClientID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldScheduledAt, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationMinutes, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTimezone, v))
}

// ConfirmToken applies equality check predicate on the "confirm_token" field. It's identical to ConfirmTokenEQ.
func ConfirmToken(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConfirmToken, v))
}

// ConfirmedAt applies equality check predicate on the "confirmed_at" field. It's identical to ConfirmedAtEQ.
func ConfirmedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConfirmedAt, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelReason applies equality check predicate on the "cancel_reason" field. It's identical to CancelReasonEQ.
func CancelReason(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCancelReason, v))
}

// RecurrenceRule applies equality check predicate on the "recurrence_rule" field. It's identical to RecurrenceRuleEQ.
func RecurrenceRule(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRecurrenceRule, v))
}

// ReminderSentAt applies equality check predicate on the "reminder_sent_at" field. It's identical to ReminderSentAtEQ.
func ReminderSentAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldReminderSentAt, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldNotes, v))
}

// MeetingURL applies equality check predicate on the "meeting_url" field. It's identical to MeetingURLEQ.
func MeetingURL(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMeetingURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldClientID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTitle, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldScheduledAt, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDurationMinutes, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTimezone, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// ConfirmTokenEQ applies the EQ predicate on the "confirm_token" field.
func ConfirmTokenEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConfirmToken, v))
}

// ConfirmTokenNEQ applies the NEQ predicate on the "confirm_token" field.
func ConfirmTokenNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldConfirmToken, v))
}

// ConfirmTokenIn applies the In predicate on the "confirm_token" field.
func ConfirmTokenIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldConfirmToken, vs...))
}

// ConfirmTokenNotIn applies the NotIn predicate on the "confirm_token" field.
func ConfirmTokenNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldConfirmToken, vs...))
}

// ConfirmTokenGT applies the GT predicate on the "confirm_token" field.
func ConfirmTokenGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldConfirmToken, v))
}

// ConfirmTokenGTE applies the GTE predicate on the "confirm_token" field.
func ConfirmTokenGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldConfirmToken, v))
}

// ConfirmTokenLT applies the LT predicate on the "confirm_token" field.
func ConfirmTokenLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldConfirmToken, v))
}

// ConfirmTokenLTE applies the LTE predicate on the "confirm_token" field.
func ConfirmTokenLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldConfirmToken, v))
}

// ConfirmTokenContains applies the Contains predicate on the "confirm_token" field.
func ConfirmTokenContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldConfirmToken, v))
}

// ConfirmTokenHasPrefix applies the HasPrefix predicate on the "confirm_token" field.
func ConfirmTokenHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldConfirmToken, v))
}

// ConfirmTokenHasSuffix applies the HasSuffix predicate on the "confirm_token" field.
func ConfirmTokenHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldConfirmToken, v))
}

// ConfirmTokenIsNil applies the IsNil predicate on the "confirm_token" field.
func ConfirmTokenIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldConfirmToken))
}

// ConfirmTokenNotNil applies the NotNil predicate on the "confirm_token" field.
func ConfirmTokenNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldConfirmToken))
}

// ConfirmTokenEqualFold applies the EqualFold predicate on the "confirm_token" field.
func ConfirmTokenEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldConfirmToken, v))
}

// ConfirmTokenContainsFold applies the ContainsFold predicate on the "confirm_token" field.
func ConfirmTokenContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldConfirmToken, v))
}

// ConfirmedAtEQ applies the EQ predicate on the "confirmed_at" field.
func ConfirmedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConfirmedAt, v))
}

// ConfirmedAtNEQ applies the NEQ predicate on the "confirmed_at" field.
func ConfirmedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldConfirmedAt, v))
}

// ConfirmedAtIn applies the In predicate on the "confirmed_at" field.
func ConfirmedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtNotIn applies the NotIn predicate on the "confirmed_at" field.
func ConfirmedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtGT applies the GT predicate on the "confirmed_at" field.
func ConfirmedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldConfirmedAt, v))
}

// ConfirmedAtGTE applies the GTE predicate on the "confirmed_at" field.
func ConfirmedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldConfirmedAt, v))
}

// ConfirmedAtLT applies the LT predicate on the "confirmed_at" field.
func ConfirmedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldConfirmedAt, v))
}

// ConfirmedAtLTE applies the LTE predicate on the "confirmed_at" field.
func ConfirmedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldConfirmedAt, v))
}

// ConfirmedAtIsNil applies the IsNil predicate on the "confirmed_at" field.
func ConfirmedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldConfirmedAt))
}

// ConfirmedAtNotNil applies the NotNil predicate on the "confirmed_at" field.
func ConfirmedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldConfirmedAt))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCancelledAt))
}

// CancelReasonEQ applies the EQ predicate on the "cancel_reason" field.
func CancelReasonEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCancelReason, v))
}

// CancelReasonNEQ applies the NEQ predicate on the "cancel_reason" field.
func CancelReasonNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCancelReason, v))
}

// CancelReasonIn applies the In predicate on the "cancel_reason" field.
func CancelReasonIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCancelReason, vs...))
}

// CancelReasonNotIn applies the NotIn predicate on the "cancel_reason" field.
func CancelReasonNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCancelReason, vs...))
}

// CancelReasonGT applies the GT predicate on the "cancel_reason" field.
func CancelReasonGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCancelReason, v))
}

// CancelReasonGTE applies the GTE predicate on the "cancel_reason" field.
func CancelReasonGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCancelReason, v))
}

// CancelReasonLT applies the LT predicate on the "cancel_reason" field.
func CancelReasonLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCancelReason, v))
}

// CancelReasonLTE applies the LTE predicate on the "cancel_reason" field.
func CancelReasonLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCancelReason, v))
}

// CancelReasonContains applies the Contains predicate on the "cancel_reason" field.
func CancelReasonContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCancelReason, v))
}

// CancelReasonHasPrefix applies the HasPrefix predicate on the "cancel_reason" field.
func CancelReasonHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCancelReason, v))
}

// CancelReasonHasSuffix applies the HasSuffix predicate on the "cancel_reason" field.
func CancelReasonHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCancelReason, v))
}

// CancelReasonIsNil applies the IsNil predicate on the "cancel_reason" field.
func CancelReasonIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCancelReason))
}

// CancelReasonNotNil applies the NotNil predicate on the "cancel_reason" field.
func CancelReasonNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCancelReason))
}

// CancelReasonEqualFold applies the EqualFold predicate on the "cancel_reason" field.
func CancelReasonEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCancelReason, v))
}

// CancelReasonContainsFold applies the ContainsFold predicate on the "cancel_reason" field.
func CancelReasonContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCancelReason, v))
}

// RecurrenceRuleEQ applies the EQ predicate on the "recurrence_rule" field.
func RecurrenceRuleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRecurrenceRule, v))
}

// RecurrenceRuleNEQ applies the NEQ predicate on the "recurrence_rule" field.
func RecurrenceRuleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldRecurrenceRule, v))
}

// RecurrenceRuleIn applies the In predicate on the "recurrence_rule" field.
func RecurrenceRuleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldRecurrenceRule, vs...))
}

// RecurrenceRuleNotIn applies the NotIn predicate on the "recurrence_rule" field.
func RecurrenceRuleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldRecurrenceRule, vs...))
}

// RecurrenceRuleGT applies the GT predicate on the "recurrence_rule" field.
func RecurrenceRuleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldRecurrenceRule, v))
}

// RecurrenceRuleGTE applies the GTE predicate on the "recurrence_rule" field.
func RecurrenceRuleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldRecurrenceRule, v))
}

// RecurrenceRuleLT applies the LT predicate on the "recurrence_rule" field.
func RecurrenceRuleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldRecurrenceRule, v))
}

// RecurrenceRuleLTE applies the LTE predicate on the "recurrence_rule" field.
func RecurrenceRuleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldRecurrenceRule, v))
}

// RecurrenceRuleContains applies the Contains predicate on the "recurrence_rule" field.
func RecurrenceRuleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldRecurrenceRule, v))
}

// RecurrenceRuleHasPrefix applies the HasPrefix predicate on the "recurrence_rule" field.
func RecurrenceRuleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldRecurrenceRule, v))
}

// RecurrenceRuleHasSuffix applies the HasSuffix predicate on the "recurrence_rule" field.
func RecurrenceRuleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldRecurrenceRule, v))
}

// RecurrenceRuleIsNil applies the IsNil predicate on the "recurrence_rule" field.
func RecurrenceRuleIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldRecurrenceRule))
}

// RecurrenceRuleNotNil applies the NotNil predicate on the "recurrence_rule" field.
func RecurrenceRuleNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldRecurrenceRule))
}

// RecurrenceRuleEqualFold applies the EqualFold predicate on the "recurrence_rule" field.
func RecurrenceRuleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldRecurrenceRule, v))
}

// RecurrenceRuleContainsFold applies the ContainsFold predicate on the "recurrence_rule" field.
func RecurrenceRuleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldRecurrenceRule, v))
}

// ReminderSentAtEQ applies the EQ predicate on the "reminder_sent_at" field.
func ReminderSentAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldReminderSentAt, v))
}

// ReminderSentAtNEQ applies the NEQ predicate on the "reminder_sent_at" field.
func ReminderSentAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldReminderSentAt, v))
}

// ReminderSentAtIn applies the In predicate on the "reminder_sent_at" field.
func ReminderSentAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldReminderSentAt, vs...))
}

// ReminderSentAtNotIn applies the NotIn predicate on the "reminder_sent_at" field.
func ReminderSentAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldReminderSentAt, vs...))
}

// ReminderSentAtGT applies the GT predicate on the "reminder_sent_at" field.
func ReminderSentAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldReminderSentAt, v))
}

// ReminderSentAtGTE applies the GTE predicate on the "reminder_sent_at" field.
func ReminderSentAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldReminderSentAt, v))
}

// ReminderSentAtLT applies the LT predicate on the "reminder_sent_at" field.
func ReminderSentAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldReminderSentAt, v))
}

// ReminderSentAtLTE applies the LTE predicate on the "reminder_sent_at" field.
func ReminderSentAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldReminderSentAt, v))
}

// ReminderSentAtIsNil applies the IsNil predicate on the "reminder_sent_at" field.
func ReminderSentAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldReminderSentAt))
}

// ReminderSentAtNotNil applies the NotNil predicate on the "reminder_sent_at" field.
func ReminderSentAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldReminderSentAt))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldNotes, v))
}

// MeetingURLEQ applies the EQ predicate on the "meeting_url" field.
func MeetingURLEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMeetingURL, v))
}

// MeetingURLNEQ applies the NEQ predicate on the "meeting_url" field.
func MeetingURLNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMeetingURL, v))
}

// MeetingURLIn applies the In predicate on the "meeting_url" field.
func MeetingURLIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMeetingURL, vs...))
}

// MeetingURLNotIn applies the NotIn predicate on the "meeting_url" field.
func MeetingURLNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMeetingURL, vs...))
}

// MeetingURLGT applies the GT predicate on the "meeting_url" field.
func MeetingURLGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMeetingURL, v))
}

// MeetingURLGTE applies the GTE predicate on the "meeting_url" field.
func MeetingURLGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMeetingURL, v))
}

// MeetingURLLT applies the LT predicate on the "meeting_url" field.
func MeetingURLLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMeetingURL, v))
}

// MeetingURLLTE applies the LTE predicate on the "meeting_url" field.
func MeetingURLLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMeetingURL, v))
}

// MeetingURLContains applies the Contains predicate on the "meeting_url" field.
func MeetingURLContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldMeetingURL, v))
}

// MeetingURLHasPrefix applies the HasPrefix predicate on the "meeting_url" field.
func MeetingURLHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldMeetingURL, v))
}

// MeetingURLHasSuffix applies the HasSuffix predicate on the "meeting_url" field.
func MeetingURLHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldMeetingURL, v))
}

// MeetingURLIsNil applies the IsNil predicate on the "meeting_url" field.
func MeetingURLIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMeetingURL))
}

// MeetingURLNotNil applies the NotNil predicate on the "meeting_url" field.
func MeetingURLNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMeetingURL))
}

// MeetingURLEqualFold applies the EqualFold predicate on the "meeting_url" field.
func MeetingURLEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldMeetingURL, v))
}

// MeetingURLContainsFold applies the ContainsFold predicate on the "meeting_url" field.
func MeetingURLContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldMeetingURL, v))
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.User) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActionItems applies the HasEdge predicate on the "action_items" edge.
func HasActionItems() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActionItemsTable, ActionItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActionItemsWith applies the HasEdge predicate on the "action_items" edge with a given conditions (other predicates).
func HasActionItemsWith(preds ...predicate.ActionItem) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newActionItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
