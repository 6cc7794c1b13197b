// Code generated by ent, DO NOT EDIT.

package clientprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/evanshaw/cadence_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldUserID, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldCompany, v))
}

// Goals applies equality check predicate on the "goals" field. It's identical to GoalsEQ.
func Goals(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldGoals, v))
}

// NotificationPrefs applies equality check predicate on the "notification_prefs" field. It's identical to NotificationPrefsEQ.
func NotificationPrefs(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldNotificationPrefs, v))
}

// OnboardedAt applies equality check predicate on the "onboarded_at" field. It's identical to OnboardedAtEQ.
func OnboardedAt(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldOnboardedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldContainsFold(FieldCompany, v))
}

// GoalsEQ applies the EQ predicate on the "goals" field.
func GoalsEQ(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldGoals, v))
}

// GoalsNEQ applies the NEQ predicate on the "goals" field.
func GoalsNEQ(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNEQ(FieldGoals, v))
}

// GoalsIn applies the In predicate on the "goals" field.
func GoalsIn(vs ...string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIn(FieldGoals, vs...))
}

// GoalsNotIn applies the NotIn predicate on the "goals" field.
func GoalsNotIn(vs ...string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotIn(FieldGoals, vs...))
}

// GoalsGT applies the GT predicate on the "goals" field.
func GoalsGT(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGT(FieldGoals, v))
}

// GoalsGTE applies the GTE predicate on the "goals" field.
func GoalsGTE(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGTE(FieldGoals, v))
}

// GoalsLT applies the LT predicate on the "goals" field.
func GoalsLT(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLT(FieldGoals, v))
}

// GoalsLTE applies the LTE predicate on the "goals" field.
func GoalsLTE(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLTE(FieldGoals, v))
}

// GoalsContains applies the Contains predicate on the "goals" field.
func GoalsContains(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldContains(FieldGoals, v))
}

// GoalsHasPrefix applies the HasPrefix predicate on the "goals" field.
func GoalsHasPrefix(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldHasPrefix(FieldGoals, v))
}

// GoalsHasSuffix applies the HasSuffix predicate on the "goals" field.
func GoalsHasSuffix(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldHasSuffix(FieldGoals, v))
}

// GoalsIsNil applies the IsNil predicate on the "goals" field.
func GoalsIsNil() predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIsNull(FieldGoals))
}

// GoalsNotNil applies the NotNil predicate on the "goals" field.
func GoalsNotNil() predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotNull(FieldGoals))
}

// GoalsEqualFold applies the EqualFold predicate on the "goals" field.
func GoalsEqualFold(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEqualFold(FieldGoals, v))
}

// GoalsContainsFold applies the ContainsFold predicate on the "goals" field.
func GoalsContainsFold(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldContainsFold(FieldGoals, v))
}

// NotificationPrefsEQ applies the EQ predicate on the "notification_prefs" field.
func NotificationPrefsEQ(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldNotificationPrefs, v))
}

// NotificationPrefsNEQ applies the NEQ predicate on the "notification_prefs" field.
func NotificationPrefsNEQ(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNEQ(FieldNotificationPrefs, v))
}

// NotificationPrefsIn applies the In predicate on the "notification_prefs" field.
func NotificationPrefsIn(vs ...string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIn(FieldNotificationPrefs, vs...))
}

// NotificationPrefsNotIn applies the NotIn predicate on the "notification_prefs" field.
func NotificationPrefsNotIn(vs ...string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotIn(FieldNotificationPrefs, vs...))
}

// NotificationPrefsGT applies the GT predicate on the "notification_prefs" field.
func NotificationPrefsGT(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGT(FieldNotificationPrefs, v))
}

// NotificationPrefsGTE applies the GTE predicate on the "notification_prefs" field.
func NotificationPrefsGTE(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGTE(FieldNotificationPrefs, v))
}

// NotificationPrefsLT applies the LT predicate on the "notification_prefs" field.
func NotificationPrefsLT(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLT(FieldNotificationPrefs, v))
}

// NotificationPrefsLTE applies the LTE predicate on the "notification_prefs" field.
func NotificationPrefsLTE(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLTE(FieldNotificationPrefs, v))
}

// NotificationPrefsContains applies the Contains predicate on the "notification_prefs" field.
func NotificationPrefsContains(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldContains(FieldNotificationPrefs, v))
}

// NotificationPrefsHasPrefix applies the HasPrefix predicate on the "notification_prefs" field.
func NotificationPrefsHasPrefix(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldHasPrefix(FieldNotificationPrefs, v))
}

// NotificationPrefsHasSuffix applies the HasSuffix predicate on the "notification_prefs" field.
func NotificationPrefsHasSuffix(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldHasSuffix(FieldNotificationPrefs, v))
}

// NotificationPrefsIsNil applies the IsNil predicate on the "notification_prefs" field.
func NotificationPrefsIsNil() predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIsNull(FieldNotificationPrefs))
}

// NotificationPrefsNotNil applies the NotNil predicate on the "notification_prefs" field.
func NotificationPrefsNotNil() predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotNull(FieldNotificationPrefs))
}

// NotificationPrefsEqualFold applies the EqualFold predicate on the "notification_prefs" field.
func NotificationPrefsEqualFold(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEqualFold(FieldNotificationPrefs, v))
}

// NotificationPrefsContainsFold applies the ContainsFold predicate on the "notification_prefs" field.
func NotificationPrefsContainsFold(v string) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldContainsFold(FieldNotificationPrefs, v))
}

// OnboardedAtEQ applies the EQ predicate on the "onboarded_at" field.
func OnboardedAtEQ(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldEQ(FieldOnboardedAt, v))
}

// OnboardedAtNEQ applies the NEQ predicate on the "onboarded_at" field.
func OnboardedAtNEQ(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNEQ(FieldOnboardedAt, v))
}

// OnboardedAtIn applies the In predicate on the "onboarded_at" field.
func OnboardedAtIn(vs ...time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIn(FieldOnboardedAt, vs...))
}

// OnboardedAtNotIn applies the NotIn predicate on the "onboarded_at" field.
func OnboardedAtNotIn(vs ...time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotIn(FieldOnboardedAt, vs...))
}

// OnboardedAtGT applies the GT predicate on the "onboarded_at" field.
func OnboardedAtGT(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGT(FieldOnboardedAt, v))
}

// OnboardedAtGTE applies the GTE predicate on the "onboarded_at" field.
func OnboardedAtGTE(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldGTE(FieldOnboardedAt, v))
}

// OnboardedAtLT applies the LT predicate on the "onboarded_at" field.
func OnboardedAtLT(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLT(FieldOnboardedAt, v))
}

// OnboardedAtLTE applies the LTE predicate on the "onboarded_at" field.
func OnboardedAtLTE(v time.Time) predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldLTE(FieldOnboardedAt, v))
}

// OnboardedAtIsNil applies the IsNil predicate on the "onboarded_at" field.
func OnboardedAtIsNil() predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldIsNull(FieldOnboardedAt))
}

// OnboardedAtNotNil applies the NotNil predicate on the "onboarded_at" field.
func OnboardedAtNotNil() predicate.ClientProfile {
	return predicate.ClientProfile(sql.FieldNotNull(FieldOnboardedAt))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.ClientProfile {
	return predicate.ClientProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.ClientProfile {
	return predicate.ClientProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientProfile) predicate.ClientProfile {
	return predicate.ClientProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientProfile) predicate.ClientProfile {
	return predicate.ClientProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientProfile) predicate.ClientProfile {
	return predicate.ClientProfile(sql.NotPredicates(p))
}
