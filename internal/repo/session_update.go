// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evanshaw/cadence_backend/internal/repo/actionitem"
	"github.com/evanshaw/cadence_backend/internal/repo/predicate"
	"github.com/evanshaw/cadence_backend/internal/repo/session"
	"github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/google/uuid"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *SessionUpdate) SetClientID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableClientID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionUpdate) SetTitle(v string) *SessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTitle(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SessionUpdate) ClearTitle() *SessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *SessionUpdate) SetScheduledAt(v time.Time) *SessionUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableScheduledAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdate) SetDurationMinutes(v int) *SessionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDurationMinutes(v *int) *SessionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdate) AddDurationMinutes(v int) *SessionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *SessionUpdate) SetTimezone(v string) *SessionUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTimezone(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfirmToken sets the "confirm_token" field.
func (_u *SessionUpdate) SetConfirmToken(v string) *SessionUpdate {
	_u.mutation.SetConfirmToken(v)
	return _u
}

// SetNillableConfirmToken sets the "confirm_token" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableConfirmToken(v *string) *SessionUpdate {
	if v != nil {
		_u.SetConfirmToken(*v)
	}
	return _u
}

// ClearConfirmToken clears the value of the "confirm_token" field.
func (_u *SessionUpdate) ClearConfirmToken() *SessionUpdate {
	_u.mutation.ClearConfirmToken()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *SessionUpdate) SetConfirmedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableConfirmedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *SessionUpdate) ClearConfirmedAt() *SessionUpdate {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *SessionUpdate) SetCancelledAt(v time.Time) *SessionUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCancelledAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *SessionUpdate) ClearCancelledAt() *SessionUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *SessionUpdate) SetCancelReason(v string) *SessionUpdate {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCancelReason(v *string) *SessionUpdate {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *SessionUpdate) ClearCancelReason() *SessionUpdate {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (_u *SessionUpdate) SetRecurrenceRule(v string) *SessionUpdate {
	_u.mutation.SetRecurrenceRule(v)
	return _u
}

// SetNillableRecurrenceRule sets the "recurrence_rule" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableRecurrenceRule(v *string) *SessionUpdate {
	if v != nil {
		_u.SetRecurrenceRule(*v)
	}
	return _u
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (_u *SessionUpdate) ClearRecurrenceRule() *SessionUpdate {
	_u.mutation.ClearRecurrenceRule()
	return _u
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_u *SessionUpdate) SetReminderSentAt(v time.Time) *SessionUpdate {
	_u.mutation.SetReminderSentAt(v)
	return _u
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableReminderSentAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetReminderSentAt(*v)
	}
	return _u
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (_u *SessionUpdate) ClearReminderSentAt() *SessionUpdate {
	_u.mutation.ClearReminderSentAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionUpdate) SetNotes(v string) *SessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableNotes(v *string) *SessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SessionUpdate) ClearNotes() *SessionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetMeetingURL sets the "meeting_url" field.
func (_u *SessionUpdate) SetMeetingURL(v string) *SessionUpdate {
	_u.mutation.SetMeetingURL(v)
	return _u
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMeetingURL(v *string) *SessionUpdate {
	if v != nil {
		_u.SetMeetingURL(*v)
	}
	return _u
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (_u *SessionUpdate) ClearMeetingURL() *SessionUpdate {
	_u.mutation.ClearMeetingURL()
	return _u
}

// SetClient sets the "client" edge to the User entity.
func (_u *SessionUpdate) SetClient(v *User) *SessionUpdate {
	return _u.SetClientID(v.ID)
}

// AddActionItemIDs adds the "action_items" edge to the ActionItem entity by IDs.
func (_u *SessionUpdate) AddActionItemIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.AddActionItemIDs(ids...)
	return _u
}

// AddActionItems adds the "action_items" edges to the ActionItem entity.
func (_u *SessionUpdate) AddActionItems(v ...*ActionItem) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionItemIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the User entity.
func (_u *SessionUpdate) ClearClient() *SessionUpdate {
	_u.mutation.ClearClient()
	return _u
}

// ClearActionItems clears all "action_items" edges to the ActionItem entity.
func (_u *SessionUpdate) ClearActionItems() *SessionUpdate {
	_u.mutation.ClearActionItems()
	return _u
}

// RemoveActionItemIDs removes the "action_items" edge to ActionItem entities by IDs.
func (_u *SessionUpdate) RemoveActionItemIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.RemoveActionItemIDs(ids...)
	return _u
}

// RemoveActionItems removes "action_items" edges to ActionItem entities.
func (_u *SessionUpdate) RemoveActionItems(v ...*ActionItem) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Session.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := session.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Session.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfirmToken(); ok {
		if err := session.ConfirmTokenValidator(v); err != nil {
			return &ValidationError{Name: "confirm_token", err: fmt.Errorf(`repo: validator failed for field "Session.confirm_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancelReason(); ok {
		if err := session.CancelReasonValidator(v); err != nil {
			return &ValidationError{Name: "cancel_reason", err: fmt.Errorf(`repo: validator failed for field "Session.cancel_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecurrenceRule(); ok {
		if err := session.RecurrenceRuleValidator(v); err != nil {
			return &ValidationError{Name: "recurrence_rule", err: fmt.Errorf(`repo: validator failed for field "Session.recurrence_rule": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingURL(); ok {
		if err := session.MeetingURLValidator(v); err != nil {
			return &ValidationError{Name: "meeting_url", err: fmt.Errorf(`repo: validator failed for field "Session.meeting_url": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Session.client"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(session.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(session.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfirmToken(); ok {
		_spec.SetField(session.FieldConfirmToken, field.TypeString, value)
	}
	if _u.mutation.ConfirmTokenCleared() {
		_spec.ClearField(session.FieldConfirmToken, field.TypeString)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(session.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(session.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(session.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(session.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(session.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(session.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.RecurrenceRule(); ok {
		_spec.SetField(session.FieldRecurrenceRule, field.TypeString, value)
	}
	if _u.mutation.RecurrenceRuleCleared() {
		_spec.ClearField(session.FieldRecurrenceRule, field.TypeString)
	}
	if value, ok := _u.mutation.ReminderSentAt(); ok {
		_spec.SetField(session.FieldReminderSentAt, field.TypeTime, value)
	}
	if _u.mutation.ReminderSentAtCleared() {
		_spec.ClearField(session.FieldReminderSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(session.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingURL(); ok {
		_spec.SetField(session.FieldMeetingURL, field.TypeString, value)
	}
	if _u.mutation.MeetingURLCleared() {
		_spec.ClearField(session.FieldMeetingURL, field.TypeString)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ClientTable,
			Columns: []string{session.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ClientTable,
			Columns: []string{session.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActionItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ActionItemsTable,
			Columns: []string{session.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionItemsIDs(); len(nodes) > 0 && !_u.mutation.ActionItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ActionItemsTable,
			Columns: []string{session.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ActionItemsTable,
			Columns: []string{session.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *SessionUpdateOne) SetClientID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableClientID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionUpdateOne) SetTitle(v string) *SessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTitle(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SessionUpdateOne) ClearTitle() *SessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *SessionUpdateOne) SetScheduledAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableScheduledAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdateOne) SetDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDurationMinutes(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdateOne) AddDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *SessionUpdateOne) SetTimezone(v string) *SessionUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTimezone(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfirmToken sets the "confirm_token" field.
func (_u *SessionUpdateOne) SetConfirmToken(v string) *SessionUpdateOne {
	_u.mutation.SetConfirmToken(v)
	return _u
}

// SetNillableConfirmToken sets the "confirm_token" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableConfirmToken(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetConfirmToken(*v)
	}
	return _u
}

// ClearConfirmToken clears the value of the "confirm_token" field.
func (_u *SessionUpdateOne) ClearConfirmToken() *SessionUpdateOne {
	_u.mutation.ClearConfirmToken()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *SessionUpdateOne) SetConfirmedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableConfirmedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *SessionUpdateOne) ClearConfirmedAt() *SessionUpdateOne {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *SessionUpdateOne) SetCancelledAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCancelledAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *SessionUpdateOne) ClearCancelledAt() *SessionUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *SessionUpdateOne) SetCancelReason(v string) *SessionUpdateOne {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCancelReason(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *SessionUpdateOne) ClearCancelReason() *SessionUpdateOne {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (_u *SessionUpdateOne) SetRecurrenceRule(v string) *SessionUpdateOne {
	_u.mutation.SetRecurrenceRule(v)
	return _u
}

// SetNillableRecurrenceRule sets the "recurrence_rule" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableRecurrenceRule(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetRecurrenceRule(*v)
	}
	return _u
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (_u *SessionUpdateOne) ClearRecurrenceRule() *SessionUpdateOne {
	_u.mutation.ClearRecurrenceRule()
	return _u
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_u *SessionUpdateOne) SetReminderSentAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetReminderSentAt(v)
	return _u
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableReminderSentAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetReminderSentAt(*v)
	}
	return _u
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (_u *SessionUpdateOne) ClearReminderSentAt() *SessionUpdateOne {
	_u.mutation.ClearReminderSentAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionUpdateOne) SetNotes(v string) *SessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableNotes(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SessionUpdateOne) ClearNotes() *SessionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetMeetingURL sets the "meeting_url" field.
func (_u *SessionUpdateOne) SetMeetingURL(v string) *SessionUpdateOne {
	_u.mutation.SetMeetingURL(v)
	return _u
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMeetingURL(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetMeetingURL(*v)
	}
	return _u
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (_u *SessionUpdateOne) ClearMeetingURL() *SessionUpdateOne {
	_u.mutation.ClearMeetingURL()
	return _u
}

// SetClient sets the "client" edge to the User entity.
func (_u *SessionUpdateOne) SetClient(v *User) *SessionUpdateOne {
	return _u.SetClientID(v.ID)
}

// AddActionItemIDs adds the "action_items" edge to the ActionItem entity by IDs.
func (_u *SessionUpdateOne) AddActionItemIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.AddActionItemIDs(ids...)
	return _u
}

// AddActionItems adds the "action_items" edges to the ActionItem entity.
func (_u *SessionUpdateOne) AddActionItems(v ...*ActionItem) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionItemIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the User entity.
func (_u *SessionUpdateOne) ClearClient() *SessionUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// ClearActionItems clears all "action_items" edges to the ActionItem entity.
func (_u *SessionUpdateOne) ClearActionItems() *SessionUpdateOne {
	_u.mutation.ClearActionItems()
	return _u
}

// RemoveActionItemIDs removes the "action_items" edge to ActionItem entities by IDs.
func (_u *SessionUpdateOne) RemoveActionItemIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.RemoveActionItemIDs(ids...)
	return _u
}

// RemoveActionItems removes "action_items" edges to ActionItem entities.
func (_u *SessionUpdateOne) RemoveActionItems(v ...*ActionItem) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionItemIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Session.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := session.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Session.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfirmToken(); ok {
		if err := session.ConfirmTokenValidator(v); err != nil {
			return &ValidationError{Name: "confirm_token", err: fmt.Errorf(`repo: validator failed for field "Session.confirm_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancelReason(); ok {
		if err := session.CancelReasonValidator(v); err != nil {
			return &ValidationError{Name: "cancel_reason", err: fmt.Errorf(`repo: validator failed for field "Session.cancel_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecurrenceRule(); ok {
		if err := session.RecurrenceRuleValidator(v); err != nil {
			return &ValidationError{Name: "recurrence_rule", err: fmt.Errorf(`repo: validator failed for field "Session.recurrence_rule": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingURL(); ok {
		if err := session.MeetingURLValidator(v); err != nil {
			return &ValidationError{Name: "meeting_url", err: fmt.Errorf(`repo: validator failed for field "Session.meeting_url": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Session.client"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(session.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(session.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConfirmToken(); ok {
		_spec.SetField(session.FieldConfirmToken, field.TypeString, value)
	}
	if _u.mutation.ConfirmTokenCleared() {
		_spec.ClearField(session.FieldConfirmToken, field.TypeString)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(session.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(session.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(session.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(session.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(session.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(session.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.RecurrenceRule(); ok {
		_spec.SetField(session.FieldRecurrenceRule, field.TypeString, value)
	}
	if _u.mutation.RecurrenceRuleCleared() {
		_spec.ClearField(session.FieldRecurrenceRule, field.TypeString)
	}
	if value, ok := _u.mutation.ReminderSentAt(); ok {
		_spec.SetField(session.FieldReminderSentAt, field.TypeTime, value)
	}
	if _u.mutation.ReminderSentAtCleared() {
		_spec.ClearField(session.FieldReminderSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(session.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingURL(); ok {
		_spec.SetField(session.FieldMeetingURL, field.TypeString, value)
	}
	if _u.mutation.MeetingURLCleared() {
		_spec.ClearField(session.FieldMeetingURL, field.TypeString)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ClientTable,
			Columns: []string{session.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ClientTable,
			Columns: []string{session.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActionItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ActionItemsTable,
			Columns: []string{session.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionItemsIDs(); len(nodes) > 0 && !_u.mutation.ActionItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ActionItemsTable,
			Columns: []string{session.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ActionItemsTable,
			Columns: []string{session.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
