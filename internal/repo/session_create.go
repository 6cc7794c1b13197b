// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evanshaw/cadence_backend/internal/repo/actionitem"
	"github.com/evanshaw/cadence_backend/internal/repo/session"
	"github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/google/uuid"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *SessionCreate) SetClientID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SessionCreate) SetTitle(v string) *SessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTitle(v *string) *SessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *SessionCreate) SetScheduledAt(v time.Time) *SessionCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *SessionCreate) SetDurationMinutes(v int) *SessionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDurationMinutes(v *int) *SessionCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *SessionCreate) SetTimezone(v string) *SessionCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTimezone(v *string) *SessionCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfirmToken sets the "confirm_token" field.
func (_c *SessionCreate) SetConfirmToken(v string) *SessionCreate {
	_c.mutation.SetConfirmToken(v)
	return _c
}

// SetNillableConfirmToken sets the "confirm_token" field if the given value is not nil.
func (_c *SessionCreate) SetNillableConfirmToken(v *string) *SessionCreate {
	if v != nil {
		_c.SetConfirmToken(*v)
	}
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *SessionCreate) SetConfirmedAt(v time.Time) *SessionCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableConfirmedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *SessionCreate) SetCancelledAt(v time.Time) *SessionCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCancelledAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCancelReason sets the "cancel_reason" field.
func (_c *SessionCreate) SetCancelReason(v string) *SessionCreate {
	_c.mutation.SetCancelReason(v)
	return _c
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCancelReason(v *string) *SessionCreate {
	if v != nil {
		_c.SetCancelReason(*v)
	}
	return _c
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (_c *SessionCreate) SetRecurrenceRule(v string) *SessionCreate {
	_c.mutation.SetRecurrenceRule(v)
	return _c
}

// SetNillableRecurrenceRule sets the "recurrence_rule" field if the given value is not nil.
func (_c *SessionCreate) SetNillableRecurrenceRule(v *string) *SessionCreate {
	if v != nil {
		_c.SetRecurrenceRule(*v)
	}
	return _c
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_c *SessionCreate) SetReminderSentAt(v time.Time) *SessionCreate {
	_c.mutation.SetReminderSentAt(v)
	return _c
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableReminderSentAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetReminderSentAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SessionCreate) SetNotes(v string) *SessionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SessionCreate) SetNillableNotes(v *string) *SessionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetMeetingURL sets the "meeting_url" field.
func (_c *SessionCreate) SetMeetingURL(v string) *SessionCreate {
	_c.mutation.SetMeetingURL(v)
	return _c
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMeetingURL(v *string) *SessionCreate {
	if v != nil {
		_c.SetMeetingURL(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClient sets the "client" edge to the User entity.
func (_c *SessionCreate) SetClient(v *User) *SessionCreate {
	return _c.SetClientID(v.ID)
}

// AddActionItemIDs adds the "action_items" edge to the ActionItem entity by IDs.
func (_c *SessionCreate) AddActionItemIDs(ids ...uuid.UUID) *SessionCreate {
	_c.mutation.AddActionItemIDs(ids...)
	return _c
}

// AddActionItems adds the "action_items" edges to the ActionItem entity.
func (_c *SessionCreate) AddActionItems(v ...*ActionItem) *SessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActionItemIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := session.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := session.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := session.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Session.updated_at"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "Session.client_id"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := session.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Session.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`repo: missing required field "Session.scheduled_at"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "Session.duration_minutes"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "Session.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := session.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Session.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ConfirmToken(); ok {
		if err := session.ConfirmTokenValidator(v); err != nil {
			return &ValidationError{Name: "confirm_token", err: fmt.Errorf(`repo: validator failed for field "Session.confirm_token": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CancelReason(); ok {
		if err := session.CancelReasonValidator(v); err != nil {
			return &ValidationError{Name: "cancel_reason", err: fmt.Errorf(`repo: validator failed for field "Session.cancel_reason": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RecurrenceRule(); ok {
		if err := session.RecurrenceRuleValidator(v); err != nil {
			return &ValidationError{Name: "recurrence_rule", err: fmt.Errorf(`repo: validator failed for field "Session.recurrence_rule": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MeetingURL(); ok {
		if err := session.MeetingURLValidator(v); err != nil {
			return &ValidationError{Name: "meeting_url", err: fmt.Errorf(`repo: validator failed for field "Session.meeting_url": %w`, err)}
		}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`repo: missing required edge "Session.client"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(session.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConfirmToken(); ok {
		_spec.SetField(session.FieldConfirmToken, field.TypeString, value)
		_node.ConfirmToken = value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(session.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(session.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CancelReason(); ok {
		_spec.SetField(session.FieldCancelReason, field.TypeString, value)
		_node.CancelReason = value
	}
	if value, ok := _c.mutation.RecurrenceRule(); ok {
		_spec.SetField(session.FieldRecurrenceRule, field.TypeString, value)
		_node.RecurrenceRule = value
	}
	if value, ok := _c.mutation.ReminderSentAt(); ok {
		_spec.SetField(session.FieldReminderSentAt, field.TypeTime, value)
		_node.ReminderSentAt = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.MeetingURL(); ok {
		_spec.SetField(session.FieldMeetingURL, field.TypeString, value)
		_node.MeetingURL = value
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
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
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActionItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsert) SetUpdatedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUpdatedAt() *SessionUpsert {
	u.SetExcluded(session.FieldUpdatedAt)
	return u
}

// SetClientID sets the "client_id" field.
func (u *SessionUpsert) SetClientID(v uuid.UUID) *SessionUpsert {
	u.Set(session.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateClientID() *SessionUpsert {
	u.SetExcluded(session.FieldClientID)
	return u
}

// SetTitle sets the "title" field.
func (u *SessionUpsert) SetTitle(v string) *SessionUpsert {
	u.Set(session.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTitle() *SessionUpsert {
	u.SetExcluded(session.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *SessionUpsert) ClearTitle() *SessionUpsert {
	u.SetNull(session.FieldTitle)
	return u
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *SessionUpsert) SetScheduledAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldScheduledAt, v)
	return u
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateScheduledAt() *SessionUpsert {
	u.SetExcluded(session.FieldScheduledAt)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SessionUpsert) SetDurationMinutes(v int) *SessionUpsert {
	u.Set(session.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SessionUpsert) UpdateDurationMinutes() *SessionUpsert {
	u.SetExcluded(session.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SessionUpsert) AddDurationMinutes(v int) *SessionUpsert {
	u.Add(session.FieldDurationMinutes, v)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *SessionUpsert) SetTimezone(v string) *SessionUpsert {
	u.Set(session.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTimezone() *SessionUpsert {
	u.SetExcluded(session.FieldTimezone)
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsert) SetStatus(v session.Status) *SessionUpsert {
	u.Set(session.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStatus() *SessionUpsert {
	u.SetExcluded(session.FieldStatus)
	return u
}

// SetConfirmToken sets the "confirm_token" field.
func (u *SessionUpsert) SetConfirmToken(v string) *SessionUpsert {
	u.Set(session.FieldConfirmToken, v)
	return u
}

// UpdateConfirmToken sets the "confirm_token" field to the value that was provided on create.
func (u *SessionUpsert) UpdateConfirmToken() *SessionUpsert {
	u.SetExcluded(session.FieldConfirmToken)
	return u
}

// ClearConfirmToken clears the value of the "confirm_token" field.
func (u *SessionUpsert) ClearConfirmToken() *SessionUpsert {
	u.SetNull(session.FieldConfirmToken)
	return u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *SessionUpsert) SetConfirmedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldConfirmedAt, v)
	return u
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateConfirmedAt() *SessionUpsert {
	u.SetExcluded(session.FieldConfirmedAt)
	return u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *SessionUpsert) ClearConfirmedAt() *SessionUpsert {
	u.SetNull(session.FieldConfirmedAt)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *SessionUpsert) SetCancelledAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCancelledAt() *SessionUpsert {
	u.SetExcluded(session.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *SessionUpsert) ClearCancelledAt() *SessionUpsert {
	u.SetNull(session.FieldCancelledAt)
	return u
}

// SetCancelReason sets the "cancel_reason" field.
func (u *SessionUpsert) SetCancelReason(v string) *SessionUpsert {
	u.Set(session.FieldCancelReason, v)
	return u
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCancelReason() *SessionUpsert {
	u.SetExcluded(session.FieldCancelReason)
	return u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *SessionUpsert) ClearCancelReason() *SessionUpsert {
	u.SetNull(session.FieldCancelReason)
	return u
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (u *SessionUpsert) SetRecurrenceRule(v string) *SessionUpsert {
	u.Set(session.FieldRecurrenceRule, v)
	return u
}

// UpdateRecurrenceRule sets the "recurrence_rule" field to the value that was provided on create.
func (u *SessionUpsert) UpdateRecurrenceRule() *SessionUpsert {
	u.SetExcluded(session.FieldRecurrenceRule)
	return u
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (u *SessionUpsert) ClearRecurrenceRule() *SessionUpsert {
	u.SetNull(session.FieldRecurrenceRule)
	return u
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (u *SessionUpsert) SetReminderSentAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldReminderSentAt, v)
	return u
}

// UpdateReminderSentAt sets the "reminder_sent_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateReminderSentAt() *SessionUpsert {
	u.SetExcluded(session.FieldReminderSentAt)
	return u
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (u *SessionUpsert) ClearReminderSentAt() *SessionUpsert {
	u.SetNull(session.FieldReminderSentAt)
	return u
}

// SetNotes sets the "notes" field.
func (u *SessionUpsert) SetNotes(v string) *SessionUpsert {
	u.Set(session.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SessionUpsert) UpdateNotes() *SessionUpsert {
	u.SetExcluded(session.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *SessionUpsert) ClearNotes() *SessionUpsert {
	u.SetNull(session.FieldNotes)
	return u
}

// SetMeetingURL sets the "meeting_url" field.
func (u *SessionUpsert) SetMeetingURL(v string) *SessionUpsert {
	u.Set(session.FieldMeetingURL, v)
	return u
}

// UpdateMeetingURL sets the "meeting_url" field to the value that was provided on create.
func (u *SessionUpsert) UpdateMeetingURL() *SessionUpsert {
	u.SetExcluded(session.FieldMeetingURL)
	return u
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (u *SessionUpsert) ClearMeetingURL() *SessionUpsert {
	u.SetNull(session.FieldMeetingURL)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(session.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertOne) SetUpdatedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUpdatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClientID sets the "client_id" field.
func (u *SessionUpsertOne) SetClientID(v uuid.UUID) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateClientID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateClientID()
	})
}

// SetTitle sets the "title" field.
func (u *SessionUpsertOne) SetTitle(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTitle() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *SessionUpsertOne) ClearTitle() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearTitle()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *SessionUpsertOne) SetScheduledAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateScheduledAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SessionUpsertOne) SetDurationMinutes(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SessionUpsertOne) AddDurationMinutes(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateDurationMinutes() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetTimezone sets the "timezone" field.
func (u *SessionUpsertOne) SetTimezone(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTimezone() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTimezone()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertOne) SetStatus(v session.Status) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetConfirmToken sets the "confirm_token" field.
func (u *SessionUpsertOne) SetConfirmToken(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetConfirmToken(v)
	})
}

// UpdateConfirmToken sets the "confirm_token" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateConfirmToken() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateConfirmToken()
	})
}

// ClearConfirmToken clears the value of the "confirm_token" field.
func (u *SessionUpsertOne) ClearConfirmToken() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearConfirmToken()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *SessionUpsertOne) SetConfirmedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateConfirmedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *SessionUpsertOne) ClearConfirmedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *SessionUpsertOne) SetCancelledAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCancelledAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *SessionUpsertOne) ClearCancelledAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *SessionUpsertOne) SetCancelReason(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCancelReason() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *SessionUpsertOne) ClearCancelReason() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancelReason()
	})
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (u *SessionUpsertOne) SetRecurrenceRule(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetRecurrenceRule(v)
	})
}

// UpdateRecurrenceRule sets the "recurrence_rule" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateRecurrenceRule() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateRecurrenceRule()
	})
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (u *SessionUpsertOne) ClearRecurrenceRule() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearRecurrenceRule()
	})
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (u *SessionUpsertOne) SetReminderSentAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetReminderSentAt(v)
	})
}

// UpdateReminderSentAt sets the "reminder_sent_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateReminderSentAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateReminderSentAt()
	})
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (u *SessionUpsertOne) ClearReminderSentAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearReminderSentAt()
	})
}

// SetNotes sets the "notes" field.
func (u *SessionUpsertOne) SetNotes(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateNotes() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *SessionUpsertOne) ClearNotes() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearNotes()
	})
}

// SetMeetingURL sets the "meeting_url" field.
func (u *SessionUpsertOne) SetMeetingURL(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetMeetingURL(v)
	})
}

// UpdateMeetingURL sets the "meeting_url" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateMeetingURL() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMeetingURL()
	})
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (u *SessionUpsertOne) ClearMeetingURL() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMeetingURL()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(session.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertBulk) SetUpdatedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUpdatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClientID sets the "client_id" field.
func (u *SessionUpsertBulk) SetClientID(v uuid.UUID) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateClientID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateClientID()
	})
}

// SetTitle sets the "title" field.
func (u *SessionUpsertBulk) SetTitle(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTitle() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *SessionUpsertBulk) ClearTitle() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearTitle()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *SessionUpsertBulk) SetScheduledAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateScheduledAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SessionUpsertBulk) SetDurationMinutes(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SessionUpsertBulk) AddDurationMinutes(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateDurationMinutes() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetTimezone sets the "timezone" field.
func (u *SessionUpsertBulk) SetTimezone(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTimezone() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTimezone()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertBulk) SetStatus(v session.Status) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetConfirmToken sets the "confirm_token" field.
func (u *SessionUpsertBulk) SetConfirmToken(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetConfirmToken(v)
	})
}

// UpdateConfirmToken sets the "confirm_token" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateConfirmToken() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateConfirmToken()
	})
}

// ClearConfirmToken clears the value of the "confirm_token" field.
func (u *SessionUpsertBulk) ClearConfirmToken() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearConfirmToken()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *SessionUpsertBulk) SetConfirmedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateConfirmedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *SessionUpsertBulk) ClearConfirmedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *SessionUpsertBulk) SetCancelledAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCancelledAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *SessionUpsertBulk) ClearCancelledAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *SessionUpsertBulk) SetCancelReason(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCancelReason() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *SessionUpsertBulk) ClearCancelReason() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancelReason()
	})
}

// SetRecurrenceRule sets the "recurrence_rule" field.
func (u *SessionUpsertBulk) SetRecurrenceRule(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetRecurrenceRule(v)
	})
}

// UpdateRecurrenceRule sets the "recurrence_rule" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateRecurrenceRule() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateRecurrenceRule()
	})
}

// ClearRecurrenceRule clears the value of the "recurrence_rule" field.
func (u *SessionUpsertBulk) ClearRecurrenceRule() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearRecurrenceRule()
	})
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (u *SessionUpsertBulk) SetReminderSentAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetReminderSentAt(v)
	})
}

// UpdateReminderSentAt sets the "reminder_sent_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateReminderSentAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateReminderSentAt()
	})
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (u *SessionUpsertBulk) ClearReminderSentAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearReminderSentAt()
	})
}

// SetNotes sets the "notes" field.
func (u *SessionUpsertBulk) SetNotes(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateNotes() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *SessionUpsertBulk) ClearNotes() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearNotes()
	})
}

// SetMeetingURL sets the "meeting_url" field.
func (u *SessionUpsertBulk) SetMeetingURL(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetMeetingURL(v)
	})
}

// UpdateMeetingURL sets the "meeting_url" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateMeetingURL() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMeetingURL()
	})
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (u *SessionUpsertBulk) ClearMeetingURL() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMeetingURL()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
