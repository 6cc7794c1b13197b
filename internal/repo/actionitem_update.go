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

// ActionItemUpdate is the builder for updating ActionItem entities.
type ActionItemUpdate struct {
	config
	hooks    []Hook
	mutation *ActionItemMutation
}

// Where appends a list predicates to the ActionItemUpdate builder.
func (_u *ActionItemUpdate) Where(ps ...predicate.ActionItem) *ActionItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActionItemUpdate) SetUpdatedAt(v time.Time) *ActionItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ActionItemUpdate) SetClientID(v uuid.UUID) *ActionItemUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableClientID(v *uuid.UUID) *ActionItemUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActionItemUpdate) SetSessionID(v uuid.UUID) *ActionItemUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableSessionID(v *uuid.UUID) *ActionItemUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ActionItemUpdate) ClearSessionID() *ActionItemUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ActionItemUpdate) SetTitle(v string) *ActionItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableTitle(v *string) *ActionItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ActionItemUpdate) SetNotes(v string) *ActionItemUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableNotes(v *string) *ActionItemUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ActionItemUpdate) ClearNotes() *ActionItemUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetDueOn sets the "due_on" field.
func (_u *ActionItemUpdate) SetDueOn(v time.Time) *ActionItemUpdate {
	_u.mutation.SetDueOn(v)
	return _u
}

// SetNillableDueOn sets the "due_on" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableDueOn(v *time.Time) *ActionItemUpdate {
	if v != nil {
		_u.SetDueOn(*v)
	}
	return _u
}

// ClearDueOn clears the value of the "due_on" field.
func (_u *ActionItemUpdate) ClearDueOn() *ActionItemUpdate {
	_u.mutation.ClearDueOn()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionItemUpdate) SetStatus(v actionitem.Status) *ActionItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableStatus(v *actionitem.Status) *ActionItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActionItemUpdate) SetCompletedAt(v time.Time) *ActionItemUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableCompletedAt(v *time.Time) *ActionItemUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActionItemUpdate) ClearCompletedAt() *ActionItemUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetClient sets the "client" edge to the User entity.
func (_u *ActionItemUpdate) SetClient(v *User) *ActionItemUpdate {
	return _u.SetClientID(v.ID)
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ActionItemUpdate) SetSession(v *Session) *ActionItemUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ActionItemMutation object of the builder.
func (_u *ActionItemUpdate) Mutation() *ActionItemMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the User entity.
func (_u *ActionItemUpdate) ClearClient() *ActionItemUpdate {
	_u.mutation.ClearClient()
	return _u
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ActionItemUpdate) ClearSession() *ActionItemUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActionItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := actionitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionItemUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := actionitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ActionItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := actionitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ActionItem.status": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ActionItem.client"`)
	}
	return nil
}

func (_u *ActionItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionitem.Table, actionitem.Columns, sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(actionitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(actionitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(actionitem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(actionitem.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DueOn(); ok {
		_spec.SetField(actionitem.FieldDueOn, field.TypeTime, value)
	}
	if _u.mutation.DueOnCleared() {
		_spec.ClearField(actionitem.FieldDueOn, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(actionitem.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(actionitem.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actionitem.ClientTable,
			Columns: []string{actionitem.ClientColumn},
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
			Table:   actionitem.ClientTable,
			Columns: []string{actionitem.ClientColumn},
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
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actionitem.SessionTable,
			Columns: []string{actionitem.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actionitem.SessionTable,
			Columns: []string{actionitem.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionItemUpdateOne is the builder for updating a single ActionItem entity.
type ActionItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActionItemUpdateOne) SetUpdatedAt(v time.Time) *ActionItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ActionItemUpdateOne) SetClientID(v uuid.UUID) *ActionItemUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableClientID(v *uuid.UUID) *ActionItemUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActionItemUpdateOne) SetSessionID(v uuid.UUID) *ActionItemUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableSessionID(v *uuid.UUID) *ActionItemUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ActionItemUpdateOne) ClearSessionID() *ActionItemUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ActionItemUpdateOne) SetTitle(v string) *ActionItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableTitle(v *string) *ActionItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ActionItemUpdateOne) SetNotes(v string) *ActionItemUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableNotes(v *string) *ActionItemUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ActionItemUpdateOne) ClearNotes() *ActionItemUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetDueOn sets the "due_on" field.
func (_u *ActionItemUpdateOne) SetDueOn(v time.Time) *ActionItemUpdateOne {
	_u.mutation.SetDueOn(v)
	return _u
}

// SetNillableDueOn sets the "due_on" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableDueOn(v *time.Time) *ActionItemUpdateOne {
	if v != nil {
		_u.SetDueOn(*v)
	}
	return _u
}

// ClearDueOn clears the value of the "due_on" field.
func (_u *ActionItemUpdateOne) ClearDueOn() *ActionItemUpdateOne {
	_u.mutation.ClearDueOn()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionItemUpdateOne) SetStatus(v actionitem.Status) *ActionItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableStatus(v *actionitem.Status) *ActionItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActionItemUpdateOne) SetCompletedAt(v time.Time) *ActionItemUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableCompletedAt(v *time.Time) *ActionItemUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActionItemUpdateOne) ClearCompletedAt() *ActionItemUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetClient sets the "client" edge to the User entity.
func (_u *ActionItemUpdateOne) SetClient(v *User) *ActionItemUpdateOne {
	return _u.SetClientID(v.ID)
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ActionItemUpdateOne) SetSession(v *Session) *ActionItemUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ActionItemMutation object of the builder.
func (_u *ActionItemUpdateOne) Mutation() *ActionItemMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the User entity.
func (_u *ActionItemUpdateOne) ClearClient() *ActionItemUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ActionItemUpdateOne) ClearSession() *ActionItemUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the ActionItemUpdate builder.
func (_u *ActionItemUpdateOne) Where(ps ...predicate.ActionItem) *ActionItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionItemUpdateOne) Select(field string, fields ...string) *ActionItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionItem entity.
func (_u *ActionItemUpdateOne) Save(ctx context.Context) (*ActionItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionItemUpdateOne) SaveX(ctx context.Context) *ActionItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActionItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := actionitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionItemUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := actionitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ActionItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := actionitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ActionItem.status": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ActionItem.client"`)
	}
	return nil
}

func (_u *ActionItemUpdateOne) sqlSave(ctx context.Context) (_node *ActionItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionitem.Table, actionitem.Columns, sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ActionItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionitem.FieldID)
		for _, f := range fields {
			if !actionitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != actionitem.FieldID {
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
		_spec.SetField(actionitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(actionitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(actionitem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(actionitem.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DueOn(); ok {
		_spec.SetField(actionitem.FieldDueOn, field.TypeTime, value)
	}
	if _u.mutation.DueOnCleared() {
		_spec.ClearField(actionitem.FieldDueOn, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(actionitem.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(actionitem.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actionitem.ClientTable,
			Columns: []string{actionitem.ClientColumn},
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
			Table:   actionitem.ClientTable,
			Columns: []string{actionitem.ClientColumn},
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
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actionitem.SessionTable,
			Columns: []string{actionitem.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actionitem.SessionTable,
			Columns: []string{actionitem.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ActionItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
