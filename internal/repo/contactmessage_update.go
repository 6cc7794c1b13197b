// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evanshaw/cadence_backend/internal/repo/contactmessage"
	"github.com/evanshaw/cadence_backend/internal/repo/predicate"
)

// ContactMessageUpdate is the builder for updating ContactMessage entities.
type ContactMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMessageMutation
}

// Where appends a list predicates to the ContactMessageUpdate builder.
func (_u *ContactMessageUpdate) Where(ps ...predicate.ContactMessage) *ContactMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ContactMessageUpdate) SetName(v string) *ContactMessageUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableName(v *string) *ContactMessageUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactMessageUpdate) SetEmail(v string) *ContactMessageUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableEmail(v *string) *ContactMessageUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ContactMessageUpdate) SetSubject(v string) *ContactMessageUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableSubject(v *string) *ContactMessageUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ContactMessageUpdate) ClearSubject() *ContactMessageUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *ContactMessageUpdate) SetBody(v string) *ContactMessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableBody(v *string) *ContactMessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContactMessageUpdate) SetKind(v contactmessage.Kind) *ContactMessageUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableKind(v *contactmessage.Kind) *ContactMessageUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetHandled sets the "handled" field.
func (_u *ContactMessageUpdate) SetHandled(v bool) *ContactMessageUpdate {
	_u.mutation.SetHandled(v)
	return _u
}

// SetNillableHandled sets the "handled" field if the given value is not nil.
func (_u *ContactMessageUpdate) SetNillableHandled(v *bool) *ContactMessageUpdate {
	if v != nil {
		_u.SetHandled(*v)
	}
	return _u
}

// Mutation returns the ContactMessageMutation object of the builder.
func (_u *ContactMessageUpdate) Mutation() *ContactMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactMessageUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contactmessage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := contactmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := contactmessage.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := contactmessage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactmessage.Table, contactmessage.Columns, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contactmessage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contactmessage.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(contactmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(contactmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contactmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contactmessage.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Handled(); ok {
		_spec.SetField(contactmessage.FieldHandled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactMessageUpdateOne is the builder for updating a single ContactMessage entity.
type ContactMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMessageMutation
}

// SetName sets the "name" field.
func (_u *ContactMessageUpdateOne) SetName(v string) *ContactMessageUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableName(v *string) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactMessageUpdateOne) SetEmail(v string) *ContactMessageUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableEmail(v *string) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ContactMessageUpdateOne) SetSubject(v string) *ContactMessageUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableSubject(v *string) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ContactMessageUpdateOne) ClearSubject() *ContactMessageUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *ContactMessageUpdateOne) SetBody(v string) *ContactMessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableBody(v *string) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContactMessageUpdateOne) SetKind(v contactmessage.Kind) *ContactMessageUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableKind(v *contactmessage.Kind) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetHandled sets the "handled" field.
func (_u *ContactMessageUpdateOne) SetHandled(v bool) *ContactMessageUpdateOne {
	_u.mutation.SetHandled(v)
	return _u
}

// SetNillableHandled sets the "handled" field if the given value is not nil.
func (_u *ContactMessageUpdateOne) SetNillableHandled(v *bool) *ContactMessageUpdateOne {
	if v != nil {
		_u.SetHandled(*v)
	}
	return _u
}

// Mutation returns the ContactMessageMutation object of the builder.
func (_u *ContactMessageUpdateOne) Mutation() *ContactMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContactMessageUpdate builder.
func (_u *ContactMessageUpdateOne) Where(ps ...predicate.ContactMessage) *ContactMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactMessageUpdateOne) Select(field string, fields ...string) *ContactMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContactMessage entity.
func (_u *ContactMessageUpdateOne) Save(ctx context.Context) (*ContactMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactMessageUpdateOne) SaveX(ctx context.Context) *ContactMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contactmessage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := contactmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := contactmessage.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := contactmessage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactMessageUpdateOne) sqlSave(ctx context.Context) (_node *ContactMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactmessage.Table, contactmessage.Columns, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ContactMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contactmessage.FieldID)
		for _, f := range fields {
			if !contactmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != contactmessage.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contactmessage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contactmessage.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(contactmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(contactmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contactmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contactmessage.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Handled(); ok {
		_spec.SetField(contactmessage.FieldHandled, field.TypeBool, value)
	}
	_node = &ContactMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
