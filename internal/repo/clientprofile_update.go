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
	"github.com/evanshaw/cadence_backend/internal/repo/clientprofile"
	"github.com/evanshaw/cadence_backend/internal/repo/predicate"
	"github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/google/uuid"
)

// ClientProfileUpdate is the builder for updating ClientProfile entities.
type ClientProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ClientProfileMutation
}

// Where appends a list predicates to the ClientProfileUpdate builder.
func (_u *ClientProfileUpdate) Where(ps ...predicate.ClientProfile) *ClientProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientProfileUpdate) SetUpdatedAt(v time.Time) *ClientProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ClientProfileUpdate) SetUserID(v uuid.UUID) *ClientProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableUserID(v *uuid.UUID) *ClientProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *ClientProfileUpdate) SetCompany(v string) *ClientProfileUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableCompany(v *string) *ClientProfileUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ClientProfileUpdate) ClearCompany() *ClientProfileUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetGoals sets the "goals" field.
func (_u *ClientProfileUpdate) SetGoals(v string) *ClientProfileUpdate {
	_u.mutation.SetGoals(v)
	return _u
}

// SetNillableGoals sets the "goals" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableGoals(v *string) *ClientProfileUpdate {
	if v != nil {
		_u.SetGoals(*v)
	}
	return _u
}

// ClearGoals clears the value of the "goals" field.
func (_u *ClientProfileUpdate) ClearGoals() *ClientProfileUpdate {
	_u.mutation.ClearGoals()
	return _u
}

// SetNotificationPrefs sets the "notification_prefs" field.
func (_u *ClientProfileUpdate) SetNotificationPrefs(v string) *ClientProfileUpdate {
	_u.mutation.SetNotificationPrefs(v)
	return _u
}

// SetNillableNotificationPrefs sets the "notification_prefs" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableNotificationPrefs(v *string) *ClientProfileUpdate {
	if v != nil {
		_u.SetNotificationPrefs(*v)
	}
	return _u
}

// ClearNotificationPrefs clears the value of the "notification_prefs" field.
func (_u *ClientProfileUpdate) ClearNotificationPrefs() *ClientProfileUpdate {
	_u.mutation.ClearNotificationPrefs()
	return _u
}

// SetOnboardedAt sets the "onboarded_at" field.
func (_u *ClientProfileUpdate) SetOnboardedAt(v time.Time) *ClientProfileUpdate {
	_u.mutation.SetOnboardedAt(v)
	return _u
}

// SetNillableOnboardedAt sets the "onboarded_at" field if the given value is not nil.
func (_u *ClientProfileUpdate) SetNillableOnboardedAt(v *time.Time) *ClientProfileUpdate {
	if v != nil {
		_u.SetOnboardedAt(*v)
	}
	return _u
}

// ClearOnboardedAt clears the value of the "onboarded_at" field.
func (_u *ClientProfileUpdate) ClearOnboardedAt() *ClientProfileUpdate {
	_u.mutation.ClearOnboardedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ClientProfileUpdate) SetUser(v *User) *ClientProfileUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ClientProfileMutation object of the builder.
func (_u *ClientProfileUpdate) Mutation() *ClientProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ClientProfileUpdate) ClearUser() *ClientProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientProfileUpdate) check() error {
	if v, ok := _u.mutation.Company(); ok {
		if err := clientprofile.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.company": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClientProfile.user"`)
	}
	return nil
}

func (_u *ClientProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientprofile.Table, clientprofile.Columns, sqlgraph.NewFieldSpec(clientprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clientprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(clientprofile.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(clientprofile.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(clientprofile.FieldGoals, field.TypeString, value)
	}
	if _u.mutation.GoalsCleared() {
		_spec.ClearField(clientprofile.FieldGoals, field.TypeString)
	}
	if value, ok := _u.mutation.NotificationPrefs(); ok {
		_spec.SetField(clientprofile.FieldNotificationPrefs, field.TypeString, value)
	}
	if _u.mutation.NotificationPrefsCleared() {
		_spec.ClearField(clientprofile.FieldNotificationPrefs, field.TypeString)
	}
	if value, ok := _u.mutation.OnboardedAt(); ok {
		_spec.SetField(clientprofile.FieldOnboardedAt, field.TypeTime, value)
	}
	if _u.mutation.OnboardedAtCleared() {
		_spec.ClearField(clientprofile.FieldOnboardedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clientprofile.UserTable,
			Columns: []string{clientprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clientprofile.UserTable,
			Columns: []string{clientprofile.UserColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientProfileUpdateOne is the builder for updating a single ClientProfile entity.
type ClientProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientProfileUpdateOne) SetUpdatedAt(v time.Time) *ClientProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ClientProfileUpdateOne) SetUserID(v uuid.UUID) *ClientProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *ClientProfileUpdateOne) SetCompany(v string) *ClientProfileUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableCompany(v *string) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ClientProfileUpdateOne) ClearCompany() *ClientProfileUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetGoals sets the "goals" field.
func (_u *ClientProfileUpdateOne) SetGoals(v string) *ClientProfileUpdateOne {
	_u.mutation.SetGoals(v)
	return _u
}

// SetNillableGoals sets the "goals" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableGoals(v *string) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetGoals(*v)
	}
	return _u
}

// ClearGoals clears the value of the "goals" field.
func (_u *ClientProfileUpdateOne) ClearGoals() *ClientProfileUpdateOne {
	_u.mutation.ClearGoals()
	return _u
}

// SetNotificationPrefs sets the "notification_prefs" field.
func (_u *ClientProfileUpdateOne) SetNotificationPrefs(v string) *ClientProfileUpdateOne {
	_u.mutation.SetNotificationPrefs(v)
	return _u
}

// SetNillableNotificationPrefs sets the "notification_prefs" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableNotificationPrefs(v *string) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetNotificationPrefs(*v)
	}
	return _u
}

// ClearNotificationPrefs clears the value of the "notification_prefs" field.
func (_u *ClientProfileUpdateOne) ClearNotificationPrefs() *ClientProfileUpdateOne {
	_u.mutation.ClearNotificationPrefs()
	return _u
}

// SetOnboardedAt sets the "onboarded_at" field.
func (_u *ClientProfileUpdateOne) SetOnboardedAt(v time.Time) *ClientProfileUpdateOne {
	_u.mutation.SetOnboardedAt(v)
	return _u
}

// SetNillableOnboardedAt sets the "onboarded_at" field if the given value is not nil.
func (_u *ClientProfileUpdateOne) SetNillableOnboardedAt(v *time.Time) *ClientProfileUpdateOne {
	if v != nil {
		_u.SetOnboardedAt(*v)
	}
	return _u
}

// ClearOnboardedAt clears the value of the "onboarded_at" field.
func (_u *ClientProfileUpdateOne) ClearOnboardedAt() *ClientProfileUpdateOne {
	_u.mutation.ClearOnboardedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ClientProfileUpdateOne) SetUser(v *User) *ClientProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ClientProfileMutation object of the builder.
func (_u *ClientProfileUpdateOne) Mutation() *ClientProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ClientProfileUpdateOne) ClearUser() *ClientProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the ClientProfileUpdate builder.
func (_u *ClientProfileUpdateOne) Where(ps ...predicate.ClientProfile) *ClientProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientProfileUpdateOne) Select(field string, fields ...string) *ClientProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientProfile entity.
func (_u *ClientProfileUpdateOne) Save(ctx context.Context) (*ClientProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientProfileUpdateOne) SaveX(ctx context.Context) *ClientProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Company(); ok {
		if err := clientprofile.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.company": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClientProfile.user"`)
	}
	return nil
}

func (_u *ClientProfileUpdateOne) sqlSave(ctx context.Context) (_node *ClientProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientprofile.Table, clientprofile.Columns, sqlgraph.NewFieldSpec(clientprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClientProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientprofile.FieldID)
		for _, f := range fields {
			if !clientprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clientprofile.FieldID {
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
		_spec.SetField(clientprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(clientprofile.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(clientprofile.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Goals(); ok {
		_spec.SetField(clientprofile.FieldGoals, field.TypeString, value)
	}
	if _u.mutation.GoalsCleared() {
		_spec.ClearField(clientprofile.FieldGoals, field.TypeString)
	}
	if value, ok := _u.mutation.NotificationPrefs(); ok {
		_spec.SetField(clientprofile.FieldNotificationPrefs, field.TypeString, value)
	}
	if _u.mutation.NotificationPrefsCleared() {
		_spec.ClearField(clientprofile.FieldNotificationPrefs, field.TypeString)
	}
	if value, ok := _u.mutation.OnboardedAt(); ok {
		_spec.SetField(clientprofile.FieldOnboardedAt, field.TypeTime, value)
	}
	if _u.mutation.OnboardedAtCleared() {
		_spec.ClearField(clientprofile.FieldOnboardedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clientprofile.UserTable,
			Columns: []string{clientprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clientprofile.UserTable,
			Columns: []string{clientprofile.UserColumn},
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
	_node = &ClientProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
