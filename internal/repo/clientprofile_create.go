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
	"github.com/evanshaw/cadence_backend/internal/repo/clientprofile"
	"github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/google/uuid"
)

// ClientProfileCreate is the builder for creating a ClientProfile entity.
type ClientProfileCreate struct {
	config
	mutation *ClientProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClientProfileCreate) SetCreatedAt(v time.Time) *ClientProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableCreatedAt(v *time.Time) *ClientProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClientProfileCreate) SetUpdatedAt(v time.Time) *ClientProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableUpdatedAt(v *time.Time) *ClientProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ClientProfileCreate) SetUserID(v uuid.UUID) *ClientProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCompany sets the "company" field.
func (_c *ClientProfileCreate) SetCompany(v string) *ClientProfileCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableCompany(v *string) *ClientProfileCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetGoals sets the "goals" field.
func (_c *ClientProfileCreate) SetGoals(v string) *ClientProfileCreate {
	_c.mutation.SetGoals(v)
	return _c
}

// SetNillableGoals sets the "goals" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableGoals(v *string) *ClientProfileCreate {
	if v != nil {
		_c.SetGoals(*v)
	}
	return _c
}

// SetNotificationPrefs sets the "notification_prefs" field.
func (_c *ClientProfileCreate) SetNotificationPrefs(v string) *ClientProfileCreate {
	_c.mutation.SetNotificationPrefs(v)
	return _c
}

// SetNillableNotificationPrefs sets the "notification_prefs" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableNotificationPrefs(v *string) *ClientProfileCreate {
	if v != nil {
		_c.SetNotificationPrefs(*v)
	}
	return _c
}

// SetOnboardedAt sets the "onboarded_at" field.
func (_c *ClientProfileCreate) SetOnboardedAt(v time.Time) *ClientProfileCreate {
	_c.mutation.SetOnboardedAt(v)
	return _c
}

// SetNillableOnboardedAt sets the "onboarded_at" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableOnboardedAt(v *time.Time) *ClientProfileCreate {
	if v != nil {
		_c.SetOnboardedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClientProfileCreate) SetID(v uuid.UUID) *ClientProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClientProfileCreate) SetNillableID(v *uuid.UUID) *ClientProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ClientProfileCreate) SetUser(v *User) *ClientProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the ClientProfileMutation object of the builder.
func (_c *ClientProfileCreate) Mutation() *ClientProfileMutation {
	return _c.mutation
}

// Save creates the ClientProfile in the database.
func (_c *ClientProfileCreate) Save(ctx context.Context) (*ClientProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientProfileCreate) SaveX(ctx context.Context) *ClientProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clientprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clientprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clientprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClientProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ClientProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "ClientProfile.user_id"`)}
	}
	if v, ok := _c.mutation.Company(); ok {
		if err := clientprofile.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`repo: validator failed for field "ClientProfile.company": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "ClientProfile.user"`)}
	}
	return nil
}

func (_c *ClientProfileCreate) sqlSave(ctx context.Context) (*ClientProfile, error) {
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

func (_c *ClientProfileCreate) createSpec() (*ClientProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientprofile.Table, sqlgraph.NewFieldSpec(clientprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clientprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clientprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(clientprofile.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Goals(); ok {
		_spec.SetField(clientprofile.FieldGoals, field.TypeString, value)
		_node.Goals = &value
	}
	if value, ok := _c.mutation.NotificationPrefs(); ok {
		_spec.SetField(clientprofile.FieldNotificationPrefs, field.TypeString, value)
		_node.NotificationPrefs = &value
	}
	if value, ok := _c.mutation.OnboardedAt(); ok {
		_spec.SetField(clientprofile.FieldOnboardedAt, field.TypeTime, value)
		_node.OnboardedAt = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientProfileCreate) OnConflict(opts ...sql.ConflictOption) *ClientProfileUpsertOne {
	_c.conflict = opts
	return &ClientProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientProfileCreate) OnConflictColumns(columns ...string) *ClientProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientProfileUpsertOne{
		create: _c,
	}
}

type (
	// ClientProfileUpsertOne is the builder for "upsert"-ing
	//  one ClientProfile node.
	ClientProfileUpsertOne struct {
		create *ClientProfileCreate
	}

	// ClientProfileUpsert is the "OnConflict" setter.
	ClientProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientProfileUpsert) SetUpdatedAt(v time.Time) *ClientProfileUpsert {
	u.Set(clientprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateUpdatedAt() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ClientProfileUpsert) SetUserID(v uuid.UUID) *ClientProfileUpsert {
	u.Set(clientprofile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateUserID() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldUserID)
	return u
}

// SetCompany sets the "company" field.
func (u *ClientProfileUpsert) SetCompany(v string) *ClientProfileUpsert {
	u.Set(clientprofile.FieldCompany, v)
	return u
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateCompany() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldCompany)
	return u
}

// ClearCompany clears the value of the "company" field.
func (u *ClientProfileUpsert) ClearCompany() *ClientProfileUpsert {
	u.SetNull(clientprofile.FieldCompany)
	return u
}

// SetGoals sets the "goals" field.
func (u *ClientProfileUpsert) SetGoals(v string) *ClientProfileUpsert {
	u.Set(clientprofile.FieldGoals, v)
	return u
}

// UpdateGoals sets the "goals" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateGoals() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldGoals)
	return u
}

// ClearGoals clears the value of the "goals" field.
func (u *ClientProfileUpsert) ClearGoals() *ClientProfileUpsert {
	u.SetNull(clientprofile.FieldGoals)
	return u
}

// SetNotificationPrefs sets the "notification_prefs" field.
func (u *ClientProfileUpsert) SetNotificationPrefs(v string) *ClientProfileUpsert {
	u.Set(clientprofile.FieldNotificationPrefs, v)
	return u
}

// UpdateNotificationPrefs sets the "notification_prefs" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateNotificationPrefs() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldNotificationPrefs)
	return u
}

// ClearNotificationPrefs clears the value of the "notification_prefs" field.
func (u *ClientProfileUpsert) ClearNotificationPrefs() *ClientProfileUpsert {
	u.SetNull(clientprofile.FieldNotificationPrefs)
	return u
}

// SetOnboardedAt sets the "onboarded_at" field.
func (u *ClientProfileUpsert) SetOnboardedAt(v time.Time) *ClientProfileUpsert {
	u.Set(clientprofile.FieldOnboardedAt, v)
	return u
}

// UpdateOnboardedAt sets the "onboarded_at" field to the value that was provided on create.
func (u *ClientProfileUpsert) UpdateOnboardedAt() *ClientProfileUpsert {
	u.SetExcluded(clientprofile.FieldOnboardedAt)
	return u
}

// ClearOnboardedAt clears the value of the "onboarded_at" field.
func (u *ClientProfileUpsert) ClearOnboardedAt() *ClientProfileUpsert {
	u.SetNull(clientprofile.FieldOnboardedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientProfileUpsertOne) UpdateNewValues() *ClientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clientprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clientprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClientProfileUpsertOne) Ignore() *ClientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientProfileUpsertOne) DoNothing() *ClientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientProfileCreate.OnConflict
// documentation for more info.
func (u *ClientProfileUpsertOne) Update(set func(*ClientProfileUpsert)) *ClientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientProfileUpsertOne) SetUpdatedAt(v time.Time) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateUpdatedAt() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *ClientProfileUpsertOne) SetUserID(v uuid.UUID) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateUserID() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetCompany sets the "company" field.
func (u *ClientProfileUpsertOne) SetCompany(v string) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateCompany() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateCompany()
	})
}

// ClearCompany clears the value of the "company" field.
func (u *ClientProfileUpsertOne) ClearCompany() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearCompany()
	})
}

// SetGoals sets the "goals" field.
func (u *ClientProfileUpsertOne) SetGoals(v string) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetGoals(v)
	})
}

// UpdateGoals sets the "goals" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateGoals() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateGoals()
	})
}

// ClearGoals clears the value of the "goals" field.
func (u *ClientProfileUpsertOne) ClearGoals() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearGoals()
	})
}

// SetNotificationPrefs sets the "notification_prefs" field.
func (u *ClientProfileUpsertOne) SetNotificationPrefs(v string) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetNotificationPrefs(v)
	})
}

// UpdateNotificationPrefs sets the "notification_prefs" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateNotificationPrefs() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateNotificationPrefs()
	})
}

// ClearNotificationPrefs clears the value of the "notification_prefs" field.
func (u *ClientProfileUpsertOne) ClearNotificationPrefs() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearNotificationPrefs()
	})
}

// SetOnboardedAt sets the "onboarded_at" field.
func (u *ClientProfileUpsertOne) SetOnboardedAt(v time.Time) *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetOnboardedAt(v)
	})
}

// UpdateOnboardedAt sets the "onboarded_at" field to the value that was provided on create.
func (u *ClientProfileUpsertOne) UpdateOnboardedAt() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateOnboardedAt()
	})
}

// ClearOnboardedAt clears the value of the "onboarded_at" field.
func (u *ClientProfileUpsertOne) ClearOnboardedAt() *ClientProfileUpsertOne {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearOnboardedAt()
	})
}

// Exec executes the query.
func (u *ClientProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClientProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClientProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClientProfileUpsertOne.ID is not supported by MySQL driver. Use ClientProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClientProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClientProfileCreateBulk is the builder for creating many ClientProfile entities in bulk.
type ClientProfileCreateBulk struct {
	config
	err      error
	builders []*ClientProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the ClientProfile entities in the database.
func (_c *ClientProfileCreateBulk) Save(ctx context.Context) ([]*ClientProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientProfileMutation)
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
func (_c *ClientProfileCreateBulk) SaveX(ctx context.Context) []*ClientProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClientProfileUpsertBulk {
	_c.conflict = opts
	return &ClientProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientProfileCreateBulk) OnConflictColumns(columns ...string) *ClientProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientProfileUpsertBulk{
		create: _c,
	}
}

// ClientProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of ClientProfile nodes.
type ClientProfileUpsertBulk struct {
	create *ClientProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientProfileUpsertBulk) UpdateNewValues() *ClientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clientprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clientprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClientProfileUpsertBulk) Ignore() *ClientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientProfileUpsertBulk) DoNothing() *ClientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientProfileCreateBulk.OnConflict
// documentation for more info.
func (u *ClientProfileUpsertBulk) Update(set func(*ClientProfileUpsert)) *ClientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientProfileUpsertBulk) SetUpdatedAt(v time.Time) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateUpdatedAt() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *ClientProfileUpsertBulk) SetUserID(v uuid.UUID) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateUserID() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetCompany sets the "company" field.
func (u *ClientProfileUpsertBulk) SetCompany(v string) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateCompany() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateCompany()
	})
}

// ClearCompany clears the value of the "company" field.
func (u *ClientProfileUpsertBulk) ClearCompany() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearCompany()
	})
}

// SetGoals sets the "goals" field.
func (u *ClientProfileUpsertBulk) SetGoals(v string) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetGoals(v)
	})
}

// UpdateGoals sets the "goals" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateGoals() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateGoals()
	})
}

// ClearGoals clears the value of the "goals" field.
func (u *ClientProfileUpsertBulk) ClearGoals() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearGoals()
	})
}

// SetNotificationPrefs sets the "notification_prefs" field.
func (u *ClientProfileUpsertBulk) SetNotificationPrefs(v string) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetNotificationPrefs(v)
	})
}

// UpdateNotificationPrefs sets the "notification_prefs" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateNotificationPrefs() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateNotificationPrefs()
	})
}

// ClearNotificationPrefs clears the value of the "notification_prefs" field.
func (u *ClientProfileUpsertBulk) ClearNotificationPrefs() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearNotificationPrefs()
	})
}

// SetOnboardedAt sets the "onboarded_at" field.
func (u *ClientProfileUpsertBulk) SetOnboardedAt(v time.Time) *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.SetOnboardedAt(v)
	})
}

// UpdateOnboardedAt sets the "onboarded_at" field to the value that was provided on create.
func (u *ClientProfileUpsertBulk) UpdateOnboardedAt() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.UpdateOnboardedAt()
	})
}

// ClearOnboardedAt clears the value of the "onboarded_at" field.
func (u *ClientProfileUpsertBulk) ClearOnboardedAt() *ClientProfileUpsertBulk {
	return u.Update(func(s *ClientProfileUpsert) {
		s.ClearOnboardedAt()
	})
}

// Exec executes the query.
func (u *ClientProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClientProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClientProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
