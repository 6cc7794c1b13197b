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
	"github.com/evanshaw/cadence_backend/internal/repo/resource"
	"github.com/evanshaw/cadence_backend/internal/repo/resourceshare"
	"github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/google/uuid"
)

// ResourceShareCreate is the builder for creating a ResourceShare entity.
type ResourceShareCreate struct {
	config
	mutation *ResourceShareMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResourceShareCreate) SetCreatedAt(v time.Time) *ResourceShareCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResourceShareCreate) SetNillableCreatedAt(v *time.Time) *ResourceShareCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *ResourceShareCreate) SetResourceID(v uuid.UUID) *ResourceShareCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ResourceShareCreate) SetClientID(v uuid.UUID) *ResourceShareCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ResourceShareCreate) SetID(v uuid.UUID) *ResourceShareCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ResourceShareCreate) SetNillableID(v *uuid.UUID) *ResourceShareCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetResource sets the "resource" edge to the Resource entity.
func (_c *ResourceShareCreate) SetResource(v *Resource) *ResourceShareCreate {
	return _c.SetResourceID(v.ID)
}

// SetClient sets the "client" edge to the User entity.
func (_c *ResourceShareCreate) SetClient(v *User) *ResourceShareCreate {
	return _c.SetClientID(v.ID)
}

// Mutation returns the ResourceShareMutation object of the builder.
func (_c *ResourceShareCreate) Mutation() *ResourceShareMutation {
	return _c.mutation
}

// Save creates the ResourceShare in the database.
func (_c *ResourceShareCreate) Save(ctx context.Context) (*ResourceShare, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceShareCreate) SaveX(ctx context.Context) *ResourceShare {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceShareCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceShareCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceShareCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resourceshare.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := resourceshare.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceShareCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ResourceShare.created_at"`)}
	}
	if _, ok := _c.mutation.ResourceID(); !ok {
		return &ValidationError{Name: "resource_id", err: errors.New(`repo: missing required field "ResourceShare.resource_id"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "ResourceShare.client_id"`)}
	}
	if len(_c.mutation.ResourceIDs()) == 0 {
		return &ValidationError{Name: "resource", err: errors.New(`repo: missing required edge "ResourceShare.resource"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`repo: missing required edge "ResourceShare.client"`)}
	}
	return nil
}

func (_c *ResourceShareCreate) sqlSave(ctx context.Context) (*ResourceShare, error) {
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

func (_c *ResourceShareCreate) createSpec() (*ResourceShare, *sqlgraph.CreateSpec) {
	var (
		_node = &ResourceShare{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resourceshare.Table, sqlgraph.NewFieldSpec(resourceshare.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resourceshare.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ResourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   resourceshare.ResourceTable,
			Columns: []string{resourceshare.ResourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resource.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ResourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   resourceshare.ClientTable,
			Columns: []string{resourceshare.ClientColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResourceShare.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceShareUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceShareCreate) OnConflict(opts ...sql.ConflictOption) *ResourceShareUpsertOne {
	_c.conflict = opts
	return &ResourceShareUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResourceShare.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceShareCreate) OnConflictColumns(columns ...string) *ResourceShareUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceShareUpsertOne{
		create: _c,
	}
}

type (
	// ResourceShareUpsertOne is the builder for "upsert"-ing
	//  one ResourceShare node.
	ResourceShareUpsertOne struct {
		create *ResourceShareCreate
	}

	// ResourceShareUpsert is the "OnConflict" setter.
	ResourceShareUpsert struct {
		*sql.UpdateSet
	}
)

// SetResourceID sets the "resource_id" field.
func (u *ResourceShareUpsert) SetResourceID(v uuid.UUID) *ResourceShareUpsert {
	u.Set(resourceshare.FieldResourceID, v)
	return u
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *ResourceShareUpsert) UpdateResourceID() *ResourceShareUpsert {
	u.SetExcluded(resourceshare.FieldResourceID)
	return u
}

// SetClientID sets the "client_id" field.
func (u *ResourceShareUpsert) SetClientID(v uuid.UUID) *ResourceShareUpsert {
	u.Set(resourceshare.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ResourceShareUpsert) UpdateClientID() *ResourceShareUpsert {
	u.SetExcluded(resourceshare.FieldClientID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ResourceShare.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resourceshare.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResourceShareUpsertOne) UpdateNewValues() *ResourceShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(resourceshare.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(resourceshare.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResourceShare.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResourceShareUpsertOne) Ignore() *ResourceShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceShareUpsertOne) DoNothing() *ResourceShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceShareCreate.OnConflict
// documentation for more info.
func (u *ResourceShareUpsertOne) Update(set func(*ResourceShareUpsert)) *ResourceShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceShareUpsert{UpdateSet: update})
	}))
	return u
}

// SetResourceID sets the "resource_id" field.
func (u *ResourceShareUpsertOne) SetResourceID(v uuid.UUID) *ResourceShareUpsertOne {
	return u.Update(func(s *ResourceShareUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *ResourceShareUpsertOne) UpdateResourceID() *ResourceShareUpsertOne {
	return u.Update(func(s *ResourceShareUpsert) {
		s.UpdateResourceID()
	})
}

// SetClientID sets the "client_id" field.
func (u *ResourceShareUpsertOne) SetClientID(v uuid.UUID) *ResourceShareUpsertOne {
	return u.Update(func(s *ResourceShareUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ResourceShareUpsertOne) UpdateClientID() *ResourceShareUpsertOne {
	return u.Update(func(s *ResourceShareUpsert) {
		s.UpdateClientID()
	})
}

// Exec executes the query.
func (u *ResourceShareUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ResourceShareCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceShareUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResourceShareUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ResourceShareUpsertOne.ID is not supported by MySQL driver. Use ResourceShareUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResourceShareUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResourceShareCreateBulk is the builder for creating many ResourceShare entities in bulk.
type ResourceShareCreateBulk struct {
	config
	err      error
	builders []*ResourceShareCreate
	conflict []sql.ConflictOption
}

// Save creates the ResourceShare entities in the database.
func (_c *ResourceShareCreateBulk) Save(ctx context.Context) ([]*ResourceShare, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResourceShare, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceShareMutation)
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
func (_c *ResourceShareCreateBulk) SaveX(ctx context.Context) []*ResourceShare {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceShareCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceShareCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResourceShare.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceShareUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceShareCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResourceShareUpsertBulk {
	_c.conflict = opts
	return &ResourceShareUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResourceShare.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceShareCreateBulk) OnConflictColumns(columns ...string) *ResourceShareUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceShareUpsertBulk{
		create: _c,
	}
}

// ResourceShareUpsertBulk is the builder for "upsert"-ing
// a bulk of ResourceShare nodes.
type ResourceShareUpsertBulk struct {
	create *ResourceShareCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ResourceShare.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resourceshare.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResourceShareUpsertBulk) UpdateNewValues() *ResourceShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(resourceshare.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(resourceshare.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResourceShare.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResourceShareUpsertBulk) Ignore() *ResourceShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceShareUpsertBulk) DoNothing() *ResourceShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceShareCreateBulk.OnConflict
// documentation for more info.
func (u *ResourceShareUpsertBulk) Update(set func(*ResourceShareUpsert)) *ResourceShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceShareUpsert{UpdateSet: update})
	}))
	return u
}

// SetResourceID sets the "resource_id" field.
func (u *ResourceShareUpsertBulk) SetResourceID(v uuid.UUID) *ResourceShareUpsertBulk {
	return u.Update(func(s *ResourceShareUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *ResourceShareUpsertBulk) UpdateResourceID() *ResourceShareUpsertBulk {
	return u.Update(func(s *ResourceShareUpsert) {
		s.UpdateResourceID()
	})
}

// SetClientID sets the "client_id" field.
func (u *ResourceShareUpsertBulk) SetClientID(v uuid.UUID) *ResourceShareUpsertBulk {
	return u.Update(func(s *ResourceShareUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ResourceShareUpsertBulk) UpdateClientID() *ResourceShareUpsertBulk {
	return u.Update(func(s *ResourceShareUpsert) {
		s.UpdateClientID()
	})
}

// Exec executes the query.
func (u *ResourceShareUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ResourceShareCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ResourceShareCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceShareUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
