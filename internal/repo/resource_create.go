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
	"github.com/google/uuid"
)

// ResourceCreate is the builder for creating a Resource entity.
type ResourceCreate struct {
	config
	mutation *ResourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResourceCreate) SetCreatedAt(v time.Time) *ResourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableCreatedAt(v *time.Time) *ResourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResourceCreate) SetUpdatedAt(v time.Time) *ResourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableUpdatedAt(v *time.Time) *ResourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ResourceCreate) SetDeletedAt(v time.Time) *ResourceCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableDeletedAt(v *time.Time) *ResourceCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ResourceCreate) SetTitle(v string) *ResourceCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ResourceCreate) SetDescription(v string) *ResourceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableDescription(v *string) *ResourceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ResourceCreate) SetKind(v resource.Kind) *ResourceCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableKind(v *resource.Kind) *ResourceCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetObjectKey sets the "object_key" field.
func (_c *ResourceCreate) SetObjectKey(v string) *ResourceCreate {
	_c.mutation.SetObjectKey(v)
	return _c
}

// SetNillableObjectKey sets the "object_key" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableObjectKey(v *string) *ResourceCreate {
	if v != nil {
		_c.SetObjectKey(*v)
	}
	return _c
}

// SetExternalURL sets the "external_url" field.
func (_c *ResourceCreate) SetExternalURL(v string) *ResourceCreate {
	_c.mutation.SetExternalURL(v)
	return _c
}

// SetNillableExternalURL sets the "external_url" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableExternalURL(v *string) *ResourceCreate {
	if v != nil {
		_c.SetExternalURL(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *ResourceCreate) SetPublished(v bool) *ResourceCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *ResourceCreate) SetNillablePublished(v *bool) *ResourceCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResourceCreate) SetID(v uuid.UUID) *ResourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableID(v *uuid.UUID) *ResourceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddShareIDs adds the "shares" edge to the ResourceShare entity by IDs.
func (_c *ResourceCreate) AddShareIDs(ids ...uuid.UUID) *ResourceCreate {
	_c.mutation.AddShareIDs(ids...)
	return _c
}

// AddShares adds the "shares" edges to the ResourceShare entity.
func (_c *ResourceCreate) AddShares(v ...*ResourceShare) *ResourceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddShareIDs(ids...)
}

// Mutation returns the ResourceMutation object of the builder.
func (_c *ResourceCreate) Mutation() *ResourceMutation {
	return _c.mutation
}

// Save creates the Resource in the database.
func (_c *ResourceCreate) Save(ctx context.Context) (*Resource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceCreate) SaveX(ctx context.Context) *Resource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := resource.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := resource.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := resource.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := resource.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Resource.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Resource.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Resource.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := resource.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Resource.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "Resource.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := resource.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Resource.kind": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ObjectKey(); ok {
		if err := resource.ObjectKeyValidator(v); err != nil {
			return &ValidationError{Name: "object_key", err: fmt.Errorf(`repo: validator failed for field "Resource.object_key": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExternalURL(); ok {
		if err := resource.ExternalURLValidator(v); err != nil {
			return &ValidationError{Name: "external_url", err: fmt.Errorf(`repo: validator failed for field "Resource.external_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`repo: missing required field "Resource.published"`)}
	}
	return nil
}

func (_c *ResourceCreate) sqlSave(ctx context.Context) (*Resource, error) {
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

func (_c *ResourceCreate) createSpec() (*Resource, *sqlgraph.CreateSpec) {
	var (
		_node = &Resource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resource.Table, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(resource.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(resource.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(resource.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(resource.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(resource.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.ObjectKey(); ok {
		_spec.SetField(resource.FieldObjectKey, field.TypeString, value)
		_node.ObjectKey = value
	}
	if value, ok := _c.mutation.ExternalURL(); ok {
		_spec.SetField(resource.FieldExternalURL, field.TypeString, value)
		_node.ExternalURL = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(resource.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if nodes := _c.mutation.SharesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.SharesTable,
			Columns: []string{resource.SharesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resourceshare.FieldID, field.TypeUUID),
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
//	client.Resource.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceCreate) OnConflict(opts ...sql.ConflictOption) *ResourceUpsertOne {
	_c.conflict = opts
	return &ResourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceCreate) OnConflictColumns(columns ...string) *ResourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceUpsertOne{
		create: _c,
	}
}

type (
	// ResourceUpsertOne is the builder for "upsert"-ing
	//  one Resource node.
	ResourceUpsertOne struct {
		create *ResourceCreate
	}

	// ResourceUpsert is the "OnConflict" setter.
	ResourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ResourceUpsert) SetUpdatedAt(v time.Time) *ResourceUpsert {
	u.Set(resource.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateUpdatedAt() *ResourceUpsert {
	u.SetExcluded(resource.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ResourceUpsert) SetDeletedAt(v time.Time) *ResourceUpsert {
	u.Set(resource.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateDeletedAt() *ResourceUpsert {
	u.SetExcluded(resource.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ResourceUpsert) ClearDeletedAt() *ResourceUpsert {
	u.SetNull(resource.FieldDeletedAt)
	return u
}

// SetTitle sets the "title" field.
func (u *ResourceUpsert) SetTitle(v string) *ResourceUpsert {
	u.Set(resource.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateTitle() *ResourceUpsert {
	u.SetExcluded(resource.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ResourceUpsert) SetDescription(v string) *ResourceUpsert {
	u.Set(resource.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateDescription() *ResourceUpsert {
	u.SetExcluded(resource.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ResourceUpsert) ClearDescription() *ResourceUpsert {
	u.SetNull(resource.FieldDescription)
	return u
}

// SetKind sets the "kind" field.
func (u *ResourceUpsert) SetKind(v resource.Kind) *ResourceUpsert {
	u.Set(resource.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateKind() *ResourceUpsert {
	u.SetExcluded(resource.FieldKind)
	return u
}

// SetObjectKey sets the "object_key" field.
func (u *ResourceUpsert) SetObjectKey(v string) *ResourceUpsert {
	u.Set(resource.FieldObjectKey, v)
	return u
}

// UpdateObjectKey sets the "object_key" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateObjectKey() *ResourceUpsert {
	u.SetExcluded(resource.FieldObjectKey)
	return u
}

// ClearObjectKey clears the value of the "object_key" field.
func (u *ResourceUpsert) ClearObjectKey() *ResourceUpsert {
	u.SetNull(resource.FieldObjectKey)
	return u
}

// SetExternalURL sets the "external_url" field.
func (u *ResourceUpsert) SetExternalURL(v string) *ResourceUpsert {
	u.Set(resource.FieldExternalURL, v)
	return u
}

// UpdateExternalURL sets the "external_url" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateExternalURL() *ResourceUpsert {
	u.SetExcluded(resource.FieldExternalURL)
	return u
}

// ClearExternalURL clears the value of the "external_url" field.
func (u *ResourceUpsert) ClearExternalURL() *ResourceUpsert {
	u.SetNull(resource.FieldExternalURL)
	return u
}

// SetPublished sets the "published" field.
func (u *ResourceUpsert) SetPublished(v bool) *ResourceUpsert {
	u.Set(resource.FieldPublished, v)
	return u
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *ResourceUpsert) UpdatePublished() *ResourceUpsert {
	u.SetExcluded(resource.FieldPublished)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resource.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResourceUpsertOne) UpdateNewValues() *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(resource.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(resource.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Resource.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResourceUpsertOne) Ignore() *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceUpsertOne) DoNothing() *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceCreate.OnConflict
// documentation for more info.
func (u *ResourceUpsertOne) Update(set func(*ResourceUpsert)) *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ResourceUpsertOne) SetUpdatedAt(v time.Time) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateUpdatedAt() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ResourceUpsertOne) SetDeletedAt(v time.Time) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateDeletedAt() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ResourceUpsertOne) ClearDeletedAt() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *ResourceUpsertOne) SetTitle(v string) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateTitle() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ResourceUpsertOne) SetDescription(v string) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateDescription() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ResourceUpsertOne) ClearDescription() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearDescription()
	})
}

// SetKind sets the "kind" field.
func (u *ResourceUpsertOne) SetKind(v resource.Kind) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateKind() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateKind()
	})
}

// SetObjectKey sets the "object_key" field.
func (u *ResourceUpsertOne) SetObjectKey(v string) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetObjectKey(v)
	})
}

// UpdateObjectKey sets the "object_key" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateObjectKey() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateObjectKey()
	})
}

// ClearObjectKey clears the value of the "object_key" field.
func (u *ResourceUpsertOne) ClearObjectKey() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearObjectKey()
	})
}

// SetExternalURL sets the "external_url" field.
func (u *ResourceUpsertOne) SetExternalURL(v string) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetExternalURL(v)
	})
}

// UpdateExternalURL sets the "external_url" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateExternalURL() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateExternalURL()
	})
}

// ClearExternalURL clears the value of the "external_url" field.
func (u *ResourceUpsertOne) ClearExternalURL() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearExternalURL()
	})
}

// SetPublished sets the "published" field.
func (u *ResourceUpsertOne) SetPublished(v bool) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdatePublished() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdatePublished()
	})
}

// Exec executes the query.
func (u *ResourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ResourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResourceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ResourceUpsertOne.ID is not supported by MySQL driver. Use ResourceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResourceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResourceCreateBulk is the builder for creating many Resource entities in bulk.
type ResourceCreateBulk struct {
	config
	err      error
	builders []*ResourceCreate
	conflict []sql.ConflictOption
}

// Save creates the Resource entities in the database.
func (_c *ResourceCreateBulk) Save(ctx context.Context) ([]*Resource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Resource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceMutation)
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
func (_c *ResourceCreateBulk) SaveX(ctx context.Context) []*Resource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Resource.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResourceUpsertBulk {
	_c.conflict = opts
	return &ResourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceCreateBulk) OnConflictColumns(columns ...string) *ResourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceUpsertBulk{
		create: _c,
	}
}

// ResourceUpsertBulk is the builder for "upsert"-ing
// a bulk of Resource nodes.
type ResourceUpsertBulk struct {
	create *ResourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resource.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResourceUpsertBulk) UpdateNewValues() *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(resource.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(resource.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResourceUpsertBulk) Ignore() *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceUpsertBulk) DoNothing() *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceCreateBulk.OnConflict
// documentation for more info.
func (u *ResourceUpsertBulk) Update(set func(*ResourceUpsert)) *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ResourceUpsertBulk) SetUpdatedAt(v time.Time) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateUpdatedAt() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ResourceUpsertBulk) SetDeletedAt(v time.Time) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateDeletedAt() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ResourceUpsertBulk) ClearDeletedAt() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *ResourceUpsertBulk) SetTitle(v string) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateTitle() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ResourceUpsertBulk) SetDescription(v string) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateDescription() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ResourceUpsertBulk) ClearDescription() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearDescription()
	})
}

// SetKind sets the "kind" field.
func (u *ResourceUpsertBulk) SetKind(v resource.Kind) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateKind() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateKind()
	})
}

// SetObjectKey sets the "object_key" field.
func (u *ResourceUpsertBulk) SetObjectKey(v string) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetObjectKey(v)
	})
}

// UpdateObjectKey sets the "object_key" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateObjectKey() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateObjectKey()
	})
}

// ClearObjectKey clears the value of the "object_key" field.
func (u *ResourceUpsertBulk) ClearObjectKey() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearObjectKey()
	})
}

// SetExternalURL sets the "external_url" field.
func (u *ResourceUpsertBulk) SetExternalURL(v string) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetExternalURL(v)
	})
}

// UpdateExternalURL sets the "external_url" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateExternalURL() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateExternalURL()
	})
}

// ClearExternalURL clears the value of the "external_url" field.
func (u *ResourceUpsertBulk) ClearExternalURL() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearExternalURL()
	})
}

// SetPublished sets the "published" field.
func (u *ResourceUpsertBulk) SetPublished(v bool) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetPublished(v)
	})
}

// UpdatePublished sets the "published" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdatePublished() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdatePublished()
	})
}

// Exec executes the query.
func (u *ResourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ResourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ResourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
