// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evanshaw/cadence_backend/internal/repo/predicate"
	"github.com/evanshaw/cadence_backend/internal/repo/resource"
	"github.com/evanshaw/cadence_backend/internal/repo/resourceshare"
	"github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/google/uuid"
)

// ResourceShareUpdate is the builder for updating ResourceShare entities.
type ResourceShareUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceShareMutation
}

// Where appends a list predicates to the ResourceShareUpdate builder.
func (_u *ResourceShareUpdate) Where(ps ...predicate.ResourceShare) *ResourceShareUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *ResourceShareUpdate) SetResourceID(v uuid.UUID) *ResourceShareUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *ResourceShareUpdate) SetNillableResourceID(v *uuid.UUID) *ResourceShareUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ResourceShareUpdate) SetClientID(v uuid.UUID) *ResourceShareUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ResourceShareUpdate) SetNillableClientID(v *uuid.UUID) *ResourceShareUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetResource sets the "resource" edge to the Resource entity.
func (_u *ResourceShareUpdate) SetResource(v *Resource) *ResourceShareUpdate {
	return _u.SetResourceID(v.ID)
}

// SetClient sets the "client" edge to the User entity.
func (_u *ResourceShareUpdate) SetClient(v *User) *ResourceShareUpdate {
	return _u.SetClientID(v.ID)
}

// Mutation returns the ResourceShareMutation object of the builder.
func (_u *ResourceShareUpdate) Mutation() *ResourceShareMutation {
	return _u.mutation
}

// ClearResource clears the "resource" edge to the Resource entity.
func (_u *ResourceShareUpdate) ClearResource() *ResourceShareUpdate {
	_u.mutation.ClearResource()
	return _u
}

// ClearClient clears the "client" edge to the User entity.
func (_u *ResourceShareUpdate) ClearClient() *ResourceShareUpdate {
	_u.mutation.ClearClient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResourceShareUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceShareUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResourceShareUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceShareUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceShareUpdate) check() error {
	if _u.mutation.ResourceCleared() && len(_u.mutation.ResourceIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ResourceShare.resource"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ResourceShare.client"`)
	}
	return nil
}

func (_u *ResourceShareUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourceshare.Table, resourceshare.Columns, sqlgraph.NewFieldSpec(resourceshare.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ResourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourceshare.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResourceShareUpdateOne is the builder for updating a single ResourceShare entity.
type ResourceShareUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceShareMutation
}

// SetResourceID sets the "resource_id" field.
func (_u *ResourceShareUpdateOne) SetResourceID(v uuid.UUID) *ResourceShareUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *ResourceShareUpdateOne) SetNillableResourceID(v *uuid.UUID) *ResourceShareUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ResourceShareUpdateOne) SetClientID(v uuid.UUID) *ResourceShareUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ResourceShareUpdateOne) SetNillableClientID(v *uuid.UUID) *ResourceShareUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetResource sets the "resource" edge to the Resource entity.
func (_u *ResourceShareUpdateOne) SetResource(v *Resource) *ResourceShareUpdateOne {
	return _u.SetResourceID(v.ID)
}

// SetClient sets the "client" edge to the User entity.
func (_u *ResourceShareUpdateOne) SetClient(v *User) *ResourceShareUpdateOne {
	return _u.SetClientID(v.ID)
}

// Mutation returns the ResourceShareMutation object of the builder.
func (_u *ResourceShareUpdateOne) Mutation() *ResourceShareMutation {
	return _u.mutation
}

// ClearResource clears the "resource" edge to the Resource entity.
func (_u *ResourceShareUpdateOne) ClearResource() *ResourceShareUpdateOne {
	_u.mutation.ClearResource()
	return _u
}

// ClearClient clears the "client" edge to the User entity.
func (_u *ResourceShareUpdateOne) ClearClient() *ResourceShareUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// Where appends a list predicates to the ResourceShareUpdate builder.
func (_u *ResourceShareUpdateOne) Where(ps ...predicate.ResourceShare) *ResourceShareUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResourceShareUpdateOne) Select(field string, fields ...string) *ResourceShareUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResourceShare entity.
func (_u *ResourceShareUpdateOne) Save(ctx context.Context) (*ResourceShare, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceShareUpdateOne) SaveX(ctx context.Context) *ResourceShare {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResourceShareUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceShareUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceShareUpdateOne) check() error {
	if _u.mutation.ResourceCleared() && len(_u.mutation.ResourceIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ResourceShare.resource"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ResourceShare.client"`)
	}
	return nil
}

func (_u *ResourceShareUpdateOne) sqlSave(ctx context.Context) (_node *ResourceShare, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourceshare.Table, resourceshare.Columns, sqlgraph.NewFieldSpec(resourceshare.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ResourceShare.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resourceshare.FieldID)
		for _, f := range fields {
			if !resourceshare.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != resourceshare.FieldID {
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
	if _u.mutation.ResourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResourceShare{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourceshare.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
