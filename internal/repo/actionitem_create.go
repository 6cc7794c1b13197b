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

// ActionItemCreate is the builder for creating a ActionItem entity.
type ActionItemCreate struct {
	config
	mutation *ActionItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActionItemCreate) SetCreatedAt(v time.Time) *ActionItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActionItemCreate) SetNillableCreatedAt(v *time.Time) *ActionItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActionItemCreate) SetUpdatedAt(v time.Time) *ActionItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActionItemCreate) SetNillableUpdatedAt(v *time.Time) *ActionItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ActionItemCreate) SetClientID(v uuid.UUID) *ActionItemCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ActionItemCreate) SetSessionID(v uuid.UUID) *ActionItemCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ActionItemCreate) SetNillableSessionID(v *uuid.UUID) *ActionItemCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ActionItemCreate) SetTitle(v string) *ActionItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ActionItemCreate) SetNotes(v string) *ActionItemCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ActionItemCreate) SetNillableNotes(v *string) *ActionItemCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetDueOn sets the "due_on" field.
func (_c *ActionItemCreate) SetDueOn(v time.Time) *ActionItemCreate {
	_c.mutation.SetDueOn(v)
	return _c
}

// SetNillableDueOn sets the "due_on" field if the given value is not nil.
func (_c *ActionItemCreate) SetNillableDueOn(v *time.Time) *ActionItemCreate {
	if v != nil {
		_c.SetDueOn(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActionItemCreate) SetStatus(v actionitem.Status) *ActionItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ActionItemCreate) SetNillableStatus(v *actionitem.Status) *ActionItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ActionItemCreate) SetCompletedAt(v time.Time) *ActionItemCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ActionItemCreate) SetNillableCompletedAt(v *time.Time) *ActionItemCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActionItemCreate) SetID(v uuid.UUID) *ActionItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ActionItemCreate) SetNillableID(v *uuid.UUID) *ActionItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClient sets the "client" edge to the User entity.
func (_c *ActionItemCreate) SetClient(v *User) *ActionItemCreate {
	return _c.SetClientID(v.ID)
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ActionItemCreate) SetSession(v *Session) *ActionItemCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ActionItemMutation object of the builder.
func (_c *ActionItemCreate) Mutation() *ActionItemMutation {
	return _c.mutation
}

// Save creates the ActionItem in the database.
func (_c *ActionItemCreate) Save(ctx context.Context) (*ActionItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionItemCreate) SaveX(ctx context.Context) *ActionItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := actionitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := actionitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := actionitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := actionitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ActionItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ActionItem.updated_at"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "ActionItem.client_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "ActionItem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := actionitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ActionItem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "ActionItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := actionitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ActionItem.status": %w`, err)}
		}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`repo: missing required edge "ActionItem.client"`)}
	}
	return nil
}

func (_c *ActionItemCreate) sqlSave(ctx context.Context) (*ActionItem, error) {
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

func (_c *ActionItemCreate) createSpec() (*ActionItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionitem.Table, sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(actionitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(actionitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(actionitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(actionitem.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.DueOn(); ok {
		_spec.SetField(actionitem.FieldDueOn, field.TypeTime, value)
		_node.DueOn = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(actionitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(actionitem.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
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
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionItemCreate) OnConflict(opts ...sql.ConflictOption) *ActionItemUpsertOne {
	_c.conflict = opts
	return &ActionItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionItemCreate) OnConflictColumns(columns ...string) *ActionItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionItemUpsertOne{
		create: _c,
	}
}

type (
	// ActionItemUpsertOne is the builder for "upsert"-ing
	//  one ActionItem node.
	ActionItemUpsertOne struct {
		create *ActionItemCreate
	}

	// ActionItemUpsert is the "OnConflict" setter.
	ActionItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ActionItemUpsert) SetUpdatedAt(v time.Time) *ActionItemUpsert {
	u.Set(actionitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActionItemUpsert) UpdateUpdatedAt() *ActionItemUpsert {
	u.SetExcluded(actionitem.FieldUpdatedAt)
	return u
}

// SetClientID sets the "client_id" field.
func (u *ActionItemUpsert) SetClientID(v uuid.UUID) *ActionItemUpsert {
	u.Set(actionitem.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ActionItemUpsert) UpdateClientID() *ActionItemUpsert {
	u.SetExcluded(actionitem.FieldClientID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ActionItemUpsert) SetSessionID(v uuid.UUID) *ActionItemUpsert {
	u.Set(actionitem.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ActionItemUpsert) UpdateSessionID() *ActionItemUpsert {
	u.SetExcluded(actionitem.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *ActionItemUpsert) ClearSessionID() *ActionItemUpsert {
	u.SetNull(actionitem.FieldSessionID)
	return u
}

// SetTitle sets the "title" field.
func (u *ActionItemUpsert) SetTitle(v string) *ActionItemUpsert {
	u.Set(actionitem.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ActionItemUpsert) UpdateTitle() *ActionItemUpsert {
	u.SetExcluded(actionitem.FieldTitle)
	return u
}

// SetNotes sets the "notes" field.
func (u *ActionItemUpsert) SetNotes(v string) *ActionItemUpsert {
	u.Set(actionitem.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ActionItemUpsert) UpdateNotes() *ActionItemUpsert {
	u.SetExcluded(actionitem.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *ActionItemUpsert) ClearNotes() *ActionItemUpsert {
	u.SetNull(actionitem.FieldNotes)
	return u
}

// SetDueOn sets the "due_on" field.
func (u *ActionItemUpsert) SetDueOn(v time.Time) *ActionItemUpsert {
	u.Set(actionitem.FieldDueOn, v)
	return u
}

// UpdateDueOn sets the "due_on" field to the value that was provided on create.
func (u *ActionItemUpsert) UpdateDueOn() *ActionItemUpsert {
	u.SetExcluded(actionitem.FieldDueOn)
	return u
}

// ClearDueOn clears the value of the "due_on" field.
func (u *ActionItemUpsert) ClearDueOn() *ActionItemUpsert {
	u.SetNull(actionitem.FieldDueOn)
	return u
}

// SetStatus sets the "status" field.
func (u *ActionItemUpsert) SetStatus(v actionitem.Status) *ActionItemUpsert {
	u.Set(actionitem.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActionItemUpsert) UpdateStatus() *ActionItemUpsert {
	u.SetExcluded(actionitem.FieldStatus)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ActionItemUpsert) SetCompletedAt(v time.Time) *ActionItemUpsert {
	u.Set(actionitem.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ActionItemUpsert) UpdateCompletedAt() *ActionItemUpsert {
	u.SetExcluded(actionitem.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ActionItemUpsert) ClearCompletedAt() *ActionItemUpsert {
	u.SetNull(actionitem.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActionItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionItemUpsertOne) UpdateNewValues() *ActionItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(actionitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(actionitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActionItemUpsertOne) Ignore() *ActionItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionItemUpsertOne) DoNothing() *ActionItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionItemCreate.OnConflict
// documentation for more info.
func (u *ActionItemUpsertOne) Update(set func(*ActionItemUpsert)) *ActionItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActionItemUpsertOne) SetUpdatedAt(v time.Time) *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActionItemUpsertOne) UpdateUpdatedAt() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClientID sets the "client_id" field.
func (u *ActionItemUpsertOne) SetClientID(v uuid.UUID) *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ActionItemUpsertOne) UpdateClientID() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateClientID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *ActionItemUpsertOne) SetSessionID(v uuid.UUID) *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ActionItemUpsertOne) UpdateSessionID() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *ActionItemUpsertOne) ClearSessionID() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.ClearSessionID()
	})
}

// SetTitle sets the "title" field.
func (u *ActionItemUpsertOne) SetTitle(v string) *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ActionItemUpsertOne) UpdateTitle() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateTitle()
	})
}

// SetNotes sets the "notes" field.
func (u *ActionItemUpsertOne) SetNotes(v string) *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ActionItemUpsertOne) UpdateNotes() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ActionItemUpsertOne) ClearNotes() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.ClearNotes()
	})
}

// SetDueOn sets the "due_on" field.
func (u *ActionItemUpsertOne) SetDueOn(v time.Time) *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetDueOn(v)
	})
}

// UpdateDueOn sets the "due_on" field to the value that was provided on create.
func (u *ActionItemUpsertOne) UpdateDueOn() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateDueOn()
	})
}

// ClearDueOn clears the value of the "due_on" field.
func (u *ActionItemUpsertOne) ClearDueOn() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.ClearDueOn()
	})
}

// SetStatus sets the "status" field.
func (u *ActionItemUpsertOne) SetStatus(v actionitem.Status) *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActionItemUpsertOne) UpdateStatus() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ActionItemUpsertOne) SetCompletedAt(v time.Time) *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ActionItemUpsertOne) UpdateCompletedAt() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ActionItemUpsertOne) ClearCompletedAt() *ActionItemUpsertOne {
	return u.Update(func(s *ActionItemUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ActionItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActionItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActionItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ActionItemUpsertOne.ID is not supported by MySQL driver. Use ActionItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActionItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActionItemCreateBulk is the builder for creating many ActionItem entities in bulk.
type ActionItemCreateBulk struct {
	config
	err      error
	builders []*ActionItemCreate
	conflict []sql.ConflictOption
}

// Save creates the ActionItem entities in the database.
func (_c *ActionItemCreateBulk) Save(ctx context.Context) ([]*ActionItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionItemMutation)
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
func (_c *ActionItemCreateBulk) SaveX(ctx context.Context) []*ActionItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActionItemUpsertBulk {
	_c.conflict = opts
	return &ActionItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionItemCreateBulk) OnConflictColumns(columns ...string) *ActionItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionItemUpsertBulk{
		create: _c,
	}
}

// ActionItemUpsertBulk is the builder for "upsert"-ing
// a bulk of ActionItem nodes.
type ActionItemUpsertBulk struct {
	create *ActionItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActionItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionItemUpsertBulk) UpdateNewValues() *ActionItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(actionitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(actionitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActionItemUpsertBulk) Ignore() *ActionItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionItemUpsertBulk) DoNothing() *ActionItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionItemCreateBulk.OnConflict
// documentation for more info.
func (u *ActionItemUpsertBulk) Update(set func(*ActionItemUpsert)) *ActionItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActionItemUpsertBulk) SetUpdatedAt(v time.Time) *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActionItemUpsertBulk) UpdateUpdatedAt() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClientID sets the "client_id" field.
func (u *ActionItemUpsertBulk) SetClientID(v uuid.UUID) *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *ActionItemUpsertBulk) UpdateClientID() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateClientID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *ActionItemUpsertBulk) SetSessionID(v uuid.UUID) *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ActionItemUpsertBulk) UpdateSessionID() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *ActionItemUpsertBulk) ClearSessionID() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.ClearSessionID()
	})
}

// SetTitle sets the "title" field.
func (u *ActionItemUpsertBulk) SetTitle(v string) *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ActionItemUpsertBulk) UpdateTitle() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateTitle()
	})
}

// SetNotes sets the "notes" field.
func (u *ActionItemUpsertBulk) SetNotes(v string) *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ActionItemUpsertBulk) UpdateNotes() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ActionItemUpsertBulk) ClearNotes() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.ClearNotes()
	})
}

// SetDueOn sets the "due_on" field.
func (u *ActionItemUpsertBulk) SetDueOn(v time.Time) *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetDueOn(v)
	})
}

// UpdateDueOn sets the "due_on" field to the value that was provided on create.
func (u *ActionItemUpsertBulk) UpdateDueOn() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateDueOn()
	})
}

// ClearDueOn clears the value of the "due_on" field.
func (u *ActionItemUpsertBulk) ClearDueOn() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.ClearDueOn()
	})
}

// SetStatus sets the "status" field.
func (u *ActionItemUpsertBulk) SetStatus(v actionitem.Status) *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActionItemUpsertBulk) UpdateStatus() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ActionItemUpsertBulk) SetCompletedAt(v time.Time) *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ActionItemUpsertBulk) UpdateCompletedAt() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ActionItemUpsertBulk) ClearCompletedAt() *ActionItemUpsertBulk {
	return u.Update(func(s *ActionItemUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ActionItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ActionItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActionItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
