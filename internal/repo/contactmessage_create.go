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
	"github.com/evanshaw/cadence_backend/internal/repo/contactmessage"
	"github.com/google/uuid"
)

// ContactMessageCreate is the builder for creating a ContactMessage entity.
type ContactMessageCreate struct {
	config
	mutation *ContactMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContactMessageCreate) SetCreatedAt(v time.Time) *ContactMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContactMessageCreate) SetNillableCreatedAt(v *time.Time) *ContactMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ContactMessageCreate) SetName(v string) *ContactMessageCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ContactMessageCreate) SetEmail(v string) *ContactMessageCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ContactMessageCreate) SetSubject(v string) *ContactMessageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *ContactMessageCreate) SetNillableSubject(v *string) *ContactMessageCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *ContactMessageCreate) SetBody(v string) *ContactMessageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ContactMessageCreate) SetKind(v contactmessage.Kind) *ContactMessageCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ContactMessageCreate) SetNillableKind(v *contactmessage.Kind) *ContactMessageCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetHandled sets the "handled" field.
func (_c *ContactMessageCreate) SetHandled(v bool) *ContactMessageCreate {
	_c.mutation.SetHandled(v)
	return _c
}

// SetNillableHandled sets the "handled" field if the given value is not nil.
func (_c *ContactMessageCreate) SetNillableHandled(v *bool) *ContactMessageCreate {
	if v != nil {
		_c.SetHandled(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContactMessageCreate) SetID(v uuid.UUID) *ContactMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContactMessageCreate) SetNillableID(v *uuid.UUID) *ContactMessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ContactMessageMutation object of the builder.
func (_c *ContactMessageCreate) Mutation() *ContactMessageMutation {
	return _c.mutation
}

// Save creates the ContactMessage in the database.
func (_c *ContactMessageCreate) Save(ctx context.Context) (*ContactMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactMessageCreate) SaveX(ctx context.Context) *ContactMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contactmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := contactmessage.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Handled(); !ok {
		v := contactmessage.DefaultHandled
		_c.mutation.SetHandled(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contactmessage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactMessageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ContactMessage.created_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "ContactMessage.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := contactmessage.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "ContactMessage.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := contactmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := contactmessage.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`repo: missing required field "ContactMessage.body"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "ContactMessage.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := contactmessage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "ContactMessage.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Handled(); !ok {
		return &ValidationError{Name: "handled", err: errors.New(`repo: missing required field "ContactMessage.handled"`)}
	}
	return nil
}

func (_c *ContactMessageCreate) sqlSave(ctx context.Context) (*ContactMessage, error) {
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

func (_c *ContactMessageCreate) createSpec() (*ContactMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ContactMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contactmessage.Table, sqlgraph.NewFieldSpec(contactmessage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contactmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(contactmessage.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(contactmessage.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(contactmessage.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(contactmessage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(contactmessage.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Handled(); ok {
		_spec.SetField(contactmessage.FieldHandled, field.TypeBool, value)
		_node.Handled = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContactMessage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContactMessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ContactMessageCreate) OnConflict(opts ...sql.ConflictOption) *ContactMessageUpsertOne {
	_c.conflict = opts
	return &ContactMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContactMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContactMessageCreate) OnConflictColumns(columns ...string) *ContactMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContactMessageUpsertOne{
		create: _c,
	}
}

type (
	// ContactMessageUpsertOne is the builder for "upsert"-ing
	//  one ContactMessage node.
	ContactMessageUpsertOne struct {
		create *ContactMessageCreate
	}

	// ContactMessageUpsert is the "OnConflict" setter.
	ContactMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ContactMessageUpsert) SetName(v string) *ContactMessageUpsert {
	u.Set(contactmessage.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ContactMessageUpsert) UpdateName() *ContactMessageUpsert {
	u.SetExcluded(contactmessage.FieldName)
	return u
}

// SetEmail sets the "email" field.
func (u *ContactMessageUpsert) SetEmail(v string) *ContactMessageUpsert {
	u.Set(contactmessage.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ContactMessageUpsert) UpdateEmail() *ContactMessageUpsert {
	u.SetExcluded(contactmessage.FieldEmail)
	return u
}

// SetSubject sets the "subject" field.
func (u *ContactMessageUpsert) SetSubject(v string) *ContactMessageUpsert {
	u.Set(contactmessage.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *ContactMessageUpsert) UpdateSubject() *ContactMessageUpsert {
	u.SetExcluded(contactmessage.FieldSubject)
	return u
}

// ClearSubject clears the value of the "subject" field.
func (u *ContactMessageUpsert) ClearSubject() *ContactMessageUpsert {
	u.SetNull(contactmessage.FieldSubject)
	return u
}

// SetBody sets the "body" field.
func (u *ContactMessageUpsert) SetBody(v string) *ContactMessageUpsert {
	u.Set(contactmessage.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ContactMessageUpsert) UpdateBody() *ContactMessageUpsert {
	u.SetExcluded(contactmessage.FieldBody)
	return u
}

// SetKind sets the "kind" field.
func (u *ContactMessageUpsert) SetKind(v contactmessage.Kind) *ContactMessageUpsert {
	u.Set(contactmessage.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ContactMessageUpsert) UpdateKind() *ContactMessageUpsert {
	u.SetExcluded(contactmessage.FieldKind)
	return u
}

// SetHandled sets the "handled" field.
func (u *ContactMessageUpsert) SetHandled(v bool) *ContactMessageUpsert {
	u.Set(contactmessage.FieldHandled, v)
	return u
}

// UpdateHandled sets the "handled" field to the value that was provided on create.
func (u *ContactMessageUpsert) UpdateHandled() *ContactMessageUpsert {
	u.SetExcluded(contactmessage.FieldHandled)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ContactMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contactmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContactMessageUpsertOne) UpdateNewValues() *ContactMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contactmessage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(contactmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContactMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContactMessageUpsertOne) Ignore() *ContactMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContactMessageUpsertOne) DoNothing() *ContactMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContactMessageCreate.OnConflict
// documentation for more info.
func (u *ContactMessageUpsertOne) Update(set func(*ContactMessageUpsert)) *ContactMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContactMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ContactMessageUpsertOne) SetName(v string) *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ContactMessageUpsertOne) UpdateName() *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *ContactMessageUpsertOne) SetEmail(v string) *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ContactMessageUpsertOne) UpdateEmail() *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateEmail()
	})
}

// SetSubject sets the "subject" field.
func (u *ContactMessageUpsertOne) SetSubject(v string) *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *ContactMessageUpsertOne) UpdateSubject() *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *ContactMessageUpsertOne) ClearSubject() *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.ClearSubject()
	})
}

// SetBody sets the "body" field.
func (u *ContactMessageUpsertOne) SetBody(v string) *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ContactMessageUpsertOne) UpdateBody() *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateBody()
	})
}

// SetKind sets the "kind" field.
func (u *ContactMessageUpsertOne) SetKind(v contactmessage.Kind) *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ContactMessageUpsertOne) UpdateKind() *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateKind()
	})
}

// SetHandled sets the "handled" field.
func (u *ContactMessageUpsertOne) SetHandled(v bool) *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetHandled(v)
	})
}

// UpdateHandled sets the "handled" field to the value that was provided on create.
func (u *ContactMessageUpsertOne) UpdateHandled() *ContactMessageUpsertOne {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateHandled()
	})
}

// Exec executes the query.
func (u *ContactMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ContactMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContactMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContactMessageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ContactMessageUpsertOne.ID is not supported by MySQL driver. Use ContactMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContactMessageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContactMessageCreateBulk is the builder for creating many ContactMessage entities in bulk.
type ContactMessageCreateBulk struct {
	config
	err      error
	builders []*ContactMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the ContactMessage entities in the database.
func (_c *ContactMessageCreateBulk) Save(ctx context.Context) ([]*ContactMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContactMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactMessageMutation)
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
func (_c *ContactMessageCreateBulk) SaveX(ctx context.Context) []*ContactMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContactMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContactMessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ContactMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContactMessageUpsertBulk {
	_c.conflict = opts
	return &ContactMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContactMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContactMessageCreateBulk) OnConflictColumns(columns ...string) *ContactMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContactMessageUpsertBulk{
		create: _c,
	}
}

// ContactMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of ContactMessage nodes.
type ContactMessageUpsertBulk struct {
	create *ContactMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ContactMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contactmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContactMessageUpsertBulk) UpdateNewValues() *ContactMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contactmessage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(contactmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContactMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContactMessageUpsertBulk) Ignore() *ContactMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContactMessageUpsertBulk) DoNothing() *ContactMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContactMessageCreateBulk.OnConflict
// documentation for more info.
func (u *ContactMessageUpsertBulk) Update(set func(*ContactMessageUpsert)) *ContactMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContactMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ContactMessageUpsertBulk) SetName(v string) *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ContactMessageUpsertBulk) UpdateName() *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *ContactMessageUpsertBulk) SetEmail(v string) *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ContactMessageUpsertBulk) UpdateEmail() *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateEmail()
	})
}

// SetSubject sets the "subject" field.
func (u *ContactMessageUpsertBulk) SetSubject(v string) *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *ContactMessageUpsertBulk) UpdateSubject() *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *ContactMessageUpsertBulk) ClearSubject() *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.ClearSubject()
	})
}

// SetBody sets the "body" field.
func (u *ContactMessageUpsertBulk) SetBody(v string) *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *ContactMessageUpsertBulk) UpdateBody() *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateBody()
	})
}

// SetKind sets the "kind" field.
func (u *ContactMessageUpsertBulk) SetKind(v contactmessage.Kind) *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ContactMessageUpsertBulk) UpdateKind() *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateKind()
	})
}

// SetHandled sets the "handled" field.
func (u *ContactMessageUpsertBulk) SetHandled(v bool) *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.SetHandled(v)
	})
}

// UpdateHandled sets the "handled" field to the value that was provided on create.
func (u *ContactMessageUpsertBulk) UpdateHandled() *ContactMessageUpsertBulk {
	return u.Update(func(s *ContactMessageUpsert) {
		s.UpdateHandled()
	})
}

// Exec executes the query.
func (u *ContactMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ContactMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ContactMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContactMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
