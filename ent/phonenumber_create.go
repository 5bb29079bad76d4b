// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/phonenumber"
)

// PhoneNumberCreate is the builder for creating a PhoneNumber entity.
type PhoneNumberCreate struct {
	config
	mutation *PhoneNumberMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *PhoneNumberCreate) SetTenantID(v string) *PhoneNumberCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PhoneNumberCreate) SetPhone(v string) *PhoneNumberCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_c *PhoneNumberCreate) SetAssignedAgentID(v string) *PhoneNumberCreate {
	_c.mutation.SetAssignedAgentID(v)
	return _c
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_c *PhoneNumberCreate) SetNillableAssignedAgentID(v *string) *PhoneNumberCreate {
	if v != nil {
		_c.SetAssignedAgentID(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PhoneNumberCreate) SetIsActive(v bool) *PhoneNumberCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PhoneNumberCreate) SetNillableIsActive(v *bool) *PhoneNumberCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PhoneNumberCreate) SetCreatedAt(v time.Time) *PhoneNumberCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PhoneNumberCreate) SetNillableCreatedAt(v *time.Time) *PhoneNumberCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PhoneNumberCreate) SetID(v string) *PhoneNumberCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PhoneNumberMutation object of the builder.
func (_c *PhoneNumberCreate) Mutation() *PhoneNumberMutation {
	return _c.mutation
}

// Save creates the PhoneNumber in the database.
func (_c *PhoneNumberCreate) Save(ctx context.Context) (*PhoneNumber, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhoneNumberCreate) SaveX(ctx context.Context) *PhoneNumber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhoneNumberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhoneNumberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhoneNumberCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := phonenumber.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := phonenumber.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhoneNumberCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PhoneNumber.tenant_id"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "PhoneNumber.phone"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "PhoneNumber.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PhoneNumber.created_at"`)}
	}
	return nil
}

func (_c *PhoneNumberCreate) sqlSave(ctx context.Context) (*PhoneNumber, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PhoneNumber.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PhoneNumberCreate) createSpec() (*PhoneNumber, *sqlgraph.CreateSpec) {
	var (
		_node = &PhoneNumber{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(phonenumber.Table, sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(phonenumber.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(phonenumber.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.AssignedAgentID(); ok {
		_spec.SetField(phonenumber.FieldAssignedAgentID, field.TypeString, value)
		_node.AssignedAgentID = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(phonenumber.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(phonenumber.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PhoneNumberCreateBulk is the builder for creating many PhoneNumber entities in bulk.
type PhoneNumberCreateBulk struct {
	config
	err      error
	builders []*PhoneNumberCreate
}

// Save creates the PhoneNumber entities in the database.
func (_c *PhoneNumberCreateBulk) Save(ctx context.Context) ([]*PhoneNumber, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PhoneNumber, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhoneNumberMutation)
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
func (_c *PhoneNumberCreateBulk) SaveX(ctx context.Context) []*PhoneNumber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhoneNumberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhoneNumberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
