// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/activeslot"
)

// ActiveSlotCreate is the builder for creating a ActiveSlot entity.
type ActiveSlotCreate struct {
	config
	mutation *ActiveSlotMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ActiveSlotCreate) SetTenantID(v string) *ActiveSlotCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCallID sets the "call_id" field.
func (_c *ActiveSlotCreate) SetCallID(v string) *ActiveSlotCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ActiveSlotCreate) SetKind(v activeslot.Kind) *ActiveSlotCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ActiveSlotCreate) SetNillableKind(v *activeslot.Kind) *ActiveSlotCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *ActiveSlotCreate) SetAcquiredAt(v time.Time) *ActiveSlotCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *ActiveSlotCreate) SetNillableAcquiredAt(v *time.Time) *ActiveSlotCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActiveSlotCreate) SetID(v string) *ActiveSlotCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActiveSlotMutation object of the builder.
func (_c *ActiveSlotCreate) Mutation() *ActiveSlotMutation {
	return _c.mutation
}

// Save creates the ActiveSlot in the database.
func (_c *ActiveSlotCreate) Save(ctx context.Context) (*ActiveSlot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActiveSlotCreate) SaveX(ctx context.Context) *ActiveSlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSlotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSlotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActiveSlotCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := activeslot.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := activeslot.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActiveSlotCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ActiveSlot.tenant_id"`)}
	}
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "ActiveSlot.call_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ActiveSlot.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := activeslot.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ActiveSlot.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "ActiveSlot.acquired_at"`)}
	}
	return nil
}

func (_c *ActiveSlotCreate) sqlSave(ctx context.Context) (*ActiveSlot, error) {
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
			return nil, fmt.Errorf("unexpected ActiveSlot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActiveSlotCreate) createSpec() (*ActiveSlot, *sqlgraph.CreateSpec) {
	var (
		_node = &ActiveSlot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activeslot.Table, sqlgraph.NewFieldSpec(activeslot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(activeslot.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(activeslot.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(activeslot.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(activeslot.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	return _node, _spec
}

// ActiveSlotCreateBulk is the builder for creating many ActiveSlot entities in bulk.
type ActiveSlotCreateBulk struct {
	config
	err      error
	builders []*ActiveSlotCreate
}

// Save creates the ActiveSlot entities in the database.
func (_c *ActiveSlotCreateBulk) Save(ctx context.Context) ([]*ActiveSlot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActiveSlot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActiveSlotMutation)
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
func (_c *ActiveSlotCreateBulk) SaveX(ctx context.Context) []*ActiveSlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSlotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSlotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
