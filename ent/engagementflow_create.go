// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/engagementflow"
)

// EngagementFlowCreate is the builder for creating a EngagementFlow entity.
type EngagementFlowCreate struct {
	config
	mutation *EngagementFlowMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *EngagementFlowCreate) SetTenantID(v string) *EngagementFlowCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *EngagementFlowCreate) SetName(v string) *EngagementFlowCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *EngagementFlowCreate) SetPriority(v int) *EngagementFlowCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *EngagementFlowCreate) SetNillablePriority(v *int) *EngagementFlowCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *EngagementFlowCreate) SetEnabled(v bool) *EngagementFlowCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *EngagementFlowCreate) SetNillableEnabled(v *bool) *EngagementFlowCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *EngagementFlowCreate) SetTriggerType(v engagementflow.TriggerType) *EngagementFlowCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_c *EngagementFlowCreate) SetNillableTriggerType(v *engagementflow.TriggerType) *EngagementFlowCreate {
	if v != nil {
		_c.SetTriggerType(*v)
	}
	return _c
}

// SetConditions sets the "conditions" field.
func (_c *EngagementFlowCreate) SetConditions(v []map[string]interface{}) *EngagementFlowCreate {
	_c.mutation.SetConditions(v)
	return _c
}

// SetActions sets the "actions" field.
func (_c *EngagementFlowCreate) SetActions(v []map[string]interface{}) *EngagementFlowCreate {
	_c.mutation.SetActions(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *EngagementFlowCreate) SetAgentID(v string) *EngagementFlowCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *EngagementFlowCreate) SetNillableAgentID(v *string) *EngagementFlowCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EngagementFlowCreate) SetCreatedAt(v time.Time) *EngagementFlowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EngagementFlowCreate) SetNillableCreatedAt(v *time.Time) *EngagementFlowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EngagementFlowCreate) SetUpdatedAt(v time.Time) *EngagementFlowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EngagementFlowCreate) SetNillableUpdatedAt(v *time.Time) *EngagementFlowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EngagementFlowCreate) SetID(v string) *EngagementFlowCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EngagementFlowMutation object of the builder.
func (_c *EngagementFlowCreate) Mutation() *EngagementFlowMutation {
	return _c.mutation
}

// Save creates the EngagementFlow in the database.
func (_c *EngagementFlowCreate) Save(ctx context.Context) (*EngagementFlow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngagementFlowCreate) SaveX(ctx context.Context) *EngagementFlow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementFlowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementFlowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngagementFlowCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := engagementflow.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := engagementflow.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		v := engagementflow.DefaultTriggerType
		_c.mutation.SetTriggerType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := engagementflow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := engagementflow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngagementFlowCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "EngagementFlow.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EngagementFlow.name"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "EngagementFlow.priority"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "EngagementFlow.enabled"`)}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "EngagementFlow.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := engagementflow.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "EngagementFlow.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Actions(); !ok {
		return &ValidationError{Name: "actions", err: errors.New(`ent: missing required field "EngagementFlow.actions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EngagementFlow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EngagementFlow.updated_at"`)}
	}
	return nil
}

func (_c *EngagementFlowCreate) sqlSave(ctx context.Context) (*EngagementFlow, error) {
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
			return nil, fmt.Errorf("unexpected EngagementFlow.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EngagementFlowCreate) createSpec() (*EngagementFlow, *sqlgraph.CreateSpec) {
	var (
		_node = &EngagementFlow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(engagementflow.Table, sqlgraph.NewFieldSpec(engagementflow.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(engagementflow.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(engagementflow.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(engagementflow.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(engagementflow.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(engagementflow.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.Conditions(); ok {
		_spec.SetField(engagementflow.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := _c.mutation.Actions(); ok {
		_spec.SetField(engagementflow.FieldActions, field.TypeJSON, value)
		_node.Actions = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(engagementflow.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(engagementflow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(engagementflow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// EngagementFlowCreateBulk is the builder for creating many EngagementFlow entities in bulk.
type EngagementFlowCreateBulk struct {
	config
	err      error
	builders []*EngagementFlowCreate
}

// Save creates the EngagementFlow entities in the database.
func (_c *EngagementFlowCreateBulk) Save(ctx context.Context) ([]*EngagementFlow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EngagementFlow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngagementFlowMutation)
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
func (_c *EngagementFlowCreateBulk) SaveX(ctx context.Context) []*EngagementFlow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementFlowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementFlowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
