// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/queueitem"
)

// QueueItemCreate is the builder for creating a QueueItem entity.
type QueueItemCreate struct {
	config
	mutation *QueueItemMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *QueueItemCreate) SetTenantID(v string) *QueueItemCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *QueueItemCreate) SetKind(v queueitem.Kind) *QueueItemCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueItemCreate) SetStatus(v queueitem.Status) *QueueItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableStatus(v *queueitem.Status) *QueueItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *QueueItemCreate) SetPriority(v int) *QueueItemCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *QueueItemCreate) SetPosition(v int) *QueueItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *QueueItemCreate) SetAgentID(v string) *QueueItemCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *QueueItemCreate) SetContactPhone(v string) *QueueItemCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetContactName sets the "contact_name" field.
func (_c *QueueItemCreate) SetContactName(v string) *QueueItemCreate {
	_c.mutation.SetContactName(v)
	return _c
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableContactName(v *string) *QueueItemCreate {
	if v != nil {
		_c.SetContactName(*v)
	}
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *QueueItemCreate) SetContactID(v string) *QueueItemCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableContactID(v *string) *QueueItemCreate {
	if v != nil {
		_c.SetContactID(*v)
	}
	return _c
}

// SetCampaignID sets the "campaign_id" field.
func (_c *QueueItemCreate) SetCampaignID(v string) *QueueItemCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableCampaignID(v *string) *QueueItemCreate {
	if v != nil {
		_c.SetCampaignID(*v)
	}
	return _c
}

// SetCallID sets the "call_id" field.
func (_c *QueueItemCreate) SetCallID(v string) *QueueItemCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableCallID(v *string) *QueueItemCreate {
	if v != nil {
		_c.SetCallID(*v)
	}
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *QueueItemCreate) SetScheduledFor(v time.Time) *QueueItemCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableScheduledFor(v *time.Time) *QueueItemCreate {
	if v != nil {
		_c.SetScheduledFor(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *QueueItemCreate) SetAttempts(v int) *QueueItemCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableAttempts(v *int) *QueueItemCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *QueueItemCreate) SetFailureReason(v string) *QueueItemCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableFailureReason(v *string) *QueueItemCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetVariables sets the "variables" field.
func (_c *QueueItemCreate) SetVariables(v map[string]interface{}) *QueueItemCreate {
	_c.mutation.SetVariables(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueueItemCreate) SetCreatedAt(v time.Time) *QueueItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableCreatedAt(v *time.Time) *QueueItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueueItemCreate) SetUpdatedAt(v time.Time) *QueueItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableUpdatedAt(v *time.Time) *QueueItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueItemCreate) SetID(v string) *QueueItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueItemMutation object of the builder.
func (_c *QueueItemCreate) Mutation() *QueueItemMutation {
	return _c.mutation
}

// Save creates the QueueItem in the database.
func (_c *QueueItemCreate) Save(ctx context.Context) (*QueueItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueItemCreate) SaveX(ctx context.Context) *QueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := queueitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := queueitem.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queueitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := queueitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueItemCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "QueueItem.tenant_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "QueueItem.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := queueitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QueueItem.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "QueueItem.priority"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "QueueItem.position"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "QueueItem.agent_id"`)}
	}
	if _, ok := _c.mutation.ContactPhone(); !ok {
		return &ValidationError{Name: "contact_phone", err: errors.New(`ent: missing required field "QueueItem.contact_phone"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "QueueItem.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueueItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueueItem.updated_at"`)}
	}
	return nil
}

func (_c *QueueItemCreate) sqlSave(ctx context.Context) (*QueueItem, error) {
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
			return nil, fmt.Errorf("unexpected QueueItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueItemCreate) createSpec() (*QueueItem, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queueitem.Table, sqlgraph.NewFieldSpec(queueitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(queueitem.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(queueitem.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queueitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(queueitem.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(queueitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(queueitem.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(queueitem.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = value
	}
	if value, ok := _c.mutation.ContactName(); ok {
		_spec.SetField(queueitem.FieldContactName, field.TypeString, value)
		_node.ContactName = &value
	}
	if value, ok := _c.mutation.ContactID(); ok {
		_spec.SetField(queueitem.FieldContactID, field.TypeString, value)
		_node.ContactID = &value
	}
	if value, ok := _c.mutation.CampaignID(); ok {
		_spec.SetField(queueitem.FieldCampaignID, field.TypeString, value)
		_node.CampaignID = &value
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(queueitem.FieldCallID, field.TypeString, value)
		_node.CallID = &value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(queueitem.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(queueitem.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(queueitem.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.Variables(); ok {
		_spec.SetField(queueitem.FieldVariables, field.TypeJSON, value)
		_node.Variables = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queueitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(queueitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// QueueItemCreateBulk is the builder for creating many QueueItem entities in bulk.
type QueueItemCreateBulk struct {
	config
	err      error
	builders []*QueueItemCreate
}

// Save creates the QueueItem entities in the database.
func (_c *QueueItemCreateBulk) Save(ctx context.Context) ([]*QueueItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueItemMutation)
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
func (_c *QueueItemCreateBulk) SaveX(ctx context.Context) []*QueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
