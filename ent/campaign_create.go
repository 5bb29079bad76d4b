// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/campaign"
)

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CampaignCreate) SetTenantID(v string) *CampaignCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *CampaignCreate) SetAgentID(v string) *CampaignCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CampaignCreate) SetName(v string) *CampaignCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignCreate) SetStatus(v campaign.Status) *CampaignCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStatus(v *campaign.Status) *CampaignCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *CampaignCreate) SetTimezone(v string) *CampaignCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableTimezone(v *string) *CampaignCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetFirstCallTime sets the "first_call_time" field.
func (_c *CampaignCreate) SetFirstCallTime(v string) *CampaignCreate {
	_c.mutation.SetFirstCallTime(v)
	return _c
}

// SetNillableFirstCallTime sets the "first_call_time" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableFirstCallTime(v *string) *CampaignCreate {
	if v != nil {
		_c.SetFirstCallTime(*v)
	}
	return _c
}

// SetLastCallTime sets the "last_call_time" field.
func (_c *CampaignCreate) SetLastCallTime(v string) *CampaignCreate {
	_c.mutation.SetLastCallTime(v)
	return _c
}

// SetNillableLastCallTime sets the "last_call_time" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableLastCallTime(v *string) *CampaignCreate {
	if v != nil {
		_c.SetLastCallTime(*v)
	}
	return _c
}

// SetFromPhone sets the "from_phone" field.
func (_c *CampaignCreate) SetFromPhone(v string) *CampaignCreate {
	_c.mutation.SetFromPhone(v)
	return _c
}

// SetNillableFromPhone sets the "from_phone" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableFromPhone(v *string) *CampaignCreate {
	if v != nil {
		_c.SetFromPhone(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *CampaignCreate) SetStartDate(v time.Time) *CampaignCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStartDate(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetTotalContacts sets the "total_contacts" field.
func (_c *CampaignCreate) SetTotalContacts(v int) *CampaignCreate {
	_c.mutation.SetTotalContacts(v)
	return _c
}

// SetNillableTotalContacts sets the "total_contacts" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableTotalContacts(v *int) *CampaignCreate {
	if v != nil {
		_c.SetTotalContacts(*v)
	}
	return _c
}

// SetCompletedCalls sets the "completed_calls" field.
func (_c *CampaignCreate) SetCompletedCalls(v int) *CampaignCreate {
	_c.mutation.SetCompletedCalls(v)
	return _c
}

// SetNillableCompletedCalls sets the "completed_calls" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCompletedCalls(v *int) *CampaignCreate {
	if v != nil {
		_c.SetCompletedCalls(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignCreate) SetUpdatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableUpdatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CampaignCreate) SetID(v string) *CampaignCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := campaign.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := campaign.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.FirstCallTime(); !ok {
		v := campaign.DefaultFirstCallTime
		_c.mutation.SetFirstCallTime(v)
	}
	if _, ok := _c.mutation.LastCallTime(); !ok {
		v := campaign.DefaultLastCallTime
		_c.mutation.SetLastCallTime(v)
	}
	if _, ok := _c.mutation.TotalContacts(); !ok {
		v := campaign.DefaultTotalContacts
		_c.mutation.SetTotalContacts(v)
	}
	if _, ok := _c.mutation.CompletedCalls(); !ok {
		v := campaign.DefaultCompletedCalls
		_c.mutation.SetCompletedCalls(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaign.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Campaign.tenant_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Campaign.agent_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Campaign.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Campaign.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Campaign.timezone"`)}
	}
	if _, ok := _c.mutation.FirstCallTime(); !ok {
		return &ValidationError{Name: "first_call_time", err: errors.New(`ent: missing required field "Campaign.first_call_time"`)}
	}
	if _, ok := _c.mutation.LastCallTime(); !ok {
		return &ValidationError{Name: "last_call_time", err: errors.New(`ent: missing required field "Campaign.last_call_time"`)}
	}
	if _, ok := _c.mutation.TotalContacts(); !ok {
		return &ValidationError{Name: "total_contacts", err: errors.New(`ent: missing required field "Campaign.total_contacts"`)}
	}
	if _, ok := _c.mutation.CompletedCalls(); !ok {
		return &ValidationError{Name: "completed_calls", err: errors.New(`ent: missing required field "Campaign.completed_calls"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Campaign.updated_at"`)}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
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
			return nil, fmt.Errorf("unexpected Campaign.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(campaign.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(campaign.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(campaign.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.FirstCallTime(); ok {
		_spec.SetField(campaign.FieldFirstCallTime, field.TypeString, value)
		_node.FirstCallTime = value
	}
	if value, ok := _c.mutation.LastCallTime(); ok {
		_spec.SetField(campaign.FieldLastCallTime, field.TypeString, value)
		_node.LastCallTime = value
	}
	if value, ok := _c.mutation.FromPhone(); ok {
		_spec.SetField(campaign.FieldFromPhone, field.TypeString, value)
		_node.FromPhone = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(campaign.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.TotalContacts(); ok {
		_spec.SetField(campaign.FieldTotalContacts, field.TypeInt, value)
		_node.TotalContacts = value
	}
	if value, ok := _c.mutation.CompletedCalls(); ok {
		_spec.SetField(campaign.FieldCompletedCalls, field.TypeInt, value)
		_node.CompletedCalls = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
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
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
