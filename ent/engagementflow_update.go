// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/engagementflow"
	"github.com/ringstack/ringstack/ent/predicate"
)

// EngagementFlowUpdate is the builder for updating EngagementFlow entities.
type EngagementFlowUpdate struct {
	config
	hooks    []Hook
	mutation *EngagementFlowMutation
}

// Where appends a list predicates to the EngagementFlowUpdate builder.
func (_u *EngagementFlowUpdate) Where(ps ...predicate.EngagementFlow) *EngagementFlowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EngagementFlowUpdate) SetName(v string) *EngagementFlowUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EngagementFlowUpdate) SetNillableName(v *string) *EngagementFlowUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *EngagementFlowUpdate) SetPriority(v int) *EngagementFlowUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *EngagementFlowUpdate) SetNillablePriority(v *int) *EngagementFlowUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *EngagementFlowUpdate) AddPriority(v int) *EngagementFlowUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *EngagementFlowUpdate) SetEnabled(v bool) *EngagementFlowUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *EngagementFlowUpdate) SetNillableEnabled(v *bool) *EngagementFlowUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *EngagementFlowUpdate) SetTriggerType(v engagementflow.TriggerType) *EngagementFlowUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *EngagementFlowUpdate) SetNillableTriggerType(v *engagementflow.TriggerType) *EngagementFlowUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *EngagementFlowUpdate) SetConditions(v []map[string]interface{}) *EngagementFlowUpdate {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *EngagementFlowUpdate) AppendConditions(v []map[string]interface{}) *EngagementFlowUpdate {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *EngagementFlowUpdate) ClearConditions() *EngagementFlowUpdate {
	_u.mutation.ClearConditions()
	return _u
}

// SetActions sets the "actions" field.
func (_u *EngagementFlowUpdate) SetActions(v []map[string]interface{}) *EngagementFlowUpdate {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *EngagementFlowUpdate) AppendActions(v []map[string]interface{}) *EngagementFlowUpdate {
	_u.mutation.AppendActions(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *EngagementFlowUpdate) SetAgentID(v string) *EngagementFlowUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *EngagementFlowUpdate) SetNillableAgentID(v *string) *EngagementFlowUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *EngagementFlowUpdate) ClearAgentID() *EngagementFlowUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EngagementFlowUpdate) SetUpdatedAt(v time.Time) *EngagementFlowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EngagementFlowMutation object of the builder.
func (_u *EngagementFlowUpdate) Mutation() *EngagementFlowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngagementFlowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementFlowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngagementFlowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementFlowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EngagementFlowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := engagementflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementFlowUpdate) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := engagementflow.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "EngagementFlow.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementFlowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementflow.Table, engagementflow.Columns, sqlgraph.NewFieldSpec(engagementflow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(engagementflow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(engagementflow.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(engagementflow.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(engagementflow.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(engagementflow.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(engagementflow.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, engagementflow.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(engagementflow.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(engagementflow.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, engagementflow.FieldActions, value)
		})
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(engagementflow.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(engagementflow.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(engagementflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngagementFlowUpdateOne is the builder for updating a single EngagementFlow entity.
type EngagementFlowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngagementFlowMutation
}

// SetName sets the "name" field.
func (_u *EngagementFlowUpdateOne) SetName(v string) *EngagementFlowUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EngagementFlowUpdateOne) SetNillableName(v *string) *EngagementFlowUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *EngagementFlowUpdateOne) SetPriority(v int) *EngagementFlowUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *EngagementFlowUpdateOne) SetNillablePriority(v *int) *EngagementFlowUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *EngagementFlowUpdateOne) AddPriority(v int) *EngagementFlowUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *EngagementFlowUpdateOne) SetEnabled(v bool) *EngagementFlowUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *EngagementFlowUpdateOne) SetNillableEnabled(v *bool) *EngagementFlowUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *EngagementFlowUpdateOne) SetTriggerType(v engagementflow.TriggerType) *EngagementFlowUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *EngagementFlowUpdateOne) SetNillableTriggerType(v *engagementflow.TriggerType) *EngagementFlowUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *EngagementFlowUpdateOne) SetConditions(v []map[string]interface{}) *EngagementFlowUpdateOne {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *EngagementFlowUpdateOne) AppendConditions(v []map[string]interface{}) *EngagementFlowUpdateOne {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *EngagementFlowUpdateOne) ClearConditions() *EngagementFlowUpdateOne {
	_u.mutation.ClearConditions()
	return _u
}

// SetActions sets the "actions" field.
func (_u *EngagementFlowUpdateOne) SetActions(v []map[string]interface{}) *EngagementFlowUpdateOne {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *EngagementFlowUpdateOne) AppendActions(v []map[string]interface{}) *EngagementFlowUpdateOne {
	_u.mutation.AppendActions(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *EngagementFlowUpdateOne) SetAgentID(v string) *EngagementFlowUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *EngagementFlowUpdateOne) SetNillableAgentID(v *string) *EngagementFlowUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *EngagementFlowUpdateOne) ClearAgentID() *EngagementFlowUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EngagementFlowUpdateOne) SetUpdatedAt(v time.Time) *EngagementFlowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EngagementFlowMutation object of the builder.
func (_u *EngagementFlowUpdateOne) Mutation() *EngagementFlowMutation {
	return _u.mutation
}

// Where appends a list predicates to the EngagementFlowUpdate builder.
func (_u *EngagementFlowUpdateOne) Where(ps ...predicate.EngagementFlow) *EngagementFlowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngagementFlowUpdateOne) Select(field string, fields ...string) *EngagementFlowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EngagementFlow entity.
func (_u *EngagementFlowUpdateOne) Save(ctx context.Context) (*EngagementFlow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementFlowUpdateOne) SaveX(ctx context.Context) *EngagementFlow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngagementFlowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementFlowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EngagementFlowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := engagementflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementFlowUpdateOne) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := engagementflow.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "EngagementFlow.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementFlowUpdateOne) sqlSave(ctx context.Context) (_node *EngagementFlow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementflow.Table, engagementflow.Columns, sqlgraph.NewFieldSpec(engagementflow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EngagementFlow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagementflow.FieldID)
		for _, f := range fields {
			if !engagementflow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != engagementflow.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(engagementflow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(engagementflow.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(engagementflow.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(engagementflow.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(engagementflow.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(engagementflow.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, engagementflow.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(engagementflow.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(engagementflow.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, engagementflow.FieldActions, value)
		})
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(engagementflow.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(engagementflow.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(engagementflow.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EngagementFlow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
