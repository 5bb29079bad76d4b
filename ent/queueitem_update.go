// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/predicate"
	"github.com/ringstack/ringstack/ent/queueitem"
)

// QueueItemUpdate is the builder for updating QueueItem entities.
type QueueItemUpdate struct {
	config
	hooks    []Hook
	mutation *QueueItemMutation
}

// Where appends a list predicates to the QueueItemUpdate builder.
func (_u *QueueItemUpdate) Where(ps ...predicate.QueueItem) *QueueItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueItemUpdate) SetStatus(v queueitem.Status) *QueueItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableStatus(v *queueitem.Status) *QueueItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueItemUpdate) SetPriority(v int) *QueueItemUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillablePriority(v *int) *QueueItemUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueItemUpdate) AddPriority(v int) *QueueItemUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *QueueItemUpdate) SetPosition(v int) *QueueItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillablePosition(v *int) *QueueItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QueueItemUpdate) AddPosition(v int) *QueueItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *QueueItemUpdate) SetAgentID(v string) *QueueItemUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableAgentID(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *QueueItemUpdate) SetContactPhone(v string) *QueueItemUpdate {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableContactPhone(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *QueueItemUpdate) SetContactName(v string) *QueueItemUpdate {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableContactName(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *QueueItemUpdate) ClearContactName() *QueueItemUpdate {
	_u.mutation.ClearContactName()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *QueueItemUpdate) SetContactID(v string) *QueueItemUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableContactID(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *QueueItemUpdate) ClearContactID() *QueueItemUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *QueueItemUpdate) SetCampaignID(v string) *QueueItemUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableCampaignID(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *QueueItemUpdate) ClearCampaignID() *QueueItemUpdate {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *QueueItemUpdate) SetCallID(v string) *QueueItemUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableCallID(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// ClearCallID clears the value of the "call_id" field.
func (_u *QueueItemUpdate) ClearCallID() *QueueItemUpdate {
	_u.mutation.ClearCallID()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *QueueItemUpdate) SetScheduledFor(v time.Time) *QueueItemUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableScheduledFor(v *time.Time) *QueueItemUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *QueueItemUpdate) ClearScheduledFor() *QueueItemUpdate {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueItemUpdate) SetAttempts(v int) *QueueItemUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableAttempts(v *int) *QueueItemUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueItemUpdate) AddAttempts(v int) *QueueItemUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *QueueItemUpdate) SetFailureReason(v string) *QueueItemUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableFailureReason(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *QueueItemUpdate) ClearFailureReason() *QueueItemUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetVariables sets the "variables" field.
func (_u *QueueItemUpdate) SetVariables(v map[string]interface{}) *QueueItemUpdate {
	_u.mutation.SetVariables(v)
	return _u
}

// ClearVariables clears the value of the "variables" field.
func (_u *QueueItemUpdate) ClearVariables() *QueueItemUpdate {
	_u.mutation.ClearVariables()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueItemUpdate) SetUpdatedAt(v time.Time) *QueueItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueItemMutation object of the builder.
func (_u *QueueItemUpdate) Mutation() *QueueItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queueitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queueitem.Table, queueitem.Columns, sqlgraph.NewFieldSpec(queueitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queueitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queueitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(queueitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(queueitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(queueitem.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(queueitem.FieldContactPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(queueitem.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(queueitem.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(queueitem.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(queueitem.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(queueitem.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(queueitem.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(queueitem.FieldCallID, field.TypeString, value)
	}
	if _u.mutation.CallIDCleared() {
		_spec.ClearField(queueitem.FieldCallID, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(queueitem.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(queueitem.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(queueitem.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(queueitem.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(queueitem.FieldVariables, field.TypeJSON, value)
	}
	if _u.mutation.VariablesCleared() {
		_spec.ClearField(queueitem.FieldVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queueitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueItemUpdateOne is the builder for updating a single QueueItem entity.
type QueueItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueItemMutation
}

// SetStatus sets the "status" field.
func (_u *QueueItemUpdateOne) SetStatus(v queueitem.Status) *QueueItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableStatus(v *queueitem.Status) *QueueItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueItemUpdateOne) SetPriority(v int) *QueueItemUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillablePriority(v *int) *QueueItemUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueItemUpdateOne) AddPriority(v int) *QueueItemUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *QueueItemUpdateOne) SetPosition(v int) *QueueItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillablePosition(v *int) *QueueItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QueueItemUpdateOne) AddPosition(v int) *QueueItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *QueueItemUpdateOne) SetAgentID(v string) *QueueItemUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableAgentID(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *QueueItemUpdateOne) SetContactPhone(v string) *QueueItemUpdateOne {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableContactPhone(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *QueueItemUpdateOne) SetContactName(v string) *QueueItemUpdateOne {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableContactName(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *QueueItemUpdateOne) ClearContactName() *QueueItemUpdateOne {
	_u.mutation.ClearContactName()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *QueueItemUpdateOne) SetContactID(v string) *QueueItemUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableContactID(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *QueueItemUpdateOne) ClearContactID() *QueueItemUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *QueueItemUpdateOne) SetCampaignID(v string) *QueueItemUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableCampaignID(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *QueueItemUpdateOne) ClearCampaignID() *QueueItemUpdateOne {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *QueueItemUpdateOne) SetCallID(v string) *QueueItemUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableCallID(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// ClearCallID clears the value of the "call_id" field.
func (_u *QueueItemUpdateOne) ClearCallID() *QueueItemUpdateOne {
	_u.mutation.ClearCallID()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *QueueItemUpdateOne) SetScheduledFor(v time.Time) *QueueItemUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableScheduledFor(v *time.Time) *QueueItemUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *QueueItemUpdateOne) ClearScheduledFor() *QueueItemUpdateOne {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueItemUpdateOne) SetAttempts(v int) *QueueItemUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableAttempts(v *int) *QueueItemUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueItemUpdateOne) AddAttempts(v int) *QueueItemUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *QueueItemUpdateOne) SetFailureReason(v string) *QueueItemUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableFailureReason(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *QueueItemUpdateOne) ClearFailureReason() *QueueItemUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetVariables sets the "variables" field.
func (_u *QueueItemUpdateOne) SetVariables(v map[string]interface{}) *QueueItemUpdateOne {
	_u.mutation.SetVariables(v)
	return _u
}

// ClearVariables clears the value of the "variables" field.
func (_u *QueueItemUpdateOne) ClearVariables() *QueueItemUpdateOne {
	_u.mutation.ClearVariables()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueItemUpdateOne) SetUpdatedAt(v time.Time) *QueueItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueItemMutation object of the builder.
func (_u *QueueItemUpdateOne) Mutation() *QueueItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueItemUpdate builder.
func (_u *QueueItemUpdateOne) Where(ps ...predicate.QueueItem) *QueueItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueItemUpdateOne) Select(field string, fields ...string) *QueueItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueItem entity.
func (_u *QueueItemUpdateOne) Save(ctx context.Context) (*QueueItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueItemUpdateOne) SaveX(ctx context.Context) *QueueItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queueitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueItemUpdateOne) sqlSave(ctx context.Context) (_node *QueueItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queueitem.Table, queueitem.Columns, sqlgraph.NewFieldSpec(queueitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queueitem.FieldID)
		for _, f := range fields {
			if !queueitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queueitem.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queueitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queueitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(queueitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(queueitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(queueitem.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(queueitem.FieldContactPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(queueitem.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(queueitem.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(queueitem.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(queueitem.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(queueitem.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(queueitem.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(queueitem.FieldCallID, field.TypeString, value)
	}
	if _u.mutation.CallIDCleared() {
		_spec.ClearField(queueitem.FieldCallID, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(queueitem.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(queueitem.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(queueitem.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(queueitem.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(queueitem.FieldVariables, field.TypeJSON, value)
	}
	if _u.mutation.VariablesCleared() {
		_spec.ClearField(queueitem.FieldVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queueitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QueueItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
