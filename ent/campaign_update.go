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
	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/ent/predicate"
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CampaignUpdate) SetAgentID(v string) *CampaignUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableAgentID(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdate) SetName(v string) *CampaignUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableName(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *CampaignUpdate) SetTimezone(v string) *CampaignUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableTimezone(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetFirstCallTime sets the "first_call_time" field.
func (_u *CampaignUpdate) SetFirstCallTime(v string) *CampaignUpdate {
	_u.mutation.SetFirstCallTime(v)
	return _u
}

// SetNillableFirstCallTime sets the "first_call_time" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableFirstCallTime(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetFirstCallTime(*v)
	}
	return _u
}

// SetLastCallTime sets the "last_call_time" field.
func (_u *CampaignUpdate) SetLastCallTime(v string) *CampaignUpdate {
	_u.mutation.SetLastCallTime(v)
	return _u
}

// SetNillableLastCallTime sets the "last_call_time" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableLastCallTime(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetLastCallTime(*v)
	}
	return _u
}

// SetFromPhone sets the "from_phone" field.
func (_u *CampaignUpdate) SetFromPhone(v string) *CampaignUpdate {
	_u.mutation.SetFromPhone(v)
	return _u
}

// SetNillableFromPhone sets the "from_phone" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableFromPhone(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetFromPhone(*v)
	}
	return _u
}

// ClearFromPhone clears the value of the "from_phone" field.
func (_u *CampaignUpdate) ClearFromPhone() *CampaignUpdate {
	_u.mutation.ClearFromPhone()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *CampaignUpdate) SetStartDate(v time.Time) *CampaignUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStartDate(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *CampaignUpdate) ClearStartDate() *CampaignUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetTotalContacts sets the "total_contacts" field.
func (_u *CampaignUpdate) SetTotalContacts(v int) *CampaignUpdate {
	_u.mutation.ResetTotalContacts()
	_u.mutation.SetTotalContacts(v)
	return _u
}

// SetNillableTotalContacts sets the "total_contacts" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableTotalContacts(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetTotalContacts(*v)
	}
	return _u
}

// AddTotalContacts adds value to the "total_contacts" field.
func (_u *CampaignUpdate) AddTotalContacts(v int) *CampaignUpdate {
	_u.mutation.AddTotalContacts(v)
	return _u
}

// SetCompletedCalls sets the "completed_calls" field.
func (_u *CampaignUpdate) SetCompletedCalls(v int) *CampaignUpdate {
	_u.mutation.ResetCompletedCalls()
	_u.mutation.SetCompletedCalls(v)
	return _u
}

// SetNillableCompletedCalls sets the "completed_calls" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableCompletedCalls(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetCompletedCalls(*v)
	}
	return _u
}

// AddCompletedCalls adds value to the "completed_calls" field.
func (_u *CampaignUpdate) AddCompletedCalls(v int) *CampaignUpdate {
	_u.mutation.AddCompletedCalls(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdate) SetUpdatedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(campaign.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(campaign.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstCallTime(); ok {
		_spec.SetField(campaign.FieldFirstCallTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastCallTime(); ok {
		_spec.SetField(campaign.FieldLastCallTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromPhone(); ok {
		_spec.SetField(campaign.FieldFromPhone, field.TypeString, value)
	}
	if _u.mutation.FromPhoneCleared() {
		_spec.ClearField(campaign.FieldFromPhone, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(campaign.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(campaign.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalContacts(); ok {
		_spec.SetField(campaign.FieldTotalContacts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalContacts(); ok {
		_spec.AddField(campaign.FieldTotalContacts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedCalls(); ok {
		_spec.SetField(campaign.FieldCompletedCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCalls(); ok {
		_spec.AddField(campaign.FieldCompletedCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *CampaignUpdateOne) SetAgentID(v string) *CampaignUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableAgentID(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdateOne) SetName(v string) *CampaignUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableName(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *CampaignUpdateOne) SetTimezone(v string) *CampaignUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableTimezone(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetFirstCallTime sets the "first_call_time" field.
func (_u *CampaignUpdateOne) SetFirstCallTime(v string) *CampaignUpdateOne {
	_u.mutation.SetFirstCallTime(v)
	return _u
}

// SetNillableFirstCallTime sets the "first_call_time" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableFirstCallTime(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetFirstCallTime(*v)
	}
	return _u
}

// SetLastCallTime sets the "last_call_time" field.
func (_u *CampaignUpdateOne) SetLastCallTime(v string) *CampaignUpdateOne {
	_u.mutation.SetLastCallTime(v)
	return _u
}

// SetNillableLastCallTime sets the "last_call_time" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableLastCallTime(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetLastCallTime(*v)
	}
	return _u
}

// SetFromPhone sets the "from_phone" field.
func (_u *CampaignUpdateOne) SetFromPhone(v string) *CampaignUpdateOne {
	_u.mutation.SetFromPhone(v)
	return _u
}

// SetNillableFromPhone sets the "from_phone" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableFromPhone(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetFromPhone(*v)
	}
	return _u
}

// ClearFromPhone clears the value of the "from_phone" field.
func (_u *CampaignUpdateOne) ClearFromPhone() *CampaignUpdateOne {
	_u.mutation.ClearFromPhone()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *CampaignUpdateOne) SetStartDate(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStartDate(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *CampaignUpdateOne) ClearStartDate() *CampaignUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetTotalContacts sets the "total_contacts" field.
func (_u *CampaignUpdateOne) SetTotalContacts(v int) *CampaignUpdateOne {
	_u.mutation.ResetTotalContacts()
	_u.mutation.SetTotalContacts(v)
	return _u
}

// SetNillableTotalContacts sets the "total_contacts" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableTotalContacts(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetTotalContacts(*v)
	}
	return _u
}

// AddTotalContacts adds value to the "total_contacts" field.
func (_u *CampaignUpdateOne) AddTotalContacts(v int) *CampaignUpdateOne {
	_u.mutation.AddTotalContacts(v)
	return _u
}

// SetCompletedCalls sets the "completed_calls" field.
func (_u *CampaignUpdateOne) SetCompletedCalls(v int) *CampaignUpdateOne {
	_u.mutation.ResetCompletedCalls()
	_u.mutation.SetCompletedCalls(v)
	return _u
}

// SetNillableCompletedCalls sets the "completed_calls" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableCompletedCalls(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetCompletedCalls(*v)
	}
	return _u
}

// AddCompletedCalls adds value to the "completed_calls" field.
func (_u *CampaignUpdateOne) AddCompletedCalls(v int) *CampaignUpdateOne {
	_u.mutation.AddCompletedCalls(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdateOne) SetUpdatedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(campaign.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(campaign.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstCallTime(); ok {
		_spec.SetField(campaign.FieldFirstCallTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastCallTime(); ok {
		_spec.SetField(campaign.FieldLastCallTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromPhone(); ok {
		_spec.SetField(campaign.FieldFromPhone, field.TypeString, value)
	}
	if _u.mutation.FromPhoneCleared() {
		_spec.ClearField(campaign.FieldFromPhone, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(campaign.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(campaign.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalContacts(); ok {
		_spec.SetField(campaign.FieldTotalContacts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalContacts(); ok {
		_spec.AddField(campaign.FieldTotalContacts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedCalls(); ok {
		_spec.SetField(campaign.FieldCompletedCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCalls(); ok {
		_spec.AddField(campaign.FieldCompletedCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
