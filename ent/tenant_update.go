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
	"github.com/ringstack/ringstack/ent/tenant"
)

// TenantUpdate is the builder for updating Tenant entities.
type TenantUpdate struct {
	config
	hooks    []Hook
	mutation *TenantMutation
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdate) Where(ps ...predicate.Tenant) *TenantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TenantUpdate) SetName(v string) *TenantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableName(v *string) *TenantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TenantUpdate) SetEmail(v string) *TenantUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableEmail(v *string) *TenantUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *TenantUpdate) SetEmailVerified(v bool) *TenantUpdate {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableEmailVerified(v *bool) *TenantUpdate {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetCredits sets the "credits" field.
func (_u *TenantUpdate) SetCredits(v int) *TenantUpdate {
	_u.mutation.ResetCredits()
	_u.mutation.SetCredits(v)
	return _u
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableCredits(v *int) *TenantUpdate {
	if v != nil {
		_u.SetCredits(*v)
	}
	return _u
}

// AddCredits adds value to the "credits" field.
func (_u *TenantUpdate) AddCredits(v int) *TenantUpdate {
	_u.mutation.AddCredits(v)
	return _u
}

// SetConcurrentCallsLimit sets the "concurrent_calls_limit" field.
func (_u *TenantUpdate) SetConcurrentCallsLimit(v int) *TenantUpdate {
	_u.mutation.ResetConcurrentCallsLimit()
	_u.mutation.SetConcurrentCallsLimit(v)
	return _u
}

// SetNillableConcurrentCallsLimit sets the "concurrent_calls_limit" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableConcurrentCallsLimit(v *int) *TenantUpdate {
	if v != nil {
		_u.SetConcurrentCallsLimit(*v)
	}
	return _u
}

// AddConcurrentCallsLimit adds value to the "concurrent_calls_limit" field.
func (_u *TenantUpdate) AddConcurrentCallsLimit(v int) *TenantUpdate {
	_u.mutation.AddConcurrentCallsLimit(v)
	return _u
}

// ClearConcurrentCallsLimit clears the value of the "concurrent_calls_limit" field.
func (_u *TenantUpdate) ClearConcurrentCallsLimit() *TenantUpdate {
	_u.mutation.ClearConcurrentCallsLimit()
	return _u
}

// SetIndividualPromptID sets the "individual_prompt_id" field.
func (_u *TenantUpdate) SetIndividualPromptID(v string) *TenantUpdate {
	_u.mutation.SetIndividualPromptID(v)
	return _u
}

// SetNillableIndividualPromptID sets the "individual_prompt_id" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableIndividualPromptID(v *string) *TenantUpdate {
	if v != nil {
		_u.SetIndividualPromptID(*v)
	}
	return _u
}

// ClearIndividualPromptID clears the value of the "individual_prompt_id" field.
func (_u *TenantUpdate) ClearIndividualPromptID() *TenantUpdate {
	_u.mutation.ClearIndividualPromptID()
	return _u
}

// SetCompletePromptID sets the "complete_prompt_id" field.
func (_u *TenantUpdate) SetCompletePromptID(v string) *TenantUpdate {
	_u.mutation.SetCompletePromptID(v)
	return _u
}

// SetNillableCompletePromptID sets the "complete_prompt_id" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableCompletePromptID(v *string) *TenantUpdate {
	if v != nil {
		_u.SetCompletePromptID(*v)
	}
	return _u
}

// ClearCompletePromptID clears the value of the "complete_prompt_id" field.
func (_u *TenantUpdate) ClearCompletePromptID() *TenantUpdate {
	_u.mutation.ClearCompletePromptID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantUpdate) SetUpdatedAt(v time.Time) *TenantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdate) Mutation() *TenantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TenantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(tenant.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(tenant.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Credits(); ok {
		_spec.SetField(tenant.FieldCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCredits(); ok {
		_spec.AddField(tenant.FieldCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConcurrentCallsLimit(); ok {
		_spec.SetField(tenant.FieldConcurrentCallsLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrentCallsLimit(); ok {
		_spec.AddField(tenant.FieldConcurrentCallsLimit, field.TypeInt, value)
	}
	if _u.mutation.ConcurrentCallsLimitCleared() {
		_spec.ClearField(tenant.FieldConcurrentCallsLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.IndividualPromptID(); ok {
		_spec.SetField(tenant.FieldIndividualPromptID, field.TypeString, value)
	}
	if _u.mutation.IndividualPromptIDCleared() {
		_spec.ClearField(tenant.FieldIndividualPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletePromptID(); ok {
		_spec.SetField(tenant.FieldCompletePromptID, field.TypeString, value)
	}
	if _u.mutation.CompletePromptIDCleared() {
		_spec.ClearField(tenant.FieldCompletePromptID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantUpdateOne is the builder for updating a single Tenant entity.
type TenantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantMutation
}

// SetName sets the "name" field.
func (_u *TenantUpdateOne) SetName(v string) *TenantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableName(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TenantUpdateOne) SetEmail(v string) *TenantUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableEmail(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *TenantUpdateOne) SetEmailVerified(v bool) *TenantUpdateOne {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableEmailVerified(v *bool) *TenantUpdateOne {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetCredits sets the "credits" field.
func (_u *TenantUpdateOne) SetCredits(v int) *TenantUpdateOne {
	_u.mutation.ResetCredits()
	_u.mutation.SetCredits(v)
	return _u
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableCredits(v *int) *TenantUpdateOne {
	if v != nil {
		_u.SetCredits(*v)
	}
	return _u
}

// AddCredits adds value to the "credits" field.
func (_u *TenantUpdateOne) AddCredits(v int) *TenantUpdateOne {
	_u.mutation.AddCredits(v)
	return _u
}

// SetConcurrentCallsLimit sets the "concurrent_calls_limit" field.
func (_u *TenantUpdateOne) SetConcurrentCallsLimit(v int) *TenantUpdateOne {
	_u.mutation.ResetConcurrentCallsLimit()
	_u.mutation.SetConcurrentCallsLimit(v)
	return _u
}

// SetNillableConcurrentCallsLimit sets the "concurrent_calls_limit" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableConcurrentCallsLimit(v *int) *TenantUpdateOne {
	if v != nil {
		_u.SetConcurrentCallsLimit(*v)
	}
	return _u
}

// AddConcurrentCallsLimit adds value to the "concurrent_calls_limit" field.
func (_u *TenantUpdateOne) AddConcurrentCallsLimit(v int) *TenantUpdateOne {
	_u.mutation.AddConcurrentCallsLimit(v)
	return _u
}

// ClearConcurrentCallsLimit clears the value of the "concurrent_calls_limit" field.
func (_u *TenantUpdateOne) ClearConcurrentCallsLimit() *TenantUpdateOne {
	_u.mutation.ClearConcurrentCallsLimit()
	return _u
}

// SetIndividualPromptID sets the "individual_prompt_id" field.
func (_u *TenantUpdateOne) SetIndividualPromptID(v string) *TenantUpdateOne {
	_u.mutation.SetIndividualPromptID(v)
	return _u
}

// SetNillableIndividualPromptID sets the "individual_prompt_id" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableIndividualPromptID(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetIndividualPromptID(*v)
	}
	return _u
}

// ClearIndividualPromptID clears the value of the "individual_prompt_id" field.
func (_u *TenantUpdateOne) ClearIndividualPromptID() *TenantUpdateOne {
	_u.mutation.ClearIndividualPromptID()
	return _u
}

// SetCompletePromptID sets the "complete_prompt_id" field.
func (_u *TenantUpdateOne) SetCompletePromptID(v string) *TenantUpdateOne {
	_u.mutation.SetCompletePromptID(v)
	return _u
}

// SetNillableCompletePromptID sets the "complete_prompt_id" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableCompletePromptID(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetCompletePromptID(*v)
	}
	return _u
}

// ClearCompletePromptID clears the value of the "complete_prompt_id" field.
func (_u *TenantUpdateOne) ClearCompletePromptID() *TenantUpdateOne {
	_u.mutation.ClearCompletePromptID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantUpdateOne) SetUpdatedAt(v time.Time) *TenantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdateOne) Mutation() *TenantMutation {
	return _u.mutation
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdateOne) Where(ps ...predicate.Tenant) *TenantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantUpdateOne) Select(field string, fields ...string) *TenantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tenant entity.
func (_u *TenantUpdateOne) Save(ctx context.Context) (*Tenant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdateOne) SaveX(ctx context.Context) *Tenant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TenantUpdateOne) sqlSave(ctx context.Context) (_node *Tenant, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tenant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenant.FieldID)
		for _, f := range fields {
			if !tenant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenant.FieldID {
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
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(tenant.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(tenant.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Credits(); ok {
		_spec.SetField(tenant.FieldCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCredits(); ok {
		_spec.AddField(tenant.FieldCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConcurrentCallsLimit(); ok {
		_spec.SetField(tenant.FieldConcurrentCallsLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrentCallsLimit(); ok {
		_spec.AddField(tenant.FieldConcurrentCallsLimit, field.TypeInt, value)
	}
	if _u.mutation.ConcurrentCallsLimitCleared() {
		_spec.ClearField(tenant.FieldConcurrentCallsLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.IndividualPromptID(); ok {
		_spec.SetField(tenant.FieldIndividualPromptID, field.TypeString, value)
	}
	if _u.mutation.IndividualPromptIDCleared() {
		_spec.ClearField(tenant.FieldIndividualPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletePromptID(); ok {
		_spec.SetField(tenant.FieldCompletePromptID, field.TypeString, value)
	}
	if _u.mutation.CompletePromptIDCleared() {
		_spec.ClearField(tenant.FieldCompletePromptID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Tenant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
