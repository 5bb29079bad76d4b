// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/phonenumber"
	"github.com/ringstack/ringstack/ent/predicate"
)

// PhoneNumberUpdate is the builder for updating PhoneNumber entities.
type PhoneNumberUpdate struct {
	config
	hooks    []Hook
	mutation *PhoneNumberMutation
}

// Where appends a list predicates to the PhoneNumberUpdate builder.
func (_u *PhoneNumberUpdate) Where(ps ...predicate.PhoneNumber) *PhoneNumberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PhoneNumberUpdate) SetPhone(v string) *PhoneNumberUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PhoneNumberUpdate) SetNillablePhone(v *string) *PhoneNumberUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *PhoneNumberUpdate) SetAssignedAgentID(v string) *PhoneNumberUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *PhoneNumberUpdate) SetNillableAssignedAgentID(v *string) *PhoneNumberUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *PhoneNumberUpdate) ClearAssignedAgentID() *PhoneNumberUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PhoneNumberUpdate) SetIsActive(v bool) *PhoneNumberUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PhoneNumberUpdate) SetNillableIsActive(v *bool) *PhoneNumberUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the PhoneNumberMutation object of the builder.
func (_u *PhoneNumberUpdate) Mutation() *PhoneNumberMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhoneNumberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhoneNumberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhoneNumberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhoneNumberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PhoneNumberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(phonenumber.Table, phonenumber.Columns, sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(phonenumber.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(phonenumber.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(phonenumber.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(phonenumber.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phonenumber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhoneNumberUpdateOne is the builder for updating a single PhoneNumber entity.
type PhoneNumberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhoneNumberMutation
}

// SetPhone sets the "phone" field.
func (_u *PhoneNumberUpdateOne) SetPhone(v string) *PhoneNumberUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PhoneNumberUpdateOne) SetNillablePhone(v *string) *PhoneNumberUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *PhoneNumberUpdateOne) SetAssignedAgentID(v string) *PhoneNumberUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *PhoneNumberUpdateOne) SetNillableAssignedAgentID(v *string) *PhoneNumberUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *PhoneNumberUpdateOne) ClearAssignedAgentID() *PhoneNumberUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PhoneNumberUpdateOne) SetIsActive(v bool) *PhoneNumberUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PhoneNumberUpdateOne) SetNillableIsActive(v *bool) *PhoneNumberUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the PhoneNumberMutation object of the builder.
func (_u *PhoneNumberUpdateOne) Mutation() *PhoneNumberMutation {
	return _u.mutation
}

// Where appends a list predicates to the PhoneNumberUpdate builder.
func (_u *PhoneNumberUpdateOne) Where(ps ...predicate.PhoneNumber) *PhoneNumberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhoneNumberUpdateOne) Select(field string, fields ...string) *PhoneNumberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PhoneNumber entity.
func (_u *PhoneNumberUpdateOne) Save(ctx context.Context) (*PhoneNumber, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhoneNumberUpdateOne) SaveX(ctx context.Context) *PhoneNumber {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhoneNumberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhoneNumberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PhoneNumberUpdateOne) sqlSave(ctx context.Context) (_node *PhoneNumber, err error) {
	_spec := sqlgraph.NewUpdateSpec(phonenumber.Table, phonenumber.Columns, sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhoneNumber.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, phonenumber.FieldID)
		for _, f := range fields {
			if !phonenumber.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != phonenumber.FieldID {
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
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(phonenumber.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(phonenumber.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(phonenumber.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(phonenumber.FieldIsActive, field.TypeBool, value)
	}
	_node = &PhoneNumber{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phonenumber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
