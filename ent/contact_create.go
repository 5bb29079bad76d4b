// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/contact"
)

// ContactCreate is the builder for creating a Contact entity.
type ContactCreate struct {
	config
	mutation *ContactMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ContactCreate) SetTenantID(v string) *ContactCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ContactCreate) SetPhone(v string) *ContactCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ContactCreate) SetName(v string) *ContactCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ContactCreate) SetNillableName(v *string) *ContactCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ContactCreate) SetEmail(v string) *ContactCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEmail(v *string) *ContactCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *ContactCreate) SetCompany(v string) *ContactCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCompany(v *string) *ContactCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetLeadSource sets the "lead_source" field.
func (_c *ContactCreate) SetLeadSource(v string) *ContactCreate {
	_c.mutation.SetLeadSource(v)
	return _c
}

// SetNillableLeadSource sets the "lead_source" field if the given value is not nil.
func (_c *ContactCreate) SetNillableLeadSource(v *string) *ContactCreate {
	if v != nil {
		_c.SetLeadSource(*v)
	}
	return _c
}

// SetEntryType sets the "entry_type" field.
func (_c *ContactCreate) SetEntryType(v contact.EntryType) *ContactCreate {
	_c.mutation.SetEntryType(v)
	return _c
}

// SetNillableEntryType sets the "entry_type" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEntryType(v *contact.EntryType) *ContactCreate {
	if v != nil {
		_c.SetEntryType(*v)
	}
	return _c
}

// SetIsAutoCreated sets the "is_auto_created" field.
func (_c *ContactCreate) SetIsAutoCreated(v bool) *ContactCreate {
	_c.mutation.SetIsAutoCreated(v)
	return _c
}

// SetNillableIsAutoCreated sets the "is_auto_created" field if the given value is not nil.
func (_c *ContactCreate) SetNillableIsAutoCreated(v *bool) *ContactCreate {
	if v != nil {
		_c.SetIsAutoCreated(*v)
	}
	return _c
}

// SetAutoCreationSource sets the "auto_creation_source" field.
func (_c *ContactCreate) SetAutoCreationSource(v string) *ContactCreate {
	_c.mutation.SetAutoCreationSource(v)
	return _c
}

// SetNillableAutoCreationSource sets the "auto_creation_source" field if the given value is not nil.
func (_c *ContactCreate) SetNillableAutoCreationSource(v *string) *ContactCreate {
	if v != nil {
		_c.SetAutoCreationSource(*v)
	}
	return _c
}

// SetAutoCreatedFromCallID sets the "auto_created_from_call_id" field.
func (_c *ContactCreate) SetAutoCreatedFromCallID(v string) *ContactCreate {
	_c.mutation.SetAutoCreatedFromCallID(v)
	return _c
}

// SetNillableAutoCreatedFromCallID sets the "auto_created_from_call_id" field if the given value is not nil.
func (_c *ContactCreate) SetNillableAutoCreatedFromCallID(v *string) *ContactCreate {
	if v != nil {
		_c.SetAutoCreatedFromCallID(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ContactCreate) SetTags(v []string) *ContactCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetCustomFields sets the "custom_fields" field.
func (_c *ContactCreate) SetCustomFields(v map[string]interface{}) *ContactCreate {
	_c.mutation.SetCustomFields(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContactCreate) SetCreatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCreatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContactCreate) SetUpdatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableUpdatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContactCreate) SetID(v string) *ContactCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContactMutation object of the builder.
func (_c *ContactCreate) Mutation() *ContactMutation {
	return _c.mutation
}

// Save creates the Contact in the database.
func (_c *ContactCreate) Save(ctx context.Context) (*Contact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactCreate) SaveX(ctx context.Context) *Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactCreate) defaults() {
	if _, ok := _c.mutation.EntryType(); !ok {
		v := contact.DefaultEntryType
		_c.mutation.SetEntryType(v)
	}
	if _, ok := _c.mutation.IsAutoCreated(); !ok {
		v := contact.DefaultIsAutoCreated
		_c.mutation.SetIsAutoCreated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Contact.tenant_id"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Contact.phone"`)}
	}
	if _, ok := _c.mutation.EntryType(); !ok {
		return &ValidationError{Name: "entry_type", err: errors.New(`ent: missing required field "Contact.entry_type"`)}
	}
	if v, ok := _c.mutation.EntryType(); ok {
		if err := contact.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "Contact.entry_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAutoCreated(); !ok {
		return &ValidationError{Name: "is_auto_created", err: errors.New(`ent: missing required field "Contact.is_auto_created"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contact.updated_at"`)}
	}
	return nil
}

func (_c *ContactCreate) sqlSave(ctx context.Context) (*Contact, error) {
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
			return nil, fmt.Errorf("unexpected Contact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContactCreate) createSpec() (*Contact, *sqlgraph.CreateSpec) {
	var (
		_node = &Contact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contact.Table, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(contact.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
		_node.Name = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
		_node.Company = &value
	}
	if value, ok := _c.mutation.LeadSource(); ok {
		_spec.SetField(contact.FieldLeadSource, field.TypeString, value)
		_node.LeadSource = value
	}
	if value, ok := _c.mutation.EntryType(); ok {
		_spec.SetField(contact.FieldEntryType, field.TypeEnum, value)
		_node.EntryType = value
	}
	if value, ok := _c.mutation.IsAutoCreated(); ok {
		_spec.SetField(contact.FieldIsAutoCreated, field.TypeBool, value)
		_node.IsAutoCreated = value
	}
	if value, ok := _c.mutation.AutoCreationSource(); ok {
		_spec.SetField(contact.FieldAutoCreationSource, field.TypeString, value)
		_node.AutoCreationSource = &value
	}
	if value, ok := _c.mutation.AutoCreatedFromCallID(); ok {
		_spec.SetField(contact.FieldAutoCreatedFromCallID, field.TypeString, value)
		_node.AutoCreatedFromCallID = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(contact.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.CustomFields(); ok {
		_spec.SetField(contact.FieldCustomFields, field.TypeJSON, value)
		_node.CustomFields = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ContactCreateBulk is the builder for creating many Contact entities in bulk.
type ContactCreateBulk struct {
	config
	err      error
	builders []*ContactCreate
}

// Save creates the Contact entities in the database.
func (_c *ContactCreateBulk) Save(ctx context.Context) ([]*Contact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactMutation)
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
func (_c *ContactCreateBulk) SaveX(ctx context.Context) []*Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
