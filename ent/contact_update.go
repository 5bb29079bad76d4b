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
	"github.com/ringstack/ringstack/ent/contact"
	"github.com/ringstack/ringstack/ent/predicate"
)

// ContactUpdate is the builder for updating Contact entities.
type ContactUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdate) Where(ps ...predicate.Contact) *ContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ContactUpdate) SetPhone(v string) *ContactUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ContactUpdate) SetNillablePhone(v *string) *ContactUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdate) SetName(v string) *ContactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ContactUpdate) ClearName() *ContactUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactUpdate) SetEmail(v string) *ContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEmail(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ContactUpdate) ClearEmail() *ContactUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ContactUpdate) SetCompany(v string) *ContactUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableCompany(v *string) *ContactUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ContactUpdate) ClearCompany() *ContactUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetLeadSource sets the "lead_source" field.
func (_u *ContactUpdate) SetLeadSource(v string) *ContactUpdate {
	_u.mutation.SetLeadSource(v)
	return _u
}

// SetNillableLeadSource sets the "lead_source" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableLeadSource(v *string) *ContactUpdate {
	if v != nil {
		_u.SetLeadSource(*v)
	}
	return _u
}

// ClearLeadSource clears the value of the "lead_source" field.
func (_u *ContactUpdate) ClearLeadSource() *ContactUpdate {
	_u.mutation.ClearLeadSource()
	return _u
}

// SetEntryType sets the "entry_type" field.
func (_u *ContactUpdate) SetEntryType(v contact.EntryType) *ContactUpdate {
	_u.mutation.SetEntryType(v)
	return _u
}

// SetNillableEntryType sets the "entry_type" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEntryType(v *contact.EntryType) *ContactUpdate {
	if v != nil {
		_u.SetEntryType(*v)
	}
	return _u
}

// SetIsAutoCreated sets the "is_auto_created" field.
func (_u *ContactUpdate) SetIsAutoCreated(v bool) *ContactUpdate {
	_u.mutation.SetIsAutoCreated(v)
	return _u
}

// SetNillableIsAutoCreated sets the "is_auto_created" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableIsAutoCreated(v *bool) *ContactUpdate {
	if v != nil {
		_u.SetIsAutoCreated(*v)
	}
	return _u
}

// SetAutoCreationSource sets the "auto_creation_source" field.
func (_u *ContactUpdate) SetAutoCreationSource(v string) *ContactUpdate {
	_u.mutation.SetAutoCreationSource(v)
	return _u
}

// SetNillableAutoCreationSource sets the "auto_creation_source" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableAutoCreationSource(v *string) *ContactUpdate {
	if v != nil {
		_u.SetAutoCreationSource(*v)
	}
	return _u
}

// ClearAutoCreationSource clears the value of the "auto_creation_source" field.
func (_u *ContactUpdate) ClearAutoCreationSource() *ContactUpdate {
	_u.mutation.ClearAutoCreationSource()
	return _u
}

// SetAutoCreatedFromCallID sets the "auto_created_from_call_id" field.
func (_u *ContactUpdate) SetAutoCreatedFromCallID(v string) *ContactUpdate {
	_u.mutation.SetAutoCreatedFromCallID(v)
	return _u
}

// SetNillableAutoCreatedFromCallID sets the "auto_created_from_call_id" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableAutoCreatedFromCallID(v *string) *ContactUpdate {
	if v != nil {
		_u.SetAutoCreatedFromCallID(*v)
	}
	return _u
}

// ClearAutoCreatedFromCallID clears the value of the "auto_created_from_call_id" field.
func (_u *ContactUpdate) ClearAutoCreatedFromCallID() *ContactUpdate {
	_u.mutation.ClearAutoCreatedFromCallID()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContactUpdate) SetTags(v []string) *ContactUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContactUpdate) AppendTags(v []string) *ContactUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ContactUpdate) ClearTags() *ContactUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *ContactUpdate) SetCustomFields(v map[string]interface{}) *ContactUpdate {
	_u.mutation.SetCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *ContactUpdate) ClearCustomFields() *ContactUpdate {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdate) SetUpdatedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdate) Mutation() *ContactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdate) check() error {
	if v, ok := _u.mutation.EntryType(); ok {
		if err := contact.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "Contact.entry_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(contact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(contact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.LeadSource(); ok {
		_spec.SetField(contact.FieldLeadSource, field.TypeString, value)
	}
	if _u.mutation.LeadSourceCleared() {
		_spec.ClearField(contact.FieldLeadSource, field.TypeString)
	}
	if value, ok := _u.mutation.EntryType(); ok {
		_spec.SetField(contact.FieldEntryType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsAutoCreated(); ok {
		_spec.SetField(contact.FieldIsAutoCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoCreationSource(); ok {
		_spec.SetField(contact.FieldAutoCreationSource, field.TypeString, value)
	}
	if _u.mutation.AutoCreationSourceCleared() {
		_spec.ClearField(contact.FieldAutoCreationSource, field.TypeString)
	}
	if value, ok := _u.mutation.AutoCreatedFromCallID(); ok {
		_spec.SetField(contact.FieldAutoCreatedFromCallID, field.TypeString, value)
	}
	if _u.mutation.AutoCreatedFromCallIDCleared() {
		_spec.ClearField(contact.FieldAutoCreatedFromCallID, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(contact.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(contact.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(contact.FieldCustomFields, field.TypeJSON, value)
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(contact.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactUpdateOne is the builder for updating a single Contact entity.
type ContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMutation
}

// SetPhone sets the "phone" field.
func (_u *ContactUpdateOne) SetPhone(v string) *ContactUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillablePhone(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdateOne) SetName(v string) *ContactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ContactUpdateOne) ClearName() *ContactUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactUpdateOne) SetEmail(v string) *ContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEmail(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ContactUpdateOne) ClearEmail() *ContactUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ContactUpdateOne) SetCompany(v string) *ContactUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableCompany(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ContactUpdateOne) ClearCompany() *ContactUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetLeadSource sets the "lead_source" field.
func (_u *ContactUpdateOne) SetLeadSource(v string) *ContactUpdateOne {
	_u.mutation.SetLeadSource(v)
	return _u
}

// SetNillableLeadSource sets the "lead_source" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableLeadSource(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetLeadSource(*v)
	}
	return _u
}

// ClearLeadSource clears the value of the "lead_source" field.
func (_u *ContactUpdateOne) ClearLeadSource() *ContactUpdateOne {
	_u.mutation.ClearLeadSource()
	return _u
}

// SetEntryType sets the "entry_type" field.
func (_u *ContactUpdateOne) SetEntryType(v contact.EntryType) *ContactUpdateOne {
	_u.mutation.SetEntryType(v)
	return _u
}

// SetNillableEntryType sets the "entry_type" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEntryType(v *contact.EntryType) *ContactUpdateOne {
	if v != nil {
		_u.SetEntryType(*v)
	}
	return _u
}

// SetIsAutoCreated sets the "is_auto_created" field.
func (_u *ContactUpdateOne) SetIsAutoCreated(v bool) *ContactUpdateOne {
	_u.mutation.SetIsAutoCreated(v)
	return _u
}

// SetNillableIsAutoCreated sets the "is_auto_created" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableIsAutoCreated(v *bool) *ContactUpdateOne {
	if v != nil {
		_u.SetIsAutoCreated(*v)
	}
	return _u
}

// SetAutoCreationSource sets the "auto_creation_source" field.
func (_u *ContactUpdateOne) SetAutoCreationSource(v string) *ContactUpdateOne {
	_u.mutation.SetAutoCreationSource(v)
	return _u
}

// SetNillableAutoCreationSource sets the "auto_creation_source" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableAutoCreationSource(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetAutoCreationSource(*v)
	}
	return _u
}

// ClearAutoCreationSource clears the value of the "auto_creation_source" field.
func (_u *ContactUpdateOne) ClearAutoCreationSource() *ContactUpdateOne {
	_u.mutation.ClearAutoCreationSource()
	return _u
}

// SetAutoCreatedFromCallID sets the "auto_created_from_call_id" field.
func (_u *ContactUpdateOne) SetAutoCreatedFromCallID(v string) *ContactUpdateOne {
	_u.mutation.SetAutoCreatedFromCallID(v)
	return _u
}

// SetNillableAutoCreatedFromCallID sets the "auto_created_from_call_id" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableAutoCreatedFromCallID(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetAutoCreatedFromCallID(*v)
	}
	return _u
}

// ClearAutoCreatedFromCallID clears the value of the "auto_created_from_call_id" field.
func (_u *ContactUpdateOne) ClearAutoCreatedFromCallID() *ContactUpdateOne {
	_u.mutation.ClearAutoCreatedFromCallID()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContactUpdateOne) SetTags(v []string) *ContactUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContactUpdateOne) AppendTags(v []string) *ContactUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ContactUpdateOne) ClearTags() *ContactUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *ContactUpdateOne) SetCustomFields(v map[string]interface{}) *ContactUpdateOne {
	_u.mutation.SetCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *ContactUpdateOne) ClearCustomFields() *ContactUpdateOne {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdateOne) SetUpdatedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdateOne) Mutation() *ContactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdateOne) Where(ps ...predicate.Contact) *ContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactUpdateOne) Select(field string, fields ...string) *ContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contact entity.
func (_u *ContactUpdateOne) Save(ctx context.Context) (*Contact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdateOne) SaveX(ctx context.Context) *Contact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdateOne) check() error {
	if v, ok := _u.mutation.EntryType(); ok {
		if err := contact.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "Contact.entry_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactUpdateOne) sqlSave(ctx context.Context) (_node *Contact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contact.FieldID)
		for _, f := range fields {
			if !contact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contact.FieldID {
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
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(contact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(contact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.LeadSource(); ok {
		_spec.SetField(contact.FieldLeadSource, field.TypeString, value)
	}
	if _u.mutation.LeadSourceCleared() {
		_spec.ClearField(contact.FieldLeadSource, field.TypeString)
	}
	if value, ok := _u.mutation.EntryType(); ok {
		_spec.SetField(contact.FieldEntryType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsAutoCreated(); ok {
		_spec.SetField(contact.FieldIsAutoCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoCreationSource(); ok {
		_spec.SetField(contact.FieldAutoCreationSource, field.TypeString, value)
	}
	if _u.mutation.AutoCreationSourceCleared() {
		_spec.ClearField(contact.FieldAutoCreationSource, field.TypeString)
	}
	if value, ok := _u.mutation.AutoCreatedFromCallID(); ok {
		_spec.SetField(contact.FieldAutoCreatedFromCallID, field.TypeString, value)
	}
	if _u.mutation.AutoCreatedFromCallIDCleared() {
		_spec.ClearField(contact.FieldAutoCreatedFromCallID, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(contact.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(contact.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(contact.FieldCustomFields, field.TypeJSON, value)
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(contact.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Contact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
