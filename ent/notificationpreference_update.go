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
	"github.com/ringstack/ringstack/ent/notificationpreference"
	"github.com/ringstack/ringstack/ent/predicate"
)

// NotificationPreferenceUpdate is the builder for updating NotificationPreference entities.
type NotificationPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationPreferenceMutation
}

// Where appends a list predicates to the NotificationPreferenceUpdate builder.
func (_u *NotificationPreferenceUpdate) Where(ps ...predicate.NotificationPreference) *NotificationPreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLowCreditAlerts sets the "low_credit_alerts" field.
func (_u *NotificationPreferenceUpdate) SetLowCreditAlerts(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetLowCreditAlerts(v)
	return _u
}

// SetNillableLowCreditAlerts sets the "low_credit_alerts" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableLowCreditAlerts(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetLowCreditAlerts(*v)
	}
	return _u
}

// SetCreditsAddedEmails sets the "credits_added_emails" field.
func (_u *NotificationPreferenceUpdate) SetCreditsAddedEmails(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetCreditsAddedEmails(v)
	return _u
}

// SetNillableCreditsAddedEmails sets the "credits_added_emails" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableCreditsAddedEmails(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetCreditsAddedEmails(*v)
	}
	return _u
}

// SetCampaignSummaryEmails sets the "campaign_summary_emails" field.
func (_u *NotificationPreferenceUpdate) SetCampaignSummaryEmails(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetCampaignSummaryEmails(v)
	return _u
}

// SetNillableCampaignSummaryEmails sets the "campaign_summary_emails" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableCampaignSummaryEmails(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetCampaignSummaryEmails(*v)
	}
	return _u
}

// SetEmailVerificationReminders sets the "email_verification_reminders" field.
func (_u *NotificationPreferenceUpdate) SetEmailVerificationReminders(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailVerificationReminders(v)
	return _u
}

// SetNillableEmailVerificationReminders sets the "email_verification_reminders" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailVerificationReminders(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailVerificationReminders(*v)
	}
	return _u
}

// SetMarketingEmails sets the "marketing_emails" field.
func (_u *NotificationPreferenceUpdate) SetMarketingEmails(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetMarketingEmails(v)
	return _u
}

// SetNillableMarketingEmails sets the "marketing_emails" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableMarketingEmails(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetMarketingEmails(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPreferenceUpdate) SetUpdatedAt(v time.Time) *NotificationPreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NotificationPreferenceMutation object of the builder.
func (_u *NotificationPreferenceUpdate) Mutation() *NotificationPreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationPreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NotificationPreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(notificationpreference.Table, notificationpreference.Columns, sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LowCreditAlerts(); ok {
		_spec.SetField(notificationpreference.FieldLowCreditAlerts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreditsAddedEmails(); ok {
		_spec.SetField(notificationpreference.FieldCreditsAddedEmails, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CampaignSummaryEmails(); ok {
		_spec.SetField(notificationpreference.FieldCampaignSummaryEmails, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailVerificationReminders(); ok {
		_spec.SetField(notificationpreference.FieldEmailVerificationReminders, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarketingEmails(); ok {
		_spec.SetField(notificationpreference.FieldMarketingEmails, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationPreferenceUpdateOne is the builder for updating a single NotificationPreference entity.
type NotificationPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationPreferenceMutation
}

// SetLowCreditAlerts sets the "low_credit_alerts" field.
func (_u *NotificationPreferenceUpdateOne) SetLowCreditAlerts(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetLowCreditAlerts(v)
	return _u
}

// SetNillableLowCreditAlerts sets the "low_credit_alerts" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableLowCreditAlerts(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetLowCreditAlerts(*v)
	}
	return _u
}

// SetCreditsAddedEmails sets the "credits_added_emails" field.
func (_u *NotificationPreferenceUpdateOne) SetCreditsAddedEmails(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetCreditsAddedEmails(v)
	return _u
}

// SetNillableCreditsAddedEmails sets the "credits_added_emails" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableCreditsAddedEmails(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetCreditsAddedEmails(*v)
	}
	return _u
}

// SetCampaignSummaryEmails sets the "campaign_summary_emails" field.
func (_u *NotificationPreferenceUpdateOne) SetCampaignSummaryEmails(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetCampaignSummaryEmails(v)
	return _u
}

// SetNillableCampaignSummaryEmails sets the "campaign_summary_emails" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableCampaignSummaryEmails(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetCampaignSummaryEmails(*v)
	}
	return _u
}

// SetEmailVerificationReminders sets the "email_verification_reminders" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailVerificationReminders(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailVerificationReminders(v)
	return _u
}

// SetNillableEmailVerificationReminders sets the "email_verification_reminders" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailVerificationReminders(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailVerificationReminders(*v)
	}
	return _u
}

// SetMarketingEmails sets the "marketing_emails" field.
func (_u *NotificationPreferenceUpdateOne) SetMarketingEmails(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetMarketingEmails(v)
	return _u
}

// SetNillableMarketingEmails sets the "marketing_emails" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableMarketingEmails(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetMarketingEmails(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPreferenceUpdateOne) SetUpdatedAt(v time.Time) *NotificationPreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NotificationPreferenceMutation object of the builder.
func (_u *NotificationPreferenceUpdateOne) Mutation() *NotificationPreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationPreferenceUpdate builder.
func (_u *NotificationPreferenceUpdateOne) Where(ps ...predicate.NotificationPreference) *NotificationPreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationPreferenceUpdateOne) Select(field string, fields ...string) *NotificationPreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationPreference entity.
func (_u *NotificationPreferenceUpdateOne) Save(ctx context.Context) (*NotificationPreference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPreferenceUpdateOne) SaveX(ctx context.Context) *NotificationPreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *NotificationPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *NotificationPreference, err error) {
	_spec := sqlgraph.NewUpdateSpec(notificationpreference.Table, notificationpreference.Columns, sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationpreference.FieldID)
		for _, f := range fields {
			if !notificationpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationpreference.FieldID {
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
	if value, ok := _u.mutation.LowCreditAlerts(); ok {
		_spec.SetField(notificationpreference.FieldLowCreditAlerts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreditsAddedEmails(); ok {
		_spec.SetField(notificationpreference.FieldCreditsAddedEmails, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CampaignSummaryEmails(); ok {
		_spec.SetField(notificationpreference.FieldCampaignSummaryEmails, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailVerificationReminders(); ok {
		_spec.SetField(notificationpreference.FieldEmailVerificationReminders, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarketingEmails(); ok {
		_spec.SetField(notificationpreference.FieldMarketingEmails, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &NotificationPreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
