// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/notificationpreference"
)

// NotificationPreferenceCreate is the builder for creating a NotificationPreference entity.
type NotificationPreferenceCreate struct {
	config
	mutation *NotificationPreferenceMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *NotificationPreferenceCreate) SetTenantID(v string) *NotificationPreferenceCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetLowCreditAlerts sets the "low_credit_alerts" field.
func (_c *NotificationPreferenceCreate) SetLowCreditAlerts(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetLowCreditAlerts(v)
	return _c
}

// SetNillableLowCreditAlerts sets the "low_credit_alerts" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableLowCreditAlerts(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetLowCreditAlerts(*v)
	}
	return _c
}

// SetCreditsAddedEmails sets the "credits_added_emails" field.
func (_c *NotificationPreferenceCreate) SetCreditsAddedEmails(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetCreditsAddedEmails(v)
	return _c
}

// SetNillableCreditsAddedEmails sets the "credits_added_emails" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableCreditsAddedEmails(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetCreditsAddedEmails(*v)
	}
	return _c
}

// SetCampaignSummaryEmails sets the "campaign_summary_emails" field.
func (_c *NotificationPreferenceCreate) SetCampaignSummaryEmails(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetCampaignSummaryEmails(v)
	return _c
}

// SetNillableCampaignSummaryEmails sets the "campaign_summary_emails" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableCampaignSummaryEmails(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetCampaignSummaryEmails(*v)
	}
	return _c
}

// SetEmailVerificationReminders sets the "email_verification_reminders" field.
func (_c *NotificationPreferenceCreate) SetEmailVerificationReminders(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailVerificationReminders(v)
	return _c
}

// SetNillableEmailVerificationReminders sets the "email_verification_reminders" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailVerificationReminders(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailVerificationReminders(*v)
	}
	return _c
}

// SetMarketingEmails sets the "marketing_emails" field.
func (_c *NotificationPreferenceCreate) SetMarketingEmails(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetMarketingEmails(v)
	return _c
}

// SetNillableMarketingEmails sets the "marketing_emails" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableMarketingEmails(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetMarketingEmails(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationPreferenceCreate) SetCreatedAt(v time.Time) *NotificationPreferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableCreatedAt(v *time.Time) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NotificationPreferenceCreate) SetUpdatedAt(v time.Time) *NotificationPreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableUpdatedAt(v *time.Time) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationPreferenceCreate) SetID(v string) *NotificationPreferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the NotificationPreferenceMutation object of the builder.
func (_c *NotificationPreferenceCreate) Mutation() *NotificationPreferenceMutation {
	return _c.mutation
}

// Save creates the NotificationPreference in the database.
func (_c *NotificationPreferenceCreate) Save(ctx context.Context) (*NotificationPreference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationPreferenceCreate) SaveX(ctx context.Context) *NotificationPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationPreferenceCreate) defaults() {
	if _, ok := _c.mutation.LowCreditAlerts(); !ok {
		v := notificationpreference.DefaultLowCreditAlerts
		_c.mutation.SetLowCreditAlerts(v)
	}
	if _, ok := _c.mutation.CreditsAddedEmails(); !ok {
		v := notificationpreference.DefaultCreditsAddedEmails
		_c.mutation.SetCreditsAddedEmails(v)
	}
	if _, ok := _c.mutation.CampaignSummaryEmails(); !ok {
		v := notificationpreference.DefaultCampaignSummaryEmails
		_c.mutation.SetCampaignSummaryEmails(v)
	}
	if _, ok := _c.mutation.EmailVerificationReminders(); !ok {
		v := notificationpreference.DefaultEmailVerificationReminders
		_c.mutation.SetEmailVerificationReminders(v)
	}
	if _, ok := _c.mutation.MarketingEmails(); !ok {
		v := notificationpreference.DefaultMarketingEmails
		_c.mutation.SetMarketingEmails(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationpreference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notificationpreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationPreferenceCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "NotificationPreference.tenant_id"`)}
	}
	if _, ok := _c.mutation.LowCreditAlerts(); !ok {
		return &ValidationError{Name: "low_credit_alerts", err: errors.New(`ent: missing required field "NotificationPreference.low_credit_alerts"`)}
	}
	if _, ok := _c.mutation.CreditsAddedEmails(); !ok {
		return &ValidationError{Name: "credits_added_emails", err: errors.New(`ent: missing required field "NotificationPreference.credits_added_emails"`)}
	}
	if _, ok := _c.mutation.CampaignSummaryEmails(); !ok {
		return &ValidationError{Name: "campaign_summary_emails", err: errors.New(`ent: missing required field "NotificationPreference.campaign_summary_emails"`)}
	}
	if _, ok := _c.mutation.EmailVerificationReminders(); !ok {
		return &ValidationError{Name: "email_verification_reminders", err: errors.New(`ent: missing required field "NotificationPreference.email_verification_reminders"`)}
	}
	if _, ok := _c.mutation.MarketingEmails(); !ok {
		return &ValidationError{Name: "marketing_emails", err: errors.New(`ent: missing required field "NotificationPreference.marketing_emails"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationPreference.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NotificationPreference.updated_at"`)}
	}
	return nil
}

func (_c *NotificationPreferenceCreate) sqlSave(ctx context.Context) (*NotificationPreference, error) {
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
			return nil, fmt.Errorf("unexpected NotificationPreference.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationPreferenceCreate) createSpec() (*NotificationPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationPreference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationpreference.Table, sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(notificationpreference.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.LowCreditAlerts(); ok {
		_spec.SetField(notificationpreference.FieldLowCreditAlerts, field.TypeBool, value)
		_node.LowCreditAlerts = value
	}
	if value, ok := _c.mutation.CreditsAddedEmails(); ok {
		_spec.SetField(notificationpreference.FieldCreditsAddedEmails, field.TypeBool, value)
		_node.CreditsAddedEmails = value
	}
	if value, ok := _c.mutation.CampaignSummaryEmails(); ok {
		_spec.SetField(notificationpreference.FieldCampaignSummaryEmails, field.TypeBool, value)
		_node.CampaignSummaryEmails = value
	}
	if value, ok := _c.mutation.EmailVerificationReminders(); ok {
		_spec.SetField(notificationpreference.FieldEmailVerificationReminders, field.TypeBool, value)
		_node.EmailVerificationReminders = value
	}
	if value, ok := _c.mutation.MarketingEmails(); ok {
		_spec.SetField(notificationpreference.FieldMarketingEmails, field.TypeBool, value)
		_node.MarketingEmails = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationpreference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// NotificationPreferenceCreateBulk is the builder for creating many NotificationPreference entities in bulk.
type NotificationPreferenceCreateBulk struct {
	config
	err      error
	builders []*NotificationPreferenceCreate
}

// Save creates the NotificationPreference entities in the database.
func (_c *NotificationPreferenceCreateBulk) Save(ctx context.Context) ([]*NotificationPreference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationPreference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationPreferenceMutation)
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
func (_c *NotificationPreferenceCreateBulk) SaveX(ctx context.Context) []*NotificationPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
