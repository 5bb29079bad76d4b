// Code generated by ent, DO NOT EDIT.

package notificationpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ringstack/ringstack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldTenantID, v))
}

// LowCreditAlerts applies equality check predicate on the "low_credit_alerts" field. It's identical to LowCreditAlertsEQ.
func LowCreditAlerts(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldLowCreditAlerts, v))
}

// CreditsAddedEmails applies equality check predicate on the "credits_added_emails" field. It's identical to CreditsAddedEmailsEQ.
func CreditsAddedEmails(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCreditsAddedEmails, v))
}

// CampaignSummaryEmails applies equality check predicate on the "campaign_summary_emails" field. It's identical to CampaignSummaryEmailsEQ.
func CampaignSummaryEmails(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCampaignSummaryEmails, v))
}

// EmailVerificationReminders applies equality check predicate on the "email_verification_reminders" field. It's identical to EmailVerificationRemindersEQ.
func EmailVerificationReminders(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailVerificationReminders, v))
}

// MarketingEmails applies equality check predicate on the "marketing_emails" field. It's identical to MarketingEmailsEQ.
func MarketingEmails(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldMarketingEmails, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContainsFold(FieldTenantID, v))
}

// LowCreditAlertsEQ applies the EQ predicate on the "low_credit_alerts" field.
func LowCreditAlertsEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldLowCreditAlerts, v))
}

// LowCreditAlertsNEQ applies the NEQ predicate on the "low_credit_alerts" field.
func LowCreditAlertsNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldLowCreditAlerts, v))
}

// CreditsAddedEmailsEQ applies the EQ predicate on the "credits_added_emails" field.
func CreditsAddedEmailsEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCreditsAddedEmails, v))
}

// CreditsAddedEmailsNEQ applies the NEQ predicate on the "credits_added_emails" field.
func CreditsAddedEmailsNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldCreditsAddedEmails, v))
}

// CampaignSummaryEmailsEQ applies the EQ predicate on the "campaign_summary_emails" field.
func CampaignSummaryEmailsEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCampaignSummaryEmails, v))
}

// CampaignSummaryEmailsNEQ applies the NEQ predicate on the "campaign_summary_emails" field.
func CampaignSummaryEmailsNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldCampaignSummaryEmails, v))
}

// EmailVerificationRemindersEQ applies the EQ predicate on the "email_verification_reminders" field.
func EmailVerificationRemindersEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailVerificationReminders, v))
}

// EmailVerificationRemindersNEQ applies the NEQ predicate on the "email_verification_reminders" field.
func EmailVerificationRemindersNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailVerificationReminders, v))
}

// MarketingEmailsEQ applies the EQ predicate on the "marketing_emails" field.
func MarketingEmailsEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldMarketingEmails, v))
}

// MarketingEmailsNEQ applies the NEQ predicate on the "marketing_emails" field.
func MarketingEmailsNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldMarketingEmails, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationPreference) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationPreference) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationPreference) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.NotPredicates(p))
}
