// Code generated by ent, DO NOT EDIT.

package notificationpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the notificationpreference type in the database.
	Label = "notification_preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "preference_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldLowCreditAlerts holds the string denoting the low_credit_alerts field in the database.
	FieldLowCreditAlerts = "low_credit_alerts"
	// FieldCreditsAddedEmails holds the string denoting the credits_added_emails field in the database.
	FieldCreditsAddedEmails = "credits_added_emails"
	// FieldCampaignSummaryEmails holds the string denoting the campaign_summary_emails field in the database.
	FieldCampaignSummaryEmails = "campaign_summary_emails"
	// FieldEmailVerificationReminders holds the string denoting the email_verification_reminders field in the database.
	FieldEmailVerificationReminders = "email_verification_reminders"
	// FieldMarketingEmails holds the string denoting the marketing_emails field in the database.
	FieldMarketingEmails = "marketing_emails"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the notificationpreference in the database.
	Table = "notification_preferences"
)

// Columns holds all SQL columns for notificationpreference fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldLowCreditAlerts,
	FieldCreditsAddedEmails,
	FieldCampaignSummaryEmails,
	FieldEmailVerificationReminders,
	FieldMarketingEmails,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLowCreditAlerts holds the default value on creation for the "low_credit_alerts" field.
	DefaultLowCreditAlerts bool
	// DefaultCreditsAddedEmails holds the default value on creation for the "credits_added_emails" field.
	DefaultCreditsAddedEmails bool
	// DefaultCampaignSummaryEmails holds the default value on creation for the "campaign_summary_emails" field.
	DefaultCampaignSummaryEmails bool
	// DefaultEmailVerificationReminders holds the default value on creation for the "email_verification_reminders" field.
	DefaultEmailVerificationReminders bool
	// DefaultMarketingEmails holds the default value on creation for the "marketing_emails" field.
	DefaultMarketingEmails bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the NotificationPreference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByLowCreditAlerts orders the results by the low_credit_alerts field.
func ByLowCreditAlerts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowCreditAlerts, opts...).ToFunc()
}

// ByCreditsAddedEmails orders the results by the credits_added_emails field.
func ByCreditsAddedEmails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsAddedEmails, opts...).ToFunc()
}

// ByCampaignSummaryEmails orders the results by the campaign_summary_emails field.
func ByCampaignSummaryEmails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignSummaryEmails, opts...).ToFunc()
}

// ByEmailVerificationReminders orders the results by the email_verification_reminders field.
func ByEmailVerificationReminders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailVerificationReminders, opts...).ToFunc()
}

// ByMarketingEmails orders the results by the marketing_emails field.
func ByMarketingEmails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketingEmails, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
