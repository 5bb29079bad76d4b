// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tenant type in the database.
	Label = "tenant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tenant_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldEmailVerified holds the string denoting the email_verified field in the database.
	FieldEmailVerified = "email_verified"
	// FieldCredits holds the string denoting the credits field in the database.
	FieldCredits = "credits"
	// FieldConcurrentCallsLimit holds the string denoting the concurrent_calls_limit field in the database.
	FieldConcurrentCallsLimit = "concurrent_calls_limit"
	// FieldIndividualPromptID holds the string denoting the individual_prompt_id field in the database.
	FieldIndividualPromptID = "individual_prompt_id"
	// FieldCompletePromptID holds the string denoting the complete_prompt_id field in the database.
	FieldCompletePromptID = "complete_prompt_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tenant in the database.
	Table = "tenants"
)

// Columns holds all SQL columns for tenant fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldEmailVerified,
	FieldCredits,
	FieldConcurrentCallsLimit,
	FieldIndividualPromptID,
	FieldCompletePromptID,
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
	// DefaultEmailVerified holds the default value on creation for the "email_verified" field.
	DefaultEmailVerified bool
	// DefaultCredits holds the default value on creation for the "credits" field.
	DefaultCredits int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Tenant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByEmailVerified orders the results by the email_verified field.
func ByEmailVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailVerified, opts...).ToFunc()
}

// ByCredits orders the results by the credits field.
func ByCredits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredits, opts...).ToFunc()
}

// ByConcurrentCallsLimit orders the results by the concurrent_calls_limit field.
func ByConcurrentCallsLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcurrentCallsLimit, opts...).ToFunc()
}

// ByIndividualPromptID orders the results by the individual_prompt_id field.
func ByIndividualPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndividualPromptID, opts...).ToFunc()
}

// ByCompletePromptID orders the results by the complete_prompt_id field.
func ByCompletePromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletePromptID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
