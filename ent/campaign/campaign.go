// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "campaign_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldFirstCallTime holds the string denoting the first_call_time field in the database.
	FieldFirstCallTime = "first_call_time"
	// FieldLastCallTime holds the string denoting the last_call_time field in the database.
	FieldLastCallTime = "last_call_time"
	// FieldFromPhone holds the string denoting the from_phone field in the database.
	FieldFromPhone = "from_phone"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldTotalContacts holds the string denoting the total_contacts field in the database.
	FieldTotalContacts = "total_contacts"
	// FieldCompletedCalls holds the string denoting the completed_calls field in the database.
	FieldCompletedCalls = "completed_calls"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the campaign in the database.
	Table = "call_campaigns"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldAgentID,
	FieldName,
	FieldStatus,
	FieldTimezone,
	FieldFirstCallTime,
	FieldLastCallTime,
	FieldFromPhone,
	FieldStartDate,
	FieldTotalContacts,
	FieldCompletedCalls,
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
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultFirstCallTime holds the default value on creation for the "first_call_time" field.
	DefaultFirstCallTime string
	// DefaultLastCallTime holds the default value on creation for the "last_call_time" field.
	DefaultLastCallTime string
	// DefaultTotalContacts holds the default value on creation for the "total_contacts" field.
	DefaultTotalContacts int
	// DefaultCompletedCalls holds the default value on creation for the "completed_calls" field.
	DefaultCompletedCalls int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByFirstCallTime orders the results by the first_call_time field.
func ByFirstCallTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstCallTime, opts...).ToFunc()
}

// ByLastCallTime orders the results by the last_call_time field.
func ByLastCallTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCallTime, opts...).ToFunc()
}

// ByFromPhone orders the results by the from_phone field.
func ByFromPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromPhone, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByTotalContacts orders the results by the total_contacts field.
func ByTotalContacts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalContacts, opts...).ToFunc()
}

// ByCompletedCalls orders the results by the completed_calls field.
func ByCompletedCalls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedCalls, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
