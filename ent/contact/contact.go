// Code generated by ent, DO NOT EDIT.

package contact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contact type in the database.
	Label = "contact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "contact_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldLeadSource holds the string denoting the lead_source field in the database.
	FieldLeadSource = "lead_source"
	// FieldEntryType holds the string denoting the entry_type field in the database.
	FieldEntryType = "entry_type"
	// FieldIsAutoCreated holds the string denoting the is_auto_created field in the database.
	FieldIsAutoCreated = "is_auto_created"
	// FieldAutoCreationSource holds the string denoting the auto_creation_source field in the database.
	FieldAutoCreationSource = "auto_creation_source"
	// FieldAutoCreatedFromCallID holds the string denoting the auto_created_from_call_id field in the database.
	FieldAutoCreatedFromCallID = "auto_created_from_call_id"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldCustomFields holds the string denoting the custom_fields field in the database.
	FieldCustomFields = "custom_fields"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the contact in the database.
	Table = "contacts"
)

// Columns holds all SQL columns for contact fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldPhone,
	FieldName,
	FieldEmail,
	FieldCompany,
	FieldLeadSource,
	FieldEntryType,
	FieldIsAutoCreated,
	FieldAutoCreationSource,
	FieldAutoCreatedFromCallID,
	FieldTags,
	FieldCustomFields,
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
	// DefaultIsAutoCreated holds the default value on creation for the "is_auto_created" field.
	DefaultIsAutoCreated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// EntryType defines the type for the "entry_type" enum field.
type EntryType string

// EntryTypeManual is the default value of the EntryType enum.
const DefaultEntryType = EntryTypeManual

// EntryType values.
const (
	EntryTypeManual      EntryType = "manual"
	EntryTypeImported    EntryType = "imported"
	EntryTypeAutoCreated EntryType = "auto_created"
)

func (et EntryType) String() string {
	return string(et)
}

// EntryTypeValidator is a validator for the "entry_type" field enum values. It is called by the builders before save.
func EntryTypeValidator(et EntryType) error {
	switch et {
	case EntryTypeManual, EntryTypeImported, EntryTypeAutoCreated:
		return nil
	default:
		return fmt.Errorf("contact: invalid enum value for entry_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the Contact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByLeadSource orders the results by the lead_source field.
func ByLeadSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadSource, opts...).ToFunc()
}

// ByEntryType orders the results by the entry_type field.
func ByEntryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryType, opts...).ToFunc()
}

// ByIsAutoCreated orders the results by the is_auto_created field.
func ByIsAutoCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAutoCreated, opts...).ToFunc()
}

// ByAutoCreationSource orders the results by the auto_creation_source field.
func ByAutoCreationSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoCreationSource, opts...).ToFunc()
}

// ByAutoCreatedFromCallID orders the results by the auto_created_from_call_id field.
func ByAutoCreatedFromCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoCreatedFromCallID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
