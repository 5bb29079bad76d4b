// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ringstack/ringstack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTenantID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldAgentID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTimezone, v))
}

// FirstCallTime applies equality check predicate on the "first_call_time" field. It's identical to FirstCallTimeEQ.
func FirstCallTime(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFirstCallTime, v))
}

// LastCallTime applies equality check predicate on the "last_call_time" field. It's identical to LastCallTimeEQ.
func LastCallTime(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldLastCallTime, v))
}

// FromPhone applies equality check predicate on the "from_phone" field. It's identical to FromPhoneEQ.
func FromPhone(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFromPhone, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStartDate, v))
}

// TotalContacts applies equality check predicate on the "total_contacts" field. It's identical to TotalContactsEQ.
func TotalContacts(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTotalContacts, v))
}

// CompletedCalls applies equality check predicate on the "completed_calls" field. It's identical to CompletedCallsEQ.
func CompletedCalls(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCompletedCalls, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldTenantID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldAgentID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldStatus, vs...))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldTimezone, v))
}

// FirstCallTimeEQ applies the EQ predicate on the "first_call_time" field.
func FirstCallTimeEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFirstCallTime, v))
}

// FirstCallTimeNEQ applies the NEQ predicate on the "first_call_time" field.
func FirstCallTimeNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldFirstCallTime, v))
}

// FirstCallTimeIn applies the In predicate on the "first_call_time" field.
func FirstCallTimeIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldFirstCallTime, vs...))
}

// FirstCallTimeNotIn applies the NotIn predicate on the "first_call_time" field.
func FirstCallTimeNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldFirstCallTime, vs...))
}

// FirstCallTimeGT applies the GT predicate on the "first_call_time" field.
func FirstCallTimeGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldFirstCallTime, v))
}

// FirstCallTimeGTE applies the GTE predicate on the "first_call_time" field.
func FirstCallTimeGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldFirstCallTime, v))
}

// FirstCallTimeLT applies the LT predicate on the "first_call_time" field.
func FirstCallTimeLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldFirstCallTime, v))
}

// FirstCallTimeLTE applies the LTE predicate on the "first_call_time" field.
func FirstCallTimeLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldFirstCallTime, v))
}

// FirstCallTimeContains applies the Contains predicate on the "first_call_time" field.
func FirstCallTimeContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldFirstCallTime, v))
}

// FirstCallTimeHasPrefix applies the HasPrefix predicate on the "first_call_time" field.
func FirstCallTimeHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldFirstCallTime, v))
}

// FirstCallTimeHasSuffix applies the HasSuffix predicate on the "first_call_time" field.
func FirstCallTimeHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldFirstCallTime, v))
}

// FirstCallTimeEqualFold applies the EqualFold predicate on the "first_call_time" field.
func FirstCallTimeEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldFirstCallTime, v))
}

// FirstCallTimeContainsFold applies the ContainsFold predicate on the "first_call_time" field.
func FirstCallTimeContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldFirstCallTime, v))
}

// LastCallTimeEQ applies the EQ predicate on the "last_call_time" field.
func LastCallTimeEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldLastCallTime, v))
}

// LastCallTimeNEQ applies the NEQ predicate on the "last_call_time" field.
func LastCallTimeNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldLastCallTime, v))
}

// LastCallTimeIn applies the In predicate on the "last_call_time" field.
func LastCallTimeIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldLastCallTime, vs...))
}

// LastCallTimeNotIn applies the NotIn predicate on the "last_call_time" field.
func LastCallTimeNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldLastCallTime, vs...))
}

// LastCallTimeGT applies the GT predicate on the "last_call_time" field.
func LastCallTimeGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldLastCallTime, v))
}

// LastCallTimeGTE applies the GTE predicate on the "last_call_time" field.
func LastCallTimeGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldLastCallTime, v))
}

// LastCallTimeLT applies the LT predicate on the "last_call_time" field.
func LastCallTimeLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldLastCallTime, v))
}

// LastCallTimeLTE applies the LTE predicate on the "last_call_time" field.
func LastCallTimeLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldLastCallTime, v))
}

// LastCallTimeContains applies the Contains predicate on the "last_call_time" field.
func LastCallTimeContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldLastCallTime, v))
}

// LastCallTimeHasPrefix applies the HasPrefix predicate on the "last_call_time" field.
func LastCallTimeHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldLastCallTime, v))
}

// LastCallTimeHasSuffix applies the HasSuffix predicate on the "last_call_time" field.
func LastCallTimeHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldLastCallTime, v))
}

// LastCallTimeEqualFold applies the EqualFold predicate on the "last_call_time" field.
func LastCallTimeEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldLastCallTime, v))
}

// LastCallTimeContainsFold applies the ContainsFold predicate on the "last_call_time" field.
func LastCallTimeContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldLastCallTime, v))
}

// FromPhoneEQ applies the EQ predicate on the "from_phone" field.
func FromPhoneEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFromPhone, v))
}

// FromPhoneNEQ applies the NEQ predicate on the "from_phone" field.
func FromPhoneNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldFromPhone, v))
}

// FromPhoneIn applies the In predicate on the "from_phone" field.
func FromPhoneIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldFromPhone, vs...))
}

// FromPhoneNotIn applies the NotIn predicate on the "from_phone" field.
func FromPhoneNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldFromPhone, vs...))
}

// FromPhoneGT applies the GT predicate on the "from_phone" field.
func FromPhoneGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldFromPhone, v))
}

// FromPhoneGTE applies the GTE predicate on the "from_phone" field.
func FromPhoneGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldFromPhone, v))
}

// FromPhoneLT applies the LT predicate on the "from_phone" field.
func FromPhoneLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldFromPhone, v))
}

// FromPhoneLTE applies the LTE predicate on the "from_phone" field.
func FromPhoneLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldFromPhone, v))
}

// FromPhoneContains applies the Contains predicate on the "from_phone" field.
func FromPhoneContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldFromPhone, v))
}

// FromPhoneHasPrefix applies the HasPrefix predicate on the "from_phone" field.
func FromPhoneHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldFromPhone, v))
}

// FromPhoneHasSuffix applies the HasSuffix predicate on the "from_phone" field.
func FromPhoneHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldFromPhone, v))
}

// FromPhoneIsNil applies the IsNil predicate on the "from_phone" field.
func FromPhoneIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldFromPhone))
}

// FromPhoneNotNil applies the NotNil predicate on the "from_phone" field.
func FromPhoneNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldFromPhone))
}

// FromPhoneEqualFold applies the EqualFold predicate on the "from_phone" field.
func FromPhoneEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldFromPhone, v))
}

// FromPhoneContainsFold applies the ContainsFold predicate on the "from_phone" field.
func FromPhoneContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldFromPhone, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldStartDate))
}

// TotalContactsEQ applies the EQ predicate on the "total_contacts" field.
func TotalContactsEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTotalContacts, v))
}

// TotalContactsNEQ applies the NEQ predicate on the "total_contacts" field.
func TotalContactsNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldTotalContacts, v))
}

// TotalContactsIn applies the In predicate on the "total_contacts" field.
func TotalContactsIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldTotalContacts, vs...))
}

// TotalContactsNotIn applies the NotIn predicate on the "total_contacts" field.
func TotalContactsNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldTotalContacts, vs...))
}

// TotalContactsGT applies the GT predicate on the "total_contacts" field.
func TotalContactsGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldTotalContacts, v))
}

// TotalContactsGTE applies the GTE predicate on the "total_contacts" field.
func TotalContactsGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldTotalContacts, v))
}

// TotalContactsLT applies the LT predicate on the "total_contacts" field.
func TotalContactsLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldTotalContacts, v))
}

// TotalContactsLTE applies the LTE predicate on the "total_contacts" field.
func TotalContactsLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldTotalContacts, v))
}

// CompletedCallsEQ applies the EQ predicate on the "completed_calls" field.
func CompletedCallsEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCompletedCalls, v))
}

// CompletedCallsNEQ applies the NEQ predicate on the "completed_calls" field.
func CompletedCallsNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldCompletedCalls, v))
}

// CompletedCallsIn applies the In predicate on the "completed_calls" field.
func CompletedCallsIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldCompletedCalls, vs...))
}

// CompletedCallsNotIn applies the NotIn predicate on the "completed_calls" field.
func CompletedCallsNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldCompletedCalls, vs...))
}

// CompletedCallsGT applies the GT predicate on the "completed_calls" field.
func CompletedCallsGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldCompletedCalls, v))
}

// CompletedCallsGTE applies the GTE predicate on the "completed_calls" field.
func CompletedCallsGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldCompletedCalls, v))
}

// CompletedCallsLT applies the LT predicate on the "completed_calls" field.
func CompletedCallsLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldCompletedCalls, v))
}

// CompletedCallsLTE applies the LTE predicate on the "completed_calls" field.
func CompletedCallsLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldCompletedCalls, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.NotPredicates(p))
}
