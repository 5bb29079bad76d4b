// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ringstack/ringstack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldEmail, v))
}

// EmailVerified applies equality check predicate on the "email_verified" field. It's identical to EmailVerifiedEQ.
func EmailVerified(v bool) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldEmailVerified, v))
}

// Credits applies equality check predicate on the "credits" field. It's identical to CreditsEQ.
func Credits(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCredits, v))
}

// ConcurrentCallsLimit applies equality check predicate on the "concurrent_calls_limit" field. It's identical to ConcurrentCallsLimitEQ.
func ConcurrentCallsLimit(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldConcurrentCallsLimit, v))
}

// IndividualPromptID applies equality check predicate on the "individual_prompt_id" field. It's identical to IndividualPromptIDEQ.
func IndividualPromptID(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldIndividualPromptID, v))
}

// CompletePromptID applies equality check predicate on the "complete_prompt_id" field. It's identical to CompletePromptIDEQ.
func CompletePromptID(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCompletePromptID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldEmail, v))
}

// EmailVerifiedEQ applies the EQ predicate on the "email_verified" field.
func EmailVerifiedEQ(v bool) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldEmailVerified, v))
}

// EmailVerifiedNEQ applies the NEQ predicate on the "email_verified" field.
func EmailVerifiedNEQ(v bool) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldEmailVerified, v))
}

// CreditsEQ applies the EQ predicate on the "credits" field.
func CreditsEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCredits, v))
}

// CreditsNEQ applies the NEQ predicate on the "credits" field.
func CreditsNEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldCredits, v))
}

// CreditsIn applies the In predicate on the "credits" field.
func CreditsIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldCredits, vs...))
}

// CreditsNotIn applies the NotIn predicate on the "credits" field.
func CreditsNotIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldCredits, vs...))
}

// CreditsGT applies the GT predicate on the "credits" field.
func CreditsGT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldCredits, v))
}

// CreditsGTE applies the GTE predicate on the "credits" field.
func CreditsGTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldCredits, v))
}

// CreditsLT applies the LT predicate on the "credits" field.
func CreditsLT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldCredits, v))
}

// CreditsLTE applies the LTE predicate on the "credits" field.
func CreditsLTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldCredits, v))
}

// ConcurrentCallsLimitEQ applies the EQ predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldConcurrentCallsLimit, v))
}

// ConcurrentCallsLimitNEQ applies the NEQ predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitNEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldConcurrentCallsLimit, v))
}

// ConcurrentCallsLimitIn applies the In predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldConcurrentCallsLimit, vs...))
}

// ConcurrentCallsLimitNotIn applies the NotIn predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitNotIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldConcurrentCallsLimit, vs...))
}

// ConcurrentCallsLimitGT applies the GT predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitGT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldConcurrentCallsLimit, v))
}

// ConcurrentCallsLimitGTE applies the GTE predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitGTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldConcurrentCallsLimit, v))
}

// ConcurrentCallsLimitLT applies the LT predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitLT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldConcurrentCallsLimit, v))
}

// ConcurrentCallsLimitLTE applies the LTE predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitLTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldConcurrentCallsLimit, v))
}

// ConcurrentCallsLimitIsNil applies the IsNil predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldConcurrentCallsLimit))
}

// ConcurrentCallsLimitNotNil applies the NotNil predicate on the "concurrent_calls_limit" field.
func ConcurrentCallsLimitNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldConcurrentCallsLimit))
}

// IndividualPromptIDEQ applies the EQ predicate on the "individual_prompt_id" field.
func IndividualPromptIDEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldIndividualPromptID, v))
}

// IndividualPromptIDNEQ applies the NEQ predicate on the "individual_prompt_id" field.
func IndividualPromptIDNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldIndividualPromptID, v))
}

// IndividualPromptIDIn applies the In predicate on the "individual_prompt_id" field.
func IndividualPromptIDIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldIndividualPromptID, vs...))
}

// IndividualPromptIDNotIn applies the NotIn predicate on the "individual_prompt_id" field.
func IndividualPromptIDNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldIndividualPromptID, vs...))
}

// IndividualPromptIDGT applies the GT predicate on the "individual_prompt_id" field.
func IndividualPromptIDGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldIndividualPromptID, v))
}

// IndividualPromptIDGTE applies the GTE predicate on the "individual_prompt_id" field.
func IndividualPromptIDGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldIndividualPromptID, v))
}

// IndividualPromptIDLT applies the LT predicate on the "individual_prompt_id" field.
func IndividualPromptIDLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldIndividualPromptID, v))
}

// IndividualPromptIDLTE applies the LTE predicate on the "individual_prompt_id" field.
func IndividualPromptIDLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldIndividualPromptID, v))
}

// IndividualPromptIDContains applies the Contains predicate on the "individual_prompt_id" field.
func IndividualPromptIDContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldIndividualPromptID, v))
}

// IndividualPromptIDHasPrefix applies the HasPrefix predicate on the "individual_prompt_id" field.
func IndividualPromptIDHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldIndividualPromptID, v))
}

// IndividualPromptIDHasSuffix applies the HasSuffix predicate on the "individual_prompt_id" field.
func IndividualPromptIDHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldIndividualPromptID, v))
}

// IndividualPromptIDIsNil applies the IsNil predicate on the "individual_prompt_id" field.
func IndividualPromptIDIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldIndividualPromptID))
}

// IndividualPromptIDNotNil applies the NotNil predicate on the "individual_prompt_id" field.
func IndividualPromptIDNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldIndividualPromptID))
}

// IndividualPromptIDEqualFold applies the EqualFold predicate on the "individual_prompt_id" field.
func IndividualPromptIDEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldIndividualPromptID, v))
}

// IndividualPromptIDContainsFold applies the ContainsFold predicate on the "individual_prompt_id" field.
func IndividualPromptIDContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldIndividualPromptID, v))
}

// CompletePromptIDEQ applies the EQ predicate on the "complete_prompt_id" field.
func CompletePromptIDEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCompletePromptID, v))
}

// CompletePromptIDNEQ applies the NEQ predicate on the "complete_prompt_id" field.
func CompletePromptIDNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldCompletePromptID, v))
}

// CompletePromptIDIn applies the In predicate on the "complete_prompt_id" field.
func CompletePromptIDIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldCompletePromptID, vs...))
}

// CompletePromptIDNotIn applies the NotIn predicate on the "complete_prompt_id" field.
func CompletePromptIDNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldCompletePromptID, vs...))
}

// CompletePromptIDGT applies the GT predicate on the "complete_prompt_id" field.
func CompletePromptIDGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldCompletePromptID, v))
}

// CompletePromptIDGTE applies the GTE predicate on the "complete_prompt_id" field.
func CompletePromptIDGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldCompletePromptID, v))
}

// CompletePromptIDLT applies the LT predicate on the "complete_prompt_id" field.
func CompletePromptIDLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldCompletePromptID, v))
}

// CompletePromptIDLTE applies the LTE predicate on the "complete_prompt_id" field.
func CompletePromptIDLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldCompletePromptID, v))
}

// CompletePromptIDContains applies the Contains predicate on the "complete_prompt_id" field.
func CompletePromptIDContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldCompletePromptID, v))
}

// CompletePromptIDHasPrefix applies the HasPrefix predicate on the "complete_prompt_id" field.
func CompletePromptIDHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldCompletePromptID, v))
}

// CompletePromptIDHasSuffix applies the HasSuffix predicate on the "complete_prompt_id" field.
func CompletePromptIDHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldCompletePromptID, v))
}

// CompletePromptIDIsNil applies the IsNil predicate on the "complete_prompt_id" field.
func CompletePromptIDIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldCompletePromptID))
}

// CompletePromptIDNotNil applies the NotNil predicate on the "complete_prompt_id" field.
func CompletePromptIDNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldCompletePromptID))
}

// CompletePromptIDEqualFold applies the EqualFold predicate on the "complete_prompt_id" field.
func CompletePromptIDEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldCompletePromptID, v))
}

// CompletePromptIDContainsFold applies the ContainsFold predicate on the "complete_prompt_id" field.
func CompletePromptIDContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldCompletePromptID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.NotPredicates(p))
}
