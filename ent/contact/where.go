// Code generated by ent, DO NOT EDIT.

package contact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ringstack/ringstack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldTenantID, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPhone, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmail, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompany, v))
}

// LeadSource applies equality check predicate on the "lead_source" field. It's identical to LeadSourceEQ.
func LeadSource(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLeadSource, v))
}

// IsAutoCreated applies equality check predicate on the "is_auto_created" field. It's identical to IsAutoCreatedEQ.
func IsAutoCreated(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldIsAutoCreated, v))
}

// AutoCreationSource applies equality check predicate on the "auto_creation_source" field. It's identical to AutoCreationSourceEQ.
func AutoCreationSource(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAutoCreationSource, v))
}

// AutoCreatedFromCallID applies equality check predicate on the "auto_created_from_call_id" field. It's identical to AutoCreatedFromCallIDEQ.
func AutoCreatedFromCallID(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAutoCreatedFromCallID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldTenantID, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldPhone, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEmail, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldCompany, v))
}

// LeadSourceEQ applies the EQ predicate on the "lead_source" field.
func LeadSourceEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLeadSource, v))
}

// LeadSourceNEQ applies the NEQ predicate on the "lead_source" field.
func LeadSourceNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldLeadSource, v))
}

// LeadSourceIn applies the In predicate on the "lead_source" field.
func LeadSourceIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldLeadSource, vs...))
}

// LeadSourceNotIn applies the NotIn predicate on the "lead_source" field.
func LeadSourceNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldLeadSource, vs...))
}

// LeadSourceGT applies the GT predicate on the "lead_source" field.
func LeadSourceGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldLeadSource, v))
}

// LeadSourceGTE applies the GTE predicate on the "lead_source" field.
func LeadSourceGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldLeadSource, v))
}

// LeadSourceLT applies the LT predicate on the "lead_source" field.
func LeadSourceLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldLeadSource, v))
}

// LeadSourceLTE applies the LTE predicate on the "lead_source" field.
func LeadSourceLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldLeadSource, v))
}

// LeadSourceContains applies the Contains predicate on the "lead_source" field.
func LeadSourceContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldLeadSource, v))
}

// LeadSourceHasPrefix applies the HasPrefix predicate on the "lead_source" field.
func LeadSourceHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldLeadSource, v))
}

// LeadSourceHasSuffix applies the HasSuffix predicate on the "lead_source" field.
func LeadSourceHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldLeadSource, v))
}

// LeadSourceIsNil applies the IsNil predicate on the "lead_source" field.
func LeadSourceIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldLeadSource))
}

// LeadSourceNotNil applies the NotNil predicate on the "lead_source" field.
func LeadSourceNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldLeadSource))
}

// LeadSourceEqualFold applies the EqualFold predicate on the "lead_source" field.
func LeadSourceEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldLeadSource, v))
}

// LeadSourceContainsFold applies the ContainsFold predicate on the "lead_source" field.
func LeadSourceContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldLeadSource, v))
}

// EntryTypeEQ applies the EQ predicate on the "entry_type" field.
func EntryTypeEQ(v EntryType) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEntryType, v))
}

// EntryTypeNEQ applies the NEQ predicate on the "entry_type" field.
func EntryTypeNEQ(v EntryType) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEntryType, v))
}

// EntryTypeIn applies the In predicate on the "entry_type" field.
func EntryTypeIn(vs ...EntryType) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEntryType, vs...))
}

// EntryTypeNotIn applies the NotIn predicate on the "entry_type" field.
func EntryTypeNotIn(vs ...EntryType) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEntryType, vs...))
}

// IsAutoCreatedEQ applies the EQ predicate on the "is_auto_created" field.
func IsAutoCreatedEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldIsAutoCreated, v))
}

// IsAutoCreatedNEQ applies the NEQ predicate on the "is_auto_created" field.
func IsAutoCreatedNEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldIsAutoCreated, v))
}

// AutoCreationSourceEQ applies the EQ predicate on the "auto_creation_source" field.
func AutoCreationSourceEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAutoCreationSource, v))
}

// AutoCreationSourceNEQ applies the NEQ predicate on the "auto_creation_source" field.
func AutoCreationSourceNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldAutoCreationSource, v))
}

// AutoCreationSourceIn applies the In predicate on the "auto_creation_source" field.
func AutoCreationSourceIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldAutoCreationSource, vs...))
}

// AutoCreationSourceNotIn applies the NotIn predicate on the "auto_creation_source" field.
func AutoCreationSourceNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldAutoCreationSource, vs...))
}

// AutoCreationSourceGT applies the GT predicate on the "auto_creation_source" field.
func AutoCreationSourceGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldAutoCreationSource, v))
}

// AutoCreationSourceGTE applies the GTE predicate on the "auto_creation_source" field.
func AutoCreationSourceGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldAutoCreationSource, v))
}

// AutoCreationSourceLT applies the LT predicate on the "auto_creation_source" field.
func AutoCreationSourceLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldAutoCreationSource, v))
}

// AutoCreationSourceLTE applies the LTE predicate on the "auto_creation_source" field.
func AutoCreationSourceLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldAutoCreationSource, v))
}

// AutoCreationSourceContains applies the Contains predicate on the "auto_creation_source" field.
func AutoCreationSourceContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldAutoCreationSource, v))
}

// AutoCreationSourceHasPrefix applies the HasPrefix predicate on the "auto_creation_source" field.
func AutoCreationSourceHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldAutoCreationSource, v))
}

// AutoCreationSourceHasSuffix applies the HasSuffix predicate on the "auto_creation_source" field.
func AutoCreationSourceHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldAutoCreationSource, v))
}

// AutoCreationSourceIsNil applies the IsNil predicate on the "auto_creation_source" field.
func AutoCreationSourceIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldAutoCreationSource))
}

// AutoCreationSourceNotNil applies the NotNil predicate on the "auto_creation_source" field.
func AutoCreationSourceNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldAutoCreationSource))
}

// AutoCreationSourceEqualFold applies the EqualFold predicate on the "auto_creation_source" field.
func AutoCreationSourceEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldAutoCreationSource, v))
}

// AutoCreationSourceContainsFold applies the ContainsFold predicate on the "auto_creation_source" field.
func AutoCreationSourceContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldAutoCreationSource, v))
}

// AutoCreatedFromCallIDEQ applies the EQ predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDNEQ applies the NEQ predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDIn applies the In predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldAutoCreatedFromCallID, vs...))
}

// AutoCreatedFromCallIDNotIn applies the NotIn predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldAutoCreatedFromCallID, vs...))
}

// AutoCreatedFromCallIDGT applies the GT predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDGTE applies the GTE predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDLT applies the LT predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDLTE applies the LTE predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDContains applies the Contains predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDHasPrefix applies the HasPrefix predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDHasSuffix applies the HasSuffix predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDIsNil applies the IsNil predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldAutoCreatedFromCallID))
}

// AutoCreatedFromCallIDNotNil applies the NotNil predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldAutoCreatedFromCallID))
}

// AutoCreatedFromCallIDEqualFold applies the EqualFold predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldAutoCreatedFromCallID, v))
}

// AutoCreatedFromCallIDContainsFold applies the ContainsFold predicate on the "auto_created_from_call_id" field.
func AutoCreatedFromCallIDContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldAutoCreatedFromCallID, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldTags))
}

// CustomFieldsIsNil applies the IsNil predicate on the "custom_fields" field.
func CustomFieldsIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldCustomFields))
}

// CustomFieldsNotNil applies the NotNil predicate on the "custom_fields" field.
func CustomFieldsNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldCustomFields))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.NotPredicates(p))
}
