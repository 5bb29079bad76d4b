// Code generated by ent, DO NOT EDIT.

package leadanalytics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ringstack/ringstack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldTenantID, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldPhone, v))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCallID, v))
}

// LatestCallID applies equality check predicate on the "latest_call_id" field. It's identical to LatestCallIDEQ.
func LatestCallID(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldLatestCallID, v))
}

// IntentLevel applies equality check predicate on the "intent_level" field. It's identical to IntentLevelEQ.
func IntentLevel(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldIntentLevel, v))
}

// IntentScore applies equality check predicate on the "intent_score" field. It's identical to IntentScoreEQ.
func IntentScore(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldIntentScore, v))
}

// UrgencyLevel applies equality check predicate on the "urgency_level" field. It's identical to UrgencyLevelEQ.
func UrgencyLevel(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldUrgencyLevel, v))
}

// UrgencyScore applies equality check predicate on the "urgency_score" field. It's identical to UrgencyScoreEQ.
func UrgencyScore(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldUrgencyScore, v))
}

// BudgetConstraint applies equality check predicate on the "budget_constraint" field. It's identical to BudgetConstraintEQ.
func BudgetConstraint(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldBudgetConstraint, v))
}

// BudgetScore applies equality check predicate on the "budget_score" field. It's identical to BudgetScoreEQ.
func BudgetScore(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldBudgetScore, v))
}

// FitAlignment applies equality check predicate on the "fit_alignment" field. It's identical to FitAlignmentEQ.
func FitAlignment(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldFitAlignment, v))
}

// FitScore applies equality check predicate on the "fit_score" field. It's identical to FitScoreEQ.
func FitScore(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldFitScore, v))
}

// EngagementHealth applies equality check predicate on the "engagement_health" field. It's identical to EngagementHealthEQ.
func EngagementHealth(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldEngagementHealth, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldEngagementScore, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldTotalScore, v))
}

// ExtractedName applies equality check predicate on the "extracted_name" field. It's identical to ExtractedNameEQ.
func ExtractedName(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldExtractedName, v))
}

// ExtractedEmail applies equality check predicate on the "extracted_email" field. It's identical to ExtractedEmailEQ.
func ExtractedEmail(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldExtractedEmail, v))
}

// ExtractedCompany applies equality check predicate on the "extracted_company" field. It's identical to ExtractedCompanyEQ.
func ExtractedCompany(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldExtractedCompany, v))
}

// SmartNotification applies equality check predicate on the "smart_notification" field. It's identical to SmartNotificationEQ.
func SmartNotification(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldSmartNotification, v))
}

// CtaPricingClicked applies equality check predicate on the "cta_pricing_clicked" field. It's identical to CtaPricingClickedEQ.
func CtaPricingClicked(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaPricingClicked, v))
}

// CtaDemoClicked applies equality check predicate on the "cta_demo_clicked" field. It's identical to CtaDemoClickedEQ.
func CtaDemoClicked(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaDemoClicked, v))
}

// CtaFollowupClicked applies equality check predicate on the "cta_followup_clicked" field. It's identical to CtaFollowupClickedEQ.
func CtaFollowupClicked(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaFollowupClicked, v))
}

// CtaSampleClicked applies equality check predicate on the "cta_sample_clicked" field. It's identical to CtaSampleClickedEQ.
func CtaSampleClicked(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaSampleClicked, v))
}

// CtaEscalatedToHuman applies equality check predicate on the "cta_escalated_to_human" field. It's identical to CtaEscalatedToHumanEQ.
func CtaEscalatedToHuman(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaEscalatedToHuman, v))
}

// DemoBookDatetime applies equality check predicate on the "demo_book_datetime" field. It's identical to DemoBookDatetimeEQ.
func DemoBookDatetime(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldDemoBookDatetime, v))
}

// PreviousCallsAnalyzed applies equality check predicate on the "previous_calls_analyzed" field. It's identical to PreviousCallsAnalyzedEQ.
func PreviousCallsAnalyzed(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldPreviousCallsAnalyzed, v))
}

// AnalysisTimestamp applies equality check predicate on the "analysis_timestamp" field. It's identical to AnalysisTimestampEQ.
func AnalysisTimestamp(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldAnalysisTimestamp, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldTenantID, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldPhone, v))
}

// AnalysisTypeEQ applies the EQ predicate on the "analysis_type" field.
func AnalysisTypeEQ(v AnalysisType) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldAnalysisType, v))
}

// AnalysisTypeNEQ applies the NEQ predicate on the "analysis_type" field.
func AnalysisTypeNEQ(v AnalysisType) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldAnalysisType, v))
}

// AnalysisTypeIn applies the In predicate on the "analysis_type" field.
func AnalysisTypeIn(vs ...AnalysisType) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldAnalysisType, vs...))
}

// AnalysisTypeNotIn applies the NotIn predicate on the "analysis_type" field.
func AnalysisTypeNotIn(vs ...AnalysisType) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldAnalysisType, vs...))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldCallID, vs...))
}

// CallIDGT applies the GT predicate on the "call_id" field.
func CallIDGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldCallID, v))
}

// CallIDGTE applies the GTE predicate on the "call_id" field.
func CallIDGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldCallID, v))
}

// CallIDLT applies the LT predicate on the "call_id" field.
func CallIDLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldCallID, v))
}

// CallIDLTE applies the LTE predicate on the "call_id" field.
func CallIDLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldCallID, v))
}

// CallIDContains applies the Contains predicate on the "call_id" field.
func CallIDContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldCallID, v))
}

// CallIDHasPrefix applies the HasPrefix predicate on the "call_id" field.
func CallIDHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldCallID, v))
}

// CallIDHasSuffix applies the HasSuffix predicate on the "call_id" field.
func CallIDHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldCallID, v))
}

// CallIDIsNil applies the IsNil predicate on the "call_id" field.
func CallIDIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldCallID))
}

// CallIDNotNil applies the NotNil predicate on the "call_id" field.
func CallIDNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldCallID))
}

// CallIDEqualFold applies the EqualFold predicate on the "call_id" field.
func CallIDEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldCallID, v))
}

// CallIDContainsFold applies the ContainsFold predicate on the "call_id" field.
func CallIDContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldCallID, v))
}

// LatestCallIDEQ applies the EQ predicate on the "latest_call_id" field.
func LatestCallIDEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldLatestCallID, v))
}

// LatestCallIDNEQ applies the NEQ predicate on the "latest_call_id" field.
func LatestCallIDNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldLatestCallID, v))
}

// LatestCallIDIn applies the In predicate on the "latest_call_id" field.
func LatestCallIDIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldLatestCallID, vs...))
}

// LatestCallIDNotIn applies the NotIn predicate on the "latest_call_id" field.
func LatestCallIDNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldLatestCallID, vs...))
}

// LatestCallIDGT applies the GT predicate on the "latest_call_id" field.
func LatestCallIDGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldLatestCallID, v))
}

// LatestCallIDGTE applies the GTE predicate on the "latest_call_id" field.
func LatestCallIDGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldLatestCallID, v))
}

// LatestCallIDLT applies the LT predicate on the "latest_call_id" field.
func LatestCallIDLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldLatestCallID, v))
}

// LatestCallIDLTE applies the LTE predicate on the "latest_call_id" field.
func LatestCallIDLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldLatestCallID, v))
}

// LatestCallIDContains applies the Contains predicate on the "latest_call_id" field.
func LatestCallIDContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldLatestCallID, v))
}

// LatestCallIDHasPrefix applies the HasPrefix predicate on the "latest_call_id" field.
func LatestCallIDHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldLatestCallID, v))
}

// LatestCallIDHasSuffix applies the HasSuffix predicate on the "latest_call_id" field.
func LatestCallIDHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldLatestCallID, v))
}

// LatestCallIDIsNil applies the IsNil predicate on the "latest_call_id" field.
func LatestCallIDIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldLatestCallID))
}

// LatestCallIDNotNil applies the NotNil predicate on the "latest_call_id" field.
func LatestCallIDNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldLatestCallID))
}

// LatestCallIDEqualFold applies the EqualFold predicate on the "latest_call_id" field.
func LatestCallIDEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldLatestCallID, v))
}

// LatestCallIDContainsFold applies the ContainsFold predicate on the "latest_call_id" field.
func LatestCallIDContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldLatestCallID, v))
}

// IntentLevelEQ applies the EQ predicate on the "intent_level" field.
func IntentLevelEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldIntentLevel, v))
}

// IntentLevelNEQ applies the NEQ predicate on the "intent_level" field.
func IntentLevelNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldIntentLevel, v))
}

// IntentLevelIn applies the In predicate on the "intent_level" field.
func IntentLevelIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldIntentLevel, vs...))
}

// IntentLevelNotIn applies the NotIn predicate on the "intent_level" field.
func IntentLevelNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldIntentLevel, vs...))
}

// IntentLevelGT applies the GT predicate on the "intent_level" field.
func IntentLevelGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldIntentLevel, v))
}

// IntentLevelGTE applies the GTE predicate on the "intent_level" field.
func IntentLevelGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldIntentLevel, v))
}

// IntentLevelLT applies the LT predicate on the "intent_level" field.
func IntentLevelLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldIntentLevel, v))
}

// IntentLevelLTE applies the LTE predicate on the "intent_level" field.
func IntentLevelLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldIntentLevel, v))
}

// IntentLevelContains applies the Contains predicate on the "intent_level" field.
func IntentLevelContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldIntentLevel, v))
}

// IntentLevelHasPrefix applies the HasPrefix predicate on the "intent_level" field.
func IntentLevelHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldIntentLevel, v))
}

// IntentLevelHasSuffix applies the HasSuffix predicate on the "intent_level" field.
func IntentLevelHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldIntentLevel, v))
}

// IntentLevelIsNil applies the IsNil predicate on the "intent_level" field.
func IntentLevelIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldIntentLevel))
}

// IntentLevelNotNil applies the NotNil predicate on the "intent_level" field.
func IntentLevelNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldIntentLevel))
}

// IntentLevelEqualFold applies the EqualFold predicate on the "intent_level" field.
func IntentLevelEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldIntentLevel, v))
}

// IntentLevelContainsFold applies the ContainsFold predicate on the "intent_level" field.
func IntentLevelContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldIntentLevel, v))
}

// IntentScoreEQ applies the EQ predicate on the "intent_score" field.
func IntentScoreEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldIntentScore, v))
}

// IntentScoreNEQ applies the NEQ predicate on the "intent_score" field.
func IntentScoreNEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldIntentScore, v))
}

// IntentScoreIn applies the In predicate on the "intent_score" field.
func IntentScoreIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldIntentScore, vs...))
}

// IntentScoreNotIn applies the NotIn predicate on the "intent_score" field.
func IntentScoreNotIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldIntentScore, vs...))
}

// IntentScoreGT applies the GT predicate on the "intent_score" field.
func IntentScoreGT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldIntentScore, v))
}

// IntentScoreGTE applies the GTE predicate on the "intent_score" field.
func IntentScoreGTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldIntentScore, v))
}

// IntentScoreLT applies the LT predicate on the "intent_score" field.
func IntentScoreLT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldIntentScore, v))
}

// IntentScoreLTE applies the LTE predicate on the "intent_score" field.
func IntentScoreLTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldIntentScore, v))
}

// UrgencyLevelEQ applies the EQ predicate on the "urgency_level" field.
func UrgencyLevelEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldUrgencyLevel, v))
}

// UrgencyLevelNEQ applies the NEQ predicate on the "urgency_level" field.
func UrgencyLevelNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldUrgencyLevel, v))
}

// UrgencyLevelIn applies the In predicate on the "urgency_level" field.
func UrgencyLevelIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldUrgencyLevel, vs...))
}

// UrgencyLevelNotIn applies the NotIn predicate on the "urgency_level" field.
func UrgencyLevelNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldUrgencyLevel, vs...))
}

// UrgencyLevelGT applies the GT predicate on the "urgency_level" field.
func UrgencyLevelGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldUrgencyLevel, v))
}

// UrgencyLevelGTE applies the GTE predicate on the "urgency_level" field.
func UrgencyLevelGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldUrgencyLevel, v))
}

// UrgencyLevelLT applies the LT predicate on the "urgency_level" field.
func UrgencyLevelLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldUrgencyLevel, v))
}

// UrgencyLevelLTE applies the LTE predicate on the "urgency_level" field.
func UrgencyLevelLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldUrgencyLevel, v))
}

// UrgencyLevelContains applies the Contains predicate on the "urgency_level" field.
func UrgencyLevelContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldUrgencyLevel, v))
}

// UrgencyLevelHasPrefix applies the HasPrefix predicate on the "urgency_level" field.
func UrgencyLevelHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldUrgencyLevel, v))
}

// UrgencyLevelHasSuffix applies the HasSuffix predicate on the "urgency_level" field.
func UrgencyLevelHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldUrgencyLevel, v))
}

// UrgencyLevelIsNil applies the IsNil predicate on the "urgency_level" field.
func UrgencyLevelIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldUrgencyLevel))
}

// UrgencyLevelNotNil applies the NotNil predicate on the "urgency_level" field.
func UrgencyLevelNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldUrgencyLevel))
}

// UrgencyLevelEqualFold applies the EqualFold predicate on the "urgency_level" field.
func UrgencyLevelEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldUrgencyLevel, v))
}

// UrgencyLevelContainsFold applies the ContainsFold predicate on the "urgency_level" field.
func UrgencyLevelContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldUrgencyLevel, v))
}

// UrgencyScoreEQ applies the EQ predicate on the "urgency_score" field.
func UrgencyScoreEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldUrgencyScore, v))
}

// UrgencyScoreNEQ applies the NEQ predicate on the "urgency_score" field.
func UrgencyScoreNEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldUrgencyScore, v))
}

// UrgencyScoreIn applies the In predicate on the "urgency_score" field.
func UrgencyScoreIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldUrgencyScore, vs...))
}

// UrgencyScoreNotIn applies the NotIn predicate on the "urgency_score" field.
func UrgencyScoreNotIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldUrgencyScore, vs...))
}

// UrgencyScoreGT applies the GT predicate on the "urgency_score" field.
func UrgencyScoreGT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldUrgencyScore, v))
}

// UrgencyScoreGTE applies the GTE predicate on the "urgency_score" field.
func UrgencyScoreGTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldUrgencyScore, v))
}

// UrgencyScoreLT applies the LT predicate on the "urgency_score" field.
func UrgencyScoreLT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldUrgencyScore, v))
}

// UrgencyScoreLTE applies the LTE predicate on the "urgency_score" field.
func UrgencyScoreLTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldUrgencyScore, v))
}

// BudgetConstraintEQ applies the EQ predicate on the "budget_constraint" field.
func BudgetConstraintEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldBudgetConstraint, v))
}

// BudgetConstraintNEQ applies the NEQ predicate on the "budget_constraint" field.
func BudgetConstraintNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldBudgetConstraint, v))
}

// BudgetConstraintIn applies the In predicate on the "budget_constraint" field.
func BudgetConstraintIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldBudgetConstraint, vs...))
}

// BudgetConstraintNotIn applies the NotIn predicate on the "budget_constraint" field.
func BudgetConstraintNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldBudgetConstraint, vs...))
}

// BudgetConstraintGT applies the GT predicate on the "budget_constraint" field.
func BudgetConstraintGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldBudgetConstraint, v))
}

// BudgetConstraintGTE applies the GTE predicate on the "budget_constraint" field.
func BudgetConstraintGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldBudgetConstraint, v))
}

// BudgetConstraintLT applies the LT predicate on the "budget_constraint" field.
func BudgetConstraintLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldBudgetConstraint, v))
}

// BudgetConstraintLTE applies the LTE predicate on the "budget_constraint" field.
func BudgetConstraintLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldBudgetConstraint, v))
}

// BudgetConstraintContains applies the Contains predicate on the "budget_constraint" field.
func BudgetConstraintContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldBudgetConstraint, v))
}

// BudgetConstraintHasPrefix applies the HasPrefix predicate on the "budget_constraint" field.
func BudgetConstraintHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldBudgetConstraint, v))
}

// BudgetConstraintHasSuffix applies the HasSuffix predicate on the "budget_constraint" field.
func BudgetConstraintHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldBudgetConstraint, v))
}

// BudgetConstraintIsNil applies the IsNil predicate on the "budget_constraint" field.
func BudgetConstraintIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldBudgetConstraint))
}

// BudgetConstraintNotNil applies the NotNil predicate on the "budget_constraint" field.
func BudgetConstraintNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldBudgetConstraint))
}

// BudgetConstraintEqualFold applies the EqualFold predicate on the "budget_constraint" field.
func BudgetConstraintEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldBudgetConstraint, v))
}

// BudgetConstraintContainsFold applies the ContainsFold predicate on the "budget_constraint" field.
func BudgetConstraintContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldBudgetConstraint, v))
}

// BudgetScoreEQ applies the EQ predicate on the "budget_score" field.
func BudgetScoreEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldBudgetScore, v))
}

// BudgetScoreNEQ applies the NEQ predicate on the "budget_score" field.
func BudgetScoreNEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldBudgetScore, v))
}

// BudgetScoreIn applies the In predicate on the "budget_score" field.
func BudgetScoreIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldBudgetScore, vs...))
}

// BudgetScoreNotIn applies the NotIn predicate on the "budget_score" field.
func BudgetScoreNotIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldBudgetScore, vs...))
}

// BudgetScoreGT applies the GT predicate on the "budget_score" field.
func BudgetScoreGT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldBudgetScore, v))
}

// BudgetScoreGTE applies the GTE predicate on the "budget_score" field.
func BudgetScoreGTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldBudgetScore, v))
}

// BudgetScoreLT applies the LT predicate on the "budget_score" field.
func BudgetScoreLT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldBudgetScore, v))
}

// BudgetScoreLTE applies the LTE predicate on the "budget_score" field.
func BudgetScoreLTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldBudgetScore, v))
}

// FitAlignmentEQ applies the EQ predicate on the "fit_alignment" field.
func FitAlignmentEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldFitAlignment, v))
}

// FitAlignmentNEQ applies the NEQ predicate on the "fit_alignment" field.
func FitAlignmentNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldFitAlignment, v))
}

// FitAlignmentIn applies the In predicate on the "fit_alignment" field.
func FitAlignmentIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldFitAlignment, vs...))
}

// FitAlignmentNotIn applies the NotIn predicate on the "fit_alignment" field.
func FitAlignmentNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldFitAlignment, vs...))
}

// FitAlignmentGT applies the GT predicate on the "fit_alignment" field.
func FitAlignmentGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldFitAlignment, v))
}

// FitAlignmentGTE applies the GTE predicate on the "fit_alignment" field.
func FitAlignmentGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldFitAlignment, v))
}

// FitAlignmentLT applies the LT predicate on the "fit_alignment" field.
func FitAlignmentLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldFitAlignment, v))
}

// FitAlignmentLTE applies the LTE predicate on the "fit_alignment" field.
func FitAlignmentLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldFitAlignment, v))
}

// FitAlignmentContains applies the Contains predicate on the "fit_alignment" field.
func FitAlignmentContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldFitAlignment, v))
}

// FitAlignmentHasPrefix applies the HasPrefix predicate on the "fit_alignment" field.
func FitAlignmentHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldFitAlignment, v))
}

// FitAlignmentHasSuffix applies the HasSuffix predicate on the "fit_alignment" field.
func FitAlignmentHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldFitAlignment, v))
}

// FitAlignmentIsNil applies the IsNil predicate on the "fit_alignment" field.
func FitAlignmentIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldFitAlignment))
}

// FitAlignmentNotNil applies the NotNil predicate on the "fit_alignment" field.
func FitAlignmentNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldFitAlignment))
}

// FitAlignmentEqualFold applies the EqualFold predicate on the "fit_alignment" field.
func FitAlignmentEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldFitAlignment, v))
}

// FitAlignmentContainsFold applies the ContainsFold predicate on the "fit_alignment" field.
func FitAlignmentContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldFitAlignment, v))
}

// FitScoreEQ applies the EQ predicate on the "fit_score" field.
func FitScoreEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldFitScore, v))
}

// FitScoreNEQ applies the NEQ predicate on the "fit_score" field.
func FitScoreNEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldFitScore, v))
}

// FitScoreIn applies the In predicate on the "fit_score" field.
func FitScoreIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldFitScore, vs...))
}

// FitScoreNotIn applies the NotIn predicate on the "fit_score" field.
func FitScoreNotIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldFitScore, vs...))
}

// FitScoreGT applies the GT predicate on the "fit_score" field.
func FitScoreGT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldFitScore, v))
}

// FitScoreGTE applies the GTE predicate on the "fit_score" field.
func FitScoreGTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldFitScore, v))
}

// FitScoreLT applies the LT predicate on the "fit_score" field.
func FitScoreLT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldFitScore, v))
}

// FitScoreLTE applies the LTE predicate on the "fit_score" field.
func FitScoreLTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldFitScore, v))
}

// EngagementHealthEQ applies the EQ predicate on the "engagement_health" field.
func EngagementHealthEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldEngagementHealth, v))
}

// EngagementHealthNEQ applies the NEQ predicate on the "engagement_health" field.
func EngagementHealthNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldEngagementHealth, v))
}

// EngagementHealthIn applies the In predicate on the "engagement_health" field.
func EngagementHealthIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldEngagementHealth, vs...))
}

// EngagementHealthNotIn applies the NotIn predicate on the "engagement_health" field.
func EngagementHealthNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldEngagementHealth, vs...))
}

// EngagementHealthGT applies the GT predicate on the "engagement_health" field.
func EngagementHealthGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldEngagementHealth, v))
}

// EngagementHealthGTE applies the GTE predicate on the "engagement_health" field.
func EngagementHealthGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldEngagementHealth, v))
}

// EngagementHealthLT applies the LT predicate on the "engagement_health" field.
func EngagementHealthLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldEngagementHealth, v))
}

// EngagementHealthLTE applies the LTE predicate on the "engagement_health" field.
func EngagementHealthLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldEngagementHealth, v))
}

// EngagementHealthContains applies the Contains predicate on the "engagement_health" field.
func EngagementHealthContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldEngagementHealth, v))
}

// EngagementHealthHasPrefix applies the HasPrefix predicate on the "engagement_health" field.
func EngagementHealthHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldEngagementHealth, v))
}

// EngagementHealthHasSuffix applies the HasSuffix predicate on the "engagement_health" field.
func EngagementHealthHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldEngagementHealth, v))
}

// EngagementHealthIsNil applies the IsNil predicate on the "engagement_health" field.
func EngagementHealthIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldEngagementHealth))
}

// EngagementHealthNotNil applies the NotNil predicate on the "engagement_health" field.
func EngagementHealthNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldEngagementHealth))
}

// EngagementHealthEqualFold applies the EqualFold predicate on the "engagement_health" field.
func EngagementHealthEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldEngagementHealth, v))
}

// EngagementHealthContainsFold applies the ContainsFold predicate on the "engagement_health" field.
func EngagementHealthContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldEngagementHealth, v))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldEngagementScore, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldTotalScore, v))
}

// LeadStatusTagEQ applies the EQ predicate on the "lead_status_tag" field.
func LeadStatusTagEQ(v LeadStatusTag) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldLeadStatusTag, v))
}

// LeadStatusTagNEQ applies the NEQ predicate on the "lead_status_tag" field.
func LeadStatusTagNEQ(v LeadStatusTag) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldLeadStatusTag, v))
}

// LeadStatusTagIn applies the In predicate on the "lead_status_tag" field.
func LeadStatusTagIn(vs ...LeadStatusTag) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldLeadStatusTag, vs...))
}

// LeadStatusTagNotIn applies the NotIn predicate on the "lead_status_tag" field.
func LeadStatusTagNotIn(vs ...LeadStatusTag) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldLeadStatusTag, vs...))
}

// LeadStatusTagIsNil applies the IsNil predicate on the "lead_status_tag" field.
func LeadStatusTagIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldLeadStatusTag))
}

// LeadStatusTagNotNil applies the NotNil predicate on the "lead_status_tag" field.
func LeadStatusTagNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldLeadStatusTag))
}

// ExtractedNameEQ applies the EQ predicate on the "extracted_name" field.
func ExtractedNameEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldExtractedName, v))
}

// ExtractedNameNEQ applies the NEQ predicate on the "extracted_name" field.
func ExtractedNameNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldExtractedName, v))
}

// ExtractedNameIn applies the In predicate on the "extracted_name" field.
func ExtractedNameIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldExtractedName, vs...))
}

// ExtractedNameNotIn applies the NotIn predicate on the "extracted_name" field.
func ExtractedNameNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldExtractedName, vs...))
}

// ExtractedNameGT applies the GT predicate on the "extracted_name" field.
func ExtractedNameGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldExtractedName, v))
}

// ExtractedNameGTE applies the GTE predicate on the "extracted_name" field.
func ExtractedNameGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldExtractedName, v))
}

// ExtractedNameLT applies the LT predicate on the "extracted_name" field.
func ExtractedNameLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldExtractedName, v))
}

// ExtractedNameLTE applies the LTE predicate on the "extracted_name" field.
func ExtractedNameLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldExtractedName, v))
}

// ExtractedNameContains applies the Contains predicate on the "extracted_name" field.
func ExtractedNameContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldExtractedName, v))
}

// ExtractedNameHasPrefix applies the HasPrefix predicate on the "extracted_name" field.
func ExtractedNameHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldExtractedName, v))
}

// ExtractedNameHasSuffix applies the HasSuffix predicate on the "extracted_name" field.
func ExtractedNameHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldExtractedName, v))
}

// ExtractedNameIsNil applies the IsNil predicate on the "extracted_name" field.
func ExtractedNameIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldExtractedName))
}

// ExtractedNameNotNil applies the NotNil predicate on the "extracted_name" field.
func ExtractedNameNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldExtractedName))
}

// ExtractedNameEqualFold applies the EqualFold predicate on the "extracted_name" field.
func ExtractedNameEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldExtractedName, v))
}

// ExtractedNameContainsFold applies the ContainsFold predicate on the "extracted_name" field.
func ExtractedNameContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldExtractedName, v))
}

// ExtractedEmailEQ applies the EQ predicate on the "extracted_email" field.
func ExtractedEmailEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldExtractedEmail, v))
}

// ExtractedEmailNEQ applies the NEQ predicate on the "extracted_email" field.
func ExtractedEmailNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldExtractedEmail, v))
}

// ExtractedEmailIn applies the In predicate on the "extracted_email" field.
func ExtractedEmailIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldExtractedEmail, vs...))
}

// ExtractedEmailNotIn applies the NotIn predicate on the "extracted_email" field.
func ExtractedEmailNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldExtractedEmail, vs...))
}

// ExtractedEmailGT applies the GT predicate on the "extracted_email" field.
func ExtractedEmailGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldExtractedEmail, v))
}

// ExtractedEmailGTE applies the GTE predicate on the "extracted_email" field.
func ExtractedEmailGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldExtractedEmail, v))
}

// ExtractedEmailLT applies the LT predicate on the "extracted_email" field.
func ExtractedEmailLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldExtractedEmail, v))
}

// ExtractedEmailLTE applies the LTE predicate on the "extracted_email" field.
func ExtractedEmailLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldExtractedEmail, v))
}

// ExtractedEmailContains applies the Contains predicate on the "extracted_email" field.
func ExtractedEmailContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldExtractedEmail, v))
}

// ExtractedEmailHasPrefix applies the HasPrefix predicate on the "extracted_email" field.
func ExtractedEmailHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldExtractedEmail, v))
}

// ExtractedEmailHasSuffix applies the HasSuffix predicate on the "extracted_email" field.
func ExtractedEmailHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldExtractedEmail, v))
}

// ExtractedEmailIsNil applies the IsNil predicate on the "extracted_email" field.
func ExtractedEmailIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldExtractedEmail))
}

// ExtractedEmailNotNil applies the NotNil predicate on the "extracted_email" field.
func ExtractedEmailNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldExtractedEmail))
}

// ExtractedEmailEqualFold applies the EqualFold predicate on the "extracted_email" field.
func ExtractedEmailEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldExtractedEmail, v))
}

// ExtractedEmailContainsFold applies the ContainsFold predicate on the "extracted_email" field.
func ExtractedEmailContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldExtractedEmail, v))
}

// ExtractedCompanyEQ applies the EQ predicate on the "extracted_company" field.
func ExtractedCompanyEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldExtractedCompany, v))
}

// ExtractedCompanyNEQ applies the NEQ predicate on the "extracted_company" field.
func ExtractedCompanyNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldExtractedCompany, v))
}

// ExtractedCompanyIn applies the In predicate on the "extracted_company" field.
func ExtractedCompanyIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldExtractedCompany, vs...))
}

// ExtractedCompanyNotIn applies the NotIn predicate on the "extracted_company" field.
func ExtractedCompanyNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldExtractedCompany, vs...))
}

// ExtractedCompanyGT applies the GT predicate on the "extracted_company" field.
func ExtractedCompanyGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldExtractedCompany, v))
}

// ExtractedCompanyGTE applies the GTE predicate on the "extracted_company" field.
func ExtractedCompanyGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldExtractedCompany, v))
}

// ExtractedCompanyLT applies the LT predicate on the "extracted_company" field.
func ExtractedCompanyLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldExtractedCompany, v))
}

// ExtractedCompanyLTE applies the LTE predicate on the "extracted_company" field.
func ExtractedCompanyLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldExtractedCompany, v))
}

// ExtractedCompanyContains applies the Contains predicate on the "extracted_company" field.
func ExtractedCompanyContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldExtractedCompany, v))
}

// ExtractedCompanyHasPrefix applies the HasPrefix predicate on the "extracted_company" field.
func ExtractedCompanyHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldExtractedCompany, v))
}

// ExtractedCompanyHasSuffix applies the HasSuffix predicate on the "extracted_company" field.
func ExtractedCompanyHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldExtractedCompany, v))
}

// ExtractedCompanyIsNil applies the IsNil predicate on the "extracted_company" field.
func ExtractedCompanyIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldExtractedCompany))
}

// ExtractedCompanyNotNil applies the NotNil predicate on the "extracted_company" field.
func ExtractedCompanyNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldExtractedCompany))
}

// ExtractedCompanyEqualFold applies the EqualFold predicate on the "extracted_company" field.
func ExtractedCompanyEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldExtractedCompany, v))
}

// ExtractedCompanyContainsFold applies the ContainsFold predicate on the "extracted_company" field.
func ExtractedCompanyContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldExtractedCompany, v))
}

// SmartNotificationEQ applies the EQ predicate on the "smart_notification" field.
func SmartNotificationEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldSmartNotification, v))
}

// SmartNotificationNEQ applies the NEQ predicate on the "smart_notification" field.
func SmartNotificationNEQ(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldSmartNotification, v))
}

// SmartNotificationIn applies the In predicate on the "smart_notification" field.
func SmartNotificationIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldSmartNotification, vs...))
}

// SmartNotificationNotIn applies the NotIn predicate on the "smart_notification" field.
func SmartNotificationNotIn(vs ...string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldSmartNotification, vs...))
}

// SmartNotificationGT applies the GT predicate on the "smart_notification" field.
func SmartNotificationGT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldSmartNotification, v))
}

// SmartNotificationGTE applies the GTE predicate on the "smart_notification" field.
func SmartNotificationGTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldSmartNotification, v))
}

// SmartNotificationLT applies the LT predicate on the "smart_notification" field.
func SmartNotificationLT(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldSmartNotification, v))
}

// SmartNotificationLTE applies the LTE predicate on the "smart_notification" field.
func SmartNotificationLTE(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldSmartNotification, v))
}

// SmartNotificationContains applies the Contains predicate on the "smart_notification" field.
func SmartNotificationContains(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContains(FieldSmartNotification, v))
}

// SmartNotificationHasPrefix applies the HasPrefix predicate on the "smart_notification" field.
func SmartNotificationHasPrefix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasPrefix(FieldSmartNotification, v))
}

// SmartNotificationHasSuffix applies the HasSuffix predicate on the "smart_notification" field.
func SmartNotificationHasSuffix(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldHasSuffix(FieldSmartNotification, v))
}

// SmartNotificationIsNil applies the IsNil predicate on the "smart_notification" field.
func SmartNotificationIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldSmartNotification))
}

// SmartNotificationNotNil applies the NotNil predicate on the "smart_notification" field.
func SmartNotificationNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldSmartNotification))
}

// SmartNotificationEqualFold applies the EqualFold predicate on the "smart_notification" field.
func SmartNotificationEqualFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEqualFold(FieldSmartNotification, v))
}

// SmartNotificationContainsFold applies the ContainsFold predicate on the "smart_notification" field.
func SmartNotificationContainsFold(v string) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldContainsFold(FieldSmartNotification, v))
}

// CtaPricingClickedEQ applies the EQ predicate on the "cta_pricing_clicked" field.
func CtaPricingClickedEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaPricingClicked, v))
}

// CtaPricingClickedNEQ applies the NEQ predicate on the "cta_pricing_clicked" field.
func CtaPricingClickedNEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldCtaPricingClicked, v))
}

// CtaPricingClickedIsNil applies the IsNil predicate on the "cta_pricing_clicked" field.
func CtaPricingClickedIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldCtaPricingClicked))
}

// CtaPricingClickedNotNil applies the NotNil predicate on the "cta_pricing_clicked" field.
func CtaPricingClickedNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldCtaPricingClicked))
}

// CtaDemoClickedEQ applies the EQ predicate on the "cta_demo_clicked" field.
func CtaDemoClickedEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaDemoClicked, v))
}

// CtaDemoClickedNEQ applies the NEQ predicate on the "cta_demo_clicked" field.
func CtaDemoClickedNEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldCtaDemoClicked, v))
}

// CtaDemoClickedIsNil applies the IsNil predicate on the "cta_demo_clicked" field.
func CtaDemoClickedIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldCtaDemoClicked))
}

// CtaDemoClickedNotNil applies the NotNil predicate on the "cta_demo_clicked" field.
func CtaDemoClickedNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldCtaDemoClicked))
}

// CtaFollowupClickedEQ applies the EQ predicate on the "cta_followup_clicked" field.
func CtaFollowupClickedEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaFollowupClicked, v))
}

// CtaFollowupClickedNEQ applies the NEQ predicate on the "cta_followup_clicked" field.
func CtaFollowupClickedNEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldCtaFollowupClicked, v))
}

// CtaFollowupClickedIsNil applies the IsNil predicate on the "cta_followup_clicked" field.
func CtaFollowupClickedIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldCtaFollowupClicked))
}

// CtaFollowupClickedNotNil applies the NotNil predicate on the "cta_followup_clicked" field.
func CtaFollowupClickedNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldCtaFollowupClicked))
}

// CtaSampleClickedEQ applies the EQ predicate on the "cta_sample_clicked" field.
func CtaSampleClickedEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaSampleClicked, v))
}

// CtaSampleClickedNEQ applies the NEQ predicate on the "cta_sample_clicked" field.
func CtaSampleClickedNEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldCtaSampleClicked, v))
}

// CtaSampleClickedIsNil applies the IsNil predicate on the "cta_sample_clicked" field.
func CtaSampleClickedIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldCtaSampleClicked))
}

// CtaSampleClickedNotNil applies the NotNil predicate on the "cta_sample_clicked" field.
func CtaSampleClickedNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldCtaSampleClicked))
}

// CtaEscalatedToHumanEQ applies the EQ predicate on the "cta_escalated_to_human" field.
func CtaEscalatedToHumanEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCtaEscalatedToHuman, v))
}

// CtaEscalatedToHumanNEQ applies the NEQ predicate on the "cta_escalated_to_human" field.
func CtaEscalatedToHumanNEQ(v bool) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldCtaEscalatedToHuman, v))
}

// CtaEscalatedToHumanIsNil applies the IsNil predicate on the "cta_escalated_to_human" field.
func CtaEscalatedToHumanIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldCtaEscalatedToHuman))
}

// CtaEscalatedToHumanNotNil applies the NotNil predicate on the "cta_escalated_to_human" field.
func CtaEscalatedToHumanNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldCtaEscalatedToHuman))
}

// DemoBookDatetimeEQ applies the EQ predicate on the "demo_book_datetime" field.
func DemoBookDatetimeEQ(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldDemoBookDatetime, v))
}

// DemoBookDatetimeNEQ applies the NEQ predicate on the "demo_book_datetime" field.
func DemoBookDatetimeNEQ(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldDemoBookDatetime, v))
}

// DemoBookDatetimeIn applies the In predicate on the "demo_book_datetime" field.
func DemoBookDatetimeIn(vs ...time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldDemoBookDatetime, vs...))
}

// DemoBookDatetimeNotIn applies the NotIn predicate on the "demo_book_datetime" field.
func DemoBookDatetimeNotIn(vs ...time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldDemoBookDatetime, vs...))
}

// DemoBookDatetimeGT applies the GT predicate on the "demo_book_datetime" field.
func DemoBookDatetimeGT(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldDemoBookDatetime, v))
}

// DemoBookDatetimeGTE applies the GTE predicate on the "demo_book_datetime" field.
func DemoBookDatetimeGTE(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldDemoBookDatetime, v))
}

// DemoBookDatetimeLT applies the LT predicate on the "demo_book_datetime" field.
func DemoBookDatetimeLT(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldDemoBookDatetime, v))
}

// DemoBookDatetimeLTE applies the LTE predicate on the "demo_book_datetime" field.
func DemoBookDatetimeLTE(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldDemoBookDatetime, v))
}

// DemoBookDatetimeIsNil applies the IsNil predicate on the "demo_book_datetime" field.
func DemoBookDatetimeIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldDemoBookDatetime))
}

// DemoBookDatetimeNotNil applies the NotNil predicate on the "demo_book_datetime" field.
func DemoBookDatetimeNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldDemoBookDatetime))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotNull(FieldReasoning))
}

// PreviousCallsAnalyzedEQ applies the EQ predicate on the "previous_calls_analyzed" field.
func PreviousCallsAnalyzedEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldPreviousCallsAnalyzed, v))
}

// PreviousCallsAnalyzedNEQ applies the NEQ predicate on the "previous_calls_analyzed" field.
func PreviousCallsAnalyzedNEQ(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldPreviousCallsAnalyzed, v))
}

// PreviousCallsAnalyzedIn applies the In predicate on the "previous_calls_analyzed" field.
func PreviousCallsAnalyzedIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldPreviousCallsAnalyzed, vs...))
}

// PreviousCallsAnalyzedNotIn applies the NotIn predicate on the "previous_calls_analyzed" field.
func PreviousCallsAnalyzedNotIn(vs ...int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldPreviousCallsAnalyzed, vs...))
}

// PreviousCallsAnalyzedGT applies the GT predicate on the "previous_calls_analyzed" field.
func PreviousCallsAnalyzedGT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldPreviousCallsAnalyzed, v))
}

// PreviousCallsAnalyzedGTE applies the GTE predicate on the "previous_calls_analyzed" field.
func PreviousCallsAnalyzedGTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldPreviousCallsAnalyzed, v))
}

// PreviousCallsAnalyzedLT applies the LT predicate on the "previous_calls_analyzed" field.
func PreviousCallsAnalyzedLT(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldPreviousCallsAnalyzed, v))
}

// PreviousCallsAnalyzedLTE applies the LTE predicate on the "previous_calls_analyzed" field.
func PreviousCallsAnalyzedLTE(v int) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldPreviousCallsAnalyzed, v))
}

// AnalysisTimestampEQ applies the EQ predicate on the "analysis_timestamp" field.
func AnalysisTimestampEQ(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldAnalysisTimestamp, v))
}

// AnalysisTimestampNEQ applies the NEQ predicate on the "analysis_timestamp" field.
func AnalysisTimestampNEQ(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldAnalysisTimestamp, v))
}

// AnalysisTimestampIn applies the In predicate on the "analysis_timestamp" field.
func AnalysisTimestampIn(vs ...time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldAnalysisTimestamp, vs...))
}

// AnalysisTimestampNotIn applies the NotIn predicate on the "analysis_timestamp" field.
func AnalysisTimestampNotIn(vs ...time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldAnalysisTimestamp, vs...))
}

// AnalysisTimestampGT applies the GT predicate on the "analysis_timestamp" field.
func AnalysisTimestampGT(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldAnalysisTimestamp, v))
}

// AnalysisTimestampGTE applies the GTE predicate on the "analysis_timestamp" field.
func AnalysisTimestampGTE(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldAnalysisTimestamp, v))
}

// AnalysisTimestampLT applies the LT predicate on the "analysis_timestamp" field.
func AnalysisTimestampLT(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldAnalysisTimestamp, v))
}

// AnalysisTimestampLTE applies the LTE predicate on the "analysis_timestamp" field.
func AnalysisTimestampLTE(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldAnalysisTimestamp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeadAnalytics) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeadAnalytics) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeadAnalytics) predicate.LeadAnalytics {
	return predicate.LeadAnalytics(sql.NotPredicates(p))
}
