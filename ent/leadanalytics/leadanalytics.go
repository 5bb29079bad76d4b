// Code generated by ent, DO NOT EDIT.

package leadanalytics

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the leadanalytics type in the database.
	Label = "lead_analytics"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analytics_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldAnalysisType holds the string denoting the analysis_type field in the database.
	FieldAnalysisType = "analysis_type"
	// FieldCallID holds the string denoting the call_id field in the database.
	FieldCallID = "call_id"
	// FieldLatestCallID holds the string denoting the latest_call_id field in the database.
	FieldLatestCallID = "latest_call_id"
	// FieldIntentLevel holds the string denoting the intent_level field in the database.
	FieldIntentLevel = "intent_level"
	// FieldIntentScore holds the string denoting the intent_score field in the database.
	FieldIntentScore = "intent_score"
	// FieldUrgencyLevel holds the string denoting the urgency_level field in the database.
	FieldUrgencyLevel = "urgency_level"
	// FieldUrgencyScore holds the string denoting the urgency_score field in the database.
	FieldUrgencyScore = "urgency_score"
	// FieldBudgetConstraint holds the string denoting the budget_constraint field in the database.
	FieldBudgetConstraint = "budget_constraint"
	// FieldBudgetScore holds the string denoting the budget_score field in the database.
	FieldBudgetScore = "budget_score"
	// FieldFitAlignment holds the string denoting the fit_alignment field in the database.
	FieldFitAlignment = "fit_alignment"
	// FieldFitScore holds the string denoting the fit_score field in the database.
	FieldFitScore = "fit_score"
	// FieldEngagementHealth holds the string denoting the engagement_health field in the database.
	FieldEngagementHealth = "engagement_health"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldLeadStatusTag holds the string denoting the lead_status_tag field in the database.
	FieldLeadStatusTag = "lead_status_tag"
	// FieldExtractedName holds the string denoting the extracted_name field in the database.
	FieldExtractedName = "extracted_name"
	// FieldExtractedEmail holds the string denoting the extracted_email field in the database.
	FieldExtractedEmail = "extracted_email"
	// FieldExtractedCompany holds the string denoting the extracted_company field in the database.
	FieldExtractedCompany = "extracted_company"
	// FieldSmartNotification holds the string denoting the smart_notification field in the database.
	FieldSmartNotification = "smart_notification"
	// FieldCtaPricingClicked holds the string denoting the cta_pricing_clicked field in the database.
	FieldCtaPricingClicked = "cta_pricing_clicked"
	// FieldCtaDemoClicked holds the string denoting the cta_demo_clicked field in the database.
	FieldCtaDemoClicked = "cta_demo_clicked"
	// FieldCtaFollowupClicked holds the string denoting the cta_followup_clicked field in the database.
	FieldCtaFollowupClicked = "cta_followup_clicked"
	// FieldCtaSampleClicked holds the string denoting the cta_sample_clicked field in the database.
	FieldCtaSampleClicked = "cta_sample_clicked"
	// FieldCtaEscalatedToHuman holds the string denoting the cta_escalated_to_human field in the database.
	FieldCtaEscalatedToHuman = "cta_escalated_to_human"
	// FieldDemoBookDatetime holds the string denoting the demo_book_datetime field in the database.
	FieldDemoBookDatetime = "demo_book_datetime"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldPreviousCallsAnalyzed holds the string denoting the previous_calls_analyzed field in the database.
	FieldPreviousCallsAnalyzed = "previous_calls_analyzed"
	// FieldAnalysisTimestamp holds the string denoting the analysis_timestamp field in the database.
	FieldAnalysisTimestamp = "analysis_timestamp"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the leadanalytics in the database.
	Table = "lead_analytics"
)

// Columns holds all SQL columns for leadanalytics fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldPhone,
	FieldAnalysisType,
	FieldCallID,
	FieldLatestCallID,
	FieldIntentLevel,
	FieldIntentScore,
	FieldUrgencyLevel,
	FieldUrgencyScore,
	FieldBudgetConstraint,
	FieldBudgetScore,
	FieldFitAlignment,
	FieldFitScore,
	FieldEngagementHealth,
	FieldEngagementScore,
	FieldTotalScore,
	FieldLeadStatusTag,
	FieldExtractedName,
	FieldExtractedEmail,
	FieldExtractedCompany,
	FieldSmartNotification,
	FieldCtaPricingClicked,
	FieldCtaDemoClicked,
	FieldCtaFollowupClicked,
	FieldCtaSampleClicked,
	FieldCtaEscalatedToHuman,
	FieldDemoBookDatetime,
	FieldReasoning,
	FieldPreviousCallsAnalyzed,
	FieldAnalysisTimestamp,
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
	// DefaultIntentScore holds the default value on creation for the "intent_score" field.
	DefaultIntentScore int
	// DefaultUrgencyScore holds the default value on creation for the "urgency_score" field.
	DefaultUrgencyScore int
	// DefaultBudgetScore holds the default value on creation for the "budget_score" field.
	DefaultBudgetScore int
	// DefaultFitScore holds the default value on creation for the "fit_score" field.
	DefaultFitScore int
	// DefaultEngagementScore holds the default value on creation for the "engagement_score" field.
	DefaultEngagementScore int
	// DefaultTotalScore holds the default value on creation for the "total_score" field.
	DefaultTotalScore int
	// DefaultPreviousCallsAnalyzed holds the default value on creation for the "previous_calls_analyzed" field.
	DefaultPreviousCallsAnalyzed int
	// DefaultAnalysisTimestamp holds the default value on creation for the "analysis_timestamp" field.
	DefaultAnalysisTimestamp func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AnalysisType defines the type for the "analysis_type" enum field.
type AnalysisType string

// AnalysisType values.
const (
	AnalysisTypeIndividual AnalysisType = "individual"
	AnalysisTypeComplete   AnalysisType = "complete"
)

func (at AnalysisType) String() string {
	return string(at)
}

// AnalysisTypeValidator is a validator for the "analysis_type" field enum values. It is called by the builders before save.
func AnalysisTypeValidator(at AnalysisType) error {
	switch at {
	case AnalysisTypeIndividual, AnalysisTypeComplete:
		return nil
	default:
		return fmt.Errorf("leadanalytics: invalid enum value for analysis_type field: %q", at)
	}
}

// LeadStatusTag defines the type for the "lead_status_tag" enum field.
type LeadStatusTag string

// LeadStatusTag values.
const (
	LeadStatusTagHot  LeadStatusTag = "Hot"
	LeadStatusTagWarm LeadStatusTag = "Warm"
	LeadStatusTagCold LeadStatusTag = "Cold"
)

func (lst LeadStatusTag) String() string {
	return string(lst)
}

// LeadStatusTagValidator is a validator for the "lead_status_tag" field enum values. It is called by the builders before save.
func LeadStatusTagValidator(lst LeadStatusTag) error {
	switch lst {
	case LeadStatusTagHot, LeadStatusTagWarm, LeadStatusTagCold:
		return nil
	default:
		return fmt.Errorf("leadanalytics: invalid enum value for lead_status_tag field: %q", lst)
	}
}

// OrderOption defines the ordering options for the LeadAnalytics queries.
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

// ByAnalysisType orders the results by the analysis_type field.
func ByAnalysisType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisType, opts...).ToFunc()
}

// ByCallID orders the results by the call_id field.
func ByCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallID, opts...).ToFunc()
}

// ByLatestCallID orders the results by the latest_call_id field.
func ByLatestCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestCallID, opts...).ToFunc()
}

// ByIntentLevel orders the results by the intent_level field.
func ByIntentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentLevel, opts...).ToFunc()
}

// ByIntentScore orders the results by the intent_score field.
func ByIntentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentScore, opts...).ToFunc()
}

// ByUrgencyLevel orders the results by the urgency_level field.
func ByUrgencyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgencyLevel, opts...).ToFunc()
}

// ByUrgencyScore orders the results by the urgency_score field.
func ByUrgencyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgencyScore, opts...).ToFunc()
}

// ByBudgetConstraint orders the results by the budget_constraint field.
func ByBudgetConstraint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetConstraint, opts...).ToFunc()
}

// ByBudgetScore orders the results by the budget_score field.
func ByBudgetScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetScore, opts...).ToFunc()
}

// ByFitAlignment orders the results by the fit_alignment field.
func ByFitAlignment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFitAlignment, opts...).ToFunc()
}

// ByFitScore orders the results by the fit_score field.
func ByFitScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFitScore, opts...).ToFunc()
}

// ByEngagementHealth orders the results by the engagement_health field.
func ByEngagementHealth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementHealth, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByLeadStatusTag orders the results by the lead_status_tag field.
func ByLeadStatusTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadStatusTag, opts...).ToFunc()
}

// ByExtractedName orders the results by the extracted_name field.
func ByExtractedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedName, opts...).ToFunc()
}

// ByExtractedEmail orders the results by the extracted_email field.
func ByExtractedEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedEmail, opts...).ToFunc()
}

// ByExtractedCompany orders the results by the extracted_company field.
func ByExtractedCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedCompany, opts...).ToFunc()
}

// BySmartNotification orders the results by the smart_notification field.
func BySmartNotification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSmartNotification, opts...).ToFunc()
}

// ByCtaPricingClicked orders the results by the cta_pricing_clicked field.
func ByCtaPricingClicked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCtaPricingClicked, opts...).ToFunc()
}

// ByCtaDemoClicked orders the results by the cta_demo_clicked field.
func ByCtaDemoClicked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCtaDemoClicked, opts...).ToFunc()
}

// ByCtaFollowupClicked orders the results by the cta_followup_clicked field.
func ByCtaFollowupClicked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCtaFollowupClicked, opts...).ToFunc()
}

// ByCtaSampleClicked orders the results by the cta_sample_clicked field.
func ByCtaSampleClicked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCtaSampleClicked, opts...).ToFunc()
}

// ByCtaEscalatedToHuman orders the results by the cta_escalated_to_human field.
func ByCtaEscalatedToHuman(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCtaEscalatedToHuman, opts...).ToFunc()
}

// ByDemoBookDatetime orders the results by the demo_book_datetime field.
func ByDemoBookDatetime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDemoBookDatetime, opts...).ToFunc()
}

// ByPreviousCallsAnalyzed orders the results by the previous_calls_analyzed field.
func ByPreviousCallsAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousCallsAnalyzed, opts...).ToFunc()
}

// ByAnalysisTimestamp orders the results by the analysis_timestamp field.
func ByAnalysisTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisTimestamp, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
