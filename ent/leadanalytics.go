// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringstack/ringstack/ent/leadanalytics"
)

// LeadAnalytics is the model entity for the LeadAnalytics schema.
type LeadAnalytics struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Normalized contact phone; the identity key for complete rows
	Phone string `json:"phone,omitempty"`
	// AnalysisType holds the value of the "analysis_type" field.
	AnalysisType leadanalytics.AnalysisType `json:"analysis_type,omitempty"`
	// Set on individual rows; complete rows span calls
	CallID *string `json:"call_id,omitempty"`
	// Set on complete rows; the call that produced the latest refresh
	LatestCallID *string `json:"latest_call_id,omitempty"`
	// IntentLevel holds the value of the "intent_level" field.
	IntentLevel *string `json:"intent_level,omitempty"`
	// IntentScore holds the value of the "intent_score" field.
	IntentScore int `json:"intent_score,omitempty"`
	// UrgencyLevel holds the value of the "urgency_level" field.
	UrgencyLevel *string `json:"urgency_level,omitempty"`
	// UrgencyScore holds the value of the "urgency_score" field.
	UrgencyScore int `json:"urgency_score,omitempty"`
	// BudgetConstraint holds the value of the "budget_constraint" field.
	BudgetConstraint *string `json:"budget_constraint,omitempty"`
	// BudgetScore holds the value of the "budget_score" field.
	BudgetScore int `json:"budget_score,omitempty"`
	// FitAlignment holds the value of the "fit_alignment" field.
	FitAlignment *string `json:"fit_alignment,omitempty"`
	// FitScore holds the value of the "fit_score" field.
	FitScore int `json:"fit_score,omitempty"`
	// EngagementHealth holds the value of the "engagement_health" field.
	EngagementHealth *string `json:"engagement_health,omitempty"`
	// EngagementScore holds the value of the "engagement_score" field.
	EngagementScore int `json:"engagement_score,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore int `json:"total_score,omitempty"`
	// LeadStatusTag holds the value of the "lead_status_tag" field.
	LeadStatusTag leadanalytics.LeadStatusTag `json:"lead_status_tag,omitempty"`
	// ExtractedName holds the value of the "extracted_name" field.
	ExtractedName *string `json:"extracted_name,omitempty"`
	// ExtractedEmail holds the value of the "extracted_email" field.
	ExtractedEmail *string `json:"extracted_email,omitempty"`
	// ExtractedCompany holds the value of the "extracted_company" field.
	ExtractedCompany *string `json:"extracted_company,omitempty"`
	// SmartNotification holds the value of the "smart_notification" field.
	SmartNotification *string `json:"smart_notification,omitempty"`
	// CtaPricingClicked holds the value of the "cta_pricing_clicked" field.
	CtaPricingClicked *bool `json:"cta_pricing_clicked,omitempty"`
	// CtaDemoClicked holds the value of the "cta_demo_clicked" field.
	CtaDemoClicked *bool `json:"cta_demo_clicked,omitempty"`
	// CtaFollowupClicked holds the value of the "cta_followup_clicked" field.
	CtaFollowupClicked *bool `json:"cta_followup_clicked,omitempty"`
	// CtaSampleClicked holds the value of the "cta_sample_clicked" field.
	CtaSampleClicked *bool `json:"cta_sample_clicked,omitempty"`
	// CtaEscalatedToHuman holds the value of the "cta_escalated_to_human" field.
	CtaEscalatedToHuman *bool `json:"cta_escalated_to_human,omitempty"`
	// DemoBookDatetime holds the value of the "demo_book_datetime" field.
	DemoBookDatetime *time.Time `json:"demo_book_datetime,omitempty"`
	// Model reasoning plus extraction fields outside the typed contract
	Reasoning map[string]interface{} `json:"reasoning,omitempty"`
	// Complete rows: number of calls folded into the aggregate
	PreviousCallsAnalyzed int `json:"previous_calls_analyzed,omitempty"`
	// AnalysisTimestamp holds the value of the "analysis_timestamp" field.
	AnalysisTimestamp time.Time `json:"analysis_timestamp,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeadAnalytics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leadanalytics.FieldReasoning:
			values[i] = new([]byte)
		case leadanalytics.FieldCtaPricingClicked, leadanalytics.FieldCtaDemoClicked, leadanalytics.FieldCtaFollowupClicked, leadanalytics.FieldCtaSampleClicked, leadanalytics.FieldCtaEscalatedToHuman:
			values[i] = new(sql.NullBool)
		case leadanalytics.FieldIntentScore, leadanalytics.FieldUrgencyScore, leadanalytics.FieldBudgetScore, leadanalytics.FieldFitScore, leadanalytics.FieldEngagementScore, leadanalytics.FieldTotalScore, leadanalytics.FieldPreviousCallsAnalyzed:
			values[i] = new(sql.NullInt64)
		case leadanalytics.FieldID, leadanalytics.FieldTenantID, leadanalytics.FieldPhone, leadanalytics.FieldAnalysisType, leadanalytics.FieldCallID, leadanalytics.FieldLatestCallID, leadanalytics.FieldIntentLevel, leadanalytics.FieldUrgencyLevel, leadanalytics.FieldBudgetConstraint, leadanalytics.FieldFitAlignment, leadanalytics.FieldEngagementHealth, leadanalytics.FieldLeadStatusTag, leadanalytics.FieldExtractedName, leadanalytics.FieldExtractedEmail, leadanalytics.FieldExtractedCompany, leadanalytics.FieldSmartNotification:
			values[i] = new(sql.NullString)
		case leadanalytics.FieldDemoBookDatetime, leadanalytics.FieldAnalysisTimestamp, leadanalytics.FieldCreatedAt, leadanalytics.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeadAnalytics fields.
func (_m *LeadAnalytics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leadanalytics.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case leadanalytics.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case leadanalytics.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case leadanalytics.FieldAnalysisType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_type", values[i])
			} else if value.Valid {
				_m.AnalysisType = leadanalytics.AnalysisType(value.String)
			}
		case leadanalytics.FieldCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_id", values[i])
			} else if value.Valid {
				_m.CallID = new(string)
				*_m.CallID = value.String
			}
		case leadanalytics.FieldLatestCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field latest_call_id", values[i])
			} else if value.Valid {
				_m.LatestCallID = new(string)
				*_m.LatestCallID = value.String
			}
		case leadanalytics.FieldIntentLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_level", values[i])
			} else if value.Valid {
				_m.IntentLevel = new(string)
				*_m.IntentLevel = value.String
			}
		case leadanalytics.FieldIntentScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field intent_score", values[i])
			} else if value.Valid {
				_m.IntentScore = int(value.Int64)
			}
		case leadanalytics.FieldUrgencyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field urgency_level", values[i])
			} else if value.Valid {
				_m.UrgencyLevel = new(string)
				*_m.UrgencyLevel = value.String
			}
		case leadanalytics.FieldUrgencyScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field urgency_score", values[i])
			} else if value.Valid {
				_m.UrgencyScore = int(value.Int64)
			}
		case leadanalytics.FieldBudgetConstraint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field budget_constraint", values[i])
			} else if value.Valid {
				_m.BudgetConstraint = new(string)
				*_m.BudgetConstraint = value.String
			}
		case leadanalytics.FieldBudgetScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_score", values[i])
			} else if value.Valid {
				_m.BudgetScore = int(value.Int64)
			}
		case leadanalytics.FieldFitAlignment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fit_alignment", values[i])
			} else if value.Valid {
				_m.FitAlignment = new(string)
				*_m.FitAlignment = value.String
			}
		case leadanalytics.FieldFitScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fit_score", values[i])
			} else if value.Valid {
				_m.FitScore = int(value.Int64)
			}
		case leadanalytics.FieldEngagementHealth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_health", values[i])
			} else if value.Valid {
				_m.EngagementHealth = new(string)
				*_m.EngagementHealth = value.String
			}
		case leadanalytics.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = int(value.Int64)
			}
		case leadanalytics.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case leadanalytics.FieldLeadStatusTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lead_status_tag", values[i])
			} else if value.Valid {
				_m.LeadStatusTag = leadanalytics.LeadStatusTag(value.String)
			}
		case leadanalytics.FieldExtractedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_name", values[i])
			} else if value.Valid {
				_m.ExtractedName = new(string)
				*_m.ExtractedName = value.String
			}
		case leadanalytics.FieldExtractedEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_email", values[i])
			} else if value.Valid {
				_m.ExtractedEmail = new(string)
				*_m.ExtractedEmail = value.String
			}
		case leadanalytics.FieldExtractedCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_company", values[i])
			} else if value.Valid {
				_m.ExtractedCompany = new(string)
				*_m.ExtractedCompany = value.String
			}
		case leadanalytics.FieldSmartNotification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field smart_notification", values[i])
			} else if value.Valid {
				_m.SmartNotification = new(string)
				*_m.SmartNotification = value.String
			}
		case leadanalytics.FieldCtaPricingClicked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cta_pricing_clicked", values[i])
			} else if value.Valid {
				_m.CtaPricingClicked = new(bool)
				*_m.CtaPricingClicked = value.Bool
			}
		case leadanalytics.FieldCtaDemoClicked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cta_demo_clicked", values[i])
			} else if value.Valid {
				_m.CtaDemoClicked = new(bool)
				*_m.CtaDemoClicked = value.Bool
			}
		case leadanalytics.FieldCtaFollowupClicked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cta_followup_clicked", values[i])
			} else if value.Valid {
				_m.CtaFollowupClicked = new(bool)
				*_m.CtaFollowupClicked = value.Bool
			}
		case leadanalytics.FieldCtaSampleClicked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cta_sample_clicked", values[i])
			} else if value.Valid {
				_m.CtaSampleClicked = new(bool)
				*_m.CtaSampleClicked = value.Bool
			}
		case leadanalytics.FieldCtaEscalatedToHuman:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cta_escalated_to_human", values[i])
			} else if value.Valid {
				_m.CtaEscalatedToHuman = new(bool)
				*_m.CtaEscalatedToHuman = value.Bool
			}
		case leadanalytics.FieldDemoBookDatetime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field demo_book_datetime", values[i])
			} else if value.Valid {
				_m.DemoBookDatetime = new(time.Time)
				*_m.DemoBookDatetime = value.Time
			}
		case leadanalytics.FieldReasoning:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Reasoning); err != nil {
					return fmt.Errorf("unmarshal field reasoning: %w", err)
				}
			}
		case leadanalytics.FieldPreviousCallsAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_calls_analyzed", values[i])
			} else if value.Valid {
				_m.PreviousCallsAnalyzed = int(value.Int64)
			}
		case leadanalytics.FieldAnalysisTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_timestamp", values[i])
			} else if value.Valid {
				_m.AnalysisTimestamp = value.Time
			}
		case leadanalytics.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case leadanalytics.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LeadAnalytics.
// This includes values selected through modifiers, order, etc.
func (_m *LeadAnalytics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LeadAnalytics.
// Note that you need to call LeadAnalytics.Unwrap() before calling this method if this LeadAnalytics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeadAnalytics) Update() *LeadAnalyticsUpdateOne {
	return NewLeadAnalyticsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeadAnalytics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeadAnalytics) Unwrap() *LeadAnalytics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeadAnalytics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeadAnalytics) String() string {
	var builder strings.Builder
	builder.WriteString("LeadAnalytics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("analysis_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisType))
	builder.WriteString(", ")
	if v := _m.CallID; v != nil {
		builder.WriteString("call_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LatestCallID; v != nil {
		builder.WriteString("latest_call_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IntentLevel; v != nil {
		builder.WriteString("intent_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("intent_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntentScore))
	builder.WriteString(", ")
	if v := _m.UrgencyLevel; v != nil {
		builder.WriteString("urgency_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("urgency_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.UrgencyScore))
	builder.WriteString(", ")
	if v := _m.BudgetConstraint; v != nil {
		builder.WriteString("budget_constraint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("budget_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetScore))
	builder.WriteString(", ")
	if v := _m.FitAlignment; v != nil {
		builder.WriteString("fit_alignment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("fit_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FitScore))
	builder.WriteString(", ")
	if v := _m.EngagementHealth; v != nil {
		builder.WriteString("engagement_health=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("lead_status_tag=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadStatusTag))
	builder.WriteString(", ")
	if v := _m.ExtractedName; v != nil {
		builder.WriteString("extracted_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedEmail; v != nil {
		builder.WriteString("extracted_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedCompany; v != nil {
		builder.WriteString("extracted_company=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SmartNotification; v != nil {
		builder.WriteString("smart_notification=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CtaPricingClicked; v != nil {
		builder.WriteString("cta_pricing_clicked=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CtaDemoClicked; v != nil {
		builder.WriteString("cta_demo_clicked=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CtaFollowupClicked; v != nil {
		builder.WriteString("cta_followup_clicked=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CtaSampleClicked; v != nil {
		builder.WriteString("cta_sample_clicked=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CtaEscalatedToHuman; v != nil {
		builder.WriteString("cta_escalated_to_human=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DemoBookDatetime; v != nil {
		builder.WriteString("demo_book_datetime=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reasoning))
	builder.WriteString(", ")
	builder.WriteString("previous_calls_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousCallsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("analysis_timestamp=")
	builder.WriteString(_m.AnalysisTimestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeadAnalyticsSlice is a parsable slice of LeadAnalytics.
type LeadAnalyticsSlice []*LeadAnalytics
