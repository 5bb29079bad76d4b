// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/leadanalytics"
)

// LeadAnalyticsCreate is the builder for creating a LeadAnalytics entity.
type LeadAnalyticsCreate struct {
	config
	mutation *LeadAnalyticsMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *LeadAnalyticsCreate) SetTenantID(v string) *LeadAnalyticsCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LeadAnalyticsCreate) SetPhone(v string) *LeadAnalyticsCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetAnalysisType sets the "analysis_type" field.
func (_c *LeadAnalyticsCreate) SetAnalysisType(v leadanalytics.AnalysisType) *LeadAnalyticsCreate {
	_c.mutation.SetAnalysisType(v)
	return _c
}

// SetCallID sets the "call_id" field.
func (_c *LeadAnalyticsCreate) SetCallID(v string) *LeadAnalyticsCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableCallID(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetCallID(*v)
	}
	return _c
}

// SetLatestCallID sets the "latest_call_id" field.
func (_c *LeadAnalyticsCreate) SetLatestCallID(v string) *LeadAnalyticsCreate {
	_c.mutation.SetLatestCallID(v)
	return _c
}

// SetNillableLatestCallID sets the "latest_call_id" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableLatestCallID(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetLatestCallID(*v)
	}
	return _c
}

// SetIntentLevel sets the "intent_level" field.
func (_c *LeadAnalyticsCreate) SetIntentLevel(v string) *LeadAnalyticsCreate {
	_c.mutation.SetIntentLevel(v)
	return _c
}

// SetNillableIntentLevel sets the "intent_level" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableIntentLevel(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetIntentLevel(*v)
	}
	return _c
}

// SetIntentScore sets the "intent_score" field.
func (_c *LeadAnalyticsCreate) SetIntentScore(v int) *LeadAnalyticsCreate {
	_c.mutation.SetIntentScore(v)
	return _c
}

// SetNillableIntentScore sets the "intent_score" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableIntentScore(v *int) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetIntentScore(*v)
	}
	return _c
}

// SetUrgencyLevel sets the "urgency_level" field.
func (_c *LeadAnalyticsCreate) SetUrgencyLevel(v string) *LeadAnalyticsCreate {
	_c.mutation.SetUrgencyLevel(v)
	return _c
}

// SetNillableUrgencyLevel sets the "urgency_level" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableUrgencyLevel(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetUrgencyLevel(*v)
	}
	return _c
}

// SetUrgencyScore sets the "urgency_score" field.
func (_c *LeadAnalyticsCreate) SetUrgencyScore(v int) *LeadAnalyticsCreate {
	_c.mutation.SetUrgencyScore(v)
	return _c
}

// SetNillableUrgencyScore sets the "urgency_score" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableUrgencyScore(v *int) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetUrgencyScore(*v)
	}
	return _c
}

// SetBudgetConstraint sets the "budget_constraint" field.
func (_c *LeadAnalyticsCreate) SetBudgetConstraint(v string) *LeadAnalyticsCreate {
	_c.mutation.SetBudgetConstraint(v)
	return _c
}

// SetNillableBudgetConstraint sets the "budget_constraint" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableBudgetConstraint(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetBudgetConstraint(*v)
	}
	return _c
}

// SetBudgetScore sets the "budget_score" field.
func (_c *LeadAnalyticsCreate) SetBudgetScore(v int) *LeadAnalyticsCreate {
	_c.mutation.SetBudgetScore(v)
	return _c
}

// SetNillableBudgetScore sets the "budget_score" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableBudgetScore(v *int) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetBudgetScore(*v)
	}
	return _c
}

// SetFitAlignment sets the "fit_alignment" field.
func (_c *LeadAnalyticsCreate) SetFitAlignment(v string) *LeadAnalyticsCreate {
	_c.mutation.SetFitAlignment(v)
	return _c
}

// SetNillableFitAlignment sets the "fit_alignment" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableFitAlignment(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetFitAlignment(*v)
	}
	return _c
}

// SetFitScore sets the "fit_score" field.
func (_c *LeadAnalyticsCreate) SetFitScore(v int) *LeadAnalyticsCreate {
	_c.mutation.SetFitScore(v)
	return _c
}

// SetNillableFitScore sets the "fit_score" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableFitScore(v *int) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetFitScore(*v)
	}
	return _c
}

// SetEngagementHealth sets the "engagement_health" field.
func (_c *LeadAnalyticsCreate) SetEngagementHealth(v string) *LeadAnalyticsCreate {
	_c.mutation.SetEngagementHealth(v)
	return _c
}

// SetNillableEngagementHealth sets the "engagement_health" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableEngagementHealth(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetEngagementHealth(*v)
	}
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *LeadAnalyticsCreate) SetEngagementScore(v int) *LeadAnalyticsCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableEngagementScore(v *int) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetEngagementScore(*v)
	}
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *LeadAnalyticsCreate) SetTotalScore(v int) *LeadAnalyticsCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableTotalScore(v *int) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetLeadStatusTag sets the "lead_status_tag" field.
func (_c *LeadAnalyticsCreate) SetLeadStatusTag(v leadanalytics.LeadStatusTag) *LeadAnalyticsCreate {
	_c.mutation.SetLeadStatusTag(v)
	return _c
}

// SetNillableLeadStatusTag sets the "lead_status_tag" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableLeadStatusTag(v *leadanalytics.LeadStatusTag) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetLeadStatusTag(*v)
	}
	return _c
}

// SetExtractedName sets the "extracted_name" field.
func (_c *LeadAnalyticsCreate) SetExtractedName(v string) *LeadAnalyticsCreate {
	_c.mutation.SetExtractedName(v)
	return _c
}

// SetNillableExtractedName sets the "extracted_name" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableExtractedName(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetExtractedName(*v)
	}
	return _c
}

// SetExtractedEmail sets the "extracted_email" field.
func (_c *LeadAnalyticsCreate) SetExtractedEmail(v string) *LeadAnalyticsCreate {
	_c.mutation.SetExtractedEmail(v)
	return _c
}

// SetNillableExtractedEmail sets the "extracted_email" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableExtractedEmail(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetExtractedEmail(*v)
	}
	return _c
}

// SetExtractedCompany sets the "extracted_company" field.
func (_c *LeadAnalyticsCreate) SetExtractedCompany(v string) *LeadAnalyticsCreate {
	_c.mutation.SetExtractedCompany(v)
	return _c
}

// SetNillableExtractedCompany sets the "extracted_company" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableExtractedCompany(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetExtractedCompany(*v)
	}
	return _c
}

// SetSmartNotification sets the "smart_notification" field.
func (_c *LeadAnalyticsCreate) SetSmartNotification(v string) *LeadAnalyticsCreate {
	_c.mutation.SetSmartNotification(v)
	return _c
}

// SetNillableSmartNotification sets the "smart_notification" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableSmartNotification(v *string) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetSmartNotification(*v)
	}
	return _c
}

// SetCtaPricingClicked sets the "cta_pricing_clicked" field.
func (_c *LeadAnalyticsCreate) SetCtaPricingClicked(v bool) *LeadAnalyticsCreate {
	_c.mutation.SetCtaPricingClicked(v)
	return _c
}

// SetNillableCtaPricingClicked sets the "cta_pricing_clicked" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableCtaPricingClicked(v *bool) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetCtaPricingClicked(*v)
	}
	return _c
}

// SetCtaDemoClicked sets the "cta_demo_clicked" field.
func (_c *LeadAnalyticsCreate) SetCtaDemoClicked(v bool) *LeadAnalyticsCreate {
	_c.mutation.SetCtaDemoClicked(v)
	return _c
}

// SetNillableCtaDemoClicked sets the "cta_demo_clicked" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableCtaDemoClicked(v *bool) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetCtaDemoClicked(*v)
	}
	return _c
}

// SetCtaFollowupClicked sets the "cta_followup_clicked" field.
func (_c *LeadAnalyticsCreate) SetCtaFollowupClicked(v bool) *LeadAnalyticsCreate {
	_c.mutation.SetCtaFollowupClicked(v)
	return _c
}

// SetNillableCtaFollowupClicked sets the "cta_followup_clicked" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableCtaFollowupClicked(v *bool) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetCtaFollowupClicked(*v)
	}
	return _c
}

// SetCtaSampleClicked sets the "cta_sample_clicked" field.
func (_c *LeadAnalyticsCreate) SetCtaSampleClicked(v bool) *LeadAnalyticsCreate {
	_c.mutation.SetCtaSampleClicked(v)
	return _c
}

// SetNillableCtaSampleClicked sets the "cta_sample_clicked" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableCtaSampleClicked(v *bool) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetCtaSampleClicked(*v)
	}
	return _c
}

// SetCtaEscalatedToHuman sets the "cta_escalated_to_human" field.
func (_c *LeadAnalyticsCreate) SetCtaEscalatedToHuman(v bool) *LeadAnalyticsCreate {
	_c.mutation.SetCtaEscalatedToHuman(v)
	return _c
}

// SetNillableCtaEscalatedToHuman sets the "cta_escalated_to_human" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableCtaEscalatedToHuman(v *bool) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetCtaEscalatedToHuman(*v)
	}
	return _c
}

// SetDemoBookDatetime sets the "demo_book_datetime" field.
func (_c *LeadAnalyticsCreate) SetDemoBookDatetime(v time.Time) *LeadAnalyticsCreate {
	_c.mutation.SetDemoBookDatetime(v)
	return _c
}

// SetNillableDemoBookDatetime sets the "demo_book_datetime" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableDemoBookDatetime(v *time.Time) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetDemoBookDatetime(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *LeadAnalyticsCreate) SetReasoning(v map[string]interface{}) *LeadAnalyticsCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetPreviousCallsAnalyzed sets the "previous_calls_analyzed" field.
func (_c *LeadAnalyticsCreate) SetPreviousCallsAnalyzed(v int) *LeadAnalyticsCreate {
	_c.mutation.SetPreviousCallsAnalyzed(v)
	return _c
}

// SetNillablePreviousCallsAnalyzed sets the "previous_calls_analyzed" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillablePreviousCallsAnalyzed(v *int) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetPreviousCallsAnalyzed(*v)
	}
	return _c
}

// SetAnalysisTimestamp sets the "analysis_timestamp" field.
func (_c *LeadAnalyticsCreate) SetAnalysisTimestamp(v time.Time) *LeadAnalyticsCreate {
	_c.mutation.SetAnalysisTimestamp(v)
	return _c
}

// SetNillableAnalysisTimestamp sets the "analysis_timestamp" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableAnalysisTimestamp(v *time.Time) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetAnalysisTimestamp(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadAnalyticsCreate) SetCreatedAt(v time.Time) *LeadAnalyticsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableCreatedAt(v *time.Time) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadAnalyticsCreate) SetUpdatedAt(v time.Time) *LeadAnalyticsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadAnalyticsCreate) SetNillableUpdatedAt(v *time.Time) *LeadAnalyticsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LeadAnalyticsCreate) SetID(v string) *LeadAnalyticsCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LeadAnalyticsMutation object of the builder.
func (_c *LeadAnalyticsCreate) Mutation() *LeadAnalyticsMutation {
	return _c.mutation
}

// Save creates the LeadAnalytics in the database.
func (_c *LeadAnalyticsCreate) Save(ctx context.Context) (*LeadAnalytics, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadAnalyticsCreate) SaveX(ctx context.Context) *LeadAnalytics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadAnalyticsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadAnalyticsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadAnalyticsCreate) defaults() {
	if _, ok := _c.mutation.IntentScore(); !ok {
		v := leadanalytics.DefaultIntentScore
		_c.mutation.SetIntentScore(v)
	}
	if _, ok := _c.mutation.UrgencyScore(); !ok {
		v := leadanalytics.DefaultUrgencyScore
		_c.mutation.SetUrgencyScore(v)
	}
	if _, ok := _c.mutation.BudgetScore(); !ok {
		v := leadanalytics.DefaultBudgetScore
		_c.mutation.SetBudgetScore(v)
	}
	if _, ok := _c.mutation.FitScore(); !ok {
		v := leadanalytics.DefaultFitScore
		_c.mutation.SetFitScore(v)
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		v := leadanalytics.DefaultEngagementScore
		_c.mutation.SetEngagementScore(v)
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		v := leadanalytics.DefaultTotalScore
		_c.mutation.SetTotalScore(v)
	}
	if _, ok := _c.mutation.PreviousCallsAnalyzed(); !ok {
		v := leadanalytics.DefaultPreviousCallsAnalyzed
		_c.mutation.SetPreviousCallsAnalyzed(v)
	}
	if _, ok := _c.mutation.AnalysisTimestamp(); !ok {
		v := leadanalytics.DefaultAnalysisTimestamp()
		_c.mutation.SetAnalysisTimestamp(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := leadanalytics.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := leadanalytics.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadAnalyticsCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "LeadAnalytics.tenant_id"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "LeadAnalytics.phone"`)}
	}
	if _, ok := _c.mutation.AnalysisType(); !ok {
		return &ValidationError{Name: "analysis_type", err: errors.New(`ent: missing required field "LeadAnalytics.analysis_type"`)}
	}
	if v, ok := _c.mutation.AnalysisType(); ok {
		if err := leadanalytics.AnalysisTypeValidator(v); err != nil {
			return &ValidationError{Name: "analysis_type", err: fmt.Errorf(`ent: validator failed for field "LeadAnalytics.analysis_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntentScore(); !ok {
		return &ValidationError{Name: "intent_score", err: errors.New(`ent: missing required field "LeadAnalytics.intent_score"`)}
	}
	if _, ok := _c.mutation.UrgencyScore(); !ok {
		return &ValidationError{Name: "urgency_score", err: errors.New(`ent: missing required field "LeadAnalytics.urgency_score"`)}
	}
	if _, ok := _c.mutation.BudgetScore(); !ok {
		return &ValidationError{Name: "budget_score", err: errors.New(`ent: missing required field "LeadAnalytics.budget_score"`)}
	}
	if _, ok := _c.mutation.FitScore(); !ok {
		return &ValidationError{Name: "fit_score", err: errors.New(`ent: missing required field "LeadAnalytics.fit_score"`)}
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "LeadAnalytics.engagement_score"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "LeadAnalytics.total_score"`)}
	}
	if v, ok := _c.mutation.LeadStatusTag(); ok {
		if err := leadanalytics.LeadStatusTagValidator(v); err != nil {
			return &ValidationError{Name: "lead_status_tag", err: fmt.Errorf(`ent: validator failed for field "LeadAnalytics.lead_status_tag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreviousCallsAnalyzed(); !ok {
		return &ValidationError{Name: "previous_calls_analyzed", err: errors.New(`ent: missing required field "LeadAnalytics.previous_calls_analyzed"`)}
	}
	if _, ok := _c.mutation.AnalysisTimestamp(); !ok {
		return &ValidationError{Name: "analysis_timestamp", err: errors.New(`ent: missing required field "LeadAnalytics.analysis_timestamp"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LeadAnalytics.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LeadAnalytics.updated_at"`)}
	}
	return nil
}

func (_c *LeadAnalyticsCreate) sqlSave(ctx context.Context) (*LeadAnalytics, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LeadAnalytics.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadAnalyticsCreate) createSpec() (*LeadAnalytics, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadAnalytics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leadanalytics.Table, sqlgraph.NewFieldSpec(leadanalytics.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(leadanalytics.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(leadanalytics.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.AnalysisType(); ok {
		_spec.SetField(leadanalytics.FieldAnalysisType, field.TypeEnum, value)
		_node.AnalysisType = value
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(leadanalytics.FieldCallID, field.TypeString, value)
		_node.CallID = &value
	}
	if value, ok := _c.mutation.LatestCallID(); ok {
		_spec.SetField(leadanalytics.FieldLatestCallID, field.TypeString, value)
		_node.LatestCallID = &value
	}
	if value, ok := _c.mutation.IntentLevel(); ok {
		_spec.SetField(leadanalytics.FieldIntentLevel, field.TypeString, value)
		_node.IntentLevel = &value
	}
	if value, ok := _c.mutation.IntentScore(); ok {
		_spec.SetField(leadanalytics.FieldIntentScore, field.TypeInt, value)
		_node.IntentScore = value
	}
	if value, ok := _c.mutation.UrgencyLevel(); ok {
		_spec.SetField(leadanalytics.FieldUrgencyLevel, field.TypeString, value)
		_node.UrgencyLevel = &value
	}
	if value, ok := _c.mutation.UrgencyScore(); ok {
		_spec.SetField(leadanalytics.FieldUrgencyScore, field.TypeInt, value)
		_node.UrgencyScore = value
	}
	if value, ok := _c.mutation.BudgetConstraint(); ok {
		_spec.SetField(leadanalytics.FieldBudgetConstraint, field.TypeString, value)
		_node.BudgetConstraint = &value
	}
	if value, ok := _c.mutation.BudgetScore(); ok {
		_spec.SetField(leadanalytics.FieldBudgetScore, field.TypeInt, value)
		_node.BudgetScore = value
	}
	if value, ok := _c.mutation.FitAlignment(); ok {
		_spec.SetField(leadanalytics.FieldFitAlignment, field.TypeString, value)
		_node.FitAlignment = &value
	}
	if value, ok := _c.mutation.FitScore(); ok {
		_spec.SetField(leadanalytics.FieldFitScore, field.TypeInt, value)
		_node.FitScore = value
	}
	if value, ok := _c.mutation.EngagementHealth(); ok {
		_spec.SetField(leadanalytics.FieldEngagementHealth, field.TypeString, value)
		_node.EngagementHealth = &value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(leadanalytics.FieldEngagementScore, field.TypeInt, value)
		_node.EngagementScore = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(leadanalytics.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.LeadStatusTag(); ok {
		_spec.SetField(leadanalytics.FieldLeadStatusTag, field.TypeEnum, value)
		_node.LeadStatusTag = value
	}
	if value, ok := _c.mutation.ExtractedName(); ok {
		_spec.SetField(leadanalytics.FieldExtractedName, field.TypeString, value)
		_node.ExtractedName = &value
	}
	if value, ok := _c.mutation.ExtractedEmail(); ok {
		_spec.SetField(leadanalytics.FieldExtractedEmail, field.TypeString, value)
		_node.ExtractedEmail = &value
	}
	if value, ok := _c.mutation.ExtractedCompany(); ok {
		_spec.SetField(leadanalytics.FieldExtractedCompany, field.TypeString, value)
		_node.ExtractedCompany = &value
	}
	if value, ok := _c.mutation.SmartNotification(); ok {
		_spec.SetField(leadanalytics.FieldSmartNotification, field.TypeString, value)
		_node.SmartNotification = &value
	}
	if value, ok := _c.mutation.CtaPricingClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaPricingClicked, field.TypeBool, value)
		_node.CtaPricingClicked = &value
	}
	if value, ok := _c.mutation.CtaDemoClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaDemoClicked, field.TypeBool, value)
		_node.CtaDemoClicked = &value
	}
	if value, ok := _c.mutation.CtaFollowupClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaFollowupClicked, field.TypeBool, value)
		_node.CtaFollowupClicked = &value
	}
	if value, ok := _c.mutation.CtaSampleClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaSampleClicked, field.TypeBool, value)
		_node.CtaSampleClicked = &value
	}
	if value, ok := _c.mutation.CtaEscalatedToHuman(); ok {
		_spec.SetField(leadanalytics.FieldCtaEscalatedToHuman, field.TypeBool, value)
		_node.CtaEscalatedToHuman = &value
	}
	if value, ok := _c.mutation.DemoBookDatetime(); ok {
		_spec.SetField(leadanalytics.FieldDemoBookDatetime, field.TypeTime, value)
		_node.DemoBookDatetime = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(leadanalytics.FieldReasoning, field.TypeJSON, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.PreviousCallsAnalyzed(); ok {
		_spec.SetField(leadanalytics.FieldPreviousCallsAnalyzed, field.TypeInt, value)
		_node.PreviousCallsAnalyzed = value
	}
	if value, ok := _c.mutation.AnalysisTimestamp(); ok {
		_spec.SetField(leadanalytics.FieldAnalysisTimestamp, field.TypeTime, value)
		_node.AnalysisTimestamp = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(leadanalytics.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(leadanalytics.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LeadAnalyticsCreateBulk is the builder for creating many LeadAnalytics entities in bulk.
type LeadAnalyticsCreateBulk struct {
	config
	err      error
	builders []*LeadAnalyticsCreate
}

// Save creates the LeadAnalytics entities in the database.
func (_c *LeadAnalyticsCreateBulk) Save(ctx context.Context) ([]*LeadAnalytics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeadAnalytics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadAnalyticsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LeadAnalyticsCreateBulk) SaveX(ctx context.Context) []*LeadAnalytics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadAnalyticsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadAnalyticsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
