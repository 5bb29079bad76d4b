// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/leadanalytics"
	"github.com/ringstack/ringstack/ent/predicate"
)

// LeadAnalyticsUpdate is the builder for updating LeadAnalytics entities.
type LeadAnalyticsUpdate struct {
	config
	hooks    []Hook
	mutation *LeadAnalyticsMutation
}

// Where appends a list predicates to the LeadAnalyticsUpdate builder.
func (_u *LeadAnalyticsUpdate) Where(ps ...predicate.LeadAnalytics) *LeadAnalyticsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadAnalyticsUpdate) SetPhone(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillablePhone(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *LeadAnalyticsUpdate) SetCallID(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableCallID(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// ClearCallID clears the value of the "call_id" field.
func (_u *LeadAnalyticsUpdate) ClearCallID() *LeadAnalyticsUpdate {
	_u.mutation.ClearCallID()
	return _u
}

// SetLatestCallID sets the "latest_call_id" field.
func (_u *LeadAnalyticsUpdate) SetLatestCallID(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetLatestCallID(v)
	return _u
}

// SetNillableLatestCallID sets the "latest_call_id" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableLatestCallID(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetLatestCallID(*v)
	}
	return _u
}

// ClearLatestCallID clears the value of the "latest_call_id" field.
func (_u *LeadAnalyticsUpdate) ClearLatestCallID() *LeadAnalyticsUpdate {
	_u.mutation.ClearLatestCallID()
	return _u
}

// SetIntentLevel sets the "intent_level" field.
func (_u *LeadAnalyticsUpdate) SetIntentLevel(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetIntentLevel(v)
	return _u
}

// SetNillableIntentLevel sets the "intent_level" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableIntentLevel(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetIntentLevel(*v)
	}
	return _u
}

// ClearIntentLevel clears the value of the "intent_level" field.
func (_u *LeadAnalyticsUpdate) ClearIntentLevel() *LeadAnalyticsUpdate {
	_u.mutation.ClearIntentLevel()
	return _u
}

// SetIntentScore sets the "intent_score" field.
func (_u *LeadAnalyticsUpdate) SetIntentScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.ResetIntentScore()
	_u.mutation.SetIntentScore(v)
	return _u
}

// SetNillableIntentScore sets the "intent_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableIntentScore(v *int) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetIntentScore(*v)
	}
	return _u
}

// AddIntentScore adds value to the "intent_score" field.
func (_u *LeadAnalyticsUpdate) AddIntentScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.AddIntentScore(v)
	return _u
}

// SetUrgencyLevel sets the "urgency_level" field.
func (_u *LeadAnalyticsUpdate) SetUrgencyLevel(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetUrgencyLevel(v)
	return _u
}

// SetNillableUrgencyLevel sets the "urgency_level" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableUrgencyLevel(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetUrgencyLevel(*v)
	}
	return _u
}

// ClearUrgencyLevel clears the value of the "urgency_level" field.
func (_u *LeadAnalyticsUpdate) ClearUrgencyLevel() *LeadAnalyticsUpdate {
	_u.mutation.ClearUrgencyLevel()
	return _u
}

// SetUrgencyScore sets the "urgency_score" field.
func (_u *LeadAnalyticsUpdate) SetUrgencyScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.ResetUrgencyScore()
	_u.mutation.SetUrgencyScore(v)
	return _u
}

// SetNillableUrgencyScore sets the "urgency_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableUrgencyScore(v *int) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetUrgencyScore(*v)
	}
	return _u
}

// AddUrgencyScore adds value to the "urgency_score" field.
func (_u *LeadAnalyticsUpdate) AddUrgencyScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.AddUrgencyScore(v)
	return _u
}

// SetBudgetConstraint sets the "budget_constraint" field.
func (_u *LeadAnalyticsUpdate) SetBudgetConstraint(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetBudgetConstraint(v)
	return _u
}

// SetNillableBudgetConstraint sets the "budget_constraint" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableBudgetConstraint(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetBudgetConstraint(*v)
	}
	return _u
}

// ClearBudgetConstraint clears the value of the "budget_constraint" field.
func (_u *LeadAnalyticsUpdate) ClearBudgetConstraint() *LeadAnalyticsUpdate {
	_u.mutation.ClearBudgetConstraint()
	return _u
}

// SetBudgetScore sets the "budget_score" field.
func (_u *LeadAnalyticsUpdate) SetBudgetScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.ResetBudgetScore()
	_u.mutation.SetBudgetScore(v)
	return _u
}

// SetNillableBudgetScore sets the "budget_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableBudgetScore(v *int) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetBudgetScore(*v)
	}
	return _u
}

// AddBudgetScore adds value to the "budget_score" field.
func (_u *LeadAnalyticsUpdate) AddBudgetScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.AddBudgetScore(v)
	return _u
}

// SetFitAlignment sets the "fit_alignment" field.
func (_u *LeadAnalyticsUpdate) SetFitAlignment(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetFitAlignment(v)
	return _u
}

// SetNillableFitAlignment sets the "fit_alignment" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableFitAlignment(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetFitAlignment(*v)
	}
	return _u
}

// ClearFitAlignment clears the value of the "fit_alignment" field.
func (_u *LeadAnalyticsUpdate) ClearFitAlignment() *LeadAnalyticsUpdate {
	_u.mutation.ClearFitAlignment()
	return _u
}

// SetFitScore sets the "fit_score" field.
func (_u *LeadAnalyticsUpdate) SetFitScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.ResetFitScore()
	_u.mutation.SetFitScore(v)
	return _u
}

// SetNillableFitScore sets the "fit_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableFitScore(v *int) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetFitScore(*v)
	}
	return _u
}

// AddFitScore adds value to the "fit_score" field.
func (_u *LeadAnalyticsUpdate) AddFitScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.AddFitScore(v)
	return _u
}

// SetEngagementHealth sets the "engagement_health" field.
func (_u *LeadAnalyticsUpdate) SetEngagementHealth(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetEngagementHealth(v)
	return _u
}

// SetNillableEngagementHealth sets the "engagement_health" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableEngagementHealth(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetEngagementHealth(*v)
	}
	return _u
}

// ClearEngagementHealth clears the value of the "engagement_health" field.
func (_u *LeadAnalyticsUpdate) ClearEngagementHealth() *LeadAnalyticsUpdate {
	_u.mutation.ClearEngagementHealth()
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *LeadAnalyticsUpdate) SetEngagementScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableEngagementScore(v *int) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *LeadAnalyticsUpdate) AddEngagementScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *LeadAnalyticsUpdate) SetTotalScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableTotalScore(v *int) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *LeadAnalyticsUpdate) AddTotalScore(v int) *LeadAnalyticsUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetLeadStatusTag sets the "lead_status_tag" field.
func (_u *LeadAnalyticsUpdate) SetLeadStatusTag(v leadanalytics.LeadStatusTag) *LeadAnalyticsUpdate {
	_u.mutation.SetLeadStatusTag(v)
	return _u
}

// SetNillableLeadStatusTag sets the "lead_status_tag" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableLeadStatusTag(v *leadanalytics.LeadStatusTag) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetLeadStatusTag(*v)
	}
	return _u
}

// ClearLeadStatusTag clears the value of the "lead_status_tag" field.
func (_u *LeadAnalyticsUpdate) ClearLeadStatusTag() *LeadAnalyticsUpdate {
	_u.mutation.ClearLeadStatusTag()
	return _u
}

// SetExtractedName sets the "extracted_name" field.
func (_u *LeadAnalyticsUpdate) SetExtractedName(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetExtractedName(v)
	return _u
}

// SetNillableExtractedName sets the "extracted_name" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableExtractedName(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetExtractedName(*v)
	}
	return _u
}

// ClearExtractedName clears the value of the "extracted_name" field.
func (_u *LeadAnalyticsUpdate) ClearExtractedName() *LeadAnalyticsUpdate {
	_u.mutation.ClearExtractedName()
	return _u
}

// SetExtractedEmail sets the "extracted_email" field.
func (_u *LeadAnalyticsUpdate) SetExtractedEmail(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetExtractedEmail(v)
	return _u
}

// SetNillableExtractedEmail sets the "extracted_email" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableExtractedEmail(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetExtractedEmail(*v)
	}
	return _u
}

// ClearExtractedEmail clears the value of the "extracted_email" field.
func (_u *LeadAnalyticsUpdate) ClearExtractedEmail() *LeadAnalyticsUpdate {
	_u.mutation.ClearExtractedEmail()
	return _u
}

// SetExtractedCompany sets the "extracted_company" field.
func (_u *LeadAnalyticsUpdate) SetExtractedCompany(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetExtractedCompany(v)
	return _u
}

// SetNillableExtractedCompany sets the "extracted_company" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableExtractedCompany(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetExtractedCompany(*v)
	}
	return _u
}

// ClearExtractedCompany clears the value of the "extracted_company" field.
func (_u *LeadAnalyticsUpdate) ClearExtractedCompany() *LeadAnalyticsUpdate {
	_u.mutation.ClearExtractedCompany()
	return _u
}

// SetSmartNotification sets the "smart_notification" field.
func (_u *LeadAnalyticsUpdate) SetSmartNotification(v string) *LeadAnalyticsUpdate {
	_u.mutation.SetSmartNotification(v)
	return _u
}

// SetNillableSmartNotification sets the "smart_notification" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableSmartNotification(v *string) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetSmartNotification(*v)
	}
	return _u
}

// ClearSmartNotification clears the value of the "smart_notification" field.
func (_u *LeadAnalyticsUpdate) ClearSmartNotification() *LeadAnalyticsUpdate {
	_u.mutation.ClearSmartNotification()
	return _u
}

// SetCtaPricingClicked sets the "cta_pricing_clicked" field.
func (_u *LeadAnalyticsUpdate) SetCtaPricingClicked(v bool) *LeadAnalyticsUpdate {
	_u.mutation.SetCtaPricingClicked(v)
	return _u
}

// SetNillableCtaPricingClicked sets the "cta_pricing_clicked" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableCtaPricingClicked(v *bool) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetCtaPricingClicked(*v)
	}
	return _u
}

// ClearCtaPricingClicked clears the value of the "cta_pricing_clicked" field.
func (_u *LeadAnalyticsUpdate) ClearCtaPricingClicked() *LeadAnalyticsUpdate {
	_u.mutation.ClearCtaPricingClicked()
	return _u
}

// SetCtaDemoClicked sets the "cta_demo_clicked" field.
func (_u *LeadAnalyticsUpdate) SetCtaDemoClicked(v bool) *LeadAnalyticsUpdate {
	_u.mutation.SetCtaDemoClicked(v)
	return _u
}

// SetNillableCtaDemoClicked sets the "cta_demo_clicked" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableCtaDemoClicked(v *bool) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetCtaDemoClicked(*v)
	}
	return _u
}

// ClearCtaDemoClicked clears the value of the "cta_demo_clicked" field.
func (_u *LeadAnalyticsUpdate) ClearCtaDemoClicked() *LeadAnalyticsUpdate {
	_u.mutation.ClearCtaDemoClicked()
	return _u
}

// SetCtaFollowupClicked sets the "cta_followup_clicked" field.
func (_u *LeadAnalyticsUpdate) SetCtaFollowupClicked(v bool) *LeadAnalyticsUpdate {
	_u.mutation.SetCtaFollowupClicked(v)
	return _u
}

// SetNillableCtaFollowupClicked sets the "cta_followup_clicked" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableCtaFollowupClicked(v *bool) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetCtaFollowupClicked(*v)
	}
	return _u
}

// ClearCtaFollowupClicked clears the value of the "cta_followup_clicked" field.
func (_u *LeadAnalyticsUpdate) ClearCtaFollowupClicked() *LeadAnalyticsUpdate {
	_u.mutation.ClearCtaFollowupClicked()
	return _u
}

// SetCtaSampleClicked sets the "cta_sample_clicked" field.
func (_u *LeadAnalyticsUpdate) SetCtaSampleClicked(v bool) *LeadAnalyticsUpdate {
	_u.mutation.SetCtaSampleClicked(v)
	return _u
}

// SetNillableCtaSampleClicked sets the "cta_sample_clicked" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableCtaSampleClicked(v *bool) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetCtaSampleClicked(*v)
	}
	return _u
}

// ClearCtaSampleClicked clears the value of the "cta_sample_clicked" field.
func (_u *LeadAnalyticsUpdate) ClearCtaSampleClicked() *LeadAnalyticsUpdate {
	_u.mutation.ClearCtaSampleClicked()
	return _u
}

// SetCtaEscalatedToHuman sets the "cta_escalated_to_human" field.
func (_u *LeadAnalyticsUpdate) SetCtaEscalatedToHuman(v bool) *LeadAnalyticsUpdate {
	_u.mutation.SetCtaEscalatedToHuman(v)
	return _u
}

// SetNillableCtaEscalatedToHuman sets the "cta_escalated_to_human" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableCtaEscalatedToHuman(v *bool) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetCtaEscalatedToHuman(*v)
	}
	return _u
}

// ClearCtaEscalatedToHuman clears the value of the "cta_escalated_to_human" field.
func (_u *LeadAnalyticsUpdate) ClearCtaEscalatedToHuman() *LeadAnalyticsUpdate {
	_u.mutation.ClearCtaEscalatedToHuman()
	return _u
}

// SetDemoBookDatetime sets the "demo_book_datetime" field.
func (_u *LeadAnalyticsUpdate) SetDemoBookDatetime(v time.Time) *LeadAnalyticsUpdate {
	_u.mutation.SetDemoBookDatetime(v)
	return _u
}

// SetNillableDemoBookDatetime sets the "demo_book_datetime" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableDemoBookDatetime(v *time.Time) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetDemoBookDatetime(*v)
	}
	return _u
}

// ClearDemoBookDatetime clears the value of the "demo_book_datetime" field.
func (_u *LeadAnalyticsUpdate) ClearDemoBookDatetime() *LeadAnalyticsUpdate {
	_u.mutation.ClearDemoBookDatetime()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *LeadAnalyticsUpdate) SetReasoning(v map[string]interface{}) *LeadAnalyticsUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *LeadAnalyticsUpdate) ClearReasoning() *LeadAnalyticsUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetPreviousCallsAnalyzed sets the "previous_calls_analyzed" field.
func (_u *LeadAnalyticsUpdate) SetPreviousCallsAnalyzed(v int) *LeadAnalyticsUpdate {
	_u.mutation.ResetPreviousCallsAnalyzed()
	_u.mutation.SetPreviousCallsAnalyzed(v)
	return _u
}

// SetNillablePreviousCallsAnalyzed sets the "previous_calls_analyzed" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillablePreviousCallsAnalyzed(v *int) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetPreviousCallsAnalyzed(*v)
	}
	return _u
}

// AddPreviousCallsAnalyzed adds value to the "previous_calls_analyzed" field.
func (_u *LeadAnalyticsUpdate) AddPreviousCallsAnalyzed(v int) *LeadAnalyticsUpdate {
	_u.mutation.AddPreviousCallsAnalyzed(v)
	return _u
}

// SetAnalysisTimestamp sets the "analysis_timestamp" field.
func (_u *LeadAnalyticsUpdate) SetAnalysisTimestamp(v time.Time) *LeadAnalyticsUpdate {
	_u.mutation.SetAnalysisTimestamp(v)
	return _u
}

// SetNillableAnalysisTimestamp sets the "analysis_timestamp" field if the given value is not nil.
func (_u *LeadAnalyticsUpdate) SetNillableAnalysisTimestamp(v *time.Time) *LeadAnalyticsUpdate {
	if v != nil {
		_u.SetAnalysisTimestamp(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadAnalyticsUpdate) SetUpdatedAt(v time.Time) *LeadAnalyticsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeadAnalyticsMutation object of the builder.
func (_u *LeadAnalyticsUpdate) Mutation() *LeadAnalyticsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadAnalyticsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadAnalyticsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadAnalyticsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadAnalyticsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadAnalyticsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leadanalytics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadAnalyticsUpdate) check() error {
	if v, ok := _u.mutation.LeadStatusTag(); ok {
		if err := leadanalytics.LeadStatusTagValidator(v); err != nil {
			return &ValidationError{Name: "lead_status_tag", err: fmt.Errorf(`ent: validator failed for field "LeadAnalytics.lead_status_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadAnalyticsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadanalytics.Table, leadanalytics.Columns, sqlgraph.NewFieldSpec(leadanalytics.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(leadanalytics.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(leadanalytics.FieldCallID, field.TypeString, value)
	}
	if _u.mutation.CallIDCleared() {
		_spec.ClearField(leadanalytics.FieldCallID, field.TypeString)
	}
	if value, ok := _u.mutation.LatestCallID(); ok {
		_spec.SetField(leadanalytics.FieldLatestCallID, field.TypeString, value)
	}
	if _u.mutation.LatestCallIDCleared() {
		_spec.ClearField(leadanalytics.FieldLatestCallID, field.TypeString)
	}
	if value, ok := _u.mutation.IntentLevel(); ok {
		_spec.SetField(leadanalytics.FieldIntentLevel, field.TypeString, value)
	}
	if _u.mutation.IntentLevelCleared() {
		_spec.ClearField(leadanalytics.FieldIntentLevel, field.TypeString)
	}
	if value, ok := _u.mutation.IntentScore(); ok {
		_spec.SetField(leadanalytics.FieldIntentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntentScore(); ok {
		_spec.AddField(leadanalytics.FieldIntentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UrgencyLevel(); ok {
		_spec.SetField(leadanalytics.FieldUrgencyLevel, field.TypeString, value)
	}
	if _u.mutation.UrgencyLevelCleared() {
		_spec.ClearField(leadanalytics.FieldUrgencyLevel, field.TypeString)
	}
	if value, ok := _u.mutation.UrgencyScore(); ok {
		_spec.SetField(leadanalytics.FieldUrgencyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUrgencyScore(); ok {
		_spec.AddField(leadanalytics.FieldUrgencyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BudgetConstraint(); ok {
		_spec.SetField(leadanalytics.FieldBudgetConstraint, field.TypeString, value)
	}
	if _u.mutation.BudgetConstraintCleared() {
		_spec.ClearField(leadanalytics.FieldBudgetConstraint, field.TypeString)
	}
	if value, ok := _u.mutation.BudgetScore(); ok {
		_spec.SetField(leadanalytics.FieldBudgetScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBudgetScore(); ok {
		_spec.AddField(leadanalytics.FieldBudgetScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FitAlignment(); ok {
		_spec.SetField(leadanalytics.FieldFitAlignment, field.TypeString, value)
	}
	if _u.mutation.FitAlignmentCleared() {
		_spec.ClearField(leadanalytics.FieldFitAlignment, field.TypeString)
	}
	if value, ok := _u.mutation.FitScore(); ok {
		_spec.SetField(leadanalytics.FieldFitScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFitScore(); ok {
		_spec.AddField(leadanalytics.FieldFitScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementHealth(); ok {
		_spec.SetField(leadanalytics.FieldEngagementHealth, field.TypeString, value)
	}
	if _u.mutation.EngagementHealthCleared() {
		_spec.ClearField(leadanalytics.FieldEngagementHealth, field.TypeString)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(leadanalytics.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(leadanalytics.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(leadanalytics.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(leadanalytics.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeadStatusTag(); ok {
		_spec.SetField(leadanalytics.FieldLeadStatusTag, field.TypeEnum, value)
	}
	if _u.mutation.LeadStatusTagCleared() {
		_spec.ClearField(leadanalytics.FieldLeadStatusTag, field.TypeEnum)
	}
	if value, ok := _u.mutation.ExtractedName(); ok {
		_spec.SetField(leadanalytics.FieldExtractedName, field.TypeString, value)
	}
	if _u.mutation.ExtractedNameCleared() {
		_spec.ClearField(leadanalytics.FieldExtractedName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedEmail(); ok {
		_spec.SetField(leadanalytics.FieldExtractedEmail, field.TypeString, value)
	}
	if _u.mutation.ExtractedEmailCleared() {
		_spec.ClearField(leadanalytics.FieldExtractedEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCompany(); ok {
		_spec.SetField(leadanalytics.FieldExtractedCompany, field.TypeString, value)
	}
	if _u.mutation.ExtractedCompanyCleared() {
		_spec.ClearField(leadanalytics.FieldExtractedCompany, field.TypeString)
	}
	if value, ok := _u.mutation.SmartNotification(); ok {
		_spec.SetField(leadanalytics.FieldSmartNotification, field.TypeString, value)
	}
	if _u.mutation.SmartNotificationCleared() {
		_spec.ClearField(leadanalytics.FieldSmartNotification, field.TypeString)
	}
	if value, ok := _u.mutation.CtaPricingClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaPricingClicked, field.TypeBool, value)
	}
	if _u.mutation.CtaPricingClickedCleared() {
		_spec.ClearField(leadanalytics.FieldCtaPricingClicked, field.TypeBool)
	}
	if value, ok := _u.mutation.CtaDemoClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaDemoClicked, field.TypeBool, value)
	}
	if _u.mutation.CtaDemoClickedCleared() {
		_spec.ClearField(leadanalytics.FieldCtaDemoClicked, field.TypeBool)
	}
	if value, ok := _u.mutation.CtaFollowupClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaFollowupClicked, field.TypeBool, value)
	}
	if _u.mutation.CtaFollowupClickedCleared() {
		_spec.ClearField(leadanalytics.FieldCtaFollowupClicked, field.TypeBool)
	}
	if value, ok := _u.mutation.CtaSampleClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaSampleClicked, field.TypeBool, value)
	}
	if _u.mutation.CtaSampleClickedCleared() {
		_spec.ClearField(leadanalytics.FieldCtaSampleClicked, field.TypeBool)
	}
	if value, ok := _u.mutation.CtaEscalatedToHuman(); ok {
		_spec.SetField(leadanalytics.FieldCtaEscalatedToHuman, field.TypeBool, value)
	}
	if _u.mutation.CtaEscalatedToHumanCleared() {
		_spec.ClearField(leadanalytics.FieldCtaEscalatedToHuman, field.TypeBool)
	}
	if value, ok := _u.mutation.DemoBookDatetime(); ok {
		_spec.SetField(leadanalytics.FieldDemoBookDatetime, field.TypeTime, value)
	}
	if _u.mutation.DemoBookDatetimeCleared() {
		_spec.ClearField(leadanalytics.FieldDemoBookDatetime, field.TypeTime)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(leadanalytics.FieldReasoning, field.TypeJSON, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(leadanalytics.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreviousCallsAnalyzed(); ok {
		_spec.SetField(leadanalytics.FieldPreviousCallsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousCallsAnalyzed(); ok {
		_spec.AddField(leadanalytics.FieldPreviousCallsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnalysisTimestamp(); ok {
		_spec.SetField(leadanalytics.FieldAnalysisTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leadanalytics.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadanalytics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadAnalyticsUpdateOne is the builder for updating a single LeadAnalytics entity.
type LeadAnalyticsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadAnalyticsMutation
}

// SetPhone sets the "phone" field.
func (_u *LeadAnalyticsUpdateOne) SetPhone(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillablePhone(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *LeadAnalyticsUpdateOne) SetCallID(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableCallID(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// ClearCallID clears the value of the "call_id" field.
func (_u *LeadAnalyticsUpdateOne) ClearCallID() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearCallID()
	return _u
}

// SetLatestCallID sets the "latest_call_id" field.
func (_u *LeadAnalyticsUpdateOne) SetLatestCallID(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetLatestCallID(v)
	return _u
}

// SetNillableLatestCallID sets the "latest_call_id" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableLatestCallID(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetLatestCallID(*v)
	}
	return _u
}

// ClearLatestCallID clears the value of the "latest_call_id" field.
func (_u *LeadAnalyticsUpdateOne) ClearLatestCallID() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearLatestCallID()
	return _u
}

// SetIntentLevel sets the "intent_level" field.
func (_u *LeadAnalyticsUpdateOne) SetIntentLevel(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetIntentLevel(v)
	return _u
}

// SetNillableIntentLevel sets the "intent_level" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableIntentLevel(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetIntentLevel(*v)
	}
	return _u
}

// ClearIntentLevel clears the value of the "intent_level" field.
func (_u *LeadAnalyticsUpdateOne) ClearIntentLevel() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearIntentLevel()
	return _u
}

// SetIntentScore sets the "intent_score" field.
func (_u *LeadAnalyticsUpdateOne) SetIntentScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.ResetIntentScore()
	_u.mutation.SetIntentScore(v)
	return _u
}

// SetNillableIntentScore sets the "intent_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableIntentScore(v *int) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetIntentScore(*v)
	}
	return _u
}

// AddIntentScore adds value to the "intent_score" field.
func (_u *LeadAnalyticsUpdateOne) AddIntentScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.AddIntentScore(v)
	return _u
}

// SetUrgencyLevel sets the "urgency_level" field.
func (_u *LeadAnalyticsUpdateOne) SetUrgencyLevel(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetUrgencyLevel(v)
	return _u
}

// SetNillableUrgencyLevel sets the "urgency_level" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableUrgencyLevel(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetUrgencyLevel(*v)
	}
	return _u
}

// ClearUrgencyLevel clears the value of the "urgency_level" field.
func (_u *LeadAnalyticsUpdateOne) ClearUrgencyLevel() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearUrgencyLevel()
	return _u
}

// SetUrgencyScore sets the "urgency_score" field.
func (_u *LeadAnalyticsUpdateOne) SetUrgencyScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.ResetUrgencyScore()
	_u.mutation.SetUrgencyScore(v)
	return _u
}

// SetNillableUrgencyScore sets the "urgency_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableUrgencyScore(v *int) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetUrgencyScore(*v)
	}
	return _u
}

// AddUrgencyScore adds value to the "urgency_score" field.
func (_u *LeadAnalyticsUpdateOne) AddUrgencyScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.AddUrgencyScore(v)
	return _u
}

// SetBudgetConstraint sets the "budget_constraint" field.
func (_u *LeadAnalyticsUpdateOne) SetBudgetConstraint(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetBudgetConstraint(v)
	return _u
}

// SetNillableBudgetConstraint sets the "budget_constraint" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableBudgetConstraint(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetBudgetConstraint(*v)
	}
	return _u
}

// ClearBudgetConstraint clears the value of the "budget_constraint" field.
func (_u *LeadAnalyticsUpdateOne) ClearBudgetConstraint() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearBudgetConstraint()
	return _u
}

// SetBudgetScore sets the "budget_score" field.
func (_u *LeadAnalyticsUpdateOne) SetBudgetScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.ResetBudgetScore()
	_u.mutation.SetBudgetScore(v)
	return _u
}

// SetNillableBudgetScore sets the "budget_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableBudgetScore(v *int) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetBudgetScore(*v)
	}
	return _u
}

// AddBudgetScore adds value to the "budget_score" field.
func (_u *LeadAnalyticsUpdateOne) AddBudgetScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.AddBudgetScore(v)
	return _u
}

// SetFitAlignment sets the "fit_alignment" field.
func (_u *LeadAnalyticsUpdateOne) SetFitAlignment(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetFitAlignment(v)
	return _u
}

// SetNillableFitAlignment sets the "fit_alignment" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableFitAlignment(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetFitAlignment(*v)
	}
	return _u
}

// ClearFitAlignment clears the value of the "fit_alignment" field.
func (_u *LeadAnalyticsUpdateOne) ClearFitAlignment() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearFitAlignment()
	return _u
}

// SetFitScore sets the "fit_score" field.
func (_u *LeadAnalyticsUpdateOne) SetFitScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.ResetFitScore()
	_u.mutation.SetFitScore(v)
	return _u
}

// SetNillableFitScore sets the "fit_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableFitScore(v *int) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetFitScore(*v)
	}
	return _u
}

// AddFitScore adds value to the "fit_score" field.
func (_u *LeadAnalyticsUpdateOne) AddFitScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.AddFitScore(v)
	return _u
}

// SetEngagementHealth sets the "engagement_health" field.
func (_u *LeadAnalyticsUpdateOne) SetEngagementHealth(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetEngagementHealth(v)
	return _u
}

// SetNillableEngagementHealth sets the "engagement_health" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableEngagementHealth(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetEngagementHealth(*v)
	}
	return _u
}

// ClearEngagementHealth clears the value of the "engagement_health" field.
func (_u *LeadAnalyticsUpdateOne) ClearEngagementHealth() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearEngagementHealth()
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *LeadAnalyticsUpdateOne) SetEngagementScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableEngagementScore(v *int) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *LeadAnalyticsUpdateOne) AddEngagementScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *LeadAnalyticsUpdateOne) SetTotalScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableTotalScore(v *int) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *LeadAnalyticsUpdateOne) AddTotalScore(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetLeadStatusTag sets the "lead_status_tag" field.
func (_u *LeadAnalyticsUpdateOne) SetLeadStatusTag(v leadanalytics.LeadStatusTag) *LeadAnalyticsUpdateOne {
	_u.mutation.SetLeadStatusTag(v)
	return _u
}

// SetNillableLeadStatusTag sets the "lead_status_tag" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableLeadStatusTag(v *leadanalytics.LeadStatusTag) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetLeadStatusTag(*v)
	}
	return _u
}

// ClearLeadStatusTag clears the value of the "lead_status_tag" field.
func (_u *LeadAnalyticsUpdateOne) ClearLeadStatusTag() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearLeadStatusTag()
	return _u
}

// SetExtractedName sets the "extracted_name" field.
func (_u *LeadAnalyticsUpdateOne) SetExtractedName(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetExtractedName(v)
	return _u
}

// SetNillableExtractedName sets the "extracted_name" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableExtractedName(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetExtractedName(*v)
	}
	return _u
}

// ClearExtractedName clears the value of the "extracted_name" field.
func (_u *LeadAnalyticsUpdateOne) ClearExtractedName() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearExtractedName()
	return _u
}

// SetExtractedEmail sets the "extracted_email" field.
func (_u *LeadAnalyticsUpdateOne) SetExtractedEmail(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetExtractedEmail(v)
	return _u
}

// SetNillableExtractedEmail sets the "extracted_email" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableExtractedEmail(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetExtractedEmail(*v)
	}
	return _u
}

// ClearExtractedEmail clears the value of the "extracted_email" field.
func (_u *LeadAnalyticsUpdateOne) ClearExtractedEmail() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearExtractedEmail()
	return _u
}

// SetExtractedCompany sets the "extracted_company" field.
func (_u *LeadAnalyticsUpdateOne) SetExtractedCompany(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetExtractedCompany(v)
	return _u
}

// SetNillableExtractedCompany sets the "extracted_company" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableExtractedCompany(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetExtractedCompany(*v)
	}
	return _u
}

// ClearExtractedCompany clears the value of the "extracted_company" field.
func (_u *LeadAnalyticsUpdateOne) ClearExtractedCompany() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearExtractedCompany()
	return _u
}

// SetSmartNotification sets the "smart_notification" field.
func (_u *LeadAnalyticsUpdateOne) SetSmartNotification(v string) *LeadAnalyticsUpdateOne {
	_u.mutation.SetSmartNotification(v)
	return _u
}

// SetNillableSmartNotification sets the "smart_notification" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableSmartNotification(v *string) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetSmartNotification(*v)
	}
	return _u
}

// ClearSmartNotification clears the value of the "smart_notification" field.
func (_u *LeadAnalyticsUpdateOne) ClearSmartNotification() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearSmartNotification()
	return _u
}

// SetCtaPricingClicked sets the "cta_pricing_clicked" field.
func (_u *LeadAnalyticsUpdateOne) SetCtaPricingClicked(v bool) *LeadAnalyticsUpdateOne {
	_u.mutation.SetCtaPricingClicked(v)
	return _u
}

// SetNillableCtaPricingClicked sets the "cta_pricing_clicked" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableCtaPricingClicked(v *bool) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetCtaPricingClicked(*v)
	}
	return _u
}

// ClearCtaPricingClicked clears the value of the "cta_pricing_clicked" field.
func (_u *LeadAnalyticsUpdateOne) ClearCtaPricingClicked() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearCtaPricingClicked()
	return _u
}

// SetCtaDemoClicked sets the "cta_demo_clicked" field.
func (_u *LeadAnalyticsUpdateOne) SetCtaDemoClicked(v bool) *LeadAnalyticsUpdateOne {
	_u.mutation.SetCtaDemoClicked(v)
	return _u
}

// SetNillableCtaDemoClicked sets the "cta_demo_clicked" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableCtaDemoClicked(v *bool) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetCtaDemoClicked(*v)
	}
	return _u
}

// ClearCtaDemoClicked clears the value of the "cta_demo_clicked" field.
func (_u *LeadAnalyticsUpdateOne) ClearCtaDemoClicked() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearCtaDemoClicked()
	return _u
}

// SetCtaFollowupClicked sets the "cta_followup_clicked" field.
func (_u *LeadAnalyticsUpdateOne) SetCtaFollowupClicked(v bool) *LeadAnalyticsUpdateOne {
	_u.mutation.SetCtaFollowupClicked(v)
	return _u
}

// SetNillableCtaFollowupClicked sets the "cta_followup_clicked" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableCtaFollowupClicked(v *bool) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetCtaFollowupClicked(*v)
	}
	return _u
}

// ClearCtaFollowupClicked clears the value of the "cta_followup_clicked" field.
func (_u *LeadAnalyticsUpdateOne) ClearCtaFollowupClicked() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearCtaFollowupClicked()
	return _u
}

// SetCtaSampleClicked sets the "cta_sample_clicked" field.
func (_u *LeadAnalyticsUpdateOne) SetCtaSampleClicked(v bool) *LeadAnalyticsUpdateOne {
	_u.mutation.SetCtaSampleClicked(v)
	return _u
}

// SetNillableCtaSampleClicked sets the "cta_sample_clicked" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableCtaSampleClicked(v *bool) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetCtaSampleClicked(*v)
	}
	return _u
}

// ClearCtaSampleClicked clears the value of the "cta_sample_clicked" field.
func (_u *LeadAnalyticsUpdateOne) ClearCtaSampleClicked() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearCtaSampleClicked()
	return _u
}

// SetCtaEscalatedToHuman sets the "cta_escalated_to_human" field.
func (_u *LeadAnalyticsUpdateOne) SetCtaEscalatedToHuman(v bool) *LeadAnalyticsUpdateOne {
	_u.mutation.SetCtaEscalatedToHuman(v)
	return _u
}

// SetNillableCtaEscalatedToHuman sets the "cta_escalated_to_human" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableCtaEscalatedToHuman(v *bool) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetCtaEscalatedToHuman(*v)
	}
	return _u
}

// ClearCtaEscalatedToHuman clears the value of the "cta_escalated_to_human" field.
func (_u *LeadAnalyticsUpdateOne) ClearCtaEscalatedToHuman() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearCtaEscalatedToHuman()
	return _u
}

// SetDemoBookDatetime sets the "demo_book_datetime" field.
func (_u *LeadAnalyticsUpdateOne) SetDemoBookDatetime(v time.Time) *LeadAnalyticsUpdateOne {
	_u.mutation.SetDemoBookDatetime(v)
	return _u
}

// SetNillableDemoBookDatetime sets the "demo_book_datetime" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableDemoBookDatetime(v *time.Time) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetDemoBookDatetime(*v)
	}
	return _u
}

// ClearDemoBookDatetime clears the value of the "demo_book_datetime" field.
func (_u *LeadAnalyticsUpdateOne) ClearDemoBookDatetime() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearDemoBookDatetime()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *LeadAnalyticsUpdateOne) SetReasoning(v map[string]interface{}) *LeadAnalyticsUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *LeadAnalyticsUpdateOne) ClearReasoning() *LeadAnalyticsUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetPreviousCallsAnalyzed sets the "previous_calls_analyzed" field.
func (_u *LeadAnalyticsUpdateOne) SetPreviousCallsAnalyzed(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.ResetPreviousCallsAnalyzed()
	_u.mutation.SetPreviousCallsAnalyzed(v)
	return _u
}

// SetNillablePreviousCallsAnalyzed sets the "previous_calls_analyzed" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillablePreviousCallsAnalyzed(v *int) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetPreviousCallsAnalyzed(*v)
	}
	return _u
}

// AddPreviousCallsAnalyzed adds value to the "previous_calls_analyzed" field.
func (_u *LeadAnalyticsUpdateOne) AddPreviousCallsAnalyzed(v int) *LeadAnalyticsUpdateOne {
	_u.mutation.AddPreviousCallsAnalyzed(v)
	return _u
}

// SetAnalysisTimestamp sets the "analysis_timestamp" field.
func (_u *LeadAnalyticsUpdateOne) SetAnalysisTimestamp(v time.Time) *LeadAnalyticsUpdateOne {
	_u.mutation.SetAnalysisTimestamp(v)
	return _u
}

// SetNillableAnalysisTimestamp sets the "analysis_timestamp" field if the given value is not nil.
func (_u *LeadAnalyticsUpdateOne) SetNillableAnalysisTimestamp(v *time.Time) *LeadAnalyticsUpdateOne {
	if v != nil {
		_u.SetAnalysisTimestamp(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadAnalyticsUpdateOne) SetUpdatedAt(v time.Time) *LeadAnalyticsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeadAnalyticsMutation object of the builder.
func (_u *LeadAnalyticsUpdateOne) Mutation() *LeadAnalyticsMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeadAnalyticsUpdate builder.
func (_u *LeadAnalyticsUpdateOne) Where(ps ...predicate.LeadAnalytics) *LeadAnalyticsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadAnalyticsUpdateOne) Select(field string, fields ...string) *LeadAnalyticsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeadAnalytics entity.
func (_u *LeadAnalyticsUpdateOne) Save(ctx context.Context) (*LeadAnalytics, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadAnalyticsUpdateOne) SaveX(ctx context.Context) *LeadAnalytics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadAnalyticsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadAnalyticsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadAnalyticsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leadanalytics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadAnalyticsUpdateOne) check() error {
	if v, ok := _u.mutation.LeadStatusTag(); ok {
		if err := leadanalytics.LeadStatusTagValidator(v); err != nil {
			return &ValidationError{Name: "lead_status_tag", err: fmt.Errorf(`ent: validator failed for field "LeadAnalytics.lead_status_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadAnalyticsUpdateOne) sqlSave(ctx context.Context) (_node *LeadAnalytics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadanalytics.Table, leadanalytics.Columns, sqlgraph.NewFieldSpec(leadanalytics.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeadAnalytics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadanalytics.FieldID)
		for _, f := range fields {
			if !leadanalytics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leadanalytics.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(leadanalytics.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(leadanalytics.FieldCallID, field.TypeString, value)
	}
	if _u.mutation.CallIDCleared() {
		_spec.ClearField(leadanalytics.FieldCallID, field.TypeString)
	}
	if value, ok := _u.mutation.LatestCallID(); ok {
		_spec.SetField(leadanalytics.FieldLatestCallID, field.TypeString, value)
	}
	if _u.mutation.LatestCallIDCleared() {
		_spec.ClearField(leadanalytics.FieldLatestCallID, field.TypeString)
	}
	if value, ok := _u.mutation.IntentLevel(); ok {
		_spec.SetField(leadanalytics.FieldIntentLevel, field.TypeString, value)
	}
	if _u.mutation.IntentLevelCleared() {
		_spec.ClearField(leadanalytics.FieldIntentLevel, field.TypeString)
	}
	if value, ok := _u.mutation.IntentScore(); ok {
		_spec.SetField(leadanalytics.FieldIntentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntentScore(); ok {
		_spec.AddField(leadanalytics.FieldIntentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UrgencyLevel(); ok {
		_spec.SetField(leadanalytics.FieldUrgencyLevel, field.TypeString, value)
	}
	if _u.mutation.UrgencyLevelCleared() {
		_spec.ClearField(leadanalytics.FieldUrgencyLevel, field.TypeString)
	}
	if value, ok := _u.mutation.UrgencyScore(); ok {
		_spec.SetField(leadanalytics.FieldUrgencyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUrgencyScore(); ok {
		_spec.AddField(leadanalytics.FieldUrgencyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BudgetConstraint(); ok {
		_spec.SetField(leadanalytics.FieldBudgetConstraint, field.TypeString, value)
	}
	if _u.mutation.BudgetConstraintCleared() {
		_spec.ClearField(leadanalytics.FieldBudgetConstraint, field.TypeString)
	}
	if value, ok := _u.mutation.BudgetScore(); ok {
		_spec.SetField(leadanalytics.FieldBudgetScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBudgetScore(); ok {
		_spec.AddField(leadanalytics.FieldBudgetScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FitAlignment(); ok {
		_spec.SetField(leadanalytics.FieldFitAlignment, field.TypeString, value)
	}
	if _u.mutation.FitAlignmentCleared() {
		_spec.ClearField(leadanalytics.FieldFitAlignment, field.TypeString)
	}
	if value, ok := _u.mutation.FitScore(); ok {
		_spec.SetField(leadanalytics.FieldFitScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFitScore(); ok {
		_spec.AddField(leadanalytics.FieldFitScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementHealth(); ok {
		_spec.SetField(leadanalytics.FieldEngagementHealth, field.TypeString, value)
	}
	if _u.mutation.EngagementHealthCleared() {
		_spec.ClearField(leadanalytics.FieldEngagementHealth, field.TypeString)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(leadanalytics.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(leadanalytics.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(leadanalytics.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(leadanalytics.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeadStatusTag(); ok {
		_spec.SetField(leadanalytics.FieldLeadStatusTag, field.TypeEnum, value)
	}
	if _u.mutation.LeadStatusTagCleared() {
		_spec.ClearField(leadanalytics.FieldLeadStatusTag, field.TypeEnum)
	}
	if value, ok := _u.mutation.ExtractedName(); ok {
		_spec.SetField(leadanalytics.FieldExtractedName, field.TypeString, value)
	}
	if _u.mutation.ExtractedNameCleared() {
		_spec.ClearField(leadanalytics.FieldExtractedName, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedEmail(); ok {
		_spec.SetField(leadanalytics.FieldExtractedEmail, field.TypeString, value)
	}
	if _u.mutation.ExtractedEmailCleared() {
		_spec.ClearField(leadanalytics.FieldExtractedEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCompany(); ok {
		_spec.SetField(leadanalytics.FieldExtractedCompany, field.TypeString, value)
	}
	if _u.mutation.ExtractedCompanyCleared() {
		_spec.ClearField(leadanalytics.FieldExtractedCompany, field.TypeString)
	}
	if value, ok := _u.mutation.SmartNotification(); ok {
		_spec.SetField(leadanalytics.FieldSmartNotification, field.TypeString, value)
	}
	if _u.mutation.SmartNotificationCleared() {
		_spec.ClearField(leadanalytics.FieldSmartNotification, field.TypeString)
	}
	if value, ok := _u.mutation.CtaPricingClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaPricingClicked, field.TypeBool, value)
	}
	if _u.mutation.CtaPricingClickedCleared() {
		_spec.ClearField(leadanalytics.FieldCtaPricingClicked, field.TypeBool)
	}
	if value, ok := _u.mutation.CtaDemoClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaDemoClicked, field.TypeBool, value)
	}
	if _u.mutation.CtaDemoClickedCleared() {
		_spec.ClearField(leadanalytics.FieldCtaDemoClicked, field.TypeBool)
	}
	if value, ok := _u.mutation.CtaFollowupClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaFollowupClicked, field.TypeBool, value)
	}
	if _u.mutation.CtaFollowupClickedCleared() {
		_spec.ClearField(leadanalytics.FieldCtaFollowupClicked, field.TypeBool)
	}
	if value, ok := _u.mutation.CtaSampleClicked(); ok {
		_spec.SetField(leadanalytics.FieldCtaSampleClicked, field.TypeBool, value)
	}
	if _u.mutation.CtaSampleClickedCleared() {
		_spec.ClearField(leadanalytics.FieldCtaSampleClicked, field.TypeBool)
	}
	if value, ok := _u.mutation.CtaEscalatedToHuman(); ok {
		_spec.SetField(leadanalytics.FieldCtaEscalatedToHuman, field.TypeBool, value)
	}
	if _u.mutation.CtaEscalatedToHumanCleared() {
		_spec.ClearField(leadanalytics.FieldCtaEscalatedToHuman, field.TypeBool)
	}
	if value, ok := _u.mutation.DemoBookDatetime(); ok {
		_spec.SetField(leadanalytics.FieldDemoBookDatetime, field.TypeTime, value)
	}
	if _u.mutation.DemoBookDatetimeCleared() {
		_spec.ClearField(leadanalytics.FieldDemoBookDatetime, field.TypeTime)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(leadanalytics.FieldReasoning, field.TypeJSON, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(leadanalytics.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreviousCallsAnalyzed(); ok {
		_spec.SetField(leadanalytics.FieldPreviousCallsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousCallsAnalyzed(); ok {
		_spec.AddField(leadanalytics.FieldPreviousCallsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnalysisTimestamp(); ok {
		_spec.SetField(leadanalytics.FieldAnalysisTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leadanalytics.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LeadAnalytics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadanalytics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
