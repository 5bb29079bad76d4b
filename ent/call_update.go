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
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/predicate"
)

// CallUpdate is the builder for updating Call entities.
type CallUpdate struct {
	config
	hooks    []Hook
	mutation *CallMutation
}

// Where appends a list predicates to the CallUpdate builder.
func (_u *CallUpdate) Where(ps ...predicate.Call) *CallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *CallUpdate) SetTenantID(v string) *CallUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableTenantID(v *string) *CallUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CallUpdate) SetAgentID(v string) *CallUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableAgentID(v *string) *CallUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *CallUpdate) ClearAgentID() *CallUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *CallUpdate) SetCampaignID(v string) *CallUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableCampaignID(v *string) *CallUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *CallUpdate) ClearCampaignID() *CallUpdate {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *CallUpdate) SetContactID(v string) *CallUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableContactID(v *string) *CallUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *CallUpdate) ClearContactID() *CallUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetQueueItemID sets the "queue_item_id" field.
func (_u *CallUpdate) SetQueueItemID(v string) *CallUpdate {
	_u.mutation.SetQueueItemID(v)
	return _u
}

// SetNillableQueueItemID sets the "queue_item_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableQueueItemID(v *string) *CallUpdate {
	if v != nil {
		_u.SetQueueItemID(*v)
	}
	return _u
}

// ClearQueueItemID clears the value of the "queue_item_id" field.
func (_u *CallUpdate) ClearQueueItemID() *CallUpdate {
	_u.mutation.ClearQueueItemID()
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *CallUpdate) SetExecutionID(v string) *CallUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *CallUpdate) SetNillableExecutionID(v *string) *CallUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *CallUpdate) ClearExecutionID() *CallUpdate {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetFromPhone sets the "from_phone" field.
func (_u *CallUpdate) SetFromPhone(v string) *CallUpdate {
	_u.mutation.SetFromPhone(v)
	return _u
}

// SetNillableFromPhone sets the "from_phone" field if the given value is not nil.
func (_u *CallUpdate) SetNillableFromPhone(v *string) *CallUpdate {
	if v != nil {
		_u.SetFromPhone(*v)
	}
	return _u
}

// ClearFromPhone clears the value of the "from_phone" field.
func (_u *CallUpdate) ClearFromPhone() *CallUpdate {
	_u.mutation.ClearFromPhone()
	return _u
}

// SetToPhone sets the "to_phone" field.
func (_u *CallUpdate) SetToPhone(v string) *CallUpdate {
	_u.mutation.SetToPhone(v)
	return _u
}

// SetNillableToPhone sets the "to_phone" field if the given value is not nil.
func (_u *CallUpdate) SetNillableToPhone(v *string) *CallUpdate {
	if v != nil {
		_u.SetToPhone(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CallUpdate) SetDirection(v call.Direction) *CallUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CallUpdate) SetNillableDirection(v *call.Direction) *CallUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CallUpdate) SetStatus(v call.Status) *CallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CallUpdate) SetNillableStatus(v *call.Status) *CallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLifecycleStatus sets the "lifecycle_status" field.
func (_u *CallUpdate) SetLifecycleStatus(v call.LifecycleStatus) *CallUpdate {
	_u.mutation.SetLifecycleStatus(v)
	return _u
}

// SetNillableLifecycleStatus sets the "lifecycle_status" field if the given value is not nil.
func (_u *CallUpdate) SetNillableLifecycleStatus(v *call.LifecycleStatus) *CallUpdate {
	if v != nil {
		_u.SetLifecycleStatus(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallUpdate) SetDurationSeconds(v int) *CallUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallUpdate) SetNillableDurationSeconds(v *int) *CallUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallUpdate) AddDurationSeconds(v int) *CallUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetBilledMinutes sets the "billed_minutes" field.
func (_u *CallUpdate) SetBilledMinutes(v int) *CallUpdate {
	_u.mutation.ResetBilledMinutes()
	_u.mutation.SetBilledMinutes(v)
	return _u
}

// SetNillableBilledMinutes sets the "billed_minutes" field if the given value is not nil.
func (_u *CallUpdate) SetNillableBilledMinutes(v *int) *CallUpdate {
	if v != nil {
		_u.SetBilledMinutes(*v)
	}
	return _u
}

// AddBilledMinutes adds value to the "billed_minutes" field.
func (_u *CallUpdate) AddBilledMinutes(v int) *CallUpdate {
	_u.mutation.AddBilledMinutes(v)
	return _u
}

// SetCreditsUsed sets the "credits_used" field.
func (_u *CallUpdate) SetCreditsUsed(v int) *CallUpdate {
	_u.mutation.ResetCreditsUsed()
	_u.mutation.SetCreditsUsed(v)
	return _u
}

// SetNillableCreditsUsed sets the "credits_used" field if the given value is not nil.
func (_u *CallUpdate) SetNillableCreditsUsed(v *int) *CallUpdate {
	if v != nil {
		_u.SetCreditsUsed(*v)
	}
	return _u
}

// AddCreditsUsed adds value to the "credits_used" field.
func (_u *CallUpdate) AddCreditsUsed(v int) *CallUpdate {
	_u.mutation.AddCreditsUsed(v)
	return _u
}

// SetHangupBy sets the "hangup_by" field.
func (_u *CallUpdate) SetHangupBy(v string) *CallUpdate {
	_u.mutation.SetHangupBy(v)
	return _u
}

// SetNillableHangupBy sets the "hangup_by" field if the given value is not nil.
func (_u *CallUpdate) SetNillableHangupBy(v *string) *CallUpdate {
	if v != nil {
		_u.SetHangupBy(*v)
	}
	return _u
}

// ClearHangupBy clears the value of the "hangup_by" field.
func (_u *CallUpdate) ClearHangupBy() *CallUpdate {
	_u.mutation.ClearHangupBy()
	return _u
}

// SetHangupReason sets the "hangup_reason" field.
func (_u *CallUpdate) SetHangupReason(v string) *CallUpdate {
	_u.mutation.SetHangupReason(v)
	return _u
}

// SetNillableHangupReason sets the "hangup_reason" field if the given value is not nil.
func (_u *CallUpdate) SetNillableHangupReason(v *string) *CallUpdate {
	if v != nil {
		_u.SetHangupReason(*v)
	}
	return _u
}

// ClearHangupReason clears the value of the "hangup_reason" field.
func (_u *CallUpdate) ClearHangupReason() *CallUpdate {
	_u.mutation.ClearHangupReason()
	return _u
}

// SetHangupProviderCode sets the "hangup_provider_code" field.
func (_u *CallUpdate) SetHangupProviderCode(v string) *CallUpdate {
	_u.mutation.SetHangupProviderCode(v)
	return _u
}

// SetNillableHangupProviderCode sets the "hangup_provider_code" field if the given value is not nil.
func (_u *CallUpdate) SetNillableHangupProviderCode(v *string) *CallUpdate {
	if v != nil {
		_u.SetHangupProviderCode(*v)
	}
	return _u
}

// ClearHangupProviderCode clears the value of the "hangup_provider_code" field.
func (_u *CallUpdate) ClearHangupProviderCode() *CallUpdate {
	_u.mutation.ClearHangupProviderCode()
	return _u
}

// SetRecordingURL sets the "recording_url" field.
func (_u *CallUpdate) SetRecordingURL(v string) *CallUpdate {
	_u.mutation.SetRecordingURL(v)
	return _u
}

// SetNillableRecordingURL sets the "recording_url" field if the given value is not nil.
func (_u *CallUpdate) SetNillableRecordingURL(v *string) *CallUpdate {
	if v != nil {
		_u.SetRecordingURL(*v)
	}
	return _u
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (_u *CallUpdate) ClearRecordingURL() *CallUpdate {
	_u.mutation.ClearRecordingURL()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CallUpdate) SetSummary(v string) *CallUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CallUpdate) SetNillableSummary(v *string) *CallUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CallUpdate) ClearSummary() *CallUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *CallUpdate) SetFailureReason(v string) *CallUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *CallUpdate) SetNillableFailureReason(v *string) *CallUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *CallUpdate) ClearFailureReason() *CallUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPlaceholder sets the "placeholder" field.
func (_u *CallUpdate) SetPlaceholder(v bool) *CallUpdate {
	_u.mutation.SetPlaceholder(v)
	return _u
}

// SetNillablePlaceholder sets the "placeholder" field if the given value is not nil.
func (_u *CallUpdate) SetNillablePlaceholder(v *bool) *CallUpdate {
	if v != nil {
		_u.SetPlaceholder(*v)
	}
	return _u
}

// SetProviderPayload sets the "provider_payload" field.
func (_u *CallUpdate) SetProviderPayload(v map[string]interface{}) *CallUpdate {
	_u.mutation.SetProviderPayload(v)
	return _u
}

// ClearProviderPayload clears the value of the "provider_payload" field.
func (_u *CallUpdate) ClearProviderPayload() *CallUpdate {
	_u.mutation.ClearProviderPayload()
	return _u
}

// SetRingingStartedAt sets the "ringing_started_at" field.
func (_u *CallUpdate) SetRingingStartedAt(v time.Time) *CallUpdate {
	_u.mutation.SetRingingStartedAt(v)
	return _u
}

// SetNillableRingingStartedAt sets the "ringing_started_at" field if the given value is not nil.
func (_u *CallUpdate) SetNillableRingingStartedAt(v *time.Time) *CallUpdate {
	if v != nil {
		_u.SetRingingStartedAt(*v)
	}
	return _u
}

// ClearRingingStartedAt clears the value of the "ringing_started_at" field.
func (_u *CallUpdate) ClearRingingStartedAt() *CallUpdate {
	_u.mutation.ClearRingingStartedAt()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *CallUpdate) SetAnsweredAt(v time.Time) *CallUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *CallUpdate) SetNillableAnsweredAt(v *time.Time) *CallUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *CallUpdate) ClearAnsweredAt() *CallUpdate {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetDisconnectedAt sets the "disconnected_at" field.
func (_u *CallUpdate) SetDisconnectedAt(v time.Time) *CallUpdate {
	_u.mutation.SetDisconnectedAt(v)
	return _u
}

// SetNillableDisconnectedAt sets the "disconnected_at" field if the given value is not nil.
func (_u *CallUpdate) SetNillableDisconnectedAt(v *time.Time) *CallUpdate {
	if v != nil {
		_u.SetDisconnectedAt(*v)
	}
	return _u
}

// ClearDisconnectedAt clears the value of the "disconnected_at" field.
func (_u *CallUpdate) ClearDisconnectedAt() *CallUpdate {
	_u.mutation.ClearDisconnectedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CallUpdate) SetStartedAt(v time.Time) *CallUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CallUpdate) SetNillableStartedAt(v *time.Time) *CallUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CallUpdate) ClearStartedAt() *CallUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CallUpdate) SetEndedAt(v time.Time) *CallUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CallUpdate) SetNillableEndedAt(v *time.Time) *CallUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *CallUpdate) ClearEndedAt() *CallUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CallUpdate) SetUpdatedAt(v time.Time) *CallUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CallMutation object of the builder.
func (_u *CallUpdate) Mutation() *CallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CallUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := call.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallUpdate) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := call.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Call.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := call.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Call.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LifecycleStatus(); ok {
		if err := call.LifecycleStatusValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_status", err: fmt.Errorf(`ent: validator failed for field "Call.lifecycle_status": %w`, err)}
		}
	}
	return nil
}

func (_u *CallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(call.Table, call.Columns, sqlgraph.NewFieldSpec(call.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(call.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(call.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(call.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(call.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(call.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(call.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(call.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.QueueItemID(); ok {
		_spec.SetField(call.FieldQueueItemID, field.TypeString, value)
	}
	if _u.mutation.QueueItemIDCleared() {
		_spec.ClearField(call.FieldQueueItemID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(call.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(call.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.FromPhone(); ok {
		_spec.SetField(call.FieldFromPhone, field.TypeString, value)
	}
	if _u.mutation.FromPhoneCleared() {
		_spec.ClearField(call.FieldFromPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ToPhone(); ok {
		_spec.SetField(call.FieldToPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(call.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(call.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LifecycleStatus(); ok {
		_spec.SetField(call.FieldLifecycleStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(call.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(call.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BilledMinutes(); ok {
		_spec.SetField(call.FieldBilledMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBilledMinutes(); ok {
		_spec.AddField(call.FieldBilledMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsUsed(); ok {
		_spec.SetField(call.FieldCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsUsed(); ok {
		_spec.AddField(call.FieldCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HangupBy(); ok {
		_spec.SetField(call.FieldHangupBy, field.TypeString, value)
	}
	if _u.mutation.HangupByCleared() {
		_spec.ClearField(call.FieldHangupBy, field.TypeString)
	}
	if value, ok := _u.mutation.HangupReason(); ok {
		_spec.SetField(call.FieldHangupReason, field.TypeString, value)
	}
	if _u.mutation.HangupReasonCleared() {
		_spec.ClearField(call.FieldHangupReason, field.TypeString)
	}
	if value, ok := _u.mutation.HangupProviderCode(); ok {
		_spec.SetField(call.FieldHangupProviderCode, field.TypeString, value)
	}
	if _u.mutation.HangupProviderCodeCleared() {
		_spec.ClearField(call.FieldHangupProviderCode, field.TypeString)
	}
	if value, ok := _u.mutation.RecordingURL(); ok {
		_spec.SetField(call.FieldRecordingURL, field.TypeString, value)
	}
	if _u.mutation.RecordingURLCleared() {
		_spec.ClearField(call.FieldRecordingURL, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(call.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(call.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(call.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(call.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.Placeholder(); ok {
		_spec.SetField(call.FieldPlaceholder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProviderPayload(); ok {
		_spec.SetField(call.FieldProviderPayload, field.TypeJSON, value)
	}
	if _u.mutation.ProviderPayloadCleared() {
		_spec.ClearField(call.FieldProviderPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.RingingStartedAt(); ok {
		_spec.SetField(call.FieldRingingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.RingingStartedAtCleared() {
		_spec.ClearField(call.FieldRingingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(call.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(call.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DisconnectedAt(); ok {
		_spec.SetField(call.FieldDisconnectedAt, field.TypeTime, value)
	}
	if _u.mutation.DisconnectedAtCleared() {
		_spec.ClearField(call.FieldDisconnectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(call.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(call.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(call.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(call.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(call.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{call.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallUpdateOne is the builder for updating a single Call entity.
type CallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *CallUpdateOne) SetTenantID(v string) *CallUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableTenantID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CallUpdateOne) SetAgentID(v string) *CallUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableAgentID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *CallUpdateOne) ClearAgentID() *CallUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *CallUpdateOne) SetCampaignID(v string) *CallUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableCampaignID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *CallUpdateOne) ClearCampaignID() *CallUpdateOne {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *CallUpdateOne) SetContactID(v string) *CallUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableContactID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *CallUpdateOne) ClearContactID() *CallUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetQueueItemID sets the "queue_item_id" field.
func (_u *CallUpdateOne) SetQueueItemID(v string) *CallUpdateOne {
	_u.mutation.SetQueueItemID(v)
	return _u
}

// SetNillableQueueItemID sets the "queue_item_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableQueueItemID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetQueueItemID(*v)
	}
	return _u
}

// ClearQueueItemID clears the value of the "queue_item_id" field.
func (_u *CallUpdateOne) ClearQueueItemID() *CallUpdateOne {
	_u.mutation.ClearQueueItemID()
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *CallUpdateOne) SetExecutionID(v string) *CallUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableExecutionID(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *CallUpdateOne) ClearExecutionID() *CallUpdateOne {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetFromPhone sets the "from_phone" field.
func (_u *CallUpdateOne) SetFromPhone(v string) *CallUpdateOne {
	_u.mutation.SetFromPhone(v)
	return _u
}

// SetNillableFromPhone sets the "from_phone" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableFromPhone(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetFromPhone(*v)
	}
	return _u
}

// ClearFromPhone clears the value of the "from_phone" field.
func (_u *CallUpdateOne) ClearFromPhone() *CallUpdateOne {
	_u.mutation.ClearFromPhone()
	return _u
}

// SetToPhone sets the "to_phone" field.
func (_u *CallUpdateOne) SetToPhone(v string) *CallUpdateOne {
	_u.mutation.SetToPhone(v)
	return _u
}

// SetNillableToPhone sets the "to_phone" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableToPhone(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetToPhone(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CallUpdateOne) SetDirection(v call.Direction) *CallUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableDirection(v *call.Direction) *CallUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CallUpdateOne) SetStatus(v call.Status) *CallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableStatus(v *call.Status) *CallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLifecycleStatus sets the "lifecycle_status" field.
func (_u *CallUpdateOne) SetLifecycleStatus(v call.LifecycleStatus) *CallUpdateOne {
	_u.mutation.SetLifecycleStatus(v)
	return _u
}

// SetNillableLifecycleStatus sets the "lifecycle_status" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableLifecycleStatus(v *call.LifecycleStatus) *CallUpdateOne {
	if v != nil {
		_u.SetLifecycleStatus(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallUpdateOne) SetDurationSeconds(v int) *CallUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableDurationSeconds(v *int) *CallUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallUpdateOne) AddDurationSeconds(v int) *CallUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetBilledMinutes sets the "billed_minutes" field.
func (_u *CallUpdateOne) SetBilledMinutes(v int) *CallUpdateOne {
	_u.mutation.ResetBilledMinutes()
	_u.mutation.SetBilledMinutes(v)
	return _u
}

// SetNillableBilledMinutes sets the "billed_minutes" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableBilledMinutes(v *int) *CallUpdateOne {
	if v != nil {
		_u.SetBilledMinutes(*v)
	}
	return _u
}

// AddBilledMinutes adds value to the "billed_minutes" field.
func (_u *CallUpdateOne) AddBilledMinutes(v int) *CallUpdateOne {
	_u.mutation.AddBilledMinutes(v)
	return _u
}

// SetCreditsUsed sets the "credits_used" field.
func (_u *CallUpdateOne) SetCreditsUsed(v int) *CallUpdateOne {
	_u.mutation.ResetCreditsUsed()
	_u.mutation.SetCreditsUsed(v)
	return _u
}

// SetNillableCreditsUsed sets the "credits_used" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableCreditsUsed(v *int) *CallUpdateOne {
	if v != nil {
		_u.SetCreditsUsed(*v)
	}
	return _u
}

// AddCreditsUsed adds value to the "credits_used" field.
func (_u *CallUpdateOne) AddCreditsUsed(v int) *CallUpdateOne {
	_u.mutation.AddCreditsUsed(v)
	return _u
}

// SetHangupBy sets the "hangup_by" field.
func (_u *CallUpdateOne) SetHangupBy(v string) *CallUpdateOne {
	_u.mutation.SetHangupBy(v)
	return _u
}

// SetNillableHangupBy sets the "hangup_by" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableHangupBy(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetHangupBy(*v)
	}
	return _u
}

// ClearHangupBy clears the value of the "hangup_by" field.
func (_u *CallUpdateOne) ClearHangupBy() *CallUpdateOne {
	_u.mutation.ClearHangupBy()
	return _u
}

// SetHangupReason sets the "hangup_reason" field.
func (_u *CallUpdateOne) SetHangupReason(v string) *CallUpdateOne {
	_u.mutation.SetHangupReason(v)
	return _u
}

// SetNillableHangupReason sets the "hangup_reason" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableHangupReason(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetHangupReason(*v)
	}
	return _u
}

// ClearHangupReason clears the value of the "hangup_reason" field.
func (_u *CallUpdateOne) ClearHangupReason() *CallUpdateOne {
	_u.mutation.ClearHangupReason()
	return _u
}

// SetHangupProviderCode sets the "hangup_provider_code" field.
func (_u *CallUpdateOne) SetHangupProviderCode(v string) *CallUpdateOne {
	_u.mutation.SetHangupProviderCode(v)
	return _u
}

// SetNillableHangupProviderCode sets the "hangup_provider_code" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableHangupProviderCode(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetHangupProviderCode(*v)
	}
	return _u
}

// ClearHangupProviderCode clears the value of the "hangup_provider_code" field.
func (_u *CallUpdateOne) ClearHangupProviderCode() *CallUpdateOne {
	_u.mutation.ClearHangupProviderCode()
	return _u
}

// SetRecordingURL sets the "recording_url" field.
func (_u *CallUpdateOne) SetRecordingURL(v string) *CallUpdateOne {
	_u.mutation.SetRecordingURL(v)
	return _u
}

// SetNillableRecordingURL sets the "recording_url" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableRecordingURL(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetRecordingURL(*v)
	}
	return _u
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (_u *CallUpdateOne) ClearRecordingURL() *CallUpdateOne {
	_u.mutation.ClearRecordingURL()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CallUpdateOne) SetSummary(v string) *CallUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableSummary(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CallUpdateOne) ClearSummary() *CallUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *CallUpdateOne) SetFailureReason(v string) *CallUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableFailureReason(v *string) *CallUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *CallUpdateOne) ClearFailureReason() *CallUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPlaceholder sets the "placeholder" field.
func (_u *CallUpdateOne) SetPlaceholder(v bool) *CallUpdateOne {
	_u.mutation.SetPlaceholder(v)
	return _u
}

// SetNillablePlaceholder sets the "placeholder" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillablePlaceholder(v *bool) *CallUpdateOne {
	if v != nil {
		_u.SetPlaceholder(*v)
	}
	return _u
}

// SetProviderPayload sets the "provider_payload" field.
func (_u *CallUpdateOne) SetProviderPayload(v map[string]interface{}) *CallUpdateOne {
	_u.mutation.SetProviderPayload(v)
	return _u
}

// ClearProviderPayload clears the value of the "provider_payload" field.
func (_u *CallUpdateOne) ClearProviderPayload() *CallUpdateOne {
	_u.mutation.ClearProviderPayload()
	return _u
}

// SetRingingStartedAt sets the "ringing_started_at" field.
func (_u *CallUpdateOne) SetRingingStartedAt(v time.Time) *CallUpdateOne {
	_u.mutation.SetRingingStartedAt(v)
	return _u
}

// SetNillableRingingStartedAt sets the "ringing_started_at" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableRingingStartedAt(v *time.Time) *CallUpdateOne {
	if v != nil {
		_u.SetRingingStartedAt(*v)
	}
	return _u
}

// ClearRingingStartedAt clears the value of the "ringing_started_at" field.
func (_u *CallUpdateOne) ClearRingingStartedAt() *CallUpdateOne {
	_u.mutation.ClearRingingStartedAt()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *CallUpdateOne) SetAnsweredAt(v time.Time) *CallUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableAnsweredAt(v *time.Time) *CallUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *CallUpdateOne) ClearAnsweredAt() *CallUpdateOne {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetDisconnectedAt sets the "disconnected_at" field.
func (_u *CallUpdateOne) SetDisconnectedAt(v time.Time) *CallUpdateOne {
	_u.mutation.SetDisconnectedAt(v)
	return _u
}

// SetNillableDisconnectedAt sets the "disconnected_at" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableDisconnectedAt(v *time.Time) *CallUpdateOne {
	if v != nil {
		_u.SetDisconnectedAt(*v)
	}
	return _u
}

// ClearDisconnectedAt clears the value of the "disconnected_at" field.
func (_u *CallUpdateOne) ClearDisconnectedAt() *CallUpdateOne {
	_u.mutation.ClearDisconnectedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CallUpdateOne) SetStartedAt(v time.Time) *CallUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableStartedAt(v *time.Time) *CallUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CallUpdateOne) ClearStartedAt() *CallUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CallUpdateOne) SetEndedAt(v time.Time) *CallUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CallUpdateOne) SetNillableEndedAt(v *time.Time) *CallUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *CallUpdateOne) ClearEndedAt() *CallUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CallUpdateOne) SetUpdatedAt(v time.Time) *CallUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CallMutation object of the builder.
func (_u *CallUpdateOne) Mutation() *CallMutation {
	return _u.mutation
}

// Where appends a list predicates to the CallUpdate builder.
func (_u *CallUpdateOne) Where(ps ...predicate.Call) *CallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallUpdateOne) Select(field string, fields ...string) *CallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Call entity.
func (_u *CallUpdateOne) Save(ctx context.Context) (*Call, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallUpdateOne) SaveX(ctx context.Context) *Call {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CallUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := call.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallUpdateOne) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := call.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Call.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := call.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Call.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LifecycleStatus(); ok {
		if err := call.LifecycleStatusValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_status", err: fmt.Errorf(`ent: validator failed for field "Call.lifecycle_status": %w`, err)}
		}
	}
	return nil
}

func (_u *CallUpdateOne) sqlSave(ctx context.Context) (_node *Call, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(call.Table, call.Columns, sqlgraph.NewFieldSpec(call.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Call.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, call.FieldID)
		for _, f := range fields {
			if !call.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != call.FieldID {
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
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(call.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(call.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(call.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(call.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(call.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(call.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(call.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.QueueItemID(); ok {
		_spec.SetField(call.FieldQueueItemID, field.TypeString, value)
	}
	if _u.mutation.QueueItemIDCleared() {
		_spec.ClearField(call.FieldQueueItemID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(call.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(call.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.FromPhone(); ok {
		_spec.SetField(call.FieldFromPhone, field.TypeString, value)
	}
	if _u.mutation.FromPhoneCleared() {
		_spec.ClearField(call.FieldFromPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ToPhone(); ok {
		_spec.SetField(call.FieldToPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(call.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(call.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LifecycleStatus(); ok {
		_spec.SetField(call.FieldLifecycleStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(call.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(call.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BilledMinutes(); ok {
		_spec.SetField(call.FieldBilledMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBilledMinutes(); ok {
		_spec.AddField(call.FieldBilledMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsUsed(); ok {
		_spec.SetField(call.FieldCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsUsed(); ok {
		_spec.AddField(call.FieldCreditsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HangupBy(); ok {
		_spec.SetField(call.FieldHangupBy, field.TypeString, value)
	}
	if _u.mutation.HangupByCleared() {
		_spec.ClearField(call.FieldHangupBy, field.TypeString)
	}
	if value, ok := _u.mutation.HangupReason(); ok {
		_spec.SetField(call.FieldHangupReason, field.TypeString, value)
	}
	if _u.mutation.HangupReasonCleared() {
		_spec.ClearField(call.FieldHangupReason, field.TypeString)
	}
	if value, ok := _u.mutation.HangupProviderCode(); ok {
		_spec.SetField(call.FieldHangupProviderCode, field.TypeString, value)
	}
	if _u.mutation.HangupProviderCodeCleared() {
		_spec.ClearField(call.FieldHangupProviderCode, field.TypeString)
	}
	if value, ok := _u.mutation.RecordingURL(); ok {
		_spec.SetField(call.FieldRecordingURL, field.TypeString, value)
	}
	if _u.mutation.RecordingURLCleared() {
		_spec.ClearField(call.FieldRecordingURL, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(call.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(call.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(call.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(call.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.Placeholder(); ok {
		_spec.SetField(call.FieldPlaceholder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProviderPayload(); ok {
		_spec.SetField(call.FieldProviderPayload, field.TypeJSON, value)
	}
	if _u.mutation.ProviderPayloadCleared() {
		_spec.ClearField(call.FieldProviderPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.RingingStartedAt(); ok {
		_spec.SetField(call.FieldRingingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.RingingStartedAtCleared() {
		_spec.ClearField(call.FieldRingingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(call.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(call.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DisconnectedAt(); ok {
		_spec.SetField(call.FieldDisconnectedAt, field.TypeTime, value)
	}
	if _u.mutation.DisconnectedAtCleared() {
		_spec.ClearField(call.FieldDisconnectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(call.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(call.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(call.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(call.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(call.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Call{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{call.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
