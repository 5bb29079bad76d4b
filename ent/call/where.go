// Code generated by ent, DO NOT EDIT.

package call

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ringstack/ringstack/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldTenantID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAgentID, v))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCampaignID, v))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldContactID, v))
}

// QueueItemID applies equality check predicate on the "queue_item_id" field. It's identical to QueueItemIDEQ.
func QueueItemID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldQueueItemID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldExecutionID, v))
}

// FromPhone applies equality check predicate on the "from_phone" field. It's identical to FromPhoneEQ.
func FromPhone(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldFromPhone, v))
}

// ToPhone applies equality check predicate on the "to_phone" field. It's identical to ToPhoneEQ.
func ToPhone(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldToPhone, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldDurationSeconds, v))
}

// BilledMinutes applies equality check predicate on the "billed_minutes" field. It's identical to BilledMinutesEQ.
func BilledMinutes(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldBilledMinutes, v))
}

// CreditsUsed applies equality check predicate on the "credits_used" field. It's identical to CreditsUsedEQ.
func CreditsUsed(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCreditsUsed, v))
}

// HangupBy applies equality check predicate on the "hangup_by" field. It's identical to HangupByEQ.
func HangupBy(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldHangupBy, v))
}

// HangupReason applies equality check predicate on the "hangup_reason" field. It's identical to HangupReasonEQ.
func HangupReason(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldHangupReason, v))
}

// HangupProviderCode applies equality check predicate on the "hangup_provider_code" field. It's identical to HangupProviderCodeEQ.
func HangupProviderCode(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldHangupProviderCode, v))
}

// RecordingURL applies equality check predicate on the "recording_url" field. It's identical to RecordingURLEQ.
func RecordingURL(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldRecordingURL, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldSummary, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldFailureReason, v))
}

// Placeholder applies equality check predicate on the "placeholder" field. It's identical to PlaceholderEQ.
func Placeholder(v bool) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldPlaceholder, v))
}

// RingingStartedAt applies equality check predicate on the "ringing_started_at" field. It's identical to RingingStartedAtEQ.
func RingingStartedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldRingingStartedAt, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAnsweredAt, v))
}

// DisconnectedAt applies equality check predicate on the "disconnected_at" field. It's identical to DisconnectedAtEQ.
func DisconnectedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldDisconnectedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldEndedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldTenantID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldAgentID, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDIsNil applies the IsNil predicate on the "campaign_id" field.
func CampaignIDIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldCampaignID))
}

// CampaignIDNotNil applies the NotNil predicate on the "campaign_id" field.
func CampaignIDNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldCampaignID))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldCampaignID, v))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDGT applies the GT predicate on the "contact_id" field.
func ContactIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldContactID, v))
}

// ContactIDGTE applies the GTE predicate on the "contact_id" field.
func ContactIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldContactID, v))
}

// ContactIDLT applies the LT predicate on the "contact_id" field.
func ContactIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldContactID, v))
}

// ContactIDLTE applies the LTE predicate on the "contact_id" field.
func ContactIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldContactID, v))
}

// ContactIDContains applies the Contains predicate on the "contact_id" field.
func ContactIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldContactID, v))
}

// ContactIDHasPrefix applies the HasPrefix predicate on the "contact_id" field.
func ContactIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldContactID, v))
}

// ContactIDHasSuffix applies the HasSuffix predicate on the "contact_id" field.
func ContactIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldContactID, v))
}

// ContactIDIsNil applies the IsNil predicate on the "contact_id" field.
func ContactIDIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldContactID))
}

// ContactIDNotNil applies the NotNil predicate on the "contact_id" field.
func ContactIDNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldContactID))
}

// ContactIDEqualFold applies the EqualFold predicate on the "contact_id" field.
func ContactIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldContactID, v))
}

// ContactIDContainsFold applies the ContainsFold predicate on the "contact_id" field.
func ContactIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldContactID, v))
}

// QueueItemIDEQ applies the EQ predicate on the "queue_item_id" field.
func QueueItemIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldQueueItemID, v))
}

// QueueItemIDNEQ applies the NEQ predicate on the "queue_item_id" field.
func QueueItemIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldQueueItemID, v))
}

// QueueItemIDIn applies the In predicate on the "queue_item_id" field.
func QueueItemIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldQueueItemID, vs...))
}

// QueueItemIDNotIn applies the NotIn predicate on the "queue_item_id" field.
func QueueItemIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldQueueItemID, vs...))
}

// QueueItemIDGT applies the GT predicate on the "queue_item_id" field.
func QueueItemIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldQueueItemID, v))
}

// QueueItemIDGTE applies the GTE predicate on the "queue_item_id" field.
func QueueItemIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldQueueItemID, v))
}

// QueueItemIDLT applies the LT predicate on the "queue_item_id" field.
func QueueItemIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldQueueItemID, v))
}

// QueueItemIDLTE applies the LTE predicate on the "queue_item_id" field.
func QueueItemIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldQueueItemID, v))
}

// QueueItemIDContains applies the Contains predicate on the "queue_item_id" field.
func QueueItemIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldQueueItemID, v))
}

// QueueItemIDHasPrefix applies the HasPrefix predicate on the "queue_item_id" field.
func QueueItemIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldQueueItemID, v))
}

// QueueItemIDHasSuffix applies the HasSuffix predicate on the "queue_item_id" field.
func QueueItemIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldQueueItemID, v))
}

// QueueItemIDIsNil applies the IsNil predicate on the "queue_item_id" field.
func QueueItemIDIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldQueueItemID))
}

// QueueItemIDNotNil applies the NotNil predicate on the "queue_item_id" field.
func QueueItemIDNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldQueueItemID))
}

// QueueItemIDEqualFold applies the EqualFold predicate on the "queue_item_id" field.
func QueueItemIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldQueueItemID, v))
}

// QueueItemIDContainsFold applies the ContainsFold predicate on the "queue_item_id" field.
func QueueItemIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldQueueItemID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDIsNil applies the IsNil predicate on the "execution_id" field.
func ExecutionIDIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldExecutionID))
}

// ExecutionIDNotNil applies the NotNil predicate on the "execution_id" field.
func ExecutionIDNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldExecutionID))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldExecutionID, v))
}

// FromPhoneEQ applies the EQ predicate on the "from_phone" field.
func FromPhoneEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldFromPhone, v))
}

// FromPhoneNEQ applies the NEQ predicate on the "from_phone" field.
func FromPhoneNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldFromPhone, v))
}

// FromPhoneIn applies the In predicate on the "from_phone" field.
func FromPhoneIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldFromPhone, vs...))
}

// FromPhoneNotIn applies the NotIn predicate on the "from_phone" field.
func FromPhoneNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldFromPhone, vs...))
}

// FromPhoneGT applies the GT predicate on the "from_phone" field.
func FromPhoneGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldFromPhone, v))
}

// FromPhoneGTE applies the GTE predicate on the "from_phone" field.
func FromPhoneGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldFromPhone, v))
}

// FromPhoneLT applies the LT predicate on the "from_phone" field.
func FromPhoneLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldFromPhone, v))
}

// FromPhoneLTE applies the LTE predicate on the "from_phone" field.
func FromPhoneLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldFromPhone, v))
}

// FromPhoneContains applies the Contains predicate on the "from_phone" field.
func FromPhoneContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldFromPhone, v))
}

// FromPhoneHasPrefix applies the HasPrefix predicate on the "from_phone" field.
func FromPhoneHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldFromPhone, v))
}

// FromPhoneHasSuffix applies the HasSuffix predicate on the "from_phone" field.
func FromPhoneHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldFromPhone, v))
}

// FromPhoneIsNil applies the IsNil predicate on the "from_phone" field.
func FromPhoneIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldFromPhone))
}

// FromPhoneNotNil applies the NotNil predicate on the "from_phone" field.
func FromPhoneNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldFromPhone))
}

// FromPhoneEqualFold applies the EqualFold predicate on the "from_phone" field.
func FromPhoneEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldFromPhone, v))
}

// FromPhoneContainsFold applies the ContainsFold predicate on the "from_phone" field.
func FromPhoneContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldFromPhone, v))
}

// ToPhoneEQ applies the EQ predicate on the "to_phone" field.
func ToPhoneEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldToPhone, v))
}

// ToPhoneNEQ applies the NEQ predicate on the "to_phone" field.
func ToPhoneNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldToPhone, v))
}

// ToPhoneIn applies the In predicate on the "to_phone" field.
func ToPhoneIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldToPhone, vs...))
}

// ToPhoneNotIn applies the NotIn predicate on the "to_phone" field.
func ToPhoneNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldToPhone, vs...))
}

// ToPhoneGT applies the GT predicate on the "to_phone" field.
func ToPhoneGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldToPhone, v))
}

// ToPhoneGTE applies the GTE predicate on the "to_phone" field.
func ToPhoneGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldToPhone, v))
}

// ToPhoneLT applies the LT predicate on the "to_phone" field.
func ToPhoneLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldToPhone, v))
}

// ToPhoneLTE applies the LTE predicate on the "to_phone" field.
func ToPhoneLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldToPhone, v))
}

// ToPhoneContains applies the Contains predicate on the "to_phone" field.
func ToPhoneContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldToPhone, v))
}

// ToPhoneHasPrefix applies the HasPrefix predicate on the "to_phone" field.
func ToPhoneHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldToPhone, v))
}

// ToPhoneHasSuffix applies the HasSuffix predicate on the "to_phone" field.
func ToPhoneHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldToPhone, v))
}

// ToPhoneEqualFold applies the EqualFold predicate on the "to_phone" field.
func ToPhoneEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldToPhone, v))
}

// ToPhoneContainsFold applies the ContainsFold predicate on the "to_phone" field.
func ToPhoneContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldToPhone, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldDirection, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldStatus, vs...))
}

// LifecycleStatusEQ applies the EQ predicate on the "lifecycle_status" field.
func LifecycleStatusEQ(v LifecycleStatus) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldLifecycleStatus, v))
}

// LifecycleStatusNEQ applies the NEQ predicate on the "lifecycle_status" field.
func LifecycleStatusNEQ(v LifecycleStatus) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldLifecycleStatus, v))
}

// LifecycleStatusIn applies the In predicate on the "lifecycle_status" field.
func LifecycleStatusIn(vs ...LifecycleStatus) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldLifecycleStatus, vs...))
}

// LifecycleStatusNotIn applies the NotIn predicate on the "lifecycle_status" field.
func LifecycleStatusNotIn(vs ...LifecycleStatus) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldLifecycleStatus, vs...))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldDurationSeconds, v))
}

// BilledMinutesEQ applies the EQ predicate on the "billed_minutes" field.
func BilledMinutesEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldBilledMinutes, v))
}

// BilledMinutesNEQ applies the NEQ predicate on the "billed_minutes" field.
func BilledMinutesNEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldBilledMinutes, v))
}

// BilledMinutesIn applies the In predicate on the "billed_minutes" field.
func BilledMinutesIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldBilledMinutes, vs...))
}

// BilledMinutesNotIn applies the NotIn predicate on the "billed_minutes" field.
func BilledMinutesNotIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldBilledMinutes, vs...))
}

// BilledMinutesGT applies the GT predicate on the "billed_minutes" field.
func BilledMinutesGT(v int) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldBilledMinutes, v))
}

// BilledMinutesGTE applies the GTE predicate on the "billed_minutes" field.
func BilledMinutesGTE(v int) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldBilledMinutes, v))
}

// BilledMinutesLT applies the LT predicate on the "billed_minutes" field.
func BilledMinutesLT(v int) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldBilledMinutes, v))
}

// BilledMinutesLTE applies the LTE predicate on the "billed_minutes" field.
func BilledMinutesLTE(v int) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldBilledMinutes, v))
}

// CreditsUsedEQ applies the EQ predicate on the "credits_used" field.
func CreditsUsedEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCreditsUsed, v))
}

// CreditsUsedNEQ applies the NEQ predicate on the "credits_used" field.
func CreditsUsedNEQ(v int) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldCreditsUsed, v))
}

// CreditsUsedIn applies the In predicate on the "credits_used" field.
func CreditsUsedIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldCreditsUsed, vs...))
}

// CreditsUsedNotIn applies the NotIn predicate on the "credits_used" field.
func CreditsUsedNotIn(vs ...int) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldCreditsUsed, vs...))
}

// CreditsUsedGT applies the GT predicate on the "credits_used" field.
func CreditsUsedGT(v int) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldCreditsUsed, v))
}

// CreditsUsedGTE applies the GTE predicate on the "credits_used" field.
func CreditsUsedGTE(v int) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldCreditsUsed, v))
}

// CreditsUsedLT applies the LT predicate on the "credits_used" field.
func CreditsUsedLT(v int) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldCreditsUsed, v))
}

// CreditsUsedLTE applies the LTE predicate on the "credits_used" field.
func CreditsUsedLTE(v int) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldCreditsUsed, v))
}

// HangupByEQ applies the EQ predicate on the "hangup_by" field.
func HangupByEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldHangupBy, v))
}

// HangupByNEQ applies the NEQ predicate on the "hangup_by" field.
func HangupByNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldHangupBy, v))
}

// HangupByIn applies the In predicate on the "hangup_by" field.
func HangupByIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldHangupBy, vs...))
}

// HangupByNotIn applies the NotIn predicate on the "hangup_by" field.
func HangupByNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldHangupBy, vs...))
}

// HangupByGT applies the GT predicate on the "hangup_by" field.
func HangupByGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldHangupBy, v))
}

// HangupByGTE applies the GTE predicate on the "hangup_by" field.
func HangupByGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldHangupBy, v))
}

// HangupByLT applies the LT predicate on the "hangup_by" field.
func HangupByLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldHangupBy, v))
}

// HangupByLTE applies the LTE predicate on the "hangup_by" field.
func HangupByLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldHangupBy, v))
}

// HangupByContains applies the Contains predicate on the "hangup_by" field.
func HangupByContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldHangupBy, v))
}

// HangupByHasPrefix applies the HasPrefix predicate on the "hangup_by" field.
func HangupByHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldHangupBy, v))
}

// HangupByHasSuffix applies the HasSuffix predicate on the "hangup_by" field.
func HangupByHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldHangupBy, v))
}

// HangupByIsNil applies the IsNil predicate on the "hangup_by" field.
func HangupByIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldHangupBy))
}

// HangupByNotNil applies the NotNil predicate on the "hangup_by" field.
func HangupByNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldHangupBy))
}

// HangupByEqualFold applies the EqualFold predicate on the "hangup_by" field.
func HangupByEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldHangupBy, v))
}

// HangupByContainsFold applies the ContainsFold predicate on the "hangup_by" field.
func HangupByContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldHangupBy, v))
}

// HangupReasonEQ applies the EQ predicate on the "hangup_reason" field.
func HangupReasonEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldHangupReason, v))
}

// HangupReasonNEQ applies the NEQ predicate on the "hangup_reason" field.
func HangupReasonNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldHangupReason, v))
}

// HangupReasonIn applies the In predicate on the "hangup_reason" field.
func HangupReasonIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldHangupReason, vs...))
}

// HangupReasonNotIn applies the NotIn predicate on the "hangup_reason" field.
func HangupReasonNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldHangupReason, vs...))
}

// HangupReasonGT applies the GT predicate on the "hangup_reason" field.
func HangupReasonGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldHangupReason, v))
}

// HangupReasonGTE applies the GTE predicate on the "hangup_reason" field.
func HangupReasonGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldHangupReason, v))
}

// HangupReasonLT applies the LT predicate on the "hangup_reason" field.
func HangupReasonLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldHangupReason, v))
}

// HangupReasonLTE applies the LTE predicate on the "hangup_reason" field.
func HangupReasonLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldHangupReason, v))
}

// HangupReasonContains applies the Contains predicate on the "hangup_reason" field.
func HangupReasonContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldHangupReason, v))
}

// HangupReasonHasPrefix applies the HasPrefix predicate on the "hangup_reason" field.
func HangupReasonHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldHangupReason, v))
}

// HangupReasonHasSuffix applies the HasSuffix predicate on the "hangup_reason" field.
func HangupReasonHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldHangupReason, v))
}

// HangupReasonIsNil applies the IsNil predicate on the "hangup_reason" field.
func HangupReasonIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldHangupReason))
}

// HangupReasonNotNil applies the NotNil predicate on the "hangup_reason" field.
func HangupReasonNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldHangupReason))
}

// HangupReasonEqualFold applies the EqualFold predicate on the "hangup_reason" field.
func HangupReasonEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldHangupReason, v))
}

// HangupReasonContainsFold applies the ContainsFold predicate on the "hangup_reason" field.
func HangupReasonContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldHangupReason, v))
}

// HangupProviderCodeEQ applies the EQ predicate on the "hangup_provider_code" field.
func HangupProviderCodeEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldHangupProviderCode, v))
}

// HangupProviderCodeNEQ applies the NEQ predicate on the "hangup_provider_code" field.
func HangupProviderCodeNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldHangupProviderCode, v))
}

// HangupProviderCodeIn applies the In predicate on the "hangup_provider_code" field.
func HangupProviderCodeIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldHangupProviderCode, vs...))
}

// HangupProviderCodeNotIn applies the NotIn predicate on the "hangup_provider_code" field.
func HangupProviderCodeNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldHangupProviderCode, vs...))
}

// HangupProviderCodeGT applies the GT predicate on the "hangup_provider_code" field.
func HangupProviderCodeGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldHangupProviderCode, v))
}

// HangupProviderCodeGTE applies the GTE predicate on the "hangup_provider_code" field.
func HangupProviderCodeGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldHangupProviderCode, v))
}

// HangupProviderCodeLT applies the LT predicate on the "hangup_provider_code" field.
func HangupProviderCodeLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldHangupProviderCode, v))
}

// HangupProviderCodeLTE applies the LTE predicate on the "hangup_provider_code" field.
func HangupProviderCodeLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldHangupProviderCode, v))
}

// HangupProviderCodeContains applies the Contains predicate on the "hangup_provider_code" field.
func HangupProviderCodeContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldHangupProviderCode, v))
}

// HangupProviderCodeHasPrefix applies the HasPrefix predicate on the "hangup_provider_code" field.
func HangupProviderCodeHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldHangupProviderCode, v))
}

// HangupProviderCodeHasSuffix applies the HasSuffix predicate on the "hangup_provider_code" field.
func HangupProviderCodeHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldHangupProviderCode, v))
}

// HangupProviderCodeIsNil applies the IsNil predicate on the "hangup_provider_code" field.
func HangupProviderCodeIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldHangupProviderCode))
}

// HangupProviderCodeNotNil applies the NotNil predicate on the "hangup_provider_code" field.
func HangupProviderCodeNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldHangupProviderCode))
}

// HangupProviderCodeEqualFold applies the EqualFold predicate on the "hangup_provider_code" field.
func HangupProviderCodeEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldHangupProviderCode, v))
}

// HangupProviderCodeContainsFold applies the ContainsFold predicate on the "hangup_provider_code" field.
func HangupProviderCodeContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldHangupProviderCode, v))
}

// RecordingURLEQ applies the EQ predicate on the "recording_url" field.
func RecordingURLEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldRecordingURL, v))
}

// RecordingURLNEQ applies the NEQ predicate on the "recording_url" field.
func RecordingURLNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldRecordingURL, v))
}

// RecordingURLIn applies the In predicate on the "recording_url" field.
func RecordingURLIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldRecordingURL, vs...))
}

// RecordingURLNotIn applies the NotIn predicate on the "recording_url" field.
func RecordingURLNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldRecordingURL, vs...))
}

// RecordingURLGT applies the GT predicate on the "recording_url" field.
func RecordingURLGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldRecordingURL, v))
}

// RecordingURLGTE applies the GTE predicate on the "recording_url" field.
func RecordingURLGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldRecordingURL, v))
}

// RecordingURLLT applies the LT predicate on the "recording_url" field.
func RecordingURLLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldRecordingURL, v))
}

// RecordingURLLTE applies the LTE predicate on the "recording_url" field.
func RecordingURLLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldRecordingURL, v))
}

// RecordingURLContains applies the Contains predicate on the "recording_url" field.
func RecordingURLContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldRecordingURL, v))
}

// RecordingURLHasPrefix applies the HasPrefix predicate on the "recording_url" field.
func RecordingURLHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldRecordingURL, v))
}

// RecordingURLHasSuffix applies the HasSuffix predicate on the "recording_url" field.
func RecordingURLHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldRecordingURL, v))
}

// RecordingURLIsNil applies the IsNil predicate on the "recording_url" field.
func RecordingURLIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldRecordingURL))
}

// RecordingURLNotNil applies the NotNil predicate on the "recording_url" field.
func RecordingURLNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldRecordingURL))
}

// RecordingURLEqualFold applies the EqualFold predicate on the "recording_url" field.
func RecordingURLEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldRecordingURL, v))
}

// RecordingURLContainsFold applies the ContainsFold predicate on the "recording_url" field.
func RecordingURLContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldRecordingURL, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldSummary, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Call {
	return predicate.Call(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Call {
	return predicate.Call(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Call {
	return predicate.Call(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Call {
	return predicate.Call(sql.FieldContainsFold(FieldFailureReason, v))
}

// PlaceholderEQ applies the EQ predicate on the "placeholder" field.
func PlaceholderEQ(v bool) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldPlaceholder, v))
}

// PlaceholderNEQ applies the NEQ predicate on the "placeholder" field.
func PlaceholderNEQ(v bool) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldPlaceholder, v))
}

// ProviderPayloadIsNil applies the IsNil predicate on the "provider_payload" field.
func ProviderPayloadIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldProviderPayload))
}

// ProviderPayloadNotNil applies the NotNil predicate on the "provider_payload" field.
func ProviderPayloadNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldProviderPayload))
}

// RingingStartedAtEQ applies the EQ predicate on the "ringing_started_at" field.
func RingingStartedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldRingingStartedAt, v))
}

// RingingStartedAtNEQ applies the NEQ predicate on the "ringing_started_at" field.
func RingingStartedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldRingingStartedAt, v))
}

// RingingStartedAtIn applies the In predicate on the "ringing_started_at" field.
func RingingStartedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldRingingStartedAt, vs...))
}

// RingingStartedAtNotIn applies the NotIn predicate on the "ringing_started_at" field.
func RingingStartedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldRingingStartedAt, vs...))
}

// RingingStartedAtGT applies the GT predicate on the "ringing_started_at" field.
func RingingStartedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldRingingStartedAt, v))
}

// RingingStartedAtGTE applies the GTE predicate on the "ringing_started_at" field.
func RingingStartedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldRingingStartedAt, v))
}

// RingingStartedAtLT applies the LT predicate on the "ringing_started_at" field.
func RingingStartedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldRingingStartedAt, v))
}

// RingingStartedAtLTE applies the LTE predicate on the "ringing_started_at" field.
func RingingStartedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldRingingStartedAt, v))
}

// RingingStartedAtIsNil applies the IsNil predicate on the "ringing_started_at" field.
func RingingStartedAtIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldRingingStartedAt))
}

// RingingStartedAtNotNil applies the NotNil predicate on the "ringing_started_at" field.
func RingingStartedAtNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldRingingStartedAt))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldAnsweredAt, v))
}

// AnsweredAtIsNil applies the IsNil predicate on the "answered_at" field.
func AnsweredAtIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldAnsweredAt))
}

// AnsweredAtNotNil applies the NotNil predicate on the "answered_at" field.
func AnsweredAtNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldAnsweredAt))
}

// DisconnectedAtEQ applies the EQ predicate on the "disconnected_at" field.
func DisconnectedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldDisconnectedAt, v))
}

// DisconnectedAtNEQ applies the NEQ predicate on the "disconnected_at" field.
func DisconnectedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldDisconnectedAt, v))
}

// DisconnectedAtIn applies the In predicate on the "disconnected_at" field.
func DisconnectedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldDisconnectedAt, vs...))
}

// DisconnectedAtNotIn applies the NotIn predicate on the "disconnected_at" field.
func DisconnectedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldDisconnectedAt, vs...))
}

// DisconnectedAtGT applies the GT predicate on the "disconnected_at" field.
func DisconnectedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldDisconnectedAt, v))
}

// DisconnectedAtGTE applies the GTE predicate on the "disconnected_at" field.
func DisconnectedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldDisconnectedAt, v))
}

// DisconnectedAtLT applies the LT predicate on the "disconnected_at" field.
func DisconnectedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldDisconnectedAt, v))
}

// DisconnectedAtLTE applies the LTE predicate on the "disconnected_at" field.
func DisconnectedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldDisconnectedAt, v))
}

// DisconnectedAtIsNil applies the IsNil predicate on the "disconnected_at" field.
func DisconnectedAtIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldDisconnectedAt))
}

// DisconnectedAtNotNil applies the NotNil predicate on the "disconnected_at" field.
func DisconnectedAtNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldDisconnectedAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldStartedAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Call {
	return predicate.Call(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Call {
	return predicate.Call(sql.FieldNotNull(FieldEndedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Call {
	return predicate.Call(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Call {
	return predicate.Call(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Call) predicate.Call {
	return predicate.Call(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Call) predicate.Call {
	return predicate.Call(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Call) predicate.Call {
	return predicate.Call(sql.NotPredicates(p))
}
