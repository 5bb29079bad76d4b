// Code generated by ent, DO NOT EDIT.

package call

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the call type in the database.
	Label = "call"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "call_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldContactID holds the string denoting the contact_id field in the database.
	FieldContactID = "contact_id"
	// FieldQueueItemID holds the string denoting the queue_item_id field in the database.
	FieldQueueItemID = "queue_item_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldFromPhone holds the string denoting the from_phone field in the database.
	FieldFromPhone = "from_phone"
	// FieldToPhone holds the string denoting the to_phone field in the database.
	FieldToPhone = "to_phone"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLifecycleStatus holds the string denoting the lifecycle_status field in the database.
	FieldLifecycleStatus = "lifecycle_status"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldBilledMinutes holds the string denoting the billed_minutes field in the database.
	FieldBilledMinutes = "billed_minutes"
	// FieldCreditsUsed holds the string denoting the credits_used field in the database.
	FieldCreditsUsed = "credits_used"
	// FieldHangupBy holds the string denoting the hangup_by field in the database.
	FieldHangupBy = "hangup_by"
	// FieldHangupReason holds the string denoting the hangup_reason field in the database.
	FieldHangupReason = "hangup_reason"
	// FieldHangupProviderCode holds the string denoting the hangup_provider_code field in the database.
	FieldHangupProviderCode = "hangup_provider_code"
	// FieldRecordingURL holds the string denoting the recording_url field in the database.
	FieldRecordingURL = "recording_url"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldPlaceholder holds the string denoting the placeholder field in the database.
	FieldPlaceholder = "placeholder"
	// FieldProviderPayload holds the string denoting the provider_payload field in the database.
	FieldProviderPayload = "provider_payload"
	// FieldRingingStartedAt holds the string denoting the ringing_started_at field in the database.
	FieldRingingStartedAt = "ringing_started_at"
	// FieldAnsweredAt holds the string denoting the answered_at field in the database.
	FieldAnsweredAt = "answered_at"
	// FieldDisconnectedAt holds the string denoting the disconnected_at field in the database.
	FieldDisconnectedAt = "disconnected_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the call in the database.
	Table = "calls"
)

// Columns holds all SQL columns for call fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldAgentID,
	FieldCampaignID,
	FieldContactID,
	FieldQueueItemID,
	FieldExecutionID,
	FieldFromPhone,
	FieldToPhone,
	FieldDirection,
	FieldStatus,
	FieldLifecycleStatus,
	FieldDurationSeconds,
	FieldBilledMinutes,
	FieldCreditsUsed,
	FieldHangupBy,
	FieldHangupReason,
	FieldHangupProviderCode,
	FieldRecordingURL,
	FieldSummary,
	FieldFailureReason,
	FieldPlaceholder,
	FieldProviderPayload,
	FieldRingingStartedAt,
	FieldAnsweredAt,
	FieldDisconnectedAt,
	FieldStartedAt,
	FieldEndedAt,
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
	// DefaultDurationSeconds holds the default value on creation for the "duration_seconds" field.
	DefaultDurationSeconds int
	// DefaultBilledMinutes holds the default value on creation for the "billed_minutes" field.
	DefaultBilledMinutes int
	// DefaultCreditsUsed holds the default value on creation for the "credits_used" field.
	DefaultCreditsUsed int
	// DefaultPlaceholder holds the default value on creation for the "placeholder" field.
	DefaultPlaceholder bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Direction defines the type for the "direction" enum field.
type Direction string

// DirectionOutbound is the default value of the Direction enum.
const DefaultDirection = DirectionOutbound

// Direction values.
const (
	DirectionOutbound Direction = "outbound"
	DirectionInbound  Direction = "inbound"
)

func (d Direction) String() string {
	return string(d)
}

// DirectionValidator is a validator for the "direction" field enum values. It is called by the builders before save.
func DirectionValidator(d Direction) error {
	switch d {
	case DirectionOutbound, DirectionInbound:
		return nil
	default:
		return fmt.Errorf("call: invalid enum value for direction field: %q", d)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusInitiated is the default value of the Status enum.
const DefaultStatus = StatusInitiated

// Status values.
const (
	StatusInitiated  Status = "initiated"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInitiated, StatusInProgress, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("call: invalid enum value for status field: %q", s)
	}
}

// LifecycleStatus defines the type for the "lifecycle_status" enum field.
type LifecycleStatus string

// LifecycleStatusInitiated is the default value of the LifecycleStatus enum.
const DefaultLifecycleStatus = LifecycleStatusInitiated

// LifecycleStatus values.
const (
	LifecycleStatusInitiated        LifecycleStatus = "initiated"
	LifecycleStatusRinging          LifecycleStatus = "ringing"
	LifecycleStatusInProgress       LifecycleStatus = "in_progress"
	LifecycleStatusNoAnswer         LifecycleStatus = "no_answer"
	LifecycleStatusBusy             LifecycleStatus = "busy"
	LifecycleStatusCallDisconnected LifecycleStatus = "call_disconnected"
	LifecycleStatusCompleted        LifecycleStatus = "completed"
	LifecycleStatusFailed           LifecycleStatus = "failed"
	LifecycleStatusCancelled        LifecycleStatus = "cancelled"
)

func (ls LifecycleStatus) String() string {
	return string(ls)
}

// LifecycleStatusValidator is a validator for the "lifecycle_status" field enum values. It is called by the builders before save.
func LifecycleStatusValidator(ls LifecycleStatus) error {
	switch ls {
	case LifecycleStatusInitiated, LifecycleStatusRinging, LifecycleStatusInProgress, LifecycleStatusNoAnswer, LifecycleStatusBusy, LifecycleStatusCallDisconnected, LifecycleStatusCompleted, LifecycleStatusFailed, LifecycleStatusCancelled:
		return nil
	default:
		return fmt.Errorf("call: invalid enum value for lifecycle_status field: %q", ls)
	}
}

// OrderOption defines the ordering options for the Call queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByCampaignID orders the results by the campaign_id field.
func ByCampaignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignID, opts...).ToFunc()
}

// ByContactID orders the results by the contact_id field.
func ByContactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactID, opts...).ToFunc()
}

// ByQueueItemID orders the results by the queue_item_id field.
func ByQueueItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueItemID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByFromPhone orders the results by the from_phone field.
func ByFromPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromPhone, opts...).ToFunc()
}

// ByToPhone orders the results by the to_phone field.
func ByToPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToPhone, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLifecycleStatus orders the results by the lifecycle_status field.
func ByLifecycleStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLifecycleStatus, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByBilledMinutes orders the results by the billed_minutes field.
func ByBilledMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBilledMinutes, opts...).ToFunc()
}

// ByCreditsUsed orders the results by the credits_used field.
func ByCreditsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditsUsed, opts...).ToFunc()
}

// ByHangupBy orders the results by the hangup_by field.
func ByHangupBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHangupBy, opts...).ToFunc()
}

// ByHangupReason orders the results by the hangup_reason field.
func ByHangupReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHangupReason, opts...).ToFunc()
}

// ByHangupProviderCode orders the results by the hangup_provider_code field.
func ByHangupProviderCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHangupProviderCode, opts...).ToFunc()
}

// ByRecordingURL orders the results by the recording_url field.
func ByRecordingURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingURL, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByPlaceholder orders the results by the placeholder field.
func ByPlaceholder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaceholder, opts...).ToFunc()
}

// ByRingingStartedAt orders the results by the ringing_started_at field.
func ByRingingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRingingStartedAt, opts...).ToFunc()
}

// ByAnsweredAt orders the results by the answered_at field.
func ByAnsweredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredAt, opts...).ToFunc()
}

// ByDisconnectedAt orders the results by the disconnected_at field.
func ByDisconnectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisconnectedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
