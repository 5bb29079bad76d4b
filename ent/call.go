// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringstack/ringstack/ent/call"
)

// Call is the model entity for the Call schema.
type Call struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *string `json:"agent_id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID *string `json:"campaign_id,omitempty"`
	// ContactID holds the value of the "contact_id" field.
	ContactID *string `json:"contact_id,omitempty"`
	// QueueItemID holds the value of the "queue_item_id" field.
	QueueItemID *string `json:"queue_item_id,omitempty"`
	// Provider execution identifier; webhooks resolve calls by it
	ExecutionID *string `json:"execution_id,omitempty"`
	// FromPhone holds the value of the "from_phone" field.
	FromPhone string `json:"from_phone,omitempty"`
	// ToPhone holds the value of the "to_phone" field.
	ToPhone string `json:"to_phone,omitempty"`
	// Direction holds the value of the "direction" field.
	Direction call.Direction `json:"direction,omitempty"`
	// Status holds the value of the "status" field.
	Status call.Status `json:"status,omitempty"`
	// Most recent provider event; terminal values gate webhook replays
	LifecycleStatus call.LifecycleStatus `json:"lifecycle_status,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds int `json:"duration_seconds,omitempty"`
	// ceil(duration_seconds/60), set once at completion
	BilledMinutes int `json:"billed_minutes,omitempty"`
	// CreditsUsed holds the value of the "credits_used" field.
	CreditsUsed int `json:"credits_used,omitempty"`
	// HangupBy holds the value of the "hangup_by" field.
	HangupBy *string `json:"hangup_by,omitempty"`
	// HangupReason holds the value of the "hangup_reason" field.
	HangupReason *string `json:"hangup_reason,omitempty"`
	// HangupProviderCode holds the value of the "hangup_provider_code" field.
	HangupProviderCode *string `json:"hangup_provider_code,omitempty"`
	// RecordingURL holds the value of the "recording_url" field.
	RecordingURL *string `json:"recording_url,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// Created by a webhook for an unknown execution_id
	Placeholder bool `json:"placeholder,omitempty"`
	// Opaque provider blobs from the completion webhook
	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
	// RingingStartedAt holds the value of the "ringing_started_at" field.
	RingingStartedAt *time.Time `json:"ringing_started_at,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	// DisconnectedAt holds the value of the "disconnected_at" field.
	DisconnectedAt *time.Time `json:"disconnected_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Call) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case call.FieldProviderPayload:
			values[i] = new([]byte)
		case call.FieldPlaceholder:
			values[i] = new(sql.NullBool)
		case call.FieldDurationSeconds, call.FieldBilledMinutes, call.FieldCreditsUsed:
			values[i] = new(sql.NullInt64)
		case call.FieldID, call.FieldTenantID, call.FieldAgentID, call.FieldCampaignID, call.FieldContactID, call.FieldQueueItemID, call.FieldExecutionID, call.FieldFromPhone, call.FieldToPhone, call.FieldDirection, call.FieldStatus, call.FieldLifecycleStatus, call.FieldHangupBy, call.FieldHangupReason, call.FieldHangupProviderCode, call.FieldRecordingURL, call.FieldSummary, call.FieldFailureReason:
			values[i] = new(sql.NullString)
		case call.FieldRingingStartedAt, call.FieldAnsweredAt, call.FieldDisconnectedAt, call.FieldStartedAt, call.FieldEndedAt, call.FieldCreatedAt, call.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Call fields.
func (_m *Call) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case call.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case call.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case call.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(string)
				*_m.AgentID = value.String
			}
		case call.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = new(string)
				*_m.CampaignID = value.String
			}
		case call.FieldContactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_id", values[i])
			} else if value.Valid {
				_m.ContactID = new(string)
				*_m.ContactID = value.String
			}
		case call.FieldQueueItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue_item_id", values[i])
			} else if value.Valid {
				_m.QueueItemID = new(string)
				*_m.QueueItemID = value.String
			}
		case call.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = new(string)
				*_m.ExecutionID = value.String
			}
		case call.FieldFromPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_phone", values[i])
			} else if value.Valid {
				_m.FromPhone = value.String
			}
		case call.FieldToPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_phone", values[i])
			} else if value.Valid {
				_m.ToPhone = value.String
			}
		case call.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = call.Direction(value.String)
			}
		case call.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = call.Status(value.String)
			}
		case call.FieldLifecycleStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lifecycle_status", values[i])
			} else if value.Valid {
				_m.LifecycleStatus = call.LifecycleStatus(value.String)
			}
		case call.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = int(value.Int64)
			}
		case call.FieldBilledMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field billed_minutes", values[i])
			} else if value.Valid {
				_m.BilledMinutes = int(value.Int64)
			}
		case call.FieldCreditsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field credits_used", values[i])
			} else if value.Valid {
				_m.CreditsUsed = int(value.Int64)
			}
		case call.FieldHangupBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hangup_by", values[i])
			} else if value.Valid {
				_m.HangupBy = new(string)
				*_m.HangupBy = value.String
			}
		case call.FieldHangupReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hangup_reason", values[i])
			} else if value.Valid {
				_m.HangupReason = new(string)
				*_m.HangupReason = value.String
			}
		case call.FieldHangupProviderCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hangup_provider_code", values[i])
			} else if value.Valid {
				_m.HangupProviderCode = new(string)
				*_m.HangupProviderCode = value.String
			}
		case call.FieldRecordingURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_url", values[i])
			} else if value.Valid {
				_m.RecordingURL = new(string)
				*_m.RecordingURL = value.String
			}
		case call.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case call.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case call.FieldPlaceholder:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field placeholder", values[i])
			} else if value.Valid {
				_m.Placeholder = value.Bool
			}
		case call.FieldProviderPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provider_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProviderPayload); err != nil {
					return fmt.Errorf("unmarshal field provider_payload: %w", err)
				}
			}
		case call.FieldRingingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ringing_started_at", values[i])
			} else if value.Valid {
				_m.RingingStartedAt = new(time.Time)
				*_m.RingingStartedAt = value.Time
			}
		case call.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = new(time.Time)
				*_m.AnsweredAt = value.Time
			}
		case call.FieldDisconnectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field disconnected_at", values[i])
			} else if value.Valid {
				_m.DisconnectedAt = new(time.Time)
				*_m.DisconnectedAt = value.Time
			}
		case call.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case call.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case call.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case call.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Call.
// This includes values selected through modifiers, order, etc.
func (_m *Call) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Call.
// Note that you need to call Call.Unwrap() before calling this method if this Call
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Call) Update() *CallUpdateOne {
	return NewCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Call entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Call) Unwrap() *Call {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Call is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Call) String() string {
	var builder strings.Builder
	builder.WriteString("Call(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CampaignID; v != nil {
		builder.WriteString("campaign_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContactID; v != nil {
		builder.WriteString("contact_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.QueueItemID; v != nil {
		builder.WriteString("queue_item_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExecutionID; v != nil {
		builder.WriteString("execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("from_phone=")
	builder.WriteString(_m.FromPhone)
	builder.WriteString(", ")
	builder.WriteString("to_phone=")
	builder.WriteString(_m.ToPhone)
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Direction))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("lifecycle_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.LifecycleStatus))
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("billed_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.BilledMinutes))
	builder.WriteString(", ")
	builder.WriteString("credits_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditsUsed))
	builder.WriteString(", ")
	if v := _m.HangupBy; v != nil {
		builder.WriteString("hangup_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HangupReason; v != nil {
		builder.WriteString("hangup_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HangupProviderCode; v != nil {
		builder.WriteString("hangup_provider_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RecordingURL; v != nil {
		builder.WriteString("recording_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("placeholder=")
	builder.WriteString(fmt.Sprintf("%v", _m.Placeholder))
	builder.WriteString(", ")
	builder.WriteString("provider_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderPayload))
	builder.WriteString(", ")
	if v := _m.RingingStartedAt; v != nil {
		builder.WriteString("ringing_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AnsweredAt; v != nil {
		builder.WriteString("answered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DisconnectedAt; v != nil {
		builder.WriteString("disconnected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Calls is a parsable slice of Call.
type Calls []*Call
