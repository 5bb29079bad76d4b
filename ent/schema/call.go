package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Call holds the schema definition for the Call entity.
//
// status is the coarse business outcome; lifecycle_status tracks the most
// recent provider event and doubles as the completion-idempotency marker:
// once it is terminal, replayed webhooks change nothing. Webhooks arrive
// asynchronously and may outlive the call, so rows are never deleted during
// a call and late events only ever read them.
type Call struct {
	ent.Schema
}

// Fields of the Call.
func (Call) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_id").
			Unique().
			Immutable(),
		field.String("tenant_id"),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("campaign_id").
			Optional().
			Nillable(),
		field.String("contact_id").
			Optional().
			Nillable(),
		field.String("queue_item_id").
			Optional().
			Nillable(),
		field.String("execution_id").
			Optional().
			Nillable().
			Unique().
			Comment("Provider execution identifier; webhooks resolve calls by it"),
		field.String("from_phone").
			Optional(),
		field.String("to_phone"),
		field.Enum("direction").
			Values("outbound", "inbound").
			Default("outbound"),
		field.Enum("status").
			Values("initiated", "in_progress", "completed", "failed", "cancelled").
			Default("initiated"),
		field.Enum("lifecycle_status").
			Values("initiated", "ringing", "in_progress", "no_answer", "busy",
				"call_disconnected", "completed", "failed", "cancelled").
			Default("initiated").
			Comment("Most recent provider event; terminal values gate webhook replays"),
		field.Int("duration_seconds").
			Default(0),
		field.Int("billed_minutes").
			Default(0).
			Comment("ceil(duration_seconds/60), set once at completion"),
		field.Int("credits_used").
			Default(0),
		field.String("hangup_by").
			Optional().
			Nillable(),
		field.String("hangup_reason").
			Optional().
			Nillable(),
		field.String("hangup_provider_code").
			Optional().
			Nillable(),
		field.String("recording_url").
			Optional().
			Nillable(),
		field.Text("summary").
			Optional().
			Nillable(),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Bool("placeholder").
			Default(false).
			Comment("Created by a webhook for an unknown execution_id"),
		field.JSON("provider_payload", map[string]interface{}{}).
			Optional().
			Comment("Opaque provider blobs from the completion webhook"),
		field.Time("ringing_started_at").
			Optional().
			Nillable(),
		field.Time("answered_at").
			Optional().
			Nillable(),
		field.Time("disconnected_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Call.
func (Call) Edges() []ent.Edge {
	return nil
}

// Indexes of the Call.
func (Call) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("tenant_id", "status"),
		index.Fields("campaign_id"),
		index.Fields("lifecycle_status"),
	}
}
