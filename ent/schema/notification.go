package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
//
// Rows are the audit trail of the dispatcher: every attempt lands here as
// sent, failed, or skipped. idempotency_key is the dedup boundary; there is
// exactly one attempt per key, ever.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("type").
			Comment("email_verification, credit_low_15, campaign_summary, ..."),
		field.String("idempotency_key").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("sent", "failed", "skipped"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Failure detail or 'User preference disabled'"),
		field.String("recipient"),
		field.String("subject").
			Optional(),
		field.String("related_campaign_id").
			Optional().
			Nillable(),
		field.String("related_transaction_id").
			Optional().
			Nillable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Template variables handed to the mail provider"),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return nil
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("tenant_id", "type"),
	}
}
