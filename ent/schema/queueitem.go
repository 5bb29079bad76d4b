package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueItem holds the schema definition for the QueueItem entity.
//
// position is allocated monotonically per tenant at enqueue time and never
// reused; together with (priority desc, position asc, created_at asc) it
// fixes the dispatch order. Items are terminal after completed/failed/
// cancelled; there is no automatic retry.
type QueueItem struct {
	ent.Schema
}

// Fields of the QueueItem.
func (QueueItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("queue_item_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Enum("kind").
			Values("direct", "campaign").
			Immutable(),
		field.Enum("status").
			Values("queued", "processing", "completed", "failed", "cancelled").
			Default("queued"),
		field.Int("priority").
			Comment("direct=100, campaign=0, +boost for named contacts"),
		field.Int("position").
			Comment("Monotonic per tenant, assigned at enqueue"),
		field.String("agent_id"),
		field.String("contact_phone"),
		field.String("contact_name").
			Optional().
			Nillable(),
		field.String("contact_id").
			Optional().
			Nillable(),
		field.String("campaign_id").
			Optional().
			Nillable().
			Comment("Set for campaign-originated items; flow-originated items leave it empty"),
		field.String("call_id").
			Optional().
			Nillable().
			Comment("Call created at dispatch"),
		field.Time("scheduled_for").
			Optional().
			Nillable().
			Comment("Earliest dispatch time for delayed (flow) items"),
		field.Int("attempts").
			Default(0).
			Comment("Dispatch attempts; informational, items never auto-retry"),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.JSON("variables", map[string]interface{}{}).
			Optional().
			Comment("Provider call variables captured at enqueue"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the QueueItem.
func (QueueItem) Edges() []ent.Edge {
	return nil
}

// Indexes of the QueueItem.
func (QueueItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
		index.Fields("campaign_id"),

		// Dispatch-order scan over the live part of the queue only.
		index.Fields("tenant_id", "priority", "position").
			Annotations(entsql.IndexWhere("status = 'queued'")),
	}
}

// Annotations of the QueueItem.
func (QueueItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "call_queue"},
	}
}
