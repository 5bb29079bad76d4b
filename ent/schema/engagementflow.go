package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngagementFlow holds the schema definition for the EngagementFlow entity.
//
// Flows fire when a contact is created: the evaluator walks enabled flows in
// ascending priority, the first one whose conditions all match runs its
// actions, and nothing runs for contacts tagged 'dnc'. conditions and actions
// are stored as JSON and decoded by pkg/flows.
type EngagementFlow struct {
	ent.Schema
}

// Fields of the EngagementFlow.
func (EngagementFlow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("flow_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.Int("priority").
			Default(0).
			Comment("Lower fires first"),
		field.Bool("enabled").
			Default(true),
		field.Enum("trigger_type").
			Values("contact_created").
			Default("contact_created"),
		field.JSON("conditions", []map[string]interface{}{}).
			Optional().
			Comment("[{field, operator, value}], ANDed"),
		field.JSON("actions", []map[string]interface{}{}).
			Comment("[{type: call|message|email|wait, ...}], run in order"),
		field.String("agent_id").
			Optional().
			Comment("Default agent for call actions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EngagementFlow.
func (EngagementFlow) Edges() []ent.Edge {
	return nil
}

// Indexes of the EngagementFlow.
func (EngagementFlow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "enabled", "priority"),
	}
}

// Annotations of the EngagementFlow.
func (EngagementFlow) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "auto_engagement_flows"},
	}
}
