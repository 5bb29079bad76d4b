package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the schema definition for the Campaign entity.
//
// first_call_time/last_call_time are wall-clock HH:MM strings interpreted in
// the campaign timezone; windows never cross midnight (rejected at creation).
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("campaign_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("agent_id"),
		field.String("name"),
		field.Enum("status").
			Values("draft", "active", "paused", "completed", "cancelled").
			Default("draft"),
		field.String("timezone").
			Default("UTC").
			Comment("IANA zone name, e.g. Asia/Kolkata"),
		field.String("first_call_time").
			Default("09:00"),
		field.String("last_call_time").
			Default("17:00"),
		field.String("from_phone").
			Optional(),
		field.Time("start_date").
			Optional().
			Nillable(),
		field.Int("total_contacts").
			Default(0),
		field.Int("completed_calls").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return nil
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
		index.Fields("status"),
	}
}

// Annotations of the Campaign.
func (Campaign) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "call_campaigns"},
	}
}
