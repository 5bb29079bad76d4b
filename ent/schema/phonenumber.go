package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhoneNumber holds the schema definition for the PhoneNumber entity.
// Numbers are provisioned per tenant and optionally pinned to one agent.
type PhoneNumber struct {
	ent.Schema
}

// Fields of the PhoneNumber.
func (PhoneNumber) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("phone_number_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("phone").
			Comment("E.164 number"),
		field.String("assigned_agent_id").
			Optional().
			Nillable().
			Comment("At most one number per agent (partial unique)"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PhoneNumber.
func (PhoneNumber) Edges() []ent.Edge {
	return nil
}

// Indexes of the PhoneNumber.
func (PhoneNumber) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),

		// An agent can hold at most one number, but released numbers keep history rows.
		index.Fields("assigned_agent_id").
			Unique().
			Annotations(entsql.IndexWhere("assigned_agent_id IS NOT NULL")),

		// A number can be active in at most one row; retired rows may repeat.
		index.Fields("phone").
			Unique().
			Annotations(entsql.IndexWhere("is_active")),
	}
}
