package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tenant holds the schema definition for the Tenant entity.
// Every other entity carries a tenant_id column; cross-tenant reads are a bug.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tenant_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("email").
			Comment("Primary account email (notification recipient)"),
		field.Bool("email_verified").
			Default(false),
		field.Int("credits").
			Default(0).
			Comment("Credit balance in minutes; may go negative on completion billing"),
		field.Int("concurrent_calls_limit").
			Optional().
			Nillable().
			Comment("Per-tenant concurrency cap; nil means the configured default applies"),
		field.String("individual_prompt_id").
			Optional().
			Nillable().
			Comment("Extraction prompt override; nil means the system default"),
		field.String("complete_prompt_id").
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

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return nil
}

// Indexes of the Tenant.
func (Tenant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").
			Unique(),
	}
}
