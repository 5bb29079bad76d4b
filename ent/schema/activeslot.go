package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActiveSlot holds the schema definition for the ActiveSlot entity.
//
// One row per in-flight call; row count is the concurrency ledger. The
// unique call_id makes release idempotent, and acquired_at lets the reaper
// recover slots leaked by crashed processes.
type ActiveSlot struct {
	ent.Schema
}

// Fields of the ActiveSlot.
func (ActiveSlot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("slot_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("call_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("direct", "campaign").
			Default("direct").
			Immutable(),
		field.Time("acquired_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ActiveSlot.
func (ActiveSlot) Edges() []ent.Edge {
	return nil
}

// Indexes of the ActiveSlot.
func (ActiveSlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("acquired_at"),
	}
}
