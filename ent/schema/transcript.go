package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Transcript holds the schema definition for the Transcript entity.
// Exactly one per completed call (unique call_id); kept indefinitely.
type Transcript struct {
	ent.Schema
}

// Fields of the Transcript.
func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transcript_id").
			Unique().
			Immutable(),
		field.String("call_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Text("content").
			Comment("Concatenated '<role>: <message>' lines"),
		field.JSON("segments", []map[string]interface{}{}).
			Optional().
			Comment("Structured speaker turns as delivered by the provider"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Transcript.
func (Transcript) Edges() []ent.Edge {
	return nil
}

// Indexes of the Transcript.
func (Transcript) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
	}
}
