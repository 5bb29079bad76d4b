package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CreditTransaction holds the schema definition for the CreditTransaction
// entity. The ledger of every balance change: usage rows carry negative
// amounts, purchases positive ones. balance_after snapshots the tenant
// balance inside the same transaction that changed it.
type CreditTransaction struct {
	ent.Schema
}

// Fields of the CreditTransaction.
func (CreditTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transaction_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Enum("type").
			Values("usage", "purchase", "adjustment").
			Immutable(),
		field.Int("amount").
			Immutable().
			Comment("Signed delta in minutes"),
		field.Int("balance_after").
			Immutable(),
		field.String("call_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("description").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CreditTransaction.
func (CreditTransaction) Edges() []ent.Edge {
	return nil
}

// Indexes of the CreditTransaction.
func (CreditTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("call_id"),
	}
}
