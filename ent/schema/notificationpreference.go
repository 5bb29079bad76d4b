package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// NotificationPreference holds the schema definition for the
// NotificationPreference entity. One row per tenant; absence means every
// bucket is enabled. Verification mail itself has no bucket at all: account
// security is not opt-out, only the reminder cadence is.
type NotificationPreference struct {
	ent.Schema
}

// Fields of the NotificationPreference.
func (NotificationPreference) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("preference_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Unique().
			Immutable(),
		field.Bool("low_credit_alerts").
			Default(true),
		field.Bool("credits_added_emails").
			Default(true),
		field.Bool("campaign_summary_emails").
			Default(true),
		field.Bool("email_verification_reminders").
			Default(true),
		field.Bool("marketing_emails").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the NotificationPreference.
func (NotificationPreference) Edges() []ent.Edge {
	return nil
}
