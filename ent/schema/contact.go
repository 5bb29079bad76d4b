package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
// Contacts are deduplicated per tenant by phone; completion processing
// auto-creates them from extraction output, so most fields are optional.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("contact_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("phone").
			Comment("E.164 number"),
		field.String("name").
			Optional().
			Nillable(),
		field.String("email").
			Optional().
			Nillable(),
		field.String("company").
			Optional().
			Nillable(),
		field.String("lead_source").
			Optional().
			Comment("Where the contact came from (webform, import, call, ...)"),
		field.Enum("entry_type").
			Values("manual", "imported", "auto_created").
			Default("manual"),
		field.Bool("is_auto_created").
			Default(false),
		field.String("auto_creation_source").
			Optional().
			Nillable().
			Comment("'webhook' when completion processing created the row"),
		field.String("auto_created_from_call_id").
			Optional().
			Nillable(),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Free-form tags; 'dnc' suppresses auto-engagement"),
		field.JSON("custom_fields", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Contact.
func (Contact) Edges() []ent.Edge {
	return nil
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "phone").
			Unique(),
	}
}
