package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadAnalytics holds the schema definition for the LeadAnalytics entity.
//
// Two row shapes share the table, discriminated by analysis_type: one
// "individual" row per analyzed call, and at most one "complete" row per
// (tenant, phone) that is upserted in place as calls accumulate. The partial
// unique indexes enforce both shapes. Extraction output outside the typed
// contract is preserved in the reasoning blob rather than dropped.
type LeadAnalytics struct {
	ent.Schema
}

// Fields of the LeadAnalytics.
func (LeadAnalytics) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analytics_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("phone").
			Comment("Normalized contact phone; the identity key for complete rows"),
		field.Enum("analysis_type").
			Values("individual", "complete").
			Immutable(),
		field.String("call_id").
			Optional().
			Nillable().
			Comment("Set on individual rows; complete rows span calls"),
		field.String("latest_call_id").
			Optional().
			Nillable().
			Comment("Set on complete rows; the call that produced the latest refresh"),
		field.String("intent_level").
			Optional().
			Nillable(),
		field.Int("intent_score").
			Default(0),
		field.String("urgency_level").
			Optional().
			Nillable(),
		field.Int("urgency_score").
			Default(0),
		field.String("budget_constraint").
			Optional().
			Nillable(),
		field.Int("budget_score").
			Default(0),
		field.String("fit_alignment").
			Optional().
			Nillable(),
		field.Int("fit_score").
			Default(0),
		field.String("engagement_health").
			Optional().
			Nillable(),
		field.Int("engagement_score").
			Default(0),
		field.Int("total_score").
			Default(0),
		field.Enum("lead_status_tag").
			Values("Hot", "Warm", "Cold").
			Optional(),
		field.String("extracted_name").
			Optional().
			Nillable(),
		field.String("extracted_email").
			Optional().
			Nillable(),
		field.String("extracted_company").
			Optional().
			Nillable(),
		field.Text("smart_notification").
			Optional().
			Nillable(),
		field.Bool("cta_pricing_clicked").
			Optional().
			Nillable(),
		field.Bool("cta_demo_clicked").
			Optional().
			Nillable(),
		field.Bool("cta_followup_clicked").
			Optional().
			Nillable(),
		field.Bool("cta_sample_clicked").
			Optional().
			Nillable(),
		field.Bool("cta_escalated_to_human").
			Optional().
			Nillable(),
		field.Time("demo_book_datetime").
			Optional().
			Nillable(),
		field.JSON("reasoning", map[string]interface{}{}).
			Optional().
			Comment("Model reasoning plus extraction fields outside the typed contract"),
		field.Int("previous_calls_analyzed").
			Default(0).
			Comment("Complete rows: number of calls folded into the aggregate"),
		field.Time("analysis_timestamp").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the LeadAnalytics.
func (LeadAnalytics) Edges() []ent.Edge {
	return nil
}

// Indexes of the LeadAnalytics.
func (LeadAnalytics) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "phone"),
		index.Fields("tenant_id", "analysis_type"),

		// One cumulative row per lead, one score sheet per call.
		index.Fields("tenant_id", "phone").
			Unique().
			Annotations(entsql.IndexWhere("analysis_type = 'complete'")),
		index.Fields("call_id").
			Unique().
			Annotations(entsql.IndexWhere("analysis_type = 'individual'")),
	}
}

// Annotations of the LeadAnalytics.
func (LeadAnalytics) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lead_analytics"},
	}
}
