// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActiveSlotsColumns holds the columns for the "active_slots" table.
	ActiveSlotsColumns = []*schema.Column{
		{Name: "slot_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"direct", "campaign"}, Default: "direct"},
		{Name: "acquired_at", Type: field.TypeTime},
	}
	// ActiveSlotsTable holds the schema information for the "active_slots" table.
	ActiveSlotsTable = &schema.Table{
		Name:       "active_slots",
		Columns:    ActiveSlotsColumns,
		PrimaryKey: []*schema.Column{ActiveSlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activeslot_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ActiveSlotsColumns[1]},
			},
			{
				Name:    "activeslot_acquired_at",
				Unique:  false,
				Columns: []*schema.Column{ActiveSlotsColumns[4]},
			},
		},
	}
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "provider_agent_id", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
		},
	}
	// CallsColumns holds the columns for the "calls" table.
	CallsColumns = []*schema.Column{
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "campaign_id", Type: field.TypeString, Nullable: true},
		{Name: "contact_id", Type: field.TypeString, Nullable: true},
		{Name: "queue_item_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "from_phone", Type: field.TypeString, Nullable: true},
		{Name: "to_phone", Type: field.TypeString},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"outbound", "inbound"}, Default: "outbound"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"initiated", "in_progress", "completed", "failed", "cancelled"}, Default: "initiated"},
		{Name: "lifecycle_status", Type: field.TypeEnum, Enums: []string{"initiated", "ringing", "in_progress", "no_answer", "busy", "call_disconnected", "completed", "failed", "cancelled"}, Default: "initiated"},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "billed_minutes", Type: field.TypeInt, Default: 0},
		{Name: "credits_used", Type: field.TypeInt, Default: 0},
		{Name: "hangup_by", Type: field.TypeString, Nullable: true},
		{Name: "hangup_reason", Type: field.TypeString, Nullable: true},
		{Name: "hangup_provider_code", Type: field.TypeString, Nullable: true},
		{Name: "recording_url", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "placeholder", Type: field.TypeBool, Default: false},
		{Name: "provider_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "ringing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "answered_at", Type: field.TypeTime, Nullable: true},
		{Name: "disconnected_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CallsTable holds the schema information for the "calls" table.
	CallsTable = &schema.Table{
		Name:       "calls",
		Columns:    CallsColumns,
		PrimaryKey: []*schema.Column{CallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "call_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[1], CallsColumns[28]},
			},
			{
				Name:    "call_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[1], CallsColumns[10]},
			},
			{
				Name:    "call_campaign_id",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[3]},
			},
			{
				Name:    "call_lifecycle_status",
				Unique:  false,
				Columns: []*schema.Column{CallsColumns[11]},
			},
		},
	}
	// CallCampaignsColumns holds the columns for the "call_campaigns" table.
	CallCampaignsColumns = []*schema.Column{
		{Name: "campaign_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "paused", "completed", "cancelled"}, Default: "draft"},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "first_call_time", Type: field.TypeString, Default: "09:00"},
		{Name: "last_call_time", Type: field.TypeString, Default: "17:00"},
		{Name: "from_phone", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "total_contacts", Type: field.TypeInt, Default: 0},
		{Name: "completed_calls", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CallCampaignsTable holds the schema information for the "call_campaigns" table.
	CallCampaignsTable = &schema.Table{
		Name:       "call_campaigns",
		Columns:    CallCampaignsColumns,
		PrimaryKey: []*schema.Column{CallCampaignsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{CallCampaignsColumns[1], CallCampaignsColumns[4]},
			},
			{
				Name:    "campaign_status",
				Unique:  false,
				Columns: []*schema.Column{CallCampaignsColumns[4]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "contact_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "lead_source", Type: field.TypeString, Nullable: true},
		{Name: "entry_type", Type: field.TypeEnum, Enums: []string{"manual", "imported", "auto_created"}, Default: "manual"},
		{Name: "is_auto_created", Type: field.TypeBool, Default: false},
		{Name: "auto_creation_source", Type: field.TypeString, Nullable: true},
		{Name: "auto_created_from_call_id", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "custom_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contact_tenant_id_phone",
				Unique:  true,
				Columns: []*schema.Column{ContactsColumns[1], ContactsColumns[2]},
			},
		},
	}
	// CreditTransactionsColumns holds the columns for the "credit_transactions" table.
	CreditTransactionsColumns = []*schema.Column{
		{Name: "transaction_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"usage", "purchase", "adjustment"}},
		{Name: "amount", Type: field.TypeInt},
		{Name: "balance_after", Type: field.TypeInt},
		{Name: "call_id", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CreditTransactionsTable holds the schema information for the "credit_transactions" table.
	CreditTransactionsTable = &schema.Table{
		Name:       "credit_transactions",
		Columns:    CreditTransactionsColumns,
		PrimaryKey: []*schema.Column{CreditTransactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "credittransaction_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CreditTransactionsColumns[1], CreditTransactionsColumns[7]},
			},
			{
				Name:    "credittransaction_call_id",
				Unique:  false,
				Columns: []*schema.Column{CreditTransactionsColumns[5]},
			},
		},
	}
	// AutoEngagementFlowsColumns holds the columns for the "auto_engagement_flows" table.
	AutoEngagementFlowsColumns = []*schema.Column{
		{Name: "flow_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"contact_created"}, Default: "contact_created"},
		{Name: "conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "actions", Type: field.TypeJSON},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AutoEngagementFlowsTable holds the schema information for the "auto_engagement_flows" table.
	AutoEngagementFlowsTable = &schema.Table{
		Name:       "auto_engagement_flows",
		Columns:    AutoEngagementFlowsColumns,
		PrimaryKey: []*schema.Column{AutoEngagementFlowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "engagementflow_tenant_id_enabled_priority",
				Unique:  false,
				Columns: []*schema.Column{AutoEngagementFlowsColumns[1], AutoEngagementFlowsColumns[4], AutoEngagementFlowsColumns[3]},
			},
		},
	}
	// LeadAnalyticsColumns holds the columns for the "lead_analytics" table.
	LeadAnalyticsColumns = []*schema.Column{
		{Name: "analytics_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "analysis_type", Type: field.TypeEnum, Enums: []string{"individual", "complete"}},
		{Name: "call_id", Type: field.TypeString, Nullable: true},
		{Name: "latest_call_id", Type: field.TypeString, Nullable: true},
		{Name: "intent_level", Type: field.TypeString, Nullable: true},
		{Name: "intent_score", Type: field.TypeInt, Default: 0},
		{Name: "urgency_level", Type: field.TypeString, Nullable: true},
		{Name: "urgency_score", Type: field.TypeInt, Default: 0},
		{Name: "budget_constraint", Type: field.TypeString, Nullable: true},
		{Name: "budget_score", Type: field.TypeInt, Default: 0},
		{Name: "fit_alignment", Type: field.TypeString, Nullable: true},
		{Name: "fit_score", Type: field.TypeInt, Default: 0},
		{Name: "engagement_health", Type: field.TypeString, Nullable: true},
		{Name: "engagement_score", Type: field.TypeInt, Default: 0},
		{Name: "total_score", Type: field.TypeInt, Default: 0},
		{Name: "lead_status_tag", Type: field.TypeEnum, Nullable: true, Enums: []string{"Hot", "Warm", "Cold"}},
		{Name: "extracted_name", Type: field.TypeString, Nullable: true},
		{Name: "extracted_email", Type: field.TypeString, Nullable: true},
		{Name: "extracted_company", Type: field.TypeString, Nullable: true},
		{Name: "smart_notification", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cta_pricing_clicked", Type: field.TypeBool, Nullable: true},
		{Name: "cta_demo_clicked", Type: field.TypeBool, Nullable: true},
		{Name: "cta_followup_clicked", Type: field.TypeBool, Nullable: true},
		{Name: "cta_sample_clicked", Type: field.TypeBool, Nullable: true},
		{Name: "cta_escalated_to_human", Type: field.TypeBool, Nullable: true},
		{Name: "demo_book_datetime", Type: field.TypeTime, Nullable: true},
		{Name: "reasoning", Type: field.TypeJSON, Nullable: true},
		{Name: "previous_calls_analyzed", Type: field.TypeInt, Default: 0},
		{Name: "analysis_timestamp", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadAnalyticsTable holds the schema information for the "lead_analytics" table.
	LeadAnalyticsTable = &schema.Table{
		Name:       "lead_analytics",
		Columns:    LeadAnalyticsColumns,
		PrimaryKey: []*schema.Column{LeadAnalyticsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "leadanalytics_tenant_id_phone",
				Unique:  false,
				Columns: []*schema.Column{LeadAnalyticsColumns[1], LeadAnalyticsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "analysis_type = 'complete'",
				},
			},
			{
				Name:    "leadanalytics_tenant_id_analysis_type",
				Unique:  false,
				Columns: []*schema.Column{LeadAnalyticsColumns[1], LeadAnalyticsColumns[3]},
			},
			{
				Name:    "leadanalytics_tenant_id_phone",
				Unique:  true,
				Columns: []*schema.Column{LeadAnalyticsColumns[1], LeadAnalyticsColumns[2]},
			},
			{
				Name:    "leadanalytics_call_id",
				Unique:  true,
				Columns: []*schema.Column{LeadAnalyticsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "analysis_type = 'individual'",
				},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"sent", "failed", "skipped"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "recipient", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "related_campaign_id", Type: field.TypeString, Nullable: true},
		{Name: "related_transaction_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[12]},
			},
			{
				Name:    "notification_tenant_id_type",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[2]},
			},
		},
	}
	// NotificationPreferencesColumns holds the columns for the "notification_preferences" table.
	NotificationPreferencesColumns = []*schema.Column{
		{Name: "preference_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "low_credit_alerts", Type: field.TypeBool, Default: true},
		{Name: "credits_added_emails", Type: field.TypeBool, Default: true},
		{Name: "campaign_summary_emails", Type: field.TypeBool, Default: true},
		{Name: "email_verification_reminders", Type: field.TypeBool, Default: true},
		{Name: "marketing_emails", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NotificationPreferencesTable holds the schema information for the "notification_preferences" table.
	NotificationPreferencesTable = &schema.Table{
		Name:       "notification_preferences",
		Columns:    NotificationPreferencesColumns,
		PrimaryKey: []*schema.Column{NotificationPreferencesColumns[0]},
	}
	// PhoneNumbersColumns holds the columns for the "phone_numbers" table.
	PhoneNumbersColumns = []*schema.Column{
		{Name: "phone_number_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PhoneNumbersTable holds the schema information for the "phone_numbers" table.
	PhoneNumbersTable = &schema.Table{
		Name:       "phone_numbers",
		Columns:    PhoneNumbersColumns,
		PrimaryKey: []*schema.Column{PhoneNumbersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "phonenumber_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{PhoneNumbersColumns[1]},
			},
			{
				Name:    "phonenumber_assigned_agent_id",
				Unique:  true,
				Columns: []*schema.Column{PhoneNumbersColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "assigned_agent_id IS NOT NULL",
				},
			},
			{
				Name:    "phonenumber_phone",
				Unique:  true,
				Columns: []*schema.Column{PhoneNumbersColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_active",
				},
			},
		},
	}
	// CallQueueColumns holds the columns for the "call_queue" table.
	CallQueueColumns = []*schema.Column{
		{Name: "queue_item_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"direct", "campaign"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "priority", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "contact_phone", Type: field.TypeString},
		{Name: "contact_name", Type: field.TypeString, Nullable: true},
		{Name: "contact_id", Type: field.TypeString, Nullable: true},
		{Name: "campaign_id", Type: field.TypeString, Nullable: true},
		{Name: "call_id", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_for", Type: field.TypeTime, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "variables", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CallQueueTable holds the schema information for the "call_queue" table.
	CallQueueTable = &schema.Table{
		Name:       "call_queue",
		Columns:    CallQueueColumns,
		PrimaryKey: []*schema.Column{CallQueueColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queueitem_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{CallQueueColumns[1], CallQueueColumns[3]},
			},
			{
				Name:    "queueitem_campaign_id",
				Unique:  false,
				Columns: []*schema.Column{CallQueueColumns[10]},
			},
			{
				Name:    "queueitem_tenant_id_priority_position",
				Unique:  false,
				Columns: []*schema.Column{CallQueueColumns[1], CallQueueColumns[4], CallQueueColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'queued'",
				},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "credits", Type: field.TypeInt, Default: 0},
		{Name: "concurrent_calls_limit", Type: field.TypeInt, Nullable: true},
		{Name: "individual_prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "complete_prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_email",
				Unique:  true,
				Columns: []*schema.Column{TenantsColumns[2]},
			},
		},
	}
	// TranscriptsColumns holds the columns for the "transcripts" table.
	TranscriptsColumns = []*schema.Column{
		{Name: "transcript_id", Type: field.TypeString, Unique: true},
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "segments", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TranscriptsTable holds the schema information for the "transcripts" table.
	TranscriptsTable = &schema.Table{
		Name:       "transcripts",
		Columns:    TranscriptsColumns,
		PrimaryKey: []*schema.Column{TranscriptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transcript_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{TranscriptsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActiveSlotsTable,
		AgentsTable,
		CallsTable,
		CallCampaignsTable,
		ContactsTable,
		CreditTransactionsTable,
		AutoEngagementFlowsTable,
		LeadAnalyticsTable,
		NotificationsTable,
		NotificationPreferencesTable,
		PhoneNumbersTable,
		CallQueueTable,
		TenantsTable,
		TranscriptsTable,
	}
)

func init() {
	CallCampaignsTable.Annotation = &entsql.Annotation{
		Table: "call_campaigns",
	}
	AutoEngagementFlowsTable.Annotation = &entsql.Annotation{
		Table: "auto_engagement_flows",
	}
	LeadAnalyticsTable.Annotation = &entsql.Annotation{
		Table: "lead_analytics",
	}
	CallQueueTable.Annotation = &entsql.Annotation{
		Table: "call_queue",
	}
}
