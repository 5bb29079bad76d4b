package database

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgconn"
)

// tenantIsolationDDL is the DDL Ent cannot express: composite foreign keys
// that force every child row to reference a parent row of the same tenant.
// The production migrations in pkg/database/migrations/*.sql carry the same
// constraints; this helper applies them to Ent-created test schemas so the
// integration suite runs against the real invariants.
//
// A NULL in any referencing column skips the check (MATCH SIMPLE), which is
// what we want for optional references like call.campaign_id.
var tenantIsolationDDL = []struct {
	name string
	stmt string
}{
	{"agents identity", `ALTER TABLE agents ADD CONSTRAINT agents_id_tenant_key UNIQUE (agent_id, tenant_id)`},
	{"campaigns identity", `ALTER TABLE call_campaigns ADD CONSTRAINT call_campaigns_id_tenant_key UNIQUE (campaign_id, tenant_id)`},
	{"contacts identity", `ALTER TABLE contacts ADD CONSTRAINT contacts_id_tenant_key UNIQUE (contact_id, tenant_id)`},
	{"calls identity", `ALTER TABLE calls ADD CONSTRAINT calls_id_tenant_key UNIQUE (call_id, tenant_id)`},
	{"queue agent", `ALTER TABLE call_queue ADD CONSTRAINT call_queue_agent_tenant_fkey
		FOREIGN KEY (agent_id, tenant_id) REFERENCES agents (agent_id, tenant_id)`},
	{"queue campaign", `ALTER TABLE call_queue ADD CONSTRAINT call_queue_campaign_tenant_fkey
		FOREIGN KEY (campaign_id, tenant_id) REFERENCES call_campaigns (campaign_id, tenant_id)`},
	{"queue contact", `ALTER TABLE call_queue ADD CONSTRAINT call_queue_contact_tenant_fkey
		FOREIGN KEY (contact_id, tenant_id) REFERENCES contacts (contact_id, tenant_id)`},
	{"call agent", `ALTER TABLE calls ADD CONSTRAINT calls_agent_tenant_fkey
		FOREIGN KEY (agent_id, tenant_id) REFERENCES agents (agent_id, tenant_id)`},
	{"call campaign", `ALTER TABLE calls ADD CONSTRAINT calls_campaign_tenant_fkey
		FOREIGN KEY (campaign_id, tenant_id) REFERENCES call_campaigns (campaign_id, tenant_id)`},
	{"call contact", `ALTER TABLE calls ADD CONSTRAINT calls_contact_tenant_fkey
		FOREIGN KEY (contact_id, tenant_id) REFERENCES contacts (contact_id, tenant_id)`},
	{"slot call", `ALTER TABLE active_slots ADD CONSTRAINT active_slots_call_tenant_fkey
		FOREIGN KEY (call_id, tenant_id) REFERENCES calls (call_id, tenant_id)`},
	{"transcript call", `ALTER TABLE transcripts ADD CONSTRAINT transcripts_call_tenant_fkey
		FOREIGN KEY (call_id, tenant_id) REFERENCES calls (call_id, tenant_id)`},
	{"transaction call", `ALTER TABLE credit_transactions ADD CONSTRAINT credit_transactions_call_tenant_fkey
		FOREIGN KEY (call_id, tenant_id) REFERENCES calls (call_id, tenant_id)`},
}

// CreateTenantIsolationConstraints applies the composite tenant foreign keys
// to a schema created by Ent's migration engine. Idempotent: re-running on a
// schema that already carries a constraint is a no-op.
func CreateTenantIsolationConstraints(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	for _, ddl := range tenantIsolationDDL {
		if _, err := db.ExecContext(ctx, ddl.stmt); err != nil {
			if isDuplicateConstraint(err) {
				continue
			}
			return fmt.Errorf("failed to create %s constraint: %w", ddl.name, err)
		}
	}
	return nil
}

func isDuplicateConstraint(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 42710 duplicate_object, 42P07 duplicate_table (constraint indexes).
	return pgErr.Code == "42710" || pgErr.Code == "42P07"
}
