package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateCustomConstraints creates the DDL Ent/Atlas cannot express:
// composite foreign keys on provider natural keys and the partial
// unique index backing the one-active-rule-per-trigger invariant.
// These must match the statements in 000001_init.up.sql.
//
// Everything here is idempotent so it can also run after an Ent
// Schema.Create in tests.
func CreateCustomConstraints(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Messages may only land after their chat and sender contact were
	// materialized; violations surface as SQLSTATE 23503 and are mapped
	// to the FK-dependency error class.
	stmts := []struct {
		name string
		sql  string
	}{
		{
			name: "messages_chat_fkey",
			sql: `DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'messages_chat_fkey') THEN
					ALTER TABLE messages ADD CONSTRAINT messages_chat_fkey
						FOREIGN KEY (chat_id, instance_id)
						REFERENCES chats (chat_id, instance_id)
						ON DELETE CASCADE;
				END IF;
			END $$`,
		},
		{
			name: "messages_sender_fkey",
			sql: `DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'messages_sender_fkey') THEN
					ALTER TABLE messages ADD CONSTRAINT messages_sender_fkey
						FOREIGN KEY (sender_jid, instance_id)
						REFERENCES contacts (jid, instance_id)
						ON DELETE CASCADE;
				END IF;
			END $$`,
		},
		{
			name: "actionrule_trigger_scope_active",
			sql: `CREATE UNIQUE INDEX IF NOT EXISTS actionrule_trigger_scope_active
				ON action_rules (trigger_type, trigger_value, created_by)
				WHERE active AND deleted_at IS NULL`,
		},
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}

	return nil
}
