// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionExecutionLogsColumns holds the columns for the "action_execution_logs" table.
	ActionExecutionLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "queue_item_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failed", "parse_failed", "skipped"}},
		{Name: "execution_time_ms", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_entity_refs", Type: field.TypeJSON, Nullable: true},
		{Name: "chat_id", Type: field.TypeString, Nullable: true},
		{Name: "instance_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActionExecutionLogsTable holds the schema information for the "action_execution_logs" table.
	ActionExecutionLogsTable = &schema.Table{
		Name:       "action_execution_logs",
		Columns:    ActionExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ActionExecutionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actionexecutionlog_rule_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActionExecutionLogsColumns[1], ActionExecutionLogsColumns[9]},
			},
			{
				Name:    "actionexecutionlog_rule_id_chat_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActionExecutionLogsColumns[1], ActionExecutionLogsColumns[7], ActionExecutionLogsColumns[9]},
			},
			{
				Name:    "actionexecutionlog_queue_item_id",
				Unique:  false,
				Columns: []*schema.Column{ActionExecutionLogsColumns[2]},
			},
		},
	}
	// ActionQueueItemsColumns holds the columns for the "action_queue_items" table.
	ActionQueueItemsColumns = []*schema.Column{
		{Name: "queue_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"reaction", "message", "entity_change"}},
		{Name: "event_data", Type: field.TypeJSON},
		{Name: "idempotency_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "result", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 50},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "retry_after_ts", Type: field.TypeTime},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "leased_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ActionQueueItemsTable holds the schema information for the "action_queue_items" table.
	ActionQueueItemsTable = &schema.Table{
		Name:       "action_queue_items",
		Columns:    ActionQueueItemsColumns,
		PrimaryKey: []*schema.Column{ActionQueueItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actionqueueitem_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActionQueueItemsColumns[4], ActionQueueItemsColumns[6], ActionQueueItemsColumns[13]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'pending'",
				},
			},
			{
				Name:    "actionqueueitem_idempotency_key_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActionQueueItemsColumns[3], ActionQueueItemsColumns[13]},
			},
			{
				Name:    "actionqueueitem_status_leased_at",
				Unique:  false,
				Columns: []*schema.Column{ActionQueueItemsColumns[4], ActionQueueItemsColumns[12]},
			},
			{
				Name:    "actionqueueitem_completed_at",
				Unique:  false,
				Columns: []*schema.Column{ActionQueueItemsColumns[15]},
			},
		},
	}
	// ActionRulesColumns holds the columns for the "action_rules" table.
	ActionRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "rule_name", Type: field.TypeString},
		{Name: "rule_type", Type: field.TypeEnum, Enums: []string{"simple_action", "nlp_action"}, Default: "simple_action"},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"reaction", "hashtag"}},
		{Name: "trigger_value", Type: field.TypeString},
		{Name: "action_type", Type: field.TypeEnum, Enums: []string{"create_task", "create_calendar_event", "create_bill", "create_note", "update_task_status", "send_message"}},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "cooldown_minutes", Type: field.TypeInt, Default: 0},
		{Name: "max_executions_per_day", Type: field.TypeInt, Default: 0},
		{Name: "total_executions", Type: field.TypeInt, Default: 0},
		{Name: "last_executed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ActionRulesTable holds the schema information for the "action_rules" table.
	ActionRulesTable = &schema.Table{
		Name:       "action_rules",
		Columns:    ActionRulesColumns,
		PrimaryKey: []*schema.Column{ActionRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actionrule_trigger_value",
				Unique:  false,
				Columns: []*schema.Column{ActionRulesColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "active AND deleted_at IS NULL",
				},
			},
			{
				Name:    "actionrule_trigger_type_trigger_value",
				Unique:  false,
				Columns: []*schema.Column{ActionRulesColumns[3], ActionRulesColumns[4]},
			},
			{
				Name:    "actionrule_created_by",
				Unique:  false,
				Columns: []*schema.Column{ActionRulesColumns[13]},
			},
			{
				Name:    "actionrule_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ActionRulesColumns[16]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// BillsColumns holds the columns for the "bills" table.
	BillsColumns = []*schema.Column{
		{Name: "bill_id", Type: field.TypeString, Unique: true},
		{Name: "vendor", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "is_recurring", Type: field.TypeBool, Default: false},
		{Name: "recurrence_type", Type: field.TypeString, Nullable: true},
		{Name: "recurrence_interval", Type: field.TypeInt, Default: 0},
		{Name: "recurrence_end_date", Type: field.TypeTime, Nullable: true},
		{Name: "next_due_date", Type: field.TypeTime, Nullable: true},
		{Name: "auto_pay_enabled", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "paid", "overdue", "cancelled"}, Default: "pending"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "space_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BillsTable holds the schema information for the "bills" table.
	BillsTable = &schema.Table{
		Name:       "bills",
		Columns:    BillsColumns,
		PrimaryKey: []*schema.Column{BillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bill_status_due_date",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[12], BillsColumns[4]},
			},
			{
				Name:    "bill_space_id",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[15]},
			},
		},
	}
	// CalendarEventsColumns holds the columns for the "calendar_events" table.
	CalendarEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "conference_url", Type: field.TypeString, Nullable: true},
		{Name: "attendees", Type: field.TypeJSON, Nullable: true},
		{Name: "recurrence", Type: field.TypeString, Nullable: true},
		{Name: "space_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CalendarEventsTable holds the schema information for the "calendar_events" table.
	CalendarEventsTable = &schema.Table{
		Name:       "calendar_events",
		Columns:    CalendarEventsColumns,
		PrimaryKey: []*schema.Column{CalendarEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarevent_start_time",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[2]},
			},
			{
				Name:    "calendarevent_space_id",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[8]},
			},
		},
	}
	// CallLogsColumns holds the columns for the "call_logs" table.
	CallLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "call_log_id", Type: field.TypeString},
		{Name: "chat_id", Type: field.TypeString, Nullable: true},
		{Name: "from_jid", Type: field.TypeString, Nullable: true},
		{Name: "from_me", Type: field.TypeBool, Default: false},
		{Name: "start_ts", Type: field.TypeTime},
		{Name: "is_video", Type: field.TypeBool, Default: false},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"answered", "missed", "declined"}, Default: "missed"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
	}
	// CallLogsTable holds the schema information for the "call_logs" table.
	CallLogsTable = &schema.Table{
		Name:       "call_logs",
		Columns:    CallLogsColumns,
		PrimaryKey: []*schema.Column{CallLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "call_logs_instances_call_logs",
				Columns:    []*schema.Column{CallLogsColumns[10]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "calllog_call_log_id_instance_id",
				Unique:  true,
				Columns: []*schema.Column{CallLogsColumns[1], CallLogsColumns[10]},
			},
			{
				Name:    "calllog_chat_id_instance_id",
				Unique:  false,
				Columns: []*schema.Column{CallLogsColumns[2], CallLogsColumns[10]},
			},
		},
	}
	// ChatsColumns holds the columns for the "chats" table.
	ChatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"individual", "group"}},
		{Name: "unread_count", Type: field.TypeInt, Default: 0},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "pinned", Type: field.TypeBool, Default: false},
		{Name: "muted", Type: field.TypeBool, Default: false},
		{Name: "mute_end_ts", Type: field.TypeTime, Nullable: true},
		{Name: "last_message_ts", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
	}
	// ChatsTable holds the schema information for the "chats" table.
	ChatsTable = &schema.Table{
		Name:       "chats",
		Columns:    ChatsColumns,
		PrimaryKey: []*schema.Column{ChatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chats_instances_chats",
				Columns:    []*schema.Column{ChatsColumns[11]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chat_chat_id_instance_id",
				Unique:  true,
				Columns: []*schema.Column{ChatsColumns[1], ChatsColumns[11]},
			},
			{
				Name:    "chat_instance_id_last_message_ts",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[11], ChatsColumns[8]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "jid", Type: field.TypeString},
		{Name: "push_name", Type: field.TypeString, Nullable: true},
		{Name: "verified_name", Type: field.TypeString, Nullable: true},
		{Name: "profile_picture_url", Type: field.TypeString, Nullable: true},
		{Name: "is_business", Type: field.TypeBool, Default: false},
		{Name: "is_me", Type: field.TypeBool, Default: false},
		{Name: "is_blocked", Type: field.TypeBool, Default: false},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_updated_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contacts_instances_contacts",
				Columns:    []*schema.Column{ContactsColumns[10]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contact_jid_instance_id",
				Unique:  true,
				Columns: []*schema.Column{ContactsColumns[1], ContactsColumns[10]},
			},
			{
				Name:    "contact_instance_id",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[10]},
			},
		},
	}
	// EntityChangesColumns holds the columns for the "entity_changes" table.
	EntityChangesColumns = []*schema.Column{
		{Name: "change_id", Type: field.TypeString, Unique: true},
		{Name: "table_name", Type: field.TypeString},
		{Name: "operation", Type: field.TypeEnum, Enums: []string{"INSERT", "UPDATE", "DELETE"}},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "old_data", Type: field.TypeJSON, Nullable: true},
		{Name: "new_data", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "changed_at", Type: field.TypeTime},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// EntityChangesTable holds the schema information for the "entity_changes" table.
	EntityChangesTable = &schema.Table{
		Name:       "entity_changes",
		Columns:    EntityChangesColumns,
		PrimaryKey: []*schema.Column{EntityChangesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entitychange_processed_changed_at",
				Unique:  false,
				Columns: []*schema.Column{EntityChangesColumns[9], EntityChangesColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "NOT processed",
				},
			},
			{
				Name:    "entitychange_entity_type_changed_at",
				Unique:  false,
				Columns: []*schema.Column{EntityChangesColumns[4], EntityChangesColumns[8]},
			},
			{
				Name:    "entitychange_table_name",
				Unique:  false,
				Columns: []*schema.Column{EntityChangesColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// FailedEventsColumns holds the columns for the "failed_events" table.
	FailedEventsColumns = []*schema.Column{
		{Name: "failed_event_id", Type: field.TypeString, Unique: true},
		{Name: "instance_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString, Nullable: true},
		{Name: "raw_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Size: 2147483647},
		{Name: "error_kind", Type: field.TypeEnum, Enums: []string{"validation", "fk_dependency", "transient", "permanent"}, Default: "validation"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 5},
		{Name: "next_retry_at", Type: field.TypeTime},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FailedEventsTable holds the schema information for the "failed_events" table.
	FailedEventsTable = &schema.Table{
		Name:       "failed_events",
		Columns:    FailedEventsColumns,
		PrimaryKey: []*schema.Column{FailedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "failedevent_resolved_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{FailedEventsColumns[9], FailedEventsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "NOT resolved",
				},
			},
			{
				Name:    "failedevent_instance_id",
				Unique:  false,
				Columns: []*schema.Column{FailedEventsColumns[1]},
			},
			{
				Name:    "failedevent_error_kind",
				Unique:  false,
				Columns: []*schema.Column{FailedEventsColumns[5]},
			},
		},
	}
	// ChatGroupsColumns holds the columns for the "chat_groups" table.
	ChatGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "group_jid", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "subject_authoritative", Type: field.TypeBool, Default: false},
		{Name: "owner_jid", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "creation_ts", Type: field.TypeTime, Nullable: true},
		{Name: "is_locked", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
	}
	// ChatGroupsTable holds the schema information for the "chat_groups" table.
	ChatGroupsTable = &schema.Table{
		Name:       "chat_groups",
		Columns:    ChatGroupsColumns,
		PrimaryKey: []*schema.Column{ChatGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_groups_instances_groups",
				Columns:    []*schema.Column{ChatGroupsColumns[10]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "group_group_jid_instance_id",
				Unique:  true,
				Columns: []*schema.Column{ChatGroupsColumns[1], ChatGroupsColumns[10]},
			},
		},
	}
	// GroupParticipantsColumns holds the columns for the "group_participants" table.
	GroupParticipantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "participant_jid", Type: field.TypeString},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "is_super_admin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "instance_id", Type: field.TypeString},
	}
	// GroupParticipantsTable holds the schema information for the "group_participants" table.
	GroupParticipantsTable = &schema.Table{
		Name:       "group_participants",
		Columns:    GroupParticipantsColumns,
		PrimaryKey: []*schema.Column{GroupParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_participants_chat_groups_participants",
				Columns:    []*schema.Column{GroupParticipantsColumns[6]},
				RefColumns: []*schema.Column{ChatGroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "group_participants_instances_group_participants",
				Columns:    []*schema.Column{GroupParticipantsColumns[7]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "groupparticipant_group_id_participant_jid",
				Unique:  true,
				Columns: []*schema.Column{GroupParticipantsColumns[6], GroupParticipantsColumns[1]},
			},
			{
				Name:    "groupparticipant_instance_id",
				Unique:  false,
				Columns: []*schema.Column{GroupParticipantsColumns[7]},
			},
		},
	}
	// InstancesColumns holds the columns for the "instances" table.
	InstancesColumns = []*schema.Column{
		{Name: "instance_id", Type: field.TypeString, Unique: true},
		{Name: "owner_jid", Type: field.TypeString, Nullable: true},
		{Name: "creator_user_id", Type: field.TypeString, Nullable: true},
		{Name: "api_base_url", Type: field.TypeString, Nullable: true},
		{Name: "api_key", Type: field.TypeString, Nullable: true},
		{Name: "is_owner", Type: field.TypeBool, Default: false},
		{Name: "connection_state", Type: field.TypeEnum, Enums: []string{"open", "close", "connecting", "qr"}, Default: "close"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InstancesTable holds the schema information for the "instances" table.
	InstancesTable = &schema.Table{
		Name:       "instances",
		Columns:    InstancesColumns,
		PrimaryKey: []*schema.Column{InstancesColumns[0]},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "message_id", Type: field.TypeString},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "sender_jid", Type: field.TypeString},
		{Name: "from_me", Type: field.TypeBool, Default: false},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"text", "image", "video", "audio", "document", "sticker", "location", "contact_card", "contact_card_multi", "order", "revoked", "unsupported", "reaction", "call_log", "edited_message"}, Default: "text"},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quoted_message_id", Type: field.TypeString, Nullable: true},
		{Name: "is_forwarded", Type: field.TypeBool, Default: false},
		{Name: "forwarding_score", Type: field.TypeInt, Default: 0},
		{Name: "is_starred", Type: field.TypeBool, Default: false},
		{Name: "is_edited", Type: field.TypeBool, Default: false},
		{Name: "last_edited_at", Type: field.TypeTime, Nullable: true},
		{Name: "source_platform", Type: field.TypeString, Nullable: true},
		{Name: "raw_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_instances_messages",
				Columns:    []*schema.Column{MessagesColumns[18]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_message_id_instance_id",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[18]},
			},
			{
				Name:    "message_chat_id_instance_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2], MessagesColumns[18], MessagesColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					DescColumns: map[string]bool{
						MessagesColumns[7].Name: true,
					},
				},
			},
			{
				Name:    "message_sender_jid_instance_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[18]},
			},
		},
	}
	// MessageEventLinksColumns holds the columns for the "message_event_links" table.
	MessageEventLinksColumns = []*schema.Column{
		{Name: "link_id", Type: field.TypeString, Unique: true},
		{Name: "rule_id", Type: field.TypeString, Nullable: true},
		{Name: "link_type", Type: field.TypeEnum, Enums: []string{"trigger", "context", "reply", "forward_from_task", "message_from_task"}, Default: "trigger"},
		{Name: "instance_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "calendar_event_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
	}
	// MessageEventLinksTable holds the schema information for the "message_event_links" table.
	MessageEventLinksTable = &schema.Table{
		Name:       "message_event_links",
		Columns:    MessageEventLinksColumns,
		PrimaryKey: []*schema.Column{MessageEventLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_event_links_calendar_events_message_links",
				Columns:    []*schema.Column{MessageEventLinksColumns[5]},
				RefColumns: []*schema.Column{CalendarEventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "message_event_links_messages_event_links",
				Columns:    []*schema.Column{MessageEventLinksColumns[6]},
				RefColumns: []*schema.Column{MessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "messageeventlink_message_id_rule_id_link_type",
				Unique:  true,
				Columns: []*schema.Column{MessageEventLinksColumns[6], MessageEventLinksColumns[1], MessageEventLinksColumns[2]},
			},
			{
				Name:    "messageeventlink_calendar_event_id",
				Unique:  false,
				Columns: []*schema.Column{MessageEventLinksColumns[5]},
			},
		},
	}
	// MessageReactionsColumns holds the columns for the "message_reactions" table.
	MessageReactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "message_id", Type: field.TypeString},
		{Name: "reactor_jid", Type: field.TypeString},
		{Name: "reaction_emoji", Type: field.TypeString},
		{Name: "from_me", Type: field.TypeBool, Default: false},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
	}
	// MessageReactionsTable holds the schema information for the "message_reactions" table.
	MessageReactionsTable = &schema.Table{
		Name:       "message_reactions",
		Columns:    MessageReactionsColumns,
		PrimaryKey: []*schema.Column{MessageReactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_reactions_instances_reactions",
				Columns:    []*schema.Column{MessageReactionsColumns[8]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "messagereaction_message_id_instance_id_reactor_jid",
				Unique:  true,
				Columns: []*schema.Column{MessageReactionsColumns[1], MessageReactionsColumns[8], MessageReactionsColumns[2]},
			},
			{
				Name:    "messagereaction_instance_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessageReactionsColumns[8], MessageReactionsColumns[6]},
			},
		},
	}
	// MessageStatusUpdatesColumns holds the columns for the "message_status_updates" table.
	MessageStatusUpdatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "message_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"error", "pending", "sent", "delivered", "read", "played"}},
		{Name: "participant_jid", Type: field.TypeString, Nullable: true},
		{Name: "status_ts", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
	}
	// MessageStatusUpdatesTable holds the schema information for the "message_status_updates" table.
	MessageStatusUpdatesTable = &schema.Table{
		Name:       "message_status_updates",
		Columns:    MessageStatusUpdatesColumns,
		PrimaryKey: []*schema.Column{MessageStatusUpdatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_status_updates_instances_status_updates",
				Columns:    []*schema.Column{MessageStatusUpdatesColumns[6]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "messagestatusupdate_message_id_instance_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessageStatusUpdatesColumns[1], MessageStatusUpdatesColumns[6], MessageStatusUpdatesColumns[5]},
			},
		},
	}
	// MessageTaskLinksColumns holds the columns for the "message_task_links" table.
	MessageTaskLinksColumns = []*schema.Column{
		{Name: "link_id", Type: field.TypeString, Unique: true},
		{Name: "rule_id", Type: field.TypeString, Nullable: true},
		{Name: "link_type", Type: field.TypeEnum, Enums: []string{"trigger", "context", "reply", "forward_from_task", "message_from_task"}, Default: "trigger"},
		{Name: "instance_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
	}
	// MessageTaskLinksTable holds the schema information for the "message_task_links" table.
	MessageTaskLinksTable = &schema.Table{
		Name:       "message_task_links",
		Columns:    MessageTaskLinksColumns,
		PrimaryKey: []*schema.Column{MessageTaskLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_task_links_messages_task_links",
				Columns:    []*schema.Column{MessageTaskLinksColumns[5]},
				RefColumns: []*schema.Column{MessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "message_task_links_tasks_message_links",
				Columns:    []*schema.Column{MessageTaskLinksColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "messagetasklink_message_id_rule_id_link_type",
				Unique:  true,
				Columns: []*schema.Column{MessageTaskLinksColumns[5], MessageTaskLinksColumns[1], MessageTaskLinksColumns[2]},
			},
			{
				Name:    "messagetasklink_task_id",
				Unique:  false,
				Columns: []*schema.Column{MessageTaskLinksColumns[6]},
			},
		},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "note_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "space_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "note_space_id",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[4]},
			},
			{
				Name:    "note_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[7]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "cancelled"}, Default: "pending"},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "assignee", Type: field.TypeString, Nullable: true},
		{Name: "space_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_space_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionExecutionLogsTable,
		ActionQueueItemsTable,
		ActionRulesTable,
		BillsTable,
		CalendarEventsTable,
		CallLogsTable,
		ChatsTable,
		ContactsTable,
		EntityChangesTable,
		EventsTable,
		FailedEventsTable,
		ChatGroupsTable,
		GroupParticipantsTable,
		InstancesTable,
		MessagesTable,
		MessageEventLinksTable,
		MessageReactionsTable,
		MessageStatusUpdatesTable,
		MessageTaskLinksTable,
		NotesTable,
		TasksTable,
	}
)

func init() {
	CallLogsTable.ForeignKeys[0].RefTable = InstancesTable
	ChatsTable.ForeignKeys[0].RefTable = InstancesTable
	ContactsTable.ForeignKeys[0].RefTable = InstancesTable
	ChatGroupsTable.ForeignKeys[0].RefTable = InstancesTable
	ChatGroupsTable.Annotation = &entsql.Annotation{
		Table: "chat_groups",
	}
	GroupParticipantsTable.ForeignKeys[0].RefTable = ChatGroupsTable
	GroupParticipantsTable.ForeignKeys[1].RefTable = InstancesTable
	MessagesTable.ForeignKeys[0].RefTable = InstancesTable
	MessageEventLinksTable.ForeignKeys[0].RefTable = CalendarEventsTable
	MessageEventLinksTable.ForeignKeys[1].RefTable = MessagesTable
	MessageReactionsTable.ForeignKeys[0].RefTable = InstancesTable
	MessageStatusUpdatesTable.ForeignKeys[0].RefTable = InstancesTable
	MessageTaskLinksTable.ForeignKeys[0].RefTable = MessagesTable
	MessageTaskLinksTable.ForeignKeys[1].RefTable = TasksTable
}
