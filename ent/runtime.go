// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/reflexhq/reflex/ent/actionexecutionlog"
	"github.com/reflexhq/reflex/ent/actionqueueitem"
	"github.com/reflexhq/reflex/ent/actionrule"
	"github.com/reflexhq/reflex/ent/bill"
	"github.com/reflexhq/reflex/ent/calendarevent"
	"github.com/reflexhq/reflex/ent/calllog"
	"github.com/reflexhq/reflex/ent/chat"
	"github.com/reflexhq/reflex/ent/contact"
	"github.com/reflexhq/reflex/ent/entitychange"
	"github.com/reflexhq/reflex/ent/event"
	"github.com/reflexhq/reflex/ent/failedevent"
	"github.com/reflexhq/reflex/ent/group"
	"github.com/reflexhq/reflex/ent/groupparticipant"
	"github.com/reflexhq/reflex/ent/instance"
	"github.com/reflexhq/reflex/ent/message"
	"github.com/reflexhq/reflex/ent/messageeventlink"
	"github.com/reflexhq/reflex/ent/messagereaction"
	"github.com/reflexhq/reflex/ent/messagestatusupdate"
	"github.com/reflexhq/reflex/ent/messagetasklink"
	"github.com/reflexhq/reflex/ent/note"
	"github.com/reflexhq/reflex/ent/schema"
	"github.com/reflexhq/reflex/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actionexecutionlogFields := schema.ActionExecutionLog{}.Fields()
	_ = actionexecutionlogFields
	// actionexecutionlogDescExecutionTimeMs is the schema descriptor for execution_time_ms field.
	actionexecutionlogDescExecutionTimeMs := actionexecutionlogFields[4].Descriptor()
	// actionexecutionlog.DefaultExecutionTimeMs holds the default value on creation for the execution_time_ms field.
	actionexecutionlog.DefaultExecutionTimeMs = actionexecutionlogDescExecutionTimeMs.Default.(int)
	// actionexecutionlogDescCreatedAt is the schema descriptor for created_at field.
	actionexecutionlogDescCreatedAt := actionexecutionlogFields[9].Descriptor()
	// actionexecutionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	actionexecutionlog.DefaultCreatedAt = actionexecutionlogDescCreatedAt.Default.(func() time.Time)
	actionqueueitemFields := schema.ActionQueueItem{}.Fields()
	_ = actionqueueitemFields
	// actionqueueitemDescPriority is the schema descriptor for priority field.
	actionqueueitemDescPriority := actionqueueitemFields[6].Descriptor()
	// actionqueueitem.DefaultPriority holds the default value on creation for the priority field.
	actionqueueitem.DefaultPriority = actionqueueitemDescPriority.Default.(int)
	// actionqueueitemDescAttempts is the schema descriptor for attempts field.
	actionqueueitemDescAttempts := actionqueueitemFields[7].Descriptor()
	// actionqueueitem.DefaultAttempts holds the default value on creation for the attempts field.
	actionqueueitem.DefaultAttempts = actionqueueitemDescAttempts.Default.(int)
	// actionqueueitemDescMaxAttempts is the schema descriptor for max_attempts field.
	actionqueueitemDescMaxAttempts := actionqueueitemFields[8].Descriptor()
	// actionqueueitem.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	actionqueueitem.DefaultMaxAttempts = actionqueueitemDescMaxAttempts.Default.(int)
	// actionqueueitemDescRetryAfterTs is the schema descriptor for retry_after_ts field.
	actionqueueitemDescRetryAfterTs := actionqueueitemFields[9].Descriptor()
	// actionqueueitem.DefaultRetryAfterTs holds the default value on creation for the retry_after_ts field.
	actionqueueitem.DefaultRetryAfterTs = actionqueueitemDescRetryAfterTs.Default.(func() time.Time)
	// actionqueueitemDescCreatedAt is the schema descriptor for created_at field.
	actionqueueitemDescCreatedAt := actionqueueitemFields[13].Descriptor()
	// actionqueueitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	actionqueueitem.DefaultCreatedAt = actionqueueitemDescCreatedAt.Default.(func() time.Time)
	actionruleFields := schema.ActionRule{}.Fields()
	_ = actionruleFields
	// actionruleDescActive is the schema descriptor for active field.
	actionruleDescActive := actionruleFields[8].Descriptor()
	// actionrule.DefaultActive holds the default value on creation for the active field.
	actionrule.DefaultActive = actionruleDescActive.Default.(bool)
	// actionruleDescCooldownMinutes is the schema descriptor for cooldown_minutes field.
	actionruleDescCooldownMinutes := actionruleFields[9].Descriptor()
	// actionrule.DefaultCooldownMinutes holds the default value on creation for the cooldown_minutes field.
	actionrule.DefaultCooldownMinutes = actionruleDescCooldownMinutes.Default.(int)
	// actionruleDescMaxExecutionsPerDay is the schema descriptor for max_executions_per_day field.
	actionruleDescMaxExecutionsPerDay := actionruleFields[10].Descriptor()
	// actionrule.DefaultMaxExecutionsPerDay holds the default value on creation for the max_executions_per_day field.
	actionrule.DefaultMaxExecutionsPerDay = actionruleDescMaxExecutionsPerDay.Default.(int)
	// actionruleDescTotalExecutions is the schema descriptor for total_executions field.
	actionruleDescTotalExecutions := actionruleFields[11].Descriptor()
	// actionrule.DefaultTotalExecutions holds the default value on creation for the total_executions field.
	actionrule.DefaultTotalExecutions = actionruleDescTotalExecutions.Default.(int)
	// actionruleDescCreatedAt is the schema descriptor for created_at field.
	actionruleDescCreatedAt := actionruleFields[14].Descriptor()
	// actionrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	actionrule.DefaultCreatedAt = actionruleDescCreatedAt.Default.(func() time.Time)
	// actionruleDescUpdatedAt is the schema descriptor for updated_at field.
	actionruleDescUpdatedAt := actionruleFields[15].Descriptor()
	// actionrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	actionrule.DefaultUpdatedAt = actionruleDescUpdatedAt.Default.(func() time.Time)
	// actionrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	actionrule.UpdateDefaultUpdatedAt = actionruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	billFields := schema.Bill{}.Fields()
	_ = billFields
	// billDescCurrency is the schema descriptor for currency field.
	billDescCurrency := billFields[3].Descriptor()
	// bill.DefaultCurrency holds the default value on creation for the currency field.
	bill.DefaultCurrency = billDescCurrency.Default.(string)
	// billDescIsRecurring is the schema descriptor for is_recurring field.
	billDescIsRecurring := billFields[6].Descriptor()
	// bill.DefaultIsRecurring holds the default value on creation for the is_recurring field.
	bill.DefaultIsRecurring = billDescIsRecurring.Default.(bool)
	// billDescRecurrenceInterval is the schema descriptor for recurrence_interval field.
	billDescRecurrenceInterval := billFields[8].Descriptor()
	// bill.DefaultRecurrenceInterval holds the default value on creation for the recurrence_interval field.
	bill.DefaultRecurrenceInterval = billDescRecurrenceInterval.Default.(int)
	// billDescAutoPayEnabled is the schema descriptor for auto_pay_enabled field.
	billDescAutoPayEnabled := billFields[11].Descriptor()
	// bill.DefaultAutoPayEnabled holds the default value on creation for the auto_pay_enabled field.
	bill.DefaultAutoPayEnabled = billDescAutoPayEnabled.Default.(bool)
	// billDescCreatedAt is the schema descriptor for created_at field.
	billDescCreatedAt := billFields[18].Descriptor()
	// bill.DefaultCreatedAt holds the default value on creation for the created_at field.
	bill.DefaultCreatedAt = billDescCreatedAt.Default.(func() time.Time)
	// billDescUpdatedAt is the schema descriptor for updated_at field.
	billDescUpdatedAt := billFields[19].Descriptor()
	// bill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bill.DefaultUpdatedAt = billDescUpdatedAt.Default.(func() time.Time)
	// bill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bill.UpdateDefaultUpdatedAt = billDescUpdatedAt.UpdateDefault.(func() time.Time)
	calendareventFields := schema.CalendarEvent{}.Fields()
	_ = calendareventFields
	// calendareventDescCreatedAt is the schema descriptor for created_at field.
	calendareventDescCreatedAt := calendareventFields[11].Descriptor()
	// calendarevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarevent.DefaultCreatedAt = calendareventDescCreatedAt.Default.(func() time.Time)
	// calendareventDescUpdatedAt is the schema descriptor for updated_at field.
	calendareventDescUpdatedAt := calendareventFields[12].Descriptor()
	// calendarevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	calendarevent.DefaultUpdatedAt = calendareventDescUpdatedAt.Default.(func() time.Time)
	// calendarevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	calendarevent.UpdateDefaultUpdatedAt = calendareventDescUpdatedAt.UpdateDefault.(func() time.Time)
	calllogFields := schema.CallLog{}.Fields()
	_ = calllogFields
	// calllogDescFromMe is the schema descriptor for from_me field.
	calllogDescFromMe := calllogFields[5].Descriptor()
	// calllog.DefaultFromMe holds the default value on creation for the from_me field.
	calllog.DefaultFromMe = calllogDescFromMe.Default.(bool)
	// calllogDescStartTs is the schema descriptor for start_ts field.
	calllogDescStartTs := calllogFields[6].Descriptor()
	// calllog.DefaultStartTs holds the default value on creation for the start_ts field.
	calllog.DefaultStartTs = calllogDescStartTs.Default.(func() time.Time)
	// calllogDescIsVideo is the schema descriptor for is_video field.
	calllogDescIsVideo := calllogFields[7].Descriptor()
	// calllog.DefaultIsVideo holds the default value on creation for the is_video field.
	calllog.DefaultIsVideo = calllogDescIsVideo.Default.(bool)
	// calllogDescDurationSeconds is the schema descriptor for duration_seconds field.
	calllogDescDurationSeconds := calllogFields[8].Descriptor()
	// calllog.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	calllog.DefaultDurationSeconds = calllogDescDurationSeconds.Default.(int)
	// calllogDescCreatedAt is the schema descriptor for created_at field.
	calllogDescCreatedAt := calllogFields[10].Descriptor()
	// calllog.DefaultCreatedAt holds the default value on creation for the created_at field.
	calllog.DefaultCreatedAt = calllogDescCreatedAt.Default.(func() time.Time)
	chatFields := schema.Chat{}.Fields()
	_ = chatFields
	// chatDescUnreadCount is the schema descriptor for unread_count field.
	chatDescUnreadCount := chatFields[4].Descriptor()
	// chat.DefaultUnreadCount holds the default value on creation for the unread_count field.
	chat.DefaultUnreadCount = chatDescUnreadCount.Default.(int)
	// chatDescArchived is the schema descriptor for archived field.
	chatDescArchived := chatFields[5].Descriptor()
	// chat.DefaultArchived holds the default value on creation for the archived field.
	chat.DefaultArchived = chatDescArchived.Default.(bool)
	// chatDescPinned is the schema descriptor for pinned field.
	chatDescPinned := chatFields[6].Descriptor()
	// chat.DefaultPinned holds the default value on creation for the pinned field.
	chat.DefaultPinned = chatDescPinned.Default.(bool)
	// chatDescMuted is the schema descriptor for muted field.
	chatDescMuted := chatFields[7].Descriptor()
	// chat.DefaultMuted holds the default value on creation for the muted field.
	chat.DefaultMuted = chatDescMuted.Default.(bool)
	// chatDescCreatedAt is the schema descriptor for created_at field.
	chatDescCreatedAt := chatFields[10].Descriptor()
	// chat.DefaultCreatedAt holds the default value on creation for the created_at field.
	chat.DefaultCreatedAt = chatDescCreatedAt.Default.(func() time.Time)
	// chatDescUpdatedAt is the schema descriptor for updated_at field.
	chatDescUpdatedAt := chatFields[11].Descriptor()
	// chat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chat.DefaultUpdatedAt = chatDescUpdatedAt.Default.(func() time.Time)
	// chat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chat.UpdateDefaultUpdatedAt = chatDescUpdatedAt.UpdateDefault.(func() time.Time)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescIsBusiness is the schema descriptor for is_business field.
	contactDescIsBusiness := contactFields[6].Descriptor()
	// contact.DefaultIsBusiness holds the default value on creation for the is_business field.
	contact.DefaultIsBusiness = contactDescIsBusiness.Default.(bool)
	// contactDescIsMe is the schema descriptor for is_me field.
	contactDescIsMe := contactFields[7].Descriptor()
	// contact.DefaultIsMe holds the default value on creation for the is_me field.
	contact.DefaultIsMe = contactDescIsMe.Default.(bool)
	// contactDescIsBlocked is the schema descriptor for is_blocked field.
	contactDescIsBlocked := contactFields[8].Descriptor()
	// contact.DefaultIsBlocked holds the default value on creation for the is_blocked field.
	contact.DefaultIsBlocked = contactDescIsBlocked.Default.(bool)
	// contactDescFirstSeenAt is the schema descriptor for first_seen_at field.
	contactDescFirstSeenAt := contactFields[9].Descriptor()
	// contact.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	contact.DefaultFirstSeenAt = contactDescFirstSeenAt.Default.(func() time.Time)
	// contactDescLastUpdatedAt is the schema descriptor for last_updated_at field.
	contactDescLastUpdatedAt := contactFields[10].Descriptor()
	// contact.DefaultLastUpdatedAt holds the default value on creation for the last_updated_at field.
	contact.DefaultLastUpdatedAt = contactDescLastUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultLastUpdatedAt holds the default value on update for the last_updated_at field.
	contact.UpdateDefaultLastUpdatedAt = contactDescLastUpdatedAt.UpdateDefault.(func() time.Time)
	entitychangeFields := schema.EntityChange{}.Fields()
	_ = entitychangeFields
	// entitychangeDescChangedAt is the schema descriptor for changed_at field.
	entitychangeDescChangedAt := entitychangeFields[8].Descriptor()
	// entitychange.DefaultChangedAt holds the default value on creation for the changed_at field.
	entitychange.DefaultChangedAt = entitychangeDescChangedAt.Default.(func() time.Time)
	// entitychangeDescProcessed is the schema descriptor for processed field.
	entitychangeDescProcessed := entitychangeFields[9].Descriptor()
	// entitychange.DefaultProcessed holds the default value on creation for the processed field.
	entitychange.DefaultProcessed = entitychangeDescProcessed.Default.(bool)
	// entitychangeDescErrorCount is the schema descriptor for error_count field.
	entitychangeDescErrorCount := entitychangeFields[11].Descriptor()
	// entitychange.DefaultErrorCount holds the default value on creation for the error_count field.
	entitychange.DefaultErrorCount = entitychangeDescErrorCount.Default.(int)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	failedeventFields := schema.FailedEvent{}.Fields()
	_ = failedeventFields
	// failedeventDescRetryCount is the schema descriptor for retry_count field.
	failedeventDescRetryCount := failedeventFields[6].Descriptor()
	// failedevent.DefaultRetryCount holds the default value on creation for the retry_count field.
	failedevent.DefaultRetryCount = failedeventDescRetryCount.Default.(int)
	// failedeventDescMaxRetries is the schema descriptor for max_retries field.
	failedeventDescMaxRetries := failedeventFields[7].Descriptor()
	// failedevent.DefaultMaxRetries holds the default value on creation for the max_retries field.
	failedevent.DefaultMaxRetries = failedeventDescMaxRetries.Default.(int)
	// failedeventDescNextRetryAt is the schema descriptor for next_retry_at field.
	failedeventDescNextRetryAt := failedeventFields[8].Descriptor()
	// failedevent.DefaultNextRetryAt holds the default value on creation for the next_retry_at field.
	failedevent.DefaultNextRetryAt = failedeventDescNextRetryAt.Default.(func() time.Time)
	// failedeventDescResolved is the schema descriptor for resolved field.
	failedeventDescResolved := failedeventFields[9].Descriptor()
	// failedevent.DefaultResolved holds the default value on creation for the resolved field.
	failedevent.DefaultResolved = failedeventDescResolved.Default.(bool)
	// failedeventDescCreatedAt is the schema descriptor for created_at field.
	failedeventDescCreatedAt := failedeventFields[11].Descriptor()
	// failedevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	failedevent.DefaultCreatedAt = failedeventDescCreatedAt.Default.(func() time.Time)
	// failedeventDescUpdatedAt is the schema descriptor for updated_at field.
	failedeventDescUpdatedAt := failedeventFields[12].Descriptor()
	// failedevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	failedevent.DefaultUpdatedAt = failedeventDescUpdatedAt.Default.(func() time.Time)
	// failedevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	failedevent.UpdateDefaultUpdatedAt = failedeventDescUpdatedAt.UpdateDefault.(func() time.Time)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescSubjectAuthoritative is the schema descriptor for subject_authoritative field.
	groupDescSubjectAuthoritative := groupFields[4].Descriptor()
	// group.DefaultSubjectAuthoritative holds the default value on creation for the subject_authoritative field.
	group.DefaultSubjectAuthoritative = groupDescSubjectAuthoritative.Default.(bool)
	// groupDescIsLocked is the schema descriptor for is_locked field.
	groupDescIsLocked := groupFields[8].Descriptor()
	// group.DefaultIsLocked holds the default value on creation for the is_locked field.
	group.DefaultIsLocked = groupDescIsLocked.Default.(bool)
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupFields[9].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescUpdatedAt is the schema descriptor for updated_at field.
	groupDescUpdatedAt := groupFields[10].Descriptor()
	// group.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	group.DefaultUpdatedAt = groupDescUpdatedAt.Default.(func() time.Time)
	// group.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	group.UpdateDefaultUpdatedAt = groupDescUpdatedAt.UpdateDefault.(func() time.Time)
	groupparticipantFields := schema.GroupParticipant{}.Fields()
	_ = groupparticipantFields
	// groupparticipantDescIsAdmin is the schema descriptor for is_admin field.
	groupparticipantDescIsAdmin := groupparticipantFields[4].Descriptor()
	// groupparticipant.DefaultIsAdmin holds the default value on creation for the is_admin field.
	groupparticipant.DefaultIsAdmin = groupparticipantDescIsAdmin.Default.(bool)
	// groupparticipantDescIsSuperAdmin is the schema descriptor for is_super_admin field.
	groupparticipantDescIsSuperAdmin := groupparticipantFields[5].Descriptor()
	// groupparticipant.DefaultIsSuperAdmin holds the default value on creation for the is_super_admin field.
	groupparticipant.DefaultIsSuperAdmin = groupparticipantDescIsSuperAdmin.Default.(bool)
	// groupparticipantDescCreatedAt is the schema descriptor for created_at field.
	groupparticipantDescCreatedAt := groupparticipantFields[6].Descriptor()
	// groupparticipant.DefaultCreatedAt holds the default value on creation for the created_at field.
	groupparticipant.DefaultCreatedAt = groupparticipantDescCreatedAt.Default.(func() time.Time)
	// groupparticipantDescUpdatedAt is the schema descriptor for updated_at field.
	groupparticipantDescUpdatedAt := groupparticipantFields[7].Descriptor()
	// groupparticipant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	groupparticipant.DefaultUpdatedAt = groupparticipantDescUpdatedAt.Default.(func() time.Time)
	// groupparticipant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	groupparticipant.UpdateDefaultUpdatedAt = groupparticipantDescUpdatedAt.UpdateDefault.(func() time.Time)
	instanceFields := schema.Instance{}.Fields()
	_ = instanceFields
	// instanceDescIsOwner is the schema descriptor for is_owner field.
	instanceDescIsOwner := instanceFields[5].Descriptor()
	// instance.DefaultIsOwner holds the default value on creation for the is_owner field.
	instance.DefaultIsOwner = instanceDescIsOwner.Default.(bool)
	// instanceDescCreatedAt is the schema descriptor for created_at field.
	instanceDescCreatedAt := instanceFields[7].Descriptor()
	// instance.DefaultCreatedAt holds the default value on creation for the created_at field.
	instance.DefaultCreatedAt = instanceDescCreatedAt.Default.(func() time.Time)
	// instanceDescUpdatedAt is the schema descriptor for updated_at field.
	instanceDescUpdatedAt := instanceFields[8].Descriptor()
	// instance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	instance.DefaultUpdatedAt = instanceDescUpdatedAt.Default.(func() time.Time)
	// instance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	instance.UpdateDefaultUpdatedAt = instanceDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescFromMe is the schema descriptor for from_me field.
	messageDescFromMe := messageFields[5].Descriptor()
	// message.DefaultFromMe holds the default value on creation for the from_me field.
	message.DefaultFromMe = messageDescFromMe.Default.(bool)
	// messageDescIsForwarded is the schema descriptor for is_forwarded field.
	messageDescIsForwarded := messageFields[10].Descriptor()
	// message.DefaultIsForwarded holds the default value on creation for the is_forwarded field.
	message.DefaultIsForwarded = messageDescIsForwarded.Default.(bool)
	// messageDescForwardingScore is the schema descriptor for forwarding_score field.
	messageDescForwardingScore := messageFields[11].Descriptor()
	// message.DefaultForwardingScore holds the default value on creation for the forwarding_score field.
	message.DefaultForwardingScore = messageDescForwardingScore.Default.(int)
	// messageDescIsStarred is the schema descriptor for is_starred field.
	messageDescIsStarred := messageFields[12].Descriptor()
	// message.DefaultIsStarred holds the default value on creation for the is_starred field.
	message.DefaultIsStarred = messageDescIsStarred.Default.(bool)
	// messageDescIsEdited is the schema descriptor for is_edited field.
	messageDescIsEdited := messageFields[13].Descriptor()
	// message.DefaultIsEdited holds the default value on creation for the is_edited field.
	message.DefaultIsEdited = messageDescIsEdited.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[17].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescUpdatedAt is the schema descriptor for updated_at field.
	messageDescUpdatedAt := messageFields[18].Descriptor()
	// message.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	message.DefaultUpdatedAt = messageDescUpdatedAt.Default.(func() time.Time)
	// message.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	message.UpdateDefaultUpdatedAt = messageDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageeventlinkFields := schema.MessageEventLink{}.Fields()
	_ = messageeventlinkFields
	// messageeventlinkDescCreatedAt is the schema descriptor for created_at field.
	messageeventlinkDescCreatedAt := messageeventlinkFields[6].Descriptor()
	// messageeventlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	messageeventlink.DefaultCreatedAt = messageeventlinkDescCreatedAt.Default.(func() time.Time)
	messagereactionFields := schema.MessageReaction{}.Fields()
	_ = messagereactionFields
	// messagereactionDescFromMe is the schema descriptor for from_me field.
	messagereactionDescFromMe := messagereactionFields[5].Descriptor()
	// messagereaction.DefaultFromMe holds the default value on creation for the from_me field.
	messagereaction.DefaultFromMe = messagereactionDescFromMe.Default.(bool)
	// messagereactionDescTimestamp is the schema descriptor for timestamp field.
	messagereactionDescTimestamp := messagereactionFields[6].Descriptor()
	// messagereaction.DefaultTimestamp holds the default value on creation for the timestamp field.
	messagereaction.DefaultTimestamp = messagereactionDescTimestamp.Default.(func() time.Time)
	// messagereactionDescCreatedAt is the schema descriptor for created_at field.
	messagereactionDescCreatedAt := messagereactionFields[7].Descriptor()
	// messagereaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	messagereaction.DefaultCreatedAt = messagereactionDescCreatedAt.Default.(func() time.Time)
	// messagereactionDescUpdatedAt is the schema descriptor for updated_at field.
	messagereactionDescUpdatedAt := messagereactionFields[8].Descriptor()
	// messagereaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	messagereaction.DefaultUpdatedAt = messagereactionDescUpdatedAt.Default.(func() time.Time)
	// messagereaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	messagereaction.UpdateDefaultUpdatedAt = messagereactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	messagestatusupdateFields := schema.MessageStatusUpdate{}.Fields()
	_ = messagestatusupdateFields
	// messagestatusupdateDescStatusTs is the schema descriptor for status_ts field.
	messagestatusupdateDescStatusTs := messagestatusupdateFields[5].Descriptor()
	// messagestatusupdate.DefaultStatusTs holds the default value on creation for the status_ts field.
	messagestatusupdate.DefaultStatusTs = messagestatusupdateDescStatusTs.Default.(func() time.Time)
	// messagestatusupdateDescCreatedAt is the schema descriptor for created_at field.
	messagestatusupdateDescCreatedAt := messagestatusupdateFields[6].Descriptor()
	// messagestatusupdate.DefaultCreatedAt holds the default value on creation for the created_at field.
	messagestatusupdate.DefaultCreatedAt = messagestatusupdateDescCreatedAt.Default.(func() time.Time)
	messagetasklinkFields := schema.MessageTaskLink{}.Fields()
	_ = messagetasklinkFields
	// messagetasklinkDescCreatedAt is the schema descriptor for created_at field.
	messagetasklinkDescCreatedAt := messagetasklinkFields[6].Descriptor()
	// messagetasklink.DefaultCreatedAt holds the default value on creation for the created_at field.
	messagetasklink.DefaultCreatedAt = messagetasklinkDescCreatedAt.Default.(func() time.Time)
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescCreatedAt is the schema descriptor for created_at field.
	noteDescCreatedAt := noteFields[7].Descriptor()
	// note.DefaultCreatedAt holds the default value on creation for the created_at field.
	note.DefaultCreatedAt = noteDescCreatedAt.Default.(func() time.Time)
	// noteDescUpdatedAt is the schema descriptor for updated_at field.
	noteDescUpdatedAt := noteFields[8].Descriptor()
	// note.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	note.DefaultUpdatedAt = noteDescUpdatedAt.Default.(func() time.Time)
	// note.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	note.UpdateDefaultUpdatedAt = noteDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[12].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
