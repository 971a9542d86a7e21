// Package events provides real-time fan-out via Server-Sent Events and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Three NOTIFY channels carry different traffic:
//
//   - reflex_events: the persisted fan-out feed. Every payload is first
//     inserted into the events table, then pg_notify fires in the same
//     transaction, so SSE subscribers can close reconnect gaps with a
//     Last-Event-ID catchup query against the table.
//   - reflex_queue: transient wakeups for queue workers. No persistence;
//     a missed wakeup only costs one poll interval.
//   - reflex_rules: transient rule-cache busts. Each pod invalidates its
//     process-local rule cache on receipt.
package events

// NOTIFY channels.
const (
	ChannelEvents = "reflex_events"
	ChannelQueue  = "reflex_queue"
	ChannelRules  = "reflex_rules"
)

// Fan-out event types published on ChannelEvents.
const (
	EventTypeNewMessage     = "new_message"
	EventTypeNewReaction    = "new_reaction"
	EventTypeEntityCreated  = "entity_created"
	EventTypeRuleExecuted   = "rule_executed"
	EventTypeInstanceStatus = "instance_status"
)
