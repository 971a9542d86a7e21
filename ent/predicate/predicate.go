// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActionExecutionLog is the predicate function for actionexecutionlog builders.
type ActionExecutionLog func(*sql.Selector)

// ActionQueueItem is the predicate function for actionqueueitem builders.
type ActionQueueItem func(*sql.Selector)

// ActionRule is the predicate function for actionrule builders.
type ActionRule func(*sql.Selector)

// Bill is the predicate function for bill builders.
type Bill func(*sql.Selector)

// CalendarEvent is the predicate function for calendarevent builders.
type CalendarEvent func(*sql.Selector)

// CallLog is the predicate function for calllog builders.
type CallLog func(*sql.Selector)

// Chat is the predicate function for chat builders.
type Chat func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// EntityChange is the predicate function for entitychange builders.
type EntityChange func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// FailedEvent is the predicate function for failedevent builders.
type FailedEvent func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// GroupParticipant is the predicate function for groupparticipant builders.
type GroupParticipant func(*sql.Selector)

// Instance is the predicate function for instance builders.
type Instance func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MessageEventLink is the predicate function for messageeventlink builders.
type MessageEventLink func(*sql.Selector)

// MessageReaction is the predicate function for messagereaction builders.
type MessageReaction func(*sql.Selector)

// MessageStatusUpdate is the predicate function for messagestatusupdate builders.
type MessageStatusUpdate func(*sql.Selector)

// MessageTaskLink is the predicate function for messagetasklink builders.
type MessageTaskLink func(*sql.Selector)

// Note is the predicate function for note builders.
type Note func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
