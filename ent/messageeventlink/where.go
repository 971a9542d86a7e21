// Code generated by ent, DO NOT EDIT.

package messageeventlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldContainsFold(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldMessageID, v))
}

// CalendarEventID applies equality check predicate on the "calendar_event_id" field. It's identical to CalendarEventIDEQ.
func CalendarEventID(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldCalendarEventID, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldRuleID, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldInstanceID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldCreatedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldContainsFold(FieldMessageID, v))
}

// CalendarEventIDEQ applies the EQ predicate on the "calendar_event_id" field.
func CalendarEventIDEQ(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldCalendarEventID, v))
}

// CalendarEventIDNEQ applies the NEQ predicate on the "calendar_event_id" field.
func CalendarEventIDNEQ(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNEQ(FieldCalendarEventID, v))
}

// CalendarEventIDIn applies the In predicate on the "calendar_event_id" field.
func CalendarEventIDIn(vs ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDNotIn applies the NotIn predicate on the "calendar_event_id" field.
func CalendarEventIDNotIn(vs ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNotIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDGT applies the GT predicate on the "calendar_event_id" field.
func CalendarEventIDGT(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGT(FieldCalendarEventID, v))
}

// CalendarEventIDGTE applies the GTE predicate on the "calendar_event_id" field.
func CalendarEventIDGTE(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGTE(FieldCalendarEventID, v))
}

// CalendarEventIDLT applies the LT predicate on the "calendar_event_id" field.
func CalendarEventIDLT(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLT(FieldCalendarEventID, v))
}

// CalendarEventIDLTE applies the LTE predicate on the "calendar_event_id" field.
func CalendarEventIDLTE(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLTE(FieldCalendarEventID, v))
}

// CalendarEventIDContains applies the Contains predicate on the "calendar_event_id" field.
func CalendarEventIDContains(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldContains(FieldCalendarEventID, v))
}

// CalendarEventIDHasPrefix applies the HasPrefix predicate on the "calendar_event_id" field.
func CalendarEventIDHasPrefix(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldHasPrefix(FieldCalendarEventID, v))
}

// CalendarEventIDHasSuffix applies the HasSuffix predicate on the "calendar_event_id" field.
func CalendarEventIDHasSuffix(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldHasSuffix(FieldCalendarEventID, v))
}

// CalendarEventIDEqualFold applies the EqualFold predicate on the "calendar_event_id" field.
func CalendarEventIDEqualFold(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEqualFold(FieldCalendarEventID, v))
}

// CalendarEventIDContainsFold applies the ContainsFold predicate on the "calendar_event_id" field.
func CalendarEventIDContainsFold(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldContainsFold(FieldCalendarEventID, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDIsNil applies the IsNil predicate on the "rule_id" field.
func RuleIDIsNil() predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldIsNull(FieldRuleID))
}

// RuleIDNotNil applies the NotNil predicate on the "rule_id" field.
func RuleIDNotNil() predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNotNull(FieldRuleID))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldContainsFold(FieldRuleID, v))
}

// LinkTypeEQ applies the EQ predicate on the "link_type" field.
func LinkTypeEQ(v LinkType) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldLinkType, v))
}

// LinkTypeNEQ applies the NEQ predicate on the "link_type" field.
func LinkTypeNEQ(v LinkType) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNEQ(FieldLinkType, v))
}

// LinkTypeIn applies the In predicate on the "link_type" field.
func LinkTypeIn(vs ...LinkType) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldIn(FieldLinkType, vs...))
}

// LinkTypeNotIn applies the NotIn predicate on the "link_type" field.
func LinkTypeNotIn(vs ...LinkType) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNotIn(FieldLinkType, vs...))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDIsNil applies the IsNil predicate on the "instance_id" field.
func InstanceIDIsNil() predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldIsNull(FieldInstanceID))
}

// InstanceIDNotNil applies the NotNil predicate on the "instance_id" field.
func InstanceIDNotNil() predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNotNull(FieldInstanceID))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldContainsFold(FieldInstanceID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMessage applies the HasEdge predicate on the "message" edge.
func HasMessage() predicate.MessageEventLink {
	return predicate.MessageEventLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MessageTable, MessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessageWith applies the HasEdge predicate on the "message" edge with a given conditions (other predicates).
func HasMessageWith(preds ...predicate.Message) predicate.MessageEventLink {
	return predicate.MessageEventLink(func(s *sql.Selector) {
		step := newMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCalendarEvent applies the HasEdge predicate on the "calendar_event" edge.
func HasCalendarEvent() predicate.MessageEventLink {
	return predicate.MessageEventLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CalendarEventTable, CalendarEventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCalendarEventWith applies the HasEdge predicate on the "calendar_event" edge with a given conditions (other predicates).
func HasCalendarEventWith(preds ...predicate.CalendarEvent) predicate.MessageEventLink {
	return predicate.MessageEventLink(func(s *sql.Selector) {
		step := newCalendarEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageEventLink) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageEventLink) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageEventLink) predicate.MessageEventLink {
	return predicate.MessageEventLink(sql.NotPredicates(p))
}
