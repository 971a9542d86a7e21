// Code generated by ent, DO NOT EDIT.

package calendarevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reflexhq/reflex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldTitle, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldEndTime, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldLocation, v))
}

// ConferenceURL applies equality check predicate on the "conference_url" field. It's identical to ConferenceURLEQ.
func ConferenceURL(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldConferenceURL, v))
}

// Recurrence applies equality check predicate on the "recurrence" field. It's identical to RecurrenceEQ.
func Recurrence(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldRecurrence, v))
}

// SpaceID applies equality check predicate on the "space_id" field. It's identical to SpaceIDEQ.
func SpaceID(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldSpaceID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldTitle, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldEndTime))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldLocation, v))
}

// ConferenceURLEQ applies the EQ predicate on the "conference_url" field.
func ConferenceURLEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldConferenceURL, v))
}

// ConferenceURLNEQ applies the NEQ predicate on the "conference_url" field.
func ConferenceURLNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldConferenceURL, v))
}

// ConferenceURLIn applies the In predicate on the "conference_url" field.
func ConferenceURLIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldConferenceURL, vs...))
}

// ConferenceURLNotIn applies the NotIn predicate on the "conference_url" field.
func ConferenceURLNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldConferenceURL, vs...))
}

// ConferenceURLGT applies the GT predicate on the "conference_url" field.
func ConferenceURLGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldConferenceURL, v))
}

// ConferenceURLGTE applies the GTE predicate on the "conference_url" field.
func ConferenceURLGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldConferenceURL, v))
}

// ConferenceURLLT applies the LT predicate on the "conference_url" field.
func ConferenceURLLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldConferenceURL, v))
}

// ConferenceURLLTE applies the LTE predicate on the "conference_url" field.
func ConferenceURLLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldConferenceURL, v))
}

// ConferenceURLContains applies the Contains predicate on the "conference_url" field.
func ConferenceURLContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldConferenceURL, v))
}

// ConferenceURLHasPrefix applies the HasPrefix predicate on the "conference_url" field.
func ConferenceURLHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldConferenceURL, v))
}

// ConferenceURLHasSuffix applies the HasSuffix predicate on the "conference_url" field.
func ConferenceURLHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldConferenceURL, v))
}

// ConferenceURLIsNil applies the IsNil predicate on the "conference_url" field.
func ConferenceURLIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldConferenceURL))
}

// ConferenceURLNotNil applies the NotNil predicate on the "conference_url" field.
func ConferenceURLNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldConferenceURL))
}

// ConferenceURLEqualFold applies the EqualFold predicate on the "conference_url" field.
func ConferenceURLEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldConferenceURL, v))
}

// ConferenceURLContainsFold applies the ContainsFold predicate on the "conference_url" field.
func ConferenceURLContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldConferenceURL, v))
}

// AttendeesIsNil applies the IsNil predicate on the "attendees" field.
func AttendeesIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldAttendees))
}

// AttendeesNotNil applies the NotNil predicate on the "attendees" field.
func AttendeesNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldAttendees))
}

// RecurrenceEQ applies the EQ predicate on the "recurrence" field.
func RecurrenceEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldRecurrence, v))
}

// RecurrenceNEQ applies the NEQ predicate on the "recurrence" field.
func RecurrenceNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldRecurrence, v))
}

// RecurrenceIn applies the In predicate on the "recurrence" field.
func RecurrenceIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldRecurrence, vs...))
}

// RecurrenceNotIn applies the NotIn predicate on the "recurrence" field.
func RecurrenceNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldRecurrence, vs...))
}

// RecurrenceGT applies the GT predicate on the "recurrence" field.
func RecurrenceGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldRecurrence, v))
}

// RecurrenceGTE applies the GTE predicate on the "recurrence" field.
func RecurrenceGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldRecurrence, v))
}

// RecurrenceLT applies the LT predicate on the "recurrence" field.
func RecurrenceLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldRecurrence, v))
}

// RecurrenceLTE applies the LTE predicate on the "recurrence" field.
func RecurrenceLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldRecurrence, v))
}

// RecurrenceContains applies the Contains predicate on the "recurrence" field.
func RecurrenceContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldRecurrence, v))
}

// RecurrenceHasPrefix applies the HasPrefix predicate on the "recurrence" field.
func RecurrenceHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldRecurrence, v))
}

// RecurrenceHasSuffix applies the HasSuffix predicate on the "recurrence" field.
func RecurrenceHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldRecurrence, v))
}

// RecurrenceIsNil applies the IsNil predicate on the "recurrence" field.
func RecurrenceIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldRecurrence))
}

// RecurrenceNotNil applies the NotNil predicate on the "recurrence" field.
func RecurrenceNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldRecurrence))
}

// RecurrenceEqualFold applies the EqualFold predicate on the "recurrence" field.
func RecurrenceEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldRecurrence, v))
}

// RecurrenceContainsFold applies the ContainsFold predicate on the "recurrence" field.
func RecurrenceContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldRecurrence, v))
}

// SpaceIDEQ applies the EQ predicate on the "space_id" field.
func SpaceIDEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldSpaceID, v))
}

// SpaceIDNEQ applies the NEQ predicate on the "space_id" field.
func SpaceIDNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldSpaceID, v))
}

// SpaceIDIn applies the In predicate on the "space_id" field.
func SpaceIDIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldSpaceID, vs...))
}

// SpaceIDNotIn applies the NotIn predicate on the "space_id" field.
func SpaceIDNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldSpaceID, vs...))
}

// SpaceIDGT applies the GT predicate on the "space_id" field.
func SpaceIDGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldSpaceID, v))
}

// SpaceIDGTE applies the GTE predicate on the "space_id" field.
func SpaceIDGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldSpaceID, v))
}

// SpaceIDLT applies the LT predicate on the "space_id" field.
func SpaceIDLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldSpaceID, v))
}

// SpaceIDLTE applies the LTE predicate on the "space_id" field.
func SpaceIDLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldSpaceID, v))
}

// SpaceIDContains applies the Contains predicate on the "space_id" field.
func SpaceIDContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldSpaceID, v))
}

// SpaceIDHasPrefix applies the HasPrefix predicate on the "space_id" field.
func SpaceIDHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldSpaceID, v))
}

// SpaceIDHasSuffix applies the HasSuffix predicate on the "space_id" field.
func SpaceIDHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldSpaceID, v))
}

// SpaceIDIsNil applies the IsNil predicate on the "space_id" field.
func SpaceIDIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldSpaceID))
}

// SpaceIDNotNil applies the NotNil predicate on the "space_id" field.
func SpaceIDNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldSpaceID))
}

// SpaceIDEqualFold applies the EqualFold predicate on the "space_id" field.
func SpaceIDEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldSpaceID, v))
}

// SpaceIDContainsFold applies the ContainsFold predicate on the "space_id" field.
func SpaceIDContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldSpaceID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldCreatedBy, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMessageLinks applies the HasEdge predicate on the "message_links" edge.
func HasMessageLinks() predicate.CalendarEvent {
	return predicate.CalendarEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessageLinksTable, MessageLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessageLinksWith applies the HasEdge predicate on the "message_links" edge with a given conditions (other predicates).
func HasMessageLinksWith(preds ...predicate.MessageEventLink) predicate.CalendarEvent {
	return predicate.CalendarEvent(func(s *sql.Selector) {
		step := newMessageLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.NotPredicates(p))
}
