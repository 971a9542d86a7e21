// Code generated by ent, DO NOT EDIT.

package bill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reflexhq/reflex/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldID, id))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldVendor, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCurrency, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDueDate, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCategory, v))
}

// IsRecurring applies equality check predicate on the "is_recurring" field. It's identical to IsRecurringEQ.
func IsRecurring(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldIsRecurring, v))
}

// RecurrenceType applies equality check predicate on the "recurrence_type" field. It's identical to RecurrenceTypeEQ.
func RecurrenceType(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRecurrenceType, v))
}

// RecurrenceInterval applies equality check predicate on the "recurrence_interval" field. It's identical to RecurrenceIntervalEQ.
func RecurrenceInterval(v int) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRecurrenceInterval, v))
}

// RecurrenceEndDate applies equality check predicate on the "recurrence_end_date" field. It's identical to RecurrenceEndDateEQ.
func RecurrenceEndDate(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRecurrenceEndDate, v))
}

// NextDueDate applies equality check predicate on the "next_due_date" field. It's identical to NextDueDateEQ.
func NextDueDate(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldNextDueDate, v))
}

// AutoPayEnabled applies equality check predicate on the "auto_pay_enabled" field. It's identical to AutoPayEnabledEQ.
func AutoPayEnabled(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAutoPayEnabled, v))
}

// SpaceID applies equality check predicate on the "space_id" field. It's identical to SpaceIDEQ.
func SpaceID(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldSpaceID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldUpdatedAt, v))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldVendor, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldCurrency, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldDueDate))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldCategory, v))
}

// IsRecurringEQ applies the EQ predicate on the "is_recurring" field.
func IsRecurringEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldIsRecurring, v))
}

// IsRecurringNEQ applies the NEQ predicate on the "is_recurring" field.
func IsRecurringNEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldIsRecurring, v))
}

// RecurrenceTypeEQ applies the EQ predicate on the "recurrence_type" field.
func RecurrenceTypeEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRecurrenceType, v))
}

// RecurrenceTypeNEQ applies the NEQ predicate on the "recurrence_type" field.
func RecurrenceTypeNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldRecurrenceType, v))
}

// RecurrenceTypeIn applies the In predicate on the "recurrence_type" field.
func RecurrenceTypeIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldRecurrenceType, vs...))
}

// RecurrenceTypeNotIn applies the NotIn predicate on the "recurrence_type" field.
func RecurrenceTypeNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldRecurrenceType, vs...))
}

// RecurrenceTypeGT applies the GT predicate on the "recurrence_type" field.
func RecurrenceTypeGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldRecurrenceType, v))
}

// RecurrenceTypeGTE applies the GTE predicate on the "recurrence_type" field.
func RecurrenceTypeGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldRecurrenceType, v))
}

// RecurrenceTypeLT applies the LT predicate on the "recurrence_type" field.
func RecurrenceTypeLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldRecurrenceType, v))
}

// RecurrenceTypeLTE applies the LTE predicate on the "recurrence_type" field.
func RecurrenceTypeLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldRecurrenceType, v))
}

// RecurrenceTypeContains applies the Contains predicate on the "recurrence_type" field.
func RecurrenceTypeContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldRecurrenceType, v))
}

// RecurrenceTypeHasPrefix applies the HasPrefix predicate on the "recurrence_type" field.
func RecurrenceTypeHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldRecurrenceType, v))
}

// RecurrenceTypeHasSuffix applies the HasSuffix predicate on the "recurrence_type" field.
func RecurrenceTypeHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldRecurrenceType, v))
}

// RecurrenceTypeIsNil applies the IsNil predicate on the "recurrence_type" field.
func RecurrenceTypeIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldRecurrenceType))
}

// RecurrenceTypeNotNil applies the NotNil predicate on the "recurrence_type" field.
func RecurrenceTypeNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldRecurrenceType))
}

// RecurrenceTypeEqualFold applies the EqualFold predicate on the "recurrence_type" field.
func RecurrenceTypeEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldRecurrenceType, v))
}

// RecurrenceTypeContainsFold applies the ContainsFold predicate on the "recurrence_type" field.
func RecurrenceTypeContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldRecurrenceType, v))
}

// RecurrenceIntervalEQ applies the EQ predicate on the "recurrence_interval" field.
func RecurrenceIntervalEQ(v int) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRecurrenceInterval, v))
}

// RecurrenceIntervalNEQ applies the NEQ predicate on the "recurrence_interval" field.
func RecurrenceIntervalNEQ(v int) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldRecurrenceInterval, v))
}

// RecurrenceIntervalIn applies the In predicate on the "recurrence_interval" field.
func RecurrenceIntervalIn(vs ...int) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldRecurrenceInterval, vs...))
}

// RecurrenceIntervalNotIn applies the NotIn predicate on the "recurrence_interval" field.
func RecurrenceIntervalNotIn(vs ...int) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldRecurrenceInterval, vs...))
}

// RecurrenceIntervalGT applies the GT predicate on the "recurrence_interval" field.
func RecurrenceIntervalGT(v int) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldRecurrenceInterval, v))
}

// RecurrenceIntervalGTE applies the GTE predicate on the "recurrence_interval" field.
func RecurrenceIntervalGTE(v int) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldRecurrenceInterval, v))
}

// RecurrenceIntervalLT applies the LT predicate on the "recurrence_interval" field.
func RecurrenceIntervalLT(v int) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldRecurrenceInterval, v))
}

// RecurrenceIntervalLTE applies the LTE predicate on the "recurrence_interval" field.
func RecurrenceIntervalLTE(v int) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldRecurrenceInterval, v))
}

// RecurrenceEndDateEQ applies the EQ predicate on the "recurrence_end_date" field.
func RecurrenceEndDateEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRecurrenceEndDate, v))
}

// RecurrenceEndDateNEQ applies the NEQ predicate on the "recurrence_end_date" field.
func RecurrenceEndDateNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldRecurrenceEndDate, v))
}

// RecurrenceEndDateIn applies the In predicate on the "recurrence_end_date" field.
func RecurrenceEndDateIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldRecurrenceEndDate, vs...))
}

// RecurrenceEndDateNotIn applies the NotIn predicate on the "recurrence_end_date" field.
func RecurrenceEndDateNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldRecurrenceEndDate, vs...))
}

// RecurrenceEndDateGT applies the GT predicate on the "recurrence_end_date" field.
func RecurrenceEndDateGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldRecurrenceEndDate, v))
}

// RecurrenceEndDateGTE applies the GTE predicate on the "recurrence_end_date" field.
func RecurrenceEndDateGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldRecurrenceEndDate, v))
}

// RecurrenceEndDateLT applies the LT predicate on the "recurrence_end_date" field.
func RecurrenceEndDateLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldRecurrenceEndDate, v))
}

// RecurrenceEndDateLTE applies the LTE predicate on the "recurrence_end_date" field.
func RecurrenceEndDateLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldRecurrenceEndDate, v))
}

// RecurrenceEndDateIsNil applies the IsNil predicate on the "recurrence_end_date" field.
func RecurrenceEndDateIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldRecurrenceEndDate))
}

// RecurrenceEndDateNotNil applies the NotNil predicate on the "recurrence_end_date" field.
func RecurrenceEndDateNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldRecurrenceEndDate))
}

// NextDueDateEQ applies the EQ predicate on the "next_due_date" field.
func NextDueDateEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldNextDueDate, v))
}

// NextDueDateNEQ applies the NEQ predicate on the "next_due_date" field.
func NextDueDateNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldNextDueDate, v))
}

// NextDueDateIn applies the In predicate on the "next_due_date" field.
func NextDueDateIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldNextDueDate, vs...))
}

// NextDueDateNotIn applies the NotIn predicate on the "next_due_date" field.
func NextDueDateNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldNextDueDate, vs...))
}

// NextDueDateGT applies the GT predicate on the "next_due_date" field.
func NextDueDateGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldNextDueDate, v))
}

// NextDueDateGTE applies the GTE predicate on the "next_due_date" field.
func NextDueDateGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldNextDueDate, v))
}

// NextDueDateLT applies the LT predicate on the "next_due_date" field.
func NextDueDateLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldNextDueDate, v))
}

// NextDueDateLTE applies the LTE predicate on the "next_due_date" field.
func NextDueDateLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldNextDueDate, v))
}

// NextDueDateIsNil applies the IsNil predicate on the "next_due_date" field.
func NextDueDateIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldNextDueDate))
}

// NextDueDateNotNil applies the NotNil predicate on the "next_due_date" field.
func NextDueDateNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldNextDueDate))
}

// AutoPayEnabledEQ applies the EQ predicate on the "auto_pay_enabled" field.
func AutoPayEnabledEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAutoPayEnabled, v))
}

// AutoPayEnabledNEQ applies the NEQ predicate on the "auto_pay_enabled" field.
func AutoPayEnabledNEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldAutoPayEnabled, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldPriority, vs...))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldTags))
}

// SpaceIDEQ applies the EQ predicate on the "space_id" field.
func SpaceIDEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldSpaceID, v))
}

// SpaceIDNEQ applies the NEQ predicate on the "space_id" field.
func SpaceIDNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldSpaceID, v))
}

// SpaceIDIn applies the In predicate on the "space_id" field.
func SpaceIDIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldSpaceID, vs...))
}

// SpaceIDNotIn applies the NotIn predicate on the "space_id" field.
func SpaceIDNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldSpaceID, vs...))
}

// SpaceIDGT applies the GT predicate on the "space_id" field.
func SpaceIDGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldSpaceID, v))
}

// SpaceIDGTE applies the GTE predicate on the "space_id" field.
func SpaceIDGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldSpaceID, v))
}

// SpaceIDLT applies the LT predicate on the "space_id" field.
func SpaceIDLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldSpaceID, v))
}

// SpaceIDLTE applies the LTE predicate on the "space_id" field.
func SpaceIDLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldSpaceID, v))
}

// SpaceIDContains applies the Contains predicate on the "space_id" field.
func SpaceIDContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldSpaceID, v))
}

// SpaceIDHasPrefix applies the HasPrefix predicate on the "space_id" field.
func SpaceIDHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldSpaceID, v))
}

// SpaceIDHasSuffix applies the HasSuffix predicate on the "space_id" field.
func SpaceIDHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldSpaceID, v))
}

// SpaceIDIsNil applies the IsNil predicate on the "space_id" field.
func SpaceIDIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldSpaceID))
}

// SpaceIDNotNil applies the NotNil predicate on the "space_id" field.
func SpaceIDNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldSpaceID))
}

// SpaceIDEqualFold applies the EqualFold predicate on the "space_id" field.
func SpaceIDEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldSpaceID, v))
}

// SpaceIDContainsFold applies the ContainsFold predicate on the "space_id" field.
func SpaceIDContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldSpaceID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldCreatedBy, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.NotPredicates(p))
}
