// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUserID, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldPlanID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSkillID, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTrigger, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// DurationWeeks applies equality check predicate on the "duration_weeks" field. It's identical to DurationWeeksEQ.
func DurationWeeks(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldDurationWeeks, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSequence, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldUserID, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldPlanID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldReason, v))
}

// InsertedItemsIsNil applies the IsNil predicate on the "inserted_items" field.
func InsertedItemsIsNil() predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIsNull(FieldInsertedItems))
}

// InsertedItemsNotNil applies the NotNil predicate on the "inserted_items" field.
func InsertedItemsNotNil() predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotNull(FieldInsertedItems))
}

// SkippedItemsIsNil applies the IsNil predicate on the "skipped_items" field.
func SkippedItemsIsNil() predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIsNull(FieldSkippedItems))
}

// SkippedItemsNotNil applies the NotNil predicate on the "skipped_items" field.
func SkippedItemsNotNil() predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotNull(FieldSkippedItems))
}

// DurationWeeksEQ applies the EQ predicate on the "duration_weeks" field.
func DurationWeeksEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldDurationWeeks, v))
}

// DurationWeeksNEQ applies the NEQ predicate on the "duration_weeks" field.
func DurationWeeksNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldDurationWeeks, v))
}

// DurationWeeksIn applies the In predicate on the "duration_weeks" field.
func DurationWeeksIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldDurationWeeks, vs...))
}

// DurationWeeksNotIn applies the NotIn predicate on the "duration_weeks" field.
func DurationWeeksNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldDurationWeeks, vs...))
}

// DurationWeeksGT applies the GT predicate on the "duration_weeks" field.
func DurationWeeksGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldDurationWeeks, v))
}

// DurationWeeksGTE applies the GTE predicate on the "duration_weeks" field.
func DurationWeeksGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldDurationWeeks, v))
}

// DurationWeeksLT applies the LT predicate on the "duration_weeks" field.
func DurationWeeksLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldDurationWeeks, v))
}

// DurationWeeksLTE applies the LTE predicate on the "duration_weeks" field.
func DurationWeeksLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldDurationWeeks, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.NotPredicates(p))
}
