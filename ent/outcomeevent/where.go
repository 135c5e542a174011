// Code generated by ent, DO NOT EDIT.

package outcomeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSequence, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSkillID, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldPlanID, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldAssignmentID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldItemID, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSuccess, v))
}

// TimeSpentMinutes applies equality check predicate on the "time_spent_minutes" field. It's identical to TimeSpentMinutesEQ.
func TimeSpentMinutes(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// EstimatedMinutes applies equality check predicate on the "estimated_minutes" field. It's identical to EstimatedMinutesEQ.
func EstimatedMinutes(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// Signal applies equality check predicate on the "signal" field. It's identical to SignalEQ.
func Signal(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSignal, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldSequence, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldPlanID, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldAssignmentID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldItemID, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldSuccess, v))
}

// TimeSpentMinutesEQ applies the EQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesEQ(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesNEQ applies the NEQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNEQ(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesIn applies the In predicate on the "time_spent_minutes" field.
func TimeSpentMinutesIn(vs ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesNotIn applies the NotIn predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNotIn(vs ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesGT applies the GT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGT(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesGTE applies the GTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGTE(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLT applies the LT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLT(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLTE applies the LTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLTE(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldTimeSpentMinutes, v))
}

// EstimatedMinutesEQ applies the EQ predicate on the "estimated_minutes" field.
func EstimatedMinutesEQ(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesNEQ applies the NEQ predicate on the "estimated_minutes" field.
func EstimatedMinutesNEQ(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesIn applies the In predicate on the "estimated_minutes" field.
func EstimatedMinutesIn(vs ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesNotIn applies the NotIn predicate on the "estimated_minutes" field.
func EstimatedMinutesNotIn(vs ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesGT applies the GT predicate on the "estimated_minutes" field.
func EstimatedMinutesGT(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesGTE applies the GTE predicate on the "estimated_minutes" field.
func EstimatedMinutesGTE(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLT applies the LT predicate on the "estimated_minutes" field.
func EstimatedMinutesLT(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLTE applies the LTE predicate on the "estimated_minutes" field.
func EstimatedMinutesLTE(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldEstimatedMinutes, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldHintsUsed, v))
}

// SignalEQ applies the EQ predicate on the "signal" field.
func SignalEQ(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSignal, v))
}

// SignalNEQ applies the NEQ predicate on the "signal" field.
func SignalNEQ(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldSignal, v))
}

// SignalIn applies the In predicate on the "signal" field.
func SignalIn(vs ...float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldSignal, vs...))
}

// SignalNotIn applies the NotIn predicate on the "signal" field.
func SignalNotIn(vs ...float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldSignal, vs...))
}

// SignalGT applies the GT predicate on the "signal" field.
func SignalGT(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldSignal, v))
}

// SignalGTE applies the GTE predicate on the "signal" field.
func SignalGTE(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldSignal, v))
}

// SignalLT applies the LT predicate on the "signal" field.
func SignalLT(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldSignal, v))
}

// SignalLTE applies the LTE predicate on the "signal" field.
func SignalLTE(v float64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldSignal, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.NotPredicates(p))
}
