// Code generated by ent, DO NOT EDIT.

package pathplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldPlanID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldUserID, v))
}

// DurationWeeks applies equality check predicate on the "duration_weeks" field. It's identical to DurationWeeksEQ.
func DurationWeeks(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldDurationWeeks, v))
}

// HoursPerWeek applies equality check predicate on the "hours_per_week" field. It's identical to HoursPerWeekEQ.
func HoursPerWeek(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldHoursPerWeek, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldStatus, v))
}

// Partial applies equality check predicate on the "partial" field. It's identical to PartialEQ.
func Partial(v bool) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldPartial, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldContainsFold(FieldPlanID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldContainsFold(FieldUserID, v))
}

// DurationWeeksEQ applies the EQ predicate on the "duration_weeks" field.
func DurationWeeksEQ(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldDurationWeeks, v))
}

// DurationWeeksNEQ applies the NEQ predicate on the "duration_weeks" field.
func DurationWeeksNEQ(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNEQ(FieldDurationWeeks, v))
}

// DurationWeeksIn applies the In predicate on the "duration_weeks" field.
func DurationWeeksIn(vs ...int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIn(FieldDurationWeeks, vs...))
}

// DurationWeeksNotIn applies the NotIn predicate on the "duration_weeks" field.
func DurationWeeksNotIn(vs ...int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotIn(FieldDurationWeeks, vs...))
}

// DurationWeeksGT applies the GT predicate on the "duration_weeks" field.
func DurationWeeksGT(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGT(FieldDurationWeeks, v))
}

// DurationWeeksGTE applies the GTE predicate on the "duration_weeks" field.
func DurationWeeksGTE(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGTE(FieldDurationWeeks, v))
}

// DurationWeeksLT applies the LT predicate on the "duration_weeks" field.
func DurationWeeksLT(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLT(FieldDurationWeeks, v))
}

// DurationWeeksLTE applies the LTE predicate on the "duration_weeks" field.
func DurationWeeksLTE(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLTE(FieldDurationWeeks, v))
}

// HoursPerWeekEQ applies the EQ predicate on the "hours_per_week" field.
func HoursPerWeekEQ(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldHoursPerWeek, v))
}

// HoursPerWeekNEQ applies the NEQ predicate on the "hours_per_week" field.
func HoursPerWeekNEQ(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNEQ(FieldHoursPerWeek, v))
}

// HoursPerWeekIn applies the In predicate on the "hours_per_week" field.
func HoursPerWeekIn(vs ...int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIn(FieldHoursPerWeek, vs...))
}

// HoursPerWeekNotIn applies the NotIn predicate on the "hours_per_week" field.
func HoursPerWeekNotIn(vs ...int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotIn(FieldHoursPerWeek, vs...))
}

// HoursPerWeekGT applies the GT predicate on the "hours_per_week" field.
func HoursPerWeekGT(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGT(FieldHoursPerWeek, v))
}

// HoursPerWeekGTE applies the GTE predicate on the "hours_per_week" field.
func HoursPerWeekGTE(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGTE(FieldHoursPerWeek, v))
}

// HoursPerWeekLT applies the LT predicate on the "hours_per_week" field.
func HoursPerWeekLT(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLT(FieldHoursPerWeek, v))
}

// HoursPerWeekLTE applies the LTE predicate on the "hours_per_week" field.
func HoursPerWeekLTE(v int) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLTE(FieldHoursPerWeek, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldContainsFold(FieldStatus, v))
}

// PartialEQ applies the EQ predicate on the "partial" field.
func PartialEQ(v bool) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldPartial, v))
}

// PartialNEQ applies the NEQ predicate on the "partial" field.
func PartialNEQ(v bool) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNEQ(FieldPartial, v))
}

// PartialReasonsIsNil applies the IsNil predicate on the "partial_reasons" field.
func PartialReasonsIsNil() predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIsNull(FieldPartialReasons))
}

// PartialReasonsNotNil applies the NotNil predicate on the "partial_reasons" field.
func PartialReasonsNotNil() predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotNull(FieldPartialReasons))
}

// AdaptationLogIsNil applies the IsNil predicate on the "adaptation_log" field.
func AdaptationLogIsNil() predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIsNull(FieldAdaptationLog))
}

// AdaptationLogNotNil applies the NotNil predicate on the "adaptation_log" field.
func AdaptationLogNotNil() predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotNull(FieldAdaptationLog))
}

// DifficultyBoostIsNil applies the IsNil predicate on the "difficulty_boost" field.
func DifficultyBoostIsNil() predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIsNull(FieldDifficultyBoost))
}

// DifficultyBoostNotNil applies the NotNil predicate on the "difficulty_boost" field.
func DifficultyBoostNotNil() predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotNull(FieldDifficultyBoost))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PathPlan {
	return predicate.PathPlan(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathPlan) predicate.PathPlan {
	return predicate.PathPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathPlan) predicate.PathPlan {
	return predicate.PathPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathPlan) predicate.PathPlan {
	return predicate.PathPlan(sql.NotPredicates(p))
}
