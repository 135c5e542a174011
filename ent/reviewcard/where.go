// Code generated by ent, DO NOT EDIT.

package reviewcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldSkillID, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldIntervalDays, v))
}

// Ease applies equality check predicate on the "ease" field. It's identical to EaseEQ.
func Ease(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldEase, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldRepetitions, v))
}

// Lapses applies equality check predicate on the "lapses" field. It's identical to LapsesEQ.
func Lapses(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLapses, v))
}

// LastReviewAt applies equality check predicate on the "last_review_at" field. It's identical to LastReviewAtEQ.
func LastReviewAt(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLastReviewAt, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldNextReviewAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContainsFold(FieldSkillID, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldIntervalDays, v))
}

// EaseEQ applies the EQ predicate on the "ease" field.
func EaseEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldEase, v))
}

// EaseNEQ applies the NEQ predicate on the "ease" field.
func EaseNEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldEase, v))
}

// EaseIn applies the In predicate on the "ease" field.
func EaseIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldEase, vs...))
}

// EaseNotIn applies the NotIn predicate on the "ease" field.
func EaseNotIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldEase, vs...))
}

// EaseGT applies the GT predicate on the "ease" field.
func EaseGT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldEase, v))
}

// EaseGTE applies the GTE predicate on the "ease" field.
func EaseGTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldEase, v))
}

// EaseLT applies the LT predicate on the "ease" field.
func EaseLT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldEase, v))
}

// EaseLTE applies the LTE predicate on the "ease" field.
func EaseLTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldEase, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldRepetitions, v))
}

// LapsesEQ applies the EQ predicate on the "lapses" field.
func LapsesEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLapses, v))
}

// LapsesNEQ applies the NEQ predicate on the "lapses" field.
func LapsesNEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldLapses, v))
}

// LapsesIn applies the In predicate on the "lapses" field.
func LapsesIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldLapses, vs...))
}

// LapsesNotIn applies the NotIn predicate on the "lapses" field.
func LapsesNotIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldLapses, vs...))
}

// LapsesGT applies the GT predicate on the "lapses" field.
func LapsesGT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldLapses, v))
}

// LapsesGTE applies the GTE predicate on the "lapses" field.
func LapsesGTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldLapses, v))
}

// LapsesLT applies the LT predicate on the "lapses" field.
func LapsesLT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldLapses, v))
}

// LapsesLTE applies the LTE predicate on the "lapses" field.
func LapsesLTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldLapses, v))
}

// LastReviewAtEQ applies the EQ predicate on the "last_review_at" field.
func LastReviewAtEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLastReviewAt, v))
}

// LastReviewAtNEQ applies the NEQ predicate on the "last_review_at" field.
func LastReviewAtNEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldLastReviewAt, v))
}

// LastReviewAtIn applies the In predicate on the "last_review_at" field.
func LastReviewAtIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldLastReviewAt, vs...))
}

// LastReviewAtNotIn applies the NotIn predicate on the "last_review_at" field.
func LastReviewAtNotIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldLastReviewAt, vs...))
}

// LastReviewAtGT applies the GT predicate on the "last_review_at" field.
func LastReviewAtGT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldLastReviewAt, v))
}

// LastReviewAtGTE applies the GTE predicate on the "last_review_at" field.
func LastReviewAtGTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldLastReviewAt, v))
}

// LastReviewAtLT applies the LT predicate on the "last_review_at" field.
func LastReviewAtLT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldLastReviewAt, v))
}

// LastReviewAtLTE applies the LTE predicate on the "last_review_at" field.
func LastReviewAtLTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldLastReviewAt, v))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldNextReviewAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewCard) predicate.ReviewCard {
	return predicate.ReviewCard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewCard) predicate.ReviewCard {
	return predicate.ReviewCard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewCard) predicate.ReviewCard {
	return predicate.ReviewCard(sql.NotPredicates(p))
}
