// Code generated by ent, DO NOT EDIT.

package skillmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldSkillID, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldMastery, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldConfidence, v))
}

// Trend applies equality check predicate on the "trend" field. It's identical to TrendEQ.
func Trend(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldTrend, v))
}

// Observations applies equality check predicate on the "observations" field. It's identical to ObservationsEQ.
func Observations(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldObservations, v))
}

// DecayedDays applies equality check predicate on the "decayed_days" field. It's identical to DecayedDaysEQ.
func DecayedDays(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldDecayedDays, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldLastUpdated, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContainsFold(FieldSkillID, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldMastery, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldConfidence, v))
}

// TrendEQ applies the EQ predicate on the "trend" field.
func TrendEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldTrend, v))
}

// TrendNEQ applies the NEQ predicate on the "trend" field.
func TrendNEQ(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldTrend, v))
}

// TrendIn applies the In predicate on the "trend" field.
func TrendIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldTrend, vs...))
}

// TrendNotIn applies the NotIn predicate on the "trend" field.
func TrendNotIn(vs ...string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldTrend, vs...))
}

// TrendGT applies the GT predicate on the "trend" field.
func TrendGT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldTrend, v))
}

// TrendGTE applies the GTE predicate on the "trend" field.
func TrendGTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldTrend, v))
}

// TrendLT applies the LT predicate on the "trend" field.
func TrendLT(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldTrend, v))
}

// TrendLTE applies the LTE predicate on the "trend" field.
func TrendLTE(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldTrend, v))
}

// TrendContains applies the Contains predicate on the "trend" field.
func TrendContains(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContains(FieldTrend, v))
}

// TrendHasPrefix applies the HasPrefix predicate on the "trend" field.
func TrendHasPrefix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasPrefix(FieldTrend, v))
}

// TrendHasSuffix applies the HasSuffix predicate on the "trend" field.
func TrendHasSuffix(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldHasSuffix(FieldTrend, v))
}

// TrendEqualFold applies the EqualFold predicate on the "trend" field.
func TrendEqualFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEqualFold(FieldTrend, v))
}

// TrendContainsFold applies the ContainsFold predicate on the "trend" field.
func TrendContainsFold(v string) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldContainsFold(FieldTrend, v))
}

// ObservationsEQ applies the EQ predicate on the "observations" field.
func ObservationsEQ(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldObservations, v))
}

// ObservationsNEQ applies the NEQ predicate on the "observations" field.
func ObservationsNEQ(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldObservations, v))
}

// ObservationsIn applies the In predicate on the "observations" field.
func ObservationsIn(vs ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldObservations, vs...))
}

// ObservationsNotIn applies the NotIn predicate on the "observations" field.
func ObservationsNotIn(vs ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldObservations, vs...))
}

// ObservationsGT applies the GT predicate on the "observations" field.
func ObservationsGT(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldObservations, v))
}

// ObservationsGTE applies the GTE predicate on the "observations" field.
func ObservationsGTE(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldObservations, v))
}

// ObservationsLT applies the LT predicate on the "observations" field.
func ObservationsLT(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldObservations, v))
}

// ObservationsLTE applies the LTE predicate on the "observations" field.
func ObservationsLTE(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldObservations, v))
}

// DecayedDaysEQ applies the EQ predicate on the "decayed_days" field.
func DecayedDaysEQ(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldDecayedDays, v))
}

// DecayedDaysNEQ applies the NEQ predicate on the "decayed_days" field.
func DecayedDaysNEQ(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldDecayedDays, v))
}

// DecayedDaysIn applies the In predicate on the "decayed_days" field.
func DecayedDaysIn(vs ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldDecayedDays, vs...))
}

// DecayedDaysNotIn applies the NotIn predicate on the "decayed_days" field.
func DecayedDaysNotIn(vs ...int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldDecayedDays, vs...))
}

// DecayedDaysGT applies the GT predicate on the "decayed_days" field.
func DecayedDaysGT(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldDecayedDays, v))
}

// DecayedDaysGTE applies the GTE predicate on the "decayed_days" field.
func DecayedDaysGTE(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldDecayedDays, v))
}

// DecayedDaysLT applies the LT predicate on the "decayed_days" field.
func DecayedDaysLT(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldDecayedDays, v))
}

// DecayedDaysLTE applies the LTE predicate on the "decayed_days" field.
func DecayedDaysLTE(v int) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldDecayedDays, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.SkillMastery {
	return predicate.SkillMastery(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillMastery) predicate.SkillMastery {
	return predicate.SkillMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillMastery) predicate.SkillMastery {
	return predicate.SkillMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillMastery) predicate.SkillMastery {
	return predicate.SkillMastery(sql.NotPredicates(p))
}
