// Code generated by ent, DO NOT EDIT.

package item

import (
	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// DifficultyBand applies equality check predicate on the "difficulty_band" field. It's identical to DifficultyBandEQ.
func DifficultyBand(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficultyBand, v))
}

// DifficultySublevel applies equality check predicate on the "difficulty_sublevel" field. It's identical to DifficultySublevelEQ.
func DifficultySublevel(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficultySublevel, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldQualityScore, v))
}

// RelevanceScore applies equality check predicate on the "relevance_score" field. It's identical to RelevanceScoreEQ.
func RelevanceScore(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldRelevanceScore, v))
}

// EstimatedMinutes applies equality check predicate on the "estimated_minutes" field. It's identical to EstimatedMinutesEQ.
func EstimatedMinutes(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldItemID, v))
}

// DifficultyBandEQ applies the EQ predicate on the "difficulty_band" field.
func DifficultyBandEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficultyBand, v))
}

// DifficultyBandNEQ applies the NEQ predicate on the "difficulty_band" field.
func DifficultyBandNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDifficultyBand, v))
}

// DifficultyBandIn applies the In predicate on the "difficulty_band" field.
func DifficultyBandIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDifficultyBand, vs...))
}

// DifficultyBandNotIn applies the NotIn predicate on the "difficulty_band" field.
func DifficultyBandNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDifficultyBand, vs...))
}

// DifficultyBandGT applies the GT predicate on the "difficulty_band" field.
func DifficultyBandGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDifficultyBand, v))
}

// DifficultyBandGTE applies the GTE predicate on the "difficulty_band" field.
func DifficultyBandGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDifficultyBand, v))
}

// DifficultyBandLT applies the LT predicate on the "difficulty_band" field.
func DifficultyBandLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDifficultyBand, v))
}

// DifficultyBandLTE applies the LTE predicate on the "difficulty_band" field.
func DifficultyBandLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDifficultyBand, v))
}

// DifficultyBandContains applies the Contains predicate on the "difficulty_band" field.
func DifficultyBandContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldDifficultyBand, v))
}

// DifficultyBandHasPrefix applies the HasPrefix predicate on the "difficulty_band" field.
func DifficultyBandHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldDifficultyBand, v))
}

// DifficultyBandHasSuffix applies the HasSuffix predicate on the "difficulty_band" field.
func DifficultyBandHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldDifficultyBand, v))
}

// DifficultyBandEqualFold applies the EqualFold predicate on the "difficulty_band" field.
func DifficultyBandEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldDifficultyBand, v))
}

// DifficultyBandContainsFold applies the ContainsFold predicate on the "difficulty_band" field.
func DifficultyBandContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldDifficultyBand, v))
}

// DifficultySublevelEQ applies the EQ predicate on the "difficulty_sublevel" field.
func DifficultySublevelEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficultySublevel, v))
}

// DifficultySublevelNEQ applies the NEQ predicate on the "difficulty_sublevel" field.
func DifficultySublevelNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDifficultySublevel, v))
}

// DifficultySublevelIn applies the In predicate on the "difficulty_sublevel" field.
func DifficultySublevelIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDifficultySublevel, vs...))
}

// DifficultySublevelNotIn applies the NotIn predicate on the "difficulty_sublevel" field.
func DifficultySublevelNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDifficultySublevel, vs...))
}

// DifficultySublevelGT applies the GT predicate on the "difficulty_sublevel" field.
func DifficultySublevelGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDifficultySublevel, v))
}

// DifficultySublevelGTE applies the GTE predicate on the "difficulty_sublevel" field.
func DifficultySublevelGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDifficultySublevel, v))
}

// DifficultySublevelLT applies the LT predicate on the "difficulty_sublevel" field.
func DifficultySublevelLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDifficultySublevel, v))
}

// DifficultySublevelLTE applies the LTE predicate on the "difficulty_sublevel" field.
func DifficultySublevelLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDifficultySublevel, v))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldQualityScore, v))
}

// RelevanceScoreEQ applies the EQ predicate on the "relevance_score" field.
func RelevanceScoreEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldRelevanceScore, v))
}

// RelevanceScoreNEQ applies the NEQ predicate on the "relevance_score" field.
func RelevanceScoreNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldRelevanceScore, v))
}

// RelevanceScoreIn applies the In predicate on the "relevance_score" field.
func RelevanceScoreIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreNotIn applies the NotIn predicate on the "relevance_score" field.
func RelevanceScoreNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreGT applies the GT predicate on the "relevance_score" field.
func RelevanceScoreGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldRelevanceScore, v))
}

// RelevanceScoreGTE applies the GTE predicate on the "relevance_score" field.
func RelevanceScoreGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldRelevanceScore, v))
}

// RelevanceScoreLT applies the LT predicate on the "relevance_score" field.
func RelevanceScoreLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldRelevanceScore, v))
}

// RelevanceScoreLTE applies the LTE predicate on the "relevance_score" field.
func RelevanceScoreLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldRelevanceScore, v))
}

// EstimatedMinutesEQ applies the EQ predicate on the "estimated_minutes" field.
func EstimatedMinutesEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesNEQ applies the NEQ predicate on the "estimated_minutes" field.
func EstimatedMinutesNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesIn applies the In predicate on the "estimated_minutes" field.
func EstimatedMinutesIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesNotIn applies the NotIn predicate on the "estimated_minutes" field.
func EstimatedMinutesNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesGT applies the GT predicate on the "estimated_minutes" field.
func EstimatedMinutesGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesGTE applies the GTE predicate on the "estimated_minutes" field.
func EstimatedMinutesGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLT applies the LT predicate on the "estimated_minutes" field.
func EstimatedMinutesLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLTE applies the LTE predicate on the "estimated_minutes" field.
func EstimatedMinutesLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldEstimatedMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
