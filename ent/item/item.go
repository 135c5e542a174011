// Code generated by ent, DO NOT EDIT.

package item

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldSkillTags holds the string denoting the skill_tags field in the database.
	FieldSkillTags = "skill_tags"
	// FieldDifficultyBand holds the string denoting the difficulty_band field in the database.
	FieldDifficultyBand = "difficulty_band"
	// FieldDifficultySublevel holds the string denoting the difficulty_sublevel field in the database.
	FieldDifficultySublevel = "difficulty_sublevel"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldRelevanceScore holds the string denoting the relevance_score field in the database.
	FieldRelevanceScore = "relevance_score"
	// FieldEstimatedMinutes holds the string denoting the estimated_minutes field in the database.
	FieldEstimatedMinutes = "estimated_minutes"
	// Table holds the table name of the item in the database.
	Table = "items"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldItemID,
	FieldSkillTags,
	FieldDifficultyBand,
	FieldDifficultySublevel,
	FieldQualityScore,
	FieldRelevanceScore,
	FieldEstimatedMinutes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// DifficultySublevelValidator is a validator for the "difficulty_sublevel" field. It is called by the builders before save.
	DifficultySublevelValidator func(int) error
	// EstimatedMinutesValidator is a validator for the "estimated_minutes" field. It is called by the builders before save.
	EstimatedMinutesValidator func(int) error
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByDifficultyBand orders the results by the difficulty_band field.
func ByDifficultyBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyBand, opts...).ToFunc()
}

// ByDifficultySublevel orders the results by the difficulty_sublevel field.
func ByDifficultySublevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultySublevel, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByRelevanceScore orders the results by the relevance_score field.
func ByRelevanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceScore, opts...).ToFunc()
}

// ByEstimatedMinutes orders the results by the estimated_minutes field.
func ByEstimatedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMinutes, opts...).ToFunc()
}
