// Code generated by ent, DO NOT EDIT.

package reviewcard

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewcard type in the database.
	Label = "review_card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldEase holds the string denoting the ease field in the database.
	FieldEase = "ease"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldLapses holds the string denoting the lapses field in the database.
	FieldLapses = "lapses"
	// FieldLastReviewAt holds the string denoting the last_review_at field in the database.
	FieldLastReviewAt = "last_review_at"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// Table holds the table name of the reviewcard in the database.
	Table = "review_cards"
)

// Columns holds all SQL columns for reviewcard fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSkillID,
	FieldIntervalDays,
	FieldEase,
	FieldRepetitions,
	FieldLapses,
	FieldLastReviewAt,
	FieldNextReviewAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DefaultRepetitions holds the default value on creation for the "repetitions" field.
	DefaultRepetitions int
	// RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	RepetitionsValidator func(int) error
	// DefaultLapses holds the default value on creation for the "lapses" field.
	DefaultLapses int
	// LapsesValidator is a validator for the "lapses" field. It is called by the builders before save.
	LapsesValidator func(int) error
)

// OrderOption defines the ordering options for the ReviewCard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByEase orders the results by the ease field.
func ByEase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEase, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByLapses orders the results by the lapses field.
func ByLapses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLapses, opts...).ToFunc()
}

// ByLastReviewAt orders the results by the last_review_at field.
func ByLastReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewAt, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}
