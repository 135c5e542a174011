// Code generated by ent, DO NOT EDIT.

package skillmastery

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the skillmastery type in the database.
	Label = "skill_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTrend holds the string denoting the trend field in the database.
	FieldTrend = "trend"
	// FieldObservations holds the string denoting the observations field in the database.
	FieldObservations = "observations"
	// FieldDecayedDays holds the string denoting the decayed_days field in the database.
	FieldDecayedDays = "decayed_days"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the skillmastery in the database.
	Table = "skill_masteries"
)

// Columns holds all SQL columns for skillmastery fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSkillID,
	FieldMastery,
	FieldConfidence,
	FieldTrend,
	FieldObservations,
	FieldDecayedDays,
	FieldLastUpdated,
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
	// DefaultTrend holds the default value on creation for the "trend" field.
	DefaultTrend string
	// ObservationsValidator is a validator for the "observations" field. It is called by the builders before save.
	ObservationsValidator func(int) error
	// DefaultDecayedDays holds the default value on creation for the "decayed_days" field.
	DefaultDecayedDays int
	// DecayedDaysValidator is a validator for the "decayed_days" field. It is called by the builders before save.
	DecayedDaysValidator func(int) error
)

// OrderOption defines the ordering options for the SkillMastery queries.
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

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTrend orders the results by the trend field.
func ByTrend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrend, opts...).ToFunc()
}

// ByObservations orders the results by the observations field.
func ByObservations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservations, opts...).ToFunc()
}

// ByDecayedDays orders the results by the decayed_days field.
func ByDecayedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecayedDays, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
