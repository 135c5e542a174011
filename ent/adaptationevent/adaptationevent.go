// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adaptationevent type in the database.
	Label = "adaptation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldInsertedItems holds the string denoting the inserted_items field in the database.
	FieldInsertedItems = "inserted_items"
	// FieldSkippedItems holds the string denoting the skipped_items field in the database.
	FieldSkippedItems = "skipped_items"
	// FieldDurationWeeks holds the string denoting the duration_weeks field in the database.
	FieldDurationWeeks = "duration_weeks"
	// Table holds the table name of the adaptationevent in the database.
	Table = "adaptation_events"
)

// Columns holds all SQL columns for adaptationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldOccurredAt,
	FieldUserID,
	FieldPlanID,
	FieldSkillID,
	FieldTrigger,
	FieldReason,
	FieldInsertedItems,
	FieldSkippedItems,
	FieldDurationWeeks,
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
	// DefaultOccurredAt holds the default value on creation for the "occurred_at" field.
	DefaultOccurredAt func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	TriggerValidator func(string) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
	// DurationWeeksValidator is a validator for the "duration_weeks" field. It is called by the builders before save.
	DurationWeeksValidator func(int) error
)

// OrderOption defines the ordering options for the AdaptationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByDurationWeeks orders the results by the duration_weeks field.
func ByDurationWeeks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationWeeks, opts...).ToFunc()
}
