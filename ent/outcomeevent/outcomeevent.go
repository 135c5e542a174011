// Code generated by ent, DO NOT EDIT.

package outcomeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the outcomeevent type in the database.
	Label = "outcome_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldAssignmentID holds the string denoting the assignment_id field in the database.
	FieldAssignmentID = "assignment_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldTimeSpentMinutes holds the string denoting the time_spent_minutes field in the database.
	FieldTimeSpentMinutes = "time_spent_minutes"
	// FieldEstimatedMinutes holds the string denoting the estimated_minutes field in the database.
	FieldEstimatedMinutes = "estimated_minutes"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// FieldSignal holds the string denoting the signal field in the database.
	FieldSignal = "signal"
	// Table holds the table name of the outcomeevent in the database.
	Table = "outcome_events"
)

// Columns holds all SQL columns for outcomeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldOccurredAt,
	FieldUserID,
	FieldSkillID,
	FieldPlanID,
	FieldAssignmentID,
	FieldItemID,
	FieldSuccess,
	FieldTimeSpentMinutes,
	FieldEstimatedMinutes,
	FieldHintsUsed,
	FieldSignal,
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
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	AssignmentIDValidator func(string) error
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// TimeSpentMinutesValidator is a validator for the "time_spent_minutes" field. It is called by the builders before save.
	TimeSpentMinutesValidator func(int) error
	// EstimatedMinutesValidator is a validator for the "estimated_minutes" field. It is called by the builders before save.
	EstimatedMinutesValidator func(int) error
	// HintsUsedValidator is a validator for the "hints_used" field. It is called by the builders before save.
	HintsUsedValidator func(int) error
)

// OrderOption defines the ordering options for the OutcomeEvent queries.
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

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByAssignmentID orders the results by the assignment_id field.
func ByAssignmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByTimeSpentMinutes orders the results by the time_spent_minutes field.
func ByTimeSpentMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMinutes, opts...).ToFunc()
}

// ByEstimatedMinutes orders the results by the estimated_minutes field.
func ByEstimatedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMinutes, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}

// BySignal orders the results by the signal field.
func BySignal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignal, opts...).ToFunc()
}
