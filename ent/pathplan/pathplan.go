// Code generated by ent, DO NOT EDIT.

package pathplan

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathplan type in the database.
	Label = "path_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldDurationWeeks holds the string denoting the duration_weeks field in the database.
	FieldDurationWeeks = "duration_weeks"
	// FieldHoursPerWeek holds the string denoting the hours_per_week field in the database.
	FieldHoursPerWeek = "hours_per_week"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPartial holds the string denoting the partial field in the database.
	FieldPartial = "partial"
	// FieldPartialReasons holds the string denoting the partial_reasons field in the database.
	FieldPartialReasons = "partial_reasons"
	// FieldAssignments holds the string denoting the assignments field in the database.
	FieldAssignments = "assignments"
	// FieldMilestones holds the string denoting the milestones field in the database.
	FieldMilestones = "milestones"
	// FieldAdaptationLog holds the string denoting the adaptation_log field in the database.
	FieldAdaptationLog = "adaptation_log"
	// FieldDifficultyBoost holds the string denoting the difficulty_boost field in the database.
	FieldDifficultyBoost = "difficulty_boost"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the pathplan in the database.
	Table = "path_plans"
)

// Columns holds all SQL columns for pathplan fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldUserID,
	FieldGoal,
	FieldDurationWeeks,
	FieldHoursPerWeek,
	FieldStatus,
	FieldPartial,
	FieldPartialReasons,
	FieldAssignments,
	FieldMilestones,
	FieldAdaptationLog,
	FieldDifficultyBoost,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DurationWeeksValidator is a validator for the "duration_weeks" field. It is called by the builders before save.
	DurationWeeksValidator func(int) error
	// HoursPerWeekValidator is a validator for the "hours_per_week" field. It is called by the builders before save.
	HoursPerWeekValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultPartial holds the default value on creation for the "partial" field.
	DefaultPartial bool
)

// OrderOption defines the ordering options for the PathPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDurationWeeks orders the results by the duration_weeks field.
func ByDurationWeeks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationWeeks, opts...).ToFunc()
}

// ByHoursPerWeek orders the results by the hours_per_week field.
func ByHoursPerWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoursPerWeek, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPartial orders the results by the partial field.
func ByPartial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartial, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
