// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdaptationEvent is the predicate function for adaptationevent builders.
type AdaptationEvent func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// OutcomeEvent is the predicate function for outcomeevent builders.
type OutcomeEvent func(*sql.Selector)

// PathPlan is the predicate function for pathplan builders.
type PathPlan func(*sql.Selector)

// ReviewCard is the predicate function for reviewcard builders.
type ReviewCard func(*sql.Selector)

// SkillMastery is the predicate function for skillmastery builders.
type SkillMastery func(*sql.Selector)
