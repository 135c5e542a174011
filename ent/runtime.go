// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/salmon302/DSATrain-sub001/ent/adaptationevent"
	"github.com/salmon302/DSATrain-sub001/ent/item"
	"github.com/salmon302/DSATrain-sub001/ent/outcomeevent"
	"github.com/salmon302/DSATrain-sub001/ent/pathplan"
	"github.com/salmon302/DSATrain-sub001/ent/reviewcard"
	"github.com/salmon302/DSATrain-sub001/ent/schema"
	"github.com/salmon302/DSATrain-sub001/ent/skillmastery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptationeventMixin := schema.AdaptationEvent{}.Mixin()
	adaptationeventMixinFields0 := adaptationeventMixin[0].Fields()
	_ = adaptationeventMixinFields0
	adaptationeventFields := schema.AdaptationEvent{}.Fields()
	_ = adaptationeventFields
	// adaptationeventDescOccurredAt is the schema descriptor for occurred_at field.
	adaptationeventDescOccurredAt := adaptationeventMixinFields0[1].Descriptor()
	// adaptationevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	adaptationevent.DefaultOccurredAt = adaptationeventDescOccurredAt.Default.(func() time.Time)
	// adaptationeventDescUserID is the schema descriptor for user_id field.
	adaptationeventDescUserID := adaptationeventFields[0].Descriptor()
	// adaptationevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	adaptationevent.UserIDValidator = adaptationeventDescUserID.Validators[0].(func(string) error)
	// adaptationeventDescPlanID is the schema descriptor for plan_id field.
	adaptationeventDescPlanID := adaptationeventFields[1].Descriptor()
	// adaptationevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	adaptationevent.PlanIDValidator = adaptationeventDescPlanID.Validators[0].(func(string) error)
	// adaptationeventDescSkillID is the schema descriptor for skill_id field.
	adaptationeventDescSkillID := adaptationeventFields[2].Descriptor()
	// adaptationevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	adaptationevent.SkillIDValidator = adaptationeventDescSkillID.Validators[0].(func(string) error)
	// adaptationeventDescTrigger is the schema descriptor for trigger field.
	adaptationeventDescTrigger := adaptationeventFields[3].Descriptor()
	// adaptationevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	adaptationevent.TriggerValidator = adaptationeventDescTrigger.Validators[0].(func(string) error)
	// adaptationeventDescReason is the schema descriptor for reason field.
	adaptationeventDescReason := adaptationeventFields[4].Descriptor()
	// adaptationevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	adaptationevent.ReasonValidator = adaptationeventDescReason.Validators[0].(func(string) error)
	// adaptationeventDescDurationWeeks is the schema descriptor for duration_weeks field.
	adaptationeventDescDurationWeeks := adaptationeventFields[7].Descriptor()
	// adaptationevent.DurationWeeksValidator is a validator for the "duration_weeks" field. It is called by the builders before save.
	adaptationevent.DurationWeeksValidator = adaptationeventDescDurationWeeks.Validators[0].(func(int) error)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescItemID is the schema descriptor for item_id field.
	itemDescItemID := itemFields[0].Descriptor()
	// item.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	item.ItemIDValidator = itemDescItemID.Validators[0].(func(string) error)
	// itemDescDifficultySublevel is the schema descriptor for difficulty_sublevel field.
	itemDescDifficultySublevel := itemFields[3].Descriptor()
	// item.DifficultySublevelValidator is a validator for the "difficulty_sublevel" field. It is called by the builders before save.
	item.DifficultySublevelValidator = itemDescDifficultySublevel.Validators[0].(func(int) error)
	// itemDescEstimatedMinutes is the schema descriptor for estimated_minutes field.
	itemDescEstimatedMinutes := itemFields[6].Descriptor()
	// item.EstimatedMinutesValidator is a validator for the "estimated_minutes" field. It is called by the builders before save.
	item.EstimatedMinutesValidator = itemDescEstimatedMinutes.Validators[0].(func(int) error)
	outcomeeventMixin := schema.OutcomeEvent{}.Mixin()
	outcomeeventMixinFields0 := outcomeeventMixin[0].Fields()
	_ = outcomeeventMixinFields0
	outcomeeventFields := schema.OutcomeEvent{}.Fields()
	_ = outcomeeventFields
	// outcomeeventDescOccurredAt is the schema descriptor for occurred_at field.
	outcomeeventDescOccurredAt := outcomeeventMixinFields0[1].Descriptor()
	// outcomeevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	outcomeevent.DefaultOccurredAt = outcomeeventDescOccurredAt.Default.(func() time.Time)
	// outcomeeventDescUserID is the schema descriptor for user_id field.
	outcomeeventDescUserID := outcomeeventFields[0].Descriptor()
	// outcomeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	outcomeevent.UserIDValidator = outcomeeventDescUserID.Validators[0].(func(string) error)
	// outcomeeventDescSkillID is the schema descriptor for skill_id field.
	outcomeeventDescSkillID := outcomeeventFields[1].Descriptor()
	// outcomeevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	outcomeevent.SkillIDValidator = outcomeeventDescSkillID.Validators[0].(func(string) error)
	// outcomeeventDescPlanID is the schema descriptor for plan_id field.
	outcomeeventDescPlanID := outcomeeventFields[2].Descriptor()
	// outcomeevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	outcomeevent.PlanIDValidator = outcomeeventDescPlanID.Validators[0].(func(string) error)
	// outcomeeventDescAssignmentID is the schema descriptor for assignment_id field.
	outcomeeventDescAssignmentID := outcomeeventFields[3].Descriptor()
	// outcomeevent.AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	outcomeevent.AssignmentIDValidator = outcomeeventDescAssignmentID.Validators[0].(func(string) error)
	// outcomeeventDescItemID is the schema descriptor for item_id field.
	outcomeeventDescItemID := outcomeeventFields[4].Descriptor()
	// outcomeevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	outcomeevent.ItemIDValidator = outcomeeventDescItemID.Validators[0].(func(string) error)
	// outcomeeventDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	outcomeeventDescTimeSpentMinutes := outcomeeventFields[6].Descriptor()
	// outcomeevent.TimeSpentMinutesValidator is a validator for the "time_spent_minutes" field. It is called by the builders before save.
	outcomeevent.TimeSpentMinutesValidator = outcomeeventDescTimeSpentMinutes.Validators[0].(func(int) error)
	// outcomeeventDescEstimatedMinutes is the schema descriptor for estimated_minutes field.
	outcomeeventDescEstimatedMinutes := outcomeeventFields[7].Descriptor()
	// outcomeevent.EstimatedMinutesValidator is a validator for the "estimated_minutes" field. It is called by the builders before save.
	outcomeevent.EstimatedMinutesValidator = outcomeeventDescEstimatedMinutes.Validators[0].(func(int) error)
	// outcomeeventDescHintsUsed is the schema descriptor for hints_used field.
	outcomeeventDescHintsUsed := outcomeeventFields[8].Descriptor()
	// outcomeevent.HintsUsedValidator is a validator for the "hints_used" field. It is called by the builders before save.
	outcomeevent.HintsUsedValidator = outcomeeventDescHintsUsed.Validators[0].(func(int) error)
	pathplanFields := schema.PathPlan{}.Fields()
	_ = pathplanFields
	// pathplanDescPlanID is the schema descriptor for plan_id field.
	pathplanDescPlanID := pathplanFields[0].Descriptor()
	// pathplan.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	pathplan.PlanIDValidator = pathplanDescPlanID.Validators[0].(func(string) error)
	// pathplanDescUserID is the schema descriptor for user_id field.
	pathplanDescUserID := pathplanFields[1].Descriptor()
	// pathplan.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	pathplan.UserIDValidator = pathplanDescUserID.Validators[0].(func(string) error)
	// pathplanDescDurationWeeks is the schema descriptor for duration_weeks field.
	pathplanDescDurationWeeks := pathplanFields[3].Descriptor()
	// pathplan.DurationWeeksValidator is a validator for the "duration_weeks" field. It is called by the builders before save.
	pathplan.DurationWeeksValidator = pathplanDescDurationWeeks.Validators[0].(func(int) error)
	// pathplanDescHoursPerWeek is the schema descriptor for hours_per_week field.
	pathplanDescHoursPerWeek := pathplanFields[4].Descriptor()
	// pathplan.HoursPerWeekValidator is a validator for the "hours_per_week" field. It is called by the builders before save.
	pathplan.HoursPerWeekValidator = pathplanDescHoursPerWeek.Validators[0].(func(int) error)
	// pathplanDescStatus is the schema descriptor for status field.
	pathplanDescStatus := pathplanFields[5].Descriptor()
	// pathplan.DefaultStatus holds the default value on creation for the status field.
	pathplan.DefaultStatus = pathplanDescStatus.Default.(string)
	// pathplanDescPartial is the schema descriptor for partial field.
	pathplanDescPartial := pathplanFields[6].Descriptor()
	// pathplan.DefaultPartial holds the default value on creation for the partial field.
	pathplan.DefaultPartial = pathplanDescPartial.Default.(bool)
	reviewcardFields := schema.ReviewCard{}.Fields()
	_ = reviewcardFields
	// reviewcardDescUserID is the schema descriptor for user_id field.
	reviewcardDescUserID := reviewcardFields[0].Descriptor()
	// reviewcard.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewcard.UserIDValidator = reviewcardDescUserID.Validators[0].(func(string) error)
	// reviewcardDescSkillID is the schema descriptor for skill_id field.
	reviewcardDescSkillID := reviewcardFields[1].Descriptor()
	// reviewcard.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	reviewcard.SkillIDValidator = reviewcardDescSkillID.Validators[0].(func(string) error)
	// reviewcardDescRepetitions is the schema descriptor for repetitions field.
	reviewcardDescRepetitions := reviewcardFields[4].Descriptor()
	// reviewcard.DefaultRepetitions holds the default value on creation for the repetitions field.
	reviewcard.DefaultRepetitions = reviewcardDescRepetitions.Default.(int)
	// reviewcard.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	reviewcard.RepetitionsValidator = reviewcardDescRepetitions.Validators[0].(func(int) error)
	// reviewcardDescLapses is the schema descriptor for lapses field.
	reviewcardDescLapses := reviewcardFields[5].Descriptor()
	// reviewcard.DefaultLapses holds the default value on creation for the lapses field.
	reviewcard.DefaultLapses = reviewcardDescLapses.Default.(int)
	// reviewcard.LapsesValidator is a validator for the "lapses" field. It is called by the builders before save.
	reviewcard.LapsesValidator = reviewcardDescLapses.Validators[0].(func(int) error)
	skillmasteryFields := schema.SkillMastery{}.Fields()
	_ = skillmasteryFields
	// skillmasteryDescUserID is the schema descriptor for user_id field.
	skillmasteryDescUserID := skillmasteryFields[0].Descriptor()
	// skillmastery.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	skillmastery.UserIDValidator = skillmasteryDescUserID.Validators[0].(func(string) error)
	// skillmasteryDescSkillID is the schema descriptor for skill_id field.
	skillmasteryDescSkillID := skillmasteryFields[1].Descriptor()
	// skillmastery.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	skillmastery.SkillIDValidator = skillmasteryDescSkillID.Validators[0].(func(string) error)
	// skillmasteryDescTrend is the schema descriptor for trend field.
	skillmasteryDescTrend := skillmasteryFields[4].Descriptor()
	// skillmastery.DefaultTrend holds the default value on creation for the trend field.
	skillmastery.DefaultTrend = skillmasteryDescTrend.Default.(string)
	// skillmasteryDescObservations is the schema descriptor for observations field.
	skillmasteryDescObservations := skillmasteryFields[5].Descriptor()
	// skillmastery.ObservationsValidator is a validator for the "observations" field. It is called by the builders before save.
	skillmastery.ObservationsValidator = skillmasteryDescObservations.Validators[0].(func(int) error)
	// skillmasteryDescDecayedDays is the schema descriptor for decayed_days field.
	skillmasteryDescDecayedDays := skillmasteryFields[6].Descriptor()
	// skillmastery.DefaultDecayedDays holds the default value on creation for the decayed_days field.
	skillmastery.DefaultDecayedDays = skillmasteryDescDecayedDays.Default.(int)
	// skillmastery.DecayedDaysValidator is a validator for the "decayed_days" field. It is called by the builders before save.
	skillmastery.DecayedDaysValidator = skillmasteryDescDecayedDays.Validators[0].(func(int) error)
}
