// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/pathplan"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
)

// PathPlanUpdate is the builder for updating PathPlan entities.
type PathPlanUpdate struct {
	config
	hooks    []Hook
	mutation *PathPlanMutation
}

// Where appends a list predicates to the PathPlanUpdate builder.
func (ppu *PathPlanUpdate) Where(ps ...predicate.PathPlan) *PathPlanUpdate {
	ppu.mutation.Where(ps...)
	return ppu
}

// SetGoal sets the "goal" field.
func (ppu *PathPlanUpdate) SetGoal(pl planner.Goal) *PathPlanUpdate {
	ppu.mutation.SetGoal(pl)
	return ppu
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (ppu *PathPlanUpdate) SetNillableGoal(pl *planner.Goal) *PathPlanUpdate {
	if pl != nil {
		ppu.SetGoal(*pl)
	}
	return ppu
}

// SetDurationWeeks sets the "duration_weeks" field.
func (ppu *PathPlanUpdate) SetDurationWeeks(i int) *PathPlanUpdate {
	ppu.mutation.ResetDurationWeeks()
	ppu.mutation.SetDurationWeeks(i)
	return ppu
}

// SetNillableDurationWeeks sets the "duration_weeks" field if the given value is not nil.
func (ppu *PathPlanUpdate) SetNillableDurationWeeks(i *int) *PathPlanUpdate {
	if i != nil {
		ppu.SetDurationWeeks(*i)
	}
	return ppu
}

// AddDurationWeeks adds i to the "duration_weeks" field.
func (ppu *PathPlanUpdate) AddDurationWeeks(i int) *PathPlanUpdate {
	ppu.mutation.AddDurationWeeks(i)
	return ppu
}

// SetHoursPerWeek sets the "hours_per_week" field.
func (ppu *PathPlanUpdate) SetHoursPerWeek(i int) *PathPlanUpdate {
	ppu.mutation.ResetHoursPerWeek()
	ppu.mutation.SetHoursPerWeek(i)
	return ppu
}

// SetNillableHoursPerWeek sets the "hours_per_week" field if the given value is not nil.
func (ppu *PathPlanUpdate) SetNillableHoursPerWeek(i *int) *PathPlanUpdate {
	if i != nil {
		ppu.SetHoursPerWeek(*i)
	}
	return ppu
}

// AddHoursPerWeek adds i to the "hours_per_week" field.
func (ppu *PathPlanUpdate) AddHoursPerWeek(i int) *PathPlanUpdate {
	ppu.mutation.AddHoursPerWeek(i)
	return ppu
}

// SetStatus sets the "status" field.
func (ppu *PathPlanUpdate) SetStatus(s string) *PathPlanUpdate {
	ppu.mutation.SetStatus(s)
	return ppu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ppu *PathPlanUpdate) SetNillableStatus(s *string) *PathPlanUpdate {
	if s != nil {
		ppu.SetStatus(*s)
	}
	return ppu
}

// SetPartial sets the "partial" field.
func (ppu *PathPlanUpdate) SetPartial(b bool) *PathPlanUpdate {
	ppu.mutation.SetPartial(b)
	return ppu
}

// SetNillablePartial sets the "partial" field if the given value is not nil.
func (ppu *PathPlanUpdate) SetNillablePartial(b *bool) *PathPlanUpdate {
	if b != nil {
		ppu.SetPartial(*b)
	}
	return ppu
}

// SetPartialReasons sets the "partial_reasons" field.
func (ppu *PathPlanUpdate) SetPartialReasons(pr []planner.RelaxationReason) *PathPlanUpdate {
	ppu.mutation.SetPartialReasons(pr)
	return ppu
}

// AppendPartialReasons appends pr to the "partial_reasons" field.
func (ppu *PathPlanUpdate) AppendPartialReasons(pr []planner.RelaxationReason) *PathPlanUpdate {
	ppu.mutation.AppendPartialReasons(pr)
	return ppu
}

// ClearPartialReasons clears the value of the "partial_reasons" field.
func (ppu *PathPlanUpdate) ClearPartialReasons() *PathPlanUpdate {
	ppu.mutation.ClearPartialReasons()
	return ppu
}

// SetAssignments sets the "assignments" field.
func (ppu *PathPlanUpdate) SetAssignments(pl []planner.Assignment) *PathPlanUpdate {
	ppu.mutation.SetAssignments(pl)
	return ppu
}

// AppendAssignments appends pl to the "assignments" field.
func (ppu *PathPlanUpdate) AppendAssignments(pl []planner.Assignment) *PathPlanUpdate {
	ppu.mutation.AppendAssignments(pl)
	return ppu
}

// SetMilestones sets the "milestones" field.
func (ppu *PathPlanUpdate) SetMilestones(pl []planner.Milestone) *PathPlanUpdate {
	ppu.mutation.SetMilestones(pl)
	return ppu
}

// AppendMilestones appends pl to the "milestones" field.
func (ppu *PathPlanUpdate) AppendMilestones(pl []planner.Milestone) *PathPlanUpdate {
	ppu.mutation.AppendMilestones(pl)
	return ppu
}

// SetAdaptationLog sets the "adaptation_log" field.
func (ppu *PathPlanUpdate) SetAdaptationLog(pe []planner.AdaptationEntry) *PathPlanUpdate {
	ppu.mutation.SetAdaptationLog(pe)
	return ppu
}

// AppendAdaptationLog appends pe to the "adaptation_log" field.
func (ppu *PathPlanUpdate) AppendAdaptationLog(pe []planner.AdaptationEntry) *PathPlanUpdate {
	ppu.mutation.AppendAdaptationLog(pe)
	return ppu
}

// ClearAdaptationLog clears the value of the "adaptation_log" field.
func (ppu *PathPlanUpdate) ClearAdaptationLog() *PathPlanUpdate {
	ppu.mutation.ClearAdaptationLog()
	return ppu
}

// SetDifficultyBoost sets the "difficulty_boost" field.
func (ppu *PathPlanUpdate) SetDifficultyBoost(m map[string]int) *PathPlanUpdate {
	ppu.mutation.SetDifficultyBoost(m)
	return ppu
}

// ClearDifficultyBoost clears the value of the "difficulty_boost" field.
func (ppu *PathPlanUpdate) ClearDifficultyBoost() *PathPlanUpdate {
	ppu.mutation.ClearDifficultyBoost()
	return ppu
}

// SetUpdatedAt sets the "updated_at" field.
func (ppu *PathPlanUpdate) SetUpdatedAt(t time.Time) *PathPlanUpdate {
	ppu.mutation.SetUpdatedAt(t)
	return ppu
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ppu *PathPlanUpdate) SetNillableUpdatedAt(t *time.Time) *PathPlanUpdate {
	if t != nil {
		ppu.SetUpdatedAt(*t)
	}
	return ppu
}

// Mutation returns the PathPlanMutation object of the builder.
func (ppu *PathPlanUpdate) Mutation() *PathPlanMutation {
	return ppu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ppu *PathPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ppu.sqlSave, ppu.mutation, ppu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ppu *PathPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := ppu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ppu *PathPlanUpdate) Exec(ctx context.Context) error {
	_, err := ppu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ppu *PathPlanUpdate) ExecX(ctx context.Context) {
	if err := ppu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ppu *PathPlanUpdate) check() error {
	if v, ok := ppu.mutation.DurationWeeks(); ok {
		if err := pathplan.DurationWeeksValidator(v); err != nil {
			return &ValidationError{Name: "duration_weeks", err: fmt.Errorf(`ent: validator failed for field "PathPlan.duration_weeks": %w`, err)}
		}
	}
	if v, ok := ppu.mutation.HoursPerWeek(); ok {
		if err := pathplan.HoursPerWeekValidator(v); err != nil {
			return &ValidationError{Name: "hours_per_week", err: fmt.Errorf(`ent: validator failed for field "PathPlan.hours_per_week": %w`, err)}
		}
	}
	return nil
}

func (ppu *PathPlanUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ppu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathplan.Table, pathplan.Columns, sqlgraph.NewFieldSpec(pathplan.FieldID, field.TypeInt))
	if ps := ppu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ppu.mutation.Goal(); ok {
		_spec.SetField(pathplan.FieldGoal, field.TypeJSON, value)
	}
	if value, ok := ppu.mutation.DurationWeeks(); ok {
		_spec.SetField(pathplan.FieldDurationWeeks, field.TypeInt, value)
	}
	if value, ok := ppu.mutation.AddedDurationWeeks(); ok {
		_spec.AddField(pathplan.FieldDurationWeeks, field.TypeInt, value)
	}
	if value, ok := ppu.mutation.HoursPerWeek(); ok {
		_spec.SetField(pathplan.FieldHoursPerWeek, field.TypeInt, value)
	}
	if value, ok := ppu.mutation.AddedHoursPerWeek(); ok {
		_spec.AddField(pathplan.FieldHoursPerWeek, field.TypeInt, value)
	}
	if value, ok := ppu.mutation.Status(); ok {
		_spec.SetField(pathplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := ppu.mutation.Partial(); ok {
		_spec.SetField(pathplan.FieldPartial, field.TypeBool, value)
	}
	if value, ok := ppu.mutation.PartialReasons(); ok {
		_spec.SetField(pathplan.FieldPartialReasons, field.TypeJSON, value)
	}
	if value, ok := ppu.mutation.AppendedPartialReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathplan.FieldPartialReasons, value)
		})
	}
	if ppu.mutation.PartialReasonsCleared() {
		_spec.ClearField(pathplan.FieldPartialReasons, field.TypeJSON)
	}
	if value, ok := ppu.mutation.Assignments(); ok {
		_spec.SetField(pathplan.FieldAssignments, field.TypeJSON, value)
	}
	if value, ok := ppu.mutation.AppendedAssignments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathplan.FieldAssignments, value)
		})
	}
	if value, ok := ppu.mutation.Milestones(); ok {
		_spec.SetField(pathplan.FieldMilestones, field.TypeJSON, value)
	}
	if value, ok := ppu.mutation.AppendedMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathplan.FieldMilestones, value)
		})
	}
	if value, ok := ppu.mutation.AdaptationLog(); ok {
		_spec.SetField(pathplan.FieldAdaptationLog, field.TypeJSON, value)
	}
	if value, ok := ppu.mutation.AppendedAdaptationLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathplan.FieldAdaptationLog, value)
		})
	}
	if ppu.mutation.AdaptationLogCleared() {
		_spec.ClearField(pathplan.FieldAdaptationLog, field.TypeJSON)
	}
	if value, ok := ppu.mutation.DifficultyBoost(); ok {
		_spec.SetField(pathplan.FieldDifficultyBoost, field.TypeJSON, value)
	}
	if ppu.mutation.DifficultyBoostCleared() {
		_spec.ClearField(pathplan.FieldDifficultyBoost, field.TypeJSON)
	}
	if value, ok := ppu.mutation.UpdatedAt(); ok {
		_spec.SetField(pathplan.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ppu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ppu.mutation.done = true
	return n, nil
}

// PathPlanUpdateOne is the builder for updating a single PathPlan entity.
type PathPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathPlanMutation
}

// SetGoal sets the "goal" field.
func (ppuo *PathPlanUpdateOne) SetGoal(pl planner.Goal) *PathPlanUpdateOne {
	ppuo.mutation.SetGoal(pl)
	return ppuo
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (ppuo *PathPlanUpdateOne) SetNillableGoal(pl *planner.Goal) *PathPlanUpdateOne {
	if pl != nil {
		ppuo.SetGoal(*pl)
	}
	return ppuo
}

// SetDurationWeeks sets the "duration_weeks" field.
func (ppuo *PathPlanUpdateOne) SetDurationWeeks(i int) *PathPlanUpdateOne {
	ppuo.mutation.ResetDurationWeeks()
	ppuo.mutation.SetDurationWeeks(i)
	return ppuo
}

// SetNillableDurationWeeks sets the "duration_weeks" field if the given value is not nil.
func (ppuo *PathPlanUpdateOne) SetNillableDurationWeeks(i *int) *PathPlanUpdateOne {
	if i != nil {
		ppuo.SetDurationWeeks(*i)
	}
	return ppuo
}

// AddDurationWeeks adds i to the "duration_weeks" field.
func (ppuo *PathPlanUpdateOne) AddDurationWeeks(i int) *PathPlanUpdateOne {
	ppuo.mutation.AddDurationWeeks(i)
	return ppuo
}

// SetHoursPerWeek sets the "hours_per_week" field.
func (ppuo *PathPlanUpdateOne) SetHoursPerWeek(i int) *PathPlanUpdateOne {
	ppuo.mutation.ResetHoursPerWeek()
	ppuo.mutation.SetHoursPerWeek(i)
	return ppuo
}

// SetNillableHoursPerWeek sets the "hours_per_week" field if the given value is not nil.
func (ppuo *PathPlanUpdateOne) SetNillableHoursPerWeek(i *int) *PathPlanUpdateOne {
	if i != nil {
		ppuo.SetHoursPerWeek(*i)
	}
	return ppuo
}

// AddHoursPerWeek adds i to the "hours_per_week" field.
func (ppuo *PathPlanUpdateOne) AddHoursPerWeek(i int) *PathPlanUpdateOne {
	ppuo.mutation.AddHoursPerWeek(i)
	return ppuo
}

// SetStatus sets the "status" field.
func (ppuo *PathPlanUpdateOne) SetStatus(s string) *PathPlanUpdateOne {
	ppuo.mutation.SetStatus(s)
	return ppuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ppuo *PathPlanUpdateOne) SetNillableStatus(s *string) *PathPlanUpdateOne {
	if s != nil {
		ppuo.SetStatus(*s)
	}
	return ppuo
}

// SetPartial sets the "partial" field.
func (ppuo *PathPlanUpdateOne) SetPartial(b bool) *PathPlanUpdateOne {
	ppuo.mutation.SetPartial(b)
	return ppuo
}

// SetNillablePartial sets the "partial" field if the given value is not nil.
func (ppuo *PathPlanUpdateOne) SetNillablePartial(b *bool) *PathPlanUpdateOne {
	if b != nil {
		ppuo.SetPartial(*b)
	}
	return ppuo
}

// SetPartialReasons sets the "partial_reasons" field.
func (ppuo *PathPlanUpdateOne) SetPartialReasons(pr []planner.RelaxationReason) *PathPlanUpdateOne {
	ppuo.mutation.SetPartialReasons(pr)
	return ppuo
}

// AppendPartialReasons appends pr to the "partial_reasons" field.
func (ppuo *PathPlanUpdateOne) AppendPartialReasons(pr []planner.RelaxationReason) *PathPlanUpdateOne {
	ppuo.mutation.AppendPartialReasons(pr)
	return ppuo
}

// ClearPartialReasons clears the value of the "partial_reasons" field.
func (ppuo *PathPlanUpdateOne) ClearPartialReasons() *PathPlanUpdateOne {
	ppuo.mutation.ClearPartialReasons()
	return ppuo
}

// SetAssignments sets the "assignments" field.
func (ppuo *PathPlanUpdateOne) SetAssignments(pl []planner.Assignment) *PathPlanUpdateOne {
	ppuo.mutation.SetAssignments(pl)
	return ppuo
}

// AppendAssignments appends pl to the "assignments" field.
func (ppuo *PathPlanUpdateOne) AppendAssignments(pl []planner.Assignment) *PathPlanUpdateOne {
	ppuo.mutation.AppendAssignments(pl)
	return ppuo
}

// SetMilestones sets the "milestones" field.
func (ppuo *PathPlanUpdateOne) SetMilestones(pl []planner.Milestone) *PathPlanUpdateOne {
	ppuo.mutation.SetMilestones(pl)
	return ppuo
}

// AppendMilestones appends pl to the "milestones" field.
func (ppuo *PathPlanUpdateOne) AppendMilestones(pl []planner.Milestone) *PathPlanUpdateOne {
	ppuo.mutation.AppendMilestones(pl)
	return ppuo
}

// SetAdaptationLog sets the "adaptation_log" field.
func (ppuo *PathPlanUpdateOne) SetAdaptationLog(pe []planner.AdaptationEntry) *PathPlanUpdateOne {
	ppuo.mutation.SetAdaptationLog(pe)
	return ppuo
}

// AppendAdaptationLog appends pe to the "adaptation_log" field.
func (ppuo *PathPlanUpdateOne) AppendAdaptationLog(pe []planner.AdaptationEntry) *PathPlanUpdateOne {
	ppuo.mutation.AppendAdaptationLog(pe)
	return ppuo
}

// ClearAdaptationLog clears the value of the "adaptation_log" field.
func (ppuo *PathPlanUpdateOne) ClearAdaptationLog() *PathPlanUpdateOne {
	ppuo.mutation.ClearAdaptationLog()
	return ppuo
}

// SetDifficultyBoost sets the "difficulty_boost" field.
func (ppuo *PathPlanUpdateOne) SetDifficultyBoost(m map[string]int) *PathPlanUpdateOne {
	ppuo.mutation.SetDifficultyBoost(m)
	return ppuo
}

// ClearDifficultyBoost clears the value of the "difficulty_boost" field.
func (ppuo *PathPlanUpdateOne) ClearDifficultyBoost() *PathPlanUpdateOne {
	ppuo.mutation.ClearDifficultyBoost()
	return ppuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ppuo *PathPlanUpdateOne) SetUpdatedAt(t time.Time) *PathPlanUpdateOne {
	ppuo.mutation.SetUpdatedAt(t)
	return ppuo
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ppuo *PathPlanUpdateOne) SetNillableUpdatedAt(t *time.Time) *PathPlanUpdateOne {
	if t != nil {
		ppuo.SetUpdatedAt(*t)
	}
	return ppuo
}

// Mutation returns the PathPlanMutation object of the builder.
func (ppuo *PathPlanUpdateOne) Mutation() *PathPlanMutation {
	return ppuo.mutation
}

// Where appends a list predicates to the PathPlanUpdate builder.
func (ppuo *PathPlanUpdateOne) Where(ps ...predicate.PathPlan) *PathPlanUpdateOne {
	ppuo.mutation.Where(ps...)
	return ppuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ppuo *PathPlanUpdateOne) Select(field string, fields ...string) *PathPlanUpdateOne {
	ppuo.fields = append([]string{field}, fields...)
	return ppuo
}

// Save executes the query and returns the updated PathPlan entity.
func (ppuo *PathPlanUpdateOne) Save(ctx context.Context) (*PathPlan, error) {
	return withHooks(ctx, ppuo.sqlSave, ppuo.mutation, ppuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ppuo *PathPlanUpdateOne) SaveX(ctx context.Context) *PathPlan {
	node, err := ppuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ppuo *PathPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := ppuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ppuo *PathPlanUpdateOne) ExecX(ctx context.Context) {
	if err := ppuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ppuo *PathPlanUpdateOne) check() error {
	if v, ok := ppuo.mutation.DurationWeeks(); ok {
		if err := pathplan.DurationWeeksValidator(v); err != nil {
			return &ValidationError{Name: "duration_weeks", err: fmt.Errorf(`ent: validator failed for field "PathPlan.duration_weeks": %w`, err)}
		}
	}
	if v, ok := ppuo.mutation.HoursPerWeek(); ok {
		if err := pathplan.HoursPerWeekValidator(v); err != nil {
			return &ValidationError{Name: "hours_per_week", err: fmt.Errorf(`ent: validator failed for field "PathPlan.hours_per_week": %w`, err)}
		}
	}
	return nil
}

func (ppuo *PathPlanUpdateOne) sqlSave(ctx context.Context) (_node *PathPlan, err error) {
	if err := ppuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathplan.Table, pathplan.Columns, sqlgraph.NewFieldSpec(pathplan.FieldID, field.TypeInt))
	id, ok := ppuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ppuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathplan.FieldID)
		for _, f := range fields {
			if !pathplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathplan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ppuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ppuo.mutation.Goal(); ok {
		_spec.SetField(pathplan.FieldGoal, field.TypeJSON, value)
	}
	if value, ok := ppuo.mutation.DurationWeeks(); ok {
		_spec.SetField(pathplan.FieldDurationWeeks, field.TypeInt, value)
	}
	if value, ok := ppuo.mutation.AddedDurationWeeks(); ok {
		_spec.AddField(pathplan.FieldDurationWeeks, field.TypeInt, value)
	}
	if value, ok := ppuo.mutation.HoursPerWeek(); ok {
		_spec.SetField(pathplan.FieldHoursPerWeek, field.TypeInt, value)
	}
	if value, ok := ppuo.mutation.AddedHoursPerWeek(); ok {
		_spec.AddField(pathplan.FieldHoursPerWeek, field.TypeInt, value)
	}
	if value, ok := ppuo.mutation.Status(); ok {
		_spec.SetField(pathplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := ppuo.mutation.Partial(); ok {
		_spec.SetField(pathplan.FieldPartial, field.TypeBool, value)
	}
	if value, ok := ppuo.mutation.PartialReasons(); ok {
		_spec.SetField(pathplan.FieldPartialReasons, field.TypeJSON, value)
	}
	if value, ok := ppuo.mutation.AppendedPartialReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathplan.FieldPartialReasons, value)
		})
	}
	if ppuo.mutation.PartialReasonsCleared() {
		_spec.ClearField(pathplan.FieldPartialReasons, field.TypeJSON)
	}
	if value, ok := ppuo.mutation.Assignments(); ok {
		_spec.SetField(pathplan.FieldAssignments, field.TypeJSON, value)
	}
	if value, ok := ppuo.mutation.AppendedAssignments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathplan.FieldAssignments, value)
		})
	}
	if value, ok := ppuo.mutation.Milestones(); ok {
		_spec.SetField(pathplan.FieldMilestones, field.TypeJSON, value)
	}
	if value, ok := ppuo.mutation.AppendedMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathplan.FieldMilestones, value)
		})
	}
	if value, ok := ppuo.mutation.AdaptationLog(); ok {
		_spec.SetField(pathplan.FieldAdaptationLog, field.TypeJSON, value)
	}
	if value, ok := ppuo.mutation.AppendedAdaptationLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pathplan.FieldAdaptationLog, value)
		})
	}
	if ppuo.mutation.AdaptationLogCleared() {
		_spec.ClearField(pathplan.FieldAdaptationLog, field.TypeJSON)
	}
	if value, ok := ppuo.mutation.DifficultyBoost(); ok {
		_spec.SetField(pathplan.FieldDifficultyBoost, field.TypeJSON, value)
	}
	if ppuo.mutation.DifficultyBoostCleared() {
		_spec.ClearField(pathplan.FieldDifficultyBoost, field.TypeJSON)
	}
	if value, ok := ppuo.mutation.UpdatedAt(); ok {
		_spec.SetField(pathplan.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PathPlan{config: ppuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ppuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ppuo.mutation.done = true
	return _node, nil
}
