// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/outcomeevent"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// OutcomeEventUpdate is the builder for updating OutcomeEvent entities.
type OutcomeEventUpdate struct {
	config
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// Where appends a list predicates to the OutcomeEventUpdate builder.
func (oeu *OutcomeEventUpdate) Where(ps ...predicate.OutcomeEvent) *OutcomeEventUpdate {
	oeu.mutation.Where(ps...)
	return oeu
}

// SetUserID sets the "user_id" field.
func (oeu *OutcomeEventUpdate) SetUserID(s string) *OutcomeEventUpdate {
	oeu.mutation.SetUserID(s)
	return oeu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillableUserID(s *string) *OutcomeEventUpdate {
	if s != nil {
		oeu.SetUserID(*s)
	}
	return oeu
}

// SetSkillID sets the "skill_id" field.
func (oeu *OutcomeEventUpdate) SetSkillID(s string) *OutcomeEventUpdate {
	oeu.mutation.SetSkillID(s)
	return oeu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillableSkillID(s *string) *OutcomeEventUpdate {
	if s != nil {
		oeu.SetSkillID(*s)
	}
	return oeu
}

// SetPlanID sets the "plan_id" field.
func (oeu *OutcomeEventUpdate) SetPlanID(s string) *OutcomeEventUpdate {
	oeu.mutation.SetPlanID(s)
	return oeu
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillablePlanID(s *string) *OutcomeEventUpdate {
	if s != nil {
		oeu.SetPlanID(*s)
	}
	return oeu
}

// SetAssignmentID sets the "assignment_id" field.
func (oeu *OutcomeEventUpdate) SetAssignmentID(s string) *OutcomeEventUpdate {
	oeu.mutation.SetAssignmentID(s)
	return oeu
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillableAssignmentID(s *string) *OutcomeEventUpdate {
	if s != nil {
		oeu.SetAssignmentID(*s)
	}
	return oeu
}

// SetItemID sets the "item_id" field.
func (oeu *OutcomeEventUpdate) SetItemID(s string) *OutcomeEventUpdate {
	oeu.mutation.SetItemID(s)
	return oeu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillableItemID(s *string) *OutcomeEventUpdate {
	if s != nil {
		oeu.SetItemID(*s)
	}
	return oeu
}

// SetSuccess sets the "success" field.
func (oeu *OutcomeEventUpdate) SetSuccess(b bool) *OutcomeEventUpdate {
	oeu.mutation.SetSuccess(b)
	return oeu
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillableSuccess(b *bool) *OutcomeEventUpdate {
	if b != nil {
		oeu.SetSuccess(*b)
	}
	return oeu
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (oeu *OutcomeEventUpdate) SetTimeSpentMinutes(i int) *OutcomeEventUpdate {
	oeu.mutation.ResetTimeSpentMinutes()
	oeu.mutation.SetTimeSpentMinutes(i)
	return oeu
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillableTimeSpentMinutes(i *int) *OutcomeEventUpdate {
	if i != nil {
		oeu.SetTimeSpentMinutes(*i)
	}
	return oeu
}

// AddTimeSpentMinutes adds i to the "time_spent_minutes" field.
func (oeu *OutcomeEventUpdate) AddTimeSpentMinutes(i int) *OutcomeEventUpdate {
	oeu.mutation.AddTimeSpentMinutes(i)
	return oeu
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (oeu *OutcomeEventUpdate) SetEstimatedMinutes(i int) *OutcomeEventUpdate {
	oeu.mutation.ResetEstimatedMinutes()
	oeu.mutation.SetEstimatedMinutes(i)
	return oeu
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillableEstimatedMinutes(i *int) *OutcomeEventUpdate {
	if i != nil {
		oeu.SetEstimatedMinutes(*i)
	}
	return oeu
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (oeu *OutcomeEventUpdate) AddEstimatedMinutes(i int) *OutcomeEventUpdate {
	oeu.mutation.AddEstimatedMinutes(i)
	return oeu
}

// SetHintsUsed sets the "hints_used" field.
func (oeu *OutcomeEventUpdate) SetHintsUsed(i int) *OutcomeEventUpdate {
	oeu.mutation.ResetHintsUsed()
	oeu.mutation.SetHintsUsed(i)
	return oeu
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillableHintsUsed(i *int) *OutcomeEventUpdate {
	if i != nil {
		oeu.SetHintsUsed(*i)
	}
	return oeu
}

// AddHintsUsed adds i to the "hints_used" field.
func (oeu *OutcomeEventUpdate) AddHintsUsed(i int) *OutcomeEventUpdate {
	oeu.mutation.AddHintsUsed(i)
	return oeu
}

// SetSignal sets the "signal" field.
func (oeu *OutcomeEventUpdate) SetSignal(f float64) *OutcomeEventUpdate {
	oeu.mutation.ResetSignal()
	oeu.mutation.SetSignal(f)
	return oeu
}

// SetNillableSignal sets the "signal" field if the given value is not nil.
func (oeu *OutcomeEventUpdate) SetNillableSignal(f *float64) *OutcomeEventUpdate {
	if f != nil {
		oeu.SetSignal(*f)
	}
	return oeu
}

// AddSignal adds f to the "signal" field.
func (oeu *OutcomeEventUpdate) AddSignal(f float64) *OutcomeEventUpdate {
	oeu.mutation.AddSignal(f)
	return oeu
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (oeu *OutcomeEventUpdate) Mutation() *OutcomeEventMutation {
	return oeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (oeu *OutcomeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, oeu.sqlSave, oeu.mutation, oeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (oeu *OutcomeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := oeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (oeu *OutcomeEventUpdate) Exec(ctx context.Context) error {
	_, err := oeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oeu *OutcomeEventUpdate) ExecX(ctx context.Context) {
	if err := oeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (oeu *OutcomeEventUpdate) check() error {
	if v, ok := oeu.mutation.UserID(); ok {
		if err := outcomeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := oeu.mutation.SkillID(); ok {
		if err := outcomeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := oeu.mutation.PlanID(); ok {
		if err := outcomeevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := oeu.mutation.AssignmentID(); ok {
		if err := outcomeevent.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.assignment_id": %w`, err)}
		}
	}
	if v, ok := oeu.mutation.ItemID(); ok {
		if err := outcomeevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.item_id": %w`, err)}
		}
	}
	if v, ok := oeu.mutation.TimeSpentMinutes(); ok {
		if err := outcomeevent.TimeSpentMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_minutes", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.time_spent_minutes": %w`, err)}
		}
	}
	if v, ok := oeu.mutation.EstimatedMinutes(); ok {
		if err := outcomeevent.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.estimated_minutes": %w`, err)}
		}
	}
	if v, ok := oeu.mutation.HintsUsed(); ok {
		if err := outcomeevent.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.hints_used": %w`, err)}
		}
	}
	return nil
}

func (oeu *OutcomeEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := oeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomeevent.Table, outcomeevent.Columns, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	if ps := oeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := oeu.mutation.UserID(); ok {
		_spec.SetField(outcomeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := oeu.mutation.SkillID(); ok {
		_spec.SetField(outcomeevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := oeu.mutation.PlanID(); ok {
		_spec.SetField(outcomeevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := oeu.mutation.AssignmentID(); ok {
		_spec.SetField(outcomeevent.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := oeu.mutation.ItemID(); ok {
		_spec.SetField(outcomeevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := oeu.mutation.Success(); ok {
		_spec.SetField(outcomeevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := oeu.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := oeu.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := oeu.mutation.EstimatedMinutes(); ok {
		_spec.SetField(outcomeevent.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := oeu.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(outcomeevent.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := oeu.mutation.HintsUsed(); ok {
		_spec.SetField(outcomeevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := oeu.mutation.AddedHintsUsed(); ok {
		_spec.AddField(outcomeevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := oeu.mutation.Signal(); ok {
		_spec.SetField(outcomeevent.FieldSignal, field.TypeFloat64, value)
	}
	if value, ok := oeu.mutation.AddedSignal(); ok {
		_spec.AddField(outcomeevent.FieldSignal, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, oeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	oeu.mutation.done = true
	return n, nil
}

// OutcomeEventUpdateOne is the builder for updating a single OutcomeEvent entity.
type OutcomeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// SetUserID sets the "user_id" field.
func (oeuo *OutcomeEventUpdateOne) SetUserID(s string) *OutcomeEventUpdateOne {
	oeuo.mutation.SetUserID(s)
	return oeuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillableUserID(s *string) *OutcomeEventUpdateOne {
	if s != nil {
		oeuo.SetUserID(*s)
	}
	return oeuo
}

// SetSkillID sets the "skill_id" field.
func (oeuo *OutcomeEventUpdateOne) SetSkillID(s string) *OutcomeEventUpdateOne {
	oeuo.mutation.SetSkillID(s)
	return oeuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillableSkillID(s *string) *OutcomeEventUpdateOne {
	if s != nil {
		oeuo.SetSkillID(*s)
	}
	return oeuo
}

// SetPlanID sets the "plan_id" field.
func (oeuo *OutcomeEventUpdateOne) SetPlanID(s string) *OutcomeEventUpdateOne {
	oeuo.mutation.SetPlanID(s)
	return oeuo
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillablePlanID(s *string) *OutcomeEventUpdateOne {
	if s != nil {
		oeuo.SetPlanID(*s)
	}
	return oeuo
}

// SetAssignmentID sets the "assignment_id" field.
func (oeuo *OutcomeEventUpdateOne) SetAssignmentID(s string) *OutcomeEventUpdateOne {
	oeuo.mutation.SetAssignmentID(s)
	return oeuo
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillableAssignmentID(s *string) *OutcomeEventUpdateOne {
	if s != nil {
		oeuo.SetAssignmentID(*s)
	}
	return oeuo
}

// SetItemID sets the "item_id" field.
func (oeuo *OutcomeEventUpdateOne) SetItemID(s string) *OutcomeEventUpdateOne {
	oeuo.mutation.SetItemID(s)
	return oeuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillableItemID(s *string) *OutcomeEventUpdateOne {
	if s != nil {
		oeuo.SetItemID(*s)
	}
	return oeuo
}

// SetSuccess sets the "success" field.
func (oeuo *OutcomeEventUpdateOne) SetSuccess(b bool) *OutcomeEventUpdateOne {
	oeuo.mutation.SetSuccess(b)
	return oeuo
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillableSuccess(b *bool) *OutcomeEventUpdateOne {
	if b != nil {
		oeuo.SetSuccess(*b)
	}
	return oeuo
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (oeuo *OutcomeEventUpdateOne) SetTimeSpentMinutes(i int) *OutcomeEventUpdateOne {
	oeuo.mutation.ResetTimeSpentMinutes()
	oeuo.mutation.SetTimeSpentMinutes(i)
	return oeuo
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillableTimeSpentMinutes(i *int) *OutcomeEventUpdateOne {
	if i != nil {
		oeuo.SetTimeSpentMinutes(*i)
	}
	return oeuo
}

// AddTimeSpentMinutes adds i to the "time_spent_minutes" field.
func (oeuo *OutcomeEventUpdateOne) AddTimeSpentMinutes(i int) *OutcomeEventUpdateOne {
	oeuo.mutation.AddTimeSpentMinutes(i)
	return oeuo
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (oeuo *OutcomeEventUpdateOne) SetEstimatedMinutes(i int) *OutcomeEventUpdateOne {
	oeuo.mutation.ResetEstimatedMinutes()
	oeuo.mutation.SetEstimatedMinutes(i)
	return oeuo
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillableEstimatedMinutes(i *int) *OutcomeEventUpdateOne {
	if i != nil {
		oeuo.SetEstimatedMinutes(*i)
	}
	return oeuo
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (oeuo *OutcomeEventUpdateOne) AddEstimatedMinutes(i int) *OutcomeEventUpdateOne {
	oeuo.mutation.AddEstimatedMinutes(i)
	return oeuo
}

// SetHintsUsed sets the "hints_used" field.
func (oeuo *OutcomeEventUpdateOne) SetHintsUsed(i int) *OutcomeEventUpdateOne {
	oeuo.mutation.ResetHintsUsed()
	oeuo.mutation.SetHintsUsed(i)
	return oeuo
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillableHintsUsed(i *int) *OutcomeEventUpdateOne {
	if i != nil {
		oeuo.SetHintsUsed(*i)
	}
	return oeuo
}

// AddHintsUsed adds i to the "hints_used" field.
func (oeuo *OutcomeEventUpdateOne) AddHintsUsed(i int) *OutcomeEventUpdateOne {
	oeuo.mutation.AddHintsUsed(i)
	return oeuo
}

// SetSignal sets the "signal" field.
func (oeuo *OutcomeEventUpdateOne) SetSignal(f float64) *OutcomeEventUpdateOne {
	oeuo.mutation.ResetSignal()
	oeuo.mutation.SetSignal(f)
	return oeuo
}

// SetNillableSignal sets the "signal" field if the given value is not nil.
func (oeuo *OutcomeEventUpdateOne) SetNillableSignal(f *float64) *OutcomeEventUpdateOne {
	if f != nil {
		oeuo.SetSignal(*f)
	}
	return oeuo
}

// AddSignal adds f to the "signal" field.
func (oeuo *OutcomeEventUpdateOne) AddSignal(f float64) *OutcomeEventUpdateOne {
	oeuo.mutation.AddSignal(f)
	return oeuo
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (oeuo *OutcomeEventUpdateOne) Mutation() *OutcomeEventMutation {
	return oeuo.mutation
}

// Where appends a list predicates to the OutcomeEventUpdate builder.
func (oeuo *OutcomeEventUpdateOne) Where(ps ...predicate.OutcomeEvent) *OutcomeEventUpdateOne {
	oeuo.mutation.Where(ps...)
	return oeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (oeuo *OutcomeEventUpdateOne) Select(field string, fields ...string) *OutcomeEventUpdateOne {
	oeuo.fields = append([]string{field}, fields...)
	return oeuo
}

// Save executes the query and returns the updated OutcomeEvent entity.
func (oeuo *OutcomeEventUpdateOne) Save(ctx context.Context) (*OutcomeEvent, error) {
	return withHooks(ctx, oeuo.sqlSave, oeuo.mutation, oeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (oeuo *OutcomeEventUpdateOne) SaveX(ctx context.Context) *OutcomeEvent {
	node, err := oeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (oeuo *OutcomeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := oeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oeuo *OutcomeEventUpdateOne) ExecX(ctx context.Context) {
	if err := oeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (oeuo *OutcomeEventUpdateOne) check() error {
	if v, ok := oeuo.mutation.UserID(); ok {
		if err := outcomeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := oeuo.mutation.SkillID(); ok {
		if err := outcomeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := oeuo.mutation.PlanID(); ok {
		if err := outcomeevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := oeuo.mutation.AssignmentID(); ok {
		if err := outcomeevent.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.assignment_id": %w`, err)}
		}
	}
	if v, ok := oeuo.mutation.ItemID(); ok {
		if err := outcomeevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.item_id": %w`, err)}
		}
	}
	if v, ok := oeuo.mutation.TimeSpentMinutes(); ok {
		if err := outcomeevent.TimeSpentMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_minutes", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.time_spent_minutes": %w`, err)}
		}
	}
	if v, ok := oeuo.mutation.EstimatedMinutes(); ok {
		if err := outcomeevent.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.estimated_minutes": %w`, err)}
		}
	}
	if v, ok := oeuo.mutation.HintsUsed(); ok {
		if err := outcomeevent.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.hints_used": %w`, err)}
		}
	}
	return nil
}

func (oeuo *OutcomeEventUpdateOne) sqlSave(ctx context.Context) (_node *OutcomeEvent, err error) {
	if err := oeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomeevent.Table, outcomeevent.Columns, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	id, ok := oeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutcomeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := oeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outcomeevent.FieldID)
		for _, f := range fields {
			if !outcomeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outcomeevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := oeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := oeuo.mutation.UserID(); ok {
		_spec.SetField(outcomeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := oeuo.mutation.SkillID(); ok {
		_spec.SetField(outcomeevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := oeuo.mutation.PlanID(); ok {
		_spec.SetField(outcomeevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := oeuo.mutation.AssignmentID(); ok {
		_spec.SetField(outcomeevent.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := oeuo.mutation.ItemID(); ok {
		_spec.SetField(outcomeevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := oeuo.mutation.Success(); ok {
		_spec.SetField(outcomeevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := oeuo.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := oeuo.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := oeuo.mutation.EstimatedMinutes(); ok {
		_spec.SetField(outcomeevent.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := oeuo.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(outcomeevent.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := oeuo.mutation.HintsUsed(); ok {
		_spec.SetField(outcomeevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := oeuo.mutation.AddedHintsUsed(); ok {
		_spec.AddField(outcomeevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := oeuo.mutation.Signal(); ok {
		_spec.SetField(outcomeevent.FieldSignal, field.TypeFloat64, value)
	}
	if value, ok := oeuo.mutation.AddedSignal(); ok {
		_spec.AddField(outcomeevent.FieldSignal, field.TypeFloat64, value)
	}
	_node = &OutcomeEvent{config: oeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, oeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	oeuo.mutation.done = true
	return _node, nil
}
