// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/adaptationevent"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// AdaptationEventUpdate is the builder for updating AdaptationEvent entities.
type AdaptationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (aeu *AdaptationEventUpdate) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetUserID sets the "user_id" field.
func (aeu *AdaptationEventUpdate) SetUserID(s string) *AdaptationEventUpdate {
	aeu.mutation.SetUserID(s)
	return aeu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aeu *AdaptationEventUpdate) SetNillableUserID(s *string) *AdaptationEventUpdate {
	if s != nil {
		aeu.SetUserID(*s)
	}
	return aeu
}

// SetPlanID sets the "plan_id" field.
func (aeu *AdaptationEventUpdate) SetPlanID(s string) *AdaptationEventUpdate {
	aeu.mutation.SetPlanID(s)
	return aeu
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (aeu *AdaptationEventUpdate) SetNillablePlanID(s *string) *AdaptationEventUpdate {
	if s != nil {
		aeu.SetPlanID(*s)
	}
	return aeu
}

// SetSkillID sets the "skill_id" field.
func (aeu *AdaptationEventUpdate) SetSkillID(s string) *AdaptationEventUpdate {
	aeu.mutation.SetSkillID(s)
	return aeu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (aeu *AdaptationEventUpdate) SetNillableSkillID(s *string) *AdaptationEventUpdate {
	if s != nil {
		aeu.SetSkillID(*s)
	}
	return aeu
}

// SetTrigger sets the "trigger" field.
func (aeu *AdaptationEventUpdate) SetTrigger(s string) *AdaptationEventUpdate {
	aeu.mutation.SetTrigger(s)
	return aeu
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (aeu *AdaptationEventUpdate) SetNillableTrigger(s *string) *AdaptationEventUpdate {
	if s != nil {
		aeu.SetTrigger(*s)
	}
	return aeu
}

// SetReason sets the "reason" field.
func (aeu *AdaptationEventUpdate) SetReason(s string) *AdaptationEventUpdate {
	aeu.mutation.SetReason(s)
	return aeu
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (aeu *AdaptationEventUpdate) SetNillableReason(s *string) *AdaptationEventUpdate {
	if s != nil {
		aeu.SetReason(*s)
	}
	return aeu
}

// SetInsertedItems sets the "inserted_items" field.
func (aeu *AdaptationEventUpdate) SetInsertedItems(s []string) *AdaptationEventUpdate {
	aeu.mutation.SetInsertedItems(s)
	return aeu
}

// AppendInsertedItems appends s to the "inserted_items" field.
func (aeu *AdaptationEventUpdate) AppendInsertedItems(s []string) *AdaptationEventUpdate {
	aeu.mutation.AppendInsertedItems(s)
	return aeu
}

// ClearInsertedItems clears the value of the "inserted_items" field.
func (aeu *AdaptationEventUpdate) ClearInsertedItems() *AdaptationEventUpdate {
	aeu.mutation.ClearInsertedItems()
	return aeu
}

// SetSkippedItems sets the "skipped_items" field.
func (aeu *AdaptationEventUpdate) SetSkippedItems(s []string) *AdaptationEventUpdate {
	aeu.mutation.SetSkippedItems(s)
	return aeu
}

// AppendSkippedItems appends s to the "skipped_items" field.
func (aeu *AdaptationEventUpdate) AppendSkippedItems(s []string) *AdaptationEventUpdate {
	aeu.mutation.AppendSkippedItems(s)
	return aeu
}

// ClearSkippedItems clears the value of the "skipped_items" field.
func (aeu *AdaptationEventUpdate) ClearSkippedItems() *AdaptationEventUpdate {
	aeu.mutation.ClearSkippedItems()
	return aeu
}

// SetDurationWeeks sets the "duration_weeks" field.
func (aeu *AdaptationEventUpdate) SetDurationWeeks(i int) *AdaptationEventUpdate {
	aeu.mutation.ResetDurationWeeks()
	aeu.mutation.SetDurationWeeks(i)
	return aeu
}

// SetNillableDurationWeeks sets the "duration_weeks" field if the given value is not nil.
func (aeu *AdaptationEventUpdate) SetNillableDurationWeeks(i *int) *AdaptationEventUpdate {
	if i != nil {
		aeu.SetDurationWeeks(*i)
	}
	return aeu
}

// AddDurationWeeks adds i to the "duration_weeks" field.
func (aeu *AdaptationEventUpdate) AddDurationWeeks(i int) *AdaptationEventUpdate {
	aeu.mutation.AddDurationWeeks(i)
	return aeu
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (aeu *AdaptationEventUpdate) Mutation() *AdaptationEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AdaptationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AdaptationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AdaptationEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AdaptationEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AdaptationEventUpdate) check() error {
	if v, ok := aeu.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.PlanID(); ok {
		if err := adaptationevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.SkillID(); ok {
		if err := adaptationevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Trigger(); ok {
		if err := adaptationevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.trigger": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Reason(); ok {
		if err := adaptationevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.reason": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.DurationWeeks(); ok {
		if err := adaptationevent.DurationWeeksValidator(v); err != nil {
			return &ValidationError{Name: "duration_weeks", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.duration_weeks": %w`, err)}
		}
	}
	return nil
}

func (aeu *AdaptationEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.PlanID(); ok {
		_spec.SetField(adaptationevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.SkillID(); ok {
		_spec.SetField(adaptationevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Trigger(); ok {
		_spec.SetField(adaptationevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := aeu.mutation.InsertedItems(); ok {
		_spec.SetField(adaptationevent.FieldInsertedItems, field.TypeJSON, value)
	}
	if value, ok := aeu.mutation.AppendedInsertedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, adaptationevent.FieldInsertedItems, value)
		})
	}
	if aeu.mutation.InsertedItemsCleared() {
		_spec.ClearField(adaptationevent.FieldInsertedItems, field.TypeJSON)
	}
	if value, ok := aeu.mutation.SkippedItems(); ok {
		_spec.SetField(adaptationevent.FieldSkippedItems, field.TypeJSON, value)
	}
	if value, ok := aeu.mutation.AppendedSkippedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, adaptationevent.FieldSkippedItems, value)
		})
	}
	if aeu.mutation.SkippedItemsCleared() {
		_spec.ClearField(adaptationevent.FieldSkippedItems, field.TypeJSON)
	}
	if value, ok := aeu.mutation.DurationWeeks(); ok {
		_spec.SetField(adaptationevent.FieldDurationWeeks, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedDurationWeeks(); ok {
		_spec.AddField(adaptationevent.FieldDurationWeeks, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AdaptationEventUpdateOne is the builder for updating a single AdaptationEvent entity.
type AdaptationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// SetUserID sets the "user_id" field.
func (aeuo *AdaptationEventUpdateOne) SetUserID(s string) *AdaptationEventUpdateOne {
	aeuo.mutation.SetUserID(s)
	return aeuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aeuo *AdaptationEventUpdateOne) SetNillableUserID(s *string) *AdaptationEventUpdateOne {
	if s != nil {
		aeuo.SetUserID(*s)
	}
	return aeuo
}

// SetPlanID sets the "plan_id" field.
func (aeuo *AdaptationEventUpdateOne) SetPlanID(s string) *AdaptationEventUpdateOne {
	aeuo.mutation.SetPlanID(s)
	return aeuo
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (aeuo *AdaptationEventUpdateOne) SetNillablePlanID(s *string) *AdaptationEventUpdateOne {
	if s != nil {
		aeuo.SetPlanID(*s)
	}
	return aeuo
}

// SetSkillID sets the "skill_id" field.
func (aeuo *AdaptationEventUpdateOne) SetSkillID(s string) *AdaptationEventUpdateOne {
	aeuo.mutation.SetSkillID(s)
	return aeuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (aeuo *AdaptationEventUpdateOne) SetNillableSkillID(s *string) *AdaptationEventUpdateOne {
	if s != nil {
		aeuo.SetSkillID(*s)
	}
	return aeuo
}

// SetTrigger sets the "trigger" field.
func (aeuo *AdaptationEventUpdateOne) SetTrigger(s string) *AdaptationEventUpdateOne {
	aeuo.mutation.SetTrigger(s)
	return aeuo
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (aeuo *AdaptationEventUpdateOne) SetNillableTrigger(s *string) *AdaptationEventUpdateOne {
	if s != nil {
		aeuo.SetTrigger(*s)
	}
	return aeuo
}

// SetReason sets the "reason" field.
func (aeuo *AdaptationEventUpdateOne) SetReason(s string) *AdaptationEventUpdateOne {
	aeuo.mutation.SetReason(s)
	return aeuo
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (aeuo *AdaptationEventUpdateOne) SetNillableReason(s *string) *AdaptationEventUpdateOne {
	if s != nil {
		aeuo.SetReason(*s)
	}
	return aeuo
}

// SetInsertedItems sets the "inserted_items" field.
func (aeuo *AdaptationEventUpdateOne) SetInsertedItems(s []string) *AdaptationEventUpdateOne {
	aeuo.mutation.SetInsertedItems(s)
	return aeuo
}

// AppendInsertedItems appends s to the "inserted_items" field.
func (aeuo *AdaptationEventUpdateOne) AppendInsertedItems(s []string) *AdaptationEventUpdateOne {
	aeuo.mutation.AppendInsertedItems(s)
	return aeuo
}

// ClearInsertedItems clears the value of the "inserted_items" field.
func (aeuo *AdaptationEventUpdateOne) ClearInsertedItems() *AdaptationEventUpdateOne {
	aeuo.mutation.ClearInsertedItems()
	return aeuo
}

// SetSkippedItems sets the "skipped_items" field.
func (aeuo *AdaptationEventUpdateOne) SetSkippedItems(s []string) *AdaptationEventUpdateOne {
	aeuo.mutation.SetSkippedItems(s)
	return aeuo
}

// AppendSkippedItems appends s to the "skipped_items" field.
func (aeuo *AdaptationEventUpdateOne) AppendSkippedItems(s []string) *AdaptationEventUpdateOne {
	aeuo.mutation.AppendSkippedItems(s)
	return aeuo
}

// ClearSkippedItems clears the value of the "skipped_items" field.
func (aeuo *AdaptationEventUpdateOne) ClearSkippedItems() *AdaptationEventUpdateOne {
	aeuo.mutation.ClearSkippedItems()
	return aeuo
}

// SetDurationWeeks sets the "duration_weeks" field.
func (aeuo *AdaptationEventUpdateOne) SetDurationWeeks(i int) *AdaptationEventUpdateOne {
	aeuo.mutation.ResetDurationWeeks()
	aeuo.mutation.SetDurationWeeks(i)
	return aeuo
}

// SetNillableDurationWeeks sets the "duration_weeks" field if the given value is not nil.
func (aeuo *AdaptationEventUpdateOne) SetNillableDurationWeeks(i *int) *AdaptationEventUpdateOne {
	if i != nil {
		aeuo.SetDurationWeeks(*i)
	}
	return aeuo
}

// AddDurationWeeks adds i to the "duration_weeks" field.
func (aeuo *AdaptationEventUpdateOne) AddDurationWeeks(i int) *AdaptationEventUpdateOne {
	aeuo.mutation.AddDurationWeeks(i)
	return aeuo
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (aeuo *AdaptationEventUpdateOne) Mutation() *AdaptationEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (aeuo *AdaptationEventUpdateOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AdaptationEventUpdateOne) Select(field string, fields ...string) *AdaptationEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AdaptationEvent entity.
func (aeuo *AdaptationEventUpdateOne) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AdaptationEventUpdateOne) SaveX(ctx context.Context) *AdaptationEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AdaptationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AdaptationEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AdaptationEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.PlanID(); ok {
		if err := adaptationevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.SkillID(); ok {
		if err := adaptationevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Trigger(); ok {
		if err := adaptationevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.trigger": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Reason(); ok {
		if err := adaptationevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.reason": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.DurationWeeks(); ok {
		if err := adaptationevent.DurationWeeksValidator(v); err != nil {
			return &ValidationError{Name: "duration_weeks", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.duration_weeks": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AdaptationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdaptationEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for _, f := range fields {
			if !adaptationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.PlanID(); ok {
		_spec.SetField(adaptationevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.SkillID(); ok {
		_spec.SetField(adaptationevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Trigger(); ok {
		_spec.SetField(adaptationevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.InsertedItems(); ok {
		_spec.SetField(adaptationevent.FieldInsertedItems, field.TypeJSON, value)
	}
	if value, ok := aeuo.mutation.AppendedInsertedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, adaptationevent.FieldInsertedItems, value)
		})
	}
	if aeuo.mutation.InsertedItemsCleared() {
		_spec.ClearField(adaptationevent.FieldInsertedItems, field.TypeJSON)
	}
	if value, ok := aeuo.mutation.SkippedItems(); ok {
		_spec.SetField(adaptationevent.FieldSkippedItems, field.TypeJSON, value)
	}
	if value, ok := aeuo.mutation.AppendedSkippedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, adaptationevent.FieldSkippedItems, value)
		})
	}
	if aeuo.mutation.SkippedItemsCleared() {
		_spec.ClearField(adaptationevent.FieldSkippedItems, field.TypeJSON)
	}
	if value, ok := aeuo.mutation.DurationWeeks(); ok {
		_spec.SetField(adaptationevent.FieldDurationWeeks, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedDurationWeeks(); ok {
		_spec.AddField(adaptationevent.FieldDurationWeeks, field.TypeInt, value)
	}
	_node = &AdaptationEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
