// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/adaptationevent"
)

// AdaptationEventCreate is the builder for creating a AdaptationEvent entity.
type AdaptationEventCreate struct {
	config
	mutation *AdaptationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (aec *AdaptationEventCreate) SetSequence(i int64) *AdaptationEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetOccurredAt sets the "occurred_at" field.
func (aec *AdaptationEventCreate) SetOccurredAt(t time.Time) *AdaptationEventCreate {
	aec.mutation.SetOccurredAt(t)
	return aec
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (aec *AdaptationEventCreate) SetNillableOccurredAt(t *time.Time) *AdaptationEventCreate {
	if t != nil {
		aec.SetOccurredAt(*t)
	}
	return aec
}

// SetUserID sets the "user_id" field.
func (aec *AdaptationEventCreate) SetUserID(s string) *AdaptationEventCreate {
	aec.mutation.SetUserID(s)
	return aec
}

// SetPlanID sets the "plan_id" field.
func (aec *AdaptationEventCreate) SetPlanID(s string) *AdaptationEventCreate {
	aec.mutation.SetPlanID(s)
	return aec
}

// SetSkillID sets the "skill_id" field.
func (aec *AdaptationEventCreate) SetSkillID(s string) *AdaptationEventCreate {
	aec.mutation.SetSkillID(s)
	return aec
}

// SetTrigger sets the "trigger" field.
func (aec *AdaptationEventCreate) SetTrigger(s string) *AdaptationEventCreate {
	aec.mutation.SetTrigger(s)
	return aec
}

// SetReason sets the "reason" field.
func (aec *AdaptationEventCreate) SetReason(s string) *AdaptationEventCreate {
	aec.mutation.SetReason(s)
	return aec
}

// SetInsertedItems sets the "inserted_items" field.
func (aec *AdaptationEventCreate) SetInsertedItems(s []string) *AdaptationEventCreate {
	aec.mutation.SetInsertedItems(s)
	return aec
}

// SetSkippedItems sets the "skipped_items" field.
func (aec *AdaptationEventCreate) SetSkippedItems(s []string) *AdaptationEventCreate {
	aec.mutation.SetSkippedItems(s)
	return aec
}

// SetDurationWeeks sets the "duration_weeks" field.
func (aec *AdaptationEventCreate) SetDurationWeeks(i int) *AdaptationEventCreate {
	aec.mutation.SetDurationWeeks(i)
	return aec
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (aec *AdaptationEventCreate) Mutation() *AdaptationEventMutation {
	return aec.mutation
}

// Save creates the AdaptationEvent in the database.
func (aec *AdaptationEventCreate) Save(ctx context.Context) (*AdaptationEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AdaptationEventCreate) SaveX(ctx context.Context) *AdaptationEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AdaptationEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AdaptationEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AdaptationEventCreate) defaults() {
	if _, ok := aec.mutation.OccurredAt(); !ok {
		v := adaptationevent.DefaultOccurredAt()
		aec.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AdaptationEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AdaptationEvent.sequence"`)}
	}
	if _, ok := aec.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "AdaptationEvent.occurred_at"`)}
	}
	if _, ok := aec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AdaptationEvent.user_id"`)}
	}
	if v, ok := aec.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "AdaptationEvent.plan_id"`)}
	}
	if v, ok := aec.mutation.PlanID(); ok {
		if err := adaptationevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.plan_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "AdaptationEvent.skill_id"`)}
	}
	if v, ok := aec.mutation.SkillID(); ok {
		if err := adaptationevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "AdaptationEvent.trigger"`)}
	}
	if v, ok := aec.mutation.Trigger(); ok {
		if err := adaptationevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.trigger": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "AdaptationEvent.reason"`)}
	}
	if v, ok := aec.mutation.Reason(); ok {
		if err := adaptationevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.reason": %w`, err)}
		}
	}
	if _, ok := aec.mutation.DurationWeeks(); !ok {
		return &ValidationError{Name: "duration_weeks", err: errors.New(`ent: missing required field "AdaptationEvent.duration_weeks"`)}
	}
	if v, ok := aec.mutation.DurationWeeks(); ok {
		if err := adaptationevent.DurationWeeksValidator(v); err != nil {
			return &ValidationError{Name: "duration_weeks", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.duration_weeks": %w`, err)}
		}
	}
	return nil
}

func (aec *AdaptationEventCreate) sqlSave(ctx context.Context) (*AdaptationEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AdaptationEventCreate) createSpec() (*AdaptationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AdaptationEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(adaptationevent.Table, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(adaptationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.OccurredAt(); ok {
		_spec.SetField(adaptationevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := aec.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := aec.mutation.PlanID(); ok {
		_spec.SetField(adaptationevent.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := aec.mutation.SkillID(); ok {
		_spec.SetField(adaptationevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := aec.mutation.Trigger(); ok {
		_spec.SetField(adaptationevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := aec.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := aec.mutation.InsertedItems(); ok {
		_spec.SetField(adaptationevent.FieldInsertedItems, field.TypeJSON, value)
		_node.InsertedItems = value
	}
	if value, ok := aec.mutation.SkippedItems(); ok {
		_spec.SetField(adaptationevent.FieldSkippedItems, field.TypeJSON, value)
		_node.SkippedItems = value
	}
	if value, ok := aec.mutation.DurationWeeks(); ok {
		_spec.SetField(adaptationevent.FieldDurationWeeks, field.TypeInt, value)
		_node.DurationWeeks = value
	}
	return _node, _spec
}

// AdaptationEventCreateBulk is the builder for creating many AdaptationEvent entities in bulk.
type AdaptationEventCreateBulk struct {
	config
	err      error
	builders []*AdaptationEventCreate
}

// Save creates the AdaptationEvent entities in the database.
func (aecb *AdaptationEventCreateBulk) Save(ctx context.Context) ([]*AdaptationEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AdaptationEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdaptationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AdaptationEventCreateBulk) SaveX(ctx context.Context) []*AdaptationEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AdaptationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AdaptationEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
