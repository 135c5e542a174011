// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/outcomeevent"
)

// OutcomeEventCreate is the builder for creating a OutcomeEvent entity.
type OutcomeEventCreate struct {
	config
	mutation *OutcomeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (oec *OutcomeEventCreate) SetSequence(i int64) *OutcomeEventCreate {
	oec.mutation.SetSequence(i)
	return oec
}

// SetOccurredAt sets the "occurred_at" field.
func (oec *OutcomeEventCreate) SetOccurredAt(t time.Time) *OutcomeEventCreate {
	oec.mutation.SetOccurredAt(t)
	return oec
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (oec *OutcomeEventCreate) SetNillableOccurredAt(t *time.Time) *OutcomeEventCreate {
	if t != nil {
		oec.SetOccurredAt(*t)
	}
	return oec
}

// SetUserID sets the "user_id" field.
func (oec *OutcomeEventCreate) SetUserID(s string) *OutcomeEventCreate {
	oec.mutation.SetUserID(s)
	return oec
}

// SetSkillID sets the "skill_id" field.
func (oec *OutcomeEventCreate) SetSkillID(s string) *OutcomeEventCreate {
	oec.mutation.SetSkillID(s)
	return oec
}

// SetPlanID sets the "plan_id" field.
func (oec *OutcomeEventCreate) SetPlanID(s string) *OutcomeEventCreate {
	oec.mutation.SetPlanID(s)
	return oec
}

// SetAssignmentID sets the "assignment_id" field.
func (oec *OutcomeEventCreate) SetAssignmentID(s string) *OutcomeEventCreate {
	oec.mutation.SetAssignmentID(s)
	return oec
}

// SetItemID sets the "item_id" field.
func (oec *OutcomeEventCreate) SetItemID(s string) *OutcomeEventCreate {
	oec.mutation.SetItemID(s)
	return oec
}

// SetSuccess sets the "success" field.
func (oec *OutcomeEventCreate) SetSuccess(b bool) *OutcomeEventCreate {
	oec.mutation.SetSuccess(b)
	return oec
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (oec *OutcomeEventCreate) SetTimeSpentMinutes(i int) *OutcomeEventCreate {
	oec.mutation.SetTimeSpentMinutes(i)
	return oec
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (oec *OutcomeEventCreate) SetEstimatedMinutes(i int) *OutcomeEventCreate {
	oec.mutation.SetEstimatedMinutes(i)
	return oec
}

// SetHintsUsed sets the "hints_used" field.
func (oec *OutcomeEventCreate) SetHintsUsed(i int) *OutcomeEventCreate {
	oec.mutation.SetHintsUsed(i)
	return oec
}

// SetSignal sets the "signal" field.
func (oec *OutcomeEventCreate) SetSignal(f float64) *OutcomeEventCreate {
	oec.mutation.SetSignal(f)
	return oec
}

// Mutation returns the OutcomeEventMutation object of the builder.
func (oec *OutcomeEventCreate) Mutation() *OutcomeEventMutation {
	return oec.mutation
}

// Save creates the OutcomeEvent in the database.
func (oec *OutcomeEventCreate) Save(ctx context.Context) (*OutcomeEvent, error) {
	oec.defaults()
	return withHooks(ctx, oec.sqlSave, oec.mutation, oec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (oec *OutcomeEventCreate) SaveX(ctx context.Context) *OutcomeEvent {
	v, err := oec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (oec *OutcomeEventCreate) Exec(ctx context.Context) error {
	_, err := oec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oec *OutcomeEventCreate) ExecX(ctx context.Context) {
	if err := oec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (oec *OutcomeEventCreate) defaults() {
	if _, ok := oec.mutation.OccurredAt(); !ok {
		v := outcomeevent.DefaultOccurredAt()
		oec.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (oec *OutcomeEventCreate) check() error {
	if _, ok := oec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "OutcomeEvent.sequence"`)}
	}
	if _, ok := oec.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "OutcomeEvent.occurred_at"`)}
	}
	if _, ok := oec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "OutcomeEvent.user_id"`)}
	}
	if v, ok := oec.mutation.UserID(); ok {
		if err := outcomeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.user_id": %w`, err)}
		}
	}
	if _, ok := oec.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "OutcomeEvent.skill_id"`)}
	}
	if v, ok := oec.mutation.SkillID(); ok {
		if err := outcomeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := oec.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "OutcomeEvent.plan_id"`)}
	}
	if v, ok := oec.mutation.PlanID(); ok {
		if err := outcomeevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.plan_id": %w`, err)}
		}
	}
	if _, ok := oec.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "OutcomeEvent.assignment_id"`)}
	}
	if v, ok := oec.mutation.AssignmentID(); ok {
		if err := outcomeevent.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.assignment_id": %w`, err)}
		}
	}
	if _, ok := oec.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "OutcomeEvent.item_id"`)}
	}
	if v, ok := oec.mutation.ItemID(); ok {
		if err := outcomeevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.item_id": %w`, err)}
		}
	}
	if _, ok := oec.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "OutcomeEvent.success"`)}
	}
	if _, ok := oec.mutation.TimeSpentMinutes(); !ok {
		return &ValidationError{Name: "time_spent_minutes", err: errors.New(`ent: missing required field "OutcomeEvent.time_spent_minutes"`)}
	}
	if v, ok := oec.mutation.TimeSpentMinutes(); ok {
		if err := outcomeevent.TimeSpentMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_minutes", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.time_spent_minutes": %w`, err)}
		}
	}
	if _, ok := oec.mutation.EstimatedMinutes(); !ok {
		return &ValidationError{Name: "estimated_minutes", err: errors.New(`ent: missing required field "OutcomeEvent.estimated_minutes"`)}
	}
	if v, ok := oec.mutation.EstimatedMinutes(); ok {
		if err := outcomeevent.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.estimated_minutes": %w`, err)}
		}
	}
	if _, ok := oec.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "OutcomeEvent.hints_used"`)}
	}
	if v, ok := oec.mutation.HintsUsed(); ok {
		if err := outcomeevent.HintsUsedValidator(v); err != nil {
			return &ValidationError{Name: "hints_used", err: fmt.Errorf(`ent: validator failed for field "OutcomeEvent.hints_used": %w`, err)}
		}
	}
	if _, ok := oec.mutation.Signal(); !ok {
		return &ValidationError{Name: "signal", err: errors.New(`ent: missing required field "OutcomeEvent.signal"`)}
	}
	return nil
}

func (oec *OutcomeEventCreate) sqlSave(ctx context.Context) (*OutcomeEvent, error) {
	if err := oec.check(); err != nil {
		return nil, err
	}
	_node, _spec := oec.createSpec()
	if err := sqlgraph.CreateNode(ctx, oec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	oec.mutation.id = &_node.ID
	oec.mutation.done = true
	return _node, nil
}

func (oec *OutcomeEventCreate) createSpec() (*OutcomeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &OutcomeEvent{config: oec.config}
		_spec = sqlgraph.NewCreateSpec(outcomeevent.Table, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	)
	if value, ok := oec.mutation.Sequence(); ok {
		_spec.SetField(outcomeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := oec.mutation.OccurredAt(); ok {
		_spec.SetField(outcomeevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := oec.mutation.UserID(); ok {
		_spec.SetField(outcomeevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := oec.mutation.SkillID(); ok {
		_spec.SetField(outcomeevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := oec.mutation.PlanID(); ok {
		_spec.SetField(outcomeevent.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := oec.mutation.AssignmentID(); ok {
		_spec.SetField(outcomeevent.FieldAssignmentID, field.TypeString, value)
		_node.AssignmentID = value
	}
	if value, ok := oec.mutation.ItemID(); ok {
		_spec.SetField(outcomeevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := oec.mutation.Success(); ok {
		_spec.SetField(outcomeevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := oec.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(outcomeevent.FieldTimeSpentMinutes, field.TypeInt, value)
		_node.TimeSpentMinutes = value
	}
	if value, ok := oec.mutation.EstimatedMinutes(); ok {
		_spec.SetField(outcomeevent.FieldEstimatedMinutes, field.TypeInt, value)
		_node.EstimatedMinutes = value
	}
	if value, ok := oec.mutation.HintsUsed(); ok {
		_spec.SetField(outcomeevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := oec.mutation.Signal(); ok {
		_spec.SetField(outcomeevent.FieldSignal, field.TypeFloat64, value)
		_node.Signal = value
	}
	return _node, _spec
}

// OutcomeEventCreateBulk is the builder for creating many OutcomeEvent entities in bulk.
type OutcomeEventCreateBulk struct {
	config
	err      error
	builders []*OutcomeEventCreate
}

// Save creates the OutcomeEvent entities in the database.
func (oecb *OutcomeEventCreateBulk) Save(ctx context.Context) ([]*OutcomeEvent, error) {
	if oecb.err != nil {
		return nil, oecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(oecb.builders))
	nodes := make([]*OutcomeEvent, len(oecb.builders))
	mutators := make([]Mutator, len(oecb.builders))
	for i := range oecb.builders {
		func(i int, root context.Context) {
			builder := oecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutcomeEventMutation)
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
					_, err = mutators[i+1].Mutate(root, oecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, oecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, oecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (oecb *OutcomeEventCreateBulk) SaveX(ctx context.Context) []*OutcomeEvent {
	v, err := oecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (oecb *OutcomeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := oecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (oecb *OutcomeEventCreateBulk) ExecX(ctx context.Context) {
	if err := oecb.Exec(ctx); err != nil {
		panic(err)
	}
}
