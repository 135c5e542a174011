// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/pathplan"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
)

// PathPlanCreate is the builder for creating a PathPlan entity.
type PathPlanCreate struct {
	config
	mutation *PathPlanMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (ppc *PathPlanCreate) SetPlanID(s string) *PathPlanCreate {
	ppc.mutation.SetPlanID(s)
	return ppc
}

// SetUserID sets the "user_id" field.
func (ppc *PathPlanCreate) SetUserID(s string) *PathPlanCreate {
	ppc.mutation.SetUserID(s)
	return ppc
}

// SetGoal sets the "goal" field.
func (ppc *PathPlanCreate) SetGoal(pl planner.Goal) *PathPlanCreate {
	ppc.mutation.SetGoal(pl)
	return ppc
}

// SetDurationWeeks sets the "duration_weeks" field.
func (ppc *PathPlanCreate) SetDurationWeeks(i int) *PathPlanCreate {
	ppc.mutation.SetDurationWeeks(i)
	return ppc
}

// SetHoursPerWeek sets the "hours_per_week" field.
func (ppc *PathPlanCreate) SetHoursPerWeek(i int) *PathPlanCreate {
	ppc.mutation.SetHoursPerWeek(i)
	return ppc
}

// SetStatus sets the "status" field.
func (ppc *PathPlanCreate) SetStatus(s string) *PathPlanCreate {
	ppc.mutation.SetStatus(s)
	return ppc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ppc *PathPlanCreate) SetNillableStatus(s *string) *PathPlanCreate {
	if s != nil {
		ppc.SetStatus(*s)
	}
	return ppc
}

// SetPartial sets the "partial" field.
func (ppc *PathPlanCreate) SetPartial(b bool) *PathPlanCreate {
	ppc.mutation.SetPartial(b)
	return ppc
}

// SetNillablePartial sets the "partial" field if the given value is not nil.
func (ppc *PathPlanCreate) SetNillablePartial(b *bool) *PathPlanCreate {
	if b != nil {
		ppc.SetPartial(*b)
	}
	return ppc
}

// SetPartialReasons sets the "partial_reasons" field.
func (ppc *PathPlanCreate) SetPartialReasons(pr []planner.RelaxationReason) *PathPlanCreate {
	ppc.mutation.SetPartialReasons(pr)
	return ppc
}

// SetAssignments sets the "assignments" field.
func (ppc *PathPlanCreate) SetAssignments(pl []planner.Assignment) *PathPlanCreate {
	ppc.mutation.SetAssignments(pl)
	return ppc
}

// SetMilestones sets the "milestones" field.
func (ppc *PathPlanCreate) SetMilestones(pl []planner.Milestone) *PathPlanCreate {
	ppc.mutation.SetMilestones(pl)
	return ppc
}

// SetAdaptationLog sets the "adaptation_log" field.
func (ppc *PathPlanCreate) SetAdaptationLog(pe []planner.AdaptationEntry) *PathPlanCreate {
	ppc.mutation.SetAdaptationLog(pe)
	return ppc
}

// SetDifficultyBoost sets the "difficulty_boost" field.
func (ppc *PathPlanCreate) SetDifficultyBoost(m map[string]int) *PathPlanCreate {
	ppc.mutation.SetDifficultyBoost(m)
	return ppc
}

// SetCreatedAt sets the "created_at" field.
func (ppc *PathPlanCreate) SetCreatedAt(t time.Time) *PathPlanCreate {
	ppc.mutation.SetCreatedAt(t)
	return ppc
}

// SetUpdatedAt sets the "updated_at" field.
func (ppc *PathPlanCreate) SetUpdatedAt(t time.Time) *PathPlanCreate {
	ppc.mutation.SetUpdatedAt(t)
	return ppc
}

// Mutation returns the PathPlanMutation object of the builder.
func (ppc *PathPlanCreate) Mutation() *PathPlanMutation {
	return ppc.mutation
}

// Save creates the PathPlan in the database.
func (ppc *PathPlanCreate) Save(ctx context.Context) (*PathPlan, error) {
	ppc.defaults()
	return withHooks(ctx, ppc.sqlSave, ppc.mutation, ppc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ppc *PathPlanCreate) SaveX(ctx context.Context) *PathPlan {
	v, err := ppc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ppc *PathPlanCreate) Exec(ctx context.Context) error {
	_, err := ppc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ppc *PathPlanCreate) ExecX(ctx context.Context) {
	if err := ppc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ppc *PathPlanCreate) defaults() {
	if _, ok := ppc.mutation.Status(); !ok {
		v := pathplan.DefaultStatus
		ppc.mutation.SetStatus(v)
	}
	if _, ok := ppc.mutation.Partial(); !ok {
		v := pathplan.DefaultPartial
		ppc.mutation.SetPartial(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ppc *PathPlanCreate) check() error {
	if _, ok := ppc.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "PathPlan.plan_id"`)}
	}
	if v, ok := ppc.mutation.PlanID(); ok {
		if err := pathplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PathPlan.plan_id": %w`, err)}
		}
	}
	if _, ok := ppc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PathPlan.user_id"`)}
	}
	if v, ok := ppc.mutation.UserID(); ok {
		if err := pathplan.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PathPlan.user_id": %w`, err)}
		}
	}
	if _, ok := ppc.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "PathPlan.goal"`)}
	}
	if _, ok := ppc.mutation.DurationWeeks(); !ok {
		return &ValidationError{Name: "duration_weeks", err: errors.New(`ent: missing required field "PathPlan.duration_weeks"`)}
	}
	if v, ok := ppc.mutation.DurationWeeks(); ok {
		if err := pathplan.DurationWeeksValidator(v); err != nil {
			return &ValidationError{Name: "duration_weeks", err: fmt.Errorf(`ent: validator failed for field "PathPlan.duration_weeks": %w`, err)}
		}
	}
	if _, ok := ppc.mutation.HoursPerWeek(); !ok {
		return &ValidationError{Name: "hours_per_week", err: errors.New(`ent: missing required field "PathPlan.hours_per_week"`)}
	}
	if v, ok := ppc.mutation.HoursPerWeek(); ok {
		if err := pathplan.HoursPerWeekValidator(v); err != nil {
			return &ValidationError{Name: "hours_per_week", err: fmt.Errorf(`ent: validator failed for field "PathPlan.hours_per_week": %w`, err)}
		}
	}
	if _, ok := ppc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PathPlan.status"`)}
	}
	if _, ok := ppc.mutation.Partial(); !ok {
		return &ValidationError{Name: "partial", err: errors.New(`ent: missing required field "PathPlan.partial"`)}
	}
	if _, ok := ppc.mutation.Assignments(); !ok {
		return &ValidationError{Name: "assignments", err: errors.New(`ent: missing required field "PathPlan.assignments"`)}
	}
	if _, ok := ppc.mutation.Milestones(); !ok {
		return &ValidationError{Name: "milestones", err: errors.New(`ent: missing required field "PathPlan.milestones"`)}
	}
	if _, ok := ppc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PathPlan.created_at"`)}
	}
	if _, ok := ppc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PathPlan.updated_at"`)}
	}
	return nil
}

func (ppc *PathPlanCreate) sqlSave(ctx context.Context) (*PathPlan, error) {
	if err := ppc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ppc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ppc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ppc.mutation.id = &_node.ID
	ppc.mutation.done = true
	return _node, nil
}

func (ppc *PathPlanCreate) createSpec() (*PathPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &PathPlan{config: ppc.config}
		_spec = sqlgraph.NewCreateSpec(pathplan.Table, sqlgraph.NewFieldSpec(pathplan.FieldID, field.TypeInt))
	)
	if value, ok := ppc.mutation.PlanID(); ok {
		_spec.SetField(pathplan.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := ppc.mutation.UserID(); ok {
		_spec.SetField(pathplan.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := ppc.mutation.Goal(); ok {
		_spec.SetField(pathplan.FieldGoal, field.TypeJSON, value)
		_node.Goal = value
	}
	if value, ok := ppc.mutation.DurationWeeks(); ok {
		_spec.SetField(pathplan.FieldDurationWeeks, field.TypeInt, value)
		_node.DurationWeeks = value
	}
	if value, ok := ppc.mutation.HoursPerWeek(); ok {
		_spec.SetField(pathplan.FieldHoursPerWeek, field.TypeInt, value)
		_node.HoursPerWeek = value
	}
	if value, ok := ppc.mutation.Status(); ok {
		_spec.SetField(pathplan.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ppc.mutation.Partial(); ok {
		_spec.SetField(pathplan.FieldPartial, field.TypeBool, value)
		_node.Partial = value
	}
	if value, ok := ppc.mutation.PartialReasons(); ok {
		_spec.SetField(pathplan.FieldPartialReasons, field.TypeJSON, value)
		_node.PartialReasons = value
	}
	if value, ok := ppc.mutation.Assignments(); ok {
		_spec.SetField(pathplan.FieldAssignments, field.TypeJSON, value)
		_node.Assignments = value
	}
	if value, ok := ppc.mutation.Milestones(); ok {
		_spec.SetField(pathplan.FieldMilestones, field.TypeJSON, value)
		_node.Milestones = value
	}
	if value, ok := ppc.mutation.AdaptationLog(); ok {
		_spec.SetField(pathplan.FieldAdaptationLog, field.TypeJSON, value)
		_node.AdaptationLog = value
	}
	if value, ok := ppc.mutation.DifficultyBoost(); ok {
		_spec.SetField(pathplan.FieldDifficultyBoost, field.TypeJSON, value)
		_node.DifficultyBoost = value
	}
	if value, ok := ppc.mutation.CreatedAt(); ok {
		_spec.SetField(pathplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ppc.mutation.UpdatedAt(); ok {
		_spec.SetField(pathplan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PathPlanCreateBulk is the builder for creating many PathPlan entities in bulk.
type PathPlanCreateBulk struct {
	config
	err      error
	builders []*PathPlanCreate
}

// Save creates the PathPlan entities in the database.
func (ppcb *PathPlanCreateBulk) Save(ctx context.Context) ([]*PathPlan, error) {
	if ppcb.err != nil {
		return nil, ppcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ppcb.builders))
	nodes := make([]*PathPlan, len(ppcb.builders))
	mutators := make([]Mutator, len(ppcb.builders))
	for i := range ppcb.builders {
		func(i int, root context.Context) {
			builder := ppcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathPlanMutation)
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
					_, err = mutators[i+1].Mutate(root, ppcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ppcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ppcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ppcb *PathPlanCreateBulk) SaveX(ctx context.Context) []*PathPlan {
	v, err := ppcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ppcb *PathPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := ppcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ppcb *PathPlanCreateBulk) ExecX(ctx context.Context) {
	if err := ppcb.Exec(ctx); err != nil {
		panic(err)
	}
}
