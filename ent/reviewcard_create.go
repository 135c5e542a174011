// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/reviewcard"
)

// ReviewCardCreate is the builder for creating a ReviewCard entity.
type ReviewCardCreate struct {
	config
	mutation *ReviewCardMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (rcc *ReviewCardCreate) SetUserID(s string) *ReviewCardCreate {
	rcc.mutation.SetUserID(s)
	return rcc
}

// SetSkillID sets the "skill_id" field.
func (rcc *ReviewCardCreate) SetSkillID(s string) *ReviewCardCreate {
	rcc.mutation.SetSkillID(s)
	return rcc
}

// SetIntervalDays sets the "interval_days" field.
func (rcc *ReviewCardCreate) SetIntervalDays(f float64) *ReviewCardCreate {
	rcc.mutation.SetIntervalDays(f)
	return rcc
}

// SetEase sets the "ease" field.
func (rcc *ReviewCardCreate) SetEase(f float64) *ReviewCardCreate {
	rcc.mutation.SetEase(f)
	return rcc
}

// SetRepetitions sets the "repetitions" field.
func (rcc *ReviewCardCreate) SetRepetitions(i int) *ReviewCardCreate {
	rcc.mutation.SetRepetitions(i)
	return rcc
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (rcc *ReviewCardCreate) SetNillableRepetitions(i *int) *ReviewCardCreate {
	if i != nil {
		rcc.SetRepetitions(*i)
	}
	return rcc
}

// SetLapses sets the "lapses" field.
func (rcc *ReviewCardCreate) SetLapses(i int) *ReviewCardCreate {
	rcc.mutation.SetLapses(i)
	return rcc
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (rcc *ReviewCardCreate) SetNillableLapses(i *int) *ReviewCardCreate {
	if i != nil {
		rcc.SetLapses(*i)
	}
	return rcc
}

// SetLastReviewAt sets the "last_review_at" field.
func (rcc *ReviewCardCreate) SetLastReviewAt(t time.Time) *ReviewCardCreate {
	rcc.mutation.SetLastReviewAt(t)
	return rcc
}

// SetNextReviewAt sets the "next_review_at" field.
func (rcc *ReviewCardCreate) SetNextReviewAt(t time.Time) *ReviewCardCreate {
	rcc.mutation.SetNextReviewAt(t)
	return rcc
}

// Mutation returns the ReviewCardMutation object of the builder.
func (rcc *ReviewCardCreate) Mutation() *ReviewCardMutation {
	return rcc.mutation
}

// Save creates the ReviewCard in the database.
func (rcc *ReviewCardCreate) Save(ctx context.Context) (*ReviewCard, error) {
	rcc.defaults()
	return withHooks(ctx, rcc.sqlSave, rcc.mutation, rcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rcc *ReviewCardCreate) SaveX(ctx context.Context) *ReviewCard {
	v, err := rcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcc *ReviewCardCreate) Exec(ctx context.Context) error {
	_, err := rcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcc *ReviewCardCreate) ExecX(ctx context.Context) {
	if err := rcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rcc *ReviewCardCreate) defaults() {
	if _, ok := rcc.mutation.Repetitions(); !ok {
		v := reviewcard.DefaultRepetitions
		rcc.mutation.SetRepetitions(v)
	}
	if _, ok := rcc.mutation.Lapses(); !ok {
		v := reviewcard.DefaultLapses
		rcc.mutation.SetLapses(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rcc *ReviewCardCreate) check() error {
	if _, ok := rcc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewCard.user_id"`)}
	}
	if v, ok := rcc.mutation.UserID(); ok {
		if err := reviewcard.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.user_id": %w`, err)}
		}
	}
	if _, ok := rcc.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "ReviewCard.skill_id"`)}
	}
	if v, ok := rcc.mutation.SkillID(); ok {
		if err := reviewcard.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.skill_id": %w`, err)}
		}
	}
	if _, ok := rcc.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewCard.interval_days"`)}
	}
	if _, ok := rcc.mutation.Ease(); !ok {
		return &ValidationError{Name: "ease", err: errors.New(`ent: missing required field "ReviewCard.ease"`)}
	}
	if _, ok := rcc.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "ReviewCard.repetitions"`)}
	}
	if v, ok := rcc.mutation.Repetitions(); ok {
		if err := reviewcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.repetitions": %w`, err)}
		}
	}
	if _, ok := rcc.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "ReviewCard.lapses"`)}
	}
	if v, ok := rcc.mutation.Lapses(); ok {
		if err := reviewcard.LapsesValidator(v); err != nil {
			return &ValidationError{Name: "lapses", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.lapses": %w`, err)}
		}
	}
	if _, ok := rcc.mutation.LastReviewAt(); !ok {
		return &ValidationError{Name: "last_review_at", err: errors.New(`ent: missing required field "ReviewCard.last_review_at"`)}
	}
	if _, ok := rcc.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "ReviewCard.next_review_at"`)}
	}
	return nil
}

func (rcc *ReviewCardCreate) sqlSave(ctx context.Context) (*ReviewCard, error) {
	if err := rcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rcc.mutation.id = &_node.ID
	rcc.mutation.done = true
	return _node, nil
}

func (rcc *ReviewCardCreate) createSpec() (*ReviewCard, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewCard{config: rcc.config}
		_spec = sqlgraph.NewCreateSpec(reviewcard.Table, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	)
	if value, ok := rcc.mutation.UserID(); ok {
		_spec.SetField(reviewcard.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := rcc.mutation.SkillID(); ok {
		_spec.SetField(reviewcard.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := rcc.mutation.IntervalDays(); ok {
		_spec.SetField(reviewcard.FieldIntervalDays, field.TypeFloat64, value)
		_node.IntervalDays = value
	}
	if value, ok := rcc.mutation.Ease(); ok {
		_spec.SetField(reviewcard.FieldEase, field.TypeFloat64, value)
		_node.Ease = value
	}
	if value, ok := rcc.mutation.Repetitions(); ok {
		_spec.SetField(reviewcard.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := rcc.mutation.Lapses(); ok {
		_spec.SetField(reviewcard.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	if value, ok := rcc.mutation.LastReviewAt(); ok {
		_spec.SetField(reviewcard.FieldLastReviewAt, field.TypeTime, value)
		_node.LastReviewAt = value
	}
	if value, ok := rcc.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewcard.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	return _node, _spec
}

// ReviewCardCreateBulk is the builder for creating many ReviewCard entities in bulk.
type ReviewCardCreateBulk struct {
	config
	err      error
	builders []*ReviewCardCreate
}

// Save creates the ReviewCard entities in the database.
func (rccb *ReviewCardCreateBulk) Save(ctx context.Context) ([]*ReviewCard, error) {
	if rccb.err != nil {
		return nil, rccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rccb.builders))
	nodes := make([]*ReviewCard, len(rccb.builders))
	mutators := make([]Mutator, len(rccb.builders))
	for i := range rccb.builders {
		func(i int, root context.Context) {
			builder := rccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewCardMutation)
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
					_, err = mutators[i+1].Mutate(root, rccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rccb *ReviewCardCreateBulk) SaveX(ctx context.Context) []*ReviewCard {
	v, err := rccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rccb *ReviewCardCreateBulk) Exec(ctx context.Context) error {
	_, err := rccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rccb *ReviewCardCreateBulk) ExecX(ctx context.Context) {
	if err := rccb.Exec(ctx); err != nil {
		panic(err)
	}
}
