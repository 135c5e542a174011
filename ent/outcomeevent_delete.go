// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/outcomeevent"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// OutcomeEventDelete is the builder for deleting a OutcomeEvent entity.
type OutcomeEventDelete struct {
	config
	hooks    []Hook
	mutation *OutcomeEventMutation
}

// Where appends a list predicates to the OutcomeEventDelete builder.
func (oed *OutcomeEventDelete) Where(ps ...predicate.OutcomeEvent) *OutcomeEventDelete {
	oed.mutation.Where(ps...)
	return oed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (oed *OutcomeEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, oed.sqlExec, oed.mutation, oed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (oed *OutcomeEventDelete) ExecX(ctx context.Context) int {
	n, err := oed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (oed *OutcomeEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(outcomeevent.Table, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	if ps := oed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, oed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	oed.mutation.done = true
	return affected, err
}

// OutcomeEventDeleteOne is the builder for deleting a single OutcomeEvent entity.
type OutcomeEventDeleteOne struct {
	oed *OutcomeEventDelete
}

// Where appends a list predicates to the OutcomeEventDelete builder.
func (oedo *OutcomeEventDeleteOne) Where(ps ...predicate.OutcomeEvent) *OutcomeEventDeleteOne {
	oedo.oed.mutation.Where(ps...)
	return oedo
}

// Exec executes the deletion query.
func (oedo *OutcomeEventDeleteOne) Exec(ctx context.Context) error {
	n, err := oedo.oed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{outcomeevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (oedo *OutcomeEventDeleteOne) ExecX(ctx context.Context) {
	if err := oedo.Exec(ctx); err != nil {
		panic(err)
	}
}
