// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/adaptationevent"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// AdaptationEventDelete is the builder for deleting a AdaptationEvent entity.
type AdaptationEventDelete struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventDelete builder.
func (aed *AdaptationEventDelete) Where(ps ...predicate.AdaptationEvent) *AdaptationEventDelete {
	aed.mutation.Where(ps...)
	return aed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (aed *AdaptationEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, aed.sqlExec, aed.mutation, aed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (aed *AdaptationEventDelete) ExecX(ctx context.Context) int {
	n, err := aed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (aed *AdaptationEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(adaptationevent.Table, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := aed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, aed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	aed.mutation.done = true
	return affected, err
}

// AdaptationEventDeleteOne is the builder for deleting a single AdaptationEvent entity.
type AdaptationEventDeleteOne struct {
	aed *AdaptationEventDelete
}

// Where appends a list predicates to the AdaptationEventDelete builder.
func (aedo *AdaptationEventDeleteOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventDeleteOne {
	aedo.aed.mutation.Where(ps...)
	return aedo
}

// Exec executes the deletion query.
func (aedo *AdaptationEventDeleteOne) Exec(ctx context.Context) error {
	n, err := aedo.aed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{adaptationevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (aedo *AdaptationEventDeleteOne) ExecX(ctx context.Context) {
	if err := aedo.Exec(ctx); err != nil {
		panic(err)
	}
}
