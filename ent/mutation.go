// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/adaptationevent"
	"github.com/salmon302/DSATrain-sub001/ent/item"
	"github.com/salmon302/DSATrain-sub001/ent/outcomeevent"
	"github.com/salmon302/DSATrain-sub001/ent/pathplan"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
	"github.com/salmon302/DSATrain-sub001/ent/reviewcard"
	"github.com/salmon302/DSATrain-sub001/ent/skillmastery"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdaptationEvent = "AdaptationEvent"
	TypeItem            = "Item"
	TypeOutcomeEvent    = "OutcomeEvent"
	TypePathPlan        = "PathPlan"
	TypeReviewCard      = "ReviewCard"
	TypeSkillMastery    = "SkillMastery"
)

// AdaptationEventMutation represents an operation that mutates the AdaptationEvent nodes in the graph.
type AdaptationEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	sequence             *int64
	addsequence          *int64
	occurred_at          *time.Time
	user_id              *string
	plan_id              *string
	skill_id             *string
	trigger              *string
	reason               *string
	inserted_items       *[]string
	appendinserted_items []string
	skipped_items        *[]string
	appendskipped_items  []string
	duration_weeks       *int
	addduration_weeks    *int
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*AdaptationEvent, error)
	predicates           []predicate.AdaptationEvent
}

var _ ent.Mutation = (*AdaptationEventMutation)(nil)

// adaptationeventOption allows management of the mutation configuration using functional options.
type adaptationeventOption func(*AdaptationEventMutation)

// newAdaptationEventMutation creates new mutation for the AdaptationEvent entity.
func newAdaptationEventMutation(c config, op Op, opts ...adaptationeventOption) *AdaptationEventMutation {
	m := &AdaptationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAdaptationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdaptationEventID sets the ID field of the mutation.
func withAdaptationEventID(id int) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AdaptationEvent
		)
		m.oldValue = func(ctx context.Context) (*AdaptationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdaptationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdaptationEvent sets the old AdaptationEvent of the mutation.
func withAdaptationEvent(node *AdaptationEvent) adaptationeventOption {
	return func(m *AdaptationEventMutation) {
		m.oldValue = func(context.Context) (*AdaptationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdaptationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdaptationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdaptationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdaptationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdaptationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AdaptationEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AdaptationEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AdaptationEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AdaptationEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AdaptationEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *AdaptationEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *AdaptationEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *AdaptationEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetUserID sets the "user_id" field.
func (m *AdaptationEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AdaptationEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AdaptationEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetPlanID sets the "plan_id" field.
func (m *AdaptationEventMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *AdaptationEventMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *AdaptationEventMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *AdaptationEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *AdaptationEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *AdaptationEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetTrigger sets the "trigger" field.
func (m *AdaptationEventMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *AdaptationEventMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *AdaptationEventMutation) ResetTrigger() {
	m.trigger = nil
}

// SetReason sets the "reason" field.
func (m *AdaptationEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AdaptationEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *AdaptationEventMutation) ResetReason() {
	m.reason = nil
}

// SetInsertedItems sets the "inserted_items" field.
func (m *AdaptationEventMutation) SetInsertedItems(s []string) {
	m.inserted_items = &s
	m.appendinserted_items = nil
}

// InsertedItems returns the value of the "inserted_items" field in the mutation.
func (m *AdaptationEventMutation) InsertedItems() (r []string, exists bool) {
	v := m.inserted_items
	if v == nil {
		return
	}
	return *v, true
}

// OldInsertedItems returns the old "inserted_items" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldInsertedItems(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsertedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsertedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsertedItems: %w", err)
	}
	return oldValue.InsertedItems, nil
}

// AppendInsertedItems adds s to the "inserted_items" field.
func (m *AdaptationEventMutation) AppendInsertedItems(s []string) {
	m.appendinserted_items = append(m.appendinserted_items, s...)
}

// AppendedInsertedItems returns the list of values that were appended to the "inserted_items" field in this mutation.
func (m *AdaptationEventMutation) AppendedInsertedItems() ([]string, bool) {
	if len(m.appendinserted_items) == 0 {
		return nil, false
	}
	return m.appendinserted_items, true
}

// ClearInsertedItems clears the value of the "inserted_items" field.
func (m *AdaptationEventMutation) ClearInsertedItems() {
	m.inserted_items = nil
	m.appendinserted_items = nil
	m.clearedFields[adaptationevent.FieldInsertedItems] = struct{}{}
}

// InsertedItemsCleared returns if the "inserted_items" field was cleared in this mutation.
func (m *AdaptationEventMutation) InsertedItemsCleared() bool {
	_, ok := m.clearedFields[adaptationevent.FieldInsertedItems]
	return ok
}

// ResetInsertedItems resets all changes to the "inserted_items" field.
func (m *AdaptationEventMutation) ResetInsertedItems() {
	m.inserted_items = nil
	m.appendinserted_items = nil
	delete(m.clearedFields, adaptationevent.FieldInsertedItems)
}

// SetSkippedItems sets the "skipped_items" field.
func (m *AdaptationEventMutation) SetSkippedItems(s []string) {
	m.skipped_items = &s
	m.appendskipped_items = nil
}

// SkippedItems returns the value of the "skipped_items" field in the mutation.
func (m *AdaptationEventMutation) SkippedItems() (r []string, exists bool) {
	v := m.skipped_items
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedItems returns the old "skipped_items" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldSkippedItems(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedItems: %w", err)
	}
	return oldValue.SkippedItems, nil
}

// AppendSkippedItems adds s to the "skipped_items" field.
func (m *AdaptationEventMutation) AppendSkippedItems(s []string) {
	m.appendskipped_items = append(m.appendskipped_items, s...)
}

// AppendedSkippedItems returns the list of values that were appended to the "skipped_items" field in this mutation.
func (m *AdaptationEventMutation) AppendedSkippedItems() ([]string, bool) {
	if len(m.appendskipped_items) == 0 {
		return nil, false
	}
	return m.appendskipped_items, true
}

// ClearSkippedItems clears the value of the "skipped_items" field.
func (m *AdaptationEventMutation) ClearSkippedItems() {
	m.skipped_items = nil
	m.appendskipped_items = nil
	m.clearedFields[adaptationevent.FieldSkippedItems] = struct{}{}
}

// SkippedItemsCleared returns if the "skipped_items" field was cleared in this mutation.
func (m *AdaptationEventMutation) SkippedItemsCleared() bool {
	_, ok := m.clearedFields[adaptationevent.FieldSkippedItems]
	return ok
}

// ResetSkippedItems resets all changes to the "skipped_items" field.
func (m *AdaptationEventMutation) ResetSkippedItems() {
	m.skipped_items = nil
	m.appendskipped_items = nil
	delete(m.clearedFields, adaptationevent.FieldSkippedItems)
}

// SetDurationWeeks sets the "duration_weeks" field.
func (m *AdaptationEventMutation) SetDurationWeeks(i int) {
	m.duration_weeks = &i
	m.addduration_weeks = nil
}

// DurationWeeks returns the value of the "duration_weeks" field in the mutation.
func (m *AdaptationEventMutation) DurationWeeks() (r int, exists bool) {
	v := m.duration_weeks
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationWeeks returns the old "duration_weeks" field's value of the AdaptationEvent entity.
// If the AdaptationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdaptationEventMutation) OldDurationWeeks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationWeeks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationWeeks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationWeeks: %w", err)
	}
	return oldValue.DurationWeeks, nil
}

// AddDurationWeeks adds i to the "duration_weeks" field.
func (m *AdaptationEventMutation) AddDurationWeeks(i int) {
	if m.addduration_weeks != nil {
		*m.addduration_weeks += i
	} else {
		m.addduration_weeks = &i
	}
}

// AddedDurationWeeks returns the value that was added to the "duration_weeks" field in this mutation.
func (m *AdaptationEventMutation) AddedDurationWeeks() (r int, exists bool) {
	v := m.addduration_weeks
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationWeeks resets all changes to the "duration_weeks" field.
func (m *AdaptationEventMutation) ResetDurationWeeks() {
	m.duration_weeks = nil
	m.addduration_weeks = nil
}

// Where appends a list predicates to the AdaptationEventMutation builder.
func (m *AdaptationEventMutation) Where(ps ...predicate.AdaptationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdaptationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdaptationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdaptationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdaptationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdaptationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdaptationEvent).
func (m *AdaptationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdaptationEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, adaptationevent.FieldSequence)
	}
	if m.occurred_at != nil {
		fields = append(fields, adaptationevent.FieldOccurredAt)
	}
	if m.user_id != nil {
		fields = append(fields, adaptationevent.FieldUserID)
	}
	if m.plan_id != nil {
		fields = append(fields, adaptationevent.FieldPlanID)
	}
	if m.skill_id != nil {
		fields = append(fields, adaptationevent.FieldSkillID)
	}
	if m.trigger != nil {
		fields = append(fields, adaptationevent.FieldTrigger)
	}
	if m.reason != nil {
		fields = append(fields, adaptationevent.FieldReason)
	}
	if m.inserted_items != nil {
		fields = append(fields, adaptationevent.FieldInsertedItems)
	}
	if m.skipped_items != nil {
		fields = append(fields, adaptationevent.FieldSkippedItems)
	}
	if m.duration_weeks != nil {
		fields = append(fields, adaptationevent.FieldDurationWeeks)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdaptationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.Sequence()
	case adaptationevent.FieldOccurredAt:
		return m.OccurredAt()
	case adaptationevent.FieldUserID:
		return m.UserID()
	case adaptationevent.FieldPlanID:
		return m.PlanID()
	case adaptationevent.FieldSkillID:
		return m.SkillID()
	case adaptationevent.FieldTrigger:
		return m.Trigger()
	case adaptationevent.FieldReason:
		return m.Reason()
	case adaptationevent.FieldInsertedItems:
		return m.InsertedItems()
	case adaptationevent.FieldSkippedItems:
		return m.SkippedItems()
	case adaptationevent.FieldDurationWeeks:
		return m.DurationWeeks()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdaptationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.OldSequence(ctx)
	case adaptationevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case adaptationevent.FieldUserID:
		return m.OldUserID(ctx)
	case adaptationevent.FieldPlanID:
		return m.OldPlanID(ctx)
	case adaptationevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case adaptationevent.FieldTrigger:
		return m.OldTrigger(ctx)
	case adaptationevent.FieldReason:
		return m.OldReason(ctx)
	case adaptationevent.FieldInsertedItems:
		return m.OldInsertedItems(ctx)
	case adaptationevent.FieldSkippedItems:
		return m.OldSkippedItems(ctx)
	case adaptationevent.FieldDurationWeeks:
		return m.OldDurationWeeks(ctx)
	}
	return nil, fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case adaptationevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case adaptationevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case adaptationevent.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case adaptationevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case adaptationevent.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case adaptationevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case adaptationevent.FieldInsertedItems:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsertedItems(v)
		return nil
	case adaptationevent.FieldSkippedItems:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedItems(v)
		return nil
	case adaptationevent.FieldDurationWeeks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationWeeks(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdaptationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, adaptationevent.FieldSequence)
	}
	if m.addduration_weeks != nil {
		fields = append(fields, adaptationevent.FieldDurationWeeks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdaptationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case adaptationevent.FieldSequence:
		return m.AddedSequence()
	case adaptationevent.FieldDurationWeeks:
		return m.AddedDurationWeeks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdaptationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case adaptationevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case adaptationevent.FieldDurationWeeks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationWeeks(v)
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdaptationEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(adaptationevent.FieldInsertedItems) {
		fields = append(fields, adaptationevent.FieldInsertedItems)
	}
	if m.FieldCleared(adaptationevent.FieldSkippedItems) {
		fields = append(fields, adaptationevent.FieldSkippedItems)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdaptationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ClearField(name string) error {
	switch name {
	case adaptationevent.FieldInsertedItems:
		m.ClearInsertedItems()
		return nil
	case adaptationevent.FieldSkippedItems:
		m.ClearSkippedItems()
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdaptationEventMutation) ResetField(name string) error {
	switch name {
	case adaptationevent.FieldSequence:
		m.ResetSequence()
		return nil
	case adaptationevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case adaptationevent.FieldUserID:
		m.ResetUserID()
		return nil
	case adaptationevent.FieldPlanID:
		m.ResetPlanID()
		return nil
	case adaptationevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case adaptationevent.FieldTrigger:
		m.ResetTrigger()
		return nil
	case adaptationevent.FieldReason:
		m.ResetReason()
		return nil
	case adaptationevent.FieldInsertedItems:
		m.ResetInsertedItems()
		return nil
	case adaptationevent.FieldSkippedItems:
		m.ResetSkippedItems()
		return nil
	case adaptationevent.FieldDurationWeeks:
		m.ResetDurationWeeks()
		return nil
	}
	return fmt.Errorf("unknown AdaptationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdaptationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdaptationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdaptationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdaptationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdaptationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdaptationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdaptationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdaptationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdaptationEvent edge %s", name)
}

// ItemMutation represents an operation that mutates the Item nodes in the graph.
type ItemMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	item_id                *string
	skill_tags             *[]string
	appendskill_tags       []string
	difficulty_band        *string
	difficulty_sublevel    *int
	adddifficulty_sublevel *int
	quality_score          *float64
	addquality_score       *float64
	relevance_score        *float64
	addrelevance_score     *float64
	estimated_minutes      *int
	addestimated_minutes   *int
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Item, error)
	predicates             []predicate.Item
}

var _ ent.Mutation = (*ItemMutation)(nil)

// itemOption allows management of the mutation configuration using functional options.
type itemOption func(*ItemMutation)

// newItemMutation creates new mutation for the Item entity.
func newItemMutation(c config, op Op, opts ...itemOption) *ItemMutation {
	m := &ItemMutation{
		config:        c,
		op:            op,
		typ:           TypeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemID sets the ID field of the mutation.
func withItemID(id int) itemOption {
	return func(m *ItemMutation) {
		var (
			err   error
			once  sync.Once
			value *Item
		)
		m.oldValue = func(ctx context.Context) (*Item, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Item.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItem sets the old Item of the mutation.
func withItem(node *Item) itemOption {
	return func(m *ItemMutation) {
		m.oldValue = func(context.Context) (*Item, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Item.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *ItemMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ItemMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ItemMutation) ResetItemID() {
	m.item_id = nil
}

// SetSkillTags sets the "skill_tags" field.
func (m *ItemMutation) SetSkillTags(s []string) {
	m.skill_tags = &s
	m.appendskill_tags = nil
}

// SkillTags returns the value of the "skill_tags" field in the mutation.
func (m *ItemMutation) SkillTags() (r []string, exists bool) {
	v := m.skill_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillTags returns the old "skill_tags" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldSkillTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillTags: %w", err)
	}
	return oldValue.SkillTags, nil
}

// AppendSkillTags adds s to the "skill_tags" field.
func (m *ItemMutation) AppendSkillTags(s []string) {
	m.appendskill_tags = append(m.appendskill_tags, s...)
}

// AppendedSkillTags returns the list of values that were appended to the "skill_tags" field in this mutation.
func (m *ItemMutation) AppendedSkillTags() ([]string, bool) {
	if len(m.appendskill_tags) == 0 {
		return nil, false
	}
	return m.appendskill_tags, true
}

// ResetSkillTags resets all changes to the "skill_tags" field.
func (m *ItemMutation) ResetSkillTags() {
	m.skill_tags = nil
	m.appendskill_tags = nil
}

// SetDifficultyBand sets the "difficulty_band" field.
func (m *ItemMutation) SetDifficultyBand(s string) {
	m.difficulty_band = &s
}

// DifficultyBand returns the value of the "difficulty_band" field in the mutation.
func (m *ItemMutation) DifficultyBand() (r string, exists bool) {
	v := m.difficulty_band
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyBand returns the old "difficulty_band" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDifficultyBand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyBand: %w", err)
	}
	return oldValue.DifficultyBand, nil
}

// ResetDifficultyBand resets all changes to the "difficulty_band" field.
func (m *ItemMutation) ResetDifficultyBand() {
	m.difficulty_band = nil
}

// SetDifficultySublevel sets the "difficulty_sublevel" field.
func (m *ItemMutation) SetDifficultySublevel(i int) {
	m.difficulty_sublevel = &i
	m.adddifficulty_sublevel = nil
}

// DifficultySublevel returns the value of the "difficulty_sublevel" field in the mutation.
func (m *ItemMutation) DifficultySublevel() (r int, exists bool) {
	v := m.difficulty_sublevel
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultySublevel returns the old "difficulty_sublevel" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDifficultySublevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultySublevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultySublevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultySublevel: %w", err)
	}
	return oldValue.DifficultySublevel, nil
}

// AddDifficultySublevel adds i to the "difficulty_sublevel" field.
func (m *ItemMutation) AddDifficultySublevel(i int) {
	if m.adddifficulty_sublevel != nil {
		*m.adddifficulty_sublevel += i
	} else {
		m.adddifficulty_sublevel = &i
	}
}

// AddedDifficultySublevel returns the value that was added to the "difficulty_sublevel" field in this mutation.
func (m *ItemMutation) AddedDifficultySublevel() (r int, exists bool) {
	v := m.adddifficulty_sublevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultySublevel resets all changes to the "difficulty_sublevel" field.
func (m *ItemMutation) ResetDifficultySublevel() {
	m.difficulty_sublevel = nil
	m.adddifficulty_sublevel = nil
}

// SetQualityScore sets the "quality_score" field.
func (m *ItemMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *ItemMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *ItemMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *ItemMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *ItemMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *ItemMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *ItemMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldRelevanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *ItemMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *ItemMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *ItemMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (m *ItemMutation) SetEstimatedMinutes(i int) {
	m.estimated_minutes = &i
	m.addestimated_minutes = nil
}

// EstimatedMinutes returns the value of the "estimated_minutes" field in the mutation.
func (m *ItemMutation) EstimatedMinutes() (r int, exists bool) {
	v := m.estimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedMinutes returns the old "estimated_minutes" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldEstimatedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedMinutes: %w", err)
	}
	return oldValue.EstimatedMinutes, nil
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (m *ItemMutation) AddEstimatedMinutes(i int) {
	if m.addestimated_minutes != nil {
		*m.addestimated_minutes += i
	} else {
		m.addestimated_minutes = &i
	}
}

// AddedEstimatedMinutes returns the value that was added to the "estimated_minutes" field in this mutation.
func (m *ItemMutation) AddedEstimatedMinutes() (r int, exists bool) {
	v := m.addestimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedMinutes resets all changes to the "estimated_minutes" field.
func (m *ItemMutation) ResetEstimatedMinutes() {
	m.estimated_minutes = nil
	m.addestimated_minutes = nil
}

// Where appends a list predicates to the ItemMutation builder.
func (m *ItemMutation) Where(ps ...predicate.Item) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Item, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Item).
func (m *ItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.item_id != nil {
		fields = append(fields, item.FieldItemID)
	}
	if m.skill_tags != nil {
		fields = append(fields, item.FieldSkillTags)
	}
	if m.difficulty_band != nil {
		fields = append(fields, item.FieldDifficultyBand)
	}
	if m.difficulty_sublevel != nil {
		fields = append(fields, item.FieldDifficultySublevel)
	}
	if m.quality_score != nil {
		fields = append(fields, item.FieldQualityScore)
	}
	if m.relevance_score != nil {
		fields = append(fields, item.FieldRelevanceScore)
	}
	if m.estimated_minutes != nil {
		fields = append(fields, item.FieldEstimatedMinutes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case item.FieldItemID:
		return m.ItemID()
	case item.FieldSkillTags:
		return m.SkillTags()
	case item.FieldDifficultyBand:
		return m.DifficultyBand()
	case item.FieldDifficultySublevel:
		return m.DifficultySublevel()
	case item.FieldQualityScore:
		return m.QualityScore()
	case item.FieldRelevanceScore:
		return m.RelevanceScore()
	case item.FieldEstimatedMinutes:
		return m.EstimatedMinutes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case item.FieldItemID:
		return m.OldItemID(ctx)
	case item.FieldSkillTags:
		return m.OldSkillTags(ctx)
	case item.FieldDifficultyBand:
		return m.OldDifficultyBand(ctx)
	case item.FieldDifficultySublevel:
		return m.OldDifficultySublevel(ctx)
	case item.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case item.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	case item.FieldEstimatedMinutes:
		return m.OldEstimatedMinutes(ctx)
	}
	return nil, fmt.Errorf("unknown Item field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case item.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case item.FieldSkillTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillTags(v)
		return nil
	case item.FieldDifficultyBand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyBand(v)
		return nil
	case item.FieldDifficultySublevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultySublevel(v)
		return nil
	case item.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case item.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	case item.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty_sublevel != nil {
		fields = append(fields, item.FieldDifficultySublevel)
	}
	if m.addquality_score != nil {
		fields = append(fields, item.FieldQualityScore)
	}
	if m.addrelevance_score != nil {
		fields = append(fields, item.FieldRelevanceScore)
	}
	if m.addestimated_minutes != nil {
		fields = append(fields, item.FieldEstimatedMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case item.FieldDifficultySublevel:
		return m.AddedDifficultySublevel()
	case item.FieldQualityScore:
		return m.AddedQualityScore()
	case item.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	case item.FieldEstimatedMinutes:
		return m.AddedEstimatedMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case item.FieldDifficultySublevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultySublevel(v)
		return nil
	case item.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case item.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	case item.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Item numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Item nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemMutation) ResetField(name string) error {
	switch name {
	case item.FieldItemID:
		m.ResetItemID()
		return nil
	case item.FieldSkillTags:
		m.ResetSkillTags()
		return nil
	case item.FieldDifficultyBand:
		m.ResetDifficultyBand()
		return nil
	case item.FieldDifficultySublevel:
		m.ResetDifficultySublevel()
		return nil
	case item.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case item.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	case item.FieldEstimatedMinutes:
		m.ResetEstimatedMinutes()
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Item unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Item edge %s", name)
}

// OutcomeEventMutation represents an operation that mutates the OutcomeEvent nodes in the graph.
type OutcomeEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	occurred_at           *time.Time
	user_id               *string
	skill_id              *string
	plan_id               *string
	assignment_id         *string
	item_id               *string
	success               *bool
	time_spent_minutes    *int
	addtime_spent_minutes *int
	estimated_minutes     *int
	addestimated_minutes  *int
	hints_used            *int
	addhints_used         *int
	signal                *float64
	addsignal             *float64
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*OutcomeEvent, error)
	predicates            []predicate.OutcomeEvent
}

var _ ent.Mutation = (*OutcomeEventMutation)(nil)

// outcomeeventOption allows management of the mutation configuration using functional options.
type outcomeeventOption func(*OutcomeEventMutation)

// newOutcomeEventMutation creates new mutation for the OutcomeEvent entity.
func newOutcomeEventMutation(c config, op Op, opts ...outcomeeventOption) *OutcomeEventMutation {
	m := &OutcomeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeOutcomeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutcomeEventID sets the ID field of the mutation.
func withOutcomeEventID(id int) outcomeeventOption {
	return func(m *OutcomeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *OutcomeEvent
		)
		m.oldValue = func(ctx context.Context) (*OutcomeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutcomeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutcomeEvent sets the old OutcomeEvent of the mutation.
func withOutcomeEvent(node *OutcomeEvent) outcomeeventOption {
	return func(m *OutcomeEventMutation) {
		m.oldValue = func(context.Context) (*OutcomeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutcomeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutcomeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutcomeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutcomeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutcomeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *OutcomeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *OutcomeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *OutcomeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *OutcomeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *OutcomeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *OutcomeEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *OutcomeEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *OutcomeEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetUserID sets the "user_id" field.
func (m *OutcomeEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OutcomeEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OutcomeEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *OutcomeEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *OutcomeEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *OutcomeEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetPlanID sets the "plan_id" field.
func (m *OutcomeEventMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *OutcomeEventMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *OutcomeEventMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetAssignmentID sets the "assignment_id" field.
func (m *OutcomeEventMutation) SetAssignmentID(s string) {
	m.assignment_id = &s
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *OutcomeEventMutation) AssignmentID() (r string, exists bool) {
	v := m.assignment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldAssignmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *OutcomeEventMutation) ResetAssignmentID() {
	m.assignment_id = nil
}

// SetItemID sets the "item_id" field.
func (m *OutcomeEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *OutcomeEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *OutcomeEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetSuccess sets the "success" field.
func (m *OutcomeEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *OutcomeEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *OutcomeEventMutation) ResetSuccess() {
	m.success = nil
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (m *OutcomeEventMutation) SetTimeSpentMinutes(i int) {
	m.time_spent_minutes = &i
	m.addtime_spent_minutes = nil
}

// TimeSpentMinutes returns the value of the "time_spent_minutes" field in the mutation.
func (m *OutcomeEventMutation) TimeSpentMinutes() (r int, exists bool) {
	v := m.time_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMinutes returns the old "time_spent_minutes" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldTimeSpentMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMinutes: %w", err)
	}
	return oldValue.TimeSpentMinutes, nil
}

// AddTimeSpentMinutes adds i to the "time_spent_minutes" field.
func (m *OutcomeEventMutation) AddTimeSpentMinutes(i int) {
	if m.addtime_spent_minutes != nil {
		*m.addtime_spent_minutes += i
	} else {
		m.addtime_spent_minutes = &i
	}
}

// AddedTimeSpentMinutes returns the value that was added to the "time_spent_minutes" field in this mutation.
func (m *OutcomeEventMutation) AddedTimeSpentMinutes() (r int, exists bool) {
	v := m.addtime_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMinutes resets all changes to the "time_spent_minutes" field.
func (m *OutcomeEventMutation) ResetTimeSpentMinutes() {
	m.time_spent_minutes = nil
	m.addtime_spent_minutes = nil
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (m *OutcomeEventMutation) SetEstimatedMinutes(i int) {
	m.estimated_minutes = &i
	m.addestimated_minutes = nil
}

// EstimatedMinutes returns the value of the "estimated_minutes" field in the mutation.
func (m *OutcomeEventMutation) EstimatedMinutes() (r int, exists bool) {
	v := m.estimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedMinutes returns the old "estimated_minutes" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldEstimatedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedMinutes: %w", err)
	}
	return oldValue.EstimatedMinutes, nil
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (m *OutcomeEventMutation) AddEstimatedMinutes(i int) {
	if m.addestimated_minutes != nil {
		*m.addestimated_minutes += i
	} else {
		m.addestimated_minutes = &i
	}
}

// AddedEstimatedMinutes returns the value that was added to the "estimated_minutes" field in this mutation.
func (m *OutcomeEventMutation) AddedEstimatedMinutes() (r int, exists bool) {
	v := m.addestimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedMinutes resets all changes to the "estimated_minutes" field.
func (m *OutcomeEventMutation) ResetEstimatedMinutes() {
	m.estimated_minutes = nil
	m.addestimated_minutes = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *OutcomeEventMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *OutcomeEventMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *OutcomeEventMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *OutcomeEventMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *OutcomeEventMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// SetSignal sets the "signal" field.
func (m *OutcomeEventMutation) SetSignal(f float64) {
	m.signal = &f
	m.addsignal = nil
}

// Signal returns the value of the "signal" field in the mutation.
func (m *OutcomeEventMutation) Signal() (r float64, exists bool) {
	v := m.signal
	if v == nil {
		return
	}
	return *v, true
}

// OldSignal returns the old "signal" field's value of the OutcomeEvent entity.
// If the OutcomeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeEventMutation) OldSignal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignal: %w", err)
	}
	return oldValue.Signal, nil
}

// AddSignal adds f to the "signal" field.
func (m *OutcomeEventMutation) AddSignal(f float64) {
	if m.addsignal != nil {
		*m.addsignal += f
	} else {
		m.addsignal = &f
	}
}

// AddedSignal returns the value that was added to the "signal" field in this mutation.
func (m *OutcomeEventMutation) AddedSignal() (r float64, exists bool) {
	v := m.addsignal
	if v == nil {
		return
	}
	return *v, true
}

// ResetSignal resets all changes to the "signal" field.
func (m *OutcomeEventMutation) ResetSignal() {
	m.signal = nil
	m.addsignal = nil
}

// Where appends a list predicates to the OutcomeEventMutation builder.
func (m *OutcomeEventMutation) Where(ps ...predicate.OutcomeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutcomeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutcomeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutcomeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutcomeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutcomeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutcomeEvent).
func (m *OutcomeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutcomeEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, outcomeevent.FieldSequence)
	}
	if m.occurred_at != nil {
		fields = append(fields, outcomeevent.FieldOccurredAt)
	}
	if m.user_id != nil {
		fields = append(fields, outcomeevent.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, outcomeevent.FieldSkillID)
	}
	if m.plan_id != nil {
		fields = append(fields, outcomeevent.FieldPlanID)
	}
	if m.assignment_id != nil {
		fields = append(fields, outcomeevent.FieldAssignmentID)
	}
	if m.item_id != nil {
		fields = append(fields, outcomeevent.FieldItemID)
	}
	if m.success != nil {
		fields = append(fields, outcomeevent.FieldSuccess)
	}
	if m.time_spent_minutes != nil {
		fields = append(fields, outcomeevent.FieldTimeSpentMinutes)
	}
	if m.estimated_minutes != nil {
		fields = append(fields, outcomeevent.FieldEstimatedMinutes)
	}
	if m.hints_used != nil {
		fields = append(fields, outcomeevent.FieldHintsUsed)
	}
	if m.signal != nil {
		fields = append(fields, outcomeevent.FieldSignal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutcomeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outcomeevent.FieldSequence:
		return m.Sequence()
	case outcomeevent.FieldOccurredAt:
		return m.OccurredAt()
	case outcomeevent.FieldUserID:
		return m.UserID()
	case outcomeevent.FieldSkillID:
		return m.SkillID()
	case outcomeevent.FieldPlanID:
		return m.PlanID()
	case outcomeevent.FieldAssignmentID:
		return m.AssignmentID()
	case outcomeevent.FieldItemID:
		return m.ItemID()
	case outcomeevent.FieldSuccess:
		return m.Success()
	case outcomeevent.FieldTimeSpentMinutes:
		return m.TimeSpentMinutes()
	case outcomeevent.FieldEstimatedMinutes:
		return m.EstimatedMinutes()
	case outcomeevent.FieldHintsUsed:
		return m.HintsUsed()
	case outcomeevent.FieldSignal:
		return m.Signal()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutcomeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outcomeevent.FieldSequence:
		return m.OldSequence(ctx)
	case outcomeevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case outcomeevent.FieldUserID:
		return m.OldUserID(ctx)
	case outcomeevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case outcomeevent.FieldPlanID:
		return m.OldPlanID(ctx)
	case outcomeevent.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	case outcomeevent.FieldItemID:
		return m.OldItemID(ctx)
	case outcomeevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case outcomeevent.FieldTimeSpentMinutes:
		return m.OldTimeSpentMinutes(ctx)
	case outcomeevent.FieldEstimatedMinutes:
		return m.OldEstimatedMinutes(ctx)
	case outcomeevent.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	case outcomeevent.FieldSignal:
		return m.OldSignal(ctx)
	}
	return nil, fmt.Errorf("unknown OutcomeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outcomeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case outcomeevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case outcomeevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case outcomeevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case outcomeevent.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case outcomeevent.FieldAssignmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	case outcomeevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case outcomeevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case outcomeevent.FieldTimeSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMinutes(v)
		return nil
	case outcomeevent.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedMinutes(v)
		return nil
	case outcomeevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	case outcomeevent.FieldSignal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignal(v)
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutcomeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, outcomeevent.FieldSequence)
	}
	if m.addtime_spent_minutes != nil {
		fields = append(fields, outcomeevent.FieldTimeSpentMinutes)
	}
	if m.addestimated_minutes != nil {
		fields = append(fields, outcomeevent.FieldEstimatedMinutes)
	}
	if m.addhints_used != nil {
		fields = append(fields, outcomeevent.FieldHintsUsed)
	}
	if m.addsignal != nil {
		fields = append(fields, outcomeevent.FieldSignal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutcomeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outcomeevent.FieldSequence:
		return m.AddedSequence()
	case outcomeevent.FieldTimeSpentMinutes:
		return m.AddedTimeSpentMinutes()
	case outcomeevent.FieldEstimatedMinutes:
		return m.AddedEstimatedMinutes()
	case outcomeevent.FieldHintsUsed:
		return m.AddedHintsUsed()
	case outcomeevent.FieldSignal:
		return m.AddedSignal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outcomeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case outcomeevent.FieldTimeSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMinutes(v)
		return nil
	case outcomeevent.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedMinutes(v)
		return nil
	case outcomeevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	case outcomeevent.FieldSignal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSignal(v)
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutcomeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutcomeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutcomeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OutcomeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutcomeEventMutation) ResetField(name string) error {
	switch name {
	case outcomeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case outcomeevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case outcomeevent.FieldUserID:
		m.ResetUserID()
		return nil
	case outcomeevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case outcomeevent.FieldPlanID:
		m.ResetPlanID()
		return nil
	case outcomeevent.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	case outcomeevent.FieldItemID:
		m.ResetItemID()
		return nil
	case outcomeevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case outcomeevent.FieldTimeSpentMinutes:
		m.ResetTimeSpentMinutes()
		return nil
	case outcomeevent.FieldEstimatedMinutes:
		m.ResetEstimatedMinutes()
		return nil
	case outcomeevent.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	case outcomeevent.FieldSignal:
		m.ResetSignal()
		return nil
	}
	return fmt.Errorf("unknown OutcomeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutcomeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutcomeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutcomeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutcomeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutcomeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutcomeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutcomeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OutcomeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutcomeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OutcomeEvent edge %s", name)
}

// PathPlanMutation represents an operation that mutates the PathPlan nodes in the graph.
type PathPlanMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	plan_id               *string
	user_id               *string
	goal                  *planner.Goal
	duration_weeks        *int
	addduration_weeks     *int
	hours_per_week        *int
	addhours_per_week     *int
	status                *string
	partial               *bool
	partial_reasons       *[]planner.RelaxationReason
	appendpartial_reasons []planner.RelaxationReason
	assignments           *[]planner.Assignment
	appendassignments     []planner.Assignment
	milestones            *[]planner.Milestone
	appendmilestones      []planner.Milestone
	adaptation_log        *[]planner.AdaptationEntry
	appendadaptation_log  []planner.AdaptationEntry
	difficulty_boost      *map[string]int
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PathPlan, error)
	predicates            []predicate.PathPlan
}

var _ ent.Mutation = (*PathPlanMutation)(nil)

// pathplanOption allows management of the mutation configuration using functional options.
type pathplanOption func(*PathPlanMutation)

// newPathPlanMutation creates new mutation for the PathPlan entity.
func newPathPlanMutation(c config, op Op, opts ...pathplanOption) *PathPlanMutation {
	m := &PathPlanMutation{
		config:        c,
		op:            op,
		typ:           TypePathPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPathPlanID sets the ID field of the mutation.
func withPathPlanID(id int) pathplanOption {
	return func(m *PathPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *PathPlan
		)
		m.oldValue = func(ctx context.Context) (*PathPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PathPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPathPlan sets the old PathPlan of the mutation.
func withPathPlan(node *PathPlan) pathplanOption {
	return func(m *PathPlanMutation) {
		m.oldValue = func(context.Context) (*PathPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PathPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PathPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PathPlanMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PathPlanMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PathPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *PathPlanMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *PathPlanMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *PathPlanMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetUserID sets the "user_id" field.
func (m *PathPlanMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PathPlanMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PathPlanMutation) ResetUserID() {
	m.user_id = nil
}

// SetGoal sets the "goal" field.
func (m *PathPlanMutation) SetGoal(pl planner.Goal) {
	m.goal = &pl
}

// Goal returns the value of the "goal" field in the mutation.
func (m *PathPlanMutation) Goal() (r planner.Goal, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldGoal(ctx context.Context) (v planner.Goal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *PathPlanMutation) ResetGoal() {
	m.goal = nil
}

// SetDurationWeeks sets the "duration_weeks" field.
func (m *PathPlanMutation) SetDurationWeeks(i int) {
	m.duration_weeks = &i
	m.addduration_weeks = nil
}

// DurationWeeks returns the value of the "duration_weeks" field in the mutation.
func (m *PathPlanMutation) DurationWeeks() (r int, exists bool) {
	v := m.duration_weeks
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationWeeks returns the old "duration_weeks" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldDurationWeeks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationWeeks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationWeeks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationWeeks: %w", err)
	}
	return oldValue.DurationWeeks, nil
}

// AddDurationWeeks adds i to the "duration_weeks" field.
func (m *PathPlanMutation) AddDurationWeeks(i int) {
	if m.addduration_weeks != nil {
		*m.addduration_weeks += i
	} else {
		m.addduration_weeks = &i
	}
}

// AddedDurationWeeks returns the value that was added to the "duration_weeks" field in this mutation.
func (m *PathPlanMutation) AddedDurationWeeks() (r int, exists bool) {
	v := m.addduration_weeks
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationWeeks resets all changes to the "duration_weeks" field.
func (m *PathPlanMutation) ResetDurationWeeks() {
	m.duration_weeks = nil
	m.addduration_weeks = nil
}

// SetHoursPerWeek sets the "hours_per_week" field.
func (m *PathPlanMutation) SetHoursPerWeek(i int) {
	m.hours_per_week = &i
	m.addhours_per_week = nil
}

// HoursPerWeek returns the value of the "hours_per_week" field in the mutation.
func (m *PathPlanMutation) HoursPerWeek() (r int, exists bool) {
	v := m.hours_per_week
	if v == nil {
		return
	}
	return *v, true
}

// OldHoursPerWeek returns the old "hours_per_week" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldHoursPerWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoursPerWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoursPerWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoursPerWeek: %w", err)
	}
	return oldValue.HoursPerWeek, nil
}

// AddHoursPerWeek adds i to the "hours_per_week" field.
func (m *PathPlanMutation) AddHoursPerWeek(i int) {
	if m.addhours_per_week != nil {
		*m.addhours_per_week += i
	} else {
		m.addhours_per_week = &i
	}
}

// AddedHoursPerWeek returns the value that was added to the "hours_per_week" field in this mutation.
func (m *PathPlanMutation) AddedHoursPerWeek() (r int, exists bool) {
	v := m.addhours_per_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetHoursPerWeek resets all changes to the "hours_per_week" field.
func (m *PathPlanMutation) ResetHoursPerWeek() {
	m.hours_per_week = nil
	m.addhours_per_week = nil
}

// SetStatus sets the "status" field.
func (m *PathPlanMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PathPlanMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PathPlanMutation) ResetStatus() {
	m.status = nil
}

// SetPartial sets the "partial" field.
func (m *PathPlanMutation) SetPartial(b bool) {
	m.partial = &b
}

// Partial returns the value of the "partial" field in the mutation.
func (m *PathPlanMutation) Partial() (r bool, exists bool) {
	v := m.partial
	if v == nil {
		return
	}
	return *v, true
}

// OldPartial returns the old "partial" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldPartial(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartial: %w", err)
	}
	return oldValue.Partial, nil
}

// ResetPartial resets all changes to the "partial" field.
func (m *PathPlanMutation) ResetPartial() {
	m.partial = nil
}

// SetPartialReasons sets the "partial_reasons" field.
func (m *PathPlanMutation) SetPartialReasons(pr []planner.RelaxationReason) {
	m.partial_reasons = &pr
	m.appendpartial_reasons = nil
}

// PartialReasons returns the value of the "partial_reasons" field in the mutation.
func (m *PathPlanMutation) PartialReasons() (r []planner.RelaxationReason, exists bool) {
	v := m.partial_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldPartialReasons returns the old "partial_reasons" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldPartialReasons(ctx context.Context) (v []planner.RelaxationReason, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartialReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartialReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartialReasons: %w", err)
	}
	return oldValue.PartialReasons, nil
}

// AppendPartialReasons adds pr to the "partial_reasons" field.
func (m *PathPlanMutation) AppendPartialReasons(pr []planner.RelaxationReason) {
	m.appendpartial_reasons = append(m.appendpartial_reasons, pr...)
}

// AppendedPartialReasons returns the list of values that were appended to the "partial_reasons" field in this mutation.
func (m *PathPlanMutation) AppendedPartialReasons() ([]planner.RelaxationReason, bool) {
	if len(m.appendpartial_reasons) == 0 {
		return nil, false
	}
	return m.appendpartial_reasons, true
}

// ClearPartialReasons clears the value of the "partial_reasons" field.
func (m *PathPlanMutation) ClearPartialReasons() {
	m.partial_reasons = nil
	m.appendpartial_reasons = nil
	m.clearedFields[pathplan.FieldPartialReasons] = struct{}{}
}

// PartialReasonsCleared returns if the "partial_reasons" field was cleared in this mutation.
func (m *PathPlanMutation) PartialReasonsCleared() bool {
	_, ok := m.clearedFields[pathplan.FieldPartialReasons]
	return ok
}

// ResetPartialReasons resets all changes to the "partial_reasons" field.
func (m *PathPlanMutation) ResetPartialReasons() {
	m.partial_reasons = nil
	m.appendpartial_reasons = nil
	delete(m.clearedFields, pathplan.FieldPartialReasons)
}

// SetAssignments sets the "assignments" field.
func (m *PathPlanMutation) SetAssignments(pl []planner.Assignment) {
	m.assignments = &pl
	m.appendassignments = nil
}

// Assignments returns the value of the "assignments" field in the mutation.
func (m *PathPlanMutation) Assignments() (r []planner.Assignment, exists bool) {
	v := m.assignments
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignments returns the old "assignments" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldAssignments(ctx context.Context) (v []planner.Assignment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignments: %w", err)
	}
	return oldValue.Assignments, nil
}

// AppendAssignments adds pl to the "assignments" field.
func (m *PathPlanMutation) AppendAssignments(pl []planner.Assignment) {
	m.appendassignments = append(m.appendassignments, pl...)
}

// AppendedAssignments returns the list of values that were appended to the "assignments" field in this mutation.
func (m *PathPlanMutation) AppendedAssignments() ([]planner.Assignment, bool) {
	if len(m.appendassignments) == 0 {
		return nil, false
	}
	return m.appendassignments, true
}

// ResetAssignments resets all changes to the "assignments" field.
func (m *PathPlanMutation) ResetAssignments() {
	m.assignments = nil
	m.appendassignments = nil
}

// SetMilestones sets the "milestones" field.
func (m *PathPlanMutation) SetMilestones(pl []planner.Milestone) {
	m.milestones = &pl
	m.appendmilestones = nil
}

// Milestones returns the value of the "milestones" field in the mutation.
func (m *PathPlanMutation) Milestones() (r []planner.Milestone, exists bool) {
	v := m.milestones
	if v == nil {
		return
	}
	return *v, true
}

// OldMilestones returns the old "milestones" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldMilestones(ctx context.Context) (v []planner.Milestone, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMilestones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMilestones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMilestones: %w", err)
	}
	return oldValue.Milestones, nil
}

// AppendMilestones adds pl to the "milestones" field.
func (m *PathPlanMutation) AppendMilestones(pl []planner.Milestone) {
	m.appendmilestones = append(m.appendmilestones, pl...)
}

// AppendedMilestones returns the list of values that were appended to the "milestones" field in this mutation.
func (m *PathPlanMutation) AppendedMilestones() ([]planner.Milestone, bool) {
	if len(m.appendmilestones) == 0 {
		return nil, false
	}
	return m.appendmilestones, true
}

// ResetMilestones resets all changes to the "milestones" field.
func (m *PathPlanMutation) ResetMilestones() {
	m.milestones = nil
	m.appendmilestones = nil
}

// SetAdaptationLog sets the "adaptation_log" field.
func (m *PathPlanMutation) SetAdaptationLog(pe []planner.AdaptationEntry) {
	m.adaptation_log = &pe
	m.appendadaptation_log = nil
}

// AdaptationLog returns the value of the "adaptation_log" field in the mutation.
func (m *PathPlanMutation) AdaptationLog() (r []planner.AdaptationEntry, exists bool) {
	v := m.adaptation_log
	if v == nil {
		return
	}
	return *v, true
}

// OldAdaptationLog returns the old "adaptation_log" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldAdaptationLog(ctx context.Context) (v []planner.AdaptationEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdaptationLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdaptationLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdaptationLog: %w", err)
	}
	return oldValue.AdaptationLog, nil
}

// AppendAdaptationLog adds pe to the "adaptation_log" field.
func (m *PathPlanMutation) AppendAdaptationLog(pe []planner.AdaptationEntry) {
	m.appendadaptation_log = append(m.appendadaptation_log, pe...)
}

// AppendedAdaptationLog returns the list of values that were appended to the "adaptation_log" field in this mutation.
func (m *PathPlanMutation) AppendedAdaptationLog() ([]planner.AdaptationEntry, bool) {
	if len(m.appendadaptation_log) == 0 {
		return nil, false
	}
	return m.appendadaptation_log, true
}

// ClearAdaptationLog clears the value of the "adaptation_log" field.
func (m *PathPlanMutation) ClearAdaptationLog() {
	m.adaptation_log = nil
	m.appendadaptation_log = nil
	m.clearedFields[pathplan.FieldAdaptationLog] = struct{}{}
}

// AdaptationLogCleared returns if the "adaptation_log" field was cleared in this mutation.
func (m *PathPlanMutation) AdaptationLogCleared() bool {
	_, ok := m.clearedFields[pathplan.FieldAdaptationLog]
	return ok
}

// ResetAdaptationLog resets all changes to the "adaptation_log" field.
func (m *PathPlanMutation) ResetAdaptationLog() {
	m.adaptation_log = nil
	m.appendadaptation_log = nil
	delete(m.clearedFields, pathplan.FieldAdaptationLog)
}

// SetDifficultyBoost sets the "difficulty_boost" field.
func (m *PathPlanMutation) SetDifficultyBoost(value map[string]int) {
	m.difficulty_boost = &value
}

// DifficultyBoost returns the value of the "difficulty_boost" field in the mutation.
func (m *PathPlanMutation) DifficultyBoost() (r map[string]int, exists bool) {
	v := m.difficulty_boost
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyBoost returns the old "difficulty_boost" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldDifficultyBoost(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyBoost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyBoost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyBoost: %w", err)
	}
	return oldValue.DifficultyBoost, nil
}

// ClearDifficultyBoost clears the value of the "difficulty_boost" field.
func (m *PathPlanMutation) ClearDifficultyBoost() {
	m.difficulty_boost = nil
	m.clearedFields[pathplan.FieldDifficultyBoost] = struct{}{}
}

// DifficultyBoostCleared returns if the "difficulty_boost" field was cleared in this mutation.
func (m *PathPlanMutation) DifficultyBoostCleared() bool {
	_, ok := m.clearedFields[pathplan.FieldDifficultyBoost]
	return ok
}

// ResetDifficultyBoost resets all changes to the "difficulty_boost" field.
func (m *PathPlanMutation) ResetDifficultyBoost() {
	m.difficulty_boost = nil
	delete(m.clearedFields, pathplan.FieldDifficultyBoost)
}

// SetCreatedAt sets the "created_at" field.
func (m *PathPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PathPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PathPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PathPlanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PathPlanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PathPlan entity.
// If the PathPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathPlanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PathPlanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PathPlanMutation builder.
func (m *PathPlanMutation) Where(ps ...predicate.PathPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PathPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PathPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PathPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PathPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PathPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PathPlan).
func (m *PathPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PathPlanMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.plan_id != nil {
		fields = append(fields, pathplan.FieldPlanID)
	}
	if m.user_id != nil {
		fields = append(fields, pathplan.FieldUserID)
	}
	if m.goal != nil {
		fields = append(fields, pathplan.FieldGoal)
	}
	if m.duration_weeks != nil {
		fields = append(fields, pathplan.FieldDurationWeeks)
	}
	if m.hours_per_week != nil {
		fields = append(fields, pathplan.FieldHoursPerWeek)
	}
	if m.status != nil {
		fields = append(fields, pathplan.FieldStatus)
	}
	if m.partial != nil {
		fields = append(fields, pathplan.FieldPartial)
	}
	if m.partial_reasons != nil {
		fields = append(fields, pathplan.FieldPartialReasons)
	}
	if m.assignments != nil {
		fields = append(fields, pathplan.FieldAssignments)
	}
	if m.milestones != nil {
		fields = append(fields, pathplan.FieldMilestones)
	}
	if m.adaptation_log != nil {
		fields = append(fields, pathplan.FieldAdaptationLog)
	}
	if m.difficulty_boost != nil {
		fields = append(fields, pathplan.FieldDifficultyBoost)
	}
	if m.created_at != nil {
		fields = append(fields, pathplan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pathplan.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PathPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pathplan.FieldPlanID:
		return m.PlanID()
	case pathplan.FieldUserID:
		return m.UserID()
	case pathplan.FieldGoal:
		return m.Goal()
	case pathplan.FieldDurationWeeks:
		return m.DurationWeeks()
	case pathplan.FieldHoursPerWeek:
		return m.HoursPerWeek()
	case pathplan.FieldStatus:
		return m.Status()
	case pathplan.FieldPartial:
		return m.Partial()
	case pathplan.FieldPartialReasons:
		return m.PartialReasons()
	case pathplan.FieldAssignments:
		return m.Assignments()
	case pathplan.FieldMilestones:
		return m.Milestones()
	case pathplan.FieldAdaptationLog:
		return m.AdaptationLog()
	case pathplan.FieldDifficultyBoost:
		return m.DifficultyBoost()
	case pathplan.FieldCreatedAt:
		return m.CreatedAt()
	case pathplan.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PathPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pathplan.FieldPlanID:
		return m.OldPlanID(ctx)
	case pathplan.FieldUserID:
		return m.OldUserID(ctx)
	case pathplan.FieldGoal:
		return m.OldGoal(ctx)
	case pathplan.FieldDurationWeeks:
		return m.OldDurationWeeks(ctx)
	case pathplan.FieldHoursPerWeek:
		return m.OldHoursPerWeek(ctx)
	case pathplan.FieldStatus:
		return m.OldStatus(ctx)
	case pathplan.FieldPartial:
		return m.OldPartial(ctx)
	case pathplan.FieldPartialReasons:
		return m.OldPartialReasons(ctx)
	case pathplan.FieldAssignments:
		return m.OldAssignments(ctx)
	case pathplan.FieldMilestones:
		return m.OldMilestones(ctx)
	case pathplan.FieldAdaptationLog:
		return m.OldAdaptationLog(ctx)
	case pathplan.FieldDifficultyBoost:
		return m.OldDifficultyBoost(ctx)
	case pathplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pathplan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PathPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pathplan.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case pathplan.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pathplan.FieldGoal:
		v, ok := value.(planner.Goal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case pathplan.FieldDurationWeeks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationWeeks(v)
		return nil
	case pathplan.FieldHoursPerWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoursPerWeek(v)
		return nil
	case pathplan.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pathplan.FieldPartial:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartial(v)
		return nil
	case pathplan.FieldPartialReasons:
		v, ok := value.([]planner.RelaxationReason)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartialReasons(v)
		return nil
	case pathplan.FieldAssignments:
		v, ok := value.([]planner.Assignment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignments(v)
		return nil
	case pathplan.FieldMilestones:
		v, ok := value.([]planner.Milestone)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMilestones(v)
		return nil
	case pathplan.FieldAdaptationLog:
		v, ok := value.([]planner.AdaptationEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdaptationLog(v)
		return nil
	case pathplan.FieldDifficultyBoost:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyBoost(v)
		return nil
	case pathplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pathplan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PathPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PathPlanMutation) AddedFields() []string {
	var fields []string
	if m.addduration_weeks != nil {
		fields = append(fields, pathplan.FieldDurationWeeks)
	}
	if m.addhours_per_week != nil {
		fields = append(fields, pathplan.FieldHoursPerWeek)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PathPlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pathplan.FieldDurationWeeks:
		return m.AddedDurationWeeks()
	case pathplan.FieldHoursPerWeek:
		return m.AddedHoursPerWeek()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pathplan.FieldDurationWeeks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationWeeks(v)
		return nil
	case pathplan.FieldHoursPerWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHoursPerWeek(v)
		return nil
	}
	return fmt.Errorf("unknown PathPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PathPlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pathplan.FieldPartialReasons) {
		fields = append(fields, pathplan.FieldPartialReasons)
	}
	if m.FieldCleared(pathplan.FieldAdaptationLog) {
		fields = append(fields, pathplan.FieldAdaptationLog)
	}
	if m.FieldCleared(pathplan.FieldDifficultyBoost) {
		fields = append(fields, pathplan.FieldDifficultyBoost)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PathPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PathPlanMutation) ClearField(name string) error {
	switch name {
	case pathplan.FieldPartialReasons:
		m.ClearPartialReasons()
		return nil
	case pathplan.FieldAdaptationLog:
		m.ClearAdaptationLog()
		return nil
	case pathplan.FieldDifficultyBoost:
		m.ClearDifficultyBoost()
		return nil
	}
	return fmt.Errorf("unknown PathPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PathPlanMutation) ResetField(name string) error {
	switch name {
	case pathplan.FieldPlanID:
		m.ResetPlanID()
		return nil
	case pathplan.FieldUserID:
		m.ResetUserID()
		return nil
	case pathplan.FieldGoal:
		m.ResetGoal()
		return nil
	case pathplan.FieldDurationWeeks:
		m.ResetDurationWeeks()
		return nil
	case pathplan.FieldHoursPerWeek:
		m.ResetHoursPerWeek()
		return nil
	case pathplan.FieldStatus:
		m.ResetStatus()
		return nil
	case pathplan.FieldPartial:
		m.ResetPartial()
		return nil
	case pathplan.FieldPartialReasons:
		m.ResetPartialReasons()
		return nil
	case pathplan.FieldAssignments:
		m.ResetAssignments()
		return nil
	case pathplan.FieldMilestones:
		m.ResetMilestones()
		return nil
	case pathplan.FieldAdaptationLog:
		m.ResetAdaptationLog()
		return nil
	case pathplan.FieldDifficultyBoost:
		m.ResetDifficultyBoost()
		return nil
	case pathplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pathplan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PathPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PathPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PathPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PathPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PathPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PathPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PathPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PathPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PathPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PathPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PathPlan edge %s", name)
}

// ReviewCardMutation represents an operation that mutates the ReviewCard nodes in the graph.
type ReviewCardMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *string
	skill_id         *string
	interval_days    *float64
	addinterval_days *float64
	ease             *float64
	addease          *float64
	repetitions      *int
	addrepetitions   *int
	lapses           *int
	addlapses        *int
	last_review_at   *time.Time
	next_review_at   *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ReviewCard, error)
	predicates       []predicate.ReviewCard
}

var _ ent.Mutation = (*ReviewCardMutation)(nil)

// reviewcardOption allows management of the mutation configuration using functional options.
type reviewcardOption func(*ReviewCardMutation)

// newReviewCardMutation creates new mutation for the ReviewCard entity.
func newReviewCardMutation(c config, op Op, opts ...reviewcardOption) *ReviewCardMutation {
	m := &ReviewCardMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewCard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewCardID sets the ID field of the mutation.
func withReviewCardID(id int) reviewcardOption {
	return func(m *ReviewCardMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewCard
		)
		m.oldValue = func(ctx context.Context) (*ReviewCard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewCard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewCard sets the old ReviewCard of the mutation.
func withReviewCard(node *ReviewCard) reviewcardOption {
	return func(m *ReviewCardMutation) {
		m.oldValue = func(context.Context) (*ReviewCard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewCardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewCardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewCardMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewCardMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewCard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReviewCardMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewCardMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewCardMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *ReviewCardMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *ReviewCardMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *ReviewCardMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewCardMutation) SetIntervalDays(f float64) {
	m.interval_days = &f
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewCardMutation) IntervalDays() (r float64, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldIntervalDays(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds f to the "interval_days" field.
func (m *ReviewCardMutation) AddIntervalDays(f float64) {
	if m.addinterval_days != nil {
		*m.addinterval_days += f
	} else {
		m.addinterval_days = &f
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewCardMutation) AddedIntervalDays() (r float64, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewCardMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetEase sets the "ease" field.
func (m *ReviewCardMutation) SetEase(f float64) {
	m.ease = &f
	m.addease = nil
}

// Ease returns the value of the "ease" field in the mutation.
func (m *ReviewCardMutation) Ease() (r float64, exists bool) {
	v := m.ease
	if v == nil {
		return
	}
	return *v, true
}

// OldEase returns the old "ease" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldEase(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEase: %w", err)
	}
	return oldValue.Ease, nil
}

// AddEase adds f to the "ease" field.
func (m *ReviewCardMutation) AddEase(f float64) {
	if m.addease != nil {
		*m.addease += f
	} else {
		m.addease = &f
	}
}

// AddedEase returns the value that was added to the "ease" field in this mutation.
func (m *ReviewCardMutation) AddedEase() (r float64, exists bool) {
	v := m.addease
	if v == nil {
		return
	}
	return *v, true
}

// ResetEase resets all changes to the "ease" field.
func (m *ReviewCardMutation) ResetEase() {
	m.ease = nil
	m.addease = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *ReviewCardMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *ReviewCardMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *ReviewCardMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *ReviewCardMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *ReviewCardMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetLapses sets the "lapses" field.
func (m *ReviewCardMutation) SetLapses(i int) {
	m.lapses = &i
	m.addlapses = nil
}

// Lapses returns the value of the "lapses" field in the mutation.
func (m *ReviewCardMutation) Lapses() (r int, exists bool) {
	v := m.lapses
	if v == nil {
		return
	}
	return *v, true
}

// OldLapses returns the old "lapses" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldLapses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLapses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLapses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLapses: %w", err)
	}
	return oldValue.Lapses, nil
}

// AddLapses adds i to the "lapses" field.
func (m *ReviewCardMutation) AddLapses(i int) {
	if m.addlapses != nil {
		*m.addlapses += i
	} else {
		m.addlapses = &i
	}
}

// AddedLapses returns the value that was added to the "lapses" field in this mutation.
func (m *ReviewCardMutation) AddedLapses() (r int, exists bool) {
	v := m.addlapses
	if v == nil {
		return
	}
	return *v, true
}

// ResetLapses resets all changes to the "lapses" field.
func (m *ReviewCardMutation) ResetLapses() {
	m.lapses = nil
	m.addlapses = nil
}

// SetLastReviewAt sets the "last_review_at" field.
func (m *ReviewCardMutation) SetLastReviewAt(t time.Time) {
	m.last_review_at = &t
}

// LastReviewAt returns the value of the "last_review_at" field in the mutation.
func (m *ReviewCardMutation) LastReviewAt() (r time.Time, exists bool) {
	v := m.last_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewAt returns the old "last_review_at" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldLastReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewAt: %w", err)
	}
	return oldValue.LastReviewAt, nil
}

// ResetLastReviewAt resets all changes to the "last_review_at" field.
func (m *ReviewCardMutation) ResetLastReviewAt() {
	m.last_review_at = nil
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *ReviewCardMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *ReviewCardMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldNextReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *ReviewCardMutation) ResetNextReviewAt() {
	m.next_review_at = nil
}

// Where appends a list predicates to the ReviewCardMutation builder.
func (m *ReviewCardMutation) Where(ps ...predicate.ReviewCard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewCardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewCardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewCard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewCardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewCardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewCard).
func (m *ReviewCardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewCardMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, reviewcard.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, reviewcard.FieldSkillID)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewcard.FieldIntervalDays)
	}
	if m.ease != nil {
		fields = append(fields, reviewcard.FieldEase)
	}
	if m.repetitions != nil {
		fields = append(fields, reviewcard.FieldRepetitions)
	}
	if m.lapses != nil {
		fields = append(fields, reviewcard.FieldLapses)
	}
	if m.last_review_at != nil {
		fields = append(fields, reviewcard.FieldLastReviewAt)
	}
	if m.next_review_at != nil {
		fields = append(fields, reviewcard.FieldNextReviewAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewCardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewcard.FieldUserID:
		return m.UserID()
	case reviewcard.FieldSkillID:
		return m.SkillID()
	case reviewcard.FieldIntervalDays:
		return m.IntervalDays()
	case reviewcard.FieldEase:
		return m.Ease()
	case reviewcard.FieldRepetitions:
		return m.Repetitions()
	case reviewcard.FieldLapses:
		return m.Lapses()
	case reviewcard.FieldLastReviewAt:
		return m.LastReviewAt()
	case reviewcard.FieldNextReviewAt:
		return m.NextReviewAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewCardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewcard.FieldUserID:
		return m.OldUserID(ctx)
	case reviewcard.FieldSkillID:
		return m.OldSkillID(ctx)
	case reviewcard.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewcard.FieldEase:
		return m.OldEase(ctx)
	case reviewcard.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case reviewcard.FieldLapses:
		return m.OldLapses(ctx)
	case reviewcard.FieldLastReviewAt:
		return m.OldLastReviewAt(ctx)
	case reviewcard.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewCard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewCardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewcard.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewcard.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case reviewcard.FieldIntervalDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewcard.FieldEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEase(v)
		return nil
	case reviewcard.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case reviewcard.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLapses(v)
		return nil
	case reviewcard.FieldLastReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewAt(v)
		return nil
	case reviewcard.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewCard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewCardMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_days != nil {
		fields = append(fields, reviewcard.FieldIntervalDays)
	}
	if m.addease != nil {
		fields = append(fields, reviewcard.FieldEase)
	}
	if m.addrepetitions != nil {
		fields = append(fields, reviewcard.FieldRepetitions)
	}
	if m.addlapses != nil {
		fields = append(fields, reviewcard.FieldLapses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewCardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewcard.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewcard.FieldEase:
		return m.AddedEase()
	case reviewcard.FieldRepetitions:
		return m.AddedRepetitions()
	case reviewcard.FieldLapses:
		return m.AddedLapses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewCardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewcard.FieldIntervalDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewcard.FieldEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEase(v)
		return nil
	case reviewcard.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case reviewcard.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLapses(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewCard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewCardMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewCardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewCardMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewCard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewCardMutation) ResetField(name string) error {
	switch name {
	case reviewcard.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewcard.FieldSkillID:
		m.ResetSkillID()
		return nil
	case reviewcard.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewcard.FieldEase:
		m.ResetEase()
		return nil
	case reviewcard.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case reviewcard.FieldLapses:
		m.ResetLapses()
		return nil
	case reviewcard.FieldLastReviewAt:
		m.ResetLastReviewAt()
		return nil
	case reviewcard.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewCard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewCardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewCardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewCardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewCardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewCardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewCardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewCardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewCard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewCardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewCard edge %s", name)
}

// SkillMasteryMutation represents an operation that mutates the SkillMastery nodes in the graph.
type SkillMasteryMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *string
	skill_id        *string
	mastery         *float64
	addmastery      *float64
	confidence      *float64
	addconfidence   *float64
	trend           *string
	observations    *int
	addobservations *int
	decayed_days    *int
	adddecayed_days *int
	last_updated    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SkillMastery, error)
	predicates      []predicate.SkillMastery
}

var _ ent.Mutation = (*SkillMasteryMutation)(nil)

// skillmasteryOption allows management of the mutation configuration using functional options.
type skillmasteryOption func(*SkillMasteryMutation)

// newSkillMasteryMutation creates new mutation for the SkillMastery entity.
func newSkillMasteryMutation(c config, op Op, opts ...skillmasteryOption) *SkillMasteryMutation {
	m := &SkillMasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillMasteryID sets the ID field of the mutation.
func withSkillMasteryID(id int) skillmasteryOption {
	return func(m *SkillMasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillMastery
		)
		m.oldValue = func(ctx context.Context) (*SkillMastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillMastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillMastery sets the old SkillMastery of the mutation.
func withSkillMastery(node *SkillMastery) skillmasteryOption {
	return func(m *SkillMasteryMutation) {
		m.oldValue = func(context.Context) (*SkillMastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillMasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillMasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillMasteryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillMasteryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillMastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SkillMasteryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SkillMasteryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SkillMasteryMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *SkillMasteryMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *SkillMasteryMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *SkillMasteryMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetMastery sets the "mastery" field.
func (m *SkillMasteryMutation) SetMastery(f float64) {
	m.mastery = &f
	m.addmastery = nil
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *SkillMasteryMutation) Mastery() (r float64, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldMastery(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// AddMastery adds f to the "mastery" field.
func (m *SkillMasteryMutation) AddMastery(f float64) {
	if m.addmastery != nil {
		*m.addmastery += f
	} else {
		m.addmastery = &f
	}
}

// AddedMastery returns the value that was added to the "mastery" field in this mutation.
func (m *SkillMasteryMutation) AddedMastery() (r float64, exists bool) {
	v := m.addmastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetMastery resets all changes to the "mastery" field.
func (m *SkillMasteryMutation) ResetMastery() {
	m.mastery = nil
	m.addmastery = nil
}

// SetConfidence sets the "confidence" field.
func (m *SkillMasteryMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SkillMasteryMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SkillMasteryMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SkillMasteryMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SkillMasteryMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTrend sets the "trend" field.
func (m *SkillMasteryMutation) SetTrend(s string) {
	m.trend = &s
}

// Trend returns the value of the "trend" field in the mutation.
func (m *SkillMasteryMutation) Trend() (r string, exists bool) {
	v := m.trend
	if v == nil {
		return
	}
	return *v, true
}

// OldTrend returns the old "trend" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldTrend(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrend: %w", err)
	}
	return oldValue.Trend, nil
}

// ResetTrend resets all changes to the "trend" field.
func (m *SkillMasteryMutation) ResetTrend() {
	m.trend = nil
}

// SetObservations sets the "observations" field.
func (m *SkillMasteryMutation) SetObservations(i int) {
	m.observations = &i
	m.addobservations = nil
}

// Observations returns the value of the "observations" field in the mutation.
func (m *SkillMasteryMutation) Observations() (r int, exists bool) {
	v := m.observations
	if v == nil {
		return
	}
	return *v, true
}

// OldObservations returns the old "observations" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldObservations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservations: %w", err)
	}
	return oldValue.Observations, nil
}

// AddObservations adds i to the "observations" field.
func (m *SkillMasteryMutation) AddObservations(i int) {
	if m.addobservations != nil {
		*m.addobservations += i
	} else {
		m.addobservations = &i
	}
}

// AddedObservations returns the value that was added to the "observations" field in this mutation.
func (m *SkillMasteryMutation) AddedObservations() (r int, exists bool) {
	v := m.addobservations
	if v == nil {
		return
	}
	return *v, true
}

// ResetObservations resets all changes to the "observations" field.
func (m *SkillMasteryMutation) ResetObservations() {
	m.observations = nil
	m.addobservations = nil
}

// SetDecayedDays sets the "decayed_days" field.
func (m *SkillMasteryMutation) SetDecayedDays(i int) {
	m.decayed_days = &i
	m.adddecayed_days = nil
}

// DecayedDays returns the value of the "decayed_days" field in the mutation.
func (m *SkillMasteryMutation) DecayedDays() (r int, exists bool) {
	v := m.decayed_days
	if v == nil {
		return
	}
	return *v, true
}

// OldDecayedDays returns the old "decayed_days" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldDecayedDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecayedDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecayedDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecayedDays: %w", err)
	}
	return oldValue.DecayedDays, nil
}

// AddDecayedDays adds i to the "decayed_days" field.
func (m *SkillMasteryMutation) AddDecayedDays(i int) {
	if m.adddecayed_days != nil {
		*m.adddecayed_days += i
	} else {
		m.adddecayed_days = &i
	}
}

// AddedDecayedDays returns the value that was added to the "decayed_days" field in this mutation.
func (m *SkillMasteryMutation) AddedDecayedDays() (r int, exists bool) {
	v := m.adddecayed_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetDecayedDays resets all changes to the "decayed_days" field.
func (m *SkillMasteryMutation) ResetDecayedDays() {
	m.decayed_days = nil
	m.adddecayed_days = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *SkillMasteryMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *SkillMasteryMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *SkillMasteryMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the SkillMasteryMutation builder.
func (m *SkillMasteryMutation) Where(ps ...predicate.SkillMastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillMasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillMasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillMastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillMasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillMasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillMastery).
func (m *SkillMasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillMasteryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, skillmastery.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, skillmastery.FieldSkillID)
	}
	if m.mastery != nil {
		fields = append(fields, skillmastery.FieldMastery)
	}
	if m.confidence != nil {
		fields = append(fields, skillmastery.FieldConfidence)
	}
	if m.trend != nil {
		fields = append(fields, skillmastery.FieldTrend)
	}
	if m.observations != nil {
		fields = append(fields, skillmastery.FieldObservations)
	}
	if m.decayed_days != nil {
		fields = append(fields, skillmastery.FieldDecayedDays)
	}
	if m.last_updated != nil {
		fields = append(fields, skillmastery.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillMasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillmastery.FieldUserID:
		return m.UserID()
	case skillmastery.FieldSkillID:
		return m.SkillID()
	case skillmastery.FieldMastery:
		return m.Mastery()
	case skillmastery.FieldConfidence:
		return m.Confidence()
	case skillmastery.FieldTrend:
		return m.Trend()
	case skillmastery.FieldObservations:
		return m.Observations()
	case skillmastery.FieldDecayedDays:
		return m.DecayedDays()
	case skillmastery.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillMasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillmastery.FieldUserID:
		return m.OldUserID(ctx)
	case skillmastery.FieldSkillID:
		return m.OldSkillID(ctx)
	case skillmastery.FieldMastery:
		return m.OldMastery(ctx)
	case skillmastery.FieldConfidence:
		return m.OldConfidence(ctx)
	case skillmastery.FieldTrend:
		return m.OldTrend(ctx)
	case skillmastery.FieldObservations:
		return m.OldObservations(ctx)
	case skillmastery.FieldDecayedDays:
		return m.OldDecayedDays(ctx)
	case skillmastery.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown SkillMastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillmastery.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case skillmastery.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case skillmastery.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	case skillmastery.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case skillmastery.FieldTrend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrend(v)
		return nil
	case skillmastery.FieldObservations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservations(v)
		return nil
	case skillmastery.FieldDecayedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecayedDays(v)
		return nil
	case skillmastery.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown SkillMastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillMasteryMutation) AddedFields() []string {
	var fields []string
	if m.addmastery != nil {
		fields = append(fields, skillmastery.FieldMastery)
	}
	if m.addconfidence != nil {
		fields = append(fields, skillmastery.FieldConfidence)
	}
	if m.addobservations != nil {
		fields = append(fields, skillmastery.FieldObservations)
	}
	if m.adddecayed_days != nil {
		fields = append(fields, skillmastery.FieldDecayedDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillMasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skillmastery.FieldMastery:
		return m.AddedMastery()
	case skillmastery.FieldConfidence:
		return m.AddedConfidence()
	case skillmastery.FieldObservations:
		return m.AddedObservations()
	case skillmastery.FieldDecayedDays:
		return m.AddedDecayedDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skillmastery.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMastery(v)
		return nil
	case skillmastery.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case skillmastery.FieldObservations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObservations(v)
		return nil
	case skillmastery.FieldDecayedDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDecayedDays(v)
		return nil
	}
	return fmt.Errorf("unknown SkillMastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillMasteryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillMasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillMasteryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SkillMastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillMasteryMutation) ResetField(name string) error {
	switch name {
	case skillmastery.FieldUserID:
		m.ResetUserID()
		return nil
	case skillmastery.FieldSkillID:
		m.ResetSkillID()
		return nil
	case skillmastery.FieldMastery:
		m.ResetMastery()
		return nil
	case skillmastery.FieldConfidence:
		m.ResetConfidence()
		return nil
	case skillmastery.FieldTrend:
		m.ResetTrend()
		return nil
	case skillmastery.FieldObservations:
		m.ResetObservations()
		return nil
	case skillmastery.FieldDecayedDays:
		m.ResetDecayedDays()
		return nil
	case skillmastery.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown SkillMastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillMasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillMasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillMasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillMasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillMasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillMasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillMasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillMastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillMasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillMastery edge %s", name)
}
