// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/salmon302/DSATrain-sub001/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/adaptationevent"
	"github.com/salmon302/DSATrain-sub001/ent/item"
	"github.com/salmon302/DSATrain-sub001/ent/outcomeevent"
	"github.com/salmon302/DSATrain-sub001/ent/pathplan"
	"github.com/salmon302/DSATrain-sub001/ent/reviewcard"
	"github.com/salmon302/DSATrain-sub001/ent/skillmastery"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdaptationEvent is the client for interacting with the AdaptationEvent builders.
	AdaptationEvent *AdaptationEventClient
	// Item is the client for interacting with the Item builders.
	Item *ItemClient
	// OutcomeEvent is the client for interacting with the OutcomeEvent builders.
	OutcomeEvent *OutcomeEventClient
	// PathPlan is the client for interacting with the PathPlan builders.
	PathPlan *PathPlanClient
	// ReviewCard is the client for interacting with the ReviewCard builders.
	ReviewCard *ReviewCardClient
	// SkillMastery is the client for interacting with the SkillMastery builders.
	SkillMastery *SkillMasteryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdaptationEvent = NewAdaptationEventClient(c.config)
	c.Item = NewItemClient(c.config)
	c.OutcomeEvent = NewOutcomeEventClient(c.config)
	c.PathPlan = NewPathPlanClient(c.config)
	c.ReviewCard = NewReviewCardClient(c.config)
	c.SkillMastery = NewSkillMasteryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AdaptationEvent: NewAdaptationEventClient(cfg),
		Item:            NewItemClient(cfg),
		OutcomeEvent:    NewOutcomeEventClient(cfg),
		PathPlan:        NewPathPlanClient(cfg),
		ReviewCard:      NewReviewCardClient(cfg),
		SkillMastery:    NewSkillMasteryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AdaptationEvent: NewAdaptationEventClient(cfg),
		Item:            NewItemClient(cfg),
		OutcomeEvent:    NewOutcomeEventClient(cfg),
		PathPlan:        NewPathPlanClient(cfg),
		ReviewCard:      NewReviewCardClient(cfg),
		SkillMastery:    NewSkillMasteryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdaptationEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AdaptationEvent, c.Item, c.OutcomeEvent, c.PathPlan, c.ReviewCard,
		c.SkillMastery,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AdaptationEvent, c.Item, c.OutcomeEvent, c.PathPlan, c.ReviewCard,
		c.SkillMastery,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdaptationEventMutation:
		return c.AdaptationEvent.mutate(ctx, m)
	case *ItemMutation:
		return c.Item.mutate(ctx, m)
	case *OutcomeEventMutation:
		return c.OutcomeEvent.mutate(ctx, m)
	case *PathPlanMutation:
		return c.PathPlan.mutate(ctx, m)
	case *ReviewCardMutation:
		return c.ReviewCard.mutate(ctx, m)
	case *SkillMasteryMutation:
		return c.SkillMastery.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdaptationEventClient is a client for the AdaptationEvent schema.
type AdaptationEventClient struct {
	config
}

// NewAdaptationEventClient returns a client for the AdaptationEvent from the given config.
func NewAdaptationEventClient(c config) *AdaptationEventClient {
	return &AdaptationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adaptationevent.Hooks(f(g(h())))`.
func (c *AdaptationEventClient) Use(hooks ...Hook) {
	c.hooks.AdaptationEvent = append(c.hooks.AdaptationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adaptationevent.Intercept(f(g(h())))`.
func (c *AdaptationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdaptationEvent = append(c.inters.AdaptationEvent, interceptors...)
}

// Create returns a builder for creating a AdaptationEvent entity.
func (c *AdaptationEventClient) Create() *AdaptationEventCreate {
	mutation := newAdaptationEventMutation(c.config, OpCreate)
	return &AdaptationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdaptationEvent entities.
func (c *AdaptationEventClient) CreateBulk(builders ...*AdaptationEventCreate) *AdaptationEventCreateBulk {
	return &AdaptationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdaptationEventClient) MapCreateBulk(slice any, setFunc func(*AdaptationEventCreate, int)) *AdaptationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdaptationEventCreateBulk{err: fmt.Errorf("calling to AdaptationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdaptationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdaptationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdaptationEvent.
func (c *AdaptationEventClient) Update() *AdaptationEventUpdate {
	mutation := newAdaptationEventMutation(c.config, OpUpdate)
	return &AdaptationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdaptationEventClient) UpdateOne(ae *AdaptationEvent) *AdaptationEventUpdateOne {
	mutation := newAdaptationEventMutation(c.config, OpUpdateOne, withAdaptationEvent(ae))
	return &AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdaptationEventClient) UpdateOneID(id int) *AdaptationEventUpdateOne {
	mutation := newAdaptationEventMutation(c.config, OpUpdateOne, withAdaptationEventID(id))
	return &AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdaptationEvent.
func (c *AdaptationEventClient) Delete() *AdaptationEventDelete {
	mutation := newAdaptationEventMutation(c.config, OpDelete)
	return &AdaptationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdaptationEventClient) DeleteOne(ae *AdaptationEvent) *AdaptationEventDeleteOne {
	return c.DeleteOneID(ae.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdaptationEventClient) DeleteOneID(id int) *AdaptationEventDeleteOne {
	builder := c.Delete().Where(adaptationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdaptationEventDeleteOne{builder}
}

// Query returns a query builder for AdaptationEvent.
func (c *AdaptationEventClient) Query() *AdaptationEventQuery {
	return &AdaptationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdaptationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AdaptationEvent entity by its id.
func (c *AdaptationEventClient) Get(ctx context.Context, id int) (*AdaptationEvent, error) {
	return c.Query().Where(adaptationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdaptationEventClient) GetX(ctx context.Context, id int) *AdaptationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdaptationEventClient) Hooks() []Hook {
	return c.hooks.AdaptationEvent
}

// Interceptors returns the client interceptors.
func (c *AdaptationEventClient) Interceptors() []Interceptor {
	return c.inters.AdaptationEvent
}

func (c *AdaptationEventClient) mutate(ctx context.Context, m *AdaptationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdaptationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdaptationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdaptationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdaptationEvent mutation op: %q", m.Op())
	}
}

// ItemClient is a client for the Item schema.
type ItemClient struct {
	config
}

// NewItemClient returns a client for the Item from the given config.
func NewItemClient(c config) *ItemClient {
	return &ItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `item.Hooks(f(g(h())))`.
func (c *ItemClient) Use(hooks ...Hook) {
	c.hooks.Item = append(c.hooks.Item, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `item.Intercept(f(g(h())))`.
func (c *ItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.Item = append(c.inters.Item, interceptors...)
}

// Create returns a builder for creating a Item entity.
func (c *ItemClient) Create() *ItemCreate {
	mutation := newItemMutation(c.config, OpCreate)
	return &ItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Item entities.
func (c *ItemClient) CreateBulk(builders ...*ItemCreate) *ItemCreateBulk {
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemClient) MapCreateBulk(slice any, setFunc func(*ItemCreate, int)) *ItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemCreateBulk{err: fmt.Errorf("calling to ItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Item.
func (c *ItemClient) Update() *ItemUpdate {
	mutation := newItemMutation(c.config, OpUpdate)
	return &ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemClient) UpdateOne(i *Item) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItem(i))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemClient) UpdateOneID(id int) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItemID(id))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Item.
func (c *ItemClient) Delete() *ItemDelete {
	mutation := newItemMutation(c.config, OpDelete)
	return &ItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemClient) DeleteOne(i *Item) *ItemDeleteOne {
	return c.DeleteOneID(i.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemClient) DeleteOneID(id int) *ItemDeleteOne {
	builder := c.Delete().Where(item.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemDeleteOne{builder}
}

// Query returns a query builder for Item.
func (c *ItemClient) Query() *ItemQuery {
	return &ItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItem},
		inters: c.Interceptors(),
	}
}

// Get returns a Item entity by its id.
func (c *ItemClient) Get(ctx context.Context, id int) (*Item, error) {
	return c.Query().Where(item.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemClient) GetX(ctx context.Context, id int) *Item {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemClient) Hooks() []Hook {
	return c.hooks.Item
}

// Interceptors returns the client interceptors.
func (c *ItemClient) Interceptors() []Interceptor {
	return c.inters.Item
}

func (c *ItemClient) mutate(ctx context.Context, m *ItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Item mutation op: %q", m.Op())
	}
}

// OutcomeEventClient is a client for the OutcomeEvent schema.
type OutcomeEventClient struct {
	config
}

// NewOutcomeEventClient returns a client for the OutcomeEvent from the given config.
func NewOutcomeEventClient(c config) *OutcomeEventClient {
	return &OutcomeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outcomeevent.Hooks(f(g(h())))`.
func (c *OutcomeEventClient) Use(hooks ...Hook) {
	c.hooks.OutcomeEvent = append(c.hooks.OutcomeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outcomeevent.Intercept(f(g(h())))`.
func (c *OutcomeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutcomeEvent = append(c.inters.OutcomeEvent, interceptors...)
}

// Create returns a builder for creating a OutcomeEvent entity.
func (c *OutcomeEventClient) Create() *OutcomeEventCreate {
	mutation := newOutcomeEventMutation(c.config, OpCreate)
	return &OutcomeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutcomeEvent entities.
func (c *OutcomeEventClient) CreateBulk(builders ...*OutcomeEventCreate) *OutcomeEventCreateBulk {
	return &OutcomeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutcomeEventClient) MapCreateBulk(slice any, setFunc func(*OutcomeEventCreate, int)) *OutcomeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutcomeEventCreateBulk{err: fmt.Errorf("calling to OutcomeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutcomeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutcomeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutcomeEvent.
func (c *OutcomeEventClient) Update() *OutcomeEventUpdate {
	mutation := newOutcomeEventMutation(c.config, OpUpdate)
	return &OutcomeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutcomeEventClient) UpdateOne(oe *OutcomeEvent) *OutcomeEventUpdateOne {
	mutation := newOutcomeEventMutation(c.config, OpUpdateOne, withOutcomeEvent(oe))
	return &OutcomeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutcomeEventClient) UpdateOneID(id int) *OutcomeEventUpdateOne {
	mutation := newOutcomeEventMutation(c.config, OpUpdateOne, withOutcomeEventID(id))
	return &OutcomeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutcomeEvent.
func (c *OutcomeEventClient) Delete() *OutcomeEventDelete {
	mutation := newOutcomeEventMutation(c.config, OpDelete)
	return &OutcomeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutcomeEventClient) DeleteOne(oe *OutcomeEvent) *OutcomeEventDeleteOne {
	return c.DeleteOneID(oe.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutcomeEventClient) DeleteOneID(id int) *OutcomeEventDeleteOne {
	builder := c.Delete().Where(outcomeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutcomeEventDeleteOne{builder}
}

// Query returns a query builder for OutcomeEvent.
func (c *OutcomeEventClient) Query() *OutcomeEventQuery {
	return &OutcomeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutcomeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OutcomeEvent entity by its id.
func (c *OutcomeEventClient) Get(ctx context.Context, id int) (*OutcomeEvent, error) {
	return c.Query().Where(outcomeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutcomeEventClient) GetX(ctx context.Context, id int) *OutcomeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutcomeEventClient) Hooks() []Hook {
	return c.hooks.OutcomeEvent
}

// Interceptors returns the client interceptors.
func (c *OutcomeEventClient) Interceptors() []Interceptor {
	return c.inters.OutcomeEvent
}

func (c *OutcomeEventClient) mutate(ctx context.Context, m *OutcomeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutcomeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutcomeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutcomeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutcomeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutcomeEvent mutation op: %q", m.Op())
	}
}

// PathPlanClient is a client for the PathPlan schema.
type PathPlanClient struct {
	config
}

// NewPathPlanClient returns a client for the PathPlan from the given config.
func NewPathPlanClient(c config) *PathPlanClient {
	return &PathPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathplan.Hooks(f(g(h())))`.
func (c *PathPlanClient) Use(hooks ...Hook) {
	c.hooks.PathPlan = append(c.hooks.PathPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathplan.Intercept(f(g(h())))`.
func (c *PathPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.PathPlan = append(c.inters.PathPlan, interceptors...)
}

// Create returns a builder for creating a PathPlan entity.
func (c *PathPlanClient) Create() *PathPlanCreate {
	mutation := newPathPlanMutation(c.config, OpCreate)
	return &PathPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PathPlan entities.
func (c *PathPlanClient) CreateBulk(builders ...*PathPlanCreate) *PathPlanCreateBulk {
	return &PathPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathPlanClient) MapCreateBulk(slice any, setFunc func(*PathPlanCreate, int)) *PathPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathPlanCreateBulk{err: fmt.Errorf("calling to PathPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PathPlan.
func (c *PathPlanClient) Update() *PathPlanUpdate {
	mutation := newPathPlanMutation(c.config, OpUpdate)
	return &PathPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathPlanClient) UpdateOne(pp *PathPlan) *PathPlanUpdateOne {
	mutation := newPathPlanMutation(c.config, OpUpdateOne, withPathPlan(pp))
	return &PathPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathPlanClient) UpdateOneID(id int) *PathPlanUpdateOne {
	mutation := newPathPlanMutation(c.config, OpUpdateOne, withPathPlanID(id))
	return &PathPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PathPlan.
func (c *PathPlanClient) Delete() *PathPlanDelete {
	mutation := newPathPlanMutation(c.config, OpDelete)
	return &PathPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathPlanClient) DeleteOne(pp *PathPlan) *PathPlanDeleteOne {
	return c.DeleteOneID(pp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathPlanClient) DeleteOneID(id int) *PathPlanDeleteOne {
	builder := c.Delete().Where(pathplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathPlanDeleteOne{builder}
}

// Query returns a query builder for PathPlan.
func (c *PathPlanClient) Query() *PathPlanQuery {
	return &PathPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a PathPlan entity by its id.
func (c *PathPlanClient) Get(ctx context.Context, id int) (*PathPlan, error) {
	return c.Query().Where(pathplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathPlanClient) GetX(ctx context.Context, id int) *PathPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PathPlanClient) Hooks() []Hook {
	return c.hooks.PathPlan
}

// Interceptors returns the client interceptors.
func (c *PathPlanClient) Interceptors() []Interceptor {
	return c.inters.PathPlan
}

func (c *PathPlanClient) mutate(ctx context.Context, m *PathPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PathPlan mutation op: %q", m.Op())
	}
}

// ReviewCardClient is a client for the ReviewCard schema.
type ReviewCardClient struct {
	config
}

// NewReviewCardClient returns a client for the ReviewCard from the given config.
func NewReviewCardClient(c config) *ReviewCardClient {
	return &ReviewCardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewcard.Hooks(f(g(h())))`.
func (c *ReviewCardClient) Use(hooks ...Hook) {
	c.hooks.ReviewCard = append(c.hooks.ReviewCard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewcard.Intercept(f(g(h())))`.
func (c *ReviewCardClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewCard = append(c.inters.ReviewCard, interceptors...)
}

// Create returns a builder for creating a ReviewCard entity.
func (c *ReviewCardClient) Create() *ReviewCardCreate {
	mutation := newReviewCardMutation(c.config, OpCreate)
	return &ReviewCardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewCard entities.
func (c *ReviewCardClient) CreateBulk(builders ...*ReviewCardCreate) *ReviewCardCreateBulk {
	return &ReviewCardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewCardClient) MapCreateBulk(slice any, setFunc func(*ReviewCardCreate, int)) *ReviewCardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewCardCreateBulk{err: fmt.Errorf("calling to ReviewCardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewCardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewCardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewCard.
func (c *ReviewCardClient) Update() *ReviewCardUpdate {
	mutation := newReviewCardMutation(c.config, OpUpdate)
	return &ReviewCardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewCardClient) UpdateOne(rc *ReviewCard) *ReviewCardUpdateOne {
	mutation := newReviewCardMutation(c.config, OpUpdateOne, withReviewCard(rc))
	return &ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewCardClient) UpdateOneID(id int) *ReviewCardUpdateOne {
	mutation := newReviewCardMutation(c.config, OpUpdateOne, withReviewCardID(id))
	return &ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewCard.
func (c *ReviewCardClient) Delete() *ReviewCardDelete {
	mutation := newReviewCardMutation(c.config, OpDelete)
	return &ReviewCardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewCardClient) DeleteOne(rc *ReviewCard) *ReviewCardDeleteOne {
	return c.DeleteOneID(rc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewCardClient) DeleteOneID(id int) *ReviewCardDeleteOne {
	builder := c.Delete().Where(reviewcard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewCardDeleteOne{builder}
}

// Query returns a query builder for ReviewCard.
func (c *ReviewCardClient) Query() *ReviewCardQuery {
	return &ReviewCardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewCard},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewCard entity by its id.
func (c *ReviewCardClient) Get(ctx context.Context, id int) (*ReviewCard, error) {
	return c.Query().Where(reviewcard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewCardClient) GetX(ctx context.Context, id int) *ReviewCard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewCardClient) Hooks() []Hook {
	return c.hooks.ReviewCard
}

// Interceptors returns the client interceptors.
func (c *ReviewCardClient) Interceptors() []Interceptor {
	return c.inters.ReviewCard
}

func (c *ReviewCardClient) mutate(ctx context.Context, m *ReviewCardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewCardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewCardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewCardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewCard mutation op: %q", m.Op())
	}
}

// SkillMasteryClient is a client for the SkillMastery schema.
type SkillMasteryClient struct {
	config
}

// NewSkillMasteryClient returns a client for the SkillMastery from the given config.
func NewSkillMasteryClient(c config) *SkillMasteryClient {
	return &SkillMasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillmastery.Hooks(f(g(h())))`.
func (c *SkillMasteryClient) Use(hooks ...Hook) {
	c.hooks.SkillMastery = append(c.hooks.SkillMastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillmastery.Intercept(f(g(h())))`.
func (c *SkillMasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillMastery = append(c.inters.SkillMastery, interceptors...)
}

// Create returns a builder for creating a SkillMastery entity.
func (c *SkillMasteryClient) Create() *SkillMasteryCreate {
	mutation := newSkillMasteryMutation(c.config, OpCreate)
	return &SkillMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillMastery entities.
func (c *SkillMasteryClient) CreateBulk(builders ...*SkillMasteryCreate) *SkillMasteryCreateBulk {
	return &SkillMasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillMasteryClient) MapCreateBulk(slice any, setFunc func(*SkillMasteryCreate, int)) *SkillMasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillMasteryCreateBulk{err: fmt.Errorf("calling to SkillMasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillMasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillMasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillMastery.
func (c *SkillMasteryClient) Update() *SkillMasteryUpdate {
	mutation := newSkillMasteryMutation(c.config, OpUpdate)
	return &SkillMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillMasteryClient) UpdateOne(sm *SkillMastery) *SkillMasteryUpdateOne {
	mutation := newSkillMasteryMutation(c.config, OpUpdateOne, withSkillMastery(sm))
	return &SkillMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillMasteryClient) UpdateOneID(id int) *SkillMasteryUpdateOne {
	mutation := newSkillMasteryMutation(c.config, OpUpdateOne, withSkillMasteryID(id))
	return &SkillMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillMastery.
func (c *SkillMasteryClient) Delete() *SkillMasteryDelete {
	mutation := newSkillMasteryMutation(c.config, OpDelete)
	return &SkillMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillMasteryClient) DeleteOne(sm *SkillMastery) *SkillMasteryDeleteOne {
	return c.DeleteOneID(sm.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillMasteryClient) DeleteOneID(id int) *SkillMasteryDeleteOne {
	builder := c.Delete().Where(skillmastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillMasteryDeleteOne{builder}
}

// Query returns a query builder for SkillMastery.
func (c *SkillMasteryClient) Query() *SkillMasteryQuery {
	return &SkillMasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillMastery entity by its id.
func (c *SkillMasteryClient) Get(ctx context.Context, id int) (*SkillMastery, error) {
	return c.Query().Where(skillmastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillMasteryClient) GetX(ctx context.Context, id int) *SkillMastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillMasteryClient) Hooks() []Hook {
	return c.hooks.SkillMastery
}

// Interceptors returns the client interceptors.
func (c *SkillMasteryClient) Interceptors() []Interceptor {
	return c.inters.SkillMastery
}

func (c *SkillMasteryClient) mutate(ctx context.Context, m *SkillMasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillMastery mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdaptationEvent, Item, OutcomeEvent, PathPlan, ReviewCard,
		SkillMastery []ent.Hook
	}
	inters struct {
		AdaptationEvent, Item, OutcomeEvent, PathPlan, ReviewCard,
		SkillMastery []ent.Interceptor
	}
)
