// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sahlen/vinkallaren/gen/ent/labelphoto"
	"github.com/sahlen/vinkallaren/gen/ent/scanjob"
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LabelPhoto is the client for interacting with the LabelPhoto builders.
	LabelPhoto *LabelPhotoClient
	// ScanJob is the client for interacting with the ScanJob builders.
	ScanJob *ScanJobClient
	// StorageLocation is the client for interacting with the StorageLocation builders.
	StorageLocation *StorageLocationClient
	// TastingNote is the client for interacting with the TastingNote builders.
	TastingNote *TastingNoteClient
	// Wine is the client for interacting with the Wine builders.
	Wine *WineClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LabelPhoto = NewLabelPhotoClient(c.config)
	c.ScanJob = NewScanJobClient(c.config)
	c.StorageLocation = NewStorageLocationClient(c.config)
	c.TastingNote = NewTastingNoteClient(c.config)
	c.Wine = NewWineClient(c.config)
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
		LabelPhoto:      NewLabelPhotoClient(cfg),
		ScanJob:         NewScanJobClient(cfg),
		StorageLocation: NewStorageLocationClient(cfg),
		TastingNote:     NewTastingNoteClient(cfg),
		Wine:            NewWineClient(cfg),
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
		LabelPhoto:      NewLabelPhotoClient(cfg),
		ScanJob:         NewScanJobClient(cfg),
		StorageLocation: NewStorageLocationClient(cfg),
		TastingNote:     NewTastingNoteClient(cfg),
		Wine:            NewWineClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LabelPhoto.
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
	c.LabelPhoto.Use(hooks...)
	c.ScanJob.Use(hooks...)
	c.StorageLocation.Use(hooks...)
	c.TastingNote.Use(hooks...)
	c.Wine.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LabelPhoto.Intercept(interceptors...)
	c.ScanJob.Intercept(interceptors...)
	c.StorageLocation.Intercept(interceptors...)
	c.TastingNote.Intercept(interceptors...)
	c.Wine.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LabelPhotoMutation:
		return c.LabelPhoto.mutate(ctx, m)
	case *ScanJobMutation:
		return c.ScanJob.mutate(ctx, m)
	case *StorageLocationMutation:
		return c.StorageLocation.mutate(ctx, m)
	case *TastingNoteMutation:
		return c.TastingNote.mutate(ctx, m)
	case *WineMutation:
		return c.Wine.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LabelPhotoClient is a client for the LabelPhoto schema.
type LabelPhotoClient struct {
	config
}

// NewLabelPhotoClient returns a client for the LabelPhoto from the given config.
func NewLabelPhotoClient(c config) *LabelPhotoClient {
	return &LabelPhotoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labelphoto.Hooks(f(g(h())))`.
func (c *LabelPhotoClient) Use(hooks ...Hook) {
	c.hooks.LabelPhoto = append(c.hooks.LabelPhoto, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labelphoto.Intercept(f(g(h())))`.
func (c *LabelPhotoClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabelPhoto = append(c.inters.LabelPhoto, interceptors...)
}

// Create returns a builder for creating a LabelPhoto entity.
func (c *LabelPhotoClient) Create() *LabelPhotoCreate {
	mutation := newLabelPhotoMutation(c.config, OpCreate)
	return &LabelPhotoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabelPhoto entities.
func (c *LabelPhotoClient) CreateBulk(builders ...*LabelPhotoCreate) *LabelPhotoCreateBulk {
	return &LabelPhotoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabelPhotoClient) MapCreateBulk(slice any, setFunc func(*LabelPhotoCreate, int)) *LabelPhotoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabelPhotoCreateBulk{err: fmt.Errorf("calling to LabelPhotoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabelPhotoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabelPhotoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabelPhoto.
func (c *LabelPhotoClient) Update() *LabelPhotoUpdate {
	mutation := newLabelPhotoMutation(c.config, OpUpdate)
	return &LabelPhotoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabelPhotoClient) UpdateOne(_m *LabelPhoto) *LabelPhotoUpdateOne {
	mutation := newLabelPhotoMutation(c.config, OpUpdateOne, withLabelPhoto(_m))
	return &LabelPhotoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabelPhotoClient) UpdateOneID(id uuid.UUID) *LabelPhotoUpdateOne {
	mutation := newLabelPhotoMutation(c.config, OpUpdateOne, withLabelPhotoID(id))
	return &LabelPhotoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabelPhoto.
func (c *LabelPhotoClient) Delete() *LabelPhotoDelete {
	mutation := newLabelPhotoMutation(c.config, OpDelete)
	return &LabelPhotoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabelPhotoClient) DeleteOne(_m *LabelPhoto) *LabelPhotoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabelPhotoClient) DeleteOneID(id uuid.UUID) *LabelPhotoDeleteOne {
	builder := c.Delete().Where(labelphoto.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabelPhotoDeleteOne{builder}
}

// Query returns a query builder for LabelPhoto.
func (c *LabelPhotoClient) Query() *LabelPhotoQuery {
	return &LabelPhotoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabelPhoto},
		inters: c.Interceptors(),
	}
}

// Get returns a LabelPhoto entity by its id.
func (c *LabelPhotoClient) Get(ctx context.Context, id uuid.UUID) (*LabelPhoto, error) {
	return c.Query().Where(labelphoto.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabelPhotoClient) GetX(ctx context.Context, id uuid.UUID) *LabelPhoto {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a LabelPhoto.
func (c *LabelPhotoClient) QueryJobs(_m *LabelPhoto) *ScanJobQuery {
	query := (&ScanJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(labelphoto.Table, labelphoto.FieldID, id),
			sqlgraph.To(scanjob.Table, scanjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, labelphoto.JobsTable, labelphoto.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LabelPhotoClient) Hooks() []Hook {
	return c.hooks.LabelPhoto
}

// Interceptors returns the client interceptors.
func (c *LabelPhotoClient) Interceptors() []Interceptor {
	return c.inters.LabelPhoto
}

func (c *LabelPhotoClient) mutate(ctx context.Context, m *LabelPhotoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabelPhotoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabelPhotoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabelPhotoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabelPhotoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LabelPhoto mutation op: %q", m.Op())
	}
}

// ScanJobClient is a client for the ScanJob schema.
type ScanJobClient struct {
	config
}

// NewScanJobClient returns a client for the ScanJob from the given config.
func NewScanJobClient(c config) *ScanJobClient {
	return &ScanJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scanjob.Hooks(f(g(h())))`.
func (c *ScanJobClient) Use(hooks ...Hook) {
	c.hooks.ScanJob = append(c.hooks.ScanJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scanjob.Intercept(f(g(h())))`.
func (c *ScanJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScanJob = append(c.inters.ScanJob, interceptors...)
}

// Create returns a builder for creating a ScanJob entity.
func (c *ScanJobClient) Create() *ScanJobCreate {
	mutation := newScanJobMutation(c.config, OpCreate)
	return &ScanJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScanJob entities.
func (c *ScanJobClient) CreateBulk(builders ...*ScanJobCreate) *ScanJobCreateBulk {
	return &ScanJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScanJobClient) MapCreateBulk(slice any, setFunc func(*ScanJobCreate, int)) *ScanJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScanJobCreateBulk{err: fmt.Errorf("calling to ScanJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScanJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScanJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScanJob.
func (c *ScanJobClient) Update() *ScanJobUpdate {
	mutation := newScanJobMutation(c.config, OpUpdate)
	return &ScanJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScanJobClient) UpdateOne(_m *ScanJob) *ScanJobUpdateOne {
	mutation := newScanJobMutation(c.config, OpUpdateOne, withScanJob(_m))
	return &ScanJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScanJobClient) UpdateOneID(id uuid.UUID) *ScanJobUpdateOne {
	mutation := newScanJobMutation(c.config, OpUpdateOne, withScanJobID(id))
	return &ScanJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScanJob.
func (c *ScanJobClient) Delete() *ScanJobDelete {
	mutation := newScanJobMutation(c.config, OpDelete)
	return &ScanJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScanJobClient) DeleteOne(_m *ScanJob) *ScanJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScanJobClient) DeleteOneID(id uuid.UUID) *ScanJobDeleteOne {
	builder := c.Delete().Where(scanjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScanJobDeleteOne{builder}
}

// Query returns a query builder for ScanJob.
func (c *ScanJobClient) Query() *ScanJobQuery {
	return &ScanJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScanJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ScanJob entity by its id.
func (c *ScanJobClient) Get(ctx context.Context, id uuid.UUID) (*ScanJob, error) {
	return c.Query().Where(scanjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScanJobClient) GetX(ctx context.Context, id uuid.UUID) *ScanJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPhoto queries the photo edge of a ScanJob.
func (c *ScanJobClient) QueryPhoto(_m *ScanJob) *LabelPhotoQuery {
	query := (&LabelPhotoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanjob.Table, scanjob.FieldID, id),
			sqlgraph.To(labelphoto.Table, labelphoto.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scanjob.PhotoTable, scanjob.PhotoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWine queries the wine edge of a ScanJob.
func (c *ScanJobClient) QueryWine(_m *ScanJob) *WineQuery {
	query := (&WineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanjob.Table, scanjob.FieldID, id),
			sqlgraph.To(wine.Table, wine.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scanjob.WineTable, scanjob.WineColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScanJobClient) Hooks() []Hook {
	return c.hooks.ScanJob
}

// Interceptors returns the client interceptors.
func (c *ScanJobClient) Interceptors() []Interceptor {
	return c.inters.ScanJob
}

func (c *ScanJobClient) mutate(ctx context.Context, m *ScanJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScanJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScanJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScanJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScanJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScanJob mutation op: %q", m.Op())
	}
}

// StorageLocationClient is a client for the StorageLocation schema.
type StorageLocationClient struct {
	config
}

// NewStorageLocationClient returns a client for the StorageLocation from the given config.
func NewStorageLocationClient(c config) *StorageLocationClient {
	return &StorageLocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `storagelocation.Hooks(f(g(h())))`.
func (c *StorageLocationClient) Use(hooks ...Hook) {
	c.hooks.StorageLocation = append(c.hooks.StorageLocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `storagelocation.Intercept(f(g(h())))`.
func (c *StorageLocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.StorageLocation = append(c.inters.StorageLocation, interceptors...)
}

// Create returns a builder for creating a StorageLocation entity.
func (c *StorageLocationClient) Create() *StorageLocationCreate {
	mutation := newStorageLocationMutation(c.config, OpCreate)
	return &StorageLocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StorageLocation entities.
func (c *StorageLocationClient) CreateBulk(builders ...*StorageLocationCreate) *StorageLocationCreateBulk {
	return &StorageLocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StorageLocationClient) MapCreateBulk(slice any, setFunc func(*StorageLocationCreate, int)) *StorageLocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StorageLocationCreateBulk{err: fmt.Errorf("calling to StorageLocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StorageLocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StorageLocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StorageLocation.
func (c *StorageLocationClient) Update() *StorageLocationUpdate {
	mutation := newStorageLocationMutation(c.config, OpUpdate)
	return &StorageLocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StorageLocationClient) UpdateOne(_m *StorageLocation) *StorageLocationUpdateOne {
	mutation := newStorageLocationMutation(c.config, OpUpdateOne, withStorageLocation(_m))
	return &StorageLocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StorageLocationClient) UpdateOneID(id uuid.UUID) *StorageLocationUpdateOne {
	mutation := newStorageLocationMutation(c.config, OpUpdateOne, withStorageLocationID(id))
	return &StorageLocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StorageLocation.
func (c *StorageLocationClient) Delete() *StorageLocationDelete {
	mutation := newStorageLocationMutation(c.config, OpDelete)
	return &StorageLocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StorageLocationClient) DeleteOne(_m *StorageLocation) *StorageLocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StorageLocationClient) DeleteOneID(id uuid.UUID) *StorageLocationDeleteOne {
	builder := c.Delete().Where(storagelocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StorageLocationDeleteOne{builder}
}

// Query returns a query builder for StorageLocation.
func (c *StorageLocationClient) Query() *StorageLocationQuery {
	return &StorageLocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStorageLocation},
		inters: c.Interceptors(),
	}
}

// Get returns a StorageLocation entity by its id.
func (c *StorageLocationClient) Get(ctx context.Context, id uuid.UUID) (*StorageLocation, error) {
	return c.Query().Where(storagelocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StorageLocationClient) GetX(ctx context.Context, id uuid.UUID) *StorageLocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWines queries the wines edge of a StorageLocation.
func (c *StorageLocationClient) QueryWines(_m *StorageLocation) *WineQuery {
	query := (&WineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(storagelocation.Table, storagelocation.FieldID, id),
			sqlgraph.To(wine.Table, wine.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, storagelocation.WinesTable, storagelocation.WinesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StorageLocationClient) Hooks() []Hook {
	return c.hooks.StorageLocation
}

// Interceptors returns the client interceptors.
func (c *StorageLocationClient) Interceptors() []Interceptor {
	return c.inters.StorageLocation
}

func (c *StorageLocationClient) mutate(ctx context.Context, m *StorageLocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StorageLocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StorageLocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StorageLocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StorageLocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StorageLocation mutation op: %q", m.Op())
	}
}

// TastingNoteClient is a client for the TastingNote schema.
type TastingNoteClient struct {
	config
}

// NewTastingNoteClient returns a client for the TastingNote from the given config.
func NewTastingNoteClient(c config) *TastingNoteClient {
	return &TastingNoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tastingnote.Hooks(f(g(h())))`.
func (c *TastingNoteClient) Use(hooks ...Hook) {
	c.hooks.TastingNote = append(c.hooks.TastingNote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tastingnote.Intercept(f(g(h())))`.
func (c *TastingNoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.TastingNote = append(c.inters.TastingNote, interceptors...)
}

// Create returns a builder for creating a TastingNote entity.
func (c *TastingNoteClient) Create() *TastingNoteCreate {
	mutation := newTastingNoteMutation(c.config, OpCreate)
	return &TastingNoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TastingNote entities.
func (c *TastingNoteClient) CreateBulk(builders ...*TastingNoteCreate) *TastingNoteCreateBulk {
	return &TastingNoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TastingNoteClient) MapCreateBulk(slice any, setFunc func(*TastingNoteCreate, int)) *TastingNoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TastingNoteCreateBulk{err: fmt.Errorf("calling to TastingNoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TastingNoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TastingNoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TastingNote.
func (c *TastingNoteClient) Update() *TastingNoteUpdate {
	mutation := newTastingNoteMutation(c.config, OpUpdate)
	return &TastingNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TastingNoteClient) UpdateOne(_m *TastingNote) *TastingNoteUpdateOne {
	mutation := newTastingNoteMutation(c.config, OpUpdateOne, withTastingNote(_m))
	return &TastingNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TastingNoteClient) UpdateOneID(id uuid.UUID) *TastingNoteUpdateOne {
	mutation := newTastingNoteMutation(c.config, OpUpdateOne, withTastingNoteID(id))
	return &TastingNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TastingNote.
func (c *TastingNoteClient) Delete() *TastingNoteDelete {
	mutation := newTastingNoteMutation(c.config, OpDelete)
	return &TastingNoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TastingNoteClient) DeleteOne(_m *TastingNote) *TastingNoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TastingNoteClient) DeleteOneID(id uuid.UUID) *TastingNoteDeleteOne {
	builder := c.Delete().Where(tastingnote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TastingNoteDeleteOne{builder}
}

// Query returns a query builder for TastingNote.
func (c *TastingNoteClient) Query() *TastingNoteQuery {
	return &TastingNoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTastingNote},
		inters: c.Interceptors(),
	}
}

// Get returns a TastingNote entity by its id.
func (c *TastingNoteClient) Get(ctx context.Context, id uuid.UUID) (*TastingNote, error) {
	return c.Query().Where(tastingnote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TastingNoteClient) GetX(ctx context.Context, id uuid.UUID) *TastingNote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWine queries the wine edge of a TastingNote.
func (c *TastingNoteClient) QueryWine(_m *TastingNote) *WineQuery {
	query := (&WineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tastingnote.Table, tastingnote.FieldID, id),
			sqlgraph.To(wine.Table, wine.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tastingnote.WineTable, tastingnote.WineColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TastingNoteClient) Hooks() []Hook {
	return c.hooks.TastingNote
}

// Interceptors returns the client interceptors.
func (c *TastingNoteClient) Interceptors() []Interceptor {
	return c.inters.TastingNote
}

func (c *TastingNoteClient) mutate(ctx context.Context, m *TastingNoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TastingNoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TastingNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TastingNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TastingNoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TastingNote mutation op: %q", m.Op())
	}
}

// WineClient is a client for the Wine schema.
type WineClient struct {
	config
}

// NewWineClient returns a client for the Wine from the given config.
func NewWineClient(c config) *WineClient {
	return &WineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wine.Hooks(f(g(h())))`.
func (c *WineClient) Use(hooks ...Hook) {
	c.hooks.Wine = append(c.hooks.Wine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wine.Intercept(f(g(h())))`.
func (c *WineClient) Intercept(interceptors ...Interceptor) {
	c.inters.Wine = append(c.inters.Wine, interceptors...)
}

// Create returns a builder for creating a Wine entity.
func (c *WineClient) Create() *WineCreate {
	mutation := newWineMutation(c.config, OpCreate)
	return &WineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Wine entities.
func (c *WineClient) CreateBulk(builders ...*WineCreate) *WineCreateBulk {
	return &WineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WineClient) MapCreateBulk(slice any, setFunc func(*WineCreate, int)) *WineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WineCreateBulk{err: fmt.Errorf("calling to WineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Wine.
func (c *WineClient) Update() *WineUpdate {
	mutation := newWineMutation(c.config, OpUpdate)
	return &WineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WineClient) UpdateOne(_m *Wine) *WineUpdateOne {
	mutation := newWineMutation(c.config, OpUpdateOne, withWine(_m))
	return &WineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WineClient) UpdateOneID(id uuid.UUID) *WineUpdateOne {
	mutation := newWineMutation(c.config, OpUpdateOne, withWineID(id))
	return &WineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Wine.
func (c *WineClient) Delete() *WineDelete {
	mutation := newWineMutation(c.config, OpDelete)
	return &WineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WineClient) DeleteOne(_m *Wine) *WineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WineClient) DeleteOneID(id uuid.UUID) *WineDeleteOne {
	builder := c.Delete().Where(wine.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WineDeleteOne{builder}
}

// Query returns a query builder for Wine.
func (c *WineClient) Query() *WineQuery {
	return &WineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWine},
		inters: c.Interceptors(),
	}
}

// Get returns a Wine entity by its id.
func (c *WineClient) Get(ctx context.Context, id uuid.UUID) (*Wine, error) {
	return c.Query().Where(wine.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WineClient) GetX(ctx context.Context, id uuid.UUID) *Wine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLocation queries the location edge of a Wine.
func (c *WineClient) QueryLocation(_m *Wine) *StorageLocationQuery {
	query := (&StorageLocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(wine.Table, wine.FieldID, id),
			sqlgraph.To(storagelocation.Table, storagelocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, wine.LocationTable, wine.LocationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNotes queries the notes edge of a Wine.
func (c *WineClient) QueryNotes(_m *Wine) *TastingNoteQuery {
	query := (&TastingNoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(wine.Table, wine.FieldID, id),
			sqlgraph.To(tastingnote.Table, tastingnote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, wine.NotesTable, wine.NotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Wine.
func (c *WineClient) QueryJobs(_m *Wine) *ScanJobQuery {
	query := (&ScanJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(wine.Table, wine.FieldID, id),
			sqlgraph.To(scanjob.Table, scanjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, wine.JobsTable, wine.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WineClient) Hooks() []Hook {
	return c.hooks.Wine
}

// Interceptors returns the client interceptors.
func (c *WineClient) Interceptors() []Interceptor {
	return c.inters.Wine
}

func (c *WineClient) mutate(ctx context.Context, m *WineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Wine mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LabelPhoto, ScanJob, StorageLocation, TastingNote, Wine []ent.Hook
	}
	inters struct {
		LabelPhoto, ScanJob, StorageLocation, TastingNote, Wine []ent.Interceptor
	}
)
