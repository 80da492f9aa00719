// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// TastingNoteQuery is the builder for querying TastingNote entities.
type TastingNoteQuery struct {
	config
	ctx        *QueryContext
	order      []tastingnote.OrderOption
	inters     []Interceptor
	predicates []predicate.TastingNote
	withWine   *WineQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TastingNoteQuery builder.
func (_q *TastingNoteQuery) Where(ps ...predicate.TastingNote) *TastingNoteQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TastingNoteQuery) Limit(limit int) *TastingNoteQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TastingNoteQuery) Offset(offset int) *TastingNoteQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TastingNoteQuery) Unique(unique bool) *TastingNoteQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TastingNoteQuery) Order(o ...tastingnote.OrderOption) *TastingNoteQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryWine chains the current query on the "wine" edge.
func (_q *TastingNoteQuery) QueryWine() *WineQuery {
	query := (&WineClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(tastingnote.Table, tastingnote.FieldID, selector),
			sqlgraph.To(wine.Table, wine.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tastingnote.WineTable, tastingnote.WineColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TastingNote entity from the query.
// Returns a *NotFoundError when no TastingNote was found.
func (_q *TastingNoteQuery) First(ctx context.Context) (*TastingNote, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{tastingnote.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TastingNoteQuery) FirstX(ctx context.Context) *TastingNote {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TastingNote ID from the query.
// Returns a *NotFoundError when no TastingNote ID was found.
func (_q *TastingNoteQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{tastingnote.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TastingNoteQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TastingNote entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TastingNote entity is found.
// Returns a *NotFoundError when no TastingNote entities are found.
func (_q *TastingNoteQuery) Only(ctx context.Context) (*TastingNote, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{tastingnote.Label}
	default:
		return nil, &NotSingularError{tastingnote.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TastingNoteQuery) OnlyX(ctx context.Context) *TastingNote {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TastingNote ID in the query.
// Returns a *NotSingularError when more than one TastingNote ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TastingNoteQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{tastingnote.Label}
	default:
		err = &NotSingularError{tastingnote.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TastingNoteQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TastingNotes.
func (_q *TastingNoteQuery) All(ctx context.Context) ([]*TastingNote, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TastingNote, *TastingNoteQuery]()
	return withInterceptors[[]*TastingNote](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TastingNoteQuery) AllX(ctx context.Context) []*TastingNote {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TastingNote IDs.
func (_q *TastingNoteQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(tastingnote.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TastingNoteQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TastingNoteQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TastingNoteQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TastingNoteQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TastingNoteQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TastingNoteQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TastingNoteQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TastingNoteQuery) Clone() *TastingNoteQuery {
	if _q == nil {
		return nil
	}
	return &TastingNoteQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]tastingnote.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.TastingNote{}, _q.predicates...),
		withWine:   _q.withWine.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithWine tells the query-builder to eager-load the nodes that are connected to
// the "wine" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TastingNoteQuery) WithWine(opts ...func(*WineQuery)) *TastingNoteQuery {
	query := (&WineClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWine = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		WineID uuid.UUID `json:"wine_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TastingNote.Query().
//		GroupBy(tastingnote.FieldWineID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TastingNoteQuery) GroupBy(field string, fields ...string) *TastingNoteGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TastingNoteGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = tastingnote.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		WineID uuid.UUID `json:"wine_id,omitempty"`
//	}
//
//	client.TastingNote.Query().
//		Select(tastingnote.FieldWineID).
//		Scan(ctx, &v)
func (_q *TastingNoteQuery) Select(fields ...string) *TastingNoteSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TastingNoteSelect{TastingNoteQuery: _q}
	sbuild.label = tastingnote.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TastingNoteSelect configured with the given aggregations.
func (_q *TastingNoteQuery) Aggregate(fns ...AggregateFunc) *TastingNoteSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TastingNoteQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !tastingnote.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TastingNoteQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TastingNote, error) {
	var (
		nodes       = []*TastingNote{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withWine != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TastingNote).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TastingNote{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withWine; query != nil {
		if err := _q.loadWine(ctx, query, nodes, nil,
			func(n *TastingNote, e *Wine) { n.Edges.Wine = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TastingNoteQuery) loadWine(ctx context.Context, query *WineQuery, nodes []*TastingNote, init func(*TastingNote), assign func(*TastingNote, *Wine)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TastingNote)
	for i := range nodes {
		fk := nodes[i].WineID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(wine.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "wine_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *TastingNoteQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TastingNoteQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(tastingnote.Table, tastingnote.Columns, sqlgraph.NewFieldSpec(tastingnote.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tastingnote.FieldID)
		for i := range fields {
			if fields[i] != tastingnote.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withWine != nil {
			_spec.Node.AddColumnOnce(tastingnote.FieldWineID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TastingNoteQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(tastingnote.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = tastingnote.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TastingNoteGroupBy is the group-by builder for TastingNote entities.
type TastingNoteGroupBy struct {
	selector
	build *TastingNoteQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TastingNoteGroupBy) Aggregate(fns ...AggregateFunc) *TastingNoteGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TastingNoteGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TastingNoteQuery, *TastingNoteGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TastingNoteGroupBy) sqlScan(ctx context.Context, root *TastingNoteQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TastingNoteSelect is the builder for selecting fields of TastingNote entities.
type TastingNoteSelect struct {
	*TastingNoteQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TastingNoteSelect) Aggregate(fns ...AggregateFunc) *TastingNoteSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TastingNoteSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TastingNoteQuery, *TastingNoteSelect](ctx, _s.TastingNoteQuery, _s, _s.inters, v)
}

func (_s *TastingNoteSelect) sqlScan(ctx context.Context, root *TastingNoteQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
