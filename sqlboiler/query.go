// Package sqlboiler provides adapters for integrating SQLBoiler with
// seekpage. Query implements cursor.OrderedQuery by accumulating
// qm.QueryMod values; RowExecutor and ScalarExecutor run them through a
// caller-supplied SQLBoiler query function.
package sqlboiler

import (
	"context"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
	"github.com/nrfta/seekpage/cursor"
)

// Query adapts SQLBoiler's qm.QueryMod composition to cursor.OrderedQuery.
// It carries the caller's base filters (joins, WHERE clauses unrelated to
// pagination) separately from the seek predicate and ORDER BY that Paginate
// adds; StripForCount drops the ORDER BY and LIMIT and keeps both kinds of
// filter.
type Query struct {
	base    []qm.QueryMod
	where   []qm.QueryMod
	order   []cursor.FieldSpec
	limit   int
	aliases map[string]string
}

// NewQuery builds a Query seeded with order (the default ORDER BY Paginate
// will invert for a Before walk) and aliases (the join bindings FieldSpecs
// are allowed to reference, e.g. {"author": "a"} for a table joined `AS a`).
// base carries any caller filters -- qm.InnerJoin, qm.Where, qm.Load -- that
// should apply regardless of pagination direction.
func NewQuery(order []cursor.FieldSpec, aliases map[string]string, base ...qm.QueryMod) *Query {
	return &Query{order: order, aliases: aliases, base: base}
}

func (q *Query) AppendWhere(clause string, args ...any) {
	q.where = append(q.where, rawWhereClause(clause, args))
}

// WhereClause recovers the clause and args carried by a mod Query.AppendWhere
// produced. ok is false for any other qm.QueryMod. SQLBoiler itself never
// needs this -- it applies the mod directly against queries.Query -- but a
// test harness that can only run a generated model's All/Count(ctx,
// mods...) method (tests/models' hand-rolled stand-ins) has no other way to
// recover the seek predicate's bound values, since fmt.Sprintf on an
// arbitrary qm.QueryMod has no defined form.
func WhereClause(mod qm.QueryMod) (clause string, args []any, ok bool) {
	w, ok := mod.(whereClauseMod)
	if !ok {
		return "", nil, false
	}
	return w.clause, w.args, true
}

func (q *Query) SetLimit(n int) { q.limit = n }

func (q *Query) OrderBy() []cursor.FieldSpec { return q.order }

func (q *Query) ReplaceOrderBy(fields []cursor.FieldSpec) { q.order = fields }

func (q *Query) LookupAlias(binding string) (string, bool) {
	a, ok := q.aliases[binding]
	return a, ok
}

func (q *Query) KnownAliases() []string {
	out := make([]string, 0, len(q.aliases))
	for b := range q.aliases {
		out = append(out, b)
	}
	return out
}

// StripForCount drops ORDER BY and LIMIT, keeping base filters (including
// any DISTINCT/GROUP BY/Load mods the caller put in base) and the seek
// predicate mods accumulated in where. cursor.Paginate takes its count copy
// before appending a seek predicate, so where is empty there; keeping it
// here costs nothing and keeps StripForCount a pure structural copy.
func (q *Query) StripForCount() cursor.OrderedQuery {
	return &Query{base: q.base, where: q.where, aliases: q.aliases}
}

// Mods renders the accumulated state into SQLBoiler query mods, in the
// order SQLBoiler expects: base filters, WHERE additions, ORDER BY, LIMIT.
func (q *Query) Mods() []qm.QueryMod {
	mods := make([]qm.QueryMod, 0, len(q.base)+len(q.where)+2)
	mods = append(mods, q.base...)
	mods = append(mods, q.where...)
	if len(q.order) > 0 {
		mods = append(mods, qm.OrderBy(orderByClause(q.order)))
	}
	if q.limit > 0 {
		mods = append(mods, qm.Limit(q.limit))
	}
	return mods
}

func orderByClause(fields []cursor.FieldSpec) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		col := strmangle.IdentQuote(strings.ToLower, f.Column())
		if b := f.Binding(); b != "" {
			col = strmangle.IdentQuote(strings.ToLower, b) + "." + col
		}
		if f.Direction == cursor.Desc {
			parts[i] = col + " DESC"
		} else {
			parts[i] = col + " ASC"
		}
	}
	return strings.Join(parts, ", ")
}

// whereClauseMod is a qm.QueryMod that remembers the clause and args it
// applies, rather than only closing over them the way qm.QueryModFunc does.
// WhereClause recovers them later.
type whereClauseMod struct {
	clause string
	args   []any
}

func (w whereClauseMod) Apply(q *queries.Query) {
	queries.AppendWhere(q, w.clause, w.args...)
}

// rawWhereClause injects a WHERE clause with positional placeholders
// directly, bypassing qm.Where's identifier handling -- needed since the
// seek predicate spans multiple columns and its own parenthesization.
func rawWhereClause(clause string, args []any) qm.QueryMod {
	return whereClauseMod{clause: clause, args: args}
}

// RowFunc executes mods against the database and scans into T. It's the
// same shape as a generated model's All(ctx, mods...) method.
type RowFunc[T any] func(ctx context.Context, mods ...qm.QueryMod) ([]T, error)

// ScalarFunc executes mods and returns a single count, the shape of a
// generated model's Count(ctx, mods...) method.
type ScalarFunc func(ctx context.Context, mods ...qm.QueryMod) (int64, error)

// RowExecutor adapts a RowFunc to cursor.Executor[T].
type RowExecutor[T any] struct {
	Query RowFunc[T]
}

func (e RowExecutor[T]) Execute(ctx context.Context, q cursor.OrderedQuery) ([]T, error) {
	query := q.(*Query)
	return e.Query(ctx, query.Mods()...)
}

// ScalarExecutor adapts a ScalarFunc to cursor.CountExecutor.
type ScalarExecutor struct {
	Query ScalarFunc
}

func (e ScalarExecutor) ExecuteScalar(ctx context.Context, q cursor.OrderedQuery) (int64, error) {
	query := q.(*Query)
	return e.Query(ctx, query.Mods()...)
}
