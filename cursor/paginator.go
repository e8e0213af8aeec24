package cursor

import (
	"context"

	"github.com/nrfta/seekpage"
)

// QueryBuilder produces a fresh OrderedQuery for one Paginate call. It
// typically closes over caller-supplied filters (WHERE clauses unrelated to
// pagination) and returns a new query value each call, since Paginate
// mutates the query it's given.
type QueryBuilder func(ctx context.Context) (OrderedQuery, error)

// Paginator adapts the cursor engine to paging.Paginator[T], so keyset
// pagination is interchangeable with offset and quota-fill strategies
// behind one interface.
type Paginator[T any] struct {
	Config    *Config[T]
	Query     QueryBuilder
	Executor  Executor[T]
	CountExec CountExecutor
}

// New builds a Paginator from a field/extractor config, a query builder,
// and a row executor. countExec may be nil if the caller never sets
// PageArgs.Total.
func New[T any](cfg *Config[T], query QueryBuilder, exec Executor[T], countExec CountExecutor) *Paginator[T] {
	return &Paginator[T]{Config: cfg, Query: query, Executor: exec, CountExec: countExec}
}

// Paginate implements paging.Paginator[T].
func (p *Paginator[T]) Paginate(ctx context.Context, args *paging.PageArgs, opts ...paging.PaginateOption) (*paging.Page[T], error) {
	pageCfg := paging.ApplyPaginateOptions(args, opts...)
	limit := pageCfg.EffectiveLimit(args)
	if args != nil && args.First != nil && *args.First == 0 {
		// First: 0 asks for no rows, only the page metadata and total.
		limit = 0
	}

	query, err := p.Query(ctx)
	if err != nil {
		return nil, err
	}

	reqOpts := Options{Limit: limit}
	if args != nil {
		reqOpts.After = args.GetAfter()
		reqOpts.Before = args.GetBefore()
		reqOpts.Total = args.GetTotal()
	}

	page, err := Paginate(ctx, query, p.Executor, p.CountExec, p.Config, reqOpts)
	if err != nil {
		return nil, err
	}

	return &paging.Page[T]{
		Nodes:    page.Items,
		PageInfo: buildPageInfo(page),
		Metadata: paging.Metadata{
			Strategy:       "cursor",
			ItemsExamined:  len(page.Items),
			IterationsUsed: 1,
		},
	}, nil
}

// buildPageInfo derives start/end cursors the way spec 4.6's Metadata table
// requires: the cursor itself is nil at a page boundary, not merely paired
// with a false HasNextPage/HasPreviousPage. A caller that follows
// "metadata.after non-nil -> fetch next page" (Testable Properties #2,
// Monotonicity) must see a nil EndCursor on the last page, not a cursor
// that would just re-fetch an empty page.
func buildPageInfo[T any](page *Page[T]) *paging.PageInfo {
	hasNext, hasPrev := page.HasNext, page.HasPrev
	var start, end *string
	if hasPrev && len(page.Cursors) > 0 {
		s := page.Cursors[0]
		start = &s
	}
	if hasNext && len(page.Cursors) > 0 {
		e := page.Cursors[len(page.Cursors)-1]
		end = &e
	}
	total := page.TotalCount

	info := paging.NewEmptyPageInfo()
	info.HasNextPage = func() (bool, error) { return hasNext, nil }
	info.HasPreviousPage = func() (bool, error) { return hasPrev, nil }
	info.StartCursor = func() (*string, error) { return start, nil }
	info.EndCursor = func() (*string, error) { return end, nil }
	if total != nil {
		n := int(*total)
		info.TotalCount = func() (*int, error) { return &n, nil }
	}
	return &info
}
