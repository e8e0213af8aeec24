package cursor

import "context"

// CountExecutor runs a stripped-down query and returns a scalar row count.
// It is deliberately a separate capability from Executor[T]: many callers
// only want the row executor and skip Total entirely (PageArgs.Total is
// false by default), so Paginate never builds or runs a count query unless
// asked.
type CountExecutor interface {
	ExecuteScalar(ctx context.Context, q OrderedQuery) (int64, error)
}

// Count strips preloads, ORDER BY, and LIMIT/OFFSET off of query and runs
// the resulting shape through exec. The three cases from 4.7 -- a plain
// row count, a DISTINCT query (which must be wrapped in a subquery before
// counting, since COUNT(DISTINCT *) isn't meaningful across multiple
// columns), and a GROUP BY query (which counts groups, not rows) -- are
// the driver's concern, resolved inside its StripForCount/ExecuteScalar;
// Count itself is just the orchestration entry point so Paginate can call
// it unconditionally without knowing which case applied.
func Count(ctx context.Context, query OrderedQuery, exec CountExecutor) (int64, error) {
	stripped := query.StripForCount()
	n, err := exec.ExecuteScalar(ctx, stripped)
	if err != nil {
		return 0, wrapExecutorErr(err, "paging: count query failed")
	}
	return n, nil
}
