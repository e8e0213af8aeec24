package cursor

import "context"

// Config binds a row type to the ordered field list and value extractor
// Paginate needs to read and write its cursors. Build one per distinct
// ORDER BY shape (typically once per resolver) and reuse it across requests.
type Config[T any] struct {
	Fields    []FieldSpec
	Extractor ValueExtractor[T]
}

// BuildConfig validates fields and defaults Extractor to
// DefaultValueExtractor[T] when nil. ErrMissingFields is returned for an
// empty field list: fields are required, since they define both the ORDER
// BY the query runs with and the shape of every cursor it produces.
func BuildConfig[T any](fields []FieldSpec, extractor ValueExtractor[T]) (*Config[T], error) {
	if len(fields) == 0 {
		return nil, ErrMissingFields
	}
	if extractor == nil {
		extractor = DefaultValueExtractor[T]
	}
	return &Config[T]{Fields: fields, Extractor: extractor}, nil
}

// Options carries the per-request cursor window: which cursor(s) to seek
// from, how many rows to return, and whether the caller wants a total count
// alongside the page. After and Before may both be set -- e.g. a caller
// re-paginating a fixed window bounded on both ends -- in which case their
// predicates are AND-combined (spec 4.4, "Both cursors") and the query's
// natural ORDER BY is kept; ORDER BY is only inverted for a Before-only walk.
type Options struct {
	After  *string
	Before *string
	Limit  int
	Total  bool
}

// Executor runs query and scans its result set into T.
type Executor[T any] interface {
	Execute(ctx context.Context, q OrderedQuery) ([]T, error)
}

// Paginate is the keyset pagination entrypoint (spec 6). It validates
// cfg.Fields against query's known bindings, decodes whichever of
// opts.After/opts.Before was supplied, synthesizes and appends the seek
// predicate, fetches limit+1 rows to detect a further page without a
// second round trip, and assembles the result plus per-row cursors.
//
// A Before-only walk runs the query with its ORDER BY inverted (so the
// database hands back the limit+1 rows immediately preceding the boundary,
// nearest first) and re-reverses the slice before handing it back, so the
// caller always sees rows in the order cfg.Fields declares regardless of
// which direction produced them. ORDER BY is left alone whenever After is
// set, whether or not Before is also set, since an After cursor anchors the
// walk in the query's natural direction.
func Paginate[T any](
	ctx context.Context,
	query OrderedQuery,
	exec Executor[T],
	countExec CountExecutor,
	cfg *Config[T],
	opts Options,
) (*Page[T], error) {
	if cfg == nil || len(cfg.Fields) == 0 {
		return nil, ErrMissingFields
	}

	if err := validateBindings(query, cfg.Fields); err != nil {
		return nil, err
	}

	hadAfter := opts.After != nil && *opts.After != ""
	hadBefore := opts.Before != nil && *opts.Before != ""

	types := Types(cfg.Fields)

	reversed := hadBefore && !hadAfter
	if reversed {
		query.ReplaceOrderBy(invertFields(cfg.Fields))
	}

	// The count runs against the query as the caller built it: its copy is
	// taken here, before any seek predicate or limit is attached.
	var countQuery OrderedQuery
	if opts.Total && countExec != nil {
		countQuery = query.StripForCount()
	}

	if hadAfter {
		values, err := Decode(types, *opts.After)
		if err != nil {
			return nil, err
		}
		clause, args, err := BuildPredicate(cfg.Fields, values, After)
		if err != nil {
			return nil, err
		}
		if clause != "" {
			query.AppendWhere(clause, args...)
		}
	}
	if hadBefore {
		values, err := Decode(types, *opts.Before)
		if err != nil {
			return nil, err
		}
		clause, args, err := BuildPredicate(cfg.Fields, values, Before)
		if err != nil {
			return nil, err
		}
		if clause != "" {
			query.AppendWhere(clause, args...)
		}
	}

	limit := opts.Limit
	if limit < 0 {
		limit = DefaultPageSizeForKeyset
	}
	query.SetLimit(limit + 1)

	rows, err := exec.Execute(ctx, query)
	if err != nil {
		return nil, wrapExecutorErr(err, "paging: row query failed")
	}

	items, hasNext, hasPrev := assemble(rows, limit, hadAfter, hadBefore, reversed)

	cursors, err := buildCursors(items, cfg.Fields, cfg.Extractor)
	if err != nil {
		return nil, err
	}

	page := &Page[T]{
		Items:   items,
		Cursors: cursors,
		HasNext: hasNext,
		HasPrev: hasPrev,
	}

	if opts.Total && countExec != nil {
		n, err := Count(ctx, countQuery, countExec)
		if err != nil {
			return nil, err
		}
		page.TotalCount = &n
	}

	return page, nil
}

// DefaultPageSizeForKeyset is the limit Paginate falls back to when
// Options.Limit is negative. A zero Limit returns no rows (only the total,
// when Options.Total is set).
const DefaultPageSizeForKeyset = 50

// CursorForRecord builds the cursor a single row would carry if it were the
// boundary row of a page, without running a query. Resolvers use this to
// hand back a stable cursor for a record obtained some other way (e.g. one
// just inserted) per spec 6.
func CursorForRecord[T any](row T, cfg *Config[T]) (string, error) {
	if cfg == nil || len(cfg.Fields) == 0 {
		return "", ErrMissingFields
	}
	values, err := cfg.Extractor(row, cfg.Fields)
	if err != nil {
		return "", err
	}
	return Encode(Types(cfg.Fields), values)
}

func invertFields(fields []FieldSpec) []FieldSpec {
	out := make([]FieldSpec, len(fields))
	for i, f := range fields {
		inv := f
		if f.Direction == Asc {
			inv.Direction = Desc
		} else {
			inv.Direction = Asc
		}
		out[i] = inv
	}
	return out
}

func validateBindings(query OrderedQuery, fields []FieldSpec) error {
	for _, f := range fields {
		b := f.Binding()
		if b == "" {
			continue
		}
		if _, ok := query.LookupAlias(b); !ok {
			return &UnknownBindingError{Name: b, Known: query.KnownAliases()}
		}
	}
	return nil
}
