package cursor

// Page is the result of one Paginate call: the trimmed row slice, its
// per-row cursors, and an overall hasNext/hasPrevious summary.
type Page[T any] struct {
	Items      []T
	Cursors    []string
	HasNext    bool
	HasPrev    bool
	TotalCount *int64
}

// assemble trims the limit+1 lookahead fetch down to at most limit rows,
// derives hasNext/hasPrev from whether the lookahead row was present and
// which cursor(s) anchored the walk, and re-reverses the slice when it was
// fetched in reverse order to satisfy a Before-only walk.
//
// rows is what the executor returned (up to limit+1 long). reversed is true
// only for a Before-only walk (Paginate flipped ORDER BY to walk backward
// from the Before cursor) and must flip the result back to the caller's
// declared order before handing it back. Whenever After is set -- alone or
// together with Before -- the walk runs forward in the query's natural
// order, so hasPrev follows from hadAfter and hasNext from the lookahead;
// a Before-only walk runs the mirror image.
func assemble[T any](rows []T, limit int, hadAfter, hadBefore, reversed bool) (items []T, hasNext, hasPrev bool) {
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	if reversed {
		for l, r := 0, len(rows)-1; l < r; l, r = l+1, r-1 {
			rows[l], rows[r] = rows[r], rows[l]
		}
	}

	if reversed {
		hasNext = hadBefore
		hasPrev = hasMore
	} else {
		hasNext = hasMore
		hasPrev = hadAfter
	}

	return rows, hasNext, hasPrev
}

// buildCursors derives the wire cursor for every row of an already-trimmed
// page, using extractor to read each row's field values.
func buildCursors[T any](rows []T, fields []FieldSpec, extractor ValueExtractor[T]) ([]string, error) {
	types := Types(fields)
	cursors := make([]string, len(rows))
	for i, row := range rows {
		values, err := extractor(row, fields)
		if err != nil {
			return nil, err
		}
		c, err := Encode(types, values)
		if err != nil {
			return nil, err
		}
		cursors[i] = c
	}
	return cursors, nil
}
