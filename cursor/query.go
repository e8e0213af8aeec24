package cursor

// OrderedQuery abstracts the query-expression library primitives Paginate
// needs: appending a WHERE predicate, setting the limit, reading and
// replacing the ORDER BY, stripping clauses for the count variant, and
// resolving a join binding (alias) to validate FieldSpec references.
//
// A concrete driver exists per SQL builder; package sqlboiler provides one
// for github.com/aarondl/sqlboiler/v4.
type OrderedQuery interface {
	// AppendWhere AND-joins clause (with ? placeholders) and its args onto
	// the query's existing WHERE.
	AppendWhere(clause string, args ...any)

	// SetLimit overrides the query's LIMIT.
	SetLimit(n int)

	// OrderBy returns the query's current ORDER BY, in the FieldSpec form
	// Paginate needs to build the lexicographic predicate.
	OrderBy() []FieldSpec

	// ReplaceOrderBy overwrites the query's ORDER BY, e.g. to invert it for
	// a before-only walk.
	ReplaceOrderBy(fields []FieldSpec)

	// LookupAlias resolves a join binding name to its SQL alias. ok is
	// false if the query doesn't declare that binding.
	LookupAlias(binding string) (alias string, ok bool)

	// KnownAliases lists the bindings LookupAlias recognizes, for
	// UnknownBindingError diagnostics.
	KnownAliases() []string

	// StripForCount returns a copy of the query with preloads, ORDER BY,
	// and LIMIT/OFFSET removed, leaving WHERE and any DISTINCT/GROUP BY
	// state intact (4.7). Resolving DISTINCT/GROUP BY into the right
	// COUNT form (subquery wrap, group count, or a plain count(*)) is
	// left to the driver's own count execution, which for sqlboiler is
	// the library's native Count() -- see package sqlboiler.
	StripForCount() OrderedQuery
}
