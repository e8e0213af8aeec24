// Package paging provides keyset (seek-method) cursor pagination for
// relational queries, plus offset and quota-fill pagination as sibling
// strategies behind a common Paginator[T] interface.
//
// Keyset pagination navigates by the column values of the boundary row
// rather than by offset, so page N costs the same as page 1 regardless of
// depth, and results stay stable while rows are inserted or deleted ahead
// of the cursor.
//
// The core engine lives in the cursor subpackage: a cursor codec, a
// lexicographic predicate synthesizer, and a page assembler. Package
// sqlboiler adapts those onto github.com/aarondl/sqlboiler/v4 query mods;
// packages offset and quotafill provide the other two strategies described
// by this package's Paginator[T] interface.
package paging
