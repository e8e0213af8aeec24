// Package cursor implements keyset (seek-method) pagination: a cursor
// codec, a lexicographic predicate synthesizer, and a page assembler built
// around a user-supplied ordered list of sort fields.
//
// The cursor encodes the actual values of the sort fields at the boundary
// row. Paginate translates the cursor back into a WHERE predicate grafted
// onto the caller's query, fetches limit+1 rows to detect a next page
// without a second query, and hands back the trimmed page plus the cursors
// needed to continue in either direction.
//
// Example usage:
//
//	fields := []cursor.FieldSpec{
//	    cursor.AscField("charged_at", cursor.UtcDatetimeMicros),
//	    cursor.AscField("id", cursor.Id),
//	}
//	cfg, err := cursor.BuildConfig[Payment](fields, nil)
//	page, err := cursor.Paginate(ctx, query, executor, countExec, cfg, cursor.Options{
//	    After: args.After,
//	    Limit: *args.First,
//	})
package cursor

import (
	"fmt"
	"strings"
)

// TypeTag is the closed set of semantic value types the codec knows how to
// round-trip through a cursor. Temporal tags carry their own precision
// because the wire form stores them as integer epoch values.
type TypeTag string

const (
	Id                 TypeTag = "id"
	Integer            TypeTag = "integer"
	String             TypeTag = "string"
	Boolean            TypeTag = "boolean"
	Float              TypeTag = "float"
	UtcDatetimeSeconds TypeTag = "utc_datetime_seconds"
	UtcDatetimeMicros  TypeTag = "utc_datetime_micros"
	NaiveDatetime      TypeTag = "naive_datetime"
	Date               TypeTag = "date"
	Binary             TypeTag = "binary"
	Null               TypeTag = "null"
)

// Direction is the sort direction of a field.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// ParseDirection normalizes a user-supplied direction token. Anything other
// than "asc"/"desc" (case-insensitive) is InvalidDirectionError.
func ParseDirection(v string) (Direction, error) {
	switch strings.ToLower(v) {
	case "asc", "":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, &InvalidDirectionError{Value: v}
	}
}

// Side identifies which cursor a predicate is being built for: After seeks
// forward (strictly after the boundary row in sort order), Before seeks
// backward (strictly before it).
type Side int

const (
	After Side = iota
	Before
)

// FieldRef names the column a field targets, optionally qualified by a join
// binding (alias). A bindingless ref targets the root entity of the query.
type FieldRef struct {
	Binding *string
	Column  string
}

// String renders the ref the way it appears in the generated seek predicate:
// "binding.column" or just "column".
func (r FieldRef) String() string {
	if r.Binding == nil {
		return r.Column
	}
	return fmt.Sprintf("%s.%s", *r.Binding, r.Column)
}

// FieldSpec is one entry in the ordered list of sort fields that defines
// both the query's ORDER BY and the lexicographic shape of its cursors.
// Order within the slice is significant. The last field SHOULD be a unique
// column (typically the primary key) so ordering is total; Paginate doesn't
// enforce this, but pagination is only stable when it holds.
type FieldSpec struct {
	Ref       FieldRef
	Direction Direction
	Type      TypeTag
}

// Binding returns the join alias this field is bound to, or "" for the root entity.
func (f FieldSpec) Binding() string {
	if f.Ref.Binding == nil {
		return ""
	}
	return *f.Ref.Binding
}

// Column returns the bare column name.
func (f FieldSpec) Column() string { return f.Ref.Column }

// Field builds a bindingless field spec on the root entity.
func Field(column string, typ TypeTag, dir Direction) FieldSpec {
	return FieldSpec{Ref: FieldRef{Column: column}, Direction: dir, Type: typ}
}

// AscField is shorthand for Field(column, typ, Asc).
func AscField(column string, typ TypeTag) FieldSpec { return Field(column, typ, Asc) }

// DescField is shorthand for Field(column, typ, Desc).
func DescField(column string, typ TypeTag) FieldSpec { return Field(column, typ, Desc) }

// BoundField builds a field spec targeting a column through a join binding
// (alias). Paginate returns UnknownBindingError before running any query if
// the query doesn't recognize the binding.
func BoundField(binding, column string, typ TypeTag, dir Direction) FieldSpec {
	b := binding
	return FieldSpec{Ref: FieldRef{Binding: &b, Column: column}, Direction: dir, Type: typ}
}

// Types returns the TypeTag vector for a field list, in the order declared.
// This is the vector the codec uses to decode a cursor.
func Types(fields []FieldSpec) []TypeTag {
	out := make([]TypeTag, len(fields))
	for i, f := range fields {
		out[i] = f.Type
	}
	return out
}
