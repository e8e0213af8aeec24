package cursor

import "strings"

// operator returns the comparison operator for one field given the side
// (After/Before) the predicate is being built for. Forward pagination on an
// ascending field, and backward pagination on a descending field, both seek
// strictly greater; the other two combinations seek strictly less.
func operator(dir Direction, side Side) string {
	forward := side == After
	ascending := dir == Asc
	if forward == ascending {
		return ">"
	}
	return "<"
}

// BuildPredicate synthesizes the lexicographic seek predicate for fields at
// the boundary values, per field (spec 4.4). values must align 1:1 with
// fields; a nil entry omits that field from every disjunction term it would
// otherwise appear in, since SQL equality and ordering comparisons against
// NULL never evaluate true.
//
// The result is a disjunction of prefix-equality terms:
//
//	f0 OP v0
//	  OR (f0 = v0 AND f1 OP v1)
//	  OR (f0 = v0 AND f1 = v1 AND f2 OP v2)
//	  ...
//
// one term per field that isn't itself null, each term holding the earlier
// non-null fields fixed at equality and applying OP to the field at that
// position. A null field gets no term of its own and is left out of the
// equality prefix of every later term; the later fields still form terms.
func BuildPredicate(fields []FieldSpec, values []any, side Side) (clause string, args []any, err error) {
	if len(fields) == 0 {
		return "", nil, nil
	}
	if len(values) != len(fields) {
		return "", nil, ErrCursorCorrupt
	}

	var terms []string
	var termArgs []any

	for i := range fields {
		if values[i] == nil {
			continue
		}

		var parts []string
		for j := 0; j < i; j++ {
			if values[j] == nil {
				continue
			}
			parts = append(parts, fields[j].Ref.String()+" = ?")
			termArgs = append(termArgs, values[j])
		}
		parts = append(parts, fields[i].Ref.String()+" "+operator(fields[i].Direction, side)+" ?")
		termArgs = append(termArgs, values[i])

		terms = append(terms, "("+strings.Join(parts, " AND ")+")")
	}

	if len(terms) == 0 {
		return "", nil, nil
	}

	return strings.Join(terms, " OR "), termArgs, nil
}
