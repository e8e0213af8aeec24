package cursor

import (
	"fmt"
	"reflect"
	"strings"
)

// ValueExtractor reads the boundary values for fields off of one row, so
// CursorForRecord (and Paginate's own page assembly, which calls it for every
// returned row) can build the cursor for that row without the caller
// repeating column names.
type ValueExtractor[T any] func(row T, fields []FieldSpec) ([]any, error)

// DefaultValueExtractor reads struct fields by the `boil:"column"` tag the
// teacher's generated models (and tests/models' hand-rolled stand-ins) carry,
// matching a FieldSpec's bare column name. A binding on a FieldSpec (4.3's
// association descent) is resolved by first finding a struct field whose own
// `boil` tag equals the binding name -- the convention sqlboiler's generated
// R struct follows for preloaded associations -- and descending into it
// before matching the column.
//
// aarondl/null/v8 nullable wrapper types (null.String, null.Int, null.Time,
// ...) are unwrapped via their Valid/underlying-value fields; sql.Null*
// driver types are unwrapped the same way. Anything else is taken as-is,
// including a genuine nil for an interface-typed or pointer-typed column.
func DefaultValueExtractor[T any](row T, fields []FieldSpec) ([]any, error) {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("paging: cannot extract cursor values from a nil %T", row)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("paging: %T is not a struct and has no default value extractor", row)
	}

	values := make([]any, len(fields))
	for i, f := range fields {
		val, err := extractField(v, f)
		if err != nil {
			return nil, err
		}
		values[i] = val
	}
	return values, nil
}

func extractField(v reflect.Value, f FieldSpec) (any, error) {
	target := v
	if b := f.Binding(); b != "" {
		assoc, ok := findBoilField(target, b)
		if !ok {
			return nil, &UnknownBindingError{Name: b, Known: boilTagsOf(target)}
		}
		for assoc.Kind() == reflect.Ptr {
			if assoc.IsNil() {
				return nil, nil
			}
			assoc = assoc.Elem()
		}
		target = assoc
	}

	fv, ok := findBoilField(target, f.Column())
	if !ok {
		return nil, fmt.Errorf("paging: no field tagged boil:%q on %s", f.Column(), target.Type())
	}
	return unwrapValue(fv), nil
}

func findBoilField(v reflect.Value, tag string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := strings.Split(sf.Tag.Get("boil"), ",")[0]
		if name == tag {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func boilTagsOf(v reflect.Value) []string {
	t := v.Type()
	var out []string
	for i := 0; i < t.NumField(); i++ {
		if name := strings.Split(t.Field(i).Tag.Get("boil"), ",")[0]; name != "" {
			out = append(out, name)
		}
	}
	return out
}

// unwrapValue collapses a nullable wrapper (aarondl/null/v8's null.String et
// al., or database/sql's sql.NullString et al.) down to either nil or its
// underlying value, by reflecting on a Valid bool field alongside a single
// value field. Non-wrapper values pass through as Interface().
func unwrapValue(fv reflect.Value) any {
	for fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}

	if fv.Kind() == reflect.Struct {
		validField := fv.FieldByName("Valid")
		if validField.IsValid() && validField.Kind() == reflect.Bool && fv.NumField() == 2 {
			if !validField.Bool() {
				return nil
			}
			t := fv.Type()
			for i := 0; i < t.NumField(); i++ {
				if t.Field(i).Name != "Valid" {
					return fv.Field(i).Interface()
				}
			}
		}
	}

	return fv.Interface()
}
