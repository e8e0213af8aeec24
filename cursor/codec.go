package cursor

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// wireEncoding is the base64 alphabet used for cursors: URL-safe, unpadded,
// per spec. Decoding arbitrary input through encoding/json into []any can
// only ever produce float64/string/bool/nil/[]any/map[string]any — there is
// no path to foreign-type references, custom Unmarshalers, or executable
// code, which is what makes this safe against hostile input.
var wireEncoding = base64.URLEncoding.WithPadding(base64.NoPadding)

// Encode packs a typed tuple of boundary values into one opaque,
// URL-safe, unpadded base64 string. types and values must be the same
// length and in the same order as the FieldSpec slice they describe.
//
// Temporal values are converted to signed 64-bit epoch integers before
// encoding (seconds for UtcDatetimeSeconds, microseconds for
// UtcDatetimeMicros); every other tag passes its value through unchanged.
func Encode(types []TypeTag, values []any) (string, error) {
	wire := make([]any, len(values))
	for i, v := range values {
		wire[i] = encodeValue(types[i], v)
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return "", err
	}

	return wireEncoding.EncodeToString(data), nil
}

// Decode is the inverse of Encode, parameterized by the caller's type
// vector (normally Config.Fields' types). An empty cursor decodes to (nil,
// nil) -- "no cursor" -- which is distinct from a cursor holding len(types)
// nulls. Any base64 failure, JSON failure, or length mismatch between the
// decoded tuple and types fails with ErrCursorCorrupt.
func Decode(types []TypeTag, cursor string) ([]any, error) {
	if cursor == "" {
		return nil, nil
	}

	data, err := wireEncoding.DecodeString(cursor)
	if err != nil {
		return nil, ErrCursorCorrupt
	}

	var wire []any
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, ErrCursorCorrupt
	}

	if len(wire) != len(types) {
		return nil, ErrCursorCorrupt
	}

	values := make([]any, len(wire))
	for i, v := range wire {
		values[i] = decodeValue(types[i], v)
	}

	return values, nil
}

func encodeValue(typ TypeTag, v any) any {
	if v == nil {
		return nil
	}

	switch typ {
	case UtcDatetimeSeconds:
		if t, ok := asTime(v); ok {
			return t.Unix()
		}
	case UtcDatetimeMicros:
		if t, ok := asTime(v); ok {
			return t.UnixMicro()
		}
	}
	return v
}

func decodeValue(typ TypeTag, v any) any {
	if v == nil {
		return nil
	}

	switch typ {
	case UtcDatetimeSeconds:
		if n, ok := asInt64(v); ok {
			return time.Unix(n, 0).UTC()
		}
	case UtcDatetimeMicros:
		if n, ok := asInt64(v); ok {
			return time.UnixMicro(n).UTC()
		}
	}
	return v
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	default:
		return time.Time{}, false
	}
}

// asInt64 normalizes a decoded JSON number (always float64) back to an
// int64 epoch value.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
