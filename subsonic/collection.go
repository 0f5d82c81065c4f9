package subsonic

import "encoding/json"

// List is an ordered collection of records. The server may collapse a one
// element list into a bare object or leave an empty one out; decoding accepts
// all of those shapes, while encoding always writes an array.
type List[T any] []T

// MarshalJSON writes l as a JSON array, including when l is nil or has a single
// element.
func (l List[T]) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]T(l))
}

// NormalizeCollection returns the elements carried by a list-typed wire token.
// Null yields no elements, an array yields its non-null elements in order and
// a single object yields itself. When scalarElems is set the list holds plain
// values and a bare scalar is accepted as a single element too.
func NormalizeCollection(field string, v any, scalarElems bool) ([]any, error) {
	switch t := v.(type) {
	case nil:
		return []any{}, nil
	case []any:
		out := make([]any, 0, len(t))
		for _, elem := range t {
			if elem != nil {
				out = append(out, elem)
			}
		}
		return out, nil
	case map[string]any:
		return []any{t}, nil
	case string, bool, json.Number:
		if scalarElems {
			return []any{t}, nil
		}
	}
	return nil, &MalformedCollection{Field: field, Kind: kindOf(v)}
}

// kindOf names the kind of a generic document token.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return "unknown"
	}
}
