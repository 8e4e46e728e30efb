package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// DecodeJSON parses JSON into canonical Values, preserving object key order.
// Decoding is token-level rather than map-based so that insertion order
// survives the round trip.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level JSON value")
	}
	return v, nil
}

// MustDecodeJSON is like DecodeJSON but panics on malformed input.
// It simplifies safe initialization of fixtures and globals.
func MustDecodeJSON(data string) Value {
	v, err := DecodeJSON([]byte(data))
	if err != nil {
		panic(fmt.Sprintf("value: DecodeJSON(%q): %v", data, err))
	}
	return v
}

// EncodeJSON renders v as compact JSON, preserving object key order.
func EncodeJSON(v Value) ([]byte, error) {
	return json.Marshal(v)
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case json.Number:
		return t.Float64()
	case string:
		return t, nil
	case bool:
		return t, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]Value, error) {
	arr := []Value{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return arr, nil
}

// ToNative lowers a Value to the plain Go representation the base evaluator
// consumes: ordered objects become map[string]interface{} (order is not
// meaningful inside the engine) and expression references become null.
func ToNative(v Value) interface{} {
	switch t := v.(type) {
	case []Value:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = ToNative(e)
		}
		return out
	case *Object:
		out := make(map[string]interface{}, t.Len())
		for _, k := range t.keys {
			out[k] = ToNative(t.values[k])
		}
		return out
	case *ExprRef:
		return nil
	default:
		return v
	}
}

// FromNative lifts an engine result back into canonical form.
// Maps coming out of the engine carry no order, so keys are sorted
// alphabetically to keep results deterministic.
func FromNative(v interface{}) Value {
	switch t := v.(type) {
	case nil, bool, float64, string, *Object, *ExprRef:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case []interface{}:
		out := make([]Value, len(t))
		for i, e := range t {
			out[i] = FromNative(e)
		}
		return out
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, FromNative(t[k]))
		}
		return obj
	default:
		return v
	}
}
