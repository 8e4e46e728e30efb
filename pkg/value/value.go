// Package value defines the data model shared by the extension combinators
// and the embedded JMESPath engine.
//
// A Value is one of the canonical dynamic forms:
//   - nil              – null
//   - bool             – boolean
//   - float64          – number
//   - string           – string
//   - []Value          – array
//   - *Object          – object (insertion-ordered)
//   - *ExprRef         – expression reference, optionally with bound arguments
//
// Values produced by this package are never aliased into caller-owned
// collections: combinators build fresh arrays and objects, so inputs remain
// valid and unchanged after any call.
package value

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is any of the canonical dynamic forms listed in the package comment.
type Value = interface{}

// Kind names a Value's dynamic form using JMESPath type vocabulary.
// Used in error messages and signature validation.
func Kind(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []Value:
		return "array"
	case *Object:
		return "object"
	case *ExprRef:
		return "expref"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Truthy reports whether v counts as true in a predicate position.
// Only null and false are falsy; 0, "", empty arrays and empty objects
// are all truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	default:
		return true
	}
}

// Compare orders two values: -1, 0 or +1.
// Numbers compare numerically and strings by code point. Every other
// pairing, including number-vs-string, is a type error.
func Compare(a, b Value) (int, error) {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1, nil
			case av > bv:
				return 1, nil
			default:
				return 0, nil
			}
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv), nil
		}
	}
	return 0, fmt.Errorf("cannot order %s against %s", Kind(a), Kind(b))
}

// Equal reports structural equality.
// Arrays are order-sensitive; objects compare by key set regardless of
// insertion order; numbers compare by value.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []Value:
		bv, ok := b.([]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.keys {
			w, present := bv.Get(k)
			if !present || !Equal(av.values[k], w) {
				return false
			}
		}
		return true
	case *ExprRef:
		bv, ok := b.(*ExprRef)
		if !ok || av.Text != bv.Text || len(av.Bound) != len(bv.Bound) {
			return false
		}
		for i := range av.Bound {
			if !Equal(av.Bound[i], bv.Bound[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// CanonicalKey renders v as the string used for grouping and deduplication.
// Strings pass through unchanged; numbers use their minimal decimal form
// so 1.0 and 1 collapse to the same bucket; composites use compact JSON.
func CanonicalKey(v Value) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return formatNumber(t)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
