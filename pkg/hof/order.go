package hof

import (
	"fmt"
	"sort"

	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"
)

type keyedElem struct {
	elem value.Value
	key  value.Value
}

// evalKeys evaluates the sort/group key expression exactly once per element.
func (rt *Runtime) evalKeys(expr string, coll []value.Value) ([]keyedElem, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	ctx := &evalContext{compiled: compiled}
	keyed := make([]keyedElem, len(coll))
	for i, elem := range coll {
		ctx.bind(i, elem)
		key, err := ctx.eval()
		if err != nil {
			return nil, err
		}
		keyed[i] = keyedElem{elem: elem, key: key}
	}
	return keyed, nil
}

// SortBy sorts the collection ascending by the key expr yields per element.
// Keys are evaluated once per element, never during comparisons. The sort is
// stable: ties preserve original relative order. All keys must be numbers or
// all strings; a mixed or unorderable key aborts the whole sort.
func (rt *Runtime) SortBy(expr string, coll []value.Value) ([]value.Value, error) {
	keyed, err := rt.evalKeys(expr, coll)
	if err != nil {
		return nil, err
	}
	if err := validateSortKeys(expr, keyed); err != nil {
		return nil, err
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		c, _ := value.Compare(keyed[i].key, keyed[j].key)
		return c < 0
	})
	out := make([]value.Value, len(keyed))
	for i, k := range keyed {
		out[i] = k.elem
	}
	return out, nil
}

// validateSortKeys checks key kinds up front so the stable sort itself
// cannot fail mid-flight.
func validateSortKeys(expr string, keyed []keyedElem) error {
	for i, k := range keyed {
		switch k.key.(type) {
		case float64, string:
		default:
			return engine.NewError(engine.ErrTypeMismatch,
				fmt.Sprintf("sort key must be a number or string, got %s", value.Kind(k.key))).
				WithExpr(expr).WithIndex(i)
		}
		if i > 0 && value.Kind(k.key) != value.Kind(keyed[0].key) {
			return engine.NewError(engine.ErrTypeMismatch,
				fmt.Sprintf("cannot order %s key against %s key",
					value.Kind(k.key), value.Kind(keyed[0].key))).
				WithExpr(expr).WithIndex(i)
		}
	}
	return nil
}

// GroupBy buckets elements by the canonical string form of their key.
// The resulting object's keys follow first-occurrence order of each distinct
// key, and each bucket preserves the original relative order of its members.
func (rt *Runtime) GroupBy(expr string, coll []value.Value) (*value.Object, error) {
	keyed, err := rt.evalKeys(expr, coll)
	if err != nil {
		return nil, err
	}
	groups := value.NewObject()
	for _, k := range keyed {
		name := value.CanonicalKey(k.key)
		bucket, _ := groups.Get(name)
		arr, _ := bucket.([]value.Value)
		groups.Set(name, append(arr, k.elem))
	}
	return groups, nil
}

// Partition splits the collection into [matches, non_matches], each
// preserving original relative order.
func (rt *Runtime) Partition(expr string, coll []value.Value) (matches, nonMatches []value.Value, err error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, nil, err
	}
	ctx := &evalContext{compiled: compiled}
	matches, nonMatches = []value.Value{}, []value.Value{}
	for i, elem := range coll {
		ctx.bind(i, elem)
		res, err := ctx.eval()
		if err != nil {
			return nil, nil, err
		}
		if value.Truthy(res) {
			matches = append(matches, elem)
		} else {
			nonMatches = append(nonMatches, elem)
		}
	}
	return matches, nonMatches, nil
}

// MinBy returns the element with the smallest key, breaking ties by first
// occurrence. An empty collection yields null.
func (rt *Runtime) MinBy(expr string, coll []value.Value) (value.Value, error) {
	return rt.extremeBy(expr, coll, -1)
}

// MaxBy returns the element with the largest key, breaking ties by first
// occurrence. An empty collection yields null.
func (rt *Runtime) MaxBy(expr string, coll []value.Value) (value.Value, error) {
	return rt.extremeBy(expr, coll, 1)
}

// extremeBy keeps the element whose key compares with sign want against the
// running best. Strict comparison keeps the first occurrence on ties.
func (rt *Runtime) extremeBy(expr string, coll []value.Value, want int) (value.Value, error) {
	if len(coll) == 0 {
		return nil, nil
	}
	keyed, err := rt.evalKeys(expr, coll)
	if err != nil {
		return nil, err
	}
	best := keyed[0]
	for _, k := range keyed[1:] {
		c, err := value.Compare(k.key, best.key)
		if err != nil {
			return nil, engine.NewError(engine.ErrTypeMismatch, err.Error()).WithExpr(expr)
		}
		if c == want {
			best = k
		}
	}
	return best.elem, nil
}

// UniqueBy keeps the first element seen for each distinct key, dropping
// later duplicates and preserving first-occurrence order.
func (rt *Runtime) UniqueBy(expr string, coll []value.Value) ([]value.Value, error) {
	keyed, err := rt.evalKeys(expr, coll)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(keyed))
	out := []value.Value{}
	for _, k := range keyed {
		name := value.CanonicalKey(k.key)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, k.elem)
	}
	return out, nil
}
