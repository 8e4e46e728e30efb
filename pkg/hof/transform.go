package hof

import "github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"

// Map evaluates expr with each element bound as the current value, in order,
// and collects the results into a new array of the same length.
func (rt *Runtime) Map(expr string, coll []value.Value) ([]value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	ctx := &evalContext{compiled: compiled}
	out := make([]value.Value, 0, len(coll))
	for i, elem := range coll {
		ctx.bind(i, elem)
		res, err := ctx.eval()
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// FlatMap is Map with one level of splicing: per-element results that are
// arrays contribute their elements, nulls are dropped, and anything else is
// inserted as a single element.
func (rt *Runtime) FlatMap(expr string, coll []value.Value) ([]value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	ctx := &evalContext{compiled: compiled}
	out := []value.Value{}
	for i, elem := range coll {
		ctx.bind(i, elem)
		res, err := ctx.eval()
		if err != nil {
			return nil, err
		}
		switch t := res.(type) {
		case []value.Value:
			out = append(out, t...)
		case nil:
			// dropped, matching projection semantics
		default:
			out = append(out, res)
		}
	}
	return out, nil
}

// Filter retains the elements for which expr evaluates truthy,
// preserving relative order.
func (rt *Runtime) Filter(expr string, coll []value.Value) ([]value.Value, error) {
	return rt.filterBy(expr, coll, true)
}

// Reject retains the elements for which expr evaluates falsy,
// preserving relative order. It is the inverse of Filter.
func (rt *Runtime) Reject(expr string, coll []value.Value) ([]value.Value, error) {
	return rt.filterBy(expr, coll, false)
}

func (rt *Runtime) filterBy(expr string, coll []value.Value, keep bool) ([]value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	ctx := &evalContext{compiled: compiled}
	out := []value.Value{}
	for i, elem := range coll {
		ctx.bind(i, elem)
		res, err := ctx.eval()
		if err != nil {
			return nil, err
		}
		if value.Truthy(res) == keep {
			out = append(out, elem)
		}
	}
	return out, nil
}
