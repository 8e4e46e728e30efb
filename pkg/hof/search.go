package hof

import "github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"

// Find returns the first element for which expr evaluates truthy, or null
// if none matches. It stops at the first match.
func (rt *Runtime) Find(expr string, coll []value.Value) (value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	ctx := &evalContext{compiled: compiled}
	for i, elem := range coll {
		ctx.bind(i, elem)
		res, err := ctx.eval()
		if err != nil {
			return nil, err
		}
		if value.Truthy(res) {
			return elem, nil
		}
	}
	return nil, nil
}

// FindIndex returns the zero-based index of the first element for which
// expr evaluates truthy, or null if none matches.
func (rt *Runtime) FindIndex(expr string, coll []value.Value) (value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	ctx := &evalContext{compiled: compiled}
	for i, elem := range coll {
		ctx.bind(i, elem)
		res, err := ctx.eval()
		if err != nil {
			return nil, err
		}
		if value.Truthy(res) {
			return float64(i), nil
		}
	}
	return nil, nil
}

// Count returns the number of elements for which expr evaluates truthy,
// without materializing a filtered array.
func (rt *Runtime) Count(expr string, coll []value.Value) (int, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return 0, err
	}
	ctx := &evalContext{compiled: compiled}
	count := 0
	for i, elem := range coll {
		ctx.bind(i, elem)
		res, err := ctx.eval()
		if err != nil {
			return 0, err
		}
		if value.Truthy(res) {
			count++
		}
	}
	return count, nil
}
