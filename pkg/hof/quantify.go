package hof

import "github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"

// Any reports whether expr evaluates truthy for at least one element.
// It stops at the first match; an empty collection yields false.
func (rt *Runtime) Any(expr string, coll []value.Value) (bool, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return false, err
	}
	ctx := &evalContext{compiled: compiled}
	for i, elem := range coll {
		ctx.bind(i, elem)
		res, err := ctx.eval()
		if err != nil {
			return false, err
		}
		if value.Truthy(res) {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether expr evaluates truthy for every element.
// It stops at the first failure; an empty collection yields true.
func (rt *Runtime) All(expr string, coll []value.Value) (bool, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return false, err
	}
	ctx := &evalContext{compiled: compiled}
	for i, elem := range coll {
		ctx.bind(i, elem)
		res, err := ctx.eval()
		if err != nil {
			return false, err
		}
		if !value.Truthy(res) {
			return false, nil
		}
	}
	return true, nil
}
