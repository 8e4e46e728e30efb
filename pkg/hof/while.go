package hof

import "github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"

// TakeWhile returns the leading run of elements for which expr evaluates
// truthy, stopping at the first falsy evaluation.
func (rt *Runtime) TakeWhile(expr string, coll []value.Value) ([]value.Value, error) {
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
		if !value.Truthy(res) {
			break
		}
		out = append(out, elem)
	}
	return out, nil
}

// DropWhile discards the leading run of elements for which expr evaluates
// truthy and returns everything from the first falsy element onward.
func (rt *Runtime) DropWhile(expr string, coll []value.Value) ([]value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	ctx := &evalContext{compiled: compiled}
	out := []value.Value{}
	dropping := true
	for i, elem := range coll {
		if dropping {
			ctx.bind(i, elem)
			res, err := ctx.eval()
			if err != nil {
				return nil, err
			}
			if value.Truthy(res) {
				continue
			}
			dropping = false
		}
		out = append(out, elem)
	}
	return out, nil
}

// ZipWith combines two arrays pairwise: expr is evaluated with the pair
// [a[i], b[i]] as its subject. The result length is the shorter of the two
// inputs.
func (rt *Runtime) ZipWith(expr string, a, b []value.Value) ([]value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	ctx := &evalContext{compiled: compiled}
	out := make([]value.Value, 0, n)
	for i := 0; i < n; i++ {
		ctx.bind(i, []value.Value{a[i], b[i]})
		res, err := ctx.eval()
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
