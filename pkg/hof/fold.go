package hof

import "github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"

// Reduce threads an accumulator left-to-right through the collection.
// Each evaluation sees the synthetic subject {accumulator, current, index};
// its result becomes the next accumulator. An empty collection returns
// initial unchanged.
func (rt *Runtime) Reduce(expr string, coll []value.Value, initial value.Value) (value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	ctx := &evalContext{compiled: compiled, accumulator: initial}
	for i, elem := range coll {
		ctx.bind(i, elem)
		next, err := ctx.evalFold()
		if err != nil {
			return nil, err
		}
		ctx.accumulator = next
	}
	return ctx.accumulator, nil
}

// Scan is Reduce that returns every intermediate accumulator, starting with
// the initial value: a prefix scan rather than a final fold.
func (rt *Runtime) Scan(expr string, coll []value.Value, initial value.Value) ([]value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	ctx := &evalContext{compiled: compiled, accumulator: initial}
	out := make([]value.Value, 0, len(coll)+1)
	out = append(out, initial)
	for i, elem := range coll {
		ctx.bind(i, elem)
		next, err := ctx.evalFold()
		if err != nil {
			return nil, err
		}
		ctx.accumulator = next
		out = append(out, next)
	}
	return out, nil
}
