package hof

import (
	"fmt"

	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"
)

// maxWalkDepth bounds structural recursion. The value model has no true
// cycles, but depth must still be bounded against runaway input.
const maxWalkDepth = 500

// Walk recursively applies expr to every node of a nested structure and
// rebuilds it with transformed nodes. Traversal is bottom-up: children are
// transformed first, so expr observes already-transformed children. On a
// flat scalar, Walk is equivalent to a single direct evaluation of expr.
func (rt *Runtime) Walk(expr string, v value.Value) (value.Value, error) {
	compiled, err := rt.compile(expr)
	if err != nil {
		return nil, err
	}
	return walkValue(compiled, v, 0)
}

func walkValue(compiled engine.Compiled, v value.Value, depth int) (value.Value, error) {
	if depth > maxWalkDepth {
		return nil, engine.NewError(engine.ErrRecursionLimit,
			fmt.Sprintf("structure exceeds maximum depth %d", maxWalkDepth))
	}
	switch t := v.(type) {
	case []value.Value:
		rebuilt := make([]value.Value, len(t))
		for i, elem := range t {
			w, err := walkValue(compiled, elem, depth+1)
			if err != nil {
				return nil, err
			}
			rebuilt[i] = w
		}
		return compiled.Evaluate(rebuilt)
	case *value.Object:
		rebuilt := value.NewObject()
		var walkErr error
		t.Range(func(k string, elem value.Value) bool {
			w, err := walkValue(compiled, elem, depth+1)
			if err != nil {
				walkErr = err
				return false
			}
			rebuilt.Set(k, w)
			return true
		})
		if walkErr != nil {
			return nil, walkErr
		}
		return compiled.Evaluate(rebuilt)
	default:
		return compiled.Evaluate(v)
	}
}
